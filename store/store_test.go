package store

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/require"
)

type entry struct {
	Value int32
}

func TestInitStore(t *testing.T) {
	dir := t.TempDir()
	cases := []struct {
		typ, options string
	}{
		{"", ""},
		{TypeSyncMap, ""},
		{TypeSyncMap, `{"codec":"gob"}`},
		{TypeFile, fmt.Sprintf(`{"dir":%q,"codec":"json"}`, dir+"/file")},
		{TypeFile, fmt.Sprintf(`{"dir":%q,"file_name_extension":"bin","codec":"gob"}`, dir+"/file-gob")},
		{TypeBadgerDB, fmt.Sprintf(`{"dir":%q}`, dir+"/badger")},
	}
	for _, c := range cases {
		s, err := InitStore(c.typ, c.options)
		require.NoError(t, err, "%s %s", c.typ, c.options)

		require.NoError(t, s.Set("pow_2_10", entry{Value: 1024}))
		var got entry
		found, err := s.Get("pow_2_10", &got)
		require.NoError(t, err)
		require.True(t, found)
		require.Equal(t, int32(1024), got.Value)

		found, err = s.Get("missing", &got)
		require.NoError(t, err)
		require.False(t, found)

		require.NoError(t, s.Delete("pow_2_10"))
		found, err = s.Get("pow_2_10", &got)
		require.NoError(t, err)
		require.False(t, found)

		require.NoError(t, s.Close())
	}
}

func TestInitStoreErrors(t *testing.T) {
	_, err := InitStore("s3", "")
	require.Error(t, err)
	_, err = InitStore(TypeSyncMap, `{"codec":"xml"}`)
	require.Error(t, err)
	_, err = InitStore(TypeFile, `not json`)
	require.Error(t, err)
}
