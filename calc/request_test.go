package calc

import (
	"testing"

	"github.com/RonaldMishiev/LocalBolt/arith"
	"github.com/stretchr/testify/require"
)

func TestParseRequest(t *testing.T) {
	req, err := ParseRequest("pow:2:10")
	require.NoError(t, err)
	require.Equal(t, Request{Op: OpPow, Base: 2, Exponent: 10}, req)
	require.Equal(t, "pow:2:10", req.String())

	req, err = ParseRequest("POW:-2:0x1f:wrap")
	require.NoError(t, err)
	require.Equal(t, Request{Op: OpPow, Base: -2, Exponent: 31, Policy: "wrap"}, req)

	req, err = ParseRequest("mod:10:20")
	require.NoError(t, err)
	require.Equal(t, Request{Op: OpMod, Base: 10, Exponent: 20}, req)

	for _, in := range []string{"pow:2", "pow:2:3:wrap:x", "add:1:2", "pow:a:2", "pow:2:b", "pow:2:3:clamp", "mod:1:2:wrap"} {
		_, err = ParseRequest(in)
		require.ErrorIs(t, err, arith.ErrInvalidArgument, in)
	}
}

func TestStoreKey(t *testing.T) {
	a, err := storeKey(OpPow, 2, 10, "fail")
	require.NoError(t, err)
	b, err := storeKey(OpPow, 2, 10, "fail")
	require.NoError(t, err)
	require.Equal(t, a, b)

	c, err := storeKey(OpPow, 2, 10, "wrap")
	require.NoError(t, err)
	require.NotEqual(t, a, c)

	d, err := storeKey(OpMod, 2, 10, "")
	require.NoError(t, err)
	require.NotEqual(t, a, d)
}
