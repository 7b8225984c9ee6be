// In-memory store backed by sync.Map
package store

import (
	"encoding/json"
	"fmt"

	"github.com/philippgille/gokv"
	"github.com/philippgille/gokv/syncmap"
)

type SyncMapOptions struct {
	Codec string `json:"codec"`
}

func NewSyncMapStore(optionsJSON string) (gokv.Store, error) {
	if optionsJSON == "" {
		return syncmap.NewStore(syncmap.DefaultOptions), nil
	}
	var o SyncMapOptions
	if err := json.Unmarshal([]byte(optionsJSON), &o); err != nil {
		return nil, fmt.Errorf("json.Unmarshal err: %w", err)
	}
	codec, err := getStoreCodec(o.Codec)
	if err != nil {
		return nil, fmt.Errorf("getStoreCodec err: %w", err)
	}
	options := syncmap.DefaultOptions
	if codec != nil {
		options.Codec = codec
	}
	return syncmap.NewStore(options), nil
}
