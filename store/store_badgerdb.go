// Persists results in an embedded BadgerDB
package store

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/philippgille/gokv"
	"github.com/philippgille/gokv/badgerdb"
)

type BadgerDBOptions struct {
	Dir   string `json:"dir"`
	Codec string `json:"codec"`
}

func NewBadgerDBStore(optionsJSON string) (gokv.Store, error) {
	options := badgerdb.DefaultOptions
	if optionsJSON != "" {
		var o BadgerDBOptions
		if err := json.Unmarshal([]byte(optionsJSON), &o); err != nil {
			return nil, fmt.Errorf("json.Unmarshal err: %w", err)
		}
		codec, err := getStoreCodec(o.Codec)
		if err != nil {
			return nil, fmt.Errorf("getStoreCodec err: %w", err)
		}
		if o.Dir != "" {
			options.Dir = os.ExpandEnv(o.Dir)
		}
		if codec != nil {
			options.Codec = codec
		}
	}
	s, err := badgerdb.NewStore(options)
	if err != nil {
		return nil, fmt.Errorf("badgerdb.NewStore err: %w", err)
	}
	return s, nil
}
