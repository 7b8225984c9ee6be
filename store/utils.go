package store

import (
	"fmt"

	"github.com/philippgille/gokv"
	"github.com/philippgille/gokv/encoding"
)

const (
	TypeSyncMap  = "syncmap"
	TypeFile     = "file"
	TypeBadgerDB = "badgerdb"
)

func getStoreCodec(codec string) (encoding.Codec, error) {
	switch codec {
	case "":
		// gokv picks its default codec
		return nil, nil
	case "json":
		return encoding.JSON, nil
	case "gob":
		return encoding.Gob, nil
	default:
		return nil, fmt.Errorf("unsupported codec %s", codec)
	}
}

// InitStore creates the store named by persistenceType, configured by the
// JSON encoded persistenceOptions. An empty type selects syncmap.
func InitStore(persistenceType string, persistenceOptions string) (gokv.Store, error) {
	switch persistenceType {
	case "", TypeSyncMap:
		return NewSyncMapStore(persistenceOptions)
	case TypeFile:
		return NewFileStore(persistenceOptions)
	case TypeBadgerDB:
		return NewBadgerDBStore(persistenceOptions)
	default:
		return nil, fmt.Errorf("unsupported persistence type %s", persistenceType)
	}
}
