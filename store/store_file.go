// Persists results as one file per key in a local directory
package store

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/philippgille/gokv"
	"github.com/philippgille/gokv/file"
)

type FileOptions struct {
	Directory         string `json:"dir"`
	FilenameExtension string `json:"file_name_extension"`
	Codec             string `json:"codec"`
}

func NewFileStore(optionsJSON string) (gokv.Store, error) {
	options := file.DefaultOptions
	if optionsJSON != "" {
		var o FileOptions
		if err := json.Unmarshal([]byte(optionsJSON), &o); err != nil {
			return nil, fmt.Errorf("json.Unmarshal err: %w", err)
		}
		codec, err := getStoreCodec(o.Codec)
		if err != nil {
			return nil, fmt.Errorf("getStoreCodec err: %w", err)
		}
		if o.Directory != "" {
			options.Directory = os.ExpandEnv(o.Directory)
		}
		if o.FilenameExtension != "" {
			ext := o.FilenameExtension
			options.FilenameExtension = &ext
		}
		if codec != nil {
			options.Codec = codec
		}
	}
	s, err := file.NewStore(options)
	if err != nil {
		return nil, fmt.Errorf("file.NewStore err: %w", err)
	}
	return s, nil
}
