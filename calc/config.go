package calc

import (
	"os"

	"github.com/RonaldMishiev/LocalBolt/arith"
	"github.com/RonaldMishiev/LocalBolt/common"
)

type Config struct {
	// Persistence type, currently supporting "syncmap", "file" and "badgerdb".
	// Default to "syncmap".
	PersistenceType string

	// Persistence options as JSON string. See the store package for details.
	// Environment variables are expanded.
	PersistenceOptions string

	// Overflow policy used when a request does not name one: "fail", "wrap"
	// or "saturate". Default to "fail".
	Policy string

	// Maximum number of requests of a batch evaluated at once
	Concurrency int

	// Address the HTTP API listens on
	ListenAddr string
}

func (c Config) GetPersistenceOptions() string {
	return os.ExpandEnv(c.PersistenceOptions)
}

func (c Config) GetPolicy() (arith.OverflowPolicy, error) {
	return arith.ParsePolicy(c.Policy)
}

func (c Config) GetConcurrency() int {
	if c.Concurrency <= 0 {
		return common.DefaultConcurrency
	}
	return c.Concurrency
}

func (c Config) GetListenAddr() string {
	if len(c.ListenAddr) == 0 {
		return common.DefaultListenAddr
	}
	return os.ExpandEnv(c.ListenAddr)
}
