package common

// Greeting is what the default program run writes to stdout
const Greeting = "Hello"

// Operands of the default program run; the process exits with
// DefaultDividend % DefaultDivisor
const (
	DefaultDividend int32 = 10
	DefaultDivisor  int32 = 20
)

// KeyPrefix namespaces calculator entries in a shared store
const KeyPrefix = "localbolt_"

const (
	DefaultListenAddr  = "localhost:8087"
	DefaultConcurrency = 4
)
