package arith

import (
	"fmt"
	"strings"
)

// OverflowPolicy decides what PowerWithPolicy does when a product leaves the
// int32 range
type OverflowPolicy uint8

const (
	// PolicyFail returns ErrOverflow
	PolicyFail OverflowPolicy = iota
	// PolicyWrap keeps the two's-complement wrapped product
	PolicyWrap
	// PolicySaturate clamps to math.MaxInt32 or math.MinInt32 depending on the
	// sign of the exact result
	PolicySaturate
)

var policyNames = map[OverflowPolicy]string{
	PolicyFail:     "fail",
	PolicyWrap:     "wrap",
	PolicySaturate: "saturate",
}

func (p OverflowPolicy) String() string {
	if name, ok := policyNames[p]; ok {
		return name
	}
	return fmt.Sprintf("OverflowPolicy(%d)", uint8(p))
}

// ParsePolicy parses a policy name. The empty string means PolicyFail.
func ParsePolicy(s string) (OverflowPolicy, error) {
	s = strings.ToLower(strings.TrimSpace(s))
	if s == "" {
		return PolicyFail, nil
	}
	for p, name := range policyNames {
		if name == s {
			return p, nil
		}
	}
	return PolicyFail, fmt.Errorf("%w: unknown overflow policy %q", ErrInvalidArgument, s)
}

func (p OverflowPolicy) MarshalText() ([]byte, error) {
	name, ok := policyNames[p]
	if !ok {
		return nil, fmt.Errorf("%w: unknown overflow policy %d", ErrInvalidArgument, uint8(p))
	}
	return []byte(name), nil
}

func (p *OverflowPolicy) UnmarshalText(text []byte) error {
	parsed, err := ParsePolicy(string(text))
	if err != nil {
		return err
	}
	*p = parsed
	return nil
}
