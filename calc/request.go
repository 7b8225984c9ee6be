package calc

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/RonaldMishiev/LocalBolt/arith"
	"github.com/RonaldMishiev/LocalBolt/common"
	"github.com/RonaldMishiev/LocalBolt/common/utils"
	"github.com/ethereum/go-ethereum/crypto"
	"github.com/gowebpki/jcs"
)

type Op string

const (
	OpPow Op = "pow"
	OpMod Op = "mod"
)

// Request is a single operation. For OpMod, Base is the dividend and Exponent
// the divisor. An empty Policy means the calculator's default.
type Request struct {
	Op       Op     `json:"op"`
	Base     int32  `json:"base"`
	Exponent int32  `json:"exponent"`
	Policy   string `json:"policy,omitempty"`
}

type Result struct {
	Request
	Value int32  `json:"value"`
	Error string `json:"error,omitempty"`

	Err error `json:"-"`
}

// Entry is what the calculator persists per computed request
type Entry struct {
	Value int32
}

// ParseRequest parses "op:a:b" or "pow:base:exponent:policy"
func ParseRequest(s string) (Request, error) {
	parts := strings.Split(s, ":")
	if len(parts) < 3 || len(parts) > 4 {
		return Request{}, fmt.Errorf("%w: malformed request %q, want op:a:b[:policy]", arith.ErrInvalidArgument, s)
	}
	req := Request{Op: Op(strings.ToLower(parts[0]))}
	if req.Op != OpPow && req.Op != OpMod {
		return Request{}, fmt.Errorf("%w: unknown op %q", arith.ErrInvalidArgument, parts[0])
	}
	var err error
	if req.Base, err = utils.ParseInt32(parts[1]); err != nil {
		return Request{}, err
	}
	if req.Exponent, err = utils.ParseInt32(parts[2]); err != nil {
		return Request{}, err
	}
	if len(parts) == 4 {
		if req.Op != OpPow {
			return Request{}, fmt.Errorf("%w: policy only applies to pow", arith.ErrInvalidArgument)
		}
		if _, err = arith.ParsePolicy(parts[3]); err != nil {
			return Request{}, err
		}
		req.Policy = parts[3]
	}
	return req, nil
}

func (r Request) String() string {
	if r.Policy != "" {
		return fmt.Sprintf("%s:%d:%d:%s", r.Op, r.Base, r.Exponent, r.Policy)
	}
	return fmt.Sprintf("%s:%d:%d", r.Op, r.Base, r.Exponent)
}

// storeKey derives the store key of a request from the keccak hash of its
// canonical JSON form
func storeKey(op Op, a, b int32, policy string) (string, error) {
	raw, err := json.Marshal(Request{Op: op, Base: a, Exponent: b, Policy: policy})
	if err != nil {
		return "", fmt.Errorf("json.Marshal err: %w", err)
	}
	canonical, err := jcs.Transform(raw)
	if err != nil {
		return "", fmt.Errorf("jcs.Transform err: %w", err)
	}
	return common.KeyPrefix + crypto.Keccak256Hash(canonical).Hex(), nil
}
