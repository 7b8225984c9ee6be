package utils

import (
	"fmt"
	"math/big"
	"strconv"
	"strings"

	"github.com/RonaldMishiev/LocalBolt/arith"
	"github.com/ethereum/go-ethereum/common/hexutil"
)

// ParseInt32 accepts a signed decimal number or one with a 0x, 0o or 0b prefix
func ParseInt32(s string) (int32, error) {
	v, err := strconv.ParseInt(strings.TrimSpace(s), 0, 32)
	if err != nil {
		return 0, fmt.Errorf("%w: %s", arith.ErrInvalidArgument, err.Error())
	}
	return int32(v), nil
}

// ParseBigInt is ParseInt32 without the size limit
func ParseBigInt(s string) (*big.Int, error) {
	v, ok := new(big.Int).SetString(strings.TrimSpace(s), 0)
	if !ok {
		return nil, fmt.Errorf("%w: cannot parse %q as an integer", arith.ErrInvalidArgument, s)
	}
	return v, nil
}

// BigInt2Hex0x returns the 0x prefixed hex form of v, with a leading '-' for
// negative values
func BigInt2Hex0x(v *big.Int) string {
	return hexutil.EncodeBig(v)
}
