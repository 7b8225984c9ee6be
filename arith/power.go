package arith

import (
	"fmt"
	"math"
	"math/big"
)

// Power computes base^exponent by recursive squaring:
//
//	power(b, 0) = 1
//	power(b, e) = power(b*b, e/2)      e even
//	power(b, e) = b * power(b*b, e/2)  e odd
//
// A negative exponent is rejected with ErrInvalidArgument. A result or a used
// intermediate square outside the int32 range fails with ErrOverflow.
func Power(base, exponent int32) (int32, error) {
	return PowerWithPolicy(base, exponent, PolicyFail)
}

// PowerWithPolicy is Power with a caller chosen overflow behavior
func PowerWithPolicy(base, exponent int32, policy OverflowPolicy) (int32, error) {
	if exponent < 0 {
		return 0, fmt.Errorf("%w: negative exponent %d", ErrInvalidArgument, exponent)
	}
	switch policy {
	case PolicyWrap:
		return powWrap(base, exponent), nil
	case PolicyFail:
		v, ok := powChecked(base, exponent)
		if !ok {
			return 0, fmt.Errorf("%w: %d^%d exceeds int32", ErrOverflow, base, exponent)
		}
		return v, nil
	case PolicySaturate:
		v, ok := powChecked(base, exponent)
		if ok {
			return v, nil
		}
		if base < 0 && exponent%2 == 1 {
			return math.MinInt32, nil
		}
		return math.MaxInt32, nil
	default:
		return 0, fmt.Errorf("%w: unknown overflow policy %d", ErrInvalidArgument, uint8(policy))
	}
}

func powWrap(base, exponent int32) int32 {
	if exponent == 0 {
		return 1
	}
	if exponent%2 == 0 {
		return powWrap(base*base, exponent/2)
	}
	return base * powWrap(base*base, exponent/2)
}

// powChecked reports false as soon as a product leaves the int32 range. The
// square handed to a call with exponent 0 never contributes, so it is skipped.
func powChecked(base, exponent int32) (int32, bool) {
	if exponent == 0 {
		return 1, true
	}
	rest := int32(1)
	if half := exponent / 2; half > 0 {
		sq, ok := mul32(base, base)
		if !ok {
			return 0, false
		}
		if rest, ok = powChecked(sq, half); !ok {
			return 0, false
		}
	}
	if exponent%2 == 0 {
		return rest, true
	}
	return mul32(base, rest)
}

func mul32(a, b int32) (int32, bool) {
	p := int64(a) * int64(b)
	if p < math.MinInt32 || p > math.MaxInt32 {
		return 0, false
	}
	return int32(p), true
}

// BigPower is the arbitrary precision variant of Power. It never overflows.
// base is not modified.
func BigPower(base *big.Int, exponent int64) (*big.Int, error) {
	if base == nil {
		return nil, fmt.Errorf("%w: nil base", ErrInvalidArgument)
	}
	if exponent < 0 {
		return nil, fmt.Errorf("%w: negative exponent %d", ErrInvalidArgument, exponent)
	}
	return bigPow(base, exponent), nil
}

func bigPow(base *big.Int, exponent int64) *big.Int {
	if exponent == 0 {
		return big.NewInt(1)
	}
	rest := big.NewInt(1)
	if half := exponent / 2; half > 0 {
		rest = bigPow(new(big.Int).Mul(base, base), half)
	}
	if exponent%2 == 0 {
		return rest
	}
	return rest.Mul(base, rest)
}
