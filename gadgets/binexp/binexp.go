package binexp

import (
	"fmt"

	"github.com/consensys/gnark/frontend"
)

// Power returns base^exponent computed in the native field of api by
// square-and-multiply over the little-endian bits of exponent. exponent is
// constrained to nbBits bits, so the circuit is unsatisfiable for exponents
// >= 2^nbBits.
func Power(api frontend.API, base, exponent frontend.Variable, nbBits int) frontend.Variable {
	if nbBits <= 0 {
		panic(fmt.Sprintf("invalid exponent bit size %d", nbBits))
	}
	bits := api.ToBinary(exponent, nbBits)
	var result frontend.Variable = 1
	sq := base
	for i, bit := range bits {
		result = api.Select(bit, api.Mul(result, sq), result)
		if i < len(bits)-1 {
			sq = api.Mul(sq, sq)
		}
	}
	return result
}

// PowerConst returns base^exponent for an exponent known at compile time. It
// follows the recursive definition
//
//	power(b, 0) = 1
//	power(b, e) = power(b*b, e/2)      e even
//	power(b, e) = b * power(b*b, e/2)  e odd
//
// and only emits the multiplications the exponent needs.
func PowerConst(api frontend.API, base frontend.Variable, exponent uint64) frontend.Variable {
	if exponent == 0 {
		return 1
	}
	var rest frontend.Variable = 1
	if half := exponent / 2; half > 0 {
		rest = PowerConst(api, api.Mul(base, base), half)
	}
	if exponent%2 == 0 {
		return rest
	}
	return api.Mul(base, rest)
}

// PowerCircuit proves knowledge of Base and Exponent such that
// Base^Exponent == Out
type PowerCircuit struct {
	Base     frontend.Variable
	Exponent frontend.Variable
	Out      frontend.Variable `gnark:",public"`

	// NbBits bounds the exponent, defaults to 64
	NbBits int `gnark:"-"`
}

func (c *PowerCircuit) Define(api frontend.API) error {
	nbBits := c.NbBits
	if nbBits == 0 {
		nbBits = 64
	}
	out := Power(api, c.Base, c.Exponent, nbBits)
	api.AssertIsEqual(out, c.Out)
	return nil
}

// PowerConstCircuit checks Base^Exponent == Out for a fixed Exponent
type PowerConstCircuit struct {
	Base frontend.Variable
	Out  frontend.Variable `gnark:",public"`

	Exponent uint64 `gnark:"-"`
}

func (c *PowerConstCircuit) Define(api frontend.API) error {
	api.AssertIsEqual(PowerConst(api, c.Base, c.Exponent), c.Out)
	return nil
}
