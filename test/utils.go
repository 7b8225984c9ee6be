package test

import (
	"testing"

	"github.com/consensys/gnark-crypto/ecc"
	"github.com/consensys/gnark/backend"
	"github.com/consensys/gnark/frontend"
	"github.com/consensys/gnark/test"
)

// Curve is the curve whose scalar field the gadgets are checked against
var Curve = ecc.BN254

// ProverSucceeded checks:
// - a groth16 proof can be generated with the circuit and the assignment.
// - the generated proof can be verified.
func ProverSucceeded(t *testing.T, circuit, assign frontend.Circuit) {
	assert := test.NewAssert(t)
	assert.ProverSucceeded(circuit, assign, test.WithBackends(backend.GROTH16), test.WithCurves(Curve))
}

// ProverFailed checks that a proof cannot be generated with the circuit and
// the invalid assignment.
func ProverFailed(t *testing.T, circuit, assign frontend.Circuit) {
	assert := test.NewAssert(t)
	assert.ProverFailed(circuit, assign, test.WithBackends(backend.GROTH16), test.WithCurves(Curve))
}

// IsSolved checks if the given circuit and assignment can be solved
func IsSolved(t *testing.T, circuit, assign frontend.Circuit) {
	err := test.IsSolved(circuit, assign, Curve.ScalarField())
	if err != nil {
		t.Error(err)
	}
}

// IsNotSolved checks that the given assignment does not satisfy the circuit
func IsNotSolved(t *testing.T, circuit, assign frontend.Circuit) {
	err := test.IsSolved(circuit, assign, Curve.ScalarField())
	if err == nil {
		t.Error("expected the assignment to be rejected")
	}
}
