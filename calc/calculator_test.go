package calc

import (
	"context"
	"fmt"
	"math"
	"testing"

	"github.com/RonaldMishiev/LocalBolt/arith"
	"github.com/stretchr/testify/require"
)

func newTestCalculator(t *testing.T, config Config) *Calculator {
	c, err := NewCalculator(config)
	require.NoError(t, err)
	t.Cleanup(func() { require.NoError(t, c.Close()) })
	return c
}

func TestCalculatorPower(t *testing.T) {
	c := newTestCalculator(t, Config{})
	ctx := context.Background()

	v, err := c.Power(ctx, 2, 10)
	require.NoError(t, err)
	require.Equal(t, int32(1024), v)
	require.Equal(t, Stats{Misses: 1}, c.Stats())

	v, err = c.Power(ctx, 2, 10)
	require.NoError(t, err)
	require.Equal(t, int32(1024), v)
	require.Equal(t, Stats{Hits: 1, Misses: 1}, c.Stats())

	_, err = c.Power(ctx, 2, -1)
	require.ErrorIs(t, err, arith.ErrInvalidArgument)
}

func TestCalculatorErrorsNotStored(t *testing.T) {
	c := newTestCalculator(t, Config{})
	ctx := context.Background()

	_, err := c.Power(ctx, 2, 31)
	require.ErrorIs(t, err, arith.ErrOverflow)
	_, err = c.Power(ctx, 2, 31)
	require.ErrorIs(t, err, arith.ErrOverflow)
	require.Equal(t, Stats{Misses: 2}, c.Stats())

	key, err := storeKey(OpPow, 2, 31, arith.PolicyFail.String())
	require.NoError(t, err)
	var entry Entry
	found, err := c.store.Get(key, &entry)
	require.NoError(t, err)
	require.False(t, found)
}

func TestCalculatorPolicies(t *testing.T) {
	c := newTestCalculator(t, Config{Policy: "wrap"})
	ctx := context.Background()
	require.Equal(t, arith.PolicyWrap, c.Policy())

	v, err := c.Power(ctx, 2, 31)
	require.NoError(t, err)
	require.Equal(t, int32(math.MinInt32), v)

	// the same operands under another policy are a different entry
	v, err = c.Eval(ctx, Request{Op: OpPow, Base: 2, Exponent: 31, Policy: "saturate"})
	require.NoError(t, err)
	require.Equal(t, int32(math.MaxInt32), v)

	_, err = c.Eval(ctx, Request{Op: OpPow, Base: 2, Exponent: 31, Policy: "fail"})
	require.ErrorIs(t, err, arith.ErrOverflow)

	_, err = c.Eval(ctx, Request{Op: OpPow, Base: 2, Exponent: 3, Policy: "round"})
	require.ErrorIs(t, err, arith.ErrInvalidArgument)

	_, err = NewCalculator(Config{Policy: "round"})
	require.ErrorIs(t, err, arith.ErrInvalidArgument)
}

func TestCalculatorMod(t *testing.T) {
	c := newTestCalculator(t, Config{})
	ctx := context.Background()

	v, err := c.Mod(ctx, 10, 20)
	require.NoError(t, err)
	require.Equal(t, int32(10), v)

	v, err = c.Eval(ctx, Request{Op: OpMod, Base: -7, Exponent: 3})
	require.NoError(t, err)
	require.Equal(t, int32(-1), v)

	_, err = c.Mod(ctx, 1, 0)
	require.ErrorIs(t, err, arith.ErrDivisionByZero)

	_, err = c.Eval(ctx, Request{Op: "add", Base: 1, Exponent: 2})
	require.ErrorIs(t, err, arith.ErrInvalidArgument)
}

func TestCalculatorCanceled(t *testing.T) {
	c := newTestCalculator(t, Config{})
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := c.Power(ctx, 2, 2)
	require.ErrorIs(t, err, context.Canceled)
	require.Equal(t, Stats{}, c.Stats())
}

func TestCalculatorFileStore(t *testing.T) {
	dir := t.TempDir()
	config := Config{
		PersistenceType:    "file",
		PersistenceOptions: fmt.Sprintf(`{"dir":%q}`, dir),
	}
	c, err := NewCalculator(config)
	require.NoError(t, err)
	v, err := c.Power(context.Background(), 3, 5)
	require.NoError(t, err)
	require.Equal(t, int32(243), v)
	require.NoError(t, c.Close())

	// a new calculator on the same directory sees the stored result
	c = newTestCalculator(t, config)
	v, err = c.Power(context.Background(), 3, 5)
	require.NoError(t, err)
	require.Equal(t, int32(243), v)
	require.Equal(t, Stats{Hits: 1}, c.Stats())
}

func TestBatch(t *testing.T) {
	c := newTestCalculator(t, Config{Concurrency: 3})

	var reqs []Request
	for e := int32(0); e < 40; e++ {
		reqs = append(reqs, Request{Op: OpPow, Base: 2, Exponent: e})
	}
	reqs = append(reqs, Request{Op: OpMod, Base: 10, Exponent: 0})

	results := c.Batch(context.Background(), reqs)
	require.Len(t, results, len(reqs))
	for e := int32(0); e < 40; e++ {
		r := results[e]
		require.Equal(t, e, r.Exponent)
		require.Equal(t, "fail", r.Policy)
		if e < 31 {
			require.NoError(t, r.Err)
			require.Equal(t, int32(1)<<e, r.Value)
		} else {
			require.ErrorIs(t, r.Err, arith.ErrOverflow)
			require.NotEmpty(t, r.Error)
		}
	}
	last := results[len(results)-1]
	require.ErrorIs(t, last.Err, arith.ErrDivisionByZero)
	require.Empty(t, last.Policy)
}
