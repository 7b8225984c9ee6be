package calc

import (
	"context"
	"fmt"
	"sync/atomic"

	"github.com/RonaldMishiev/LocalBolt/arith"
	"github.com/RonaldMishiev/LocalBolt/store"
	"github.com/celer-network/goutils/log"
	"github.com/philippgille/gokv"
	"golang.org/x/sync/errgroup"
)

// Calculator evaluates power and mod requests and memoises successful results
// in a gokv store. It is safe for concurrent use.
type Calculator struct {
	store       gokv.Store
	policy      arith.OverflowPolicy
	concurrency int

	hits   atomic.Uint64
	misses atomic.Uint64
}

type Stats struct {
	Hits   uint64
	Misses uint64
}

func NewCalculator(config Config) (*Calculator, error) {
	policy, err := config.GetPolicy()
	if err != nil {
		return nil, err
	}
	s, err := store.InitStore(config.PersistenceType, config.GetPersistenceOptions())
	if err != nil {
		return nil, fmt.Errorf("InitStore err: %w", err)
	}
	log.Debugf("new calculator, persistence: %q, policy: %s", config.PersistenceType, policy)
	return &Calculator{
		store:       s,
		policy:      policy,
		concurrency: config.GetConcurrency(),
	}, nil
}

func (c *Calculator) Close() error {
	return c.store.Close()
}

func (c *Calculator) Policy() arith.OverflowPolicy {
	return c.policy
}

func (c *Calculator) Stats() Stats {
	return Stats{Hits: c.hits.Load(), Misses: c.misses.Load()}
}

// Power computes base^exponent with the calculator's default overflow policy
func (c *Calculator) Power(ctx context.Context, base, exponent int32) (int32, error) {
	return c.PowerWithPolicy(ctx, base, exponent, c.policy)
}

func (c *Calculator) PowerWithPolicy(ctx context.Context, base, exponent int32, policy arith.OverflowPolicy) (int32, error) {
	key, err := storeKey(OpPow, base, exponent, policy.String())
	if err != nil {
		return 0, err
	}
	return c.memo(ctx, key, func() (int32, error) {
		return arith.PowerWithPolicy(base, exponent, policy)
	})
}

func (c *Calculator) Mod(ctx context.Context, a, b int32) (int32, error) {
	key, err := storeKey(OpMod, a, b, "")
	if err != nil {
		return 0, err
	}
	return c.memo(ctx, key, func() (int32, error) {
		return arith.Mod(a, b)
	})
}

// Eval dispatches a request on its Op
func (c *Calculator) Eval(ctx context.Context, req Request) (int32, error) {
	switch req.Op {
	case OpPow:
		policy := c.policy
		if req.Policy != "" {
			p, err := arith.ParsePolicy(req.Policy)
			if err != nil {
				return 0, err
			}
			policy = p
		}
		return c.PowerWithPolicy(ctx, req.Base, req.Exponent, policy)
	case OpMod:
		return c.Mod(ctx, req.Base, req.Exponent)
	default:
		return 0, fmt.Errorf("%w: unknown op %q", arith.ErrInvalidArgument, req.Op)
	}
}

// Batch evaluates reqs concurrently. Results are in the order of reqs and
// carry their own errors.
func (c *Calculator) Batch(ctx context.Context, reqs []Request) []Result {
	results := make([]Result, len(reqs))
	var g errgroup.Group
	g.SetLimit(c.concurrency)
	for i, req := range reqs {
		i, req := i, req
		if req.Op == OpPow && req.Policy == "" {
			req.Policy = c.policy.String()
		}
		g.Go(func() error {
			v, err := c.Eval(ctx, req)
			results[i] = Result{Request: req, Value: v, Err: err}
			if err != nil {
				results[i].Error = err.Error()
			}
			return nil
		})
	}
	_ = g.Wait()
	return results
}

// memo returns the stored value under key or computes and stores it. Failed
// computations are not stored.
func (c *Calculator) memo(ctx context.Context, key string, compute func() (int32, error)) (int32, error) {
	if err := ctx.Err(); err != nil {
		return 0, err
	}
	var entry Entry
	found, err := c.store.Get(key, &entry)
	if err != nil {
		return 0, fmt.Errorf("store.Get err: %w", err)
	}
	if found {
		c.hits.Add(1)
		return entry.Value, nil
	}
	c.misses.Add(1)
	v, err := compute()
	if err != nil {
		return 0, err
	}
	if err = c.store.Set(key, Entry{Value: v}); err != nil {
		log.Errorf("failed to store result %s: %s", key, err.Error())
	}
	return v, nil
}
