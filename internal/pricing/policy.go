package pricing

import (
	"context"
	"math"
	"sync/atomic"
)

// Policy supplies the suggested price per gallon for new quotes. The shipped
// implementations are a fixed rate and a cached rate kept fresh by the price
// feed refresher; a real pricing algorithm plugs in here.
type Policy interface {
	PricePerGallon(ctx context.Context) float64
}

// FixedPolicy always returns the configured rate.
type FixedPolicy struct {
	rate float64
}

// NewFixedPolicy creates a policy with a constant price per gallon.
func NewFixedPolicy(rate float64) *FixedPolicy {
	return &FixedPolicy{rate: rate}
}

// PricePerGallon returns the fixed rate.
func (p *FixedPolicy) PricePerGallon(context.Context) float64 {
	return p.rate
}

// CachedRate holds the current rate, seeded with a fallback and updated by
// the price feed refresher. Reads and writes are lock-free.
type CachedRate struct {
	bits atomic.Uint64
}

// NewCachedRate seeds the cache with the given rate.
func NewCachedRate(seed float64) *CachedRate {
	c := &CachedRate{}
	c.Set(seed)
	return c
}

// Set stores a new rate. Non-positive rates are ignored so a broken feed
// cannot zero out pricing.
func (c *CachedRate) Set(rate float64) {
	if rate <= 0 {
		return
	}
	c.bits.Store(math.Float64bits(rate))
}

// PricePerGallon returns the most recently stored rate.
func (c *CachedRate) PricePerGallon(context.Context) float64 {
	return math.Float64frombits(c.bits.Load())
}

var (
	_ Policy = (*FixedPolicy)(nil)
	_ Policy = (*CachedRate)(nil)
)
