package worker

import (
	"context"
	"errors"
	"log/slog"
	"sync"
	"time"

	"github.com/quickfuel/fuelquote/internal/adapter/pricefeed"
	"github.com/quickfuel/fuelquote/internal/pricing"
)

// PriceRefresher periodically pulls the supplier rate and updates the cached
// price used for quoting. With no feed configured it stays idle and the cache
// keeps its fixed rate.
type PriceRefresher struct {
	feed     pricefeed.Client
	rate     *pricing.CachedRate
	interval time.Duration
	logger   *slog.Logger

	wg     sync.WaitGroup
	cancel context.CancelFunc
	mu     sync.Mutex
}

// NewPriceRefresher constructs the rate refresher worker.
func NewPriceRefresher(feed pricefeed.Client, rate *pricing.CachedRate, interval time.Duration, logger *slog.Logger) *PriceRefresher {
	if interval <= 0 {
		interval = time.Minute
	}
	return &PriceRefresher{
		feed:     feed,
		rate:     rate,
		interval: interval,
		logger:   logger,
	}
}

// Start launches background refreshing. No-op when no feed is configured.
func (p *PriceRefresher) Start(ctx context.Context) {
	if p.feed == nil {
		return
	}

	p.mu.Lock()
	defer p.mu.Unlock()

	runCtx, cancel := context.WithCancel(ctx)
	p.cancel = cancel

	p.wg.Add(1)
	go p.run(runCtx)
}

// Stop waits for the refresh loop to finish.
func (p *PriceRefresher) Stop() {
	p.mu.Lock()
	if p.cancel != nil {
		p.cancel()
		p.cancel = nil
	}
	p.mu.Unlock()

	p.wg.Wait()
}

func (p *PriceRefresher) run(ctx context.Context) {
	defer p.wg.Done()
	ticker := time.NewTicker(p.interval)
	defer ticker.Stop()

	p.refresh(ctx)
	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			p.refresh(ctx)
		}
	}
}

func (p *PriceRefresher) refresh(ctx context.Context) {
	rate, err := p.feed.CurrentRate(ctx)
	if err != nil {
		var tooMany pricefeed.TooManyRequestsError
		switch {
		case errors.As(err, &tooMany):
			p.logger.Warn("price feed rate limited", slog.Duration("retry_after", tooMany.RetryAfter))
		case errors.Is(err, pricefeed.ErrFeedUnavailable):
			p.logger.Warn("price feed unavailable, keeping last rate")
		default:
			p.logger.Error("price refresh failed", slog.String("error", err.Error()))
		}
		return
	}

	p.rate.Set(rate)
	p.logger.Info("price per gallon refreshed", slog.Float64("rate", rate))
}
