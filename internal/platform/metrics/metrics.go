package metrics

import (
	"sync/atomic"
	"time"
)

// Collector keeps cheap atomic request counters for the admin snapshot.
type Collector struct {
	totalRequests   uint64
	errorRequests   uint64
	clientErrors    uint64
	rateLimited     uint64
	totalDurationMs uint64
	cacheHits       uint64
	cacheMisses     uint64
}

func New() *Collector {
	return &Collector{}
}

func (c *Collector) Record(status int, duration time.Duration) {
	atomic.AddUint64(&c.totalRequests, 1)
	switch {
	case status >= 500:
		atomic.AddUint64(&c.errorRequests, 1)
	case status == 429:
		atomic.AddUint64(&c.rateLimited, 1)
	case status >= 400:
		atomic.AddUint64(&c.clientErrors, 1)
	}
	atomic.AddUint64(&c.totalDurationMs, uint64(duration.Milliseconds()))
}

func (c *Collector) CacheHit()  { atomic.AddUint64(&c.cacheHits, 1) }
func (c *Collector) CacheMiss() { atomic.AddUint64(&c.cacheMisses, 1) }

func (c *Collector) Snapshot() map[string]any {
	total := atomic.LoadUint64(&c.totalRequests)
	totalMs := atomic.LoadUint64(&c.totalDurationMs)
	avg := float64(0)
	if total > 0 {
		avg = float64(totalMs) / float64(total)
	}
	return map[string]any{
		"requestsTotal":    total,
		"errorsTotal":      atomic.LoadUint64(&c.errorRequests),
		"clientErrorsTotal": atomic.LoadUint64(&c.clientErrors),
		"rateLimitedTotal": atomic.LoadUint64(&c.rateLimited),
		"avgDurationMs":    avg,
		"totalDurationMs":  totalMs,
		"cacheHits":        atomic.LoadUint64(&c.cacheHits),
		"cacheMisses":      atomic.LoadUint64(&c.cacheMisses),
	}
}
