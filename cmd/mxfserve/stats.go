package main

import (
	"time"

	"github.com/ugparu/mxfheader/cache"
	"github.com/ugparu/mxfheader/utils/lifecycle"
	"github.com/ugparu/mxfheader/utils/logger"
)

// statsReporter periodically logs the cache's occupancy. It runs as a
// lifecycle.AsyncInstance under a fail-safe manager: a panic logging a
// line should never take the server down.
type statsReporter struct {
	cache    *cache.Cache
	interval time.Duration
}

func (r *statsReporter) String() string { return "mxfserve-stats" }

func (r *statsReporter) Close_() {}

// Step waits interval, then logs the cache's current size. Returning
// a *lifecycle.BreakError on stopChan closure ends the reporting loop
// cleanly.
func (r *statsReporter) Step(stopChan <-chan struct{}) error {
	select {
	case <-stopChan:
		return &lifecycle.BreakError{}
	case <-time.After(r.interval):
		logger.Infof(r, "cache holds %d partitions", r.cache.Len())
		return nil
	}
}

func startStatsReporter(c *cache.Cache, interval time.Duration) lifecycle.AsyncManager[*statsReporter] {
	mgr := lifecycle.NewFailSafeAsyncManager[*statsReporter](&statsReporter{cache: c, interval: interval})
	_ = mgr.Start(func(*statsReporter) error { return nil })
	return mgr
}
