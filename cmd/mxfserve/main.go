package main

import (
	"flag"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/ugparu/mxfheader/utils/lifecycle"
)

func main() {
	addr := flag.String("addr", ":8080", "listen address")
	maxCacheEntries := flag.Int("cache-entries", 0, "max cached partitions (0 = default)")
	statsInterval := flag.Duration("stats-interval", time.Minute, "cache occupancy log interval")
	flag.Parse()

	server := NewServer(*addr, *maxCacheEntries)
	manager := lifecycle.NewDefaultManager[*Server](server)
	stats := startStatsReporter(server.cache, *statsInterval)

	go func() {
		if err := manager.Start(func(s *Server) error { return s.ListenAndServe() }); err != nil {
			os.Exit(1)
		}
	}()

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)
	<-sigChan

	manager.Close()
	stats.Close()
}
