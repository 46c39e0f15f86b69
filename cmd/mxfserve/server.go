// Package main implements mxfserve, a read-only HTTP façade over
// header.New: upload bytes once, then query the resolved partition by
// the digest the upload returned. There is no mutation route.
package main

import (
	"fmt"
	"net/http"

	"github.com/gin-contrib/pprof"
	"github.com/gin-gonic/gin"

	"github.com/ugparu/mxfheader/cache"
	"github.com/ugparu/mxfheader/utils/logger"
)

// Server wraps the gin engine and cache that back mxfserve. It
// implements lifecycle.Instance so its start/stop is managed the same
// way the teacher wraps its long-running HTTP servers.
type Server struct {
	addr   string
	engine *gin.Engine
	http   *http.Server
	cache  *cache.Cache
}

// NewServer builds a Server listening on addr, backed by a cache
// bounded to maxCacheEntries partitions.
func NewServer(addr string, maxCacheEntries int) *Server {
	gin.SetMode(gin.ReleaseMode)

	s := &Server{
		addr:   addr,
		engine: gin.New(),
		cache:  cache.New(maxCacheEntries),
	}

	s.engine.Use(gin.Recovery())
	pprof.Register(s.engine)
	s.routes()

	s.http = &http.Server{
		Addr:    addr,
		Handler: s.engine,
	}
	return s
}

func (s *Server) routes() {
	s.engine.POST("/partitions", s.handleUpload)
	s.engine.GET("/partitions/:digest", s.handleGet)
	s.engine.GET("/partitions/:digest/packages", s.handlePackages)
	s.engine.GET("/partitions/:digest/duration", s.handleDuration)
}

// String satisfies lifecycle.Instance.
func (s *Server) String() string { return fmt.Sprintf("mxfserve(%s)", s.addr) }

// Close_ satisfies lifecycle.Instance.
func (s *Server) Close_() {
	logger.Warningf(s, "stopping and closing")
	_ = s.http.Close()
}

// ListenAndServe blocks until the server is closed. It is the
// function lifecycle.Manager.Start invokes.
func (s *Server) ListenAndServe() error {
	logger.Infof(s, "starting listening on %s", s.addr)
	if err := s.http.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		return err
	}
	return nil
}
