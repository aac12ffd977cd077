// Package server - Haupt-Router und Server-Setup fuer etagger
// Beinhaltet: Server-Struct, Router-Registrierung, Tag- und Config-Handler
package server

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net"
	"net/http"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"github.com/etagger/etagger/api"
	"github.com/etagger/etagger/config"
	"github.com/etagger/etagger/envconfig"
	"github.com/etagger/etagger/input"
	"github.com/etagger/etagger/version"
)

var mode string = gin.DebugMode

// Tagger ist die Inferenz-Schnittstelle, die der Server bedient
type Tagger interface {
	Tag(ctx context.Context, sentences []input.Sentence) ([][]string, error)
	Config() config.Snapshot
	Tags() []string
}

// Server verwaltet den HTTP-Server fuer eine Session
type Server struct {
	addr   net.Addr
	tagger Tagger
}

func init() {
	switch mode {
	case gin.DebugMode:
	case gin.ReleaseMode:
	case gin.TestMode:
	default:
		mode = gin.DebugMode
	}

	gin.SetMode(mode)
}

// NewServer erstellt einen Server fuer den gegebenen Tagger
func NewServer(addr net.Addr, t Tagger) *Server {
	return &Server{addr: addr, tagger: t}
}

// GenerateRoutes erstellt und konfiguriert den HTTP-Router
func (s *Server) GenerateRoutes() http.Handler {
	corsConfig := cors.DefaultConfig()
	corsConfig.AllowWildcard = true
	corsConfig.AllowBrowserExtensions = true
	corsConfig.AllowHeaders = []string{
		"Authorization",
		"Content-Type",
		"User-Agent",
		"Accept",
		"X-Requested-With",
		RequestIDHeader,
	}
	corsConfig.ExposeHeaders = []string{RequestIDHeader}
	corsConfig.AllowOrigins = envconfig.AllowedOrigins()

	r := gin.New()
	r.HandleMethodNotAllowed = true
	r.Use(
		gin.Recovery(),
		cors.New(corsConfig),
		allowedHostsMiddleware(s.addr),
		requestIDMiddleware(),
	)

	// General
	r.HEAD("/", func(c *gin.Context) { c.String(http.StatusOK, "etagger is running") })
	r.GET("/", func(c *gin.Context) { c.String(http.StatusOK, "etagger is running") })
	r.HEAD("/api/version", func(c *gin.Context) { c.JSON(http.StatusOK, gin.H{"version": version.Version}) })
	r.GET("/api/version", func(c *gin.Context) { c.JSON(http.StatusOK, gin.H{"version": version.Version}) })

	// Inferenz
	r.GET("/api/config", s.ConfigHandler)
	r.POST("/api/tag", s.TagHandler)

	return r
}

// ConfigHandler gibt die Hyperparameter des geladenen Modells zurueck
func (s *Server) ConfigHandler(c *gin.Context) {
	c.JSON(http.StatusOK, api.ConfigResponse{Config: s.tagger.Config(), Tags: s.tagger.Tags()})
}

// TagHandler verarbeitet /api/tag Anfragen
func (s *Server) TagHandler(c *gin.Context) {
	checkpointStart := time.Now()

	var req api.TagRequest
	err := c.ShouldBindJSON(&req)
	switch {
	case errors.Is(err, io.EOF):
		c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{"error": "missing request body"})
		return
	case err != nil:
		c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if limit := int(envconfig.MaxBatchSize()); limit > 0 && len(req.Sentences) > limit {
		c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{"error": fmt.Sprintf("too many sentences: %d > %d", len(req.Sentences), limit)})
		return
	}

	timeout := envconfig.RequestTimeout()
	if req.Timeout != nil && req.Timeout.Duration > 0 {
		timeout = min(timeout, req.Timeout.Duration)
	}

	ctx, cancel := context.WithTimeout(c.Request.Context(), timeout)
	defer cancel()

	tags, err := s.tagger.Tag(ctx, req.Input())
	switch {
	case errors.Is(err, context.DeadlineExceeded):
		c.AbortWithStatusJSON(http.StatusGatewayTimeout, gin.H{"error": "request timed out"})
		return
	case errors.Is(err, context.Canceled):
		c.AbortWithStatusJSON(499, gin.H{"error": "request canceled"})
		return
	case err != nil:
		c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, api.TagResponse{
		Tags:          tags,
		TotalDuration: time.Since(checkpointStart),
	})
}
