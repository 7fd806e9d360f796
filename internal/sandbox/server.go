package sandbox

import (
	"log/slog"
	"net/http"
	"sync"
	"time"

	"github.com/gin-gonic/gin"
)

// Server is an offline stand-in for the OpenWeatherMap endpoints the probe uses
type Server struct {
	router   *gin.Engine
	logger   *slog.Logger
	fixtures Fixtures

	mu   sync.Mutex
	hits map[string]int
}

// NewServer creates a sandbox serving the given fixtures
func NewServer(fixtures Fixtures, logger *slog.Logger) *Server {
	if fixtures.ForcedStatus == nil {
		fixtures.ForcedStatus = map[string]int{}
	}

	router := gin.New()
	router.Use(gin.Recovery())

	s := &Server{
		router:   router,
		logger:   logger.With("component", "sandbox"),
		fixtures: fixtures,
		hits:     map[string]int{},
	}

	s.registerRoutes()

	return s
}

// Router exposes the handler, e.g. for httptest.NewServer
func (s *Server) Router() http.Handler {
	return s.router
}

// Run starts the HTTP server
func (s *Server) Run(addr string) error {
	return s.router.Run(addr)
}

// Hits returns how many requests reached an endpoint, authorized or not
func (s *Server) Hits(endpoint string) int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.hits[endpoint]
}

// TotalHits returns the number of requests across the three API endpoints
func (s *Server) TotalHits() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	total := 0
	for _, n := range s.hits {
		total += n
	}
	return total
}

func (s *Server) countHit(endpoint string) gin.HandlerFunc {
	return func(c *gin.Context) {
		s.mu.Lock()
		s.hits[endpoint]++
		s.mu.Unlock()
		c.Next()
	}
}

func (s *Server) logRequests() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()
		s.logger.Info("request",
			"method", c.Request.Method,
			"path", c.Request.URL.Path,
			"status", c.Writer.Status(),
			"duration", time.Since(start),
		)
	}
}

func unixToText(dt int64) string {
	return time.Unix(dt, 0).UTC().Format(time.DateTime)
}
