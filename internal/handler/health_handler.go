package handler

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
	"github.com/stemsi/campus-api/internal/response"
)

const healthTimeout = 2 * time.Second

// Pinger reports whether a backing service is reachable.
type Pinger interface {
	Ping(ctx context.Context) error
}

// PingFunc adapts a function to Pinger.
type PingFunc func(ctx context.Context) error

func (f PingFunc) Ping(ctx context.Context) error { return f(ctx) }

// HealthHandler checks the database and, when configured, Redis.
type HealthHandler struct {
	db    Pinger
	cache Pinger
}

// NewHealthHandler creates a HealthHandler. cache may be nil.
func NewHealthHandler(db Pinger, cache Pinger) *HealthHandler {
	return &HealthHandler{db: db, cache: cache}
}

// Health godoc
// GET /health
func (h *HealthHandler) Health(c *gin.Context) {
	ctx, cancel := context.WithTimeout(c.Request.Context(), healthTimeout)
	defer cancel()

	checks := map[string]Pinger{"postgres": h.db}
	if h.cache != nil {
		checks["redis"] = h.cache
	}
	for name, p := range checks {
		if err := p.Ping(ctx); err != nil {
			zerolog.Ctx(c.Request.Context()).Warn().Err(err).Str("dependency", name).Msg("Health check failed")
			response.Success(c, http.StatusServiceUnavailable, gin.H{"status": "unavailable"})
			return
		}
	}
	response.Success(c, http.StatusOK, gin.H{"status": "ok"})
}
