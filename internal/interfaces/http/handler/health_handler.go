package handler

import (
	"context"
	"time"

	"github.com/erp/usability/internal/infrastructure/persistence"
	"github.com/erp/usability/internal/interfaces/http/router"
	"github.com/gin-gonic/gin"
)

// DatabaseProbe checks the database and reports its connection pool
type DatabaseProbe interface {
	Ping(ctx context.Context) error
	Stats() (persistence.ConnectionStats, error)
}

// HealthResponse reports service liveness
type HealthResponse struct {
	Status   string     `json:"status"`
	Database string     `json:"database"`
	Pool     *PoolStats `json:"pool,omitempty"`
}

// PoolStats is the database connection pool snapshot
type PoolStats struct {
	MaxOpen      int    `json:"max_open"`
	Open         int    `json:"open"`
	InUse        int    `json:"in_use"`
	Idle         int    `json:"idle"`
	WaitCount    int64  `json:"wait_count"`
	WaitDuration string `json:"wait_duration"`
}

// HealthHandler serves the health check
type HealthHandler struct {
	BaseHandler
	db      DatabaseProbe
	timeout time.Duration
}

// NewHealthHandler creates a new HealthHandler
func NewHealthHandler(db DatabaseProbe) *HealthHandler {
	return &HealthHandler{db: db, timeout: 2 * time.Second}
}

// RegisterRoutes implements router.RouteRegistrar
func (h *HealthHandler) RegisterRoutes(rg *gin.RouterGroup) {
	router.NewDomainGroup("health", "/health").
		GET("", h.Health).
		RegisterRoutes(rg)
}

// Health godoc
// @Summary      Service health
// @Tags         system
// @Produce      json
// @Success      200 {object} dto.Response{data=HealthResponse}
// @Failure      503 {object} dto.Response
// @Router       /health [get]
func (h *HealthHandler) Health(c *gin.Context) {
	ctx, cancel := context.WithTimeout(c.Request.Context(), h.timeout)
	defer cancel()

	if err := h.db.Ping(ctx); err != nil {
		_ = c.Error(err)
		h.ServiceUnavailable(c, "database unreachable")
		return
	}

	resp := HealthResponse{Status: "ok", Database: "ok"}
	// Pool stats are best effort
	if stats, err := h.db.Stats(); err == nil {
		resp.Pool = &PoolStats{
			MaxOpen:      stats.MaxOpenConnections,
			Open:         stats.OpenConnections,
			InUse:        stats.InUse,
			Idle:         stats.Idle,
			WaitCount:    stats.WaitCount,
			WaitDuration: stats.WaitDuration.String(),
		}
	}
	h.Success(c, resp)
}

var _ DatabaseProbe = (*persistence.Database)(nil)
