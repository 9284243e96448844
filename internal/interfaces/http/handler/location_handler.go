package handler

import (
	"context"

	inventoryapp "github.com/erp/usability/internal/application/inventory"
	"github.com/erp/usability/internal/interfaces/http/router"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// LocationUseCase reads location contents
type LocationUseCase interface {
	Quants(ctx context.Context, locationID uuid.UUID) ([]inventoryapp.QuantResponse, error)
	EmptyInternal(ctx context.Context) ([]inventoryapp.LocationResponse, error)
}

var _ LocationUseCase = (*inventoryapp.LocationService)(nil)

// LocationHandler handles location endpoints
type LocationHandler struct {
	BaseHandler
	locations LocationUseCase
}

// NewLocationHandler creates a new LocationHandler
func NewLocationHandler(locations LocationUseCase) *LocationHandler {
	return &LocationHandler{locations: locations}
}

// RegisterRoutes implements router.RouteRegistrar
func (h *LocationHandler) RegisterRoutes(rg *gin.RouterGroup) {
	router.NewDomainGroup("locations", "/locations").
		GET("/empty", h.Empty).
		GET("/:id/quants", h.Quants).
		RegisterRoutes(rg)
}

// Quants lists the quants stored at a location
func (h *LocationHandler) Quants(c *gin.Context) {
	id, ok := h.parseID(c)
	if !ok {
		return
	}
	quants, err := h.locations.Quants(c.Request.Context(), id)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, quants)
}

// Empty lists internal locations holding no quants
func (h *LocationHandler) Empty(c *gin.Context) {
	locations, err := h.locations.EmptyInternal(c.Request.Context())
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, locations)
}
