package handler

import (
	"context"

	inventoryapp "github.com/erp/usability/internal/application/inventory"
	"github.com/erp/usability/internal/domain/inventory"
	"github.com/erp/usability/internal/interfaces/http/router"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// OrderpointUseCase prefills and creates reordering rules
type OrderpointUseCase interface {
	Defaults(ctx context.Context, locationID uuid.UUID) (inventory.OrderpointDefaults, error)
	Create(ctx context.Context, req inventoryapp.CreateOrderpointRequest) (*inventoryapp.OrderpointResponse, error)
}

var _ OrderpointUseCase = (*inventoryapp.OrderpointService)(nil)

// OrderpointDefaultsQuery selects the location a new rule is created from
type OrderpointDefaultsQuery struct {
	LocationID string `form:"location_id" binding:"required,uuid"`
}

// OrderpointHandler handles reordering rule endpoints
type OrderpointHandler struct {
	BaseHandler
	orderpoints OrderpointUseCase
}

// NewOrderpointHandler creates a new OrderpointHandler
func NewOrderpointHandler(orderpoints OrderpointUseCase) *OrderpointHandler {
	return &OrderpointHandler{orderpoints: orderpoints}
}

// RegisterRoutes implements router.RouteRegistrar
func (h *OrderpointHandler) RegisterRoutes(rg *gin.RouterGroup) {
	router.NewDomainGroup("orderpoints", "/orderpoints").
		GET("/defaults", h.Defaults).
		POST("", h.Create).
		RegisterRoutes(rg)
}

// Defaults godoc
// @Summary      Prefilled fields for a new reordering rule
// @Tags         orderpoints
// @Produce      json
// @Param        location_id query string true "Location ID" format(uuid)
// @Success      200 {object} dto.Response{data=inventoryapp.OrderpointDefaultsResponse}
// @Failure      400 {object} dto.Response
// @Failure      404 {object} dto.Response
// @Router       /orderpoints/defaults [get]
func (h *OrderpointHandler) Defaults(c *gin.Context) {
	var query OrderpointDefaultsQuery
	if err := c.ShouldBindQuery(&query); err != nil {
		h.ValidationError(c, err)
		return
	}
	locationID, err := uuid.Parse(query.LocationID)
	if err != nil {
		h.BadRequest(c, "Invalid location_id format")
		return
	}
	defaults, err := h.orderpoints.Defaults(c.Request.Context(), locationID)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, inventoryapp.OrderpointDefaultsResponse{
		WarehouseID: defaults.WarehouseID,
		LocationID:  defaults.LocationID,
	})
}

// Create godoc
// @Summary      Create a reordering rule
// @Tags         orderpoints
// @Accept       json
// @Produce      json
// @Param        request body inventoryapp.CreateOrderpointRequest true "Rule"
// @Success      201 {object} dto.Response{data=inventoryapp.OrderpointResponse}
// @Failure      400 {object} dto.Response
// @Failure      409 {object} dto.Response
// @Router       /orderpoints [post]
func (h *OrderpointHandler) Create(c *gin.Context) {
	var req inventoryapp.CreateOrderpointRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.ValidationError(c, err)
		return
	}
	resp, err := h.orderpoints.Create(c.Request.Context(), req)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Created(c, resp)
}
