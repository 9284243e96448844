package handler

import (
	"context"

	inventoryapp "github.com/erp/usability/internal/application/inventory"
	"github.com/erp/usability/internal/domain/shared"
	"github.com/erp/usability/internal/interfaces/http/router"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// InventoryUseCase lists adjustments and edits their lines
type InventoryUseCase interface {
	List(ctx context.Context, filter shared.Filter) ([]inventoryapp.InventoryResponse, int64, error)
	UpdateLine(ctx context.Context, id uuid.UUID, req inventoryapp.UpdateInventoryLineRequest) (*inventoryapp.InventoryLineResponse, error)
}

var _ InventoryUseCase = (*inventoryapp.StockInventoryService)(nil)

// InventoryHandler handles inventory adjustment endpoints
type InventoryHandler struct {
	BaseHandler
	inventories InventoryUseCase
}

// NewInventoryHandler creates a new InventoryHandler
func NewInventoryHandler(inventories InventoryUseCase) *InventoryHandler {
	return &InventoryHandler{inventories: inventories}
}

// RegisterRoutes implements router.RouteRegistrar
func (h *InventoryHandler) RegisterRoutes(rg *gin.RouterGroup) {
	router.NewDomainGroup("inventories", "/inventories").
		GET("", h.List).
		RegisterRoutes(rg)
	router.NewDomainGroup("inventory-lines", "/inventory-lines").
		PATCH("/:id", h.UpdateLine).
		RegisterRoutes(rg)
}

// List godoc
// @Summary      List inventory adjustments
// @Tags         inventories
// @Produce      json
// @Param        page query int false "Page number" default(1)
// @Param        page_size query int false "Page size" default(20)
// @Param        search query string false "Name filter"
// @Success      200 {object} dto.Response{data=[]inventoryapp.InventoryResponse,meta=dto.Meta}
// @Router       /inventories [get]
func (h *InventoryHandler) List(c *gin.Context) {
	req, ok := h.bindList(c)
	if !ok {
		return
	}
	filter := req.ToFilter()
	inventories, total, err := h.inventories.List(c.Request.Context(), filter)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.SuccessWithMeta(c, inventories, total, filter.Page, filter.Limit())
}

// UpdateLine godoc
// @Summary      Edit an inventory adjustment line
// @Description  Lines of a done adjustment are read-only. inventory_location_id is never writable.
// @Tags         inventories
// @Accept       json
// @Produce      json
// @Param        id path string true "Line ID" format(uuid)
// @Param        request body inventoryapp.UpdateInventoryLineRequest true "Changes"
// @Success      200 {object} dto.Response{data=inventoryapp.InventoryLineResponse}
// @Failure      404 {object} dto.Response
// @Failure      422 {object} dto.Response
// @Router       /inventory-lines/{id} [patch]
func (h *InventoryHandler) UpdateLine(c *gin.Context) {
	id, ok := h.parseID(c)
	if !ok {
		return
	}
	var req inventoryapp.UpdateInventoryLineRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.ValidationError(c, err)
		return
	}
	resp, err := h.inventories.UpdateLine(c.Request.Context(), id, req)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, resp)
}
