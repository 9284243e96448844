package handler

import (
	"context"

	inventoryapp "github.com/erp/usability/internal/application/inventory"
	"github.com/erp/usability/internal/interfaces/http/router"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// PickingUseCase changes transfer state
type PickingUseCase interface {
	ForceAssign(ctx context.Context, id uuid.UUID) (*inventoryapp.PickingResponse, error)
	Unreserve(ctx context.Context, id uuid.UUID) (*inventoryapp.PickingResponse, error)
	Update(ctx context.Context, id uuid.UUID, req inventoryapp.UpdatePickingRequest) (*inventoryapp.PickingResponse, error)
}

var _ PickingUseCase = (*inventoryapp.PickingService)(nil)

// PickingHandler handles transfer endpoints
type PickingHandler struct {
	BaseHandler
	pickings PickingUseCase
}

// NewPickingHandler creates a new PickingHandler
func NewPickingHandler(pickings PickingUseCase) *PickingHandler {
	return &PickingHandler{pickings: pickings}
}

// RegisterRoutes implements router.RouteRegistrar
func (h *PickingHandler) RegisterRoutes(rg *gin.RouterGroup) {
	router.NewDomainGroup("pickings", "/pickings").
		POST("/:id/force-assign", h.ForceAssign).
		POST("/:id/unreserve", h.Unreserve).
		PATCH("/:id", h.Update).
		RegisterRoutes(rg)
}

// ForceAssign godoc
// @Summary      Force availability of a transfer
// @Tags         pickings
// @Produce      json
// @Param        id path string true "Picking ID" format(uuid)
// @Success      200 {object} dto.Response{data=inventoryapp.PickingResponse}
// @Failure      404 {object} dto.Response
// @Failure      422 {object} dto.Response
// @Router       /pickings/{id}/force-assign [post]
func (h *PickingHandler) ForceAssign(c *gin.Context) {
	id, ok := h.parseID(c)
	if !ok {
		return
	}
	resp, err := h.pickings.ForceAssign(c.Request.Context(), id)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, resp)
}

// Unreserve godoc
// @Summary      Release the reservations of a transfer
// @Tags         pickings
// @Produce      json
// @Param        id path string true "Picking ID" format(uuid)
// @Success      200 {object} dto.Response{data=inventoryapp.PickingResponse}
// @Failure      404 {object} dto.Response
// @Router       /pickings/{id}/unreserve [post]
func (h *PickingHandler) Unreserve(c *gin.Context) {
	id, ok := h.parseID(c)
	if !ok {
		return
	}
	resp, err := h.pickings.Unreserve(c.Request.Context(), id)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, resp)
}

// Update godoc
// @Summary      Update the tracked fields of a transfer
// @Tags         pickings
// @Accept       json
// @Produce      json
// @Param        id path string true "Picking ID" format(uuid)
// @Param        request body inventoryapp.UpdatePickingRequest true "Changes"
// @Success      200 {object} dto.Response{data=inventoryapp.PickingResponse}
// @Failure      400 {object} dto.Response
// @Failure      404 {object} dto.Response
// @Router       /pickings/{id} [patch]
func (h *PickingHandler) Update(c *gin.Context) {
	id, ok := h.parseID(c)
	if !ok {
		return
	}
	var req inventoryapp.UpdatePickingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.ValidationError(c, err)
		return
	}
	resp, err := h.pickings.Update(c.Request.Context(), id, req)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, resp)
}
