package handler

import (
	"context"

	inventoryapp "github.com/erp/usability/internal/application/inventory"
	"github.com/erp/usability/internal/interfaces/http/router"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// ReferenceUseCase reads incoterms and procurement groups
type ReferenceUseCase interface {
	Incoterms(ctx context.Context) ([]inventoryapp.IncotermResponse, error)
	GroupPickings(ctx context.Context, groupID uuid.UUID) ([]inventoryapp.PickingResponse, error)
}

var _ ReferenceUseCase = (*inventoryapp.ReferenceService)(nil)

// ReferenceHandler handles incoterm and procurement group endpoints
type ReferenceHandler struct {
	BaseHandler
	refs ReferenceUseCase
}

// NewReferenceHandler creates a new ReferenceHandler
func NewReferenceHandler(refs ReferenceUseCase) *ReferenceHandler {
	return &ReferenceHandler{refs: refs}
}

// RegisterRoutes implements router.RouteRegistrar
func (h *ReferenceHandler) RegisterRoutes(rg *gin.RouterGroup) {
	router.NewDomainGroup("incoterms", "/incoterms").
		GET("", h.Incoterms).
		RegisterRoutes(rg)
	router.NewDomainGroup("procurement-groups", "/procurement-groups").
		GET("/:id/pickings", h.GroupPickings).
		RegisterRoutes(rg)
}

// Incoterms godoc
// @Summary      List incoterms with display names
// @Tags         incoterms
// @Produce      json
// @Success      200 {object} dto.Response{data=[]inventoryapp.IncotermResponse}
// @Router       /incoterms [get]
func (h *ReferenceHandler) Incoterms(c *gin.Context) {
	incoterms, err := h.refs.Incoterms(c.Request.Context())
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, incoterms)
}

// GroupPickings godoc
// @Summary      Transfers of a procurement group
// @Tags         procurement-groups
// @Produce      json
// @Param        id path string true "Group ID" format(uuid)
// @Success      200 {object} dto.Response{data=[]inventoryapp.PickingResponse}
// @Failure      404 {object} dto.Response
// @Router       /procurement-groups/{id}/pickings [get]
func (h *ReferenceHandler) GroupPickings(c *gin.Context) {
	id, ok := h.parseID(c)
	if !ok {
		return
	}
	pickings, err := h.refs.GroupPickings(c.Request.Context(), id)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, pickings)
}
