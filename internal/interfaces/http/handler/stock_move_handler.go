package handler

import (
	"context"

	inventoryapp "github.com/erp/usability/internal/application/inventory"
	"github.com/erp/usability/internal/interfaces/http/router"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// StockMoveUseCase reads and releases stock moves
type StockMoveUseCase interface {
	DisplayName(ctx context.Context, id uuid.UUID) (string, error)
	Unreserve(ctx context.Context, id uuid.UUID) (*inventoryapp.StockMoveResponse, error)
}

var _ StockMoveUseCase = (*inventoryapp.StockMoveService)(nil)

// DisplayNameResponse carries a computed record label
type DisplayNameResponse struct {
	ID          uuid.UUID `json:"id"`
	DisplayName string    `json:"display_name"`
}

// StockMoveHandler handles stock move endpoints
type StockMoveHandler struct {
	BaseHandler
	moves StockMoveUseCase
}

// NewStockMoveHandler creates a new StockMoveHandler
func NewStockMoveHandler(moves StockMoveUseCase) *StockMoveHandler {
	return &StockMoveHandler{moves: moves}
}

// RegisterRoutes implements router.RouteRegistrar
func (h *StockMoveHandler) RegisterRoutes(rg *gin.RouterGroup) {
	router.NewDomainGroup("stock-moves", "/stock-moves").
		GET("/:id/display-name", h.DisplayName).
		POST("/:id/unreserve", h.Unreserve).
		RegisterRoutes(rg)
}

// DisplayName godoc
// @Summary      Display name of a stock move
// @Tags         stock-moves
// @Produce      json
// @Param        id path string true "Move ID" format(uuid)
// @Success      200 {object} dto.Response{data=DisplayNameResponse}
// @Failure      404 {object} dto.Response
// @Router       /stock-moves/{id}/display-name [get]
func (h *StockMoveHandler) DisplayName(c *gin.Context) {
	id, ok := h.parseID(c)
	if !ok {
		return
	}
	name, err := h.moves.DisplayName(c.Request.Context(), id)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, DisplayNameResponse{ID: id, DisplayName: name})
}

// Unreserve godoc
// @Summary      Release the reservation of a stock move
// @Tags         stock-moves
// @Produce      json
// @Param        id path string true "Move ID" format(uuid)
// @Success      200 {object} dto.Response{data=inventoryapp.StockMoveResponse}
// @Failure      404 {object} dto.Response
// @Router       /stock-moves/{id}/unreserve [post]
func (h *StockMoveHandler) Unreserve(c *gin.Context) {
	id, ok := h.parseID(c)
	if !ok {
		return
	}
	resp, err := h.moves.Unreserve(c.Request.Context(), id)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, resp)
}
