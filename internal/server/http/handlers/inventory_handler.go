package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/polkiloo/storefront/internal/domain/repository"
	"github.com/polkiloo/storefront/internal/server/http/dto"
)

// InventoryHandler manages admin inventory endpoints.
type InventoryHandler struct {
	facade CatalogFacade
}

// NewInventoryHandler constructs InventoryHandler.
func NewInventoryHandler(facade CatalogFacade) *InventoryHandler {
	return &InventoryHandler{facade: facade}
}

// UpdateStock handles PUT /api/admin/inventory/stock.
func (h *InventoryHandler) UpdateStock(c *gin.Context) {
	var req dto.UpdateStockRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Status(http.StatusBadRequest)
		return
	}
	if err := h.facade.SetStock(c.Request.Context(), req.ProductID, req.Stock); err != nil {
		RespondError(c, err)
		return
	}
	c.Status(http.StatusOK)
}

// BulkUpdateStock handles PUT /api/admin/inventory/stock/bulk.
func (h *InventoryHandler) BulkUpdateStock(c *gin.Context) {
	var req dto.BulkUpdateStockRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Status(http.StatusBadRequest)
		return
	}
	if len(req.Updates) == 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "updates must not be empty"})
		return
	}

	updates := make([]repository.StockUpdate, 0, len(req.Updates))
	for _, u := range req.Updates {
		updates = append(updates, repository.StockUpdate{ProductID: u.ProductID, Stock: u.Stock})
	}
	if err := h.facade.BulkSetStock(c.Request.Context(), updates); err != nil {
		RespondError(c, err)
		return
	}
	c.Status(http.StatusOK)
}

// SetStockAlert handles PUT /api/admin/inventory/alerts.
func (h *InventoryHandler) SetStockAlert(c *gin.Context) {
	var req dto.StockAlertRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Status(http.StatusBadRequest)
		return
	}
	if err := h.facade.SetStockAlert(c.Request.Context(), req.ProductID, req.Threshold); err != nil {
		RespondError(c, err)
		return
	}
	c.Status(http.StatusOK)
}

// Report handles GET /api/admin/inventory/report. Lists products at or below
// their low-stock threshold.
func (h *InventoryHandler) Report(c *gin.Context) {
	products, err := h.facade.InventoryReport(c.Request.Context())
	if err != nil {
		RespondError(c, err)
		return
	}
	if len(products) == 0 {
		c.Status(http.StatusNoContent)
		return
	}

	resp := make([]dto.ProductResponse, 0, len(products))
	for _, p := range products {
		resp = append(resp, toProductResponse(p))
	}
	c.JSON(http.StatusOK, resp)
}

// CreateRestock handles POST /api/admin/inventory/restock.
func (h *InventoryHandler) CreateRestock(c *gin.Context) {
	var req dto.RestockRequestPayload
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Status(http.StatusBadRequest)
		return
	}

	restock, err := h.facade.CreateRestockRequest(c.Request.Context(), req.ProductID, req.Quantity, req.Note)
	if err != nil {
		RespondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, dto.RestockResponse{
		ID:        restock.ID,
		ProductID: restock.ProductID,
		Quantity:  restock.Quantity,
		Note:      restock.Note,
		Status:    string(restock.Status),
		CreatedAt: restock.CreatedAt,
	})
}
