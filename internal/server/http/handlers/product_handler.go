package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/polkiloo/storefront/internal/domain/model"
	"github.com/polkiloo/storefront/internal/server/http/dto"
)

// ProductHandler manages catalog endpoints.
type ProductHandler struct {
	facade CatalogFacade
}

// NewProductHandler constructs ProductHandler.
func NewProductHandler(facade CatalogFacade) *ProductHandler {
	return &ProductHandler{facade: facade}
}

// Get handles GET /api/products/:id.
func (h *ProductHandler) Get(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.Status(http.StatusBadRequest)
		return
	}
	product, err := h.facade.Product(c.Request.Context(), id)
	if err != nil {
		RespondError(c, err)
		return
	}
	c.JSON(http.StatusOK, toProductResponse(*product))
}

// Search handles GET /api/products/search and GET /api/products.
func (h *ProductHandler) Search(c *gin.Context) {
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "0"))
	offset, _ := strconv.Atoi(c.DefaultQuery("offset", "0"))

	result, err := h.facade.SearchProducts(c.Request.Context(), c.Query("q"), limit, offset)
	if err != nil {
		RespondError(c, err)
		return
	}

	resp := dto.SearchResponse{
		Products: make([]dto.ProductResponse, 0, len(result.Products)),
		Total:    result.Total,
		Limit:    result.Limit,
		Offset:   result.Offset,
	}
	for _, p := range result.Products {
		resp.Products = append(resp.Products, toProductResponse(p))
	}
	c.JSON(http.StatusOK, resp)
}

// Create handles POST /api/admin/products.
func (h *ProductHandler) Create(c *gin.Context) {
	var req dto.ProductRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Status(http.StatusBadRequest)
		return
	}
	product, err := h.facade.CreateProduct(c.Request.Context(), fromProductRequest(req, 0))
	if err != nil {
		RespondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, toProductResponse(*product))
}

// Update handles PUT /api/admin/products/:id.
func (h *ProductHandler) Update(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.Status(http.StatusBadRequest)
		return
	}
	var req dto.ProductRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Status(http.StatusBadRequest)
		return
	}
	if err := h.facade.UpdateProduct(c.Request.Context(), fromProductRequest(req, id)); err != nil {
		RespondError(c, err)
		return
	}
	c.Status(http.StatusOK)
}

// Delete handles DELETE /api/admin/products/:id.
func (h *ProductHandler) Delete(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.Status(http.StatusBadRequest)
		return
	}
	if err := h.facade.DeleteProduct(c.Request.Context(), id); err != nil {
		RespondError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

func fromProductRequest(req dto.ProductRequest, id int64) model.Product {
	return model.Product{
		ID:                id,
		Name:              req.Name,
		Description:       req.Description,
		ImageURL:          req.ImageURL,
		OriginalPrice:     req.OriginalPrice,
		SalePrice:         req.SalePrice,
		Stock:             req.Stock,
		LowStockThreshold: req.LowStockThreshold,
	}
}

func toProductResponse(p model.Product) dto.ProductResponse {
	return dto.ProductResponse{
		ID:                p.ID,
		Name:              p.Name,
		Description:       p.Description,
		ImageURL:          p.ImageURL,
		OriginalPrice:     p.OriginalPrice,
		SalePrice:         p.SalePrice,
		Stock:             p.Stock,
		LowStockThreshold: p.LowStockThreshold,
		CreatedAt:         p.CreatedAt,
		UpdatedAt:         p.UpdatedAt,
	}
}
