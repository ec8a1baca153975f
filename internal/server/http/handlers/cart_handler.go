package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/polkiloo/storefront/internal/domain/model"
	"github.com/polkiloo/storefront/internal/server/http/dto"
)

// CartHandler manages the authenticated user's cart.
type CartHandler struct {
	facade CartFacade
}

// NewCartHandler constructs CartHandler.
func NewCartHandler(facade CartFacade) *CartHandler {
	return &CartHandler{facade: facade}
}

// Get handles GET /api/user/cart.
func (h *CartHandler) Get(c *gin.Context) {
	cart, err := h.facade.Cart(c.Request.Context(), CurrentUserID(c))
	if err != nil {
		RespondError(c, err)
		return
	}
	c.JSON(http.StatusOK, toCartResponse(*cart))
}

// Replace handles PUT /api/user/cart.
func (h *CartHandler) Replace(c *gin.Context) {
	var req dto.CartRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Status(http.StatusBadRequest)
		return
	}

	if err := h.facade.ReplaceCart(c.Request.Context(), CurrentUserID(c), toCartItems(req.Items)); err != nil {
		RespondError(c, err)
		return
	}
	c.Status(http.StatusOK)
}

// GetGuest handles GET /api/guest/cart?session_id=S.
func (h *CartHandler) GetGuest(c *gin.Context) {
	sessionID := c.Query("session_id")
	if sessionID == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "session_id is required"})
		return
	}

	cart, err := h.facade.GuestCart(c.Request.Context(), sessionID)
	if err != nil {
		RespondError(c, err)
		return
	}
	c.JSON(http.StatusOK, toCartResponse(*cart))
}

// ReplaceGuest handles PUT /api/guest/cart.
func (h *CartHandler) ReplaceGuest(c *gin.Context) {
	var req dto.GuestCartRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Status(http.StatusBadRequest)
		return
	}
	if req.SessionID == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "session_id is required"})
		return
	}

	if err := h.facade.ReplaceGuestCart(c.Request.Context(), req.SessionID, toCartItems(req.Items)); err != nil {
		RespondError(c, err)
		return
	}
	c.Status(http.StatusOK)
}

// Merge handles POST /api/user/cart/merge.
func (h *CartHandler) Merge(c *gin.Context) {
	var req dto.MergeCartRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Status(http.StatusBadRequest)
		return
	}
	if req.SessionID == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "session_id is required"})
		return
	}

	cart, err := h.facade.MergeCart(c.Request.Context(), req.SessionID, CurrentUserID(c))
	if err != nil {
		RespondError(c, err)
		return
	}
	c.JSON(http.StatusOK, toCartResponse(*cart))
}

func toCartItems(payload []dto.CartItemPayload) []model.CartItem {
	items := make([]model.CartItem, 0, len(payload))
	for _, item := range payload {
		items = append(items, model.CartItem{
			ProductID: item.ProductID,
			Name:      item.Name,
			UnitPrice: item.UnitPrice,
			Quantity:  item.Quantity,
			ImageURL:  item.ImageURL,
		})
	}
	return items
}

func toCartResponse(cart model.Cart) dto.CartResponse {
	items := make([]dto.CartItemPayload, 0, len(cart.Items))
	for _, item := range cart.Items {
		items = append(items, dto.CartItemPayload{
			ProductID: item.ProductID,
			Name:      item.Name,
			UnitPrice: item.UnitPrice,
			Quantity:  item.Quantity,
			ImageURL:  item.ImageURL,
		})
	}
	return dto.CartResponse{Items: items}
}
