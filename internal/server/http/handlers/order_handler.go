package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/polkiloo/storefront/internal/domain/model"
	"github.com/polkiloo/storefront/internal/server/http/dto"
	"github.com/polkiloo/storefront/internal/usecase"
)

// OrderHandler manages order-related endpoints.
type OrderHandler struct {
	facade OrderFacade
}

// NewOrderHandler constructs OrderHandler.
func NewOrderHandler(facade OrderFacade) *OrderHandler {
	return &OrderHandler{facade: facade}
}

// Place handles POST /api/user/orders.
func (h *OrderHandler) Place(c *gin.Context) {
	userID := CurrentUserID(c)

	var req dto.PlaceOrderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Status(http.StatusBadRequest)
		return
	}

	order, err := h.facade.PlaceOrder(c.Request.Context(), placeInput(req, &userID, ""))
	if err != nil {
		RespondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, toOrderResponse(*order))
}

// PlaceGuest handles POST /api/guest/orders.
func (h *OrderHandler) PlaceGuest(c *gin.Context) {
	var req dto.PlaceOrderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Status(http.StatusBadRequest)
		return
	}
	if req.SessionID == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "session_id is required"})
		return
	}

	order, err := h.facade.PlaceOrder(c.Request.Context(), placeInput(req, nil, req.SessionID))
	if err != nil {
		RespondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, toOrderResponse(*order))
}

// List handles GET /api/user/orders.
func (h *OrderHandler) List(c *gin.Context) {
	userID := CurrentUserID(c)
	orders, err := h.facade.Orders(c.Request.Context(), userID)
	if err != nil {
		RespondError(c, err)
		return
	}
	if len(orders) == 0 {
		c.Status(http.StatusNoContent)
		return
	}

	response := make([]dto.OrderResponse, 0, len(orders))
	for _, o := range orders {
		response = append(response, toOrderResponse(o))
	}
	c.JSON(http.StatusOK, response)
}

// Get handles GET /api/user/orders/:number.
func (h *OrderHandler) Get(c *gin.Context) {
	order, err := h.facade.OrderByNumber(c.Request.Context(), c.Param("number"))
	if err != nil {
		RespondError(c, err)
		return
	}
	if !IsAdmin(c) && order.UserID != nil && *order.UserID != CurrentUserID(c) {
		c.Status(http.StatusNotFound)
		return
	}
	c.JSON(http.StatusOK, toOrderResponse(*order))
}

// UpdateStatus handles PATCH /api/admin/orders/:id/status.
func (h *OrderHandler) UpdateStatus(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.Status(http.StatusBadRequest)
		return
	}
	var req dto.UpdateOrderStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Status(http.StatusBadRequest)
		return
	}

	order, err := h.facade.UpdateOrderStatus(c.Request.Context(), id, model.OrderStatus(req.Status))
	if err != nil {
		RespondError(c, err)
		return
	}
	c.JSON(http.StatusOK, toOrderResponse(*order))
}

func placeInput(req dto.PlaceOrderRequest, userID *int64, sessionID string) usecase.PlaceOrderInput {
	items := make([]usecase.PlaceOrderItem, 0, len(req.Items))
	for _, item := range req.Items {
		items = append(items, usecase.PlaceOrderItem{ProductID: item.ProductID, Quantity: item.Quantity})
	}
	return usecase.PlaceOrderInput{
		UserID:    userID,
		SessionID: sessionID,
		Items:     items,
		Address: model.Address{
			Name:  req.Address.Name,
			Email: req.Address.Email,
			Phone: req.Address.Phone,
			Line1: req.Address.Line1,
			Line2: req.Address.Line2,
			City:  req.Address.City,
			State: req.Address.State,
			Zip:   req.Address.Zip,
		},
		PaymentMethod: model.PaymentMethod(req.PaymentMethod),
	}
}

func toOrderResponse(order model.Order) dto.OrderResponse {
	items := make([]dto.OrderItemResponse, 0, len(order.Items))
	for _, item := range order.Items {
		items = append(items, dto.OrderItemResponse{
			ProductID: item.ProductID,
			Name:      item.Name,
			UnitPrice: item.UnitPrice,
			Quantity:  item.Quantity,
			ImageURL:  item.ImageURL,
		})
	}
	history := make([]dto.TrackingEventResponse, 0, len(order.TrackingHistory))
	for _, event := range order.TrackingHistory {
		history = append(history, dto.TrackingEventResponse{
			Status:      event.Status,
			Description: event.Description,
			Location:    event.Location,
			CreatedAt:   event.CreatedAt,
		})
	}
	return dto.OrderResponse{
		Number:          order.Number,
		Status:          string(order.Status),
		PaymentStatus:   string(order.PaymentStatus),
		PaymentMethod:   string(order.PaymentMethod),
		TotalAmount:     order.TotalAmount,
		Items:           items,
		Address: dto.AddressPayload{
			Name:  order.Address.Name,
			Email: order.Address.Email,
			Phone: order.Address.Phone,
			Line1: order.Address.Line1,
			Line2: order.Address.Line2,
			City:  order.Address.City,
			State: order.Address.State,
			Zip:   order.Address.Zip,
		},
		TrackingHistory: history,
		CreatedAt:       order.CreatedAt,
	}
}
