package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/polkiloo/storefront/internal/domain/model"
	"github.com/polkiloo/storefront/internal/server/http/dto"
	"github.com/polkiloo/storefront/internal/usecase"
)

// PaymentHandler manages payment endpoints.
type PaymentHandler struct {
	facade PaymentFacade
}

// NewPaymentHandler constructs PaymentHandler.
func NewPaymentHandler(facade PaymentFacade) *PaymentHandler {
	return &PaymentHandler{facade: facade}
}

// Start handles POST /api/user/payments.
func (h *PaymentHandler) Start(c *gin.Context) {
	var req dto.StartPaymentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Status(http.StatusBadRequest)
		return
	}
	if !h.ownsOrder(c, req.OrderID) {
		return
	}

	payment, err := h.facade.StartPayment(c.Request.Context(), req.OrderID, model.PaymentMethod(req.Method), req.Instrument)
	if err != nil {
		RespondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, toPaymentResponse(*payment))
}

// Verify handles POST /api/user/payments/verify.
func (h *PaymentHandler) Verify(c *gin.Context) {
	var req dto.VerifyPaymentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Status(http.StatusBadRequest)
		return
	}
	if req.TransactionID == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "transaction_id is required"})
		return
	}

	result, err := h.facade.VerifyPayment(c.Request.Context(), usecase.VerifyPaymentInput{
		TransactionID: req.TransactionID,
		OTP:           req.OTP,
		UPIReference:  req.UPIReference,
	})
	if err != nil {
		RespondError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.VerifyPaymentResponse{
		TransactionID: result.TransactionID,
		Outcome:       string(result.Outcome),
		Message:       result.Message,
	})
}

// ListByOrder handles GET /api/user/payments?order_id=N.
func (h *PaymentHandler) ListByOrder(c *gin.Context) {
	orderID, err := strconv.ParseInt(c.Query("order_id"), 10, 64)
	if err != nil {
		c.Status(http.StatusBadRequest)
		return
	}
	if !h.ownsOrder(c, orderID) {
		return
	}
	payments, err := h.facade.PaymentsForOrder(c.Request.Context(), orderID)
	if err != nil {
		RespondError(c, err)
		return
	}
	if len(payments) == 0 {
		c.Status(http.StatusNoContent)
		return
	}

	resp := make([]dto.PaymentResponse, 0, len(payments))
	for _, p := range payments {
		resp = append(resp, toPaymentResponse(p))
	}
	c.JSON(http.StatusOK, resp)
}

// ownsOrder resolves the order and hides it behind a 404 from anyone but
// its owner or an admin. It writes the response on failure.
func (h *PaymentHandler) ownsOrder(c *gin.Context, orderID int64) bool {
	order, err := h.facade.Order(c.Request.Context(), orderID)
	if err != nil {
		RespondError(c, err)
		return false
	}
	if !IsAdmin(c) && order.UserID != nil && *order.UserID != CurrentUserID(c) {
		c.Status(http.StatusNotFound)
		return false
	}
	return true
}

func toPaymentResponse(p model.Payment) dto.PaymentResponse {
	return dto.PaymentResponse{
		TransactionID: p.TransactionID,
		OrderID:       p.OrderID,
		Amount:        p.Amount,
		Method:        string(p.Method),
		Status:        string(p.Status),
		Detail:        p.Detail,
		CreatedAt:     p.CreatedAt,
	}
}
