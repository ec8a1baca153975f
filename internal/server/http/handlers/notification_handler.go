package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/polkiloo/storefront/internal/server/http/dto"
)

// NotificationHandler manages user notification endpoints.
type NotificationHandler struct {
	facade NotificationFacade
}

// NewNotificationHandler constructs NotificationHandler.
func NewNotificationHandler(facade NotificationFacade) *NotificationHandler {
	return &NotificationHandler{facade: facade}
}

// List handles GET /api/user/notifications.
func (h *NotificationHandler) List(c *gin.Context) {
	notifications, err := h.facade.Notifications(c.Request.Context(), CurrentUserID(c))
	if err != nil {
		RespondError(c, err)
		return
	}
	if len(notifications) == 0 {
		c.Status(http.StatusNoContent)
		return
	}

	resp := make([]dto.NotificationResponse, 0, len(notifications))
	for _, n := range notifications {
		resp = append(resp, dto.NotificationResponse{
			ID:        n.ID,
			Title:     n.Title,
			Message:   n.Message,
			Type:      string(n.Type),
			Read:      n.Read,
			CreatedAt: n.CreatedAt,
		})
	}
	c.JSON(http.StatusOK, resp)
}

// MarkRead handles POST /api/user/notifications/read.
func (h *NotificationHandler) MarkRead(c *gin.Context) {
	var req dto.MarkReadRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Status(http.StatusBadRequest)
		return
	}
	if err := h.facade.MarkNotificationRead(c.Request.Context(), CurrentUserID(c), req.ID); err != nil {
		RespondError(c, err)
		return
	}
	c.Status(http.StatusOK)
}

// MarkAllRead handles POST /api/user/notifications/read-all.
func (h *NotificationHandler) MarkAllRead(c *gin.Context) {
	if err := h.facade.MarkAllNotificationsRead(c.Request.Context(), CurrentUserID(c)); err != nil {
		RespondError(c, err)
		return
	}
	c.Status(http.StatusOK)
}
