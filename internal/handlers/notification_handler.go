package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/justsurfingit/placement-portal/internal/dtos"
	"github.com/justsurfingit/placement-portal/internal/services"
	"github.com/justsurfingit/placement-portal/internal/views"
)

type NotificationHandler struct {
	NotificationService *services.NotificationService
}

func NewNotificationHandler(s *services.NotificationService) *NotificationHandler {
	return &NotificationHandler{NotificationService: s}
}

func (h *NotificationHandler) List(c *gin.Context) {
	notes, err := h.NotificationService.List(c.Request.Context())
	if err != nil {
		respondError(c, "Failed to list notifications", err)
		return
	}
	respondList(c, views.Notifications, notes)
}

// ListForUser is the GET /notifications/user/:userId endpoint
func (h *NotificationHandler) ListForUser(c *gin.Context) {
	userID, ok := paramID(c, "userId")
	if !ok {
		return
	}
	notes, err := h.NotificationService.ListForUser(c.Request.Context(), userID)
	if err != nil {
		respondError(c, "Failed to list notifications", err)
		return
	}
	respondList(c, views.Notifications, notes)
}

func (h *NotificationHandler) Create(c *gin.Context) {
	var req dtos.NotificationRequest
	if !bindJSON(c, &req) {
		return
	}
	n, err := h.NotificationService.Notify(c.Request.Context(), &req)
	if err != nil {
		respondError(c, "Failed to send notification", err)
		return
	}
	c.JSON(http.StatusCreated, n)
}

// MarkRead is the PUT /notifications/:id/read endpoint
func (h *NotificationHandler) MarkRead(c *gin.Context) {
	id, ok := paramID(c, "id")
	if !ok {
		return
	}
	n, err := h.NotificationService.MarkRead(c.Request.Context(), id)
	if err != nil {
		respondError(c, "Failed to mark notification read", err)
		return
	}
	c.JSON(http.StatusOK, n)
}
