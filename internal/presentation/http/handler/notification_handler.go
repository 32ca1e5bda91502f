package handler

import (
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/techgpt/techgpt-api/internal/application/service"
	"github.com/techgpt/techgpt-api/internal/presentation/http/dto/request"
	"github.com/techgpt/techgpt-api/internal/presentation/http/dto/response"
)

// NotificationHandler handles notification HTTP requests
type NotificationHandler struct {
	notificationService *service.NotificationService
	bridgeService       *service.BridgeService
}

// NewNotificationHandler creates a new notification handler
func NewNotificationHandler(notificationService *service.NotificationService, bridgeService *service.BridgeService) *NotificationHandler {
	return &NotificationHandler{
		notificationService: notificationService,
		bridgeService:       bridgeService,
	}
}

// List returns the caller's notifications
// @Summary List notifications
// @Tags notifications
// @Produce json
// @Success 200 {object} response.APIResponse
// @Router /notifications [get]
func (h *NotificationHandler) List(c *gin.Context) {
	userID := GetUserID(c)
	if userID == nil {
		response.Unauthorized(c, "Not authenticated")
		return
	}

	notifications, err := h.notificationService.ListNotifications(c.Request.Context(), *userID)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Notifications", gin.H{"notifications": notifications})
}

// Send delivers a notification to another user. The send runs through the
// bridge so the caller's cached overview is rebuilt afterwards.
// @Summary Send notification
// @Tags notifications
// @Accept json
// @Produce json
// @Param request body request.SendNotificationRequest true "Notification"
// @Success 201 {object} response.APIResponse
// @Router /notifications/send [post]
func (h *NotificationHandler) Send(c *gin.Context) {
	userID := GetUserID(c)
	if userID == nil {
		response.Unauthorized(c, "Not authenticated")
		return
	}

	var req request.SendNotificationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}

	target, err := uuid.Parse(req.Target)
	if err != nil {
		response.BadRequest(c, "Invalid target ID")
		return
	}

	input := &service.SendNotificationInput{
		Target:   target,
		Message:  req.Message,
		SenderID: userID,
		Kind:     req.Kind,
	}
	if req.SenderID != nil {
		senderID, err := uuid.Parse(*req.SenderID)
		if err != nil {
			response.BadRequest(c, "Invalid sender ID")
			return
		}
		if senderID != *userID && !IsAdmin(c) {
			response.Forbidden(c, "Cannot send on behalf of another user")
			return
		}
		input.SenderID = &senderID
	}

	snapshot, err := h.bridgeService.SendNotification(c.Request.Context(), *userID, input)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Created(c, "Notification sent", gin.H{"overview": snapshot})
}

// MarkRead marks one notification as read
// @Summary Mark notification read
// @Tags notifications
// @Produce json
// @Param id path string true "Notification ID"
// @Success 204
// @Router /notifications/{id}/read [post]
func (h *NotificationHandler) MarkRead(c *gin.Context) {
	userID := GetUserID(c)
	if userID == nil {
		response.Unauthorized(c, "Not authenticated")
		return
	}

	notificationID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "Invalid notification ID")
		return
	}

	if err := h.notificationService.MarkNotificationRead(c.Request.Context(), notificationID, *userID); err != nil {
		response.Error(c, err)
		return
	}

	response.NoContent(c)
}

// ListSystemMessages returns active platform announcements
// @Summary List system messages
// @Tags notifications
// @Produce json
// @Success 200 {object} response.APIResponse
// @Router /system-messages [get]
func (h *NotificationHandler) ListSystemMessages(c *gin.Context) {
	messages, err := h.notificationService.ListSystemMessages(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "System messages", gin.H{"system_messages": messages})
}

// BroadcastSystemMessage publishes a platform-wide announcement (admin only)
// @Summary Broadcast system message
// @Tags notifications
// @Accept json
// @Produce json
// @Param request body request.BroadcastSystemMessageRequest true "Announcement"
// @Success 201 {object} response.APIResponse
// @Router /system-messages [post]
func (h *NotificationHandler) BroadcastSystemMessage(c *gin.Context) {
	var req request.BroadcastSystemMessageRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}

	message, err := h.notificationService.BroadcastSystemMessage(c.Request.Context(), &service.BroadcastInput{
		Title:    req.Title,
		Body:     req.Body,
		Severity: req.Severity,
	})
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Created(c, "System message published", gin.H{"system_message": message})
}
