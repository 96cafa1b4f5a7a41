package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	portssvc "github.com/IgrejaViva/igreja_backend/internal/core/ports/services"
	"github.com/IgrejaViva/igreja_backend/internal/dto"
	"github.com/IgrejaViva/igreja_backend/internal/middleware"
)

// notificationHandler handles HTTP requests related to notifications.
type notificationHandler struct {
	notificationService portssvc.NotificationSvcFacade
}

func newNotificationHandler(ns portssvc.NotificationSvcFacade) *notificationHandler {
	return &notificationHandler{notificationService: ns}
}

func registerNotificationRoutes(rg *gin.RouterGroup, notificationService portssvc.NotificationSvcFacade) {
	h := newNotificationHandler(notificationService)

	notifications := rg.Group("/notifications")
	{
		notifications.POST("", h.createNotification)
		notifications.GET("", h.listNotifications)
		notifications.POST("/:notification_id/read", h.markNotificationRead)
	}
}

// createNotification godoc
// @Summary Dispatch a notification
// @Description Sends a notification to a single user or to every user holding a role.
// @Tags notifications
// @Accept json
// @Produce json
// @Param notification body dto.CreateNotificationRequest true "Notification details"
// @Success 201 {object} dto.NotificationResponse
// @Failure 400 {object} ErrorResponse "Exactly one of recipientID or targetRole required"
// @Security BearerAuth
// @Router /notifications [post]
func (h *notificationHandler) createNotification(c *gin.Context) {
	var req dto.CreateNotificationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request format: " + err.Error()})
		return
	}

	actorUserID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Unauthorized"})
		return
	}

	notification, err := h.notificationService.CreateNotification(c.Request.Context(), req, actorUserID)
	if err != nil {
		respondWithError(c, err, "Failed to create notification")
		return
	}
	c.JSON(http.StatusCreated, dto.ToNotificationResponse(notification))
}

// listNotifications godoc
// @Summary List notifications for the caller
// @Tags notifications
// @Produce json
// @Param limit query int false "Page size"
// @Param offset query int false "Page offset"
// @Success 200 {object} dto.ListNotificationsResponse
// @Security BearerAuth
// @Router /notifications [get]
func (h *notificationHandler) listNotifications(c *gin.Context) {
	var params dto.ListNotificationsParams
	if err := c.ShouldBindQuery(&params); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid query parameters: " + err.Error()})
		return
	}

	actorUserID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Unauthorized"})
		return
	}

	notifications, err := h.notificationService.ListNotifications(c.Request.Context(), actorUserID, params.Limit, params.Offset)
	if err != nil {
		respondWithError(c, err, "Failed to list notifications")
		return
	}
	c.JSON(http.StatusOK, dto.ToListNotificationsResponse(notifications))
}

// markNotificationRead godoc
// @Summary Mark a notification as read
// @Tags notifications
// @Produce json
// @Param notification_id path string true "Notification ID"
// @Success 204
// @Failure 403 {object} ErrorResponse "Not the recipient"
// @Failure 404 {object} ErrorResponse
// @Security BearerAuth
// @Router /notifications/{notification_id}/read [post]
func (h *notificationHandler) markNotificationRead(c *gin.Context) {
	actorUserID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Unauthorized"})
		return
	}

	if err := h.notificationService.MarkNotificationRead(c.Request.Context(), c.Param("notification_id"), actorUserID); err != nil {
		respondWithError(c, err, "Failed to mark notification read")
		return
	}
	c.Status(http.StatusNoContent)
}
