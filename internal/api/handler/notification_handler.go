package handler

import (
	"github.com/gin-gonic/gin"

	"data-catalog/internal/service"
	"data-catalog/pkg/responses"
)

type NotificationHandler struct {
	notificationService service.NotificationService
}

func NewNotificationHandler(notificationService service.NotificationService) *NotificationHandler {
	return &NotificationHandler{notificationService: notificationService}
}

// Publish 立即发送一批发件箱消息
// @Summary 发送待发送通知
// @Tags 通知
// @Produce json
// @Success 200 {object} dto.PublishNotificationsResponse
// @Router /api/v1/notifications/publish [post]
func (h *NotificationHandler) Publish(c *gin.Context) {
	resp, err := h.notificationService.PublishPending(c.Request.Context())
	if err != nil {
		responses.Error(c, err)
		return
	}
	responses.Success(c, resp)
}
