package v1

import (
	"net/http"

	"go-interview-backend/internal/delivery/http/response"
	"go-interview-backend/internal/domain"
	"go-interview-backend/pkg/apperror"

	"github.com/gin-gonic/gin"
)

type NotificationHandler struct {
	notificationUC domain.NotificationUsecase
}

func NewNotificationHandler(r *gin.RouterGroup, notificationUC domain.NotificationUsecase, writeLimit gin.HandlerFunc) {
	handler := &NotificationHandler{notificationUC: notificationUC}

	r.POST("/notifications", writeLimit, handler.Send)
}

// SendNotification godoc
// @Summary      Notify a candidate
// @Description  Acknowledges the message; email is delivered only when SMTP is configured.
// @Tags         notifications
// @Accept       json
// @Produce      json
// @Param        notification  body      domain.NotificationRequest  true  "Notification JSON"
// @Success      200           {object}  response.Response{data=domain.NotificationReceipt}
// @Failure      400           {object}  response.Response
// @Failure      404           {object}  response.Response
// @Router       /notifications [post]
func (h *NotificationHandler) Send(c *gin.Context) {
	var req domain.NotificationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Error(apperror.BadRequest("Invalid request body: " + err.Error()))
		return
	}

	receipt, err := h.notificationUC.SendNotification(c, &req)
	if err != nil {
		c.Error(err)
		return
	}
	response.Success(c, http.StatusOK, "Notification sent", receipt)
}
