package handlers

import (
	"net/http"

	"musicshop/auth"
	"musicshop/db"
	"musicshop/models"

	"github.com/gin-gonic/gin"
)

type NotificationInfo struct {
	ID        uint64 `json:"id"`
	Text      string `json:"text"`
	Read      bool   `json:"read"`
	CreatedAt int64  `json:"created_at"`
}

type NotificationReadRequest struct {
	NotificationID uint64 `form:"notification_id" json:"notification_id" binding:"required"`
}

func NotificationList(c *gin.Context) {
	session := auth.LoadSession(c)
	customer := session.Customer()
	if customer.ID == 0 {
		c.JSON(http.StatusUnauthorized, LoginFirstResponse)
		return
	}
	unreadOnly := c.Query("unread") == "1"
	notifications, err := models.NotificationsForCustomer(db.Instance, customer.ID, unreadOnly)
	if err != nil {
		c.JSON(http.StatusInternalServerError, DBError1Response)
		return
	}
	result := []NotificationInfo{}
	for _, n := range notifications {
		result = append(result, NotificationInfo{
			ID:        n.ID,
			Text:      n.Text,
			Read:      n.Read,
			CreatedAt: n.CreatedAt,
		})
	}
	c.JSON(http.StatusOK, result)
}

func NotificationRead(c *gin.Context) {
	r := NotificationReadRequest{}
	if err := c.ShouldBind(&r); err != nil {
		c.JSON(http.StatusBadRequest, Response{err.Error()})
		return
	}
	session := auth.LoadSession(c)
	customer := session.Customer()
	if customer.ID == 0 {
		c.JSON(http.StatusUnauthorized, LoginFirstResponse)
		return
	}
	var notification models.Notification
	err := db.Instance.Where("recipient_id = ?", customer.ID).
		First(&notification, r.NotificationID).Error
	if err != nil {
		c.JSON(http.StatusNotFound, NotFoundResponse)
		return
	}
	if err = notification.MarkRead(db.Instance); err != nil {
		c.JSON(http.StatusInternalServerError, DBError1Response)
		return
	}
	c.JSON(http.StatusOK, OKResponse)
}
