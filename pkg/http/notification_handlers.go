package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"liyu1981.xyz/ecotrack-service/pkg/eco"
	"liyu1981.xyz/ecotrack-service/pkg/models"
)

func (rs *RestfulServer) GetNotifications(c *gin.Context) {
	lf, valid := listFilter(c)
	if !valid {
		return
	}

	page, err := rs.Eco.Notification.ListNotifications(c.Request.Context(), callerID(c), eco.NotificationFilter{
		ListFilter: lf,
		IsRead:     queryBool(c, "isRead"),
		Category:   models.NotificationCategory(c.Query("category")),
	})
	if err != nil {
		failWith(c, err, "Error fetching notifications")
		return
	}

	body := pageBody(&page.Page, "notifications")
	body["unreadCount"] = page.UnreadCount
	succeed(c, http.StatusOK, body)
}

func (rs *RestfulServer) MarkNotificationRead(c *gin.Context) {
	id, valid := pathID(c)
	if !valid {
		return
	}

	notification, err := rs.Eco.Notification.MarkRead(c.Request.Context(), callerID(c), id)
	if err != nil {
		failWith(c, err, "Error marking notification as read")
		return
	}

	succeed(c, http.StatusOK, gin.H{
		"message":      "Notification marked as read",
		"notification": notification,
	})
}

func (rs *RestfulServer) MarkAllNotificationsRead(c *gin.Context) {
	modified, err := rs.Eco.Notification.MarkAllRead(c.Request.Context(), callerID(c))
	if err != nil {
		failWith(c, err, "Error marking notifications as read")
		return
	}

	succeed(c, http.StatusOK, gin.H{
		"message":       "All notifications marked as read",
		"modifiedCount": modified,
	})
}

func (rs *RestfulServer) DeleteNotification(c *gin.Context) {
	id, valid := pathID(c)
	if !valid {
		return
	}

	if err := rs.Eco.Notification.DeleteNotification(c.Request.Context(), callerID(c), id); err != nil {
		failWith(c, err, "Error deleting notification")
		return
	}

	succeed(c, http.StatusOK, gin.H{"message": "Notification deleted successfully"})
}

func (rs *RestfulServer) DeleteReadNotifications(c *gin.Context) {
	deleted, err := rs.Eco.Notification.DeleteReadNotifications(c.Request.Context(), callerID(c))
	if err != nil {
		failWith(c, err, "Error deleting notifications")
		return
	}

	succeed(c, http.StatusOK, gin.H{
		"message":      "Read notifications deleted successfully",
		"deletedCount": deleted,
	})
}
