package controllers

import (
	"net/http"
	"time"

	"team-evaluation-api/config"
	"team-evaluation-api/models"

	"github.com/gin-gonic/gin"
)

// GetNotifications returns the current user's notifications, newest first
func GetNotifications(c *gin.Context) {
	userID, _ := c.Get("userID")

	var notifications []models.Notification
	query := config.DB.Where("user_id = ?", userID).Order("create_at DESC")

	if c.Query("unread") == "true" {
		query = query.Where("is_read = ?", false)
	}

	if err := query.Find(&notifications).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Failed to fetch notifications"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"notifications": notifications,
		"total":         len(notifications),
	})
}

// MarkNotificationRead marks one of the current user's notifications as read
func MarkNotificationRead(c *gin.Context) {
	userID, _ := c.Get("userID")
	id := c.Param("id")

	var notification models.Notification
	if err := config.DB.Where("notification_id = ? AND user_id = ?", id, userID).
		First(&notification).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"message": "Notification not found"})
		return
	}

	now := time.Now()
	notification.IsRead = true
	notification.UpdateAt = &now

	if err := config.DB.Save(&notification).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Failed to update notification"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Notification marked as read"})
}
