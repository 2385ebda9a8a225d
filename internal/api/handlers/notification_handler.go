package handlers

import (
	"context"
	"net/http"
	"time"

	"machinery-rental-admin-api/internal/models"
	"machinery-rental-admin-api/internal/notify"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type NotificationHandler struct {
	DB         *mongo.Database
	Bookkeeper *notify.Bookkeeper
}

// GetAllNotifications lists the admin notification feed, newest first.
func (h *NotificationHandler) GetAllNotifications(c *gin.Context) {
	findOpts := options.Find().SetSort(bson.D{{Key: "createdAt", Value: -1}})
	cursor, err := h.DB.Collection("adminNotifications").Find(context.Background(), bson.M{}, findOpts)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to query notifications"})
		return
	}
	defer cursor.Close(context.Background())

	var notifications []models.AdminNotification
	if err = cursor.All(context.Background(), &notifications); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to decode notifications"})
		return
	}

	if notifications == nil {
		notifications = []models.AdminNotification{}
	}

	c.JSON(http.StatusOK, notifications)
}

// GetUnreadCounts returns the derived unread state for the chat badges.
func (h *NotificationHandler) GetUnreadCounts(c *gin.Context) {
	counts, err := h.Bookkeeper.UnreadCounts(context.Background())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to compute unread counts"})
		return
	}

	c.JSON(http.StatusOK, counts)
}

// markReadUpdate sets the read status and stamps readAt only on the first
// transition, so re-marking never moves the timestamp.
func markReadUpdate(now time.Time) mongo.Pipeline {
	return mongo.Pipeline{{{Key: "$set", Value: bson.M{
		"status": notify.StatusRead,
		"readAt": bson.M{"$ifNull": bson.A{"$readAt", now}},
	}}}}
}

// MarkRead marks one notification read in a single atomic update. Marking an
// already-read notification succeeds without touching its readAt.
func (h *NotificationHandler) MarkRead(c *gin.Context) {
	oid, err := primitive.ObjectIDFromHex(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid notification id"})
		return
	}

	err = h.DB.Collection("adminNotifications").FindOneAndUpdate(context.Background(),
		bson.M{"_id": oid},
		markReadUpdate(time.Now()),
	).Err()
	if err != nil {
		if err == mongo.ErrNoDocuments {
			c.JSON(http.StatusNotFound, gin.H{"error": "Notification not found"})
		} else {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to mark notification read"})
		}
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Notification marked as read"})
}

// MarkAllRead marks every unread notification read, message notifications and
// the rest of the feed alike.
func (h *NotificationHandler) MarkAllRead(c *gin.Context) {
	if err := h.Bookkeeper.MarkAllRead(context.Background()); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to mark notifications read"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "All notifications marked as read"})
}

// DeleteNotification removes one notification from the feed.
func (h *NotificationHandler) DeleteNotification(c *gin.Context) {
	oid, err := primitive.ObjectIDFromHex(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid notification id"})
		return
	}

	result, err := h.DB.Collection("adminNotifications").DeleteOne(context.Background(), bson.M{"_id": oid})
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete notification"})
		return
	}
	if result.DeletedCount == 0 {
		c.JSON(http.StatusNotFound, gin.H{"error": "Notification not found"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Notification deleted successfully"})
}
