package handlers

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"machinery-rental-admin-api/config"
	"machinery-rental-admin-api/internal/auth"
	"machinery-rental-admin-api/internal/chatid"
	"machinery-rental-admin-api/internal/models"
	"machinery-rental-admin-api/internal/notify"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type UserHandler struct {
	DB       *mongo.Database
	Cfg      config.Config
	Notifier *notify.Notifier
}

type LoginRequest struct {
	Email    string `json:"email" binding:"required"`
	Password string `json:"password" binding:"required"`
}

// Login authenticates an admin account and issues a JWT whose uid claim is
// the stable cross-collection user id.
func (h *UserHandler) Login(c *gin.Context) {
	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	var user models.User
	err := h.DB.Collection("users").FindOne(context.Background(), bson.M{"email": req.Email}).Decode(&user)
	if err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid email or password"})
		return
	}

	if !auth.CheckPasswordHash(req.Password, user.Password) {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid email or password"})
		return
	}

	if user.Role != "admin" {
		c.JSON(http.StatusForbidden, gin.H{"error": "Admin access required"})
		return
	}

	token, err := auth.GenerateJWT(user.Email, user.Role, user.UID, h.Cfg.JWT.Expiration)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to generate token"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"token": token,
		"user": gin.H{
			"uid":       user.UID,
			"email":     user.Email,
			"firstName": user.FirstName,
			"lastName":  user.LastName,
			"role":      user.Role,
		},
	})
}

// GetAllUsers lists every user profile, newest first.
func (h *UserHandler) GetAllUsers(c *gin.Context) {
	findOpts := options.Find().SetSort(bson.D{{Key: "createdAt", Value: -1}})
	cursor, err := h.DB.Collection("users").Find(context.Background(), bson.M{}, findOpts)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to query users"})
		return
	}
	defer cursor.Close(context.Background())

	var users []models.User
	if err = cursor.All(context.Background(), &users); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to decode users"})
		return
	}

	if users == nil {
		users = []models.User{}
	}

	c.JSON(http.StatusOK, users)
}

// AdPublisher is a user profile joined with the count of ads they posted.
type AdPublisher struct {
	models.User
	AdsCount int `json:"adsCount"`
}

// GetAdPublishers lists the distinct machinery owners with their ad counts.
// The join is two full reads matched in memory; there is no composite index
// to lean on.
func (h *UserHandler) GetAdPublishers(c *gin.Context) {
	machineryCursor, err := h.DB.Collection("machinery").Find(context.Background(), bson.M{})
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to query machinery"})
		return
	}
	defer machineryCursor.Close(context.Background())

	var listings []models.Listing
	if err = machineryCursor.All(context.Background(), &listings); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to decode machinery"})
		return
	}

	adsCount := make(map[string]int)
	for _, l := range listings {
		if l.UserID != "" {
			adsCount[l.UserID]++
		}
	}

	userCursor, err := h.DB.Collection("users").Find(context.Background(), bson.M{})
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to query users"})
		return
	}
	defer userCursor.Close(context.Background())

	var users []models.User
	if err = userCursor.All(context.Background(), &users); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to decode users"})
		return
	}

	publishers := []AdPublisher{}
	for _, u := range users {
		if count, ok := adsCount[u.UID]; ok {
			publishers = append(publishers, AdPublisher{User: u, AdsCount: count})
		}
	}

	c.JSON(http.StatusOK, publishers)
}

// BlockUser sets isBlocked. Blocking is independent of verification.
func (h *UserHandler) BlockUser(c *gin.Context) {
	h.setUserFlag(c, "isBlocked", true, "User blocked successfully")
}

// UnblockUser clears isBlocked.
func (h *UserHandler) UnblockUser(c *gin.Context) {
	h.setUserFlag(c, "isBlocked", false, "User unblocked successfully")
}

// VerifyUser sets isVerified.
func (h *UserHandler) VerifyUser(c *gin.Context) {
	h.setUserFlag(c, "isVerified", true, "User verified successfully")
}

func (h *UserHandler) setUserFlag(c *gin.Context, field string, value bool, message string) {
	uid := c.Param("id")

	result, err := h.DB.Collection("users").UpdateOne(context.Background(),
		bson.M{"uid": uid},
		bson.M{"$set": bson.M{field: value}},
	)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update user"})
		return
	}
	if result.MatchedCount == 0 {
		c.JSON(http.StatusNotFound, gin.H{"error": "User not found"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": message})
}

// DeleteUser removes a user profile and cascades deletion of every machinery
// ad they posted. The deletes are sequential, not transactional; a failure
// partway leaves the remainder for a retry.
func (h *UserHandler) DeleteUser(c *gin.Context) {
	uid := c.Param("id")

	result, err := h.DB.Collection("users").DeleteOne(context.Background(), bson.M{"uid": uid})
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete user"})
		return
	}
	if result.DeletedCount == 0 {
		c.JSON(http.StatusNotFound, gin.H{"error": "User not found"})
		return
	}

	if _, err := h.DB.Collection("machinery").DeleteMany(context.Background(), bson.M{"userId": uid}); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "User deleted but removing their ads failed"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "User and their ads deleted successfully"})
}

// StartChat opens an admin-initiated conversation with a user: a fresh
// admin_initiated chat id, a greeting message, and a user notification.
func (h *UserHandler) StartChat(c *gin.Context) {
	uid := c.Param("id")

	var user models.User
	err := h.DB.Collection("users").FindOne(context.Background(), bson.M{"uid": uid}).Decode(&user)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			c.JSON(http.StatusNotFound, gin.H{"error": "User not found"})
		} else {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve user"})
		}
		return
	}

	chatID := chatid.NewAdminInitiated(uid)
	greeting := fmt.Sprintf("Hello %s! I'm reaching out from the admin team. How can I help you today?", user.FirstName)

	message := models.ChatMessage{
		ChatID:      chatID,
		SenderID:    "admin",
		SenderName:  "Admin",
		SenderType:  "admin",
		RecipientID: uid,
		Message:     greeting,
		CreatedAt:   time.Now(),
		Status:      "sent",
	}

	if _, err := h.DB.Collection("chatMessages").InsertOne(context.Background(), message); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create chat"})
		return
	}

	if err := h.Notifier.NotifyUserAdminReply(context.Background(), uid, greeting, chatID, nil); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Chat created but notifying the user failed"})
		return
	}

	c.JSON(http.StatusCreated, gin.H{"chatId": chatID})
}
