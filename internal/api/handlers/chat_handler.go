package handlers

import (
	"context"
	"net/http"
	"strings"
	"time"

	"machinery-rental-admin-api/internal/chat"
	"machinery-rental-admin-api/internal/models"
	"machinery-rental-admin-api/internal/notify"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
)

type ChatHandler struct {
	DB         *mongo.Database
	Assembler  *chat.Assembler
	Bookkeeper *notify.Bookkeeper
	Notifier   *notify.Notifier
}

// GetConversations returns both chat tabs in one payload: general support
// (including admin-initiated chats) and machinery inquiries.
func (h *ChatHandler) GetConversations(c *gin.Context) {
	general, machinery, err := h.Assembler.Assemble(context.Background())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load conversations"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"general":   general,
		"machinery": machinery,
	})
}

// GetMessages returns one conversation oldest first. Opening a conversation
// marks its notifications read, so the unread badge clears as a side effect.
func (h *ChatHandler) GetMessages(c *gin.Context) {
	chatID := c.Param("chatId")

	if err := h.Bookkeeper.MarkChatRead(context.Background(), chatID); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to mark conversation read"})
		return
	}

	messages, err := h.Assembler.Messages(context.Background(), chatID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load messages"})
		return
	}

	c.JSON(http.StatusOK, messages)
}

// GetUnreadCount returns the unread badge for one conversation.
func (h *ChatHandler) GetUnreadCount(c *gin.Context) {
	chatID := c.Param("chatId")

	count, err := h.Bookkeeper.CountUnread(context.Background(), chatID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to count unread messages"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"chatId": chatID, "unreadCount": count})
}

type SendMessageRequest struct {
	RecipientID string `json:"recipientId" binding:"required"`
	Message     string `json:"message" binding:"required"`
}

// SendMessage appends an admin reply to a conversation and notifies the user.
// The machinery snapshot of the conversation, if any, is carried onto the
// notification so the user sees which listing the reply is about.
func (h *ChatHandler) SendMessage(c *gin.Context) {
	chatID := c.Param("chatId")

	var req SendMessageRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	message := models.ChatMessage{
		ChatID:           chatID,
		SenderID:         "admin",
		SenderName:       "Admin",
		SenderType:       "admin",
		RecipientID:      req.RecipientID,
		Message:          req.Message,
		MachineryDetails: h.conversationSnapshot(context.Background(), chatID),
		Type:             "text",
		CreatedAt:        time.Now(),
		Status:           "sent",
	}

	if _, err := h.DB.Collection("chatMessages").InsertOne(context.Background(), message); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to send message"})
		return
	}

	if err := h.Notifier.NotifyUserAdminReply(context.Background(), req.RecipientID, req.Message, chatID, message.MachineryDetails); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Message sent but notifying the user failed"})
		return
	}

	c.JSON(http.StatusCreated, gin.H{"message": "Message sent successfully"})
}

type IncomingMessageRequest struct {
	Message          string                    `json:"message" binding:"required"`
	MachineryDetails *models.MachinerySnapshot `json:"machineryDetails"`
}

// SendUserMessage is the app-facing half of a conversation: an authenticated
// user writes into a chat with the admin team, and the admin feed gets the
// matching new_message notification that drives the unread badges.
func (h *ChatHandler) SendUserMessage(c *gin.Context) {
	chatID := c.Param("chatId")
	uid := c.GetString("user_uid")

	var req IncomingMessageRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

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

	senderName := strings.TrimSpace(user.FirstName + " " + user.LastName)
	if senderName == "" {
		senderName = user.Email
	}

	message := models.ChatMessage{
		ChatID:           chatID,
		SenderID:         uid,
		SenderName:       senderName,
		SenderType:       "user",
		RecipientID:      "admin",
		Message:          req.Message,
		MachineryDetails: req.MachineryDetails,
		Type:             "text",
		CreatedAt:        time.Now(),
		Status:           "sent",
	}

	if _, err := h.DB.Collection("chatMessages").InsertOne(context.Background(), message); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to send message"})
		return
	}

	if err := h.Notifier.NotifyAdminNewMessage(context.Background(), uid, senderName, req.Message, chatID, req.MachineryDetails); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Message sent but notifying the admin failed"})
		return
	}

	c.JSON(http.StatusCreated, gin.H{"message": "Message sent successfully"})
}

// conversationSnapshot finds the listing snapshot attached to an existing
// message of the conversation, if the conversation is a machinery inquiry.
func (h *ChatHandler) conversationSnapshot(ctx context.Context, chatID string) *models.MachinerySnapshot {
	messages, err := h.Assembler.Messages(ctx, chatID)
	if err != nil {
		return nil
	}
	for _, msg := range messages {
		if msg.MachineryDetails != nil {
			return msg.MachineryDetails
		}
	}
	return nil
}
