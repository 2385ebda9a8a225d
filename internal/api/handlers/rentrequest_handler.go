package handlers

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"machinery-rental-admin-api/internal/chatid"
	"machinery-rental-admin-api/internal/derive"
	"machinery-rental-admin-api/internal/models"
	"machinery-rental-admin-api/internal/notify"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type RentRequestHandler struct {
	DB       *mongo.Database
	Notifier *notify.Notifier
}

// RentRequestView is a rent request decorated with the time-derived status.
// The stored status stays untouched; active/completed exist only in responses.
type RentRequestView struct {
	models.RentRequest
	DerivedStatus string `json:"derivedStatus"`
	StatusLabel   string `json:"statusLabel"`
	EndDate       string `json:"endDate,omitempty"`
}

// GetAllRentRequests lists rent requests newest first, each with its derived
// status relative to today.
func (h *RentRequestHandler) GetAllRentRequests(c *gin.Context) {
	filter := bson.M{}
	if status := c.Query("status"); status != "" {
		filter["status"] = status
	}

	findOpts := options.Find().SetSort(bson.D{{Key: "requestedAt", Value: -1}})
	cursor, err := h.DB.Collection("rentRequests").Find(context.Background(), filter, findOpts)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to query rent requests"})
		return
	}
	defer cursor.Close(context.Background())

	var requests []models.RentRequest
	if err = cursor.All(context.Background(), &requests); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to decode rent requests"})
		return
	}

	today := time.Now()
	views := make([]RentRequestView, 0, len(requests))
	for _, req := range requests {
		view := RentRequestView{
			RentRequest:   req,
			DerivedStatus: derive.Status(req, today),
		}
		view.StatusLabel = derive.StatusLabel(view.DerivedStatus)
		if end, ok := derive.EndDate(req); ok {
			view.EndDate = end.Format("2006-01-02")
		}
		views = append(views, view)
	}

	c.JSON(http.StatusOK, views)
}

// GetRentRequestStats aggregates counts and revenue over every rent request.
// This is a full-collection fold, same as the dashboard tiles.
func (h *RentRequestHandler) GetRentRequestStats(c *gin.Context) {
	cursor, err := h.DB.Collection("rentRequests").Find(context.Background(), bson.M{})
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to query rent requests"})
		return
	}
	defer cursor.Close(context.Background())

	var requests []models.RentRequest
	if err = cursor.All(context.Background(), &requests); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to decode rent requests"})
		return
	}

	c.JSON(http.StatusOK, derive.Aggregate(requests, time.Now()))
}

// ApproveRentRequest approves a pending request, sends both parties their
// contact-card chat message and writes the rent notifications. The approval is
// a fan-out of independent writes, not a transaction; the status update lands
// first so a later failure never leaves an approved chat on a pending request.
func (h *RentRequestHandler) ApproveRentRequest(c *gin.Context) {
	oid, err := primitive.ObjectIDFromHex(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request id"})
		return
	}

	collection := h.DB.Collection("rentRequests")

	var req models.RentRequest
	if err := collection.FindOne(context.Background(), bson.M{"_id": oid}).Decode(&req); err != nil {
		if err == mongo.ErrNoDocuments {
			c.JSON(http.StatusNotFound, gin.H{"error": "Rent request not found"})
		} else {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve rent request"})
		}
		return
	}

	adminEmail := c.GetString("user_email")
	_, err = collection.UpdateOne(context.Background(),
		bson.M{"_id": oid},
		bson.M{"$set": bson.M{
			"status":     derive.StatusApproved,
			"approvedAt": time.Now(),
			"approvedBy": adminEmail,
		}},
	)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to approve rent request"})
		return
	}

	if err := h.sendApprovalCards(context.Background(), req); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Request approved but sending contact cards failed"})
		return
	}

	if err := h.Notifier.NotifyRentApproved(context.Background(), req); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Request approved but sending notifications failed"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Rent request approved successfully"})
}

// sendApprovalCards delivers owner contact details to the renter and renter
// contact details to the owner, as card-type chat messages in fresh one-off
// conversations.
func (h *RentRequestHandler) sendApprovalCards(ctx context.Context, req models.RentRequest) error {
	collection := h.DB.Collection("chatMessages")
	now := time.Now()
	requestID := req.ID.Hex()

	toRenter := models.ChatMessage{
		ChatID:      chatid.NewRentApprovalChatID("renter", requestID),
		SenderID:    "admin",
		SenderName:  "Admin",
		SenderType:  "admin",
		RecipientID: req.UserID,
		Message:     fmt.Sprintf("Your rent request for %q has been approved! Here are the owner's contact details.", req.MachineryName),
		Type:        "publisher_card",
		PublisherCard: map[string]interface{}{
			"name":          req.MachineryOwnerName,
			"phone":         req.MachineryOwnerPhone,
			"cnic":          req.MachineryOwnerCNIC,
			"address":       req.MachineryOwnerAddress,
			"machineryName": req.MachineryName,
			"requestId":     requestID,
		},
		CreatedAt: now,
		Status:    "sent",
	}
	if _, err := collection.InsertOne(ctx, toRenter); err != nil {
		return err
	}

	toOwner := models.ChatMessage{
		ChatID:      chatid.NewRentApprovalChatID("publisher", requestID),
		SenderID:    "admin",
		SenderName:  "Admin",
		SenderType:  "admin",
		RecipientID: req.MachineryOwnerID,
		Message:     fmt.Sprintf("Your %q has been rented! Here are the renter's contact details.", req.MachineryName),
		Type:        "renter_card",
		RenterCard: map[string]interface{}{
			"name":             req.UserName,
			"phone":            req.UserPhone,
			"email":            req.UserEmail,
			"address":          req.UserAddress,
			"rentalStartDate":  req.RentalStartDate,
			"rentalDuration":   req.RentalDuration,
			"deliveryLocation": req.DeliveryLocation,
			"requestId":        requestID,
		},
		CreatedAt: now,
		Status:    "sent",
	}
	_, err := collection.InsertOne(ctx, toOwner)
	return err
}

// RejectRentRequest moves a request to rejected. There is no notification
// fan-out on rejection.
func (h *RentRequestHandler) RejectRentRequest(c *gin.Context) {
	oid, err := primitive.ObjectIDFromHex(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request id"})
		return
	}

	adminEmail := c.GetString("user_email")
	result, err := h.DB.Collection("rentRequests").UpdateOne(context.Background(),
		bson.M{"_id": oid},
		bson.M{"$set": bson.M{
			"status":     derive.StatusRejected,
			"rejectedAt": time.Now(),
			"rejectedBy": adminEmail,
		}},
	)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to reject rent request"})
		return
	}
	if result.MatchedCount == 0 {
		c.JSON(http.StatusNotFound, gin.H{"error": "Rent request not found"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Rent request rejected successfully"})
}

// MarkSeen flags a request as seen in the admin list.
func (h *RentRequestHandler) MarkSeen(c *gin.Context) {
	oid, err := primitive.ObjectIDFromHex(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request id"})
		return
	}

	result, err := h.DB.Collection("rentRequests").UpdateOne(context.Background(),
		bson.M{"_id": oid},
		bson.M{"$set": bson.M{"adminSeen": true}},
	)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update rent request"})
		return
	}
	if result.MatchedCount == 0 {
		c.JSON(http.StatusNotFound, gin.H{"error": "Rent request not found"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Rent request marked as seen"})
}
