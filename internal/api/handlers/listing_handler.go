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

type ListingHandler struct {
	DB       *mongo.Database
	Notifier *notify.Notifier
}

// GetAllListings lists every machinery ad, newest first. An optional status
// query parameter narrows to pending/approved/rejected.
func (h *ListingHandler) GetAllListings(c *gin.Context) {
	filter := bson.M{}
	if status := c.Query("status"); status != "" {
		filter["status"] = status
	}

	findOpts := options.Find().SetSort(bson.D{{Key: "createdAt", Value: -1}})
	cursor, err := h.DB.Collection("machinery").Find(context.Background(), filter, findOpts)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to query listings"})
		return
	}
	defer cursor.Close(context.Background())

	var listings []models.Listing
	if err = cursor.All(context.Background(), &listings); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to decode listings"})
		return
	}

	if listings == nil {
		listings = []models.Listing{}
	}

	c.JSON(http.StatusOK, listings)
}

// GetListingByID returns one listing.
func (h *ListingHandler) GetListingByID(c *gin.Context) {
	oid, err := primitive.ObjectIDFromHex(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid listing id"})
		return
	}

	var listing models.Listing
	err = h.DB.Collection("machinery").FindOne(context.Background(), bson.M{"_id": oid}).Decode(&listing)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			c.JSON(http.StatusNotFound, gin.H{"error": "Listing not found"})
		} else {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve listing"})
		}
		return
	}

	c.JSON(http.StatusOK, listing)
}

// ApproveListing moves a pending ad to approved and notifies the owner. The
// modeled transitions are pending→approved and pending→rejected only.
func (h *ListingHandler) ApproveListing(c *gin.Context) {
	h.decideListing(c, true)
}

// RejectListing moves an ad to rejected and notifies the owner.
func (h *ListingHandler) RejectListing(c *gin.Context) {
	h.decideListing(c, false)
}

func (h *ListingHandler) decideListing(c *gin.Context, approved bool) {
	oid, err := primitive.ObjectIDFromHex(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid listing id"})
		return
	}

	collection := h.DB.Collection("machinery")

	var listing models.Listing
	if err := collection.FindOne(context.Background(), bson.M{"_id": oid}).Decode(&listing); err != nil {
		if err == mongo.ErrNoDocuments {
			c.JSON(http.StatusNotFound, gin.H{"error": "Listing not found"})
		} else {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve listing"})
		}
		return
	}

	update := bson.M{"status": "approved", "approvedAt": time.Now()}
	if !approved {
		update = bson.M{"status": "rejected", "rejectedAt": time.Now()}
	}

	if _, err := collection.UpdateOne(context.Background(), bson.M{"_id": oid}, bson.M{"$set": update}); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update listing"})
		return
	}

	if listing.UserID != "" {
		if err := h.Notifier.NotifyAdDecision(context.Background(), listing, approved); err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Listing updated but notifying the owner failed"})
			return
		}
	}

	if approved {
		c.JSON(http.StatusOK, gin.H{"message": "Listing approved successfully"})
	} else {
		c.JSON(http.StatusOK, gin.H{"message": "Listing rejected successfully"})
	}
}

type UpdatePriceRequest struct {
	Price string `json:"price" binding:"required"`
}

// UpdatePrice is the admin price override. The admin-set value is recorded
// alongside the original field so the app can tell them apart.
func (h *ListingHandler) UpdatePrice(c *gin.Context) {
	oid, err := primitive.ObjectIDFromHex(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid listing id"})
		return
	}

	var req UpdatePriceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	result, err := h.DB.Collection("machinery").UpdateOne(context.Background(),
		bson.M{"_id": oid},
		bson.M{"$set": bson.M{
			"price":          req.Price,
			"adminPrice":     req.Price,
			"priceUpdatedAt": time.Now(),
			"priceUpdatedBy": "admin",
		}},
	)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update price"})
		return
	}
	if result.MatchedCount == 0 {
		c.JSON(http.StatusNotFound, gin.H{"error": "Listing not found"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Price updated successfully"})
}

// DeleteListing removes an ad permanently.
func (h *ListingHandler) DeleteListing(c *gin.Context) {
	oid, err := primitive.ObjectIDFromHex(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid listing id"})
		return
	}

	result, err := h.DB.Collection("machinery").DeleteOne(context.Background(), bson.M{"_id": oid})
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete listing"})
		return
	}
	if result.DeletedCount == 0 {
		c.JSON(http.StatusNotFound, gin.H{"error": "Listing not found"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Listing deleted successfully"})
}
