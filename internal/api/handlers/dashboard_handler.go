package handlers

import (
	"context"
	"net/http"
	"time"

	"machinery-rental-admin-api/internal/derive"
	"machinery-rental-admin-api/internal/models"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
)

type DashboardHandler struct {
	DB *mongo.Database
}

// ListingStats are the machinery tiles on the dashboard.
type ListingStats struct {
	TotalListings    int     `json:"totalListings"`
	PendingListings  int     `json:"pendingListings"`
	ApprovedListings int     `json:"approvedListings"`
	RejectedListings int     `json:"rejectedListings"`
	EstimatedRevenue float64 `json:"estimatedRevenue"`
}

// DashboardStats is the combined overview payload.
type DashboardStats struct {
	Listings   ListingStats   `json:"listings"`
	Rentals    derive.Summary `json:"rentals"`
	TotalUsers int64          `json:"totalUsers"`
}

// GetStats computes the dashboard overview. Everything is a client-side fold
// over full collection reads, so the numbers always agree with the lists the
// admin sees elsewhere.
func (h *DashboardHandler) GetStats(c *gin.Context) {
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

	listingStats := ListingStats{
		TotalListings:    len(listings),
		EstimatedRevenue: derive.EstimatedListingRevenue(listings),
	}
	for _, l := range listings {
		switch l.Status {
		case "pending":
			listingStats.PendingListings++
		case "approved":
			listingStats.ApprovedListings++
		case "rejected":
			listingStats.RejectedListings++
		}
	}

	rentCursor, err := h.DB.Collection("rentRequests").Find(context.Background(), bson.M{})
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to query rent requests"})
		return
	}
	defer rentCursor.Close(context.Background())

	var requests []models.RentRequest
	if err = rentCursor.All(context.Background(), &requests); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to decode rent requests"})
		return
	}

	totalUsers, err := h.DB.Collection("users").CountDocuments(context.Background(), bson.M{})
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to count users"})
		return
	}

	c.JSON(http.StatusOK, DashboardStats{
		Listings:   listingStats,
		Rentals:    derive.Aggregate(requests, time.Now()),
		TotalUsers: totalUsers,
	})
}
