package notify

import (
	"context"
	"fmt"
	"time"

	"machinery-rental-admin-api/internal/models"

	"go.mongodb.org/mongo-driver/mongo"
)

// Notifier writes the notification documents that admin actions fan out.
// Failures are surfaced to the caller; nothing is retried automatically.
type Notifier struct {
	DB *mongo.Database
}

// NotifyUserAdminReply writes the user-facing notification for an admin chat
// reply. machineryDetails is nil for general support conversations.
func (n *Notifier) NotifyUserAdminReply(ctx context.Context, userID, message, chatID string, machineryDetails *models.MachinerySnapshot) error {
	notification := models.UserNotification{
		Type:             "admin_reply",
		Title:            "Admin Reply",
		Message:          message,
		UserID:           userID,
		ChatID:           chatID,
		MachineryDetails: machineryDetails,
		Status:           StatusUnread,
		CreatedAt:        time.Now(),
	}
	_, err := n.DB.Collection("userNotifications").InsertOne(ctx, notification)
	return err
}

// NotifyAdminNewMessage writes the admin-facing notification for an incoming
// user message.
func (n *Notifier) NotifyAdminNewMessage(ctx context.Context, userID, userName, message, chatID string, machineryDetails *models.MachinerySnapshot) error {
	title := "New general message"
	if machineryDetails != nil {
		title = fmt.Sprintf("New inquiry about %s", machineryDetails.Name)
	}
	notification := models.AdminNotification{
		Type:             TypeNewMessage,
		Title:            title,
		Message:          fmt.Sprintf("%s: %s", userName, message),
		UserID:           userID,
		UserName:         userName,
		ChatID:           chatID,
		MachineryDetails: machineryDetails,
		Status:           StatusUnread,
		CreatedAt:        time.Now(),
	}
	_, err := n.DB.Collection("adminNotifications").InsertOne(ctx, notification)
	return err
}

// NotifyAdDecision writes the user-facing notification for an ad approval or
// rejection. approved selects the message variant.
func (n *Notifier) NotifyAdDecision(ctx context.Context, listing models.Listing, approved bool) error {
	notification := models.UserNotification{
		UserID: listing.UserID,
		AdID:   listing.ID.Hex(),
		AdData: map[string]interface{}{
			"name":     listing.Name,
			"price":    listing.Price,
			"category": listing.CategoryName,
		},
		Status:    StatusUnread,
		CreatedAt: time.Now(),
	}
	if approved {
		notification.Type = "ad_approved"
		notification.Title = "Ad Successfully Posted!"
		notification.Message = fmt.Sprintf("Your ad %q has been approved and is now live! Rent: ₹%v/day", listing.Name, listing.Price)
		notification.Priority = "high"
	} else {
		notification.Type = "ad_rejected"
		notification.Title = "Ad Rejected"
		notification.Message = fmt.Sprintf("Your ad %q was rejected. Please contact support for details.", listing.Name)
		notification.Reason = "Please contact support for details"
		notification.Priority = "medium"
	}
	_, err := n.DB.Collection("userNotifications").InsertOne(ctx, notification)
	return err
}

// NotifyRentApproved writes the two "notifications" records sent on rent
// approval: rent_approved to the renter and machinery_rented to the owner.
func (n *Notifier) NotifyRentApproved(ctx context.Context, req models.RentRequest) error {
	collection := n.DB.Collection("notifications")
	now := time.Now()

	renter := models.RentNotification{
		UserID:    req.UserID,
		Type:      "rent_approved",
		Title:     "Rent Request Approved",
		Message:   fmt.Sprintf("Your rent request for %q has been approved! Check chat for owner details.", req.MachineryName),
		RequestID: req.ID.Hex(),
		Status:    StatusUnread,
		CreatedAt: now,
	}
	if _, err := collection.InsertOne(ctx, renter); err != nil {
		return err
	}

	owner := models.RentNotification{
		UserID:           req.MachineryOwnerID,
		Type:             "machinery_rented",
		Title:            "Your Machinery has been Rented",
		Message:          fmt.Sprintf("Your %q has been rented! Renter will contact you soon. Contact: %s", req.MachineryName, req.UserPhone),
		RequestID:        req.ID.Hex(),
		MachineryID:      req.MachineryID,
		MachineryName:    req.MachineryName,
		RenterName:       req.UserName,
		RenterPhone:      req.UserPhone,
		RenterAddress:    req.UserAddress,
		RentalStartDate:  req.RentalStartDate,
		RentalDuration:   req.RentalDuration,
		DeliveryLocation: req.DeliveryLocation,
		Status:           StatusUnread,
		CreatedAt:        now,
	}
	_, err := collection.InsertOne(ctx, owner)
	return err
}
