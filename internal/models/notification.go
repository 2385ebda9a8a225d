package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// AdminNotification lives in "adminNotifications". new_message notifications
// reference the chat they came from; the unread/read lifecycle is
// one-directional and only an explicit admin action deletes one.
type AdminNotification struct {
	ID               primitive.ObjectID     `bson:"_id,omitempty" json:"id"`
	Type             string                 `bson:"type" json:"type"` // new_message, new_ad, ...
	Title            string                 `bson:"title" json:"title"`
	Message          string                 `bson:"message" json:"message"`
	UserID           string                 `bson:"userId,omitempty" json:"userId,omitempty"`
	UserName         string                 `bson:"userName,omitempty" json:"userName,omitempty"`
	ChatID           string                 `bson:"chatId,omitempty" json:"chatId,omitempty"`
	AdID             string                 `bson:"adId,omitempty" json:"adId,omitempty"`
	AdData           map[string]interface{} `bson:"adData,omitempty" json:"adData,omitempty"`
	MachineryDetails *MachinerySnapshot     `bson:"machineryDetails,omitempty" json:"machineryDetails,omitempty"`
	Priority         string                 `bson:"priority,omitempty" json:"priority,omitempty"` // high, medium, low
	Status           string                 `bson:"status" json:"status"`                         // unread, read
	CreatedAt        time.Time              `bson:"createdAt,omitempty" json:"createdAt"`
	ReadAt           *time.Time             `bson:"readAt,omitempty" json:"readAt,omitempty"`
}

// UserNotification is the user-facing counterpart in "userNotifications",
// written on admin replies and ad decisions. Same read lifecycle.
type UserNotification struct {
	ID               primitive.ObjectID     `bson:"_id,omitempty" json:"id"`
	Type             string                 `bson:"type" json:"type"` // admin_reply, ad_approved, ad_rejected
	Title            string                 `bson:"title" json:"title"`
	Message          string                 `bson:"message" json:"message"`
	UserID           string                 `bson:"userId" json:"userId"`
	ChatID           string                 `bson:"chatId,omitempty" json:"chatId,omitempty"`
	AdID             string                 `bson:"adId,omitempty" json:"adId,omitempty"`
	AdData           map[string]interface{} `bson:"adData,omitempty" json:"adData,omitempty"`
	MachineryDetails *MachinerySnapshot     `bson:"machineryDetails,omitempty" json:"machineryDetails,omitempty"`
	Reason           string                 `bson:"reason,omitempty" json:"reason,omitempty"`
	Priority         string                 `bson:"priority,omitempty" json:"priority,omitempty"`
	Status           string                 `bson:"status" json:"status"`
	CreatedAt        time.Time              `bson:"createdAt,omitempty" json:"createdAt"`
	ReadAt           *time.Time             `bson:"readAt,omitempty" json:"readAt,omitempty"`
}

// RentNotification is written to "notifications" on rent approval, one for the
// renter (rent_approved) and one for the machinery owner (machinery_rented).
type RentNotification struct {
	ID               primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	UserID           string             `bson:"userId" json:"userId"`
	Type             string             `bson:"type" json:"type"`
	Title            string             `bson:"title" json:"title"`
	Message          string             `bson:"message" json:"message"`
	RequestID        string             `bson:"requestId" json:"requestId"`
	MachineryID      string             `bson:"machineryId,omitempty" json:"machineryId,omitempty"`
	MachineryName    string             `bson:"machineryName,omitempty" json:"machineryName,omitempty"`
	RenterName       string             `bson:"renterName,omitempty" json:"renterName,omitempty"`
	RenterPhone      string             `bson:"renterPhone,omitempty" json:"renterPhone,omitempty"`
	RenterAddress    string             `bson:"renterAddress,omitempty" json:"renterAddress,omitempty"`
	RentalStartDate  string             `bson:"rentalStartDate,omitempty" json:"rentalStartDate,omitempty"`
	RentalDuration   string             `bson:"rentalDuration,omitempty" json:"rentalDuration,omitempty"`
	DeliveryLocation string             `bson:"deliveryLocation,omitempty" json:"deliveryLocation,omitempty"`
	Status           string             `bson:"status" json:"status"`
	CreatedAt        time.Time          `bson:"createdAt,omitempty" json:"createdAt"`
}
