package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// ChatMessage belongs to a conversation identified by ChatID. The conversation
// class is encoded in the ChatID prefix (general_, admin_initiated_,
// machinery_) and is parsed once through the chatid package. Messages in a
// machinery_ conversation carry the listing snapshot; general ones do not.
type ChatMessage struct {
	ID               primitive.ObjectID     `bson:"_id,omitempty" json:"id"`
	ChatID           string                 `bson:"chatId" json:"chatId"`
	SenderID         string                 `bson:"senderId" json:"senderId"`
	SenderName       string                 `bson:"senderName" json:"senderName"`
	SenderType       string                 `bson:"senderType" json:"senderType"` // user or admin
	RecipientID      string                 `bson:"recipientId,omitempty" json:"recipientId,omitempty"`
	Message          string                 `bson:"message" json:"message"`
	MachineryDetails *MachinerySnapshot     `bson:"machineryDetails,omitempty" json:"machineryDetails,omitempty"`
	Type             string                 `bson:"type,omitempty" json:"type,omitempty"` // text, publisher_card, renter_card
	PublisherCard    map[string]interface{} `bson:"publisherCard,omitempty" json:"publisherCard,omitempty"`
	RenterCard       map[string]interface{} `bson:"renterCard,omitempty" json:"renterCard,omitempty"`
	CreatedAt        time.Time              `bson:"createdAt,omitempty" json:"createdAt"`
	Status           string                 `bson:"status,omitempty" json:"status"` // sent, delivered, read
}
