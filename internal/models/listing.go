package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Specifications holds the free-form machinery spec fields filled in by the owner.
type Specifications struct {
	Condition string `bson:"condition,omitempty" json:"condition"`
	Power     string `bson:"power,omitempty" json:"power"`
	Capacity  string `bson:"capacity,omitempty" json:"capacity"`
	Torque    string `bson:"torque,omitempty" json:"torque"`
}

// Listing is a machinery rental ad in the "machinery" collection.
// Price is stored as the mobile app wrote it, which may be a number or a
// string with currency noise; normalize through derive.ParseAmount.
type Listing struct {
	ID             primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	Name           string             `bson:"name" json:"name"`
	Description    string             `bson:"description,omitempty" json:"description"`
	Category       string             `bson:"category" json:"category"`
	CategoryName   string             `bson:"categoryName,omitempty" json:"categoryName"`
	Price          interface{}        `bson:"price" json:"price"`
	RentPerDay     interface{}        `bson:"rentPerDay,omitempty" json:"rentPerDay"`
	AdminPrice     interface{}        `bson:"adminPrice,omitempty" json:"adminPrice,omitempty"`
	OwnerName      string             `bson:"ownerName,omitempty" json:"ownerName"`
	OwnerPhone     string             `bson:"ownerPhone,omitempty" json:"ownerPhone"`
	OwnerEmail     string             `bson:"ownerEmail,omitempty" json:"ownerEmail"`
	Address        string             `bson:"address,omitempty" json:"address"`
	Location       string             `bson:"location,omitempty" json:"location"`
	ImageURLs      []string           `bson:"imageUrls,omitempty" json:"imageUrls"`
	Specifications Specifications     `bson:"specifications,omitempty" json:"specifications"`
	RentalPolicies []string           `bson:"rentalPolicies,omitempty" json:"rentalPolicies"`
	Status         string             `bson:"status" json:"status"` // pending, approved, rejected
	UserID         string             `bson:"userId" json:"userId"`
	CreatedAt      time.Time          `bson:"createdAt,omitempty" json:"createdAt"`
	ApprovedAt     time.Time          `bson:"approvedAt,omitempty" json:"approvedAt,omitempty"`
	RejectedAt     time.Time          `bson:"rejectedAt,omitempty" json:"rejectedAt,omitempty"`
	PriceUpdatedAt time.Time          `bson:"priceUpdatedAt,omitempty" json:"priceUpdatedAt,omitempty"`
	PriceUpdatedBy string             `bson:"priceUpdatedBy,omitempty" json:"priceUpdatedBy,omitempty"`
}

// MachinerySnapshot is the listing excerpt embedded in chat messages and
// notifications at write time. It is never re-joined against the listing.
type MachinerySnapshot struct {
	ID       string      `bson:"id" json:"id"`
	Name     string      `bson:"name" json:"name"`
	Category string      `bson:"category,omitempty" json:"category"`
	Price    interface{} `bson:"price,omitempty" json:"price"`
	Location string      `bson:"location,omitempty" json:"location"`
	ImageURL string      `bson:"imageUrl,omitempty" json:"imageUrl"`
}
