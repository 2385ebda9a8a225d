package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Category from the "categories" collection. Name is unique, Order is the
// display sort position (lower first) and is not required to be unique.
type Category struct {
	ID        primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	Name      string             `bson:"name" json:"name"`
	Order     int                `bson:"order" json:"order"`
	Icon      string             `bson:"icon,omitempty" json:"icon"`
	CreatedAt time.Time          `bson:"createdAt,omitempty" json:"createdAt"`
	UpdatedAt time.Time          `bson:"updatedAt,omitempty" json:"updatedAt,omitempty"`
}
