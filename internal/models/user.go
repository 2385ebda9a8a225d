package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// User document from the "users" collection. UID is the auth account id used
// as the cross-collection foreign key. IsVerified and IsBlocked are
// independent flags, not mutually exclusive states.
type User struct {
	ID             primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	UID            string             `bson:"uid" json:"uid"`
	Email          string             `bson:"email" json:"email"`
	Password       string             `bson:"password,omitempty" json:"-"`
	FirstName      string             `bson:"firstName,omitempty" json:"firstName"`
	LastName       string             `bson:"lastName,omitempty" json:"lastName"`
	Phone          string             `bson:"phone,omitempty" json:"phone"`
	Address        string             `bson:"address,omitempty" json:"address"`
	CNIC           string             `bson:"cnic,omitempty" json:"cnic"`
	ProfilePicture string             `bson:"profilePicture,omitempty" json:"profilePicture"`
	Role           string             `bson:"role" json:"role"` // user, admin
	IsVerified     bool               `bson:"isVerified" json:"isVerified"`
	IsBlocked      bool               `bson:"isBlocked" json:"isBlocked"`
	CreatedAt      time.Time          `bson:"createdAt,omitempty" json:"createdAt"`
}
