package database

import (
	"context"
	"log"
	"time"

	"machinery-rental-admin-api/config"
	"machinery-rental-admin-api/internal/auth"
	"machinery-rental-admin-api/internal/models"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
)

// SeedAdmin creates the single dashboard admin account if it does not exist
// yet. Credentials come from config; the generated uid doubles as the
// cross-collection user id.
func SeedAdmin(db *mongo.Database, cfg config.Config) error {
	userCollection := db.Collection("users")

	email := cfg.Admin.Email
	if email == "" {
		email = "admin@heavyrent.com"
	}

	count, err := userCollection.CountDocuments(context.Background(), bson.M{"email": email})
	if err != nil {
		return err
	}

	if count > 0 {
		log.Println("Admin account already exists. Seeding skipped.")
		return nil
	}

	log.Println("Admin account not found. Seeding...")
	password := cfg.Admin.Password
	if password == "" {
		password = "Admin@123456"
	}
	hashedPassword, err := auth.HashPassword(password)
	if err != nil {
		return err
	}

	name := cfg.Admin.Name
	if name == "" {
		name = "Admin"
	}

	admin := models.User{
		UID:        uuid.New().String(),
		Email:      email,
		Password:   hashedPassword,
		FirstName:  name,
		LastName:   "User",
		Phone:      cfg.Admin.Phone,
		Role:       "admin",
		IsVerified: true,
		CreatedAt:  time.Now(),
	}

	_, err = userCollection.InsertOne(context.Background(), admin)
	if err != nil {
		return err
	}

	log.Println("Admin account seeded successfully.")
	return nil
}
