package handlers

import (
	"context"
	"net/http"
	"time"

	"machinery-rental-admin-api/internal/models"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type CategoryHandler struct {
	DB *mongo.Database
}

// GetAllCategories lists categories in display order.
func (h *CategoryHandler) GetAllCategories(c *gin.Context) {
	findOpts := options.Find().SetSort(bson.D{{Key: "order", Value: 1}})
	cursor, err := h.DB.Collection("categories").Find(context.Background(), bson.M{}, findOpts)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to query categories"})
		return
	}
	defer cursor.Close(context.Background())

	var categories []models.Category
	if err = cursor.All(context.Background(), &categories); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to decode categories"})
		return
	}

	if categories == nil {
		categories = []models.Category{}
	}

	c.JSON(http.StatusOK, categories)
}

type CreateCategoryRequest struct {
	Name string `json:"name" binding:"required"`
	Icon string `json:"icon"`
}

// CreateCategory appends a category at the end of the display order. Names
// must be unique.
func (h *CategoryHandler) CreateCategory(c *gin.Context) {
	var req CreateCategoryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	collection := h.DB.Collection("categories")

	count, err := collection.CountDocuments(context.Background(), bson.M{"name": req.Name})
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to check category name"})
		return
	}
	if count > 0 {
		c.JSON(http.StatusConflict, gin.H{"error": "Category with this name already exists"})
		return
	}

	// New categories go last: max existing order plus one.
	nextOrder := 0
	var last models.Category
	findOpts := options.FindOne().SetSort(bson.D{{Key: "order", Value: -1}})
	err = collection.FindOne(context.Background(), bson.M{}, findOpts).Decode(&last)
	if err == nil {
		nextOrder = last.Order + 1
	} else if err != mongo.ErrNoDocuments {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to determine category order"})
		return
	}

	category := models.Category{
		Name:      req.Name,
		Order:     nextOrder,
		Icon:      req.Icon,
		CreatedAt: time.Now(),
	}

	result, err := collection.InsertOne(context.Background(), category)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create category"})
		return
	}

	category.ID = result.InsertedID.(primitive.ObjectID)
	c.JSON(http.StatusCreated, category)
}

type UpdateCategoryRequest struct {
	Name string `json:"name" binding:"required"`
	Icon string `json:"icon"`
}

// UpdateCategory renames a category or changes its icon. Uniqueness is checked
// against the other categories.
func (h *CategoryHandler) UpdateCategory(c *gin.Context) {
	oid, err := primitive.ObjectIDFromHex(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid category id"})
		return
	}

	var req UpdateCategoryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	collection := h.DB.Collection("categories")

	count, err := collection.CountDocuments(context.Background(), bson.M{"name": req.Name, "_id": bson.M{"$ne": oid}})
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to check category name"})
		return
	}
	if count > 0 {
		c.JSON(http.StatusConflict, gin.H{"error": "Category with this name already exists"})
		return
	}

	result, err := collection.UpdateOne(context.Background(),
		bson.M{"_id": oid},
		bson.M{"$set": bson.M{
			"name":      req.Name,
			"icon":      req.Icon,
			"updatedAt": time.Now(),
		}},
	)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update category"})
		return
	}
	if result.MatchedCount == 0 {
		c.JSON(http.StatusNotFound, gin.H{"error": "Category not found"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Category updated successfully"})
}

type ReorderCategoriesRequest struct {
	// Ordered category ids; position in the slice becomes the order value.
	IDs []string `json:"ids" binding:"required"`
}

// ReorderCategories rewrites the order field of every listed category. Updates
// are sequential; an error mid-way leaves a partial reorder the client can
// simply resubmit.
func (h *CategoryHandler) ReorderCategories(c *gin.Context) {
	var req ReorderCategoriesRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	collection := h.DB.Collection("categories")
	now := time.Now()

	for i, id := range req.IDs {
		oid, err := primitive.ObjectIDFromHex(id)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid category id: " + id})
			return
		}
		_, err = collection.UpdateOne(context.Background(),
			bson.M{"_id": oid},
			bson.M{"$set": bson.M{"order": i, "updatedAt": now}},
		)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to reorder categories"})
			return
		}
	}

	c.JSON(http.StatusOK, gin.H{"message": "Categories reordered successfully"})
}

// DeleteCategory removes a category. Listings already filed under it keep
// their stored category name.
func (h *CategoryHandler) DeleteCategory(c *gin.Context) {
	oid, err := primitive.ObjectIDFromHex(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid category id"})
		return
	}

	result, err := h.DB.Collection("categories").DeleteOne(context.Background(), bson.M{"_id": oid})
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete category"})
		return
	}
	if result.DeletedCount == 0 {
		c.JSON(http.StatusNotFound, gin.H{"error": "Category not found"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Category deleted successfully"})
}
