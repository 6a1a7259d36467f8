package handlers

import (
	"errors"
	"log"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"backend/internal/models"
)

type createListingRequest struct {
	BaseProductID string  `json:"baseProductId" binding:"required"`
	Price         float64 `json:"price" binding:"required"`
	Quantity      int     `json:"quantity"`
	SKU           string  `json:"sku"`
}

type updateListingRequest struct {
	Price    *float64 `json:"price"`
	Quantity *int     `json:"quantity"`
	SKU      *string  `json:"sku"`
}

func GetVendorListings(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		const route = "GET /vendor/listings"
		defer handlePanic(c, route)

		ctx, cancel := requestContext(c)
		defer cancel()

		var listings []models.Product
		if err := db.WithContext(ctx).
			Where("vendor_id = ?", callerID(c)).
			Order("created_at DESC").
			Find(&listings).Error; err != nil {
			respondWithError(c, http.StatusInternalServerError, route, "db error")
			return
		}

		c.JSON(http.StatusOK, listings)
	}
}

// CreateListing clones a base catalog product into a vendor-owned listing:
// name, images and specs are copied, the vendor sets its own price, quantity
// and SKU. New listings start PENDING and unpublished.
func CreateListing(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		const route = "POST /vendor/listings"
		defer handlePanic(c, route)

		var req createListingRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			respondWithError(c, http.StatusBadRequest, route, "invalid request body")
			return
		}
		if req.Price <= 0 {
			respondWithError(c, http.StatusBadRequest, route, "price must be greater than 0")
			return
		}
		if req.Quantity < 0 {
			respondWithError(c, http.StatusBadRequest, route, "quantity cannot be negative")
			return
		}

		vendorID := callerID(c)

		ctx, cancel := requestContext(c)
		defer cancel()

		var base models.Product
		err := db.WithContext(ctx).
			Where("id = ? AND status = ?", req.BaseProductID, models.ProductStatusApproved).
			First(&base).Error
		if errors.Is(err, gorm.ErrRecordNotFound) {
			respondWithError(c, http.StatusNotFound, route, "base product not found")
			return
		}
		if err != nil {
			respondWithError(c, http.StatusInternalServerError, route, "db error")
			return
		}

		listing := models.Product{
			ID:            uuid.NewString(),
			VendorID:      vendorID,
			BaseProductID: &base.ID,
			Name:          base.Name,
			SKU:           strings.TrimSpace(req.SKU),
			Price:         req.Price,
			Quantity:      req.Quantity,
			Status:        models.ProductStatusPending,
			IsPublished:   false,
			Images:        base.Images,
			Specs:         base.Specs,
		}

		if err := db.WithContext(ctx).Create(&listing).Error; err != nil {
			respondWithError(c, http.StatusInternalServerError, route, "db error")
			return
		}

		log.Println("[CATALOG] [INFO] listing created:", listing.ID)
		c.JSON(http.StatusCreated, gin.H{"success": true, "listing": listing})
	}
}

// UpdateListing applies a partial update. A price change on an APPROVED
// listing fires the re-review gate: status back to PENDING, unpublished.
func UpdateListing(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		const route = "PUT /vendor/listings/:id"
		defer handlePanic(c, route)

		var req updateListingRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			respondWithError(c, http.StatusBadRequest, route, "invalid request body")
			return
		}

		vendorID := callerID(c)
		listingID := c.Param("id")

		ctx, cancel := requestContext(c)
		defer cancel()

		var listing models.Product
		err := db.WithContext(ctx).
			Where("id = ? AND vendor_id = ?", listingID, vendorID).
			First(&listing).Error
		if errors.Is(err, gorm.ErrRecordNotFound) {
			respondWithError(c, http.StatusNotFound, route, "listing not found")
			return
		}
		if err != nil {
			respondWithError(c, http.StatusInternalServerError, route, "db error")
			return
		}

		resolved, err := resolveListingUpdate(listing, listingUpdateInput{
			Price:    req.Price,
			Quantity: req.Quantity,
			SKU:      req.SKU,
		})
		if err != nil {
			respondWithError(c, http.StatusBadRequest, route, err.Error())
			return
		}

		updates := map[string]interface{}{
			"price":    resolved.Price,
			"quantity": resolved.Quantity,
			"sku":      resolved.SKU,
		}
		if resolved.ResetForReview {
			updates["status"] = models.ProductStatusPending
			updates["is_published"] = false
			log.Printf("[CATALOG] [INFO] listing %s reset to pending after price change", listingID)
		}

		if err := db.WithContext(ctx).Model(&models.Product{}).
			Where("id = ?", listing.ID).
			Updates(updates).Error; err != nil {
			respondWithError(c, http.StatusInternalServerError, route, "db error")
			return
		}

		c.JSON(http.StatusOK, gin.H{"success": true, "resetForReview": resolved.ResetForReview})
	}
}
