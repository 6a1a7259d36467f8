package handlers

import (
	"log"
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"backend/internal/config"
	"backend/internal/models"
)

type productModerationRequest struct {
	Status  string `json:"status" binding:"required"`
	Publish *bool  `json:"publish"`
}

type profileModerationRequest struct {
	Status string `json:"status" binding:"required"`
}

// AdminModerateProduct approves or rejects a listing. Approval alone does not
// publish; both gates are independent and must be true for public visibility.
func AdminModerateProduct(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		const route = "PATCH /admin/products/:id"
		defer handlePanic(c, route)

		var req productModerationRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			respondWithError(c, http.StatusBadRequest, route, "invalid request body")
			return
		}

		status := models.NormalizeStatus(req.Status)
		if status != models.ProductStatusApproved && status != models.ProductStatusRejected {
			respondWithError(c, http.StatusBadRequest, route, "invalid status")
			return
		}

		updates := map[string]interface{}{"status": status}
		if req.Publish != nil {
			updates["is_published"] = *req.Publish
		}
		if status == models.ProductStatusRejected {
			updates["is_published"] = false
		}

		ctx, cancel := requestContext(c)
		defer cancel()

		result := db.WithContext(ctx).Model(&models.Product{}).
			Where("id = ?", c.Param("id")).
			Updates(updates)
		if result.Error != nil {
			respondWithError(c, http.StatusInternalServerError, route, "db error")
			return
		}
		if result.RowsAffected == 0 {
			respondWithError(c, http.StatusNotFound, route, "product not found")
			return
		}

		log.Printf("[ADMIN] [INFO] product %s set to %s", c.Param("id"), status)
		c.JSON(http.StatusOK, gin.H{"success": true, "status": status})
	}
}

func AdminListPendingProducts(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		const route = "GET /admin/products"
		defer handlePanic(c, route)

		ctx, cancel := requestContext(c)
		defer cancel()

		query := db.WithContext(ctx).Order("created_at DESC")
		if status := models.NormalizeStatus(c.Query("status")); status != "" {
			query = query.Where("status = ?", status)
		}

		var products []models.Product
		if err := query.Find(&products).Error; err != nil {
			respondWithError(c, http.StatusInternalServerError, route, "db error")
			return
		}

		c.JSON(http.StatusOK, products)
	}
}

func moderateProfile(db *gorm.DB, route string, model interface{}) gin.HandlerFunc {
	return func(c *gin.Context) {
		defer handlePanic(c, route)

		var req profileModerationRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			respondWithError(c, http.StatusBadRequest, route, "invalid request body")
			return
		}

		status := models.NormalizeStatus(req.Status)
		switch status {
		case models.ProfileStatusApproved, models.ProfileStatusSuspended, models.ProfileStatusPending:
		default:
			respondWithError(c, http.StatusBadRequest, route, "invalid status")
			return
		}

		ctx, cancel := requestContext(c)
		defer cancel()

		result := db.WithContext(ctx).Model(model).
			Where("id = ?", c.Param("id")).
			Update("status", status)
		if result.Error != nil {
			respondWithError(c, http.StatusInternalServerError, route, "db error")
			return
		}
		if result.RowsAffected == 0 {
			respondWithError(c, http.StatusNotFound, route, "profile not found")
			return
		}

		log.Printf("[ADMIN] [INFO] %s: profile %s set to %s", route, c.Param("id"), status)
		c.JSON(http.StatusOK, gin.H{"success": true, "status": status})
	}
}

func AdminModerateVendorProfile(db *gorm.DB) gin.HandlerFunc {
	return moderateProfile(db, "PATCH /admin/vendors/:id", &models.VendorProfile{})
}

func AdminModerateCustomerProfile(db *gorm.DB) gin.HandlerFunc {
	return moderateProfile(db, "PATCH /admin/customers/:id", &models.CustomerProfile{})
}

func AdminListOrders(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		const route = "GET /admin/orders"
		defer handlePanic(c, route)

		page, limit, err := parsePaginationParams(c.Query("page"), c.Query("limit"), config.AppEnv.DefaultPageSize)
		if err != nil {
			respondWithError(c, http.StatusBadRequest, route, "invalid pagination params")
			return
		}

		ctx, cancel := requestContext(c)
		defer cancel()

		query := db.WithContext(ctx).Model(&models.Order{})
		if status := models.NormalizeStatus(c.Query("status")); status != "" {
			query = query.Where("status = ?", status)
		}

		var total int64
		if err := query.Count(&total).Error; err != nil {
			respondWithError(c, http.StatusInternalServerError, route, "db error")
			return
		}

		var orders []models.Order
		if err := query.
			Preload("Items").
			Order("created_at DESC").
			Offset(int((page - 1) * limit)).
			Limit(int(limit)).
			Find(&orders).Error; err != nil {
			respondWithError(c, http.StatusInternalServerError, route, "db error")
			return
		}

		c.JSON(http.StatusOK, gin.H{
			"data": orders,
			"pagination": gin.H{
				"page":  page,
				"limit": limit,
				"total": total,
			},
		})
	}
}
