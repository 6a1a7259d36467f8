package handlers

import (
	"errors"
	"log"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"backend/internal/config"
	"backend/internal/models"
)

type requestRefundRequest struct {
	OrderItemID string   `json:"orderItemId" binding:"required"`
	Reason      string   `json:"reason" binding:"required"`
	ImageURL    string   `json:"imageUrl"`
	ImageURLs   []string `json:"imageUrls"`
}

type refundDecisionRequest struct {
	Decision string `json:"decision" binding:"required"`
}

// RequestRefund creates a PENDING refund and flips the item to
// REFUND_REQUESTED in one transaction. The unique index on orderItemId makes
// a second request for the same item fail with Conflict no matter how the
// first one ended.
func RequestRefund(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		const route = "POST /refunds"
		defer handlePanic(c, route)

		var req requestRefundRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			respondWithError(c, http.StatusBadRequest, route, "invalid request body")
			return
		}

		customerID := callerID(c)

		ctx, cancel := requestContext(c)
		defer cancel()

		refund := models.RefundRequest{
			ID:          uuid.NewString(),
			OrderItemID: req.OrderItemID,
			CustomerID:  customerID,
			Reason:      strings.TrimSpace(req.Reason),
			Status:      models.RefundStatusPending,
			ProofImages: mergeComplaintImages(req.ImageURL, req.ImageURLs),
		}

		err := db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
			var item models.OrderItem
			err := tx.Joins("JOIN orders ON orders.id = order_items.order_id").
				Where("order_items.id = ? AND orders.customer_id = ?", req.OrderItemID, customerID).
				First(&item).Error
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return NotFoundError{Resource: "order item"}
			}
			if err != nil {
				return err
			}
			refund.VendorID = item.VendorID

			if err := tx.Create(&refund).Error; err != nil {
				if errors.Is(err, gorm.ErrDuplicatedKey) {
					return ConflictError{Msg: "refund already requested for this item"}
				}
				return err
			}

			return tx.Model(&models.OrderItem{}).
				Where("id = ?", item.ID).
				Update("status", models.ItemStatusRefundRequested).Error
		})
		if err != nil {
			respondWithDomainError(c, route, err)
			return
		}

		log.Println("[REFUND] [INFO] refund requested:", refund.ID)
		c.JSON(http.StatusCreated, gin.H{"success": true, "refundId": refund.ID})
	}
}

func AdminListRefunds(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		const route = "GET /admin/refunds"
		defer handlePanic(c, route)

		page, limit, err := parsePaginationParams(c.Query("page"), c.Query("limit"), config.AppEnv.DefaultPageSize)
		if err != nil {
			respondWithError(c, http.StatusBadRequest, route, "invalid pagination params")
			return
		}

		ctx, cancel := requestContext(c)
		defer cancel()

		query := db.WithContext(ctx).Model(&models.RefundRequest{})
		if status := models.NormalizeStatus(c.Query("status")); status != "" {
			query = query.Where("status = ?", status)
		}

		var total int64
		if err := query.Count(&total).Error; err != nil {
			respondWithError(c, http.StatusInternalServerError, route, "db error")
			return
		}

		var refunds []models.RefundRequest
		if err := query.
			Order("created_at DESC").
			Offset(int((page - 1) * limit)).
			Limit(int(limit)).
			Find(&refunds).Error; err != nil {
			respondWithError(c, http.StatusInternalServerError, route, "db error")
			return
		}

		c.JSON(http.StatusOK, gin.H{
			"data": refunds,
			"pagination": gin.H{
				"page":  page,
				"limit": limit,
				"total": total,
			},
		})
	}
}

// AdminRefundDecision writes the refund status field only. It deliberately
// does not retrigger order status derivation.
func AdminRefundDecision(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		const route = "POST /admin/refunds/:id/decision"
		defer handlePanic(c, route)

		var req refundDecisionRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			respondWithError(c, http.StatusBadRequest, route, "invalid request body")
			return
		}

		decision := models.NormalizeStatus(req.Decision)
		if decision != models.RefundStatusApproved && decision != models.RefundStatusRejected {
			respondWithError(c, http.StatusBadRequest, route, "invalid decision")
			return
		}

		ctx, cancel := requestContext(c)
		defer cancel()

		result := db.WithContext(ctx).Model(&models.RefundRequest{}).
			Where("id = ?", c.Param("id")).
			Update("status", decision)
		if result.Error != nil {
			respondWithError(c, http.StatusInternalServerError, route, "db error")
			return
		}
		if result.RowsAffected == 0 {
			respondWithError(c, http.StatusNotFound, route, "refund not found")
			return
		}

		log.Printf("[REFUND] [INFO] refund %s %s", c.Param("id"), decision)
		c.JSON(http.StatusOK, gin.H{"success": true, "status": decision})
	}
}
