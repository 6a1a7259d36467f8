package handlers

import (
	"errors"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"backend/internal/models"
)

type vendorOrderActionRequest struct {
	Action string `json:"action" binding:"required"`
}

// GetVendorOrders returns the caller vendor's items grouped under their
// parent orders.
func GetVendorOrders(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		const route = "GET /vendor/orders"
		defer handlePanic(c, route)

		ctx, cancel := requestContext(c)
		defer cancel()

		var items []models.OrderItem
		if err := db.WithContext(ctx).
			Where("vendor_id = ?", callerID(c)).
			Order("created_at DESC").
			Find(&items).Error; err != nil {
			respondWithError(c, http.StatusInternalServerError, route, "db error")
			return
		}

		orderIDs := make([]string, 0, len(items))
		seen := make(map[string]bool, len(items))
		for _, item := range items {
			if !seen[item.OrderID] {
				seen[item.OrderID] = true
				orderIDs = append(orderIDs, item.OrderID)
			}
		}

		var orders []models.Order
		if len(orderIDs) > 0 {
			if err := db.WithContext(ctx).
				Where("id IN ?", orderIDs).
				Order("created_at DESC").
				Find(&orders).Error; err != nil {
				respondWithError(c, http.StatusInternalServerError, route, "db error")
				return
			}
		}

		itemsByOrder := make(map[string][]models.OrderItem, len(orderIDs))
		for _, item := range items {
			itemsByOrder[item.OrderID] = append(itemsByOrder[item.OrderID], item)
		}
		for i := range orders {
			orders[i].Items = itemsByOrder[orders[i].ID]
		}

		log.Printf("[%s] returning %d orders", route, len(orders))
		c.JSON(http.StatusOK, orders)
	}
}

// VendorOrderAction applies ACCEPT or REJECT to the caller vendor's items on
// an order, then re-derives the aggregate order status across all vendors.
func VendorOrderAction(db *gorm.DB, notifier Notifier) gin.HandlerFunc {
	return func(c *gin.Context) {
		const route = "POST /vendor/orders/:id/action"
		defer handlePanic(c, route)

		var req vendorOrderActionRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			respondWithError(c, http.StatusBadRequest, route, "invalid request body")
			return
		}

		vendorID := callerID(c)
		orderID := c.Param("id")

		ctx, cancel := requestContext(c)
		defer cancel()

		var order models.Order
		var derivedStatus string
		err := db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
			err := tx.Preload("Items").Where("id = ?", orderID).First(&order).Error
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return NotFoundError{Resource: "order"}
			}
			if err != nil {
				return err
			}

			plan, err := planVendorTransition(order.Items, vendorID, req.Action)
			if err != nil {
				return err
			}

			if err := tx.Model(&models.OrderItem{}).
				Where("id IN ?", plan.ItemIDs).
				Update("status", plan.NextStatus).Error; err != nil {
				return err
			}

			// Recompute across ALL items of ALL vendors, not just the caller's.
			var items []models.OrderItem
			if err := tx.Where("order_id = ?", order.ID).Find(&items).Error; err != nil {
				return err
			}
			derivedStatus = deriveOrderStatus(itemStatuses(items))

			return tx.Model(&models.Order{}).
				Where("id = ?", order.ID).
				Update("status", derivedStatus).Error
		})
		if err != nil {
			respondWithDomainError(c, route, err)
			return
		}

		log.Printf("[ORDER] [INFO] vendor %s applied %s on order %s -> %s", vendorID, req.Action, orderID, derivedStatus)

		recipients := append(orderVendorIDs(order.Items), order.CustomerID)
		notifyBestEffort(route, func() error {
			return notifier.NotifyOrderStatus(c.Request.Context(), orderID, derivedStatus, recipients)
		})

		c.JSON(http.StatusOK, gin.H{"success": true, "status": derivedStatus})
	}
}

// IssueDispatchCode marks the caller vendor's item SHIPPED and returns its
// dispatch code. Idempotent: a code already on the item is reused, never
// regenerated.
func IssueDispatchCode(db *gorm.DB, notifier Notifier) gin.HandlerFunc {
	return func(c *gin.Context) {
		const route = "POST /vendor/items/:id/dispatch-code"
		defer handlePanic(c, route)

		vendorID := callerID(c)
		itemID := c.Param("id")

		ctx, cancel := requestContext(c)
		defer cancel()

		var item models.OrderItem
		var code string
		var customerID string
		err := db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
			err := tx.Where("id = ? AND vendor_id = ?", itemID, vendorID).First(&item).Error
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return NotFoundError{Resource: "order item"}
			}
			if err != nil {
				return err
			}

			if !canIssueDispatchCode(item.Status) {
				return ConflictError{Msg: "item must be accepted before dispatch"}
			}

			code = resolveDispatchCode(item.DispatchCode)

			if err := tx.Model(&models.OrderItem{}).
				Where("id = ?", item.ID).
				Updates(map[string]interface{}{
					"status":        models.ItemStatusShipped,
					"dispatch_code": code,
				}).Error; err != nil {
				return err
			}

			var items []models.OrderItem
			if err := tx.Where("order_id = ?", item.OrderID).Find(&items).Error; err != nil {
				return err
			}
			for i := range items {
				if items[i].ID == item.ID {
					items[i].Status = models.ItemStatusShipped
				}
			}
			derived := deriveOrderStatus(itemStatuses(items))

			var order models.Order
			if err := tx.Where("id = ?", item.OrderID).First(&order).Error; err != nil {
				return err
			}
			customerID = order.CustomerID

			return tx.Model(&models.Order{}).
				Where("id = ?", item.OrderID).
				Update("status", derived).Error
		})
		if err != nil {
			respondWithDomainError(c, route, err)
			return
		}

		log.Printf("[ORDER] [INFO] dispatch code issued for item %s", itemID)

		notifyBestEffort(route, func() error {
			return notifier.NotifyDispatchCode(c.Request.Context(), itemID, code, customerID)
		})

		c.JSON(http.StatusOK, gin.H{"success": true, "code": code})
	}
}
