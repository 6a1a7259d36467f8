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

/* =========================
   REQUEST DTOs
========================= */

type createOrderItemRequest struct {
	ProductID string `json:"productId" binding:"required"`
	Quantity  int    `json:"quantity" binding:"required"`
}

type createOrderRequest struct {
	Items          []createOrderItemRequest `json:"items" binding:"required"`
	PaymentMethod  string                   `json:"paymentMethod" binding:"required"`
	BillingAddress string                   `json:"billingAddress"`
	CustomerPoURL  string                   `json:"customerPoUrl"`
}

type cancelOrderRequest struct {
	Reason string `json:"reason"`
}

type outOfStockError struct {
	ProductID string
	Available int
	Requested int
}

func (e outOfStockError) Error() string {
	return "product out of stock"
}

type productNotFoundError struct {
	ProductID string
}

func (e productNotFoundError) Error() string {
	return "product not found"
}

/* =========================
   CREATE ORDER
========================= */

func CreateOrder(db *gorm.DB, notifier Notifier) gin.HandlerFunc {
	return func(c *gin.Context) {
		const route = "POST /orders"
		defer handlePanic(c, route)

		var req createOrderRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			respondWithError(c, http.StatusBadRequest, route, "invalid request body")
			return
		}
		if len(req.Items) == 0 {
			respondWithError(c, http.StatusBadRequest, route, "at least one item is required")
			return
		}
		for _, item := range req.Items {
			if item.Quantity <= 0 {
				respondWithError(c, http.StatusBadRequest, route, "quantity must be greater than zero")
				return
			}
		}
		if req.PaymentMethod != "cod" && req.PaymentMethod != "online" && req.PaymentMethod != "credit" {
			respondWithError(c, http.StatusBadRequest, route, "invalid payment method")
			return
		}

		customerID := callerID(c)

		ctx, cancel := requestContext(c)
		defer cancel()

		var profile models.CustomerProfile
		if err := db.WithContext(ctx).Where("user_id = ?", customerID).First(&profile).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				respondWithError(c, http.StatusNotFound, route, "customer profile not found")
				return
			}
			respondWithError(c, http.StatusInternalServerError, route, "db error")
			return
		}
		if models.NormalizeStatus(profile.Status) != models.ProfileStatusApproved {
			respondWithError(c, http.StatusConflict, route, "customer profile not approved")
			return
		}

		order := models.Order{
			ID:             uuid.NewString(),
			CustomerID:     customerID,
			CustomerName:   profile.Name,
			CustomerEmail:  profile.Email,
			CustomerPhone:  profile.Phone,
			Status:         models.OrderStatusPending,
			PaymentMethod:  req.PaymentMethod,
			BillingAddress: strings.TrimSpace(req.BillingAddress),
			CustomerPoURL:  strings.TrimSpace(req.CustomerPoURL),
		}
		if order.BillingAddress == "" {
			order.BillingAddress = profile.BillingAddress
		}

		err := db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
			items := make([]models.OrderItem, 0, len(req.Items))
			total := 0.0

			for _, reqItem := range req.Items {
				var product models.Product
				err := tx.Where("id = ? AND is_published = ? AND status = ?",
					reqItem.ProductID, true, models.ProductStatusApproved).
					First(&product).Error
				if errors.Is(err, gorm.ErrRecordNotFound) {
					return productNotFoundError{ProductID: reqItem.ProductID}
				}
				if err != nil {
					return err
				}

				if product.Quantity < reqItem.Quantity {
					return outOfStockError{
						ProductID: product.ID,
						Available: product.Quantity,
						Requested: reqItem.Quantity,
					}
				}

				// Snapshot the customer-facing price at purchase time.
				unitPrice := displayPrice(product.Price, product.Specs.CommissionPercent)

				image := ""
				if len(product.Images) > 0 {
					image = product.Images[0]
				}
				items = append(items, models.OrderItem{
					ID:           uuid.NewString(),
					OrderID:      order.ID,
					ProductID:    product.ID,
					VendorID:     product.VendorID,
					Quantity:     reqItem.Quantity,
					Price:        unitPrice,
					ProductName:  product.Name,
					ProductImage: image,
					Status:       models.ItemStatusPending,
				})
				total += unitPrice * float64(reqItem.Quantity)

				// Guarded decrement; a concurrent order that drained stock in
				// between makes this match zero rows and rolls everything back.
				res := tx.Model(&models.Product{}).
					Where("id = ? AND quantity >= ?", product.ID, reqItem.Quantity).
					UpdateColumn("quantity", gorm.Expr("quantity - ?", reqItem.Quantity))
				if res.Error != nil {
					return res.Error
				}
				if res.RowsAffected == 0 {
					return outOfStockError{
						ProductID: product.ID,
						Available: product.Quantity,
						Requested: reqItem.Quantity,
					}
				}
			}

			order.Items = items
			order.TotalAmount = total

			return tx.Create(&order).Error
		})
		if err != nil {
			var stockErr outOfStockError
			if errors.As(err, &stockErr) {
				c.JSON(http.StatusConflict, gin.H{
					"error":     "insufficient stock",
					"productId": stockErr.ProductID,
					"available": stockErr.Available,
					"requested": stockErr.Requested,
				})
				return
			}
			var notFoundErr productNotFoundError
			if errors.As(err, &notFoundErr) {
				c.JSON(http.StatusBadRequest, gin.H{
					"error":     "product not found",
					"productId": notFoundErr.ProductID,
				})
				return
			}
			respondWithError(c, http.StatusInternalServerError, route, "db error")
			return
		}

		log.Println("[ORDER] [INFO] order created for customer:", customerID)

		vendors := orderVendorIDs(order.Items)
		notifyBestEffort(route, func() error {
			return notifier.NotifyOrderStatus(c.Request.Context(), order.ID, order.Status, append(vendors, customerID))
		})

		c.JSON(http.StatusCreated, gin.H{
			"success":     true,
			"orderId":     order.ID,
			"totalAmount": order.TotalAmount,
			"status":      order.Status,
		})
	}
}

/* =========================
   LIST / GET
========================= */

func GetMyOrders(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		const route = "GET /orders"
		defer handlePanic(c, route)

		ctx, cancel := requestContext(c)
		defer cancel()

		query := db.WithContext(ctx).
			Preload("Items").
			Where("customer_id = ?", callerID(c)).
			Order("created_at DESC")

		pageStr := c.Query("page")
		limitStr := c.Query("limit")
		if pageStr != "" && limitStr != "" {
			page, limit, err := parsePaginationParams(pageStr, limitStr, config.AppEnv.DefaultPageSize)
			if err != nil {
				respondWithError(c, http.StatusBadRequest, route, "invalid pagination params")
				return
			}
			query = query.Offset(int((page - 1) * limit)).Limit(int(limit))
		}

		var orders []models.Order
		if err := query.Find(&orders).Error; err != nil {
			respondWithError(c, http.StatusInternalServerError, route, "db error")
			return
		}

		log.Printf("[%s] returning %d orders", route, len(orders))
		c.JSON(http.StatusOK, orders)
	}
}

func GetOrder(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		const route = "GET /orders/:id"
		defer handlePanic(c, route)

		ctx, cancel := requestContext(c)
		defer cancel()

		var order models.Order
		err := db.WithContext(ctx).
			Preload("Items").
			Where("id = ? AND customer_id = ?", c.Param("id"), callerID(c)).
			First(&order).Error
		if errors.Is(err, gorm.ErrRecordNotFound) {
			respondWithError(c, http.StatusNotFound, route, "order not found")
			return
		}
		if err != nil {
			respondWithError(c, http.StatusInternalServerError, route, "db error")
			return
		}

		c.JSON(http.StatusOK, order)
	}
}

/* =========================
   CANCEL ORDER
========================= */

func CancelOrder(db *gorm.DB, notifier Notifier) gin.HandlerFunc {
	return func(c *gin.Context) {
		const route = "POST /orders/:id/cancel"
		defer handlePanic(c, route)

		// body is optional, the reason field alone rides in it
		var req cancelOrderRequest
		_ = c.ShouldBindJSON(&req)

		customerID := callerID(c)
		orderID := c.Param("id")

		ctx, cancel := requestContext(c)
		defer cancel()

		var order models.Order
		err := db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
			// Ownership failures read as absence on purpose.
			err := tx.Preload("Items").
				Where("id = ? AND customer_id = ?", orderID, customerID).
				First(&order).Error
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return NotFoundError{Resource: "order"}
			}
			if err != nil {
				return err
			}

			if models.NormalizeStatus(order.Status) != models.OrderStatusPending {
				return ConflictError{Msg: "only pending orders can be cancelled"}
			}

			updates := map[string]interface{}{
				"status":        models.OrderStatusCancelled,
				"cancel_reason": strings.TrimSpace(req.Reason),
			}
			if err := tx.Model(&models.Order{}).Where("id = ?", order.ID).Updates(updates).Error; err != nil {
				return err
			}
			return tx.Model(&models.OrderItem{}).
				Where("order_id = ?", order.ID).
				Update("status", models.ItemStatusCancelled).Error
		})
		if err != nil {
			respondWithDomainError(c, route, err)
			return
		}

		log.Println("[ORDER] [INFO] order cancelled:", orderID)

		vendors := orderVendorIDs(order.Items)
		notifyBestEffort(route, func() error {
			return notifier.NotifyOrderStatus(c.Request.Context(), orderID, models.OrderStatusCancelled, vendors)
		})

		c.JSON(http.StatusOK, gin.H{"success": true, "status": models.OrderStatusCancelled})
	}
}

func orderVendorIDs(items []models.OrderItem) []string {
	seen := make(map[string]bool, len(items))
	ids := make([]string, 0, len(items))
	for _, item := range items {
		if !seen[item.VendorID] {
			seen[item.VendorID] = true
			ids = append(ids, item.VendorID)
		}
	}
	return ids
}
