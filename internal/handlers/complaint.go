package handlers

import (
	"errors"
	"log"
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"backend/internal/config"
	"backend/internal/models"
)

type createComplaintRequest struct {
	OrderID     string   `json:"orderId" binding:"required"`
	OrderItemID string   `json:"orderItemId"`
	Message     string   `json:"message" binding:"required"`
	ImageURL    string   `json:"imageUrl"`
	ImageURLs   []string `json:"imageUrls"`
}

type vendorComplaintActionRequest struct {
	Action   string `json:"action" binding:"required"`
	Feedback string `json:"feedback"`
}

type closureRequest struct {
	Solution string `json:"solution" binding:"required"`
}

type adminComplaintPatchRequest struct {
	Status      string `json:"status" binding:"required"`
	ActionTaken string `json:"actionTaken"`
}

// mergeComplaintImages folds the legacy single imageUrl field into the list
// form. Old mobile clients still send the scalar.
func mergeComplaintImages(imageURL string, imageURLs []string) models.ImageList {
	images := make(models.ImageList, 0, len(imageURLs)+1)
	for _, url := range imageURLs {
		if url = strings.TrimSpace(url); url != "" {
			images = append(images, url)
		}
	}
	if single := strings.TrimSpace(imageURL); single != "" {
		images = append(images, single)
	}
	return images
}

/* =========================
   CUSTOMER: FILE COMPLAINT
========================= */

func CreateComplaint(db *gorm.DB, notifier Notifier) gin.HandlerFunc {
	return func(c *gin.Context) {
		const route = "POST /complaints"
		defer handlePanic(c, route)

		var req createComplaintRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			respondWithError(c, http.StatusBadRequest, route, "invalid request body")
			return
		}

		images := mergeComplaintImages(req.ImageURL, req.ImageURLs)
		if len(images) == 0 {
			respondWithError(c, http.StatusBadRequest, route, "at least one image is required")
			return
		}

		customerID := callerID(c)

		ctx, cancel := requestContext(c)
		defer cancel()

		complaint := models.Complaint{
			ID:         uuid.NewString(),
			OrderID:    req.OrderID,
			CustomerID: customerID,
			Message:    strings.TrimSpace(req.Message),
			Images:     images,
			Status:     models.ComplaintStatusOpen,
		}

		err := db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
			var order models.Order
			err := tx.Preload("Items").
				Where("id = ? AND customer_id = ?", req.OrderID, customerID).
				First(&order).Error
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return NotFoundError{Resource: "order"}
			}
			if err != nil {
				return err
			}

			if req.OrderItemID != "" {
				var item *models.OrderItem
				for i := range order.Items {
					if order.Items[i].ID == req.OrderItemID {
						item = &order.Items[i]
						break
					}
				}
				if item == nil {
					return NotFoundError{Resource: "order item"}
				}
				complaint.OrderItemID = &item.ID
				complaint.VendorID = item.VendorID

				if err := tx.Model(&models.OrderItem{}).
					Where("id = ?", item.ID).
					Update("status", models.ItemStatusComplaint).Error; err != nil {
					return err
				}
			} else {
				// Order-level complaints only resolve when the order has a
				// single vendor.
				vendors := orderVendorIDs(order.Items)
				if len(vendors) != 1 {
					return ValidationError{Msg: "vendor unresolvable for order-level complaint"}
				}
				complaint.VendorID = vendors[0]
			}

			return tx.Create(&complaint).Error
		})
		if err != nil {
			respondWithDomainError(c, route, err)
			return
		}

		log.Println("[COMPLAINT] [INFO] complaint created:", complaint.ID)

		notifyBestEffort(route, func() error {
			return notifier.NotifyComplaintUpdate(c.Request.Context(), complaint.ID, complaint.Status,
				[]string{complaint.VendorID})
		})

		c.JSON(http.StatusCreated, gin.H{"success": true, "complaintId": complaint.ID})
	}
}

/* =========================
   VENDOR SIDE
========================= */

func GetVendorComplaints(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		const route = "GET /vendor/complaints"
		defer handlePanic(c, route)

		ctx, cancel := requestContext(c)
		defer cancel()

		var complaints []models.Complaint
		if err := db.WithContext(ctx).
			Where("vendor_id = ?", callerID(c)).
			Order("created_at DESC").
			Find(&complaints).Error; err != nil {
			respondWithError(c, http.StatusInternalServerError, route, "db error")
			return
		}

		c.JSON(http.StatusOK, complaints)
	}
}

// VendorComplaintAction applies IN_REVIEW, RESOLVED or REJECT_ORDER, updates
// the linked item through the vendor mapping, then re-derives the parent
// order status. A complaint resolution can therefore flip the whole order's
// displayed status.
func VendorComplaintAction(db *gorm.DB, notifier Notifier) gin.HandlerFunc {
	return func(c *gin.Context) {
		const route = "POST /vendor/complaints/:id/action"
		defer handlePanic(c, route)

		var req vendorComplaintActionRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			respondWithError(c, http.StatusBadRequest, route, "invalid request body")
			return
		}

		nextComplaintStatus, ok := vendorActionComplaintStatus[req.Action]
		if !ok {
			respondWithError(c, http.StatusBadRequest, route, "invalid action")
			return
		}

		vendorID := callerID(c)
		complaintID := c.Param("id")

		ctx, cancel := requestContext(c)
		defer cancel()

		var complaint models.Complaint
		err := db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
			err := tx.Where("id = ? AND vendor_id = ?", complaintID, vendorID).
				First(&complaint).Error
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return NotFoundError{Resource: "complaint"}
			}
			if err != nil {
				return err
			}

			updates := map[string]interface{}{"status": nextComplaintStatus}
			if feedback := strings.TrimSpace(req.Feedback); feedback != "" {
				updates["vendor_response"] = feedback
			}
			if err := tx.Model(&models.Complaint{}).
				Where("id = ?", complaint.ID).
				Updates(updates).Error; err != nil {
				return err
			}
			complaint.Status = nextComplaintStatus
			if feedback := strings.TrimSpace(req.Feedback); feedback != "" {
				complaint.VendorResponse = feedback
			}

			if complaint.OrderItemID != nil {
				itemStatus := vendorComplaintItemStatus[req.Action]
				if err := tx.Model(&models.OrderItem{}).
					Where("id = ?", *complaint.OrderItemID).
					Update("status", itemStatus).Error; err != nil {
					return err
				}

				var items []models.OrderItem
				if err := tx.Where("order_id = ?", complaint.OrderID).Find(&items).Error; err != nil {
					return err
				}
				derived := deriveOrderStatus(itemStatuses(items))
				if err := tx.Model(&models.Order{}).
					Where("id = ?", complaint.OrderID).
					Update("status", derived).Error; err != nil {
					return err
				}
			}
			return nil
		})
		if err != nil {
			respondWithDomainError(c, route, err)
			return
		}

		log.Printf("[COMPLAINT] [INFO] vendor %s applied %s on complaint %s", vendorID, req.Action, complaintID)

		notifyBestEffort(route, func() error {
			return notifier.NotifyComplaintUpdate(c.Request.Context(), complaint.ID, complaint.Status,
				[]string{complaint.CustomerID})
		})

		c.JSON(http.StatusOK, gin.H{"success": true, "complaint": complaint})
	}
}

// RequestClosure lets a vendor hand an in-flight complaint to an admin for
// sign-off, recording the proposed solution.
func RequestClosure(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		const route = "POST /vendor/complaints/:id/closure"
		defer handlePanic(c, route)

		var req closureRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			respondWithError(c, http.StatusBadRequest, route, "solution is required")
			return
		}

		vendorID := callerID(c)
		complaintID := c.Param("id")

		ctx, cancel := requestContext(c)
		defer cancel()

		var complaint models.Complaint
		err := db.WithContext(ctx).
			Where("id = ? AND vendor_id = ?", complaintID, vendorID).
			First(&complaint).Error
		if errors.Is(err, gorm.ErrRecordNotFound) {
			respondWithError(c, http.StatusNotFound, route, "complaint not found")
			return
		}
		if err != nil {
			respondWithError(c, http.StatusInternalServerError, route, "db error")
			return
		}

		if !canRequestClosure(complaint.Status) {
			respondWithError(c, http.StatusConflict, route, "complaint is not open for closure")
			return
		}

		now := time.Now()
		if err := db.WithContext(ctx).Model(&models.Complaint{}).
			Where("id = ?", complaint.ID).
			Updates(map[string]interface{}{
				"status":               models.ComplaintStatusClosureRequested,
				"action_taken":         strings.TrimSpace(req.Solution),
				"closure_requested_at": now,
			}).Error; err != nil {
			respondWithError(c, http.StatusInternalServerError, route, "db error")
			return
		}

		c.JSON(http.StatusOK, gin.H{"success": true, "status": models.ComplaintStatusClosureRequested})
	}
}

/* =========================
   ADMIN SIDE
========================= */

func AdminListComplaints(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		const route = "GET /admin/complaints"
		defer handlePanic(c, route)

		page, limit, err := parsePaginationParams(c.Query("page"), c.Query("limit"), config.AppEnv.DefaultPageSize)
		if err != nil {
			respondWithError(c, http.StatusBadRequest, route, "invalid pagination params")
			return
		}

		ctx, cancel := requestContext(c)
		defer cancel()

		query := db.WithContext(ctx).Model(&models.Complaint{})
		if status := models.NormalizeStatus(c.Query("status")); status != "" {
			query = query.Where("status = ?", status)
		}

		var total int64
		if err := query.Count(&total).Error; err != nil {
			respondWithError(c, http.StatusInternalServerError, route, "db error")
			return
		}

		var complaints []models.Complaint
		if err := query.
			Order("created_at DESC").
			Offset(int((page - 1) * limit)).
			Limit(int(limit)).
			Find(&complaints).Error; err != nil {
			respondWithError(c, http.StatusInternalServerError, route, "db error")
			return
		}

		c.JSON(http.StatusOK, gin.H{
			"data": complaints,
			"pagination": gin.H{
				"page":  page,
				"limit": limit,
				"total": total,
			},
		})
	}
}

// AdminPatchComplaint sets the complaint status directly and maps the linked
// item through the admin mapping. The admin path never re-derives the order
// status; only the vendor action path does.
func AdminPatchComplaint(db *gorm.DB, notifier Notifier) gin.HandlerFunc {
	return func(c *gin.Context) {
		const route = "PATCH /admin/complaints/:id"
		defer handlePanic(c, route)

		var req adminComplaintPatchRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			respondWithError(c, http.StatusBadRequest, route, "invalid request body")
			return
		}

		status := models.NormalizeStatus(req.Status)
		if !adminSettableComplaintStatuses[status] {
			respondWithError(c, http.StatusBadRequest, route, "invalid status")
			return
		}

		complaintID := c.Param("id")

		ctx, cancel := requestContext(c)
		defer cancel()

		var complaint models.Complaint
		err := db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
			err := tx.Where("id = ?", complaintID).First(&complaint).Error
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return NotFoundError{Resource: "complaint"}
			}
			if err != nil {
				return err
			}

			updates := map[string]interface{}{"status": status}
			if action := strings.TrimSpace(req.ActionTaken); action != "" {
				updates["action_taken"] = action
			}
			if err := tx.Model(&models.Complaint{}).
				Where("id = ?", complaint.ID).
				Updates(updates).Error; err != nil {
				return err
			}
			complaint.Status = status

			if complaint.OrderItemID != nil {
				if itemStatus, ok := adminComplaintItemStatus[status]; ok {
					if err := tx.Model(&models.OrderItem{}).
						Where("id = ?", *complaint.OrderItemID).
						Update("status", itemStatus).Error; err != nil {
						return err
					}
				}
			}
			return nil
		})
		if err != nil {
			respondWithDomainError(c, route, err)
			return
		}

		log.Printf("[COMPLAINT] [INFO] admin set complaint %s to %s", complaintID, status)

		notifyBestEffort(route, func() error {
			return notifier.NotifyComplaintUpdate(c.Request.Context(), complaint.ID, status,
				[]string{complaint.CustomerID, complaint.VendorID})
		})

		c.JSON(http.StatusOK, gin.H{"success": true, "complaint": complaint})
	}
}
