package handlers

import "backend/internal/models"

// deriveOrderStatus maps the statuses of all items on an order to one
// aggregate order status. Precedence, first match wins:
//
//	1. every item REJECTED        -> REJECTED
//	2. any item DELIVERED         -> DELIVERED
//	3. any item SHIPPED or READY  -> SHIPPED
//	4. any PROCESSING or APPROVED -> PROCESSING
//	5. otherwise                  -> PENDING
//
// The precedence is intentionally not monotonic per item: one DELIVERED item
// marks the whole order DELIVERED even while sibling items from other vendors
// are still PENDING. Known product ambiguity for mixed-vendor orders; kept
// as-is on purpose.
func deriveOrderStatus(itemStatuses []string) string {
	if len(itemStatuses) == 0 {
		return models.OrderStatusPending
	}

	allRejected := true
	anyDelivered := false
	anyShipped := false
	anyProcessing := false

	for _, status := range itemStatuses {
		switch models.NormalizeStatus(status) {
		case models.ItemStatusRejected:
			continue
		case models.ItemStatusDelivered:
			anyDelivered = true
		case models.ItemStatusShipped, models.ItemStatusReady:
			anyShipped = true
		case models.ItemStatusProcessing, models.ItemStatusApproved:
			anyProcessing = true
		}
		allRejected = false
	}

	switch {
	case allRejected:
		return models.OrderStatusRejected
	case anyDelivered:
		return models.OrderStatusDelivered
	case anyShipped:
		return models.OrderStatusShipped
	case anyProcessing:
		return models.OrderStatusProcessing
	default:
		return models.OrderStatusPending
	}
}

func itemStatuses(items []models.OrderItem) []string {
	statuses := make([]string, 0, len(items))
	for _, item := range items {
		statuses = append(statuses, item.Status)
	}
	return statuses
}
