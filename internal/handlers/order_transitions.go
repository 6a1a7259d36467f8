package handlers

import (
	"fmt"
	"math/rand"

	"backend/internal/models"
)

const (
	VendorActionAccept = "ACCEPT"
	VendorActionReject = "REJECT"
)

// vendorTransitionPlan lists the item rows a vendor action will touch and the
// status they move to. Computed before any write so the guards run on a
// consistent snapshot.
type vendorTransitionPlan struct {
	ItemIDs    []string
	NextStatus string
}

// itemIsImmutable reports whether vendor accept/reject may no longer touch an
// item. SHIPPED and DELIVERED items are skipped, never errored.
func itemIsImmutable(status string) bool {
	switch models.NormalizeStatus(status) {
	case models.ItemStatusShipped, models.ItemStatusDelivered:
		return true
	}
	return false
}

// planVendorTransition selects the caller vendor's actionable items on an
// order and resolves the target status for the requested action.
func planVendorTransition(items []models.OrderItem, vendorID, action string) (vendorTransitionPlan, error) {
	var nextStatus string
	switch action {
	case VendorActionAccept:
		nextStatus = models.ItemStatusProcessing
	case VendorActionReject:
		nextStatus = models.ItemStatusRejected
	default:
		return vendorTransitionPlan{}, ValidationError{Msg: fmt.Sprintf("invalid action %q", action)}
	}

	vendorItems := 0
	actionable := make([]string, 0, len(items))
	for _, item := range items {
		if item.VendorID != vendorID {
			continue
		}
		vendorItems++
		if itemIsImmutable(item.Status) {
			continue
		}
		actionable = append(actionable, item.ID)
	}

	if vendorItems == 0 {
		return vendorTransitionPlan{}, NotFoundError{Resource: "vendor order items"}
	}
	if len(actionable) == 0 {
		return vendorTransitionPlan{}, ConflictError{Msg: "all items already shipped or delivered"}
	}

	return vendorTransitionPlan{ItemIDs: actionable, NextStatus: nextStatus}, nil
}

// canIssueDispatchCode requires the vendor to have accepted the item first.
func canIssueDispatchCode(status string) bool {
	switch models.NormalizeStatus(status) {
	case models.ItemStatusProcessing, models.ItemStatusShipped, models.ItemStatusReady:
		return true
	}
	return false
}

// newDispatchCode samples a 6-digit code uniformly from 100000-999999. No
// cross-item uniqueness check; collisions are accepted.
func newDispatchCode() string {
	return fmt.Sprintf("%06d", 100000+rand.Intn(900000))
}

// resolveDispatchCode keeps a code already on the item, so issuing twice hands
// the customer the same code instead of minting a second one.
func resolveDispatchCode(existing *string) string {
	if existing != nil && *existing != "" {
		return *existing
	}
	return newDispatchCode()
}
