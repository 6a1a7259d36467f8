package handlers

import "backend/internal/models"

// Vendor complaint actions.
const (
	VendorComplaintActionInReview    = "IN_REVIEW"
	VendorComplaintActionResolved    = "RESOLVED"
	VendorComplaintActionRejectOrder = "REJECT_ORDER"
)

// vendorActionComplaintStatus maps a vendor action to the resulting
// complaint status.
var vendorActionComplaintStatus = map[string]string{
	VendorComplaintActionInReview:    models.ComplaintStatusInReview,
	VendorComplaintActionResolved:    models.ComplaintStatusResolved,
	VendorComplaintActionRejectOrder: models.ComplaintStatusOrderRejected,
}

// vendorComplaintItemStatus maps a vendor action to the linked item's new
// status.
var vendorComplaintItemStatus = map[string]string{
	VendorComplaintActionInReview:    models.ItemStatusComplaintReview,
	VendorComplaintActionResolved:    models.ItemStatusComplaintResolved,
	VendorComplaintActionRejectOrder: models.ItemStatusRejected,
}

// adminComplaintItemStatus maps an admin-set complaint status to the linked
// item's new status. This mapping deliberately differs from the vendor one
// (ORDER_REJECTED has no entry here, OPEN does); the two paths have always
// disagreed and unifying them would silently change behavior. Flagged for
// product review, not reconciled.
var adminComplaintItemStatus = map[string]string{
	models.ComplaintStatusResolved: models.ItemStatusComplaintResolved,
	models.ComplaintStatusInReview: models.ItemStatusComplaintReview,
	models.ComplaintStatusOpen:     models.ItemStatusComplaint,
}

// adminSettableComplaintStatuses is the set an admin PATCH may write.
// RESOLVED, CLOSED and REJECTED are terminal.
var adminSettableComplaintStatuses = map[string]bool{
	models.ComplaintStatusOpen:     true,
	models.ComplaintStatusInReview: true,
	models.ComplaintStatusResolved: true,
	models.ComplaintStatusClosed:   true,
	models.ComplaintStatusRejected: true,
}

// canRequestClosure limits vendor closure requests to complaints still in
// flight.
func canRequestClosure(complaintStatus string) bool {
	switch models.NormalizeStatus(complaintStatus) {
	case models.ComplaintStatusOpen, models.ComplaintStatusInReview:
		return true
	}
	return false
}
