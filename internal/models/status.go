package models

import "strings"

// Order aggregate statuses. The order status is derived from its items and is
// never written directly by a client, except for creation (PENDING) and a
// customer cancellation while still PENDING.
const (
	OrderStatusPending    = "PENDING"
	OrderStatusProcessing = "PROCESSING"
	OrderStatusShipped    = "SHIPPED"
	OrderStatusDelivered  = "DELIVERED"
	OrderStatusRejected   = "REJECTED"
	OrderStatusCancelled  = "CANCELLED"
)

// Per-item statuses, vendor-scoped.
const (
	ItemStatusPending           = "PENDING"
	ItemStatusApproved          = "APPROVED"
	ItemStatusProcessing        = "PROCESSING"
	ItemStatusReady             = "READY"
	ItemStatusShipped           = "SHIPPED"
	ItemStatusDelivered         = "DELIVERED"
	ItemStatusRejected          = "REJECTED"
	ItemStatusCancelled         = "CANCELLED"
	ItemStatusComplaint         = "COMPLAINT"
	ItemStatusComplaintReview   = "COMPLAINT_REVIEW"
	ItemStatusComplaintResolved = "COMPLAINT_RESOLVED"
	ItemStatusRefundRequested   = "REFUND_REQUESTED"
)

const (
	ComplaintStatusOpen             = "OPEN"
	ComplaintStatusInReview         = "IN_REVIEW"
	ComplaintStatusClosureRequested = "CLOSURE_REQUESTED"
	ComplaintStatusResolved         = "RESOLVED"
	ComplaintStatusClosed           = "CLOSED"
	ComplaintStatusRejected         = "REJECTED"
	ComplaintStatusOrderRejected    = "ORDER_REJECTED"
)

const (
	RefundStatusPending  = "PENDING"
	RefundStatusApproved = "APPROVED"
	RefundStatusRejected = "REJECTED"
)

const (
	ProductStatusPending  = "PENDING"
	ProductStatusApproved = "APPROVED"
	ProductStatusRejected = "REJECTED"
)

const (
	ProfileStatusPending   = "PENDING"
	ProfileStatusApproved  = "APPROVED"
	ProfileStatusSuspended = "SUSPENDED"
)

const (
	GSTStatusNotProvided = "NOT_PROVIDED"
	GSTStatusPending     = "PENDING"
	GSTStatusVerified    = "VERIFIED"
	GSTStatusFailed      = "FAILED"
)

// NormalizeStatus upper-cases and trims a stored status value. Legacy rows
// carry mixed-case statuses, so every comparison goes through this.
func NormalizeStatus(status string) string {
	return strings.ToUpper(strings.TrimSpace(status))
}
