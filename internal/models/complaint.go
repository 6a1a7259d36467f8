package models

import "time"

// Complaint is a customer-raised issue against an order or a single order
// item. OrderItemID is nil for order-level complaints.
type Complaint struct {
	ID                 string     `gorm:"primaryKey;type:uuid;default:gen_random_uuid()" json:"id"`
	OrderID            string     `gorm:"type:uuid;not null;index" json:"orderId"`
	OrderItemID        *string    `gorm:"type:uuid;index" json:"orderItemId,omitempty"`
	VendorID           string     `gorm:"type:uuid;not null;index" json:"vendorId"`
	CustomerID         string     `gorm:"type:uuid;not null;index" json:"customerId"`
	Message            string     `gorm:"not null" json:"message"`
	Images             ImageList  `gorm:"type:jsonb" json:"images"`
	Status             string     `gorm:"default:'OPEN';index" json:"status"`
	VendorResponse     string     `json:"vendorResponse,omitempty"`
	ActionTaken        string     `json:"actionTaken,omitempty"`
	ClosureRequestedAt *time.Time `json:"closureRequestedAt,omitempty"`
	CreatedAt          time.Time  `json:"createdAt"`
	UpdatedAt          time.Time  `json:"updatedAt"`
}

func (Complaint) TableName() string {
	return "complaints"
}

// RefundRequest holds a customer's refund claim for a single order item. The
// unique index on OrderItemID enforces at most one refund per item.
type RefundRequest struct {
	ID          string    `gorm:"primaryKey;type:uuid;default:gen_random_uuid()" json:"id"`
	OrderItemID string    `gorm:"type:uuid;not null;uniqueIndex" json:"orderItemId"`
	VendorID    string    `gorm:"type:uuid;not null;index" json:"vendorId"`
	CustomerID  string    `gorm:"type:uuid;not null;index" json:"customerId"`
	Reason      string    `gorm:"not null" json:"reason"`
	Status      string    `gorm:"default:'PENDING';index" json:"status"`
	ProofImages ImageList `gorm:"type:jsonb" json:"proofImages"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}

func (RefundRequest) TableName() string {
	return "refund_requests"
}
