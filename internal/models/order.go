package models

import (
	"time"
)

// OrderItem is one product line within an order, tracked independently per
// vendor. Price and product fields are snapshots taken at purchase time.
type OrderItem struct {
	ID              string     `gorm:"primaryKey;type:uuid;default:gen_random_uuid()" json:"id"`
	OrderID         string     `gorm:"type:uuid;not null;index" json:"orderId"`
	ProductID       string     `gorm:"type:uuid;not null;index" json:"productId"`
	VendorID        string     `gorm:"type:uuid;not null;index" json:"vendorId"`
	Quantity        int        `gorm:"not null" json:"quantity"`
	Price           float64    `gorm:"not null" json:"price"`
	ProductName     string     `json:"productName"`
	ProductImage    string     `json:"productImage,omitempty"`
	Status          string     `gorm:"default:'PENDING';index" json:"status"`
	DispatchCode    *string    `json:"dispatchCode,omitempty"`
	DeliveryDate    *time.Time `json:"deliveryDate,omitempty"`
	BillURL         string     `json:"billUrl,omitempty"`
	TransportSlipURL string    `json:"transportSlipUrl,omitempty"`
	CreatedAt       time.Time  `json:"createdAt"`
	UpdatedAt       time.Time  `json:"updatedAt"`
}

func (OrderItem) TableName() string {
	return "order_items"
}

// Order is a customer's single checkout transaction, possibly spanning
// multiple vendors. Status is derived from the item statuses.
type Order struct {
	ID             string      `gorm:"primaryKey;type:uuid;default:gen_random_uuid()" json:"id"`
	CustomerID     string      `gorm:"type:uuid;not null;index" json:"customerId"`
	CustomerName   string      `json:"customerName"`
	CustomerEmail  string      `json:"customerEmail"`
	CustomerPhone  string      `json:"customerPhone,omitempty"`
	TotalAmount    float64     `gorm:"not null" json:"totalAmount"`
	Status         string      `gorm:"default:'PENDING';index" json:"status"`
	PaymentMethod  string      `json:"paymentMethod"`
	BillingAddress string      `json:"billingAddress"`
	InvoiceURL     string      `json:"invoiceUrl,omitempty"`
	CustomerPoURL  string      `json:"customerPoUrl,omitempty"`
	CancelReason   string      `json:"cancelReason,omitempty"`
	Items          []OrderItem `gorm:"foreignKey:OrderID" json:"items"`
	CreatedAt      time.Time   `json:"createdAt"`
	UpdatedAt      time.Time   `json:"updatedAt"`
}

func (Order) TableName() string {
	return "orders"
}
