package models

import "time"

// VendorProfile is the vendor registration/KYC record. Status gates
// marketplace participation; GST fields carry the external registry
// verification sub-state.
type VendorProfile struct {
	ID             string    `gorm:"primaryKey;type:uuid;default:gen_random_uuid()" json:"id"`
	UserID         string    `gorm:"type:uuid;not null;uniqueIndex" json:"userId"`
	Email          string    `gorm:"not null" json:"email"`
	CompanyName    string    `json:"companyName"`
	Phone          string    `json:"phone,omitempty"`
	Status         string    `gorm:"default:'PENDING';index" json:"status"`
	GSTIN          string    `json:"gstin,omitempty"`
	GSTStatus      string    `gorm:"default:'NOT_PROVIDED'" json:"gstStatus"`
	GSTLegalName   string    `json:"gstLegalName,omitempty"`
	PanCardURL     string    `json:"panCardUrl,omitempty"`
	GSTCertURL     string    `json:"gstCertUrl,omitempty"`
	BillingAddress string    `json:"billingAddress,omitempty"`
	CreatedAt      time.Time `json:"createdAt"`
	UpdatedAt      time.Time `json:"updatedAt"`
}

func (VendorProfile) TableName() string {
	return "vendor_profiles"
}

// CustomerProfile is the customer registration record.
type CustomerProfile struct {
	ID              string    `gorm:"primaryKey;type:uuid;default:gen_random_uuid()" json:"id"`
	UserID          string    `gorm:"type:uuid;not null;uniqueIndex" json:"userId"`
	Email           string    `gorm:"not null" json:"email"`
	Name            string    `json:"name"`
	Phone           string    `json:"phone,omitempty"`
	Status          string    `gorm:"default:'PENDING';index" json:"status"`
	BillingAddress  string    `json:"billingAddress,omitempty"`
	ShippingAddress string    `json:"shippingAddress,omitempty"`
	CreatedAt       time.Time `json:"createdAt"`
	UpdatedAt       time.Time `json:"updatedAt"`
}

func (CustomerProfile) TableName() string {
	return "customer_profiles"
}
