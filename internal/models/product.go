package models

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"
	"time"

	"gorm.io/datatypes"
)

// ProductSpecs is the typed view of the free-form specs bag. The fields the
// business logic actually reads are named; everything else a vendor puts in
// the bag survives round-trips through Extra.
type ProductSpecs struct {
	CommissionPercent float64           `json:"commissionPercent,omitempty"`
	Features          string            `json:"features,omitempty"`
	Model             string            `json:"model,omitempty"`
	MRP               float64           `json:"mrp,omitempty"`
	Extra             datatypes.JSONMap `json:"-"`
}

func (s *ProductSpecs) UnmarshalJSON(data []byte) error {
	var raw map[string]json.RawMessage
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}

	type known struct {
		CommissionPercent float64 `json:"commissionPercent"`
		Features          string  `json:"features"`
		Model             string  `json:"model"`
		MRP               float64 `json:"mrp"`
	}
	var k known
	if err := json.Unmarshal(data, &k); err != nil {
		return err
	}
	s.CommissionPercent = k.CommissionPercent
	s.Features = k.Features
	s.Model = k.Model
	s.MRP = k.MRP

	delete(raw, "commissionPercent")
	delete(raw, "features")
	delete(raw, "model")
	delete(raw, "mrp")

	if len(raw) == 0 {
		s.Extra = nil
		return nil
	}
	s.Extra = make(datatypes.JSONMap, len(raw))
	for key, value := range raw {
		var decoded interface{}
		if err := json.Unmarshal(value, &decoded); err != nil {
			return err
		}
		s.Extra[key] = decoded
	}
	return nil
}

func (s ProductSpecs) MarshalJSON() ([]byte, error) {
	merged := make(map[string]interface{}, len(s.Extra)+4)
	for key, value := range s.Extra {
		merged[key] = value
	}
	if s.CommissionPercent != 0 {
		merged["commissionPercent"] = s.CommissionPercent
	}
	if s.Features != "" {
		merged["features"] = s.Features
	}
	if s.Model != "" {
		merged["model"] = s.Model
	}
	if s.MRP != 0 {
		merged["mrp"] = s.MRP
	}
	return json.Marshal(merged)
}

func (s *ProductSpecs) Scan(value interface{}) error {
	if value == nil {
		*s = ProductSpecs{}
		return nil
	}
	var raw []byte
	switch typed := value.(type) {
	case []byte:
		raw = typed
	case string:
		raw = []byte(typed)
	default:
		return fmt.Errorf("cannot decode %T into ProductSpecs", value)
	}
	if len(raw) == 0 {
		*s = ProductSpecs{}
		return nil
	}
	return json.Unmarshal(raw, s)
}

func (s ProductSpecs) Value() (driver.Value, error) {
	return json.Marshal(s)
}

// Product is a vendor-owned catalog entry. BaseProductID is set on vendor
// listings cloned from a base catalog product. Public visibility requires
// IsPublished AND Status == APPROVED jointly.
type Product struct {
	ID            string       `gorm:"primaryKey;type:uuid;default:gen_random_uuid()" json:"id"`
	VendorID      string       `gorm:"type:uuid;not null;index" json:"vendorId"`
	BaseProductID *string      `gorm:"type:uuid;index" json:"baseProductId,omitempty"`
	Name          string       `gorm:"not null" json:"name"`
	SKU           string       `json:"sku,omitempty"`
	Price         float64      `gorm:"not null" json:"price"`
	Quantity      int          `gorm:"not null;default:0" json:"quantity"`
	Status        string       `gorm:"default:'PENDING';index" json:"status"`
	IsPublished   bool         `gorm:"default:false" json:"isPublished"`
	Images        ImageList    `gorm:"type:jsonb" json:"images"`
	Specs         ProductSpecs `gorm:"type:jsonb" json:"specs"`
	DisplayPrice  float64      `gorm:"-" json:"displayPrice,omitempty"`
	CreatedAt     time.Time    `json:"createdAt"`
	UpdatedAt     time.Time    `json:"updatedAt"`
}

func (Product) TableName() string {
	return "products"
}
