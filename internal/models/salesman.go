package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Tracking event types, appended to the tracking_logs collection.
const (
	TrackingEventDayStart = "DAY_START"
	TrackingEventGPSPing  = "GPS_PING"
	TrackingEventVisitEnd = "VISIT_END"
	TrackingEventDayEnd   = "DAY_END"
)

// SalesmanLocation is the last known position snapshot, refreshed by pings.
type SalesmanLocation struct {
	Lat         float64   `bson:"lat" json:"lat"`
	Lng         float64   `bson:"lng" json:"lng"`
	LastUpdated time.Time `bson:"lastUpdated" json:"lastUpdated"`
}

// Salesman is a field representative record in the document store.
type Salesman struct {
	ID       primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	UserID   string             `bson:"userId" json:"userId"`
	Name     string             `bson:"name" json:"name"`
	Phone    string             `bson:"phone,omitempty" json:"phone,omitempty"`
	Email    string             `bson:"email,omitempty" json:"email,omitempty"`
	Region   string             `bson:"region,omitempty" json:"region,omitempty"`
	IsActive bool               `bson:"isActive" json:"isActive"`
	Location *SalesmanLocation  `bson:"location,omitempty" json:"location,omitempty"`
}

// TrackingLog is one append-only tracking event. Active day windows are
// reconstructed from the latest DAY_START/DAY_END bracketing pair.
type TrackingLog struct {
	ID         primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	SalesmanID string             `bson:"salesmanId" json:"salesmanId"`
	Type       string             `bson:"type" json:"type"`
	Lat        float64            `bson:"lat" json:"lat"`
	Lng        float64            `bson:"lng" json:"lng"`
	Note       string             `bson:"note,omitempty" json:"note,omitempty"`
	CreatedAt  time.Time          `bson:"createdAt" json:"createdAt"`
}

// SalesmanAssignment links a salesman to a vendor profile.
type SalesmanAssignment struct {
	ID              primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	SalesmanID      string             `bson:"salesmanId" json:"salesmanId"`
	VendorProfileID string             `bson:"vendorProfileId" json:"vendorProfileId"`
	AssignedAt      time.Time          `bson:"assignedAt" json:"assignedAt"`
}
