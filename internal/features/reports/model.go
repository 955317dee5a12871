package reports

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Hazard types observers may report. Closed set; anything else is rejected
// before a write happens.
var HazardTypes = []string{
	"flood", "high-waves", "coastal-erosion", "storm-surge", "tsunami",
	"oil-spill", "marine-debris", "red-tide", "infrastructure-damage", "other",
}

// Severity levels.
var Severities = []string{"low", "medium", "high", "critical"}

// Report statuses. A report starts pending and transitions exactly once to
// verified or rejected; both are terminal.
const (
	StatusPending  = "pending"
	StatusVerified = "verified"
	StatusRejected = "rejected"
)

// GeoPoint is a GeoJSON point, coordinates as [longitude, latitude].
type GeoPoint struct {
	Type        string    `bson:"type" json:"type" example:"Point"`
	Coordinates []float64 `bson:"coordinates" json:"coordinates" example:"72.8777,19.076"`
}

// Report is a citizen-submitted hazard observation. UserID and Location are
// immutable after creation; verification fields are set only on the
// transition out of pending.
type Report struct {
	ID              primitive.ObjectID  `bson:"_id,omitempty" json:"id"`
	UserID          primitive.ObjectID  `bson:"userId" json:"userId"`
	HazardType      string              `bson:"hazardType" json:"hazardType" enums:"flood,high-waves,coastal-erosion,storm-surge,tsunami,oil-spill,marine-debris,red-tide,infrastructure-damage,other"`
	Severity        string              `bson:"severity" json:"severity" enums:"low,medium,high,critical"`
	Description     string              `bson:"description" json:"description"`
	Location        GeoPoint            `bson:"location" json:"location"`
	MediaURL        string              `bson:"mediaUrl,omitempty" json:"mediaUrl,omitempty"`
	Status          string              `bson:"status" json:"status" enums:"pending,verified,rejected"`
	VerifiedByID    *primitive.ObjectID `bson:"verifiedById,omitempty" json:"verifiedById,omitempty"`
	VerifiedAt      *time.Time          `bson:"verifiedAt,omitempty" json:"verifiedAt,omitempty"`
	RejectionReason string              `bson:"rejectionReason,omitempty" json:"rejectionReason,omitempty"`
	CreatedAt       time.Time           `bson:"createdAt" json:"createdAt"`
	UpdatedAt       time.Time           `bson:"updatedAt" json:"updatedAt"`
}

// CreateReportRequest is the submission payload. Location carries raw
// [lng, lat] coordinates; the stored GeoJSON point is built by the handler.
type CreateReportRequest struct {
	HazardType  string `json:"hazardType" binding:"required"`
	Severity    string `json:"severity" binding:"required"`
	Description string `json:"description" binding:"required"`
	Location    struct {
		Coordinates []float64 `json:"coordinates" binding:"required"`
	} `json:"location" binding:"required"`
	MediaURL string `json:"mediaUrl"`
}

// RejectReportRequest carries the reviewer's reason for rejecting.
type RejectReportRequest struct {
	Reason string `json:"reason"`
}

// ListFilter is the conjunctive filter for report listing.
type ListFilter struct {
	Status     string
	HazardType string
}
