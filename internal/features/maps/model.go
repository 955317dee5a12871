package maps

import (
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// MapReport is the trimmed projection served to map clients: just enough to
// place and style a marker.
type MapReport struct {
	ID         primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	Location   GeoPoint           `bson:"location" json:"location"`
	Severity   string             `bson:"severity" json:"severity"`
	Status     string             `bson:"status" json:"status"`
	HazardType string             `bson:"hazardType" json:"hazardType"`
}

// GeoPoint mirrors the stored GeoJSON point, [longitude, latitude].
type GeoPoint struct {
	Type        string    `bson:"type" json:"type"`
	Coordinates []float64 `bson:"coordinates" json:"coordinates"`
}

// Bounds is an axis-aligned rectangle from its south-west to north-east corner.
type Bounds struct {
	SWLng float64
	SWLat float64
	NELng float64
	NELat float64
}

// Center is a radius query: a point plus a great-circle distance in km.
type Center struct {
	Lng      float64
	Lat      float64
	RadiusKM float64
}

// Query is one planned spatial query. Bounds and Center are mutually
// exclusive; when a client sends both, bounds wins. Either may be nil for a
// purely attribute-filtered query.
type Query struct {
	Bounds   *Bounds
	Center   *Center
	Status   string
	Severity string
}
