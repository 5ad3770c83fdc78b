package models

import "time"

// Entity status values shared by all three content types.
const (
	StatusDraft     = "draft"
	StatusPublished = "published"
	StatusArchived  = "archived"
)

var Statuses = []string{StatusDraft, StatusPublished, StatusArchived}

// Image is one entry in an entity's ordered image list. At most one image
// carries IsMain; inserting a new main image clears the flag on the rest.
type Image struct {
	URL     string `bson:"url" json:"url"`
	Alt     string `bson:"alt,omitempty" json:"alt,omitempty"`
	Caption string `bson:"caption,omitempty" json:"caption,omitempty"`
	IsMain  bool   `bson:"isMain" json:"isMain"`
}

// Rating holds the incrementally maintained average. No raw samples are
// kept; Average is only ever updated via schema.UpdateRating.
type Rating struct {
	Average float64 `bson:"average" json:"average"`
	Count   int64   `bson:"count" json:"count"`
}

// Meta is the SEO block carried by tours and destinations.
type Meta struct {
	Title       string   `bson:"title,omitempty" json:"title,omitempty"`
	Description string   `bson:"description,omitempty" json:"description,omitempty"`
	Keywords    []string `bson:"keywords,omitempty" json:"keywords,omitempty"`
}

type Coordinates struct {
	Lat float64 `bson:"lat" json:"lat"`
	Lng float64 `bson:"lng" json:"lng"`
}

// GeoPoint is the GeoJSON mirror of Coordinates kept on destinations so the
// 2dsphere index and $near queries have a proper point to work with.
// Coordinates order is [lng, lat].
type GeoPoint struct {
	Type        string    `bson:"type" json:"type"`
	Coordinates []float64 `bson:"coordinates" json:"coordinates"`
}

func NewGeoPoint(lat, lng float64) GeoPoint {
	return GeoPoint{Type: "Point", Coordinates: []float64{lng, lat}}
}

type Audit struct {
	CreatedBy string    `bson:"createdBy,omitempty" json:"createdBy,omitempty"`
	UpdatedBy string    `bson:"updatedBy,omitempty" json:"updatedBy,omitempty"`
	CreatedAt time.Time `bson:"createdAt" json:"createdAt"`
	UpdatedAt time.Time `bson:"updatedAt" json:"updatedAt"`
}
