package models

import "time"

// Crop listing lifecycle.
const (
	CropStatusActive  = "active"
	CropStatusSold    = "sold"
	CropStatusPending = "pending"
)

// Crop is a farmer's listing on the marketplace.
//
// Rating and Distance are display proxies carried on the listing itself
// (there is no review or geo subsystem); the marketplace sorts on them
// directly.
type Crop struct {
	ID          string    `gorm:"primaryKey;size:36" json:"id"`
	FarmerID    string    `gorm:"size:36;not null;index" json:"farmerId"`
	Name        string    `gorm:"size:255;not null;index" json:"name"`
	Category    string    `gorm:"size:100;index"     json:"category"`
	Quantity    float64   `json:"quantity"`
	Unit        string    `gorm:"size:20"            json:"unit"`
	Price       float64   `gorm:"not null;default:0" json:"price"`
	Quality     string    `gorm:"size:50"            json:"quality"`
	Organic     bool      `json:"organic"`
	Location    string    `gorm:"size:255"           json:"location"`
	Description string    `gorm:"type:text"          json:"description"`
	Images      []string  `gorm:"serializer:json"    json:"images"`
	Rating      float64   `json:"rating"`
	DistanceKm  float64   `json:"distanceKm"`
	Status      string    `gorm:"size:20;default:active" json:"status"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}

// CropPatch carries the owner-editable fields of a listing. Pointer fields
// distinguish "not supplied" from a zero value so partial updates merge
// correctly.
type CropPatch struct {
	Name        *string  `json:"name"`
	Category    *string  `json:"category"`
	Quantity    *float64 `json:"quantity" validate:"nullable,gte=0"`
	Unit        *string  `json:"unit"`
	Price       *float64 `json:"price" validate:"nullable,gte=0"`
	Quality     *string  `json:"quality"`
	Organic     *bool    `json:"organic"`
	Location    *string  `json:"location"`
	Description *string  `json:"description"`
	Images      []string `json:"images"`
	Status      *string  `json:"status" validate:"nullable,in=active,sold,pending"`
}

// Apply merges the supplied patch fields into c.
func (p CropPatch) Apply(c *Crop) {
	if p.Name != nil {
		c.Name = *p.Name
	}
	if p.Category != nil {
		c.Category = *p.Category
	}
	if p.Quantity != nil {
		c.Quantity = *p.Quantity
	}
	if p.Unit != nil {
		c.Unit = *p.Unit
	}
	if p.Price != nil {
		c.Price = *p.Price
	}
	if p.Quality != nil {
		c.Quality = *p.Quality
	}
	if p.Organic != nil {
		c.Organic = *p.Organic
	}
	if p.Location != nil {
		c.Location = *p.Location
	}
	if p.Description != nil {
		c.Description = *p.Description
	}
	if p.Images != nil {
		c.Images = p.Images
	}
	if p.Status != nil {
		c.Status = *p.Status
	}
}
