// Package repositories defines the persistence interfaces and their two
// drivers. The default "memory" driver keeps everything in mutex-guarded,
// insertion-ordered slices; setting DB_DRIVER to a SQL backend swaps in
// the GORM driver without touching the service layer.
package repositories

import (
	"context"

	"github.com/cropconnect/api/app/models"
)

// CropFilter narrows and orders a listing query. Nil pointer fields mean
// "no constraint"; Organic is an organic-only flag, so false is also no
// constraint. Sort is one of the keys below; anything else leaves the
// listing in insertion order.
type CropFilter struct {
	Category string
	Location string
	PriceMin *float64
	PriceMax *float64
	Organic  bool
	Sort     string
}

// Sort keys accepted by CropFilter.Sort.
const (
	SortPriceLow  = "price-low"
	SortPriceHigh = "price-high"
	SortRating    = "rating"
	SortDistance  = "distance"
)

// UserRepository stores registered accounts.
type UserRepository interface {
	Create(ctx context.Context, u *models.User) error
	FindByID(ctx context.Context, id string) (*models.User, error)
	FindByEmail(ctx context.Context, email string) (*models.User, error)
}

// CropRepository stores crop listings.
type CropRepository interface {
	List(ctx context.Context, f CropFilter) ([]models.Crop, error)
	FindByID(ctx context.Context, id string) (*models.Crop, error)
	Create(ctx context.Context, c *models.Crop) error
	Update(ctx context.Context, c *models.Crop) error
	Delete(ctx context.Context, id string) error
}

// OrderRepository stores orders.
type OrderRepository interface {
	Create(ctx context.Context, o *models.Order) error
	FindByID(ctx context.Context, id string) (*models.Order, error)
	ListByParticipant(ctx context.Context, userID string) ([]models.Order, error)
	Update(ctx context.Context, o *models.Order) error
}

// PaymentRepository stores payment records.
type PaymentRepository interface {
	Create(ctx context.Context, p *models.Payment) error
	FindByID(ctx context.Context, id string) (*models.Payment, error)
	Update(ctx context.Context, p *models.Payment) error
}

// Repositories bundles one driver's implementations for wiring into the
// service layer.
type Repositories struct {
	Users    UserRepository
	Crops    CropRepository
	Orders   OrderRepository
	Payments PaymentRepository
}
