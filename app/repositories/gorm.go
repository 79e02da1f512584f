package repositories

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"gorm.io/gorm"

	"github.com/cropconnect/api/app/models"
)

// NewGorm returns a full repository set backed by a GORM connection.
// Used when DB_DRIVER selects sqlite, postgres, mysql or sqlserver.
func NewGorm(db *gorm.DB) *Repositories {
	return &Repositories{
		Users:    &gormUsers{db: db},
		Crops:    &gormCrops{db: db},
		Orders:   &gormOrders{db: db},
		Payments: &gormPayments{db: db},
	}
}

// AutoMigrate creates or updates the schema for all models.
func AutoMigrate(db *gorm.DB) error {
	if err := db.AutoMigrate(
		&models.User{},
		&models.Crop{},
		&models.Order{},
		&models.Payment{},
	); err != nil {
		return fmt.Errorf("repositories: automigrate: %w", err)
	}
	return nil
}

func translateErr(err error) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return models.ErrNotFound
	}
	return err
}

type gormUsers struct{ db *gorm.DB }

func (r *gormUsers) Create(ctx context.Context, u *models.User) error {
	var count int64
	if err := r.db.WithContext(ctx).Model(&models.User{}).
		Where("lower(email) = ?", strings.ToLower(u.Email)).
		Count(&count).Error; err != nil {
		return err
	}
	if count > 0 {
		return models.ErrDuplicateEmail
	}
	return r.db.WithContext(ctx).Create(u).Error
}

func (r *gormUsers) FindByID(ctx context.Context, id string) (*models.User, error) {
	var u models.User
	if err := r.db.WithContext(ctx).First(&u, "id = ?", id).Error; err != nil {
		return nil, translateErr(err)
	}
	return &u, nil
}

func (r *gormUsers) FindByEmail(ctx context.Context, email string) (*models.User, error) {
	var u models.User
	err := r.db.WithContext(ctx).
		First(&u, "lower(email) = ?", strings.ToLower(email)).Error
	if err != nil {
		return nil, translateErr(err)
	}
	return &u, nil
}

type gormCrops struct{ db *gorm.DB }

func (r *gormCrops) List(ctx context.Context, f CropFilter) ([]models.Crop, error) {
	q := r.db.WithContext(ctx).Model(&models.Crop{})
	if f.Category != "" {
		q = q.Where("lower(category) = ?", strings.ToLower(f.Category))
	}
	if f.Location != "" {
		q = q.Where("lower(location) LIKE ?", "%"+strings.ToLower(f.Location)+"%")
	}
	if f.PriceMin != nil {
		q = q.Where("price >= ?", *f.PriceMin)
	}
	if f.PriceMax != nil {
		q = q.Where("price <= ?", *f.PriceMax)
	}
	if f.Organic {
		q = q.Where("organic = ?", true)
	}

	// created_at as tiebreaker keeps ties in insertion order, matching
	// the memory driver's stable sort.
	switch f.Sort {
	case SortPriceLow:
		q = q.Order("price ASC, created_at ASC")
	case SortPriceHigh:
		q = q.Order("price DESC, created_at ASC")
	case SortRating:
		q = q.Order("rating DESC, created_at ASC")
	case SortDistance:
		q = q.Order("distance_km ASC, created_at ASC")
	default:
		q = q.Order("created_at ASC")
	}

	var crops []models.Crop
	if err := q.Find(&crops).Error; err != nil {
		return nil, err
	}
	return crops, nil
}

func (r *gormCrops) FindByID(ctx context.Context, id string) (*models.Crop, error) {
	var c models.Crop
	if err := r.db.WithContext(ctx).First(&c, "id = ?", id).Error; err != nil {
		return nil, translateErr(err)
	}
	return &c, nil
}

func (r *gormCrops) Create(ctx context.Context, c *models.Crop) error {
	return r.db.WithContext(ctx).Create(c).Error
}

func (r *gormCrops) Update(ctx context.Context, c *models.Crop) error {
	res := r.db.WithContext(ctx).Model(&models.Crop{}).
		Where("id = ?", c.ID).
		Select("*").Omit("id", "created_at").
		Updates(c)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return models.ErrNotFound
	}
	return nil
}

func (r *gormCrops) Delete(ctx context.Context, id string) error {
	res := r.db.WithContext(ctx).Delete(&models.Crop{}, "id = ?", id)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return models.ErrNotFound
	}
	return nil
}

type gormOrders struct{ db *gorm.DB }

func (r *gormOrders) Create(ctx context.Context, o *models.Order) error {
	return r.db.WithContext(ctx).Create(o).Error
}

func (r *gormOrders) FindByID(ctx context.Context, id string) (*models.Order, error) {
	var o models.Order
	if err := r.db.WithContext(ctx).First(&o, "id = ?", id).Error; err != nil {
		return nil, translateErr(err)
	}
	return &o, nil
}

func (r *gormOrders) ListByParticipant(ctx context.Context, userID string) ([]models.Order, error) {
	var orders []models.Order
	err := r.db.WithContext(ctx).
		Where("buyer_id = ? OR farmer_id = ?", userID, userID).
		Order("created_at ASC").
		Find(&orders).Error
	if err != nil {
		return nil, err
	}
	return orders, nil
}

func (r *gormOrders) Update(ctx context.Context, o *models.Order) error {
	res := r.db.WithContext(ctx).Model(&models.Order{}).
		Where("id = ?", o.ID).
		Select("*").Omit("id", "created_at").
		Updates(o)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return models.ErrNotFound
	}
	return nil
}

type gormPayments struct{ db *gorm.DB }

func (r *gormPayments) Create(ctx context.Context, p *models.Payment) error {
	return r.db.WithContext(ctx).Create(p).Error
}

func (r *gormPayments) FindByID(ctx context.Context, id string) (*models.Payment, error) {
	var p models.Payment
	if err := r.db.WithContext(ctx).First(&p, "id = ?", id).Error; err != nil {
		return nil, translateErr(err)
	}
	return &p, nil
}

func (r *gormPayments) Update(ctx context.Context, p *models.Payment) error {
	res := r.db.WithContext(ctx).Model(&models.Payment{}).
		Where("id = ?", p.ID).
		Select("*").Omit("id", "created_at").
		Updates(p)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return models.ErrNotFound
	}
	return nil
}
