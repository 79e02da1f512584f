package services

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/cropconnect/api/app/models"
	"github.com/cropconnect/api/app/repositories"
	"github.com/cropconnect/api/pkg/cache"
)

// The unfiltered catalogue is the hottest read, so it gets a short Redis
// cache, invalidated on every mutation.
const (
	listCacheKey = "crops:list"
	listCacheTTL = 30 * time.Second
)

// CropService manages the listing catalogue. Mutations are gated on
// ownership: only the farmer who created a listing may change or remove it.
type CropService struct {
	crops repositories.CropRepository
}

func NewCrop(crops repositories.CropRepository) *CropService {
	return &CropService{crops: crops}
}

// CreateCropInput carries a new listing.
type CreateCropInput struct {
	Name        string   `json:"name" validate:"required"`
	Category    string   `json:"category" validate:"required"`
	Quantity    float64  `json:"quantity" validate:"gte=0"`
	Unit        string   `json:"unit"`
	Price       float64  `json:"price" validate:"required,gt=0"`
	Quality     string   `json:"quality"`
	Organic     bool     `json:"organic"`
	Location    string   `json:"location"`
	Description string   `json:"description"`
	Images      []string `json:"images"`
}

// List returns listings matching the filter, ordered per f.Sort.
func (s *CropService) List(ctx context.Context, f repositories.CropFilter) ([]models.Crop, error) {
	unfiltered := f == (repositories.CropFilter{})
	if unfiltered {
		var cached []models.Crop
		if cache.Get(listCacheKey, &cached) {
			return cached, nil
		}
	}

	crops, err := s.crops.List(ctx, f)
	if err != nil {
		return nil, err
	}
	if unfiltered && cache.Enabled() {
		_ = cache.Set(listCacheKey, crops, listCacheTTL)
	}
	return crops, nil
}

// Get returns a single listing or models.ErrNotFound.
func (s *CropService) Get(ctx context.Context, id string) (*models.Crop, error) {
	return s.crops.FindByID(ctx, id)
}

// Create adds a listing owned by farmerID. New listings start active.
func (s *CropService) Create(ctx context.Context, farmerID string, in CreateCropInput) (*models.Crop, error) {
	now := time.Now().UTC()
	c := &models.Crop{
		ID:          uuid.NewString(),
		FarmerID:    farmerID,
		Name:        in.Name,
		Category:    in.Category,
		Quantity:    in.Quantity,
		Unit:        in.Unit,
		Price:       in.Price,
		Quality:     in.Quality,
		Organic:     in.Organic,
		Location:    in.Location,
		Description: in.Description,
		Images:      in.Images,
		Status:      models.CropStatusActive,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	if err := s.crops.Create(ctx, c); err != nil {
		return nil, err
	}
	_ = cache.Del(listCacheKey)
	return c, nil
}

// Update merges the patch into the listing. Returns models.ErrNotFound if
// the listing does not exist and models.ErrForbidden if callerID is not
// its owner. Existence is checked first, so a non-owner probing a missing
// id still sees a 404.
func (s *CropService) Update(ctx context.Context, callerID, id string, patch models.CropPatch) (*models.Crop, error) {
	c, err := s.crops.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if c.FarmerID != callerID {
		return nil, models.ErrForbidden
	}

	patch.Apply(c)
	c.UpdatedAt = time.Now().UTC()
	if err := s.crops.Update(ctx, c); err != nil {
		return nil, err
	}
	_ = cache.Del(listCacheKey)
	return c, nil
}

// Delete removes the listing, subject to the same ownership gate as Update.
func (s *CropService) Delete(ctx context.Context, callerID, id string) error {
	c, err := s.crops.FindByID(ctx, id)
	if err != nil {
		return err
	}
	if c.FarmerID != callerID {
		return models.ErrForbidden
	}
	if err := s.crops.Delete(ctx, id); err != nil {
		return err
	}
	_ = cache.Del(listCacheKey)
	return nil
}
