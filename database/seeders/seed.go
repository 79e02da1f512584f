// Package seeders loads demo accounts and listings so a fresh instance has
// something to browse. Used by the seed CLI command and, with SEED_DEMO=true,
// on server boot.
package seeders

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/cropconnect/api/app/models"
	"github.com/cropconnect/api/app/repositories"
	"github.com/cropconnect/api/pkg/auth"
	"github.com/cropconnect/api/pkg/logger"
)

// demoPassword is shared by every seeded account.
const demoPassword = "password123"

type demoFarmer struct {
	name     string
	email    string
	phone    string
	location string
}

var demoFarmers = []demoFarmer{
	{"Ramesh Patil", "ramesh@example.com", "+91 98200 10001", "Nashik, Maharashtra"},
	{"Suresh Singh", "suresh@example.com", "+91 98200 10002", "Ludhiana, Punjab"},
	{"Lakshmi Devi", "lakshmi@example.com", "+91 98200 10003", "Coimbatore, Tamil Nadu"},
}

type demoCrop struct {
	farmer      int // index into demoFarmers
	name        string
	category    string
	quantity    float64
	unit        string
	price       float64
	quality     string
	organic     bool
	description string
	rating      float64
	distanceKm  float64
}

var demoCrops = []demoCrop{
	{0, "Tomatoes", "vegetables", 500, "kg", 45, "premium", true,
		"Vine-ripened hybrid tomatoes, picked this week.", 4.8, 5},
	{0, "Onions", "vegetables", 1200, "kg", 28, "grade a", false,
		"Red onions with good shelf life, sorted and bagged.", 4.5, 5},
	{1, "Potatoes", "vegetables", 2000, "kg", 25, "standard", false,
		"Kufri Jyoti potatoes, cold-stored.", 4.6, 18},
	{1, "Carrots", "vegetables", 400, "kg", 35, "grade a", true,
		"Sweet orange carrots, washed and crated.", 4.7, 18},
	{2, "Chillies", "spices", 150, "kg", 80, "premium", true,
		"Sun-dried red chillies with high colour value.", 4.9, 25},
	{2, "Spinach", "leafy greens", 80, "kg", 40, "grade b", true,
		"Fresh palak bundles, harvested daily.", 4.5, 25},
}

// Run inserts the demo farmers and their listings. Existing accounts are
// kept, so running twice does not duplicate users.
func Run(ctx context.Context, repos *repositories.Repositories) error {
	hash, err := auth.HashPassword(demoPassword)
	if err != nil {
		return fmt.Errorf("seed: hash password: %w", err)
	}

	farmerIDs := make([]string, len(demoFarmers))
	for i, f := range demoFarmers {
		u := &models.User{
			ID:        uuid.NewString(),
			Name:      f.name,
			Email:     f.email,
			Phone:     f.phone,
			Password:  hash,
			Role:      models.RoleFarmer,
			Location:  f.location,
			Verified:  true,
			CreatedAt: time.Now().UTC(),
		}
		err := repos.Users.Create(ctx, u)
		if errors.Is(err, models.ErrDuplicateEmail) {
			existing, ferr := repos.Users.FindByEmail(ctx, f.email)
			if ferr != nil {
				return fmt.Errorf("seed: lookup %s: %w", f.email, ferr)
			}
			farmerIDs[i] = existing.ID
			continue
		}
		if err != nil {
			return fmt.Errorf("seed: create user %s: %w", f.email, err)
		}
		farmerIDs[i] = u.ID
	}

	now := time.Now().UTC()
	for _, d := range demoCrops {
		c := &models.Crop{
			ID:          uuid.NewString(),
			FarmerID:    farmerIDs[d.farmer],
			Name:        d.name,
			Category:    d.category,
			Quantity:    d.quantity,
			Unit:        d.unit,
			Price:       d.price,
			Quality:     d.quality,
			Organic:     d.organic,
			Location:    demoFarmers[d.farmer].location,
			Description: d.description,
			Rating:      d.rating,
			DistanceKm:  d.distanceKm,
			Status:      models.CropStatusActive,
			CreatedAt:   now,
			UpdatedAt:   now,
		}
		if err := repos.Crops.Create(ctx, c); err != nil {
			return fmt.Errorf("seed: create crop %s: %w", d.name, err)
		}
	}

	logger.Info("demo data seeded", "farmers", len(demoFarmers), "crops", len(demoCrops))
	return nil
}
