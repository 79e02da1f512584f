package repositories

import (
	"context"
	"strings"
	"sync"

	"github.com/cropconnect/api/app/models"
	"github.com/cropconnect/api/pkg/collection"
)

// NewMemory returns a full repository set backed by in-process slices.
// Slices keep insertion order, so unsorted listings come back in the
// order records were created.
func NewMemory() *Repositories {
	return &Repositories{
		Users:    &memoryUsers{},
		Crops:    &memoryCrops{},
		Orders:   &memoryOrders{},
		Payments: &memoryPayments{},
	}
}

type memoryUsers struct {
	mu    sync.RWMutex
	users []models.User
}

func (r *memoryUsers) Create(_ context.Context, u *models.User) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if collection.Contains(r.users, func(e models.User) bool {
		return strings.EqualFold(e.Email, u.Email)
	}) {
		return models.ErrDuplicateEmail
	}
	r.users = append(r.users, *u)
	return nil
}

func (r *memoryUsers) FindByID(_ context.Context, id string) (*models.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	u, ok := collection.First(r.users, func(e models.User) bool { return e.ID == id })
	if !ok {
		return nil, models.ErrNotFound
	}
	return &u, nil
}

func (r *memoryUsers) FindByEmail(_ context.Context, email string) (*models.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	u, ok := collection.First(r.users, func(e models.User) bool {
		return strings.EqualFold(e.Email, email)
	})
	if !ok {
		return nil, models.ErrNotFound
	}
	return &u, nil
}

type memoryCrops struct {
	mu    sync.RWMutex
	crops []models.Crop
}

func (r *memoryCrops) List(_ context.Context, f CropFilter) ([]models.Crop, error) {
	r.mu.RLock()
	out := make([]models.Crop, len(r.crops))
	copy(out, r.crops)
	r.mu.RUnlock()

	out = collection.Filter(out, func(c models.Crop) bool { return matchCrop(c, f) })
	sortCrops(out, f.Sort)
	return out, nil
}

func matchCrop(c models.Crop, f CropFilter) bool {
	if f.Category != "" && !strings.EqualFold(c.Category, f.Category) {
		return false
	}
	if f.Location != "" && !strings.Contains(strings.ToLower(c.Location), strings.ToLower(f.Location)) {
		return false
	}
	if f.PriceMin != nil && c.Price < *f.PriceMin {
		return false
	}
	if f.PriceMax != nil && c.Price > *f.PriceMax {
		return false
	}
	if f.Organic && !c.Organic {
		return false
	}
	return true
}

// sortCrops applies a stable sort so ties keep insertion order.
func sortCrops(crops []models.Crop, key string) {
	switch key {
	case SortPriceLow:
		collection.SortBy(crops, func(a, b models.Crop) bool { return a.Price < b.Price })
	case SortPriceHigh:
		collection.SortBy(crops, func(a, b models.Crop) bool { return a.Price > b.Price })
	case SortRating:
		collection.SortBy(crops, func(a, b models.Crop) bool { return a.Rating > b.Rating })
	case SortDistance:
		collection.SortBy(crops, func(a, b models.Crop) bool { return a.DistanceKm < b.DistanceKm })
	}
}

func (r *memoryCrops) FindByID(_ context.Context, id string) (*models.Crop, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	c, ok := collection.First(r.crops, func(e models.Crop) bool { return e.ID == id })
	if !ok {
		return nil, models.ErrNotFound
	}
	return &c, nil
}

func (r *memoryCrops) Create(_ context.Context, c *models.Crop) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.crops = append(r.crops, *c)
	return nil
}

func (r *memoryCrops) Update(_ context.Context, c *models.Crop) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	i := collection.IndexOf(r.crops, func(e models.Crop) bool { return e.ID == c.ID })
	if i < 0 {
		return models.ErrNotFound
	}
	r.crops[i] = *c
	return nil
}

func (r *memoryCrops) Delete(_ context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	i := collection.IndexOf(r.crops, func(e models.Crop) bool { return e.ID == id })
	if i < 0 {
		return models.ErrNotFound
	}
	r.crops = append(r.crops[:i], r.crops[i+1:]...)
	return nil
}

type memoryOrders struct {
	mu     sync.RWMutex
	orders []models.Order
}

func (r *memoryOrders) Create(_ context.Context, o *models.Order) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.orders = append(r.orders, *o)
	return nil
}

func (r *memoryOrders) FindByID(_ context.Context, id string) (*models.Order, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	o, ok := collection.First(r.orders, func(e models.Order) bool { return e.ID == id })
	if !ok {
		return nil, models.ErrNotFound
	}
	return &o, nil
}

// ListByParticipant returns orders where the user is buyer or farmer.
// An order never appears twice even when both sides match.
func (r *memoryOrders) ListByParticipant(_ context.Context, userID string) ([]models.Order, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return collection.Filter(r.orders, func(e models.Order) bool {
		return e.Involves(userID)
	}), nil
}

func (r *memoryOrders) Update(_ context.Context, o *models.Order) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	i := collection.IndexOf(r.orders, func(e models.Order) bool { return e.ID == o.ID })
	if i < 0 {
		return models.ErrNotFound
	}
	r.orders[i] = *o
	return nil
}

type memoryPayments struct {
	mu       sync.RWMutex
	payments []models.Payment
}

func (r *memoryPayments) Create(_ context.Context, p *models.Payment) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.payments = append(r.payments, *p)
	return nil
}

func (r *memoryPayments) FindByID(_ context.Context, id string) (*models.Payment, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	p, ok := collection.First(r.payments, func(e models.Payment) bool { return e.ID == id })
	if !ok {
		return nil, models.ErrNotFound
	}
	return &p, nil
}

func (r *memoryPayments) Update(_ context.Context, p *models.Payment) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	i := collection.IndexOf(r.payments, func(e models.Payment) bool { return e.ID == p.ID })
	if i < 0 {
		return models.ErrNotFound
	}
	r.payments[i] = *p
	return nil
}
