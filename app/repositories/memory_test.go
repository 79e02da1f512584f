package repositories

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cropconnect/api/app/models"
)

func seedCrops(t *testing.T, repo CropRepository, crops ...models.Crop) {
	t.Helper()
	for i := range crops {
		require.NoError(t, repo.Create(context.Background(), &crops[i]))
	}
}

func TestMemoryUsersDuplicateEmail(t *testing.T) {
	repos := NewMemory()
	ctx := context.Background()

	require.NoError(t, repos.Users.Create(ctx, &models.User{ID: "u1", Email: "ravi@example.com"}))

	err := repos.Users.Create(ctx, &models.User{ID: "u2", Email: "RAVI@example.com"})
	assert.ErrorIs(t, err, models.ErrDuplicateEmail)

	// first account untouched
	u, err := repos.Users.FindByEmail(ctx, "ravi@example.com")
	require.NoError(t, err)
	assert.Equal(t, "u1", u.ID)
}

func TestMemoryUsersNotFound(t *testing.T) {
	repos := NewMemory()
	_, err := repos.Users.FindByID(context.Background(), "ghost")
	assert.ErrorIs(t, err, models.ErrNotFound)
	_, err = repos.Users.FindByEmail(context.Background(), "ghost@example.com")
	assert.ErrorIs(t, err, models.ErrNotFound)
}

func TestMemoryCropsListInsertionOrder(t *testing.T) {
	repos := NewMemory()
	seedCrops(t, repos.Crops,
		models.Crop{ID: "c1", Name: "Tomatoes"},
		models.Crop{ID: "c2", Name: "Onions"},
		models.Crop{ID: "c3", Name: "Spinach"},
	)

	crops, err := repos.Crops.List(context.Background(), CropFilter{})
	require.NoError(t, err)
	require.Len(t, crops, 3)
	assert.Equal(t, []string{"c1", "c2", "c3"}, []string{crops[0].ID, crops[1].ID, crops[2].ID})
}

func TestMemoryCropsFilters(t *testing.T) {
	repos := NewMemory()
	seedCrops(t, repos.Crops,
		models.Crop{ID: "c1", Category: "vegetables", Location: "Nashik, Maharashtra", Price: 45, Organic: true},
		models.Crop{ID: "c2", Category: "vegetables", Location: "Ludhiana, Punjab", Price: 25, Organic: false},
		models.Crop{ID: "c3", Category: "spices", Location: "Coimbatore, Tamil Nadu", Price: 80, Organic: true},
	)
	ctx := context.Background()

	byCategory, err := repos.Crops.List(ctx, CropFilter{Category: "Vegetables"})
	require.NoError(t, err)
	assert.Len(t, byCategory, 2)

	byLocation, err := repos.Crops.List(ctx, CropFilter{Location: "maharashtra"})
	require.NoError(t, err)
	require.Len(t, byLocation, 1)
	assert.Equal(t, "c1", byLocation[0].ID)

	min, max := 30.0, 60.0
	byPrice, err := repos.Crops.List(ctx, CropFilter{PriceMin: &min, PriceMax: &max})
	require.NoError(t, err)
	require.Len(t, byPrice, 1)
	assert.Equal(t, "c1", byPrice[0].ID)

	byOrganic, err := repos.Crops.List(ctx, CropFilter{Organic: true})
	require.NoError(t, err)
	assert.Len(t, byOrganic, 2)

	// the flag narrows to organic only; false does not exclude anything
	all, err := repos.Crops.List(ctx, CropFilter{Organic: false})
	require.NoError(t, err)
	assert.Len(t, all, 3)
}

func TestMemoryCropsSorting(t *testing.T) {
	repos := NewMemory()
	seedCrops(t, repos.Crops,
		models.Crop{ID: "c1", Price: 45, Rating: 4.8, DistanceKm: 5},
		models.Crop{ID: "c2", Price: 25, Rating: 4.5, DistanceKm: 18},
		models.Crop{ID: "c3", Price: 45, Rating: 4.9, DistanceKm: 2},
	)
	ctx := context.Background()

	ids := func(crops []models.Crop) []string {
		out := make([]string, len(crops))
		for i, c := range crops {
			out[i] = c.ID
		}
		return out
	}

	low, err := repos.Crops.List(ctx, CropFilter{Sort: SortPriceLow})
	require.NoError(t, err)
	// c1 and c3 share a price; stable sort keeps c1 first
	assert.Equal(t, []string{"c2", "c1", "c3"}, ids(low))

	high, err := repos.Crops.List(ctx, CropFilter{Sort: SortPriceHigh})
	require.NoError(t, err)
	assert.Equal(t, []string{"c1", "c3", "c2"}, ids(high))

	rating, err := repos.Crops.List(ctx, CropFilter{Sort: SortRating})
	require.NoError(t, err)
	assert.Equal(t, []string{"c3", "c1", "c2"}, ids(rating))

	distance, err := repos.Crops.List(ctx, CropFilter{Sort: SortDistance})
	require.NoError(t, err)
	assert.Equal(t, []string{"c3", "c1", "c2"}, ids(distance))
}

func TestMemoryCropsListDoesNotExposeInternalSlice(t *testing.T) {
	repos := NewMemory()
	seedCrops(t, repos.Crops, models.Crop{ID: "c1", Name: "Tomatoes"})

	crops, err := repos.Crops.List(context.Background(), CropFilter{})
	require.NoError(t, err)
	crops[0].Name = "mutated"

	again, err := repos.Crops.FindByID(context.Background(), "c1")
	require.NoError(t, err)
	assert.Equal(t, "Tomatoes", again.Name)
}

func TestMemoryCropsUpdateDelete(t *testing.T) {
	repos := NewMemory()
	ctx := context.Background()
	seedCrops(t, repos.Crops, models.Crop{ID: "c1", Price: 45})

	err := repos.Crops.Update(ctx, &models.Crop{ID: "c1", Price: 50})
	require.NoError(t, err)
	c, err := repos.Crops.FindByID(ctx, "c1")
	require.NoError(t, err)
	assert.Equal(t, 50.0, c.Price)

	assert.ErrorIs(t, repos.Crops.Update(ctx, &models.Crop{ID: "ghost"}), models.ErrNotFound)

	require.NoError(t, repos.Crops.Delete(ctx, "c1"))
	_, err = repos.Crops.FindByID(ctx, "c1")
	assert.ErrorIs(t, err, models.ErrNotFound)
	assert.ErrorIs(t, repos.Crops.Delete(ctx, "c1"), models.ErrNotFound)
}

func TestMemoryOrdersListByParticipant(t *testing.T) {
	repos := NewMemory()
	ctx := context.Background()

	require.NoError(t, repos.Orders.Create(ctx, &models.Order{ID: "o1", BuyerID: "buyer", FarmerID: "farmer"}))
	require.NoError(t, repos.Orders.Create(ctx, &models.Order{ID: "o2", BuyerID: "other", FarmerID: "farmer"}))
	// user on both sides of the same order
	require.NoError(t, repos.Orders.Create(ctx, &models.Order{ID: "o3", BuyerID: "farmer", FarmerID: "farmer"}))

	buyerOrders, err := repos.Orders.ListByParticipant(ctx, "buyer")
	require.NoError(t, err)
	require.Len(t, buyerOrders, 1)
	assert.Equal(t, "o1", buyerOrders[0].ID)

	farmerOrders, err := repos.Orders.ListByParticipant(ctx, "farmer")
	require.NoError(t, err)
	assert.Len(t, farmerOrders, 3) // o3 appears once, not twice

	none, err := repos.Orders.ListByParticipant(ctx, "stranger")
	require.NoError(t, err)
	assert.Empty(t, none)
}

func TestMemoryPayments(t *testing.T) {
	repos := NewMemory()
	ctx := context.Background()

	p := &models.Payment{ID: "pay_1", OrderID: "o1", Amount: 100, Status: models.PaymentCreated}
	require.NoError(t, repos.Payments.Create(ctx, p))

	now := time.Now().UTC()
	p.Status = models.PaymentVerified
	p.VerifiedAt = &now
	require.NoError(t, repos.Payments.Update(ctx, p))

	got, err := repos.Payments.FindByID(ctx, "pay_1")
	require.NoError(t, err)
	assert.Equal(t, models.PaymentVerified, got.Status)
	require.NotNil(t, got.VerifiedAt)

	_, err = repos.Payments.FindByID(ctx, "pay_ghost")
	assert.ErrorIs(t, err, models.ErrNotFound)
}

func TestMemoryCropsConcurrentWrites(t *testing.T) {
	repos := NewMemory()
	ctx := context.Background()
	done := make(chan struct{})

	for i := 0; i < 10; i++ {
		go func(i int) {
			defer func() { done <- struct{}{} }()
			_ = repos.Crops.Create(ctx, &models.Crop{ID: fmt.Sprintf("c%d", i)})
		}(i)
	}
	for i := 0; i < 10; i++ {
		<-done
	}

	crops, err := repos.Crops.List(ctx, CropFilter{})
	require.NoError(t, err)
	assert.Len(t, crops, 10)
}
