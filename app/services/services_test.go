package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cropconnect/api/app/models"
	"github.com/cropconnect/api/app/repositories"
	"github.com/cropconnect/api/pkg/auth"
)

func newAuthService() (*AuthService, *repositories.Repositories) {
	repos := repositories.NewMemory()
	return NewAuth(repos.Users), repos
}

func registerFarmer(t *testing.T, svc *AuthService, email string) *models.User {
	t.Helper()
	u, _, err := svc.Register(context.Background(), RegisterInput{
		Name:     "Ramesh Patil",
		Email:    email,
		Password: "secret123",
		Role:     models.RoleFarmer,
		Location: "Nashik, Maharashtra",
	})
	require.NoError(t, err)
	return u
}

func TestRegisterAndLogin(t *testing.T) {
	svc, _ := newAuthService()
	ctx := context.Background()

	u, token, err := svc.Register(ctx, RegisterInput{
		Name:     "Ramesh Patil",
		Email:    "ramesh@example.com",
		Password: "secret123",
		Role:     models.RoleFarmer,
	})
	require.NoError(t, err)
	assert.NotEmpty(t, u.ID)
	assert.NotEmpty(t, token)
	assert.NotEqual(t, "secret123", u.Password, "password must be stored hashed")

	u2, token2, err := svc.Login(ctx, "ramesh@example.com", "secret123")
	require.NoError(t, err)
	assert.Equal(t, u.ID, u2.ID)
	require.NotEmpty(t, token2)

	claims, err := auth.ValidateToken(token2)
	require.NoError(t, err)
	assert.Equal(t, u.ID, claims.UserID)
}

func TestRegisterDuplicateEmail(t *testing.T) {
	svc, _ := newAuthService()
	ctx := context.Background()

	registerFarmer(t, svc, "ramesh@example.com")
	_, _, err := svc.Register(ctx, RegisterInput{
		Name: "Other", Email: "ramesh@example.com", Password: "secret123", Role: models.RoleBuyer,
	})
	assert.ErrorIs(t, err, models.ErrDuplicateEmail)
}

func TestLoginFailuresLookIdentical(t *testing.T) {
	svc, _ := newAuthService()
	ctx := context.Background()
	registerFarmer(t, svc, "ramesh@example.com")

	_, _, wrongPassword := svc.Login(ctx, "ramesh@example.com", "nope")
	_, _, unknownEmail := svc.Login(ctx, "ghost@example.com", "secret123")

	assert.ErrorIs(t, wrongPassword, models.ErrInvalidCredentials)
	assert.ErrorIs(t, unknownEmail, models.ErrInvalidCredentials)
}

func TestCropCreateDefaults(t *testing.T) {
	repos := repositories.NewMemory()
	svc := NewCrop(repos.Crops)

	c, err := svc.Create(context.Background(), "farmer-1", CreateCropInput{
		Name: "Tomatoes", Category: "vegetables", Price: 45, Quantity: 500, Organic: true,
	})
	require.NoError(t, err)
	assert.NotEmpty(t, c.ID)
	assert.Equal(t, "farmer-1", c.FarmerID)
	assert.Equal(t, models.CropStatusActive, c.Status)
	assert.False(t, c.CreatedAt.IsZero())
}

func TestCropUpdateOwnership(t *testing.T) {
	repos := repositories.NewMemory()
	svc := NewCrop(repos.Crops)
	ctx := context.Background()

	c, err := svc.Create(ctx, "farmer-1", CreateCropInput{Name: "Tomatoes", Category: "vegetables", Price: 45})
	require.NoError(t, err)

	newPrice := 50.0
	_, err = svc.Update(ctx, "intruder", c.ID, models.CropPatch{Price: &newPrice})
	assert.ErrorIs(t, err, models.ErrForbidden)

	updated, err := svc.Update(ctx, "farmer-1", c.ID, models.CropPatch{Price: &newPrice})
	require.NoError(t, err)
	assert.Equal(t, 50.0, updated.Price)
	assert.Equal(t, "Tomatoes", updated.Name, "unsupplied fields keep their value")

	_, err = svc.Update(ctx, "farmer-1", "ghost", models.CropPatch{})
	assert.ErrorIs(t, err, models.ErrNotFound)
}

func TestCropDeleteOwnership(t *testing.T) {
	repos := repositories.NewMemory()
	svc := NewCrop(repos.Crops)
	ctx := context.Background()

	c, err := svc.Create(ctx, "farmer-1", CreateCropInput{Name: "Onions", Category: "vegetables", Price: 28})
	require.NoError(t, err)

	assert.ErrorIs(t, svc.Delete(ctx, "intruder", c.ID), models.ErrForbidden)
	require.NoError(t, svc.Delete(ctx, "farmer-1", c.ID))
	assert.ErrorIs(t, svc.Delete(ctx, "farmer-1", c.ID), models.ErrNotFound)
}

func TestOrderCreateDerivesFromListing(t *testing.T) {
	repos := repositories.NewMemory()
	cropSvc := NewCrop(repos.Crops)
	orderSvc := NewOrder(repos.Orders, repos.Crops)
	ctx := context.Background()

	c, err := cropSvc.Create(ctx, "farmer-1", CreateCropInput{Name: "Tomatoes", Category: "vegetables", Price: 45})
	require.NoError(t, err)

	o, err := orderSvc.Create(ctx, "buyer-1", CreateOrderInput{CropID: c.ID, Quantity: 10})
	require.NoError(t, err)
	assert.Equal(t, "farmer-1", o.FarmerID)
	assert.Equal(t, 450.0, o.TotalAmount)
	assert.Equal(t, models.OrderStatusPending, o.Status)
	assert.Equal(t, models.PaymentStatusPending, o.PaymentStatus)

	_, err = orderSvc.Create(ctx, "buyer-1", CreateOrderInput{CropID: "ghost", Quantity: 1})
	assert.ErrorIs(t, err, models.ErrNotFound)
}

func TestOrderUpdateStatus(t *testing.T) {
	repos := repositories.NewMemory()
	cropSvc := NewCrop(repos.Crops)
	orderSvc := NewOrder(repos.Orders, repos.Crops)
	ctx := context.Background()

	c, err := cropSvc.Create(ctx, "farmer-1", CreateCropInput{Name: "Tomatoes", Category: "vegetables", Price: 45})
	require.NoError(t, err)
	o, err := orderSvc.Create(ctx, "buyer-1", CreateOrderInput{CropID: c.ID, Quantity: 2})
	require.NoError(t, err)

	_, err = orderSvc.UpdateStatus(ctx, "stranger", o.ID, models.OrderStatusDelivered)
	assert.ErrorIs(t, err, models.ErrForbidden)

	_, err = orderSvc.UpdateStatus(ctx, "farmer-1", o.ID, "teleported")
	assert.ErrorIs(t, err, models.ErrValidation)

	updated, err := orderSvc.UpdateStatus(ctx, "farmer-1", o.ID, models.OrderStatusInTransit)
	require.NoError(t, err)
	assert.Equal(t, models.OrderStatusInTransit, updated.Status)

	// buyer may move it too
	updated, err = orderSvc.UpdateStatus(ctx, "buyer-1", o.ID, models.OrderStatusDelivered)
	require.NoError(t, err)
	assert.Equal(t, models.OrderStatusDelivered, updated.Status)
}

func TestPaymentFlow(t *testing.T) {
	repos := repositories.NewMemory()
	cropSvc := NewCrop(repos.Crops)
	orderSvc := NewOrder(repos.Orders, repos.Crops)
	paySvc := NewPayment(repos.Payments, repos.Orders)
	ctx := context.Background()

	c, err := cropSvc.Create(ctx, "farmer-1", CreateCropInput{Name: "Tomatoes", Category: "vegetables", Price: 45})
	require.NoError(t, err)
	o, err := orderSvc.Create(ctx, "buyer-1", CreateOrderInput{CropID: c.ID, Quantity: 10})
	require.NoError(t, err)

	// only the order's buyer or farmer may open checkout
	_, err = paySvc.CreateOrder(ctx, "stranger", CreatePaymentInput{OrderID: o.ID, Amount: o.TotalAmount})
	assert.ErrorIs(t, err, models.ErrForbidden)

	p, err := paySvc.CreateOrder(ctx, "buyer-1", CreatePaymentInput{OrderID: o.ID, Amount: o.TotalAmount})
	require.NoError(t, err)
	assert.True(t, len(p.ID) > 4 && p.ID[:4] == "pay_", "gateway ids carry the pay_ prefix")
	assert.Equal(t, "INR", p.Currency)
	assert.Equal(t, models.PaymentCreated, p.Status)
	assert.Contains(t, p.GatewayURL, p.ID)

	verified, err := paySvc.Verify(ctx, p.ID)
	require.NoError(t, err)
	assert.Equal(t, models.PaymentVerified, verified.Status)
	require.NotNil(t, verified.VerifiedAt)

	paidOrder, err := repos.Orders.FindByID(ctx, o.ID)
	require.NoError(t, err)
	assert.Equal(t, models.PaymentStatusPaid, paidOrder.PaymentStatus)

	// verifying again is a no-op
	again, err := paySvc.Verify(ctx, p.ID)
	require.NoError(t, err)
	assert.Equal(t, verified.VerifiedAt, again.VerifiedAt)
}

func TestPaymentUnknownOrder(t *testing.T) {
	repos := repositories.NewMemory()
	paySvc := NewPayment(repos.Payments, repos.Orders)

	_, err := paySvc.CreateOrder(context.Background(), "buyer-1", CreatePaymentInput{OrderID: "ghost", Amount: 10})
	assert.ErrorIs(t, err, models.ErrNotFound)

	_, err = paySvc.Verify(context.Background(), "pay_ghost")
	assert.ErrorIs(t, err, models.ErrNotFound)
}
