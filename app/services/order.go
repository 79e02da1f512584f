package services

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/cropconnect/api/app/models"
	"github.com/cropconnect/api/app/repositories"
)

// OrderService creates and tracks purchase orders.
type OrderService struct {
	orders repositories.OrderRepository
	crops  repositories.CropRepository
}

func NewOrder(orders repositories.OrderRepository, crops repositories.CropRepository) *OrderService {
	return &OrderService{orders: orders, crops: crops}
}

// CreateOrderInput carries a buyer's purchase request.
type CreateOrderInput struct {
	CropID   string  `json:"cropId" validate:"required"`
	Quantity float64 `json:"quantity" validate:"required,gt=0"`
}

// Create places an order for buyerID against the listing. The farmer side
// and total amount are derived from the listing, never from the request.
func (s *OrderService) Create(ctx context.Context, buyerID string, in CreateOrderInput) (*models.Order, error) {
	crop, err := s.crops.FindByID(ctx, in.CropID)
	if err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	o := &models.Order{
		ID:            uuid.NewString(),
		CropID:        crop.ID,
		BuyerID:       buyerID,
		FarmerID:      crop.FarmerID,
		Quantity:      in.Quantity,
		TotalAmount:   in.Quantity * crop.Price,
		Status:        models.OrderStatusPending,
		PaymentStatus: models.PaymentStatusPending,
		CreatedAt:     now,
		UpdatedAt:     now,
	}
	if err := s.orders.Create(ctx, o); err != nil {
		return nil, err
	}
	return o, nil
}

// ListFor returns every order where userID is buyer or farmer. Each order
// appears once even when the user is on both sides.
func (s *OrderService) ListFor(ctx context.Context, userID string) ([]models.Order, error) {
	return s.orders.ListByParticipant(ctx, userID)
}

// UpdateStatus moves an order to the given status. Only a participant may
// update; the status must be a known value, but any transition between
// known values is allowed (a delivered order can be reopened by support).
func (s *OrderService) UpdateStatus(ctx context.Context, callerID, orderID, status string) (*models.Order, error) {
	o, err := s.orders.FindByID(ctx, orderID)
	if err != nil {
		return nil, err
	}
	if !o.Involves(callerID) {
		return nil, models.ErrForbidden
	}
	if !models.ValidOrderStatus(status) {
		return nil, fmt.Errorf("%w: unknown order status %q", models.ErrValidation, status)
	}

	o.Status = status
	o.UpdatedAt = time.Now().UTC()
	if err := s.orders.Update(ctx, o); err != nil {
		return nil, err
	}
	return o, nil
}
