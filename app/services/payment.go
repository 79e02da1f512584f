package services

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/cropconnect/api/app/models"
	"github.com/cropconnect/api/app/repositories"
)

// PaymentService is a mock gateway. It opens a payment record per checkout
// and marks the order paid on verification; no real money moves.
type PaymentService struct {
	payments repositories.PaymentRepository
	orders   repositories.OrderRepository
}

func NewPayment(payments repositories.PaymentRepository, orders repositories.OrderRepository) *PaymentService {
	return &PaymentService{payments: payments, orders: orders}
}

// CreatePaymentInput opens checkout for an order.
type CreatePaymentInput struct {
	OrderID  string  `json:"orderId" validate:"required"`
	Amount   float64 `json:"amount" validate:"required,gt=0"`
	Currency string  `json:"currency"`
}

// VerifyPaymentInput confirms a checkout.
type VerifyPaymentInput struct {
	PaymentID string `json:"paymentId" validate:"required"`
}

// CreateOrder opens a payment for the order. Only a participant of the
// order may start checkout. The id carries a pay_ prefix so gateway ids
// are recognisable in logs and client storage.
func (s *PaymentService) CreateOrder(ctx context.Context, callerID string, in CreatePaymentInput) (*models.Payment, error) {
	o, err := s.orders.FindByID(ctx, in.OrderID)
	if err != nil {
		return nil, err
	}
	if !o.Involves(callerID) {
		return nil, models.ErrForbidden
	}

	currency := in.Currency
	if currency == "" {
		currency = "INR"
	}
	p := &models.Payment{
		ID:        "pay_" + uuid.NewString(),
		OrderID:   in.OrderID,
		Amount:    in.Amount,
		Currency:  currency,
		Status:    models.PaymentCreated,
		CreatedAt: time.Now().UTC(),
	}
	if err := s.payments.Create(ctx, p); err != nil {
		return nil, err
	}
	p.GatewayURL = "https://pay.cropconnect.example/checkout/" + p.ID
	return p, nil
}

// Verify marks the payment verified and flips the linked order's payment
// status to paid. Verifying twice is a no-op that returns the record as-is.
func (s *PaymentService) Verify(ctx context.Context, paymentID string) (*models.Payment, error) {
	p, err := s.payments.FindByID(ctx, paymentID)
	if err != nil {
		return nil, err
	}
	if p.Status == models.PaymentVerified {
		return p, nil
	}

	now := time.Now().UTC()
	p.Status = models.PaymentVerified
	p.VerifiedAt = &now
	if err := s.payments.Update(ctx, p); err != nil {
		return nil, err
	}

	o, err := s.orders.FindByID(ctx, p.OrderID)
	if err != nil {
		return nil, fmt.Errorf("payment %s verified but order lookup failed: %w", p.ID, err)
	}
	o.PaymentStatus = models.PaymentStatusPaid
	o.UpdatedAt = now
	if err := s.orders.Update(ctx, o); err != nil {
		return nil, fmt.Errorf("payment %s verified but order update failed: %w", p.ID, err)
	}
	return p, nil
}
