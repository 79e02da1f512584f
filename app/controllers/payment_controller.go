package controllers

import (
	"net/http"

	"github.com/cropconnect/api/app/services"
	"github.com/cropconnect/api/pkg/auth"
	"github.com/cropconnect/api/pkg/bind"
	"github.com/cropconnect/api/pkg/response"
)

type PaymentController struct {
	payments *services.PaymentService
}

func NewPayment(payments *services.PaymentService) *PaymentController {
	return &PaymentController{payments: payments}
}

// CreateOrder handles POST /payments/create-order, opening a mock
// checkout for an order the caller participates in.
func (c *PaymentController) CreateOrder(w http.ResponseWriter, r *http.Request) {
	p, _ := auth.PrincipalFrom(r.Context())

	var in services.CreatePaymentInput
	if errs, err := bind.JSON(r, &in); err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid request body")
		return
	} else if errs != nil {
		response.ValidationError(w, errs)
		return
	}

	payment, err := c.payments.CreateOrder(r.Context(), p.UserID, in)
	if err != nil {
		respondErr(w, r, err, "Order not found")
		return
	}
	response.Created(w, payment)
}

// Verify handles POST /payments/verify, completing a mock checkout
// and marking the linked order paid.
func (c *PaymentController) Verify(w http.ResponseWriter, r *http.Request) {
	var in services.VerifyPaymentInput
	if errs, err := bind.JSON(r, &in); err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid request body")
		return
	} else if errs != nil {
		response.ValidationError(w, errs)
		return
	}

	payment, err := c.payments.Verify(r.Context(), in.PaymentID)
	if err != nil {
		respondErr(w, r, err, "Payment not found")
		return
	}
	response.Success(w, payment)
}
