package controllers

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/cropconnect/api/app/models"
	"github.com/cropconnect/api/app/services"
	"github.com/cropconnect/api/pkg/auth"
	"github.com/cropconnect/api/pkg/bind"
	"github.com/cropconnect/api/pkg/response"
)

type OrderController struct {
	orders *services.OrderService
}

func NewOrder(orders *services.OrderService) *OrderController {
	return &OrderController{orders: orders}
}

type updateStatusRequest struct {
	Status string `json:"status" validate:"required"`
}

// Create handles POST /orders. The caller becomes the buyer.
func (c *OrderController) Create(w http.ResponseWriter, r *http.Request) {
	p, _ := auth.PrincipalFrom(r.Context())

	var in services.CreateOrderInput
	if errs, err := bind.JSON(r, &in); err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid request body")
		return
	} else if errs != nil {
		response.ValidationError(w, errs)
		return
	}

	order, err := c.orders.Create(r.Context(), p.UserID, in)
	if err != nil {
		respondErr(w, r, err, "Crop not found")
		return
	}
	response.Created(w, order)
}

// ListForUser handles GET /orders/user/{userId}, returning every order
// where the user is buyer or farmer.
func (c *OrderController) ListForUser(w http.ResponseWriter, r *http.Request) {
	orders, err := c.orders.ListFor(r.Context(), chi.URLParam(r, "userId"))
	if err != nil {
		respondErr(w, r, err, "Order not found")
		return
	}
	if orders == nil {
		orders = []models.Order{}
	}
	response.Success(w, orders)
}

// UpdateStatus handles PATCH /orders/{id}/status. Only a participant
// of the order may move it.
func (c *OrderController) UpdateStatus(w http.ResponseWriter, r *http.Request) {
	p, _ := auth.PrincipalFrom(r.Context())

	var in updateStatusRequest
	if errs, err := bind.JSON(r, &in); err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid request body")
		return
	} else if errs != nil {
		response.ValidationError(w, errs)
		return
	}

	order, err := c.orders.UpdateStatus(r.Context(), p.UserID, chi.URLParam(r, "id"), in.Status)
	if err != nil {
		respondErr(w, r, err, "Order not found")
		return
	}
	response.Success(w, order)
}
