package models

import "time"

// Order statuses. Any transition between them is allowed; validity of the
// value itself is checked with ValidOrderStatus.
const (
	OrderStatusPending   = "pending"
	OrderStatusInTransit = "in-transit"
	OrderStatusDelivered = "delivered"
	OrderStatusCancelled = "cancelled"
)

// Order payment states.
const (
	PaymentStatusPending = "pending"
	PaymentStatusPaid    = "paid"
)

// ValidOrderStatus reports whether s is one of the known order statuses.
func ValidOrderStatus(s string) bool {
	switch s {
	case OrderStatusPending, OrderStatusInTransit, OrderStatusDelivered, OrderStatusCancelled:
		return true
	}
	return false
}

// Order is a buyer's purchase request against a crop listing. Orders are
// never deleted; cancellation is a status.
type Order struct {
	ID            string    `gorm:"primaryKey;size:36" json:"id"`
	CropID        string    `gorm:"size:36;not null;index" json:"cropId"`
	BuyerID       string    `gorm:"size:36;not null;index" json:"buyerId"`
	FarmerID      string    `gorm:"size:36;not null;index" json:"farmerId"`
	Quantity      float64   `json:"quantity"`
	TotalAmount   float64   `json:"totalAmount"`
	Status        string    `gorm:"size:20;default:pending" json:"status"`
	PaymentStatus string    `gorm:"size:20;default:pending" json:"paymentStatus"`
	CreatedAt     time.Time `json:"createdAt"`
	UpdatedAt     time.Time `json:"updatedAt"`
}

// Involves reports whether userID is the buyer or the farmer on the order.
func (o Order) Involves(userID string) bool {
	return o.BuyerID == userID || o.FarmerID == userID
}

// Payment lifecycle.
const (
	PaymentCreated  = "created"
	PaymentVerified = "verified"
)

// Payment is a mock gateway record opened when checkout begins for an order.
// GatewayURL is returned on creation only and never persisted.
type Payment struct {
	ID         string     `gorm:"primaryKey;size:64" json:"id"`
	OrderID    string     `gorm:"size:36;not null;index" json:"orderId"`
	Amount     float64    `json:"amount"`
	Currency   string     `gorm:"size:10" json:"currency"`
	Status     string     `gorm:"size:20;default:created" json:"status"`
	GatewayURL string     `gorm:"-" json:"gatewayUrl,omitempty"`
	CreatedAt  time.Time  `json:"createdAt"`
	VerifiedAt *time.Time `json:"verifiedAt,omitempty"`
}
