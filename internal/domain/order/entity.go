// internal/domain/order/entity.go
package order

import "time"

// Status represents the order status. The remote backend owns the lifecycle;
// this service observes it and gates the transitions the admin UI may offer.
type Status string

const (
	StatusPending        Status = "pending"
	StatusPendingPayment Status = "pending_payment"
	StatusProcessing     Status = "processing"
	StatusShipped        Status = "shipped"
	StatusCompleted      Status = "completed"
	StatusCancelled      Status = "cancelled"
)

// Order represents an order as returned by the remote backend
type Order struct {
	ID                   uint      `json:"id"`
	CustomerName         string    `json:"customer_name"`
	CustomerPhone        string    `json:"customer_phone"`
	ShippingAddress      string    `json:"shipping_address"`
	Items                []Item    `json:"items"`
	TotalAmount          int64     `json:"total_amount"`
	Status               Status    `json:"status"`
	AppliedUserVoucherID *uint     `json:"applied_user_voucher_id"`
	CreatedAt            time.Time `json:"created_at"`
}

// Item represents one line of an order, with the price captured at purchase
type Item struct {
	ProductID       uint  `json:"product_id"`
	Quantity        int   `json:"quantity"`
	PriceAtPurchase int64 `json:"price_at_purchase"`
}

// forward is the normal fulfillment chain
var forward = map[Status]Status{
	StatusPending:        StatusProcessing,
	StatusPendingPayment: StatusProcessing,
	StatusProcessing:     StatusShipped,
	StatusShipped:        StatusCompleted,
}

// CanTransition reports whether an order may move from one status to another.
// Completed is fully terminal, and cancellation is unreachable once shipped.
func CanTransition(from, to Status) bool {
	if from == to {
		return false
	}
	if to == StatusCancelled {
		return CanCancel(from)
	}
	return forward[from] == to
}

// CanCancel reports whether an order in the given status may be cancelled
func CanCancel(s Status) bool {
	switch s {
	case StatusPending, StatusPendingPayment, StatusProcessing:
		return true
	}
	return false
}

// CanBeCancelled checks if the order can still be cancelled
func (o *Order) CanBeCancelled() bool {
	return CanCancel(o.Status)
}

// IsCompleted checks if the order reached its terminal success state
func (o *Order) IsCompleted() bool {
	return o.Status == StatusCompleted
}
