// internal/gateway/orders.go
package gateway

import (
	"context"
	"fmt"
	"net/http"
)

// OrderItemRequest is one cart line of an order payload
type OrderItemRequest struct {
	ProductID uint `json:"product_id"`
	Quantity  int  `json:"quantity"`
}

// OrderRequest is the payload for placing an order
type OrderRequest struct {
	UserID               *uint              `json:"user_id"`
	CustomerName         string             `json:"customer_name"`
	CustomerPhone        string             `json:"customer_phone"`
	ShippingAddress      string             `json:"shipping_address"`
	CartItems            []OrderItemRequest `json:"cart_items"`
	AppliedUserVoucherID *uint              `json:"applied_user_voucher_id"`
}

// OrderResponse is the backend's order placement result
type OrderResponse struct {
	ID      uint   `json:"id"`
	Message string `json:"message"`
}

// OrderStatusResponse is the polled order/payment status
type OrderStatusResponse struct {
	ID           uint   `json:"id"`
	CustomerName string `json:"customer_name"`
	TotalAmount  int64  `json:"total_amount"`
	Status       string `json:"status"`
}

// PlaceOrder places a cash-on-delivery order
func (c *Client) PlaceOrder(ctx context.Context, token string, req *OrderRequest) (*OrderResponse, error) {
	var resp OrderResponse
	if err := c.do(ctx, http.MethodPost, "/orders", token, req, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

// OrderStatus polls the status of an order
func (c *Client) OrderStatus(ctx context.Context, token string, orderID uint) (*OrderStatusResponse, error) {
	var resp OrderStatusResponse
	path := fmt.Sprintf("/orders/%d/status", orderID)
	if err := c.do(ctx, http.MethodGet, path, token, nil, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}
