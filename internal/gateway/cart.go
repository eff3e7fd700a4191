// internal/gateway/cart.go
package gateway

import (
	"context"
	"fmt"
	"net/http"

	"github.com/your-org/restaurant-storefront/internal/domain/cart"
)

// AddItemRequest is the payload for adding a cart row
type AddItemRequest struct {
	ProductID uint `json:"product_id"`
	Quantity  int  `json:"quantity"`
}

// UpdateItemRequest is the payload for setting a cart row quantity
type UpdateItemRequest struct {
	Quantity int `json:"quantity"`
}

// FetchCart retrieves the user's cart rows
func (c *Client) FetchCart(ctx context.Context, token string) ([]cart.LineItem, error) {
	var items []cart.LineItem
	if err := c.do(ctx, http.MethodGet, "/user/cart", token, nil, &items); err != nil {
		return nil, err
	}
	return items, nil
}

// AddItem adds quantity of a product to the user's cart
func (c *Client) AddItem(ctx context.Context, token string, productID uint, quantity int) error {
	req := AddItemRequest{ProductID: productID, Quantity: quantity}
	return c.do(ctx, http.MethodPost, "/user/cart", token, req, nil)
}

// UpdateItem sets the quantity of a cart row; the backend removes the row
// when quantity is zero
func (c *Client) UpdateItem(ctx context.Context, token string, productID uint, quantity int) error {
	req := UpdateItemRequest{Quantity: quantity}
	return c.do(ctx, http.MethodPut, fmt.Sprintf("/user/cart/%d", productID), token, req, nil)
}

// RemoveItem deletes a cart row
func (c *Client) RemoveItem(ctx context.Context, token string, productID uint) error {
	return c.do(ctx, http.MethodDelete, fmt.Sprintf("/user/cart/%d", productID), token, nil, nil)
}

// ClearCart deletes all of the user's cart rows
func (c *Client) ClearCart(ctx context.Context, token string) error {
	return c.do(ctx, http.MethodDelete, "/user/cart", token, nil, nil)
}
