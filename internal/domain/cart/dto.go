// internal/domain/cart/dto.go
package cart

// AddToCartRequest carries the product details and quantity for an add.
// The full product is sent so the optimistic line item can render without
// a round trip to the catalog.
type AddToCartRequest struct {
	Product  Product `json:"product" binding:"required"`
	Quantity int     `json:"quantity" binding:"required,min=1"`
}

// UpdateQuantityRequest sets a line item quantity; zero removes the item
type UpdateQuantityRequest struct {
	Quantity *int `json:"quantity" binding:"required"`
}

// Response represents the cart with its computed totals
type Response struct {
	Items  []LineItem `json:"items"`
	Totals Totals     `json:"totals"`
}

// NewResponse builds a cart response from a store
func NewResponse(store *Store) Response {
	items := store.Items()
	return Response{
		Items:  items,
		Totals: CalculateTotals(items),
	}
}
