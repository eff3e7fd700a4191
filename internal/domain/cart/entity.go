// internal/domain/cart/entity.go
package cart

// Product holds the product details carried on a cart line item
type Product struct {
	ID    uint   `json:"id"`
	Name  string `json:"name"`
	Price int64  `json:"price"` // Price in VND
	Image string `json:"image"`
	Slug  string `json:"slug"`
}

// LineItem represents one product+quantity pair within a cart.
// A cart never holds two line items with the same product ID, and
// quantity is always >= 1 (a decrement to zero removes the line item).
type LineItem struct {
	Product  Product `json:"product"`
	Quantity int     `json:"quantity"`
}

// Totals represents calculated cart totals
type Totals struct {
	ItemCount     int   `json:"item_count"`     // Number of unique items
	TotalQuantity int   `json:"total_quantity"` // Sum of all quantities
	SubTotal      int64 `json:"sub_total"`      // Total before discount
}

// CalculateTotals computes totals over a set of line items
func CalculateTotals(items []LineItem) Totals {
	var totals Totals

	totals.ItemCount = len(items)
	for _, item := range items {
		totals.TotalQuantity += item.Quantity
		totals.SubTotal += item.Product.Price * int64(item.Quantity)
	}

	return totals
}

// cloneItems returns a deep copy of a line item slice so optimistic
// mutations never alias a captured snapshot.
func cloneItems(items []LineItem) []LineItem {
	cloned := make([]LineItem, len(items))
	copy(cloned, items)
	return cloned
}

// findItem returns the index of the line item for productID, or -1
func findItem(items []LineItem, productID uint) int {
	for i := range items {
		if items[i].Product.ID == productID {
			return i
		}
	}
	return -1
}
