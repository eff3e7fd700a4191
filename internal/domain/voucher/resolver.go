// internal/domain/voucher/resolver.go
package voucher

import "math"

// Resolver computes discount amounts from a subtotal and a selected voucher.
// Pure computation, no side effects.
type Resolver struct {
	// ClampToZero floors the final total at zero. A fixed-amount discount may
	// legally exceed the subtotal; whether the resulting negative total is
	// acceptable depends on the integrating backend, so both behaviors are
	// supported.
	ClampToZero bool
}

// ComputeDiscount returns the discount amount for a subtotal under the
// voucher's policy. A nil voucher yields zero.
func (r Resolver) ComputeDiscount(subtotal int64, v *Voucher) int64 {
	if v == nil {
		return 0
	}

	var discount int64
	switch v.DiscountType {
	case DiscountPercentage:
		discount = int64(math.Round(float64(subtotal) * v.DiscountValue / 100))
	case DiscountFixed:
		discount = int64(v.DiscountValue)
	}

	if discount < 0 {
		return 0
	}
	return discount
}

// FinalTotal returns subtotal minus the computed discount. The result may be
// negative for an oversized fixed discount unless ClampToZero is set.
func (r Resolver) FinalTotal(subtotal int64, v *Voucher) int64 {
	total := subtotal - r.ComputeDiscount(subtotal, v)
	if r.ClampToZero && total < 0 {
		return 0
	}
	return total
}
