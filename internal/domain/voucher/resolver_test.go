// internal/domain/voucher/resolver_test.go
package voucher

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestResolver_ComputeDiscount(t *testing.T) {
	r := Resolver{}

	tests := []struct {
		name     string
		subtotal int64
		voucher  *Voucher
		expected int64
	}{
		{
			name:     "nil voucher yields zero",
			subtotal: 100000,
			voucher:  nil,
			expected: 0,
		},
		{
			name:     "percentage discount",
			subtotal: 200000,
			voucher:  &Voucher{DiscountType: DiscountPercentage, DiscountValue: 10},
			expected: 20000,
		},
		{
			name:     "percentage discount rounds to nearest",
			subtotal: 99999,
			voucher:  &Voucher{DiscountType: DiscountPercentage, DiscountValue: 10},
			expected: 10000,
		},
		{
			name:     "fixed discount",
			subtotal: 200000,
			voucher:  &Voucher{DiscountType: DiscountFixed, DiscountValue: 50000},
			expected: 50000,
		},
		{
			name:     "fixed discount larger than subtotal is not capped",
			subtotal: 10000,
			voucher:  &Voucher{DiscountType: DiscountFixed, DiscountValue: 50000},
			expected: 50000,
		},
		{
			name:     "negative discount value guards to zero",
			subtotal: 100000,
			voucher:  &Voucher{DiscountType: DiscountFixed, DiscountValue: -5000},
			expected: 0,
		},
		{
			name:     "unknown discount type yields zero",
			subtotal: 100000,
			voucher:  &Voucher{DiscountType: "buy_one_get_one", DiscountValue: 50},
			expected: 0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, r.ComputeDiscount(tt.subtotal, tt.voucher))
		})
	}
}

func TestResolver_FinalTotal(t *testing.T) {
	t.Run("percentage discount reduces total", func(t *testing.T) {
		r := Resolver{}
		v := &Voucher{DiscountType: DiscountPercentage, DiscountValue: 25}

		assert.Equal(t, int64(150000), r.FinalTotal(200000, v))
	})

	t.Run("oversized fixed discount goes negative by default", func(t *testing.T) {
		r := Resolver{}
		v := &Voucher{DiscountType: DiscountFixed, DiscountValue: 50000}

		assert.Equal(t, int64(-40000), r.FinalTotal(10000, v))
	})

	t.Run("oversized fixed discount clamps when configured", func(t *testing.T) {
		r := Resolver{ClampToZero: true}
		v := &Voucher{DiscountType: DiscountFixed, DiscountValue: 50000}

		assert.Equal(t, int64(0), r.FinalTotal(10000, v))
	})

	t.Run("clamp leaves positive totals untouched", func(t *testing.T) {
		r := Resolver{ClampToZero: true}
		v := &Voucher{DiscountType: DiscountFixed, DiscountValue: 5000}

		assert.Equal(t, int64(95000), r.FinalTotal(100000, v))
	})

	t.Run("no voucher returns subtotal", func(t *testing.T) {
		r := Resolver{}

		assert.Equal(t, int64(123000), r.FinalTotal(123000, nil))
	})
}
