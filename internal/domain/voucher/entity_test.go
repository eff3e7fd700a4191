// internal/domain/voucher/entity_test.go
package voucher

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestVoucher_Validate(t *testing.T) {
	now := time.Now()

	valid := Voucher{
		Code:              "SUMMER10",
		DiscountType:      DiscountPercentage,
		DiscountValue:     10,
		HuntStartTime:     now,
		HuntEndTime:       now.Add(24 * time.Hour),
		ValidDurationDays: 7,
	}

	t.Run("valid voucher", func(t *testing.T) {
		v := valid
		assert.NoError(t, v.Validate())
	})

	t.Run("missing code", func(t *testing.T) {
		v := valid
		v.Code = ""
		assert.Error(t, v.Validate())
	})

	t.Run("percentage out of range", func(t *testing.T) {
		v := valid
		v.DiscountValue = 150
		assert.Error(t, v.Validate())

		v.DiscountValue = 0.5
		assert.Error(t, v.Validate())
	})

	t.Run("fixed discount must be positive", func(t *testing.T) {
		v := valid
		v.DiscountType = DiscountFixed
		v.DiscountValue = 0
		assert.Error(t, v.Validate())
	})

	t.Run("unknown discount type", func(t *testing.T) {
		v := valid
		v.DiscountType = "loyalty_points"
		assert.Error(t, v.Validate())
	})

	t.Run("hunt window must be ordered", func(t *testing.T) {
		v := valid
		v.HuntEndTime = v.HuntStartTime
		assert.Error(t, v.Validate())
	})

	t.Run("duration at least one day", func(t *testing.T) {
		v := valid
		v.ValidDurationDays = 0
		assert.Error(t, v.Validate())
	})
}

func TestVoucher_InHuntWindow(t *testing.T) {
	start := time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC)
	end := time.Date(2025, 6, 8, 0, 0, 0, 0, time.UTC)
	v := Voucher{HuntStartTime: start, HuntEndTime: end}

	assert.False(t, v.InHuntWindow(start.Add(-time.Second)))
	assert.True(t, v.InHuntWindow(start))
	assert.True(t, v.InHuntWindow(start.Add(3*24*time.Hour)))
	assert.True(t, v.InHuntWindow(end))
	assert.False(t, v.InHuntWindow(end.Add(time.Second)))
}

func TestVoucher_AppliesTo(t *testing.T) {
	t.Run("nil product list covers everything", func(t *testing.T) {
		v := Voucher{}
		assert.True(t, v.AppliesTo(1))
		assert.True(t, v.AppliesTo(999))
	})

	t.Run("explicit product list is exclusive", func(t *testing.T) {
		v := Voucher{ApplicableProductIDs: []uint{3, 7}}
		assert.True(t, v.AppliesTo(3))
		assert.True(t, v.AppliesTo(7))
		assert.False(t, v.AppliesTo(5))
	})
}

func TestUserVoucher_IsActive(t *testing.T) {
	now := time.Now()
	claim := UserVoucher{ExpiresAt: now.Add(time.Hour)}

	assert.True(t, claim.IsActive(now))

	claim.IsUsed = true
	assert.False(t, claim.IsActive(now))

	claim.IsUsed = false
	assert.False(t, claim.IsActive(now.Add(2*time.Hour)))
}
