// internal/domain/voucher/entity.go
package voucher

import (
	"fmt"
	"time"
)

// DiscountType represents the discount policy of a voucher
type DiscountType string

const (
	DiscountPercentage DiscountType = "percentage"
	DiscountFixed      DiscountType = "fixed_amount"
)

// Voucher represents an immutable voucher definition created by an admin.
// The hunt window (HuntStartTime..HuntEndTime) is the range in which users
// may claim the voucher; a claim stays valid for ValidDurationDays.
type Voucher struct {
	ID                   uint         `json:"id"`
	Code                 string       `json:"code"`
	Description          string       `json:"description,omitempty"`
	DiscountType         DiscountType `json:"discount_type"`
	DiscountValue        float64      `json:"discount_value"`
	HuntStartTime        time.Time    `json:"hunt_start_time"`
	HuntEndTime          time.Time    `json:"hunt_end_time"`
	ValidDurationDays    int          `json:"valid_duration_days"`
	ApplicableProductIDs []uint       `json:"applicable_product_ids"` // nil means all products
	CreatedAt            time.Time    `json:"created_at"`
}

// InHuntWindow reports whether the voucher is claimable at the given time
func (v *Voucher) InHuntWindow(now time.Time) bool {
	return !now.Before(v.HuntStartTime) && !now.After(v.HuntEndTime)
}

// AppliesTo reports whether the voucher covers the given product
func (v *Voucher) AppliesTo(productID uint) bool {
	if v.ApplicableProductIDs == nil {
		return true
	}
	for _, id := range v.ApplicableProductIDs {
		if id == productID {
			return true
		}
	}
	return false
}

// Validate enforces the admin-side creation rules. These are not re-checked
// at checkout time; a stored voucher is trusted.
func (v *Voucher) Validate() error {
	if v.Code == "" {
		return fmt.Errorf("voucher code is required")
	}

	switch v.DiscountType {
	case DiscountPercentage:
		if v.DiscountValue < 1 || v.DiscountValue > 100 {
			return fmt.Errorf("percentage discount must be between 1 and 100")
		}
	case DiscountFixed:
		if v.DiscountValue <= 0 {
			return fmt.Errorf("fixed discount must be positive")
		}
	default:
		return fmt.Errorf("unknown discount type: %s", v.DiscountType)
	}

	if !v.HuntEndTime.After(v.HuntStartTime) {
		return fmt.Errorf("hunt end time must be after hunt start time")
	}

	if v.ValidDurationDays < 1 {
		return fmt.Errorf("valid duration must be at least one day")
	}

	return nil
}

// UserVoucher is a claim binding a voucher to a user. The server enforces at
// most one active claim per voucher per user; clients only display claims.
type UserVoucher struct {
	ID          uint      `json:"id"`
	UserID      uint      `json:"user_id"`
	VoucherID   uint      `json:"voucher_id"`
	ClaimedAt   time.Time `json:"claimed_at"`
	ExpiresAt   time.Time `json:"expires_at"`
	IsUsed      bool      `json:"is_used"`
	VoucherInfo Voucher   `json:"voucher_info"`
}

// IsActive reports whether the claim is unused and unexpired
func (uv *UserVoucher) IsActive(now time.Time) bool {
	return !uv.IsUsed && now.Before(uv.ExpiresAt)
}
