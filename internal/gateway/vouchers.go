// internal/gateway/vouchers.go
package gateway

import (
	"context"
	"fmt"
	"net/http"

	"github.com/your-org/restaurant-storefront/internal/domain/voucher"
)

// ListUserVouchers retrieves the user's claimed vouchers
func (c *Client) ListUserVouchers(ctx context.Context, token string, showUsed bool) ([]voucher.UserVoucher, error) {
	var claims []voucher.UserVoucher
	path := fmt.Sprintf("/user/vouchers?show_used=%t", showUsed)
	if err := c.do(ctx, http.MethodGet, path, token, nil, &claims); err != nil {
		return nil, err
	}
	return claims, nil
}

// ListClaimable retrieves the vouchers the user has not yet claimed
func (c *Client) ListClaimable(ctx context.Context, token string) ([]voucher.Voucher, error) {
	var vouchers []voucher.Voucher
	if err := c.do(ctx, http.MethodGet, "/user/vouchers/claimable", token, nil, &vouchers); err != nil {
		return nil, err
	}
	return vouchers, nil
}

// Claim reserves a voucher for the user
func (c *Client) Claim(ctx context.Context, token string, voucherID uint) error {
	path := fmt.Sprintf("/user/vouchers/claim/%d", voucherID)
	return c.do(ctx, http.MethodPost, path, token, struct{}{}, nil)
}

// DeleteClaim removes one of the user's voucher claims
func (c *Client) DeleteClaim(ctx context.Context, token string, userVoucherID uint) error {
	return c.do(ctx, http.MethodDelete, fmt.Sprintf("/user/vouchers/%d", userVoucherID), token, nil, nil)
}
