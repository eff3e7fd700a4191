// internal/domain/voucher/service.go
package voucher

import (
	"context"
	"fmt"
	"time"

	"github.com/sirupsen/logrus"
)

// Gateway is the remote voucher API
type Gateway interface {
	ListUserVouchers(ctx context.Context, token string, showUsed bool) ([]UserVoucher, error)
	ListClaimable(ctx context.Context, token string) ([]Voucher, error)
	Claim(ctx context.Context, token string, voucherID uint) error
	DeleteClaim(ctx context.Context, token string, userVoucherID uint) error
}

// Service handles voucher listing and claiming against the remote gateway
type Service struct {
	gateway Gateway
	log     *logrus.Entry
}

// NewService creates a new voucher service
func NewService(gateway Gateway, log *logrus.Entry) *Service {
	return &Service{
		gateway: gateway,
		log:     log,
	}
}

// MyVouchers lists the user's claimed vouchers, optionally including used ones
func (s *Service) MyVouchers(ctx context.Context, token string, showUsed bool) ([]UserVoucher, error) {
	vouchers, err := s.gateway.ListUserVouchers(ctx, token, showUsed)
	if err != nil {
		return nil, fmt.Errorf("failed to list vouchers: %w", err)
	}
	return vouchers, nil
}

// ClaimableVouchers lists unclaimed vouchers whose hunt window is open.
// Eligibility is enforced server-side; the client-side window check only
// keeps stale entries out of the hunt display.
func (s *Service) ClaimableVouchers(ctx context.Context, token string) ([]Voucher, error) {
	vouchers, err := s.gateway.ListClaimable(ctx, token)
	if err != nil {
		return nil, fmt.Errorf("failed to list claimable vouchers: %w", err)
	}

	now := time.Now().UTC()
	open := vouchers[:0]
	for _, v := range vouchers {
		if v.InHuntWindow(now) {
			open = append(open, v)
		}
	}
	return open, nil
}

// Claim reserves a voucher for the user within its hunt window
func (s *Service) Claim(ctx context.Context, token string, voucherID uint) error {
	if err := s.gateway.Claim(ctx, token, voucherID); err != nil {
		return fmt.Errorf("failed to claim voucher: %w", err)
	}

	s.log.WithField("voucher_id", voucherID).Info("Voucher claimed")
	return nil
}

// RemoveClaim deletes one of the user's voucher claims
func (s *Service) RemoveClaim(ctx context.Context, token string, userVoucherID uint) error {
	if err := s.gateway.DeleteClaim(ctx, token, userVoucherID); err != nil {
		return fmt.Errorf("failed to remove voucher claim: %w", err)
	}
	return nil
}

// FindClaim returns the claim with the given id from a claimed-voucher list
func FindClaim(claims []UserVoucher, userVoucherID uint) (*UserVoucher, bool) {
	for i := range claims {
		if claims[i].ID == userVoucherID {
			return &claims[i], true
		}
	}
	return nil, false
}
