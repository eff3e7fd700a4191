// internal/domain/voucher/service_test.go
package voucher

import (
	"context"
	"errors"
	"io"
	"testing"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type mockVoucherGateway struct {
	userVouchers []UserVoucher
	claimable    []Voucher
	listErr      error
	claimErr     error
	deleteErr    error

	claimedID uint
	deletedID uint
}

func (m *mockVoucherGateway) ListUserVouchers(ctx context.Context, token string, showUsed bool) ([]UserVoucher, error) {
	return m.userVouchers, m.listErr
}

func (m *mockVoucherGateway) ListClaimable(ctx context.Context, token string) ([]Voucher, error) {
	return m.claimable, m.listErr
}

func (m *mockVoucherGateway) Claim(ctx context.Context, token string, voucherID uint) error {
	m.claimedID = voucherID
	return m.claimErr
}

func (m *mockVoucherGateway) DeleteClaim(ctx context.Context, token string, userVoucherID uint) error {
	m.deletedID = userVoucherID
	return m.deleteErr
}

func serviceLogger() *logrus.Entry {
	logger := logrus.New()
	logger.SetOutput(io.Discard)
	return logrus.NewEntry(logger)
}

func TestService_ClaimableVouchers(t *testing.T) {
	now := time.Now().UTC()

	t.Run("filters vouchers outside the hunt window", func(t *testing.T) {
		gw := &mockVoucherGateway{claimable: []Voucher{
			{ID: 1, Code: "OPEN", HuntStartTime: now.Add(-time.Hour), HuntEndTime: now.Add(time.Hour)},
			{ID: 2, Code: "NOT_YET", HuntStartTime: now.Add(time.Hour), HuntEndTime: now.Add(2 * time.Hour)},
			{ID: 3, Code: "OVER", HuntStartTime: now.Add(-2 * time.Hour), HuntEndTime: now.Add(-time.Hour)},
		}}
		svc := NewService(gw, serviceLogger())

		vouchers, err := svc.ClaimableVouchers(context.Background(), "token")

		require.NoError(t, err)
		require.Len(t, vouchers, 1)
		assert.Equal(t, "OPEN", vouchers[0].Code)
	})

	t.Run("propagates gateway failure", func(t *testing.T) {
		gw := &mockVoucherGateway{listErr: errors.New("backend down")}
		svc := NewService(gw, serviceLogger())

		_, err := svc.ClaimableVouchers(context.Background(), "token")

		assert.Error(t, err)
	})
}

func TestService_Claim(t *testing.T) {
	gw := &mockVoucherGateway{}
	svc := NewService(gw, serviceLogger())

	require.NoError(t, svc.Claim(context.Background(), "token", 12))
	assert.Equal(t, uint(12), gw.claimedID)

	gw.claimErr = errors.New("already claimed")
	assert.Error(t, svc.Claim(context.Background(), "token", 13))
}

func TestService_RemoveClaim(t *testing.T) {
	gw := &mockVoucherGateway{}
	svc := NewService(gw, serviceLogger())

	require.NoError(t, svc.RemoveClaim(context.Background(), "token", 9))
	assert.Equal(t, uint(9), gw.deletedID)
}

func TestFindClaim(t *testing.T) {
	claims := []UserVoucher{{ID: 1}, {ID: 2}}

	claim, ok := FindClaim(claims, 2)
	require.True(t, ok)
	assert.Equal(t, uint(2), claim.ID)

	_, ok = FindClaim(claims, 99)
	assert.False(t, ok)
}
