// internal/gateway/payment.go
package gateway

import (
	"context"
	"net/http"
)

// MomoPaymentResponse carries the e-wallet redirect URL
type MomoPaymentResponse struct {
	PayURL string `json:"payUrl"`
}

// BankTransferResponse carries the manual-transfer order id and amount
type BankTransferResponse struct {
	OrderID uint  `json:"orderId"`
	Amount  int64 `json:"amount"`
}

// CreateMomoPayment requests an e-wallet payment URL for the order payload
func (c *Client) CreateMomoPayment(ctx context.Context, token string, req *OrderRequest) (*MomoPaymentResponse, error) {
	var resp MomoPaymentResponse
	if err := c.do(ctx, http.MethodPost, "/payment/momo", token, req, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

// CreateBankTransfer registers a manual bank-transfer order
func (c *Client) CreateBankTransfer(ctx context.Context, token string, req *OrderRequest) (*BankTransferResponse, error) {
	var resp BankTransferResponse
	if err := c.do(ctx, http.MethodPost, "/payment/bank-transfer", token, req, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}
