// internal/domain/checkout/service.go
package checkout

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"github.com/your-org/restaurant-storefront/internal/config"
	"github.com/your-org/restaurant-storefront/internal/domain/cart"
	"github.com/your-org/restaurant-storefront/internal/domain/voucher"
	"github.com/your-org/restaurant-storefront/internal/gateway"
)

// Gateway is the slice of the backend API used during checkout
type Gateway interface {
	PlaceOrder(ctx context.Context, token string, req *gateway.OrderRequest) (*gateway.OrderResponse, error)
	CreateMomoPayment(ctx context.Context, token string, req *gateway.OrderRequest) (*gateway.MomoPaymentResponse, error)
	CreateBankTransfer(ctx context.Context, token string, req *gateway.OrderRequest) (*gateway.BankTransferResponse, error)
	OrderStatus(ctx context.Context, token string, orderID uint) (*gateway.OrderStatusResponse, error)
}

// PaymentMethod selects one of the three payment flows
type PaymentMethod string

const (
	PaymentCOD  PaymentMethod = "cod"
	PaymentMomo PaymentMethod = "momo"
	PaymentBank PaymentMethod = "bank"
)

// Valid reports whether the payment method is one of the supported flows
func (m PaymentMethod) Valid() bool {
	switch m {
	case PaymentCOD, PaymentMomo, PaymentBank:
		return true
	}
	return false
}

// State is the terminal state of a checkout attempt
type State string

const (
	StateCompleted            State = "completed"             // cod: order placed, cart cleared
	StateRedirected           State = "redirected"            // momo: user sent to e-wallet, cart kept
	StateAwaitingConfirmation State = "awaiting_confirmation" // bank: manual transfer pending
)

var (
	// ErrSubmitInProgress rejects a re-submission while an attempt is in flight
	ErrSubmitInProgress = errors.New("checkout already in progress")
	// ErrEmptyCart rejects checkout with no line items
	ErrEmptyCart = errors.New("cart is empty")
	// ErrInvalidPaymentMethod rejects unknown payment methods
	ErrInvalidPaymentMethod = errors.New("invalid payment method")
)

// SubmitRequest is the shipping form plus payment selection
type SubmitRequest struct {
	CustomerName         string        `json:"customer_name" binding:"required"`
	CustomerPhone        string        `json:"customer_phone" binding:"required"`
	ShippingAddress      string        `json:"shipping_address" binding:"required"`
	PaymentMethod        PaymentMethod `json:"payment_method"`
	AppliedUserVoucherID *uint         `json:"applied_user_voucher_id"`
}

// Result describes where a successful submission left the user
type Result struct {
	AttemptID        string `json:"attempt_id"`
	State            State  `json:"state"`
	OrderID          uint   `json:"order_id,omitempty"`
	Amount           int64  `json:"amount,omitempty"`
	PayURL           string `json:"pay_url,omitempty"`
	PaymentReference string `json:"payment_reference,omitempty"`
}

// Quote is the order total breakdown under the selected voucher
type Quote struct {
	Subtotal   int64 `json:"subtotal"`
	Discount   int64 `json:"discount"`
	FinalTotal int64 `json:"final_total"`
}

// BankInstructions is everything the manual-transfer page needs
type BankInstructions struct {
	BankName      string `json:"bank_name"`
	AccountNumber string `json:"account_number"`
	AccountName   string `json:"account_name"`
	OrderID       uint   `json:"order_id"`
	CustomerName  string `json:"customer_name"`
	Amount        int64  `json:"amount"`
	Reference     string `json:"reference"`
	Status        string `json:"status"`
}

// PaymentStatus is the outcome of a manual bank status check
type PaymentStatus struct {
	OrderID uint   `json:"order_id"`
	Status  string `json:"status"`
	Paid    bool   `json:"paid"`
}

// Service orchestrates checkout: it assembles the order payload from the
// cart, dispatches it through exactly one payment flow, and applies each
// flow's completion contract to the local cart.
type Service struct {
	gateway  Gateway
	carts    *cart.Manager
	resolver voucher.Resolver
	bank     config.BankConfig
	log      *logrus.Entry

	mu       sync.Mutex
	inFlight map[uint]bool
}

// NewService creates a new checkout service
func NewService(gw Gateway, carts *cart.Manager, resolver voucher.Resolver, bank config.BankConfig, log *logrus.Entry) *Service {
	return &Service{
		gateway:  gw,
		carts:    carts,
		resolver: resolver,
		bank:     bank,
		log:      log,
		inFlight: make(map[uint]bool),
	}
}

// PaymentReference builds the per-order transfer note the backend matches
// incoming bank transactions against.
func PaymentReference(orderID uint) string {
	return fmt.Sprintf("DH%d", orderID)
}

// Submit runs one checkout attempt. Exactly one payment path is taken; a
// gateway failure aborts the attempt without touching the cart, so the user
// keeps their entered data and may retry.
func (s *Service) Submit(ctx context.Context, userID uint, token string, req *SubmitRequest) (*Result, error) {
	method := req.PaymentMethod
	if method == "" {
		method = PaymentCOD
	}
	if !method.Valid() {
		return nil, ErrInvalidPaymentMethod
	}

	if !s.begin(userID) {
		return nil, ErrSubmitInProgress
	}
	defer s.end(userID)

	store, err := s.carts.ForUser(ctx, userID, token)
	if err != nil {
		return nil, err
	}

	items := store.Items()
	if len(items) == 0 {
		return nil, ErrEmptyCart
	}

	payload := buildOrderRequest(userID, items, req)
	attemptID := uuid.NewString()

	log := s.log.WithFields(logrus.Fields{
		"attempt_id":     attemptID,
		"user_id":        userID,
		"payment_method": method,
	})

	switch method {
	case PaymentCOD:
		resp, err := s.gateway.PlaceOrder(ctx, token, payload)
		if err != nil {
			log.WithError(err).Warn("Order placement failed")
			return nil, err
		}

		// COD settles at delivery; the order is final, drop the cart now.
		if err := store.ClearCart(ctx); err != nil {
			log.WithError(err).Warn("Failed to clear cart after order placement")
		}

		log.WithField("order_id", resp.ID).Info("Order placed")
		return &Result{AttemptID: attemptID, State: StateCompleted, OrderID: resp.ID}, nil

	case PaymentMomo:
		resp, err := s.gateway.CreateMomoPayment(ctx, token, payload)
		if err != nil {
			log.WithError(err).Warn("E-wallet payment request failed")
			return nil, err
		}

		// The cart survives the redirect: the user may abandon the e-wallet
		// flow, so it is only cleared by the payment-result callback.
		log.Info("Redirecting to e-wallet")
		return &Result{AttemptID: attemptID, State: StateRedirected, PayURL: resp.PayURL}, nil

	default: // PaymentBank
		resp, err := s.gateway.CreateBankTransfer(ctx, token, payload)
		if err != nil {
			log.WithError(err).Warn("Bank transfer registration failed")
			return nil, err
		}

		log.WithField("order_id", resp.OrderID).Info("Awaiting manual transfer")
		return &Result{
			AttemptID:        attemptID,
			State:            StateAwaitingConfirmation,
			OrderID:          resp.OrderID,
			Amount:           resp.Amount,
			PaymentReference: PaymentReference(resp.OrderID),
		}, nil
	}
}

// HandlePaymentResult applies the e-wallet return contract: resultCode "0"
// means the payment settled and the cart is cleared; any other value or an
// absent code means failure and the cart is left untouched.
func (s *Service) HandlePaymentResult(ctx context.Context, userID uint, token, resultCode string) (bool, error) {
	if resultCode != "0" {
		return false, nil
	}

	store, err := s.carts.ForUser(ctx, userID, token)
	if err != nil {
		return false, err
	}

	if err := store.ClearCart(ctx); err != nil {
		s.log.WithError(err).Warn("Failed to clear cart after payment")
	}
	return true, nil
}

// CheckPaymentStatus polls the order status for a manual transfer. The user
// triggers this; there is no automatic polling.
func (s *Service) CheckPaymentStatus(ctx context.Context, token string, orderID uint) (*PaymentStatus, error) {
	resp, err := s.gateway.OrderStatus(ctx, token, orderID)
	if err != nil {
		return nil, err
	}

	return &PaymentStatus{
		OrderID: orderID,
		Status:  resp.Status,
		Paid:    resp.Status == "processing" || resp.Status == "paid",
	}, nil
}

// Instructions assembles the manual-transfer page payload for an order
func (s *Service) Instructions(ctx context.Context, token string, orderID uint) (*BankInstructions, error) {
	resp, err := s.gateway.OrderStatus(ctx, token, orderID)
	if err != nil {
		return nil, err
	}

	return &BankInstructions{
		BankName:      s.bank.BankName,
		AccountNumber: s.bank.AccountNumber,
		AccountName:   s.bank.AccountName,
		OrderID:       resp.ID,
		CustomerName:  resp.CustomerName,
		Amount:        resp.TotalAmount,
		Reference:     PaymentReference(orderID),
		Status:        resp.Status,
	}, nil
}

// QuoteFor computes the order totals for a cart under a selected claim
func (s *Service) QuoteFor(items []cart.LineItem, claim *voucher.UserVoucher) Quote {
	subtotal := cart.CalculateTotals(items).SubTotal

	var v *voucher.Voucher
	if claim != nil {
		v = &claim.VoucherInfo
	}

	return Quote{
		Subtotal:   subtotal,
		Discount:   s.resolver.ComputeDiscount(subtotal, v),
		FinalTotal: s.resolver.FinalTotal(subtotal, v),
	}
}

func buildOrderRequest(userID uint, items []cart.LineItem, req *SubmitRequest) *gateway.OrderRequest {
	cartItems := make([]gateway.OrderItemRequest, len(items))
	for i, item := range items {
		cartItems[i] = gateway.OrderItemRequest{
			ProductID: item.Product.ID,
			Quantity:  item.Quantity,
		}
	}

	uid := userID
	return &gateway.OrderRequest{
		UserID:               &uid,
		CustomerName:         req.CustomerName,
		CustomerPhone:        req.CustomerPhone,
		ShippingAddress:      req.ShippingAddress,
		CartItems:            cartItems,
		AppliedUserVoucherID: req.AppliedUserVoucherID,
	}
}

func (s *Service) begin(userID uint) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.inFlight[userID] {
		return false
	}
	s.inFlight[userID] = true
	return true
}

func (s *Service) end(userID uint) {
	s.mu.Lock()
	delete(s.inFlight, userID)
	s.mu.Unlock()
}
