// internal/gateway/client_test.go
package gateway

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/your-org/restaurant-storefront/internal/config"
)

type recordedRequest struct {
	method string
	path   string
	query  string
	auth   string
	body   []byte
}

func newTestClient(t *testing.T, status int, response interface{}) (*Client, *recordedRequest) {
	t.Helper()

	recorded := &recordedRequest{}
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		recorded.method = r.Method
		recorded.path = r.URL.Path
		recorded.query = r.URL.RawQuery
		recorded.auth = r.Header.Get("Authorization")
		recorded.body, _ = io.ReadAll(r.Body)

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(status)
		if response != nil {
			_ = json.NewEncoder(w).Encode(response)
		}
	}))
	t.Cleanup(server.Close)

	logger := logrus.New()
	logger.SetOutput(io.Discard)

	cfg := &config.Config{
		Backend: config.BackendConfig{
			BaseURL: server.URL,
			Timeout: 5 * time.Second,
		},
	}

	return NewClient(cfg, logrus.NewEntry(logger)), recorded
}

func TestClient_FetchCart(t *testing.T) {
	client, recorded := newTestClient(t, http.StatusOK, []map[string]interface{}{
		{
			"product":  map[string]interface{}{"id": 1, "name": "Pho Bo", "price": 65000},
			"quantity": 2,
		},
	})

	items, err := client.FetchCart(context.Background(), "my-token")

	require.NoError(t, err)
	require.Len(t, items, 1)
	assert.Equal(t, uint(1), items[0].Product.ID)
	assert.Equal(t, int64(65000), items[0].Product.Price)
	assert.Equal(t, 2, items[0].Quantity)

	assert.Equal(t, http.MethodGet, recorded.method)
	assert.Equal(t, "/user/cart", recorded.path)
	assert.Equal(t, "Bearer my-token", recorded.auth)
}

func TestClient_AddItem(t *testing.T) {
	client, recorded := newTestClient(t, http.StatusOK, nil)

	require.NoError(t, client.AddItem(context.Background(), "my-token", 7, 3))

	assert.Equal(t, http.MethodPost, recorded.method)
	assert.Equal(t, "/user/cart", recorded.path)
	assert.JSONEq(t, `{"product_id":7,"quantity":3}`, string(recorded.body))
}

func TestClient_UpdateItem(t *testing.T) {
	client, recorded := newTestClient(t, http.StatusOK, nil)

	require.NoError(t, client.UpdateItem(context.Background(), "my-token", 7, 5))

	assert.Equal(t, http.MethodPut, recorded.method)
	assert.Equal(t, "/user/cart/7", recorded.path)
	assert.JSONEq(t, `{"quantity":5}`, string(recorded.body))
}

func TestClient_RemoveItem(t *testing.T) {
	client, recorded := newTestClient(t, http.StatusOK, nil)

	require.NoError(t, client.RemoveItem(context.Background(), "my-token", 7))

	assert.Equal(t, http.MethodDelete, recorded.method)
	assert.Equal(t, "/user/cart/7", recorded.path)
}

func TestClient_ClearCart(t *testing.T) {
	client, recorded := newTestClient(t, http.StatusOK, nil)

	require.NoError(t, client.ClearCart(context.Background(), "my-token"))

	assert.Equal(t, http.MethodDelete, recorded.method)
	assert.Equal(t, "/user/cart", recorded.path)
}

func TestClient_ListUserVouchers(t *testing.T) {
	client, recorded := newTestClient(t, http.StatusOK, []map[string]interface{}{})

	_, err := client.ListUserVouchers(context.Background(), "my-token", true)

	require.NoError(t, err)
	assert.Equal(t, "/user/vouchers", recorded.path)
	assert.Equal(t, "show_used=true", recorded.query)
}

func TestClient_Claim(t *testing.T) {
	client, recorded := newTestClient(t, http.StatusOK, nil)

	require.NoError(t, client.Claim(context.Background(), "my-token", 12))

	assert.Equal(t, http.MethodPost, recorded.method)
	assert.Equal(t, "/user/vouchers/claim/12", recorded.path)
}

func TestClient_PlaceOrder(t *testing.T) {
	client, recorded := newTestClient(t, http.StatusCreated, map[string]interface{}{"id": 55})

	uid := uint(42)
	resp, err := client.PlaceOrder(context.Background(), "my-token", &OrderRequest{
		UserID:          &uid,
		CustomerName:    "Nguyen Van A",
		CustomerPhone:   "0901234567",
		ShippingAddress: "12 Hang Bac",
		CartItems:       []OrderItemRequest{{ProductID: 1, Quantity: 2}},
	})

	require.NoError(t, err)
	assert.Equal(t, uint(55), resp.ID)
	assert.Equal(t, http.MethodPost, recorded.method)
	assert.Equal(t, "/orders", recorded.path)
}

func TestClient_CreateMomoPayment(t *testing.T) {
	client, recorded := newTestClient(t, http.StatusOK, map[string]interface{}{"payUrl": "https://momo.vn/pay/abc"})

	resp, err := client.CreateMomoPayment(context.Background(), "my-token", &OrderRequest{})

	require.NoError(t, err)
	assert.Equal(t, "https://momo.vn/pay/abc", resp.PayURL)
	assert.Equal(t, "/payment/momo", recorded.path)
}

func TestClient_CreateBankTransfer(t *testing.T) {
	client, recorded := newTestClient(t, http.StatusOK, map[string]interface{}{"orderId": 77, "amount": 130000})

	resp, err := client.CreateBankTransfer(context.Background(), "my-token", &OrderRequest{})

	require.NoError(t, err)
	assert.Equal(t, uint(77), resp.OrderID)
	assert.Equal(t, int64(130000), resp.Amount)
	assert.Equal(t, "/payment/bank-transfer", recorded.path)
}

func TestClient_OrderStatus(t *testing.T) {
	client, recorded := newTestClient(t, http.StatusOK, map[string]interface{}{
		"id": 77, "customer_name": "Nguyen Van A", "total_amount": 130000, "status": "processing",
	})

	resp, err := client.OrderStatus(context.Background(), "my-token", 77)

	require.NoError(t, err)
	assert.Equal(t, "processing", resp.Status)
	assert.Equal(t, int64(130000), resp.TotalAmount)
	assert.Equal(t, "/orders/77/status", recorded.path)
}

func TestClient_ErrorDecoding(t *testing.T) {
	t.Run("decodes the backend error message", func(t *testing.T) {
		client, _ := newTestClient(t, http.StatusUnprocessableEntity, map[string]string{"error": "Voucher expired"})

		err := client.AddItem(context.Background(), "my-token", 1, 1)

		require.Error(t, err)
		var apiErr *APIError
		require.ErrorAs(t, err, &apiErr)
		assert.Equal(t, http.StatusUnprocessableEntity, apiErr.StatusCode)
		assert.Equal(t, "Voucher expired", apiErr.Message)
	})

	t.Run("handles an empty error body", func(t *testing.T) {
		client, _ := newTestClient(t, http.StatusInternalServerError, nil)

		err := client.AddItem(context.Background(), "my-token", 1, 1)

		var apiErr *APIError
		require.ErrorAs(t, err, &apiErr)
		assert.Equal(t, http.StatusInternalServerError, apiErr.StatusCode)
		assert.Contains(t, apiErr.Error(), "500")
	})
}

func TestClient_OmitsAuthHeaderWithoutToken(t *testing.T) {
	client, recorded := newTestClient(t, http.StatusOK, nil)

	require.NoError(t, client.ClearCart(context.Background(), ""))

	assert.Empty(t, recorded.auth)
}

func TestUserMessage(t *testing.T) {
	t.Run("returns the server message", func(t *testing.T) {
		err := &APIError{StatusCode: 400, Message: "Cart is empty"}
		assert.Equal(t, "Cart is empty", UserMessage(err, "fallback"))
	})

	t.Run("falls back for wrapped non-API errors", func(t *testing.T) {
		err := errors.New("dial tcp: connection refused")
		assert.Equal(t, "fallback", UserMessage(err, "fallback"))
	})

	t.Run("falls back when the server message is empty", func(t *testing.T) {
		err := &APIError{StatusCode: 500}
		assert.Equal(t, "fallback", UserMessage(err, "fallback"))
	})
}
