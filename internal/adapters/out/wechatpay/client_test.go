package wechatpay_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"takeout/internal/adapters/out/wechatpay"
	"takeout/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestClient_CreatePrepay(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/v3/pay/transactions/jsapi", r.URL.Path)

		var body map[string]any
		require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		assert.Equal(t, "mch-1", body["mchid"])
		assert.Equal(t, "n-1001", body["out_trade_no"])
		amount := body["amount"].(map[string]any)
		// 36.00 yuan as 3600 fen.
		assert.EqualValues(t, 3600, amount["total"])

		_, _ = w.Write([]byte(`{"prepay_id":"wx-prepay-123"}`))
	}))
	defer server.Close()

	client := wechatpay.NewClient(server.URL, "mch-1", "secret")
	ticket, err := client.CreatePrepay(t.Context(), "n-1001", 36.00)
	require.NoError(t, err)
	assert.Equal(t, "wx-prepay-123", ticket.PrepayID)
	assert.NotEmpty(t, ticket.NonceStr)
	assert.NotEmpty(t, ticket.Timestamp)
	assert.NotEmpty(t, ticket.Signature)
}

func TestClient_CreatePrepay_EmptyPrepayID(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte(`{}`))
	}))
	defer server.Close()

	client := wechatpay.NewClient(server.URL, "mch-1", "secret")
	_, err := client.CreatePrepay(t.Context(), "n-1001", 36.00)
	require.ErrorIs(t, err, errs.ErrExternalProvider)
}

func TestClient_Refund(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/v3/refund/domestic/refunds", r.URL.Path)
		_, _ = w.Write([]byte(`{"status":"SUCCESS"}`))
	}))
	defer server.Close()

	client := wechatpay.NewClient(server.URL, "mch-1", "secret")
	require.NoError(t, client.Refund(t.Context(), "n-1001", 36.00))
}

func TestClient_Refund_HTTPError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer server.Close()

	client := wechatpay.NewClient(server.URL, "mch-1", "secret")
	err := client.Refund(t.Context(), "n-1001", 36.00)
	require.ErrorIs(t, err, errs.ErrExternalProvider)
}
