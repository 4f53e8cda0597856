// Package wechatpay implements the PaymentProvider port over the WeChat Pay
// v3 JSON API: prepay transactions for payment initiation and the refund
// endpoint for returning paid amounts.
package wechatpay

import (
	"bytes"
	"context"
	"crypto/rand"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"net/http"
	"strconv"
	"time"

	"takeout/internal/core/ports"
	"takeout/internal/pkg/errs"
)

const (
	providerName = "wechat"

	prepayPath = "/v3/pay/transactions/jsapi"
	refundPath = "/v3/refund/domestic/refunds"
)

// Client calls the WeChat Pay v3 API.
type Client struct {
	baseURL    string
	merchantID string
	apiKey     string
	httpClient *http.Client
	now        func() time.Time
}

// NewClient creates a payment client. An empty baseURL falls back to the
// public API host; tests point it at a local server.
func NewClient(baseURL, merchantID, apiKey string) *Client {
	if baseURL == "" {
		baseURL = "https://api.mch.weixin.qq.com"
	}
	return &Client{
		baseURL:    baseURL,
		merchantID: merchantID,
		apiKey:     apiKey,
		httpClient: &http.Client{
			Timeout: 10 * time.Second,
		},
		now: time.Now,
	}
}

type prepayRequest struct {
	MerchantID  string `json:"mchid"`
	OutTradeNo  string `json:"out_trade_no"`
	Description string `json:"description"`
	Amount      struct {
		Total int `json:"total"`
	} `json:"amount"`
}

type prepayResponse struct {
	PrepayID string `json:"prepay_id"`
}

// CreatePrepay initiates a payment and returns the client-side ticket.
func (c *Client) CreatePrepay(ctx context.Context, orderNumber string, amount float64) (ports.PrepayTicket, error) {
	body := prepayRequest{
		MerchantID:  c.merchantID,
		OutTradeNo:  orderNumber,
		Description: "takeout order " + orderNumber,
	}
	// The API counts in the smallest currency unit.
	body.Amount.Total = int(amount*100 + 0.5)

	var decoded prepayResponse
	if err := c.post(ctx, prepayPath, body, &decoded); err != nil {
		return ports.PrepayTicket{}, errs.NewExternalProviderError(providerName, "create prepay", err)
	}
	if decoded.PrepayID == "" {
		return ports.PrepayTicket{}, errs.NewExternalProviderError(providerName, "create prepay",
			fmt.Errorf("empty prepay id"))
	}

	nonce, err := nonceStr()
	if err != nil {
		return ports.PrepayTicket{}, errs.NewExternalProviderError(providerName, "create prepay", err)
	}

	timestamp := strconv.FormatInt(c.now().Unix(), 10)
	return ports.PrepayTicket{
		PrepayID:  decoded.PrepayID,
		NonceStr:  nonce,
		Timestamp: timestamp,
		Signature: c.sign(decoded.PrepayID, nonce, timestamp),
	}, nil
}

type refundRequest struct {
	OutTradeNo  string `json:"out_trade_no"`
	OutRefundNo string `json:"out_refund_no"`
	Amount      struct {
		Refund int `json:"refund"`
		Total  int `json:"total"`
	} `json:"amount"`
}

type refundResponse struct {
	Status string `json:"status"`
}

// Refund returns the paid amount for the given order number. The full amount
// is refunded in one request.
func (c *Client) Refund(ctx context.Context, orderNumber string, amount float64) error {
	body := refundRequest{
		OutTradeNo:  orderNumber,
		OutRefundNo: "refund-" + orderNumber,
	}
	cents := int(amount*100 + 0.5)
	body.Amount.Refund = cents
	body.Amount.Total = cents

	var decoded refundResponse
	if err := c.post(ctx, refundPath, body, &decoded); err != nil {
		return errs.NewExternalProviderError(providerName, "refund", err)
	}
	if decoded.Status == "ABNORMAL" || decoded.Status == "CLOSED" {
		return errs.NewExternalProviderError(providerName, "refund",
			fmt.Errorf("refund status %s", decoded.Status))
	}

	return nil
}

func (c *Client) post(ctx context.Context, path string, body, out any) error {
	payload, err := json.Marshal(body)
	if err != nil {
		return err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost,
		c.baseURL+path, bytes.NewReader(payload))
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "WECHATPAY2-SHA256-RSA2048 mchid=\""+c.merchantID+"\"")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("unexpected http status %d", resp.StatusCode)
	}

	return json.NewDecoder(resp.Body).Decode(out)
}

func (c *Client) sign(prepayID, nonce, timestamp string) string {
	digest := sha256.Sum256([]byte(prepayID + "\n" + nonce + "\n" + timestamp + "\n" + c.apiKey + "\n"))
	return hex.EncodeToString(digest[:])
}

func nonceStr() (string, error) {
	raw := make([]byte, 16)
	if _, err := rand.Read(raw); err != nil {
		return "", err
	}
	return hex.EncodeToString(raw), nil
}
