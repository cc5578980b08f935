// Package gateway holds thin REST clients for the external services the
// platform delegates to: Stripe for card payments, nothing more.
package gateway

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"tastebuds/internal/pkg/config"
	"tastebuds/internal/pkg/errs"
)

const intentStatusSucceeded = "succeeded"

// PaymentIntent mirrors the subset of Stripe's payment_intent object the
// booking flow reads.
type PaymentIntent struct {
	ID           string  `json:"id"`
	Amount       int64   `json:"amount"`
	Currency     string  `json:"currency"`
	Status       string  `json:"status"`
	ClientSecret string  `json:"client_secret"`
	LatestCharge *Charge `json:"latest_charge"`
}

type Charge struct {
	ID         string  `json:"id"`
	ReceiptURL *string `json:"receipt_url"`
}

func (p *PaymentIntent) Succeeded() bool {
	return p.Status == intentStatusSucceeded
}

func (p *PaymentIntent) ReceiptURL() *string {
	if p.LatestCharge == nil {
		return nil
	}
	return p.LatestCharge.ReceiptURL
}

type apiError struct {
	Error struct {
		Type    string `json:"type"`
		Code    string `json:"code"`
		Message string `json:"message"`
	} `json:"error"`
}

// StripeClient talks to the Stripe REST API directly with form-encoded
// requests and bearer auth.
type StripeClient struct {
	baseURL    string
	secretKey  string
	currency   string
	httpClient *http.Client
}

func NewStripeClient(cfg config.StripeConfig) *StripeClient {
	return &StripeClient{
		baseURL:   strings.TrimRight(cfg.BaseURL, "/"),
		secretKey: cfg.SecretKey,
		currency:  cfg.Currency,
		httpClient: &http.Client{
			Timeout: 15 * time.Second,
		},
	}
}

// CreateIntent opens a payment intent for the given amount in minor units.
// Metadata keys travel to the Stripe dashboard for reconciliation.
func (c *StripeClient) CreateIntent(ctx context.Context, amountPence int64, metadata map[string]string) (*PaymentIntent, error) {
	form := url.Values{}
	form.Set("amount", strconv.FormatInt(amountPence, 10))
	form.Set("currency", c.currency)
	form.Set("automatic_payment_methods[enabled]", "true")
	for k, v := range metadata {
		form.Set("metadata["+k+"]", v)
	}

	return c.do(ctx, http.MethodPost, "/v1/payment_intents", form)
}

// GetIntent fetches an intent with its latest charge expanded so the receipt
// URL is available at commit time.
func (c *StripeClient) GetIntent(ctx context.Context, intentID string) (*PaymentIntent, error) {
	form := url.Values{}
	form.Set("expand[]", "latest_charge")

	return c.do(ctx, http.MethodGet, "/v1/payment_intents/"+url.PathEscape(intentID)+"?"+form.Encode(), nil)
}

func (c *StripeClient) do(ctx context.Context, method, path string, form url.Values) (*PaymentIntent, error) {
	var body io.Reader
	if form != nil {
		body = strings.NewReader(form.Encode())
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, body)
	if err != nil {
		return nil, errs.Wrap(err, "failed to build stripe request")
	}
	req.Header.Set("Authorization", "Bearer "+c.secretKey)
	if form != nil {
		req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, errs.Wrap(err, "stripe request failed")
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, errs.Wrap(err, "failed to read stripe response")
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		var apiErr apiError
		if json.Unmarshal(raw, &apiErr) == nil && apiErr.Error.Message != "" {
			return nil, errs.New(fmt.Sprintf("stripe error (%d %s): %s", resp.StatusCode, apiErr.Error.Code, apiErr.Error.Message))
		}
		return nil, errs.New(fmt.Sprintf("stripe error: unexpected status %d", resp.StatusCode))
	}

	var intent PaymentIntent
	if err := json.Unmarshal(raw, &intent); err != nil {
		return nil, errs.Wrap(err, "failed to decode stripe response")
	}
	return &intent, nil
}
