//go:build unit

package gateway_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"tastebuds/internal/infra/gateway"
	"tastebuds/internal/pkg/config"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newClient(serverURL string) *gateway.StripeClient {
	return gateway.NewStripeClient(config.StripeConfig{
		SecretKey: "sk_test_key",
		BaseURL:   serverURL,
		Currency:  "gbp",
	})
}

func TestCreateIntent(t *testing.T) {
	t.Run("sends amount, currency and metadata as a form", func(t *testing.T) {
		var gotAuth string
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			require.Equal(t, http.MethodPost, r.Method)
			require.Equal(t, "/v1/payment_intents", r.URL.Path)
			gotAuth = r.Header.Get("Authorization")

			require.NoError(t, r.ParseForm())
			assert.Equal(t, "2500", r.PostForm.Get("amount"))
			assert.Equal(t, "gbp", r.PostForm.Get("currency"))
			assert.Equal(t, "true", r.PostForm.Get("automatic_payment_methods[enabled]"))
			assert.Equal(t, "Junior Bakers", r.PostForm.Get("metadata[class_name]"))

			json.NewEncoder(w).Encode(map[string]any{
				"id":            "pi_123",
				"amount":        2500,
				"currency":      "gbp",
				"status":        "requires_payment_method",
				"client_secret": "pi_123_secret",
			})
		}))
		defer server.Close()

		intent, err := newClient(server.URL).CreateIntent(context.Background(), 2500, map[string]string{
			"class_name": "Junior Bakers",
		})
		require.NoError(t, err)

		assert.Equal(t, "Bearer sk_test_key", gotAuth)
		assert.Equal(t, "pi_123", intent.ID)
		assert.Equal(t, "pi_123_secret", intent.ClientSecret)
		assert.False(t, intent.Succeeded())
	})

	t.Run("surfaces the gateway error message", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusPaymentRequired)
			json.NewEncoder(w).Encode(map[string]any{
				"error": map[string]string{
					"type":    "card_error",
					"code":    "card_declined",
					"message": "Your card was declined.",
				},
			})
		}))
		defer server.Close()

		_, err := newClient(server.URL).CreateIntent(context.Background(), 2500, nil)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "card_declined")
	})
}

func TestGetIntent(t *testing.T) {
	t.Run("expands the latest charge for the receipt", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			require.Equal(t, http.MethodGet, r.Method)
			require.Equal(t, "/v1/payment_intents/pi_123", r.URL.Path)
			assert.Equal(t, "latest_charge", r.URL.Query().Get("expand[]"))

			json.NewEncoder(w).Encode(map[string]any{
				"id":       "pi_123",
				"amount":   2500,
				"currency": "gbp",
				"status":   "succeeded",
				"latest_charge": map[string]any{
					"id":          "ch_1",
					"receipt_url": "https://receipts.example/ch_1",
				},
			})
		}))
		defer server.Close()

		intent, err := newClient(server.URL).GetIntent(context.Background(), "pi_123")
		require.NoError(t, err)

		assert.True(t, intent.Succeeded())
		require.NotNil(t, intent.ReceiptURL())
		assert.Equal(t, "https://receipts.example/ch_1", *intent.ReceiptURL())
	})

	t.Run("missing charge yields no receipt", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			json.NewEncoder(w).Encode(map[string]any{
				"id":     "pi_456",
				"status": "succeeded",
			})
		}))
		defer server.Close()

		intent, err := newClient(server.URL).GetIntent(context.Background(), "pi_456")
		require.NoError(t, err)
		assert.Nil(t, intent.ReceiptURL())
	})
}
