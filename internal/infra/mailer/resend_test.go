//go:build unit

package mailer_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"tastebuds/internal/infra/mailer"
	"tastebuds/internal/pkg/config"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newClient(serverURL, apiKey string) *mailer.ResendClient {
	return mailer.NewResendClient(config.ResendConfig{
		APIKey:    apiKey,
		BaseURL:   serverURL,
		FromEmail: "bookings@example.com",
		FromName:  "Blooming Tastebuds",
		AppURL:    "https://app.example.com",
	})
}

func TestSend(t *testing.T) {
	t.Run("missing api key returns ErrNotConfigured", func(t *testing.T) {
		c := newClient("http://unused", "")
		err := c.Send(context.Background(), "parent@example.com", "subject", "<p>hi</p>")
		require.ErrorIs(t, err, mailer.ErrNotConfigured)
		assert.False(t, c.Configured())
	})

	t.Run("posts the email as json with bearer auth", func(t *testing.T) {
		var got map[string]any
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			require.Equal(t, "/emails", r.URL.Path)
			require.Equal(t, "Bearer re_test_key", r.Header.Get("Authorization"))
			require.NoError(t, json.NewDecoder(r.Body).Decode(&got))
			json.NewEncoder(w).Encode(map[string]string{"id": "email_1"})
		}))
		defer server.Close()

		c := newClient(server.URL, "re_test_key")
		err := c.Send(context.Background(), "parent@example.com", "Booking confirmed", "<p>hi</p>")
		require.NoError(t, err)

		assert.Equal(t, "Blooming Tastebuds <bookings@example.com>", got["from"])
		assert.Equal(t, []any{"parent@example.com"}, got["to"])
		assert.Equal(t, "Booking confirmed", got["subject"])
	})

	t.Run("provider failure surfaces as an error", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			http.Error(w, `{"message":"invalid from address"}`, http.StatusUnprocessableEntity)
		}))
		defer server.Close()

		err := newClient(server.URL, "re_test_key").Send(context.Background(), "x@example.com", "s", "b")
		require.Error(t, err)
		assert.Contains(t, err.Error(), "422")
	})
}

func TestBookingConfirmation(t *testing.T) {
	var got map[string]any
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.NoError(t, json.NewDecoder(r.Body).Decode(&got))
		json.NewEncoder(w).Encode(map[string]string{"id": "email_2"})
	}))
	defer server.Close()

	err := newClient(server.URL, "re_test_key").SendBookingConfirmation(context.Background(), mailer.BookingEmail{
		To:          "parent@example.com",
		BookedBy:    "Pat Baker",
		StudentName: "Robin Baker",
		ClassName:   "Junior Bakers",
		SessionDate: "2026-10-12",
		VenueName:   "Riverside Kitchen",
		AmountPence: 2500,
		ReceiptURL:  "https://receipts.example/ch_1",
	})
	require.NoError(t, err)

	assert.Equal(t, "Booking confirmed: Junior Bakers", got["subject"])
	html, _ := got["html"].(string)
	assert.Contains(t, html, "Robin Baker")
	assert.Contains(t, html, "£25.00")
	assert.Contains(t, html, "https://receipts.example/ch_1")
}
