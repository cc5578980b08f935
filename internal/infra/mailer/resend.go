// Package mailer sends transactional email through the Resend REST API.
package mailer

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"tastebuds/internal/pkg/config"
	"tastebuds/internal/pkg/errs"
)

// ErrNotConfigured is returned when no API key is set. Callers decide whether
// a missing mailer is fatal; the notifier logs and drops the job.
var ErrNotConfigured = errs.New("mailer: no api key configured")

type sendRequest struct {
	From    string   `json:"from"`
	To      []string `json:"to"`
	Subject string   `json:"subject"`
	HTML    string   `json:"html"`
}

type sendResponse struct {
	ID string `json:"id"`
}

type ResendClient struct {
	baseURL    string
	apiKey     string
	from       string
	appURL     string
	httpClient *http.Client
}

func NewResendClient(cfg config.ResendConfig) *ResendClient {
	return &ResendClient{
		baseURL: strings.TrimRight(cfg.BaseURL, "/"),
		apiKey:  cfg.APIKey,
		from:    fmt.Sprintf("%s <%s>", cfg.FromName, cfg.FromEmail),
		appURL:  cfg.AppURL,
		httpClient: &http.Client{
			Timeout: 15 * time.Second,
		},
	}
}

func (c *ResendClient) Configured() bool {
	return c.apiKey != ""
}

// Send posts one email. Returns ErrNotConfigured when no key is set so local
// environments run without outbound mail.
func (c *ResendClient) Send(ctx context.Context, to, subject, html string) error {
	if !c.Configured() {
		return ErrNotConfigured
	}

	payload, err := json.Marshal(sendRequest{
		From:    c.from,
		To:      []string{to},
		Subject: subject,
		HTML:    html,
	})
	if err != nil {
		return errs.Wrap(err, "failed to encode email request")
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/emails", bytes.NewReader(payload))
	if err != nil {
		return errs.Wrap(err, "failed to build email request")
	}
	req.Header.Set("Authorization", "Bearer "+c.apiKey)
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return errs.Wrap(err, "email request failed")
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return errs.Wrap(err, "failed to read email response")
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return errs.New(fmt.Sprintf("email send failed: status %d: %s", resp.StatusCode, string(raw)))
	}

	var out sendResponse
	if err := json.Unmarshal(raw, &out); err == nil && out.ID != "" {
		slog.Debug("email sent", "id", out.ID, "to", to)
	}
	return nil
}

// BookingEmail carries the fields the booking templates interpolate.
type BookingEmail struct {
	To          string
	BookedBy    string
	StudentName string
	ClassName   string
	SessionDate string
	VenueName   string
	AmountPence int64
	ReceiptURL  string
}

func (c *ResendClient) SendBookingConfirmation(ctx context.Context, e BookingEmail) error {
	subject := "Booking confirmed: " + e.ClassName
	html := fmt.Sprintf(`
		<h2>Thanks, %s!</h2>
		<p>%s is booked into <strong>%s</strong> on %s at %s.</p>
		<p>Amount paid: £%.2f</p>
		%s
		<p>See your bookings at <a href="%s/dashboard">%s/dashboard</a>.</p>`,
		e.BookedBy, e.StudentName, e.ClassName, e.SessionDate, e.VenueName,
		float64(e.AmountPence)/100,
		receiptLine(e.ReceiptURL),
		c.appURL, c.appURL,
	)
	return c.Send(ctx, e.To, subject, html)
}

func (c *ResendClient) SendBookingCancellation(ctx context.Context, e BookingEmail) error {
	subject := "Booking cancelled: " + e.ClassName
	html := fmt.Sprintf(`
		<h2>Hi %s,</h2>
		<p>The booking for %s in <strong>%s</strong> on %s has been cancelled.</p>
		<p>A refund of £%.2f will be issued to your original payment method.</p>`,
		e.BookedBy, e.StudentName, e.ClassName, e.SessionDate,
		float64(e.AmountPence)/100,
	)
	return c.Send(ctx, e.To, subject, html)
}

func receiptLine(receiptURL string) string {
	if receiptURL == "" {
		return ""
	}
	return fmt.Sprintf(`<p><a href="%s">View your receipt</a></p>`, receiptURL)
}
