package commands

import (
	"context"
	"errors"

	"tastebuds/internal/domain/session"
	"tastebuds/internal/domain/wizard"
	"tastebuds/internal/infra/gateway"
	"tastebuds/internal/infra/memstore"
	"tastebuds/internal/pkg/errs"

	"github.com/google/uuid"
)

var ErrPaymentGateway = errs.New("payment gateway error")

// PaymentGateway abstracts the Stripe client for testing.
type PaymentGateway interface {
	CreateIntent(ctx context.Context, amountPence int64, metadata map[string]string) (*gateway.PaymentIntent, error)
	GetIntent(ctx context.Context, intentID string) (*gateway.PaymentIntent, error)
}

type CreateIntentResult struct {
	IntentID     string `json:"paymentIntentId"`
	ClientSecret string `json:"clientSecret"`
	AmountPence  int64  `json:"amount"`
	Currency     string `json:"currency"`
}

type PaymentCommands interface {
	CreateIntent(ctx context.Context, userID uuid.UUID, sessionID uuid.UUID, amountPence int64, metadata map[string]string) (*CreateIntentResult, error)
}

type paymentCommandsImpl struct {
	store   WizardStore
	gateway PaymentGateway
}

func NewPaymentCommands(store WizardStore, gw PaymentGateway) PaymentCommands {
	return &paymentCommandsImpl{store: store, gateway: gw}
}

// CreateIntent opens a payment intent for a completed wizard. The charge is
// always the session snapshot's price; a client-supplied amount that differs
// from it is rejected before the gateway is touched.
func (c *paymentCommandsImpl) CreateIntent(ctx context.Context, userID uuid.UUID, sessionID uuid.UUID, amountPence int64, metadata map[string]string) (*CreateIntentResult, error) {
	// The session snapshot is immutable, so it can leave the read lock.
	var snapshot *session.Session
	err := c.store.View(userID, sessionID, func(state *wizard.State) error {
		if !state.ReadyForPayment() {
			return ErrWizardIncomplete
		}
		snapshot = state.Session()
		return nil
	})
	if err != nil {
		if errors.Is(err, memstore.ErrWizardNotFound) {
			return nil, errs.Mark(err, ErrWizardNotStarted)
		}
		return nil, err
	}

	if amountPence != snapshot.PricePence() {
		return nil, ErrPaymentAmountMismatch
	}

	merged := make(map[string]string, len(metadata)+4)
	for k, v := range metadata {
		merged[k] = v
	}
	merged["session_id"] = snapshot.ID().String()
	merged["user_id"] = userID.String()
	merged["class_name"] = snapshot.ClassName()
	merged["session_date"] = snapshot.Date()

	intent, err := c.gateway.CreateIntent(ctx, snapshot.PricePence(), merged)
	if err != nil {
		return nil, errs.Mark(err, ErrPaymentGateway)
	}

	return &CreateIntentResult{
		IntentID:     intent.ID,
		ClientSecret: intent.ClientSecret,
		AmountPence:  intent.Amount,
		Currency:     intent.Currency,
	}, nil
}
