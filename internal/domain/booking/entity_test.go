//go:build unit

package booking_test

import (
	"testing"

	"tastebuds/internal/domain/booking"
	"tastebuds/tests/common/builder"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type testCase struct {
	name   string
	mutate func(*booking.NewBookingParams)
	errIs  error
}

func TestNewBooking(t *testing.T) {
	t.Run("valid params produce a confirmed booking", func(t *testing.T) {
		b, err := builder.NewBookingParamsBuilder().Build()
		require.NoError(t, err)

		assert.Equal(t, booking.StatusConfirmed, b.Status())
		assert.True(t, b.TermsAccepted())
		assert.Equal(t, booking.PaymentPaid, b.Payment().Status)
	})

	t.Run("commit guards", func(t *testing.T) {
		runCases(t, []testCase{
			{
				name:   "unaccepted terms",
				mutate: func(p *booking.NewBookingParams) { p.TermsAccepted = false },
				errIs:  booking.ErrTermsNotAccepted,
			},
			{
				name:   "pending payment",
				mutate: func(p *booking.NewBookingParams) { p.Payment.Status = booking.PaymentPending },
				errIs:  booking.ErrPaymentNotPaid,
			},
			{
				name:   "missing intent id",
				mutate: func(p *booking.NewBookingParams) { p.Payment.IntentID = "" },
				errIs:  booking.ErrMissingIntentID,
			},
			{
				name:   "blank medical notes",
				mutate: func(p *booking.NewBookingParams) { p.MedicalInfo.OtherMedicalNotes = "" },
				errIs:  booking.ErrMedicalNotesRequired,
			},
			{
				name:   "minor without emergency contact",
				mutate: func(p *booking.NewBookingParams) { p.EmergencyContact = nil },
				errIs:  booking.ErrContactRequired,
			},
			{
				name: "incomplete emergency contact",
				mutate: func(p *booking.NewBookingParams) {
					p.EmergencyContact = &booking.EmergencyContact{Name: "Pat Baker"}
				},
				errIs: booking.ErrIncompleteContact,
			},
			{
				name: "incomplete questionnaire",
				mutate: func(p *booking.NewBookingParams) {
					q := builder.ValidQuestionnaire()
					q.SameTableOk = ""
					p.Questionnaire = &q
				},
				errIs: booking.ErrIncompleteQuestionnaire,
			},
			{
				name: "adult participant needs no contact",
				mutate: func(p *booking.NewBookingParams) {
					p.ParticipantMinor = false
					p.EmergencyContact = nil
				},
			},
			{
				name:   "questionnaire may be absent",
				mutate: func(p *booking.NewBookingParams) { p.Questionnaire = nil },
			},
		})
	})
}

func TestCancel(t *testing.T) {
	b, err := builder.NewBookingParamsBuilder().Build()
	require.NoError(t, err)

	require.NoError(t, b.Cancel())
	assert.Equal(t, booking.StatusCancelled, b.Status())

	require.ErrorIs(t, b.Cancel(), booking.ErrAlreadyCancelled)
}

func runCases(t *testing.T, cases []testCase) {
	t.Helper()
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			actual, err := builder.NewBookingParamsBuilder().With(c.mutate).Build()

			if c.errIs == nil {
				require.NoError(t, err)
				require.NotNil(t, actual)
			} else {
				require.Nil(t, actual)
				require.ErrorIs(t, err, c.errIs)
			}
		})
	}
}
