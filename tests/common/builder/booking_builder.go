//go:build unit || e2e

package builder

import (
	"time"

	"tastebuds/internal/domain/booking"

	"github.com/google/uuid"
)

// ValidMedicalInfo returns the minimal payload the medical step accepts.
func ValidMedicalInfo() booking.MedicalInfo {
	return booking.MedicalInfo{
		Allergies:              true,
		OtherMedicalNotes:      "none",
		AdditionalSupportNeeds: "none",
	}
}

func ValidEmergencyContact() *booking.EmergencyContact {
	return &booking.EmergencyContact{
		Name:         "Pat Baker",
		Relationship: "parent",
		Email:        "parent@example.com",
		Phone:        "07000000000",
	}
}

func ValidQuestionnaire() booking.Questionnaire {
	return booking.Questionnaire{
		DietaryRequirements: "vegetarian",
		AirborneAllergy:     "no",
		ReactionDetails:     "none",
		Symptoms:            "none",
		EpipenInfo:          "not required",
		SameTableOk:         "yes",
		MayContainOk:        "yes",
	}
}

func PaidPayment(intentID string, amountPence int64) booking.Payment {
	return booking.Payment{
		IntentID:    intentID,
		AmountPence: amountPence,
		Currency:    "gbp",
		Status:      booking.PaymentPaid,
	}
}

type BookingParamsBuilder struct {
	Params booking.NewBookingParams
}

func NewBookingParamsBuilder() *BookingParamsBuilder {
	contact := ValidEmergencyContact()
	questionnaire := ValidQuestionnaire()
	return &BookingParamsBuilder{
		Params: booking.NewBookingParams{
			SessionID:        uuid.New(),
			SessionDate:      "2026-10-12",
			ClassName:        "Junior Bakers",
			VenueName:        "Riverside Kitchen",
			BookedByID:       uuid.New(),
			BookedByName:     "Pat Baker",
			StudentID:        uuid.New(),
			StudentName:      "Robin Baker",
			ParticipantMinor: true,
			MedicalInfo:      ValidMedicalInfo(),
			EmergencyContact: contact,
			Questionnaire:    &questionnaire,
			TermsAccepted:    true,
			TermsAcceptedAt:  time.Now(),
			Payment:          PaidPayment("pi_test_123", 2500),
		},
	}
}

func (b *BookingParamsBuilder) With(mutate func(*booking.NewBookingParams)) *BookingParamsBuilder {
	mutate(&b.Params)
	return b
}

func (b *BookingParamsBuilder) Build() (*booking.Booking, error) {
	return booking.NewBooking(b.Params)
}
