package request

import (
	"tastebuds/internal/domain/booking"

	"github.com/google/uuid"
)

// ParticipantRequest picks an owned student, registers a new one inline, or
// names the shopper themselves.
type ParticipantRequest struct {
	StudentID  *uuid.UUID      `json:"studentId"`
	NewStudent *StudentRequest `json:"newStudent"`
	Self       bool            `json:"self"`
}

type MedicalRequest struct {
	MedicalInfo      booking.MedicalInfo       `json:"medicalInfo" binding:"required"`
	EmergencyContact *booking.EmergencyContact `json:"emergencyContact"`
}

type QuestionnaireRequest struct {
	Questionnaire booking.Questionnaire `json:"questionnaire" binding:"required"`
}

type TermsRequest struct {
	Accepted bool `json:"accepted"`
}

type CommitRequest struct {
	PaymentIntentID string `json:"paymentIntentId" binding:"required"`
}

// CreateIntentRequest opens a card payment. The amount is cross-checked
// against the session price server-side; the client never sets the charge.
type CreateIntentRequest struct {
	SessionID uuid.UUID         `json:"sessionId" binding:"required"`
	StudentID *uuid.UUID        `json:"studentId"`
	Amount    int64             `json:"amount" binding:"required"`
	Metadata  map[string]string `json:"metadata"`
}
