package booking

import (
	"errors"
	"strings"
)

var (
	ErrMedicalNotesRequired   = errors.New("other medical notes must be filled in, even if 'none'")
	ErrSupportNeedsRequired   = errors.New("additional support needs must be filled in, even if 'none'")
	ErrIncompleteContact      = errors.New("emergency contact requires name, relationship, email and phone")
	ErrIncompleteQuestionnaire = errors.New("all questionnaire answers are required")
	ErrAnswerTooLong          = errors.New("questionnaire answer exceeds maximum length")
)

const maxAnswerLen = 500

// MedicalInfo is collected for every participant. The free-text fields are
// mandatory so parents must write an explicit "none" rather than skip them.
type MedicalInfo struct {
	Allergies              bool   `json:"allergies"`
	Conditions             bool   `json:"conditions"`
	RecentOperations       bool   `json:"recentOperations"`
	VisionImpairment       bool   `json:"visionImpairment"`
	HearingImpairment      bool   `json:"hearingImpairment"`
	GlassesRequired        bool   `json:"glassesRequired"`
	RespiratoryProblems    bool   `json:"respiratoryProblems"`
	OtherMedicalNotes      string `json:"otherMedicalNotes"`
	AdditionalSupportNeeds string `json:"additionalSupportNeeds"`
}

func (m MedicalInfo) Validate() error {
	if strings.TrimSpace(m.OtherMedicalNotes) == "" {
		return ErrMedicalNotesRequired
	}
	if strings.TrimSpace(m.AdditionalSupportNeeds) == "" {
		return ErrSupportNeedsRequired
	}
	return nil
}

// EmergencyContact is required whenever the participant is a minor.
type EmergencyContact struct {
	Name         string `json:"name"`
	Relationship string `json:"relationship"`
	Email        string `json:"email"`
	Phone        string `json:"phone"`
}

func (e EmergencyContact) Validate() error {
	for _, field := range []string{e.Name, e.Relationship, e.Email, e.Phone} {
		if strings.TrimSpace(field) == "" {
			return ErrIncompleteContact
		}
	}
	return nil
}

// Questionnaire holds the seven fixed safety/dietary questions asked for
// kids after-school sessions.
type Questionnaire struct {
	DietaryRequirements string `json:"dietaryRequirements"`
	AirborneAllergy     string `json:"airborneAllergy"`
	ReactionDetails     string `json:"reactionDetails"`
	Symptoms            string `json:"symptoms"`
	EpipenInfo          string `json:"epipenInfo"`
	SameTableOk         string `json:"sameTableOk"`
	MayContainOk        string `json:"mayContainOk"`
}

func (q Questionnaire) answers() []string {
	return []string{
		q.DietaryRequirements,
		q.AirborneAllergy,
		q.ReactionDetails,
		q.Symptoms,
		q.EpipenInfo,
		q.SameTableOk,
		q.MayContainOk,
	}
}

func (q Questionnaire) Validate() error {
	for _, a := range q.answers() {
		if strings.TrimSpace(a) == "" {
			return ErrIncompleteQuestionnaire
		}
		if len(a) > maxAnswerLen {
			return ErrAnswerTooLong
		}
	}
	return nil
}

// Payment is the embedded gateway record on a booking. AmountPence is in
// minor currency units.
type Payment struct {
	IntentID    string        `json:"stripePaymentIntentId"`
	AmountPence int64         `json:"amount"`
	Currency    string        `json:"currency"`
	Status      PaymentStatus `json:"status"`
	ReceiptURL  *string       `json:"receiptUrl,omitempty"`
}
