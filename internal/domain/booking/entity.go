package booking

import (
	"errors"
	"time"

	"github.com/google/uuid"
)

var (
	ErrTermsNotAccepted  = errors.New("terms must be accepted before booking")
	ErrPaymentNotPaid    = errors.New("booking requires a successful payment")
	ErrMissingIntentID   = errors.New("payment intent id is required")
	ErrMissingMedical    = errors.New("medical information is required")
	ErrContactRequired   = errors.New("emergency contact is required for minors")
	ErrAlreadyCancelled  = errors.New("booking is already cancelled")
)

// Booking is the durable record of a completed purchase. Session date, class
// and venue names are copied in so history survives later catalog edits.
type Booking struct {
	id               uuid.UUID
	sessionID        uuid.UUID
	sessionDate      string
	className        string
	venueName        string
	bookedByID       uuid.UUID
	bookedByName     string
	studentID        uuid.UUID // the booker's own id for self-bookings
	studentName      string
	medicalInfo      MedicalInfo
	emergencyContact *EmergencyContact
	questionnaire    *Questionnaire
	termsAccepted    bool
	termsAcceptedAt  time.Time
	status           Status
	payment          Payment
	createdAt        time.Time
}

type NewBookingParams struct {
	SessionID        uuid.UUID
	SessionDate      string
	ClassName        string
	VenueName        string
	BookedByID       uuid.UUID
	BookedByName     string
	StudentID        uuid.UUID
	StudentName      string
	ParticipantMinor bool
	MedicalInfo      MedicalInfo
	EmergencyContact *EmergencyContact
	Questionnaire    *Questionnaire
	TermsAccepted    bool
	TermsAcceptedAt  time.Time
	Payment          Payment
}

// NewBooking builds a confirmed booking. It refuses any state the commit
// transition must never persist: unpaid payments, unaccepted terms, missing
// medical data, or a minor without an emergency contact.
func NewBooking(p NewBookingParams) (*Booking, error) {
	if !p.TermsAccepted {
		return nil, ErrTermsNotAccepted
	}
	if p.Payment.Status != PaymentPaid {
		return nil, ErrPaymentNotPaid
	}
	if p.Payment.IntentID == "" {
		return nil, ErrMissingIntentID
	}
	if err := p.MedicalInfo.Validate(); err != nil {
		return nil, err
	}
	if p.ParticipantMinor {
		if p.EmergencyContact == nil {
			return nil, ErrContactRequired
		}
		if err := p.EmergencyContact.Validate(); err != nil {
			return nil, err
		}
	}
	if p.Questionnaire != nil {
		if err := p.Questionnaire.Validate(); err != nil {
			return nil, err
		}
	}

	return &Booking{
		id:               uuid.New(),
		sessionID:        p.SessionID,
		sessionDate:      p.SessionDate,
		className:        p.ClassName,
		venueName:        p.VenueName,
		bookedByID:       p.BookedByID,
		bookedByName:     p.BookedByName,
		studentID:        p.StudentID,
		studentName:      p.StudentName,
		medicalInfo:      p.MedicalInfo,
		emergencyContact: p.EmergencyContact,
		questionnaire:    p.Questionnaire,
		termsAccepted:    true,
		termsAcceptedAt:  p.TermsAcceptedAt,
		status:           StatusConfirmed,
		payment:          p.Payment,
	}, nil
}

// ReconstructBooking rebuilds a persisted booking without re-running the
// commit-time checks; stored rows are trusted.
func ReconstructBooking(
	id uuid.UUID,
	p NewBookingParams,
	status Status,
	createdAt time.Time,
) *Booking {
	return &Booking{
		id:               id,
		sessionID:        p.SessionID,
		sessionDate:      p.SessionDate,
		className:        p.ClassName,
		venueName:        p.VenueName,
		bookedByID:       p.BookedByID,
		bookedByName:     p.BookedByName,
		studentID:        p.StudentID,
		studentName:      p.StudentName,
		medicalInfo:      p.MedicalInfo,
		emergencyContact: p.EmergencyContact,
		questionnaire:    p.Questionnaire,
		termsAccepted:    p.TermsAccepted,
		termsAcceptedAt:  p.TermsAcceptedAt,
		status:           status,
		payment:          p.Payment,
		createdAt:        createdAt,
	}
}

func (b *Booking) Cancel() error {
	if b.status == StatusCancelled {
		return ErrAlreadyCancelled
	}
	b.status = StatusCancelled
	return nil
}

func (b *Booking) ID() uuid.UUID                       { return b.id }
func (b *Booking) SessionID() uuid.UUID                { return b.sessionID }
func (b *Booking) SessionDate() string                 { return b.sessionDate }
func (b *Booking) ClassName() string                   { return b.className }
func (b *Booking) VenueName() string                   { return b.venueName }
func (b *Booking) BookedByID() uuid.UUID               { return b.bookedByID }
func (b *Booking) BookedByName() string                { return b.bookedByName }
func (b *Booking) StudentID() uuid.UUID                { return b.studentID }
func (b *Booking) StudentName() string                 { return b.studentName }
func (b *Booking) MedicalInfo() MedicalInfo            { return b.medicalInfo }
func (b *Booking) EmergencyContact() *EmergencyContact { return b.emergencyContact }
func (b *Booking) Questionnaire() *Questionnaire       { return b.questionnaire }
func (b *Booking) TermsAccepted() bool                 { return b.termsAccepted }
func (b *Booking) TermsAcceptedAt() time.Time          { return b.termsAcceptedAt }
func (b *Booking) Status() Status                      { return b.status }
func (b *Booking) Payment() Payment                    { return b.payment }
func (b *Booking) CreatedAt() time.Time                { return b.createdAt }
