// Package wizard holds the checkout state machine: one shopper, one target
// session, an ordered sequence of data-collection steps held in memory until
// the booking commit. Nothing here is durable; abandoning a state loses it.
package wizard

import (
	"errors"
	"time"

	"tastebuds/internal/domain/booking"
	"tastebuds/internal/domain/session"
	"tastebuds/internal/domain/student"
	"tastebuds/internal/domain/user"

	"github.com/google/uuid"
)

var (
	ErrSessionNotBookable      = errors.New("session is not open for booking")
	ErrStepOutOfOrder          = errors.New("earlier wizard steps are incomplete")
	ErrSelfBookingNotAllowed   = errors.New("only young adult accounts may book for themselves")
	ErrContactRequired         = errors.New("emergency contact is required for minors")
	ErrContactNotApplicable    = errors.New("emergency contact does not apply to self bookings")
	ErrQuestionnaireNotInFlow  = errors.New("this session's class type has no questionnaire step")
	ErrTermsNotAccepted        = errors.New("terms must be explicitly accepted")
	ErrNotReadyForPayment      = errors.New("wizard state is not complete")
)

// Participant is the chosen attendee: either an owned student record or the
// shopper themselves (young adults only).
type Participant struct {
	StudentID *uuid.UUID
	Name      string
	Self      bool
}

// Minor reports whether the participant needs an emergency contact.
func (p Participant) Minor() bool {
	return !p.Self
}

// State threads a single checkout attempt through the step sequence. Setters
// merge last-write-wins and never clear data entered for later steps, so
// backward navigation is lossless.
type State struct {
	userID  uuid.UUID
	session *session.Session

	participant      *Participant
	medicalInfo      *booking.MedicalInfo
	emergencyContact *booking.EmergencyContact
	questionnaire    *booking.Questionnaire
	termsAccepted    bool
	termsAcceptedAt  time.Time

	startedAt time.Time
}

// NewState starts a fresh attempt against a loaded session snapshot. A prior
// attempt for the same session is expected to be discarded by the caller.
func NewState(userID uuid.UUID, snapshot *session.Session, now time.Time) (*State, error) {
	if !snapshot.IsBookable() {
		return nil, ErrSessionNotBookable
	}
	return &State{
		userID:    userID,
		session:   snapshot,
		startedAt: now,
	}, nil
}

// Steps returns the step sequence for this attempt's session, derived from
// the declarative step table plus the two post-collection steps.
func (s *State) Steps() []Step {
	steps := make([]Step, 0, len(stepTable)+2)
	for _, def := range stepTable {
		if def.includedIf(s.session) {
			steps = append(steps, def.step)
		}
	}
	return append(steps, StepPayment, StepConfirmation)
}

// CurrentStep is the first incomplete collection step, or StepPayment once
// every included step is done.
func (s *State) CurrentStep() Step {
	for _, def := range stepTable {
		if def.includedIf(s.session) && !def.completed(s) {
			return def.step
		}
	}
	return StepPayment
}

// stepReached reports whether every included step before target is complete.
func (s *State) stepReached(target Step) bool {
	for _, def := range stepTable {
		if def.step == target {
			return true
		}
		if def.includedIf(s.session) && !def.completed(s) {
			return false
		}
	}
	return true
}

func (s *State) ChooseStudent(st *student.Student) error {
	if !st.OwnedBy(s.userID) {
		return student.ErrNotOwner
	}
	id := st.ID()
	s.participant = &Participant{StudentID: &id, Name: st.FullName()}
	return nil
}

func (s *State) ChooseSelf(role user.Role, name string) error {
	if !role.CanBookSelf() {
		return ErrSelfBookingNotAllowed
	}
	s.participant = &Participant{Name: name, Self: true}
	return nil
}

// SetMedical records the medical step. Minors must supply an emergency
// contact in the same submission; self bookings must not.
func (s *State) SetMedical(info booking.MedicalInfo, contact *booking.EmergencyContact) error {
	if !s.stepReached(StepMedical) {
		return ErrStepOutOfOrder
	}
	if err := info.Validate(); err != nil {
		return err
	}

	if s.participant.Minor() {
		if contact == nil {
			return ErrContactRequired
		}
		if err := contact.Validate(); err != nil {
			return err
		}
	} else if contact != nil {
		return ErrContactNotApplicable
	}

	s.medicalInfo = &info
	s.emergencyContact = contact
	return nil
}

func (s *State) SetQuestionnaire(q booking.Questionnaire) error {
	if !s.session.ClassType().RequiresQuestionnaire() {
		return ErrQuestionnaireNotInFlow
	}
	if !s.stepReached(StepQuestionnaire) {
		return ErrStepOutOfOrder
	}
	if err := q.Validate(); err != nil {
		return err
	}
	s.questionnaire = &q
	return nil
}

// AcceptTerms advances past the summary. A false value is rejected with no
// state change.
func (s *State) AcceptTerms(accepted bool, now time.Time) error {
	if !s.stepReached(StepTerms) {
		return ErrStepOutOfOrder
	}
	if !accepted {
		return ErrTermsNotAccepted
	}
	s.termsAccepted = true
	s.termsAcceptedAt = now
	return nil
}

// ReadyForPayment reports whether every included collection step is complete.
func (s *State) ReadyForPayment() bool {
	for _, def := range stepTable {
		if def.includedIf(s.session) && !def.completed(s) {
			return false
		}
	}
	return true
}

// BookingParams assembles the commit payload from the accumulated state and
// a paid gateway record. Only a ready state can produce one.
func (s *State) BookingParams(bookedByName string, payment booking.Payment) (booking.NewBookingParams, error) {
	if !s.ReadyForPayment() {
		return booking.NewBookingParams{}, ErrNotReadyForPayment
	}

	studentID := s.userID // self bookings reference the booker
	if s.participant.StudentID != nil {
		studentID = *s.participant.StudentID
	}

	var contact *booking.EmergencyContact
	if s.participant.Minor() {
		contact = s.emergencyContact
	}

	return booking.NewBookingParams{
		SessionID:        s.session.ID(),
		SessionDate:      s.session.Date(),
		ClassName:        s.session.ClassName(),
		VenueName:        s.session.VenueName(),
		BookedByID:       s.userID,
		BookedByName:     bookedByName,
		StudentID:        studentID,
		StudentName:      s.participant.Name,
		ParticipantMinor: s.participant.Minor(),
		MedicalInfo:      *s.medicalInfo,
		EmergencyContact: contact,
		Questionnaire:    s.questionnaire,
		TermsAccepted:    s.termsAccepted,
		TermsAcceptedAt:  s.termsAcceptedAt,
		Payment:          payment,
	}, nil
}

func (s *State) UserID() uuid.UUID                           { return s.userID }
func (s *State) Session() *session.Session                   { return s.session }
func (s *State) Participant() *Participant                   { return s.participant }
func (s *State) MedicalInfo() *booking.MedicalInfo           { return s.medicalInfo }
func (s *State) EmergencyContact() *booking.EmergencyContact { return s.emergencyContact }
func (s *State) Questionnaire() *booking.Questionnaire       { return s.questionnaire }
func (s *State) TermsAccepted() bool                         { return s.termsAccepted }
func (s *State) StartedAt() time.Time                        { return s.startedAt }
