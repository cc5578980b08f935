package commands

import (
	"context"
	"errors"

	"tastebuds/internal/domain/session"
	"tastebuds/internal/domain/student"
	"tastebuds/internal/domain/user"
	"tastebuds/internal/domain/wizard"
	reqdto "tastebuds/internal/handler/dto/request"
	"tastebuds/internal/infra/memstore"
	"tastebuds/internal/pkg/clock"
	"tastebuds/internal/pkg/errs"
	"tastebuds/internal/usecase/queries"

	"github.com/google/uuid"
)

var (
	ErrSessionNotFound  = errs.New("session not found")
	ErrWizardNotStarted = errs.New("no active checkout for this session")
	ErrStudentNotChosen = errs.New("a participant must be chosen")
)

// WizardStore keeps in-flight checkout state between step submissions. The
// stored state is shared across concurrent requests, so all access goes
// through Update (write lock, TTL refresh) or View (read lock).
type WizardStore interface {
	Put(userID, sessionID uuid.UUID, state *wizard.State)
	Update(userID, sessionID uuid.UUID, fn func(*wizard.State) error) error
	View(userID, sessionID uuid.UUID, fn func(*wizard.State) error) error
	Delete(userID, sessionID uuid.UUID)
}

type SessionRepository interface {
	FindByID(ctx context.Context, id uuid.UUID) (*session.Session, error)
}

type WizardCommands interface {
	Start(ctx context.Context, userID uuid.UUID, sessionID uuid.UUID) (*queries.WizardView, error)
	Get(ctx context.Context, userID uuid.UUID, sessionID uuid.UUID) (*queries.WizardView, error)
	SetParticipant(ctx context.Context, userID uuid.UUID, role user.Role, sessionID uuid.UUID, req reqdto.ParticipantRequest) (*queries.WizardView, error)
	SetMedical(ctx context.Context, userID uuid.UUID, sessionID uuid.UUID, req reqdto.MedicalRequest) (*queries.WizardView, error)
	SetQuestionnaire(ctx context.Context, userID uuid.UUID, sessionID uuid.UUID, req reqdto.QuestionnaireRequest) (*queries.WizardView, error)
	AcceptTerms(ctx context.Context, userID uuid.UUID, sessionID uuid.UUID, req reqdto.TermsRequest) (*queries.WizardView, error)
}

type wizardCommandsImpl struct {
	store       WizardStore
	sessionRepo SessionRepository
	studentRepo StudentRepository
	userRepo    UserRepository
	clock       clock.Clock
}

func NewWizardCommands(
	store WizardStore,
	sessionRepo SessionRepository,
	studentRepo StudentRepository,
	userRepo UserRepository,
	clk clock.Clock,
) WizardCommands {
	return &wizardCommandsImpl{
		store:       store,
		sessionRepo: sessionRepo,
		studentRepo: studentRepo,
		userRepo:    userRepo,
		clock:       clk,
	}
}

// Start opens a fresh checkout against the session, replacing any earlier
// attempt for the same session.
func (c *wizardCommandsImpl) Start(ctx context.Context, userID uuid.UUID, sessionID uuid.UUID) (*queries.WizardView, error) {
	snapshot, err := c.sessionRepo.FindByID(ctx, sessionID)
	if err != nil {
		return nil, errs.Mark(err, ErrSessionNotFound)
	}

	state, err := wizard.NewState(userID, snapshot, c.clock.Now())
	if err != nil {
		return nil, err
	}

	// Build the view before publishing the state to the store.
	view := wizardView(state)
	c.store.Put(userID, sessionID, state)
	return view, nil
}

func (c *wizardCommandsImpl) Get(ctx context.Context, userID uuid.UUID, sessionID uuid.UUID) (*queries.WizardView, error) {
	var view *queries.WizardView
	err := c.store.View(userID, sessionID, func(state *wizard.State) error {
		view = wizardView(state)
		return nil
	})
	if err != nil {
		return nil, errs.Mark(err, ErrWizardNotStarted)
	}
	return view, nil
}

func (c *wizardCommandsImpl) SetParticipant(ctx context.Context, userID uuid.UUID, role user.Role, sessionID uuid.UUID, req reqdto.ParticipantRequest) (*queries.WizardView, error) {
	// Resolve the participant outside the store lock, but only for a live
	// attempt: registering a student against a dead wizard must not write.
	if err := c.ensureStarted(userID, sessionID); err != nil {
		return nil, err
	}

	var choose func(*wizard.State) error
	switch {
	case req.Self:
		u, err := c.userRepo.FindByID(ctx, userID)
		if err != nil {
			return nil, errs.Mark(err, ErrUserNotFound)
		}
		choose = func(state *wizard.State) error {
			return state.ChooseSelf(role, u.Name().Full())
		}

	case req.NewStudent != nil:
		// The student record outlives the checkout attempt, so it is
		// persisted immediately rather than held in wizard state.
		st, err := student.NewStudent(userID, req.NewStudent.FirstName, req.NewStudent.LastName, req.NewStudent.DateOfBirth)
		if err != nil {
			return nil, err
		}
		if err := c.studentRepo.Create(ctx, st); err != nil {
			return nil, err
		}
		choose = func(state *wizard.State) error {
			return state.ChooseStudent(st)
		}

	default:
		if req.StudentID == nil {
			return nil, ErrStudentNotChosen
		}
		st, err := c.studentRepo.FindByID(ctx, *req.StudentID)
		if err != nil {
			return nil, err
		}
		choose = func(state *wizard.State) error {
			return state.ChooseStudent(st)
		}
	}

	return c.mutate(userID, sessionID, choose)
}

func (c *wizardCommandsImpl) SetMedical(ctx context.Context, userID uuid.UUID, sessionID uuid.UUID, req reqdto.MedicalRequest) (*queries.WizardView, error) {
	return c.mutate(userID, sessionID, func(state *wizard.State) error {
		return state.SetMedical(req.MedicalInfo, req.EmergencyContact)
	})
}

func (c *wizardCommandsImpl) SetQuestionnaire(ctx context.Context, userID uuid.UUID, sessionID uuid.UUID, req reqdto.QuestionnaireRequest) (*queries.WizardView, error) {
	return c.mutate(userID, sessionID, func(state *wizard.State) error {
		return state.SetQuestionnaire(req.Questionnaire)
	})
}

func (c *wizardCommandsImpl) AcceptTerms(ctx context.Context, userID uuid.UUID, sessionID uuid.UUID, req reqdto.TermsRequest) (*queries.WizardView, error) {
	return c.mutate(userID, sessionID, func(state *wizard.State) error {
		return state.AcceptTerms(req.Accepted, c.clock.Now())
	})
}

func (c *wizardCommandsImpl) ensureStarted(userID, sessionID uuid.UUID) error {
	err := c.store.View(userID, sessionID, func(*wizard.State) error { return nil })
	if err != nil {
		return errs.Mark(err, ErrWizardNotStarted)
	}
	return nil
}

// mutate applies fn under the store's write lock and builds the response view
// in the same critical section.
func (c *wizardCommandsImpl) mutate(userID, sessionID uuid.UUID, fn func(*wizard.State) error) (*queries.WizardView, error) {
	var view *queries.WizardView
	err := c.store.Update(userID, sessionID, func(state *wizard.State) error {
		if err := fn(state); err != nil {
			return err
		}
		view = wizardView(state)
		return nil
	})
	if err != nil {
		if errors.Is(err, memstore.ErrWizardNotFound) {
			return nil, errs.Mark(err, ErrWizardNotStarted)
		}
		return nil, err
	}
	return view, nil
}

func wizardView(state *wizard.State) *queries.WizardView {
	steps := state.Steps()
	names := make([]string, 0, len(steps))
	for _, s := range steps {
		names = append(names, s.String())
	}

	view := &queries.WizardView{
		SessionID:     state.Session().ID(),
		Steps:         names,
		CurrentStep:   state.CurrentStep().String(),
		TermsAccepted: state.TermsAccepted(),
		ReadyToPay:    state.ReadyForPayment(),
	}
	if p := state.Participant(); p != nil {
		view.StudentID = p.StudentID
		view.StudentName = p.Name
		view.SelfBooking = p.Self
	}
	return view
}
