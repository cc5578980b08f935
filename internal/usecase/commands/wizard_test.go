//go:build unit

package commands_test

import (
	"context"
	"testing"
	"time"

	"tastebuds/internal/domain/student"
	reqdto "tastebuds/internal/handler/dto/request"
	"tastebuds/internal/infra/memstore"
	"tastebuds/internal/pkg/clock"
	"tastebuds/internal/pkg/errs"
	"tastebuds/internal/usecase/commands"
	"tastebuds/tests/common/builder"
	commandsmock "tastebuds/tests/mock/commands"

	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type WizardCommandsTestSuite struct {
	suite.Suite
	ctrl        *gomock.Controller
	store       *memstore.WizardStore
	clock       *clock.MockClock
	sessionRepo *commandsmock.MockSessionRepository
	studentRepo *commandsmock.MockStudentRepository
	userRepo    *commandsmock.MockUserRepository
	commands    commands.WizardCommands
}

func (s *WizardCommandsTestSuite) SetupTest() {
	s.ctrl = gomock.NewController(s.T())
	s.clock = clock.NewMockClock(testTime)
	s.store = memstore.NewWizardStore(time.Hour, s.clock)
	s.sessionRepo = commandsmock.NewMockSessionRepository(s.ctrl)
	s.studentRepo = commandsmock.NewMockStudentRepository(s.ctrl)
	s.userRepo = commandsmock.NewMockUserRepository(s.ctrl)

	s.commands = commands.NewWizardCommands(s.store, s.sessionRepo, s.studentRepo, s.userRepo, s.clock)
}

func (s *WizardCommandsTestSuite) TearDownTest() {
	s.ctrl.Finish()
}

func (s *WizardCommandsTestSuite) TestStart() {
	snapshot, err := builder.NewSessionBuilder().BuildDomain()
	s.Require().NoError(err)
	userID := uuid.New()

	s.sessionRepo.EXPECT().FindByID(gomock.Any(), snapshot.ID()).Return(snapshot, nil)

	view, err := s.commands.Start(context.Background(), userID, snapshot.ID())
	s.Require().NoError(err)

	s.Equal(snapshot.ID(), view.SessionID)
	s.Equal("student", view.CurrentStep)
	s.Equal([]string{"student", "medical", "questionnaire", "terms", "payment", "confirmation"}, view.Steps)
	s.False(view.ReadyToPay)
}

func (s *WizardCommandsTestSuite) TestStartUnknownSession() {
	id := uuid.New()
	s.sessionRepo.EXPECT().
		FindByID(gomock.Any(), id).
		Return(nil, errs.New("not found"))

	_, err := s.commands.Start(context.Background(), uuid.New(), id)
	s.Require().ErrorIs(err, commands.ErrSessionNotFound)
}

func (s *WizardCommandsTestSuite) TestGetWithoutStart() {
	_, err := s.commands.Get(context.Background(), uuid.New(), uuid.New())
	s.Require().ErrorIs(err, commands.ErrWizardNotStarted)
}

func (s *WizardCommandsTestSuite) start(userID uuid.UUID) uuid.UUID {
	snapshot, err := builder.NewSessionBuilder().BuildDomain()
	s.Require().NoError(err)
	s.sessionRepo.EXPECT().FindByID(gomock.Any(), snapshot.ID()).Return(snapshot, nil)

	_, err = s.commands.Start(context.Background(), userID, snapshot.ID())
	s.Require().NoError(err)
	return snapshot.ID()
}

func (s *WizardCommandsTestSuite) TestSetParticipantStudent() {
	userID := uuid.New()
	sessionID := s.start(userID)

	st, err := builder.NewStudentBuilder().WithParent(userID).BuildDomain()
	s.Require().NoError(err)
	studentID := st.ID()
	s.studentRepo.EXPECT().FindByID(gomock.Any(), studentID).Return(st, nil)

	view, err := s.commands.SetParticipant(context.Background(), userID, "parent", sessionID, reqdto.ParticipantRequest{
		StudentID: &studentID,
	})
	s.Require().NoError(err)

	s.Equal(st.FullName(), view.StudentName)
	s.Equal("medical", view.CurrentStep)
	s.False(view.SelfBooking)
}

func (s *WizardCommandsTestSuite) TestSetParticipantNewStudent() {
	userID := uuid.New()
	sessionID := s.start(userID)

	s.studentRepo.EXPECT().
		Create(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, st *student.Student) error {
			s.Equal(userID, st.ParentID())
			s.Equal("Nia Okafor", st.FullName())
			return nil
		})

	view, err := s.commands.SetParticipant(context.Background(), userID, "parent", sessionID, reqdto.ParticipantRequest{
		NewStudent: &reqdto.StudentRequest{
			FirstName:   "Nia",
			LastName:    "Okafor",
			DateOfBirth: "2016-09-02",
		},
	})
	s.Require().NoError(err)

	s.Equal("Nia Okafor", view.StudentName)
	s.Equal("medical", view.CurrentStep)
}

func (s *WizardCommandsTestSuite) TestSetParticipantWithoutStudentID() {
	userID := uuid.New()
	sessionID := s.start(userID)

	_, err := s.commands.SetParticipant(context.Background(), userID, "parent", sessionID, reqdto.ParticipantRequest{})
	s.Require().ErrorIs(err, commands.ErrStudentNotChosen)
}

func (s *WizardCommandsTestSuite) TestSetParticipantSelf() {
	userID := uuid.New()
	sessionID := s.start(userID)

	u, err := builder.NewUserBuilder().AsYoungAdult().BuildDomain()
	s.Require().NoError(err)
	s.userRepo.EXPECT().FindByID(gomock.Any(), userID).Return(u, nil)

	view, err := s.commands.SetParticipant(context.Background(), userID, "youngAdult", sessionID, reqdto.ParticipantRequest{
		Self: true,
	})
	s.Require().NoError(err)

	s.True(view.SelfBooking)
	s.Equal(u.Name().Full(), view.StudentName)
}

func (s *WizardCommandsTestSuite) TestFullFlowToReady() {
	userID := uuid.New()
	sessionID := s.start(userID)

	st, err := builder.NewStudentBuilder().WithParent(userID).BuildDomain()
	s.Require().NoError(err)
	studentID := st.ID()
	s.studentRepo.EXPECT().FindByID(gomock.Any(), studentID).Return(st, nil)

	_, err = s.commands.SetParticipant(context.Background(), userID, "parent", sessionID, reqdto.ParticipantRequest{
		StudentID: &studentID,
	})
	s.Require().NoError(err)

	_, err = s.commands.SetMedical(context.Background(), userID, sessionID, reqdto.MedicalRequest{
		MedicalInfo:      builder.ValidMedicalInfo(),
		EmergencyContact: builder.ValidEmergencyContact(),
	})
	s.Require().NoError(err)

	_, err = s.commands.SetQuestionnaire(context.Background(), userID, sessionID, reqdto.QuestionnaireRequest{
		Questionnaire: builder.ValidQuestionnaire(),
	})
	s.Require().NoError(err)

	view, err := s.commands.AcceptTerms(context.Background(), userID, sessionID, reqdto.TermsRequest{Accepted: true})
	s.Require().NoError(err)

	s.True(view.ReadyToPay)
	s.Equal("payment", view.CurrentStep)
}

func TestWizardCommandsTestSuite(t *testing.T) {
	suite.Run(t, new(WizardCommandsTestSuite))
}
