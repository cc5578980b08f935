//go:build unit

package commands_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"tastebuds/internal/domain/wizard"
	reqdto "tastebuds/internal/handler/dto/request"
	"tastebuds/internal/infra/gateway"
	"tastebuds/internal/infra/memstore"
	"tastebuds/internal/pkg/clock"
	"tastebuds/internal/usecase/commands"
	"tastebuds/tests/common/builder"
	commandsmock "tastebuds/tests/mock/commands"

	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

var testTime = time.Date(2026, 9, 1, 12, 0, 0, 0, time.UTC)

type BookingCommandsTestSuite struct {
	suite.Suite
	ctrl         *gomock.Controller
	store        *memstore.WizardStore
	bookingRepo  *commandsmock.MockBookingRepository
	capacityRepo *commandsmock.MockSessionCapacityRepository
	userRepo     *commandsmock.MockUserRepository
	notifier     *commandsmock.MockNotificationEnqueuer
	gateway      *commandsmock.MockPaymentGateway
	commands     commands.BookingCommands
}

func (s *BookingCommandsTestSuite) SetupTest() {
	s.ctrl = gomock.NewController(s.T())
	s.store = memstore.NewWizardStore(time.Hour, clock.NewMockClock(testTime))
	s.bookingRepo = commandsmock.NewMockBookingRepository(s.ctrl)
	s.capacityRepo = commandsmock.NewMockSessionCapacityRepository(s.ctrl)
	s.userRepo = commandsmock.NewMockUserRepository(s.ctrl)
	s.notifier = commandsmock.NewMockNotificationEnqueuer(s.ctrl)
	s.gateway = commandsmock.NewMockPaymentGateway(s.ctrl)

	// The pool is only touched once the commit transaction starts; the paths
	// exercised here all stop before that.
	s.commands = commands.NewBookingCommands(
		s.store, s.bookingRepo, s.capacityRepo, s.userRepo, s.notifier, s.gateway,
		nil, clock.NewMockClock(testTime),
	)
}

func (s *BookingCommandsTestSuite) TearDownTest() {
	s.ctrl.Finish()
}

// readyWizard stores a fully completed wizard for userID and returns it.
func (s *BookingCommandsTestSuite) readyWizard(userID uuid.UUID) *wizard.State {
	snapshot, err := builder.NewSessionBuilder().BuildDomain()
	s.Require().NoError(err)

	state, err := wizard.NewState(userID, snapshot, testTime)
	s.Require().NoError(err)

	st, err := builder.NewStudentBuilder().WithParent(userID).BuildDomain()
	s.Require().NoError(err)
	s.Require().NoError(state.ChooseStudent(st))
	s.Require().NoError(state.SetMedical(builder.ValidMedicalInfo(), builder.ValidEmergencyContact()))
	s.Require().NoError(state.SetQuestionnaire(builder.ValidQuestionnaire()))
	s.Require().NoError(state.AcceptTerms(true, testTime))

	s.store.Put(userID, snapshot.ID(), state)
	return state
}

func (s *BookingCommandsTestSuite) TestCommitReplaysExistingBooking() {
	userID := uuid.New()
	existing, err := builder.NewBookingParamsBuilder().Build()
	s.Require().NoError(err)

	s.bookingRepo.EXPECT().
		FindByIntentID(gomock.Any(), "pi_test_123").
		Return(existing, nil)

	result, err := s.commands.Commit(context.Background(), userID, uuid.New(), reqdto.CommitRequest{
		PaymentIntentID: "pi_test_123",
	})
	s.Require().NoError(err)
	s.True(result.IsReplayed)
	s.Equal(existing.ID(), result.Booking.ID)
}

func (s *BookingCommandsTestSuite) TestCommitWithoutWizard() {
	s.bookingRepo.EXPECT().
		FindByIntentID(gomock.Any(), gomock.Any()).
		Return(nil, errors.New("no rows"))

	_, err := s.commands.Commit(context.Background(), uuid.New(), uuid.New(), reqdto.CommitRequest{
		PaymentIntentID: "pi_unknown",
	})
	s.Require().ErrorIs(err, commands.ErrWizardNotStarted)
}

func (s *BookingCommandsTestSuite) TestCommitIncompleteWizard() {
	userID := uuid.New()
	snapshot, err := builder.NewSessionBuilder().BuildDomain()
	s.Require().NoError(err)
	state, err := wizard.NewState(userID, snapshot, testTime)
	s.Require().NoError(err)
	s.store.Put(userID, snapshot.ID(), state)

	s.bookingRepo.EXPECT().
		FindByIntentID(gomock.Any(), gomock.Any()).
		Return(nil, errors.New("no rows"))

	_, err = s.commands.Commit(context.Background(), userID, snapshot.ID(), reqdto.CommitRequest{
		PaymentIntentID: "pi_1",
	})
	s.Require().ErrorIs(err, commands.ErrWizardIncomplete)
}

func (s *BookingCommandsTestSuite) TestCommitPaymentNotSucceeded() {
	userID := uuid.New()
	state := s.readyWizard(userID)

	s.bookingRepo.EXPECT().
		FindByIntentID(gomock.Any(), gomock.Any()).
		Return(nil, errors.New("no rows"))
	s.gateway.EXPECT().
		GetIntent(gomock.Any(), "pi_1").
		Return(&gateway.PaymentIntent{ID: "pi_1", Status: "requires_payment_method"}, nil)

	_, err := s.commands.Commit(context.Background(), userID, state.Session().ID(), reqdto.CommitRequest{
		PaymentIntentID: "pi_1",
	})
	s.Require().ErrorIs(err, commands.ErrPaymentNotSucceeded)
}

func (s *BookingCommandsTestSuite) TestCommitAmountMismatch() {
	userID := uuid.New()
	state := s.readyWizard(userID)

	s.bookingRepo.EXPECT().
		FindByIntentID(gomock.Any(), gomock.Any()).
		Return(nil, errors.New("no rows"))
	s.gateway.EXPECT().
		GetIntent(gomock.Any(), "pi_1").
		Return(&gateway.PaymentIntent{
			ID:       "pi_1",
			Amount:   state.Session().PricePence() - 100,
			Currency: "gbp",
			Status:   "succeeded",
		}, nil)

	_, err := s.commands.Commit(context.Background(), userID, state.Session().ID(), reqdto.CommitRequest{
		PaymentIntentID: "pi_1",
	})
	s.Require().ErrorIs(err, commands.ErrPaymentAmountMismatch)
}

func (s *BookingCommandsTestSuite) TestCommitGatewayFailure() {
	userID := uuid.New()
	state := s.readyWizard(userID)

	s.bookingRepo.EXPECT().
		FindByIntentID(gomock.Any(), gomock.Any()).
		Return(nil, errors.New("no rows"))
	s.gateway.EXPECT().
		GetIntent(gomock.Any(), gomock.Any()).
		Return(nil, errors.New("connection refused"))

	_, err := s.commands.Commit(context.Background(), userID, state.Session().ID(), reqdto.CommitRequest{
		PaymentIntentID: "pi_1",
	})
	s.Require().ErrorIs(err, commands.ErrPaymentGateway)
}

func TestBookingCommandsTestSuite(t *testing.T) {
	suite.Run(t, new(BookingCommandsTestSuite))
}
