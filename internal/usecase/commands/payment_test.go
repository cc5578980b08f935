//go:build unit

package commands_test

import (
	"context"
	"testing"
	"time"

	"tastebuds/internal/domain/wizard"
	"tastebuds/internal/infra/gateway"
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

type PaymentCommandsTestSuite struct {
	suite.Suite
	ctrl     *gomock.Controller
	store    *memstore.WizardStore
	gateway  *commandsmock.MockPaymentGateway
	commands commands.PaymentCommands
}

func (s *PaymentCommandsTestSuite) SetupTest() {
	s.ctrl = gomock.NewController(s.T())
	s.store = memstore.NewWizardStore(time.Hour, clock.NewMockClock(testTime))
	s.gateway = commandsmock.NewMockPaymentGateway(s.ctrl)
	s.commands = commands.NewPaymentCommands(s.store, s.gateway)
}

func (s *PaymentCommandsTestSuite) TearDownTest() {
	s.ctrl.Finish()
}

func (s *PaymentCommandsTestSuite) readyWizard(userID uuid.UUID) *wizard.State {
	snapshot, err := builder.NewSessionBuilder().WithPrice(3200).BuildDomain()
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

func (s *PaymentCommandsTestSuite) TestCreateIntent() {
	userID := uuid.New()
	state := s.readyWizard(userID)
	sessionID := state.Session().ID()

	s.gateway.EXPECT().
		CreateIntent(gomock.Any(), int64(3200), gomock.Any()).
		DoAndReturn(func(_ context.Context, amount int64, metadata map[string]string) (*gateway.PaymentIntent, error) {
			s.Equal(sessionID.String(), metadata["session_id"])
			s.Equal(userID.String(), metadata["user_id"])
			s.Equal("web", metadata["source"])
			return &gateway.PaymentIntent{
				ID:           "pi_1",
				Amount:       amount,
				Currency:     "gbp",
				Status:       "requires_payment_method",
				ClientSecret: "pi_1_secret",
			}, nil
		})

	result, err := s.commands.CreateIntent(context.Background(), userID, sessionID, 3200, map[string]string{"source": "web"})
	s.Require().NoError(err)

	s.Equal("pi_1", result.IntentID)
	s.Equal("pi_1_secret", result.ClientSecret)
	s.Equal(int64(3200), result.AmountPence)
	s.Equal("gbp", result.Currency)
}

func (s *PaymentCommandsTestSuite) TestCreateIntentGatewayFailure() {
	userID := uuid.New()
	state := s.readyWizard(userID)

	s.gateway.EXPECT().
		CreateIntent(gomock.Any(), int64(3200), gomock.Any()).
		Return(nil, errs.New("stripe unreachable"))

	_, err := s.commands.CreateIntent(context.Background(), userID, state.Session().ID(), 3200, nil)
	s.Require().ErrorIs(err, commands.ErrPaymentGateway)
}

func (s *PaymentCommandsTestSuite) TestCreateIntentAmountMismatch() {
	userID := uuid.New()
	state := s.readyWizard(userID)

	_, err := s.commands.CreateIntent(context.Background(), userID, state.Session().ID(), 100, nil)
	s.Require().ErrorIs(err, commands.ErrPaymentAmountMismatch)
}

func (s *PaymentCommandsTestSuite) TestCreateIntentWithoutWizard() {
	_, err := s.commands.CreateIntent(context.Background(), uuid.New(), uuid.New(), 3200, nil)
	s.Require().ErrorIs(err, commands.ErrWizardNotStarted)
}

func (s *PaymentCommandsTestSuite) TestCreateIntentIncompleteWizard() {
	userID := uuid.New()
	snapshot, err := builder.NewSessionBuilder().BuildDomain()
	s.Require().NoError(err)
	state, err := wizard.NewState(userID, snapshot, testTime)
	s.Require().NoError(err)
	s.store.Put(userID, snapshot.ID(), state)

	_, err = s.commands.CreateIntent(context.Background(), userID, snapshot.ID(), 3200, nil)
	s.Require().ErrorIs(err, commands.ErrWizardIncomplete)
}

func TestPaymentCommandsTestSuite(t *testing.T) {
	suite.Run(t, new(PaymentCommandsTestSuite))
}
