package commands

import (
	"context"
	"errors"
	"time"

	"tastebuds/internal/domain/booking"
	"tastebuds/internal/domain/wizard"
	reqdto "tastebuds/internal/handler/dto/request"
	"tastebuds/internal/infra"
	"tastebuds/internal/infra/db"
	"tastebuds/internal/infra/mailer"
	"tastebuds/internal/infra/memstore"
	"tastebuds/internal/infra/repository"
	"tastebuds/internal/pkg/clock"
	"tastebuds/internal/pkg/errs"
	"tastebuds/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

var (
	ErrWizardIncomplete        = errs.New("checkout steps are incomplete")
	ErrPaymentNotSucceeded     = errs.New("payment has not succeeded")
	ErrPaymentAmountMismatch   = errs.New("payment amount does not match session price")
	ErrSessionFull             = errs.New("session has no spots left")
	ErrBookingNotFound         = errs.New("booking not found")
	ErrDatabaseOperationFailed = errs.New("database operation failed")
)

type BookingRepository interface {
	Create(ctx context.Context, tx infra.DBTX, b *booking.Booking) error
	FindByID(ctx context.Context, id uuid.UUID) (*booking.Booking, error)
	FindByIntentID(ctx context.Context, intentID string) (*booking.Booking, error)
	UpdateStatus(ctx context.Context, tx infra.DBTX, id uuid.UUID, status booking.Status, payStatus booking.PaymentStatus) error
}

type SessionCapacityRepository interface {
	DecrementSpots(ctx context.Context, tx infra.DBTX, id uuid.UUID) (bool, error)
	ReleaseSpot(ctx context.Context, tx infra.DBTX, id uuid.UUID) error
}

type NotificationEnqueuer interface {
	Enqueue(ctx context.Context, tx infra.DBTX, kind, topic string, payload any, runAt time.Time) error
}

type CommitResult struct {
	Booking    *queries.BookingView
	IsReplayed bool
}

type BookingCommands interface {
	Commit(ctx context.Context, userID uuid.UUID, sessionID uuid.UUID, req reqdto.CommitRequest) (*CommitResult, error)
	Cancel(ctx context.Context, bookingID uuid.UUID) (*queries.BookingView, error)
}

type bookingCommandsImpl struct {
	store        WizardStore
	bookingRepo  BookingRepository
	capacityRepo SessionCapacityRepository
	userRepo     UserRepository
	notifier     NotificationEnqueuer
	gateway      PaymentGateway
	pool         *pgxpool.Pool
	clock        clock.Clock
}

func NewBookingCommands(
	store WizardStore,
	bookingRepo BookingRepository,
	capacityRepo SessionCapacityRepository,
	userRepo UserRepository,
	notifier NotificationEnqueuer,
	gw PaymentGateway,
	pool *pgxpool.Pool,
	clk clock.Clock,
) BookingCommands {
	return &bookingCommandsImpl{
		store:        store,
		bookingRepo:  bookingRepo,
		capacityRepo: capacityRepo,
		userRepo:     userRepo,
		notifier:     notifier,
		gateway:      gw,
		pool:         pool,
		clock:        clk,
	}
}

// Commit finalizes a checkout after the client confirms the card payment.
// Capacity is taken with a conditional decrement in the same transaction as
// the booking insert, so concurrent commits can never oversell a session.
// Retrying with the same payment intent replays the stored booking.
func (c *bookingCommandsImpl) Commit(ctx context.Context, userID uuid.UUID, sessionID uuid.UUID, req reqdto.CommitRequest) (*CommitResult, error) {
	// A retry after a lost response may arrive with no wizard state left.
	if existing, err := c.bookingRepo.FindByIntentID(ctx, req.PaymentIntentID); err == nil {
		return &CommitResult{Booking: queries.NewBookingView(existing), IsReplayed: true}, nil
	}

	var pricePence int64
	err := c.store.View(userID, sessionID, func(state *wizard.State) error {
		if !state.ReadyForPayment() {
			return ErrWizardIncomplete
		}
		pricePence = state.Session().PricePence()
		return nil
	})
	if err != nil {
		if errors.Is(err, memstore.ErrWizardNotFound) {
			return nil, errs.Mark(err, ErrWizardNotStarted)
		}
		return nil, err
	}

	intent, err := c.gateway.GetIntent(ctx, req.PaymentIntentID)
	if err != nil {
		return nil, errs.Mark(err, ErrPaymentGateway)
	}
	if !intent.Succeeded() {
		return nil, ErrPaymentNotSucceeded
	}
	if intent.Amount != pricePence {
		return nil, ErrPaymentAmountMismatch
	}

	booker, err := c.userRepo.FindByID(ctx, userID)
	if err != nil {
		return nil, errs.Mark(err, ErrUserNotFound)
	}

	// Re-read the state under the lock: a concurrent step submission between
	// the readiness check and here must not tear the assembled payload.
	var params booking.NewBookingParams
	err = c.store.View(userID, sessionID, func(state *wizard.State) error {
		p, err := state.BookingParams(booker.Name().Full(), booking.Payment{
			IntentID:    intent.ID,
			AmountPence: intent.Amount,
			Currency:    intent.Currency,
			Status:      booking.PaymentPaid,
			ReceiptURL:  intent.ReceiptURL(),
		})
		if err != nil {
			return err
		}
		params = p
		return nil
	})
	if err != nil {
		if errors.Is(err, memstore.ErrWizardNotFound) {
			return nil, errs.Mark(err, ErrWizardNotStarted)
		}
		return nil, err
	}

	newBooking, err := booking.NewBooking(params)
	if err != nil {
		return nil, err
	}

	// Concurrent commits contend on the session row; deadlocks and
	// serialization failures are retried rather than surfaced.
	_, err = db.RunInTxWithRetry(ctx, c.pool, 3, func(tx pgx.Tx) (struct{}, error) {
		taken, err := c.capacityRepo.DecrementSpots(ctx, tx, sessionID)
		if err != nil {
			return struct{}{}, err
		}
		if !taken {
			return struct{}{}, ErrSessionFull
		}

		if err := c.bookingRepo.Create(ctx, tx, newBooking); err != nil {
			return struct{}{}, err
		}

		return struct{}{}, c.enqueueEmail(ctx, tx, repository.TopicBookingConfirmed, newBooking, booker.Email().String())
	})
	if err != nil {
		if errors.Is(err, ErrSessionFull) {
			return nil, ErrSessionFull
		}
		// A concurrent commit with the same intent won the insert race.
		if infra.IsKind(err, infra.KindDuplicateKey) {
			if existing, findErr := c.bookingRepo.FindByIntentID(ctx, req.PaymentIntentID); findErr == nil {
				c.store.Delete(userID, sessionID)
				return &CommitResult{Booking: queries.NewBookingView(existing), IsReplayed: true}, nil
			}
		}
		return nil, errs.Mark(err, ErrDatabaseOperationFailed)
	}

	c.store.Delete(userID, sessionID)
	return &CommitResult{Booking: queries.NewBookingView(newBooking)}, nil
}

// Cancel is the back-office path: flips the booking, refunds the payment
// record and releases the spot in one transaction.
func (c *bookingCommandsImpl) Cancel(ctx context.Context, bookingID uuid.UUID) (*queries.BookingView, error) {
	b, err := c.bookingRepo.FindByID(ctx, bookingID)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrBookingNotFound
		}
		return nil, errs.Mark(err, ErrDatabaseOperationFailed)
	}

	if err := b.Cancel(); err != nil {
		return nil, err
	}

	booker, err := c.userRepo.FindByID(ctx, b.BookedByID())
	if err != nil {
		return nil, errs.Mark(err, ErrUserNotFound)
	}

	_, err = db.RunInTx(ctx, c.pool, func(tx pgx.Tx) (struct{}, error) {
		if err := c.bookingRepo.UpdateStatus(ctx, tx, bookingID, booking.StatusCancelled, booking.PaymentRefunded); err != nil {
			return struct{}{}, err
		}
		if err := c.capacityRepo.ReleaseSpot(ctx, tx, b.SessionID()); err != nil {
			return struct{}{}, err
		}
		return struct{}{}, c.enqueueEmail(ctx, tx, repository.TopicBookingCancelled, b, booker.Email().String())
	})
	if err != nil {
		return nil, errs.Mark(err, ErrDatabaseOperationFailed)
	}

	view := queries.NewBookingView(b)
	view.Payment.Status = booking.PaymentRefunded.String()
	return view, nil
}

func (c *bookingCommandsImpl) enqueueEmail(ctx context.Context, tx infra.DBTX, topic string, b *booking.Booking, email string) error {
	payload := mailer.BookingEmail{
		To:          email,
		BookedBy:    b.BookedByName(),
		StudentName: b.StudentName(),
		ClassName:   b.ClassName(),
		SessionDate: b.SessionDate(),
		VenueName:   b.VenueName(),
		AmountPence: b.Payment().AmountPence,
	}
	if url := b.Payment().ReceiptURL; url != nil {
		payload.ReceiptURL = *url
	}
	return c.notifier.Enqueue(ctx, tx, repository.JobKindEmail, topic, payload, c.clock.Now())
}
