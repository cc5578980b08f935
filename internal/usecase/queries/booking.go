package queries

import (
	"context"

	"tastebuds/internal/domain/booking"
	"tastebuds/internal/domain/user"
	"tastebuds/internal/pkg/errs"

	"github.com/google/uuid"
)

var ErrBookingAccessDenied = errs.New("booking belongs to a different account")

type BookingReadStore interface {
	FindByID(ctx context.Context, id uuid.UUID) (*booking.Booking, error)
	ListByUser(ctx context.Context, userID uuid.UUID) ([]*booking.Booking, error)
	ListAll(ctx context.Context) ([]*booking.Booking, error)
}

type BookingQueries interface {
	GetByID(ctx context.Context, actorID uuid.UUID, actorRole user.Role, id uuid.UUID) (*BookingView, error)
	ListByUser(ctx context.Context, userID uuid.UUID) ([]*BookingView, error)
	ListAll(ctx context.Context) ([]*BookingView, error)
}

type bookingQueriesImpl struct {
	repo BookingReadStore
}

func NewBookingQueries(repo BookingReadStore) BookingQueries {
	return &bookingQueriesImpl{repo: repo}
}

// GetByID returns a booking only to its owner or an admin.
func (q *bookingQueriesImpl) GetByID(ctx context.Context, actorID uuid.UUID, actorRole user.Role, id uuid.UUID) (*BookingView, error) {
	b, err := q.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if b.BookedByID() != actorID && actorRole != user.RoleAdmin {
		return nil, ErrBookingAccessDenied
	}
	return NewBookingView(b), nil
}

func (q *bookingQueriesImpl) ListByUser(ctx context.Context, userID uuid.UUID) ([]*BookingView, error) {
	bookings, err := q.repo.ListByUser(ctx, userID)
	if err != nil {
		return nil, err
	}
	return bookingViews(bookings), nil
}

func (q *bookingQueriesImpl) ListAll(ctx context.Context) ([]*BookingView, error) {
	bookings, err := q.repo.ListAll(ctx)
	if err != nil {
		return nil, err
	}
	return bookingViews(bookings), nil
}

func bookingViews(bookings []*booking.Booking) []*BookingView {
	views := make([]*BookingView, 0, len(bookings))
	for _, b := range bookings {
		views = append(views, NewBookingView(b))
	}
	return views
}
