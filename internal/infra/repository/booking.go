package repository

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"tastebuds/internal/domain/booking"
	"tastebuds/internal/infra"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type BookingRepository struct {
	pool *pgxpool.Pool
}

func NewBookingRepository(pool *pgxpool.Pool) *BookingRepository {
	return &BookingRepository{pool: pool}
}

const bookingColumns = `id, session_id, session_date, class_name, venue_name,
	booked_by, booked_by_name, student_id, student_name,
	medical_info, emergency_contact, questionnaire,
	terms_accepted, terms_accepted_at, status,
	payment_intent_id, amount_pence, currency, payment_status, receipt_url, created_at`

func scanBooking(row pgx.Row) (*booking.Booking, error) {
	var (
		id              uuid.UUID
		p               booking.NewBookingParams
		sessionDate     time.Time
		medicalRaw      []byte
		contactRaw      []byte
		questionnaireRaw []byte
		rawStatus       string
		rawPayStatus    string
		createdAt       time.Time
	)
	if err := row.Scan(
		&id, &p.SessionID, &sessionDate, &p.ClassName, &p.VenueName,
		&p.BookedByID, &p.BookedByName, &p.StudentID, &p.StudentName,
		&medicalRaw, &contactRaw, &questionnaireRaw,
		&p.TermsAccepted, &p.TermsAcceptedAt, &rawStatus,
		&p.Payment.IntentID, &p.Payment.AmountPence, &p.Payment.Currency, &rawPayStatus, &p.Payment.ReceiptURL, &createdAt,
	); err != nil {
		return nil, err
	}
	p.SessionDate = sessionDate.Format("2006-01-02")
	p.Payment.Status = booking.PaymentStatus(rawPayStatus)

	if err := json.Unmarshal(medicalRaw, &p.MedicalInfo); err != nil {
		return nil, err
	}
	if contactRaw != nil {
		p.EmergencyContact = &booking.EmergencyContact{}
		if err := json.Unmarshal(contactRaw, p.EmergencyContact); err != nil {
			return nil, err
		}
	}
	if questionnaireRaw != nil {
		p.Questionnaire = &booking.Questionnaire{}
		if err := json.Unmarshal(questionnaireRaw, p.Questionnaire); err != nil {
			return nil, err
		}
	}

	return booking.ReconstructBooking(id, p, booking.Status(rawStatus), createdAt), nil
}

// Create inserts the booking row inside the commit transaction. A duplicate
// payment_intent_id surfaces as DUPLICATE_KEY, which the commit flow treats
// as a replay rather than a failure.
func (r *BookingRepository) Create(ctx context.Context, tx infra.DBTX, b *booking.Booking) error {
	medicalRaw, err := json.Marshal(b.MedicalInfo())
	if err != nil {
		return infra.WrapRepoErr("failed to encode medical info", err)
	}

	var contactRaw []byte
	if contact := b.EmergencyContact(); contact != nil {
		if contactRaw, err = json.Marshal(contact); err != nil {
			return infra.WrapRepoErr("failed to encode emergency contact", err)
		}
	}
	var questionnaireRaw []byte
	if q := b.Questionnaire(); q != nil {
		if questionnaireRaw, err = json.Marshal(q); err != nil {
			return infra.WrapRepoErr("failed to encode questionnaire", err)
		}
	}

	const q = `
		INSERT INTO bookings (id, session_id, session_date, class_name, venue_name,
			booked_by, booked_by_name, student_id, student_name,
			medical_info, emergency_contact, questionnaire,
			terms_accepted, terms_accepted_at, status,
			payment_intent_id, amount_pence, currency, payment_status, receipt_url)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17, $18, $19, $20)`

	pay := b.Payment()
	_, err = tx.Exec(ctx, q,
		b.ID(), b.SessionID(), b.SessionDate(), b.ClassName(), b.VenueName(),
		b.BookedByID(), b.BookedByName(), b.StudentID(), b.StudentName(),
		medicalRaw, contactRaw, questionnaireRaw,
		b.TermsAccepted(), b.TermsAcceptedAt(), b.Status().String(),
		pay.IntentID, pay.AmountPence, pay.Currency, pay.Status.String(), pay.ReceiptURL,
	)
	if err != nil {
		return infra.WrapRepoErr("failed to create booking", err)
	}
	return nil
}

func (r *BookingRepository) FindByID(ctx context.Context, id uuid.UUID) (*booking.Booking, error) {
	const q = `SELECT ` + bookingColumns + ` FROM bookings WHERE id = $1`

	b, err := scanBooking(r.pool.QueryRow(ctx, q, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, infra.WrapRepoErr("booking not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find booking", err)
	}
	return b, nil
}

// FindByIntentID looks up an existing booking for a payment intent, used to
// answer commit retries idempotently.
func (r *BookingRepository) FindByIntentID(ctx context.Context, intentID string) (*booking.Booking, error) {
	const q = `SELECT ` + bookingColumns + ` FROM bookings WHERE payment_intent_id = $1`

	b, err := scanBooking(r.pool.QueryRow(ctx, q, intentID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, infra.WrapRepoErr("booking not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find booking by intent", err)
	}
	return b, nil
}

func (r *BookingRepository) ListByUser(ctx context.Context, userID uuid.UUID) ([]*booking.Booking, error) {
	const q = `SELECT ` + bookingColumns + ` FROM bookings WHERE booked_by = $1 ORDER BY created_at DESC`

	return r.list(ctx, q, userID)
}

func (r *BookingRepository) ListAll(ctx context.Context) ([]*booking.Booking, error) {
	const q = `SELECT ` + bookingColumns + ` FROM bookings ORDER BY created_at DESC`

	return r.list(ctx, q)
}

func (r *BookingRepository) list(ctx context.Context, q string, args ...any) ([]*booking.Booking, error) {
	rows, err := r.pool.Query(ctx, q, args...)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list bookings", err)
	}
	defer rows.Close()

	var bookings []*booking.Booking
	for rows.Next() {
		b, err := scanBooking(rows)
		if err != nil {
			return nil, infra.WrapRepoErr("failed to scan booking", err)
		}
		bookings = append(bookings, b)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to list bookings", err)
	}
	return bookings, nil
}

// UpdateStatus flips booking and payment status inside the cancellation
// transaction, alongside the spot release.
func (r *BookingRepository) UpdateStatus(ctx context.Context, tx infra.DBTX, id uuid.UUID, status booking.Status, payStatus booking.PaymentStatus) error {
	const q = `UPDATE bookings SET status = $2, payment_status = $3 WHERE id = $1`

	tag, err := tx.Exec(ctx, q, id, status.String(), payStatus.String())
	if err != nil {
		return infra.WrapRepoErr("failed to update booking status", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.WrapRepoErr("booking not found", nil, infra.KindNotFound)
	}
	return nil
}
