package repository

import (
	"context"
	"errors"
	"time"

	"tastebuds/internal/domain/session"
	"tastebuds/internal/infra"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type SessionRepository struct {
	pool *pgxpool.Pool
}

func NewSessionRepository(pool *pgxpool.Pool) *SessionRepository {
	return &SessionRepository{pool: pool}
}

const sessionColumns = `id, class_id, class_name, class_type, date, venue_id, venue_name,
	recipe_id, recipe_name, instructor, start_time, end_time, age_min, age_max,
	price_pence, spots_available, spots_total, status, created_at`

func scanSession(row pgx.Row) (*session.Session, error) {
	var (
		id             uuid.UUID
		p              session.NewSessionParams
		rawType        string
		date           time.Time
		rawStatus      string
		spotsAvailable int
		createdAt      time.Time
	)
	if err := row.Scan(
		&id, &p.ClassID, &p.ClassName, &rawType, &date, &p.VenueID, &p.VenueName,
		&p.RecipeID, &p.RecipeName, &p.Instructor, &p.StartTime, &p.EndTime, &p.AgeMin, &p.AgeMax,
		&p.PricePence, &spotsAvailable, &p.SpotsTotal, &rawStatus, &createdAt,
	); err != nil {
		return nil, err
	}
	p.ClassType = session.ClassType(rawType)
	p.Date = date.Format("2006-01-02")

	return session.ReconstructSession(id, p, spotsAvailable, session.Status(rawStatus), createdAt)
}

func (r *SessionRepository) Create(ctx context.Context, s *session.Session) error {
	const q = `
		INSERT INTO sessions (id, class_id, class_name, class_type, date, venue_id, venue_name,
			recipe_id, recipe_name, instructor, start_time, end_time, age_min, age_max,
			price_pence, spots_available, spots_total, status)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17, $18)`

	_, err := r.pool.Exec(ctx, q,
		s.ID(), s.ClassID(), s.ClassName(), s.ClassType().String(), s.Date(), s.VenueID(), s.VenueName(),
		s.RecipeID(), s.RecipeName(), s.Instructor(), s.StartTime(), s.EndTime(), s.AgeMin(), s.AgeMax(),
		s.PricePence(), s.SpotsAvailable(), s.SpotsTotal(), s.Status().String(),
	)
	if err != nil {
		return infra.WrapRepoErr("failed to create session", err)
	}
	return nil
}

func (r *SessionRepository) FindByID(ctx context.Context, id uuid.UUID) (*session.Session, error) {
	const q = `SELECT ` + sessionColumns + ` FROM sessions WHERE id = $1`

	s, err := scanSession(r.pool.QueryRow(ctx, q, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, infra.WrapRepoErr("session not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find session", err)
	}
	return s, nil
}

// ListUpcoming returns open and full sessions dated today or later, soonest
// first. Closed and cancelled sessions never appear on the public schedule.
func (r *SessionRepository) ListUpcoming(ctx context.Context) ([]*session.Session, error) {
	const q = `
		SELECT ` + sessionColumns + `
		FROM sessions
		WHERE status IN ('open', 'full') AND date >= CURRENT_DATE
		ORDER BY date, start_time`

	return r.list(ctx, q)
}

func (r *SessionRepository) ListAll(ctx context.Context) ([]*session.Session, error) {
	const q = `SELECT ` + sessionColumns + ` FROM sessions ORDER BY date DESC, start_time`

	return r.list(ctx, q)
}

func (r *SessionRepository) list(ctx context.Context, q string, args ...any) ([]*session.Session, error) {
	rows, err := r.pool.Query(ctx, q, args...)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list sessions", err)
	}
	defer rows.Close()

	var sessions []*session.Session
	for rows.Next() {
		s, err := scanSession(rows)
		if err != nil {
			return nil, infra.WrapRepoErr("failed to scan session", err)
		}
		sessions = append(sessions, s)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to list sessions", err)
	}
	return sessions, nil
}

func (r *SessionRepository) Update(ctx context.Context, s *session.Session) error {
	const q = `
		UPDATE sessions
		SET class_id = $2, class_name = $3, class_type = $4, date = $5, venue_id = $6,
			venue_name = $7, recipe_id = $8, recipe_name = $9, instructor = $10,
			start_time = $11, end_time = $12, age_min = $13, age_max = $14,
			price_pence = $15, spots_available = $16, spots_total = $17, status = $18
		WHERE id = $1`

	tag, err := r.pool.Exec(ctx, q,
		s.ID(), s.ClassID(), s.ClassName(), s.ClassType().String(), s.Date(), s.VenueID(),
		s.VenueName(), s.RecipeID(), s.RecipeName(), s.Instructor(),
		s.StartTime(), s.EndTime(), s.AgeMin(), s.AgeMax(),
		s.PricePence(), s.SpotsAvailable(), s.SpotsTotal(), s.Status().String(),
	)
	if err != nil {
		return infra.WrapRepoErr("failed to update session", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.WrapRepoErr("session not found", nil, infra.KindNotFound)
	}
	return nil
}

func (r *SessionRepository) UpdateStatus(ctx context.Context, id uuid.UUID, status session.Status) error {
	const q = `UPDATE sessions SET status = $2 WHERE id = $1`

	tag, err := r.pool.Exec(ctx, q, id, status.String())
	if err != nil {
		return infra.WrapRepoErr("failed to update session status", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.WrapRepoErr("session not found", nil, infra.KindNotFound)
	}
	return nil
}

// DecrementSpots takes one spot atomically. The WHERE clause guarantees the
// count never goes below zero under concurrent commits; a zero row count means
// the session sold out or left the open state, and the caller must abort.
func (r *SessionRepository) DecrementSpots(ctx context.Context, tx infra.DBTX, id uuid.UUID) (bool, error) {
	const q = `
		UPDATE sessions
		SET spots_available = spots_available - 1,
			status = CASE WHEN spots_available - 1 = 0 THEN 'full' ELSE status END
		WHERE id = $1 AND status = 'open' AND spots_available > 0`

	tag, err := tx.Exec(ctx, q, id)
	if err != nil {
		return false, infra.WrapRepoErr("failed to decrement session spots", err)
	}
	return tag.RowsAffected() == 1, nil
}

// ReleaseSpot returns one spot on cancellation, capped at spots_total. A full
// session reopens; closed and cancelled sessions keep their status.
func (r *SessionRepository) ReleaseSpot(ctx context.Context, tx infra.DBTX, id uuid.UUID) error {
	const q = `
		UPDATE sessions
		SET spots_available = LEAST(spots_available + 1, spots_total),
			status = CASE WHEN status = 'full' THEN 'open' ELSE status END
		WHERE id = $1`

	tag, err := tx.Exec(ctx, q, id)
	if err != nil {
		return infra.WrapRepoErr("failed to release session spot", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.WrapRepoErr("session not found", nil, infra.KindNotFound)
	}
	return nil
}
