package repository

import (
	"context"
	"encoding/json"
	"time"

	"tastebuds/internal/infra"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
)

type NotificationJob struct {
	ID       uuid.UUID
	Kind     string
	Topic    string
	Payload  []byte
	RunAt    time.Time
	Attempts int
}

const (
	JobKindEmail = "email"

	TopicBookingConfirmed = "booking.confirmed"
	TopicBookingCancelled = "booking.cancelled"
)

// NotificationRepository is a transactional outbox: jobs are enqueued in the
// same transaction as the state change they announce, then drained by the
// background notifier.
type NotificationRepository struct {
	pool *pgxpool.Pool
}

func NewNotificationRepository(pool *pgxpool.Pool) *NotificationRepository {
	return &NotificationRepository{pool: pool}
}

func (r *NotificationRepository) Enqueue(ctx context.Context, tx infra.DBTX, kind, topic string, payload any, runAt time.Time) error {
	raw, err := json.Marshal(payload)
	if err != nil {
		return infra.WrapRepoErr("failed to encode notification payload", err)
	}

	const q = `INSERT INTO notification_jobs (kind, topic, payload, run_at) VALUES ($1, $2, $3, $4)`

	if _, err := tx.Exec(ctx, q, kind, topic, raw, runAt); err != nil {
		return infra.WrapRepoErr("failed to enqueue notification job", err)
	}
	return nil
}

// ClaimPending picks due jobs with SKIP LOCKED so concurrent notifier
// instances never double-send, bumping the attempt counter on claim.
func (r *NotificationRepository) ClaimPending(ctx context.Context, limit int) ([]NotificationJob, error) {
	const q = `
		UPDATE notification_jobs
		SET attempts = attempts + 1
		WHERE id IN (
			SELECT id FROM notification_jobs
			WHERE status = 'pending' AND run_at <= NOW()
			ORDER BY run_at
			LIMIT $1
			FOR UPDATE SKIP LOCKED
		)
		RETURNING id, kind, topic, payload, run_at, attempts`

	rows, err := r.pool.Query(ctx, q, limit)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to claim notification jobs", err)
	}
	defer rows.Close()

	var jobs []NotificationJob
	for rows.Next() {
		var j NotificationJob
		if err := rows.Scan(&j.ID, &j.Kind, &j.Topic, &j.Payload, &j.RunAt, &j.Attempts); err != nil {
			return nil, infra.WrapRepoErr("failed to scan notification job", err)
		}
		jobs = append(jobs, j)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to claim notification jobs", err)
	}
	return jobs, nil
}

func (r *NotificationRepository) MarkSent(ctx context.Context, id uuid.UUID) error {
	const q = `UPDATE notification_jobs SET status = 'sent', last_error = NULL WHERE id = $1`

	if _, err := r.pool.Exec(ctx, q, id); err != nil {
		return infra.WrapRepoErr("failed to mark notification sent", err)
	}
	return nil
}

// MarkFailed records the error and either reschedules with backoff or parks
// the job as failed once attempts are exhausted.
func (r *NotificationRepository) MarkFailed(ctx context.Context, id uuid.UUID, attempts int, maxAttempts int, cause string) error {
	if attempts >= maxAttempts {
		const q = `UPDATE notification_jobs SET status = 'failed', last_error = $2 WHERE id = $1`
		if _, err := r.pool.Exec(ctx, q, id, cause); err != nil {
			return infra.WrapRepoErr("failed to mark notification failed", err)
		}
		return nil
	}

	const q = `UPDATE notification_jobs SET run_at = NOW() + make_interval(secs => $2), last_error = $3 WHERE id = $1`

	backoff := attempts * 30
	if _, err := r.pool.Exec(ctx, q, id, backoff, cause); err != nil {
		return infra.WrapRepoErr("failed to reschedule notification", err)
	}
	return nil
}
