// Package worker runs background jobs drained from the notification outbox.
package worker

import (
	"context"
	"encoding/json"
	"log/slog"
	"time"

	"tastebuds/internal/infra/mailer"
	"tastebuds/internal/infra/repository"

	"github.com/google/uuid"
)

const (
	pollInterval = 10 * time.Second
	claimBatch   = 20
	maxAttempts  = 5
)

type jobStore interface {
	ClaimPending(ctx context.Context, limit int) ([]repository.NotificationJob, error)
	MarkSent(ctx context.Context, id uuid.UUID) error
	MarkFailed(ctx context.Context, id uuid.UUID, attempts int, maxAttempts int, cause string) error
}

type bookingMailer interface {
	SendBookingConfirmation(ctx context.Context, email mailer.BookingEmail) error
	SendBookingCancellation(ctx context.Context, email mailer.BookingEmail) error
}

// Notifier polls the outbox and sends booking emails. Jobs claimed but not
// sent are retried with backoff until maxAttempts, then parked as failed. An
// unconfigured mailer is a failure like any other: the job keeps its ledger
// entry and the cause instead of being silently marked sent.
type Notifier struct {
	jobs   jobStore
	mailer bookingMailer
}

func NewNotifier(jobs *repository.NotificationRepository, m *mailer.ResendClient) *Notifier {
	return &Notifier{jobs: jobs, mailer: m}
}

// Run blocks until ctx is cancelled.
func (n *Notifier) Run(ctx context.Context) {
	ticker := time.NewTicker(pollInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			n.drain(ctx)
		}
	}
}

func (n *Notifier) drain(ctx context.Context) {
	jobs, err := n.jobs.ClaimPending(ctx, claimBatch)
	if err != nil {
		slog.Error("failed to claim notification jobs", "error", err)
		return
	}

	for _, job := range jobs {
		if err := n.dispatch(ctx, job); err != nil {
			slog.Warn("notification dispatch failed", "job_id", job.ID, "topic", job.Topic, "attempt", job.Attempts, "error", err)
			if markErr := n.jobs.MarkFailed(ctx, job.ID, job.Attempts, maxAttempts, err.Error()); markErr != nil {
				slog.Error("failed to record notification failure", "job_id", job.ID, "error", markErr)
			}
			continue
		}
		if err := n.jobs.MarkSent(ctx, job.ID); err != nil {
			slog.Error("failed to mark notification sent", "job_id", job.ID, "error", err)
		}
	}
}

func (n *Notifier) dispatch(ctx context.Context, job repository.NotificationJob) error {
	var email mailer.BookingEmail
	if err := json.Unmarshal(job.Payload, &email); err != nil {
		return err
	}

	switch job.Topic {
	case repository.TopicBookingConfirmed:
		return n.mailer.SendBookingConfirmation(ctx, email)
	case repository.TopicBookingCancelled:
		return n.mailer.SendBookingCancellation(ctx, email)
	default:
		slog.Warn("unknown notification topic", "topic", job.Topic)
		return nil
	}
}
