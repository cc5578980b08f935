package queries

import (
	"context"

	"tastebuds/internal/domain/student"

	"github.com/google/uuid"
)

type StudentReadStore interface {
	FindByID(ctx context.Context, id uuid.UUID) (*student.Student, error)
	ListByParent(ctx context.Context, parentID uuid.UUID) ([]*student.Student, error)
}

type StudentQueries interface {
	GetByID(ctx context.Context, actorID uuid.UUID, id uuid.UUID) (*StudentView, error)
	ListByParent(ctx context.Context, parentID uuid.UUID) ([]*StudentView, error)
}

type studentQueriesImpl struct {
	repo StudentReadStore
}

func NewStudentQueries(repo StudentReadStore) StudentQueries {
	return &studentQueriesImpl{repo: repo}
}

func (q *studentQueriesImpl) GetByID(ctx context.Context, actorID uuid.UUID, id uuid.UUID) (*StudentView, error) {
	st, err := q.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if !st.OwnedBy(actorID) {
		return nil, student.ErrNotOwner
	}
	return NewStudentView(st), nil
}

func (q *studentQueriesImpl) ListByParent(ctx context.Context, parentID uuid.UUID) ([]*StudentView, error) {
	students, err := q.repo.ListByParent(ctx, parentID)
	if err != nil {
		return nil, err
	}

	views := make([]*StudentView, 0, len(students))
	for _, st := range students {
		views = append(views, NewStudentView(st))
	}
	return views, nil
}
