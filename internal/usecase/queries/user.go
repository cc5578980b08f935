package queries

import (
	"context"

	"tastebuds/internal/domain/user"

	"github.com/google/uuid"
)

type UserReadStore interface {
	FindByID(ctx context.Context, id uuid.UUID) (*user.User, error)
	FindByEmail(ctx context.Context, email string) (*user.User, error)
}

type UserQueries interface {
	GetByID(ctx context.Context, id uuid.UUID) (*UserView, error)
}

type userQueriesImpl struct {
	repo UserReadStore
}

func NewUserQueries(repo UserReadStore) UserQueries {
	return &userQueriesImpl{repo: repo}
}

func (q *userQueriesImpl) GetByID(ctx context.Context, id uuid.UUID) (*UserView, error) {
	u, err := q.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	return NewUserView(u), nil
}
