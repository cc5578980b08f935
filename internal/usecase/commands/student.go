package commands

import (
	"context"

	"tastebuds/internal/domain/student"
	reqdto "tastebuds/internal/handler/dto/request"
	"tastebuds/internal/usecase/queries"

	"github.com/google/uuid"
)

type StudentRepository interface {
	Create(ctx context.Context, st *student.Student) error
	FindByID(ctx context.Context, id uuid.UUID) (*student.Student, error)
	Update(ctx context.Context, st *student.Student) error
	Delete(ctx context.Context, id uuid.UUID) error
}

type StudentCommands interface {
	Create(ctx context.Context, parentID uuid.UUID, req reqdto.StudentRequest) (*queries.StudentView, error)
	Update(ctx context.Context, parentID, studentID uuid.UUID, req reqdto.StudentRequest) (*queries.StudentView, error)
	Delete(ctx context.Context, parentID, studentID uuid.UUID) error
}

type studentCommandsImpl struct {
	repo StudentRepository
}

func NewStudentCommands(repo StudentRepository) StudentCommands {
	return &studentCommandsImpl{repo: repo}
}

func (c *studentCommandsImpl) Create(ctx context.Context, parentID uuid.UUID, req reqdto.StudentRequest) (*queries.StudentView, error) {
	st, err := student.NewStudent(parentID, req.FirstName, req.LastName, req.DateOfBirth)
	if err != nil {
		return nil, err
	}
	if err := c.repo.Create(ctx, st); err != nil {
		return nil, err
	}
	return queries.NewStudentView(st), nil
}

func (c *studentCommandsImpl) Update(ctx context.Context, parentID, studentID uuid.UUID, req reqdto.StudentRequest) (*queries.StudentView, error) {
	existing, err := c.loadOwned(ctx, parentID, studentID)
	if err != nil {
		return nil, err
	}

	updated, err := student.NewStudent(parentID, req.FirstName, req.LastName, req.DateOfBirth)
	if err != nil {
		return nil, err
	}
	updated = student.ReconstructStudent(existing.ID(), parentID, updated.FirstName(), updated.LastName(), updated.DateOfBirth(), existing.CreatedAt())

	if err := c.repo.Update(ctx, updated); err != nil {
		return nil, err
	}
	return queries.NewStudentView(updated), nil
}

func (c *studentCommandsImpl) Delete(ctx context.Context, parentID, studentID uuid.UUID) error {
	if _, err := c.loadOwned(ctx, parentID, studentID); err != nil {
		return err
	}
	return c.repo.Delete(ctx, studentID)
}

func (c *studentCommandsImpl) loadOwned(ctx context.Context, parentID, studentID uuid.UUID) (*student.Student, error) {
	st, err := c.repo.FindByID(ctx, studentID)
	if err != nil {
		return nil, err
	}
	if !st.OwnedBy(parentID) {
		return nil, student.ErrNotOwner
	}
	return st, nil
}
