package repository

import (
	"context"
	"errors"
	"time"

	"tastebuds/internal/domain/student"
	"tastebuds/internal/infra"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type StudentRepository struct {
	pool *pgxpool.Pool
}

func NewStudentRepository(pool *pgxpool.Pool) *StudentRepository {
	return &StudentRepository{pool: pool}
}

const studentColumns = `id, parent_id, first_name, last_name, date_of_birth, created_at`

func scanStudent(row pgx.Row) (*student.Student, error) {
	var (
		id, parentID uuid.UUID
		first, last  string
		dob          time.Time
		createdAt    time.Time
	)
	if err := row.Scan(&id, &parentID, &first, &last, &dob, &createdAt); err != nil {
		return nil, err
	}
	return student.ReconstructStudent(id, parentID, first, last, dob.Format("2006-01-02"), createdAt), nil
}

func (r *StudentRepository) Create(ctx context.Context, st *student.Student) error {
	const q = `
		INSERT INTO students (id, parent_id, first_name, last_name, date_of_birth)
		VALUES ($1, $2, $3, $4, $5)`

	_, err := r.pool.Exec(ctx, q, st.ID(), st.ParentID(), st.FirstName(), st.LastName(), st.DateOfBirth())
	if err != nil {
		return infra.WrapRepoErr("failed to create student", err)
	}
	return nil
}

func (r *StudentRepository) FindByID(ctx context.Context, id uuid.UUID) (*student.Student, error) {
	const q = `SELECT ` + studentColumns + ` FROM students WHERE id = $1`

	st, err := scanStudent(r.pool.QueryRow(ctx, q, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, infra.WrapRepoErr("student not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find student", err)
	}
	return st, nil
}

func (r *StudentRepository) ListByParent(ctx context.Context, parentID uuid.UUID) ([]*student.Student, error) {
	const q = `SELECT ` + studentColumns + ` FROM students WHERE parent_id = $1 ORDER BY created_at`

	rows, err := r.pool.Query(ctx, q, parentID)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list students", err)
	}
	defer rows.Close()

	var students []*student.Student
	for rows.Next() {
		st, err := scanStudent(rows)
		if err != nil {
			return nil, infra.WrapRepoErr("failed to scan student", err)
		}
		students = append(students, st)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to list students", err)
	}
	return students, nil
}

func (r *StudentRepository) Update(ctx context.Context, st *student.Student) error {
	const q = `
		UPDATE students
		SET first_name = $2, last_name = $3, date_of_birth = $4
		WHERE id = $1`

	tag, err := r.pool.Exec(ctx, q, st.ID(), st.FirstName(), st.LastName(), st.DateOfBirth())
	if err != nil {
		return infra.WrapRepoErr("failed to update student", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.WrapRepoErr("student not found", nil, infra.KindNotFound)
	}
	return nil
}

func (r *StudentRepository) Delete(ctx context.Context, id uuid.UUID) error {
	const q = `DELETE FROM students WHERE id = $1`

	tag, err := r.pool.Exec(ctx, q, id)
	if err != nil {
		return infra.WrapRepoErr("failed to delete student", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.WrapRepoErr("student not found", nil, infra.KindNotFound)
	}
	return nil
}
