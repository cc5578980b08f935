//go:build unit || e2e

package builder

import (
	"tastebuds/internal/domain/student"

	"github.com/google/uuid"
)

type StudentBuilder struct {
	ParentID    uuid.UUID
	FirstName   string
	LastName    string
	DateOfBirth string
}

func NewStudentBuilder() *StudentBuilder {
	return &StudentBuilder{
		ParentID:    uuid.New(),
		FirstName:   "Robin",
		LastName:    "Baker",
		DateOfBirth: "2017-03-14",
	}
}

func (b *StudentBuilder) With(mutate func(*StudentBuilder)) *StudentBuilder {
	mutate(b)
	return b
}

func (b *StudentBuilder) BuildDomain() (*student.Student, error) {
	return student.NewStudent(b.ParentID, b.FirstName, b.LastName, b.DateOfBirth)
}

func (b *StudentBuilder) WithParent(id uuid.UUID) *StudentBuilder {
	b.ParentID = id
	return b
}

func (b *StudentBuilder) WithName(first, last string) *StudentBuilder {
	b.FirstName = first
	b.LastName = last
	return b
}

func (b *StudentBuilder) WithDateOfBirth(dob string) *StudentBuilder {
	b.DateOfBirth = dob
	return b
}
