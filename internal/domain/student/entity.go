package student

import (
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
)

var (
	ErrEmptyName          = errors.New("student name must not be empty")
	ErrInvalidDateOfBirth = errors.New("invalid date of birth")
	ErrNotOwner           = errors.New("student belongs to a different account")
)

// Student is a minor participant profile owned exclusively by the parent
// account that created it.
type Student struct {
	id          uuid.UUID
	parentID    uuid.UUID
	firstName   string
	lastName    string
	dateOfBirth string // ISO date at rest
	createdAt   time.Time
}

func NewStudent(parentID uuid.UUID, firstName, lastName, dateOfBirth string) (*Student, error) {
	firstName = strings.TrimSpace(firstName)
	lastName = strings.TrimSpace(lastName)
	if firstName == "" || lastName == "" {
		return nil, ErrEmptyName
	}
	if _, err := time.Parse("2006-01-02", dateOfBirth); err != nil {
		return nil, ErrInvalidDateOfBirth
	}

	return &Student{
		id:          uuid.New(),
		parentID:    parentID,
		firstName:   firstName,
		lastName:    lastName,
		dateOfBirth: dateOfBirth,
	}, nil
}

func ReconstructStudent(id, parentID uuid.UUID, firstName, lastName, dateOfBirth string, createdAt time.Time) *Student {
	return &Student{
		id:          id,
		parentID:    parentID,
		firstName:   firstName,
		lastName:    lastName,
		dateOfBirth: dateOfBirth,
		createdAt:   createdAt,
	}
}

// OwnedBy reports whether the given account created this student.
func (s *Student) OwnedBy(accountID uuid.UUID) bool {
	return s.parentID == accountID
}

func (s *Student) FullName() string {
	return s.firstName + " " + s.lastName
}

func (s *Student) ID() uuid.UUID        { return s.id }
func (s *Student) ParentID() uuid.UUID  { return s.parentID }
func (s *Student) FirstName() string    { return s.firstName }
func (s *Student) LastName() string     { return s.lastName }
func (s *Student) DateOfBirth() string  { return s.dateOfBirth }
func (s *Student) CreatedAt() time.Time { return s.createdAt }
