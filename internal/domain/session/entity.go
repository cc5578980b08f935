package session

import (
	"errors"
	"time"

	"github.com/google/uuid"
)

var (
	ErrInvalidCapacity  = errors.New("spots available must be between 0 and spots total")
	ErrInvalidClassType = errors.New("invalid class type")
	ErrInvalidStatus    = errors.New("invalid session status")
	ErrNegativePrice    = errors.New("price cannot be negative")
	ErrNotBookable      = errors.New("session is not open for booking")
)

// Session is a dated, bookable occurrence of a recurring class. Class, venue
// and recipe names are denormalized at creation so bookings keep accurate
// historical display after catalog edits.
type Session struct {
	id             uuid.UUID
	classID        uuid.UUID
	className      string
	classType      ClassType
	date           string // ISO date at rest
	venueID        uuid.UUID
	venueName      string
	recipeID       *uuid.UUID
	recipeName     *string
	instructor     string
	startTime      string
	endTime        string
	ageMin         int
	ageMax         int
	pricePence     int64
	spotsAvailable int
	spotsTotal     int
	status         Status
	createdAt      time.Time
}

type NewSessionParams struct {
	ClassID    uuid.UUID
	ClassName  string
	ClassType  ClassType
	Date       string
	VenueID    uuid.UUID
	VenueName  string
	RecipeID   *uuid.UUID
	RecipeName *string
	Instructor string
	StartTime  string
	EndTime    string
	AgeMin     int
	AgeMax     int
	PricePence int64
	SpotsTotal int
}

func NewSession(p NewSessionParams) (*Session, error) {
	if !p.ClassType.IsValid() {
		return nil, ErrInvalidClassType
	}
	if p.PricePence < 0 {
		return nil, ErrNegativePrice
	}
	if p.SpotsTotal < 0 {
		return nil, ErrInvalidCapacity
	}

	return &Session{
		id:             uuid.New(),
		classID:        p.ClassID,
		className:      p.ClassName,
		classType:      p.ClassType,
		date:           p.Date,
		venueID:        p.VenueID,
		venueName:      p.VenueName,
		recipeID:       p.RecipeID,
		recipeName:     p.RecipeName,
		instructor:     p.Instructor,
		startTime:      p.StartTime,
		endTime:        p.EndTime,
		ageMin:         p.AgeMin,
		ageMax:         p.AgeMax,
		pricePence:     p.PricePence,
		spotsAvailable: p.SpotsTotal,
		spotsTotal:     p.SpotsTotal,
		status:         StatusOpen,
	}, nil
}

func ReconstructSession(
	id uuid.UUID,
	p NewSessionParams,
	spotsAvailable int,
	status Status,
	createdAt time.Time,
) (*Session, error) {
	if spotsAvailable < 0 || spotsAvailable > p.SpotsTotal {
		return nil, ErrInvalidCapacity
	}
	if !status.IsValid() {
		return nil, ErrInvalidStatus
	}

	s, err := NewSession(p)
	if err != nil {
		return nil, err
	}
	s.id = id
	s.spotsAvailable = spotsAvailable
	s.status = status
	s.createdAt = createdAt
	return s, nil
}

// IsBookable reports whether a new checkout may start against this session.
// The capacity race across concurrent shoppers is settled by the conditional
// decrement at commit time, not here.
func (s *Session) IsBookable() bool {
	return s.status == StatusOpen && s.spotsAvailable > 0
}

func (s *Session) ID() uuid.UUID          { return s.id }
func (s *Session) ClassID() uuid.UUID     { return s.classID }
func (s *Session) ClassName() string      { return s.className }
func (s *Session) ClassType() ClassType   { return s.classType }
func (s *Session) Date() string           { return s.date }
func (s *Session) VenueID() uuid.UUID     { return s.venueID }
func (s *Session) VenueName() string      { return s.venueName }
func (s *Session) RecipeID() *uuid.UUID   { return s.recipeID }
func (s *Session) RecipeName() *string    { return s.recipeName }
func (s *Session) Instructor() string     { return s.instructor }
func (s *Session) StartTime() string      { return s.startTime }
func (s *Session) EndTime() string        { return s.endTime }
func (s *Session) AgeMin() int            { return s.ageMin }
func (s *Session) AgeMax() int            { return s.ageMax }
func (s *Session) PricePence() int64      { return s.pricePence }
func (s *Session) SpotsAvailable() int    { return s.spotsAvailable }
func (s *Session) SpotsTotal() int        { return s.spotsTotal }
func (s *Session) Status() Status         { return s.status }
func (s *Session) CreatedAt() time.Time   { return s.createdAt }
