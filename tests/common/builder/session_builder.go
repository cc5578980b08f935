//go:build unit || e2e

package builder

import (
	"time"

	"tastebuds/internal/domain/session"

	"github.com/google/uuid"
)

type SessionBuilder struct {
	ClassName      string
	ClassType      string
	Date           string
	VenueName      string
	Instructor     string
	PricePence     int64
	SpotsTotal     int
	SpotsAvailable int
	Status         string
}

func NewSessionBuilder() *SessionBuilder {
	return &SessionBuilder{
		ClassName:      "Junior Bakers",
		ClassType:      "kidsAfterSchool",
		Date:           "2026-10-12",
		VenueName:      "Riverside Kitchen",
		Instructor:     "Sam",
		PricePence:     2500,
		SpotsTotal:     10,
		SpotsAvailable: 10,
		Status:         "open",
	}
}

func (b *SessionBuilder) With(mutate func(*SessionBuilder)) *SessionBuilder {
	mutate(b)
	return b
}

func (b *SessionBuilder) BuildDomain() (*session.Session, error) {
	params := session.NewSessionParams{
		ClassID:    uuid.New(),
		ClassName:  b.ClassName,
		ClassType:  session.ClassType(b.ClassType),
		Date:       b.Date,
		VenueID:    uuid.New(),
		VenueName:  b.VenueName,
		Instructor: b.Instructor,
		StartTime:  "16:00",
		EndTime:    "17:30",
		AgeMin:     7,
		AgeMax:     11,
		PricePence: b.PricePence,
		SpotsTotal: b.SpotsTotal,
	}
	return session.ReconstructSession(
		uuid.New(),
		params,
		b.SpotsAvailable,
		session.Status(b.Status),
		time.Now(),
	)
}

func (b *SessionBuilder) WithClassType(t string) *SessionBuilder {
	b.ClassType = t
	return b
}

func (b *SessionBuilder) WithStatus(s string) *SessionBuilder {
	b.Status = s
	return b
}

func (b *SessionBuilder) WithSpots(available, total int) *SessionBuilder {
	b.SpotsAvailable = available
	b.SpotsTotal = total
	return b
}

func (b *SessionBuilder) WithPrice(pence int64) *SessionBuilder {
	b.PricePence = pence
	return b
}

func (b *SessionBuilder) AsYoungAdultWeekend() *SessionBuilder {
	b.ClassType = "youngAdultWeekend"
	return b
}
