package queries

import (
	"time"

	"tastebuds/internal/domain/booking"
	"tastebuds/internal/domain/session"
	"tastebuds/internal/domain/student"
	"tastebuds/internal/domain/user"

	"github.com/google/uuid"
)

// Read models (DTO for read side)

type UserView struct {
	ID        uuid.UUID `json:"id"`
	Email     string    `json:"email"`
	Role      string    `json:"role"`
	FirstName string    `json:"firstName"`
	LastName  string    `json:"lastName"`
	Phone     string    `json:"phone"`
	IsActive  bool      `json:"isActive"`
	CreatedAt time.Time `json:"createdAt"`
}

func NewUserView(u *user.User) *UserView {
	return &UserView{
		ID:        u.ID(),
		Email:     u.Email().String(),
		Role:      u.Role().String(),
		FirstName: u.Name().First(),
		LastName:  u.Name().Last(),
		Phone:     u.Phone(),
		IsActive:  u.IsActive(),
		CreatedAt: u.CreatedAt(),
	}
}

type StudentView struct {
	ID          uuid.UUID `json:"id"`
	ParentID    uuid.UUID `json:"parentId"`
	FirstName   string    `json:"firstName"`
	LastName    string    `json:"lastName"`
	DateOfBirth string    `json:"dateOfBirth"`
	CreatedAt   time.Time `json:"createdAt"`
}

func NewStudentView(st *student.Student) *StudentView {
	return &StudentView{
		ID:          st.ID(),
		ParentID:    st.ParentID(),
		FirstName:   st.FirstName(),
		LastName:    st.LastName(),
		DateOfBirth: st.DateOfBirth(),
		CreatedAt:   st.CreatedAt(),
	}
}

type SessionView struct {
	ID             uuid.UUID  `json:"id"`
	ClassID        uuid.UUID  `json:"classId"`
	ClassName      string     `json:"className"`
	ClassType      string     `json:"classType"`
	Date           string     `json:"date"`
	VenueID        uuid.UUID  `json:"venueId"`
	VenueName      string     `json:"venueName"`
	RecipeID       *uuid.UUID `json:"recipeId,omitempty"`
	RecipeName     *string    `json:"recipeName,omitempty"`
	Instructor     string     `json:"instructor"`
	StartTime      string     `json:"startTime"`
	EndTime        string     `json:"endTime"`
	AgeMin         int        `json:"ageMin"`
	AgeMax         int        `json:"ageMax"`
	PricePence     int64      `json:"price"`
	SpotsAvailable int        `json:"spotsAvailable"`
	SpotsTotal     int        `json:"spotsTotal"`
	Status         string     `json:"status"`
	CreatedAt      time.Time  `json:"createdAt"`
}

func NewSessionView(s *session.Session) *SessionView {
	return &SessionView{
		ID:             s.ID(),
		ClassID:        s.ClassID(),
		ClassName:      s.ClassName(),
		ClassType:      s.ClassType().String(),
		Date:           s.Date(),
		VenueID:        s.VenueID(),
		VenueName:      s.VenueName(),
		RecipeID:       s.RecipeID(),
		RecipeName:     s.RecipeName(),
		Instructor:     s.Instructor(),
		StartTime:      s.StartTime(),
		EndTime:        s.EndTime(),
		AgeMin:         s.AgeMin(),
		AgeMax:         s.AgeMax(),
		PricePence:     s.PricePence(),
		SpotsAvailable: s.SpotsAvailable(),
		SpotsTotal:     s.SpotsTotal(),
		Status:         s.Status().String(),
		CreatedAt:      s.CreatedAt(),
	}
}

type PaymentView struct {
	IntentID    string  `json:"stripePaymentIntentId"`
	AmountPence int64   `json:"amount"`
	Currency    string  `json:"currency"`
	Status      string  `json:"status"`
	ReceiptURL  *string `json:"receiptUrl,omitempty"`
}

type BookingView struct {
	ID               uuid.UUID                 `json:"id"`
	SessionID        uuid.UUID                 `json:"sessionId"`
	SessionDate      string                    `json:"sessionDate"`
	ClassName        string                    `json:"className"`
	VenueName        string                    `json:"venueName"`
	BookedByID       uuid.UUID                 `json:"bookedById"`
	BookedByName     string                    `json:"bookedByName"`
	StudentID        uuid.UUID                 `json:"studentId"`
	StudentName      string                    `json:"studentName"`
	MedicalInfo      booking.MedicalInfo       `json:"medicalInfo"`
	EmergencyContact *booking.EmergencyContact `json:"emergencyContact,omitempty"`
	Questionnaire    *booking.Questionnaire    `json:"questionnaire,omitempty"`
	TermsAccepted    bool                      `json:"termsAccepted"`
	TermsAcceptedAt  time.Time                 `json:"termsAcceptedAt"`
	Status           string                    `json:"status"`
	Payment          PaymentView               `json:"payment"`
	CreatedAt        time.Time                 `json:"createdAt"`
}

func NewBookingView(b *booking.Booking) *BookingView {
	pay := b.Payment()
	return &BookingView{
		ID:               b.ID(),
		SessionID:        b.SessionID(),
		SessionDate:      b.SessionDate(),
		ClassName:        b.ClassName(),
		VenueName:        b.VenueName(),
		BookedByID:       b.BookedByID(),
		BookedByName:     b.BookedByName(),
		StudentID:        b.StudentID(),
		StudentName:      b.StudentName(),
		MedicalInfo:      b.MedicalInfo(),
		EmergencyContact: b.EmergencyContact(),
		Questionnaire:    b.Questionnaire(),
		TermsAccepted:    b.TermsAccepted(),
		TermsAcceptedAt:  b.TermsAcceptedAt(),
		Status:           b.Status().String(),
		Payment: PaymentView{
			IntentID:    pay.IntentID,
			AmountPence: pay.AmountPence,
			Currency:    pay.Currency,
			Status:      pay.Status.String(),
			ReceiptURL:  pay.ReceiptURL,
		},
		CreatedAt: b.CreatedAt(),
	}
}

type VenueView struct {
	ID        uuid.UUID `json:"id"`
	Name      string    `json:"name"`
	Address   string    `json:"address"`
	CreatedAt time.Time `json:"createdAt"`
}

type ClassView struct {
	ID         uuid.UUID `json:"id"`
	Type       string    `json:"type"`
	Name       string    `json:"name"`
	DayOfWeek  string    `json:"dayOfWeek"`
	StartTime  string    `json:"startTime"`
	EndTime    string    `json:"endTime"`
	AgeMin     int       `json:"ageMin"`
	AgeMax     int       `json:"ageMax"`
	MaxSize    int       `json:"maxSize"`
	Instructor string    `json:"instructor"`
	VenueID    uuid.UUID `json:"venueId"`
	PricePence int64     `json:"price"`
	CreatedAt  time.Time `json:"createdAt"`
}

type RecipeView struct {
	ID          uuid.UUID `json:"id"`
	Name        string    `json:"name"`
	Description string    `json:"description"`
	PhotoURL    *string   `json:"photoUrl,omitempty"`
	CreatedAt   time.Time `json:"createdAt"`
}

type GalleryImageView struct {
	ID          uuid.UUID `json:"id"`
	ImageURL    string    `json:"imageUrl"`
	Description string    `json:"description"`
	AltText     string    `json:"altText"`
	SortOrder   int       `json:"sortOrder"`
	CreatedAt   time.Time `json:"createdAt"`
}

// WizardView echoes checkout progress back to the client after each step.
type WizardView struct {
	SessionID     uuid.UUID  `json:"sessionId"`
	Steps         []string   `json:"steps"`
	CurrentStep   string     `json:"currentStep"`
	StudentID     *uuid.UUID `json:"studentId,omitempty"`
	StudentName   string     `json:"studentName,omitempty"`
	SelfBooking   bool       `json:"selfBooking"`
	TermsAccepted bool       `json:"termsAccepted"`
	ReadyToPay    bool       `json:"readyToPay"`
}
