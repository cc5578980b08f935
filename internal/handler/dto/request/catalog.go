package request

import (
	"github.com/google/uuid"
)

type VenueRequest struct {
	Name    string `json:"name" binding:"required"`
	Address string `json:"address" binding:"required"`
}

type ClassRequest struct {
	Type       string    `json:"type" binding:"required,oneof=kidsAfterSchool youngAdultWeekend"`
	Name       string    `json:"name" binding:"required"`
	DayOfWeek  string    `json:"dayOfWeek" binding:"required"`
	StartTime  string    `json:"startTime" binding:"required"`
	EndTime    string    `json:"endTime" binding:"required"`
	AgeMin     int       `json:"ageMin" binding:"min=0"`
	AgeMax     int       `json:"ageMax" binding:"min=0"`
	MaxSize    int       `json:"maxSize" binding:"min=0"`
	Instructor string    `json:"instructor" binding:"required"`
	VenueID    uuid.UUID `json:"venueId" binding:"required"`
	PricePence int64     `json:"price" binding:"min=0"`
}

type RecipeRequest struct {
	Name        string  `json:"name" binding:"required"`
	Description string  `json:"description"`
	PhotoURL    *string `json:"photoUrl"`
}

type GalleryImageRequest struct {
	ImageURL    string `json:"imageUrl" binding:"required"`
	Description string `json:"description"`
	AltText     string `json:"altText"`
	SortOrder   int    `json:"sortOrder"`
}

type CreateSessionRequest struct {
	ClassID  uuid.UUID  `json:"classId" binding:"required"`
	Date     string     `json:"date" binding:"required,datetime=2006-01-02"`
	RecipeID *uuid.UUID `json:"recipeId"`
}

type UpdateSessionRequest struct {
	Date       string     `json:"date" binding:"required,datetime=2006-01-02"`
	RecipeID   *uuid.UUID `json:"recipeId"`
	Instructor string     `json:"instructor" binding:"required"`
	StartTime  string     `json:"startTime" binding:"required"`
	EndTime    string     `json:"endTime" binding:"required"`
	PricePence int64      `json:"price" binding:"min=0"`
	SpotsTotal int        `json:"spotsTotal" binding:"min=0"`
}

type SessionStatusRequest struct {
	Status string `json:"status" binding:"required,oneof=open full closed cancelled"`
}
