package models

import "time"

// Seminar is a scheduled session users can reserve a slot in.
type Seminar struct {
	ID             string    `bson:"id" json:"id"`
	Title          string    `bson:"title" json:"title"`
	Description    string    `bson:"description,omitempty" json:"description,omitempty"`
	Speaker        string    `bson:"speaker,omitempty" json:"speaker,omitempty"`
	Date           string    `bson:"date" json:"date"`           // "YYYY-MM-DD"
	StartTime      string    `bson:"startTime" json:"startTime"` // "HH:MM"
	EndTime        string    `bson:"endTime" json:"endTime"`     // "HH:MM"
	Venue          string    `bson:"venue" json:"venue"`
	Fee            float64   `bson:"fee" json:"fee"`
	SlotsAvailable int       `bson:"slotsAvailable" json:"slotsAvailable"`
	CreatedAt      time.Time `bson:"createdAt" json:"createdAt"`
	UpdatedAt      time.Time `bson:"updatedAt" json:"updatedAt"`
}

// SeminarInput is the admin payload for creating a seminar.
type SeminarInput struct {
	Title          string  `json:"title" binding:"required,min=3,max=200"`
	Description    string  `json:"description" binding:"max=5000"`
	Speaker        string  `json:"speaker" binding:"max=200"`
	Date           string  `json:"date" binding:"required,isodate"`
	StartTime      string  `json:"startTime" binding:"required,hhmm"`
	EndTime        string  `json:"endTime" binding:"required,hhmm"`
	Venue          string  `json:"venue" binding:"required"`
	Fee            float64 `json:"fee" binding:"gte=0"`
	SlotsAvailable int     `json:"slotsAvailable" binding:"gte=0"`
}

// SeminarUpdateRequest carries a partial seminar update. Capacity is not
// editable here; it only moves through bookings.
type SeminarUpdateRequest struct {
	Title       *string  `json:"title,omitempty" binding:"omitempty,min=3,max=200"`
	Description *string  `json:"description,omitempty" binding:"omitempty,max=5000"`
	Speaker     *string  `json:"speaker,omitempty" binding:"omitempty,max=200"`
	Date        *string  `json:"date,omitempty" binding:"omitempty,isodate"`
	StartTime   *string  `json:"startTime,omitempty" binding:"omitempty,hhmm"`
	EndTime     *string  `json:"endTime,omitempty" binding:"omitempty,hhmm"`
	Venue       *string  `json:"venue,omitempty"`
	Fee         *float64 `json:"fee,omitempty" binding:"omitempty,gte=0"`
}
