package types

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// LogDateLayout renders a calendar date the way log responses expect it,
// e.g. "Mon Jan 01 1990".
const LogDateLayout = "Mon Jan 02 2006"

// Exercise is a single logged workout.
type Exercise struct {
	// ID is the store-generated identifier of the record.
	ID primitive.ObjectID `json:"id" bson:"_id,omitempty"`

	// UserID references the owning user. The store does not enforce
	// the reference; the application resolves the user before writing.
	UserID primitive.ObjectID `json:"userId" bson:"userId"`

	// Username is denormalized from the owning user at write time so
	// log reads need no second lookup.
	Username string `json:"username" bson:"username"`

	// Description says what the workout was.
	Description string `json:"description" bson:"description"`

	// Duration is the workout length in minutes.
	Duration int `json:"duration" bson:"duration"`

	// Date is the calendar date of the workout, stored at UTC midnight.
	// Time-of-day carries no meaning.
	Date time.Time `json:"date" bson:"date"`
}

// MidnightUTC normalizes a timestamp to its calendar date at UTC midnight.
func MidnightUTC(t time.Time) time.Time {
	t = t.UTC()
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}
