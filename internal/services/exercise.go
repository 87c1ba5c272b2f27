package services

import (
	"context"
	"time"

	"github.com/carljonathan/fccExTracker/types"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// ExerciseRepository defines persistence operations for exercises.
type ExerciseRepository interface {
	Create(ctx context.Context, exercise types.Exercise) (types.Exercise, error)
	ListByUser(ctx context.Context, userID primitive.ObjectID) ([]types.Exercise, error)
}

// NewExercise is the validated input for logging a workout.
type NewExercise struct {
	Description string
	Duration    int
	// Date is the workout's calendar date. Zero means "today".
	Date time.Time
}

// LogWindow bounds a log query. Zero From/To mean unbounded on that side;
// zero Limit means no cap.
type LogWindow struct {
	From  time.Time
	To    time.Time
	Limit int
}

// ExerciseLog is a user's filtered exercise history.
type ExerciseLog struct {
	User    types.User
	Entries []types.Exercise
}

// ExerciseService encapsulates exercise use-cases.
type ExerciseService struct {
	exercises ExerciseRepository
	users     UserRepository
}

func NewExerciseService(exercises ExerciseRepository, users UserRepository) *ExerciseService {
	return &ExerciseService{exercises: exercises, users: users}
}

// Create logs an exercise against the user. The owner must exist; its
// username is denormalized onto the stored record, and the date is
// normalized to UTC midnight so range queries compare whole days.
func (s *ExerciseService) Create(ctx context.Context, userID primitive.ObjectID, input NewExercise) (types.Exercise, error) {
	user, err := s.users.GetByID(ctx, userID)
	if err != nil {
		return types.Exercise{}, err
	}

	date := input.Date
	if date.IsZero() {
		date = time.Now()
	}

	exercise := types.Exercise{
		UserID:      user.ID,
		Username:    user.Username,
		Description: input.Description,
		Duration:    input.Duration,
		Date:        types.MidnightUTC(date),
	}
	return s.exercises.Create(ctx, exercise)
}

// Log resolves the user and returns their exercises restricted to the
// window, in store order. Records outside the date range are skipped and
// do not count toward the limit; bounds are inclusive on both sides.
func (s *ExerciseService) Log(ctx context.Context, userID primitive.ObjectID, window LogWindow) (ExerciseLog, error) {
	user, err := s.users.GetByID(ctx, userID)
	if err != nil {
		return ExerciseLog{}, err
	}

	all, err := s.exercises.ListByUser(ctx, userID)
	if err != nil {
		return ExerciseLog{}, err
	}

	entries := make([]types.Exercise, 0, len(all))
	for _, exercise := range all {
		if window.Limit > 0 && len(entries) >= window.Limit {
			break
		}
		if !window.Contains(exercise.Date) {
			continue
		}
		entries = append(entries, exercise)
	}

	return ExerciseLog{User: user, Entries: entries}, nil
}

// Contains reports whether the date falls inside the window's bounds.
func (w LogWindow) Contains(date time.Time) bool {
	if !w.From.IsZero() && date.Before(w.From) {
		return false
	}
	if !w.To.IsZero() && date.After(w.To) {
		return false
	}
	return true
}
