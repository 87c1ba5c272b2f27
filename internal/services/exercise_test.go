package services

import (
	"context"
	"testing"
	"time"

	"github.com/carljonathan/fccExTracker/internal/store"
	"github.com/carljonathan/fccExTracker/types"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

type stubUserRepo struct {
	user types.User
}

func (s *stubUserRepo) GetByID(ctx context.Context, id primitive.ObjectID) (types.User, error) {
	if s.user.ID == id {
		return s.user, nil
	}
	return types.User{}, store.ErrNotFound
}

func (s *stubUserRepo) Create(ctx context.Context, user types.User) (types.User, error) {
	return user, nil
}

func (s *stubUserRepo) List(ctx context.Context) ([]types.User, error) {
	return []types.User{s.user}, nil
}

type stubExerciseRepo struct {
	exercises []types.Exercise
}

func (s *stubExerciseRepo) Create(ctx context.Context, exercise types.Exercise) (types.Exercise, error) {
	exercise.ID = primitive.NewObjectID()
	s.exercises = append(s.exercises, exercise)
	return exercise, nil
}

func (s *stubExerciseRepo) ListByUser(ctx context.Context, userID primitive.ObjectID) ([]types.Exercise, error) {
	return s.exercises, nil
}

func day(t *testing.T, value string) time.Time {
	t.Helper()
	parsed, err := time.ParseInLocation("2006-01-02", value, time.UTC)
	if err != nil {
		t.Fatalf("parse day %q: %v", value, err)
	}
	return parsed
}

func TestLogWindowContains(t *testing.T) {
	from := time.Date(1990, time.January, 1, 0, 0, 0, 0, time.UTC)
	to := time.Date(1990, time.January, 31, 0, 0, 0, 0, time.UTC)

	cases := []struct {
		name   string
		window LogWindow
		date   time.Time
		want   bool
	}{
		{"unbounded accepts anything", LogWindow{}, time.Date(1970, 1, 1, 0, 0, 0, 0, time.UTC), true},
		{"inside", LogWindow{From: from, To: to}, time.Date(1990, 1, 15, 0, 0, 0, 0, time.UTC), true},
		{"equal to lower bound", LogWindow{From: from, To: to}, from, true},
		{"equal to upper bound", LogWindow{From: from, To: to}, to, true},
		{"before lower bound", LogWindow{From: from, To: to}, from.AddDate(0, 0, -1), false},
		{"after upper bound", LogWindow{From: from, To: to}, to.AddDate(0, 0, 1), false},
		{"from only", LogWindow{From: from}, to.AddDate(10, 0, 0), true},
		{"to only", LogWindow{To: to}, from.AddDate(-10, 0, 0), true},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := tc.window.Contains(tc.date); got != tc.want {
				t.Errorf("Contains(%v) = %v, want %v", tc.date, got, tc.want)
			}
		})
	}
}

func TestLogAppliesWindowAndLimit(t *testing.T) {
	user := types.User{ID: primitive.NewObjectID(), Username: "fcc_test"}
	users := &stubUserRepo{user: user}
	exercises := &stubExerciseRepo{}
	for _, d := range []string{"1989-12-31", "1990-01-01", "1990-01-02", "1990-01-03", "1990-02-01"} {
		exercises.exercises = append(exercises.exercises, types.Exercise{
			UserID: user.ID,
			Date:   day(t, d),
		})
	}

	service := NewExerciseService(exercises, users)
	log, err := service.Log(context.Background(), user.ID, LogWindow{
		From:  day(t, "1990-01-01"),
		To:    day(t, "1990-01-31"),
		Limit: 2,
	})
	if err != nil {
		t.Fatalf("Log: %v", err)
	}

	if len(log.Entries) != 2 {
		t.Fatalf("len(entries) = %d, want 2", len(log.Entries))
	}
	if !log.Entries[0].Date.Equal(day(t, "1990-01-01")) || !log.Entries[1].Date.Equal(day(t, "1990-01-02")) {
		t.Errorf("entries = %v, want first two in-range records in store order", log.Entries)
	}
	if log.User.Username != "fcc_test" {
		t.Errorf("user = %+v", log.User)
	}
}

func TestLogUnknownUser(t *testing.T) {
	users := &stubUserRepo{user: types.User{ID: primitive.NewObjectID()}}
	service := NewExerciseService(&stubExerciseRepo{}, users)

	_, err := service.Log(context.Background(), primitive.NewObjectID(), LogWindow{})
	if err != store.ErrNotFound {
		t.Fatalf("err = %v, want store.ErrNotFound", err)
	}
}

func TestCreateNormalizesDateAndDenormalizesUsername(t *testing.T) {
	user := types.User{ID: primitive.NewObjectID(), Username: "fcc_test"}
	users := &stubUserRepo{user: user}
	exercises := &stubExerciseRepo{}
	service := NewExerciseService(exercises, users)

	noon := time.Date(1990, time.January, 1, 12, 34, 56, 0, time.UTC)
	created, err := service.Create(context.Background(), user.ID, NewExercise{
		Description: "run",
		Duration:    30,
		Date:        noon,
	})
	if err != nil {
		t.Fatalf("Create: %v", err)
	}

	if created.Username != "fcc_test" {
		t.Errorf("username = %q, want denormalized owner name", created.Username)
	}
	want := time.Date(1990, time.January, 1, 0, 0, 0, 0, time.UTC)
	if !created.Date.Equal(want) {
		t.Errorf("date = %v, want midnight %v", created.Date, want)
	}
}

func TestCreateDefaultsDateToToday(t *testing.T) {
	user := types.User{ID: primitive.NewObjectID(), Username: "fcc_test"}
	service := NewExerciseService(&stubExerciseRepo{}, &stubUserRepo{user: user})

	created, err := service.Create(context.Background(), user.ID, NewExercise{
		Description: "lift",
		Duration:    60,
	})
	if err != nil {
		t.Fatalf("Create: %v", err)
	}

	want := types.MidnightUTC(time.Now())
	if !created.Date.Equal(want) {
		t.Errorf("date = %v, want today at midnight %v", created.Date, want)
	}
}

func TestCreateUnknownUser(t *testing.T) {
	service := NewExerciseService(&stubExerciseRepo{}, &stubUserRepo{user: types.User{ID: primitive.NewObjectID()}})

	_, err := service.Create(context.Background(), primitive.NewObjectID(), NewExercise{
		Description: "run",
		Duration:    30,
	})
	if err != store.ErrNotFound {
		t.Fatalf("err = %v, want store.ErrNotFound", err)
	}
}
