package handlers

import (
	"errors"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/carljonathan/fccExTracker/internal/services"
	"github.com/carljonathan/fccExTracker/internal/store"
	"github.com/carljonathan/fccExTracker/types"
	"github.com/go-chi/chi/v5"
)

// ExerciseHandler provides HTTP handlers for logging and querying exercises.
type ExerciseHandler struct {
	exerciseService *services.ExerciseService
}

// NewExerciseHandler constructs a handler with the provided service.
func NewExerciseHandler(exerciseService *services.ExerciseService) *ExerciseHandler {
	return &ExerciseHandler{exerciseService: exerciseService}
}

// ExerciseRouter registers per-user exercise routes on the given router.
func ExerciseRouter(r chi.Router, exerciseService *services.ExerciseService) {
	handler := NewExerciseHandler(exerciseService)

	r.Route("/{userID}", func(r chi.Router) {
		r.Post("/exercises", handler.CreateExercise)
		r.Get("/logs", handler.GetLog)
	})
}

// ExerciseResponse echoes a logged exercise. ID is the owning user's
// identifier, matching the log query response.
type ExerciseResponse struct {
	Username    string `json:"username"`
	Description string `json:"description"`
	Duration    int    `json:"duration"`
	Date        string `json:"date"`
	ID          string `json:"_id"`
}

// LogEntry is one reshaped exercise in a log response.
type LogEntry struct {
	Description string `json:"description"`
	Duration    int    `json:"duration"`
	Date        string `json:"date"`
}

// LogResponse is the filtered exercise history of a user.
type LogResponse struct {
	ID       string     `json:"_id"`
	Username string     `json:"username"`
	Count    int        `json:"count"`
	Log      []LogEntry `json:"log"`
}

func (h *ExerciseHandler) CreateExercise(w http.ResponseWriter, r *http.Request) {
	userID, ok := userIDParam(r)
	if !ok {
		writeError(w, http.StatusNotFound, "user not found")
		return
	}

	input, err := parseExercisePayload(r)
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	exercise, err := h.exerciseService.Create(r.Context(), userID, input)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			writeError(w, http.StatusNotFound, "user not found")
			return
		}
		writeError(w, http.StatusInternalServerError, "failed to create exercise")
		return
	}

	writeJSON(w, http.StatusCreated, ExerciseResponse{
		Username:    exercise.Username,
		Description: exercise.Description,
		Duration:    exercise.Duration,
		Date:        exercise.Date.Format(types.LogDateLayout),
		ID:          exercise.UserID.Hex(),
	})
}

func (h *ExerciseHandler) GetLog(w http.ResponseWriter, r *http.Request) {
	userID, ok := userIDParam(r)
	if !ok {
		writeError(w, http.StatusNotFound, "user not found")
		return
	}

	window, err := parseLogWindow(r)
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	log, err := h.exerciseService.Log(r.Context(), userID, window)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			writeError(w, http.StatusNotFound, "user not found")
			return
		}
		writeError(w, http.StatusInternalServerError, "failed to fetch log")
		return
	}

	entries := make([]LogEntry, 0, len(log.Entries))
	for _, exercise := range log.Entries {
		entries = append(entries, LogEntry{
			Description: exercise.Description,
			Duration:    exercise.Duration,
			Date:        exercise.Date.Format(types.LogDateLayout),
		})
	}

	writeJSON(w, http.StatusOK, LogResponse{
		ID:       log.User.ID.Hex(),
		Username: log.User.Username,
		Count:    len(entries),
		Log:      entries,
	})
}

func parseExercisePayload(r *http.Request) (services.NewExercise, error) {
	values, err := formValues(r, "description", "duration", "date")
	if err != nil {
		return services.NewExercise{}, err
	}

	description := strings.TrimSpace(values["description"])
	if description == "" {
		return services.NewExercise{}, errors.New("description is required")
	}

	rawDuration := strings.TrimSpace(values["duration"])
	if rawDuration == "" {
		return services.NewExercise{}, errors.New("duration is required")
	}
	duration, err := strconv.Atoi(rawDuration)
	if err != nil || duration < 1 {
		return services.NewExercise{}, errors.New("duration must be a positive integer")
	}

	// An absent or unparsable date falls back to today.
	var date time.Time
	if raw := strings.TrimSpace(values["date"]); raw != "" {
		if parsed, err := time.ParseInLocation(dateParamLayout, raw, time.UTC); err == nil {
			date = parsed
		}
	}

	return services.NewExercise{
		Description: description,
		Duration:    duration,
		Date:        date,
	}, nil
}

func parseLogWindow(r *http.Request) (services.LogWindow, error) {
	query := r.URL.Query()

	from, err := parseDateParam(query.Get("from"))
	if err != nil {
		return services.LogWindow{}, errors.New("invalid from date")
	}

	to, err := parseDateParam(query.Get("to"))
	if err != nil {
		return services.LogWindow{}, errors.New("invalid to date")
	}

	limit := 0
	if raw := strings.TrimSpace(query.Get("limit")); raw != "" {
		limit, err = strconv.Atoi(raw)
		if err != nil || limit < 0 {
			return services.LogWindow{}, errors.New("invalid limit")
		}
	}

	return services.LogWindow{From: from, To: to, Limit: limit}, nil
}
