package handlers

import (
	"net/http"
	"strings"

	"github.com/carljonathan/fccExTracker/internal/services"
	"github.com/carljonathan/fccExTracker/types"
	"github.com/go-chi/chi/v5"
)

// UserHandler provides HTTP handlers for users.
type UserHandler struct {
	userService *services.UserService
}

// NewUserHandler constructs a handler with the provided service.
func NewUserHandler(userService *services.UserService) *UserHandler {
	return &UserHandler{userService: userService}
}

// UserRouter registers user routes on the given router.
func UserRouter(r chi.Router, userService *services.UserService) {
	handler := NewUserHandler(userService)

	r.Post("/", handler.CreateUser)
	r.Get("/", handler.ListUsers)
}

// UserResponse is the public shape of a user.
type UserResponse struct {
	Username string `json:"username"`
	ID       string `json:"_id"`
}

func (h *UserHandler) CreateUser(w http.ResponseWriter, r *http.Request) {
	values, err := formValues(r, "username")
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	username := strings.TrimSpace(values["username"])
	if username == "" {
		writeError(w, http.StatusBadRequest, "username is required")
		return
	}

	user, err := h.userService.Create(r.Context(), types.User{Username: username})
	if err != nil {
		writeError(w, http.StatusInternalServerError, "failed to create user")
		return
	}

	writeJSON(w, http.StatusCreated, UserResponse{
		Username: user.Username,
		ID:       user.ID.Hex(),
	})
}

func (h *UserHandler) ListUsers(w http.ResponseWriter, r *http.Request) {
	users, err := h.userService.List(r.Context())
	if err != nil {
		writeError(w, http.StatusInternalServerError, "failed to list users")
		return
	}

	resp := make([]UserResponse, 0, len(users))
	for _, user := range users {
		resp = append(resp, UserResponse{
			Username: user.Username,
			ID:       user.ID.Hex(),
		})
	}
	writeJSON(w, http.StatusOK, resp)
}
