package httpx

import (
	"log/slog"
	"net/http"

	"github.com/linkly/linkly-ui/internal/domain/auth"
	"github.com/linkly/linkly-ui/internal/domain/model"
	apperrors "github.com/linkly/linkly-ui/internal/errors"
	"github.com/linkly/linkly-ui/internal/service"
)

// UserHandlers serves the account management CRUD endpoints.
type UserHandlers struct {
	Svc    *service.UserService
	Logger *slog.Logger
}

// List handles GET /users.
func (h *UserHandlers) List(w http.ResponseWriter, r *http.Request) {
	users, err := h.Svc.FetchUsers(r.Context())
	if err != nil {
		WriteAppError(w, err)
		return
	}
	WriteJSON(w, http.StatusOK, map[string]any{"users": users})
}

// requireManage rejects sessions that can view accounts but not change them.
func requireManage(w http.ResponseWriter, r *http.Request) bool {
	sess, _ := SessionFromContext(r.Context())
	if !sess.HasPermission(auth.PermManageUsers) {
		WriteAppError(w, apperrors.Forbidden("account management permission required"))
		return false
	}
	return true
}

// Create handles POST /users.
func (h *UserHandlers) Create(w http.ResponseWriter, r *http.Request) {
	if !requireManage(w, r) {
		return
	}
	var req model.CreateUserRequest
	if !DecodeJSON(w, r, &req) {
		return
	}
	if req.Username == "" || req.Password == "" {
		WriteError(w, http.StatusBadRequest, "username and password are required")
		return
	}

	user, err := h.Svc.CreateUser(r.Context(), req)
	if err != nil {
		WriteAppError(w, err)
		return
	}
	WriteJSON(w, http.StatusCreated, user)
}

// Update handles PUT /users/{id}.
func (h *UserHandlers) Update(w http.ResponseWriter, r *http.Request) {
	if !requireManage(w, r) {
		return
	}
	id := r.PathValue("id")
	if id == "" {
		WriteAppError(w, apperrors.Validation("user id is required"))
		return
	}

	var req model.CreateUserRequest
	if !DecodeJSON(w, r, &req) {
		return
	}

	user, err := h.Svc.UpdateUser(r.Context(), id, req)
	if err != nil {
		WriteAppError(w, err)
		return
	}
	WriteJSON(w, http.StatusOK, user)
}

// Delete handles DELETE /users/{id}.
func (h *UserHandlers) Delete(w http.ResponseWriter, r *http.Request) {
	if !requireManage(w, r) {
		return
	}
	id := r.PathValue("id")
	if id == "" {
		WriteAppError(w, apperrors.Validation("user id is required"))
		return
	}

	if err := h.Svc.DeleteUser(r.Context(), id); err != nil {
		WriteAppError(w, err)
		return
	}
	WriteJSON(w, http.StatusOK, map[string]string{"status": "deleted"})
}
