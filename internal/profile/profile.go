package profile

import (
	"errors"
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/foodbridge/foodbridge/internal/apperr"
	"github.com/foodbridge/foodbridge/internal/models"
	"github.com/foodbridge/foodbridge/internal/store"
)

// Handler serves the authenticated user's own profile.
type Handler struct {
	users store.Users
}

func NewHandler(users store.Users) *Handler {
	return &Handler{users: users}
}

// Get returns the caller's profile. The password hash is never serialized.
// GET /profile
func (h *Handler) Get(c echo.Context) error {
	uid, ok := c.Get("user_id").(string)
	if !ok || uid == "" {
		return apperr.Unauthorized("invalid or missing token")
	}

	user, err := h.users.FindByID(c.Request().Context(), uid)
	if errors.Is(err, store.ErrNotFound) {
		return apperr.NotFound("User not found")
	}
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, user)
}

// Update applies the whitelisted profile fields present in the request body:
// name, email, phone, address, profileImage. Absent fields are unchanged.
// PATCH /profile
func (h *Handler) Update(c echo.Context) error {
	uid, ok := c.Get("user_id").(string)
	if !ok || uid == "" {
		return apperr.Unauthorized("invalid or missing token")
	}

	patch := new(models.UserPatch)
	if err := c.Bind(patch); err != nil {
		return apperr.Validation("invalid request body")
	}
	if patch.Email != nil && !strings.Contains(*patch.Email, "@") {
		return apperr.Validation("email is invalid")
	}

	user, err := h.users.UpdateByID(c.Request().Context(), uid, *patch)
	if errors.Is(err, store.ErrNotFound) {
		return apperr.NotFound("User not found")
	}
	if errors.Is(err, store.ErrDuplicateEmail) {
		return apperr.Conflict("A user with this email already exists")
	}
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, user)
}
