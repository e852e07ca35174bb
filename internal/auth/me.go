package auth

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/foodbridge/foodbridge/internal/apperr"
	"github.com/foodbridge/foodbridge/internal/store"
)

// Me returns the currently authenticated user's record.
// GET /auth/me
func (h *Handler) Me(c echo.Context) error {
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
