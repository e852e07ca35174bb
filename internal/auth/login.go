package auth

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"
	"golang.org/x/crypto/bcrypt"

	"github.com/foodbridge/foodbridge/internal/apperr"
	"github.com/foodbridge/foodbridge/internal/store"
)

type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// Login checks credentials and issues a fresh token.
// POST /auth/login
func (h *Handler) Login(c echo.Context) error {
	req := new(LoginRequest)
	if err := c.Bind(req); err != nil {
		return apperr.Validation("invalid request body")
	}
	if req.Email == "" || req.Password == "" {
		return apperr.Validation("email and password are required")
	}

	user, err := h.users.FindByEmail(c.Request().Context(), req.Email)
	if errors.Is(err, store.ErrNotFound) {
		return apperr.Unauthorized("Invalid credentials")
	}
	if err != nil {
		return err
	}
	if bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(req.Password)) != nil {
		return apperr.Unauthorized("Invalid credentials")
	}

	token, err := IssueToken(h.secret, user.ID, user.Role)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, echo.Map{"token": token, "user": user})
}
