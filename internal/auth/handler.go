package auth

import (
	"errors"
	"net/http"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"golang.org/x/crypto/bcrypt"

	"github.com/foodbridge/foodbridge/internal/apperr"
	"github.com/foodbridge/foodbridge/internal/models"
	"github.com/foodbridge/foodbridge/internal/store"
)

// Handler serves registration, login and the current-user lookup.
type Handler struct {
	users  store.Users
	secret string
}

func NewHandler(users store.Users, secret string) *Handler {
	return &Handler{users: users, secret: secret}
}

type RegisterRequest struct {
	Name                string `json:"name"`
	Email               string `json:"email"`
	Password            string `json:"password"`
	Role                string `json:"role"`
	Organization        string `json:"organization"`
	Phone               string `json:"phone"`
	Address             string `json:"address"`
	City                string `json:"city"`
	ZipCode             string `json:"zipCode"`
	Bio                 string `json:"bio"`
	RestaurantType      string `json:"restaurantType"`
	OperatingHours      string `json:"operatingHours"`
	NGOType             string `json:"ngoType"`
	ServiceArea         string `json:"serviceArea"`
	BeneficiariesServed string `json:"beneficiariesServed"`
}

// Register creates an account and signs the caller in.
// POST /auth/register
func (h *Handler) Register(c echo.Context) error {
	req := new(RegisterRequest)
	if err := c.Bind(req); err != nil {
		return apperr.Validation("invalid request body")
	}

	var problems []string
	if strings.TrimSpace(req.Name) == "" {
		problems = append(problems, "name is required")
	}
	if strings.TrimSpace(req.Email) == "" {
		problems = append(problems, "email is required")
	} else if !strings.Contains(req.Email, "@") {
		problems = append(problems, "email is invalid")
	}
	if len(req.Password) < 6 {
		problems = append(problems, "password must be at least 6 characters")
	}
	if req.Role != models.RoleRestaurant && req.Role != models.RoleNGO {
		problems = append(problems, "role must be restaurant or ngo")
	}
	if len(problems) > 0 {
		return apperr.Validation(problems...)
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return err
	}

	user := &models.User{
		ID:                  uuid.New().String(),
		Name:                req.Name,
		Email:               req.Email,
		Password:            string(hashed),
		Role:                req.Role,
		Organization:        req.Organization,
		Phone:               req.Phone,
		Address:             req.Address,
		City:                req.City,
		ZipCode:             req.ZipCode,
		Bio:                 req.Bio,
		RestaurantType:      req.RestaurantType,
		OperatingHours:      req.OperatingHours,
		NGOType:             req.NGOType,
		ServiceArea:         req.ServiceArea,
		BeneficiariesServed: req.BeneficiariesServed,
		CreatedAt:           time.Now(),
	}
	if err := h.users.Insert(c.Request().Context(), user); err != nil {
		if errors.Is(err, store.ErrDuplicateEmail) {
			return apperr.Conflict("A user with this email already exists")
		}
		return err
	}

	token, err := IssueToken(h.secret, user.ID, user.Role)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusCreated, echo.Map{"token": token, "user": user})
}
