package contact

import (
	"net/http"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"

	"github.com/foodbridge/foodbridge/internal/apperr"
	"github.com/foodbridge/foodbridge/internal/models"
	"github.com/foodbridge/foodbridge/internal/store"
)

// Handler stores messages submitted through the public contact form.
type Handler struct {
	contacts store.Contacts
}

func NewHandler(contacts store.Contacts) *Handler {
	return &Handler{contacts: contacts}
}

type SubmitRequest struct {
	Name    string `json:"name"`
	Email   string `json:"email"`
	Subject string `json:"subject"`
	Message string `json:"message"`
}

// Submit accepts a contact-form message. No authentication required.
// POST /contact
func (h *Handler) Submit(c echo.Context) error {
	req := new(SubmitRequest)
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
	if strings.TrimSpace(req.Message) == "" {
		problems = append(problems, "message is required")
	}
	if len(problems) > 0 {
		return apperr.Validation(problems...)
	}

	m := &models.ContactMessage{
		ID:        uuid.New().String(),
		Name:      req.Name,
		Email:     req.Email,
		Subject:   req.Subject,
		Message:   req.Message,
		CreatedAt: time.Now(),
	}
	if err := h.contacts.Insert(c.Request().Context(), m); err != nil {
		return err
	}
	return c.JSON(http.StatusCreated, echo.Map{"message": "Message received"})
}
