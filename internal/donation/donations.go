package donation

import (
	"errors"
	"net/http"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"

	"github.com/foodbridge/foodbridge/internal/apperr"
	"github.com/foodbridge/foodbridge/internal/models"
	"github.com/foodbridge/foodbridge/internal/store"
)

// Handler serves the donation lifecycle: public browsing plus owner-gated
// create, patch and delete.
type Handler struct {
	donations store.Donations
	users     store.Users
}

func NewHandler(donations store.Donations, users store.Users) *Handler {
	return &Handler{donations: donations, users: users}
}

type CreateRequest struct {
	FoodType    string    `json:"foodType"`
	Quantity    string    `json:"quantity"`
	ExpiryDate  time.Time `json:"expiryDate"`
	Location    string    `json:"location"`
	Description string    `json:"description"`
}

// ListAvailable returns every donation still open for pickup, newest first,
// each annotated with its donor's name and email.
// GET /donations
func (h *Handler) ListAvailable(c echo.Context) error {
	ctx := c.Request().Context()
	donations, err := h.donations.ListByStatus(ctx, models.StatusAvailable)
	if err != nil {
		return err
	}

	var donorIDs []string
	seen := make(map[string]bool)
	for _, d := range donations {
		if !seen[d.DonorID] {
			seen[d.DonorID] = true
			donorIDs = append(donorIDs, d.DonorID)
		}
	}
	donors, err := h.users.FindByIDs(ctx, donorIDs)
	if err != nil {
		return err
	}

	out := make([]models.PublicDonation, 0, len(donations))
	for _, d := range donations {
		pd := models.PublicDonation{Donation: d}
		if u, ok := donors[d.DonorID]; ok {
			pd.Donor = models.DonorSummary{Name: u.Name, Email: u.Email}
		}
		out = append(out, pd)
	}
	return c.JSON(http.StatusOK, out)
}

// Create posts a new donation owned by the caller. Status starts available.
// POST /donations
func (h *Handler) Create(c echo.Context) error {
	uid, ok := c.Get("user_id").(string)
	if !ok || uid == "" {
		return apperr.Unauthorized("invalid or missing token")
	}

	req := new(CreateRequest)
	if err := c.Bind(req); err != nil {
		return apperr.Validation("invalid request body")
	}

	var problems []string
	if strings.TrimSpace(req.FoodType) == "" {
		problems = append(problems, "foodType is required")
	}
	if strings.TrimSpace(req.Quantity) == "" {
		problems = append(problems, "quantity is required")
	}
	if req.ExpiryDate.IsZero() {
		problems = append(problems, "expiryDate is required")
	}
	if strings.TrimSpace(req.Location) == "" {
		problems = append(problems, "location is required")
	}
	if len(problems) > 0 {
		return apperr.Validation(problems...)
	}

	d := &models.Donation{
		ID:          uuid.New().String(),
		DonorID:     uid,
		FoodType:    req.FoodType,
		Quantity:    req.Quantity,
		ExpiryDate:  req.ExpiryDate,
		Location:    req.Location,
		Description: req.Description,
		Status:      models.StatusAvailable,
		CreatedAt:   time.Now(),
	}
	if err := h.donations.Insert(c.Request().Context(), d); err != nil {
		return err
	}
	return c.JSON(http.StatusCreated, d)
}

// Update applies a partial patch (status and/or description) to a donation
// owned by the caller. Ownership is re-derived on every call.
// PATCH /donations/:id
func (h *Handler) Update(c echo.Context) error {
	uid, ok := c.Get("user_id").(string)
	if !ok || uid == "" {
		return apperr.Unauthorized("invalid or missing token")
	}
	ctx := c.Request().Context()

	d, err := h.donations.FindByID(ctx, c.Param("id"))
	if errors.Is(err, store.ErrNotFound) {
		return apperr.NotFound("Donation not found")
	}
	if err != nil {
		return err
	}
	if d.DonorID != uid {
		return apperr.Forbidden("Not authorized")
	}

	patch := new(models.DonationPatch)
	if err := c.Bind(patch); err != nil {
		return apperr.Validation("invalid request body")
	}
	if patch.Status != nil && !models.ValidStatus(*patch.Status) {
		return apperr.Validation("status must be one of available, scheduled, picked_up")
	}

	updated, err := h.donations.UpdateByID(ctx, d.ID, *patch)
	if errors.Is(err, store.ErrNotFound) {
		return apperr.NotFound("Donation not found")
	}
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, updated)
}

// Delete removes a donation owned by the caller.
// DELETE /donations/:id
func (h *Handler) Delete(c echo.Context) error {
	uid, ok := c.Get("user_id").(string)
	if !ok || uid == "" {
		return apperr.Unauthorized("invalid or missing token")
	}
	ctx := c.Request().Context()

	d, err := h.donations.FindByID(ctx, c.Param("id"))
	if errors.Is(err, store.ErrNotFound) {
		return apperr.NotFound("Donation not found")
	}
	if err != nil {
		return err
	}
	if d.DonorID != uid {
		return apperr.Forbidden("Not authorized")
	}

	if err := h.donations.DeleteByID(ctx, d.ID); err != nil {
		return err
	}
	return c.JSON(http.StatusOK, echo.Map{"message": "Donation deleted"})
}

// ListMine returns the caller's own donations, newest first.
// GET /profile/donations
func (h *Handler) ListMine(c echo.Context) error {
	uid, ok := c.Get("user_id").(string)
	if !ok || uid == "" {
		return apperr.Unauthorized("invalid or missing token")
	}

	donations, err := h.donations.ListByDonor(c.Request().Context(), uid)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, donations)
}
