package donation

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/foodbridge/foodbridge/internal/apperr"
	"github.com/foodbridge/foodbridge/internal/models"
	"github.com/foodbridge/foodbridge/internal/store"
)

func setup(t *testing.T) (*Handler, *store.MemoryUsers, *store.MemoryDonations) {
	t.Helper()
	users := store.NewMemoryUsers()
	donations := store.NewMemoryDonations()
	return NewHandler(donations, users), users, donations
}

func seedUser(t *testing.T, users *store.MemoryUsers, id, name, email string) {
	t.Helper()
	err := users.Insert(context.Background(), &models.User{
		ID: id, Name: name, Email: email, Role: models.RoleRestaurant, CreatedAt: time.Now(),
	})
	if err != nil {
		t.Fatalf("seed user: %v", err)
	}
}

func invoke(t *testing.T, h echo.HandlerFunc, req *http.Request, mutate func(echo.Context)) *httptest.ResponseRecorder {
	t.Helper()
	e := echo.New()
	e.HTTPErrorHandler = apperr.Handler(false)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	if mutate != nil {
		mutate(c)
	}
	if err := h(c); err != nil {
		e.HTTPErrorHandler(err, c)
	}
	return rec
}

func jsonReq(method, target, body string) *http.Request {
	req := httptest.NewRequest(method, target, strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	return req
}

func asUser(id string) func(echo.Context) {
	return func(c echo.Context) { c.Set("user_id", id) }
}

func createDonation(t *testing.T, h *Handler, ownerID, body string) models.Donation {
	t.Helper()
	rec := invoke(t, h.Create, jsonReq(http.MethodPost, "/donations", body), asUser(ownerID))
	if rec.Code != http.StatusCreated {
		t.Fatalf("create: expected 201, got %d: %s", rec.Code, rec.Body.String())
	}
	var d models.Donation
	if err := json.Unmarshal(rec.Body.Bytes(), &d); err != nil {
		t.Fatalf("decode: %v", err)
	}
	return d
}

func TestCreateAndListMine(t *testing.T) {
	h, users, _ := setup(t)
	seedUser(t, users, "u1", "Green Garden", "a@x.com")

	d := createDonation(t, h, "u1",
		`{"foodType":"Cooked Meals","quantity":"5kg","expiryDate":"2026-09-01T12:00:00Z","location":"123 Main St","description":"fresh"}`)
	if d.Status != models.StatusAvailable {
		t.Fatalf("expected default status available, got %q", d.Status)
	}
	if d.ID == "" || d.CreatedAt.IsZero() {
		t.Fatal("expected generated id and timestamp")
	}

	rec := invoke(t, h.ListMine, jsonReq(http.MethodGet, "/profile/donations", ""), asUser("u1"))
	if rec.Code != http.StatusOK {
		t.Fatalf("list mine: expected 200, got %d", rec.Code)
	}
	var mine []models.Donation
	if err := json.Unmarshal(rec.Body.Bytes(), &mine); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if len(mine) != 1 {
		t.Fatalf("expected exactly one donation, got %d", len(mine))
	}
	got := mine[0]
	if got.ID != d.ID || got.FoodType != "Cooked Meals" || got.Quantity != "5kg" ||
		got.Location != "123 Main St" || got.Description != "fresh" || got.DonorID != "u1" {
		t.Fatalf("round-trip mismatch: %+v", got)
	}
}

func TestCreateValidation(t *testing.T) {
	h, users, _ := setup(t)
	seedUser(t, users, "u1", "Green Garden", "a@x.com")

	rec := invoke(t, h.Create, jsonReq(http.MethodPost, "/donations", `{"description":"just crumbs"}`), asUser("u1"))
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", rec.Code)
	}
	msg := rec.Body.String()
	for _, want := range []string{"foodType is required", "quantity is required", "expiryDate is required", "location is required"} {
		if !strings.Contains(msg, want) {
			t.Fatalf("expected joined message to contain %q, got %s", want, msg)
		}
	}
}

func TestListAvailableFiltersAndAnnotates(t *testing.T) {
	h, users, donations := setup(t)
	seedUser(t, users, "u1", "Green Garden", "a@x.com")
	ctx := context.Background()
	base := time.Now()

	insert := func(id, status string, offset time.Duration) {
		_ = donations.Insert(ctx, &models.Donation{
			ID: id, DonorID: "u1", FoodType: "Bread", Quantity: "1kg",
			ExpiryDate: base.Add(24 * time.Hour), Location: "123 Main St",
			Status: status, CreatedAt: base.Add(offset),
		})
	}
	insert("old-available", models.StatusAvailable, 0)
	insert("scheduled", models.StatusScheduled, time.Minute)
	insert("new-available", models.StatusAvailable, 2*time.Minute)
	insert("picked-up", models.StatusPickedUp, 3*time.Minute)

	rec := invoke(t, h.ListAvailable, httptest.NewRequest(http.MethodGet, "/donations", nil), nil)
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	var listed []models.PublicDonation
	if err := json.Unmarshal(rec.Body.Bytes(), &listed); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if len(listed) != 2 {
		t.Fatalf("expected only the 2 available donations, got %d", len(listed))
	}
	if listed[0].ID != "new-available" || listed[1].ID != "old-available" {
		t.Fatalf("expected newest-first ordering, got %s then %s", listed[0].ID, listed[1].ID)
	}
	if listed[0].Donor.Name != "Green Garden" || listed[0].Donor.Email != "a@x.com" {
		t.Fatalf("missing donor annotation: %+v", listed[0].Donor)
	}
}

func TestUpdatePartialPatch(t *testing.T) {
	h, users, _ := setup(t)
	seedUser(t, users, "u1", "Green Garden", "a@x.com")
	d := createDonation(t, h, "u1",
		`{"foodType":"Bread","quantity":"2kg","expiryDate":"2026-09-01T12:00:00Z","location":"123 Main St","description":"day-old"}`)

	patchReq := jsonReq(http.MethodPatch, "/donations/"+d.ID, `{"status":"scheduled"}`)
	rec := invoke(t, h.Update, patchReq, func(c echo.Context) {
		c.Set("user_id", "u1")
		c.SetParamNames("id")
		c.SetParamValues(d.ID)
	})
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", rec.Code, rec.Body.String())
	}
	var updated models.Donation
	if err := json.Unmarshal(rec.Body.Bytes(), &updated); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if updated.Status != models.StatusScheduled {
		t.Fatalf("status not applied: %q", updated.Status)
	}
	if updated.Description != "day-old" {
		t.Fatalf("omitted description must be unchanged, got %q", updated.Description)
	}

	// A present-but-empty field clears the value
	rec = invoke(t, h.Update, jsonReq(http.MethodPatch, "/donations/"+d.ID, `{"description":""}`), func(c echo.Context) {
		c.Set("user_id", "u1")
		c.SetParamNames("id")
		c.SetParamValues(d.ID)
	})
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &updated); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if updated.Description != "" {
		t.Fatalf("explicit empty description should clear the field, got %q", updated.Description)
	}
	if updated.Status != models.StatusScheduled {
		t.Fatalf("omitted status must be unchanged, got %q", updated.Status)
	}

	rec = invoke(t, h.Update, jsonReq(http.MethodPatch, "/donations/"+d.ID, `{"status":"eaten"}`), func(c echo.Context) {
		c.Set("user_id", "u1")
		c.SetParamNames("id")
		c.SetParamValues(d.ID)
	})
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("invalid status: expected 400, got %d", rec.Code)
	}
}

func TestUpdateOwnership(t *testing.T) {
	h, users, donations := setup(t)
	seedUser(t, users, "u1", "Green Garden", "a@x.com")
	seedUser(t, users, "u2", "Blue Bistro", "b@x.com")
	d := createDonation(t, h, "u1",
		`{"foodType":"Soup","quantity":"3L","expiryDate":"2026-09-01T12:00:00Z","location":"123 Main St"}`)

	rec := invoke(t, h.Update, jsonReq(http.MethodPatch, "/donations/"+d.ID, `{"status":"picked_up"}`), func(c echo.Context) {
		c.Set("user_id", "u2")
		c.SetParamNames("id")
		c.SetParamValues(d.ID)
	})
	if rec.Code != http.StatusForbidden {
		t.Fatalf("non-owner: expected 403, got %d", rec.Code)
	}

	unchanged, err := donations.FindByID(context.Background(), d.ID)
	if err != nil {
		t.Fatalf("find: %v", err)
	}
	if unchanged.Status != models.StatusAvailable {
		t.Fatalf("donation must be unchanged after rejected patch, got %q", unchanged.Status)
	}

	rec = invoke(t, h.Update, jsonReq(http.MethodPatch, "/donations/missing", `{"status":"picked_up"}`), func(c echo.Context) {
		c.Set("user_id", "u1")
		c.SetParamNames("id")
		c.SetParamValues("missing")
	})
	if rec.Code != http.StatusNotFound {
		t.Fatalf("unknown id: expected 404, got %d", rec.Code)
	}
}

func TestDelete(t *testing.T) {
	h, users, donations := setup(t)
	seedUser(t, users, "u1", "Green Garden", "a@x.com")
	seedUser(t, users, "u2", "Blue Bistro", "b@x.com")
	d := createDonation(t, h, "u1",
		`{"foodType":"Rice","quantity":"10kg","expiryDate":"2026-09-01T12:00:00Z","location":"123 Main St"}`)

	rec := invoke(t, h.Delete, httptest.NewRequest(http.MethodDelete, "/donations/"+d.ID, nil), func(c echo.Context) {
		c.Set("user_id", "u2")
		c.SetParamNames("id")
		c.SetParamValues(d.ID)
	})
	if rec.Code != http.StatusForbidden {
		t.Fatalf("non-owner: expected 403, got %d", rec.Code)
	}
	if _, err := donations.FindByID(context.Background(), d.ID); err != nil {
		t.Fatal("donation must survive a rejected delete")
	}

	rec = invoke(t, h.Delete, httptest.NewRequest(http.MethodDelete, "/donations/"+d.ID, nil), func(c echo.Context) {
		c.Set("user_id", "u1")
		c.SetParamNames("id")
		c.SetParamValues(d.ID)
	})
	if rec.Code != http.StatusOK {
		t.Fatalf("owner delete: expected 200, got %d", rec.Code)
	}
	if _, err := donations.FindByID(context.Background(), d.ID); !errors.Is(err, store.ErrNotFound) {
		t.Fatalf("expected donation to be gone, got %v", err)
	}
}
