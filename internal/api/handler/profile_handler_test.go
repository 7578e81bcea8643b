package handler

import (
	"context"
	"net/http"
	"strings"
	"testing"

	"github.com/adopet/account-service/internal/api/middleware"
	"github.com/adopet/account-service/internal/core/domain"
	"github.com/adopet/account-service/internal/core/ports"
)

func sanitizedUser() *domain.User {
	return &domain.User{
		ID: "user-1", Name: "Ana", Email: "a@x.com",
		Github: "ana", Phone: "11 98888-0000", City: "Recife", About: "olá",
	}
}

func TestProfileHandler_Get(t *testing.T) {
	handler := NewProfileHandler(&stubAccountService{})

	c, rec := newJSONContext(t, http.MethodGet, "/users/user-1", "")
	c.Set(middleware.UserKey, sanitizedUser())

	if err := handler.Get(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}

	resp := decodeBody(t, rec)
	user, ok := resp["user"].(map[string]any)
	if !ok || user["id"] != "user-1" || user["about"] != "olá" {
		t.Fatalf("unexpected user payload: %+v", user)
	}
	if strings.Contains(strings.ToLower(rec.Body.String()), "password") {
		t.Fatalf("response must not contain a password field: %s", rec.Body.String())
	}
}

func TestProfileHandler_Get_NoUserAttached(t *testing.T) {
	handler := NewProfileHandler(&stubAccountService{})

	c, _ := newJSONContext(t, http.MethodGet, "/users/user-1", "")

	err := handler.Get(c)
	if err == nil {
		t.Fatalf("expected error when pipeline did not run")
	}
}

func TestProfileHandler_Update_Success(t *testing.T) {
	stub := &stubAccountService{
		updateFn: func(ctx context.Context, id string, update ports.ProfileUpdate) (*domain.User, error) {
			if id != "user-1" {
				t.Fatalf("unexpected id: %s", id)
			}
			if update.Name != "Daniela" || update.City != "Natal" {
				t.Fatalf("unexpected update: %+v", update)
			}
			// Absent body fields arrive empty and overwrite.
			if update.Github != "" || update.About != "" {
				t.Fatalf("expected absent fields to be empty, got %+v", update)
			}
			return &domain.User{ID: id, Name: update.Name, Email: "a@x.com", City: update.City}, nil
		},
	}
	handler := NewProfileHandler(stub)

	c, rec := newJSONContext(t, http.MethodPut, "/users/user-1",
		`{"name":"Daniela","phone":"","city":"Natal"}`)
	c.Set(middleware.UserKey, sanitizedUser())

	if err := handler.Update(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d", rec.Code)
	}

	resp := decodeBody(t, rec)
	if resp["success"] != "Usuário atualizado com sucesso!" {
		t.Fatalf("unexpected success message: %v", resp["success"])
	}
	user, ok := resp["user"].(map[string]any)
	if !ok || user["name"] != "Daniela" || user["city"] != "Natal" {
		t.Fatalf("unexpected user payload: %+v", user)
	}
}

func TestProfileHandler_Update_TargetGone(t *testing.T) {
	stub := &stubAccountService{
		updateFn: func(ctx context.Context, id string, update ports.ProfileUpdate) (*domain.User, error) {
			return nil, domain.ErrUserNotFound
		},
	}
	handler := NewProfileHandler(stub)

	c, rec := newJSONContext(t, http.MethodPut, "/users/user-1", `{"name":"Ana"}`)
	c.Set(middleware.UserKey, sanitizedUser())

	if err := handler.Update(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusNotFound {
		t.Fatalf("expected 404, got %d", rec.Code)
	}
}

func TestProfileHandler_Update_InvalidPayload(t *testing.T) {
	stub := &stubAccountService{
		updateFn: func(ctx context.Context, id string, update ports.ProfileUpdate) (*domain.User, error) {
			t.Fatalf("service should not be called")
			return nil, nil
		},
	}
	handler := NewProfileHandler(stub)

	c, rec := newJSONContext(t, http.MethodPut, "/users/user-1", "{")
	c.Set(middleware.UserKey, sanitizedUser())

	if err := handler.Update(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", rec.Code)
	}
}
