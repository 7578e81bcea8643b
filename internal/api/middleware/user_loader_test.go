package middleware

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"

	"github.com/adopet/account-service/internal/core/domain"
)

type stubFinder struct {
	users map[string]*domain.User
	err   error
}

func (f *stubFinder) FindByID(_ context.Context, id string) (*domain.User, error) {
	if f.err != nil {
		return nil, f.err
	}
	u, ok := f.users[id]
	if !ok {
		return nil, domain.ErrUserNotFound
	}
	return u, nil
}

func newLoaderContext(e *echo.Echo, id string) (echo.Context, *httptest.ResponseRecorder) {
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.SetParamNames("id")
	c.SetParamValues(id)
	return c, rec
}

func TestLoadUser_Found(t *testing.T) {
	e := echo.New()
	finder := &stubFinder{users: map[string]*domain.User{
		"user-1": {ID: "user-1", Name: "Ana", Email: "a@x.com"},
	}}

	c, rec := newLoaderContext(e, "user-1")

	called := false
	handler := LoadUser(finder)(func(c echo.Context) error {
		called = true
		user, ok := c.Get(UserKey).(*domain.User)
		if !ok || user.ID != "user-1" {
			t.Fatalf("user not attached, got %v", c.Get(UserKey))
		}
		return c.NoContent(http.StatusOK)
	})

	if err := handler(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if !called {
		t.Fatalf("next not called")
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
}

func TestLoadUser_NotFound(t *testing.T) {
	e := echo.New()
	finder := &stubFinder{users: map[string]*domain.User{}}

	c, rec := newLoaderContext(e, "missing")

	handler := LoadUser(finder)(func(c echo.Context) error {
		t.Fatalf("should not reach next")
		return nil
	})

	if err := handler(c); err != nil {
		e.HTTPErrorHandler(err, c)
	}
	if rec.Code != http.StatusNotFound {
		t.Fatalf("expected 404, got %d", rec.Code)
	}
}

func TestLoadUser_StoreFailurePropagates(t *testing.T) {
	e := echo.New()
	storeErr := errors.New("store down")
	finder := &stubFinder{err: storeErr}

	c, _ := newLoaderContext(e, "user-1")

	handler := LoadUser(finder)(func(c echo.Context) error {
		t.Fatalf("should not reach next")
		return nil
	})

	if err := handler(c); !errors.Is(err, storeErr) {
		t.Fatalf("expected store error to propagate, got %v", err)
	}
}
