package handler

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"

	"github.com/sellhub/marketplace-api/internal/core/domain"
	"github.com/sellhub/marketplace-api/internal/core/ports"
)

type stubUserService struct {
	listFn       func(ctx context.Context) ([]domain.User, error)
	updateRoleFn func(ctx context.Context, userID string, role domain.Role) (*domain.User, error)
	deleteFn     func(ctx context.Context, userID string) error
	statsFn      func(ctx context.Context) (*ports.UserStats, error)
}

func (s *stubUserService) ListUsers(ctx context.Context) ([]domain.User, error) {
	return s.listFn(ctx)
}

func (s *stubUserService) UpdateRole(ctx context.Context, userID string, role domain.Role) (*domain.User, error) {
	return s.updateRoleFn(ctx, userID, role)
}

func (s *stubUserService) DeleteUser(ctx context.Context, userID string) error {
	return s.deleteFn(ctx, userID)
}

func (s *stubUserService) Stats(ctx context.Context) (*ports.UserStats, error) {
	return s.statsFn(ctx)
}

func TestUserHandler_List(t *testing.T) {
	e := echo.New()
	stub := &stubUserService{
		listFn: func(ctx context.Context) ([]domain.User, error) {
			return []domain.User{
				{ID: "u1", Name: "Ann", Email: "a@x.com", PasswordHash: "hash", Role: domain.RoleUser},
			}, nil
		},
	}
	handler := NewUserHandler(stub)

	req := httptest.NewRequest(http.MethodGet, "/auth/users", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	if err := handler.List(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}

	var resp map[string][]map[string]any
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("invalid json: %v", err)
	}
	users := resp["users"]
	if len(users) != 1 {
		t.Fatalf("expected 1 user, got %d", len(users))
	}
	for key := range users[0] {
		if key == "passwordHash" || key == "password_hash" {
			t.Fatalf("password hash serialized to client")
		}
	}
}

func TestUserHandler_UpdateRole(t *testing.T) {
	e := echo.New()
	stub := &stubUserService{
		updateRoleFn: func(ctx context.Context, userID string, role domain.Role) (*domain.User, error) {
			if userID != "u1" || role != domain.RoleAdmin {
				t.Fatalf("unexpected args: %s %s", userID, role)
			}
			return &domain.User{ID: userID, Role: role}, nil
		},
	}
	handler := NewUserHandler(stub)

	c, rec := newJSONContext(e, http.MethodPut, "/auth/users/u1/role", `{"role":"admin"}`)
	c.SetParamNames("id")
	c.SetParamValues("u1")

	if err := handler.UpdateRole(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
}

func TestUserHandler_Delete_NotFoundPropagates(t *testing.T) {
	e := echo.New()
	stub := &stubUserService{
		deleteFn: func(ctx context.Context, userID string) error {
			return domain.ErrUserNotFound
		},
	}
	handler := NewUserHandler(stub)

	req := httptest.NewRequest(http.MethodDelete, "/auth/users/missing", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.SetParamNames("id")
	c.SetParamValues("missing")

	if err := handler.Delete(c); !errors.Is(err, domain.ErrUserNotFound) {
		t.Fatalf("expected ErrUserNotFound to propagate, got %v", err)
	}
}

func TestUserHandler_Stats(t *testing.T) {
	e := echo.New()
	stub := &stubUserService{
		statsFn: func(ctx context.Context) (*ports.UserStats, error) {
			return &ports.UserStats{TotalUsers: 3, AdminUsers: 1, RegularUsers: 2}, nil
		},
	}
	handler := NewUserHandler(stub)

	req := httptest.NewRequest(http.MethodGet, "/auth/stats", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	if err := handler.Stats(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}

	var stats ports.UserStats
	if err := json.Unmarshal(rec.Body.Bytes(), &stats); err != nil {
		t.Fatalf("invalid json: %v", err)
	}
	if stats.TotalUsers != 3 || stats.AdminUsers != 1 || stats.RegularUsers != 2 {
		t.Fatalf("unexpected stats: %+v", stats)
	}
}
