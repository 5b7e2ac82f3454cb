package api

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"

	"github.com/sellhub/marketplace-api/internal/core/domain"
)

func render(t *testing.T, err error) (int, string) {
	t.Helper()
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	NewHTTPErrorHandler(zerolog.Nop())(err, c)

	var body struct {
		Message string `json:"message"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
		t.Fatalf("invalid json body: %v", err)
	}
	return rec.Code, body.Message
}

func TestErrorHandler_DomainErrors(t *testing.T) {
	cases := []struct {
		err     error
		code    int
		message string
	}{
		{domain.ErrInvalidCredentials, http.StatusUnauthorized, "invalid credentials"},
		{domain.ErrForbidden, http.StatusForbidden, "access denied"},
		{domain.ErrUserNotFound, http.StatusNotFound, "user not found"},
		{domain.ErrProductNotFound, http.StatusNotFound, "product not found"},
		{domain.ErrEmailTaken, http.StatusBadRequest, "user already exists"},
		{domain.ErrTooManyAttempts, http.StatusTooManyRequests, "too many login attempts, try again later"},
	}
	for _, tc := range cases {
		code, msg := render(t, tc.err)
		if code != tc.code || msg != tc.message {
			t.Fatalf("%v: expected (%d, %q), got (%d, %q)", tc.err, tc.code, tc.message, code, msg)
		}
	}
}

func TestErrorHandler_ValidationMessageSurfaced(t *testing.T) {
	err := fmt.Errorf("%w: price cannot be negative", domain.ErrInvalidInput)
	code, msg := render(t, err)
	if code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", code)
	}
	if msg != "invalid input: price cannot be negative" {
		t.Fatalf("unexpected message: %q", msg)
	}
}

func TestErrorHandler_RouteNotFound(t *testing.T) {
	code, msg := render(t, echo.ErrNotFound)
	if code != http.StatusNotFound || msg != "Route not found" {
		t.Fatalf("expected (404, Route not found), got (%d, %q)", code, msg)
	}
}

func TestErrorHandler_UnexpectedErrorSanitized(t *testing.T) {
	code, msg := render(t, errors.New("mongo: connection reset by peer"))
	if code != http.StatusInternalServerError {
		t.Fatalf("expected 500, got %d", code)
	}
	if msg != "internal server error" {
		t.Fatalf("storage detail leaked to client: %q", msg)
	}
}

func TestErrorHandler_EchoHTTPErrorPassedThrough(t *testing.T) {
	code, msg := render(t, echo.NewHTTPError(http.StatusBadRequest, "invalid payload"))
	if code != http.StatusBadRequest || msg != "invalid payload" {
		t.Fatalf("expected (400, invalid payload), got (%d, %q)", code, msg)
	}
}
