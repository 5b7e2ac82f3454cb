package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/sellhub/marketplace-api/internal/core/domain"
)

// ctxIdentity extracts the caller identity injected by the Auth middleware.
// A missing identity means the middleware never ran on this route — reject
// with 401 rather than proceeding with an empty caller.
func ctxIdentity(c echo.Context) (userID string, role domain.Role, err error) {
	userID, _ = c.Get("user_id").(string)
	role, _ = c.Get("role").(domain.Role)
	if userID == "" || !role.Valid() {
		return "", "", echo.NewHTTPError(http.StatusUnauthorized, "missing authentication claims")
	}
	return userID, role, nil
}
