package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/petsitting/pet-sitting-system/internal/api/middleware"
)

// ctxUser extracts the identity injected by the Auth middleware. An empty
// user id means the middleware did not run on this route; reject with 401
// rather than letting a blank id reach the service layer.
func ctxUser(c echo.Context) (userID, role string, err error) {
	userID, _ = c.Get(middleware.ContextUserID).(string)
	if userID == "" {
		return "", "", echo.NewHTTPError(http.StatusUnauthorized, "missing authentication claims")
	}

	role, _ = c.Get(middleware.ContextRole).(string)
	return userID, role, nil
}
