package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"
)

// ctxToken returns the raw bearer token stored by the Auth middleware.
func ctxToken(c echo.Context) (string, error) {
	token, _ := c.Get("token").(string)
	if token == "" {
		return "", echo.NewHTTPError(http.StatusUnauthorized, "missing bearer token")
	}
	return token, nil
}
