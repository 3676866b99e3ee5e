package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"
)

// ctxToken extracts the raw bearer token injected by the BearerToken
// middleware. An empty value means the middleware never ran on this
// route, which is a wiring mistake; fail closed with 401.
func ctxToken(c echo.Context) (string, error) {
	token, _ := c.Get("token").(string)
	if token == "" {
		return "", echo.NewHTTPError(http.StatusUnauthorized, "missing bearer token")
	}
	return token, nil
}
