package middleware

import (
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/sidd-gupta05/getfly-project/internal/api/metrics"
	"github.com/sidd-gupta05/getfly-project/internal/core/domain"
	"github.com/sidd-gupta05/getfly-project/internal/core/service"
)

// PrincipalKey is the echo context key under which the Auth middleware
// stores the verified principal.
const PrincipalKey = "principal"

const bearerPrefix = "Bearer "

// ExtractToken parses an Authorization header value. The scheme is
// case-sensitive "Bearer" followed by exactly one space and a non-empty
// token; anything else is domain.ErrNoToken.
func ExtractToken(header string) (string, error) {
	if !strings.HasPrefix(header, bearerPrefix) {
		return "", domain.ErrNoToken
	}
	token := header[len(bearerPrefix):]
	if token == "" || strings.HasPrefix(token, " ") {
		return "", domain.ErrNoToken
	}
	return token, nil
}

// Auth verifies the bearer token and injects the principal into context.
func Auth(tokens *service.TokenService) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			token, err := ExtractToken(c.Request().Header.Get("Authorization"))
			if err != nil {
				metrics.AuthFailuresTotal.WithLabelValues("no_token").Inc()
				return echo.NewHTTPError(http.StatusUnauthorized, err.Error())
			}

			principal, err := tokens.Verify(token)
			if err != nil {
				metrics.AuthFailuresTotal.WithLabelValues("invalid_token").Inc()
				return echo.NewHTTPError(http.StatusUnauthorized, err.Error())
			}

			c.Set(PrincipalKey, principal)
			return next(c)
		}
	}
}
