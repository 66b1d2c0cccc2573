package http

import (
	"errors"
	"net/http"
	"strings"

	"pizzadelivery/internal/core/domain/model/identity"
	"pizzadelivery/internal/core/ports"
	"pizzadelivery/internal/pkg/errs"

	"github.com/labstack/echo/v4"
)

const (
	claimsContextKey      = "claims"
	bearerTokenContextKey = "bearer_token"
)

// excludedPaths are served without a token: health probes and API docs.
func excludedPaths() map[string]struct{} {
	return map[string]struct{}{
		"/health":       {},
		"/docs":         {},
		"/openapi.json": {},
		"/favicon.ico":  {},
	}
}

// TokenAuthMiddleware introspects the bearer token on every request and
// stores the resulting claims plus the raw token in the echo context. The
// raw token is kept because downstream service calls forward the caller's
// own credentials.
func TokenAuthMiddleware(identityClient ports.IdentityClient) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			if _, ok := excludedPaths()[c.Request().URL.Path]; ok {
				return next(c)
			}

			token, err := extractBearerToken(c.Request().Header.Get(echo.HeaderAuthorization))
			if err != nil {
				return writeError(c, err)
			}

			claims, err := identityClient.Introspect(c.Request().Context(), token)
			if err != nil {
				return writeError(c, err)
			}

			c.Set(claimsContextKey, claims)
			c.Set(bearerTokenContextKey, token)
			return next(c)
		}
	}
}

// RequireOperation gates a route on the declarative permission table.
func RequireOperation(op identity.Operation) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			claims := claimsFrom(c)
			if !identity.Allowed(op, claims.Role) {
				return writeError(c, errs.NewForbiddenError("operation not permitted for role "+claims.Role.String()))
			}
			return next(c)
		}
	}
}

func extractBearerToken(header string) (string, error) {
	if header == "" {
		return "", errs.NewUnauthorizedError("missing Authorization header")
	}

	const prefix = "Bearer "
	if !strings.HasPrefix(header, prefix) {
		return "", errs.NewUnauthorizedError("Authorization header is not a bearer token")
	}

	token := strings.TrimSpace(strings.TrimPrefix(header, prefix))
	if token == "" {
		return "", errs.NewUnauthorizedError("empty bearer token")
	}

	return token, nil
}

func claimsFrom(c echo.Context) identity.Claims {
	claims, _ := c.Get(claimsContextKey).(identity.Claims)
	return claims
}

func bearerTokenFrom(c echo.Context) string {
	token, _ := c.Get(bearerTokenContextKey).(string)
	return token
}

// writeError maps the application error taxonomy onto HTTP statuses.
func writeError(c echo.Context, err error) error {
	status := statusFor(err)
	return c.JSON(status, ErrorResponse{
		Code:    status,
		Message: err.Error(),
	})
}

func statusFor(err error) int {
	switch {
	case errors.Is(err, errs.ErrUnauthorized):
		return http.StatusUnauthorized
	case errors.Is(err, errs.ErrForbidden):
		return http.StatusForbidden
	case errors.Is(err, errs.ErrObjectNotFound):
		return http.StatusNotFound
	case errors.Is(err, errs.ErrConflict):
		return http.StatusConflict
	case errors.Is(err, errs.ErrValueIsInvalid), errors.Is(err, errs.ErrValueIsRequired):
		return http.StatusBadRequest
	case errors.Is(err, errs.ErrUpstreamUnavailable):
		return http.StatusServiceUnavailable
	default:
		return http.StatusInternalServerError
	}
}
