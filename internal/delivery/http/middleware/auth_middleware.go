package middleware

import (
	"strings"

	"tiffin/internal/usecase"

	domainerrors "tiffin/internal/domain/errors"

	"github.com/labstack/echo/v4"
)

const (
	// ContextKeyAccessToken is the echo.Context key holding the bearer token.
	ContextKeyAccessToken = "accessToken"

	// ContextKeySession is the echo.Context key holding the validated session.
	ContextKeySession = "session"
)

// AuthMiddleware guards protected routes with session-token validation.
type AuthMiddleware struct {
	customerUC usecase.CustomerUsecase
}

// NewAuthMiddleware is the constructor for AuthMiddleware.
func NewAuthMiddleware(customerUC usecase.CustomerUsecase) *AuthMiddleware {
	return &AuthMiddleware{customerUC: customerUC}
}

// Authenticate validates the bearer token against the session store. The
// token is kept on the context because the account operations re-validate
// it themselves; the middleware only rejects requests that would fail anyway.
func (m *AuthMiddleware) Authenticate(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		authHeader := c.Request().Header.Get("Authorization")
		if authHeader == "" {
			return domainerrors.ErrNotLoggedIn
		}

		tokenString := strings.TrimPrefix(authHeader, "Bearer ")
		if tokenString == authHeader {
			return domainerrors.ErrNotLoggedIn
		}

		session, err := m.customerUC.ValidateSession(c.Request().Context(), tokenString)
		if err != nil {
			return err
		}

		c.Set(ContextKeyAccessToken, tokenString)
		c.Set(ContextKeySession, session)

		return next(c)
	}
}

// AccessToken extracts the bearer token stashed by Authenticate.
func AccessToken(c echo.Context) string {
	token, _ := c.Get(ContextKeyAccessToken).(string)

	return token
}
