package middleware

import (
	"net/http"
	"time"

	echojwt "github.com/labstack/echo-jwt/v4"
	"github.com/labstack/echo/v4"

	"saaransh/internal/auth"
	"saaransh/internal/errors"
)

const (
	// ClientCookieName holds the signed client token.
	ClientCookieName = "saaransh_client"

	clientTokenKey = "client_token"
	clientIDKey    = "client_id"
)

// ClientToken parses the client cookie when present. Missing, expired or forged tokens
// are ignored so that EnsureClient can replace them.
func ClientToken(jwtService *auth.JWTService) echo.MiddlewareFunc {
	return echojwt.WithConfig(echojwt.Config{
		TokenLookup: "cookie:" + ClientCookieName,
		ContextKey:  clientTokenKey,
		ParseTokenFunc: func(c echo.Context, token string) (interface{}, error) {
			return jwtService.ValidateToken(token)
		},
		ErrorHandler: func(c echo.Context, err error) error {
			return nil
		},
		ContinueOnIgnoredError: true,
	})
}

// EnsureClient resolves the client id from the parsed token, minting a new id and cookie
// when there is none.
func EnsureClient(jwtService *auth.JWTService, secureCookie bool) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			if claims, ok := c.Get(clientTokenKey).(*auth.ClientClaims); ok {
				c.Set(clientIDKey, claims.ClientID)
				return next(c)
			}

			id := auth.NewClientID()
			signed, err := jwtService.GenerateClientToken(id)
			if err != nil {
				return echo.NewHTTPError(http.StatusInternalServerError, errors.ErrorResponse{
					Error: "failed to issue client token",
					Code:  "INTERNAL_ERROR",
				})
			}

			c.SetCookie(&http.Cookie{
				Name:     ClientCookieName,
				Value:    signed,
				Path:     "/",
				Expires:  time.Now().Add(jwtService.TTL()),
				MaxAge:   int(jwtService.TTL().Seconds()),
				HttpOnly: true,
				Secure:   secureCookie,
				SameSite: http.SameSiteLaxMode,
			})
			c.Set(clientIDKey, id)
			return next(c)
		}
	}
}

// ClientID returns the id resolved by EnsureClient.
func ClientID(c echo.Context) string {
	id, _ := c.Get(clientIDKey).(string)
	return id
}
