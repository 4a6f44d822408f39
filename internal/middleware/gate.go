package middleware

import (
	"context"
	"net/http"

	"github.com/labstack/echo/v4"

	"saaransh/internal/auth"
)

const gateKey = "auth_gate"

// GateOpener builds the restored gate of a client.
type GateOpener interface {
	Open(ctx context.Context, clientID string) (*auth.Gate, error)
}

// LoadGate opens the gate of the current client. A gate that could not be restored is
// still attached so that guards can answer with the loading placeholder.
func LoadGate(opener GateOpener) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			gate, _ := opener.Open(c.Request().Context(), ClientID(c))
			if gate != nil {
				c.Set(gateKey, gate)
			}
			return next(c)
		}
	}
}

// GateFrom returns the gate attached by LoadGate, or nil.
func GateFrom(c echo.Context) *auth.Gate {
	gate, _ := c.Get(gateKey).(*auth.Gate)
	return gate
}

// LoadingResponse is rendered while a client's state is still unknown.
type LoadingResponse struct {
	Status  string `json:"status"`
	Message string `json:"message"`
}

// RequireAuthenticated renders the route only for signed-in clients and redirects
// anonymous ones to loginPath.
func RequireAuthenticated(loginPath string) echo.MiddlewareFunc {
	return guard(auth.StateAuthenticated, loginPath)
}

// RequireAnonymous renders the route only for anonymous clients and redirects signed-in
// ones to homePath.
func RequireAnonymous(homePath string) echo.MiddlewareFunc {
	return guard(auth.StateAnonymous, homePath)
}

func guard(want auth.State, redirect string) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			state := auth.StateUnknown
			if gate := GateFrom(c); gate != nil {
				state = gate.State()
			}

			switch state {
			case auth.StateUnknown:
				c.Response().Header().Set("Retry-After", "1")
				return c.JSON(http.StatusServiceUnavailable, LoadingResponse{Status: "loading", Message: "Loading..."})
			case want:
				return next(c)
			default:
				return c.Redirect(http.StatusFound, redirect)
			}
		}
	}
}
