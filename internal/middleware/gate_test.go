package middleware

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"saaransh/internal/auth"
	"saaransh/internal/session"
	"saaransh/internal/storage"
)

type unavailableStorage struct{}

func (unavailableStorage) GetItem(context.Context, string) ([]byte, bool, error) {
	return nil, false, storage.ErrUnavailable
}
func (unavailableStorage) SetItem(context.Context, string, []byte) error { return storage.ErrUnavailable }
func (unavailableStorage) RemoveItem(context.Context, string) error     { return storage.ErrUnavailable }

// gateFor builds a gate in the requested state.
func gateFor(t *testing.T, state auth.State) *auth.Gate {
	t.Helper()
	ctx := context.Background()
	cred, err := auth.NewFixedCredential("a@b.c", "pw", "1", bcrypt.MinCost)
	require.NoError(t, err)

	area := storage.Storage(storage.NewMemory().For("c"))
	if state == auth.StateUnknown {
		area = unavailableStorage{}
	}
	gate := auth.NewGate(session.NewStore(area), cred, auth.Identity{})
	if state == auth.StateUnknown {
		require.Error(t, gate.Restore(ctx))
		return gate
	}
	require.NoError(t, gate.Restore(ctx))
	if state == auth.StateAuthenticated {
		ok, err := gate.Login(ctx, auth.Credentials{Email: "a@b.c", Password: "pw", OTP: "1"})
		require.NoError(t, err)
		require.True(t, ok)
	}
	return gate
}

func serveGuarded(gate *auth.Gate, guardMW echo.MiddlewareFunc) *httptest.ResponseRecorder {
	e := echo.New()
	h := guardMW(func(c echo.Context) error {
		return c.String(http.StatusOK, "rendered")
	})
	e.GET("/page", h, func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			if gate != nil {
				c.Set(gateKey, gate)
			}
			return next(c)
		}
	})

	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/page", nil))
	return rec
}

func TestGuards(t *testing.T) {
	tests := []struct {
		name         string
		state        auth.State
		guard        echo.MiddlewareFunc
		wantStatus   int
		wantLocation string
	}{
		{"protected renders when authenticated", auth.StateAuthenticated, RequireAuthenticated("/login"), http.StatusOK, ""},
		{"protected redirects anonymous", auth.StateAnonymous, RequireAuthenticated("/login"), http.StatusFound, "/login"},
		{"protected waits while unknown", auth.StateUnknown, RequireAuthenticated("/login"), http.StatusServiceUnavailable, ""},
		{"public renders when anonymous", auth.StateAnonymous, RequireAnonymous("/home"), http.StatusOK, ""},
		{"public redirects authenticated", auth.StateAuthenticated, RequireAnonymous("/home"), http.StatusFound, "/home"},
		{"public waits while unknown", auth.StateUnknown, RequireAnonymous("/home"), http.StatusServiceUnavailable, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := serveGuarded(gateFor(t, tt.state), tt.guard)

			assert.Equal(t, tt.wantStatus, rec.Code)
			assert.Equal(t, tt.wantLocation, rec.Header().Get(echo.HeaderLocation))
			switch tt.wantStatus {
			case http.StatusOK:
				assert.Equal(t, "rendered", rec.Body.String())
			case http.StatusServiceUnavailable:
				assert.Equal(t, "1", rec.Header().Get("Retry-After"))
				assert.JSONEq(t, `{"status":"loading","message":"Loading..."}`, rec.Body.String())
			}
		})
	}
}

func TestGuards_MissingGateIsUnknown(t *testing.T) {
	rec := serveGuarded(nil, RequireAuthenticated("/login"))
	assert.Equal(t, http.StatusServiceUnavailable, rec.Code)
}

type stubOpener struct {
	gate     *auth.Gate
	err      error
	clientID string
}

func (s *stubOpener) Open(_ context.Context, clientID string) (*auth.Gate, error) {
	s.clientID = clientID
	return s.gate, s.err
}

func TestLoadGate(t *testing.T) {
	gate := gateFor(t, auth.StateAnonymous)
	opener := &stubOpener{gate: gate}

	e := echo.New()
	e.GET("/page", func(c echo.Context) error {
		assert.Same(t, gate, GateFrom(c))
		return c.NoContent(http.StatusNoContent)
	}, func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			c.Set(clientIDKey, "client-7")
			return next(c)
		}
	}, LoadGate(opener))

	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/page", nil))

	assert.Equal(t, http.StatusNoContent, rec.Code)
	assert.Equal(t, "client-7", opener.clientID)
}
