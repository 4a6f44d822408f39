package auth

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"go.uber.org/zap"

	"saaransh/internal/model"
	"saaransh/internal/session"
)

// State is the authentication state of a client.
type State int

const (
	// StateUnknown means persisted storage has not been read yet.
	StateUnknown State = iota
	// StateAnonymous means nobody is signed in.
	StateAnonymous
	// StateAuthenticated means a user is signed in.
	StateAuthenticated
)

func (s State) String() string {
	switch s {
	case StateAnonymous:
		return "anonymous"
	case StateAuthenticated:
		return "authenticated"
	default:
		return "unknown"
	}
}

// MarshalText renders the state by name.
func (s State) MarshalText() ([]byte, error) {
	return []byte(s.String()), nil
}

// ErrStateUnknown is returned by Login and Logout before Restore has succeeded.
var ErrStateUnknown = errors.New("session state not restored")

// Identity is the user and location granted by a successful login.
type Identity struct {
	User     model.User
	Location string
}

// Snapshot is a consistent view of a gate.
type Snapshot struct {
	State   State
	User    *model.User
	Session *model.Session
}

// Gate is the login state machine of one client. It starts Unknown, becomes Anonymous or
// Authenticated on Restore, and afterwards moves only through Login and Logout.
type Gate struct {
	store    *session.Store
	verifier Verifier
	identity Identity
	delay    time.Duration
	now      func() time.Time
	logger   *zap.Logger

	mu      sync.RWMutex
	state   State
	user    *model.User
	session *model.Session
}

// Option configures a Gate.
type Option func(*Gate)

// WithLoginDelay makes Login wait d before answering, like a remote check would.
func WithLoginDelay(d time.Duration) Option {
	return func(g *Gate) { g.delay = d }
}

// WithClock overrides the time source used for lastLogin.
func WithClock(now func() time.Time) Option {
	return func(g *Gate) { g.now = now }
}

// WithLogger attaches a logger.
func WithLogger(logger *zap.Logger) Option {
	return func(g *Gate) { g.logger = logger }
}

// NewGate creates a gate in the Unknown state.
func NewGate(store *session.Store, verifier Verifier, identity Identity, opts ...Option) *Gate {
	g := &Gate{
		store:    store,
		verifier: verifier,
		identity: identity,
		now:      time.Now,
		logger:   zap.NewNop(),
	}
	for _, opt := range opts {
		opt(g)
	}
	return g
}

// Restore reads persisted storage once and leaves Unknown. A corrupt persisted pair is
// discarded and yields Anonymous; a storage failure keeps the gate Unknown.
func (g *Gate) Restore(ctx context.Context) error {
	g.mu.Lock()
	defer g.mu.Unlock()

	if g.state != StateUnknown {
		return nil
	}

	user, sess, err := g.store.Load(ctx)
	switch {
	case errors.Is(err, session.ErrCorrupt):
		g.logger.Warn("discarding corrupt persisted session", zap.Error(err))
		if clearErr := g.store.Clear(ctx); clearErr != nil {
			g.logger.Warn("clear corrupt session", zap.Error(clearErr))
		}
		g.state = StateAnonymous
	case err != nil:
		return fmt.Errorf("restore session: %w", err)
	case user == nil:
		g.state = StateAnonymous
	default:
		g.user, g.session, g.state = user, sess, StateAuthenticated
	}
	return nil
}

// Login checks creds against the verifier. On a match it creates and persists the user
// and session and returns true. On a mismatch it returns false and changes nothing. A
// failed save clears the persisted pair and leaves the gate Anonymous.
// Errors are reserved for storage failures, cancellation and calling before Restore.
func (g *Gate) Login(ctx context.Context, creds Credentials) (bool, error) {
	if g.State() == StateUnknown {
		return false, ErrStateUnknown
	}

	if g.delay > 0 {
		timer := time.NewTimer(g.delay)
		defer timer.Stop()
		select {
		case <-ctx.Done():
			return false, ctx.Err()
		case <-timer.C:
		}
	}

	if !g.verifier.Verify(creds) {
		g.logger.Info("login rejected")
		return false, nil
	}

	user := g.identity.User
	sess := &model.Session{Location: g.identity.Location, LastLogin: g.now()}
	if err := g.store.Save(ctx, &user, sess); err != nil {
		if clearErr := g.store.Clear(ctx); clearErr != nil {
			g.logger.Warn("clear partially saved session", zap.Error(clearErr))
		}
		g.mu.Lock()
		g.user, g.session, g.state = nil, nil, StateAnonymous
		g.mu.Unlock()
		return false, fmt.Errorf("persist session: %w", err)
	}

	g.mu.Lock()
	g.user, g.session, g.state = &user, sess, StateAuthenticated
	g.mu.Unlock()

	g.logger.Info("login accepted", zap.Uint("user_id", user.ID))
	return true, nil
}

// Logout removes the persisted pair and forgets the user.
func (g *Gate) Logout(ctx context.Context) error {
	if g.State() == StateUnknown {
		return ErrStateUnknown
	}
	if err := g.store.Clear(ctx); err != nil {
		return fmt.Errorf("clear session: %w", err)
	}

	g.mu.Lock()
	g.user, g.session, g.state = nil, nil, StateAnonymous
	g.mu.Unlock()
	return nil
}

// State returns the current state.
func (g *Gate) State() State {
	g.mu.RLock()
	defer g.mu.RUnlock()
	return g.state
}

// IsAuthenticated reports whether a user is present.
func (g *Gate) IsAuthenticated() bool {
	g.mu.RLock()
	defer g.mu.RUnlock()
	return g.user != nil
}

// Snapshot returns copies of the state, user and session.
func (g *Gate) Snapshot() Snapshot {
	g.mu.RLock()
	defer g.mu.RUnlock()

	snap := Snapshot{State: g.state}
	if g.user != nil {
		u := *g.user
		snap.User = &u
	}
	if g.session != nil {
		s := *g.session
		snap.Session = &s
	}
	return snap
}
