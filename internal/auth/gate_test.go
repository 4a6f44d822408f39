package auth

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"saaransh/internal/model"
	"saaransh/internal/session"
	"saaransh/internal/storage"
)

var testIdentity = Identity{
	User: model.User{
		ID:     1,
		Name:   "Ishaan Saxena",
		Email:  validEmail,
		Role:   "Policy Analyst",
		Avatar: "https://placehold.co/40x40/E2E8F0/475569?text=I",
	},
	Location: "Delhi, India",
}

var fixedNow = time.Date(2025, 9, 20, 10, 30, 0, 0, time.UTC)

// failingStorage fails every operation.
type failingStorage struct{}

func (failingStorage) GetItem(context.Context, string) ([]byte, bool, error) {
	return nil, false, storage.ErrUnavailable
}
func (failingStorage) SetItem(context.Context, string, []byte) error { return storage.ErrUnavailable }
func (failingStorage) RemoveItem(context.Context, string) error     { return storage.ErrUnavailable }

// switchableStorage fails writes once failSet is raised.
type switchableStorage struct {
	storage.Storage
	failSet bool
}

func (s *switchableStorage) SetItem(ctx context.Context, key string, value []byte) error {
	if s.failSet {
		return storage.ErrUnavailable
	}
	return s.Storage.SetItem(ctx, key, value)
}

func newTestGate(t *testing.T, area storage.Storage, opts ...Option) *Gate {
	t.Helper()
	opts = append([]Option{WithClock(func() time.Time { return fixedNow })}, opts...)
	return NewGate(session.NewStore(area), newTestCredential(t), testIdentity, opts...)
}

func restoredGate(t *testing.T, area storage.Storage) *Gate {
	t.Helper()
	g := newTestGate(t, area)
	require.NoError(t, g.Restore(context.Background()))
	return g
}

func storedKeys(t *testing.T, area storage.Storage) []string {
	t.Helper()
	var keys []string
	for _, key := range []string{session.UserKey, session.SessionKey} {
		_, ok, err := area.GetItem(context.Background(), key)
		require.NoError(t, err)
		if ok {
			keys = append(keys, key)
		}
	}
	return keys
}

func TestGate_StartsUnknown(t *testing.T) {
	g := newTestGate(t, storage.NewMemory().For("c"))

	assert.Equal(t, StateUnknown, g.State())
	assert.False(t, g.IsAuthenticated())
	assert.Nil(t, g.Snapshot().User)
}

func TestGate_RestoreEmpty(t *testing.T) {
	g := restoredGate(t, storage.NewMemory().For("c"))

	assert.Equal(t, StateAnonymous, g.State())
	assert.False(t, g.IsAuthenticated())
}

func TestGate_LoginSuccess(t *testing.T) {
	ctx := context.Background()
	area := storage.NewMemory().For("c")
	g := restoredGate(t, area)

	ok, err := g.Login(ctx, Credentials{validEmail, validPassword, validOTP})
	require.NoError(t, err)
	assert.True(t, ok)

	snap := g.Snapshot()
	assert.Equal(t, StateAuthenticated, snap.State)
	require.NotNil(t, snap.User)
	assert.Equal(t, testIdentity.User, *snap.User)
	require.NotNil(t, snap.Session)
	assert.Equal(t, "Delhi, India", snap.Session.Location)
	assert.Equal(t, fixedNow, snap.Session.LastLogin)

	user, sess, err := session.NewStore(area).Load(ctx)
	require.NoError(t, err)
	assert.Equal(t, testIdentity.User, *user)
	assert.True(t, fixedNow.Equal(sess.LastLogin))
}

func TestGate_LoginFailureLeavesNoTrace(t *testing.T) {
	tests := []struct {
		name  string
		creds Credentials
	}{
		{"wrong otp", Credentials{validEmail, validPassword, "000000"}},
		{"wrong password", Credentials{validEmail, "hunter2", validOTP}},
		{"wrong email", Credentials{"a@b.c", validPassword, validOTP}},
		{"empty", Credentials{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			area := storage.NewMemory().For("c")
			g := restoredGate(t, area)

			ok, err := g.Login(context.Background(), tt.creds)
			require.NoError(t, err)
			assert.False(t, ok)
			assert.Equal(t, StateAnonymous, g.State())
			assert.False(t, g.IsAuthenticated())
			assert.Empty(t, storedKeys(t, area))
		})
	}
}

func TestGate_Logout(t *testing.T) {
	ctx := context.Background()
	area := storage.NewMemory().For("c")
	g := restoredGate(t, area)

	ok, err := g.Login(ctx, Credentials{validEmail, validPassword, validOTP})
	require.NoError(t, err)
	require.True(t, ok)

	require.NoError(t, g.Logout(ctx))
	assert.Equal(t, StateAnonymous, g.State())
	assert.Nil(t, g.Snapshot().User)
	assert.Nil(t, g.Snapshot().Session)
	assert.Empty(t, storedKeys(t, area))

	// Logging out twice is harmless.
	require.NoError(t, g.Logout(ctx))
}

func TestGate_RestoreAfterLogin(t *testing.T) {
	ctx := context.Background()
	area := storage.NewMemory().For("c")

	first := restoredGate(t, area)
	ok, err := first.Login(ctx, Credentials{validEmail, validPassword, validOTP})
	require.NoError(t, err)
	require.True(t, ok)

	second := restoredGate(t, area)
	snap := second.Snapshot()
	assert.Equal(t, StateAuthenticated, snap.State)
	assert.Equal(t, testIdentity.User, *snap.User)
	assert.True(t, fixedNow.Equal(snap.Session.LastLogin))
}

func TestGate_RestoreCorrupt(t *testing.T) {
	tests := []struct {
		name    string
		entries map[string]string
	}{
		{"malformed user", map[string]string{session.UserKey: "{", session.SessionKey: `{"location":"x","lastLogin":"2025-09-20T10:30:00Z"}`}},
		{"only user", map[string]string{session.UserKey: `{"id":1,"name":"n","email":"e","role":"r"}`}},
		{"only session", map[string]string{session.SessionKey: `{"location":"x","lastLogin":"2025-09-20T10:30:00Z"}`}},
		{"null pair", map[string]string{session.UserKey: "null", session.SessionKey: "null"}},
		{"empty user", map[string]string{session.UserKey: "{}", session.SessionKey: `{"location":"x","lastLogin":"2025-09-20T10:30:00Z"}`}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctx := context.Background()
			area := storage.NewMemory().For("c")
			for k, v := range tt.entries {
				require.NoError(t, area.SetItem(ctx, k, []byte(v)))
			}

			g := restoredGate(t, area)
			assert.Equal(t, StateAnonymous, g.State())
			assert.False(t, g.IsAuthenticated())
			assert.Nil(t, g.Snapshot().User)
			assert.Empty(t, storedKeys(t, area))
		})
	}
}

func TestGate_RestoreStorageFailure(t *testing.T) {
	g := newTestGate(t, failingStorage{})

	err := g.Restore(context.Background())
	require.Error(t, err)
	assert.True(t, errors.Is(err, storage.ErrUnavailable))
	assert.Equal(t, StateUnknown, g.State())
}

func TestGate_LoginBeforeRestore(t *testing.T) {
	g := newTestGate(t, storage.NewMemory().For("c"))

	ok, err := g.Login(context.Background(), Credentials{validEmail, validPassword, validOTP})
	assert.ErrorIs(t, err, ErrStateUnknown)
	assert.False(t, ok)
	assert.ErrorIs(t, g.Logout(context.Background()), ErrStateUnknown)
}

func TestGate_LoginPersistFailure(t *testing.T) {
	g := newTestGate(t, failingStorage{})
	g.state = StateAnonymous

	ok, err := g.Login(context.Background(), Credentials{validEmail, validPassword, validOTP})
	assert.Error(t, err)
	assert.False(t, ok)
	assert.Equal(t, StateAnonymous, g.State())
}

func TestGate_ReloginPersistFailureSignsOut(t *testing.T) {
	ctx := context.Background()
	area := &switchableStorage{Storage: storage.NewMemory().For("c")}
	g := restoredGate(t, area)

	ok, err := g.Login(ctx, Credentials{validEmail, validPassword, validOTP})
	require.NoError(t, err)
	require.True(t, ok)

	area.failSet = true
	ok, err = g.Login(ctx, Credentials{validEmail, validPassword, validOTP})
	assert.ErrorIs(t, err, storage.ErrUnavailable)
	assert.False(t, ok)
	assert.Equal(t, StateAnonymous, g.State())
	assert.False(t, g.IsAuthenticated())
	assert.Empty(t, storedKeys(t, area))
}

func TestGate_LoginDelayHonoursContext(t *testing.T) {
	g := newTestGate(t, storage.NewMemory().For("c"), WithLoginDelay(time.Hour))
	require.NoError(t, g.Restore(context.Background()))

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Millisecond)
	defer cancel()

	ok, err := g.Login(ctx, Credentials{validEmail, validPassword, validOTP})
	assert.ErrorIs(t, err, context.DeadlineExceeded)
	assert.False(t, ok)
	assert.Equal(t, StateAnonymous, g.State())
}

func TestGate_SnapshotIsACopy(t *testing.T) {
	ctx := context.Background()
	g := restoredGate(t, storage.NewMemory().For("c"))
	_, err := g.Login(ctx, Credentials{validEmail, validPassword, validOTP})
	require.NoError(t, err)

	snap := g.Snapshot()
	snap.User.Name = "changed"
	assert.Equal(t, "Ishaan Saxena", g.Snapshot().User.Name)
}

func TestState_String(t *testing.T) {
	assert.Equal(t, "unknown", StateUnknown.String())
	assert.Equal(t, "anonymous", StateAnonymous.String())
	assert.Equal(t, "authenticated", StateAuthenticated.String())
}
