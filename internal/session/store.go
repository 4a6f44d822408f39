// Package session persists the signed-in user and session metadata to key/value storage.
//
// It is the only code that knows the persisted layout: two entries, "user" and
// "userSession", each holding the JSON of model.User and model.Session.
package session

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"saaransh/internal/model"
	"saaransh/internal/storage"
)

const (
	// UserKey is the storage key of the persisted user.
	UserKey = "user"
	// SessionKey is the storage key of the persisted session metadata.
	SessionKey = "userSession"
)

// ErrCorrupt is returned by Load when persisted entries cannot be decoded, decode to
// null or a user without id and email, or only one of the pair is present.
var ErrCorrupt = errors.New("corrupt persisted session")

// Store loads and saves the user/session pair.
type Store struct {
	storage storage.Storage
}

// NewStore creates a store over one client's storage area.
func NewStore(s storage.Storage) *Store {
	return &Store{storage: s}
}

// Load reads the persisted pair. Both results are nil when nothing is stored.
func (s *Store) Load(ctx context.Context) (*model.User, *model.Session, error) {
	rawUser, hasUser, err := s.storage.GetItem(ctx, UserKey)
	if err != nil {
		return nil, nil, fmt.Errorf("load user: %w", err)
	}
	rawSession, hasSession, err := s.storage.GetItem(ctx, SessionKey)
	if err != nil {
		return nil, nil, fmt.Errorf("load session: %w", err)
	}

	if !hasUser && !hasSession {
		return nil, nil, nil
	}
	if hasUser != hasSession {
		return nil, nil, fmt.Errorf("%w: only one of %q and %q present", ErrCorrupt, UserKey, SessionKey)
	}

	var user *model.User
	if err := json.Unmarshal(rawUser, &user); err != nil {
		return nil, nil, fmt.Errorf("%w: decode user: %v", ErrCorrupt, err)
	}
	if user == nil || user.ID == 0 || user.Email == "" {
		return nil, nil, fmt.Errorf("%w: user has no identity", ErrCorrupt)
	}
	var sess *model.Session
	if err := json.Unmarshal(rawSession, &sess); err != nil {
		return nil, nil, fmt.Errorf("%w: decode session: %v", ErrCorrupt, err)
	}
	if sess == nil {
		return nil, nil, fmt.Errorf("%w: session is null", ErrCorrupt)
	}
	return user, sess, nil
}

// Save writes both entries.
func (s *Store) Save(ctx context.Context, user *model.User, sess *model.Session) error {
	rawUser, err := json.Marshal(user)
	if err != nil {
		return fmt.Errorf("marshal user: %w", err)
	}
	rawSession, err := json.Marshal(sess)
	if err != nil {
		return fmt.Errorf("marshal session: %w", err)
	}

	if err := s.storage.SetItem(ctx, UserKey, rawUser); err != nil {
		return fmt.Errorf("save user: %w", err)
	}
	if err := s.storage.SetItem(ctx, SessionKey, rawSession); err != nil {
		return fmt.Errorf("save session: %w", err)
	}
	return nil
}

// Clear removes both entries.
func (s *Store) Clear(ctx context.Context) error {
	if err := s.storage.RemoveItem(ctx, UserKey); err != nil {
		return fmt.Errorf("clear user: %w", err)
	}
	if err := s.storage.RemoveItem(ctx, SessionKey); err != nil {
		return fmt.Errorf("clear session: %w", err)
	}
	return nil
}
