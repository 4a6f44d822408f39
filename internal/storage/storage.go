// Package storage provides per-client key/value storage for session state.
package storage

import (
	"context"
	"errors"
)

// ErrUnavailable wraps backend failures, as opposed to a key simply being absent.
var ErrUnavailable = errors.New("storage unavailable")

// Storage is a client's key/value area, in the manner of browser local storage.
type Storage interface {
	// GetItem returns the value for key. ok is false when the key is absent.
	GetItem(ctx context.Context, key string) (value []byte, ok bool, err error)
	SetItem(ctx context.Context, key string, value []byte) error
	RemoveItem(ctx context.Context, key string) error
}

// Provider hands out the storage area of a client.
type Provider interface {
	For(clientID string) Storage
}
