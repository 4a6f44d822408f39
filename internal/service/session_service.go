package service

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"saaransh/internal/auth"
	"saaransh/internal/errors"
	"saaransh/internal/session"
	"saaransh/internal/storage"
)

// SessionService opens the auth gate of a client.
type SessionService interface {
	// Open builds the client's gate and restores it from storage. The gate is returned
	// even on error, in which case it is still Unknown.
	Open(ctx context.Context, clientID string) (*auth.Gate, error)
}

type sessionService struct {
	provider storage.Provider
	verifier auth.Verifier
	identity auth.Identity
	opts     []auth.Option
	logger   *zap.Logger
}

// NewSessionService creates a new session service.
func NewSessionService(provider storage.Provider, verifier auth.Verifier, identity auth.Identity, logger *zap.Logger, opts ...auth.Option) SessionService {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &sessionService{
		provider: provider,
		verifier: verifier,
		identity: identity,
		opts:     opts,
		logger:   logger,
	}
}

func (s *sessionService) Open(ctx context.Context, clientID string) (*auth.Gate, error) {
	log := s.logger.With(zap.String("client_id", clientID))
	opts := append([]auth.Option{auth.WithLogger(log)}, s.opts...)
	gate := auth.NewGate(session.NewStore(s.provider.For(clientID)), s.verifier, s.identity, opts...)

	if err := gate.Restore(ctx); err != nil {
		log.Warn("session restore failed", zap.Error(err))
		return gate, fmt.Errorf("%w: %v", errors.ErrSessionUnavailable, err)
	}
	return gate, nil
}
