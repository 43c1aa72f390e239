package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/tzy-lab/paperdesk/internal/adapter"
	"github.com/tzy-lab/paperdesk/internal/logger"
	"github.com/tzy-lab/paperdesk/internal/store"
	"github.com/tzy-lab/paperdesk/models"
)

type clientAuthService struct {
	localStore *store.ClientStorages
	adapter    adapter.ServerAdapter
	sessionTTL time.Duration
	logger     *logger.Logger
}

func NewClientAuthService(localStore *store.ClientStorages, serverAdapter adapter.ServerAdapter, sessionTTL time.Duration, logger *logger.Logger) ClientAuthService {
	return &clientAuthService{
		localStore: localStore,
		adapter:    serverAdapter,
		sessionTTL: sessionTTL,
		logger:     logger,
	}
}

func (a *clientAuthService) Login(ctx context.Context, username, password string) (models.Session, error) {
	username = strings.TrimSpace(username)
	if username == "" || password == "" {
		return models.Session{}, ErrEmptyCredentials
	}

	session, err := a.adapter.Login(ctx, username, password)
	if err != nil {
		return models.Session{}, mapAdapterError(err)
	}

	session.ExpiresAt = a.sessionDeadline(session.Token, time.Now())

	if err := a.localStore.SessionRepository.SaveSession(ctx, session); err != nil {
		return models.Session{}, fmt.Errorf("persist session: %w", err)
	}

	return session, nil
}

func (a *clientAuthService) Register(ctx context.Context, username, password, confirmPassword, email string) error {
	username = strings.TrimSpace(username)
	if username == "" || password == "" {
		return ErrEmptyCredentials
	}
	// mismatch is caught locally, the backend is never asked
	if password != confirmPassword {
		return ErrPasswordMismatch
	}

	if err := a.adapter.Register(ctx, username, password, email); err != nil {
		return mapAdapterError(err)
	}

	return nil
}

func (a *clientAuthService) RestoreSession(ctx context.Context) (models.Session, error) {
	log := logger.FromContext(ctx)

	session, err := a.localStore.SessionRepository.GetSession(ctx)
	if err != nil {
		if errors.Is(err, store.ErrLocalSessionNotFound) {
			return models.Session{}, ErrSessionExpired
		}
		return models.Session{}, fmt.Errorf("load persisted session: %w", err)
	}

	// if the token itself carries an earlier expiry, skip the network round trip
	if deadline, ok := tokenExpiry(session.Token); ok && time.Now().After(deadline) {
		log.Info().
			Str("func", "clientAuthService.RestoreSession").
			Msg("persisted token is past its embedded expiry, clearing session")
		a.clearLocalSession(ctx)
		return models.Session{}, ErrSessionExpired
	}

	a.adapter.SetToken(session.Token)

	if err := a.adapter.ValidateSession(ctx); err != nil {
		mapped := mapAdapterError(err)
		if errors.Is(mapped, ErrSessionExpired) {
			a.clearLocalSession(ctx)
			return models.Session{}, ErrSessionExpired
		}
		// an unreachable backend does not invalidate the stored session
		return models.Session{}, mapped
	}

	return session, nil
}

func (a *clientAuthService) Logout(ctx context.Context) error {
	log := logger.FromContext(ctx)

	if err := a.adapter.Logout(ctx); err != nil {
		log.Warn().Err(err).
			Str("func", "clientAuthService.Logout").
			Msg("remote logout failed, clearing local session anyway")
	}

	a.adapter.SetToken("")

	if err := a.localStore.SessionRepository.DeleteSession(ctx); err != nil {
		return fmt.Errorf("clear local session: %w", err)
	}

	return nil
}

func (a *clientAuthService) LoginWithProvider(_ context.Context, provider string) (models.Session, error) {
	return models.Session{}, fmt.Errorf("%w: login via %s", ErrNotImplemented, provider)
}

// sessionDeadline stamps the local expiry: now + TTL, clamped to the token's
// own exp claim when the token is a JWT carrying one.
func (a *clientAuthService) sessionDeadline(token string, now time.Time) time.Time {
	deadline := now.Add(a.sessionTTL)
	if tokenDeadline, ok := tokenExpiry(token); ok && tokenDeadline.Before(deadline) {
		return tokenDeadline
	}
	return deadline
}

// tokenExpiry peeks at the exp claim of a JWT without verifying its
// signature. Opaque tokens, or JWTs without exp, report false.
func tokenExpiry(token string) (time.Time, bool) {
	parsed, _, err := jwt.NewParser().ParseUnverified(token, jwt.MapClaims{})
	if err != nil {
		return time.Time{}, false
	}

	exp, err := parsed.Claims.GetExpirationTime()
	if err != nil || exp == nil {
		return time.Time{}, false
	}

	return exp.Time, true
}

func (a *clientAuthService) clearLocalSession(ctx context.Context) {
	log := logger.FromContext(ctx)

	a.adapter.SetToken("")
	if err := a.localStore.SessionRepository.DeleteSession(ctx); err != nil {
		log.Err(err).
			Str("func", "clientAuthService.clearLocalSession").
			Msg("failed to remove stale session")
	}
}
