package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/tzy-lab/paperdesk/internal/adapter"
	"github.com/tzy-lab/paperdesk/internal/logger"
	"github.com/tzy-lab/paperdesk/internal/mock"
	"github.com/tzy-lab/paperdesk/internal/store"
	"github.com/tzy-lab/paperdesk/models"
)

const testSessionTTL = 7 * 24 * time.Hour

// newTestAuthSvc — хелпер для создания clientAuthService с моками
func newTestAuthSvc(
	t *testing.T,
	ctrl *gomock.Controller,
) (
	*clientAuthService,
	*mock.MockServerAdapter,
	*mock.MockSessionRepository,
) {
	t.Helper()
	mockAdapter := mock.NewMockServerAdapter(ctrl)
	mockSessions := mock.NewMockSessionRepository(ctrl)

	storages := &store.ClientStorages{SessionRepository: mockSessions}

	svc := NewClientAuthService(storages, mockAdapter, testSessionTTL, logger.Nop()).(*clientAuthService)

	return svc, mockAdapter, mockSessions
}

// ── Login ────────────────────────────────────────────────────────────────────

func TestClientAuthService_Login_Success(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, mockAdapter, mockSessions := newTestAuthSvc(t, ctrl)
	ctx := context.Background()

	issued := models.Session{
		User:  models.User{Username: "TZY", UserType: models.UserTypeUser},
		Token: "opaque-token",
	}

	gomock.InOrder(
		mockAdapter.EXPECT().Login(ctx, "TZY", "123456").Return(issued, nil),
		// сервис сам проставляет локальный срок жизни перед сохранением
		mockSessions.EXPECT().SaveSession(ctx, gomock.Any()).DoAndReturn(
			func(_ context.Context, s models.Session) error {
				assert.Equal(t, issued.User, s.User)
				assert.Equal(t, issued.Token, s.Token)
				assert.WithinDuration(t, time.Now().Add(testSessionTTL), s.ExpiresAt, time.Minute)
				return nil
			},
		),
	)

	got, err := svc.Login(ctx, "TZY", "123456")
	require.NoError(t, err)
	assert.Equal(t, issued.User, got.User)
	assert.False(t, got.ExpiresAt.IsZero())
}

func TestClientAuthService_Login_WrongCredentials(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, mockAdapter, _ := newTestAuthSvc(t, ctrl)
	ctx := context.Background()

	mockAdapter.EXPECT().Login(ctx, "TZY", "bad").
		Return(models.Session{}, adapter.ErrInvalidCredentials)

	_, err := svc.Login(ctx, "TZY", "bad")
	assert.ErrorIs(t, err, ErrWrongCredentials)
}

func TestClientAuthService_Login_EmptyCredentials(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	// ни адаптер, ни стор не должны быть затронуты
	svc, _, _ := newTestAuthSvc(t, ctrl)

	_, err := svc.Login(context.Background(), "  ", "")
	assert.ErrorIs(t, err, ErrEmptyCredentials)
}

func TestClientAuthService_Login_PersistFailure(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, mockAdapter, mockSessions := newTestAuthSvc(t, ctrl)
	ctx := context.Background()

	mockAdapter.EXPECT().Login(ctx, "TZY", "123456").
		Return(models.Session{Token: "tok"}, nil)
	mockSessions.EXPECT().SaveSession(ctx, gomock.Any()).
		Return(errors.New("disk I/O error"))

	_, err := svc.Login(ctx, "TZY", "123456")
	assert.ErrorContains(t, err, "persist session")
}

// ── Register ─────────────────────────────────────────────────────────────────

func TestClientAuthService_Register_Success(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, mockAdapter, _ := newTestAuthSvc(t, ctrl)
	ctx := context.Background()

	mockAdapter.EXPECT().Register(ctx, "alice", "secret", "alice@example.com").Return(nil)

	require.NoError(t, svc.Register(ctx, "alice", "secret", "secret", "alice@example.com"))
}

func TestClientAuthService_Register_PasswordMismatchNeverCallsAdapter(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	// никаких EXPECT: расхождение паролей отсекается локально
	svc, _, _ := newTestAuthSvc(t, ctrl)

	err := svc.Register(context.Background(), "alice", "secret", "typo", "")
	assert.ErrorIs(t, err, ErrPasswordMismatch)
}

func TestClientAuthService_Register_LoginTaken(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, mockAdapter, _ := newTestAuthSvc(t, ctrl)
	ctx := context.Background()

	mockAdapter.EXPECT().Register(ctx, "TZY", "secret", "").
		Return(adapter.ErrUserAlreadyExists)

	err := svc.Register(ctx, "TZY", "secret", "secret", "")
	assert.ErrorIs(t, err, ErrLoginAlreadyExists)
}

// ── RestoreSession ───────────────────────────────────────────────────────────

func TestClientAuthService_RestoreSession_Success(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, mockAdapter, mockSessions := newTestAuthSvc(t, ctrl)
	ctx := context.Background()

	stored := models.Session{
		User:      models.User{Username: "TZY", UserType: models.UserTypeUser},
		Token:     "opaque-token",
		ExpiresAt: time.Now().Add(time.Hour),
	}

	gomock.InOrder(
		mockSessions.EXPECT().GetSession(ctx).Return(stored, nil),
		mockAdapter.EXPECT().SetToken(stored.Token),
		mockAdapter.EXPECT().ValidateSession(ctx).Return(nil),
	)

	got, err := svc.RestoreSession(ctx)
	require.NoError(t, err)
	assert.Equal(t, stored, got)
}

func TestClientAuthService_RestoreSession_NothingStored(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, _, mockSessions := newTestAuthSvc(t, ctrl)
	ctx := context.Background()

	mockSessions.EXPECT().GetSession(ctx).
		Return(models.Session{}, store.ErrLocalSessionNotFound)

	_, err := svc.RestoreSession(ctx)
	assert.ErrorIs(t, err, ErrSessionExpired)
}

func TestClientAuthService_RestoreSession_BackendRejectsToken(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, mockAdapter, mockSessions := newTestAuthSvc(t, ctrl)
	ctx := context.Background()

	stored := models.Session{Token: "stale-token", ExpiresAt: time.Now().Add(time.Hour)}

	gomock.InOrder(
		mockSessions.EXPECT().GetSession(ctx).Return(stored, nil),
		mockAdapter.EXPECT().SetToken(stored.Token),
		mockAdapter.EXPECT().ValidateSession(ctx).Return(adapter.ErrUnauthorized),
		// отклонённая сессия должна быть удалена локально
		mockAdapter.EXPECT().SetToken(""),
		mockSessions.EXPECT().DeleteSession(ctx).Return(nil),
	)

	_, err := svc.RestoreSession(ctx)
	assert.ErrorIs(t, err, ErrSessionExpired)
}

func TestClientAuthService_RestoreSession_ServerUnavailableKeepsSession(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, mockAdapter, mockSessions := newTestAuthSvc(t, ctrl)
	ctx := context.Background()

	stored := models.Session{Token: "tok", ExpiresAt: time.Now().Add(time.Hour)}

	gomock.InOrder(
		mockSessions.EXPECT().GetSession(ctx).Return(stored, nil),
		mockAdapter.EXPECT().SetToken(stored.Token),
		mockAdapter.EXPECT().ValidateSession(ctx).Return(adapter.ErrBadGateway),
	)

	// недоступный сервер ≠ протухшая сессия: локальная запись остаётся
	_, err := svc.RestoreSession(ctx)
	assert.ErrorIs(t, err, ErrServerUnavailable)
}

// ── Logout ───────────────────────────────────────────────────────────────────

func TestClientAuthService_Logout_RemoteFailureStillClearsLocal(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, mockAdapter, mockSessions := newTestAuthSvc(t, ctrl)
	ctx := context.Background()

	gomock.InOrder(
		mockAdapter.EXPECT().Logout(ctx).Return(errors.New("connection refused")),
		mockAdapter.EXPECT().SetToken(""),
		mockSessions.EXPECT().DeleteSession(ctx).Return(nil),
	)

	assert.NoError(t, svc.Logout(ctx))
}

// ── LoginWithProvider ────────────────────────────────────────────────────────

func TestClientAuthService_LoginWithProvider_FailsFast(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, _, _ := newTestAuthSvc(t, ctrl)

	_, err := svc.LoginWithProvider(context.Background(), "wechat")
	assert.ErrorIs(t, err, ErrNotImplemented)
}

// ── sessionDeadline ──────────────────────────────────────────────────────────

func TestSessionDeadline_OpaqueTokenUsesTTL(t *testing.T) {
	svc := &clientAuthService{sessionTTL: time.Hour}
	now := time.Now()

	deadline := svc.sessionDeadline("not-a-jwt", now)
	assert.Equal(t, now.Add(time.Hour), deadline)
}

func TestTokenExpiry_NotAJWT(t *testing.T) {
	_, ok := tokenExpiry("opaque-token")
	assert.False(t, ok)
}
