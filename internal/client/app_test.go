package client

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/tzy-lab/paperdesk/internal/config"
	"github.com/tzy-lab/paperdesk/internal/logger"
	"github.com/tzy-lab/paperdesk/internal/mock"
	"github.com/tzy-lab/paperdesk/internal/service"
	"github.com/tzy-lab/paperdesk/internal/tui"
	"github.com/tzy-lab/paperdesk/models"
)

// fakeUI — скриптуемая замена TUI для проверки жизненного цикла
type fakeUI struct {
	loginFlow func(ctx context.Context) (models.Session, error)
	mainLoop  func(ctx context.Context, session models.Session) (bool, error)

	loginCalls int
	mainCalls  int
}

func (f *fakeUI) LoginFlow(ctx context.Context) (models.Session, error) {
	f.loginCalls++
	return f.loginFlow(ctx)
}

func (f *fakeUI) MainLoop(ctx context.Context, session models.Session) (bool, error) {
	f.mainCalls++
	return f.mainLoop(ctx, session)
}

func newTestApp(t *testing.T, ctrl *gomock.Controller, ui *fakeUI) (*App, *mock.MockClientAuthService, *mock.MockClientUsageJob) {
	t.Helper()

	mockAuth := mock.NewMockClientAuthService(ctrl)
	mockJob := mock.NewMockClientUsageJob(ctrl)

	services := &service.ClientServices{
		AuthService: mockAuth,
		UsageJob:    mockJob,
	}

	app, err := NewApp(services, ui, config.ClientWorkers{UsageFlushInterval: time.Minute}, logger.Nop())
	require.NoError(t, err)
	return app, mockAuth, mockJob
}

func TestApp_ResumeSkipsWelcome(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	restored := models.Session{
		User:  models.User{Username: "TZY", UserType: models.UserTypeUser},
		Token: "tok",
	}

	var seen models.Session
	ui := &fakeUI{
		mainLoop: func(_ context.Context, session models.Session) (bool, error) {
			seen = session
			return false, nil
		},
	}

	app, mockAuth, mockJob := newTestApp(t, ctrl, ui)

	mockAuth.EXPECT().RestoreSession(gomock.Any()).Return(restored, nil)
	mockJob.EXPECT().Start(gomock.Any(), time.Minute)
	mockJob.EXPECT().Stop()

	require.NoError(t, app.Run())

	// валидная сессия ведёт сразу в главный экран, минуя вход
	assert.Zero(t, ui.loginCalls)
	assert.Equal(t, 1, ui.mainCalls)
	assert.Equal(t, restored, seen)
}

func TestApp_ExpiredSessionFallsBackToLogin(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	issued := models.Session{User: models.User{Username: "TZY"}, Token: "fresh"}

	var seen models.Session
	ui := &fakeUI{
		loginFlow: func(context.Context) (models.Session, error) {
			return issued, nil
		},
		mainLoop: func(_ context.Context, session models.Session) (bool, error) {
			seen = session
			return false, nil
		},
	}

	app, mockAuth, mockJob := newTestApp(t, ctrl, ui)

	mockAuth.EXPECT().RestoreSession(gomock.Any()).Return(models.Session{}, service.ErrSessionExpired)
	mockJob.EXPECT().Start(gomock.Any(), time.Minute)
	mockJob.EXPECT().Stop()

	require.NoError(t, app.Run())

	assert.Equal(t, 1, ui.loginCalls)
	assert.Equal(t, issued, seen)
}

func TestApp_UserQuitDuringLoginIsNotAnError(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	ui := &fakeUI{
		loginFlow: func(context.Context) (models.Session, error) {
			return models.Session{}, tui.ErrUserQuit
		},
	}

	app, mockAuth, _ := newTestApp(t, ctrl, ui)

	mockAuth.EXPECT().RestoreSession(gomock.Any()).Return(models.Session{}, service.ErrSessionExpired)

	require.NoError(t, app.Run())
	assert.Zero(t, ui.mainCalls, "главный экран не запускается без сессии")
}

func TestApp_LogoutRerunsWholeCycle(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	restored := models.Session{User: models.User{Username: "TZY"}, Token: "tok"}

	ui := &fakeUI{
		loginFlow: func(context.Context) (models.Session, error) {
			// второй круг: пользователь закрывает программу на входе
			return models.Session{}, tui.ErrUserQuit
		},
		mainLoop: func(context.Context, models.Session) (bool, error) {
			return true, nil
		},
	}

	app, mockAuth, mockJob := newTestApp(t, ctrl, ui)

	gomock.InOrder(
		mockAuth.EXPECT().RestoreSession(gomock.Any()).Return(restored, nil),
		// после выхода сессия уже очищена сервисом
		mockAuth.EXPECT().RestoreSession(gomock.Any()).Return(models.Session{}, service.ErrSessionExpired),
	)
	mockJob.EXPECT().Start(gomock.Any(), time.Minute)
	mockJob.EXPECT().Stop()

	require.NoError(t, app.Run())

	assert.Equal(t, 1, ui.mainCalls)
	assert.Equal(t, 1, ui.loginCalls)
}

func TestApp_MainLoopErrorPropagates(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	boom := errors.New("terminal exploded")
	ui := &fakeUI{
		mainLoop: func(context.Context, models.Session) (bool, error) {
			return false, boom
		},
	}

	app, mockAuth, mockJob := newTestApp(t, ctrl, ui)

	mockAuth.EXPECT().RestoreSession(gomock.Any()).Return(models.Session{Token: "tok"}, nil)
	mockJob.EXPECT().Start(gomock.Any(), time.Minute)
	mockJob.EXPECT().Stop()

	assert.ErrorIs(t, app.Run(), boom)
}

func TestApp_RequiresServicesAndUI(t *testing.T) {
	_, err := NewApp(nil, nil, config.ClientWorkers{}, logger.Nop())
	assert.Error(t, err)
}
