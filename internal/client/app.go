package client

import (
	"context"
	"errors"

	"github.com/tzy-lab/paperdesk/internal/config"
	"github.com/tzy-lab/paperdesk/internal/logger"
	"github.com/tzy-lab/paperdesk/internal/service"
	"github.com/tzy-lab/paperdesk/internal/tui"
	"github.com/tzy-lab/paperdesk/internal/workers"
	"github.com/tzy-lab/paperdesk/models"
)

// UserInterface is what App needs from the terminal UI: the login flow
// producing a session, and the dashboard loop consuming one.
type UserInterface interface {
	LoginFlow(ctx context.Context) (models.Session, error)
	MainLoop(ctx context.Context, session models.Session) (logout bool, err error)
}

// App owns the process lifecycle: startup resume, the login flow when
// resume fails, the usage flush worker, and the dashboard loop. A logout
// from the dashboard re-runs the whole cycle.
type App struct {
	services   *service.ClientServices
	ui         UserInterface
	workersCfg config.ClientWorkers
	logger     *logger.Logger
}

func NewApp(services *service.ClientServices, ui UserInterface, workersCfg config.ClientWorkers, log *logger.Logger) (*App, error) {
	if services == nil || ui == nil {
		return nil, errors.New("client app: services and ui are required")
	}
	return &App{
		services:   services,
		ui:         ui,
		workersCfg: workersCfg,
		logger:     log,
	}, nil
}

// Run blocks until the user quits. Resume comes first: a persisted session
// that still validates skips the welcome flow entirely; a missing, expired
// or rejected one falls through to the login flow.
func (a *App) Run() error {
	ctx := a.logger.WithContext(context.Background())

	session, err := a.services.AuthService.RestoreSession(ctx)
	if err != nil {
		if !errors.Is(err, service.ErrSessionExpired) {
			// backend unreachable or local store broken: the stored
			// session stays, but the user has to log in by hand
			a.logger.Warn().Err(err).Msg("session resume failed")
		}

		session, err = a.ui.LoginFlow(ctx)
		if err != nil {
			if errors.Is(err, tui.ErrUserQuit) {
				return nil
			}
			return err
		}
	}

	ws := workers.New(
		workers.NewUsageFlush(ctx, a.services.UsageJob, a.workersCfg.UsageFlushInterval),
	)
	ws.Run()
	defer ws.Stop()

	logout, err := a.ui.MainLoop(ctx, session)
	if err != nil {
		return err
	}
	if logout {
		return a.Run()
	}

	return nil
}
