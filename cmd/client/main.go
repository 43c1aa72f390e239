package main

import (
	"fmt"

	"github.com/tzy-lab/paperdesk/internal/adapter"
	"github.com/tzy-lab/paperdesk/internal/client"
	"github.com/tzy-lab/paperdesk/internal/config"
	"github.com/tzy-lab/paperdesk/internal/logger"
	"github.com/tzy-lab/paperdesk/internal/service"
	"github.com/tzy-lab/paperdesk/internal/store"
	"github.com/tzy-lab/paperdesk/internal/tui"
	"github.com/tzy-lab/paperdesk/models"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	printBuildInfo()

	log := logger.NewClientLogger("paperdesk-client")
	cfg, err := config.GetClientConfig()
	if err != nil {
		log.Fatal().Err(err).Msg("error getting configs")
	}

	var serverAdapter adapter.ServerAdapter
	if cfg.App.Offline {
		serverAdapter = adapter.NewMockServerAdapter(log)
	} else {
		serverAdapter, err = adapter.NewHTTPServerAdapter(cfg.Adapter, log)
		if err != nil {
			log.Fatal().Err(err).Msg("create server adapter")
		}
	}

	localStorage, err := store.NewClientStorages(cfg.Storage, log)
	if err != nil {
		log.Fatal().Err(err).Msg("create local storage")
	}

	services := service.NewClientServices(localStorage, serverAdapter, cfg.App.SessionTTL, log)

	ui, err := tui.New(services, models.NewAppBuildInfo(buildVersion, buildDate, buildCommit), log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating ui")
	}

	app, err := client.NewApp(services, ui, cfg.Workers, log)
	if err != nil {
		log.Fatal().Err(err).Msg("init client app error")
	}

	if err = app.Run(); err != nil {
		log.Fatal().Err(err).Msg("client run error")
	}
}

func printBuildInfo() {
	if buildVersion == "" {
		buildVersion = "N/A"
	}
	if buildDate == "" {
		buildDate = "N/A"
	}
	if buildCommit == "" {
		buildCommit = "N/A"
	}

	fmt.Printf("Build version: %s\n", buildVersion)
	fmt.Printf("Build date: %s\n", buildDate)
	fmt.Printf("Build commit: %s\n", buildCommit)
}
