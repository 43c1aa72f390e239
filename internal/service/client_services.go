package service

import (
	"time"

	"github.com/tzy-lab/paperdesk/internal/adapter"
	"github.com/tzy-lab/paperdesk/internal/logger"
	"github.com/tzy-lab/paperdesk/internal/store"
)

type ClientServices struct {
	AuthService     ClientAuthService
	CatalogService  ClientCatalogService
	HistoryService  ClientHistoryService
	UsageService    ClientUsageService
	UsageJob        ClientUsageJob
	NotebookService ClientNotebookService
	ProfileService  ClientProfileService
}

func NewClientServices(localStore *store.ClientStorages, serverAdapter adapter.ServerAdapter, sessionTTL time.Duration, log *logger.Logger) *ClientServices {
	usageSvc := NewClientUsageService(localStore, log)

	return &ClientServices{
		AuthService:     NewClientAuthService(localStore, serverAdapter, sessionTTL, log),
		CatalogService:  NewClientCatalogService(serverAdapter, log),
		HistoryService:  NewClientHistoryService(localStore, log),
		UsageService:    usageSvc,
		UsageJob:        NewClientUsageJob(usageSvc),
		NotebookService: NewClientNotebookService(localStore, log),
		ProfileService:  NewClientProfileService(localStore, log),
	}
}
