package service

import (
	"context"
	"strings"

	"github.com/tzy-lab/paperdesk/internal/adapter"
	"github.com/tzy-lab/paperdesk/internal/logger"
	"github.com/tzy-lab/paperdesk/models"
)

type clientCatalogService struct {
	adapter adapter.ServerAdapter
	logger  *logger.Logger
}

func NewClientCatalogService(serverAdapter adapter.ServerAdapter, logger *logger.Logger) ClientCatalogService {
	return &clientCatalogService{adapter: serverAdapter, logger: logger}
}

func (c *clientCatalogService) Subjects(ctx context.Context) ([]models.Subject, error) {
	subjects, err := c.adapter.Subjects(ctx)
	if err != nil {
		return nil, mapAdapterError(err)
	}
	return subjects, nil
}

func (c *clientCatalogService) Search(ctx context.Context, query string) ([]models.SearchResult, error) {
	if strings.TrimSpace(query) == "" {
		return nil, nil
	}

	results, err := c.adapter.SearchPapers(ctx, query)
	if err != nil {
		return nil, mapAdapterError(err)
	}
	return results, nil
}
