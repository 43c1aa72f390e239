package service

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/tzy-lab/paperdesk/internal/logger"
	"github.com/tzy-lab/paperdesk/internal/store"
	"github.com/tzy-lab/paperdesk/models"
)

type clientNotebookService struct {
	localStore *store.ClientStorages
	logger     *logger.Logger

	now func() time.Time
}

func NewClientNotebookService(localStore *store.ClientStorages, logger *logger.Logger) ClientNotebookService {
	return &clientNotebookService{localStore: localStore, logger: logger, now: time.Now}
}

func (n *clientNotebookService) Create(ctx context.Context, note models.Note) (models.Note, error) {
	if strings.TrimSpace(note.Title) == "" {
		return models.Note{}, fmt.Errorf("note title is required")
	}

	note.ID = uuid.NewString()
	note.CreatedAt = n.now()
	note.UpdatedAt = note.CreatedAt

	if err := n.localStore.NotebookRepository.SaveNote(ctx, note); err != nil {
		return models.Note{}, fmt.Errorf("create note: %w", err)
	}

	return note, nil
}

func (n *clientNotebookService) Get(ctx context.Context, id string) (models.Note, error) {
	note, err := n.localStore.NotebookRepository.GetNote(ctx, id)
	if err != nil {
		return models.Note{}, fmt.Errorf("get note: %w", err)
	}
	return note, nil
}

func (n *clientNotebookService) List(ctx context.Context) ([]models.Note, error) {
	notes, err := n.localStore.NotebookRepository.ListNotes(ctx)
	if err != nil {
		return nil, fmt.Errorf("list notes: %w", err)
	}
	return notes, nil
}

func (n *clientNotebookService) Update(ctx context.Context, note models.Note) error {
	if note.ID == "" {
		return fmt.Errorf("note id is required")
	}

	note.UpdatedAt = n.now()

	if err := n.localStore.NotebookRepository.UpdateNote(ctx, note); err != nil {
		return fmt.Errorf("update note: %w", err)
	}
	return nil
}

func (n *clientNotebookService) Delete(ctx context.Context, id string) error {
	if err := n.localStore.NotebookRepository.DeleteNote(ctx, id); err != nil {
		return fmt.Errorf("delete note: %w", err)
	}
	return nil
}
