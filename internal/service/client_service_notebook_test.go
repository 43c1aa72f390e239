package service

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/tzy-lab/paperdesk/internal/logger"
	"github.com/tzy-lab/paperdesk/internal/mock"
	"github.com/tzy-lab/paperdesk/internal/store"
	"github.com/tzy-lab/paperdesk/models"
)

func newTestNotebookSvc(t *testing.T, ctrl *gomock.Controller) (*clientNotebookService, *mock.MockNotebookRepository) {
	t.Helper()
	mockNotes := mock.NewMockNotebookRepository(ctrl)
	storages := &store.ClientStorages{NotebookRepository: mockNotes}
	svc := NewClientNotebookService(storages, logger.Nop()).(*clientNotebookService)
	return svc, mockNotes
}

func TestClientNotebookService_Create(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, mockNotes := newTestNotebookSvc(t, ctrl)
	ctx := context.Background()

	createdAt := time.Date(2026, 3, 14, 10, 0, 0, 0, time.UTC)
	svc.now = func() time.Time { return createdAt }

	mockNotes.EXPECT().SaveNote(ctx, gomock.Any()).DoAndReturn(
		func(_ context.Context, n models.Note) error {
			_, err := uuid.Parse(n.ID)
			assert.NoError(t, err, "ID должен быть валидным UUID")
			assert.Equal(t, createdAt, n.CreatedAt)
			assert.Equal(t, createdAt, n.UpdatedAt)
			return nil
		},
	)

	got, err := svc.Create(ctx, models.Note{SubjectKey: "math", Title: "Формулы приведения", Body: "..."})
	require.NoError(t, err)
	assert.NotEmpty(t, got.ID)
}

func TestClientNotebookService_Create_RequiresTitle(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, _ := newTestNotebookSvc(t, ctrl)

	_, err := svc.Create(context.Background(), models.Note{Body: "без заголовка"})
	assert.Error(t, err)
}

func TestClientNotebookService_Update_RefreshesTimestamp(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, mockNotes := newTestNotebookSvc(t, ctrl)
	ctx := context.Background()

	updatedAt := time.Date(2026, 3, 15, 9, 30, 0, 0, time.UTC)
	svc.now = func() time.Time { return updatedAt }

	mockNotes.EXPECT().UpdateNote(ctx, gomock.Any()).DoAndReturn(
		func(_ context.Context, n models.Note) error {
			assert.Equal(t, updatedAt, n.UpdatedAt)
			return nil
		},
	)

	require.NoError(t, svc.Update(ctx, models.Note{ID: uuid.NewString(), Title: "t"}))
}

func TestClientNotebookService_Get_NotFound(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, mockNotes := newTestNotebookSvc(t, ctrl)
	ctx := context.Background()

	mockNotes.EXPECT().GetNote(ctx, "missing").
		Return(models.Note{}, store.ErrNoteNotFound)

	_, err := svc.Get(ctx, "missing")
	assert.ErrorIs(t, err, store.ErrNoteNotFound)
}
