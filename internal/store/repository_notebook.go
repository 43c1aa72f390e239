package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/tzy-lab/paperdesk/internal/logger"
	"github.com/tzy-lab/paperdesk/models"
)

type notebookRepository struct {
	*DB
	logger *logger.Logger
}

func NewNotebookRepository(db *DB, logger *logger.Logger) NotebookRepository {
	return &notebookRepository{
		DB:     db,
		logger: logger,
	}
}

func (n *notebookRepository) SaveNote(ctx context.Context, note models.Note) error {
	log := logger.FromContext(ctx)

	_, err := n.DB.ExecContext(ctx, saveNote,
		note.ID,
		note.SubjectKey,
		note.Title,
		note.Body,
		note.CreatedAt,
		note.UpdatedAt,
	)
	if err != nil {
		log.Err(err).
			Str("func", "notebookRepository.SaveNote").
			Str("note_id", note.ID).
			Msg("failed to execute insert for note")
		return fmt.Errorf("failed to save note (id=%s): %w", note.ID, err)
	}

	return nil
}

func (n *notebookRepository) GetNote(ctx context.Context, id string) (models.Note, error) {
	log := logger.FromContext(ctx)

	var note models.Note
	row := n.DB.QueryRowContext(ctx, getSingleNote, id)
	scanErr := row.Scan(
		&note.ID,
		&note.SubjectKey,
		&note.Title,
		&note.Body,
		&note.CreatedAt,
		&note.UpdatedAt,
	)
	if errors.Is(scanErr, sql.ErrNoRows) {
		return models.Note{}, ErrNoteNotFound
	}
	if scanErr != nil {
		log.Err(scanErr).
			Str("func", "notebookRepository.GetNote").
			Str("note_id", id).
			Msg("failed to scan note row")
		return models.Note{}, fmt.Errorf("failed to scan note row (id=%s): %w", id, scanErr)
	}

	return note, nil
}

func (n *notebookRepository) ListNotes(ctx context.Context) ([]models.Note, error) {
	log := logger.FromContext(ctx)

	rows, err := n.DB.QueryContext(ctx, getAllNotes)
	if err != nil {
		log.Err(err).
			Str("func", "notebookRepository.ListNotes").
			Msg("failed to execute query for getting all notes")
		return nil, fmt.Errorf("failed to query notes: %w", err)
	}
	defer rows.Close()

	var notes []models.Note

	for rows.Next() {
		var note models.Note

		scanErr := rows.Scan(
			&note.ID,
			&note.SubjectKey,
			&note.Title,
			&note.Body,
			&note.CreatedAt,
			&note.UpdatedAt,
		)
		if scanErr != nil {
			log.Err(scanErr).
				Str("func", "notebookRepository.ListNotes").
				Msg("failed to scan note row")
			return nil, fmt.Errorf("failed to scan note row: %w", scanErr)
		}

		notes = append(notes, note)
	}

	if rowsErr := rows.Err(); rowsErr != nil {
		log.Err(rowsErr).
			Str("func", "notebookRepository.ListNotes").
			Msg("error occurred during rows iteration")
		return nil, fmt.Errorf("error iterating note rows: %w", rowsErr)
	}

	return notes, nil
}

func (n *notebookRepository) UpdateNote(ctx context.Context, note models.Note) error {
	log := logger.FromContext(ctx)

	result, err := n.DB.ExecContext(ctx, updateNote,
		note.SubjectKey,
		note.Title,
		note.Body,
		note.UpdatedAt,
		note.ID,
	)
	if err != nil {
		log.Err(err).
			Str("func", "notebookRepository.UpdateNote").
			Str("note_id", note.ID).
			Msg("failed to execute update for note")
		return fmt.Errorf("failed to update note (id=%s): %w", note.ID, err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		log.Err(err).
			Str("func", "notebookRepository.UpdateNote").
			Str("note_id", note.ID).
			Msg("failed to get rows affected after note update")
		return fmt.Errorf("failed to get rows affected (id=%s): %w", note.ID, err)
	}

	if rowsAffected == 0 {
		return ErrNoteNotFound
	}

	return nil
}

func (n *notebookRepository) DeleteNote(ctx context.Context, id string) error {
	log := logger.FromContext(ctx)

	_, err := n.DB.ExecContext(ctx, deleteNote, id)
	if err != nil {
		log.Err(err).
			Str("func", "notebookRepository.DeleteNote").
			Str("note_id", id).
			Msg("failed to execute delete for note")
		return fmt.Errorf("failed to delete note (id=%s): %w", id, err)
	}

	return nil
}
