package pg

import (
	"database/sql"
	"errors"
	"fmt"

	"github.com/itchan-dev/bulletin/shared/domain"
	internal_errors "github.com/itchan-dev/bulletin/shared/errors"
	shared_pg "github.com/itchan-dev/bulletin/shared/storage/pg"
)

var errThreadNotFound = internal_errors.NotFound("no thread with such id exists.")

// SaveThread fails with 404 when the board is missing and with 400 when the
// owner already has a thread on that board.
func (s *Storage) SaveThread(thread domain.ThreadMetadata) error {
	return s.withTx(func(tx *sql.Tx) error {
		if _, err := s.board(tx, thread.Board); err != nil {
			if internal_errors.IsNotFound(err) {
				return internal_errors.NotFound("no board with this id exists.")
			}
			return err
		}

		_, err := tx.Exec("INSERT INTO threads(id, owner_id, board_id, text) VALUES($1, $2, $3, $4)",
			thread.Id, thread.Owner, thread.Board, thread.Text)
		if err != nil {
			if shared_pg.IsUniqueViolation(err) {
				if shared_pg.Constraint(err) == "threads_board_owner_key" {
					return internal_errors.BadRequest("thread with this board and owner already exists.")
				}
				return internal_errors.BadRequest("thread with this id already exists.")
			}
			return fmt.Errorf("failed to insert thread: %w", err)
		}
		return nil
	})
}

func (s *Storage) Thread(id domain.ThreadId) (domain.ThreadMetadata, error) {
	return s.thread(s.db, id)
}

func (s *Storage) ThreadsByBoard(board domain.BoardId) ([]domain.ThreadMetadata, error) {
	rows, err := s.db.Query("SELECT id, owner_id, board_id, text, created_at FROM threads WHERE board_id = $1 ORDER BY created_at, id", board)
	if err != nil {
		return nil, fmt.Errorf("failed to query threads: %w", err)
	}
	defer rows.Close()

	threads := []domain.ThreadMetadata{}
	for rows.Next() {
		var t domain.ThreadMetadata
		if err := rows.Scan(&t.Id, &t.Owner, &t.Board, &t.Text, &t.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan thread: %w", err)
		}
		threads = append(threads, t)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("rows iteration error: %w", err)
	}
	return threads, nil
}

func (s *Storage) UpdateThreadText(id domain.ThreadId, text domain.ThreadText) error {
	result, err := s.db.Exec("UPDATE threads SET text = $2 WHERE id = $1", id, text)
	if err != nil {
		return fmt.Errorf("failed to update thread: %w", err)
	}
	updated, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to check affected rows for thread update: %w", err)
	}
	if updated == 0 {
		return errThreadNotFound
	}
	return nil
}

// DeleteThread removes the thread; its posts cascade.
func (s *Storage) DeleteThread(id domain.ThreadId) error {
	result, err := s.db.Exec("DELETE FROM threads WHERE id = $1", id)
	if err != nil {
		return fmt.Errorf("failed to delete thread: %w", err)
	}
	deleted, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to check affected rows for thread deletion: %w", err)
	}
	if deleted == 0 {
		return errThreadNotFound
	}
	return nil
}

func (s *Storage) thread(q Querier, id domain.ThreadId) (domain.ThreadMetadata, error) {
	var t domain.ThreadMetadata
	err := q.QueryRow("SELECT id, owner_id, board_id, text, created_at FROM threads WHERE id = $1", id).
		Scan(&t.Id, &t.Owner, &t.Board, &t.Text, &t.CreatedAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return domain.ThreadMetadata{}, errThreadNotFound
		}
		return domain.ThreadMetadata{}, fmt.Errorf("failed to query thread: %w", err)
	}
	return t, nil
}
