package pg

import (
	"database/sql"
	"errors"
	"fmt"

	"github.com/itchan-dev/bulletin/shared/domain"
	internal_errors "github.com/itchan-dev/bulletin/shared/errors"
	shared_pg "github.com/itchan-dev/bulletin/shared/storage/pg"
)

var errBoardNotFound = internal_errors.NotFound("no board with such id exists.")

func (s *Storage) SaveBoard(board domain.BoardMetadata) error {
	_, err := s.db.Exec("INSERT INTO boards(id, owner_id, topic, context) VALUES($1, $2, $3, $4)",
		board.Id, board.Owner, board.Topic, board.Context)
	if err != nil {
		if shared_pg.IsUniqueViolation(err) {
			return internal_errors.BadRequest("board with this id already exists.")
		}
		if shared_pg.IsForeignKeyViolation(err) {
			return internal_errors.NotFound("owner not found")
		}
		return fmt.Errorf("failed to insert board: %w", err)
	}
	return nil
}

func (s *Storage) Board(id domain.BoardId) (domain.BoardMetadata, error) {
	return s.board(s.db, id)
}

func (s *Storage) Boards() ([]domain.BoardMetadata, error) {
	rows, err := s.db.Query("SELECT id, owner_id, topic, context, created_at FROM boards ORDER BY created_at, id")
	if err != nil {
		return nil, fmt.Errorf("failed to query boards: %w", err)
	}
	defer rows.Close()

	boards := []domain.BoardMetadata{}
	for rows.Next() {
		var b domain.BoardMetadata
		if err := rows.Scan(&b.Id, &b.Owner, &b.Topic, &b.Context, &b.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan board: %w", err)
		}
		boards = append(boards, b)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("rows iteration error: %w", err)
	}
	return boards, nil
}

// UpdateBoard applies non-nil fields and returns the updated board.
func (s *Storage) UpdateBoard(id domain.BoardId, data domain.BoardUpdateData) (domain.BoardMetadata, error) {
	var b domain.BoardMetadata
	err := s.db.QueryRow(`
		UPDATE boards
		SET topic = COALESCE($2, topic), context = COALESCE($3, context)
		WHERE id = $1
		RETURNING id, owner_id, topic, context, created_at`,
		id, data.Topic, data.Context,
	).Scan(&b.Id, &b.Owner, &b.Topic, &b.Context, &b.CreatedAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return domain.BoardMetadata{}, errBoardNotFound
		}
		return domain.BoardMetadata{}, fmt.Errorf("failed to update board: %w", err)
	}
	return b, nil
}

// DeleteBoard removes the board; moderators, threads and posts cascade.
func (s *Storage) DeleteBoard(id domain.BoardId) error {
	result, err := s.db.Exec("DELETE FROM boards WHERE id = $1", id)
	if err != nil {
		return fmt.Errorf("failed to delete board: %w", err)
	}
	deleted, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to check affected rows for board deletion: %w", err)
	}
	if deleted == 0 {
		return errBoardNotFound
	}
	return nil
}

// TopicCounts groups boards by topic, ordered by topic.
func (s *Storage) TopicCounts() ([]domain.TopicCount, error) {
	rows, err := s.db.Query("SELECT topic, COUNT(*) FROM boards GROUP BY topic ORDER BY topic")
	if err != nil {
		return nil, fmt.Errorf("failed to query topic counts: %w", err)
	}
	defer rows.Close()

	counts := []domain.TopicCount{}
	for rows.Next() {
		var c domain.TopicCount
		if err := rows.Scan(&c.Topic, &c.Count); err != nil {
			return nil, fmt.Errorf("failed to scan topic count: %w", err)
		}
		counts = append(counts, c)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("rows iteration error: %w", err)
	}
	return counts, nil
}

func (s *Storage) board(q Querier, id domain.BoardId) (domain.BoardMetadata, error) {
	var b domain.BoardMetadata
	err := q.QueryRow("SELECT id, owner_id, topic, context, created_at FROM boards WHERE id = $1", id).
		Scan(&b.Id, &b.Owner, &b.Topic, &b.Context, &b.CreatedAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return domain.BoardMetadata{}, errBoardNotFound
		}
		return domain.BoardMetadata{}, fmt.Errorf("failed to query board: %w", err)
	}
	return b, nil
}
