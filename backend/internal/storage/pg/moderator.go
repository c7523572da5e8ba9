package pg

import (
	"database/sql"
	"errors"
	"fmt"

	"github.com/itchan-dev/bulletin/shared/domain"
	internal_errors "github.com/itchan-dev/bulletin/shared/errors"
	shared_pg "github.com/itchan-dev/bulletin/shared/storage/pg"
)

var errModeratorNotFound = internal_errors.NotFound("invalid request id!")

func (s *Storage) SaveModerator(m domain.Moderator) (domain.ModeratorId, error) {
	var id domain.ModeratorId
	err := s.db.QueryRow("INSERT INTO moderators(moderator_id, board_id, active) VALUES($1, $2, $3) RETURNING id",
		m.Moderator, m.Board, m.Active).Scan(&id)
	if err != nil {
		if shared_pg.IsUniqueViolation(err) {
			return -1, internal_errors.BadRequest("moderator with this board and moderator already exists.")
		}
		if shared_pg.IsForeignKeyViolation(err) {
			if shared_pg.Constraint(err) == "moderators_moderator_id_fkey" {
				return -1, internal_errors.NotFound("user with username not found.")
			}
			return -1, internal_errors.NotFound("board with id not found.")
		}
		return -1, fmt.Errorf("failed to insert moderator: %w", err)
	}
	return id, nil
}

func (s *Storage) Moderator(id domain.ModeratorId) (domain.Moderator, error) {
	var m domain.Moderator
	err := s.db.QueryRow("SELECT id, moderator_id, board_id, active FROM moderators WHERE id = $1", id).
		Scan(&m.Id, &m.Moderator, &m.Board, &m.Active)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return domain.Moderator{}, errModeratorNotFound
		}
		return domain.Moderator{}, fmt.Errorf("failed to query moderator: %w", err)
	}
	return m, nil
}

func (s *Storage) IsActiveModerator(board domain.BoardId, user domain.UserId) (bool, error) {
	var active bool
	err := s.db.QueryRow("SELECT EXISTS (SELECT 1 FROM moderators WHERE board_id = $1 AND moderator_id = $2 AND active)",
		board, user).Scan(&active)
	if err != nil {
		return false, fmt.Errorf("failed to query moderator grant: %w", err)
	}
	return active, nil
}

func (s *Storage) PendingModerators(user domain.UserId) ([]domain.Moderator, error) {
	rows, err := s.db.Query("SELECT id, moderator_id, board_id, active FROM moderators WHERE moderator_id = $1 AND NOT active ORDER BY id", user)
	if err != nil {
		return nil, fmt.Errorf("failed to query pending moderators: %w", err)
	}
	defer rows.Close()

	requests := []domain.Moderator{}
	for rows.Next() {
		var m domain.Moderator
		if err := rows.Scan(&m.Id, &m.Moderator, &m.Board, &m.Active); err != nil {
			return nil, fmt.Errorf("failed to scan moderator: %w", err)
		}
		requests = append(requests, m)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("rows iteration error: %w", err)
	}
	return requests, nil
}

// ActivateModerator flips a pending request to active. Only one of two
// concurrent approvals succeeds; the other sees a conflict.
func (s *Storage) ActivateModerator(id domain.ModeratorId) error {
	return s.withTx(func(tx *sql.Tx) error {
		result, err := tx.Exec("UPDATE moderators SET active = TRUE WHERE id = $1 AND NOT active", id)
		if err != nil {
			return fmt.Errorf("failed to activate moderator: %w", err)
		}
		updated, err := result.RowsAffected()
		if err != nil {
			return fmt.Errorf("failed to check affected rows for moderator activation: %w", err)
		}
		if updated == 1 {
			return nil
		}

		var exists bool
		if err := tx.QueryRow("SELECT EXISTS (SELECT 1 FROM moderators WHERE id = $1)", id).Scan(&exists); err != nil {
			return fmt.Errorf("failed to query moderator: %w", err)
		}
		if !exists {
			return errModeratorNotFound
		}
		return internal_errors.Conflict("request already accepted.")
	})
}
