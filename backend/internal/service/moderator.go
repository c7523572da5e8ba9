package service

import (
	"github.com/itchan-dev/bulletin/shared/domain"
	"github.com/itchan-dev/bulletin/shared/errors"
	"github.com/itchan-dev/bulletin/shared/logger"
)

type ModeratorService interface {
	Request(data domain.ModeratorRequestData) (domain.ModeratorId, error)
	Pending(user domain.UserId) ([]domain.Moderator, error)
	Approve(id domain.ModeratorId) error
}

type Moderator struct {
	storage ModeratorStorage
}

type ModeratorStorage interface {
	User(username domain.Username) (domain.User, error)
	Board(id domain.BoardId) (domain.BoardMetadata, error)
	SaveModerator(m domain.Moderator) (domain.ModeratorId, error)
	PendingModerators(user domain.UserId) ([]domain.Moderator, error)
	ActivateModerator(id domain.ModeratorId) error
}

func NewModerator(storage ModeratorStorage) ModeratorService {
	return &Moderator{storage}
}

// Request files a pending moderation request for the named user on the board.
func (m *Moderator) Request(data domain.ModeratorRequestData) (domain.ModeratorId, error) {
	user, err := m.storage.User(data.Username)
	if err != nil {
		if errors.IsNotFound(err) {
			return -1, errors.NotFound("user with username not found.")
		}
		return -1, err
	}
	if _, err := m.storage.Board(data.Board); err != nil {
		if errors.IsNotFound(err) {
			return -1, errors.NotFound("board with id not found.")
		}
		return -1, err
	}
	return m.storage.SaveModerator(domain.Moderator{Moderator: user.Id, Board: data.Board, Active: false})
}

func (m *Moderator) Pending(user domain.UserId) ([]domain.Moderator, error) {
	return m.storage.PendingModerators(user)
}

func (m *Moderator) Approve(id domain.ModeratorId) error {
	if err := m.storage.ActivateModerator(id); err != nil {
		return err
	}
	logger.Log.Info("moderator request accepted", "request_id", id)
	return nil
}
