package service

import (
	"github.com/itchan-dev/bulletin/backend/internal/utils"
	"github.com/itchan-dev/bulletin/shared/domain"
	"github.com/itchan-dev/bulletin/shared/logger"
)

// to mock service in tests
type BoardService interface {
	Create(data domain.BoardCreationData) (domain.BoardId, error)
	Get(id domain.BoardId) (*domain.Board, error)
	List() ([]domain.BoardMetadata, error)
	Update(id domain.BoardId, data domain.BoardUpdateData) (domain.BoardMetadata, error)
	Delete(id domain.BoardId) error
	TopicCounts() ([]domain.TopicCount, error)
}

type Board struct {
	storage   BoardStorage
	validator BoardValidator
}

type BoardStorage interface {
	SaveBoard(board domain.BoardMetadata) error
	Board(id domain.BoardId) (domain.BoardMetadata, error)
	Boards() ([]domain.BoardMetadata, error)
	UpdateBoard(id domain.BoardId, data domain.BoardUpdateData) (domain.BoardMetadata, error)
	DeleteBoard(id domain.BoardId) error
	TopicCounts() ([]domain.TopicCount, error)
	ThreadsByBoard(board domain.BoardId) ([]domain.ThreadMetadata, error)
	SaveModerator(m domain.Moderator) (domain.ModeratorId, error)
}

type BoardValidator interface {
	Topic(topic string) error
	Context(context string) error
}

func NewBoard(storage BoardStorage, validator BoardValidator) BoardService {
	return &Board{storage, validator}
}

// Create saves the board and grants its owner an active moderator record.
// If the grant can't be saved the board is removed again.
func (b *Board) Create(data domain.BoardCreationData) (domain.BoardId, error) {
	if err := b.validator.Topic(data.Topic); err != nil {
		return "", err
	}
	if err := b.validator.Context(data.Context); err != nil {
		return "", err
	}

	board := domain.BoardMetadata{Id: utils.NewId(), Owner: data.Owner, Topic: data.Topic, Context: data.Context}
	if err := b.storage.SaveBoard(board); err != nil {
		return "", err
	}

	if _, err := b.storage.SaveModerator(domain.Moderator{Moderator: board.Owner, Board: board.Id, Active: true}); err != nil {
		logger.Log.Error("failed to grant owner moderation, removing board", "board_id", board.Id, "owner_id", board.Owner, "error", err)
		if delErr := b.storage.DeleteBoard(board.Id); delErr != nil {
			logger.Log.Error("failed to remove board", "board_id", board.Id, "error", delErr)
		}
		return "", err
	}

	logger.Log.Info("board created", "board_id", board.Id, "owner_id", board.Owner)
	return board.Id, nil
}

func (b *Board) Get(id domain.BoardId) (*domain.Board, error) {
	metadata, err := b.storage.Board(id)
	if err != nil {
		return nil, err
	}
	threads, err := b.storage.ThreadsByBoard(id)
	if err != nil {
		return nil, err
	}
	return &domain.Board{BoardMetadata: metadata, Threads: threads}, nil
}

func (b *Board) List() ([]domain.BoardMetadata, error) {
	return b.storage.Boards()
}

// Update changes topic and context. Nil fields are kept. Ownership never changes.
func (b *Board) Update(id domain.BoardId, data domain.BoardUpdateData) (domain.BoardMetadata, error) {
	if data.Topic != nil {
		if err := b.validator.Topic(*data.Topic); err != nil {
			return domain.BoardMetadata{}, err
		}
	}
	if data.Context != nil {
		if err := b.validator.Context(*data.Context); err != nil {
			return domain.BoardMetadata{}, err
		}
	}
	return b.storage.UpdateBoard(id, data)
}

func (b *Board) Delete(id domain.BoardId) error {
	if err := b.storage.DeleteBoard(id); err != nil {
		return err
	}
	logger.Log.Info("board deleted", "board_id", id)
	return nil
}

func (b *Board) TopicCounts() ([]domain.TopicCount, error) {
	return b.storage.TopicCounts()
}
