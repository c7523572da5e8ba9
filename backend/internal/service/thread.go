package service

import (
	"github.com/itchan-dev/bulletin/backend/internal/utils"
	"github.com/itchan-dev/bulletin/shared/domain"
)

type ThreadService interface {
	Create(data domain.ThreadCreationData) (domain.ThreadId, error)
	Get(id domain.ThreadId) (*domain.Thread, error)
	UpdateText(id domain.ThreadId, text domain.ThreadText) error
	Delete(id domain.ThreadId) error
}

type Thread struct {
	storage   ThreadStorage
	validator ThreadValidator
}

type ThreadStorage interface {
	SaveThread(thread domain.ThreadMetadata) error
	Thread(id domain.ThreadId) (domain.ThreadMetadata, error)
	Posts(thread *domain.ThreadId) ([]domain.Post, error)
	UpdateThreadText(id domain.ThreadId, text domain.ThreadText) error
	DeleteThread(id domain.ThreadId) error
}

type ThreadValidator interface {
	Text(text string) error
}

func NewThread(storage ThreadStorage, validator ThreadValidator) ThreadService {
	return &Thread{storage, validator}
}

func (t *Thread) Create(data domain.ThreadCreationData) (domain.ThreadId, error) {
	if err := t.validator.Text(data.Text); err != nil {
		return "", err
	}

	thread := domain.ThreadMetadata{Id: utils.NewId(), Owner: data.Owner, Board: data.Board, Text: data.Text}
	if err := t.storage.SaveThread(thread); err != nil {
		return "", err
	}
	return thread.Id, nil
}

// Get returns the thread with its posts in creation order.
func (t *Thread) Get(id domain.ThreadId) (*domain.Thread, error) {
	metadata, err := t.storage.Thread(id)
	if err != nil {
		return nil, err
	}
	posts, err := t.storage.Posts(&id)
	if err != nil {
		return nil, err
	}
	return &domain.Thread{ThreadMetadata: metadata, Posts: posts}, nil
}

func (t *Thread) UpdateText(id domain.ThreadId, text domain.ThreadText) error {
	if err := t.validator.Text(text); err != nil {
		return err
	}
	return t.storage.UpdateThreadText(id, text)
}

func (t *Thread) Delete(id domain.ThreadId) error {
	return t.storage.DeleteThread(id)
}
