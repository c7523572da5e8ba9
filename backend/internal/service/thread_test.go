package service

import (
	"errors"
	"testing"

	"github.com/itchan-dev/bulletin/shared/domain"
	internal_errors "github.com/itchan-dev/bulletin/shared/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type MockThreadStorage struct {
	saveThreadFunc       func(thread domain.ThreadMetadata) error
	threadFunc           func(id domain.ThreadId) (domain.ThreadMetadata, error)
	postsFunc            func(thread *domain.ThreadId) ([]domain.Post, error)
	updateThreadTextFunc func(id domain.ThreadId, text domain.ThreadText) error
	deleteThreadFunc     func(id domain.ThreadId) error
}

func (m *MockThreadStorage) SaveThread(thread domain.ThreadMetadata) error {
	if m.saveThreadFunc != nil {
		return m.saveThreadFunc(thread)
	}
	return nil
}

func (m *MockThreadStorage) Thread(id domain.ThreadId) (domain.ThreadMetadata, error) {
	if m.threadFunc != nil {
		return m.threadFunc(id)
	}
	return domain.ThreadMetadata{Id: id}, nil
}

func (m *MockThreadStorage) Posts(thread *domain.ThreadId) ([]domain.Post, error) {
	if m.postsFunc != nil {
		return m.postsFunc(thread)
	}
	return nil, nil
}

func (m *MockThreadStorage) UpdateThreadText(id domain.ThreadId, text domain.ThreadText) error {
	if m.updateThreadTextFunc != nil {
		return m.updateThreadTextFunc(id, text)
	}
	return nil
}

func (m *MockThreadStorage) DeleteThread(id domain.ThreadId) error {
	if m.deleteThreadFunc != nil {
		return m.deleteThreadFunc(id)
	}
	return nil
}

type MockThreadValidator struct {
	textFunc func(text string) error
}

func (m *MockThreadValidator) Text(text string) error {
	if m.textFunc != nil {
		return m.textFunc(text)
	}
	return nil
}

func TestThreadCreate(t *testing.T) {
	data := domain.ThreadCreationData{Owner: 2, Board: "b1", Text: "hello"}

	t.Run("success", func(t *testing.T) {
		var saved domain.ThreadMetadata
		storage := &MockThreadStorage{
			saveThreadFunc: func(thread domain.ThreadMetadata) error {
				saved = thread
				return nil
			},
		}
		service := NewThread(storage, &MockThreadValidator{})

		id, err := service.Create(data)
		require.NoError(t, err)
		assert.Len(t, id, 32)
		assert.Equal(t, domain.ThreadMetadata{Id: id, Owner: 2, Board: "b1", Text: "hello"}, saved)
	})

	t.Run("invalid text", func(t *testing.T) {
		validationErr := internal_errors.BadRequest("text may not be blank.")
		storage := &MockThreadStorage{
			saveThreadFunc: func(domain.ThreadMetadata) error {
				t.Fatal("SaveThread should not be called")
				return nil
			},
		}
		service := NewThread(storage, &MockThreadValidator{textFunc: func(string) error { return validationErr }})

		_, err := service.Create(data)
		assert.ErrorIs(t, err, validationErr)
	})

	t.Run("duplicate owner on board", func(t *testing.T) {
		dupErr := internal_errors.BadRequest("thread with this board and owner already exists.")
		storage := &MockThreadStorage{saveThreadFunc: func(domain.ThreadMetadata) error { return dupErr }}
		service := NewThread(storage, &MockThreadValidator{})

		_, err := service.Create(data)
		assert.ErrorIs(t, err, dupErr)
	})
}

func TestThreadGet(t *testing.T) {
	t.Run("thread with posts", func(t *testing.T) {
		posts := []domain.Post{{Id: 1, Thread: "t1"}, {Id: 2, Thread: "t1"}}
		storage := &MockThreadStorage{
			postsFunc: func(thread *domain.ThreadId) ([]domain.Post, error) {
				require.NotNil(t, thread)
				assert.Equal(t, "t1", *thread)
				return posts, nil
			},
		}
		service := NewThread(storage, &MockThreadValidator{})

		thread, err := service.Get("t1")
		require.NoError(t, err)
		assert.Equal(t, "t1", thread.Id)
		assert.Equal(t, posts, thread.Posts)
	})

	t.Run("missing thread", func(t *testing.T) {
		storage := &MockThreadStorage{
			threadFunc: func(domain.ThreadId) (domain.ThreadMetadata, error) {
				return domain.ThreadMetadata{}, internal_errors.NotFound("no thread with such id exists.")
			},
		}
		service := NewThread(storage, &MockThreadValidator{})

		_, err := service.Get("t1")
		assert.True(t, internal_errors.IsNotFound(err))
	})
}

func TestThreadUpdateText(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		called := false
		storage := &MockThreadStorage{
			updateThreadTextFunc: func(id domain.ThreadId, text domain.ThreadText) error {
				called = true
				assert.Equal(t, "t1", id)
				assert.Equal(t, "updated", text)
				return nil
			},
		}
		service := NewThread(storage, &MockThreadValidator{})

		require.NoError(t, service.UpdateText("t1", "updated"))
		assert.True(t, called)
	})

	t.Run("invalid text", func(t *testing.T) {
		validationErr := internal_errors.BadRequest("text is too long")
		service := NewThread(&MockThreadStorage{}, &MockThreadValidator{textFunc: func(string) error { return validationErr }})

		assert.ErrorIs(t, service.UpdateText("t1", "x"), validationErr)
	})
}

func TestThreadDelete(t *testing.T) {
	storageErr := errors.New("storage error")
	storage := &MockThreadStorage{deleteThreadFunc: func(domain.ThreadId) error { return storageErr }}
	service := NewThread(storage, &MockThreadValidator{})

	assert.ErrorIs(t, service.Delete("t1"), storageErr)
	assert.NoError(t, NewThread(&MockThreadStorage{}, &MockThreadValidator{}).Delete("t1"))
}
