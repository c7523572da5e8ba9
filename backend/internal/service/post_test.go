package service

import (
	"testing"

	"github.com/itchan-dev/bulletin/shared/domain"
	internal_errors "github.com/itchan-dev/bulletin/shared/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type MockPostStorage struct {
	savePostFunc   func(post domain.Post) (domain.PostId, error)
	postFunc       func(id domain.PostId) (domain.Post, error)
	postsFunc      func(thread *domain.ThreadId) ([]domain.Post, error)
	updatePostFunc func(id domain.PostId, data domain.PostUpdateData) (domain.Post, error)
	deletePostFunc func(id domain.PostId) error
}

func (m *MockPostStorage) SavePost(post domain.Post) (domain.PostId, error) {
	if m.savePostFunc != nil {
		return m.savePostFunc(post)
	}
	return 1, nil
}

func (m *MockPostStorage) Post(id domain.PostId) (domain.Post, error) {
	if m.postFunc != nil {
		return m.postFunc(id)
	}
	return domain.Post{Id: id}, nil
}

func (m *MockPostStorage) Posts(thread *domain.ThreadId) ([]domain.Post, error) {
	if m.postsFunc != nil {
		return m.postsFunc(thread)
	}
	return nil, nil
}

func (m *MockPostStorage) UpdatePost(id domain.PostId, data domain.PostUpdateData) (domain.Post, error) {
	if m.updatePostFunc != nil {
		return m.updatePostFunc(id, data)
	}
	return domain.Post{Id: id}, nil
}

func (m *MockPostStorage) DeletePost(id domain.PostId) error {
	if m.deletePostFunc != nil {
		return m.deletePostFunc(id)
	}
	return nil
}

type MockPostValidator struct {
	titleFunc   func(title string) error
	contentFunc func(content string) error
}

func (m *MockPostValidator) Title(title string) error {
	if m.titleFunc != nil {
		return m.titleFunc(title)
	}
	return nil
}

func (m *MockPostValidator) Content(content string) error {
	if m.contentFunc != nil {
		return m.contentFunc(content)
	}
	return nil
}

func TestPostCreate(t *testing.T) {
	data := domain.PostCreationData{Author: 3, Thread: "t1", Title: "hi", Content: "first"}

	t.Run("success", func(t *testing.T) {
		storage := &MockPostStorage{
			savePostFunc: func(post domain.Post) (domain.PostId, error) {
				assert.Equal(t, domain.Post{Author: 3, Thread: "t1", Title: "hi", Content: "first"}, post)
				return 42, nil
			},
		}
		service := NewPost(storage, &MockPostValidator{})

		id, err := service.Create(data)
		require.NoError(t, err)
		assert.Equal(t, domain.PostId(42), id)
	})

	t.Run("invalid title", func(t *testing.T) {
		validationErr := internal_errors.BadRequest("title is too long")
		storage := &MockPostStorage{
			savePostFunc: func(domain.Post) (domain.PostId, error) {
				t.Fatal("SavePost should not be called")
				return 0, nil
			},
		}
		service := NewPost(storage, &MockPostValidator{titleFunc: func(string) error { return validationErr }})

		_, err := service.Create(data)
		assert.ErrorIs(t, err, validationErr)
	})

	t.Run("missing thread", func(t *testing.T) {
		storage := &MockPostStorage{
			savePostFunc: func(domain.Post) (domain.PostId, error) {
				return -1, internal_errors.NotFound("no thread with this id exists.")
			},
		}
		service := NewPost(storage, &MockPostValidator{})

		_, err := service.Create(data)
		assert.True(t, internal_errors.IsNotFound(err))
	})
}

func TestPostList(t *testing.T) {
	thread := "t1"
	storage := &MockPostStorage{
		postsFunc: func(filter *domain.ThreadId) ([]domain.Post, error) {
			if filter == nil {
				return []domain.Post{{Id: 1}, {Id: 2}}, nil
			}
			return []domain.Post{{Id: 1, Thread: *filter}}, nil
		},
	}
	service := NewPost(storage, &MockPostValidator{})

	all, err := service.List(nil)
	require.NoError(t, err)
	assert.Len(t, all, 2)

	filtered, err := service.List(&thread)
	require.NoError(t, err)
	require.Len(t, filtered, 1)
	assert.Equal(t, thread, filtered[0].Thread)
}

func TestPostUpdate(t *testing.T) {
	t.Run("partial update keeps author", func(t *testing.T) {
		content := "edited"
		storage := &MockPostStorage{
			updatePostFunc: func(id domain.PostId, data domain.PostUpdateData) (domain.Post, error) {
				assert.Nil(t, data.Title)
				return domain.Post{Id: id, Author: 3, Content: *data.Content}, nil
			},
		}
		service := NewPost(storage, &MockPostValidator{
			titleFunc: func(string) error {
				t.Fatal("title is not set and should not be validated")
				return nil
			},
		})

		post, err := service.Update(7, domain.PostUpdateData{Content: &content})
		require.NoError(t, err)
		assert.Equal(t, domain.UserId(3), post.Author)
		assert.Equal(t, content, post.Content)
	})

	t.Run("invalid content", func(t *testing.T) {
		content := ""
		validationErr := internal_errors.BadRequest("content may not be blank.")
		service := NewPost(&MockPostStorage{}, &MockPostValidator{contentFunc: func(string) error { return validationErr }})

		_, err := service.Update(7, domain.PostUpdateData{Content: &content})
		assert.ErrorIs(t, err, validationErr)
	})
}

func TestPostGetAndDelete(t *testing.T) {
	notFound := internal_errors.NotFound("no post with such id exists.")
	storage := &MockPostStorage{
		postFunc:       func(domain.PostId) (domain.Post, error) { return domain.Post{}, notFound },
		deletePostFunc: func(domain.PostId) error { return notFound },
	}
	service := NewPost(storage, &MockPostValidator{})

	_, err := service.Get(1)
	assert.ErrorIs(t, err, notFound)
	assert.ErrorIs(t, service.Delete(1), notFound)
}
