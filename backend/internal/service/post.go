package service

import (
	"github.com/itchan-dev/bulletin/shared/domain"
)

type PostService interface {
	Create(data domain.PostCreationData) (domain.PostId, error)
	Get(id domain.PostId) (domain.Post, error)
	List(thread *domain.ThreadId) ([]domain.Post, error)
	Update(id domain.PostId, data domain.PostUpdateData) (domain.Post, error)
	Delete(id domain.PostId) error
}

type Post struct {
	storage   PostStorage
	validator PostValidator
}

type PostStorage interface {
	SavePost(post domain.Post) (domain.PostId, error)
	Post(id domain.PostId) (domain.Post, error)
	Posts(thread *domain.ThreadId) ([]domain.Post, error)
	UpdatePost(id domain.PostId, data domain.PostUpdateData) (domain.Post, error)
	DeletePost(id domain.PostId) error
}

type PostValidator interface {
	Title(title string) error
	Content(content string) error
}

func NewPost(storage PostStorage, validator PostValidator) PostService {
	return &Post{storage, validator}
}

func (p *Post) Create(data domain.PostCreationData) (domain.PostId, error) {
	if err := p.validator.Title(data.Title); err != nil {
		return -1, err
	}
	if err := p.validator.Content(data.Content); err != nil {
		return -1, err
	}
	return p.storage.SavePost(domain.Post{Author: data.Author, Thread: data.Thread, Title: data.Title, Content: data.Content})
}

func (p *Post) Get(id domain.PostId) (domain.Post, error) {
	return p.storage.Post(id)
}

// List returns all posts, or those of one thread when thread is set.
func (p *Post) List(thread *domain.ThreadId) ([]domain.Post, error) {
	return p.storage.Posts(thread)
}

// Update keeps the author: editing a post never reassigns it to the editor.
func (p *Post) Update(id domain.PostId, data domain.PostUpdateData) (domain.Post, error) {
	if data.Title != nil {
		if err := p.validator.Title(*data.Title); err != nil {
			return domain.Post{}, err
		}
	}
	if data.Content != nil {
		if err := p.validator.Content(*data.Content); err != nil {
			return domain.Post{}, err
		}
	}
	return p.storage.UpdatePost(id, data)
}

func (p *Post) Delete(id domain.PostId) error {
	return p.storage.DeletePost(id)
}
