package api

import (
	"time"

	"github.com/itchan-dev/bulletin/shared/domain"
)

// Request DTOs

type CreatePostRequest struct {
	ThreadId string `json:"thread_id" validate:"required"`
	Title    string `json:"title" validate:"required,max=50"`
	Content  string `json:"content" validate:"required,max=255"`
}

type UpdatePostRequest struct {
	Title   string `json:"title" validate:"required,max=50"`
	Content string `json:"content" validate:"required,max=255"`
}

type PatchPostRequest struct {
	Title   *string `json:"title,omitempty" validate:"omitempty,max=50"`
	Content *string `json:"content,omitempty" validate:"omitempty,max=255"`
}

// Response DTOs

type PostResponse struct {
	Id          int64     `json:"id"`
	Author      int64     `json:"author_id"`
	Thread      string    `json:"thread_id"`
	Title       string    `json:"title"`
	Content     string    `json:"content"`
	ContentHTML string    `json:"content_html"`
	CreatedAt   time.Time `json:"created_at"`
}

type PostListResponse struct {
	Posts []PostResponse `json:"posts"`
}

// render turns raw post content into safe HTML
func NewPostResponse(p domain.Post, render func(string) string) PostResponse {
	resp := PostResponse{Id: p.Id, Author: p.Author, Thread: p.Thread, Title: p.Title, Content: p.Content, CreatedAt: p.CreatedAt}
	if render != nil {
		resp.ContentHTML = render(p.Content)
	}
	return resp
}
