package api

import (
	"time"

	"github.com/itchan-dev/bulletin/shared/domain"
)

// Request DTOs

type CreateBoardRequest struct {
	Topic   string `json:"topic" validate:"required,max=50"`
	Context string `json:"context" validate:"max=255"`
}

// PUT replaces every field
type UpdateBoardRequest struct {
	Topic   string `json:"topic" validate:"required,max=50"`
	Context string `json:"context" validate:"max=255"`
}

// PATCH
type PatchBoardRequest struct {
	Topic   *string `json:"topic,omitempty" validate:"omitempty,max=50"`
	Context *string `json:"context,omitempty" validate:"omitempty,max=255"`
}

// Response DTOs

type BoardMetadataResponse struct {
	Id        string    `json:"id"`
	Owner     int64     `json:"owner_id"`
	Topic     string    `json:"topic"`
	Context   string    `json:"context"`
	CreatedAt time.Time `json:"created_at"`
}

type BoardResponse struct {
	BoardMetadataResponse
	Threads []ThreadMetadataResponse `json:"threads"`
}

type BoardListResponse struct {
	Boards []BoardMetadataResponse `json:"boards"`
}

type TopicCountResponse struct {
	Topic string `json:"topic"`
	Count int    `json:"dcount"`
}

func NewBoardMetadataResponse(b domain.BoardMetadata) BoardMetadataResponse {
	return BoardMetadataResponse{Id: b.Id, Owner: b.Owner, Topic: b.Topic, Context: b.Context, CreatedAt: b.CreatedAt}
}

func NewBoardResponse(b domain.Board) BoardResponse {
	threads := make([]ThreadMetadataResponse, len(b.Threads))
	for i, t := range b.Threads {
		threads[i] = NewThreadMetadataResponse(t)
	}
	return BoardResponse{BoardMetadataResponse: NewBoardMetadataResponse(b.BoardMetadata), Threads: threads}
}
