package api

import (
	"time"

	"github.com/itchan-dev/bulletin/shared/domain"
)

// Request DTOs

type CreateThreadRequest struct {
	BoardId string `json:"board_id" validate:"required"`
	Text    string `json:"text" validate:"required,max=255"`
}

// ThreadId may also come from the query string
type UpdateThreadRequest struct {
	ThreadId string `json:"thread_id"`
	Text     string `json:"text" validate:"required,max=255"`
}

// ThreadIdRequest carries the target of GET and DELETE /thread/ when it is
// not in the query string
type ThreadIdRequest struct {
	ThreadId string `json:"thread_id"`
}

// Response DTOs

type ThreadMetadataResponse struct {
	Id        string    `json:"id"`
	Owner     int64     `json:"owner_id"`
	Board     string    `json:"board_id"`
	Text      string    `json:"text"`
	CreatedAt time.Time `json:"created_at"`
}

type ThreadResponse struct {
	ThreadMetadataResponse
	Posts []PostResponse `json:"posts"`
}

func NewThreadMetadataResponse(t domain.ThreadMetadata) ThreadMetadataResponse {
	return ThreadMetadataResponse{Id: t.Id, Owner: t.Owner, Board: t.Board, Text: t.Text, CreatedAt: t.CreatedAt}
}
