package api

import "github.com/itchan-dev/bulletin/shared/domain"

// Request DTOs

type ModeratorRequest struct {
	Username string `json:"username" validate:"required"`
	BoardId  string `json:"board_id" validate:"required"`
}

type ApproveModeratorRequest struct {
	RequestId int64 `json:"request_id" validate:"required"`
}

// Response DTOs

type ModeratorResponse struct {
	Id        int64  `json:"id"`
	Moderator int64  `json:"moderator_id"`
	Board     string `json:"board_id"`
	Active    bool   `json:"active"`
}

type ModeratorListResponse struct {
	Requests []ModeratorResponse `json:"requests"`
}

func NewModeratorResponse(m domain.Moderator) ModeratorResponse {
	return ModeratorResponse{Id: m.Id, Moderator: m.Moderator, Board: m.Board, Active: m.Active}
}
