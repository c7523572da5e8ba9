package handler

import (
	"net/http"

	"github.com/itchan-dev/bulletin/backend/internal/permission"
	"github.com/itchan-dev/bulletin/shared/api"
	"github.com/itchan-dev/bulletin/shared/domain"
	mw "github.com/itchan-dev/bulletin/shared/middleware"
	"github.com/itchan-dev/bulletin/shared/utils"
)

// GetModeratorRequests lists the caller's pending requests.
func (h *Handler) GetModeratorRequests(w http.ResponseWriter, r *http.Request) {
	user := mw.GetUserFromContext(r)
	if !h.perm.Moderator(permission.Read, user, 0) {
		forbidden(w)
		return
	}

	requests, err := h.moderator.Pending(user.Id)
	if err != nil {
		utils.WriteErrorAndStatusCode(w, err)
		return
	}

	response := api.ModeratorListResponse{Requests: make([]api.ModeratorResponse, len(requests))}
	for i, m := range requests {
		response.Requests[i] = api.NewModeratorResponse(m)
	}
	writeJSON(w, response)
}

func (h *Handler) RequestModerator(w http.ResponseWriter, r *http.Request) {
	if !h.perm.Moderator(permission.Create, mw.GetUserFromContext(r), 0) {
		forbidden(w)
		return
	}

	var body api.ModeratorRequest
	if err := utils.DecodeValidate(r.Body, &body); err != nil {
		http.Error(w, "please check the data you have sent. username and board_id is required.", http.StatusBadRequest)
		return
	}

	id, err := h.moderator.Request(domain.ModeratorRequestData{Username: body.Username, Board: body.BoardId})
	if err != nil {
		utils.WriteErrorAndStatusCode(w, err)
		return
	}
	writeJSONStatus(w, http.StatusCreated, api.CreatedResponse{Message: "moderator request successfully created.", Id: id})
}

// ApproveModerator activates a pending request. request_id is read before the
// permission check, the rest of the body is validated after it.
func (h *Handler) ApproveModerator(w http.ResponseWriter, r *http.Request) {
	var body api.ApproveModeratorRequest
	decodeErr := utils.Decode(r.Body, &body)
	if !h.perm.Moderator(permission.Update, mw.GetUserFromContext(r), body.RequestId) {
		forbidden(w)
		return
	}
	if decodeErr != nil || utils.Validate(&body) != nil {
		http.Error(w, "invalid request id!", http.StatusBadRequest)
		return
	}

	if err := h.moderator.Approve(body.RequestId); err != nil {
		utils.WriteErrorAndStatusCode(w, err)
		return
	}
	writeJSON(w, api.MessageResponse{Message: "request accepted!"})
}
