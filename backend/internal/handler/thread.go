package handler

import (
	"fmt"
	"net/http"

	"github.com/itchan-dev/bulletin/backend/internal/permission"
	"github.com/itchan-dev/bulletin/shared/api"
	"github.com/itchan-dev/bulletin/shared/domain"
	mw "github.com/itchan-dev/bulletin/shared/middleware"
	"github.com/itchan-dev/bulletin/shared/utils"
)

// GetThread returns a thread with its posts.
func (h *Handler) GetThread(w http.ResponseWriter, r *http.Request) {
	id, err := threadIdFrom(r)
	if err != nil {
		utils.WriteErrorAndStatusCode(w, err)
		return
	}
	if !h.perm.Thread(permission.Read, mw.GetUserFromContext(r), id) {
		forbidden(w)
		return
	}

	thread, err := h.thread.Get(id)
	if err != nil {
		utils.WriteErrorAndStatusCode(w, err)
		return
	}

	response := api.ThreadResponse{
		ThreadMetadataResponse: api.NewThreadMetadataResponse(thread.ThreadMetadata),
		Posts:                  make([]api.PostResponse, len(thread.Posts)),
	}
	for i, p := range thread.Posts {
		response.Posts[i] = api.NewPostResponse(p, h.markup.Render)
	}
	writeJSON(w, response)
}

func (h *Handler) CreateThread(w http.ResponseWriter, r *http.Request) {
	user := mw.GetUserFromContext(r)
	if !h.perm.Thread(permission.Create, user, "") {
		forbidden(w)
		return
	}

	var body api.CreateThreadRequest
	if err := utils.DecodeValidate(r.Body, &body); err != nil {
		utils.WriteErrorAndStatusCode(w, err)
		return
	}

	id, err := h.thread.Create(domain.ThreadCreationData{Owner: user.Id, Board: body.BoardId, Text: body.Text})
	if err != nil {
		utils.WriteErrorAndStatusCode(w, err)
		return
	}

	writeJSONStatus(w, http.StatusCreated, api.CreatedResponse{
		Message: fmt.Sprintf("successfully created thread with id %s.", id),
		Id:      id,
	})
}

// UpdateThread replaces the thread text. The target id may sit in the body,
// so the body is decoded before the permission check and validated after it.
func (h *Handler) UpdateThread(w http.ResponseWriter, r *http.Request) {
	var body api.UpdateThreadRequest
	decodeErr := utils.Decode(r.Body, &body)
	id := body.ThreadId
	if id == "" {
		id = r.URL.Query().Get("thread_id")
	}

	if !h.perm.Thread(permission.Update, mw.GetUserFromContext(r), id) {
		forbidden(w)
		return
	}

	if decodeErr != nil {
		utils.WriteErrorAndStatusCode(w, decodeErr)
		return
	}
	if id == "" {
		http.Error(w, "thread id or updated text is missing", http.StatusBadRequest)
		return
	}
	if err := utils.Validate(&body); err != nil {
		utils.WriteErrorAndStatusCode(w, err)
		return
	}

	if err := h.thread.UpdateText(id, body.Text); err != nil {
		utils.WriteErrorAndStatusCode(w, err)
		return
	}
	writeJSON(w, api.MessageResponse{Message: "thread text updated!"})
}

func (h *Handler) DeleteThread(w http.ResponseWriter, r *http.Request) {
	id, err := threadIdFrom(r)
	if err != nil {
		utils.WriteErrorAndStatusCode(w, err)
		return
	}
	if !h.perm.Thread(permission.Delete, mw.GetUserFromContext(r), id) {
		forbidden(w)
		return
	}

	if err := h.thread.Delete(id); err != nil {
		writeDeleteError(w, err, "thread_id", id)
		return
	}
	writeJSON(w, api.MessageResponse{Message: "thread deleted!"})
}
