package handler

import (
	"fmt"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/itchan-dev/bulletin/backend/internal/permission"
	"github.com/itchan-dev/bulletin/shared/api"
	"github.com/itchan-dev/bulletin/shared/domain"
	mw "github.com/itchan-dev/bulletin/shared/middleware"
	"github.com/itchan-dev/bulletin/shared/utils"
)

func (h *Handler) GetBoards(w http.ResponseWriter, r *http.Request) {
	if !h.perm.Board(permission.Read, mw.GetUserFromContext(r), "") {
		forbidden(w)
		return
	}

	boards, err := h.board.List()
	if err != nil {
		utils.WriteErrorAndStatusCode(w, err)
		return
	}

	response := api.BoardListResponse{Boards: make([]api.BoardMetadataResponse, len(boards))}
	for i, b := range boards {
		response.Boards[i] = api.NewBoardMetadataResponse(b)
	}
	writeJSON(w, response)
}

func (h *Handler) CreateBoard(w http.ResponseWriter, r *http.Request) {
	user := mw.GetUserFromContext(r)
	if !h.perm.Board(permission.Create, user, "") {
		forbidden(w)
		return
	}

	var body api.CreateBoardRequest
	if err := utils.DecodeValidate(r.Body, &body); err != nil {
		utils.WriteErrorAndStatusCode(w, err)
		return
	}

	id, err := h.board.Create(domain.BoardCreationData{Owner: user.Id, Topic: body.Topic, Context: body.Context})
	if err != nil {
		utils.WriteErrorAndStatusCode(w, err)
		return
	}

	writeJSONStatus(w, http.StatusCreated, api.CreatedResponse{
		Message: fmt.Sprintf("successfully created board with id %s.", id),
		Id:      id,
	})
}

func (h *Handler) GetBoard(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	if !h.perm.Board(permission.Read, mw.GetUserFromContext(r), id) {
		forbidden(w)
		return
	}

	board, err := h.board.Get(id)
	if err != nil {
		utils.WriteErrorAndStatusCode(w, err)
		return
	}
	writeJSON(w, api.NewBoardResponse(*board))
}

// UpdateBoard serves PUT, which replaces topic and context.
func (h *Handler) UpdateBoard(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	if !h.perm.Board(permission.Update, mw.GetUserFromContext(r), id) {
		forbidden(w)
		return
	}

	var body api.UpdateBoardRequest
	if err := utils.DecodeValidate(r.Body, &body); err != nil {
		utils.WriteErrorAndStatusCode(w, err)
		return
	}
	h.updateBoard(w, id, domain.BoardUpdateData{Topic: &body.Topic, Context: &body.Context})
}

// PatchBoard serves PATCH, which changes only the fields present.
func (h *Handler) PatchBoard(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	if !h.perm.Board(permission.Update, mw.GetUserFromContext(r), id) {
		forbidden(w)
		return
	}

	var body api.PatchBoardRequest
	if err := utils.DecodeValidate(r.Body, &body); err != nil {
		utils.WriteErrorAndStatusCode(w, err)
		return
	}
	h.updateBoard(w, id, domain.BoardUpdateData{Topic: body.Topic, Context: body.Context})
}

func (h *Handler) updateBoard(w http.ResponseWriter, id domain.BoardId, data domain.BoardUpdateData) {
	board, err := h.board.Update(id, data)
	if err != nil {
		utils.WriteErrorAndStatusCode(w, err)
		return
	}
	writeJSON(w, api.MessageResponse{Message: fmt.Sprintf("successfully modified board with id %s.", board.Id)})
}

func (h *Handler) DeleteBoard(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	if !h.perm.Board(permission.Delete, mw.GetUserFromContext(r), id) {
		forbidden(w)
		return
	}

	if err := h.board.Delete(id); err != nil {
		writeDeleteError(w, err, "board_id", id)
		return
	}
	writeJSON(w, api.MessageResponse{Message: fmt.Sprintf("board with id %s deleted successfully!", id)})
}
