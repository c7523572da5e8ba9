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

// GetPosts lists all posts, or the posts of one thread with ?thread_id=.
func (h *Handler) GetPosts(w http.ResponseWriter, r *http.Request) {
	if !h.perm.Post(permission.Read, mw.GetUserFromContext(r), 0) {
		forbidden(w)
		return
	}

	var thread *domain.ThreadId
	if id := r.URL.Query().Get("thread_id"); id != "" {
		thread = &id
	}

	posts, err := h.post.List(thread)
	if err != nil {
		utils.WriteErrorAndStatusCode(w, err)
		return
	}

	response := api.PostListResponse{Posts: make([]api.PostResponse, len(posts))}
	for i, p := range posts {
		response.Posts[i] = api.NewPostResponse(p, h.markup.Render)
	}
	writeJSON(w, response)
}

func (h *Handler) CreatePost(w http.ResponseWriter, r *http.Request) {
	user := mw.GetUserFromContext(r)
	if !h.perm.Post(permission.Create, user, 0) {
		forbidden(w)
		return
	}

	var body api.CreatePostRequest
	if err := utils.DecodeValidate(r.Body, &body); err != nil {
		utils.WriteErrorAndStatusCode(w, err)
		return
	}

	id, err := h.post.Create(domain.PostCreationData{Author: user.Id, Thread: body.ThreadId, Title: body.Title, Content: body.Content})
	if err != nil {
		utils.WriteErrorAndStatusCode(w, err)
		return
	}

	writeJSONStatus(w, http.StatusCreated, api.CreatedResponse{Message: "successfully created post.", Id: id})
}

func (h *Handler) GetPost(w http.ResponseWriter, r *http.Request) {
	id, err := parseIdParam(chi.URLParam(r, "id"), "post id")
	if err != nil {
		utils.WriteErrorAndStatusCode(w, err)
		return
	}
	if !h.perm.Post(permission.Read, mw.GetUserFromContext(r), id) {
		forbidden(w)
		return
	}

	post, err := h.post.Get(id)
	if err != nil {
		utils.WriteErrorAndStatusCode(w, err)
		return
	}
	writeJSON(w, api.NewPostResponse(post, h.markup.Render))
}

// UpdatePost serves PUT, which replaces title and content.
func (h *Handler) UpdatePost(w http.ResponseWriter, r *http.Request) {
	id, err := parseIdParam(chi.URLParam(r, "id"), "post id")
	if err != nil {
		utils.WriteErrorAndStatusCode(w, err)
		return
	}
	if !h.perm.Post(permission.Update, mw.GetUserFromContext(r), id) {
		forbidden(w)
		return
	}

	var body api.UpdatePostRequest
	if err := utils.DecodeValidate(r.Body, &body); err != nil {
		utils.WriteErrorAndStatusCode(w, err)
		return
	}
	h.updatePost(w, id, domain.PostUpdateData{Title: &body.Title, Content: &body.Content})
}

// PatchPost serves PATCH, which changes only the fields present.
func (h *Handler) PatchPost(w http.ResponseWriter, r *http.Request) {
	id, err := parseIdParam(chi.URLParam(r, "id"), "post id")
	if err != nil {
		utils.WriteErrorAndStatusCode(w, err)
		return
	}
	if !h.perm.Post(permission.Update, mw.GetUserFromContext(r), id) {
		forbidden(w)
		return
	}

	var body api.PatchPostRequest
	if err := utils.DecodeValidate(r.Body, &body); err != nil {
		utils.WriteErrorAndStatusCode(w, err)
		return
	}
	h.updatePost(w, id, domain.PostUpdateData{Title: body.Title, Content: body.Content})
}

func (h *Handler) updatePost(w http.ResponseWriter, id domain.PostId, data domain.PostUpdateData) {
	if _, err := h.post.Update(id, data); err != nil {
		utils.WriteErrorAndStatusCode(w, err)
		return
	}
	writeJSON(w, api.MessageResponse{Message: "successfully modified post."})
}

func (h *Handler) DeletePost(w http.ResponseWriter, r *http.Request) {
	id, err := parseIdParam(chi.URLParam(r, "id"), "post id")
	if err != nil {
		utils.WriteErrorAndStatusCode(w, err)
		return
	}
	if !h.perm.Post(permission.Delete, mw.GetUserFromContext(r), id) {
		forbidden(w)
		return
	}

	if err := h.post.Delete(id); err != nil {
		writeDeleteError(w, err, "post_id", id)
		return
	}
	writeJSON(w, api.MessageResponse{Message: fmt.Sprintf("post with id %d deleted successfully!", id)})
}
