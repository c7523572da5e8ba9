package handler

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/itchan-dev/bulletin/backend/internal/permission"
	"github.com/itchan-dev/bulletin/backend/internal/service"
	"github.com/itchan-dev/bulletin/shared/config"
	"github.com/itchan-dev/bulletin/shared/domain"
	"github.com/itchan-dev/bulletin/shared/logger"
)

// Permissions is satisfied by *permission.Evaluator.
type Permissions interface {
	Board(action permission.Action, actor *domain.User, id domain.BoardId) bool
	Thread(action permission.Action, actor *domain.User, id domain.ThreadId) bool
	Post(action permission.Action, actor *domain.User, id domain.PostId) bool
	Moderator(action permission.Action, actor *domain.User, id domain.ModeratorId) bool
}

type Renderer interface {
	Render(content string) string
}

type HealthChecker interface {
	Ping(ctx context.Context) error
}

type Handler struct {
	auth      service.AuthService
	board     service.BoardService
	thread    service.ThreadService
	post      service.PostService
	moderator service.ModeratorService
	perm      Permissions
	markup    Renderer
	health    HealthChecker
	cfg       *config.Config
}

func New(
	auth service.AuthService,
	board service.BoardService,
	thread service.ThreadService,
	post service.PostService,
	moderator service.ModeratorService,
	perm Permissions,
	markup Renderer,
	health HealthChecker,
	cfg *config.Config,
) *Handler {
	return &Handler{
		auth:      auth,
		board:     board,
		thread:    thread,
		post:      post,
		moderator: moderator,
		perm:      perm,
		markup:    markup,
		health:    health,
		cfg:       cfg,
	}
}

func writeJSON(w http.ResponseWriter, v interface{}) {
	writeJSONStatus(w, http.StatusOK, v)
}

func writeJSONStatus(w http.ResponseWriter, status int, v interface{}) {
	data, err := json.Marshal(v)
	if err != nil {
		logger.Log.Error("failed to encode response", "error", err)
		http.Error(w, "Internal error", http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	w.Write(append(data, '\n'))
}
