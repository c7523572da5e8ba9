package setup

import (
	"github.com/itchan-dev/bulletin/backend/internal/handler"
	"github.com/itchan-dev/bulletin/backend/internal/markup"
	"github.com/itchan-dev/bulletin/backend/internal/permission"
	"github.com/itchan-dev/bulletin/backend/internal/service"
	"github.com/itchan-dev/bulletin/backend/internal/storage/pg"
	"github.com/itchan-dev/bulletin/backend/internal/utils"
	"github.com/itchan-dev/bulletin/shared/config"
	"github.com/itchan-dev/bulletin/shared/jwt"
	mw "github.com/itchan-dev/bulletin/shared/middleware"
)

// Dependencies struct to hold all initialized dependencies.
type Dependencies struct {
	Config         *config.Config
	Storage        *pg.Storage
	Handler        *handler.Handler
	AuthMiddleware *mw.Auth
}

// SetupDependencies initializes all dependencies required for the application.
func SetupDependencies(cfg *config.Config) (*Dependencies, error) {
	storage, err := pg.New(cfg)
	if err != nil {
		return nil, err
	}

	tokens := jwt.New(cfg.TokenKey())

	auth := service.NewAuth(storage, tokens)
	board := service.NewBoard(storage, &utils.BoardValidator{})
	thread := service.NewThread(storage, &utils.ThreadValidator{})
	post := service.NewPost(storage, &utils.PostValidator{})
	moderator := service.NewModerator(storage)

	perm := permission.New(storage, cfg.ApprovalPolicy())

	h := handler.New(auth, board, thread, post, moderator, perm, markup.New(), storage, cfg)

	return &Dependencies{
		Config:         cfg,
		Storage:        storage,
		Handler:        h,
		AuthMiddleware: mw.NewAuth(auth),
	}, nil
}
