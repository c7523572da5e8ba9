// Package permission decides whether an actor may perform an action on a
// board, thread, post or moderator request.
//
// The evaluator answers "is this actor categorically forbidden", not "does the
// resource exist": a lookup that comes back NotFound is an allow and the
// handler reports the 404. Every other lookup failure is a deny. The evaluator
// never returns an error.
package permission

import (
	"github.com/itchan-dev/bulletin/shared/config"
	"github.com/itchan-dev/bulletin/shared/domain"
	internal_errors "github.com/itchan-dev/bulletin/shared/errors"
	"github.com/itchan-dev/bulletin/shared/logger"
	"github.com/itchan-dev/bulletin/shared/middleware/metrics"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

type Action string

const (
	Read   Action = "read"
	Create Action = "create"
	Update Action = "update"
	Delete Action = "delete"
)

type Resource string

const (
	BoardResource     Resource = "board"
	ThreadResource    Resource = "thread"
	PostResource      Resource = "post"
	ModeratorResource Resource = "moderator"
)

var decisionsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: metrics.Namespace,
		Name:      "permission_decisions_total",
		Help:      "Authorization decisions by resource, action and outcome",
	},
	[]string{"resource", "action", "decision"},
)

type Storage interface {
	Board(id domain.BoardId) (domain.BoardMetadata, error)
	Thread(id domain.ThreadId) (domain.ThreadMetadata, error)
	Post(id domain.PostId) (domain.Post, error)
	Moderator(id domain.ModeratorId) (domain.Moderator, error)
	IsActiveModerator(board domain.BoardId, user domain.UserId) (bool, error)
}

type Evaluator struct {
	storage Storage
	policy  config.ApprovalPolicy
}

func New(storage Storage, policy config.ApprovalPolicy) *Evaluator {
	if policy == "" {
		policy = config.ApproveBySelf
	}
	return &Evaluator{storage: storage, policy: policy}
}

// rule reports whether the action is allowed. A NotFound error means the
// target is gone and is resolved by decide.
type rule func() (bool, error)

func allow() (bool, error) { return true, nil }
func deny() (bool, error)  { return false, nil }

func (e *Evaluator) Board(action Action, actor *domain.User, id domain.BoardId) bool {
	return e.decide(BoardResource, action, actor, func() (bool, error) {
		switch action {
		case Read:
			return allow()
		case Create:
			return actor != nil, nil
		case Update:
			if actor == nil {
				return deny()
			}
			if _, err := e.storage.Board(id); err != nil {
				return false, err
			}
			return e.storage.IsActiveModerator(id, actor.Id)
		case Delete:
			// a missing target is allowed even for anonymous callers, the handler answers 404
			board, err := e.storage.Board(id)
			if err != nil {
				return false, err
			}
			if actor == nil {
				return deny()
			}
			return board.Owner == actor.Id, nil
		}
		return deny()
	})
}

func (e *Evaluator) Thread(action Action, actor *domain.User, id domain.ThreadId) bool {
	return e.decide(ThreadResource, action, actor, func() (bool, error) {
		switch action {
		case Read:
			return allow()
		case Create:
			return actor != nil, nil
		case Update:
			if actor == nil {
				return deny()
			}
			thread, err := e.storage.Thread(id)
			if err != nil {
				return false, err
			}
			return e.storage.IsActiveModerator(thread.Board, actor.Id)
		case Delete:
			thread, err := e.storage.Thread(id)
			if err != nil {
				return false, err
			}
			if actor == nil {
				return deny()
			}
			return thread.Owner == actor.Id, nil
		}
		return deny()
	})
}

func (e *Evaluator) Post(action Action, actor *domain.User, id domain.PostId) bool {
	return e.decide(PostResource, action, actor, func() (bool, error) {
		switch action {
		case Read:
			return allow()
		case Create:
			return actor != nil, nil
		case Update:
			if actor == nil {
				return deny()
			}
			post, err := e.storage.Post(id)
			if err != nil {
				return false, err
			}
			thread, err := e.storage.Thread(post.Thread)
			if err != nil {
				return false, err
			}
			return e.storage.IsActiveModerator(thread.Board, actor.Id)
		case Delete:
			post, err := e.storage.Post(id)
			if err != nil {
				return false, err
			}
			if actor == nil {
				return deny()
			}
			return post.Author == actor.Id, nil
		}
		return deny()
	})
}

// Moderator evaluates moderator requests. For Update, id is the pending
// request being approved; it is ignored for the other actions.
func (e *Evaluator) Moderator(action Action, actor *domain.User, id domain.ModeratorId) bool {
	return e.decide(ModeratorResource, action, actor, func() (bool, error) {
		if actor == nil {
			return deny()
		}
		switch action {
		case Read, Create:
			return allow()
		case Update:
			request, err := e.storage.Moderator(id)
			if err != nil {
				return false, err
			}
			if e.policy == config.ApproveBySelf {
				return request.Moderator == actor.Id, nil
			}
			board, err := e.storage.Board(request.Board)
			if err != nil {
				return false, err
			}
			if board.Owner == actor.Id {
				return allow()
			}
			return e.storage.IsActiveModerator(board.Id, actor.Id)
		}
		return deny()
	})
}

func (e *Evaluator) decide(resource Resource, action Action, actor *domain.User, r rule) bool {
	allowed, err := r()
	if err != nil {
		if internal_errors.IsNotFound(err) {
			allowed = true
		} else {
			logger.Log.Error("permission lookup failed, denying",
				"resource", resource, "action", action, "actor", actorId(actor), "error", err)
			allowed = false
		}
	}

	decision := "allow"
	if !allowed {
		decision = "deny"
		logger.Log.Debug("permission denied", "resource", resource, "action", action, "actor", actorId(actor))
	}
	decisionsTotal.WithLabelValues(string(resource), string(action), decision).Inc()
	return allowed
}

func actorId(actor *domain.User) any {
	if actor == nil {
		return "anonymous"
	}
	return actor.Id
}
