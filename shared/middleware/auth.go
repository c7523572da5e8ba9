package middleware

import (
	"context"
	"errors"
	"net/http"
	"strings"

	"github.com/itchan-dev/bulletin/shared/domain"
	"github.com/itchan-dev/bulletin/shared/utils"
)

// Authenticator resolves a bearer credential to its user.
type Authenticator interface {
	Authenticate(key domain.TokenKey) (*domain.User, error)
}

// Key to store the user in the request context
type key int

const UserKey key = 0

var errNoToken = errors.New("no token")

// Auth holds dependencies for authentication middleware
type Auth struct {
	authenticator Authenticator
}

func NewAuth(authenticator Authenticator) *Auth {
	return &Auth{authenticator: authenticator}
}

// OptionalAuth lets anonymous requests through. A request that presents a
// credential must present a valid one.
func (a *Auth) OptionalAuth() func(http.Handler) http.Handler {
	return a.auth(false, false)
}

// NeedAuth returns middleware that requires authentication
func (a *Auth) NeedAuth() func(http.Handler) http.Handler {
	return a.auth(true, false)
}

// AdminOnly returns middleware that requires a user with admin role
func (a *Auth) AdminOnly() func(http.Handler) http.Handler {
	return a.auth(true, true)
}

func (a *Auth) auth(required, adminOnly bool) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			user, err := a.extractUser(r)
			if err != nil {
				if errors.Is(err, errNoToken) {
					if required {
						http.Error(w, "Authentication credentials were not provided.", http.StatusUnauthorized)
						return
					}
					next.ServeHTTP(w, r)
					return
				}
				utils.WriteErrorAndStatusCode(w, err)
				return
			}

			if adminOnly && !user.IsAdmin() {
				http.Error(w, "Access denied. Only for admin", http.StatusForbidden)
				return
			}

			next.ServeHTTP(w, r.WithContext(WithUser(r.Context(), user)))
		})
	}
}

func (a *Auth) extractUser(r *http.Request) (*domain.User, error) {
	key := tokenFromHeader(r.Header.Get("Authorization"))
	if key == "" {
		return nil, errNoToken
	}
	return a.authenticator.Authenticate(key)
}

// tokenFromHeader accepts both "Token <key>" and "Bearer <key>".
func tokenFromHeader(header string) string {
	for _, prefix := range []string{"Token ", "Bearer "} {
		if key, found := strings.CutPrefix(header, prefix); found {
			return strings.TrimSpace(key)
		}
	}
	return ""
}

func WithUser(ctx context.Context, user *domain.User) context.Context {
	return context.WithValue(ctx, UserKey, user)
}

// GetUserFromContext returns nil for anonymous requests
func GetUserFromContext(r *http.Request) *domain.User {
	user, ok := r.Context().Value(UserKey).(*domain.User)
	if !ok {
		return nil
	}
	return user
}
