package service

import (
	"github.com/golang-jwt/jwt/v5"
	"github.com/itchan-dev/bulletin/shared/domain"
	"github.com/itchan-dev/bulletin/shared/errors"
	"github.com/itchan-dev/bulletin/shared/logger"
	"golang.org/x/crypto/bcrypt"
)

type AuthService interface {
	Register(data domain.RegistrationData) (domain.TokenKey, error)
	Login(creds domain.Credentials) (domain.TokenKey, error)
	Authenticate(key domain.TokenKey) (*domain.User, error)
}

type Auth struct {
	storage AuthStorage
	jwt     Jwt
}

type AuthStorage interface {
	SaveUser(user domain.User) (domain.UserId, error)
	SaveProfile(profile domain.Profile) error
	User(username domain.Username) (domain.User, error)
	DeleteUser(id domain.UserId) error
	Token(userId domain.UserId) (domain.Token, error)
	SaveToken(token domain.Token) error
	UserByToken(key domain.TokenKey) (domain.User, error)
}

type Jwt interface {
	NewToken(user domain.User) (string, error)
	DecodeToken(jwtStr string) (*jwt.Token, error)
}

var errIncorrectCredentials = errors.BadRequest("provided data is incorrect.")

func NewAuth(storage AuthStorage, jwt Jwt) *Auth {
	return &Auth{storage: storage, jwt: jwt}
}

// Register creates the user, then its profile and token. If either of those
// fails the user is removed again so registration can be retried.
func (a *Auth) Register(data domain.RegistrationData) (domain.TokenKey, error) {
	passHash, err := bcrypt.GenerateFromPassword([]byte(data.Password), bcrypt.DefaultCost)
	if err != nil {
		logger.Log.Error("failed to hash password", "error", err)
		return "", err
	}

	user := domain.User{Username: data.Username, Email: data.Email, PassHash: string(passHash)}
	user.Id, err = a.storage.SaveUser(user)
	if err != nil {
		return "", err
	}

	key, err := a.afterRegister(user, data.PhoneNumber)
	if err != nil {
		logger.Log.Error("failed to finish registration, removing user", "user_id", user.Id, "error", err)
		if delErr := a.storage.DeleteUser(user.Id); delErr != nil {
			logger.Log.Error("failed to remove user", "user_id", user.Id, "error", delErr)
		}
		return "", err
	}

	logger.Log.Info("user registered", "user_id", user.Id)
	return key, nil
}

func (a *Auth) afterRegister(user domain.User, phone *string) (domain.TokenKey, error) {
	profile := domain.Profile{UserId: user.Id, Role: domain.RoleNewUser, PhoneNumber: phone}
	if err := a.storage.SaveProfile(profile); err != nil {
		return "", err
	}
	user.Profile = profile
	return a.token(user)
}

// Login returns the user's token. Unknown users and wrong passwords get the same answer.
func (a *Auth) Login(creds domain.Credentials) (domain.TokenKey, error) {
	user, err := a.storage.User(creds.Username)
	if err != nil {
		if errors.IsNotFound(err) {
			return "", errIncorrectCredentials
		}
		return "", err
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PassHash), []byte(creds.Password)); err != nil {
		logger.Log.Debug("password verification failed", "user_id", user.Id)
		return "", errIncorrectCredentials
	}

	return a.token(user)
}

// Authenticate resolves a presented key to its user. The signature is checked
// first so forged keys never reach the database.
func (a *Auth) Authenticate(key domain.TokenKey) (*domain.User, error) {
	if _, err := a.jwt.DecodeToken(key); err != nil {
		return nil, err
	}
	user, err := a.storage.UserByToken(key)
	if err != nil {
		if errors.IsNotFound(err) {
			return nil, errors.Unauthorized("Invalid token")
		}
		return nil, err
	}
	return &user, nil
}

// token fetches the user's token or issues one. Two concurrent issuers race on
// the unique user_id, the loser re-reads the winner's key.
func (a *Auth) token(user domain.User) (domain.TokenKey, error) {
	token, err := a.storage.Token(user.Id)
	if err == nil {
		return token.Key, nil
	}
	if !errors.IsNotFound(err) {
		return "", err
	}

	key, err := a.jwt.NewToken(user)
	if err != nil {
		return "", err
	}
	if err := a.storage.SaveToken(domain.Token{Key: key, UserId: user.Id}); err != nil {
		if !errors.IsConflict(err) {
			return "", err
		}
		token, err := a.storage.Token(user.Id)
		if err != nil {
			return "", err
		}
		return token.Key, nil
	}
	return key, nil
}
