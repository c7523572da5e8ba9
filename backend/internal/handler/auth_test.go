package handler

import (
	"net/http"
	"testing"

	"github.com/itchan-dev/bulletin/shared/api"
	"github.com/itchan-dev/bulletin/shared/domain"
	internal_errors "github.com/itchan-dev/bulletin/shared/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type MockAuthService struct {
	MockRegister     func(data domain.RegistrationData) (domain.TokenKey, error)
	MockLogin        func(creds domain.Credentials) (domain.TokenKey, error)
	MockAuthenticate func(key domain.TokenKey) (*domain.User, error)
}

func (m *MockAuthService) Register(data domain.RegistrationData) (domain.TokenKey, error) {
	if m.MockRegister != nil {
		return m.MockRegister(data)
	}
	return "token", nil
}

func (m *MockAuthService) Login(creds domain.Credentials) (domain.TokenKey, error) {
	if m.MockLogin != nil {
		return m.MockLogin(creds)
	}
	return "token", nil
}

func (m *MockAuthService) Authenticate(key domain.TokenKey) (*domain.User, error) {
	if m.MockAuthenticate != nil {
		return m.MockAuthenticate(key)
	}
	return testUser, nil
}

func TestRegister(t *testing.T) {
	t.Run("registered", func(t *testing.T) {
		var got domain.RegistrationData
		h := &Handler{auth: &MockAuthService{MockRegister: func(data domain.RegistrationData) (domain.TokenKey, error) {
			got = data
			return "abc", nil
		}}}
		body := []byte(`{"username": "alice", "password": "password123", "phone_number": "555"}`)
		rr := serve(t, http.MethodPost, "/register/", h.Register, "/register/", body, nil)

		require.Equal(t, http.StatusOK, rr.Code)
		var resp api.TokenResponse
		decodeBody(t, rr, &resp)
		assert.Equal(t, api.TokenResponse{Message: "successfully registered.", Token: "abc"}, resp)
		assert.Equal(t, "alice", got.Username)
		require.NotNil(t, got.PhoneNumber)
		assert.Equal(t, "555", *got.PhoneNumber)
	})

	t.Run("short password", func(t *testing.T) {
		h := &Handler{auth: &MockAuthService{}}
		rr := serve(t, http.MethodPost, "/register/", h.Register, "/register/", []byte(`{"username": "alice", "password": "short"}`), nil)
		assert.Equal(t, http.StatusBadRequest, rr.Code)
	})

	t.Run("username taken", func(t *testing.T) {
		h := &Handler{auth: &MockAuthService{MockRegister: func(domain.RegistrationData) (domain.TokenKey, error) {
			return "", internal_errors.BadRequest("user with this username already exists.")
		}}}
		rr := serve(t, http.MethodPost, "/register/", h.Register, "/register/", []byte(`{"username": "alice", "password": "password123"}`), nil)
		assert.Equal(t, http.StatusBadRequest, rr.Code)
		assert.Contains(t, rr.Body.String(), "already exists")
	})
}

func TestLogin(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		h := &Handler{auth: &MockAuthService{MockLogin: func(creds domain.Credentials) (domain.TokenKey, error) {
			assert.Equal(t, domain.Credentials{Username: "alice", Password: "password123"}, creds)
			return "abc", nil
		}}}
		rr := serve(t, http.MethodPost, "/login/", h.Login, "/login/", []byte(`{"username": "alice", "password": "password123"}`), nil)

		require.Equal(t, http.StatusOK, rr.Code)
		var resp api.TokenResponse
		decodeBody(t, rr, &resp)
		assert.Equal(t, "login successful.", resp.Message)
		assert.Equal(t, "abc", resp.Token)
	})

	t.Run("wrong password", func(t *testing.T) {
		h := &Handler{auth: &MockAuthService{MockLogin: func(domain.Credentials) (domain.TokenKey, error) {
			return "", internal_errors.BadRequest("provided data is incorrect.")
		}}}
		rr := serve(t, http.MethodPost, "/login/", h.Login, "/login/", []byte(`{"username": "alice", "password": "wrong-password"}`), nil)

		assert.Equal(t, http.StatusBadRequest, rr.Code)
		assert.Equal(t, "provided data is incorrect.\n", rr.Body.String())
	})

	t.Run("invalid json", func(t *testing.T) {
		h := &Handler{auth: &MockAuthService{}}
		rr := serve(t, http.MethodPost, "/login/", h.Login, "/login/", []byte(`{bad`), nil)
		assert.Equal(t, http.StatusBadRequest, rr.Code)
	})
}
