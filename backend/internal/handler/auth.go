package handler

import (
	"net/http"

	"github.com/itchan-dev/bulletin/shared/api"
	"github.com/itchan-dev/bulletin/shared/domain"
	"github.com/itchan-dev/bulletin/shared/utils"
)

// Register creates the user and answers with its bearer token.
func (h *Handler) Register(w http.ResponseWriter, r *http.Request) {
	var body api.RegisterRequest
	if err := utils.DecodeValidate(r.Body, &body); err != nil {
		utils.WriteErrorAndStatusCode(w, err)
		return
	}

	token, err := h.auth.Register(domain.RegistrationData{
		Credentials: domain.Credentials{Username: body.Username, Password: body.Password},
		Email:       body.Email,
		PhoneNumber: body.PhoneNumber,
	})
	if err != nil {
		utils.WriteErrorAndStatusCode(w, err)
		return
	}
	writeJSON(w, api.TokenResponse{Message: "successfully registered.", Token: token})
}

func (h *Handler) Login(w http.ResponseWriter, r *http.Request) {
	var body api.LoginRequest
	if err := utils.DecodeValidate(r.Body, &body); err != nil {
		utils.WriteErrorAndStatusCode(w, err)
		return
	}

	token, err := h.auth.Login(domain.Credentials{Username: body.Username, Password: body.Password})
	if err != nil {
		utils.WriteErrorAndStatusCode(w, err)
		return
	}
	writeJSON(w, api.TokenResponse{Message: "login successful.", Token: token})
}
