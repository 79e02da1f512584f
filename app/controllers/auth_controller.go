package controllers

import (
	"net/http"

	"github.com/cropconnect/api/app/models"
	"github.com/cropconnect/api/app/services"
	"github.com/cropconnect/api/pkg/bind"
	"github.com/cropconnect/api/pkg/response"
)

type AuthController struct {
	auth *services.AuthService
}

func NewAuth(auth *services.AuthService) *AuthController {
	return &AuthController{auth: auth}
}

// authPayload is the body of register and login responses.
type authPayload struct {
	User  *models.User `json:"user"`
	Token string       `json:"token"`
}

type loginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

// Register handles POST /auth/register.
func (c *AuthController) Register(w http.ResponseWriter, r *http.Request) {
	var in services.RegisterInput
	if errs, err := bind.JSON(r, &in); err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid request body")
		return
	} else if errs != nil {
		response.ValidationError(w, errs)
		return
	}

	user, token, err := c.auth.Register(r.Context(), in)
	if err != nil {
		respondErr(w, r, err, "User not found")
		return
	}
	response.Created(w, authPayload{User: user, Token: token})
}

// Login handles POST /auth/login.
func (c *AuthController) Login(w http.ResponseWriter, r *http.Request) {
	var in loginRequest
	if errs, err := bind.JSON(r, &in); err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid request body")
		return
	} else if errs != nil {
		response.ValidationError(w, errs)
		return
	}

	user, token, err := c.auth.Login(r.Context(), in.Email, in.Password)
	if err != nil {
		respondErr(w, r, err, "User not found")
		return
	}
	response.Success(w, authPayload{User: user, Token: token})
}
