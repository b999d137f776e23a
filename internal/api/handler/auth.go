package handler

import (
	"errors"
	"net/http"
	"strings"

	"github.com/sirupsen/logrus"

	"todayrates/internal/domain"
)

type LoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,min=8"`
}

type LoginResponse struct {
	Token string `json:"token"`
}

// Login godoc
// @Summary Admin sign in
// @Description Exchanges email and password for a bearer token.
// @Tags Auth
// @Accept json
// @Produce json
// @Param request body LoginRequest true "Credentials"
// @Success 200 {object} LoginResponse
// @Failure 400 {object} errorResponse
// @Failure 401 {object} errorResponse
// @Failure 500 {object} errorResponse
// @Router /auth/login [post]
func (h *Handler) Login(w http.ResponseWriter, r *http.Request) {
	var req LoginRequest
	if !decodeStrict(w, r, h.validate, &req) {
		return
	}

	token, err := h.auth.SignIn(r.Context(), strings.TrimSpace(req.Email), req.Password)
	if err != nil {
		if errors.Is(err, domain.ErrInvalidCredentials) {
			writeError(w, http.StatusUnauthorized, "invalid email or password")
			return
		}
		msg := "ups, couldn't sign you in this time"
		logrus.WithError(err).WithFields(logrus.Fields{"handler": "Login"}).Error(msg)
		writeError(w, http.StatusInternalServerError, msg)
		return
	}
	writeJSON(w, http.StatusOK, LoginResponse{Token: token})
}
