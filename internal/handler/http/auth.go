package http

import (
	"net/http"

	"github.com/MKhiriev/go-zone-keeper/internal/logger"
	"github.com/MKhiriev/go-zone-keeper/internal/utils"
	"github.com/MKhiriev/go-zone-keeper/models"
)

func (h *Handler) register(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	var user models.User
	if !decodeBody(w, r, &user) {
		return
	}

	registeredUser, err := h.services.AuthService.RegisterUser(ctx, user)
	if err != nil {
		log.Err(err).Str("login", user.Login).Msg("user registration failed")
		writeError(w, err)
		return
	}

	log.Info().Int64("id", registeredUser.UserID).Str("login", registeredUser.Login).Msg("user registered")
	h.issueToken(w, r, registeredUser)
}

func (h *Handler) login(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	var user models.User
	if !decodeBody(w, r, &user) {
		return
	}

	foundUser, err := h.services.AuthService.Login(ctx, user)
	if err != nil {
		log.Err(err).Str("login", user.Login).Msg("login failed")
		writeError(w, err)
		return
	}

	log.Debug().Int64("id", foundUser.UserID).Msg("user successfully logged in")
	h.issueToken(w, r, foundUser)
}

// issueToken answers with the bearer token in the Authorization header and
// the public part of the user in the body.
func (h *Handler) issueToken(w http.ResponseWriter, r *http.Request, user models.User) {
	token, err := h.services.AuthService.CreateToken(r.Context(), user)
	if err != nil {
		logger.FromRequest(r).Err(err).Msg("creation of token failed")
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return
	}

	w.Header().Set(models.HeaderAuthorization, "Bearer "+token.SignedString)
	utils.WriteJSON(w, models.User{Login: user.Login, CreatedAt: user.CreatedAt}, http.StatusOK)
}
