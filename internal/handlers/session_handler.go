package handlers

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/go-playground/validator/v10"

	"github.com/muhammad-sohel131/groupStudy-backend/internal/auth"
	"github.com/muhammad-sohel131/groupStudy-backend/internal/utils"
)

type identityPayload struct {
	Email string `json:"email" validate:"required,email"`
}

// SessionHandler mints and clears the session cookie. The token inside
// is self-contained: logout only clears the client's cookie, a
// previously issued token stays valid until it expires.
type SessionHandler struct {
	codec    *auth.Codec
	secure   bool
	validate *validator.Validate
}

func NewSessionHandler(codec *auth.Codec, secure bool) *SessionHandler {
	return &SessionHandler{
		codec:    codec,
		secure:   secure,
		validate: validator.New(),
	}
}

// IssueToken signs a session token for the posted identity and sets it
// as the session cookie.
func (h *SessionHandler) IssueToken(w http.ResponseWriter, r *http.Request) {
	var payload identityPayload
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		http.Error(w, "Invalid request payload", http.StatusBadRequest)
		return
	}
	if err := h.validate.Struct(payload); err != nil {
		http.Error(w, "A valid email is required", http.StatusBadRequest)
		return
	}

	token, err := h.codec.Issue(payload.Email)
	if err != nil {
		http.Error(w, "Failed to issue token", http.StatusInternalServerError)
		return
	}

	cookie := &http.Cookie{
		Name:     "token",
		Value:    token,
		Expires:  time.Now().Add(time.Hour),
		HttpOnly: true,
		Secure:   h.secure,
		Path:     "/",
	}
	if h.secure {
		cookie.SameSite = http.SameSiteNoneMode
	}
	http.SetCookie(w, cookie)

	utils.WriteSuccess(w)
}

// Logout expires the session cookie on the client.
func (h *SessionHandler) Logout(w http.ResponseWriter, r *http.Request) {
	cookie := &http.Cookie{
		Name:     "token",
		Value:    "",
		MaxAge:   -1,
		HttpOnly: true,
		Secure:   h.secure,
		Path:     "/",
	}
	if h.secure {
		cookie.SameSite = http.SameSiteNoneMode
	}
	http.SetCookie(w, cookie)

	utils.WriteSuccess(w)
}
