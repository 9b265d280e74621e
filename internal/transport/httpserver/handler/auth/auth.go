package auth

import (
	"errors"
	"net/http"

	userdomain "projectconnect-go/internal/domain/user"
	"projectconnect-go/internal/transport/httpserver/middleware"
)

type registerRequest struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password"`
	Role     string `json:"role"`
}

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type sessionResponse struct {
	Token string                `json:"token"`
	User  userdomain.PublicUser `json:"user"`
}

func (h *Handlers) Register(w http.ResponseWriter, r *http.Request) {
	var req registerRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid json body")
		return
	}

	session, err := h.Users.Register(r.Context(), userdomain.RegisterInput{
		Name:     req.Name,
		Email:    req.Email,
		Password: req.Password,
		Role:     req.Role,
	})
	if err != nil {
		h.writeUserError(w, "auth: register failed", err)
		return
	}

	h.log.Info("auth: user registered", "user_id", session.User.ID, "role", session.User.Role)
	writeJSON(w, http.StatusOK, sessionResponse{Token: session.Token, User: session.User})
}

func (h *Handlers) Login(w http.ResponseWriter, r *http.Request) {
	var req loginRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid json body")
		return
	}

	session, err := h.Users.Login(r.Context(), req.Email, req.Password)
	if err != nil {
		h.writeUserError(w, "auth: login failed", err)
		return
	}

	writeJSON(w, http.StatusOK, sessionResponse{Token: session.Token, User: session.User})
}

func (h *Handlers) Me(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.UserIDFromContext(r.Context())
	if !ok {
		writeError(w, http.StatusUnauthorized, "Invalid token")
		return
	}

	me, err := h.Users.Me(r.Context(), userID)
	if err != nil {
		if errors.Is(err, userdomain.ErrUserNotFound) {
			writeError(w, http.StatusNotFound, "User not found")
			return
		}
		h.log.InternalError("auth: me failed", err, "user_id", userID)
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	writeJSON(w, http.StatusOK, me)
}

func (h *Handlers) writeUserError(w http.ResponseWriter, message string, err error) {
	switch {
	case errors.Is(err, userdomain.ErrUserNotFound):
		h.log.BusinessError(message, err)
		writeError(w, http.StatusBadRequest, "User not found")
	case errors.Is(err, userdomain.ErrInvalidCredentials):
		h.log.BusinessError(message, err)
		writeError(w, http.StatusBadRequest, "Invalid password")
	case errors.Is(err, userdomain.ErrDuplicateEmail),
		errors.Is(err, userdomain.ErrInvalidRole),
		errors.Is(err, userdomain.ErrNameRequired),
		errors.Is(err, userdomain.ErrEmailRequired),
		errors.Is(err, userdomain.ErrPasswordRequired):
		h.log.BusinessError(message, err)
		writeError(w, http.StatusBadRequest, err.Error())
	default:
		h.log.InternalError(message, err)
		writeError(w, http.StatusBadRequest, err.Error())
	}
}
