package auth

import (
	"net/http"

	userdomain "projectconnect-go/internal/domain/user"
	commonhandler "projectconnect-go/internal/transport/httpserver/handler/common"
	"projectconnect-go/pkg/logger"
)

type Handlers struct {
	Users *userdomain.Service
	log   logger.Logger
}

func New(users *userdomain.Service, log logger.Logger) *Handlers {
	return &Handlers{
		Users: users,
		log:   log,
	}
}

func writeError(w http.ResponseWriter, status int, message string) {
	commonhandler.WriteError(w, status, message)
}

func writeJSON(w http.ResponseWriter, status int, payload interface{}) {
	commonhandler.WriteJSON(w, status, payload)
}

func decodeJSON(r *http.Request, dst interface{}) error {
	return commonhandler.DecodeJSON(r, dst)
}
