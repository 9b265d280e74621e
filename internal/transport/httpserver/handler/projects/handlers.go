package projects

import (
	"net/http"

	projectsdomain "projectconnect-go/internal/domain/projects"
	commonhandler "projectconnect-go/internal/transport/httpserver/handler/common"
	"projectconnect-go/pkg/logger"
)

type Handlers struct {
	Projects *projectsdomain.Service
	log      logger.Logger
}

func New(projects *projectsdomain.Service, log logger.Logger) *Handlers {
	return &Handlers{
		Projects: projects,
		log:      log,
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
