package bids

import (
	"net/http"

	bidsdomain "projectconnect-go/internal/domain/bids"
	commonhandler "projectconnect-go/internal/transport/httpserver/handler/common"
	"projectconnect-go/pkg/logger"
)

type Handlers struct {
	Bids *bidsdomain.Service
	log  logger.Logger
}

func New(bids *bidsdomain.Service, log logger.Logger) *Handlers {
	return &Handlers{
		Bids: bids,
		log:  log,
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
