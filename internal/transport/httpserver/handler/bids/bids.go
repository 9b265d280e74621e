package bids

import (
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"
	bidsdomain "projectconnect-go/internal/domain/bids"
	commonhandler "projectconnect-go/internal/transport/httpserver/handler/common"
	"projectconnect-go/internal/transport/httpserver/middleware"
)

type createBidRequest struct {
	ProjectID commonhandler.OptionalNumber `json:"project_id"`
	Amount    commonhandler.OptionalNumber `json:"amount"`
	Message   *string                      `json:"message"`
}

func (h *Handlers) CreateBid(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.UserIDFromContext(r.Context())
	if !ok {
		writeError(w, http.StatusUnauthorized, "Invalid token")
		return
	}

	var req createBidRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid json body")
		return
	}

	var projectID int64
	if req.ProjectID.IsSet() {
		parsed, ok := req.ProjectID.Int64()
		if !ok {
			writeError(w, http.StatusBadRequest, "invalid project_id")
			return
		}
		projectID = parsed
	}

	created, err := h.Bids.Create(r.Context(), userID, bidsdomain.CreateInput{
		ProjectID: projectID,
		Amount:    req.Amount.Float(),
		Message:   req.Message,
	})
	if err != nil {
		h.writeBidError(w, "bids: create failed", err)
		return
	}

	h.log.Info("bids: created", "bid_id", created.ID, "project_id", created.ProjectID, "freelancer_id", userID)
	writeJSON(w, http.StatusOK, created)
}

func (h *Handlers) ListProjectBids(w http.ResponseWriter, r *http.Request) {
	projectID, err := commonhandler.ParseIDParam(chi.URLParam(r, "id"))
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid project id")
		return
	}

	items, err := h.Bids.ListForProject(r.Context(), projectID)
	if err != nil {
		h.writeBidError(w, "bids: list failed", err)
		return
	}

	writeJSON(w, http.StatusOK, items)
}

func (h *Handlers) writeBidError(w http.ResponseWriter, message string, err error) {
	switch {
	case errors.Is(err, bidsdomain.ErrProjectNotFound),
		errors.Is(err, bidsdomain.ErrProjectIDRequired):
		h.log.BusinessError(message, err)
		writeError(w, http.StatusBadRequest, err.Error())
	default:
		h.log.InternalError(message, err)
		writeError(w, http.StatusBadRequest, err.Error())
	}
}
