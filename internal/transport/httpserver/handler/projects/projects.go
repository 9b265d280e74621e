package projects

import (
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"
	projectsdomain "projectconnect-go/internal/domain/projects"
	commonhandler "projectconnect-go/internal/transport/httpserver/handler/common"
	"projectconnect-go/internal/transport/httpserver/middleware"
)

type createProjectRequest struct {
	Title        string                       `json:"title"`
	Description  *string                      `json:"description"`
	GradeLevel   *string                      `json:"grade_level"`
	Budget       commonhandler.OptionalNumber `json:"budget"`
	DeliveryType string                       `json:"delivery_type"`
	Difficulty   string                       `json:"difficulty"`
	Deadline     *string                      `json:"deadline"`
	Category     *string                      `json:"category"`
}

func (h *Handlers) CreateProject(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.UserIDFromContext(r.Context())
	if !ok {
		writeError(w, http.StatusUnauthorized, "Invalid token")
		return
	}

	var req createProjectRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid json body")
		return
	}

	input := projectsdomain.CreateInput{
		Title:        req.Title,
		Description:  req.Description,
		GradeLevel:   req.GradeLevel,
		Budget:       req.Budget.Float(),
		DeliveryType: req.DeliveryType,
		Difficulty:   req.Difficulty,
		Category:     req.Category,
	}
	if req.Deadline != nil {
		deadline, err := commonhandler.ParseDateParam(*req.Deadline)
		if err != nil {
			writeError(w, http.StatusBadRequest, "invalid deadline")
			return
		}
		input.Deadline = deadline
	}

	created, err := h.Projects.Create(r.Context(), userID, input)
	if err != nil {
		h.writeProjectError(w, "projects: create failed", err)
		return
	}

	h.log.Info("projects: created", "project_id", created.ID, "parent_id", userID)
	writeJSON(w, http.StatusOK, created)
}

func (h *Handlers) ListProjects(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()
	filter := projectsdomain.ListFilter{
		Cost:       query.Get("cost"),
		Difficulty: query.Get("difficulty"),
		Category:   query.Get("category"),
	}

	items, err := h.Projects.ListOpen(r.Context(), filter)
	if err != nil {
		h.writeProjectError(w, "projects: list failed", err)
		return
	}

	writeJSON(w, http.StatusOK, items)
}

func (h *Handlers) GetProject(w http.ResponseWriter, r *http.Request) {
	id, err := commonhandler.ParseIDParam(chi.URLParam(r, "id"))
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid project id")
		return
	}

	project, err := h.Projects.GetByID(r.Context(), id)
	if err != nil {
		h.writeProjectError(w, "projects: get failed", err)
		return
	}

	writeJSON(w, http.StatusOK, project)
}

func (h *Handlers) ListMyProjects(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.UserIDFromContext(r.Context())
	if !ok {
		writeError(w, http.StatusUnauthorized, "Invalid token")
		return
	}

	items, err := h.Projects.ListByOwner(r.Context(), userID)
	if err != nil {
		h.writeProjectError(w, "projects: list mine failed", err)
		return
	}

	writeJSON(w, http.StatusOK, items)
}

func (h *Handlers) writeProjectError(w http.ResponseWriter, message string, err error) {
	switch {
	case errors.Is(err, projectsdomain.ErrProjectNotFound):
		writeError(w, http.StatusNotFound, "Project not found")
	case errors.Is(err, projectsdomain.ErrTitleRequired):
		h.log.BusinessError(message, err)
		writeError(w, http.StatusBadRequest, err.Error())
	default:
		h.log.InternalError(message, err)
		writeError(w, http.StatusBadRequest, err.Error())
	}
}
