package levels

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"dotback/internal/transport/httpjson"
	dErrors "dotback/pkg/domain-errors"
)

// Handler exposes the level configuration CRUD endpoints. Every route is
// mounted behind the admin guard by the parent router.
type Handler struct {
	levels *Service
	logger *slog.Logger
}

// NewHandler creates a levels Handler.
func NewHandler(levels *Service, logger *slog.Logger) *Handler {
	return &Handler{levels: levels, logger: logger}
}

// Register mounts the level routes.
func (h *Handler) Register(r chi.Router) {
	r.Get("/levels", h.HandleList)
	r.Post("/levels", h.HandleCreate)
	r.Get("/levels/{level}", h.HandleGet)
	r.Put("/levels/{level}", h.HandleUpdate)
	r.Delete("/levels/{level}", h.HandleDelete)
}

// ListResponse is the GET /api/levels envelope.
type ListResponse struct {
	Levels []*Level `json:"levels"`
}

// LevelResponse wraps a single level record.
type LevelResponse struct {
	Level *Level `json:"level"`
}

func (h *Handler) HandleList(w http.ResponseWriter, r *http.Request) {
	out, err := h.levels.List(r.Context())
	if err != nil {
		h.logError(r, "list levels failed", err)
		httpjson.WriteError(w, err)
		return
	}
	if out == nil {
		out = []*Level{}
	}
	httpjson.WriteJSON(w, http.StatusOK, ListResponse{Levels: out})
}

func (h *Handler) HandleCreate(w http.ResponseWriter, r *http.Request) {
	var payload ConfigPayload
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		httpjson.WriteError(w, dErrors.New(dErrors.CodeBadRequest, "Invalid payload."))
		return
	}

	level, err := h.levels.Create(r.Context(), &payload)
	if err != nil {
		h.logError(r, "create level failed", err)
		httpjson.WriteError(w, err)
		return
	}
	httpjson.WriteJSON(w, http.StatusCreated, LevelResponse{Level: level})
}

func (h *Handler) HandleGet(w http.ResponseWriter, r *http.Request) {
	number, ok := parseLevelParam(r)
	if !ok {
		httpjson.WriteError(w, dErrors.New(dErrors.CodeBadRequest, "Invalid level."))
		return
	}

	level, err := h.levels.Get(r.Context(), number)
	if err != nil {
		httpjson.WriteError(w, err)
		return
	}
	httpjson.WriteJSON(w, http.StatusOK, LevelResponse{Level: level})
}

func (h *Handler) HandleUpdate(w http.ResponseWriter, r *http.Request) {
	number, ok := parseLevelParam(r)
	if !ok {
		httpjson.WriteError(w, dErrors.New(dErrors.CodeBadRequest, "Invalid level."))
		return
	}

	var payload ConfigPayload
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		httpjson.WriteError(w, dErrors.New(dErrors.CodeBadRequest, "Invalid payload."))
		return
	}

	level, err := h.levels.Update(r.Context(), number, &payload)
	if err != nil {
		h.logError(r, "update level failed", err)
		httpjson.WriteError(w, err)
		return
	}
	httpjson.WriteJSON(w, http.StatusOK, LevelResponse{Level: level})
}

func (h *Handler) HandleDelete(w http.ResponseWriter, r *http.Request) {
	number, ok := parseLevelParam(r)
	if !ok {
		httpjson.WriteError(w, dErrors.New(dErrors.CodeBadRequest, "Invalid level."))
		return
	}

	level, err := h.levels.Delete(r.Context(), number)
	if err != nil {
		httpjson.WriteError(w, err)
		return
	}
	httpjson.WriteJSON(w, http.StatusOK, LevelResponse{Level: level})
}

// parseLevelParam extracts and bounds-checks the {level} path parameter.
func parseLevelParam(r *http.Request) (int, bool) {
	raw := chi.URLParam(r, "level")
	number, err := strconv.Atoi(raw)
	if err != nil || number < MinLevel || number > MaxLevel {
		return 0, false
	}
	return number, true
}

func (h *Handler) logError(r *http.Request, msg string, err error) {
	if dErrors.HasCode(err, dErrors.CodeInternal) {
		h.logger.ErrorContext(r.Context(), msg, "error", err)
	}
}
