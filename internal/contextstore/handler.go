package contextstore

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/go-playground/validator/v10"

	"github.com/hotbound-ai/hotbound/internal/api"
)

// QueryRequest is the body of POST /api/v1/context/query.
type QueryRequest struct {
	Query    string `json:"query" validate:"required,min=1"`
	NResults int    `json:"n_results" validate:"omitempty,gte=1,lte=50"`
}

// Handler exposes the store's raw ranked query over HTTP.
type Handler struct {
	store    *Store
	validate *validator.Validate
}

func NewHandler(store *Store) *Handler {
	return &Handler{
		store:    store,
		validate: validator.New(),
	}
}

// Query returns the raw ranked result structure for a query string.
func (h *Handler) Query(w http.ResponseWriter, r *http.Request) {
	var req QueryRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		api.HandleError(w, api.ErrBadRequest)
		return
	}

	if err := h.validate.Struct(req); err != nil {
		api.HandleError(w, api.NewValidationError(err.Error()))
		return
	}

	n := req.NResults
	if n == 0 {
		n = 5
	}

	results, err := h.store.Query(r.Context(), req.Query, n)
	if err != nil {
		slog.Error("querying context store", "error", err)
		api.HandleError(w, api.ErrInternalServer)
		return
	}

	api.JSON(w, http.StatusOK, map[string]any{"results": results})
}
