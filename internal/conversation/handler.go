package conversation

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-playground/validator/v10"

	"github.com/hotbound-ai/hotbound/internal/api"
)

// Handler exposes the conversation simulation endpoint.
type Handler struct {
	svc      *Service
	validate *validator.Validate
}

func NewHandler(svc *Service) *Handler {
	return &Handler{
		svc:      svc,
		validate: validator.New(),
	}
}

// Simulate handles POST /api/v1/conversation. On success it streams the
// synthesized reply as an MP3 attachment; the generated text is not exposed
// separately on this path.
func (h *Handler) Simulate(w http.ResponseWriter, r *http.Request) {
	var req TurnRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		api.HandleError(w, api.ErrBadRequest)
		return
	}

	if err := h.validate.Struct(req); err != nil {
		api.HandleError(w, api.NewValidationError(err.Error()))
		return
	}

	audio, err := h.svc.Simulate(r.Context(), req.UserInput, req.ConversationHistory)
	switch {
	case errors.Is(err, ErrGeneration):
		api.HandleError(w, api.NewBadGatewayError("reply generation failed"))
		return
	case errors.Is(err, ErrSynthesis):
		api.HandleError(w, api.NewBadGatewayError("voice synthesis failed"))
		return
	case err != nil:
		api.HandleError(w, api.ErrInternalServer)
		return
	}

	api.Audio(w, "audio/mpeg", "response.mp3", audio)
}
