package transcripts

import (
	"io"
	"log/slog"
	"net/http"

	"github.com/hotbound-ai/hotbound/internal/api"
)

const multipartMemory = 32 << 20

type Handler struct {
	service *Service
}

func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// UploadResponse is the body returned by the audio upload endpoint.
type UploadResponse struct {
	Filename   string `json:"filename"`
	Transcript string `json:"transcript"`
}

// UploadAudio handles POST /api/v1/uploads/audio. It expects a single audio
// file in the "file" field.
func (h *Handler) UploadAudio(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseMultipartForm(multipartMemory); err != nil {
		api.HandleError(w, api.NewBadRequestError("invalid multipart form"))
		return
	}

	headers := r.MultipartForm.File["file"]
	if len(headers) == 0 {
		api.HandleError(w, api.ErrNoFilePart)
		return
	}

	fh := headers[0]
	if fh.Filename == "" {
		api.HandleError(w, api.ErrNoSelectedFile)
		return
	}
	if !AllowedAudioFile(fh.Filename) {
		api.HandleError(w, api.NewBadRequestError("file type not allowed: "+fh.Filename))
		return
	}

	f, err := fh.Open()
	if err != nil {
		api.HandleError(w, api.NewBadRequestError("reading uploaded file: "+fh.Filename))
		return
	}
	audio, err := io.ReadAll(f)
	f.Close()
	if err != nil {
		api.HandleError(w, api.NewBadRequestError("reading uploaded file: "+fh.Filename))
		return
	}

	transcript, err := h.service.Transcribe(r.Context(), fh.Filename, audio)
	if err != nil {
		slog.Error("transcribing audio", "filename", fh.Filename, "error", err)
		api.HandleError(w, api.NewBadGatewayError("audio transcription failed"))
		return
	}

	api.JSON(w, http.StatusOK, UploadResponse{Filename: fh.Filename, Transcript: transcript})
}
