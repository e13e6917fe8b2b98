package profile

import (
	"io"
	"mime/multipart"
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

// UploadImages handles POST /api/v1/uploads/images. Each file in the "files"
// field is analyzed independently; the response always carries one entry per
// uploaded file.
func (h *Handler) UploadImages(w http.ResponseWriter, r *http.Request) {
	images, err := readImages(r, "files")
	if err != nil {
		api.HandleError(w, err)
		return
	}

	results := h.service.AnalyzeBatch(r.Context(), images)
	api.JSON(w, http.StatusOK, map[string]any{"results": results})
}

// AnalyzeProfile handles POST /api/v1/profile/analyze. All files in the
// "images" field feed one combined generation.
func (h *Handler) AnalyzeProfile(w http.ResponseWriter, r *http.Request) {
	images, err := readImages(r, "images")
	if err != nil {
		api.HandleError(w, err)
		return
	}

	for _, img := range images {
		if !AllowedImageFile(img.Filename) {
			api.HandleError(w, api.NewBadRequestError("file type not allowed: "+img.Filename))
			return
		}
	}

	analysis, err := h.service.AnalyzeProfile(r.Context(), images)
	if err != nil {
		api.HandleError(w, api.NewBadGatewayError("profile analysis failed"))
		return
	}

	api.JSON(w, http.StatusOK, AnalyzeResponse{Analysis: analysis})
}

func readImages(r *http.Request, field string) ([]UploadedImage, error) {
	if err := r.ParseMultipartForm(multipartMemory); err != nil {
		return nil, api.NewBadRequestError("invalid multipart form")
	}

	headers := r.MultipartForm.File[field]
	if len(headers) == 0 {
		return nil, api.ErrNoFilePart
	}

	images := make([]UploadedImage, 0, len(headers))
	for _, fh := range headers {
		if fh.Filename == "" {
			return nil, api.ErrNoSelectedFile
		}
		data, err := readFile(fh)
		if err != nil {
			return nil, api.NewBadRequestError("reading uploaded file: " + fh.Filename)
		}
		images = append(images, UploadedImage{Filename: fh.Filename, Data: data})
	}
	return images, nil
}

func readFile(fh *multipart.FileHeader) ([]byte, error) {
	f, err := fh.Open()
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return io.ReadAll(f)
}
