package media

import (
	"fmt"
	"io"
	"net/http"

	"agilefinance/internal/common"

	"github.com/gorilla/mux"
	"go.uber.org/zap"
)

const maxUploadBytes = 20 << 20

// Handler serves uploads and downloads against the file store.
type Handler struct {
	storage common.FileStore
	log     *zap.Logger
}

func NewHandler(storage common.FileStore, log *zap.Logger) *Handler {
	return &Handler{storage: storage, log: log}
}

func (h *Handler) RegisterRoutes(r *mux.Router) {
	r.HandleFunc("/files", h.upload).Methods(http.MethodPost)
	r.HandleFunc("/files/{fileId}", h.serveFile).Methods(http.MethodGet)
}

func (h *Handler) upload(w http.ResponseWriter, r *http.Request) {
	r.Body = http.MaxBytesReader(w, r.Body, maxUploadBytes)
	if err := r.ParseMultipartForm(maxUploadBytes); err != nil {
		common.WriteError(w, h.log, common.NewValidationError("file", "multipart form expected"))
		return
	}

	file, header, err := r.FormFile("file")
	if err != nil {
		common.WriteError(w, h.log, common.NewValidationError("file", "is required"))
		return
	}
	defer file.Close()

	uploader := ""
	if claims, ok := common.ClaimsFromContext(r.Context()); ok {
		uploader = fmt.Sprintf("%d", claims.UserID)
	}

	mimeType := header.Header.Get("Content-Type")
	if mimeType == "" {
		mimeType = "application/octet-stream"
	}

	stored, err := h.storage.Upload(r.Context(), header.Filename, mimeType, uploader, file)
	if err != nil {
		common.WriteError(w, h.log, err)
		return
	}
	common.WriteJSON(w, http.StatusCreated, stored)
}

func (h *Handler) serveFile(w http.ResponseWriter, r *http.Request) {
	fileID := mux.Vars(r)["fileId"]

	reader, file, err := h.storage.Download(r.Context(), fileID)
	if err != nil {
		common.WriteError(w, h.log, err)
		return
	}
	defer reader.Close()

	contentType := file.MimeType
	if contentType == "" {
		contentType = "application/octet-stream"
	}
	w.Header().Set("Content-Type", contentType)
	w.Header().Set("Content-Length", fmt.Sprintf("%d", file.Size))
	w.Header().Set("Content-Disposition", fmt.Sprintf("inline; filename=%q", file.Filename))

	if _, err := io.Copy(w, reader); err != nil {
		h.log.Warn("error streaming file", zap.String("file_id", fileID), zap.Error(err))
	}
}
