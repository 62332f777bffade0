package rest

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"mime/multipart"
	"net/http"

	"github.com/heartmarshall/animal-rescue-backend/internal/adapter/blob"
	"github.com/heartmarshall/animal-rescue-backend/internal/domain"
)

const multipartMemory = 8 << 20

// UploadLimits bounds multipart requests.
type UploadLimits struct {
	MaxFileBytes   int64
	MaxFilesPerReq int
}

// parts holds the opened files of a multipart request.
type parts struct {
	files []multipart.File
}

func (p *parts) readers() []io.Reader {
	out := make([]io.Reader, len(p.files))
	for i, f := range p.files {
		out[i] = f
	}
	return out
}

func (p *parts) Close() {
	for _, f := range p.files {
		_ = f.Close()
	}
}

// readFiles opens the files submitted under field. The body is capped so an
// oversized request fails before the blob store sees it; per-file size and
// content type are enforced by the store.
func (l UploadLimits) readFiles(w http.ResponseWriter, r *http.Request, field string) (*parts, error) {
	maxFiles := l.MaxFilesPerReq
	if maxFiles <= 0 {
		maxFiles = 1
	}
	r.Body = http.MaxBytesReader(w, r.Body, int64(maxFiles+1)*l.MaxFileBytes+multipartMemory)

	if err := r.ParseMultipartForm(multipartMemory); err != nil {
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			return nil, domain.NewValidationError(field, "request body is too large")
		}
		return nil, domain.NewValidationError(field, "expected a multipart form")
	}

	headers := r.MultipartForm.File[field]
	p := &parts{files: make([]multipart.File, 0, len(headers))}
	for _, h := range headers {
		f, err := h.Open()
		if err != nil {
			p.Close()
			return nil, domain.NewValidationError(field, "unreadable file")
		}
		p.files = append(p.files, f)
	}
	return p, nil
}

// readFile opens the single file submitted under field.
func (l UploadLimits) readFile(w http.ResponseWriter, r *http.Request, field string) (*parts, error) {
	p, err := l.readFiles(w, r, field)
	if err != nil {
		return nil, err
	}
	if len(p.files) != 1 {
		p.Close()
		return nil, domain.NewValidationError(field, "exactly one file is required")
	}
	return p, nil
}

// blobOpener is the read side of blob.Store.
type blobOpener interface {
	Open(ctx context.Context, key string) (io.ReadCloser, string, error)
}

// FileHandler serves stored uploads at GET {prefix}/{key...}.
type FileHandler struct {
	base
	store blobOpener
}

// NewFileHandler creates a FileHandler.
func NewFileHandler(store blobOpener, logger *slog.Logger) *FileHandler {
	return &FileHandler{base: newBase(logger, "files", "file"), store: store}
}

// Serve handles GET {prefix}/{key...}.
func (h *FileHandler) Serve(w http.ResponseWriter, r *http.Request) {
	rc, contentType, err := h.store.Open(r.Context(), r.PathValue("key"))
	if errors.Is(err, blob.ErrNotFound) {
		writeError(w, http.StatusNotFound, "not found")
		return
	}
	if err != nil {
		h.fail(w, r, err)
		return
	}
	defer rc.Close()

	w.Header().Set("Content-Type", contentType)
	w.Header().Set("X-Content-Type-Options", "nosniff")
	w.Header().Set("Cache-Control", "public, max-age=86400")
	if _, err := io.Copy(w, rc); err != nil {
		h.log.DebugContext(r.Context(), "copy upload", slog.String("error", err.Error()))
	}
}

// recorder receives domain counters. *obs.Metrics implements it.
type recorder interface {
	Enrollment(result string)
	DonationCreated(kind string)
	FilesUploaded(entity string, n int)
}

type nopRecorder struct{}

func (nopRecorder) Enrollment(string)         {}
func (nopRecorder) DonationCreated(string)    {}
func (nopRecorder) FilesUploaded(string, int) {}
