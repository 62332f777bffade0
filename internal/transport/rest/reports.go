package rest

import (
	"context"
	"io"
	"log/slog"
	"net/http"

	"github.com/google/uuid"

	"github.com/heartmarshall/animal-rescue-backend/internal/domain"
	"github.com/heartmarshall/animal-rescue-backend/internal/service/report"
)

//go:generate moq -out report_service_mock_test.go -pkg rest -rm . reportService

type reportService interface {
	Create(ctx context.Context, input report.CreateInput) (domain.Report, error)
	Get(ctx context.Context, id uuid.UUID) (domain.Report, error)
	List(ctx context.Context, input report.ListInput) (domain.Page[domain.Report], error)
	ListMine(ctx context.Context, page domain.PageRequest) (domain.Page[domain.Report], error)
	ListAssignedToMe(ctx context.Context, page domain.PageRequest) (domain.Page[domain.Report], error)
	TransitionStatus(ctx context.Context, id uuid.UUID, status domain.ReportStatus) (domain.Report, error)
	Assign(ctx context.Context, id, assigneeID uuid.UUID) (domain.Report, error)
	AddImages(ctx context.Context, id uuid.UUID, files []io.Reader) (domain.Report, error)
}

// ReportHandler serves rescue report endpoints.
type ReportHandler struct {
	base
	svc     reportService
	uploads UploadLimits
	metrics recorder
}

// NewReportHandler creates a ReportHandler.
func NewReportHandler(svc reportService, uploads UploadLimits, metrics recorder, logger *slog.Logger) *ReportHandler {
	if metrics == nil {
		metrics = nopRecorder{}
	}
	return &ReportHandler{base: newBase(logger, "reports", "report"), svc: svc, uploads: uploads, metrics: metrics}
}

type createReportRequest struct {
	Title        string   `json:"title"`
	Description  string   `json:"description"`
	Location     string   `json:"location"`
	Latitude     *float64 `json:"latitude"`
	Longitude    *float64 `json:"longitude"`
	AnimalType   string   `json:"animalType"`
	UrgencyLevel string   `json:"urgencyLevel"`
}

type reportStatusRequest struct {
	Status string `json:"status"`
}

type assignRequest struct {
	AssignedToID *uuid.UUID `json:"assignedToId"`
}

// Create handles POST /reports. Anonymous callers are allowed.
func (h *ReportHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req createReportRequest
	if err := decode(r, &req); err != nil {
		h.fail(w, r, err)
		return
	}

	rep, err := h.svc.Create(r.Context(), report.CreateInput{
		Title:        req.Title,
		Description:  req.Description,
		Location:     req.Location,
		Latitude:     req.Latitude,
		Longitude:    req.Longitude,
		AnimalType:   req.AnimalType,
		UrgencyLevel: domain.UrgencyLevel(req.UrgencyLevel),
	})
	h.respond(w, r, http.StatusCreated, rep, err)
}

// Get handles GET /reports/{id}.
func (h *ReportHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		h.fail(w, r, err)
		return
	}
	rep, err := h.svc.Get(r.Context(), id)
	h.respond(w, r, http.StatusOK, rep, err)
}

// List handles GET /reports.
func (h *ReportHandler) List(w http.ResponseWriter, r *http.Request) {
	q := newQuery(r)
	input := report.ListInput{
		Status:       enum[domain.ReportStatus](q.str("status")),
		UrgencyLevel: enum[domain.UrgencyLevel](q.str("urgencyLevel")),
		AnimalType:   q.str("animalType"),
		Page:         q.page(),
	}
	if err := q.err(); err != nil {
		h.fail(w, r, err)
		return
	}

	page, err := h.svc.List(r.Context(), input)
	h.respondPage(w, r, page, err)
}

// ListMine handles GET /reports/user/me.
func (h *ReportHandler) ListMine(w http.ResponseWriter, r *http.Request) {
	req, err := pageQuery(r)
	if err != nil {
		h.fail(w, r, err)
		return
	}
	page, err := h.svc.ListMine(r.Context(), req)
	h.respondPage(w, r, page, err)
}

// ListAssignedToMe handles GET /reports/assigned/me.
func (h *ReportHandler) ListAssignedToMe(w http.ResponseWriter, r *http.Request) {
	req, err := pageQuery(r)
	if err != nil {
		h.fail(w, r, err)
		return
	}
	page, err := h.svc.ListAssignedToMe(r.Context(), req)
	h.respondPage(w, r, page, err)
}

// TransitionStatus handles PATCH /reports/{id}/status.
func (h *ReportHandler) TransitionStatus(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		h.fail(w, r, err)
		return
	}
	var req reportStatusRequest
	if err := decode(r, &req); err != nil {
		h.fail(w, r, err)
		return
	}

	rep, err := h.svc.TransitionStatus(r.Context(), id, domain.ReportStatus(req.Status))
	h.respond(w, r, http.StatusOK, rep, err)
}

// Assign handles PATCH /reports/{id}/assign.
func (h *ReportHandler) Assign(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		h.fail(w, r, err)
		return
	}
	var req assignRequest
	if err := decode(r, &req); err != nil {
		h.fail(w, r, err)
		return
	}
	if req.AssignedToID == nil {
		h.fail(w, r, domain.NewValidationError("assignedToId", "required"))
		return
	}

	rep, err := h.svc.Assign(r.Context(), id, *req.AssignedToID)
	h.respond(w, r, http.StatusOK, rep, err)
}

// AddImages handles POST /reports/{id}/images.
func (h *ReportHandler) AddImages(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		h.fail(w, r, err)
		return
	}
	files, err := h.uploads.readFiles(w, r, "images")
	if err != nil {
		h.fail(w, r, err)
		return
	}
	defer files.Close()

	rep, err := h.svc.AddImages(r.Context(), id, files.readers())
	if err == nil {
		h.metrics.FilesUploaded("report", len(files.files))
	}
	h.respond(w, r, http.StatusOK, rep, err)
}

func (h *ReportHandler) respond(w http.ResponseWriter, r *http.Request, status int, rep domain.Report, err error) {
	if err != nil {
		h.fail(w, r, err)
		return
	}
	s, err := loadSummaries(r.Context(), reportRefs(rep), nil)
	if err != nil {
		h.fail(w, r, err)
		return
	}
	writeJSON(w, status, toReport(rep, s))
}

func (h *ReportHandler) respondPage(w http.ResponseWriter, r *http.Request, page domain.Page[domain.Report], err error) {
	if err != nil {
		h.fail(w, r, err)
		return
	}
	s, err := loadSummaries(r.Context(), reportRefs(page.Items...), nil)
	if err != nil {
		h.fail(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, newList(page, mapSlice(page.Items, func(rep domain.Report) reportDTO {
		return toReport(rep, s)
	})))
}
