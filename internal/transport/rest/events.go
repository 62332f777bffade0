package rest

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"time"

	"github.com/google/uuid"

	"github.com/heartmarshall/animal-rescue-backend/internal/domain"
	"github.com/heartmarshall/animal-rescue-backend/internal/service/event"
)

//go:generate moq -out event_service_mock_test.go -pkg rest -rm . eventService

type eventService interface {
	Create(ctx context.Context, input event.CreateInput) (domain.Event, error)
	Get(ctx context.Context, id uuid.UUID) (domain.Event, error)
	List(ctx context.Context, input event.ListInput) (domain.Page[domain.Event], error)
	ListMine(ctx context.Context, page domain.PageRequest) (domain.Page[domain.Event], error)
	Update(ctx context.Context, id uuid.UUID, input event.UpdateInput) (domain.Event, error)
	SetActive(ctx context.Context, id uuid.UUID, active bool) (domain.Event, error)
	Cancel(ctx context.Context, id uuid.UUID) (domain.Event, error)
	SetImage(ctx context.Context, id uuid.UUID, file io.Reader) (domain.Event, error)
	Enroll(ctx context.Context, eventID uuid.UUID) (domain.Event, error)
	ListVolunteers(ctx context.Context, eventID uuid.UUID, req domain.PageRequest) (domain.Page[domain.Volunteer], error)
}

// EventHandler serves event and enrollment endpoints.
type EventHandler struct {
	base
	svc     eventService
	uploads UploadLimits
	metrics recorder
}

// NewEventHandler creates an EventHandler.
func NewEventHandler(svc eventService, uploads UploadLimits, metrics recorder, logger *slog.Logger) *EventHandler {
	if metrics == nil {
		metrics = nopRecorder{}
	}
	return &EventHandler{base: newBase(logger, "events", "event"), svc: svc, uploads: uploads, metrics: metrics}
}

type createEventRequest struct {
	Title           string     `json:"title"`
	Description     string     `json:"description"`
	EventType       string     `json:"eventType"`
	StartDate       time.Time  `json:"startDate"`
	EndDate         *time.Time `json:"endDate"`
	Location        string     `json:"location"`
	Address         string     `json:"address"`
	City            string     `json:"city"`
	State           string     `json:"state"`
	Latitude        *float64   `json:"latitude"`
	Longitude       *float64   `json:"longitude"`
	ContactEmail    *string    `json:"contactEmail"`
	ContactPhone    *string    `json:"contactPhone"`
	MaxParticipants *int       `json:"maxParticipants"`
}

type updateEventRequest struct {
	Title           *string    `json:"title"`
	Description     *string    `json:"description"`
	EventType       *string    `json:"eventType"`
	StartDate       *time.Time `json:"startDate"`
	EndDate         *time.Time `json:"endDate"`
	Location        *string    `json:"location"`
	Address         *string    `json:"address"`
	City            *string    `json:"city"`
	State           *string    `json:"state"`
	Latitude        *float64   `json:"latitude"`
	Longitude       *float64   `json:"longitude"`
	ContactEmail    *string    `json:"contactEmail"`
	ContactPhone    *string    `json:"contactPhone"`
	MaxParticipants *int       `json:"maxParticipants"`
}

type enrollResponse struct {
	Message string   `json:"message"`
	Event   eventDTO `json:"event"`
}

// Create handles POST /events.
func (h *EventHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req createEventRequest
	if err := decode(r, &req); err != nil {
		h.fail(w, r, err)
		return
	}

	e, err := h.svc.Create(r.Context(), event.CreateInput{
		Title:           req.Title,
		Description:     req.Description,
		EventType:       domain.EventType(req.EventType),
		StartDate:       req.StartDate,
		EndDate:         req.EndDate,
		Location:        req.Location,
		Address:         req.Address,
		City:            req.City,
		State:           req.State,
		Latitude:        req.Latitude,
		Longitude:       req.Longitude,
		ContactEmail:    req.ContactEmail,
		ContactPhone:    req.ContactPhone,
		MaxParticipants: req.MaxParticipants,
	})
	h.respond(w, r, http.StatusCreated, e, err)
}

// Get handles GET /events/{id}.
func (h *EventHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		h.fail(w, r, err)
		return
	}
	e, err := h.svc.Get(r.Context(), id)
	h.respond(w, r, http.StatusOK, e, err)
}

// List handles GET /events. Only active events are listed.
func (h *EventHandler) List(w http.ResponseWriter, r *http.Request) {
	q := newQuery(r)
	input := event.ListInput{
		EventType: enum[domain.EventType](q.str("eventType")),
		City:      q.str("city"),
		State:     q.str("state"),
		From:      q.time("startDate"),
		To:        q.time("endDate"),
		Page:      q.page(),
	}
	if err := q.err(); err != nil {
		h.fail(w, r, err)
		return
	}

	page, err := h.svc.List(r.Context(), input)
	h.respondPage(w, r, page, err)
}

// ListMine handles GET /events/user/me.
func (h *EventHandler) ListMine(w http.ResponseWriter, r *http.Request) {
	req, err := pageQuery(r)
	if err != nil {
		h.fail(w, r, err)
		return
	}
	page, err := h.svc.ListMine(r.Context(), req)
	h.respondPage(w, r, page, err)
}

// Update handles PUT /events/{id}.
func (h *EventHandler) Update(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		h.fail(w, r, err)
		return
	}
	var req updateEventRequest
	if err := decode(r, &req); err != nil {
		h.fail(w, r, err)
		return
	}

	e, err := h.svc.Update(r.Context(), id, event.UpdateInput{
		Title:           req.Title,
		Description:     req.Description,
		EventType:       enum[domain.EventType](req.EventType),
		StartDate:       req.StartDate,
		EndDate:         req.EndDate,
		Location:        req.Location,
		Address:         req.Address,
		City:            req.City,
		State:           req.State,
		Latitude:        req.Latitude,
		Longitude:       req.Longitude,
		ContactEmail:    req.ContactEmail,
		ContactPhone:    req.ContactPhone,
		MaxParticipants: req.MaxParticipants,
	})
	h.respond(w, r, http.StatusOK, e, err)
}

// SetActive handles PATCH /events/{id}/active.
func (h *EventHandler) SetActive(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		h.fail(w, r, err)
		return
	}
	var req setActiveRequest
	if err := decode(r, &req); err != nil {
		h.fail(w, r, err)
		return
	}
	if req.IsActive == nil {
		h.fail(w, r, domain.NewValidationError("isActive", "required"))
		return
	}

	e, err := h.svc.SetActive(r.Context(), id, *req.IsActive)
	h.respond(w, r, http.StatusOK, e, err)
}

// Cancel handles PATCH /events/{id}/cancel.
func (h *EventHandler) Cancel(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		h.fail(w, r, err)
		return
	}
	e, err := h.svc.Cancel(r.Context(), id)
	h.respond(w, r, http.StatusOK, e, err)
}

// SetImage handles POST /events/{id}/image.
func (h *EventHandler) SetImage(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		h.fail(w, r, err)
		return
	}
	files, err := h.uploads.readFile(w, r, "image")
	if err != nil {
		h.fail(w, r, err)
		return
	}
	defer files.Close()

	e, err := h.svc.SetImage(r.Context(), id, files.readers()[0])
	if err == nil {
		h.metrics.FilesUploaded("event", 1)
	}
	h.respond(w, r, http.StatusOK, e, err)
}

// Enroll handles POST /events/{id}/volunteers.
func (h *EventHandler) Enroll(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		h.fail(w, r, err)
		return
	}

	e, err := h.svc.Enroll(r.Context(), id)
	h.metrics.Enrollment(enrollResult(err))
	if err != nil {
		h.fail(w, r, err)
		return
	}

	s, err := loadSummaries(r.Context(), eventRefs(e), nil)
	if err != nil {
		h.fail(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, enrollResponse{Message: "enrolled", Event: toEvent(e, s)})
}

func enrollResult(err error) string {
	switch {
	case err == nil:
		return "ok"
	case errors.Is(err, domain.ErrCapacityExceeded):
		return "full"
	case errors.Is(err, domain.ErrAlreadyEnrolled):
		return "duplicate"
	default:
		return "error"
	}
}

// ListVolunteers handles GET /events/{id}/volunteers.
func (h *EventHandler) ListVolunteers(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		h.fail(w, r, err)
		return
	}
	req, err := pageQuery(r)
	if err != nil {
		h.fail(w, r, err)
		return
	}

	page, err := h.svc.ListVolunteers(r.Context(), id, req)
	if err != nil {
		h.fail(w, r, err)
		return
	}
	s, err := loadSummaries(r.Context(), volunteerRefs(page.Items...), nil)
	if err != nil {
		h.fail(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, newList(page, mapSlice(page.Items, func(v domain.Volunteer) volunteerDTO {
		return toVolunteer(v, s)
	})))
}

func (h *EventHandler) respond(w http.ResponseWriter, r *http.Request, status int, e domain.Event, err error) {
	if err != nil {
		h.fail(w, r, err)
		return
	}
	s, err := loadSummaries(r.Context(), eventRefs(e), nil)
	if err != nil {
		h.fail(w, r, err)
		return
	}
	writeJSON(w, status, toEvent(e, s))
}

func (h *EventHandler) respondPage(w http.ResponseWriter, r *http.Request, page domain.Page[domain.Event], err error) {
	if err != nil {
		h.fail(w, r, err)
		return
	}
	s, err := loadSummaries(r.Context(), eventRefs(page.Items...), nil)
	if err != nil {
		h.fail(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, newList(page, mapSlice(page.Items, func(e domain.Event) eventDTO {
		return toEvent(e, s)
	})))
}
