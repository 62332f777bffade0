package rest

import (
	"context"
	"io"
	"log/slog"
	"net/http"

	"github.com/google/uuid"

	"github.com/heartmarshall/animal-rescue-backend/internal/domain"
	"github.com/heartmarshall/animal-rescue-backend/internal/service/volunteer"
)

//go:generate moq -out volunteer_service_mock_test.go -pkg rest -rm . volunteerService

type volunteerService interface {
	Register(ctx context.Context, input volunteer.RegisterInput) (domain.Volunteer, error)
	Get(ctx context.Context, id uuid.UUID) (domain.Volunteer, error)
	GetMine(ctx context.Context) (volunteer.Profile, error)
	List(ctx context.Context, input volunteer.ListInput) (domain.Page[domain.Volunteer], error)
	TransitionStatus(ctx context.Context, id uuid.UUID, input volunteer.TransitionInput) (domain.Volunteer, error)
	Update(ctx context.Context, id uuid.UUID, input volunteer.UpdateInput) (domain.Volunteer, error)
	Deactivate(ctx context.Context, id uuid.UUID) (domain.Volunteer, error)
	AddDocuments(ctx context.Context, id uuid.UUID, files []io.Reader) (domain.Volunteer, error)
}

// VolunteerHandler serves volunteer profile endpoints.
type VolunteerHandler struct {
	base
	svc     volunteerService
	uploads UploadLimits
	metrics recorder
}

// NewVolunteerHandler creates a VolunteerHandler.
func NewVolunteerHandler(svc volunteerService, uploads UploadLimits, metrics recorder, logger *slog.Logger) *VolunteerHandler {
	if metrics == nil {
		metrics = nopRecorder{}
	}
	return &VolunteerHandler{base: newBase(logger, "volunteers", "volunteer"), svc: svc, uploads: uploads, metrics: metrics}
}

type registerVolunteerRequest struct {
	Skills                []string `json:"skills"`
	Availability          string   `json:"availability"`
	AvailableHours        *int     `json:"availableHours"`
	Experience            *string  `json:"experience"`
	HasVehicle            bool     `json:"hasVehicle"`
	PreferredActivities   []string `json:"preferredActivities"`
	EmergencyContactName  *string  `json:"emergencyContactName"`
	EmergencyContactPhone *string  `json:"emergencyContactPhone"`
}

type updateVolunteerRequest struct {
	Skills                []string `json:"skills"`
	Availability          *string  `json:"availability"`
	AvailableHours        *int     `json:"availableHours"`
	Experience            *string  `json:"experience"`
	HasVehicle            *bool    `json:"hasVehicle"`
	PreferredActivities   []string `json:"preferredActivities"`
	EmergencyContactName  *string  `json:"emergencyContactName"`
	EmergencyContactPhone *string  `json:"emergencyContactPhone"`
}

type volunteerStatusRequest struct {
	Status string  `json:"status"`
	Notes  *string `json:"notes"`
}

type volunteerProfileResponse struct {
	volunteerDTO
	Events      []eventDTO `json:"events"`
	EventsTotal int        `json:"eventsTotal"`
}

// Register handles POST /volunteers.
func (h *VolunteerHandler) Register(w http.ResponseWriter, r *http.Request) {
	var req registerVolunteerRequest
	if err := decode(r, &req); err != nil {
		h.fail(w, r, err)
		return
	}

	v, err := h.svc.Register(r.Context(), volunteer.RegisterInput{
		Skills:                req.Skills,
		Availability:          domain.Availability(req.Availability),
		AvailableHours:        req.AvailableHours,
		Experience:            req.Experience,
		HasVehicle:            req.HasVehicle,
		PreferredActivities:   req.PreferredActivities,
		EmergencyContactName:  req.EmergencyContactName,
		EmergencyContactPhone: req.EmergencyContactPhone,
	})
	h.respond(w, r, http.StatusCreated, v, err)
}

// Get handles GET /volunteers/{id}.
func (h *VolunteerHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		h.fail(w, r, err)
		return
	}
	v, err := h.svc.Get(r.Context(), id)
	h.respond(w, r, http.StatusOK, v, err)
}

// GetMine handles GET /volunteers/user/me: the caller's profile plus the
// events they are enrolled in.
func (h *VolunteerHandler) GetMine(w http.ResponseWriter, r *http.Request) {
	p, err := h.svc.GetMine(r.Context())
	if err != nil {
		h.fail(w, r, err)
		return
	}

	ids := append(volunteerRefs(p.Volunteer), eventRefs(p.Events...)...)
	s, err := loadSummaries(r.Context(), ids, nil)
	if err != nil {
		h.fail(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, volunteerProfileResponse{
		volunteerDTO: toVolunteer(p.Volunteer, s),
		Events: mapSlice(p.Events, func(e domain.Event) eventDTO {
			return toEvent(e, s)
		}),
		EventsTotal: p.EventsTotal,
	})
}

// List handles GET /volunteers.
func (h *VolunteerHandler) List(w http.ResponseWriter, r *http.Request) {
	q := newQuery(r)
	input := volunteer.ListInput{
		Status:       enum[domain.VolunteerStatus](q.str("status")),
		Availability: enum[domain.Availability](q.str("availability")),
		Page:         q.page(),
	}
	if err := q.err(); err != nil {
		h.fail(w, r, err)
		return
	}

	page, err := h.svc.List(r.Context(), input)
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

// TransitionStatus handles PATCH /volunteers/{id}/status.
func (h *VolunteerHandler) TransitionStatus(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		h.fail(w, r, err)
		return
	}
	var req volunteerStatusRequest
	if err := decode(r, &req); err != nil {
		h.fail(w, r, err)
		return
	}

	v, err := h.svc.TransitionStatus(r.Context(), id, volunteer.TransitionInput{
		Status: domain.VolunteerStatus(req.Status),
		Notes:  req.Notes,
	})
	h.respond(w, r, http.StatusOK, v, err)
}

// Update handles PUT /volunteers/{id}.
func (h *VolunteerHandler) Update(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		h.fail(w, r, err)
		return
	}
	var req updateVolunteerRequest
	if err := decode(r, &req); err != nil {
		h.fail(w, r, err)
		return
	}

	v, err := h.svc.Update(r.Context(), id, volunteer.UpdateInput{
		Skills:                req.Skills,
		Availability:          enum[domain.Availability](req.Availability),
		AvailableHours:        req.AvailableHours,
		Experience:            req.Experience,
		HasVehicle:            req.HasVehicle,
		PreferredActivities:   req.PreferredActivities,
		EmergencyContactName:  req.EmergencyContactName,
		EmergencyContactPhone: req.EmergencyContactPhone,
	})
	h.respond(w, r, http.StatusOK, v, err)
}

// Deactivate handles PATCH /volunteers/{id}/deactivate.
func (h *VolunteerHandler) Deactivate(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		h.fail(w, r, err)
		return
	}
	v, err := h.svc.Deactivate(r.Context(), id)
	h.respond(w, r, http.StatusOK, v, err)
}

// AddDocuments handles POST /volunteers/{id}/documents.
func (h *VolunteerHandler) AddDocuments(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		h.fail(w, r, err)
		return
	}
	files, err := h.uploads.readFiles(w, r, "documents")
	if err != nil {
		h.fail(w, r, err)
		return
	}
	defer files.Close()

	v, err := h.svc.AddDocuments(r.Context(), id, files.readers())
	if err == nil {
		h.metrics.FilesUploaded("volunteer", len(files.files))
	}
	h.respond(w, r, http.StatusOK, v, err)
}

func (h *VolunteerHandler) respond(w http.ResponseWriter, r *http.Request, status int, v domain.Volunteer, err error) {
	if err != nil {
		h.fail(w, r, err)
		return
	}
	s, err := loadSummaries(r.Context(), volunteerRefs(v), nil)
	if err != nil {
		h.fail(w, r, err)
		return
	}
	writeJSON(w, status, toVolunteer(v, s))
}
