package rest

import (
	"context"
	"io"
	"log/slog"
	"net/http"

	"github.com/google/uuid"

	"github.com/heartmarshall/animal-rescue-backend/internal/domain"
	"github.com/heartmarshall/animal-rescue-backend/internal/service/animal"
)

//go:generate moq -out animal_service_mock_test.go -pkg rest -rm . animalService

type animalService interface {
	Create(ctx context.Context, input animal.CreateInput) (domain.Animal, error)
	Get(ctx context.Context, id uuid.UUID) (domain.Animal, error)
	List(ctx context.Context, input animal.ListInput) (domain.Page[domain.Animal], error)
	ListMine(ctx context.Context, page domain.PageRequest) (domain.Page[domain.Animal], error)
	ListAdoptedByMe(ctx context.Context, page domain.PageRequest) (domain.Page[domain.Animal], error)
	Update(ctx context.Context, id uuid.UUID, input animal.UpdateInput) (domain.Animal, error)
	TransitionAdoptionStatus(ctx context.Context, id uuid.UUID, input animal.TransitionInput) (domain.Animal, error)
	AddImages(ctx context.Context, id uuid.UUID, files []io.Reader) (domain.Animal, error)
}

// AnimalHandler serves adoption listing endpoints.
type AnimalHandler struct {
	base
	svc     animalService
	uploads UploadLimits
	metrics recorder
}

// NewAnimalHandler creates an AnimalHandler.
func NewAnimalHandler(svc animalService, uploads UploadLimits, metrics recorder, logger *slog.Logger) *AnimalHandler {
	if metrics == nil {
		metrics = nopRecorder{}
	}
	return &AnimalHandler{base: newBase(logger, "animals", "animal"), svc: svc, uploads: uploads, metrics: metrics}
}

type createAnimalRequest struct {
	Name                    string  `json:"name"`
	Type                    string  `json:"type"`
	Breed                   *string `json:"breed"`
	Age                     *int    `json:"age"`
	AgeUnit                 string  `json:"ageUnit"`
	Gender                  string  `json:"gender"`
	Size                    string  `json:"size"`
	Color                   *string `json:"color"`
	Description             string  `json:"description"`
	HealthStatus            *string `json:"healthStatus"`
	IsVaccinated            bool    `json:"isVaccinated"`
	IsNeutered              bool    `json:"isNeutered"`
	IsSpecialNeeds          bool    `json:"isSpecialNeeds"`
	SpecialNeedsDescription *string `json:"specialNeedsDescription"`
	Location                string  `json:"location"`
	City                    string  `json:"city"`
	State                   string  `json:"state"`
}

type updateAnimalRequest struct {
	Name                    *string `json:"name"`
	Breed                   *string `json:"breed"`
	Age                     *int    `json:"age"`
	AgeUnit                 *string `json:"ageUnit"`
	Gender                  *string `json:"gender"`
	Size                    *string `json:"size"`
	Color                   *string `json:"color"`
	Description             *string `json:"description"`
	HealthStatus            *string `json:"healthStatus"`
	IsVaccinated            *bool   `json:"isVaccinated"`
	IsNeutered              *bool   `json:"isNeutered"`
	IsSpecialNeeds          *bool   `json:"isSpecialNeeds"`
	SpecialNeedsDescription *string `json:"specialNeedsDescription"`
	Location                *string `json:"location"`
	City                    *string `json:"city"`
	State                   *string `json:"state"`
}

type adoptionStatusRequest struct {
	AdoptionStatus string     `json:"adoptionStatus"`
	AdoptedBy      *uuid.UUID `json:"adoptedBy"`
}

// Create handles POST /animals.
func (h *AnimalHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req createAnimalRequest
	if err := decode(r, &req); err != nil {
		h.fail(w, r, err)
		return
	}

	a, err := h.svc.Create(r.Context(), animal.CreateInput{
		Name:                    req.Name,
		Type:                    req.Type,
		Breed:                   req.Breed,
		Age:                     req.Age,
		AgeUnit:                 domain.AgeUnit(req.AgeUnit),
		Gender:                  domain.Gender(req.Gender),
		Size:                    domain.Size(req.Size),
		Color:                   req.Color,
		Description:             req.Description,
		HealthStatus:            req.HealthStatus,
		IsVaccinated:            req.IsVaccinated,
		IsNeutered:              req.IsNeutered,
		IsSpecialNeeds:          req.IsSpecialNeeds,
		SpecialNeedsDescription: req.SpecialNeedsDescription,
		Location:                req.Location,
		City:                    req.City,
		State:                   req.State,
	})
	h.respond(w, r, http.StatusCreated, a, err)
}

// Get handles GET /animals/{id}.
func (h *AnimalHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		h.fail(w, r, err)
		return
	}
	a, err := h.svc.Get(r.Context(), id)
	h.respond(w, r, http.StatusOK, a, err)
}

// List handles GET /animals.
func (h *AnimalHandler) List(w http.ResponseWriter, r *http.Request) {
	q := newQuery(r)
	input := animal.ListInput{
		Type:           q.str("type"),
		Size:           enum[domain.Size](q.str("size")),
		Gender:         enum[domain.Gender](q.str("gender")),
		City:           q.str("city"),
		State:          q.str("state"),
		AdoptionStatus: enum[domain.AdoptionStatus](q.str("adoptionStatus")),
		Page:           q.page(),
	}
	if err := q.err(); err != nil {
		h.fail(w, r, err)
		return
	}

	page, err := h.svc.List(r.Context(), input)
	h.respondPage(w, r, page, err)
}

// ListMine handles GET /animals/user/me.
func (h *AnimalHandler) ListMine(w http.ResponseWriter, r *http.Request) {
	req, err := pageQuery(r)
	if err != nil {
		h.fail(w, r, err)
		return
	}
	page, err := h.svc.ListMine(r.Context(), req)
	h.respondPage(w, r, page, err)
}

// ListAdoptedByMe handles GET /animals/adopted/me.
func (h *AnimalHandler) ListAdoptedByMe(w http.ResponseWriter, r *http.Request) {
	req, err := pageQuery(r)
	if err != nil {
		h.fail(w, r, err)
		return
	}
	page, err := h.svc.ListAdoptedByMe(r.Context(), req)
	h.respondPage(w, r, page, err)
}

// Update handles PUT /animals/{id}.
func (h *AnimalHandler) Update(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		h.fail(w, r, err)
		return
	}
	var req updateAnimalRequest
	if err := decode(r, &req); err != nil {
		h.fail(w, r, err)
		return
	}

	a, err := h.svc.Update(r.Context(), id, animal.UpdateInput{
		Name:                    req.Name,
		Breed:                   req.Breed,
		Age:                     req.Age,
		AgeUnit:                 enum[domain.AgeUnit](req.AgeUnit),
		Gender:                  enum[domain.Gender](req.Gender),
		Size:                    enum[domain.Size](req.Size),
		Color:                   req.Color,
		Description:             req.Description,
		HealthStatus:            req.HealthStatus,
		IsVaccinated:            req.IsVaccinated,
		IsNeutered:              req.IsNeutered,
		IsSpecialNeeds:          req.IsSpecialNeeds,
		SpecialNeedsDescription: req.SpecialNeedsDescription,
		Location:                req.Location,
		City:                    req.City,
		State:                   req.State,
	})
	h.respond(w, r, http.StatusOK, a, err)
}

// TransitionAdoptionStatus handles PATCH /animals/{id}/adoption-status.
func (h *AnimalHandler) TransitionAdoptionStatus(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		h.fail(w, r, err)
		return
	}
	var req adoptionStatusRequest
	if err := decode(r, &req); err != nil {
		h.fail(w, r, err)
		return
	}

	a, err := h.svc.TransitionAdoptionStatus(r.Context(), id, animal.TransitionInput{
		Status:    domain.AdoptionStatus(req.AdoptionStatus),
		AdoptedBy: req.AdoptedBy,
	})
	h.respond(w, r, http.StatusOK, a, err)
}

// AddImages handles POST /animals/{id}/images.
func (h *AnimalHandler) AddImages(w http.ResponseWriter, r *http.Request) {
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

	a, err := h.svc.AddImages(r.Context(), id, files.readers())
	if err == nil {
		h.metrics.FilesUploaded("animal", len(files.files))
	}
	h.respond(w, r, http.StatusOK, a, err)
}

func (h *AnimalHandler) respond(w http.ResponseWriter, r *http.Request, status int, a domain.Animal, err error) {
	if err != nil {
		h.fail(w, r, err)
		return
	}
	s, err := loadSummaries(r.Context(), animalRefs(a), nil)
	if err != nil {
		h.fail(w, r, err)
		return
	}
	writeJSON(w, status, toAnimal(a, s))
}

func (h *AnimalHandler) respondPage(w http.ResponseWriter, r *http.Request, page domain.Page[domain.Animal], err error) {
	if err != nil {
		h.fail(w, r, err)
		return
	}
	s, err := loadSummaries(r.Context(), animalRefs(page.Items...), nil)
	if err != nil {
		h.fail(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, newList(page, mapSlice(page.Items, func(a domain.Animal) animalDTO {
		return toAnimal(a, s)
	})))
}
