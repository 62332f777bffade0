package animal

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"

	"github.com/google/uuid"

	"github.com/heartmarshall/animal-rescue-backend/internal/domain"
	"github.com/heartmarshall/animal-rescue-backend/internal/gate"
	"github.com/heartmarshall/animal-rescue-backend/internal/service/upload"
	"github.com/heartmarshall/animal-rescue-backend/pkg/ctxutil"
)

// Create lists a new animal owned by the caller.
func (s *Service) Create(ctx context.Context, input CreateInput) (domain.Animal, error) {
	p := ctxutil.PrincipalFromCtx(ctx)
	if err := gate.Authorize(p, domain.OpAnimalCreate); err != nil {
		return domain.Animal{}, err
	}
	input.normalize()
	if err := input.Validate(); err != nil {
		return domain.Animal{}, err
	}

	now := s.now()
	a := domain.Animal{
		ID:                      uuid.New(),
		Name:                    input.Name,
		Type:                    input.Type,
		Breed:                   input.Breed,
		Age:                     input.Age,
		AgeUnit:                 input.AgeUnit,
		Gender:                  input.Gender,
		Size:                    input.Size,
		Color:                   input.Color,
		Description:             input.Description,
		HealthStatus:            input.HealthStatus,
		IsVaccinated:            input.IsVaccinated,
		IsNeutered:              input.IsNeutered,
		IsSpecialNeeds:          input.IsSpecialNeeds,
		SpecialNeedsDescription: input.SpecialNeedsDescription,
		AdoptionStatus:          domain.AdoptionAvailable,
		Images:                  []string{},
		UserID:                  p.UserID,
		Location:                input.Location,
		City:                    input.City,
		State:                   input.State,
		CreatedAt:               now,
		UpdatedAt:               now,
	}

	var created domain.Animal
	err := s.tx.RunInTx(ctx, func(ctx context.Context) error {
		var err error
		created, err = s.animals.Create(ctx, a)
		if err != nil {
			return err
		}
		return s.audit.Log(ctx, domain.AuditRecord{
			UserID:     &p.UserID,
			EntityType: domain.EntityTypeAnimal,
			EntityID:   created.ID,
			Action:     domain.AuditActionCreate,
			CreatedAt:  now,
		})
	})
	if err != nil {
		return domain.Animal{}, fmt.Errorf("animal.Create: %w", err)
	}

	s.log.InfoContext(ctx, "animal listed",
		slog.String("animal_id", created.ID.String()),
		slog.String("owner_id", p.UserID.String()))
	return created, nil
}

// Get returns an animal by id.
func (s *Service) Get(ctx context.Context, id uuid.UUID) (domain.Animal, error) {
	a, err := s.animals.GetByID(ctx, id)
	if err != nil {
		return domain.Animal{}, fmt.Errorf("animal.Get: %w", err)
	}
	return a, nil
}

// List returns a page of animals. Without an explicit adoption status only
// available animals are listed.
func (s *Service) List(ctx context.Context, input ListInput) (domain.Page[domain.Animal], error) {
	if err := input.Validate(); err != nil {
		return domain.Page[domain.Animal]{}, err
	}
	status := domain.AdoptionAvailable
	if input.AdoptionStatus != nil {
		status = *input.AdoptionStatus
	}
	return s.list(ctx, domain.AnimalFilter{
		Type:           input.Type,
		Size:           input.Size,
		Gender:         input.Gender,
		City:           input.City,
		State:          input.State,
		AdoptionStatus: &status,
	}, input.Page)
}

// ListMine returns every animal listed by the caller regardless of status.
func (s *Service) ListMine(ctx context.Context, page domain.PageRequest) (domain.Page[domain.Animal], error) {
	p := ctxutil.PrincipalFromCtx(ctx)
	if err := gate.Authorize(p, domain.OpAnimalListMine); err != nil {
		return domain.Page[domain.Animal]{}, err
	}
	return s.list(ctx, domain.AnimalFilter{UserID: &p.UserID}, page)
}

// ListAdoptedByMe returns the animals adopted by the caller, most recent
// adoption first.
func (s *Service) ListAdoptedByMe(ctx context.Context, page domain.PageRequest) (domain.Page[domain.Animal], error) {
	p := ctxutil.PrincipalFromCtx(ctx)
	if err := gate.Authorize(p, domain.OpAnimalListMine); err != nil {
		return domain.Page[domain.Animal]{}, err
	}
	return s.list(ctx, domain.AnimalFilter{AdoptedBy: &p.UserID}, page)
}

func (s *Service) list(ctx context.Context, filter domain.AnimalFilter, req domain.PageRequest) (domain.Page[domain.Animal], error) {
	page := s.paging.Apply(req)
	animals, total, err := s.animals.List(ctx, filter, page)
	if err != nil {
		return domain.Page[domain.Animal]{}, fmt.Errorf("animal.List: %w", err)
	}
	return domain.NewPage(animals, total, page), nil
}

// Update applies a partial update to an animal (owner or admin).
func (s *Service) Update(ctx context.Context, id uuid.UUID, input UpdateInput) (domain.Animal, error) {
	p := ctxutil.PrincipalFromCtx(ctx)
	if err := gate.RequireAuthenticated(p); err != nil {
		return domain.Animal{}, err
	}
	if err := input.Validate(); err != nil {
		return domain.Animal{}, err
	}

	var updated domain.Animal
	err := s.tx.RunInTx(ctx, func(ctx context.Context) error {
		a, err := s.animals.GetForUpdate(ctx, id)
		if err != nil {
			return err
		}
		if err := gate.RequireOwnership(p, a, domain.AnimalOwner); err != nil {
			return err
		}

		now := s.now()
		input.apply(&a)
		a.UpdatedAt = now

		updated, err = s.animals.Update(ctx, a)
		if err != nil {
			return err
		}
		return s.audit.Log(ctx, domain.AuditRecord{
			UserID:     &p.UserID,
			EntityType: domain.EntityTypeAnimal,
			EntityID:   id,
			Action:     domain.AuditActionUpdate,
			CreatedAt:  now,
		})
	})
	if err != nil {
		return domain.Animal{}, fmt.Errorf("animal.Update: %w", err)
	}
	return updated, nil
}

// TransitionAdoptionStatus moves an animal through its adoption lifecycle
// (owner or admin). Marking an animal adopted requires an existing adopter.
func (s *Service) TransitionAdoptionStatus(ctx context.Context, id uuid.UUID, input TransitionInput) (domain.Animal, error) {
	p := ctxutil.PrincipalFromCtx(ctx)
	if err := gate.RequireAuthenticated(p); err != nil {
		return domain.Animal{}, err
	}
	if !input.Status.IsValid() {
		return domain.Animal{}, domain.NewValidationError("adoption_status", "must be available, pending or adopted")
	}
	if input.Status == domain.AdoptionAdopted && (input.AdoptedBy == nil || *input.AdoptedBy == uuid.Nil) {
		return domain.Animal{}, domain.NewValidationError("adopted_by", "required when status is adopted")
	}

	var updated domain.Animal
	err := s.tx.RunInTx(ctx, func(ctx context.Context) error {
		a, err := s.animals.GetForUpdate(ctx, id)
		if err != nil {
			return err
		}
		if err := gate.RequireOwnership(p, a, domain.AnimalOwner); err != nil {
			return err
		}

		if input.Status == domain.AdoptionAdopted {
			if _, err := s.users.GetByID(ctx, *input.AdoptedBy); err != nil {
				if errors.Is(err, domain.ErrNotFound) {
					return domain.NewValidationError("adopted_by", "adopter not found")
				}
				return err
			}
		}

		from := a.AdoptionStatus
		now := s.now()
		if err := a.ApplyAdoptionStatus(input.Status, input.AdoptedBy, now); err != nil {
			return err
		}
		a.UpdatedAt = now

		updated, err = s.animals.UpdateAdoption(ctx, a)
		if err != nil {
			return err
		}
		changes := map[string]any{"from": string(from), "to": string(input.Status)}
		if a.AdoptedBy != nil {
			changes["adopted_by"] = a.AdoptedBy.String()
		}
		return s.audit.Log(ctx, domain.AuditRecord{
			UserID:     &p.UserID,
			EntityType: domain.EntityTypeAnimal,
			EntityID:   id,
			Action:     domain.AuditActionStatus,
			Changes:    changes,
			CreatedAt:  now,
		})
	})
	if err != nil {
		return domain.Animal{}, fmt.Errorf("animal.TransitionAdoptionStatus: %w", err)
	}

	s.log.InfoContext(ctx, "adoption status changed",
		slog.String("animal_id", id.String()),
		slog.String("status", input.Status.String()))
	return updated, nil
}

// AddImages appends photos to an animal listing (owner or admin).
func (s *Service) AddImages(ctx context.Context, id uuid.UUID, files []io.Reader) (domain.Animal, error) {
	p := ctxutil.PrincipalFromCtx(ctx)
	if err := gate.RequireAuthenticated(p); err != nil {
		return domain.Animal{}, err
	}

	a, err := s.animals.GetByID(ctx, id)
	if err != nil {
		return domain.Animal{}, fmt.Errorf("animal.AddImages: %w", err)
	}
	if err := gate.RequireOwnership(p, a, domain.AnimalOwner); err != nil {
		return domain.Animal{}, err
	}

	batch, err := upload.Files(ctx, s.blobs, "animals/"+id.String(), "images", files, s.maxFiles)
	if err != nil {
		return domain.Animal{}, err
	}

	updated, err := s.animals.AppendImages(ctx, id, batch.URLs(), s.now())
	if err != nil {
		batch.Discard(ctx)
		return domain.Animal{}, fmt.Errorf("animal.AddImages: %w", err)
	}
	return updated, nil
}
