package report

import (
	"context"
	"fmt"
	"io"
	"log/slog"

	"github.com/google/uuid"

	"github.com/heartmarshall/animal-rescue-backend/internal/domain"
	"github.com/heartmarshall/animal-rescue-backend/internal/gate"
	"github.com/heartmarshall/animal-rescue-backend/internal/service/upload"
	"github.com/heartmarshall/animal-rescue-backend/pkg/ctxutil"
)

// Create files a new report. Authenticated callers become the reporter;
// anonymous and public callers file anonymous reports.
func (s *Service) Create(ctx context.Context, input CreateInput) (domain.Report, error) {
	input.normalize()
	if err := input.Validate(); err != nil {
		return domain.Report{}, err
	}

	p := ctxutil.PrincipalFromCtx(ctx)
	now := s.now()
	rep := domain.Report{
		ID:           uuid.New(),
		Title:        input.Title,
		Description:  input.Description,
		Location:     input.Location,
		Latitude:     input.Latitude,
		Longitude:    input.Longitude,
		AnimalType:   input.AnimalType,
		UrgencyLevel: input.UrgencyLevel,
		Status:       domain.ReportStatusPending,
		Images:       []string{},
		UserID:       p.ActorID(),
		CreatedAt:    now,
		UpdatedAt:    now,
	}

	var created domain.Report
	err := s.tx.RunInTx(ctx, func(ctx context.Context) error {
		var err error
		created, err = s.reports.Create(ctx, rep)
		if err != nil {
			return err
		}
		return s.audit.Log(ctx, domain.AuditRecord{
			UserID:     p.ActorID(),
			EntityType: domain.EntityTypeReport,
			EntityID:   created.ID,
			Action:     domain.AuditActionCreate,
			CreatedAt:  now,
		})
	})
	if err != nil {
		return domain.Report{}, fmt.Errorf("report.Create: %w", err)
	}

	s.log.InfoContext(ctx, "report created",
		slog.String("report_id", created.ID.String()),
		slog.Bool("anonymous", created.UserID == nil),
		slog.String("urgency", created.UrgencyLevel.String()))
	return created, nil
}

// Get returns a report by id.
func (s *Service) Get(ctx context.Context, id uuid.UUID) (domain.Report, error) {
	rep, err := s.reports.GetByID(ctx, id)
	if err != nil {
		return domain.Report{}, fmt.Errorf("report.Get: %w", err)
	}
	return rep, nil
}

// List returns a page of reports, newest first.
func (s *Service) List(ctx context.Context, input ListInput) (domain.Page[domain.Report], error) {
	if err := input.Validate(); err != nil {
		return domain.Page[domain.Report]{}, err
	}
	return s.list(ctx, domain.ReportFilter{
		Status:       input.Status,
		UrgencyLevel: input.UrgencyLevel,
		AnimalType:   input.AnimalType,
	}, input.Page)
}

// ListMine returns the reports filed by the caller.
func (s *Service) ListMine(ctx context.Context, page domain.PageRequest) (domain.Page[domain.Report], error) {
	p := ctxutil.PrincipalFromCtx(ctx)
	if err := gate.Authorize(p, domain.OpReportListMine); err != nil {
		return domain.Page[domain.Report]{}, err
	}
	return s.list(ctx, domain.ReportFilter{UserID: &p.UserID}, page)
}

// ListAssignedToMe returns the reports assigned to the calling ONG or admin.
func (s *Service) ListAssignedToMe(ctx context.Context, page domain.PageRequest) (domain.Page[domain.Report], error) {
	p := ctxutil.PrincipalFromCtx(ctx)
	if err := gate.Authorize(p, domain.OpReportListAssigned); err != nil {
		return domain.Page[domain.Report]{}, err
	}
	return s.list(ctx, domain.ReportFilter{AssignedToID: &p.UserID}, page)
}

func (s *Service) list(ctx context.Context, filter domain.ReportFilter, req domain.PageRequest) (domain.Page[domain.Report], error) {
	page := s.paging.Apply(req)
	reports, total, err := s.reports.List(ctx, filter, page)
	if err != nil {
		return domain.Page[domain.Report]{}, fmt.Errorf("report.List: %w", err)
	}
	return domain.NewPage(reports, total, page), nil
}

// TransitionStatus moves a report to status. The acting ONG or admin is
// assigned when the report has no assignee, and the first resolution is
// timestamped.
func (s *Service) TransitionStatus(ctx context.Context, id uuid.UUID, status domain.ReportStatus) (domain.Report, error) {
	p := ctxutil.PrincipalFromCtx(ctx)
	if err := gate.Authorize(p, domain.OpReportTransition); err != nil {
		return domain.Report{}, err
	}
	if !status.IsValid() {
		return domain.Report{}, domain.NewValidationError("status", "must be pending, investigating, resolved or closed")
	}

	var updated domain.Report
	err := s.tx.RunInTx(ctx, func(ctx context.Context) error {
		rep, err := s.reports.GetForUpdate(ctx, id)
		if err != nil {
			return err
		}
		from := rep.Status

		now := s.now()
		rep.ApplyStatus(status, p.UserID, now)
		rep.UpdatedAt = now

		updated, err = s.reports.UpdateLifecycle(ctx, rep)
		if err != nil {
			return err
		}
		return s.audit.Log(ctx, domain.AuditRecord{
			UserID:     &p.UserID,
			EntityType: domain.EntityTypeReport,
			EntityID:   id,
			Action:     domain.AuditActionStatus,
			Changes:    map[string]any{"from": string(from), "to": string(status)},
			CreatedAt:  now,
		})
	})
	if err != nil {
		return domain.Report{}, fmt.Errorf("report.TransitionStatus: %w", err)
	}

	s.log.InfoContext(ctx, "report status changed",
		slog.String("report_id", id.String()),
		slog.String("status", status.String()))
	return updated, nil
}

// Assign hands a report to another ONG or admin account.
func (s *Service) Assign(ctx context.Context, id, assigneeID uuid.UUID) (domain.Report, error) {
	p := ctxutil.PrincipalFromCtx(ctx)
	if err := gate.Authorize(p, domain.OpReportAssign); err != nil {
		return domain.Report{}, err
	}
	if assigneeID == uuid.Nil {
		return domain.Report{}, domain.NewValidationError("assigned_to_id", "required")
	}

	var updated domain.Report
	err := s.tx.RunInTx(ctx, func(ctx context.Context) error {
		assignee, err := s.users.GetByID(ctx, assigneeID)
		if err != nil {
			return fmt.Errorf("assignee: %w", err)
		}
		if assignee.Role != domain.RoleOng && assignee.Role != domain.RoleAdmin {
			return domain.NewValidationError("assigned_to_id", "only ONGs and admins can be assigned")
		}

		rep, err := s.reports.GetForUpdate(ctx, id)
		if err != nil {
			return err
		}
		now := s.now()
		rep.AssignedToID = &assignee.ID
		rep.UpdatedAt = now

		updated, err = s.reports.UpdateLifecycle(ctx, rep)
		if err != nil {
			return err
		}
		return s.audit.Log(ctx, domain.AuditRecord{
			UserID:     &p.UserID,
			EntityType: domain.EntityTypeReport,
			EntityID:   id,
			Action:     domain.AuditActionUpdate,
			Changes:    map[string]any{"assigned_to_id": assignee.ID.String()},
			CreatedAt:  now,
		})
	})
	if err != nil {
		return domain.Report{}, fmt.Errorf("report.Assign: %w", err)
	}

	s.log.InfoContext(ctx, "report assigned",
		slog.String("report_id", id.String()),
		slog.String("assignee_id", assigneeID.String()))
	return updated, nil
}

// AddImages appends photos to a report. Only the reporter or an admin may
// add photos to a signed report; anonymous reports accept photos from any
// caller so the reporter can attach them after filing.
func (s *Service) AddImages(ctx context.Context, id uuid.UUID, files []io.Reader) (domain.Report, error) {
	p := ctxutil.PrincipalFromCtx(ctx)

	rep, err := s.reports.GetByID(ctx, id)
	if err != nil {
		return domain.Report{}, fmt.Errorf("report.AddImages: %w", err)
	}
	if rep.UserID != nil {
		if err := gate.RequireOwnership(p, rep, domain.ReportOwner); err != nil {
			return domain.Report{}, err
		}
	}

	batch, err := upload.Files(ctx, s.blobs, "reports/"+id.String(), "images", files, s.maxFiles)
	if err != nil {
		return domain.Report{}, err
	}

	updated, err := s.reports.AppendImages(ctx, id, batch.URLs(), s.now())
	if err != nil {
		batch.Discard(ctx)
		return domain.Report{}, fmt.Errorf("report.AddImages: %w", err)
	}

	s.log.InfoContext(ctx, "report images added",
		slog.String("report_id", id.String()),
		slog.Int("count", len(files)))
	return updated, nil
}
