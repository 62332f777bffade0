package auth

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/heartmarshall/animal-rescue-backend/internal/domain"
)

const (
	msgRegistered    = "registration completed"
	msgOngRegistered = "registration completed; the organization will be reviewed before verification"
)

// Register creates a user or ONG account and issues a token for it.
// Returns ErrAlreadyExists if the email is taken.
func (s *Service) Register(ctx context.Context, input RegisterInput) (AuthResult, error) {
	input.normalize()
	if err := input.Validate(); err != nil {
		return AuthResult{}, err
	}

	hash, err := s.hasher.Hash(input.Password)
	if err != nil {
		return AuthResult{}, fmt.Errorf("auth.Register: %w", err)
	}

	now := s.now()
	phone := input.Phone
	u := domain.User{
		ID:           uuid.New(),
		Name:         input.Name,
		Email:        input.Email,
		PasswordHash: hash,
		Role:         input.Role,
		IsActive:     true,
		Profile: domain.UserProfile{
			Phone:      &phone,
			Address:    input.Address,
			City:       input.City,
			State:      input.State,
			PostalCode: input.PostalCode,
		},
		CreatedAt: now,
		UpdatedAt: now,
	}
	if input.Role == domain.RoleOng {
		u.Profile.CNPJ = input.CNPJ
		u.Profile.Description = input.Description
		u.Profile.FoundingDate = input.FoundingDate
		u.Profile.Website = input.Website
		u.Profile.SocialMedia = input.SocialMedia
		u.Profile.ResponsibleName = input.ResponsibleName
		u.Profile.ResponsiblePhone = input.ResponsiblePhone
	}

	var created domain.User
	err = s.tx.RunInTx(ctx, func(ctx context.Context) error {
		var err error
		created, err = s.users.Create(ctx, u)
		if err != nil {
			return fmt.Errorf("create user: %w", err)
		}
		return s.audit.Log(ctx, domain.AuditRecord{
			UserID:     &created.ID,
			EntityType: domain.EntityTypeUser,
			EntityID:   created.ID,
			Action:     domain.AuditActionCreate,
			Changes:    map[string]any{"role": string(created.Role)},
			CreatedAt:  now,
		})
	})
	if err != nil {
		return AuthResult{}, fmt.Errorf("auth.Register: %w", err)
	}

	token, err := s.tokens.IssueToken(created.ID, created.Role)
	if err != nil {
		return AuthResult{}, fmt.Errorf("auth.Register issue token: %w", err)
	}

	s.log.InfoContext(ctx, "user registered",
		slog.String("user_id", created.ID.String()),
		slog.String("role", created.Role.String()))

	msg := msgRegistered
	if created.Role == domain.RoleOng {
		msg = msgOngRegistered
	}
	return AuthResult{Token: token, User: created, Message: msg}, nil
}
