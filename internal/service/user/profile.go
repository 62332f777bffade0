package user

import (
	"context"
	"fmt"
	"io"
	"log/slog"

	"github.com/heartmarshall/animal-rescue-backend/internal/domain"
	"github.com/heartmarshall/animal-rescue-backend/internal/gate"
	"github.com/heartmarshall/animal-rescue-backend/internal/service/upload"
	"github.com/heartmarshall/animal-rescue-backend/pkg/ctxutil"
)

// GetProfile returns the authenticated caller's own account.
func (s *Service) GetProfile(ctx context.Context) (domain.User, error) {
	p := ctxutil.PrincipalFromCtx(ctx)
	if err := gate.Authorize(p, domain.OpUserProfile); err != nil {
		return domain.User{}, err
	}

	u, err := s.users.GetByID(ctx, p.UserID)
	if err != nil {
		return domain.User{}, fmt.Errorf("user.GetProfile: %w", err)
	}
	return u, nil
}

// UpdateProfile applies a partial update to the caller's own profile.
func (s *Service) UpdateProfile(ctx context.Context, input UpdateProfileInput) (domain.User, error) {
	p := ctxutil.PrincipalFromCtx(ctx)
	if err := gate.Authorize(p, domain.OpUserProfile); err != nil {
		return domain.User{}, err
	}
	if err := input.Validate(); err != nil {
		return domain.User{}, err
	}

	var updated domain.User
	err := s.tx.RunInTx(ctx, func(ctx context.Context) error {
		u, err := s.users.GetByID(ctx, p.UserID)
		if err != nil {
			return err
		}
		input.apply(&u)

		now := s.now()
		updated, err = s.users.UpdateProfile(ctx, u.ID, u.Name, u.Profile, now)
		if err != nil {
			return err
		}
		return s.audit.Log(ctx, domain.AuditRecord{
			UserID:     &p.UserID,
			EntityType: domain.EntityTypeUser,
			EntityID:   u.ID,
			Action:     domain.AuditActionUpdate,
			CreatedAt:  now,
		})
	})
	if err != nil {
		return domain.User{}, fmt.Errorf("user.UpdateProfile: %w", err)
	}

	s.log.InfoContext(ctx, "profile updated", slog.String("user_id", p.UserID.String()))
	return updated, nil
}

// ChangePassword replaces the caller's password after verifying the
// current one.
func (s *Service) ChangePassword(ctx context.Context, input ChangePasswordInput) error {
	p := ctxutil.PrincipalFromCtx(ctx)
	if err := gate.Authorize(p, domain.OpUserProfile); err != nil {
		return err
	}
	if err := input.Validate(); err != nil {
		return err
	}

	u, err := s.users.GetByID(ctx, p.UserID)
	if err != nil {
		return fmt.Errorf("user.ChangePassword: %w", err)
	}
	if !s.hasher.Verify(input.CurrentPassword, u.PasswordHash) {
		return domain.NewValidationError("current_password", "incorrect password")
	}

	hash, err := s.hasher.Hash(input.NewPassword)
	if err != nil {
		return fmt.Errorf("user.ChangePassword: %w", err)
	}
	if err := s.users.UpdatePassword(ctx, u.ID, hash, s.now()); err != nil {
		return fmt.Errorf("user.ChangePassword: %w", err)
	}

	s.log.InfoContext(ctx, "password changed", slog.String("user_id", u.ID.String()))
	return nil
}

// UploadProfileImage stores file and makes it the caller's profile image.
func (s *Service) UploadProfileImage(ctx context.Context, file io.Reader) (domain.User, error) {
	p := ctxutil.PrincipalFromCtx(ctx)
	if err := gate.Authorize(p, domain.OpUserProfile); err != nil {
		return domain.User{}, err
	}
	if file == nil {
		return domain.User{}, domain.NewValidationError("profile_image", "required")
	}

	batch, err := upload.Files(ctx, s.blobs, "profiles/"+p.UserID.String(), "profile_image", []io.Reader{file}, 1)
	if err != nil {
		return domain.User{}, err
	}

	u, err := s.users.GetByID(ctx, p.UserID)
	if err != nil {
		batch.Discard(ctx)
		return domain.User{}, fmt.Errorf("user.UploadProfileImage: %w", err)
	}
	u.Profile.ProfileImage = &batch.URLs()[0]

	updated, err := s.users.UpdateProfile(ctx, u.ID, u.Name, u.Profile, s.now())
	if err != nil {
		batch.Discard(ctx)
		return domain.User{}, fmt.Errorf("user.UploadProfileImage: %w", err)
	}
	return updated, nil
}
