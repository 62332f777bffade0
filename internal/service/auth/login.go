package auth

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/heartmarshall/animal-rescue-backend/internal/domain"
)

// Login authenticates a user with email and password. Unknown emails, wrong
// passwords and deactivated accounts all return ErrUnauthorized.
func (s *Service) Login(ctx context.Context, input LoginInput) (AuthResult, error) {
	input.Email = strings.ToLower(strings.TrimSpace(input.Email))
	if err := input.Validate(); err != nil {
		return AuthResult{}, err
	}

	user, err := s.users.GetByEmail(ctx, input.Email)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			s.hasher.Verify(input.Password, s.decoy())
			return AuthResult{}, domain.ErrUnauthorized
		}
		return AuthResult{}, fmt.Errorf("auth.Login get user: %w", err)
	}

	if !s.hasher.Verify(input.Password, user.PasswordHash) {
		return AuthResult{}, domain.ErrUnauthorized
	}

	if !user.IsActive {
		s.log.InfoContext(ctx, "login rejected for inactive account",
			slog.String("user_id", user.ID.String()))
		return AuthResult{}, fmt.Errorf("account deactivated: %w", domain.ErrUnauthorized)
	}

	token, err := s.tokens.IssueToken(user.ID, user.Role)
	if err != nil {
		return AuthResult{}, fmt.Errorf("auth.Login issue token: %w", err)
	}

	s.log.InfoContext(ctx, "user logged in", slog.String("user_id", user.ID.String()))

	return AuthResult{Token: token, User: user}, nil
}
