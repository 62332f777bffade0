// Package gate resolves the principal of a request and decides whether it
// may perform an operation or mutate a resource.
package gate

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/google/uuid"

	"github.com/heartmarshall/animal-rescue-backend/internal/domain"
)

type tokenResolver interface {
	ResolveToken(token string) (uuid.UUID, error)
}

type userStore interface {
	GetByID(ctx context.Context, id uuid.UUID) (domain.User, error)
}

// Credentials is what a request presents to identify itself.
type Credentials struct {
	// Public is set when the caller explicitly marked the request public.
	Public bool
	// Authorization is the raw Authorization header, possibly empty.
	Authorization string
}

// Gate resolves principals from credentials.
type Gate struct {
	tokens tokenResolver
	users  userStore
	log    *slog.Logger
}

// New creates a Gate.
func New(logger *slog.Logger, tokens tokenResolver, users userStore) *Gate {
	return &Gate{
		tokens: tokens,
		users:  users,
		log:    logger.With("component", "gate"),
	}
}

// Authenticate resolves creds into a principal. Requests explicitly marked
// public resolve to the public principal. Otherwise a valid bearer token for
// an existing active user is required; every other outcome is
// domain.ErrUnauthorized.
func (g *Gate) Authenticate(ctx context.Context, creds Credentials) (domain.Principal, error) {
	if creds.Public {
		return domain.PublicPrincipal(), nil
	}
	if strings.TrimSpace(creds.Authorization) == "" {
		return domain.Principal{}, fmt.Errorf("missing credentials: %w", domain.ErrUnauthorized)
	}
	return g.resolve(ctx, creds.Authorization)
}

// Identify behaves like Authenticate except that a request with no
// credentials at all resolves to the anonymous principal.
func (g *Gate) Identify(ctx context.Context, creds Credentials) (domain.Principal, error) {
	if creds.Public {
		return domain.PublicPrincipal(), nil
	}
	if strings.TrimSpace(creds.Authorization) == "" {
		return domain.AnonymousPrincipal(), nil
	}
	return g.resolve(ctx, creds.Authorization)
}

func (g *Gate) resolve(ctx context.Context, header string) (domain.Principal, error) {
	token, ok := bearerToken(header)
	if !ok {
		return domain.Principal{}, fmt.Errorf("malformed authorization header: %w", domain.ErrUnauthorized)
	}

	userID, err := g.tokens.ResolveToken(token)
	if err != nil {
		return domain.Principal{}, fmt.Errorf("resolve token: %w", domain.ErrUnauthorized)
	}

	user, err := g.users.GetByID(ctx, userID)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return domain.Principal{}, fmt.Errorf("unknown user: %w", domain.ErrUnauthorized)
		}
		g.log.ErrorContext(ctx, "load principal", slog.String("user_id", userID.String()), slog.String("error", err.Error()))
		return domain.Principal{}, fmt.Errorf("gate.resolve: %w", err)
	}
	if !user.IsActive {
		return domain.Principal{}, fmt.Errorf("inactive user: %w", domain.ErrUnauthorized)
	}

	return domain.AuthenticatedPrincipal(user), nil
}

func bearerToken(header string) (string, bool) {
	scheme, token, ok := strings.Cut(strings.TrimSpace(header), " ")
	if !ok || !strings.EqualFold(scheme, "Bearer") {
		return "", false
	}
	token = strings.TrimSpace(token)
	return token, token != ""
}
