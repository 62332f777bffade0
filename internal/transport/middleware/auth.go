package middleware

import (
	"context"
	"errors"
	"net/http"
	"strings"
	"sync"

	"github.com/heartmarshall/animal-rescue-backend/internal/domain"
	"github.com/heartmarshall/animal-rescue-backend/internal/gate"
	"github.com/heartmarshall/animal-rescue-backend/pkg/ctxutil"
)

type principalResolver interface {
	Authenticate(ctx context.Context, creds gate.Credentials) (domain.Principal, error)
	Identify(ctx context.Context, creds gate.Credentials) (domain.Principal, error)
}

// Auth builds the route-level authentication middleware. Strict routes
// require a credential or an explicit public marker; Optional routes also
// admit anonymous callers.
type Auth struct {
	resolver     principalResolver
	publicHeader string
}

// NewAuth creates Auth. publicHeader names the header that marks a request
// as public when set to "true".
func NewAuth(resolver principalResolver, publicHeader string) *Auth {
	return &Auth{resolver: resolver, publicHeader: publicHeader}
}

// Strict rejects requests that resolve to no principal with 401.
func (a *Auth) Strict(next http.Handler) http.Handler {
	return a.wrap(next, a.resolver.Authenticate)
}

// Optional lets requests without credentials through as anonymous. A
// credential that is present but invalid is still rejected.
func (a *Auth) Optional(next http.Handler) http.Handler {
	return a.wrap(next, a.resolver.Identify)
}

func (a *Auth) wrap(next http.Handler, resolve func(context.Context, gate.Credentials) (domain.Principal, error)) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		p, err := resolve(r.Context(), a.credentials(r))
		switch {
		case errors.Is(err, domain.ErrUnauthorized):
			writeError(w, http.StatusUnauthorized, "authentication required")
			return
		case err != nil:
			writeError(w, http.StatusInternalServerError, "internal server error")
			return
		}

		if who := principalSlot(r.Context()); who != nil {
			who.set(p)
		}
		next.ServeHTTP(w, r.WithContext(ctxutil.WithPrincipal(r.Context(), p)))
	})
}

func (a *Auth) credentials(r *http.Request) gate.Credentials {
	return gate.Credentials{
		Public:        strings.EqualFold(strings.TrimSpace(r.Header.Get(a.publicHeader)), "true"),
		Authorization: r.Header.Get("Authorization"),
	}
}

// slot lets outer middleware observe the principal resolved further down.
type slot struct {
	mu sync.Mutex
	p  domain.Principal
}

func (s *slot) set(p domain.Principal) {
	s.mu.Lock()
	s.p = p
	s.mu.Unlock()
}

func (s *slot) get() domain.Principal {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.p
}

type slotKey struct{}

func withPrincipalSlot(ctx context.Context) (context.Context, *slot) {
	s := &slot{p: domain.AnonymousPrincipal()}
	return context.WithValue(ctx, slotKey{}, s), s
}

func principalSlot(ctx context.Context) *slot {
	s, _ := ctx.Value(slotKey{}).(*slot)
	return s
}
