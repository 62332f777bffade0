package rest

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"

	"github.com/heartmarshall/animal-rescue-backend/internal/domain"
	"github.com/heartmarshall/animal-rescue-backend/internal/gate"
	"github.com/heartmarshall/animal-rescue-backend/internal/transport/dataloader"
	"github.com/heartmarshall/animal-rescue-backend/internal/transport/middleware"
)

const testToken = "Bearer test-token"

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

// resolverStub authenticates any request carrying testToken as principal.
type resolverStub struct {
	principal domain.Principal
}

func (r resolverStub) Authenticate(_ context.Context, creds gate.Credentials) (domain.Principal, error) {
	if creds.Authorization != testToken {
		return domain.Principal{}, domain.ErrUnauthorized
	}
	return r.principal, nil
}

func (r resolverStub) Identify(ctx context.Context, creds gate.Credentials) (domain.Principal, error) {
	if creds.Authorization != "" {
		return r.Authenticate(ctx, creds)
	}
	if creds.Public {
		return domain.PublicPrincipal(), nil
	}
	return domain.AnonymousPrincipal(), nil
}

type userLookupStub struct {
	users []domain.User
}

func (s userLookupStub) GetByIDs(_ context.Context, _ []uuid.UUID) ([]domain.User, error) {
	return s.users, nil
}

type eventLookupStub struct {
	events []domain.Event
}

func (s eventLookupStub) GetByIDs(_ context.Context, _ []uuid.UUID) ([]domain.Event, error) {
	return s.events, nil
}

// recorderStub captures domain counters.
type recorderStub struct {
	mu          sync.Mutex
	enrollments []string
	donations   []string
	uploads     map[string]int
}

func (r *recorderStub) Enrollment(result string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.enrollments = append(r.enrollments, result)
}

func (r *recorderStub) DonationCreated(kind string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.donations = append(r.donations, kind)
}

func (r *recorderStub) FilesUploaded(entity string, n int) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.uploads == nil {
		r.uploads = map[string]int{}
	}
	r.uploads[entity] += n
}

var testLimits = UploadLimits{MaxFileBytes: 1 << 20, MaxFilesPerReq: 5}

// fixture wires every handler to empty mocks behind the real router, auth
// middleware and DataLoaders.
type fixture struct {
	auth       *authServiceMock
	users      *userServiceMock
	animals    *animalServiceMock
	reports    *reportServiceMock
	events     *eventServiceMock
	donations  *donationServiceMock
	volunteers *volunteerServiceMock
	metrics    *recorderStub

	principal   domain.Principal
	knownUsers  []domain.User
	knownEvents []domain.Event
}

func newFixture(p domain.Principal) *fixture {
	return &fixture{
		auth:       &authServiceMock{},
		users:      &userServiceMock{},
		animals:    &animalServiceMock{},
		reports:    &reportServiceMock{},
		events:     &eventServiceMock{},
		donations:  &donationServiceMock{},
		volunteers: &volunteerServiceMock{},
		metrics:    &recorderStub{},
		principal:  p,
	}
}

func (f *fixture) handler() http.Handler {
	log := testLogger()
	h := Handlers{
		Health:     NewHealthHandler("test", nil),
		Auth:       NewAuthHandler(f.auth, log),
		Users:      NewUserHandler(f.users, testLimits, f.metrics, log),
		Animals:    NewAnimalHandler(f.animals, testLimits, f.metrics, log),
		Reports:    NewReportHandler(f.reports, testLimits, f.metrics, log),
		Events:     NewEventHandler(f.events, testLimits, f.metrics, log),
		Donations:  NewDonationHandler(f.donations, testLimits, f.metrics, log),
		Volunteers: NewVolunteerHandler(f.volunteers, testLimits, f.metrics, log),
	}
	mux := NewRouter(RouterConfig{APIPrefix: "/api", UploadsPrefix: "/uploads"}, h,
		middleware.NewAuth(resolverStub{principal: f.principal}, "X-Public-Request"))

	repos := &dataloader.Repos{
		User:  userLookupStub{users: f.knownUsers},
		Event: eventLookupStub{events: f.knownEvents},
	}
	return dataloader.Middleware(repos)(mux)
}

// do sends a request with the test bearer token unless anonymous is set.
func (f *fixture) do(t *testing.T, method, path string, body any, anonymous bool) *httptest.ResponseRecorder {
	t.Helper()

	var r io.Reader
	if body != nil {
		b, err := json.Marshal(body)
		require.NoError(t, err)
		r = bytes.NewReader(b)
	}
	req := httptest.NewRequest(method, path, r)
	req.Header.Set("Content-Type", "application/json")
	if !anonymous {
		req.Header.Set("Authorization", testToken)
	}
	rec := httptest.NewRecorder()
	f.handler().ServeHTTP(rec, req)
	return rec
}

// upload sends a multipart request with one part per entry in files.
func (f *fixture) upload(t *testing.T, path, field string, files ...string) *httptest.ResponseRecorder {
	t.Helper()

	var buf bytes.Buffer
	mw := multipart.NewWriter(&buf)
	for i, content := range files {
		part, err := mw.CreateFormFile(field, "file"+string(rune('a'+i)))
		require.NoError(t, err)
		_, err = io.Copy(part, strings.NewReader(content))
		require.NoError(t, err)
	}
	require.NoError(t, mw.Close())

	req := httptest.NewRequest(http.MethodPost, path, &buf)
	req.Header.Set("Content-Type", mw.FormDataContentType())
	req.Header.Set("Authorization", testToken)
	rec := httptest.NewRecorder()
	f.handler().ServeHTTP(rec, req)
	return rec
}

func decodeBody[T any](t *testing.T, rec *httptest.ResponseRecorder) T {
	t.Helper()
	var v T
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&v), rec.Body.String())
	return v
}

func principal(role domain.Role) domain.Principal {
	return domain.AuthenticatedPrincipal(domain.User{
		ID:       uuid.New(),
		Name:     "Caller",
		Email:    "caller@example.org",
		Role:     role,
		IsActive: true,
	})
}

func ptr[T any](v T) *T { return &v }
