package rest

import (
	"net/http"
	"strings"

	"github.com/heartmarshall/animal-rescue-backend/internal/transport/middleware"
)

// Handlers groups every resource handler mounted by NewRouter.
type Handlers struct {
	Health     *HealthHandler
	Auth       *AuthHandler
	Users      *UserHandler
	Animals    *AnimalHandler
	Reports    *ReportHandler
	Events     *EventHandler
	Donations  *DonationHandler
	Volunteers *VolunteerHandler
	Files      *FileHandler
}

// guard resolves the principal of a request. Strict rejects requests
// without valid credentials; Optional lets anonymous callers through.
type guard interface {
	Strict(next http.Handler) http.Handler
	Optional(next http.Handler) http.Handler
}

// RouterConfig holds the mount points and route-level middleware.
type RouterConfig struct {
	APIPrefix     string
	UploadsPrefix string
	MetricsPath   string
	Metrics       http.Handler          // nil disables the metrics endpoint
	AuthLimit     middleware.Middleware // applied to register and login; may be nil
}

// NewRouter mounts all routes on a ServeMux. Global middleware is applied by
// the caller around the returned mux.
func NewRouter(cfg RouterConfig, h Handlers, auth guard) *http.ServeMux {
	mux := http.NewServeMux()
	api := strings.TrimSuffix(cfg.APIPrefix, "/")

	strict := func(fn http.HandlerFunc) http.Handler { return auth.Strict(fn) }
	optional := func(fn http.HandlerFunc) http.Handler { return auth.Optional(fn) }
	limited := func(fn http.HandlerFunc) http.Handler {
		if cfg.AuthLimit == nil {
			return fn
		}
		return cfg.AuthLimit(fn)
	}
	route := func(pattern string, handler http.Handler) {
		method, path, _ := strings.Cut(pattern, " ")
		mux.Handle(method+" "+api+path, handler)
	}

	// Operational
	mux.HandleFunc("GET /live", h.Health.Live)
	mux.HandleFunc("GET /ready", h.Health.Ready)
	mux.HandleFunc("GET /health", h.Health.Health)
	if cfg.Metrics != nil {
		mux.Handle("GET "+cfg.MetricsPath, cfg.Metrics)
	}
	if h.Files != nil {
		mux.HandleFunc("GET "+strings.TrimSuffix(cfg.UploadsPrefix, "/")+"/{key...}", h.Files.Serve)
	}

	// Auth
	route("POST /auth/register", limited(h.Auth.Register))
	route("POST /auth/login", limited(h.Auth.Login))

	// Users
	route("GET /users/me", strict(h.Users.Me))
	route("PUT /users/me", strict(h.Users.UpdateMe))
	route("PUT /users/me/password", strict(h.Users.ChangePassword))
	route("POST /users/me/profile-image", strict(h.Users.UploadProfileImage))
	route("GET /users", optional(h.Users.List))
	route("GET /users/{id}", strict(h.Users.Get))
	route("PATCH /users/{id}/status", strict(h.Users.SetStatus))
	route("PATCH /users/{id}/role", strict(h.Users.SetRole))

	// Animals
	route("GET /animals", optional(h.Animals.List))
	route("POST /animals", strict(h.Animals.Create))
	route("GET /animals/user/me", strict(h.Animals.ListMine))
	route("GET /animals/adopted/me", strict(h.Animals.ListAdoptedByMe))
	route("GET /animals/{id}", optional(h.Animals.Get))
	route("PUT /animals/{id}", strict(h.Animals.Update))
	route("PATCH /animals/{id}/adoption-status", strict(h.Animals.TransitionAdoptionStatus))
	route("POST /animals/{id}/images", strict(h.Animals.AddImages))

	// Reports
	route("GET /reports", optional(h.Reports.List))
	route("POST /reports", optional(h.Reports.Create))
	route("GET /reports/user/me", strict(h.Reports.ListMine))
	route("GET /reports/assigned/me", strict(h.Reports.ListAssignedToMe))
	route("GET /reports/{id}", optional(h.Reports.Get))
	route("PATCH /reports/{id}/status", strict(h.Reports.TransitionStatus))
	route("PATCH /reports/{id}/assign", strict(h.Reports.Assign))
	route("POST /reports/{id}/images", strict(h.Reports.AddImages))

	// Events
	route("GET /events", optional(h.Events.List))
	route("POST /events", strict(h.Events.Create))
	route("GET /events/user/me", strict(h.Events.ListMine))
	route("GET /events/{id}", optional(h.Events.Get))
	route("PUT /events/{id}", strict(h.Events.Update))
	route("PATCH /events/{id}/cancel", strict(h.Events.Cancel))
	route("PATCH /events/{id}/active", strict(h.Events.SetActive))
	route("POST /events/{id}/image", strict(h.Events.SetImage))
	route("POST /events/{id}/volunteers", strict(h.Events.Enroll))
	route("GET /events/{id}/volunteers", strict(h.Events.ListVolunteers))

	// Donations
	route("POST /donations/financial", strict(h.Donations.CreateFinancial))
	route("POST /donations/item", strict(h.Donations.CreateItem))
	route("GET /donations", strict(h.Donations.List))
	route("GET /donations/user/me", strict(h.Donations.ListMine))
	route("GET /donations/ong/me", strict(h.Donations.ListReceived))
	route("GET /donations/{id}", strict(h.Donations.Get))
	route("PATCH /donations/{id}/status", strict(h.Donations.TransitionStatus))
	route("POST /donations/{id}/receipt", strict(h.Donations.AttachReceipt))

	// Volunteers
	route("POST /volunteers", strict(h.Volunteers.Register))
	route("GET /volunteers", strict(h.Volunteers.List))
	route("GET /volunteers/user/me", strict(h.Volunteers.GetMine))
	route("GET /volunteers/{id}", strict(h.Volunteers.Get))
	route("PUT /volunteers/{id}", strict(h.Volunteers.Update))
	route("PATCH /volunteers/{id}/status", strict(h.Volunteers.TransitionStatus))
	route("PATCH /volunteers/{id}/deactivate", strict(h.Volunteers.Deactivate))
	route("POST /volunteers/{id}/documents", strict(h.Volunteers.AddDocuments))

	return mux
}
