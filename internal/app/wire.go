package app

import (
	"fmt"
	"log/slog"
	"net/http"
	"net/url"
	"strings"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/heartmarshall/animal-rescue-backend/internal/adapter/blob"
	"github.com/heartmarshall/animal-rescue-backend/internal/adapter/postgres"
	animalrepo "github.com/heartmarshall/animal-rescue-backend/internal/adapter/postgres/animal"
	auditrepo "github.com/heartmarshall/animal-rescue-backend/internal/adapter/postgres/audit"
	donationrepo "github.com/heartmarshall/animal-rescue-backend/internal/adapter/postgres/donation"
	eventrepo "github.com/heartmarshall/animal-rescue-backend/internal/adapter/postgres/event"
	reportrepo "github.com/heartmarshall/animal-rescue-backend/internal/adapter/postgres/report"
	userrepo "github.com/heartmarshall/animal-rescue-backend/internal/adapter/postgres/user"
	volunteerrepo "github.com/heartmarshall/animal-rescue-backend/internal/adapter/postgres/volunteer"
	"github.com/heartmarshall/animal-rescue-backend/internal/auth"
	"github.com/heartmarshall/animal-rescue-backend/internal/config"
	"github.com/heartmarshall/animal-rescue-backend/internal/domain"
	"github.com/heartmarshall/animal-rescue-backend/internal/gate"
	"github.com/heartmarshall/animal-rescue-backend/internal/obs"
	animalsvc "github.com/heartmarshall/animal-rescue-backend/internal/service/animal"
	authsvc "github.com/heartmarshall/animal-rescue-backend/internal/service/auth"
	donationsvc "github.com/heartmarshall/animal-rescue-backend/internal/service/donation"
	eventsvc "github.com/heartmarshall/animal-rescue-backend/internal/service/event"
	reportsvc "github.com/heartmarshall/animal-rescue-backend/internal/service/report"
	usersvc "github.com/heartmarshall/animal-rescue-backend/internal/service/user"
	volunteersvc "github.com/heartmarshall/animal-rescue-backend/internal/service/volunteer"
	"github.com/heartmarshall/animal-rescue-backend/internal/transport/dataloader"
	"github.com/heartmarshall/animal-rescue-backend/internal/transport/middleware"
	"github.com/heartmarshall/animal-rescue-backend/internal/transport/rest"
)

// newHandler builds the full HTTP stack on top of pool. The returned cleanup
// stops background goroutines owned by the middleware.
func newHandler(cfg *config.Config, logger *slog.Logger, pool *pgxpool.Pool) (http.Handler, func(), error) {
	// Repositories
	users := userrepo.New(pool)
	animals := animalrepo.New(pool)
	reports := reportrepo.New(pool)
	events := eventrepo.New(pool)
	donations := donationrepo.New(pool)
	volunteers := volunteerrepo.New(pool)
	audit := auditrepo.New(pool)
	tx := postgres.NewTxManager(pool)

	// Blob storage
	images, err := blob.NewLocalStore(cfg.Uploads.Dir, cfg.Uploads.PublicBaseURL, cfg.Uploads.MaxFileBytes, blob.KindImage)
	if err != nil {
		return nil, nil, err
	}
	documents := images.WithKind(blob.KindDocument)

	// Auth
	tokens := auth.NewJWTManager(cfg.Auth.JWTSecret, cfg.Auth.JWTIssuer, cfg.Auth.AccessTokenTTL)
	hasher := auth.NewPasswordHasher(cfg.Auth.PasswordHashCost)
	principals := gate.New(logger, tokens, users)

	// Services
	paging := domain.PageLimits{DefaultSize: cfg.Pagination.DefaultPageSize, MaxSize: cfg.Pagination.MaxPageSize}
	maxFiles := cfg.Uploads.MaxFilesPerReq

	authService := authsvc.NewService(logger, users, audit, tx, hasher, tokens)
	userService := usersvc.NewService(logger, users, audit, tx, hasher, images, paging)
	animalService := animalsvc.NewService(logger, animals, users, audit, tx, images, paging, maxFiles)
	reportService := reportsvc.NewService(logger, reports, users, audit, tx, images, paging, maxFiles)
	eventService := eventsvc.NewService(logger, events, volunteers, audit, tx, images, paging)
	donationService := donationsvc.NewService(logger, donations, users, events, audit, tx, documents, paging)
	volunteerService := volunteersvc.NewService(logger, volunteers, events, audit, tx, documents, paging, maxFiles)

	// Transport
	metrics := obs.New()
	metrics.SetBuildInfo(Version, Commit)

	limits := rest.UploadLimits{MaxFileBytes: cfg.Uploads.MaxFileBytes, MaxFilesPerReq: maxFiles}
	handlers := rest.Handlers{
		Health: rest.NewHealthHandler(Version, map[string]rest.Pinger{
			"database": pool,
			"uploads":  images,
		}),
		Auth:       rest.NewAuthHandler(authService, logger),
		Users:      rest.NewUserHandler(userService, limits, metrics, logger),
		Animals:    rest.NewAnimalHandler(animalService, limits, metrics, logger),
		Reports:    rest.NewReportHandler(reportService, limits, metrics, logger),
		Events:     rest.NewEventHandler(eventService, limits, metrics, logger),
		Donations:  rest.NewDonationHandler(donationService, limits, metrics, logger),
		Volunteers: rest.NewVolunteerHandler(volunteerService, limits, metrics, logger),
		Files:      rest.NewFileHandler(images, logger),
	}

	uploadsPrefix, err := uploadsPath(cfg.Uploads.PublicBaseURL)
	if err != nil {
		return nil, nil, err
	}
	routerCfg := rest.RouterConfig{
		APIPrefix:     cfg.Server.APIPrefix,
		UploadsPrefix: uploadsPrefix,
	}
	if cfg.Metrics.Enabled {
		routerCfg.MetricsPath = cfg.Metrics.Path
		routerCfg.Metrics = metrics.Handler()
	}

	var stops []func()
	global := []middleware.Middleware{
		middleware.RequestID(),
		middleware.Logger(logger),
		middleware.Recovery(logger),
		metrics.Instrument,
		middleware.CORS(cfg.CORS),
	}
	if cfg.RateLimit.Enabled {
		rl := middleware.NewRateLimiter(cfg.RateLimit.RequestsPerSecond, cfg.RateLimit.Burst, cfg.RateLimit.CleanupInterval)
		global = append(global, rl.Limit())
		stops = append(stops, rl.Stop)

		if cfg.RateLimit.AuthPerMinute > 0 {
			authRL := middleware.PerMinute(cfg.RateLimit.AuthPerMinute, cfg.RateLimit.CleanupInterval)
			routerCfg.AuthLimit = authRL.Limit()
			stops = append(stops, authRL.Stop)
		}
	}
	global = append(global, dataloader.Middleware(&dataloader.Repos{User: users, Event: events}))

	mux := rest.NewRouter(routerCfg, handlers, middleware.NewAuth(principals, cfg.Auth.PublicHeader))

	cleanup := func() {
		for _, stop := range stops {
			stop()
		}
	}
	return middleware.Chain(global...)(obs.Route(mux)), cleanup, nil
}

// uploadsPath returns the path component under which uploaded files are
// served. The public base URL may be absolute when a proxy fronts the files.
func uploadsPath(publicBaseURL string) (string, error) {
	u, err := url.Parse(publicBaseURL)
	if err != nil {
		return "", fmt.Errorf("parse uploads public base url: %w", err)
	}
	p := strings.TrimSuffix(u.Path, "/")
	if p == "" {
		return "", fmt.Errorf("uploads public base url %q has no path", publicBaseURL)
	}
	return p, nil
}
