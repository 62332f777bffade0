// Package rest implements the JSON/HTTP API.
package rest

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/heartmarshall/animal-rescue-backend/internal/domain"
	"github.com/heartmarshall/animal-rescue-backend/pkg/ctxutil"
)

type errorResponse struct {
	Message string          `json:"message"`
	Errors  []fieldErrorDTO `json:"errors,omitempty"`
}

type fieldErrorDTO struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

type pagination struct {
	TotalItems   int `json:"totalItems"`
	TotalPages   int `json:"totalPages"`
	CurrentPage  int `json:"currentPage"`
	ItemsPerPage int `json:"itemsPerPage"`
}

type listResponse[T any] struct {
	Items      []T        `json:"items"`
	Pagination pagination `json:"pagination"`
}

func newList[E, T any](page domain.Page[E], items []T) listResponse[T] {
	if items == nil {
		items = []T{}
	}
	return listResponse[T]{
		Items: items,
		Pagination: pagination{
			TotalItems:   page.TotalCount,
			TotalPages:   page.TotalPages(),
			CurrentPage:  page.Page,
			ItemsPerPage: page.PageSize,
		},
	}
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v) //nolint:errcheck
}

func writeError(w http.ResponseWriter, status int, message string) {
	writeJSON(w, status, errorResponse{Message: message})
}

// base carries what every resource handler needs to report failures.
type base struct {
	log    *slog.Logger
	entity string
}

func newBase(logger *slog.Logger, handler, entity string) base {
	return base{log: logger.With("handler", handler), entity: entity}
}

// fail maps err to a status code and writes the error body. Server errors
// are logged with their cause; client errors are logged at debug level.
func (b base) fail(w http.ResponseWriter, r *http.Request, err error) {
	status, body := classify(err)

	attrs := []slog.Attr{
		slog.String("method", r.Method),
		slog.String("path", r.URL.Path),
		slog.Int("status", status),
		slog.String("request_id", ctxutil.RequestIDFromCtx(r.Context())),
		slog.String("error", err.Error()),
	}
	if b.entity != "" {
		attrs = append(attrs, slog.String("entity", b.entity))
	}
	if id := r.PathValue("id"); id != "" {
		attrs = append(attrs, slog.String("entity_id", id))
	}
	if p := ctxutil.PrincipalFromCtx(r.Context()); p.IsAuthenticated() {
		attrs = append(attrs, slog.String("principal_id", p.UserID.String()))
	}

	level := slog.LevelDebug
	if status >= http.StatusInternalServerError {
		level = slog.LevelError
	}
	b.log.LogAttrs(r.Context(), level, "request failed", attrs...)

	writeJSON(w, status, body)
}

func classify(err error) (int, errorResponse) {
	var ve *domain.ValidationError
	switch {
	case errors.As(err, &ve):
		body := errorResponse{Message: "validation failed"}
		for _, fe := range ve.Errors {
			body.Errors = append(body.Errors, fieldErrorDTO{Field: fe.Field, Message: fe.Message})
		}
		return http.StatusBadRequest, body
	case errors.Is(err, domain.ErrValidation):
		return http.StatusBadRequest, errorResponse{Message: "validation failed"}
	case errors.Is(err, domain.ErrCapacityExceeded):
		return http.StatusBadRequest, errorResponse{Message: "event is full"}
	case errors.Is(err, domain.ErrAlreadyEnrolled):
		return http.StatusBadRequest, errorResponse{Message: "already enrolled in this event"}
	case errors.Is(err, domain.ErrUnauthorized):
		return http.StatusUnauthorized, errorResponse{Message: "unauthorized"}
	case errors.Is(err, domain.ErrForbidden):
		return http.StatusForbidden, errorResponse{Message: "forbidden"}
	case errors.Is(err, domain.ErrNotFound):
		return http.StatusNotFound, errorResponse{Message: "not found"}
	case errors.Is(err, domain.ErrAlreadyExists):
		return http.StatusConflict, errorResponse{Message: "already exists"}
	case errors.Is(err, domain.ErrConflict):
		return http.StatusConflict, errorResponse{Message: "conflict"}
	default:
		return http.StatusInternalServerError, errorResponse{Message: "internal server error"}
	}
}

// decode reads a JSON body into dst. Unknown fields are ignored.
func decode(r *http.Request, dst any) error {
	if err := json.NewDecoder(r.Body).Decode(dst); err != nil {
		return domain.NewValidationError("body", "invalid JSON body")
	}
	return nil
}
