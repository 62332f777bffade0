package rest

import (
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/heartmarshall/animal-rescue-backend/internal/domain"
)

// pathID parses the {id} path value.
func pathID(r *http.Request) (uuid.UUID, error) {
	id, err := uuid.Parse(r.PathValue("id"))
	if err != nil {
		return uuid.Nil, domain.NewValidationError("id", "must be a UUID")
	}
	return id, nil
}

// query reads typed, optional query parameters and collects every parse
// failure into one ValidationError.
type query struct {
	values map[string][]string
	errs   []domain.FieldError
}

func newQuery(r *http.Request) *query {
	return &query{values: r.URL.Query()}
}

func (q *query) raw(key string) (string, bool) {
	v := strings.TrimSpace(firstValue(q.values[key]))
	return v, v != ""
}

func firstValue(vs []string) string {
	if len(vs) == 0 {
		return ""
	}
	return vs[0]
}

func (q *query) str(key string) *string {
	v, ok := q.raw(key)
	if !ok {
		return nil
	}
	return &v
}

func (q *query) int(key string) int {
	v, ok := q.raw(key)
	if !ok {
		return 0
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		q.errs = append(q.errs, domain.FieldError{Field: key, Message: "must be an integer"})
		return 0
	}
	return n
}

func (q *query) bool(key string) *bool {
	v, ok := q.raw(key)
	if !ok {
		return nil
	}
	b, err := strconv.ParseBool(v)
	if err != nil {
		q.errs = append(q.errs, domain.FieldError{Field: key, Message: "must be true or false"})
		return nil
	}
	return &b
}

func (q *query) uuid(key string) *uuid.UUID {
	v, ok := q.raw(key)
	if !ok {
		return nil
	}
	id, err := uuid.Parse(v)
	if err != nil {
		q.errs = append(q.errs, domain.FieldError{Field: key, Message: "must be a UUID"})
		return nil
	}
	return &id
}

// time accepts RFC 3339 timestamps and plain dates.
func (q *query) time(key string) *time.Time {
	v, ok := q.raw(key)
	if !ok {
		return nil
	}
	for _, layout := range []string{time.RFC3339, time.DateOnly} {
		if t, err := time.Parse(layout, v); err == nil {
			return &t
		}
	}
	q.errs = append(q.errs, domain.FieldError{Field: key, Message: "must be a date or RFC 3339 timestamp"})
	return nil
}

// page reads page and limit. Defaults and size clamping are applied by the
// services.
func (q *query) page() domain.PageRequest {
	p := domain.PageRequest{Page: q.int("page"), PageSize: q.int("limit")}
	if p.Page > domain.MaxPage {
		q.errs = append(q.errs, domain.FieldError{Field: "page", Message: "must be at most " + strconv.Itoa(domain.MaxPage)})
	}
	return p
}

func (q *query) err() error {
	if len(q.errs) == 0 {
		return nil
	}
	return &domain.ValidationError{Errors: q.errs}
}

// enum converts an optional string into an optional enum value. Membership
// is validated by the services.
func enum[T ~string](s *string) *T {
	if s == nil {
		return nil
	}
	v := T(*s)
	return &v
}

// pageQuery reads only the pagination parameters.
func pageQuery(r *http.Request) (domain.PageRequest, error) {
	q := newQuery(r)
	p := q.page()
	return p, q.err()
}
