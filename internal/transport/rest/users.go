package rest

import (
	"context"
	"io"
	"log/slog"
	"net/http"

	"github.com/google/uuid"

	"github.com/heartmarshall/animal-rescue-backend/internal/domain"
	"github.com/heartmarshall/animal-rescue-backend/internal/service/user"
)

//go:generate moq -out user_service_mock_test.go -pkg rest -rm . userService

type userService interface {
	GetProfile(ctx context.Context) (domain.User, error)
	UpdateProfile(ctx context.Context, input user.UpdateProfileInput) (domain.User, error)
	ChangePassword(ctx context.Context, input user.ChangePasswordInput) error
	UploadProfileImage(ctx context.Context, file io.Reader) (domain.User, error)
	List(ctx context.Context, input user.ListInput) (domain.Page[domain.User], error)
	Get(ctx context.Context, id uuid.UUID) (domain.User, error)
	SetActive(ctx context.Context, id uuid.UUID, active bool) (domain.User, error)
	SetRole(ctx context.Context, id uuid.UUID, role domain.Role) (domain.User, error)
}

// UserHandler serves profile and user administration endpoints.
type UserHandler struct {
	base
	svc     userService
	uploads UploadLimits
	metrics recorder
}

// NewUserHandler creates a UserHandler.
func NewUserHandler(svc userService, uploads UploadLimits, metrics recorder, logger *slog.Logger) *UserHandler {
	if metrics == nil {
		metrics = nopRecorder{}
	}
	return &UserHandler{base: newBase(logger, "users", "user"), svc: svc, uploads: uploads, metrics: metrics}
}

type updateProfileRequest struct {
	Name             *string           `json:"name"`
	Phone            *string           `json:"phone"`
	Address          *string           `json:"address"`
	City             *string           `json:"city"`
	State            *string           `json:"state"`
	PostalCode       *string           `json:"postalCode"`
	Bio              *string           `json:"bio"`
	Description      *string           `json:"description"`
	Website          *string           `json:"website"`
	SocialMedia      map[string]string `json:"socialMedia"`
	ResponsibleName  *string           `json:"responsibleName"`
	ResponsiblePhone *string           `json:"responsiblePhone"`
}

type changePasswordRequest struct {
	CurrentPassword string `json:"currentPassword"`
	NewPassword     string `json:"newPassword"`
}

type setActiveRequest struct {
	IsActive *bool `json:"isActive"`
}

type setRoleRequest struct {
	Role string `json:"role"`
}

// Me handles GET /users/me.
func (h *UserHandler) Me(w http.ResponseWriter, r *http.Request) {
	u, err := h.svc.GetProfile(r.Context())
	if err != nil {
		h.fail(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, toUser(u))
}

// UpdateMe handles PUT /users/me.
func (h *UserHandler) UpdateMe(w http.ResponseWriter, r *http.Request) {
	var req updateProfileRequest
	if err := decode(r, &req); err != nil {
		h.fail(w, r, err)
		return
	}

	u, err := h.svc.UpdateProfile(r.Context(), user.UpdateProfileInput{
		Name:             req.Name,
		Phone:            req.Phone,
		Address:          req.Address,
		City:             req.City,
		State:            req.State,
		PostalCode:       req.PostalCode,
		Bio:              req.Bio,
		Description:      req.Description,
		Website:          req.Website,
		SocialMedia:      req.SocialMedia,
		ResponsibleName:  req.ResponsibleName,
		ResponsiblePhone: req.ResponsiblePhone,
	})
	if err != nil {
		h.fail(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, toUser(u))
}

// ChangePassword handles PUT /users/me/password.
func (h *UserHandler) ChangePassword(w http.ResponseWriter, r *http.Request) {
	var req changePasswordRequest
	if err := decode(r, &req); err != nil {
		h.fail(w, r, err)
		return
	}

	err := h.svc.ChangePassword(r.Context(), user.ChangePasswordInput{
		CurrentPassword: req.CurrentPassword,
		NewPassword:     req.NewPassword,
	})
	if err != nil {
		h.fail(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, errorResponse{Message: "password updated"})
}

// UploadProfileImage handles POST /users/me/profile-image.
func (h *UserHandler) UploadProfileImage(w http.ResponseWriter, r *http.Request) {
	files, err := h.uploads.readFile(w, r, "profileImage")
	if err != nil {
		h.fail(w, r, err)
		return
	}
	defer files.Close()

	u, err := h.svc.UploadProfileImage(r.Context(), files.readers()[0])
	if err != nil {
		h.fail(w, r, err)
		return
	}
	h.metrics.FilesUploaded("user", 1)
	writeJSON(w, http.StatusOK, toUser(u))
}

// List handles GET /users.
func (h *UserHandler) List(w http.ResponseWriter, r *http.Request) {
	q := newQuery(r)
	input := user.ListInput{
		Role:     enum[domain.Role](q.str("role")),
		IsActive: q.bool("isActive"),
		Page:     q.page(),
	}
	if err := q.err(); err != nil {
		h.fail(w, r, err)
		return
	}

	page, err := h.svc.List(r.Context(), input)
	if err != nil {
		h.fail(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, newList(page, mapSlice(page.Items, toUser)))
}

// Get handles GET /users/{id}.
func (h *UserHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		h.fail(w, r, err)
		return
	}

	u, err := h.svc.Get(r.Context(), id)
	if err != nil {
		h.fail(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, toUser(u))
}

// SetStatus handles PATCH /users/{id}/status.
func (h *UserHandler) SetStatus(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		h.fail(w, r, err)
		return
	}
	var req setActiveRequest
	if err := decode(r, &req); err != nil {
		h.fail(w, r, err)
		return
	}
	if req.IsActive == nil {
		h.fail(w, r, domain.NewValidationError("isActive", "required"))
		return
	}

	u, err := h.svc.SetActive(r.Context(), id, *req.IsActive)
	if err != nil {
		h.fail(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, toUser(u))
}

// SetRole handles PATCH /users/{id}/role.
func (h *UserHandler) SetRole(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		h.fail(w, r, err)
		return
	}
	var req setRoleRequest
	if err := decode(r, &req); err != nil {
		h.fail(w, r, err)
		return
	}

	u, err := h.svc.SetRole(r.Context(), id, domain.Role(req.Role))
	if err != nil {
		h.fail(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, toUser(u))
}
