package rest

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"github.com/heartmarshall/animal-rescue-backend/internal/domain"
	"github.com/heartmarshall/animal-rescue-backend/internal/service/auth"
)

//go:generate moq -out auth_service_mock_test.go -pkg rest -rm . authService

// authService defines the minimal interface needed by AuthHandler.
type authService interface {
	Register(ctx context.Context, input auth.RegisterInput) (auth.AuthResult, error)
	Login(ctx context.Context, input auth.LoginInput) (auth.AuthResult, error)
}

// AuthHandler serves auth REST endpoints.
type AuthHandler struct {
	base
	svc authService
}

// NewAuthHandler creates an AuthHandler.
func NewAuthHandler(svc authService, logger *slog.Logger) *AuthHandler {
	return &AuthHandler{base: newBase(logger, "auth", "user"), svc: svc}
}

type registerRequest struct {
	Name             string            `json:"name"`
	Email            string            `json:"email"`
	Password         string            `json:"password"`
	Role             string            `json:"role"`
	Phone            string            `json:"phone"`
	Address          *string           `json:"address"`
	City             *string           `json:"city"`
	State            *string           `json:"state"`
	PostalCode       *string           `json:"postalCode"`
	CNPJ             *string           `json:"cnpj"`
	Description      *string           `json:"description"`
	FoundingDate     *time.Time        `json:"foundingDate"`
	Website          *string           `json:"website"`
	SocialMedia      map[string]string `json:"socialMedia"`
	ResponsibleName  *string           `json:"responsibleName"`
	ResponsiblePhone *string           `json:"responsiblePhone"`
}

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type authResponse struct {
	User    userDTO `json:"user"`
	Token   string  `json:"token"`
	Message string  `json:"message,omitempty"`
}

// Register handles POST /auth/register.
func (h *AuthHandler) Register(w http.ResponseWriter, r *http.Request) {
	var req registerRequest
	if err := decode(r, &req); err != nil {
		h.fail(w, r, err)
		return
	}

	result, err := h.svc.Register(r.Context(), auth.RegisterInput{
		Name:             req.Name,
		Email:            req.Email,
		Password:         req.Password,
		Role:             domain.Role(req.Role),
		Phone:            req.Phone,
		Address:          req.Address,
		City:             req.City,
		State:            req.State,
		PostalCode:       req.PostalCode,
		CNPJ:             req.CNPJ,
		Description:      req.Description,
		FoundingDate:     req.FoundingDate,
		Website:          req.Website,
		SocialMedia:      req.SocialMedia,
		ResponsibleName:  req.ResponsibleName,
		ResponsiblePhone: req.ResponsiblePhone,
	})
	if err != nil {
		h.fail(w, r, err)
		return
	}

	writeJSON(w, http.StatusCreated, toAuthResponse(result))
}

// Login handles POST /auth/login.
func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	var req loginRequest
	if err := decode(r, &req); err != nil {
		h.fail(w, r, err)
		return
	}

	result, err := h.svc.Login(r.Context(), auth.LoginInput{Email: req.Email, Password: req.Password})
	if err != nil {
		h.fail(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, toAuthResponse(result))
}

func toAuthResponse(r auth.AuthResult) authResponse {
	return authResponse{User: toUser(r.User), Token: r.Token, Message: r.Message}
}
