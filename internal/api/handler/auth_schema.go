package handler

import "github.com/exportbase/marketplace-api/internal/core/domain"

// errorResponse is the standard error envelope returned on all 4xx/5xx responses.
type errorResponse struct {
	Error string `json:"error"`
}

// Credential shape checks (the "@" rule, the six-character minimum) are the
// credential gate's contract, not the transport's; the schema only requires
// presence so the gate's invalid-credentials answer stays authoritative.
type signinRequest struct {
	Email    string `json:"email"    validate:"required"`
	Password string `json:"password" validate:"required"`
}

type signupRequest struct {
	Email    string `json:"email"    validate:"required"`
	Password string `json:"password" validate:"required"`
	Name     string `json:"name"     validate:"required"`
	Role     string `json:"role"     validate:"required,oneof=factory marketer admin"`
}

type authResponse struct {
	Token string       `json:"token"`
	User  *domain.User `json:"user"`
}

type sessionResponse struct {
	User            *domain.User `json:"user"`
	IsAuthenticated bool         `json:"is_authenticated"`
}

type updateProfileRequest struct {
	Name   string `json:"name"   validate:"omitempty,min=2"`
	Avatar string `json:"avatar" validate:"omitempty,url"`
}
