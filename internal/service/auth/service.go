package auth

import (
	"context"
	"errors"
	"log/slog"

	"github.com/cmlabs-hris/competency-web/internal/domain/auth"
	"github.com/cmlabs-hris/competency-web/internal/pkg/session"
)

const (
	MsgInvalidCredentials = "Invalid credentials"
	MsgMissingFields      = "All fields are required"
	MsgRegistered         = "User registered successfully!"
	MsgRegisterFailed     = "Registration failed. Please try again."
)

type LoginForm struct {
	Values auth.LoginRequest
	Error  string
}

type RegisterForm struct {
	Values  auth.RegisterRequest
	Message string
	Error   string
}

// Registered reports whether the last submit succeeded.
func (f RegisterForm) Registered() bool {
	return f.Message == MsgRegistered
}

type AuthService interface {
	// Login exchanges credentials for a token and stores it in the
	// request's session. ok is false on any failure.
	Login(ctx context.Context, req auth.LoginRequest) (form LoginForm, ok bool)
	// Register creates a user. Missing fields never reach the backend.
	Register(ctx context.Context, req auth.RegisterRequest) RegisterForm
}

type AuthServiceImpl struct {
	auth.AuthRepository
}

func NewAuthService(authRepository auth.AuthRepository) AuthService {
	return &AuthServiceImpl{AuthRepository: authRepository}
}

// Login implements AuthService.
func (a *AuthServiceImpl) Login(ctx context.Context, req auth.LoginRequest) (LoginForm, bool) {
	form := LoginForm{Values: auth.LoginRequest{Username: req.Username}}

	token, err := a.AuthRepository.Login(ctx, req)
	if err != nil {
		if !errors.Is(err, auth.ErrInvalidCredentials) {
			slog.Error("Login service error", "error", err)
		}
		form.Error = MsgInvalidCredentials
		return form, false
	}

	session.FromContext(ctx).SetToken(token.AccessToken)
	return form, true
}

// Register implements AuthService.
func (a *AuthServiceImpl) Register(ctx context.Context, req auth.RegisterRequest) RegisterForm {
	form := RegisterForm{Values: req}
	form.Values.Password = ""

	if err := req.Validate(); err != nil {
		form.Error = MsgMissingFields
		return form
	}

	if _, err := a.AuthRepository.Register(ctx, req); err != nil {
		slog.Error("Register service error", "error", err, "username", req.Username)
		form.Error = MsgRegisterFailed
		return form
	}

	form.Message = MsgRegistered
	return form
}
