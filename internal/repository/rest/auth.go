package rest

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/cmlabs-hris/competency-web/internal/domain/auth"
	"github.com/cmlabs-hris/competency-web/internal/pkg/apiclient"
)

type authRepositoryImpl struct {
	api *apiclient.Client
}

func NewAuthRepository(api *apiclient.Client) auth.AuthRepository {
	return &authRepositoryImpl{api: api}
}

// Login implements auth.AuthRepository.
func (r *authRepositoryImpl) Login(ctx context.Context, req auth.LoginRequest) (auth.TokenResponse, error) {
	var result auth.TokenResponse
	if err := r.api.Post(ctx, "/login", req, &result); err != nil {
		switch apiclient.StatusCode(err) {
		case http.StatusUnauthorized, http.StatusBadRequest, http.StatusNotFound:
			return auth.TokenResponse{}, fmt.Errorf("%w: %w", auth.ErrInvalidCredentials, err)
		}
		return auth.TokenResponse{}, fmt.Errorf("failed to login: %w", err)
	}
	if result.AccessToken == "" {
		return auth.TokenResponse{}, auth.ErrMissingToken
	}
	return result, nil
}

// Register implements auth.AuthRepository.
func (r *authRepositoryImpl) Register(ctx context.Context, req auth.RegisterRequest) (json.RawMessage, error) {
	var result json.RawMessage
	if err := r.api.Post(ctx, "/register", req, &result); err != nil {
		return nil, fmt.Errorf("failed to register: %w", err)
	}
	return result, nil
}
