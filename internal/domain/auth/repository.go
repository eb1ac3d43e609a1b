package auth

import (
	"context"
	"encoding/json"
)

type AuthRepository interface {
	Login(ctx context.Context, req LoginRequest) (TokenResponse, error)
	// Register returns the backend's success payload untouched.
	Register(ctx context.Context, req RegisterRequest) (json.RawMessage, error)
}
