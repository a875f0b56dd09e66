package auth

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/go-resty/resty/v2"
	"github.com/rs/zerolog/log"

	"github.com/MuhamadAgungGumelar/ezcare-ai-be/internal/core/store"
)

// ErrStoreRejected wraps every failure the store reported about the
// credentials themselves. Its message is safe to show to the caller.
type ErrStoreRejected struct {
	Message string
}

func (e *ErrStoreRejected) Error() string {
	return e.Message
}

// Service forwards signup and login to the store's built-in auth API.
// Each call is made exactly once.
type Service struct {
	client *resty.Client
}

func NewService(baseURL, apiKey string, timeout time.Duration) *Service {
	if timeout <= 0 {
		timeout = 30 * time.Second
	}

	return &Service{
		client: resty.New().
			SetBaseURL(strings.TrimRight(baseURL, "/")+"/auth/v1").
			SetHeader("apikey", apiKey).
			SetAuthToken(apiKey).
			SetHeader("Content-Type", "application/json").
			SetTimeout(timeout),
	}
}

// SignUp registers a new account. A response without a user is rejected.
func (s *Service) SignUp(ctx context.Context, creds *Credentials) (*Session, error) {
	payload, err := s.post(ctx, "/signup", nil, creds)
	if err != nil {
		return nil, err
	}
	if payload.userID() == "" {
		return nil, &ErrStoreRejected{Message: "signup failed: no user returned"}
	}

	log.Info().Str("user_id", payload.userID()).Msg("✅ User signed up")
	return payload.toSession(), nil
}

// SignIn exchanges email/password for a session. A response without an
// access token is rejected.
func (s *Service) SignIn(ctx context.Context, creds *Credentials) (*Session, error) {
	payload, err := s.post(ctx, "/token", map[string]string{"grant_type": "password"}, creds)
	if err != nil {
		return nil, err
	}
	if payload.AccessToken == "" || payload.userID() == "" {
		return nil, &ErrStoreRejected{Message: "login failed: no session returned"}
	}

	return payload.toSession(), nil
}

func (s *Service) post(ctx context.Context, path string, query map[string]string, creds *Credentials) (*authPayload, error) {
	var payload authPayload
	resp, err := s.client.R().
		SetContext(ctx).
		SetQueryParams(query).
		SetBody(creds).
		SetResult(&payload).
		Post(path)
	if err != nil {
		return nil, fmt.Errorf("auth request %s: %w", path, err)
	}

	if resp.IsError() {
		apiErr := store.NewAPIError(resp)
		log.Warn().Int("status", apiErr.StatusCode).Str("code", apiErr.Code).Msgf("auth %s rejected", path)
		return nil, &ErrStoreRejected{Message: apiErr.Message}
	}

	return &payload, nil
}

// RejectionMessage returns the caller-facing message of a store rejection.
func RejectionMessage(err error) (string, bool) {
	var rejected *ErrStoreRejected
	if errors.As(err, &rejected) {
		return rejected.Message, true
	}
	return "", false
}
