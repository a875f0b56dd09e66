package store

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/go-resty/resty/v2"
)

// RESTStore talks to the hosted store's REST data API (PostgREST dialect).
type RESTStore struct {
	client *resty.Client
}

var _ Store = (*RESTStore)(nil)

// NewRESTStore builds the handle from the store URL and API key. The key is
// sent both as apikey and as the bearer token.
func NewRESTStore(baseURL, apiKey string, timeout time.Duration) *RESTStore {
	if timeout <= 0 {
		timeout = defaultTimeout
	}

	return &RESTStore{
		client: resty.New().
			SetBaseURL(strings.TrimRight(baseURL, "/")+"/rest/v1").
			SetHeader("apikey", apiKey).
			SetAuthToken(apiKey).
			SetHeader("Content-Type", "application/json").
			SetHeader("Accept", "application/json").
			SetTimeout(timeout),
	}
}

func (s *RESTStore) Name() string {
	return "rest"
}

func (s *RESTStore) SelectAll(ctx context.Context, table string, dest any) error {
	resp, err := s.client.R().
		SetContext(ctx).
		SetQueryParam("select", "*").
		SetResult(dest).
		Get("/" + table)
	if err != nil {
		return fmt.Errorf("select %s: %w", table, err)
	}
	if resp.IsError() {
		return fmt.Errorf("select %s: %w", table, NewAPIError(resp))
	}
	return nil
}

func (s *RESTStore) Insert(ctx context.Context, table string, row any) error {
	resp, err := s.client.R().
		SetContext(ctx).
		SetHeader("Prefer", "return=minimal").
		SetBody(row).
		Post("/" + table)
	if err != nil {
		return fmt.Errorf("insert %s: %w", table, err)
	}
	if resp.IsError() {
		return fmt.Errorf("insert %s: %w", table, NewAPIError(resp))
	}
	return nil
}

// Ping treats any non-5xx answer from the API root as reachable.
func (s *RESTStore) Ping(ctx context.Context) error {
	resp, err := s.client.R().SetContext(ctx).Get("/")
	if err != nil {
		return fmt.Errorf("ping store: %w", err)
	}
	if resp.StatusCode() >= 500 {
		return fmt.Errorf("ping store: %w", NewAPIError(resp))
	}
	return nil
}
