package store

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-resty/resty/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func responseWith(t *testing.T, status int, body string) *resty.Response {
	t.Helper()
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(status)
		_, _ = w.Write([]byte(body))
	}))
	t.Cleanup(srv.Close)

	resp, err := resty.New().R().Get(srv.URL)
	require.NoError(t, err)
	return resp
}

func TestNewAPIErrorShapes(t *testing.T) {
	cases := []struct {
		name     string
		status   int
		body     string
		wantMsg  string
		wantCode string
	}{
		{"data api", 400, `{"code":"PGRST100","message":"bad filter"}`, "bad filter", "PGRST100"},
		{"auth msg", 422, `{"code":422,"error_code":"user_already_exists","msg":"User already registered"}`, "User already registered", "user_already_exists"},
		{"auth grant", 400, `{"error":"invalid_grant","error_description":"Invalid login credentials"}`, "Invalid login credentials", ""},
		{"plain text", 502, `upstream down`, "upstream down", ""},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			apiErr := NewAPIError(responseWith(t, tc.status, tc.body))
			assert.Equal(t, tc.status, apiErr.StatusCode)
			assert.Equal(t, tc.wantMsg, apiErr.Message)
			assert.Equal(t, tc.wantCode, apiErr.Code)
		})
	}
}
