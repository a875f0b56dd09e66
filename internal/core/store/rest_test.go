package store

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type faqRow struct {
	Question string `json:"question"`
	Answer   string `json:"answer"`
}

func TestRESTStoreSelectAll(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodGet, r.Method)
		assert.Equal(t, "/rest/v1/faqs", r.URL.Path)
		assert.Equal(t, "*", r.URL.Query().Get("select"))
		assert.Equal(t, "secret", r.Header.Get("apikey"))
		assert.Equal(t, "Bearer secret", r.Header.Get("Authorization"))

		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`[{"question":"q2","answer":"a2"},{"question":"q1","answer":"a1"}]`))
	}))
	defer srv.Close()

	s := NewRESTStore(srv.URL+"/", "secret", time.Second)

	var rows []faqRow
	require.NoError(t, s.SelectAll(context.Background(), "faqs", &rows))
	assert.Equal(t, []faqRow{{"q2", "a2"}, {"q1", "a1"}}, rows)
}

func TestRESTStoreSelectAllError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusNotFound)
		_, _ = w.Write([]byte(`{"code":"42P01","message":"relation \"public.faqs\" does not exist"}`))
	}))
	defer srv.Close()

	s := NewRESTStore(srv.URL, "secret", time.Second)

	var rows []faqRow
	err := s.SelectAll(context.Background(), "faqs", &rows)
	require.Error(t, err)

	var apiErr *APIError
	require.True(t, errors.As(err, &apiErr))
	assert.Equal(t, http.StatusNotFound, apiErr.StatusCode)
	assert.Equal(t, "42P01", apiErr.Code)
	assert.Equal(t, `relation "public.faqs" does not exist`, apiErr.Message)
}

func TestRESTStoreInsert(t *testing.T) {
	var got map[string]string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/rest/v1/consultations", r.URL.Path)
		assert.Equal(t, "return=minimal", r.Header.Get("Prefer"))

		body, _ := io.ReadAll(r.Body)
		_ = json.Unmarshal(body, &got)
		w.WriteHeader(http.StatusCreated)
	}))
	defer srv.Close()

	s := NewRESTStore(srv.URL, "secret", time.Second)
	row := &struct {
		UserID string `json:"user_id"`
		Prompt string `json:"prompt"`
	}{UserID: "anonymous", Prompt: "headache"}

	require.NoError(t, s.Insert(context.Background(), "consultations", row))
	assert.Equal(t, map[string]string{"user_id": "anonymous", "prompt": "headache"}, got)
}

func TestRESTStorePing(t *testing.T) {
	var status atomic.Int32
	status.Store(http.StatusUnauthorized)
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(int(status.Load()))
	}))
	defer srv.Close()

	s := NewRESTStore(srv.URL, "secret", time.Second)
	assert.NoError(t, s.Ping(context.Background()))

	status.Store(http.StatusBadGateway)
	assert.Error(t, s.Ping(context.Background()))
}

func TestInstrumentDelegates(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`[]`))
	}))
	defer srv.Close()

	s := Instrument(NewRESTStore(srv.URL, "secret", time.Second))
	assert.Equal(t, "rest", s.Name())

	var rows []faqRow
	require.NoError(t, s.SelectAll(context.Background(), "faqs", &rows))
	assert.Empty(t, rows)
}
