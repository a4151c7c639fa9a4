package airtable

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"os"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelError}))
}

func newTestClient(t *testing.T, srv *httptest.Server, attempts int) *Client {
	t.Helper()
	c, err := NewClient(Config{
		BaseURL:        srv.URL,
		APIKey:         "key123",
		BaseID:         "appBase",
		PageSize:       2,
		Timeout:        5 * time.Second,
		MaxAttempts:    attempts,
		InitialBackoff: time.Millisecond,
		MaxBackoff:     5 * time.Millisecond,
	}, testLogger())
	require.NoError(t, err)
	return c
}

func TestNewClient_MissingCredentials(t *testing.T) {
	_, err := NewClient(Config{BaseID: "appBase"}, testLogger())
	assert.ErrorIs(t, err, ErrMissingCredentials)

	_, err = NewClient(Config{APIKey: "key"}, testLogger())
	assert.ErrorIs(t, err, ErrMissingCredentials)

	var zero *Client
	_, err = zero.ListRecords(context.Background(), "Agents", ListOptions{})
	assert.ErrorIs(t, err, ErrMissingCredentials)
}

func TestListRecords_FollowsOffsets(t *testing.T) {
	var calls int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		atomic.AddInt32(&calls, 1)

		assert.Equal(t, "/appBase/Agents", r.URL.Path)
		assert.Equal(t, "Bearer key123", r.Header.Get("Authorization"))
		assert.Equal(t, "2", r.URL.Query().Get("pageSize"))

		var resp listResponse
		switch r.URL.Query().Get("offset") {
		case "":
			resp = listResponse{Records: []Record{{ID: "rec1"}, {ID: "rec2"}}, Offset: "itrPage2"}
		case "itrPage2":
			resp = listResponse{Records: []Record{{ID: "rec3"}}}
		default:
			t.Errorf("unexpected offset %q", r.URL.Query().Get("offset"))
		}
		_ = json.NewEncoder(w).Encode(resp)
	}))
	defer srv.Close()

	records, err := newTestClient(t, srv, 1).ListRecords(context.Background(), "Agents", ListOptions{})
	require.NoError(t, err)

	require.Len(t, records, 3)
	assert.Equal(t, "rec1", records[0].ID)
	assert.Equal(t, "rec3", records[2].ID)
	assert.Equal(t, int32(2), atomic.LoadInt32(&calls))
}

func TestListRecords_OmitsUnsetOptions(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		q := r.URL.Query()
		if r.URL.Path == "/appBase/Properties" {
			assert.Equal(t, "Publicadas", q.Get("view"))
			assert.Equal(t, "{Publicar}=1", q.Get("filterByFormula"))
			assert.Equal(t, "50", q.Get("maxRecords"))
		} else {
			assert.False(t, q.Has("view"))
			assert.False(t, q.Has("filterByFormula"))
			assert.False(t, q.Has("maxRecords"))
			assert.False(t, q.Has("offset"))
		}
		_ = json.NewEncoder(w).Encode(listResponse{})
	}))
	defer srv.Close()

	c := newTestClient(t, srv, 1)

	_, err := c.ListRecords(context.Background(), "Agents", ListOptions{})
	require.NoError(t, err)

	_, err = c.ListRecords(context.Background(), "Properties", ListOptions{
		View:          "Publicadas",
		FilterFormula: "{Publicar}=1",
		MaxRecords:    50,
	})
	require.NoError(t, err)
}

func TestListRecords_ErrorStatus(t *testing.T) {
	var calls int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		atomic.AddInt32(&calls, 1)
		w.WriteHeader(http.StatusNotFound)
		_, _ = w.Write([]byte(`{"error":{"type":"TABLE_NOT_FOUND","message":"Could not find table Agentes"}}`))
	}))
	defer srv.Close()

	_, err := newTestClient(t, srv, 3).ListRecords(context.Background(), "Agentes", ListOptions{})
	require.Error(t, err)

	var statusErr *StatusError
	require.True(t, errors.As(err, &statusErr))
	assert.Equal(t, http.StatusNotFound, statusErr.StatusCode)
	assert.Contains(t, err.Error(), "TABLE_NOT_FOUND: Could not find table Agentes")
	assert.Equal(t, int32(1), atomic.LoadInt32(&calls), "4xx is not retried")
}

func TestListRecords_RetriesRateLimit(t *testing.T) {
	var calls int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if atomic.AddInt32(&calls, 1) == 1 {
			w.WriteHeader(http.StatusTooManyRequests)
			return
		}
		_ = json.NewEncoder(w).Encode(listResponse{Records: []Record{{ID: "rec1"}}})
	}))
	defer srv.Close()

	records, err := newTestClient(t, srv, 3).ListRecords(context.Background(), "Agents", ListOptions{})
	require.NoError(t, err)
	assert.Len(t, records, 1)
	assert.Equal(t, int32(2), atomic.LoadInt32(&calls))
}

func TestListRecords_SingleAttemptByDefault(t *testing.T) {
	var calls int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		atomic.AddInt32(&calls, 1)
		w.WriteHeader(http.StatusServiceUnavailable)
	}))
	defer srv.Close()

	_, err := newTestClient(t, srv, 0).ListRecords(context.Background(), "Agents", ListOptions{})
	require.Error(t, err)
	assert.Equal(t, int32(1), atomic.LoadInt32(&calls))
}
