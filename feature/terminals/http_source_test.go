package terminals

import (
	"context"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHTTPSource_Fetch(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/punches", r.URL.Path)
		assert.Equal(t, "2023-10-25", r.URL.Query().Get("date"))
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`[
			{"employeeCode":"E001","date":"2023-10-25","timestamp":"08:10"},
			{"employeeCode":"E002","date":"2023-10-25","timestamp":"08:45"}
		]`))
	}))
	defer server.Close()

	src := NewHTTPSource("lobby", server.URL+"/", time.Second, 1)
	assert.Equal(t, "lobby", src.ID())

	events, err := src.Fetch(context.Background(), "2023-10-25")
	require.NoError(t, err)
	require.Len(t, events, 2)
	assert.Equal(t, "E001", events[0].EmployeeCode)
	assert.Equal(t, "08:10", events[0].Time)
}

func TestHTTPSource_RetriesTransientFailure(t *testing.T) {
	var calls atomic.Int32
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if calls.Add(1) < 3 {
			w.WriteHeader(http.StatusServiceUnavailable)
			return
		}
		_, _ = w.Write([]byte(`[{"employeeCode":"E001","date":"2023-10-25","timestamp":"08:10"}]`))
	}))
	defer server.Close()

	src := NewHTTPSource("lobby", server.URL, time.Second, 3)
	events, err := src.Fetch(context.Background(), "2023-10-25")
	require.NoError(t, err)
	assert.Len(t, events, 1)
	assert.Equal(t, int32(3), calls.Load())
}

func TestHTTPSource_ExhaustedRetriesFail(t *testing.T) {
	var calls atomic.Int32
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls.Add(1)
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer server.Close()

	src := NewHTTPSource("lobby", server.URL, time.Second, 2)
	_, err := src.Fetch(context.Background(), "2023-10-25")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "status 500")
	assert.Equal(t, int32(2), calls.Load())
}

func TestHTTPSource_MalformedPayload(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"not":"an array"`))
	}))
	defer server.Close()

	src := NewHTTPSource("lobby", server.URL, time.Second, 1)
	_, err := src.Fetch(context.Background(), "2023-10-25")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "malformed payload")
}

func TestHTTPSource_Unreachable(t *testing.T) {
	// Reserve a port, then close it so the connection is refused.
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	addr := server.URL
	server.Close()

	src := NewHTTPSource("lobby", addr, time.Second, 1)
	_, err := src.Fetch(context.Background(), "2023-10-25")
	assert.Error(t, err)
}
