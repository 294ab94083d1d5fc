// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package httputil

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGetJSON_DecodesBody(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodGet, r.Method)
		assert.Equal(t, "mardi-fdo/test", r.Header.Get("User-Agent"))
		assert.Equal(t, "application/json", r.Header.Get("Accept"))
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"name": "ok", "count": 3}`))
	}))
	defer ts.Close()

	var out struct {
		Name  string `json:"name"`
		Count int    `json:"count"`
	}
	header := http.Header{"User-Agent": {"mardi-fdo/test"}}
	require.NoError(t, GetJSON(context.Background(), ts.Client(), ts.URL, header, &out))
	assert.Equal(t, "ok", out.Name)
	assert.Equal(t, 3, out.Count)
}

func TestGetJSON_StatusError(t *testing.T) {
	var calls int32
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		atomic.AddInt32(&calls, 1)
		w.WriteHeader(http.StatusTooManyRequests)
		w.Write([]byte(strings.Repeat("x", 2000)))
	}))
	defer ts.Close()

	var out map[string]any
	err := GetJSON(context.Background(), ts.Client(), ts.URL, nil, &out)

	var se *StatusError
	require.True(t, errors.As(err, &se))
	assert.Equal(t, http.StatusTooManyRequests, se.StatusCode)
	assert.Len(t, se.Body, maxErrorBody)
	assert.Equal(t, int32(1), atomic.LoadInt32(&calls), "no retry")
}

func TestGetJSON_MalformedBody(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.Write([]byte(`<html>not json</html>`))
	}))
	defer ts.Close()

	var out map[string]any
	err := GetJSON(context.Background(), ts.Client(), ts.URL, nil, &out)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "decoding response")
}

func TestGetJSON_ContextCancelled(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		select {
		case <-r.Context().Done():
		case <-time.After(2 * time.Second):
		}
	}))
	defer ts.Close()

	ctx, cancel := context.WithTimeout(context.Background(), 50*time.Millisecond)
	defer cancel()

	var out map[string]any
	err := GetJSON(ctx, ts.Client(), ts.URL, nil, &out)
	assert.ErrorIs(t, err, context.DeadlineExceeded)
}

func TestStatusError_Message(t *testing.T) {
	assert.Equal(t, "GET http://x returned HTTP 500", (&StatusError{StatusCode: 500, URL: "http://x"}).Error())
	assert.Equal(t, "GET http://x returned HTTP 502: bad", (&StatusError{StatusCode: 502, URL: "http://x", Body: "bad"}).Error())
}
