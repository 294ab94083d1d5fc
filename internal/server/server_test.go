// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package server

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"

	"github.com/pdiddy/mardi-fdo/internal/fdo"
	"github.com/pdiddy/mardi-fdo/pkg/types"
)

// fakeEntities serves decoded fixtures and records requested QIDs.
type fakeEntities struct {
	mu       sync.Mutex
	entities map[string]string
	errs     map[string]error
	asked    []string
}

func (f *fakeEntities) Fetch(_ context.Context, qid string) (*types.Entity, error) {
	f.mu.Lock()
	f.asked = append(f.asked, qid)
	f.mu.Unlock()

	if err, ok := f.errs[qid]; ok {
		return nil, err
	}
	raw, ok := f.entities[qid]
	if !ok {
		return nil, fmt.Errorf("%w: %s", types.ErrNotFound, qid)
	}
	var e types.Entity
	if err := json.Unmarshal([]byte(raw), &e); err != nil {
		return nil, err
	}
	return &e, nil
}

const articleEntity = `{
	"id": "Q6830223",
	"modified": "2024-02-03T04:05:06Z",
	"labels": {"en": {"language": "en", "value": "Some paper"}},
	"claims": {
		"P31": [{"mainsnak": {"datavalue": {"value": {"id": "Q56887"}}}}],
		"P21": [{"mainsnak": {"datavalue": {"type": "string", "value": "2304.06137"}}}]
	}
}`

const unknownEntity = `{
	"id": "Q5",
	"labels": {"en": {"language": "en", "value": "Thing"}},
	"claims": []
}`

func newTestServer(t *testing.T, src EntitySource, cfg types.ServerConfig, reg *prometheus.Registry, logger *zap.Logger) http.Handler {
	t.Helper()
	tr := fdo.NewTranslator(fdo.WithClock(func() time.Time { return time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC) }))
	s, err := New(cfg, Deps{Entities: src, Translator: tr, Registry: reg, Logger: logger, Version: "test"})
	require.NoError(t, err)
	return s.Handler()
}

func do(t *testing.T, h http.Handler, path string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(http.MethodGet, path, nil)
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	return rec
}

func decodeBody(t *testing.T, rec *httptest.ResponseRecorder) map[string]any {
	t.Helper()
	var m map[string]any
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &m))
	return m
}

func TestGetFDO_Article(t *testing.T) {
	src := &fakeEntities{entities: map[string]string{"Q6830223": articleEntity}}
	h := newTestServer(t, src, types.ServerConfig{}, nil, nil)

	rec := do(t, h, "/fdo/Q6830223")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "application/ld+json", rec.Header().Get("Content-Type"))

	body := decodeBody(t, rec)
	assert.Equal(t, "https://fdo.portal.mardi4nfdi.de/fdo/Q6830223", body["@id"])
	assert.Equal(t, "DigitalObject", body["@type"])

	kernel := body["kernel"].(map[string]any)
	components := kernel["fdo:hasComponent"].([]any)
	require.Len(t, components, 1)
	assert.Equal(t, "application/pdf", components[0].(map[string]any)["mediaType"])

	profile := body["profile"].(map[string]any)
	assert.Equal(t, "ScholarlyArticle", profile["@type"])
}

func TestGetFDO_LowerCaseIdentifierIsUpperCased(t *testing.T) {
	src := &fakeEntities{entities: map[string]string{"Q6830223": articleEntity}}
	h := newTestServer(t, src, types.ServerConfig{}, nil, nil)

	rec := do(t, h, "/fdo/q6830223")
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, []string{"Q6830223"}, src.asked)
}

func TestGetFDO_FulltextPassedThrough(t *testing.T) {
	src := &fakeEntities{}
	h := newTestServer(t, src, types.ServerConfig{}, nil, nil)

	rec := do(t, h, "/fdo/q12_fulltext")
	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Equal(t, []string{"Q12_FULLTEXT"}, src.asked)
}

func TestGetFDO_Unknown(t *testing.T) {
	src := &fakeEntities{entities: map[string]string{"Q5": unknownEntity}}
	h := newTestServer(t, src, types.ServerConfig{}, nil, nil)

	rec := do(t, h, "/fdo/Q5")
	require.Equal(t, http.StatusOK, rec.Code)

	body := decodeBody(t, rec)
	assert.NotContains(t, body, "profile")
	assert.Equal(t, "mardi:UnknownType", body["@type"])
	assert.Equal(t, "Thing", body["kernel"].(map[string]any)["name"])
}

func TestGetFDO_Errors(t *testing.T) {
	src := &fakeEntities{errs: map[string]error{
		"Q2": fmt.Errorf("%w: fetching Q2: connection refused", types.ErrUpstream),
		"Q3": errors.New("anything else"),
	}}
	h := newTestServer(t, src, types.ServerConfig{}, nil, nil)

	tests := []struct {
		name       string
		path       string
		wantStatus int
		wantCode   string
		wantMsg    string
	}{
		{"invalid identifier", "/fdo/XYZ", http.StatusBadRequest, "invalid_identifier", "invalid FDO identifier"},
		{"fulltext suffix on non-QID", "/fdo/X123_FULLTEXT", http.StatusBadRequest, "invalid_identifier", "invalid FDO identifier"},
		{"property id", "/fdo/P31", http.StatusBadRequest, "invalid_identifier", "invalid FDO identifier"},
		{"bad suffix", "/fdo/Q1_SOURCE", http.StatusBadRequest, "invalid_identifier", "invalid FDO identifier"},
		{"not found", "/fdo/Q1", http.StatusNotFound, "not_found", "entity Q1 not found"},
		{"upstream failure", "/fdo/Q2", http.StatusBadGateway, "upstream_error", "failed to fetch entity Q2"},
		{"unclassified failure", "/fdo/Q3", http.StatusBadGateway, "upstream_error", "failed to fetch entity Q3"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := do(t, h, tt.path)
			assert.Equal(t, tt.wantStatus, rec.Code)
			assert.Equal(t, "application/json", rec.Header().Get("Content-Type"))
			body := decodeBody(t, rec)
			assert.Equal(t, tt.wantCode, body["error"])
			assert.Equal(t, tt.wantMsg, body["message"])
		})
	}
}

func TestPages(t *testing.T) {
	h := newTestServer(t, &fakeEntities{}, types.ServerConfig{}, nil, nil)

	rec := do(t, h, "/health")
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"status":"ok"}`, rec.Body.String())

	rec = do(t, h, "/favicon.ico")
	assert.Equal(t, http.StatusNoContent, rec.Code)
	assert.Empty(t, rec.Body.String())

	rec = do(t, h, "/")
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Header().Get("Content-Type"), "text/html")
	assert.Contains(t, rec.Body.String(), "/fdo/Q6830223")
	assert.Contains(t, rec.Body.String(), "Version test")

	rec = do(t, h, "/nope")
	assert.Equal(t, http.StatusNotFound, rec.Code)

	rec = do(t, h, "/static/style.css")
	assert.Equal(t, http.StatusNotFound, rec.Code, "no static dir configured")

	rec = do(t, h, "/metrics")
	assert.Equal(t, http.StatusNotFound, rec.Code, "no registry configured")
}

func TestPages_Static(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "style.css"), []byte("body{}"), 0o644))

	h := newTestServer(t, &fakeEntities{}, types.ServerConfig{StaticDir: dir}, nil, nil)

	rec := do(t, h, "/static/style.css")
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "body{}", rec.Body.String())
}

func TestMetrics(t *testing.T) {
	reg := prometheus.NewRegistry()
	src := &fakeEntities{entities: map[string]string{"Q5": unknownEntity}}
	h := newTestServer(t, src, types.ServerConfig{}, reg, nil)

	do(t, h, "/fdo/Q5")
	do(t, h, "/fdo/Q5")
	do(t, h, "/fdo/bad")

	expected := `
# HELP mardi_fdo_http_requests_total Total number of HTTP requests by route and status code
# TYPE mardi_fdo_http_requests_total counter
mardi_fdo_http_requests_total{code="200",route="GET /fdo/{id}"} 2
mardi_fdo_http_requests_total{code="400",route="GET /fdo/{id}"} 1
`
	require.NoError(t, testutil.GatherAndCompare(reg, strings.NewReader(expected), "mardi_fdo_http_requests_total"))

	rec := do(t, h, "/metrics")
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "mardi_fdo_http_request_duration_seconds")
}

func TestRequestLogger(t *testing.T) {
	core, logs := observer.New(zap.DebugLevel)
	h := newTestServer(t, &fakeEntities{}, types.ServerConfig{}, nil, zap.New(core))

	rec := do(t, h, "/fdo/Q404")
	assert.Equal(t, http.StatusNotFound, rec.Code)
	reqID := rec.Header().Get("X-Request-ID")
	assert.NotEmpty(t, reqID)

	entries := logs.FilterMessage("HTTP request").All()
	require.Len(t, entries, 1)
	fields := entries[0].ContextMap()
	assert.Equal(t, reqID, fields["request_id"])
	assert.Equal(t, "/fdo/Q404", fields["path"])
	assert.Equal(t, int64(http.StatusNotFound), fields["status"])
}

func TestRequestLogger_KeepsClientRequestID(t *testing.T) {
	handler := RequestLogger(nil)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusTeapot)
	}))

	req := httptest.NewRequest(http.MethodGet, "/x", nil)
	req.Header.Set("X-Request-ID", "abc-123")
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusTeapot, rec.Code)
	assert.Equal(t, "abc-123", rec.Header().Get("X-Request-ID"))
}

func TestResponseWriter_IgnoresDuplicateWriteHeader(t *testing.T) {
	rec := httptest.NewRecorder()
	rw := &responseWriter{ResponseWriter: rec, statusCode: http.StatusOK}

	rw.WriteHeader(http.StatusCreated)
	rw.WriteHeader(http.StatusInternalServerError)
	assert.Equal(t, http.StatusCreated, rw.statusCode)
	assert.Equal(t, http.StatusCreated, rec.Code)
}

func TestNew_RequiresCollaborators(t *testing.T) {
	_, err := New(types.ServerConfig{}, Deps{})
	assert.Error(t, err)
}

func TestServe_ShutsDownOnCancel(t *testing.T) {
	tr := fdo.NewTranslator()
	s, err := New(types.ServerConfig{ShutdownTimeout: time.Second}, Deps{Entities: &fakeEntities{}, Translator: tr})
	require.NoError(t, err)

	ln, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- s.Serve(ctx, ln) }()

	resp, err := http.Get("http://" + ln.Addr().String() + "/health")
	require.NoError(t, err)
	body, _ := io.ReadAll(resp.Body)
	resp.Body.Close()
	assert.JSONEq(t, `{"status":"ok"}`, string(body))

	cancel()
	select {
	case err := <-done:
		assert.NoError(t, err)
	case <-time.After(5 * time.Second):
		t.Fatal("server did not shut down")
	}
}
