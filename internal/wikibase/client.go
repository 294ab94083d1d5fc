// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package wikibase fetches raw entity records from a Wikibase MediaWiki
// action API (wbgetentities).
package wikibase

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"time"

	"go.uber.org/zap"

	"github.com/pdiddy/mardi-fdo/internal/httputil"
	"github.com/pdiddy/mardi-fdo/pkg/types"
)

// apiBase is the MaRDI portal action API. Declared as a var so tests can
// substitute an httptest server.
var apiBase = "https://portal.mardi4nfdi.de/w/api.php"

const (
	defaultTimeout  = 5 * time.Second
	defaultLanguage = "en"
	entityProps     = "labels|descriptions|claims|info"
)

// API error codes that mean the requested entity does not exist.
var notFoundCodes = map[string]bool{
	"no-such-entity":    true,
	"invalid-entity-id": true,
}

// Client fetches entities by QID. It is safe for concurrent use.
type Client struct {
	HTTP      *http.Client
	APIURL    string
	UserAgent string
	Language  string
	Logger    *zap.Logger
}

// New returns a Client configured from cfg. Zero values fall back to the
// MaRDI portal endpoint, English labels and a 5 s timeout.
func New(cfg types.WikibaseConfig, logger *zap.Logger) *Client {
	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = defaultTimeout
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Client{
		HTTP:      &http.Client{Timeout: timeout},
		APIURL:    cfg.APIURL,
		UserAgent: cfg.UserAgent,
		Language:  cfg.Language,
		Logger:    logger,
	}
}

// apiResponse is the wbgetentities envelope.
type apiResponse struct {
	Entities map[string]types.Entity `json:"entities"`
	Error    *apiError               `json:"error,omitempty"`
}

type apiError struct {
	Code string `json:"code"`
	Info string `json:"info"`
}

// Fetch retrieves the entity for qid. The QID is sent unchanged. A QID the
// backend does not know yields an error wrapping types.ErrNotFound; any
// other failure wraps types.ErrUpstream.
func (c *Client) Fetch(ctx context.Context, qid string) (*types.Entity, error) {
	lang := c.Language
	if lang == "" {
		lang = defaultLanguage
	}
	base := c.APIURL
	if base == "" {
		base = apiBase
	}

	params := url.Values{
		"action":    {"wbgetentities"},
		"ids":       {qid},
		"props":     {entityProps},
		"languages": {lang},
		"format":    {"json"},
	}
	reqURL := base + "?" + params.Encode()

	var header http.Header
	if c.UserAgent != "" {
		header = http.Header{"User-Agent": {c.UserAgent}}
	}

	start := time.Now()
	var ar apiResponse
	err := httputil.GetJSON(ctx, c.HTTP, reqURL, header, &ar)
	c.logger().Debug("wbgetentities",
		zap.String("qid", qid),
		zap.Duration("duration", time.Since(start)),
		zap.Error(err),
	)
	if err != nil {
		return nil, fmt.Errorf("%w: fetching %s: %w", types.ErrUpstream, qid, err)
	}

	if ar.Error != nil {
		if notFoundCodes[ar.Error.Code] {
			return nil, fmt.Errorf("%w: %s", types.ErrNotFound, qid)
		}
		return nil, fmt.Errorf("%w: %s: %s", types.ErrUpstream, ar.Error.Code, ar.Error.Info)
	}

	e, ok := ar.Entities[qid]
	if !ok || e.IsMissing() {
		return nil, fmt.Errorf("%w: %s", types.ErrNotFound, qid)
	}
	if e.ID == "" {
		e.ID = qid
	}
	return &e, nil
}

func (c *Client) logger() *zap.Logger {
	if c.Logger == nil {
		return zap.NewNop()
	}
	return c.Logger
}
