// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package server

import (
	"context"
	"errors"
	"net/http"

	"go.uber.org/zap"

	"github.com/pdiddy/mardi-fdo/internal/fdo"
	"github.com/pdiddy/mardi-fdo/pkg/types"
)

// EntitySource fetches raw entities by QID.
type EntitySource interface {
	Fetch(ctx context.Context, qid string) (*types.Entity, error)
}

// FDOHandler serves FDO documents.
type FDOHandler struct {
	entities   EntitySource
	translator *fdo.Translator
	logger     *zap.Logger
}

// NewFDOHandler creates an FDOHandler.
func NewFDOHandler(entities EntitySource, translator *fdo.Translator, logger *zap.Logger) *FDOHandler {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &FDOHandler{entities: entities, translator: translator, logger: logger}
}

// RegisterRoutes registers the FDO routes on mux.
func (h *FDOHandler) RegisterRoutes(mux *http.ServeMux) {
	mux.HandleFunc("GET /fdo/{id}", h.Get)
}

// Get handles GET /fdo/{id}.
func (h *FDOHandler) Get(w http.ResponseWriter, r *http.Request) {
	qid, err := fdo.NormalizeIdentifier(r.PathValue("id"))
	if err != nil {
		_ = ErrorResponse(w, http.StatusBadRequest, "invalid_identifier", types.ErrInvalidIdentifier.Error())
		return
	}

	entity, err := h.entities.Fetch(r.Context(), qid)
	if err != nil {
		h.writeFetchError(w, qid, err)
		return
	}

	doc, err := h.translator.ToFDO(qid, entity)
	if err != nil {
		h.logger.Error("translation failed", zap.String("qid", qid), zap.Error(err))
		_ = ErrorResponse(w, http.StatusInternalServerError, "internal_error", "failed to build FDO")
		return
	}

	if err := WriteJSONLD(w, http.StatusOK, doc); err != nil {
		h.logger.Error("failed to encode FDO", zap.String("qid", qid), zap.Error(err))
	}
}

func (h *FDOHandler) writeFetchError(w http.ResponseWriter, qid string, err error) {
	switch {
	case errors.Is(err, types.ErrNotFound):
		_ = ErrorResponse(w, http.StatusNotFound, "not_found", "entity "+qid+" not found")
	case errors.Is(err, context.Canceled):
		// Client went away; nothing useful to write.
		h.logger.Debug("fetch cancelled", zap.String("qid", qid))
	default:
		h.logger.Warn("upstream fetch failed", zap.String("qid", qid), zap.Error(err))
		_ = ErrorResponse(w, http.StatusBadGateway, "upstream_error", "failed to fetch entity "+qid)
	}
}
