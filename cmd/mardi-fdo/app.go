// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"fmt"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/spf13/viper"
	"go.uber.org/zap"

	"github.com/pdiddy/mardi-fdo/internal/cache"
	"github.com/pdiddy/mardi-fdo/internal/fdo"
	"github.com/pdiddy/mardi-fdo/internal/logging"
	"github.com/pdiddy/mardi-fdo/internal/wikibase"
	"github.com/pdiddy/mardi-fdo/pkg/types"
)

// app holds the collaborators shared by the subcommands.
type app struct {
	cfg        types.Config
	logger     *zap.Logger
	entities   *cache.Fetcher
	translator *fdo.Translator
	registry   *prometheus.Registry
}

// newApp loads configuration and wires the logger, Wikibase client, entity
// cache and translator.
func newApp() (*app, error) {
	cfg, err := loadConfig(viper.GetViper(), loadedSecrets)
	if err != nil {
		return nil, err
	}

	logger, err := logging.New(cfg.Log)
	if err != nil {
		return nil, err
	}

	typeMap, err := fdo.ParseTypeMap(cfg.FDO.TypeMap)
	if err != nil {
		return nil, fmt.Errorf("fdo.type_map: %w", err)
	}

	registry := prometheus.NewRegistry()
	registry.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)

	client := wikibase.New(cfg.Wikibase, logger.Named("wikibase"))
	entities, err := cache.New(client, cfg.Cache,
		cache.WithRegisterer(registry),
		cache.WithLogger(logger.Named("cache")),
	)
	if err != nil {
		return nil, err
	}

	translator := fdo.NewTranslator(
		fdo.WithNamespaces(cfg.Namespaces),
		fdo.WithLanguage(cfg.Wikibase.Language),
		fdo.WithTypeMap(typeMap),
	)

	return &app{
		cfg:        cfg,
		logger:     logger,
		entities:   entities,
		translator: translator,
		registry:   registry,
	}, nil
}

// close flushes the logger.
func (a *app) close() {
	_ = a.logger.Sync()
}
