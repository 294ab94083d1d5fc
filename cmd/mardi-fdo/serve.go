// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.uber.org/zap"

	"github.com/pdiddy/mardi-fdo/internal/server"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Run the FDO HTTP facade",
	Long: `Serve answers GET /fdo/{QID} with the FDO JSON-LD document for the item,
alongside /health, /metrics and a landing page.

Fetched entities are memoized in a bounded LRU cache. Send SIGHUP to purge
the cache; SIGINT or SIGTERM shut the server down gracefully.`,
	RunE: runServe,
}

func init() {
	serveCmd.Flags().String("addr", "", "listen address (default :8000)")
	serveCmd.Flags().String("static-dir", "", "directory served under /static/")
	serveCmd.Flags().Int("cache-capacity", 0, "maximum number of memoized entities (default 2048)")

	viper.BindPFlag("server.addr", serveCmd.Flags().Lookup("addr"))
	viper.BindPFlag("server.static_dir", serveCmd.Flags().Lookup("static-dir"))
	viper.BindPFlag("cache.capacity", serveCmd.Flags().Lookup("cache-capacity"))

	rootCmd.AddCommand(serveCmd)
}

func runServe(cmd *cobra.Command, args []string) error {
	a, err := newApp()
	if err != nil {
		return err
	}
	defer a.close()

	srv, err := server.New(a.cfg.Server, server.Deps{
		Entities:   a.entities,
		Translator: a.translator,
		Logger:     a.logger,
		Registry:   a.registry,
		Version:    version,
	})
	if err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	hup := make(chan os.Signal, 1)
	signal.Notify(hup, syscall.SIGHUP)
	defer signal.Stop(hup)
	go func() {
		for {
			select {
			case <-hup:
				a.entities.Purge()
			case <-ctx.Done():
				return
			}
		}
	}()

	a.logger.Info("starting mardi-fdo",
		zap.String("version", version),
		zap.String("api_url", a.cfg.Wikibase.APIURL),
		zap.Int("cache_capacity", a.cfg.Cache.Capacity),
	)
	return srv.Run(ctx)
}
