// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package main is the entry point for the mardi-fdo CLI: an HTTP facade
// that renders MaRDI knowledge graph items as FAIR Digital Objects, plus
// commands to render, archive and export FDOs offline.
package main

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/pdiddy/mardi-fdo/internal/secrets"
)

// version is set at build time via ldflags.
var version = "dev"

// loadedSecrets holds values loaded from .secrets/ at startup.
var loadedSecrets map[string]string

// rootCmd is the base command for the mardi-fdo CLI.
var rootCmd = &cobra.Command{
	Use:   "mardi-fdo",
	Short: "Serve MaRDI knowledge graph items as FAIR Digital Objects",
	Long: `mardi-fdo fetches items from the MaRDI Wikibase by QID and renders them as
FAIR Digital Object JSON-LD documents with a schema.org profile chosen from
the item's instance-of claim.

Use serve to run the HTTP facade, get to render items to stdout, and
snapshot/export to keep an offline archive of rendered documents.`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		s, err := secrets.Load(".secrets/")
		if err != nil {
			return err
		}
		loadedSecrets = s
		if len(s) > 0 {
			keys := make([]string, 0, len(s))
			for k := range s {
				keys = append(keys, k)
			}
			sort.Strings(keys)
			fmt.Fprintf(os.Stderr, "Loaded secrets: %v\n", keys)
		}
		return nil
	},
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().String("config", "", "config file (default: ./mardi-fdo.yaml or ~/.config/mardi-fdo/mardi-fdo.yaml)")
	rootCmd.PersistentFlags().String("log-level", "", "log level: debug, info, warn, error")
	rootCmd.PersistentFlags().Bool("log-dev", false, "human-readable console logs")
	rootCmd.PersistentFlags().String("api-url", "", "Wikibase action API endpoint")

	viper.BindPFlag("log.level", rootCmd.PersistentFlags().Lookup("log-level"))
	viper.BindPFlag("log.development", rootCmd.PersistentFlags().Lookup("log-dev"))
	viper.BindPFlag("wikibase.api_url", rootCmd.PersistentFlags().Lookup("api-url"))
}

func initConfig() {
	setDefaults(viper.GetViper())

	cfgFile, _ := rootCmd.PersistentFlags().GetString("config")
	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		viper.SetConfigName("mardi-fdo")
		viper.SetConfigType("yaml")
		viper.AddConfigPath(".")

		home, err := os.UserHomeDir()
		if err == nil {
			viper.AddConfigPath(filepath.Join(home, ".config", "mardi-fdo"))
		}
	}

	viper.SetEnvPrefix("MARDI_FDO")
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err == nil {
		fmt.Fprintln(os.Stderr, "Using config file:", viper.ConfigFileUsed())
	}
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
