// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.yaml.in/yaml/v3"

	"github.com/pdiddy/mardi-fdo/internal/archive"
	"github.com/pdiddy/mardi-fdo/internal/fdo"
)

var getCmd = &cobra.Command{
	Use:   "get QID [QID...]",
	Short: "Render FDO documents to stdout",
	Long: `Get fetches each QID from the Wikibase and writes its FDO document to
stdout, as indented JSON-LD (default) or YAML.

With --archived the documents are read from the snapshot archive instead
and the Wikibase is not contacted.`,
	Args: cobra.MinimumNArgs(1),
	RunE: runGet,
}

func init() {
	getCmd.Flags().String("format", "json", "output format: json or yaml")
	getCmd.Flags().Bool("archived", false, "read documents from the snapshot archive")
	getCmd.Flags().String("archive-dir", "", "archive directory (default archive)")
	rootCmd.AddCommand(getCmd)
}

func runGet(cmd *cobra.Command, args []string) error {
	format, _ := cmd.Flags().GetString("format")
	if format != "json" && format != "yaml" {
		return fmt.Errorf("unknown format %q (want json or yaml)", format)
	}

	ctx := context.Background()
	if archived, _ := cmd.Flags().GetBool("archived"); archived {
		bindArchiveDir(cmd)
		cfg, err := loadConfig(viper.GetViper(), loadedSecrets)
		if err != nil {
			return err
		}
		store, err := archive.NewStore(cfg.Archive)
		if err != nil {
			return err
		}
		defer store.Close()

		docs, err := archivedDocuments(ctx, store, args)
		if err != nil {
			return err
		}
		return writeDocuments(os.Stdout, format, docs)
	}

	a, err := newApp()
	if err != nil {
		return err
	}
	defer a.close()

	docs := make([]any, 0, len(args))
	for _, raw := range args {
		qid, err := fdo.NormalizeIdentifier(raw)
		if err != nil {
			return err
		}
		entity, err := a.entities.Fetch(ctx, qid)
		if err != nil {
			return err
		}
		doc, err := a.translator.ToFDO(qid, entity)
		if err != nil {
			return err
		}
		docs = append(docs, doc)
	}

	return writeDocuments(os.Stdout, format, docs)
}

// archivedDocuments reads the stored document of each QID from store.
func archivedDocuments(ctx context.Context, store *archive.Store, args []string) ([]any, error) {
	docs := make([]any, 0, len(args))
	for _, raw := range args {
		qid, err := fdo.NormalizeIdentifier(raw)
		if err != nil {
			return nil, err
		}
		r, err := store.Get(ctx, qid)
		if err != nil {
			return nil, err
		}
		var doc any
		if err := json.Unmarshal(r.Document, &doc); err != nil {
			return nil, fmt.Errorf("decoding archived %s: %w", qid, err)
		}
		docs = append(docs, doc)
	}
	return docs, nil
}

// writeDocuments encodes docs one after another: JSON values separated by
// newlines, or a YAML stream.
func writeDocuments(w io.Writer, format string, docs []any) error {
	switch format {
	case "yaml":
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		for _, doc := range docs {
			if err := enc.Encode(doc); err != nil {
				return fmt.Errorf("encoding YAML: %w", err)
			}
		}
		return enc.Close()
	default:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		enc.SetEscapeHTML(false)
		for _, doc := range docs {
			if err := enc.Encode(doc); err != nil {
				return fmt.Errorf("encoding JSON: %w", err)
			}
		}
		return nil
	}
}
