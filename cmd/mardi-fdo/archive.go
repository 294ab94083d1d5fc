// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/pdiddy/mardi-fdo/internal/archive"
)

var snapshotCmd = &cobra.Command{
	Use:   "snapshot [QID...]",
	Short: "Archive rendered FDO documents in SQLite",
	Long: `Snapshot fetches each QID, renders its FDO document and stores it in the
archive database (archive/fdo.db). Items whose modified timestamp has not
changed since the last snapshot are skipped.

QIDs come from the arguments and from --file (one per line, # comments).`,
	RunE: runSnapshot,
}

var exportCmd = &cobra.Command{
	Use:   "export",
	Short: "Export the FDO archive to YAML or JSON",
	Long:  `Export writes every archived document to archive/export.yaml or archive/export.json.`,
	RunE:  runExport,
}

func init() {
	snapshotCmd.Flags().String("file", "", "file with one QID per line")
	snapshotCmd.Flags().String("archive-dir", "", "archive directory (default archive)")
	exportCmd.Flags().String("format", "yaml", "output format: yaml or json")
	exportCmd.Flags().String("archive-dir", "", "archive directory (default archive)")

	rootCmd.AddCommand(snapshotCmd)
	rootCmd.AddCommand(exportCmd)
}

func runSnapshot(cmd *cobra.Command, args []string) error {
	bindArchiveDir(cmd)

	qids := append([]string(nil), args...)
	if path, _ := cmd.Flags().GetString("file"); path != "" {
		f, err := os.Open(path)
		if err != nil {
			return fmt.Errorf("opening QID file: %w", err)
		}
		fromFile, err := readQIDs(f)
		f.Close()
		if err != nil {
			return fmt.Errorf("reading %s: %w", path, err)
		}
		qids = append(qids, fromFile...)
	}
	if len(qids) == 0 {
		return fmt.Errorf("no QIDs given; pass them as arguments or with --file")
	}

	a, err := newApp()
	if err != nil {
		return err
	}
	defer a.close()

	store, err := archive.NewStore(a.cfg.Archive)
	if err != nil {
		return err
	}
	defer store.Close()

	summary, err := store.Snapshot(context.Background(), a.entities, a.translator, qids, os.Stdout)
	if err != nil {
		return err
	}
	if summary.Failed > 0 {
		return fmt.Errorf("%d QID(s) failed", summary.Failed)
	}
	return nil
}

func runExport(cmd *cobra.Command, args []string) error {
	bindArchiveDir(cmd)

	format, _ := cmd.Flags().GetString("format")
	cfg, err := loadConfig(viper.GetViper(), loadedSecrets)
	if err != nil {
		return err
	}

	store, err := archive.NewStore(cfg.Archive)
	if err != nil {
		return err
	}
	defer store.Close()

	var path string
	switch format {
	case "yaml":
		path, err = store.ExportYAML(context.Background())
	case "json":
		path, err = store.ExportJSON(context.Background())
	default:
		return fmt.Errorf("unknown format %q (want yaml or json)", format)
	}
	if err != nil {
		return err
	}
	fmt.Printf("Exported to %s\n", path)
	return nil
}

// bindArchiveDir overrides archive.dir when --archive-dir is set.
func bindArchiveDir(cmd *cobra.Command) {
	if dir, _ := cmd.Flags().GetString("archive-dir"); dir != "" {
		viper.Set("archive.dir", dir)
	}
}

// readQIDs returns the non-empty, non-comment lines of r.
func readQIDs(r io.Reader) ([]string, error) {
	var qids []string
	sc := bufio.NewScanner(r)
	for sc.Scan() {
		line := strings.TrimSpace(sc.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		qids = append(qids, line)
	}
	return qids, sc.Err()
}
