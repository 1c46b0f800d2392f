// SPDX-License-Identifier: MIT
// Copyright (c) 2025 Vladyslav Kazantsev
//
// This file implements the export job: folding a string table into one flat
// key-to-string map per language and writing each map to its own file.
//
// Why export per-language maps?
//
// Consumers of a string table almost never want the full matrix at runtime.
// A game boots in exactly one language and wants O(1) lookup from string key
// to translated text, without carrying every other language in memory. The
// export job does that fold once, at build time, producing one small
// machine-readable file per language that downstream tooling can load
// directly.
package pipeline

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"github.com/vk/langtags/internal/ctxlog"
	"github.com/vk/langtags/internal/stringtable"
)

// runExport parses the job's table and writes <output>/<language>.<format>
// for the selected language, or for every language when none is selected.
func runExport(ctx context.Context, table *Table, job *Job) error {
	logger := ctxlog.FromContext(ctx)
	logger.Debug("Export job started.", "table", table.Name, "path", table.Path)

	f, err := os.Open(table.Path)
	if err != nil {
		return err
	}
	tbl, err := stringtable.Parse(f)
	f.Close()
	if err != nil {
		return fmt.Errorf("failed to parse %s: %w", table.Path, err)
	}

	languages := tbl.Languages(table.Reserved)
	if job.Language != "" {
		if tbl.LanguageIndex(job.Language, table.Reserved) < 0 {
			return fmt.Errorf("table %q has no language column %q", table.Name, job.Language)
		}
		languages = []string{job.Language}
	}

	maps := tbl.BuildMap(table.Reserved)

	if err := os.MkdirAll(job.Output, 0755); err != nil {
		return err
	}

	format := job.Format
	if format == "" {
		format = FormatJSON
	}

	// A header may repeat a tag; one file per distinct language is enough.
	written := make(map[string]bool)
	for _, lang := range languages {
		if written[lang] {
			continue
		}
		written[lang] = true

		data, err := encodeStringMap(maps[lang], format)
		if err != nil {
			return err
		}

		outPath := filepath.Join(job.Output, lang+"."+format)
		if err := os.WriteFile(outPath, data, 0644); err != nil {
			return err
		}
		logger.Debug("Language map exported.", "language", lang, "path", outPath, "strings", len(maps[lang]))
	}

	logger.Debug("Export job finished.", "languages", len(written))
	return nil
}

// encodeStringMap renders a language map in the requested format. Both codecs
// sort map keys, keeping export output byte-identical across runs.
func encodeStringMap(m stringtable.StringMap, format string) ([]byte, error) {
	switch format {
	case FormatJSON:
		return json.MarshalIndent(m, "", "  ")
	case FormatYAML:
		return yaml.Marshal(m)
	default:
		return nil, fmt.Errorf("unsupported export format %q", format)
	}
}
