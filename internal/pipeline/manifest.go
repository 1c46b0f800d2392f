// SPDX-License-Identifier: MIT
// Copyright (c) 2025 Vladyslav Kazantsev
//
// This file defines the Manifest, the root container for all configuration
// loaded from a user's .hcl files.
//
// Why have a Manifest?
//
// A project's localization setup rarely fits one file. A game may keep its
// main string table next to per-DLC tables, each with its own jobs, split
// across directories. The Manifest and its loading functions discover all
// these disparate 'table' and 'job' blocks and consolidate them into a
// single, unified view, so jobs can reference tables declared in other files
// while table names stay unique across the whole workspace.
package pipeline

import (
	"context"
	"fmt"
	"path/filepath"

	"github.com/hashicorp/hcl/v2"
	"github.com/hashicorp/hcl/v2/gohcl"
	"github.com/hashicorp/hcl/v2/hclparse"
	"github.com/zclconf/go-cty/cty"

	"github.com/vk/langtags/internal/ctxlog"
	"github.com/vk/langtags/internal/fsutil"
	"github.com/vk/langtags/internal/stringtable"
)

// Job kinds accepted in a manifest.
const (
	KindTags   = "tags"
	KindExport = "export"
)

// Export formats accepted by an export job.
const (
	FormatJSON = "json"
	FormatYAML = "yaml"
)

// Manifest is the consolidated view of every table and job declared across
// all loaded manifest files. Jobs keep their declaration order.
type Manifest struct {
	Tables map[string]*Table
	Jobs   []*Job
}

// Table describes one string-table CSV and the reserved column names that
// apply to it.
type Table struct {
	Name     string
	Path     string
	Reserved []string
}

// Job is a single unit of pipeline work bound to a named table.
type Job struct {
	Kind     string
	Name     string
	Table    string
	Output   string
	Format   string // export only; empty means json
	Language string // export only; empty means all languages
}

// hclManifestFile represents the top-level structure of a manifest file for decoding.
type hclManifestFile struct {
	Tables []*hclTable `hcl:"table,block"`
	Jobs   []*hclJob   `hcl:"job,block"`
}

// hclTable represents a single 'table' block.
type hclTable struct {
	Name     string    `hcl:"name,label"`
	Path     string    `hcl:"path"`
	Reserved *[]string `hcl:"reserved,optional"`
}

// hclJob represents a single 'job' block.
type hclJob struct {
	Kind     string `hcl:"kind,label"`
	Name     string `hcl:"instance_name,label"`
	Table    string `hcl:"table"`
	Output   string `hcl:"output"`
	Format   string `hcl:"format,optional"`
	Language string `hcl:"language,optional"`
}

// evalContext builds the evaluation context available to expressions in a
// manifest file. Manifests can anchor relative paths with workspace.dir, the
// directory holding the file being decoded.
func evalContext(filePath string) *hcl.EvalContext {
	return &hcl.EvalContext{
		Variables: map[string]cty.Value{
			"workspace": cty.ObjectVal(map[string]cty.Value{
				"dir": cty.StringVal(filepath.Dir(filePath)),
			}),
		},
	}
}

// Load finds and parses all manifest files at the given path into a Manifest.
// The path may be a single .hcl file or a directory searched recursively.
func Load(ctx context.Context, path string) (*Manifest, error) {
	logger := ctxlog.FromContext(ctx)
	logger.Debug("Loading pipeline manifest.", "path", path)

	isDir, err := fsutil.IsDir(path)
	if err != nil {
		return nil, err
	}

	files := []string{path}
	if isDir {
		files, err = fsutil.FindFilesByExtension(path, ".hcl")
		if err != nil {
			return nil, fmt.Errorf("failed to find manifest files in %s: %w", path, err)
		}
		if len(files) == 0 {
			return nil, fmt.Errorf("no .hcl manifest files found in %s", path)
		}
	}
	logger.Debug("Found manifest files to load.", "files", files)

	manifest := &Manifest{Tables: make(map[string]*Table)}
	parser := hclparse.NewParser()
	for _, file := range files {
		if err := manifest.appendFile(parser, file); err != nil {
			return nil, err
		}
	}

	if err := manifest.validate(); err != nil {
		return nil, err
	}

	logger.Info("Pipeline manifest loaded.", "tables", len(manifest.Tables), "jobs", len(manifest.Jobs))
	return manifest, nil
}

// appendFile parses a single HCL file and merges its tables and jobs into the
// manifest.
func (m *Manifest) appendFile(parser *hclparse.Parser, filePath string) error {
	hclFile, diags := parser.ParseHCLFile(filePath)
	if diags.HasErrors() {
		return fmt.Errorf("failed to parse HCL file %s: %w", filePath, diags)
	}

	var parsed hclManifestFile
	diags = gohcl.DecodeBody(hclFile.Body, evalContext(filePath), &parsed)
	if diags.HasErrors() {
		return fmt.Errorf("failed to decode HCL file %s: %w", filePath, diags)
	}

	for _, tbl := range parsed.Tables {
		if _, exists := m.Tables[tbl.Name]; exists {
			return fmt.Errorf("duplicate table %q declared in %s", tbl.Name, filePath)
		}
		reserved := stringtable.ReservedDefault()
		if tbl.Reserved != nil {
			reserved = *tbl.Reserved
		}
		m.Tables[tbl.Name] = &Table{
			Name:     tbl.Name,
			Path:     tbl.Path,
			Reserved: reserved,
		}
	}

	for _, job := range parsed.Jobs {
		m.Jobs = append(m.Jobs, &Job{
			Kind:     job.Kind,
			Name:     job.Name,
			Table:    job.Table,
			Output:   job.Output,
			Format:   job.Format,
			Language: job.Language,
		})
	}

	return nil
}

// validate checks cross-references and enumerated fields after all files have
// been merged, so jobs may reference tables from sibling files.
func (m *Manifest) validate() error {
	for _, job := range m.Jobs {
		switch job.Kind {
		case KindTags, KindExport:
			// valid
		default:
			return fmt.Errorf("job %q has unknown kind %q", job.Name, job.Kind)
		}

		if _, ok := m.Tables[job.Table]; !ok {
			return fmt.Errorf("job %q references undeclared table %q", job.Name, job.Table)
		}

		switch job.Format {
		case "", FormatJSON, FormatYAML:
			// valid
		default:
			return fmt.Errorf("job %q has unsupported format %q", job.Name, job.Format)
		}

		if job.Kind == KindTags && job.Language != "" {
			return fmt.Errorf("job %q is a tags job and cannot select a language", job.Name)
		}
	}
	return nil
}
