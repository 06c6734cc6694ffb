// SPDX-License-Identifier: AGPL-3.0-only
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/cakedoc

package cakedoc

import (
	"errors"
	"path/filepath"
	"testing"
)

func TestParseConfigDefaults(t *testing.T) {
	t.Parallel()

	cfg, err := ParseConfig(nil)
	if err != nil {
		t.Fatalf("ParseConfig: %v", err)
	}

	want := BuildConfig{
		DocsDir:      "docs",
		SiteDir:      "site",
		TablesDir:    filepath.Join("site", "tables"),
		TablesFormat: ExportFormatCSV,
		Template:     "table",
	}
	if cfg != want {
		t.Fatalf("config = %+v, want %+v", cfg, want)
	}
}

func TestParseConfigRejectsUnknownKeys(t *testing.T) {
	t.Parallel()

	_, err := ParseConfig([]byte("docs_dir: docs\nsite: out\n"))
	if !errors.Is(err, ErrDecodeConfig) {
		t.Fatalf("ParseConfig error = %v, want ErrDecodeConfig", err)
	}
}

func TestParseConfigValidation(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		raw  string
	}{
		{"format", "tables_format: xml\n"},
		{"template", "template: grid\n"},
		{"same dirs", "docs_dir: out\nsite_dir: ./out\n"},
		{"site inside docs", "docs_dir: docs\nsite_dir: docs/site\n"},
		{"tables inside docs", "docs_dir: docs\nsite_dir: site\ntables_dir: ./docs/tables\n"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			if _, err := ParseConfig([]byte(tt.raw)); !errors.Is(err, ErrInvalidConfig) {
				t.Fatalf("ParseConfig error = %v, want ErrInvalidConfig", err)
			}
		})
	}
}

func TestParseConfigAllowsSiblingDirs(t *testing.T) {
	t.Parallel()

	cfg, err := ParseConfig([]byte("docs_dir: docs\nsite_dir: docs-site\ntables_dir: ../tables\n"))
	if err != nil {
		t.Fatalf("ParseConfig: %v", err)
	}

	if cfg.SiteDir != "docs-site" || cfg.TablesDir != "../tables" {
		t.Fatalf("config = %+v", cfg)
	}
}

func TestLoadConfigExpandsEnvAndResolvesPaths(t *testing.T) {
	site := t.TempDir()
	t.Setenv("CAKEDOC_TEST_SITE", site)

	cfg, err := LoadConfig(filepath.Join("testdata", "cakedoc.yaml"))
	if err != nil {
		t.Fatalf("LoadConfig: %v", err)
	}

	if cfg.DocsDir != filepath.Join("testdata", "docs") {
		t.Fatalf("docs dir = %q", cfg.DocsDir)
	}

	if cfg.SiteDir != site {
		t.Fatalf("site dir = %q, want %q", cfg.SiteDir, site)
	}

	if cfg.TablesDir != filepath.Join(site, "tables") {
		t.Fatalf("tables dir = %q", cfg.TablesDir)
	}

	if !cfg.HTML {
		t.Fatal("html flag not decoded")
	}
}

func TestLoadConfigMissingFile(t *testing.T) {
	t.Parallel()

	if _, err := LoadConfig(filepath.Join(t.TempDir(), "missing.yaml")); !errors.Is(err, ErrReadConfig) {
		t.Fatalf("LoadConfig error = %v, want ErrReadConfig", err)
	}
}
