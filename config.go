// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/cakedoc

package cakedoc

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"
)

const (
	defaultDocsDir = "docs"
	defaultSiteDir = "site"
)

// BuildConfig describes one documentation build.
type BuildConfig struct {
	// DocsDir holds page templates (*.md) that call macros.
	DocsDir string `yaml:"docs_dir"`
	// SiteDir receives rendered pages, mirroring the DocsDir layout.
	SiteDir string `yaml:"site_dir"`
	// TablesDir receives exported catalogue tables; defaults to SiteDir/tables.
	TablesDir string `yaml:"tables_dir,omitempty"`
	// TablesFormat is the export format of catalogue tables.
	TablesFormat ExportFormat `yaml:"tables_format,omitempty"`
	// Template selects the built-in template of tables embedded with errorTable.
	Template string `yaml:"template,omitempty"`
	// HTML additionally writes an HTML preview next to each rendered page.
	HTML bool `yaml:"html,omitempty"`
}

// LoadConfig reads a YAML build config, expanding ${VAR} references from the environment.
// Relative directories are resolved against the config file directory.
func LoadConfig(path string) (BuildConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return BuildConfig{}, fmt.Errorf("%w: %w", ErrReadConfig, err)
	}

	cfg, err := ParseConfig(data)
	if err != nil {
		return BuildConfig{}, err
	}

	cfg.resolveRelative(filepath.Dir(path))
	return cfg, nil
}

// ParseConfig decodes YAML config bytes, rejecting unknown keys, and applies defaults.
func ParseConfig(data []byte) (BuildConfig, error) {
	expanded := os.ExpandEnv(string(data))

	var cfg BuildConfig
	decoder := yaml.NewDecoder(bytes.NewReader([]byte(expanded)))
	decoder.KnownFields(true)
	if err := decoder.Decode(&cfg); err != nil && !errors.Is(err, io.EOF) {
		return BuildConfig{}, fmt.Errorf("%w: %w", ErrDecodeConfig, err)
	}

	if err := cfg.Normalize(); err != nil {
		return BuildConfig{}, err
	}

	return cfg, nil
}

// Normalize applies defaults and validates config values.
func (cfg *BuildConfig) Normalize() error {
	cfg.DocsDir = strings.TrimSpace(cfg.DocsDir)
	if cfg.DocsDir == "" {
		cfg.DocsDir = defaultDocsDir
	}

	cfg.SiteDir = strings.TrimSpace(cfg.SiteDir)
	if cfg.SiteDir == "" {
		cfg.SiteDir = defaultSiteDir
	}

	cfg.TablesDir = strings.TrimSpace(cfg.TablesDir)
	if cfg.TablesDir == "" {
		cfg.TablesDir = filepath.Join(cfg.SiteDir, tablesDir)
	}

	format, err := ParseExportFormat(string(cfg.TablesFormat))
	if err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidConfig, err)
	}
	cfg.TablesFormat = format

	cfg.Template = normalizeTemplateName(cfg.Template)
	if cfg.Template == "" {
		cfg.Template = defaultTemplateName
	}
	if _, ok := builtInTemplateFiles[cfg.Template]; !ok {
		return fmt.Errorf("%w: %w %q", ErrInvalidConfig, ErrUnknownBuiltinTemplate, cfg.Template)
	}

	if filepath.Clean(cfg.DocsDir) == filepath.Clean(cfg.SiteDir) {
		return fmt.Errorf("%w: docs_dir and site_dir must differ", ErrInvalidConfig)
	}

	// Outputs below docs_dir would be walked and rendered again by the next build.
	if isWithinDir(cfg.DocsDir, cfg.SiteDir) {
		return fmt.Errorf("%w: site_dir %q is inside docs_dir %q", ErrInvalidConfig, cfg.SiteDir, cfg.DocsDir)
	}
	if isWithinDir(cfg.DocsDir, cfg.TablesDir) {
		return fmt.Errorf("%w: tables_dir %q is inside docs_dir %q", ErrInvalidConfig, cfg.TablesDir, cfg.DocsDir)
	}

	return nil
}

// isWithinDir reports whether path equals parent or lies below it.
// A relative path is compared against an absolute one from the working directory.
func isWithinDir(parent, path string) bool {
	if filepath.IsAbs(parent) != filepath.IsAbs(path) {
		var err error
		if parent, err = filepath.Abs(parent); err != nil {
			return false
		}
		if path, err = filepath.Abs(path); err != nil {
			return false
		}
	}

	rel, err := filepath.Rel(filepath.Clean(parent), filepath.Clean(path))
	if err != nil {
		return false
	}

	return rel == "." || (rel != ".." && !strings.HasPrefix(rel, ".."+string(filepath.Separator)))
}

// resolveRelative makes relative directories relative to base.
func (cfg *BuildConfig) resolveRelative(base string) {
	for _, dir := range []*string{&cfg.DocsDir, &cfg.SiteDir, &cfg.TablesDir} {
		if !filepath.IsAbs(*dir) {
			*dir = filepath.Join(base, *dir)
		}
	}
}
