// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/cakedoc

package cakedoc

import (
	"bytes"
	"context"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
)

const (
	pageExt = ".md"
	htmlExt = ".html"
)

// BuildReport summarizes one documentation build.
type BuildReport struct {
	// Pages lists rendered pages relative to the docs directory.
	Pages []string
	// Tables lists written table files.
	Tables []string
	// MissingContent is the number of missing content markers in rendered pages.
	MissingContent int
	// MissingImages lists site-relative images referenced by pages but absent in the docs directory.
	MissingImages []string
	// UnresolvedLinks lists site-absolute links, such as those of the core API and
	// advanced link helpers, whose target page is absent in the docs directory.
	UnresolvedLinks []string
	// ExternalLinks lists links that leave the site.
	ExternalLinks []string
}

// Build renders every page template of cfg.DocsDir into cfg.SiteDir and exports catalogue tables.
// Missing content markers, missing images and unresolved links are logged and reported,
// they do not fail the build.
func Build(ctx context.Context, cfg BuildConfig, logger *slog.Logger) (BuildReport, error) {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}

	if err := cfg.Normalize(); err != nil {
		return BuildReport{}, err
	}

	var report BuildReport
	pageOptions := PageOptions{TableOptions: Options{TemplateName: cfg.Template}}

	err := filepath.WalkDir(cfg.DocsDir, func(path string, entry fs.DirEntry, walkErr error) error {
		if walkErr != nil {
			return walkErr
		}

		if err := ctx.Err(); err != nil {
			return err
		}

		if entry.IsDir() || !strings.EqualFold(filepath.Ext(path), pageExt) {
			return nil
		}

		rel, err := filepath.Rel(cfg.DocsDir, path)
		if err != nil {
			return fmt.Errorf("resolve page path %q: %w", path, err)
		}

		if err := buildPage(cfg, rel, pageOptions, logger, &report); err != nil {
			return err
		}

		report.Pages = append(report.Pages, filepath.ToSlash(rel))
		return nil
	})
	if err != nil {
		return report, fmt.Errorf("render pages: %w", err)
	}

	if err := ctx.Err(); err != nil {
		return report, err
	}

	if err := exportTables(cfg, logger, &report); err != nil {
		return report, err
	}

	logger.Info("documentation build finished",
		slog.Int("pages", len(report.Pages)),
		slog.Int("tables", len(report.Tables)),
		slog.Int("missing_content", report.MissingContent),
		slog.Int("missing_images", len(report.MissingImages)),
		slog.Int("unresolved_links", len(report.UnresolvedLinks)),
	)

	return report, nil
}

// buildPage renders one page template and writes its outputs.
func buildPage(cfg BuildConfig, rel string, pageOptions PageOptions, logger *slog.Logger, report *BuildReport) error {
	source, err := os.ReadFile(filepath.Join(cfg.DocsDir, rel))
	if err != nil {
		return fmt.Errorf("read page %q: %w", rel, err)
	}

	pageOptions.Name = filepath.ToSlash(rel)
	rendered, err := RenderPage(string(source), pageOptions)
	if err != nil {
		return fmt.Errorf("render page %q: %w", rel, err)
	}

	target := filepath.Join(cfg.SiteDir, rel)
	if err := writeSiteFile(target, []byte(rendered)); err != nil {
		return err
	}
	logger.Debug("page rendered", slog.String("page", pageOptions.Name), slog.String("target", target))

	if markers := countMissingContent(rendered); markers > 0 {
		report.MissingContent += markers
		logger.Warn("page has missing content", slog.String("page", pageOptions.Name), slog.Int("markers", markers))
	}

	checkPageLinks(cfg, pageOptions.Name, rendered, logger, report)

	if !cfg.HTML {
		return nil
	}

	html, err := RenderHTML(rendered)
	if err != nil {
		return fmt.Errorf("render page %q: %w", rel, err)
	}

	return writeSiteFile(strings.TrimSuffix(target, filepath.Ext(target))+htmlExt, []byte(html))
}

// checkPageLinks reports missing images, unresolved site links and external links of a rendered page.
func checkPageLinks(cfg BuildConfig, page, rendered string, logger *slog.Logger, report *BuildReport) {
	pageDir := filepath.Dir(filepath.Join(cfg.DocsDir, filepath.FromSlash(page)))
	for _, link := range PageLinks(rendered) {
		destination := strings.TrimSpace(link.Destination)
		switch {
		case destination == "" || strings.HasPrefix(destination, "#"):
			continue

		case !link.IsSiteRelative():
			report.ExternalLinks = append(report.ExternalLinks, destination)
			logger.Warn("page links outside the site", slog.String("page", page), slog.String("link", destination))

		case link.Kind == LinkKindImage:
			if strings.HasPrefix(destination, "/") {
				continue
			}

			if _, err := os.Stat(filepath.Join(pageDir, filepath.FromSlash(destination))); err == nil {
				continue
			}

			report.MissingImages = append(report.MissingImages, destination)
			logger.Warn("page references missing image", slog.String("page", page), slog.String("image", destination))

		case strings.HasPrefix(destination, "/"):
			if sitePageExists(cfg.DocsDir, destination) {
				continue
			}

			report.UnresolvedLinks = append(report.UnresolvedLinks, destination)
			logger.Warn("page links to missing site page", slog.String("page", page), slog.String("link", destination))
		}
	}
}

// sitePageExists reports whether a site-absolute page URL such as /core-api/cake-file/#usage
// has a page template in docsDir, either <path>.md or <path>/index.md.
func sitePageExists(docsDir, destination string) bool {
	if cut := strings.IndexAny(destination, "#?"); cut >= 0 {
		destination = destination[:cut]
	}

	pagePath := strings.Trim(destination, "/")
	candidates := []string{filepath.Join(docsDir, filepath.FromSlash(pagePath), "index"+pageExt)}
	if pagePath != "" {
		candidates = append(candidates, filepath.Join(docsDir, filepath.FromSlash(pagePath)+pageExt))
	}

	for _, candidate := range candidates {
		if _, err := os.Stat(candidate); err == nil {
			return true
		}
	}

	return false
}

// exportTables writes every catalogue class to the tables directory.
func exportTables(cfg BuildConfig, logger *slog.Logger, report *BuildReport) error {
	for _, class := range Classes() {
		var out bytes.Buffer
		if err := ExportClass(&out, class, cfg.TablesFormat); err != nil {
			return err
		}

		target := filepath.Join(cfg.TablesDir, TableFileName(class.TypeName, cfg.TablesFormat))
		if err := writeSiteFile(target, out.Bytes()); err != nil {
			return err
		}

		report.Tables = append(report.Tables, target)
		logger.Debug("table exported", slog.String("class", class.TypeName), slog.String("target", target))
	}

	return nil
}

// writeSiteFile writes one generated file, creating parent directories.
func writeSiteFile(path string, data []byte) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("create directory for %q: %w", path, err)
	}

	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("write file %q: %w", path, err)
	}

	return nil
}
