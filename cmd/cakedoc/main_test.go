// SPDX-License-Identifier: AGPL-3.0-only
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/cakedoc

package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestRunTableWritesMarkdownToStdout(t *testing.T) {
	t.Parallel()

	var stdout bytes.Buffer
	var stderr bytes.Buffer
	code := run([]string{"table", "FCakeFile"}, &stdout, &stderr)
	if code != 0 {
		t.Fatalf("run exit code = %d, stderr: %s", code, stderr.String())
	}

	if !strings.Contains(stdout.String(), "# FCakeFile error codes") {
		t.Fatalf("stdout does not contain default title: %s", stdout.String())
	}

	if !strings.Contains(stdout.String(), "| Error Code | Policy | Context |") {
		t.Fatalf("table output expected, got: %s", stdout.String())
	}
}

func TestRunTableListToOutputFile(t *testing.T) {
	t.Parallel()

	outPath := filepath.Join(t.TempDir(), "dir.md")
	var stdout bytes.Buffer
	var stderr bytes.Buffer
	code := run([]string{"table", "-t", "list", "--title", "Directory errors", "FCakeDir", outPath}, &stdout, &stderr)
	if code != 0 {
		t.Fatalf("run exit code = %d, stderr: %s", code, stderr.String())
	}

	if stdout.Len() != 0 {
		t.Fatalf("stdout should be empty when output path is provided, got: %s", stdout.String())
	}

	content, err := os.ReadFile(outPath)
	if err != nil {
		t.Fatalf("read out file: %v", err)
	}

	if !strings.Contains(string(content), "# Directory errors") || !strings.Contains(string(content), "* `NOP`:") {
		t.Fatalf("unexpected list output: %s", string(content))
	}
}

func TestRunTableWithTemplateFile(t *testing.T) {
	t.Parallel()

	customTemplatePath := filepath.Join(t.TempDir(), "custom.gotmpl")
	if err := os.WriteFile(customTemplatePath, []byte("# custom\n{{ range .Functions }}- {{ .Name }}\n{{ end }}\n"), 0o600); err != nil {
		t.Fatalf("write custom template: %v", err)
	}

	var stdout bytes.Buffer
	var stderr bytes.Buffer
	code := run([]string{"table", "--template-file", customTemplatePath, "FCakeDir"}, &stdout, &stderr)
	if code != 0 {
		t.Fatalf("run exit code = %d, stderr: %s", code, stderr.String())
	}

	if !strings.Contains(stdout.String(), "- RenameDir") {
		t.Fatalf("custom template output expected, got: %s", stdout.String())
	}
}

func TestRunTableUnknownClass(t *testing.T) {
	t.Parallel()

	var stdout bytes.Buffer
	var stderr bytes.Buffer
	code := run([]string{"table", "FCakeNothing"}, &stdout, &stderr)
	if code != 1 {
		t.Fatalf("run exit code = %d, want 1", code)
	}

	if !strings.Contains(stderr.String(), "unknown catalogue class") {
		t.Fatalf("stderr = %s", stderr.String())
	}
}

func TestRunExportYAML(t *testing.T) {
	t.Parallel()

	var stdout bytes.Buffer
	var stderr bytes.Buffer
	code := run([]string{"export", "-F", "yaml", "FCakeFile"}, &stdout, &stderr)
	if code != 0 {
		t.Fatalf("run exit code = %d, stderr: %s", code, stderr.String())
	}

	if !strings.HasPrefix(stdout.String(), "type: FCakeFile\n") {
		t.Fatalf("unexpected yaml export: %s", stdout.String())
	}
}

func TestRunExportRejectsUnknownFormat(t *testing.T) {
	t.Parallel()

	var stdout bytes.Buffer
	var stderr bytes.Buffer
	code := run([]string{"export", "-F", "xml", "FCakeFile"}, &stdout, &stderr)
	if code != 2 {
		t.Fatalf("run exit code = %d, want 2", code)
	}
}

func TestRunPageFromStdin(t *testing.T) {
	t.Parallel()

	stdin := strings.NewReader(`{{ markMissing "intro" "write it" }}`)
	var stdout bytes.Buffer
	var stderr bytes.Buffer
	code := runWithIO([]string{"page"}, stdin, &stdout, &stderr)
	if code != 0 {
		t.Fatalf("run exit code = %d, stderr: %s", code, stderr.String())
	}

	if !strings.Contains(stdout.String(), `??? failure "Missing Content: [intro]"`) {
		t.Fatalf("unexpected page output: %s", stdout.String())
	}
}

func TestRunPageHTML(t *testing.T) {
	t.Parallel()

	pagePath := filepath.Join(t.TempDir(), "page.md")
	if err := os.WriteFile(pagePath, []byte("# Title\n\n{{ bpImgDir \"Create Dir\" }}\n"), 0o600); err != nil {
		t.Fatalf("write page: %v", err)
	}

	var stdout bytes.Buffer
	var stderr bytes.Buffer
	code := run([]string{"page", "--html", pagePath}, &stdout, &stderr)
	if code != 0 {
		t.Fatalf("run exit code = %d, stderr: %s", code, stderr.String())
	}

	if !strings.Contains(stdout.String(), `src="img/bp/dir/create-dir.png"`) {
		t.Fatalf("unexpected html output: %s", stdout.String())
	}
}

func TestRunPageEmptyStdin(t *testing.T) {
	t.Parallel()

	var stdout bytes.Buffer
	var stderr bytes.Buffer
	code := runWithIO([]string{"page"}, strings.NewReader("  \n"), &stdout, &stderr)
	if code != 1 {
		t.Fatalf("run exit code = %d, want 1", code)
	}
}

func TestRunAudit(t *testing.T) {
	t.Parallel()

	var stdout bytes.Buffer
	var stderr bytes.Buffer
	code := run([]string{"audit"}, &stdout, &stderr)
	if code != 0 {
		t.Fatalf("run exit code = %d, stderr: %s", code, stderr.String())
	}

	if !strings.Contains(stdout.String(), `FCakeDir: key "FailedOpenR" maps to code "FailedOpenW"`) {
		t.Fatalf("unexpected audit output: %s", stdout.String())
	}

	stdout.Reset()
	if code := run([]string{"audit", "--strict"}, &stdout, &stderr); code != 1 {
		t.Fatalf("strict audit exit code = %d, want 1", code)
	}
}

func TestRunBuild(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	docs := filepath.Join(dir, "docs")
	if err := os.MkdirAll(docs, 0o755); err != nil {
		t.Fatalf("create docs: %v", err)
	}

	if err := os.WriteFile(filepath.Join(docs, "index.md"), []byte("# Home\n\n{{ errorTable \"FCakeDir\" }}\n"), 0o600); err != nil {
		t.Fatalf("write page: %v", err)
	}

	configPath := filepath.Join(dir, "cakedoc.yaml")
	if err := os.WriteFile(configPath, []byte("docs_dir: docs\nsite_dir: site\n"), 0o600); err != nil {
		t.Fatalf("write config: %v", err)
	}

	var stdout bytes.Buffer
	var stderr bytes.Buffer
	code := run([]string{"build", "--config", configPath, "--strict"}, &stdout, &stderr)
	if code != 0 {
		t.Fatalf("run exit code = %d, stderr: %s", code, stderr.String())
	}

	if _, err := os.Stat(filepath.Join(dir, "site", "tables", "csvmap_FCakeFile.csv")); err != nil {
		t.Fatalf("table not exported: %v", err)
	}

	if !strings.Contains(stderr.String(), "documentation build finished") {
		t.Fatalf("build log expected on stderr: %s", stderr.String())
	}
}

func TestRunBuildStrictFailsOnMissingContent(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	docs := filepath.Join(dir, "docs")
	if err := os.MkdirAll(docs, 0o755); err != nil {
		t.Fatalf("create docs: %v", err)
	}

	if err := os.WriteFile(filepath.Join(docs, "todo.md"), []byte("{{ markMissing \"todo\" }}\n"), 0o600); err != nil {
		t.Fatalf("write page: %v", err)
	}

	configPath := filepath.Join(dir, "cakedoc.yaml")
	if err := os.WriteFile(configPath, []byte("docs_dir: docs\nsite_dir: site\n"), 0o600); err != nil {
		t.Fatalf("write config: %v", err)
	}

	var stdout bytes.Buffer
	var stderr bytes.Buffer
	if code := run([]string{"build", "-c", configPath, "--strict"}, &stdout, &stderr); code != 1 {
		t.Fatalf("run exit code = %d, want 1; stderr: %s", code, stderr.String())
	}

	if !strings.Contains(stderr.String(), "build incomplete: 1 missing content markers") {
		t.Fatalf("unexpected stderr: %s", stderr.String())
	}
}

func TestRunBuildStrictFailsOnUnresolvedLink(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	docs := filepath.Join(dir, "docs")
	if err := os.MkdirAll(docs, 0o755); err != nil {
		t.Fatalf("create docs: %v", err)
	}

	if err := os.WriteFile(filepath.Join(docs, "index.md"), []byte("See {{ advancedLink \"Policies\" }}.\n"), 0o600); err != nil {
		t.Fatalf("write page: %v", err)
	}

	configPath := filepath.Join(dir, "cakedoc.yaml")
	if err := os.WriteFile(configPath, []byte("docs_dir: docs\nsite_dir: site\n"), 0o600); err != nil {
		t.Fatalf("write config: %v", err)
	}

	var stdout bytes.Buffer
	var stderr bytes.Buffer
	if code := run([]string{"build", "-c", configPath, "--strict"}, &stdout, &stderr); code != 1 {
		t.Fatalf("run exit code = %d, want 1; stderr: %s", code, stderr.String())
	}

	if !strings.Contains(stderr.String(), "1 unresolved links") {
		t.Fatalf("unexpected stderr: %s", stderr.String())
	}
}

func TestRunBuildRejectsSiteInsideDocs(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	if err := os.MkdirAll(filepath.Join(dir, "docs"), 0o755); err != nil {
		t.Fatalf("create docs: %v", err)
	}

	configPath := filepath.Join(dir, "cakedoc.yaml")
	if err := os.WriteFile(configPath, []byte("docs_dir: docs\nsite_dir: docs/site\n"), 0o600); err != nil {
		t.Fatalf("write config: %v", err)
	}

	var stdout bytes.Buffer
	var stderr bytes.Buffer
	if code := run([]string{"build", "-c", configPath}, &stdout, &stderr); code != 1 {
		t.Fatalf("run exit code = %d, want 1; stderr: %s", code, stderr.String())
	}

	if !strings.Contains(stderr.String(), "is inside docs_dir") {
		t.Fatalf("unexpected stderr: %s", stderr.String())
	}
}

func TestRunTemplatePrintsBuiltin(t *testing.T) {
	t.Parallel()

	var stdout bytes.Buffer
	var stderr bytes.Buffer
	code := run([]string{"template", "-t", "list"}, &stdout, &stderr)
	if code != 0 {
		t.Fatalf("run exit code = %d, stderr: %s", code, stderr.String())
	}

	if !strings.Contains(stdout.String(), "{{ range .Functions -}}") {
		t.Fatalf("unexpected template: %s", stdout.String())
	}
}

func TestRunHelpAndUnknownCommand(t *testing.T) {
	t.Parallel()

	var stdout bytes.Buffer
	var stderr bytes.Buffer
	if code := run([]string{"--help"}, &stdout, &stderr); code != 0 {
		t.Fatalf("help exit code = %d", code)
	}

	if !strings.Contains(stdout.String(), "table") {
		t.Fatalf("help should list commands: %s", stdout.String())
	}

	if code := run([]string{"nope"}, &stdout, &stderr); code != 2 {
		t.Fatalf("unknown command exit code = %d, want 2", code)
	}
}
