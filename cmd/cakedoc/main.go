// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/cakedoc

// cakedoc renders CakeIO documentation pages and error-code tables.
package main

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"path/filepath"
	"strings"
	"time"

	"github.com/jessevdk/go-flags"

	"github.com/woozymasta/cakedoc"
)

var (
	Version    = "dev"
	Commit     = "unknown"
	BuildTime  = time.Unix(0, 0)
	URL        = "https://github.com/woozymasta/cakedoc"
	_buildTime string
)

// cliOptions describes cakedoc CLI flags and subcommands.
type cliOptions struct {
	Version  versionCommand  `command:"version" description:"Print version information"`
	Template templateCommand `command:"template" description:"Print built-in table template"`
	Table    tableCommand    `command:"table" description:"Render catalogue class as markdown"`
	Export   exportCommand   `command:"export" description:"Export catalogue class as csv, yaml or json"`
	Page     pageCommand     `command:"page" description:"Render one page template with macros"`
	Build    buildCommand    `command:"build" description:"Render docs directory and export tables"`
	Audit    auditCommand    `command:"audit" description:"Report common error codes whose value differs from their key"`
}

// markdownRenderFlags groups markdown rendering flags.
type markdownRenderFlags struct {
	TemplatePath string `short:"f" long:"template-file" description:"Path to custom markdown template (.gotmpl)"`
	Title        string `short:"T" long:"title" description:"Markdown document title (default: <TypeName> error codes)"`
	ListMarker   string `short:"l" long:"list-marker" description:"Unordered list marker for list template" choice:"-" choice:"*" default:"*"`
}

// templateSelectFlags groups built-in template selection flags.
type templateSelectFlags struct {
	TemplateName string `short:"t" long:"template" description:"Built-in template style" choice:"list" choice:"table" default:"table"`
}

// templateCommand exports built-in markdown template.
type templateCommand struct {
	runner *cliRunner
	Args   struct {
		Output string `positional-arg-name:"output" description:"Output template file path (optional; stdout when omitted)"`
	} `positional-args:"yes"`

	TemplateFlags templateSelectFlags `group:"Template Select"`
}

// Execute runs template subcommand.
func (command *templateCommand) Execute(_ []string) error {
	return command.runner.runTemplate(command.TemplateFlags.TemplateName, command.Args.Output)
}

// tableCommand renders one catalogue class.
type tableCommand struct {
	runner *cliRunner
	Args   struct {
		Class  string `positional-arg-name:"class" description:"Catalogue class type name (for example: FCakeFile)" required:"yes"`
		Output string `positional-arg-name:"output" description:"Output markdown file path (optional; stdout when omitted)"`
	} `positional-args:"yes"`

	TemplateFlags templateSelectFlags `group:"Template Select"`
	RenderFlags   markdownRenderFlags `group:"Markdown Render"`
}

// Execute runs table subcommand.
func (command *tableCommand) Execute(_ []string) error {
	return command.runner.runTable(command.Args.Class, command.TemplateFlags, command.RenderFlags, command.Args.Output)
}

// exportCommand exports one catalogue class.
type exportCommand struct {
	runner *cliRunner
	Args   struct {
		Class  string `positional-arg-name:"class" description:"Catalogue class type name (for example: FCakeDir)" required:"yes"`
		Output string `positional-arg-name:"output" description:"Output file path (optional; stdout when omitted)"`
	} `positional-args:"yes"`

	Format string `short:"F" long:"format" description:"Export format" choice:"csv" choice:"yaml" choice:"json" default:"csv"`
}

// Execute runs export subcommand.
func (command *exportCommand) Execute(_ []string) error {
	return command.runner.runExport(command.Args.Class, command.Format, command.Args.Output)
}

// pageCommand renders one page template.
type pageCommand struct {
	runner *cliRunner
	Args   struct {
		Input  string `positional-arg-name:"input" description:"Input page template path (optional; stdin when omitted)"`
		Output string `positional-arg-name:"output" description:"Output file path (optional; stdout when omitted)"`
	} `positional-args:"yes"`

	HTML          bool                `long:"html" description:"Write HTML preview instead of markdown"`
	TemplateFlags templateSelectFlags `group:"Template Select"`
}

// Execute runs page subcommand.
func (command *pageCommand) Execute(_ []string) error {
	return command.runner.runPage(command.Args.Input, command.Args.Output, command.TemplateFlags.TemplateName, command.HTML)
}

// buildCommand runs a config driven documentation build.
type buildCommand struct {
	runner  *cliRunner
	Config  string `short:"c" long:"config" description:"Path to build config (YAML)" default:"cakedoc.yaml"`
	Verbose bool   `short:"v" long:"verbose" description:"Enable debug logging"`
	Strict  bool   `long:"strict" description:"Fail on missing content markers, missing images or unresolved site links"`
}

// Execute runs build subcommand.
func (command *buildCommand) Execute(_ []string) error {
	return command.runner.runBuild(command.Config, command.Verbose, command.Strict)
}

// auditCommand reports registry entries whose code value differs from their key.
type auditCommand struct {
	runner *cliRunner
	Strict bool `long:"strict" description:"Exit with error when mismatches are found"`
}

// Execute runs audit subcommand.
func (command *auditCommand) Execute(_ []string) error {
	return command.runner.runAudit(command.Strict)
}

// cliRunner executes CLI operations with custom IO streams.
type cliRunner struct {
	stdin       io.Reader
	stdout      io.Writer
	stderr      io.Writer
	programName string
}

// versionCommand prints version information.
type versionCommand struct {
}

// Execute runs version subcommand.
func (command *versionCommand) Execute(_ []string) error {
	printVersionInfo()
	return nil
}

func init() {
	if _buildTime != "" {
		if t, err := time.Parse(time.RFC3339, _buildTime); err == nil {
			BuildTime = t.UTC()
		}
	}
}

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

// run executes CLI logic and returns process exit code.
func run(args []string, stdout, stderr io.Writer) int {
	return runWithIO(args, os.Stdin, stdout, stderr)
}

// runWithIO executes CLI logic with custom stdin, for tests.
func runWithIO(args []string, stdin io.Reader, stdout, stderr io.Writer) int {
	programName := strings.TrimSpace(os.Args[0])
	if programName == "" {
		programName = "cakedoc"
	}

	programName = filepath.Base(programName)
	runner := cliRunner{
		programName: programName,
		stdin:       stdin,
		stdout:      stdout,
		stderr:      stderr,
	}

	return runner.run(args)
}

// run parses CLI args and maps errors to process exit codes.
func (runner *cliRunner) run(args []string) int {
	err := parseCLIArgs(args, runner)
	if err == nil {
		return 0
	}

	var flagErr *flags.Error
	if errors.As(err, &flagErr) {
		if flagErr.Type == flags.ErrHelp {
			writeCLIError(runner.stdout, err)
			return 0
		}

		writeCLIError(runner.stderr, err)
		return 2
	}

	writeCLIError(runner.stderr, err)
	return 1
}

// newLogger returns a text logger writing to the runner stderr.
func (runner *cliRunner) newLogger(verbose bool) *slog.Logger {
	level := slog.LevelInfo
	if verbose {
		level = slog.LevelDebug
	}

	return slog.New(slog.NewTextHandler(runner.stderr, &slog.HandlerOptions{Level: level}))
}

// runTemplate writes selected built-in template to stdout or file.
func (runner *cliRunner) runTemplate(templateName, outputPath string) error {
	tpl, err := cakedoc.BuiltinTemplate(templateName)
	if err != nil {
		return fmt.Errorf("load built-in template %q: %w", templateName, err)
	}

	return runner.writeOutput(outputPath, []byte(tpl), "template")
}

// runTable renders one catalogue class to stdout or file.
func (runner *cliRunner) runTable(className string, templateFlags templateSelectFlags, renderFlags markdownRenderFlags, outputPath string) error {
	renderOptions := cakedoc.Options{
		Title:        renderFlags.Title,
		TemplateName: templateFlags.TemplateName,
		ListMarker:   renderFlags.ListMarker,
	}

	if renderFlags.TemplatePath != "" {
		customTemplate, err := os.ReadFile(renderFlags.TemplatePath)
		if err != nil {
			return fmt.Errorf("read template file %q: %w", renderFlags.TemplatePath, err)
		}

		renderOptions.TemplateText = string(customTemplate)
	}

	rendered, err := cakedoc.RenderClassByName(className, renderOptions)
	if err != nil {
		return fmt.Errorf("render markdown: %w", err)
	}

	return runner.writeOutput(outputPath, []byte(rendered), "markdown")
}

// runExport writes one catalogue class in the selected format.
func (runner *cliRunner) runExport(className, format, outputPath string) error {
	class, err := cakedoc.Class(className)
	if err != nil {
		return err
	}

	exportFormat, err := cakedoc.ParseExportFormat(format)
	if err != nil {
		return err
	}

	var out bytes.Buffer
	if err := cakedoc.ExportClass(&out, class, exportFormat); err != nil {
		return err
	}

	return runner.writeOutput(outputPath, out.Bytes(), string(exportFormat))
}

// runPage renders one page template read from file or stdin.
func (runner *cliRunner) runPage(inputPath, outputPath, templateName string, html bool) error {
	source, name, err := runner.readInput(inputPath)
	if err != nil {
		return fmt.Errorf("read page input: %w", err)
	}

	rendered, err := cakedoc.RenderPage(string(source), cakedoc.PageOptions{
		Name:         name,
		TableOptions: cakedoc.Options{TemplateName: templateName},
	})
	if err != nil {
		return fmt.Errorf("render page: %w", err)
	}

	if html {
		rendered, err = cakedoc.RenderHTML(rendered)
		if err != nil {
			return err
		}
	}

	return runner.writeOutput(outputPath, []byte(rendered), "page")
}

// runBuild loads build config and renders the documentation site.
func (runner *cliRunner) runBuild(configPath string, verbose, strict bool) error {
	cfg, err := cakedoc.LoadConfig(configPath)
	if err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	report, err := cakedoc.Build(ctx, cfg, runner.newLogger(verbose))
	if err != nil {
		return fmt.Errorf("build: %w", err)
	}

	if strict && (report.MissingContent > 0 || len(report.MissingImages) > 0 || len(report.UnresolvedLinks) > 0) {
		return fmt.Errorf("build incomplete: %d missing content markers, %d missing images, %d unresolved links",
			report.MissingContent, len(report.MissingImages), len(report.UnresolvedLinks))
	}

	return nil
}

// runAudit prints registry key mismatches.
func (runner *cliRunner) runAudit(strict bool) error {
	var mismatches []cakedoc.KeyMismatch
	for _, registry := range cakedoc.Registries() {
		mismatches = append(mismatches, registry.Audit()...)
	}

	for _, mismatch := range mismatches {
		if _, err := fmt.Fprintln(runner.stdout, mismatch.String()); err != nil {
			return fmt.Errorf("write audit report: %w", err)
		}
	}

	if strict && len(mismatches) > 0 {
		return fmt.Errorf("audit found %d mismatched error codes", len(mismatches))
	}

	return nil
}

// readInput reads from file path or stdin and returns a source name.
func (runner *cliRunner) readInput(path string) ([]byte, string, error) {
	path = strings.TrimSpace(path)
	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, "", fmt.Errorf("read file %q: %w", path, err)
		}

		return data, filepath.Base(path), nil
	}

	data, err := io.ReadAll(runner.stdin)
	if err != nil {
		return nil, "", fmt.Errorf("read from stdin: %w", err)
	}

	if len(strings.TrimSpace(string(data))) == 0 {
		return nil, "", errors.New("read from stdin: empty input")
	}

	return data, "(stdin)", nil
}

// writeOutput writes data to stdout when outputPath is empty, otherwise to the file.
func (runner *cliRunner) writeOutput(outputPath string, data []byte, what string) error {
	if strings.TrimSpace(outputPath) == "" {
		if _, err := runner.stdout.Write(data); err != nil {
			return fmt.Errorf("write %s to stdout: %w", what, err)
		}

		return nil
	}

	if err := os.WriteFile(outputPath, data, 0o600); err != nil {
		return fmt.Errorf("write %s file %q: %w", what, outputPath, err)
	}

	return nil
}

// writeCLIError writes a plain-text CLI error line to the selected stream.
func writeCLIError(output io.Writer, err error) {
	if err == nil {
		return
	}

	//nolint:gosec // CLI writes plain-text diagnostics to terminal streams, not HTTP responses.
	_, _ = fmt.Fprintln(output, err.Error())
}

// parseCLIArgs parses CLI arguments and triggers selected subcommand execution.
func parseCLIArgs(args []string, runner *cliRunner) error {
	options := &cliOptions{}
	options.Template.runner = runner
	options.Table.runner = runner
	options.Export.runner = runner
	options.Page.runner = runner
	options.Build.runner = runner
	options.Audit.runner = runner

	parser := flags.NewParser(options, flags.HelpFlag)
	parser.Name = runner.programName
	applyCommandLongDescriptions(parser, runner.programName)

	_, err := parser.ParseArgs(args)
	if err != nil {
		return err
	}

	return nil
}

// applyCommandLongDescriptions configures detailed command help text with examples.
func applyCommandLongDescriptions(parser *flags.Parser, programName string) {
	descriptions := map[string]string{
		"template": strings.TrimSpace(fmt.Sprintf(`
Print built-in table template text (`+"`list` or `table`"+`).
Use it as a starting point for a custom template file.

Examples:
> $ %s template > table.gotmpl
> $ %s template -t list templates/list.gotmpl
`, programName, programName)),
		"table": strings.TrimSpace(fmt.Sprintf(`
Render one catalogue class (%s) as markdown.

Examples:
> $ %s table FCakeFile > file-errors.md
> $ %s table -t list --title "Directory errors" FCakeDir docs/dir-errors.md
`, strings.Join(cakedoc.ClassNames(), ", "), programName, programName)),
		"export": strings.TrimSpace(fmt.Sprintf(`
Export one catalogue class for the site table plugin.

Examples:
> $ %s export FCakeFile docs/tables/csvmap_FCakeFile.csv
> $ %s export -F yaml FCakeDir
`, programName, programName)),
		"page": strings.TrimSpace(fmt.Sprintf(`
Render one page template. Pages call macros with Go template syntax.
Reads template from file argument or stdin; writes result to file argument or stdout.

Examples:
> $ %s page docs/file.md site/file.md
> $ echo '{{ markMissing "intro" }}' | %s page
`, programName, programName)),
		"build": strings.TrimSpace(fmt.Sprintf(`
Render every page of docs_dir into site_dir and export all catalogue tables.
site_dir and tables_dir must not lie inside docs_dir.

With --strict the build fails on missing content markers, missing images and
site-absolute links without a page in docs_dir. Images and links are found in
regular markdown, admonition bodies and content tabs; those inside code blocks
or other indented blocks (such as a bare bpFileQueryFunc) are not checked.

Examples:
> $ %s build -c cakedoc.yaml
> $ %s build --strict -v
`, programName, programName)),
	}

	for commandName, description := range descriptions {
		command := parser.Find(commandName)
		if command == nil {
			continue
		}

		command.LongDescription = description
	}
}

func printVersionInfo() {
	fmt.Printf(`url:      %s
file:     %s
version:  %s
commit:   %s
built:    %s
`, URL, os.Args[0], Version, Commit, BuildTime)
}
