// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/cakedoc

package cakedoc

import (
	"fmt"
	"sort"
	"strings"
	"text/template"
)

const (
	// defaultTemplateName is used when caller does not provide template name.
	defaultTemplateName = templateTableName
	// defaultPageName names page templates rendered without explicit name.
	defaultPageName = "page"
)

const (
	templateListName  = "list"
	templateTableName = "table"
)

// Options configures rendering of one catalogue class.
type Options struct {
	// Title overrides the document heading; defaults to "<TypeName> error codes".
	Title string
	// TemplateName selects a built-in template ("table" or "list").
	TemplateName string
	// TemplateText is a custom template and takes precedence over TemplateName.
	TemplateText string
	// ListMarker is the unordered list marker used by the list template.
	ListMarker string
}

// PageOptions configures rendering of one documentation page template.
type PageOptions struct {
	// Name identifies the page in template error messages.
	Name string
	// TableOptions are applied to catalogue tables embedded with errorTable.
	TableOptions Options
}

// RenderClass renders one catalogue class into a deterministic markdown document.
func RenderClass(class ClassErrorMap, opt Options) (string, error) {
	markdownTemplate, err := resolveTemplate(opt)
	if err != nil {
		return "", err
	}

	var out strings.Builder
	if err := markdownTemplate.Execute(&out, buildClassView(class, opt)); err != nil {
		return "", fmt.Errorf("%w: %w", ErrExecuteMarkdownTemplate, err)
	}

	return ensureTrailingNewline(normalizeMarkdownOutput(out.String())), nil
}

// RenderClassByName renders a catalogue class selected by type name.
func RenderClassByName(typeName string, opt Options) (string, error) {
	class, err := Class(typeName)
	if err != nil {
		return "", err
	}

	return RenderClass(class, opt)
}

// RenderPage executes a documentation page template with all macros available.
func RenderPage(text string, opt PageOptions) (string, error) {
	name := strings.TrimSpace(opt.Name)
	if name == "" {
		name = defaultPageName
	}

	page, err := template.New(name).
		Funcs(Macros(opt.TableOptions)).
		Option("missingkey=error").
		Parse(text)
	if err != nil {
		return "", fmt.Errorf("%w %q: %w", ErrParsePageTemplate, name, err)
	}

	var out strings.Builder
	if err := page.Execute(&out, nil); err != nil {
		return "", fmt.Errorf("%w: %w", ErrExecuteMarkdownTemplate, err)
	}

	return ensureTrailingNewline(normalizeMarkdownOutput(out.String())), nil
}

// BuiltinTemplateNames returns all available built-in template names.
func BuiltinTemplateNames() []string {
	names := make([]string, 0, len(builtInTemplateFiles))
	for name := range builtInTemplateFiles {
		names = append(names, name)
	}

	sort.Strings(names)
	return names
}

// BuiltinTemplate returns one built-in template by name.
func BuiltinTemplate(name string) (string, error) {
	name = normalizeTemplateName(name)
	path, ok := builtInTemplateFiles[name]
	if !ok {
		return "", fmt.Errorf("%w %q", ErrUnknownBuiltinTemplate, name)
	}

	data, err := templateFS.ReadFile(path)
	if err != nil {
		return "", fmt.Errorf("%w: %w", ErrReadBuiltinTemplate, err)
	}

	return string(data), nil
}
