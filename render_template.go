// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/cakedoc

package cakedoc

import (
	"embed"
	"fmt"
	"strings"
	"text/template"
	"unicode"
)

// templateFS stores built-in markdown templates embedded into the package.
//
//go:embed templates/*.md.gotmpl
var templateFS embed.FS

// builtInTemplateFiles maps template aliases to embedded file paths.
var builtInTemplateFiles = map[string]string{
	templateListName:  "templates/list.md.gotmpl",
	templateTableName: "templates/table.md.gotmpl",
}

// resolveTemplate resolves either custom or built-in template text into a parsed template.
func resolveTemplate(opt Options) (*template.Template, error) {
	templateText := strings.TrimSpace(opt.TemplateText)
	if templateText != "" {
		return template.New("custom").Funcs(templateFuncs()).Parse(templateText)
	}

	templateName := normalizeTemplateName(opt.TemplateName)
	if templateName == "" {
		templateName = defaultTemplateName
	}

	templateText, err := BuiltinTemplate(templateName)
	if err != nil {
		return nil, err
	}

	parsed, err := template.New(templateName).Funcs(templateFuncs()).Parse(templateText)
	if err != nil {
		return nil, fmt.Errorf("%w %q: %w", ErrParseBuiltinTemplate, templateName, err)
	}

	return parsed, nil
}

// normalizeTemplateName normalizes built-in template identifiers.
func normalizeTemplateName(name string) string {
	return strings.ToLower(strings.TrimSpace(name))
}

// templateFuncs provides utility functions available inside table templates.
func templateFuncs() template.FuncMap {
	return template.FuncMap{
		"headingAnchor": markdownHeadingAnchor,
		"imageName":     ImageName,
	}
}

// Macros returns every documentation macro keyed by the name page templates call it with.
// Trailing optional arguments are variadic; only the first value is used.
// tableOpt configures tables rendered by errorTable.
func Macros(tableOpt Options) template.FuncMap {
	return template.FuncMap{
		"srcLocGroup": func(groupID, fileName string, relLoc ...string) string {
			return SourceLocGroup(groupID, fileName, optional(relLoc))
		},
		"srcLocEx": func(id, fileName, body string, relLoc ...string) string {
			return SourceLocCustom(id, fileName, body, optional(relLoc))
		},
		"sourceLocSingle": func(typeID string, relLoc ...string) string {
			return SourceLocSingle(typeID, optional(relLoc))
		},
		"sourceLocSingleBP": func(typeID string, relLoc ...string) string {
			return SourceLocSingleBlueprint(typeID, optional(relLoc))
		},
		"markMissing": func(contentID string, note ...string) string {
			return MissingContent(contentID, optional(note))
		},
		"csvByTypename": CSVPathByTypeName,
		"csvPolicy":     CSVPolicyPath,
		"typeHeader":    TypeHeader,

		"bpImg":              BlueprintImage,
		"bpImgPath":          sectionImage(SectionPath),
		"bpImgFileExt":       sectionImage(SectionFileExt),
		"bpImgFile":          sectionImage(SectionFile),
		"bpImgDir":           sectionImage(SectionDir),
		"bpImgErrorHandling": sectionImage(SectionErrorHandling),
		"bpImgCakeMix":       sectionImage(SectionCakeMixLibrary),
		"bpImgAsync":         sectionImage(SectionAsync),
		"bpImgExtFilter":     sectionImage(SectionExtFilter),
		"bpFileQueryFunc":    BlueprintFileQueryImage,

		"coreAPILink":             linkMacro(CoreAPIBase),
		"advancedLink":            linkMacro(AdvancedBase),
		"coreAPISpecialTypeLink":  linkMacro(CoreAPISpecialTypesBase),
		"advancedSpecialTypeLink": linkMacro(AdvancedSpecialTypeBase),

		"headingAnchor": markdownHeadingAnchor,
		"errorTable": func(typeName string) (string, error) {
			return RenderClassByName(typeName, tableOpt)
		},
	}
}

// sectionImage binds BlueprintImage to one image section.
func sectionImage(section string) func(string) string {
	return func(label string) string {
		return BlueprintImage(label, section)
	}
}

// linkMacro binds SiteLink to one base path.
func linkMacro(base string) func(string, ...string) string {
	return func(label string, anchor ...string) string {
		return SiteLink(base, label, optional(anchor))
	}
}

// optional returns the first value of a variadic optional argument.
func optional(values []string) string {
	if len(values) == 0 {
		return ""
	}

	return values[0]
}

// markdownHeadingAnchor converts heading text into a markdown anchor slug.
func markdownHeadingAnchor(value string) string {
	trimmed := strings.TrimSpace(strings.ToLower(value))
	if trimmed == "" {
		return ""
	}

	var out strings.Builder
	out.Grow(len(trimmed))

	lastDash := false
	for _, r := range trimmed {
		switch {
		case unicode.IsLetter(r), unicode.IsDigit(r):
			out.WriteRune(r)
			lastDash = false
		case unicode.IsSpace(r), r == '-', r == '_':
			if lastDash || out.Len() == 0 {
				continue
			}

			out.WriteByte('-')
			lastDash = true
		}
	}

	return strings.Trim(out.String(), "-")
}
