// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/cakedoc

package cakedoc

import "strings"

// classView is the root view model passed to table templates.
type classView struct {
	Title      string
	TypeName   string
	ListMarker string
	Functions  []functionView
}

// functionView represents one function section.
type functionView struct {
	Name   string
	Anchor string
	Codes  []codeView
}

// codeView is one rendered error code row.
type codeView struct {
	Code       string
	HasPolicy  bool
	PolicyName string
	// Policy is the table cell value: policy in inline code or a dash.
	Policy  string
	Context string
}

// buildClassView prepares data for markdown template rendering.
func buildClassView(class ClassErrorMap, opt Options) classView {
	title := sanitizeText(opt.Title)
	if title == "" {
		title = class.TypeName + " error codes"
	}

	view := classView{
		Title:      title,
		TypeName:   class.TypeName,
		ListMarker: normalizeListMarker(opt.ListMarker),
		Functions:  make([]functionView, 0, len(class.FuncMap)),
	}

	for _, fn := range class.FuncMap {
		function := functionView{
			Name:   sanitizeText(fn.FuncName),
			Anchor: markdownHeadingAnchor(fn.FuncName),
			Codes:  make([]codeView, 0, len(fn.ErrorCodes)),
		}

		for _, code := range fn.ErrorCodes {
			row := codeView{
				Code:       escapeInline(code.CodeValue),
				HasPolicy:  code.HasPolicy(),
				PolicyName: escapeInline(code.LinkedPolicy),
				Policy:     "-",
				Context:    escapeTableCell(sanitizeText(code.ExtraContext)),
			}
			if row.HasPolicy {
				row.Policy = "`" + row.PolicyName + "`"
			}

			function.Codes = append(function.Codes, row)
		}

		view.Functions = append(view.Functions, function)
	}

	return view
}

// escapeTableCell escapes pipe characters that would split markdown table cells.
func escapeTableCell(value string) string {
	return strings.ReplaceAll(value, "|", "\\|")
}
