// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/cakedoc

package cakedoc

import "errors"

var (
	// ErrUnknownErrorCode is returned when a registry key is not registered.
	ErrUnknownErrorCode = errors.New("unknown error code")
	// ErrUnknownClass is returned when a catalogue class type name is not registered.
	ErrUnknownClass = errors.New("unknown catalogue class")
	// ErrExecuteMarkdownTemplate is returned when markdown template execution fails.
	ErrExecuteMarkdownTemplate = errors.New("execute markdown template")
	// ErrParsePageTemplate is returned when a documentation page template cannot be parsed.
	ErrParsePageTemplate = errors.New("parse page template")
	// ErrUnknownBuiltinTemplate is returned when requested built-in template name is not registered.
	ErrUnknownBuiltinTemplate = errors.New("unknown built-in template")
	// ErrReadBuiltinTemplate is returned when built-in template file loading fails.
	ErrReadBuiltinTemplate = errors.New("read built-in template")
	// ErrParseBuiltinTemplate is returned when built-in template parsing fails.
	ErrParseBuiltinTemplate = errors.New("parse built-in template")
	// ErrUnknownExportFormat is returned when table export format is not supported.
	ErrUnknownExportFormat = errors.New("unknown export format")
	// ErrExportTable is returned when table encoding fails.
	ErrExportTable = errors.New("export table")
	// ErrRenderHTML is returned when markdown to HTML conversion fails.
	ErrRenderHTML = errors.New("render html")
	// ErrReadConfig is returned when build config loading fails.
	ErrReadConfig = errors.New("read build config")
	// ErrDecodeConfig is returned when build config YAML decoding fails.
	ErrDecodeConfig = errors.New("decode build config")
	// ErrInvalidConfig is returned when build config values are not usable.
	ErrInvalidConfig = errors.New("invalid build config")
)
