// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/cakedoc

package cakedoc

import (
	"bytes"
	"encoding/csv"
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"gopkg.in/yaml.v3"
)

// ExportFormat selects the encoding of exported error-code tables.
type ExportFormat string

const (
	// ExportFormatCSV writes one row per error code; the site table plugin reads it.
	ExportFormatCSV ExportFormat = "csv"
	// ExportFormatYAML writes the class structure as YAML.
	ExportFormatYAML ExportFormat = "yaml"
	// ExportFormatJSON writes the class structure as indented JSON.
	ExportFormatJSON ExportFormat = "json"
)

// csvHeader is the header row of exported CSV tables.
var csvHeader = []string{"Function", "Error Code", "Policy", "Context"}

// ParseExportFormat validates export format name.
func ParseExportFormat(value string) (ExportFormat, error) {
	format := ExportFormat(strings.ToLower(strings.TrimSpace(value)))
	switch format {
	case "":
		return ExportFormatCSV, nil
	case ExportFormatCSV, ExportFormatYAML, ExportFormatJSON:
		return format, nil
	default:
		return "", fmt.Errorf("%w %q", ErrUnknownExportFormat, value)
	}
}

// ExportClass writes one catalogue class to w in the selected format.
func ExportClass(w io.Writer, class ClassErrorMap, format ExportFormat) error {
	format, err := ParseExportFormat(string(format))
	if err != nil {
		return err
	}

	var data []byte
	switch format {
	case ExportFormatYAML:
		data, err = marshalClassYAML(class)
	case ExportFormatJSON:
		data, err = marshalClassJSON(class)
	default:
		data, err = marshalClassCSV(class)
	}
	if err != nil {
		return fmt.Errorf("%w %s as %s: %w", ErrExportTable, class.TypeName, format, err)
	}

	if _, err := w.Write(data); err != nil {
		return fmt.Errorf("%w %s: %w", ErrExportTable, class.TypeName, err)
	}

	return nil
}

// marshalClassCSV flattens class functions into rows of error codes.
func marshalClassCSV(class ClassErrorMap) ([]byte, error) {
	var out bytes.Buffer
	writer := csv.NewWriter(&out)
	if err := writer.Write(csvHeader); err != nil {
		return nil, err
	}

	for _, fn := range class.FuncMap {
		for _, code := range fn.ErrorCodes {
			row := []string{fn.FuncName, code.CodeValue, code.LinkedPolicy, code.ExtraContext}
			if err := writer.Write(row); err != nil {
				return nil, err
			}
		}
	}

	writer.Flush()
	if err := writer.Error(); err != nil {
		return nil, err
	}

	return out.Bytes(), nil
}

// marshalClassYAML encodes class with two-space indentation.
func marshalClassYAML(class ClassErrorMap) ([]byte, error) {
	var out bytes.Buffer
	encoder := yaml.NewEncoder(&out)
	encoder.SetIndent(2)
	if err := encoder.Encode(class); err != nil {
		_ = encoder.Close()
		return nil, err
	}

	if err := encoder.Close(); err != nil {
		return nil, err
	}

	return out.Bytes(), nil
}

// marshalClassJSON encodes class as indented JSON with trailing newline.
func marshalClassJSON(class ClassErrorMap) ([]byte, error) {
	data, err := json.MarshalIndent(class, "", "  ")
	if err != nil {
		return nil, err
	}

	return append(data, '\n'), nil
}
