// SPDX-License-Identifier: AGPL-3.0-only
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/cakedoc

package cakedoc

import (
	"bytes"
	"encoding/csv"
	"encoding/json"
	"errors"
	"reflect"
	"testing"

	"gopkg.in/yaml.v3"
)

func TestExportCSV(t *testing.T) {
	t.Parallel()

	var out bytes.Buffer
	if err := ExportClass(&out, fixtureClass(), ExportFormatCSV); err != nil {
		t.Fatalf("ExportClass: %v", err)
	}

	rows, err := csv.NewReader(&out).ReadAll()
	if err != nil {
		t.Fatalf("read csv: %v", err)
	}

	want := [][]string{
		{"Function", "Error Code", "Policy", "Context"},
		{"Open", "DoesNotExist", "", "Occurs when missing."},
		{"Open", "AlreadyExists", "OverwriteItems", "Occurs when  present | overwritten."},
		{"Close", "NOP", "", "Nothing to do."},
	}
	if !reflect.DeepEqual(rows, want) {
		t.Fatalf("csv rows mismatch\ngot:  %#v\nwant: %#v", rows, want)
	}
}

func TestExportYAMLRoundTripsStructure(t *testing.T) {
	t.Parallel()

	var out bytes.Buffer
	if err := ExportClass(&out, fixtureClass(), ExportFormatYAML); err != nil {
		t.Fatalf("ExportClass: %v", err)
	}

	assertContains(t, out.String(), "type: FDemo\n")
	assertContains(t, out.String(), "policy: OverwriteItems")

	var got ClassErrorMap
	if err := yaml.Unmarshal(out.Bytes(), &got); err != nil {
		t.Fatalf("unmarshal yaml: %v", err)
	}

	if !reflect.DeepEqual(got, fixtureClass()) {
		t.Fatalf("yaml export mismatch\ngot:  %#v\nwant: %#v", got, fixtureClass())
	}
}

func TestExportJSON(t *testing.T) {
	t.Parallel()

	class, err := Class("FCakeDir")
	if err != nil {
		t.Fatalf("Class: %v", err)
	}

	var out bytes.Buffer
	if err := ExportClass(&out, class, ExportFormatJSON); err != nil {
		t.Fatalf("ExportClass: %v", err)
	}

	var got map[string]any
	if err := json.Unmarshal(out.Bytes(), &got); err != nil {
		t.Fatalf("unmarshal json: %v", err)
	}

	if got["type"] != "FCakeDir" {
		t.Fatalf("json type = %v", got["type"])
	}

	functions, ok := got["functions"].([]any)
	if !ok || len(functions) != len(class.FuncMap) {
		t.Fatalf("json functions = %#v", got["functions"])
	}
}

func TestParseExportFormat(t *testing.T) {
	t.Parallel()

	tests := []struct {
		in      string
		want    ExportFormat
		wantErr bool
	}{
		{"", ExportFormatCSV, false},
		{"CSV", ExportFormatCSV, false},
		{" yaml ", ExportFormatYAML, false},
		{"json", ExportFormatJSON, false},
		{"xml", "", true},
	}
	for _, tt := range tests {
		got, err := ParseExportFormat(tt.in)
		if tt.wantErr {
			if !errors.Is(err, ErrUnknownExportFormat) {
				t.Fatalf("ParseExportFormat(%q) error = %v", tt.in, err)
			}
			continue
		}

		if err != nil || got != tt.want {
			t.Fatalf("ParseExportFormat(%q) = %q, %v; want %q", tt.in, got, err, tt.want)
		}
	}
}

func TestExportUnknownFormat(t *testing.T) {
	t.Parallel()

	var out bytes.Buffer
	if err := ExportClass(&out, fixtureClass(), ExportFormat("xml")); !errors.Is(err, ErrUnknownExportFormat) {
		t.Fatalf("ExportClass error = %v, want ErrUnknownExportFormat", err)
	}

	if out.Len() != 0 {
		t.Fatalf("nothing should be written on error: %q", out.String())
	}
}
