// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/cakedoc

package cakedoc

import (
	"fmt"
	"strings"
)

// ErrorCode is one documented way an API function call can fail.
type ErrorCode struct {
	// CodeValue is the symbolic error code, for example "DoesNotExist".
	CodeValue string `json:"code" yaml:"code"`
	// LinkedPolicy names the policy that decides whether this error path is reachable.
	// Empty means the error is not tied to a policy.
	LinkedPolicy string `json:"policy,omitempty" yaml:"policy,omitempty"`
	// ExtraContext is the human-readable explanation shown in documentation.
	ExtraContext string `json:"context" yaml:"context"`
}

// HasPolicy reports whether the error code is linked to a policy.
func (code ErrorCode) HasPolicy() bool {
	return code.LinkedPolicy != ""
}

// FunctionErrorMap lists error codes of one API function in presentation order.
type FunctionErrorMap struct {
	FuncName   string      `json:"function" yaml:"function"`
	ErrorCodes []ErrorCode `json:"error_codes" yaml:"error_codes"`
}

// ClassErrorMap groups function error maps of one API type.
type ClassErrorMap struct {
	TypeName string             `json:"type" yaml:"type"`
	FuncMap  []FunctionErrorMap `json:"functions" yaml:"functions"`
}

// clone returns a deep copy so shared tables never leak mutable slices.
func (class ClassErrorMap) clone() ClassErrorMap {
	out := ClassErrorMap{
		TypeName: class.TypeName,
		FuncMap:  make([]FunctionErrorMap, len(class.FuncMap)),
	}

	for i, fn := range class.FuncMap {
		out.FuncMap[i] = FunctionErrorMap{
			FuncName:   fn.FuncName,
			ErrorCodes: append([]ErrorCode(nil), fn.ErrorCodes...),
		}
	}

	return out
}

// catalogue holds every documented class in presentation order.
var catalogue = []ClassErrorMap{
	fCakeDir,
	fCakeFile,
}

// Classes returns copies of all catalogue classes in presentation order.
func Classes() []ClassErrorMap {
	out := make([]ClassErrorMap, 0, len(catalogue))
	for _, class := range catalogue {
		out = append(out, class.clone())
	}

	return out
}

// ClassNames returns catalogue type names in presentation order.
func ClassNames() []string {
	names := make([]string, 0, len(catalogue))
	for _, class := range catalogue {
		names = append(names, class.TypeName)
	}

	return names
}

// Class returns a copy of one catalogue class by type name.
func Class(typeName string) (ClassErrorMap, error) {
	typeName = strings.TrimSpace(typeName)
	for _, class := range catalogue {
		if class.TypeName == typeName {
			return class.clone(), nil
		}
	}

	return ClassErrorMap{}, fmt.Errorf("%w %q", ErrUnknownClass, typeName)
}
