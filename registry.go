// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/cakedoc

package cakedoc

import (
	"fmt"
	"sort"
)

// Registry is a read-only table of error codes shared by several functions of one class.
type Registry struct {
	name  string
	codes map[string]ErrorCode
}

// KeyMismatch reports a registry entry whose code value differs from its key.
type KeyMismatch struct {
	Registry  string
	Key       string
	CodeValue string
}

// String renders the mismatch as one diagnostic line.
func (mismatch KeyMismatch) String() string {
	return fmt.Sprintf("%s: key %q maps to code %q", mismatch.Registry, mismatch.Key, mismatch.CodeValue)
}

// newRegistry copies codes into a new registry.
func newRegistry(name string, codes map[string]ErrorCode) *Registry {
	table := make(map[string]ErrorCode, len(codes))
	for key, code := range codes {
		table[key] = code
	}

	return &Registry{name: name, codes: table}
}

// Name returns the registry name, usually the owning class type name.
func (registry *Registry) Name() string {
	return registry.name
}

// Keys returns all registry keys sorted.
func (registry *Registry) Keys() []string {
	keys := make([]string, 0, len(registry.codes))
	for key := range registry.codes {
		keys = append(keys, key)
	}

	sort.Strings(keys)
	return keys
}

// Lookup returns the canonical error code for key.
func (registry *Registry) Lookup(key string) (ErrorCode, error) {
	code, ok := registry.codes[key]
	if !ok {
		return ErrorCode{}, fmt.Errorf("%w %q in %s", ErrUnknownErrorCode, key, registry.name)
	}

	return code, nil
}

// MustLookup is like Lookup but panics on unknown key.
// Catalogue tables are built with it so a typo fails at package load.
func (registry *Registry) MustLookup(key string) ErrorCode {
	code, err := registry.Lookup(key)
	if err != nil {
		panic(err)
	}

	return code
}

// WithContext returns a copy of the common code with ctx appended to its context.
func (registry *Registry) WithContext(key, ctx string) (ErrorCode, error) {
	code, err := registry.Lookup(key)
	if err != nil {
		return ErrorCode{}, err
	}

	code.ExtraContext += " " + ctx
	return code, nil
}

// MustWithContext is like WithContext but panics on unknown key.
func (registry *Registry) MustWithContext(key, ctx string) ErrorCode {
	code, err := registry.WithContext(key, ctx)
	if err != nil {
		panic(err)
	}

	return code
}

// Audit lists entries whose code value differs from the registry key.
// Such entries are kept as authored; the report lets doc maintainers review them.
func (registry *Registry) Audit() []KeyMismatch {
	var out []KeyMismatch
	for _, key := range registry.Keys() {
		code := registry.codes[key]
		if code.CodeValue == key {
			continue
		}

		out = append(out, KeyMismatch{
			Registry:  registry.name,
			Key:       key,
			CodeValue: code.CodeValue,
		})
	}

	return out
}

// Registries returns common error code registries of all catalogue classes.
func Registries() []*Registry {
	return []*Registry{DirCommon, FileCommon}
}
