// Copyright 2025 The GoGPU Authors
// SPDX-License-Identifier: MIT

package slang

import (
	"errors"
	"fmt"
	"strings"
	"unicode/utf8"
)

var (
	// ErrNoBackend is returned when no native backend was supplied and
	// none is registered.
	ErrNoBackend = errors.New("slang: no native backend registered (build with -tags slang or pass Options.Backend)")

	// ErrUnsupported is returned by reflection queries the binding does
	// not expose. It wraps errors.ErrUnsupported.
	ErrUnsupported = fmt.Errorf("slang: %w", errors.ErrUnsupported)
)

// EncodingError reports text that cannot cross the native boundary:
// bytes that are not valid UTF-8, or an embedded NUL that would silently
// truncate a C string.
type EncodingError struct {
	// Op names the operation that rejected the text.
	Op string

	// Value is the offending text.
	Value string
}

// Error implements the error interface.
func (e *EncodingError) Error() string {
	return fmt.Sprintf("slang: %s: invalid text %q", e.Op, e.Value)
}

// CompileError carries the compiler's diagnostic output for a failed
// compile. The text is preserved verbatim.
type CompileError struct {
	Diagnostics string
}

// Error implements the error interface.
func (e *CompileError) Error() string {
	diag := strings.TrimRight(e.Diagnostics, "\n")
	if diag == "" {
		return "slang: compilation failed"
	}
	return "slang: compilation failed:\n" + diag
}

// ConstructionError reports a null handle returned by a native create
// call. It indicates a broken environment rather than bad input.
type ConstructionError struct {
	What string
}

// Error implements the error interface.
func (e *ConstructionError) Error() string {
	return fmt.Sprintf("slang: native %s creation returned null", e.What)
}

// EnumError reports a native integer with no matching enumeration value.
type EnumError struct {
	Enum  string
	Value int64
}

// Error implements the error interface.
func (e *EnumError) Error() string {
	return fmt.Sprintf("slang: unrecognized native %s value %d", e.Enum, e.Value)
}

// checkText validates text bound for the native layer.
func checkText(op, s string) error {
	if !utf8.ValidString(s) || strings.IndexByte(s, 0) >= 0 {
		return &EncodingError{Op: op, Value: s}
	}
	return nil
}

// decodeText validates text that came back from the native layer.
func decodeText(op string, b []byte) (string, error) {
	if !utf8.Valid(b) {
		return "", &EncodingError{Op: op, Value: string(b)}
	}
	return string(b), nil
}

// unsupported builds the error returned by unexposed queries.
func unsupported(op string) error {
	return fmt.Errorf("%w: %s", ErrUnsupported, op)
}

// precondition aborts on a programming error the native layer cannot
// detect after the fact.
func precondition(format string, args ...any) {
	panic(fmt.Sprintf("slang: "+format, args...))
}
