// Copyright 2025 The GoGPU Authors
// SPDX-License-Identifier: MIT

package snapshot

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/vmihailenco/msgpack/v5"
)

// Format is a serialization format for a Program.
type Format string

// Supported formats.
const (
	FormatJSON    Format = "json"
	FormatMsgpack Format = "msgpack"
)

// ParseFormat validates a format name.
func ParseFormat(s string) (Format, error) {
	switch f := Format(s); f {
	case FormatJSON, FormatMsgpack:
		return f, nil
	}
	return "", fmt.Errorf("snapshot: unknown format %q", s)
}

// Encode writes p to w. JSON output is indented and ends with a
// newline.
func (p *Program) Encode(w io.Writer, format Format) error {
	switch format {
	case FormatJSON:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(p)
	case FormatMsgpack:
		enc := msgpack.NewEncoder(w)
		enc.SetOmitEmpty(true)
		return enc.Encode(p)
	}
	return fmt.Errorf("snapshot: unknown format %q", format)
}

// Decode reads a Program written by Encode.
func Decode(r io.Reader, format Format) (*Program, error) {
	p := &Program{}
	var err error
	switch format {
	case FormatJSON:
		err = json.NewDecoder(r).Decode(p)
	case FormatMsgpack:
		err = msgpack.NewDecoder(r).Decode(p)
	default:
		return nil, fmt.Errorf("snapshot: unknown format %q", format)
	}
	if err != nil {
		return nil, fmt.Errorf("snapshot: decode %s: %w", format, err)
	}
	return p, nil
}
