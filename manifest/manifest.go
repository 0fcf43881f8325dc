// Copyright 2025 The GoGPU Authors
// SPDX-License-Identifier: MIT

// Package manifest loads TOML compile manifests.
//
// A manifest describes one compile request:
//
//	target = "spirv"
//	search_paths = ["include"]
//
//	[defines]
//	USE_FAST_PATH = "1"
//
//	[[units]]
//	language = "glsl"
//	name = "blur"
//	files = ["blur.comp"]
//
//	[[units.entry_points]]
//	name = "main"
//	stage = "compute"
//	output = "blur.spv"
//
// Relative search paths, files and outputs resolve against the
// directory holding the manifest.
package manifest

import (
	"fmt"
	"maps"
	"os"
	"path/filepath"
	"slices"
	"strings"

	"github.com/BurntSushi/toml"

	"github.com/gogpu/slang"
)

// Manifest is a decoded compile manifest.
type Manifest struct {
	// Path is the file the manifest was loaded from, if any.
	Path string `toml:"-"`

	Target      slang.CompileTarget `toml:"target"`
	SearchPaths []string            `toml:"search_paths"`
	Defines     map[string]string   `toml:"defines"`
	Units       []Unit              `toml:"units"`
}

// Unit is one translation unit.
type Unit struct {
	Language    slang.SourceLanguage `toml:"language"`
	Name        string               `toml:"name"`
	Files       []string             `toml:"files"`
	Sources     []Source             `toml:"sources"`
	EntryPoints []EntryPoint         `toml:"entry_points"`
}

// Source is inline source text. Path names it in diagnostics.
type Source struct {
	Path string `toml:"path"`
	Text string `toml:"text"`
}

// EntryPoint is an entry point to compile and, optionally, the file its
// code is written to.
type EntryPoint struct {
	Name   string      `toml:"name"`
	Stage  slang.Stage `toml:"stage"`
	Output string      `toml:"output"`
}

// Load reads and validates the manifest at path.
func Load(path string) (*Manifest, error) {
	abs, err := filepath.Abs(path)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve manifest path: %w", err)
	}
	data, err := os.ReadFile(abs)
	if err != nil {
		return nil, err
	}
	m, err := Parse(string(data), filepath.Dir(abs))
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	m.Path = abs
	return m, nil
}

// Parse decodes and validates manifest text. Relative paths resolve
// against dir.
func Parse(data, dir string) (*Manifest, error) {
	var m Manifest
	meta, err := toml.Decode(data, &m)
	if err != nil {
		return nil, fmt.Errorf("failed to parse TOML: %w", err)
	}
	if undecoded := meta.Undecoded(); len(undecoded) > 0 {
		return nil, fmt.Errorf("unknown key %q", undecoded[0].String())
	}
	if !meta.IsDefined("target") {
		return nil, fmt.Errorf("missing target")
	}
	if len(m.Units) == 0 {
		return nil, fmt.Errorf("no units")
	}

	for i := range m.SearchPaths {
		m.SearchPaths[i] = resolve(dir, m.SearchPaths[i])
	}
	for i := range m.Units {
		u := &m.Units[i]
		if err := u.validate(); err != nil {
			return nil, fmt.Errorf("units[%d]: %w", i, err)
		}
		for j := range u.Files {
			u.Files[j] = resolve(dir, u.Files[j])
		}
		for j := range u.EntryPoints {
			if out := u.EntryPoints[j].Output; out != "" {
				u.EntryPoints[j].Output = resolve(dir, out)
			}
		}
	}
	return &m, nil
}

func (u *Unit) validate() error {
	if u.Language == slang.LanguageUnknown {
		return fmt.Errorf("missing language")
	}
	if len(u.Files) == 0 && len(u.Sources) == 0 {
		return fmt.Errorf("unit %q has no sources", u.Name)
	}
	for i, s := range u.Sources {
		if strings.TrimSpace(s.Path) == "" {
			return fmt.Errorf("sources[%d]: missing path", i)
		}
	}
	for i, ep := range u.EntryPoints {
		if strings.TrimSpace(ep.Name) == "" {
			return fmt.Errorf("entry_points[%d]: missing name", i)
		}
		if ep.Stage == slang.StageNone {
			return fmt.Errorf("entry point %q: missing stage", ep.Name)
		}
	}
	return nil
}

func resolve(dir, p string) string {
	p = filepath.FromSlash(p)
	if filepath.IsAbs(p) || dir == "" {
		return p
	}
	return filepath.Join(dir, p)
}

// Output pairs a declared entry point with its destination file.
type Output struct {
	Index slang.EntryPointIndex
	Unit  string
	Name  string
	Path  string
}

// Apply configures req from the manifest and returns every declared
// entry point in declaration order. Defines are added sorted by name.
func (m *Manifest) Apply(req *slang.CompileRequest) ([]Output, error) {
	req.SetCodegenTarget(m.Target)
	for _, p := range m.SearchPaths {
		if err := req.AddIncludeSearchPath(p); err != nil {
			return nil, err
		}
	}
	for _, key := range slices.Sorted(maps.Keys(m.Defines)) {
		if err := req.AddPreprocessorDefine(key, m.Defines[key]); err != nil {
			return nil, err
		}
	}

	var outputs []Output
	for _, u := range m.Units {
		unit, err := req.AddTranslationUnit(u.Language, u.Name)
		if err != nil {
			return nil, err
		}
		for _, f := range u.Files {
			if err := unit.AddSourceFile(f); err != nil {
				return nil, err
			}
		}
		for _, s := range u.Sources {
			if err := unit.AddSourceString(s.Path, s.Text); err != nil {
				return nil, err
			}
		}
		for _, ep := range u.EntryPoints {
			idx, err := unit.AddEntryPoint(ep.Name, ep.Stage)
			if err != nil {
				return nil, err
			}
			outputs = append(outputs, Output{Index: idx, Unit: u.Name, Name: ep.Name, Path: ep.Output})
		}
	}
	return outputs, nil
}
