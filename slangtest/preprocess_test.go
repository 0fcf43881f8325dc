// Copyright 2025 The GoGPU Authors
// SPDX-License-Identifier: MIT

package slangtest

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newPreprocessor(files map[string]string, searchPaths ...string) (*preprocessor, *diagnostics) {
	diag := &diagnostics{}
	return &preprocessor{
		open: func(file string) (string, bool) {
			text, ok := files[file]
			return text, ok
		},
		searchPaths: searchPaths,
		defines:     make(map[string]string),
		diag:        diag,
	}, diag
}

func TestPreprocessConditionals(t *testing.T) {
	src := strings.Join([]string{
		"#define FAST",
		"#ifdef FAST",
		"int fast;",
		"#else",
		"int slow;",
		"#endif",
		"#ifndef FAST",
		"int never;",
		"#endif",
		"#undef FAST",
		"#ifdef FAST",
		"int gone;",
		"#endif",
	}, "\n")

	p, diag := newPreprocessor(nil)
	out := p.run("a.slang", src, 0)

	assert.Zero(t, diag.errors, diag.String())
	assert.Contains(t, out, "int fast;")
	assert.NotContains(t, out, "int slow;")
	assert.NotContains(t, out, "int never;")
	assert.NotContains(t, out, "int gone;")
}

func TestPreprocessNestedInactive(t *testing.T) {
	src := "#ifdef A\n#ifdef B\nint x;\n#else\nint y;\n#endif\n#endif\n"
	p, diag := newPreprocessor(nil)
	p.defines["B"] = ""
	out := p.run("a.slang", src, 0)

	assert.Zero(t, diag.errors)
	assert.NotContains(t, out, "int x;")
	assert.NotContains(t, out, "int y;")
}

func TestPreprocessDirectiveErrors(t *testing.T) {
	tests := []struct {
		name string
		src  string
		want string
	}{
		{"else without if", "#else\n", "a.slang(1): error: #else without #if"},
		{"endif without if", "int x;\n#endif\n", "a.slang(2): error: #endif without #if"},
		{"double else", "#ifdef A\n#else\n#else\n#endif\n", "a.slang(3): error: #else after #else"},
		{"unterminated", "\n#ifndef A\nint x;\n", "a.slang(2): error: unterminated conditional directive"},
		{"error directive", "#error stop here\n", "a.slang(1): error: #error stop here"},
		{"missing include", `#include "nope.slang"`, "a.slang(1): error: cannot open include file 'nope.slang'"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p, diag := newPreprocessor(nil)
			p.run("a.slang", tt.src, 0)
			assert.Positive(t, diag.errors)
			assert.Contains(t, diag.String(), tt.want)
		})
	}
}

func TestPreprocessWarning(t *testing.T) {
	p, diag := newPreprocessor(nil)
	p.run("a.slang", "#warning careful\n", 0)

	assert.Zero(t, diag.errors)
	assert.Equal(t, "a.slang(1): warning: #warning careful\n", diag.String())
}

func TestPreprocessInclude(t *testing.T) {
	files := map[string]string{
		"shaders/common.slang": "int local;",
		"lib/util.slang":       "int util;",
	}

	t.Run("relative to including file", func(t *testing.T) {
		p, diag := newPreprocessor(files)
		out := p.run("shaders/main.slang", `#include "common.slang"`, 0)
		require.Zero(t, diag.errors, diag.String())
		assert.Contains(t, out, "int local;")
	})

	t.Run("search path", func(t *testing.T) {
		p, diag := newPreprocessor(files, "lib")
		out := p.run("shaders/main.slang", "#include <util.slang>", 0)
		require.Zero(t, diag.errors, diag.String())
		assert.Contains(t, out, "int util;")
	})

	t.Run("recursion limit", func(t *testing.T) {
		p, diag := newPreprocessor(map[string]string{"self.slang": `#include "self.slang"`})
		p.run("self.slang", `#include "self.slang"`, 0)
		assert.Contains(t, diag.String(), "#include nested too deeply")
	})

	t.Run("errors report the included file", func(t *testing.T) {
		p, diag := newPreprocessor(map[string]string{"bad.slang": "int x;\nvoid f() {\n"})
		p.run("main.slang", `#include "bad.slang"`, 0)
		assert.Contains(t, diag.String(), "bad.slang(2): error: unmatched '{'")
	})
}

func TestCheckBrackets(t *testing.T) {
	tests := []struct {
		name string
		src  string
		want string
	}{
		{"balanced", "void f() { int a[2] = {1, 2}; }", ""},
		{"comment ignored", "void f() { // )\n}", ""},
		{"block comment ignored", "void f() { /* ( \n ] */ }", ""},
		{"string ignored", `void f() { print("(\"]"); }`, ""},
		{"unexpected closer", "void f() { ) }", "x.slang(1): error: unexpected ')'"},
		{"mismatched", "void f() { int a[2}; }", "x.slang(1): error: unexpected '}'"},
		{"unmatched opener", "void f()\n{\n", "x.slang(2): error: unmatched '{'"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			diag := &diagnostics{}
			lines := make([]int, strings.Count(tt.src, "\n")+1)
			for i := range lines {
				lines[i] = i + 1
			}
			checkBrackets(diag, "x.slang", tt.src, lines)
			if tt.want == "" {
				assert.Empty(t, diag.String())
				return
			}
			assert.Equal(t, tt.want+"\n", diag.String())
		})
	}
}

func TestFindEntryPoint(t *testing.T) {
	tests := []struct {
		name  string
		src   string
		entry string
		found bool
		size  [3]uint64
	}{
		{
			name:  "numthreads",
			src:   "[numthreads(8, 8, 1)]\nvoid main(uint3 id : SV_DispatchThreadID) {}",
			entry: "main",
			found: true,
			size:  [3]uint64{8, 8, 1},
		},
		{
			name:  "nearest numthreads wins",
			src:   "[numthreads(4,1,1)]\nvoid a() {}\n[numthreads(64, 2, 1)]\nvoid b() {}",
			entry: "b",
			found: true,
			size:  [3]uint64{64, 2, 1},
		},
		{
			name:  "glsl local size",
			src:   "#version 450\nlayout(local_size_x = 16, local_size_y = 4) in;\nvoid main() {}",
			entry: "main",
			found: true,
			size:  [3]uint64{16, 4, 1},
		},
		{
			name:  "default size",
			src:   "float4 fsMain() : SV_Target { return 0; }",
			entry: "fsMain",
			found: true,
			size:  [3]uint64{1, 1, 1},
		},
		{
			name:  "call is not a definition",
			src:   "void f() { main(); }",
			entry: "main",
		},
		{
			name:  "missing",
			src:   "void other() {}",
			entry: "main",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			found, size := findEntryPoint(tt.src, tt.entry)
			assert.Equal(t, tt.found, found)
			if tt.found {
				assert.Equal(t, tt.size, size)
			}
		})
	}
}
