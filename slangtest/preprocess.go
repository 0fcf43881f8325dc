// Copyright 2025 The GoGPU Authors
// SPDX-License-Identifier: MIT

package slangtest

import (
	"fmt"
	"path"
	"regexp"
	"strconv"
	"strings"
)

const maxIncludeDepth = 16

// diagnostics accumulates compiler output in the "path(line): kind: msg"
// form the real compiler uses.
type diagnostics struct {
	sb     strings.Builder
	errors int
}

func (d *diagnostics) errorf(file string, line int, format string, args ...any) {
	d.errors++
	fmt.Fprintf(&d.sb, "%s(%d): error: %s\n", file, line, fmt.Sprintf(format, args...))
}

// failf reports an error with no source location.
func (d *diagnostics) failf(format string, args ...any) {
	d.errors++
	fmt.Fprintf(&d.sb, "error: %s\n", fmt.Sprintf(format, args...))
}

func (d *diagnostics) warnf(file string, line int, format string, args ...any) {
	fmt.Fprintf(&d.sb, "%s(%d): warning: %s\n", file, line, fmt.Sprintf(format, args...))
}

func (d *diagnostics) String() string { return d.sb.String() }

// preprocessor expands one translation unit. It understands #include,
// #define, #undef, #ifdef, #ifndef, #else, #endif, #error and #warning;
// other directives pass through unchanged.
type preprocessor struct {
	open        func(file string) (string, bool)
	searchPaths []string
	defines     map[string]string
	diag        *diagnostics
}

type conditional struct {
	line     int
	active   bool
	parent   bool
	seenElse bool
}

// run expands text read from file and checks bracket balance of the
// lines it keeps.
func (p *preprocessor) run(file, text string, depth int) string {
	var out, own strings.Builder
	var stack []conditional
	active := func() bool { return len(stack) == 0 || stack[len(stack)-1].active }
	var ownLines []int

	for i, raw := range strings.Split(text, "\n") {
		line := i + 1
		trimmed := strings.TrimSpace(raw)
		if !strings.HasPrefix(trimmed, "#") {
			if active() {
				out.WriteString(raw)
				out.WriteByte('\n')
				own.WriteString(raw)
				own.WriteByte('\n')
				ownLines = append(ownLines, line)
			}
			continue
		}

		directive, rest, _ := strings.Cut(strings.TrimSpace(trimmed[1:]), " ")
		rest = strings.TrimSpace(rest)
		switch directive {
		case "ifdef", "ifndef":
			_, defined := p.defines[rest]
			cond := defined == (directive == "ifdef")
			stack = append(stack, conditional{line: line, active: active() && cond, parent: active()})
		case "else":
			if len(stack) == 0 {
				p.diag.errorf(file, line, "#else without #if")
				continue
			}
			top := &stack[len(stack)-1]
			if top.seenElse {
				p.diag.errorf(file, line, "#else after #else")
				continue
			}
			top.seenElse = true
			top.active = top.parent && !top.active
		case "endif":
			if len(stack) == 0 {
				p.diag.errorf(file, line, "#endif without #if")
				continue
			}
			stack = stack[:len(stack)-1]
		default:
			if !active() {
				continue
			}
			p.directive(&out, file, line, directive, rest, raw, depth)
		}
	}
	for _, c := range stack {
		p.diag.errorf(file, c.line, "unterminated conditional directive")
	}

	checkBrackets(p.diag, file, own.String(), ownLines)
	return out.String()
}

func (p *preprocessor) directive(out *strings.Builder, file string, line int, directive, rest, raw string, depth int) {
	switch directive {
	case "include":
		name := strings.Trim(rest, `"<>`)
		if depth >= maxIncludeDepth {
			p.diag.errorf(file, line, "#include nested too deeply")
			return
		}
		resolved, text, ok := p.resolve(file, name)
		if !ok {
			p.diag.errorf(file, line, "cannot open include file '%s'", name)
			return
		}
		out.WriteString(p.run(resolved, text, depth+1))
	case "define":
		key, value, _ := strings.Cut(rest, " ")
		p.defines[key] = strings.TrimSpace(value)
	case "undef":
		delete(p.defines, rest)
	case "error":
		p.diag.errorf(file, line, "#error %s", rest)
	case "warning":
		p.diag.warnf(file, line, "#warning %s", rest)
	default:
		out.WriteString(raw)
		out.WriteByte('\n')
	}
}

// resolve finds an include relative to the including file, then along
// the search paths.
func (p *preprocessor) resolve(from, name string) (string, string, bool) {
	candidates := []string{name}
	if !path.IsAbs(name) {
		candidates = []string{path.Join(path.Dir(from), name)}
		for _, dir := range p.searchPaths {
			candidates = append(candidates, path.Join(dir, name))
		}
	}
	for _, c := range candidates {
		if text, ok := p.open(c); ok {
			return c, text, true
		}
	}
	return "", "", false
}

var closers = map[byte]byte{')': '(', ']': '[', '}': '{'}

// checkBrackets reports the first unbalanced bracket in text. lines maps
// each line of text back to its line in file.
func checkBrackets(diag *diagnostics, file, text string, lines []int) {
	type open struct {
		c    byte
		line int
	}
	var stack []open
	inBlock := false
	lineOf := func(i int) int {
		if i < len(lines) {
			return lines[i]
		}
		return 0
	}

	for i, src := range strings.Split(text, "\n") {
		line := lineOf(i)
		inString := false
		for j := 0; j < len(src); j++ {
			c := src[j]
			switch {
			case inBlock:
				if c == '*' && j+1 < len(src) && src[j+1] == '/' {
					inBlock = false
					j++
				}
			case inString:
				if c == '\\' {
					j++
				} else if c == '"' {
					inString = false
				}
			case c == '/' && j+1 < len(src) && src[j+1] == '/':
				j = len(src)
			case c == '/' && j+1 < len(src) && src[j+1] == '*':
				inBlock = true
				j++
			case c == '"':
				inString = true
			case c == '(' || c == '[' || c == '{':
				stack = append(stack, open{c: c, line: line})
			case c == ')' || c == ']' || c == '}':
				if len(stack) == 0 || stack[len(stack)-1].c != closers[c] {
					diag.errorf(file, line, "unexpected '%c'", c)
					return
				}
				stack = stack[:len(stack)-1]
			}
		}
	}
	if len(stack) > 0 {
		o := stack[len(stack)-1]
		diag.errorf(file, o.line, "unmatched '%c'", o.c)
	}
}

var (
	numthreadsRe = regexp.MustCompile(`numthreads\s*\(\s*(\d+)\s*,\s*(\d+)\s*,\s*(\d+)\s*\)`)
	localSizeRe  = regexp.MustCompile(`local_size_([xyz])\s*=\s*(\d+)`)
)

// findEntryPoint locates the definition of name in expanded unit text
// and the thread-group size declared for it: the nearest preceding
// [numthreads(x,y,z)], else GLSL local_size_* qualifiers, else 1,1,1.
func findEntryPoint(text, name string) (bool, [3]uint64) {
	def := regexp.MustCompile(`\b\w+\s+` + regexp.QuoteMeta(name) + `\s*\(`)
	loc := def.FindStringIndex(text)
	if loc == nil {
		return false, [3]uint64{}
	}

	size := [3]uint64{1, 1, 1}
	if all := numthreadsRe.FindAllStringSubmatchIndex(text[:loc[0]], -1); len(all) > 0 {
		m := all[len(all)-1]
		for i := range size {
			size[i] = parseDim(text[m[2+2*i]:m[3+2*i]])
		}
		return true, size
	}
	for _, m := range localSizeRe.FindAllStringSubmatch(text, -1) {
		size[m[1][0]-'x'] = parseDim(m[2])
	}
	return true, size
}

func parseDim(s string) uint64 {
	v, err := strconv.ParseUint(s, 10, 64)
	if err != nil {
		return 0
	}
	return v
}
