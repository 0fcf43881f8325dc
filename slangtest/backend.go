// Copyright 2025 The GoGPU Authors
// SPDX-License-Identifier: MIT

// Package slangtest simulates the Slang compiler behind the native
// handle protocol.
//
// Backend implements native.API entirely in Go. It keeps strict handle
// accounting (every create must be matched by exactly one destroy; a
// second destroy or any use after destroy panics), journals every call,
// and compiles a small, predictable subset of shader source:
//
//   - a preprocessor with #include (relative, then search paths),
//     #define, #undef, #ifdef, #ifndef, #else, #endif, #error and
//     #warning;
//   - a bracket-balance syntax check with "path(line): error: ..."
//     diagnostics;
//   - entry point discovery by function name, with thread-group sizes
//     taken from [numthreads(x,y,z)] or GLSL local_size_* qualifiers;
//   - deterministic code generation for SPIR-V (binary and assembly),
//     GLSL and HLSL.
//
// Reflection is driven by a Program fixture, merged with the entry
// points the compile discovered.
package slangtest

import (
	"fmt"
	"maps"
	"path"
	"slices"
	"sync"
	"unsafe"

	"github.com/gogpu/slang/native"
)

// resultFail is SLANG_FAIL.
const resultFail int32 = -2147467259

// Faults injects native misbehavior.
type Faults struct {
	// NullSession makes CreateSession return a null handle.
	NullSession bool

	// NullRequest makes CreateCompileRequest return a null handle.
	NullRequest bool

	// InvalidDiagnostics appends bytes that are not valid UTF-8 to every
	// diagnostic output.
	InvalidDiagnostics bool
}

// Backend is an in-process native.API. It is safe for concurrent use.
type Backend struct {
	mu        sync.Mutex
	files     map[string]string
	program   *Program
	faults    Faults
	calls     []string
	live      map[unsafe.Pointer]string
	dead      map[unsafe.Pointer]string
	created   int
	destroyed int
}

var _ native.API = (*Backend)(nil)

// New returns an empty backend.
func New() *Backend {
	return &Backend{
		files: make(map[string]string),
		live:  make(map[unsafe.Pointer]string),
		dead:  make(map[unsafe.Pointer]string),
	}
}

// AddFile adds a file to the virtual file system read by source-file
// translation units and #include.
func (b *Backend) AddFile(file, text string) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.files[path.Clean(file)] = text
}

// SetProgram sets the reflection fixture used by subsequent compiles.
func (b *Backend) SetProgram(p *Program) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.program = p
}

// SetFaults sets the injected faults.
func (b *Backend) SetFaults(f Faults) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.faults = f
}

// Calls returns the names of the native functions called so far.
func (b *Backend) Calls() []string {
	b.mu.Lock()
	defer b.mu.Unlock()
	return slices.Clone(b.calls)
}

// Called reports whether the native function was called.
func (b *Backend) Called(name string) bool {
	return slices.Contains(b.Calls(), name)
}

// ResetCalls clears the call journal.
func (b *Backend) ResetCalls() {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.calls = nil
}

// Live returns the number of handles created and not yet destroyed.
func (b *Backend) Live() int {
	b.mu.Lock()
	defer b.mu.Unlock()
	return len(b.live)
}

// Created returns the number of handles ever created.
func (b *Backend) Created() int {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.created
}

// Destroyed returns the number of handles destroyed.
func (b *Backend) Destroyed() int {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.destroyed
}

type session struct{}

type unit struct {
	language int32
	name     string
	sources  []source
}

type source struct {
	file   string
	text   string
	onDisk bool
}

type request struct {
	session     *session
	target      int32
	searchPaths []string
	defines     map[string]string
	units       []*unit
	entryPoints []entryPointDecl

	compiled   bool
	diag       []byte
	code       [][]byte
	reflection *reflection
}

type entryPointDecl struct {
	unit  int32
	name  string
	stage uint32
}

// enter locks b and journals a call. Callers defer b.mu.Unlock.
func (b *Backend) enter(name string) {
	b.mu.Lock()
	b.calls = append(b.calls, name)
}

func (b *Backend) create(p unsafe.Pointer, kind string) {
	b.live[p] = kind
	b.created++
}

func (b *Backend) destroy(p unsafe.Pointer, kind string) {
	if p == nil {
		panic("slangtest: destroy of null " + kind)
	}
	if k, ok := b.dead[p]; ok {
		panic("slangtest: double destroy of " + k)
	}
	if k, ok := b.live[p]; !ok || k != kind {
		panic(fmt.Sprintf("slangtest: destroy of unknown %s handle", kind))
	}
	delete(b.live, p)
	b.dead[p] = kind
	b.destroyed++
}

func (b *Backend) check(p unsafe.Pointer, kind string) {
	if p == nil {
		panic("slangtest: null " + kind + " handle")
	}
	if _, ok := b.dead[p]; ok {
		panic("slangtest: use of destroyed " + kind)
	}
	if k, ok := b.live[p]; !ok || k != kind {
		panic(fmt.Sprintf("slangtest: unknown %s handle", kind))
	}
}

func (b *Backend) session(h native.SessionHandle) *session {
	b.check(unsafe.Pointer(h), "session")
	return (*session)(unsafe.Pointer(h))
}

func (b *Backend) request(h native.RequestHandle) *request {
	b.check(unsafe.Pointer(h), "compile request")
	return (*request)(unsafe.Pointer(h))
}

func (b *Backend) CreateSession() native.SessionHandle {
	b.enter("spCreateSession")
	defer b.mu.Unlock()
	if b.faults.NullSession {
		return nil
	}
	s := &session{}
	b.create(unsafe.Pointer(s), "session")
	return native.SessionHandle(unsafe.Pointer(s))
}

func (b *Backend) DestroySession(s native.SessionHandle) {
	b.enter("spDestroySession")
	defer b.mu.Unlock()
	ss := (*session)(unsafe.Pointer(s))
	for p, kind := range b.live {
		if kind == "compile request" && (*request)(p).session == ss {
			panic("slangtest: session destroyed with live compile requests")
		}
	}
	b.destroy(unsafe.Pointer(s), "session")
}

func (b *Backend) CreateCompileRequest(s native.SessionHandle) native.RequestHandle {
	b.enter("spCreateCompileRequest")
	defer b.mu.Unlock()
	ss := b.session(s)
	if b.faults.NullRequest {
		return nil
	}
	r := &request{session: ss, defines: make(map[string]string)}
	b.create(unsafe.Pointer(r), "compile request")
	return native.RequestHandle(unsafe.Pointer(r))
}

func (b *Backend) DestroyCompileRequest(r native.RequestHandle) {
	b.enter("spDestroyCompileRequest")
	defer b.mu.Unlock()
	b.destroy(unsafe.Pointer(r), "compile request")
}

func (b *Backend) SetCodeGenTarget(r native.RequestHandle, target int32) {
	b.enter("spSetCodeGenTarget")
	defer b.mu.Unlock()
	b.request(r).target = target
}

func (b *Backend) AddSearchPath(r native.RequestHandle, dir string) {
	b.enter("spAddSearchPath")
	defer b.mu.Unlock()
	req := b.request(r)
	req.searchPaths = append(req.searchPaths, path.Clean(dir))
}

func (b *Backend) AddPreprocessorDefine(r native.RequestHandle, key, value string) {
	b.enter("spAddPreprocessorDefine")
	defer b.mu.Unlock()
	b.request(r).defines[key] = value
}

func (b *Backend) AddTranslationUnit(r native.RequestHandle, language int32, name string) int32 {
	b.enter("spAddTranslationUnit")
	defer b.mu.Unlock()
	req := b.request(r)
	req.units = append(req.units, &unit{language: language, name: name})
	return int32(len(req.units) - 1)
}

func (b *Backend) unit(req *request, index int32) *unit {
	if index < 0 || int(index) >= len(req.units) {
		panic(fmt.Sprintf("slangtest: translation unit index %d out of range", index))
	}
	return req.units[index]
}

func (b *Backend) AddTranslationUnitSourceFile(r native.RequestHandle, unitIndex int32, file string) {
	b.enter("spAddTranslationUnitSourceFile")
	defer b.mu.Unlock()
	u := b.unit(b.request(r), unitIndex)
	u.sources = append(u.sources, source{file: path.Clean(file), onDisk: true})
}

func (b *Backend) AddTranslationUnitSourceString(r native.RequestHandle, unitIndex int32, file, text string) {
	b.enter("spAddTranslationUnitSourceString")
	defer b.mu.Unlock()
	u := b.unit(b.request(r), unitIndex)
	u.sources = append(u.sources, source{file: file, text: text})
}

func (b *Backend) AddEntryPoint(r native.RequestHandle, unitIndex int32, name string, stage uint32) int32 {
	b.enter("spAddEntryPoint")
	defer b.mu.Unlock()
	req := b.request(r)
	b.unit(req, unitIndex)
	req.entryPoints = append(req.entryPoints, entryPointDecl{unit: unitIndex, name: name, stage: stage})
	return int32(len(req.entryPoints) - 1)
}

func (b *Backend) Compile(r native.RequestHandle) int32 {
	b.enter("spCompile")
	defer b.mu.Unlock()
	req := b.request(r)
	if req.compiled {
		panic("slangtest: compile request compiled twice")
	}
	req.compiled = true

	diag := &diagnostics{}
	entryPoints := b.compile(req, diag)
	if diag.errors == 0 {
		var params []*VarLayout
		if b.program != nil {
			params = b.program.Parameters
		}
		for _, ep := range entryPoints {
			code, err := generate(req.target, ep, params)
			if err != nil {
				diag.failf("%v", err)
				break
			}
			req.code = append(req.code, code)
		}
	}

	req.diag = []byte(diag.String())
	if b.faults.InvalidDiagnostics {
		req.diag = append(req.diag, 0xff, 0xfe, '\n')
	}
	if diag.errors > 0 {
		req.code = nil
		return resultFail
	}
	req.reflection = newReflection(b.program, entryPoints)
	return 0
}

// compile preprocesses every unit and resolves the declared entry
// points.
func (b *Backend) compile(req *request, diag *diagnostics) []*EntryPoint {
	expanded := make([]string, len(req.units))
	for i, u := range req.units {
		if len(u.sources) == 0 {
			diag.failf("translation unit %d (%s) has no source", i, u.name)
			continue
		}
		pp := &preprocessor{
			open: func(file string) (string, bool) {
				text, ok := b.files[path.Clean(file)]
				return text, ok
			},
			searchPaths: req.searchPaths,
			defines:     maps.Clone(req.defines),
			diag:        diag,
		}
		for _, src := range u.sources {
			text := src.text
			if src.onDisk {
				var ok bool
				if text, ok = b.files[src.file]; !ok {
					diag.failf("cannot open file '%s'", src.file)
					continue
				}
			}
			expanded[i] += pp.run(src.file, text, 0)
		}
	}

	var fixtures map[string]*EntryPoint
	if b.program != nil {
		fixtures = make(map[string]*EntryPoint, len(b.program.EntryPoints))
		for _, ep := range b.program.EntryPoints {
			fixtures[ep.Name] = ep
		}
	}

	eps := make([]*EntryPoint, 0, len(req.entryPoints))
	for _, decl := range req.entryPoints {
		u := req.units[decl.unit]
		found, size := findEntryPoint(expanded[decl.unit], decl.name)
		if !found {
			diag.failf("entry point '%s' not found in translation unit %d (%s)", decl.name, decl.unit, u.name)
			continue
		}
		ep := &EntryPoint{Name: decl.name, Stage: decl.stage}
		if f, ok := fixtures[decl.name]; ok {
			cp := *f
			ep = &cp
			ep.Stage = decl.stage
		}
		if decl.stage == native.StageCompute && ep.ThreadGroupSize == [3]uint64{} {
			ep.ThreadGroupSize = size
		}
		eps = append(eps, ep)
	}
	if len(req.entryPoints) == 0 && b.program != nil {
		eps = append(eps, b.program.EntryPoints...)
	}
	return eps
}

func (b *Backend) DiagnosticOutput(r native.RequestHandle) []byte {
	b.enter("spGetDiagnosticOutput")
	defer b.mu.Unlock()
	return b.request(r).diag
}

func (b *Backend) EntryPointCode(r native.RequestHandle, entryPoint int32) []byte {
	b.enter("spGetEntryPointCode")
	defer b.mu.Unlock()
	req := b.request(r)
	if entryPoint < 0 || int(entryPoint) >= len(req.code) {
		return nil
	}
	return req.code[entryPoint]
}

func (b *Backend) GetReflection(r native.RequestHandle) native.ReflectionHandle {
	b.enter("spGetReflection")
	defer b.mu.Unlock()
	req := b.request(r)
	if req.reflection == nil {
		return nil
	}
	return native.ReflectionHandle(unsafe.Pointer(req.reflection))
}
