// Copyright 2025 The GoGPU Authors
// SPDX-License-Identifier: MIT

//go:build cgo && slang

// Package cslang binds package native to libslang through cgo.
//
// Importing the package registers the "slang" backend, which becomes the
// default used by slang.NewSession:
//
//	import _ "github.com/gogpu/slang/native/cslang"
//
// Builds need the slang build tag and libslang with its headers on the
// compiler's search paths.
package cslang

// #cgo LDFLAGS: -lslang
// #include <stdlib.h>
// #include <string.h>
// #include <slang.h>
import "C"

import (
	"unsafe"

	"fortio.org/safecast"

	"github.com/gogpu/slang/native"
)

func init() {
	native.Register("slang", API{})
}

// API calls libslang directly. It holds no state.
type API struct{}

var _ native.API = API{}

func session(s native.SessionHandle) *C.SlangSession { return (*C.SlangSession)(s) }

func request(r native.RequestHandle) *C.SlangCompileRequest { return (*C.SlangCompileRequest)(r) }

func reflection(r native.ReflectionHandle) *C.SlangReflection { return (*C.SlangReflection)(r) }

func typ(t native.TypeHandle) *C.SlangReflectionType { return (*C.SlangReflectionType)(t) }

func typeLayout(t native.TypeLayoutHandle) *C.SlangReflectionTypeLayout {
	return (*C.SlangReflectionTypeLayout)(t)
}

func variable(v native.VariableHandle) *C.SlangReflectionVariable {
	return (*C.SlangReflectionVariable)(v)
}

func variableLayout(v native.VariableLayoutHandle) *C.SlangReflectionVariableLayout {
	return (*C.SlangReflectionVariableLayout)(v)
}

func entryPoint(e native.EntryPointHandle) *C.SlangReflectionEntryPoint {
	return (*C.SlangReflectionEntryPoint)(e)
}

func typeParameter(p native.TypeParameterHandle) *C.SlangReflectionTypeParameter {
	return (*C.SlangReflectionTypeParameter)(p)
}

func userAttribute(a native.UserAttributeHandle) *C.SlangReflectionUserAttribute {
	return (*C.SlangReflectionUserAttribute)(a)
}

// cstring allocates a C copy of s. The caller frees it.
func cstring(s string) *C.char { return C.CString(s) }

func free(p *C.char) { C.free(unsafe.Pointer(p)) }

// optional converts a possibly null C string.
func optional(p *C.char) (string, bool) {
	if p == nil {
		return "", false
	}
	return C.GoString(p), true
}

func (API) CreateSession() native.SessionHandle {
	return native.SessionHandle(C.spCreateSession(nil))
}

func (API) DestroySession(s native.SessionHandle) {
	C.spDestroySession(session(s))
}

func (API) CreateCompileRequest(s native.SessionHandle) native.RequestHandle {
	return native.RequestHandle(C.spCreateCompileRequest(session(s)))
}

func (API) DestroyCompileRequest(r native.RequestHandle) {
	C.spDestroyCompileRequest(request(r))
}

func (API) SetCodeGenTarget(r native.RequestHandle, target int32) {
	C.spSetCodeGenTarget(request(r), C.SlangCompileTarget(target))
}

func (API) AddSearchPath(r native.RequestHandle, path string) {
	p := cstring(path)
	defer free(p)
	C.spAddSearchPath(request(r), p)
}

func (API) AddPreprocessorDefine(r native.RequestHandle, key, value string) {
	k, v := cstring(key), cstring(value)
	defer free(k)
	defer free(v)
	C.spAddPreprocessorDefine(request(r), k, v)
}

func (API) AddTranslationUnit(r native.RequestHandle, language int32, name string) int32 {
	var n *C.char
	if name != "" {
		n = cstring(name)
		defer free(n)
	}
	return int32(C.spAddTranslationUnit(request(r), C.SlangSourceLanguage(language), n))
}

func (API) AddTranslationUnitSourceFile(r native.RequestHandle, unit int32, path string) {
	p := cstring(path)
	defer free(p)
	C.spAddTranslationUnitSourceFile(request(r), C.int(unit), p)
}

func (API) AddTranslationUnitSourceString(r native.RequestHandle, unit int32, path, source string) {
	p, s := cstring(path), cstring(source)
	defer free(p)
	defer free(s)
	C.spAddTranslationUnitSourceString(request(r), C.int(unit), p, s)
}

func (API) AddEntryPoint(r native.RequestHandle, unit int32, name string, stage uint32) int32 {
	n := cstring(name)
	defer free(n)
	return int32(C.spAddEntryPoint(request(r), C.int(unit), n, C.SlangStage(stage)))
}

func (API) Compile(r native.RequestHandle) int32 {
	return int32(C.spCompile(request(r)))
}

func (API) DiagnosticOutput(r native.RequestHandle) []byte {
	p := C.spGetDiagnosticOutput(request(r))
	if p == nil {
		return nil
	}
	return C.GoBytes(unsafe.Pointer(p), C.int(C.strlen(p)))
}

func (API) EntryPointCode(r native.RequestHandle, ep int32) []byte {
	var size C.size_t
	p := C.spGetEntryPointCode(request(r), C.int(ep), &size)
	if p == nil {
		return nil
	}
	n, err := safecast.Conv[int](uint64(size))
	if err != nil {
		panic("cslang: entry point code larger than the address space")
	}
	return unsafe.Slice((*byte)(p), n)
}

func (API) GetReflection(r native.RequestHandle) native.ReflectionHandle {
	return native.ReflectionHandle(C.spGetReflection(request(r)))
}
