// Copyright 2025 The GoGPU Authors
// SPDX-License-Identifier: MIT

// Package native describes the handle protocol spoken by the Slang
// compiler's C interface.
//
// Every object the compiler hands out is an opaque pointer with no
// reference count. The interfaces in this package mirror the C entry
// points one to one: a Compiler creates and configures sessions and
// compile requests, and a Reflector answers queries against the
// reflection graph of a compiled request. Implementations perform no
// validation of their own; bounds and lifetime checks belong to the
// caller (package slang).
//
// Two implementations exist: package native/cslang links libslang
// through cgo, and package slangtest simulates the compiler in process.
package native

import "unsafe"

// Opaque handle types. A nil handle is the native null pointer.
type (
	// SessionHandle is a SlangSession*.
	SessionHandle unsafe.Pointer

	// RequestHandle is a SlangCompileRequest*.
	RequestHandle unsafe.Pointer

	// ReflectionHandle is a SlangReflection*.
	ReflectionHandle unsafe.Pointer

	// TypeHandle is a SlangReflectionType*.
	TypeHandle unsafe.Pointer

	// TypeLayoutHandle is a SlangReflectionTypeLayout*.
	TypeLayoutHandle unsafe.Pointer

	// VariableHandle is a SlangReflectionVariable*.
	VariableHandle unsafe.Pointer

	// VariableLayoutHandle is a SlangReflectionVariableLayout*
	// (also SlangReflectionParameter*).
	VariableLayoutHandle unsafe.Pointer

	// EntryPointHandle is a SlangReflectionEntryPoint*.
	EntryPointHandle unsafe.Pointer

	// TypeParameterHandle is a SlangReflectionTypeParameter*.
	TypeParameterHandle unsafe.Pointer

	// UserAttributeHandle is a SlangReflectionUserAttribute*.
	UserAttributeHandle unsafe.Pointer
)

// Compiler covers handle lifecycle, request configuration, compilation
// and output retrieval.
//
// Configuration calls report no error; failures surface from Compile.
type Compiler interface {
	CreateSession() SessionHandle
	DestroySession(s SessionHandle)

	CreateCompileRequest(s SessionHandle) RequestHandle
	DestroyCompileRequest(r RequestHandle)

	SetCodeGenTarget(r RequestHandle, target int32)
	AddSearchPath(r RequestHandle, path string)
	AddPreprocessorDefine(r RequestHandle, key, value string)

	// AddTranslationUnit returns the request-scoped unit index.
	AddTranslationUnit(r RequestHandle, language int32, name string) int32
	AddTranslationUnitSourceFile(r RequestHandle, unit int32, path string)
	AddTranslationUnitSourceString(r RequestHandle, unit int32, path, source string)

	// AddEntryPoint returns the request-scoped entry point index.
	AddEntryPoint(r RequestHandle, unit int32, name string, stage uint32) int32

	// Compile returns a SlangResult; negative values are failures.
	Compile(r RequestHandle) int32

	// DiagnosticOutput returns the accumulated diagnostic text as raw
	// bytes. The bytes are not guaranteed to be valid UTF-8.
	DiagnosticOutput(r RequestHandle) []byte

	// EntryPointCode returns generated code for an entry point. The
	// slice aliases memory owned by the request and is valid until the
	// request is destroyed.
	EntryPointCode(r RequestHandle, entryPoint int32) []byte

	GetReflection(r RequestHandle) ReflectionHandle
}

// Reflector answers queries against a reflection graph.
//
// Functions returning a name report ok=false when the native layer
// returns a null string.
type Reflector interface {
	ReflectionParameterCount(r ReflectionHandle) uint32
	ReflectionParameterByIndex(r ReflectionHandle, index uint32) VariableLayoutHandle
	ReflectionTypeParameterCount(r ReflectionHandle) uint32
	ReflectionTypeParameterByIndex(r ReflectionHandle, index uint32) TypeParameterHandle
	ReflectionFindTypeParameter(r ReflectionHandle, name string) TypeParameterHandle
	ReflectionFindTypeByName(r ReflectionHandle, name string) TypeHandle
	ReflectionTypeLayout(r ReflectionHandle, t TypeHandle, rules uint32) TypeLayoutHandle
	ReflectionEntryPointCount(r ReflectionHandle) uint64
	ReflectionEntryPointByIndex(r ReflectionHandle, index uint64) EntryPointHandle
	ReflectionFindEntryPointByName(r ReflectionHandle, name string) EntryPointHandle
	ReflectionGlobalConstantBufferBinding(r ReflectionHandle) uint64
	ReflectionGlobalConstantBufferSize(r ReflectionHandle) uint64

	VariableLayoutVariable(v VariableLayoutHandle) VariableHandle
	VariableLayoutTypeLayout(v VariableLayoutHandle) TypeLayoutHandle
	VariableLayoutOffset(v VariableLayoutHandle, category uint32) uint64
	VariableLayoutSpace(v VariableLayoutHandle, category uint32) uint64
	VariableLayoutSemanticName(v VariableLayoutHandle) (string, bool)
	VariableLayoutSemanticIndex(v VariableLayoutHandle) uint64
	VariableLayoutStage(v VariableLayoutHandle) uint32
	ParameterBindingIndex(v VariableLayoutHandle) uint32
	ParameterBindingSpace(v VariableLayoutHandle) uint32

	VariableName(v VariableHandle) (string, bool)
	VariableType(v VariableHandle) TypeHandle
	VariableFindModifier(v VariableHandle, modifier uint32) bool
	VariableUserAttributeCount(v VariableHandle) uint32
	VariableUserAttributeByIndex(v VariableHandle, index uint32) UserAttributeHandle
	VariableFindUserAttributeByName(v VariableHandle, s SessionHandle, name string) UserAttributeHandle

	TypeLayoutType(t TypeLayoutHandle) TypeHandle
	TypeLayoutSize(t TypeLayoutHandle, category uint32) uint64
	TypeLayoutFieldByIndex(t TypeLayoutHandle, index uint32) VariableLayoutHandle
	TypeLayoutElementStride(t TypeLayoutHandle, category uint32) uint64
	TypeLayoutElementTypeLayout(t TypeLayoutHandle) TypeLayoutHandle
	TypeLayoutElementVarLayout(t TypeLayoutHandle) VariableLayoutHandle
	TypeLayoutParameterCategory(t TypeLayoutHandle) uint32
	TypeLayoutCategoryCount(t TypeLayoutHandle) uint32
	TypeLayoutCategoryByIndex(t TypeLayoutHandle, index uint32) uint32
	TypeLayoutMatrixLayoutMode(t TypeLayoutHandle) uint32
	TypeLayoutGenericParamIndex(t TypeLayoutHandle) int32

	TypeName(t TypeHandle) (string, bool)
	TypeKind(t TypeHandle) uint32
	TypeUserAttributeCount(t TypeHandle) uint32
	TypeUserAttributeByIndex(t TypeHandle, index uint32) UserAttributeHandle
	TypeFindUserAttributeByName(t TypeHandle, name string) UserAttributeHandle
	TypeFieldCount(t TypeHandle) uint32
	TypeFieldByIndex(t TypeHandle, index uint32) VariableHandle
	TypeElementCount(t TypeHandle) uint64
	TypeElementType(t TypeHandle) TypeHandle
	TypeRowCount(t TypeHandle) uint32
	TypeColumnCount(t TypeHandle) uint32
	TypeScalarType(t TypeHandle) uint32
	TypeResourceShape(t TypeHandle) uint32
	TypeResourceAccess(t TypeHandle) uint32
	TypeResourceResultType(t TypeHandle) TypeHandle

	EntryPointName(e EntryPointHandle) (string, bool)
	EntryPointParameterCount(e EntryPointHandle) uint32
	EntryPointParameterByIndex(e EntryPointHandle, index uint32) VariableLayoutHandle
	EntryPointStage(e EntryPointHandle) uint32
	EntryPointComputeThreadGroupSize(e EntryPointHandle) [3]uint64
	EntryPointUsesAnySampleRateInput(e EntryPointHandle) bool

	TypeParameterName(p TypeParameterHandle) (string, bool)
	TypeParameterIndex(p TypeParameterHandle) uint32

	UserAttributeName(a UserAttributeHandle) (string, bool)
}

// API is the complete handle protocol.
type API interface {
	Compiler
	Reflector
}
