// Copyright 2025 The GoGPU Authors
// SPDX-License-Identifier: MIT

//go:build cgo && slang

package cslang

// #include <stdlib.h>
// #include <slang.h>
import "C"

import (
	"github.com/gogpu/slang/native"
)

func (API) ReflectionParameterCount(r native.ReflectionHandle) uint32 {
	return uint32(C.spReflection_GetParameterCount(reflection(r)))
}

func (API) ReflectionParameterByIndex(r native.ReflectionHandle, index uint32) native.VariableLayoutHandle {
	return native.VariableLayoutHandle(C.spReflection_GetParameterByIndex(reflection(r), C.unsigned(index)))
}

func (API) ReflectionTypeParameterCount(r native.ReflectionHandle) uint32 {
	return uint32(C.spReflection_GetTypeParameterCount(reflection(r)))
}

func (API) ReflectionTypeParameterByIndex(r native.ReflectionHandle, index uint32) native.TypeParameterHandle {
	return native.TypeParameterHandle(C.spReflection_GetTypeParameterByIndex(reflection(r), C.unsigned(index)))
}

func (API) ReflectionFindTypeParameter(r native.ReflectionHandle, name string) native.TypeParameterHandle {
	n := cstring(name)
	defer free(n)
	return native.TypeParameterHandle(C.spReflection_FindTypeParameter(reflection(r), n))
}

func (API) ReflectionFindTypeByName(r native.ReflectionHandle, name string) native.TypeHandle {
	n := cstring(name)
	defer free(n)
	return native.TypeHandle(C.spReflection_FindTypeByName(reflection(r), n))
}

func (API) ReflectionTypeLayout(r native.ReflectionHandle, t native.TypeHandle, rules uint32) native.TypeLayoutHandle {
	return native.TypeLayoutHandle(C.spReflection_GetTypeLayout(reflection(r), typ(t), C.SlangLayoutRules(rules)))
}

func (API) ReflectionEntryPointCount(r native.ReflectionHandle) uint64 {
	return uint64(C.spReflection_getEntryPointCount(reflection(r)))
}

func (API) ReflectionEntryPointByIndex(r native.ReflectionHandle, index uint64) native.EntryPointHandle {
	return native.EntryPointHandle(C.spReflection_getEntryPointByIndex(reflection(r), C.SlangUInt(index)))
}

func (API) ReflectionFindEntryPointByName(r native.ReflectionHandle, name string) native.EntryPointHandle {
	n := cstring(name)
	defer free(n)
	return native.EntryPointHandle(C.spReflection_findEntryPointByName(reflection(r), n))
}

func (API) ReflectionGlobalConstantBufferBinding(r native.ReflectionHandle) uint64 {
	return uint64(C.spReflection_getGlobalConstantBufferBinding(reflection(r)))
}

func (API) ReflectionGlobalConstantBufferSize(r native.ReflectionHandle) uint64 {
	return uint64(C.spReflection_getGlobalConstantBufferSize(reflection(r)))
}

// Variable layouts.

func (API) VariableLayoutVariable(v native.VariableLayoutHandle) native.VariableHandle {
	return native.VariableHandle(C.spReflectionVariableLayout_GetVariable(variableLayout(v)))
}

func (API) VariableLayoutTypeLayout(v native.VariableLayoutHandle) native.TypeLayoutHandle {
	return native.TypeLayoutHandle(C.spReflectionVariableLayout_GetTypeLayout(variableLayout(v)))
}

func (API) VariableLayoutOffset(v native.VariableLayoutHandle, category uint32) uint64 {
	return uint64(C.spReflectionVariableLayout_GetOffset(variableLayout(v), C.SlangParameterCategory(category)))
}

func (API) VariableLayoutSpace(v native.VariableLayoutHandle, category uint32) uint64 {
	return uint64(C.spReflectionVariableLayout_GetSpace(variableLayout(v), C.SlangParameterCategory(category)))
}

func (API) VariableLayoutSemanticName(v native.VariableLayoutHandle) (string, bool) {
	return optional(C.spReflectionVariableLayout_GetSemanticName(variableLayout(v)))
}

func (API) VariableLayoutSemanticIndex(v native.VariableLayoutHandle) uint64 {
	return uint64(C.spReflectionVariableLayout_GetSemanticIndex(variableLayout(v)))
}

func (API) VariableLayoutStage(v native.VariableLayoutHandle) uint32 {
	return uint32(C.spReflectionVariableLayout_getStage(variableLayout(v)))
}

func (API) ParameterBindingIndex(v native.VariableLayoutHandle) uint32 {
	return uint32(C.spReflectionParameter_GetBindingIndex(variableLayout(v)))
}

func (API) ParameterBindingSpace(v native.VariableLayoutHandle) uint32 {
	return uint32(C.spReflectionParameter_GetBindingSpace(variableLayout(v)))
}

// Variables.

func (API) VariableName(v native.VariableHandle) (string, bool) {
	return optional(C.spReflectionVariable_GetName(variable(v)))
}

func (API) VariableType(v native.VariableHandle) native.TypeHandle {
	return native.TypeHandle(C.spReflectionVariable_GetType(variable(v)))
}

func (API) VariableFindModifier(v native.VariableHandle, modifier uint32) bool {
	return C.spReflectionVariable_FindModifier(variable(v), C.SlangModifierID(modifier)) != nil
}

func (API) VariableUserAttributeCount(v native.VariableHandle) uint32 {
	return uint32(C.spReflectionVariable_GetUserAttributeCount(variable(v)))
}

func (API) VariableUserAttributeByIndex(v native.VariableHandle, index uint32) native.UserAttributeHandle {
	return native.UserAttributeHandle(C.spReflectionVariable_GetUserAttribute(variable(v), C.unsigned(index)))
}

func (API) VariableFindUserAttributeByName(v native.VariableHandle, s native.SessionHandle, name string) native.UserAttributeHandle {
	n := cstring(name)
	defer free(n)
	return native.UserAttributeHandle(C.spReflectionVariable_FindUserAttributeByName(variable(v), session(s), n))
}

// Type layouts.

func (API) TypeLayoutType(t native.TypeLayoutHandle) native.TypeHandle {
	return native.TypeHandle(C.spReflectionTypeLayout_GetType(typeLayout(t)))
}

func (API) TypeLayoutSize(t native.TypeLayoutHandle, category uint32) uint64 {
	return uint64(C.spReflectionTypeLayout_GetSize(typeLayout(t), C.SlangParameterCategory(category)))
}

func (API) TypeLayoutFieldByIndex(t native.TypeLayoutHandle, index uint32) native.VariableLayoutHandle {
	return native.VariableLayoutHandle(C.spReflectionTypeLayout_GetFieldByIndex(typeLayout(t), C.unsigned(index)))
}

func (API) TypeLayoutElementStride(t native.TypeLayoutHandle, category uint32) uint64 {
	return uint64(C.spReflectionTypeLayout_GetElementStride(typeLayout(t), C.SlangParameterCategory(category)))
}

func (API) TypeLayoutElementTypeLayout(t native.TypeLayoutHandle) native.TypeLayoutHandle {
	return native.TypeLayoutHandle(C.spReflectionTypeLayout_GetElementTypeLayout(typeLayout(t)))
}

func (API) TypeLayoutElementVarLayout(t native.TypeLayoutHandle) native.VariableLayoutHandle {
	return native.VariableLayoutHandle(C.spReflectionTypeLayout_GetElementVarLayout(typeLayout(t)))
}

func (API) TypeLayoutParameterCategory(t native.TypeLayoutHandle) uint32 {
	return uint32(C.spReflectionTypeLayout_GetParameterCategory(typeLayout(t)))
}

func (API) TypeLayoutCategoryCount(t native.TypeLayoutHandle) uint32 {
	return uint32(C.spReflectionTypeLayout_GetCategoryCount(typeLayout(t)))
}

func (API) TypeLayoutCategoryByIndex(t native.TypeLayoutHandle, index uint32) uint32 {
	return uint32(C.spReflectionTypeLayout_GetCategoryByIndex(typeLayout(t), C.unsigned(index)))
}

func (API) TypeLayoutMatrixLayoutMode(t native.TypeLayoutHandle) uint32 {
	return uint32(C.spReflectionTypeLayout_GetMatrixLayoutMode(typeLayout(t)))
}

func (API) TypeLayoutGenericParamIndex(t native.TypeLayoutHandle) int32 {
	return int32(C.spReflectionTypeLayout_getGenericParamIndex(typeLayout(t)))
}

// Types.

func (API) TypeName(t native.TypeHandle) (string, bool) {
	return optional(C.spReflectionType_GetName(typ(t)))
}

func (API) TypeKind(t native.TypeHandle) uint32 {
	return uint32(C.spReflectionType_GetKind(typ(t)))
}

func (API) TypeUserAttributeCount(t native.TypeHandle) uint32 {
	return uint32(C.spReflectionType_GetUserAttributeCount(typ(t)))
}

func (API) TypeUserAttributeByIndex(t native.TypeHandle, index uint32) native.UserAttributeHandle {
	return native.UserAttributeHandle(C.spReflectionType_GetUserAttribute(typ(t), C.unsigned(index)))
}

func (API) TypeFindUserAttributeByName(t native.TypeHandle, name string) native.UserAttributeHandle {
	n := cstring(name)
	defer free(n)
	return native.UserAttributeHandle(C.spReflectionType_FindUserAttributeByName(typ(t), n))
}

func (API) TypeFieldCount(t native.TypeHandle) uint32 {
	return uint32(C.spReflectionType_GetFieldCount(typ(t)))
}

func (API) TypeFieldByIndex(t native.TypeHandle, index uint32) native.VariableHandle {
	return native.VariableHandle(C.spReflectionType_GetFieldByIndex(typ(t), C.unsigned(index)))
}

func (API) TypeElementCount(t native.TypeHandle) uint64 {
	return uint64(C.spReflectionType_GetElementCount(typ(t)))
}

func (API) TypeElementType(t native.TypeHandle) native.TypeHandle {
	return native.TypeHandle(C.spReflectionType_GetElementType(typ(t)))
}

func (API) TypeRowCount(t native.TypeHandle) uint32 {
	return uint32(C.spReflectionType_GetRowCount(typ(t)))
}

func (API) TypeColumnCount(t native.TypeHandle) uint32 {
	return uint32(C.spReflectionType_GetColumnCount(typ(t)))
}

func (API) TypeScalarType(t native.TypeHandle) uint32 {
	return uint32(C.spReflectionType_GetScalarType(typ(t)))
}

func (API) TypeResourceShape(t native.TypeHandle) uint32 {
	return uint32(C.spReflectionType_GetResourceShape(typ(t)))
}

func (API) TypeResourceAccess(t native.TypeHandle) uint32 {
	return uint32(C.spReflectionType_GetResourceAccess(typ(t)))
}

func (API) TypeResourceResultType(t native.TypeHandle) native.TypeHandle {
	return native.TypeHandle(C.spReflectionType_GetResourceResultType(typ(t)))
}

// Entry points, type parameters and attributes.

func (API) EntryPointName(e native.EntryPointHandle) (string, bool) {
	return optional(C.spReflectionEntryPoint_getName(entryPoint(e)))
}

func (API) EntryPointParameterCount(e native.EntryPointHandle) uint32 {
	return uint32(C.spReflectionEntryPoint_getParameterCount(entryPoint(e)))
}

func (API) EntryPointParameterByIndex(e native.EntryPointHandle, index uint32) native.VariableLayoutHandle {
	return native.VariableLayoutHandle(C.spReflectionEntryPoint_getParameterByIndex(entryPoint(e), C.unsigned(index)))
}

func (API) EntryPointStage(e native.EntryPointHandle) uint32 {
	return uint32(C.spReflectionEntryPoint_getStage(entryPoint(e)))
}

func (API) EntryPointComputeThreadGroupSize(e native.EntryPointHandle) [3]uint64 {
	sizes := [3]C.SlangUInt{1, 1, 1}
	C.spReflectionEntryPoint_getComputeThreadGroupSize(entryPoint(e), 3, &sizes[0])
	return [3]uint64{uint64(sizes[0]), uint64(sizes[1]), uint64(sizes[2])}
}

func (API) EntryPointUsesAnySampleRateInput(e native.EntryPointHandle) bool {
	return C.spReflectionEntryPoint_usesAnySampleRateInput(entryPoint(e)) != 0
}

func (API) TypeParameterName(p native.TypeParameterHandle) (string, bool) {
	return optional(C.spReflectionTypeParameter_GetName(typeParameter(p)))
}

func (API) TypeParameterIndex(p native.TypeParameterHandle) uint32 {
	return uint32(C.spReflectionTypeParameter_GetIndex(typeParameter(p)))
}

func (API) UserAttributeName(a native.UserAttributeHandle) (string, bool) {
	return optional(C.spReflectionUserAttribute_GetName(userAttribute(a)))
}
