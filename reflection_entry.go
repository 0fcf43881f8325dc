// Copyright 2025 The GoGPU Authors
// SPDX-License-Identifier: MIT

package slang

import "github.com/gogpu/slang/native"

// EntryPoint is a reflected shader entry point.
type EntryPoint struct {
	view
	h native.EntryPointHandle
}

// Name returns the entry point function name.
func (e EntryPoint) Name() (string, error) {
	s, ok := e.api().EntryPointName(e.h)
	return optionalName("entry point name", s, ok)
}

// Parameters returns the entry point's parameters.
func (e EntryPoint) Parameters() List[VariableLayout] {
	api := e.api()
	return newList("entry point parameter", api.EntryPointParameterCount(e.h), func(i uint32) VariableLayout {
		return e.variableLayout(e.api().EntryPointParameterByIndex(e.h, i))
	})
}

// Stage returns the pipeline stage.
func (e EntryPoint) Stage() (Stage, error) {
	return StageFromNative(e.api().EntryPointStage(e.h))
}

// ComputeThreadGroupSize returns the declared thread-group size along
// x, y and z. Axes the compiler does not report, including every axis
// of a non-compute entry point, are 1.
func (e EntryPoint) ComputeThreadGroupSize() [3]uint64 {
	return e.api().EntryPointComputeThreadGroupSize(e.h)
}

// UsesAnySampleRateInput reports whether a fragment entry point reads
// any input at sample rate.
func (e EntryPoint) UsesAnySampleRateInput() bool {
	return e.api().EntryPointUsesAnySampleRateInput(e.h)
}

// VarLayout would return the layout of the entry point's implicit
// parameter block. This binding does not surface it.
func (e EntryPoint) VarLayout() (VariableLayout, error) {
	e.tok.check()
	return VariableLayout{}, unsupported("entry point var layout")
}

// ResultVarLayout would return the layout of the entry point's result.
// This binding does not surface it.
func (e EntryPoint) ResultVarLayout() (VariableLayout, error) {
	e.tok.check()
	return VariableLayout{}, unsupported("entry point result var layout")
}

// TypeParameter is a global generic type parameter.
type TypeParameter struct {
	view
	h native.TypeParameterHandle
}

// Name returns the parameter name.
func (p TypeParameter) Name() (string, error) {
	s, ok := p.api().TypeParameterName(p.h)
	return optionalName("type parameter name", s, ok)
}

// Index returns the parameter's position among the global type
// parameters.
func (p TypeParameter) Index() int {
	return toInt(p.api().TypeParameterIndex(p.h))
}

// Constraints would return the interface types the parameter is
// constrained by. This binding does not surface them.
func (p TypeParameter) Constraints() (List[Type], error) {
	p.tok.check()
	return List[Type]{}, unsupported("type parameter constraints")
}

// UserAttribute is a user-defined attribute attached to a declaration
// or type.
type UserAttribute struct {
	view
	h native.UserAttributeHandle
}

// Name returns the attribute name.
func (a UserAttribute) Name() (string, error) {
	s, ok := a.api().UserAttributeName(a.h)
	return optionalName("user attribute name", s, ok)
}

// ArgumentCount would return the number of attribute arguments.
// This binding does not surface attribute arguments yet.
func (a UserAttribute) ArgumentCount() (int, error) {
	a.tok.check()
	return 0, unsupported("user attribute argument count")
}

// ArgumentType would return the type of argument i.
func (a UserAttribute) ArgumentType(i int) (Type, error) {
	a.tok.check()
	return Type{}, unsupported("user attribute argument type")
}

// ArgumentInt would return argument i as an integer.
func (a UserAttribute) ArgumentInt(i int) (int64, error) {
	a.tok.check()
	return 0, unsupported("user attribute argument int")
}

// ArgumentFloat would return argument i as a float.
func (a UserAttribute) ArgumentFloat(i int) (float32, error) {
	a.tok.check()
	return 0, unsupported("user attribute argument float")
}
