// Copyright 2025 The GoGPU Authors
// SPDX-License-Identifier: MIT

package slang

import "github.com/gogpu/slang/native"

// VariableLayout is a variable together with the binding locations the
// compiler assigned to it.
type VariableLayout struct {
	view
	h native.VariableLayoutHandle
}

// Variable returns the declared variable.
func (v VariableLayout) Variable() Variable {
	return v.variable(v.api().VariableLayoutVariable(v.h))
}

// TypeLayout returns the layout of the variable's type.
func (v VariableLayout) TypeLayout() TypeLayout {
	return v.typeLayout(v.api().VariableLayoutTypeLayout(v.h))
}

// Offset returns the variable's offset within the given category: a
// byte offset for CategoryUniform, a register or binding index for
// slot-based categories. A variable that does not occupy the category
// reports 0. Offset panics if category is not defined.
func (v VariableLayout) Offset(category ParameterCategory) uint64 {
	return v.api().VariableLayoutOffset(v.h, category.query())
}

// Space returns the register space or descriptor set for the category.
func (v VariableLayout) Space(category ParameterCategory) uint64 {
	return v.api().VariableLayoutSpace(v.h, category.query())
}

// Categories returns the categories the variable's type occupies. Query
// Offset and Space once per returned category.
func (v VariableLayout) Categories() ([]ParameterCategory, error) {
	return v.TypeLayout().Categories()
}

// SemanticName returns the varying semantic, or "" if none.
func (v VariableLayout) SemanticName() (string, error) {
	s, ok := v.api().VariableLayoutSemanticName(v.h)
	return optionalName("semantic name", s, ok)
}

// SemanticIndex returns the varying semantic index.
func (v VariableLayout) SemanticIndex() uint64 {
	return v.api().VariableLayoutSemanticIndex(v.h)
}

// Stage returns the stage a varying parameter belongs to.
func (v VariableLayout) Stage() (Stage, error) {
	return StageFromNative(v.api().VariableLayoutStage(v.h))
}

// BindingIndex returns the offset in the first category the variable's
// type occupies. Prefer Offset with an explicit category when a variable
// may occupy several.
func (v VariableLayout) BindingIndex() uint32 {
	return v.api().ParameterBindingIndex(v.h)
}

// BindingSpace returns the space in the first category the variable's
// type occupies.
func (v VariableLayout) BindingSpace() uint32 {
	return v.api().ParameterBindingSpace(v.h)
}

// Variable is a declared variable, field or parameter.
type Variable struct {
	view
	h native.VariableHandle
}

// Name returns the variable name.
func (v Variable) Name() (string, error) {
	s, ok := v.api().VariableName(v.h)
	return optionalName("variable name", s, ok)
}

// Type returns the declared type.
func (v Variable) Type() Type {
	return v.typ(v.api().VariableType(v.h))
}

// HasModifier reports whether the declaration carries m.
func (v Variable) HasModifier(m Modifier) bool {
	return v.api().VariableFindModifier(v.h, m.Native())
}

// UserAttributes returns the user-defined attributes on the declaration.
func (v Variable) UserAttributes() List[UserAttribute] {
	api := v.api()
	return newList("user attribute", api.VariableUserAttributeCount(v.h), func(i uint32) UserAttribute {
		return v.userAttribute(v.api().VariableUserAttributeByIndex(v.h, i))
	})
}

// FindUserAttributeByName looks up a user attribute on the declaration.
// A name that is not valid text never matches.
func (v Variable) FindUserAttributeByName(name string) (UserAttribute, bool) {
	api := v.api()
	if checkText("find user attribute", name) != nil {
		return UserAttribute{}, false
	}
	// The native lookup resolves the attribute name in the global session.
	h := api.VariableFindUserAttributeByName(v.h, v.c.session.h, name)
	if h == nil {
		return UserAttribute{}, false
	}
	return v.userAttribute(h), true
}
