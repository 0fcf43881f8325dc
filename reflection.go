// Copyright 2025 The GoGPU Authors
// SPDX-License-Identifier: MIT

package slang

import "github.com/gogpu/slang/native"

// Reflection is the root of a compiled request's reflection graph.
//
// Reflection and every view reached from it (Type, TypeLayout,
// Variable, VariableLayout, EntryPoint, TypeParameter, UserAttribute)
// are read-only borrows of the CompiledRequest. They are small values,
// cheap to copy, and panic if used after the request is closed.
type Reflection struct {
	view
	h native.ReflectionHandle
}

// Parameters returns the global shader parameters.
func (r Reflection) Parameters() List[VariableLayout] {
	api := r.api()
	return newList("parameter", api.ReflectionParameterCount(r.h), func(i uint32) VariableLayout {
		return r.variableLayout(r.api().ReflectionParameterByIndex(r.h, i))
	})
}

// TypeParameters returns the global generic type parameters.
func (r Reflection) TypeParameters() List[TypeParameter] {
	api := r.api()
	return newList("type parameter", api.ReflectionTypeParameterCount(r.h), func(i uint32) TypeParameter {
		return r.typeParameter(r.api().ReflectionTypeParameterByIndex(r.h, i))
	})
}

// EntryPoints returns the entry points in declaration order.
func (r Reflection) EntryPoints() List[EntryPoint] {
	api := r.api()
	return newList("entry point", api.ReflectionEntryPointCount(r.h), func(i uint32) EntryPoint {
		return r.entryPoint(r.api().ReflectionEntryPointByIndex(r.h, uint64(i)))
	})
}

// FindTypeParameterByName looks up a global type parameter.
// A name that is not valid text never matches.
func (r Reflection) FindTypeParameterByName(name string) (TypeParameter, bool) {
	api := r.api()
	if checkText("find type parameter", name) != nil {
		return TypeParameter{}, false
	}
	h := api.ReflectionFindTypeParameter(r.h, name)
	if h == nil {
		return TypeParameter{}, false
	}
	return r.typeParameter(h), true
}

// FindTypeByName looks up a type by name.
// A name that is not valid text never matches.
func (r Reflection) FindTypeByName(name string) (Type, bool) {
	api := r.api()
	if checkText("find type", name) != nil {
		return Type{}, false
	}
	h := api.ReflectionFindTypeByName(r.h, name)
	if h == nil {
		return Type{}, false
	}
	return r.typ(h), true
}

// FindEntryPointByName looks up an entry point by name.
// A name that is not valid text never matches.
func (r Reflection) FindEntryPointByName(name string) (EntryPoint, bool) {
	api := r.api()
	if checkText("find entry point", name) != nil {
		return EntryPoint{}, false
	}
	h := api.ReflectionFindEntryPointByName(r.h, name)
	if h == nil {
		return EntryPoint{}, false
	}
	return r.entryPoint(h), true
}

// TypeLayout lays out t under the given rules.
func (r Reflection) TypeLayout(t Type, rules LayoutRules) TypeLayout {
	api := r.api()
	t.tok.check()
	if t.c != r.c {
		precondition("type belongs to another compiled request")
	}
	return r.typeLayout(api.ReflectionTypeLayout(r.h, t.h, rules.Native()))
}

// GlobalConstantBufferBinding returns the binding of the implicit
// constant buffer that holds global uniforms.
func (r Reflection) GlobalConstantBufferBinding() uint64 {
	return r.api().ReflectionGlobalConstantBufferBinding(r.h)
}

// GlobalConstantBufferSize returns the size in bytes of the implicit
// global constant buffer.
func (r Reflection) GlobalConstantBufferSize() uint64 {
	return r.api().ReflectionGlobalConstantBufferSize(r.h)
}

// Constructors shared by every view; a nil handle is a broken graph.

func (v view) variableLayout(h native.VariableLayoutHandle) VariableLayout {
	if h == nil {
		precondition("native reflection returned a null variable layout")
	}
	return VariableLayout{view: v, h: h}
}

func (v view) variable(h native.VariableHandle) Variable {
	if h == nil {
		precondition("native reflection returned a null variable")
	}
	return Variable{view: v, h: h}
}

func (v view) typeLayout(h native.TypeLayoutHandle) TypeLayout {
	if h == nil {
		precondition("native reflection returned a null type layout")
	}
	return TypeLayout{view: v, h: h}
}

func (v view) typ(h native.TypeHandle) Type {
	if h == nil {
		precondition("native reflection returned a null type")
	}
	return Type{view: v, h: h}
}

func (v view) entryPoint(h native.EntryPointHandle) EntryPoint {
	if h == nil {
		precondition("native reflection returned a null entry point")
	}
	return EntryPoint{view: v, h: h}
}

func (v view) typeParameter(h native.TypeParameterHandle) TypeParameter {
	if h == nil {
		precondition("native reflection returned a null type parameter")
	}
	return TypeParameter{view: v, h: h}
}

func (v view) userAttribute(h native.UserAttributeHandle) UserAttribute {
	if h == nil {
		precondition("native reflection returned a null user attribute")
	}
	return UserAttribute{view: v, h: h}
}

// optionalName decodes a native name that may be null; null becomes "".
func optionalName(op string, s string, ok bool) (string, error) {
	if !ok {
		return "", nil
	}
	return decodeText(op, []byte(s))
}
