// Copyright 2025 The GoGPU Authors
// SPDX-License-Identifier: MIT

package slangtest

// The fixture types describe a reflection graph. Field values are raw
// slang.h integers (see package native) so fixtures can also hold values
// the binding must reject. Pointers to fixture nodes are the handles the
// backend hands out, so one node reached along two paths yields the same
// handle.

// Program is the reflection graph reported for compiled requests.
type Program struct {
	Parameters     []*VarLayout
	TypeParameters []*TypeParameter

	// EntryPoints supplies parameters and flags for entry points found
	// by name in the compiled source. Entry points listed here but never
	// declared on the request are reported only when the request
	// declared none.
	EntryPoints []*EntryPoint

	// Types are findable by name in addition to parameter types.
	Types []*Type

	GlobalConstantBufferBinding uint64
	GlobalConstantBufferSize    uint64
}

// Type is an abstract type.
type Type struct {
	Name         string // "" reports a null name
	Kind         uint32
	Fields       []*Var
	ElementCount uint64
	Element      *Type
	Rows         uint32
	Columns      uint32
	Scalar       uint32
	Shape        uint32
	Access       uint32
	ResultType   *Type
	Attributes   []*Attribute
}

// Var is a declared variable or field.
type Var struct {
	Name       string
	Type       *Type
	Modifiers  []uint32
	Attributes []*Attribute
}

// Usage is the amount of one parameter category a layout consumes.
type Usage struct {
	Category uint32
	Size     uint64
	Stride   uint64
}

// Layout is a type layout.
type Layout struct {
	Type         *Type
	Usage        []Usage
	Fields       []*VarLayout
	Element      *Layout
	ElementVar   *VarLayout
	MatrixLayout uint32

	// GenericParam is the generic parameter index plus one; zero means
	// the layout is not a generic parameter.
	GenericParam int32
}

// Binding is the location of a variable in one parameter category.
type Binding struct {
	Category uint32
	Offset   uint64
	Space    uint64
}

// VarLayout is a variable layout.
type VarLayout struct {
	Var           *Var
	Layout        *Layout
	Bindings      []Binding
	Semantic      string
	SemanticIndex uint64
	Stage         uint32
}

// EntryPoint is an entry point.
type EntryPoint struct {
	Name            string
	Stage           uint32
	Parameters      []*VarLayout
	ThreadGroupSize [3]uint64
	SampleRate      bool
}

// TypeParameter is a global generic type parameter.
type TypeParameter struct {
	Name  string
	Index uint32
}

// Attribute is a user attribute.
type Attribute struct {
	Name string
}

// Param is shorthand for a global parameter of type t occupying the
// given bindings. The layout consumes one slot of each binding's
// category.
func Param(name string, t *Type, bindings ...Binding) *VarLayout {
	l := &Layout{Type: t}
	for _, b := range bindings {
		l.Usage = append(l.Usage, Usage{Category: b.Category, Size: 1})
	}
	return &VarLayout{
		Var:      &Var{Name: name, Type: t},
		Layout:   l,
		Bindings: bindings,
	}
}
