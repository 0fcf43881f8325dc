// Copyright 2025 The GoGPU Authors
// SPDX-License-Identifier: MIT

// Package snapshot copies a reflection graph into plain values.
//
// Reflection views borrow from their CompiledRequest and die with it. A
// Program taken from a Reflection owns its data, outlives the request,
// and encodes to JSON or MessagePack for tooling and golden tests:
//
//	p, err := snapshot.Take(compiled.Reflection())
//	compiled.Close()
//	err = p.Encode(os.Stdout, snapshot.FormatJSON)
package snapshot

import (
	"fmt"
	"slices"

	"github.com/gogpu/slang"
)

// maxDepth bounds type nesting. Layouts form a tree, so hitting it
// means the native graph is broken.
const maxDepth = 64

// Program is an owned copy of a reflection graph.
type Program struct {
	Parameters           []Parameter     `json:"parameters,omitempty" msgpack:"parameters,omitempty"`
	TypeParameters       []TypeParameter `json:"type_parameters,omitempty" msgpack:"type_parameters,omitempty"`
	EntryPoints          []EntryPoint    `json:"entry_points,omitempty" msgpack:"entry_points,omitempty"`
	GlobalConstantBuffer Buffer          `json:"global_constant_buffer" msgpack:"global_constant_buffer"`
}

// Buffer is the implicit constant buffer holding global uniforms.
type Buffer struct {
	Binding uint64 `json:"binding" msgpack:"binding"`
	Size    uint64 `json:"size" msgpack:"size"`
}

// Parameter is a variable layout: a shader parameter, struct field or
// entry point parameter.
type Parameter struct {
	Name          string     `json:"name" msgpack:"name"`
	Bindings      []Binding  `json:"bindings,omitempty" msgpack:"bindings,omitempty"`
	Semantic      string     `json:"semantic,omitempty" msgpack:"semantic,omitempty"`
	SemanticIndex uint64     `json:"semantic_index,omitempty" msgpack:"semantic_index,omitempty"`
	Shared        bool       `json:"shared,omitempty" msgpack:"shared,omitempty"`
	Attributes    []string   `json:"attributes,omitempty" msgpack:"attributes,omitempty"`
	Type          TypeLayout `json:"type" msgpack:"type"`
}

// Binding is a parameter's location in one category.
type Binding struct {
	Category slang.ParameterCategory `json:"category" msgpack:"category"`
	Offset   uint64                  `json:"offset" msgpack:"offset"`
	Space    uint64                  `json:"space" msgpack:"space"`
}

// Usage is how much of one category a type layout consumes.
type Usage struct {
	Category slang.ParameterCategory `json:"category" msgpack:"category"`
	Size     uint64                  `json:"size" msgpack:"size"`
}

// TypeLayout is a laid-out type. Fields that do not apply to the kind
// are left zero.
type TypeLayout struct {
	Name          string                 `json:"name,omitempty" msgpack:"name,omitempty"`
	Kind          slang.TypeKind         `json:"kind" msgpack:"kind"`
	Usage         []Usage                `json:"usage,omitempty" msgpack:"usage,omitempty"`
	Scalar        slang.ScalarType       `json:"scalar,omitempty" msgpack:"scalar,omitempty"`
	Rows          uint32                 `json:"rows,omitempty" msgpack:"rows,omitempty"`
	Columns       uint32                 `json:"columns,omitempty" msgpack:"columns,omitempty"`
	ElementCount  uint64                 `json:"element_count,omitempty" msgpack:"element_count,omitempty"`
	ElementStride []Usage                `json:"element_stride,omitempty" msgpack:"element_stride,omitempty"`
	MatrixLayout  slang.MatrixLayoutMode `json:"matrix_layout,omitempty" msgpack:"matrix_layout,omitempty"`
	GenericParam  *int                   `json:"generic_param,omitempty" msgpack:"generic_param,omitempty"`
	Resource      *Resource              `json:"resource,omitempty" msgpack:"resource,omitempty"`
	Attributes    []string               `json:"attributes,omitempty" msgpack:"attributes,omitempty"`
	Fields        []Parameter            `json:"fields,omitempty" msgpack:"fields,omitempty"`
	Element       *TypeLayout            `json:"element,omitempty" msgpack:"element,omitempty"`
}

// Resource describes a texture, buffer or other resource type.
type Resource struct {
	Shape      slang.ResourceShape  `json:"shape" msgpack:"shape"`
	Access     slang.ResourceAccess `json:"access" msgpack:"access"`
	ResultType string               `json:"result_type,omitempty" msgpack:"result_type,omitempty"`
}

// EntryPoint is a reflected entry point.
type EntryPoint struct {
	Name            string      `json:"name" msgpack:"name"`
	Stage           slang.Stage `json:"stage" msgpack:"stage"`
	ThreadGroupSize *[3]uint64  `json:"thread_group_size,omitempty" msgpack:"thread_group_size,omitempty"`
	SampleRate      bool        `json:"sample_rate,omitempty" msgpack:"sample_rate,omitempty"`
	Parameters      []Parameter `json:"parameters,omitempty" msgpack:"parameters,omitempty"`
}

// TypeParameter is a global generic type parameter.
type TypeParameter struct {
	Name  string `json:"name" msgpack:"name"`
	Index int    `json:"index" msgpack:"index"`
}

// Take copies r. The request r borrows from may be closed afterwards.
func Take(r slang.Reflection) (*Program, error) {
	p := &Program{
		GlobalConstantBuffer: Buffer{
			Binding: r.GlobalConstantBufferBinding(),
			Size:    r.GlobalConstantBufferSize(),
		},
	}
	for v := range r.Parameters().Values() {
		param, err := takeParameter(v, 0)
		if err != nil {
			return nil, err
		}
		p.Parameters = append(p.Parameters, param)
	}
	for tp := range r.TypeParameters().Values() {
		name, err := tp.Name()
		if err != nil {
			return nil, err
		}
		p.TypeParameters = append(p.TypeParameters, TypeParameter{Name: name, Index: tp.Index()})
	}
	for ep := range r.EntryPoints().Values() {
		e, err := takeEntryPoint(ep)
		if err != nil {
			return nil, err
		}
		p.EntryPoints = append(p.EntryPoints, e)
	}
	return p, nil
}

func takeEntryPoint(ep slang.EntryPoint) (EntryPoint, error) {
	name, err := ep.Name()
	if err != nil {
		return EntryPoint{}, err
	}
	stage, err := ep.Stage()
	if err != nil {
		return EntryPoint{}, fmt.Errorf("entry point %q: %w", name, err)
	}
	e := EntryPoint{Name: name, Stage: stage, SampleRate: ep.UsesAnySampleRateInput()}
	if stage == slang.StageCompute {
		size := ep.ComputeThreadGroupSize()
		e.ThreadGroupSize = &size
	}
	for v := range ep.Parameters().Values() {
		param, err := takeParameter(v, 0)
		if err != nil {
			return EntryPoint{}, fmt.Errorf("entry point %q: %w", name, err)
		}
		e.Parameters = append(e.Parameters, param)
	}
	return e, nil
}

func takeParameter(v slang.VariableLayout, depth int) (Parameter, error) {
	variable := v.Variable()
	name, err := variable.Name()
	if err != nil {
		return Parameter{}, err
	}
	semantic, err := v.SemanticName()
	if err != nil {
		return Parameter{}, fmt.Errorf("parameter %q: %w", name, err)
	}
	p := Parameter{
		Name:     name,
		Semantic: semantic,
		Shared:   variable.HasModifier(slang.ModifierShared),
	}
	if semantic != "" {
		p.SemanticIndex = v.SemanticIndex()
	}
	if p.Attributes, err = attributeNames(variable.UserAttributes()); err != nil {
		return Parameter{}, fmt.Errorf("parameter %q: %w", name, err)
	}

	cats, err := v.Categories()
	if err != nil {
		return Parameter{}, fmt.Errorf("parameter %q: %w", name, err)
	}
	for _, c := range cats {
		p.Bindings = append(p.Bindings, Binding{Category: c, Offset: v.Offset(c), Space: v.Space(c)})
	}

	if p.Type, err = takeTypeLayout(v.TypeLayout(), depth+1); err != nil {
		return Parameter{}, fmt.Errorf("parameter %q: %w", name, err)
	}
	return p, nil
}

// Kinds whose layout has an element layout.
var elementKinds = []slang.TypeKind{
	slang.TypeKindArray,
	slang.TypeKindConstantBuffer,
	slang.TypeKindParameterBlock,
	slang.TypeKindTextureBuffer,
	slang.TypeKindShaderStorageBuffer,
}

func takeTypeLayout(l slang.TypeLayout, depth int) (TypeLayout, error) {
	if depth > maxDepth {
		return TypeLayout{}, fmt.Errorf("type nesting deeper than %d", maxDepth)
	}
	t := l.Type()
	name, err := t.Name()
	if err != nil {
		return TypeLayout{}, err
	}
	kind, err := t.Kind()
	if err != nil {
		return TypeLayout{}, err
	}
	out := TypeLayout{Name: name, Kind: kind}

	cats, err := l.Categories()
	if err != nil {
		return TypeLayout{}, err
	}
	for _, c := range cats {
		out.Usage = append(out.Usage, Usage{Category: c, Size: l.Size(c)})
	}
	if i, ok := l.GenericParamIndex(); ok {
		out.GenericParam = &i
	}
	if out.Attributes, err = attributeNames(t.UserAttributes()); err != nil {
		return TypeLayout{}, err
	}

	switch kind {
	case slang.TypeKindScalar, slang.TypeKindVector, slang.TypeKindMatrix:
		if out.Scalar, err = t.ScalarType(); err != nil {
			return TypeLayout{}, err
		}
		if kind != slang.TypeKindScalar {
			out.Rows = t.RowCount()
			out.Columns = t.ColumnCount()
		}
		if kind == slang.TypeKindVector {
			out.ElementCount = t.ElementCount()
		}
		if kind == slang.TypeKindMatrix {
			if out.MatrixLayout, err = l.MatrixLayoutMode(); err != nil {
				return TypeLayout{}, err
			}
		}
	case slang.TypeKindArray:
		out.ElementCount = t.ElementCount()
		for _, u := range out.Usage {
			if stride := l.ElementStride(u.Category); stride != 0 {
				out.ElementStride = append(out.ElementStride, Usage{Category: u.Category, Size: stride})
			}
		}
	case slang.TypeKindResource:
		if out.Resource, err = takeResource(t); err != nil {
			return TypeLayout{}, err
		}
	case slang.TypeKindStruct:
		for f := range l.Fields().Values() {
			field, err := takeParameter(f, depth+1)
			if err != nil {
				return TypeLayout{}, err
			}
			out.Fields = append(out.Fields, field)
		}
	}

	if slices.Contains(elementKinds, kind) {
		if elem, ok := l.ElementTypeLayout(); ok {
			e, err := takeTypeLayout(elem, depth+1)
			if err != nil {
				return TypeLayout{}, err
			}
			out.Element = &e
		}
	}
	return out, nil
}

func takeResource(t slang.Type) (*Resource, error) {
	shape, err := t.ResourceShape()
	if err != nil {
		return nil, err
	}
	access, err := t.ResourceAccess()
	if err != nil {
		return nil, err
	}
	r := &Resource{Shape: shape, Access: access}
	if result, ok := t.ResourceResultType(); ok {
		if r.ResultType, err = result.Name(); err != nil {
			return nil, err
		}
	}
	return r, nil
}

func attributeNames(attrs slang.List[slang.UserAttribute]) ([]string, error) {
	var names []string
	for a := range attrs.Values() {
		name, err := a.Name()
		if err != nil {
			return nil, err
		}
		names = append(names, name)
	}
	return names, nil
}
