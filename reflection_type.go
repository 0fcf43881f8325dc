// Copyright 2025 The GoGPU Authors
// SPDX-License-Identifier: MIT

package slang

import (
	"math"

	"github.com/gogpu/slang/native"
)

// Unbounded is the size reported for unsized arrays and for categories
// whose consumption has no fixed bound.
const Unbounded uint64 = math.MaxUint64

// Type is the abstract structure of a reflected type, independent of
// any layout.
type Type struct {
	view
	h native.TypeHandle
}

// Name returns the type name, or "" for unnamed types.
func (t Type) Name() (string, error) {
	s, ok := t.api().TypeName(t.h)
	return optionalName("type name", s, ok)
}

// Kind returns the structural kind.
func (t Type) Kind() (TypeKind, error) {
	return TypeKindFromNative(t.api().TypeKind(t.h))
}

// UserAttributes returns the user-defined attributes on the type.
func (t Type) UserAttributes() List[UserAttribute] {
	api := t.api()
	return newList("user attribute", api.TypeUserAttributeCount(t.h), func(i uint32) UserAttribute {
		return t.userAttribute(t.api().TypeUserAttributeByIndex(t.h, i))
	})
}

// FindUserAttributeByName looks up a user attribute on the type.
// A name that is not valid text never matches.
func (t Type) FindUserAttributeByName(name string) (UserAttribute, bool) {
	api := t.api()
	if checkText("find user attribute", name) != nil {
		return UserAttribute{}, false
	}
	h := api.TypeFindUserAttributeByName(t.h, name)
	if h == nil {
		return UserAttribute{}, false
	}
	return t.userAttribute(h), true
}

// Fields returns the fields of a struct type.
func (t Type) Fields() List[Variable] {
	api := t.api()
	return newList("field", api.TypeFieldCount(t.h), func(i uint32) Variable {
		return t.variable(t.api().TypeFieldByIndex(t.h, i))
	})
}

// ElementCount returns the element count of an array or vector type,
// or Unbounded for an unsized array.
func (t Type) ElementCount() uint64 {
	return t.api().TypeElementCount(t.h)
}

// ElementType returns the element type of an array, vector, matrix or
// buffer type.
func (t Type) ElementType() (Type, bool) {
	h := t.api().TypeElementType(t.h)
	if h == nil {
		return Type{}, false
	}
	return t.typ(h), true
}

// RowCount returns the row count of a matrix type.
func (t Type) RowCount() uint32 { return t.api().TypeRowCount(t.h) }

// ColumnCount returns the column count of a matrix or vector type.
func (t Type) ColumnCount() uint32 { return t.api().TypeColumnCount(t.h) }

// ScalarType returns the scalar element type.
func (t Type) ScalarType() (ScalarType, error) {
	return ScalarTypeFromNative(t.api().TypeScalarType(t.h))
}

// ResourceShape returns the shape of a resource type.
func (t Type) ResourceShape() (ResourceShape, error) {
	return ResourceShapeFromNative(t.api().TypeResourceShape(t.h))
}

// ResourceAccess returns the access mode of a resource type.
func (t Type) ResourceAccess() (ResourceAccess, error) {
	return ResourceAccessFromNative(t.api().TypeResourceAccess(t.h))
}

// ResourceResultType returns the type a resource yields when read.
func (t Type) ResourceResultType() (Type, bool) {
	h := t.api().TypeResourceResultType(t.h)
	if h == nil {
		return Type{}, false
	}
	return t.typ(h), true
}

// TypeLayout is a type laid out under specific layout rules.
type TypeLayout struct {
	view
	h native.TypeLayoutHandle
}

// Type returns the type being laid out.
func (l TypeLayout) Type() Type {
	return l.typ(l.api().TypeLayoutType(l.h))
}

// Kind returns the structural kind of the laid-out type.
func (l TypeLayout) Kind() (TypeKind, error) {
	return l.Type().Kind()
}

// Size returns how much of the category the type consumes: bytes for
// CategoryUniform, slots otherwise. It returns Unbounded for unsized
// arrays.
func (l TypeLayout) Size(category ParameterCategory) uint64 {
	return l.api().TypeLayoutSize(l.h, category.query())
}

// Fields returns the field layouts of a struct type layout.
func (l TypeLayout) Fields() List[VariableLayout] {
	api := l.api()
	t := api.TypeLayoutType(l.h)
	if t == nil {
		precondition("native reflection returned a null type")
	}
	return newList("field", api.TypeFieldCount(t), func(i uint32) VariableLayout {
		return l.variableLayout(l.api().TypeLayoutFieldByIndex(l.h, i))
	})
}

// ElementStride returns the distance between consecutive array elements
// within the category.
func (l TypeLayout) ElementStride(category ParameterCategory) uint64 {
	return l.api().TypeLayoutElementStride(l.h, category.query())
}

// ElementTypeLayout returns the element layout of an array or buffer.
func (l TypeLayout) ElementTypeLayout() (TypeLayout, bool) {
	h := l.api().TypeLayoutElementTypeLayout(l.h)
	if h == nil {
		return TypeLayout{}, false
	}
	return l.typeLayout(h), true
}

// ElementVarLayout returns the element variable layout of a buffer
// type, which carries the element's offsets.
func (l TypeLayout) ElementVarLayout() (VariableLayout, bool) {
	h := l.api().TypeLayoutElementVarLayout(l.h)
	if h == nil {
		return VariableLayout{}, false
	}
	return l.variableLayout(h), true
}

// ParameterCategory returns the single category the type occupies,
// CategoryMixed if it occupies several, or CategoryNone.
func (l TypeLayout) ParameterCategory() (ParameterCategory, error) {
	return ParameterCategoryFromNative(l.api().TypeLayoutParameterCategory(l.h))
}

// Categories returns every category the type occupies, in native order.
func (l TypeLayout) Categories() ([]ParameterCategory, error) {
	api := l.api()
	n := toInt(api.TypeLayoutCategoryCount(l.h))
	out := make([]ParameterCategory, 0, n)
	for i := range n {
		c, err := ParameterCategoryFromNative(api.TypeLayoutCategoryByIndex(l.h, toUint32(i)))
		if err != nil {
			return nil, err
		}
		out = append(out, c)
	}
	return out, nil
}

// MatrixLayoutMode returns the storage order of a matrix layout.
func (l TypeLayout) MatrixLayoutMode() (MatrixLayoutMode, error) {
	return MatrixLayoutModeFromNative(l.api().TypeLayoutMatrixLayoutMode(l.h))
}

// GenericParamIndex returns the index of the generic parameter this
// layout stands for, if any.
func (l TypeLayout) GenericParamIndex() (int, bool) {
	i := l.api().TypeLayoutGenericParamIndex(l.h)
	if i < 0 {
		return 0, false
	}
	return toInt(i), true
}
