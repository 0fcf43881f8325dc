// Copyright 2025 The GoGPU Authors
// SPDX-License-Identifier: MIT

package slangtest

import (
	"slices"
	"unsafe"

	"github.com/gogpu/slang/native"
)

// reflection is the graph behind a ReflectionHandle.
type reflection struct {
	program     Program
	entryPoints []*EntryPoint
	layouts     map[*Type]*Layout
}

func newReflection(p *Program, entryPoints []*EntryPoint) *reflection {
	r := &reflection{entryPoints: entryPoints, layouts: make(map[*Type]*Layout)}
	if p != nil {
		r.program = *p
	}
	for _, v := range r.program.Parameters {
		r.indexLayout(v.Layout)
	}
	return r
}

// indexLayout records fixture layouts so TypeLayout returns them for
// their types.
func (r *reflection) indexLayout(l *Layout) {
	if l == nil || l.Type == nil {
		return
	}
	if _, ok := r.layouts[l.Type]; ok {
		return
	}
	r.layouts[l.Type] = l
	for _, f := range l.Fields {
		r.indexLayout(f.Layout)
	}
	r.indexLayout(l.Element)
}

// at returns s[i] or the zero value when i is out of range, the way the
// C interface returns null.
func at[T any](s []T, i uint32) T {
	var zero T
	if uint64(i) >= uint64(len(s)) {
		return zero
	}
	return s[i]
}

func count[T any](s []T) uint32 { return uint32(len(s)) }

// optional reports "" as a null string.
func optional(s string) (string, bool) { return s, s != "" }

// reflectionOf locks b and journals a reflection query. Callers defer
// b.mu.Unlock before calling it.
func (b *Backend) reflectionOf(h native.ReflectionHandle, fn string) *reflection {
	b.enter("sp" + fn)
	if h == nil {
		panic("slangtest: null reflection handle")
	}
	return (*reflection)(unsafe.Pointer(h))
}

// Handle conversions. Fixture nodes are their own handles.

func vlh(v *VarLayout) native.VariableLayoutHandle {
	return native.VariableLayoutHandle(unsafe.Pointer(v))
}

func vh(v *Var) native.VariableHandle { return native.VariableHandle(unsafe.Pointer(v)) }

func tlh(l *Layout) native.TypeLayoutHandle { return native.TypeLayoutHandle(unsafe.Pointer(l)) }

func th(t *Type) native.TypeHandle { return native.TypeHandle(unsafe.Pointer(t)) }

func eph(e *EntryPoint) native.EntryPointHandle { return native.EntryPointHandle(unsafe.Pointer(e)) }

func tph(p *TypeParameter) native.TypeParameterHandle {
	return native.TypeParameterHandle(unsafe.Pointer(p))
}

func uah(a *Attribute) native.UserAttributeHandle {
	return native.UserAttributeHandle(unsafe.Pointer(a))
}

// node dereferences a fixture handle. A null handle panics; the C
// interface would crash.
func node[T any, H ~unsafe.Pointer](b *Backend, h H, what string) *T {
	b.enter("sp" + what)
	defer b.mu.Unlock()
	p := unsafe.Pointer(h)
	if p == nil {
		panic("slangtest: null " + what + " handle")
	}
	return (*T)(p)
}

// Reflection.

func (b *Backend) ReflectionParameterCount(r native.ReflectionHandle) uint32 {
	defer b.mu.Unlock()
	return count(b.reflectionOf(r, "Reflection_GetParameterCount").program.Parameters)
}

func (b *Backend) ReflectionParameterByIndex(r native.ReflectionHandle, index uint32) native.VariableLayoutHandle {
	defer b.mu.Unlock()
	return vlh(at(b.reflectionOf(r, "Reflection_GetParameterByIndex").program.Parameters, index))
}

func (b *Backend) ReflectionTypeParameterCount(r native.ReflectionHandle) uint32 {
	defer b.mu.Unlock()
	return count(b.reflectionOf(r, "Reflection_GetTypeParameterCount").program.TypeParameters)
}

func (b *Backend) ReflectionTypeParameterByIndex(r native.ReflectionHandle, index uint32) native.TypeParameterHandle {
	defer b.mu.Unlock()
	return tph(at(b.reflectionOf(r, "Reflection_GetTypeParameterByIndex").program.TypeParameters, index))
}

func (b *Backend) ReflectionFindTypeParameter(r native.ReflectionHandle, name string) native.TypeParameterHandle {
	defer b.mu.Unlock()
	for _, p := range b.reflectionOf(r, "Reflection_FindTypeParameter").program.TypeParameters {
		if p.Name == name {
			return tph(p)
		}
	}
	return nil
}

func (b *Backend) ReflectionFindTypeByName(r native.ReflectionHandle, name string) native.TypeHandle {
	defer b.mu.Unlock()
	refl := b.reflectionOf(r, "Reflection_FindTypeByName")
	for _, t := range refl.program.Types {
		if t.Name == name {
			return th(t)
		}
	}
	seen := make(map[*Type]bool)
	for _, v := range refl.program.Parameters {
		if v.Var == nil {
			continue
		}
		if t := findType(v.Var.Type, name, seen); t != nil {
			return th(t)
		}
	}
	return nil
}

// findType searches the types reachable from t.
func findType(t *Type, name string, seen map[*Type]bool) *Type {
	if t == nil || seen[t] {
		return nil
	}
	seen[t] = true
	if t.Name == name {
		return t
	}
	for _, f := range t.Fields {
		if found := findType(f.Type, name, seen); found != nil {
			return found
		}
	}
	if found := findType(t.Element, name, seen); found != nil {
		return found
	}
	return findType(t.ResultType, name, seen)
}

func (b *Backend) ReflectionTypeLayout(r native.ReflectionHandle, t native.TypeHandle, rules uint32) native.TypeLayoutHandle {
	defer b.mu.Unlock()
	refl := b.reflectionOf(r, "Reflection_GetTypeLayout")
	if t == nil {
		return nil
	}
	typ := (*Type)(unsafe.Pointer(t))
	l, ok := refl.layouts[typ]
	if !ok {
		l = &Layout{Type: typ}
		refl.layouts[typ] = l
	}
	return tlh(l)
}

func (b *Backend) ReflectionEntryPointCount(r native.ReflectionHandle) uint64 {
	defer b.mu.Unlock()
	return uint64(len(b.reflectionOf(r, "Reflection_getEntryPointCount").entryPoints))
}

func (b *Backend) ReflectionEntryPointByIndex(r native.ReflectionHandle, index uint64) native.EntryPointHandle {
	defer b.mu.Unlock()
	eps := b.reflectionOf(r, "Reflection_getEntryPointByIndex").entryPoints
	if index >= uint64(len(eps)) {
		return nil
	}
	return eph(eps[index])
}

func (b *Backend) ReflectionFindEntryPointByName(r native.ReflectionHandle, name string) native.EntryPointHandle {
	defer b.mu.Unlock()
	for _, ep := range b.reflectionOf(r, "Reflection_findEntryPointByName").entryPoints {
		if ep.Name == name {
			return eph(ep)
		}
	}
	return nil
}

func (b *Backend) ReflectionGlobalConstantBufferBinding(r native.ReflectionHandle) uint64 {
	defer b.mu.Unlock()
	return b.reflectionOf(r, "Reflection_getGlobalConstantBufferBinding").program.GlobalConstantBufferBinding
}

func (b *Backend) ReflectionGlobalConstantBufferSize(r native.ReflectionHandle) uint64 {
	defer b.mu.Unlock()
	return b.reflectionOf(r, "Reflection_getGlobalConstantBufferSize").program.GlobalConstantBufferSize
}

// Variable layouts.

func (b *Backend) VariableLayoutVariable(v native.VariableLayoutHandle) native.VariableHandle {
	return vh(node[VarLayout](b, v, "ReflectionVariableLayout_GetVariable").Var)
}

func (b *Backend) VariableLayoutTypeLayout(v native.VariableLayoutHandle) native.TypeLayoutHandle {
	return tlh(node[VarLayout](b, v, "ReflectionVariableLayout_GetTypeLayout").Layout)
}

func (vl *VarLayout) binding(category uint32) (Binding, bool) {
	for _, bd := range vl.Bindings {
		if bd.Category == category {
			return bd, true
		}
	}
	return Binding{}, false
}

func (b *Backend) VariableLayoutOffset(v native.VariableLayoutHandle, category uint32) uint64 {
	bd, _ := node[VarLayout](b, v, "ReflectionVariableLayout_GetOffset").binding(category)
	return bd.Offset
}

func (b *Backend) VariableLayoutSpace(v native.VariableLayoutHandle, category uint32) uint64 {
	bd, _ := node[VarLayout](b, v, "ReflectionVariableLayout_GetSpace").binding(category)
	return bd.Space
}

func (b *Backend) VariableLayoutSemanticName(v native.VariableLayoutHandle) (string, bool) {
	return optional(node[VarLayout](b, v, "ReflectionVariableLayout_GetSemanticName").Semantic)
}

func (b *Backend) VariableLayoutSemanticIndex(v native.VariableLayoutHandle) uint64 {
	return node[VarLayout](b, v, "ReflectionVariableLayout_GetSemanticIndex").SemanticIndex
}

func (b *Backend) VariableLayoutStage(v native.VariableLayoutHandle) uint32 {
	return node[VarLayout](b, v, "ReflectionVariableLayout_getStage").Stage
}

// firstBinding is the binding in the first category the variable's
// type layout consumes.
func (vl *VarLayout) firstBinding() Binding {
	if vl.Layout == nil || len(vl.Layout.Usage) == 0 {
		return Binding{}
	}
	bd, _ := vl.binding(vl.Layout.Usage[0].Category)
	return bd
}

func (b *Backend) ParameterBindingIndex(v native.VariableLayoutHandle) uint32 {
	return uint32(node[VarLayout](b, v, "ReflectionParameter_GetBindingIndex").firstBinding().Offset)
}

func (b *Backend) ParameterBindingSpace(v native.VariableLayoutHandle) uint32 {
	return uint32(node[VarLayout](b, v, "ReflectionParameter_GetBindingSpace").firstBinding().Space)
}

// Variables.

func (b *Backend) VariableName(v native.VariableHandle) (string, bool) {
	return optional(node[Var](b, v, "ReflectionVariable_GetName").Name)
}

func (b *Backend) VariableType(v native.VariableHandle) native.TypeHandle {
	return th(node[Var](b, v, "ReflectionVariable_GetType").Type)
}

func (b *Backend) VariableFindModifier(v native.VariableHandle, modifier uint32) bool {
	return slices.Contains(node[Var](b, v, "ReflectionVariable_FindModifier").Modifiers, modifier)
}

func (b *Backend) VariableUserAttributeCount(v native.VariableHandle) uint32 {
	return count(node[Var](b, v, "ReflectionVariable_GetUserAttributeCount").Attributes)
}

func (b *Backend) VariableUserAttributeByIndex(v native.VariableHandle, index uint32) native.UserAttributeHandle {
	return uah(at(node[Var](b, v, "ReflectionVariable_GetUserAttribute").Attributes, index))
}

func findAttribute(attrs []*Attribute, name string) native.UserAttributeHandle {
	for _, a := range attrs {
		if a.Name == name {
			return uah(a)
		}
	}
	return nil
}

func (b *Backend) VariableFindUserAttributeByName(v native.VariableHandle, s native.SessionHandle, name string) native.UserAttributeHandle {
	return findAttribute(node[Var](b, v, "ReflectionVariable_FindUserAttributeByName").Attributes, name)
}

// Type layouts.

func (b *Backend) TypeLayoutType(t native.TypeLayoutHandle) native.TypeHandle {
	return th(node[Layout](b, t, "ReflectionTypeLayout_GetType").Type)
}

func (l *Layout) usage(category uint32) Usage {
	for _, u := range l.Usage {
		if u.Category == category {
			return u
		}
	}
	return Usage{}
}

func (b *Backend) TypeLayoutSize(t native.TypeLayoutHandle, category uint32) uint64 {
	return node[Layout](b, t, "ReflectionTypeLayout_GetSize").usage(category).Size
}

func (b *Backend) TypeLayoutFieldByIndex(t native.TypeLayoutHandle, index uint32) native.VariableLayoutHandle {
	return vlh(at(node[Layout](b, t, "ReflectionTypeLayout_GetFieldByIndex").Fields, index))
}

func (b *Backend) TypeLayoutElementStride(t native.TypeLayoutHandle, category uint32) uint64 {
	return node[Layout](b, t, "ReflectionTypeLayout_GetElementStride").usage(category).Stride
}

func (b *Backend) TypeLayoutElementTypeLayout(t native.TypeLayoutHandle) native.TypeLayoutHandle {
	return tlh(node[Layout](b, t, "ReflectionTypeLayout_GetElementTypeLayout").Element)
}

func (b *Backend) TypeLayoutElementVarLayout(t native.TypeLayoutHandle) native.VariableLayoutHandle {
	return vlh(node[Layout](b, t, "ReflectionTypeLayout_GetElementVarLayout").ElementVar)
}

func (b *Backend) TypeLayoutParameterCategory(t native.TypeLayoutHandle) uint32 {
	l := node[Layout](b, t, "ReflectionTypeLayout_GetParameterCategory")
	switch len(l.Usage) {
	case 0:
		return native.CategoryNone
	case 1:
		return l.Usage[0].Category
	default:
		return native.CategoryMixed
	}
}

func (b *Backend) TypeLayoutCategoryCount(t native.TypeLayoutHandle) uint32 {
	return count(node[Layout](b, t, "ReflectionTypeLayout_GetCategoryCount").Usage)
}

func (b *Backend) TypeLayoutCategoryByIndex(t native.TypeLayoutHandle, index uint32) uint32 {
	return at(node[Layout](b, t, "ReflectionTypeLayout_GetCategoryByIndex").Usage, index).Category
}

func (b *Backend) TypeLayoutMatrixLayoutMode(t native.TypeLayoutHandle) uint32 {
	return node[Layout](b, t, "ReflectionTypeLayout_GetMatrixLayoutMode").MatrixLayout
}

func (b *Backend) TypeLayoutGenericParamIndex(t native.TypeLayoutHandle) int32 {
	return node[Layout](b, t, "ReflectionTypeLayout_getGenericParamIndex").GenericParam - 1
}

// Types.

func (b *Backend) TypeName(t native.TypeHandle) (string, bool) {
	return optional(node[Type](b, t, "ReflectionType_GetName").Name)
}

func (b *Backend) TypeKind(t native.TypeHandle) uint32 {
	return node[Type](b, t, "ReflectionType_GetKind").Kind
}

func (b *Backend) TypeUserAttributeCount(t native.TypeHandle) uint32 {
	return count(node[Type](b, t, "ReflectionType_GetUserAttributeCount").Attributes)
}

func (b *Backend) TypeUserAttributeByIndex(t native.TypeHandle, index uint32) native.UserAttributeHandle {
	return uah(at(node[Type](b, t, "ReflectionType_GetUserAttribute").Attributes, index))
}

func (b *Backend) TypeFindUserAttributeByName(t native.TypeHandle, name string) native.UserAttributeHandle {
	return findAttribute(node[Type](b, t, "ReflectionType_FindUserAttributeByName").Attributes, name)
}

func (b *Backend) TypeFieldCount(t native.TypeHandle) uint32 {
	return count(node[Type](b, t, "ReflectionType_GetFieldCount").Fields)
}

func (b *Backend) TypeFieldByIndex(t native.TypeHandle, index uint32) native.VariableHandle {
	return vh(at(node[Type](b, t, "ReflectionType_GetFieldByIndex").Fields, index))
}

func (b *Backend) TypeElementCount(t native.TypeHandle) uint64 {
	return node[Type](b, t, "ReflectionType_GetElementCount").ElementCount
}

func (b *Backend) TypeElementType(t native.TypeHandle) native.TypeHandle {
	return th(node[Type](b, t, "ReflectionType_GetElementType").Element)
}

func (b *Backend) TypeRowCount(t native.TypeHandle) uint32 {
	return node[Type](b, t, "ReflectionType_GetRowCount").Rows
}

func (b *Backend) TypeColumnCount(t native.TypeHandle) uint32 {
	return node[Type](b, t, "ReflectionType_GetColumnCount").Columns
}

func (b *Backend) TypeScalarType(t native.TypeHandle) uint32 {
	return node[Type](b, t, "ReflectionType_GetScalarType").Scalar
}

func (b *Backend) TypeResourceShape(t native.TypeHandle) uint32 {
	return node[Type](b, t, "ReflectionType_GetResourceShape").Shape
}

func (b *Backend) TypeResourceAccess(t native.TypeHandle) uint32 {
	return node[Type](b, t, "ReflectionType_GetResourceAccess").Access
}

func (b *Backend) TypeResourceResultType(t native.TypeHandle) native.TypeHandle {
	return th(node[Type](b, t, "ReflectionType_GetResourceResultType").ResultType)
}

// Entry points.

func (b *Backend) EntryPointName(e native.EntryPointHandle) (string, bool) {
	return optional(node[EntryPoint](b, e, "ReflectionEntryPoint_getName").Name)
}

func (b *Backend) EntryPointParameterCount(e native.EntryPointHandle) uint32 {
	return count(node[EntryPoint](b, e, "ReflectionEntryPoint_getParameterCount").Parameters)
}

func (b *Backend) EntryPointParameterByIndex(e native.EntryPointHandle, index uint32) native.VariableLayoutHandle {
	return vlh(at(node[EntryPoint](b, e, "ReflectionEntryPoint_getParameterByIndex").Parameters, index))
}

func (b *Backend) EntryPointStage(e native.EntryPointHandle) uint32 {
	return node[EntryPoint](b, e, "ReflectionEntryPoint_getStage").Stage
}

func (b *Backend) EntryPointComputeThreadGroupSize(e native.EntryPointHandle) [3]uint64 {
	ep := node[EntryPoint](b, e, "ReflectionEntryPoint_getComputeThreadGroupSize")
	if ep.Stage != native.StageCompute {
		return [3]uint64{1, 1, 1}
	}
	return ep.ThreadGroupSize
}

func (b *Backend) EntryPointUsesAnySampleRateInput(e native.EntryPointHandle) bool {
	return node[EntryPoint](b, e, "ReflectionEntryPoint_usesAnySampleRateInput").SampleRate
}

// Type parameters and attributes.

func (b *Backend) TypeParameterName(p native.TypeParameterHandle) (string, bool) {
	return optional(node[TypeParameter](b, p, "ReflectionTypeParameter_GetName").Name)
}

func (b *Backend) TypeParameterIndex(p native.TypeParameterHandle) uint32 {
	return node[TypeParameter](b, p, "ReflectionTypeParameter_GetIndex").Index
}

func (b *Backend) UserAttributeName(a native.UserAttributeHandle) (string, bool) {
	return optional(node[Attribute](b, a, "ReflectionUserAttribute_GetName").Name)
}
