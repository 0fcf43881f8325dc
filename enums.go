// Copyright 2025 The GoGPU Authors
// SPDX-License-Identifier: MIT

package slang

import (
	"fmt"
	"sort"

	"github.com/gogpu/slang/native"
)

// nativeEnum is the set of underlying types used by slang.h enums.
type nativeEnum interface {
	~int32 | ~uint32
}

// enumTable maps every defined native value of one enumeration to its
// canonical name. Values absent from the table are rejected.
type enumTable[T nativeEnum] struct {
	name   string
	names  map[T]string
	byName map[string]T
}

func newEnumTable[T nativeEnum](name string, names map[T]string, aliases map[string]T) *enumTable[T] {
	t := &enumTable[T]{name: name, names: names, byName: make(map[string]T, len(names)+len(aliases))}
	for v, s := range names {
		t.byName[s] = v
	}
	for s, v := range aliases {
		t.byName[s] = v
	}
	return t
}

func (t *enumTable[T]) str(v T) string {
	if s, ok := t.names[v]; ok {
		return s
	}
	return fmt.Sprintf("%s(%d)", t.name, int64(v))
}

func (t *enumTable[T]) bridge(v T) (T, error) {
	if _, ok := t.names[v]; ok {
		return v, nil
	}
	return 0, &EnumError{Enum: t.name, Value: int64(v)}
}

func (t *enumTable[T]) parse(s string) (T, error) {
	if v, ok := t.byName[s]; ok {
		return v, nil
	}
	return 0, fmt.Errorf("slang: unknown %s %q", t.name, s)
}

func (t *enumTable[T]) marshal(v T) ([]byte, error) {
	if s, ok := t.names[v]; ok {
		return []byte(s), nil
	}
	return nil, &EnumError{Enum: t.name, Value: int64(v)}
}

// values returns every defined value in ascending order.
func (t *enumTable[T]) values() []T {
	out := make([]T, 0, len(t.names))
	for v := range t.names {
		out = append(out, v)
	}
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })
	return out
}

// CompileTarget selects the code generation target of a request.
type CompileTarget int32

// Compile targets. The deprecated SLANG_GLSL_VULKAN variants have no Go
// counterpart.
const (
	TargetUnknown       CompileTarget = CompileTarget(native.TargetUnknown)
	TargetNone          CompileTarget = CompileTarget(native.TargetNone)
	TargetGLSL          CompileTarget = CompileTarget(native.TargetGLSL)
	TargetHLSL          CompileTarget = CompileTarget(native.TargetHLSL)
	TargetSPIRV         CompileTarget = CompileTarget(native.TargetSPIRV)
	TargetSPIRVAssembly CompileTarget = CompileTarget(native.TargetSPIRVAssembly)
	TargetDXBC          CompileTarget = CompileTarget(native.TargetDXBC)
	TargetDXBCAssembly  CompileTarget = CompileTarget(native.TargetDXBCAssembly)
	TargetDXIL          CompileTarget = CompileTarget(native.TargetDXIL)
	TargetDXILAssembly  CompileTarget = CompileTarget(native.TargetDXILAssembly)
)

var compileTargets = newEnumTable("compile target", map[CompileTarget]string{
	TargetUnknown:       "unknown",
	TargetNone:          "none",
	TargetGLSL:          "glsl",
	TargetHLSL:          "hlsl",
	TargetSPIRV:         "spirv",
	TargetSPIRVAssembly: "spirv-asm",
	TargetDXBC:          "dxbc",
	TargetDXBCAssembly:  "dxbc-asm",
	TargetDXIL:          "dxil",
	TargetDXILAssembly:  "dxil-asm",
}, nil)

// CompileTargetFromNative bridges a SlangCompileTarget value.
func CompileTargetFromNative(v int32) (CompileTarget, error) {
	return compileTargets.bridge(CompileTarget(v))
}

// CompileTargets returns every compile target in native order.
func CompileTargets() []CompileTarget { return compileTargets.values() }

func (t CompileTarget) String() string { return compileTargets.str(t) }

// Native returns the slang.h value.
func (t CompileTarget) Native() int32 { return int32(t) }

// MarshalText returns the canonical name of t.
func (t CompileTarget) MarshalText() ([]byte, error) { return compileTargets.marshal(t) }

// UnmarshalText sets t to the CompileTarget named by b.
func (t *CompileTarget) UnmarshalText(b []byte) (err error) {
	*t, err = compileTargets.parse(string(b))
	return err
}

// SourceLanguage identifies the language of a translation unit.
type SourceLanguage int32

// Source languages.
const (
	LanguageUnknown SourceLanguage = SourceLanguage(native.SourceLanguageUnknown)
	LanguageSlang   SourceLanguage = SourceLanguage(native.SourceLanguageSlang)
	LanguageHLSL    SourceLanguage = SourceLanguage(native.SourceLanguageHLSL)
	LanguageGLSL    SourceLanguage = SourceLanguage(native.SourceLanguageGLSL)
)

var sourceLanguages = newEnumTable("source language", map[SourceLanguage]string{
	LanguageUnknown: "unknown",
	LanguageSlang:   "slang",
	LanguageHLSL:    "hlsl",
	LanguageGLSL:    "glsl",
}, nil)

// SourceLanguageFromNative bridges a SlangSourceLanguage value.
func SourceLanguageFromNative(v int32) (SourceLanguage, error) {
	return sourceLanguages.bridge(SourceLanguage(v))
}

// SourceLanguages returns every source language in native order.
func SourceLanguages() []SourceLanguage { return sourceLanguages.values() }

func (l SourceLanguage) String() string { return sourceLanguages.str(l) }

// Native returns the slang.h value.
func (l SourceLanguage) Native() int32 { return int32(l) }

// MarshalText returns the canonical name of l.
func (l SourceLanguage) MarshalText() ([]byte, error) { return sourceLanguages.marshal(l) }

// UnmarshalText sets l to the SourceLanguage named by b.
func (l *SourceLanguage) UnmarshalText(b []byte) (err error) {
	*l, err = sourceLanguages.parse(string(b))
	return err
}

// Stage is a pipeline stage.
type Stage uint32

// Pipeline stages.
const (
	StageNone          Stage = Stage(native.StageNone)
	StageVertex        Stage = Stage(native.StageVertex)
	StageHull          Stage = Stage(native.StageHull)
	StageDomain        Stage = Stage(native.StageDomain)
	StageGeometry      Stage = Stage(native.StageGeometry)
	StageFragment      Stage = Stage(native.StageFragment)
	StageCompute       Stage = Stage(native.StageCompute)
	StageRayGeneration Stage = Stage(native.StageRayGeneration)
	StageIntersection  Stage = Stage(native.StageIntersection)
	StageAnyHit        Stage = Stage(native.StageAnyHit)
	StageClosestHit    Stage = Stage(native.StageClosestHit)
	StageMiss          Stage = Stage(native.StageMiss)
	StageCallable      Stage = Stage(native.StageCallable)

	// Deprecated: StagePixel is SLANG_STAGE_PIXEL, an alias of StageFragment.
	StagePixel = StageFragment
)

var stages = newEnumTable("stage", map[Stage]string{
	StageNone:          "none",
	StageVertex:        "vertex",
	StageHull:          "hull",
	StageDomain:        "domain",
	StageGeometry:      "geometry",
	StageFragment:      "fragment",
	StageCompute:       "compute",
	StageRayGeneration: "raygeneration",
	StageIntersection:  "intersection",
	StageAnyHit:        "anyhit",
	StageClosestHit:    "closesthit",
	StageMiss:          "miss",
	StageCallable:      "callable",
}, map[string]Stage{"pixel": StageFragment})

// StageFromNative bridges a SlangStage value.
func StageFromNative(v uint32) (Stage, error) { return stages.bridge(Stage(v)) }

// Stages returns every stage in native order.
func Stages() []Stage { return stages.values() }

func (s Stage) String() string { return stages.str(s) }

// Native returns the slang.h value.
func (s Stage) Native() uint32 { return uint32(s) }

// MarshalText returns the canonical name of s.
func (s Stage) MarshalText() ([]byte, error) { return stages.marshal(s) }

// UnmarshalText sets s to the Stage named by b.
func (s *Stage) UnmarshalText(b []byte) (err error) {
	*s, err = stages.parse(string(b))
	return err
}

// TypeKind is the structural kind of a reflected type.
type TypeKind uint32

// Type kinds. SLANG_TYPE_KIND_COUNT is a sentinel, not a kind.
const (
	TypeKindNone                 TypeKind = TypeKind(native.TypeKindNone)
	TypeKindStruct               TypeKind = TypeKind(native.TypeKindStruct)
	TypeKindArray                TypeKind = TypeKind(native.TypeKindArray)
	TypeKindMatrix               TypeKind = TypeKind(native.TypeKindMatrix)
	TypeKindVector               TypeKind = TypeKind(native.TypeKindVector)
	TypeKindScalar               TypeKind = TypeKind(native.TypeKindScalar)
	TypeKindConstantBuffer       TypeKind = TypeKind(native.TypeKindConstantBuffer)
	TypeKindResource             TypeKind = TypeKind(native.TypeKindResource)
	TypeKindSamplerState         TypeKind = TypeKind(native.TypeKindSamplerState)
	TypeKindTextureBuffer        TypeKind = TypeKind(native.TypeKindTextureBuffer)
	TypeKindShaderStorageBuffer  TypeKind = TypeKind(native.TypeKindShaderStorageBuffer)
	TypeKindParameterBlock       TypeKind = TypeKind(native.TypeKindParameterBlock)
	TypeKindGenericTypeParameter TypeKind = TypeKind(native.TypeKindGenericTypeParameter)
	TypeKindInterface            TypeKind = TypeKind(native.TypeKindInterface)
	TypeKindOutputStream         TypeKind = TypeKind(native.TypeKindOutputStream)
)

var typeKinds = newEnumTable("type kind", map[TypeKind]string{
	TypeKindNone:                 "none",
	TypeKindStruct:               "struct",
	TypeKindArray:                "array",
	TypeKindMatrix:               "matrix",
	TypeKindVector:               "vector",
	TypeKindScalar:               "scalar",
	TypeKindConstantBuffer:       "constant-buffer",
	TypeKindResource:             "resource",
	TypeKindSamplerState:         "sampler-state",
	TypeKindTextureBuffer:        "texture-buffer",
	TypeKindShaderStorageBuffer:  "shader-storage-buffer",
	TypeKindParameterBlock:       "parameter-block",
	TypeKindGenericTypeParameter: "generic-type-parameter",
	TypeKindInterface:            "interface",
	TypeKindOutputStream:         "output-stream",
}, nil)

// TypeKindFromNative bridges a SlangTypeKind value.
func TypeKindFromNative(v uint32) (TypeKind, error) { return typeKinds.bridge(TypeKind(v)) }

// TypeKinds returns every type kind in native order.
func TypeKinds() []TypeKind { return typeKinds.values() }

func (k TypeKind) String() string { return typeKinds.str(k) }

// Native returns the slang.h value.
func (k TypeKind) Native() uint32 { return uint32(k) }

// MarshalText returns the canonical name of k.
func (k TypeKind) MarshalText() ([]byte, error) { return typeKinds.marshal(k) }

// UnmarshalText sets k to the TypeKind named by b.
func (k *TypeKind) UnmarshalText(b []byte) (err error) {
	*k, err = typeKinds.parse(string(b))
	return err
}

// ScalarType is the element type of scalars, vectors and matrices.
type ScalarType uint32

// Scalar types.
const (
	ScalarNone    ScalarType = ScalarType(native.ScalarTypeNone)
	ScalarVoid    ScalarType = ScalarType(native.ScalarTypeVoid)
	ScalarBool    ScalarType = ScalarType(native.ScalarTypeBool)
	ScalarInt32   ScalarType = ScalarType(native.ScalarTypeInt32)
	ScalarUint32  ScalarType = ScalarType(native.ScalarTypeUint32)
	ScalarInt64   ScalarType = ScalarType(native.ScalarTypeInt64)
	ScalarUint64  ScalarType = ScalarType(native.ScalarTypeUint64)
	ScalarFloat16 ScalarType = ScalarType(native.ScalarTypeFloat16)
	ScalarFloat32 ScalarType = ScalarType(native.ScalarTypeFloat32)
	ScalarFloat64 ScalarType = ScalarType(native.ScalarTypeFloat64)
	ScalarInt8    ScalarType = ScalarType(native.ScalarTypeInt8)
	ScalarUint8   ScalarType = ScalarType(native.ScalarTypeUint8)
	ScalarInt16   ScalarType = ScalarType(native.ScalarTypeInt16)
	ScalarUint16  ScalarType = ScalarType(native.ScalarTypeUint16)
)

var scalarTypes = newEnumTable("scalar type", map[ScalarType]string{
	ScalarNone:    "none",
	ScalarVoid:    "void",
	ScalarBool:    "bool",
	ScalarInt32:   "int32",
	ScalarUint32:  "uint32",
	ScalarInt64:   "int64",
	ScalarUint64:  "uint64",
	ScalarFloat16: "float16",
	ScalarFloat32: "float32",
	ScalarFloat64: "float64",
	ScalarInt8:    "int8",
	ScalarUint8:   "uint8",
	ScalarInt16:   "int16",
	ScalarUint16:  "uint16",
}, nil)

// ScalarTypeFromNative bridges a SlangScalarType value.
func ScalarTypeFromNative(v uint32) (ScalarType, error) { return scalarTypes.bridge(ScalarType(v)) }

// ScalarTypes returns every scalar type in native order.
func ScalarTypes() []ScalarType { return scalarTypes.values() }

func (s ScalarType) String() string { return scalarTypes.str(s) }

// Native returns the slang.h value.
func (s ScalarType) Native() uint32 { return uint32(s) }

// MarshalText returns the canonical name of s.
func (s ScalarType) MarshalText() ([]byte, error) { return scalarTypes.marshal(s) }

// UnmarshalText sets s to the ScalarType named by b.
func (s *ScalarType) UnmarshalText(b []byte) (err error) {
	*s, err = scalarTypes.parse(string(b))
	return err
}

// ResourceShape is the shape of a texture or buffer resource. The low
// nibble holds the base shape and the high nibble the array and
// multisample flags; only the combinations slang.h names are shapes.
type ResourceShape uint32

// Resource shapes.
const (
	ResourceNone                      ResourceShape = ResourceShape(native.ResourceNone)
	ResourceTexture1D                 ResourceShape = ResourceShape(native.ResourceTexture1D)
	ResourceTexture2D                 ResourceShape = ResourceShape(native.ResourceTexture2D)
	ResourceTexture3D                 ResourceShape = ResourceShape(native.ResourceTexture3D)
	ResourceTextureCube               ResourceShape = ResourceShape(native.ResourceTextureCube)
	ResourceTextureBuffer             ResourceShape = ResourceShape(native.ResourceTextureBuffer)
	ResourceStructuredBuffer          ResourceShape = ResourceShape(native.ResourceStructuredBuffer)
	ResourceByteAddressBuffer         ResourceShape = ResourceShape(native.ResourceByteAddressBuffer)
	ResourceUnknown                   ResourceShape = ResourceShape(native.ResourceUnknown)
	ResourceTexture1DArray            ResourceShape = ResourceShape(native.ResourceTexture1DArray)
	ResourceTexture2DArray            ResourceShape = ResourceShape(native.ResourceTexture2DArray)
	ResourceTextureCubeArray          ResourceShape = ResourceShape(native.ResourceTextureCubeArray)
	ResourceTexture2DMultisample      ResourceShape = ResourceShape(native.ResourceTexture2DMultisample)
	ResourceTexture2DMultisampleArray ResourceShape = ResourceShape(native.ResourceTexture2DMultisampleArray)
)

var resourceShapes = newEnumTable("resource shape", map[ResourceShape]string{
	ResourceNone:                      "none",
	ResourceTexture1D:                 "texture1d",
	ResourceTexture2D:                 "texture2d",
	ResourceTexture3D:                 "texture3d",
	ResourceTextureCube:               "texture-cube",
	ResourceTextureBuffer:             "texture-buffer",
	ResourceStructuredBuffer:          "structured-buffer",
	ResourceByteAddressBuffer:         "byte-address-buffer",
	ResourceUnknown:                   "unknown",
	ResourceTexture1DArray:            "texture1d-array",
	ResourceTexture2DArray:            "texture2d-array",
	ResourceTextureCubeArray:          "texture-cube-array",
	ResourceTexture2DMultisample:      "texture2d-ms",
	ResourceTexture2DMultisampleArray: "texture2d-ms-array",
}, nil)

// ResourceShapeFromNative bridges a SlangResourceShape value. The mask
// constants and bare flags are rejected: they never describe a resource.
func ResourceShapeFromNative(v uint32) (ResourceShape, error) {
	return resourceShapes.bridge(ResourceShape(v))
}

// ResourceShapes returns every resource shape in native order.
func ResourceShapes() []ResourceShape { return resourceShapes.values() }

func (s ResourceShape) String() string { return resourceShapes.str(s) }

// Native returns the slang.h value.
func (s ResourceShape) Native() uint32 { return uint32(s) }

// Base strips the array and multisample flags.
func (s ResourceShape) Base() ResourceShape {
	return s & ResourceShape(native.ResourceBaseShapeMask)
}

// IsArray reports whether the array flag is set.
func (s ResourceShape) IsArray() bool {
	return uint32(s)&native.ResourceTextureArrayFlag != 0
}

// IsMultisample reports whether the multisample flag is set.
func (s ResourceShape) IsMultisample() bool {
	return uint32(s)&native.ResourceTextureMultisampleFlag != 0
}

// MarshalText returns the canonical name of s.
func (s ResourceShape) MarshalText() ([]byte, error) { return resourceShapes.marshal(s) }

// UnmarshalText sets s to the ResourceShape named by b.
func (s *ResourceShape) UnmarshalText(b []byte) (err error) {
	*s, err = resourceShapes.parse(string(b))
	return err
}

// ResourceAccess describes how a shader may access a resource.
type ResourceAccess uint32

// Resource access modes.
const (
	AccessNone          ResourceAccess = ResourceAccess(native.ResourceAccessNone)
	AccessRead          ResourceAccess = ResourceAccess(native.ResourceAccessRead)
	AccessReadWrite     ResourceAccess = ResourceAccess(native.ResourceAccessReadWrite)
	AccessRasterOrdered ResourceAccess = ResourceAccess(native.ResourceAccessRasterOrdered)
	AccessAppend        ResourceAccess = ResourceAccess(native.ResourceAccessAppend)
	AccessConsume       ResourceAccess = ResourceAccess(native.ResourceAccessConsume)
)

var resourceAccesses = newEnumTable("resource access", map[ResourceAccess]string{
	AccessNone:          "none",
	AccessRead:          "read",
	AccessReadWrite:     "read-write",
	AccessRasterOrdered: "raster-ordered",
	AccessAppend:        "append",
	AccessConsume:       "consume",
}, nil)

// ResourceAccessFromNative bridges a SlangResourceAccess value.
func ResourceAccessFromNative(v uint32) (ResourceAccess, error) {
	return resourceAccesses.bridge(ResourceAccess(v))
}

// ResourceAccesses returns every access mode in native order.
func ResourceAccesses() []ResourceAccess { return resourceAccesses.values() }

func (a ResourceAccess) String() string { return resourceAccesses.str(a) }

// Native returns the slang.h value.
func (a ResourceAccess) Native() uint32 { return uint32(a) }

// MarshalText returns the canonical name of a.
func (a ResourceAccess) MarshalText() ([]byte, error) { return resourceAccesses.marshal(a) }

// UnmarshalText sets a to the ResourceAccess named by b.
func (a *ResourceAccess) UnmarshalText(b []byte) (err error) {
	*a, err = resourceAccesses.parse(string(b))
	return err
}

// ParameterCategory classifies how a parameter consumes binding
// resources. One parameter may occupy several categories at once, so
// offsets, spaces, sizes and strides are always queried per category.
type ParameterCategory uint32

// Parameter categories. SLANG_PARAMETER_CATEGORY_COUNT is a sentinel.
const (
	CategoryNone                   ParameterCategory = ParameterCategory(native.CategoryNone)
	CategoryMixed                  ParameterCategory = ParameterCategory(native.CategoryMixed)
	CategoryConstantBuffer         ParameterCategory = ParameterCategory(native.CategoryConstantBuffer)
	CategoryShaderResource         ParameterCategory = ParameterCategory(native.CategoryShaderResource)
	CategoryUnorderedAccess        ParameterCategory = ParameterCategory(native.CategoryUnorderedAccess)
	CategoryVaryingInput           ParameterCategory = ParameterCategory(native.CategoryVaryingInput)
	CategoryVaryingOutput          ParameterCategory = ParameterCategory(native.CategoryVaryingOutput)
	CategorySamplerState           ParameterCategory = ParameterCategory(native.CategorySamplerState)
	CategoryUniform                ParameterCategory = ParameterCategory(native.CategoryUniform)
	CategoryDescriptorTableSlot    ParameterCategory = ParameterCategory(native.CategoryDescriptorTableSlot)
	CategorySpecializationConstant ParameterCategory = ParameterCategory(native.CategorySpecializationConstant)
	CategoryPushConstantBuffer     ParameterCategory = ParameterCategory(native.CategoryPushConstantBuffer)
	CategoryRegisterSpace          ParameterCategory = ParameterCategory(native.CategoryRegisterSpace)
	CategoryGeneric                ParameterCategory = ParameterCategory(native.CategoryGeneric)
	CategoryRayPayload             ParameterCategory = ParameterCategory(native.CategoryRayPayload)
	CategoryHitAttributes          ParameterCategory = ParameterCategory(native.CategoryHitAttributes)
	CategoryCallablePayload        ParameterCategory = ParameterCategory(native.CategoryCallablePayload)
	CategoryShaderRecord           ParameterCategory = ParameterCategory(native.CategoryShaderRecord)

	// Deprecated: use CategoryVaryingInput.
	CategoryVertexInput = CategoryVaryingInput
	// Deprecated: use CategoryVaryingOutput.
	CategoryFragmentOutput = CategoryVaryingOutput
)

var parameterCategories = newEnumTable("parameter category", map[ParameterCategory]string{
	CategoryNone:                   "none",
	CategoryMixed:                  "mixed",
	CategoryConstantBuffer:         "constant-buffer",
	CategoryShaderResource:         "shader-resource",
	CategoryUnorderedAccess:        "unordered-access",
	CategoryVaryingInput:           "varying-input",
	CategoryVaryingOutput:          "varying-output",
	CategorySamplerState:           "sampler-state",
	CategoryUniform:                "uniform",
	CategoryDescriptorTableSlot:    "descriptor-table-slot",
	CategorySpecializationConstant: "specialization-constant",
	CategoryPushConstantBuffer:     "push-constant-buffer",
	CategoryRegisterSpace:          "register-space",
	CategoryGeneric:                "generic",
	CategoryRayPayload:             "ray-payload",
	CategoryHitAttributes:          "hit-attributes",
	CategoryCallablePayload:        "callable-payload",
	CategoryShaderRecord:           "shader-record",
}, map[string]ParameterCategory{
	"vertex-input":    CategoryVaryingInput,
	"fragment-output": CategoryVaryingOutput,
})

// ParameterCategoryFromNative bridges a SlangParameterCategory value.
func ParameterCategoryFromNative(v uint32) (ParameterCategory, error) {
	return parameterCategories.bridge(ParameterCategory(v))
}

// ParameterCategories returns every category in native order.
func ParameterCategories() []ParameterCategory { return parameterCategories.values() }

func (c ParameterCategory) String() string { return parameterCategories.str(c) }

// Native returns the slang.h value.
func (c ParameterCategory) Native() uint32 { return uint32(c) }

// query returns the native value of a category passed to a reflection
// query, panicking if the category is not defined.
func (c ParameterCategory) query() uint32 {
	if _, ok := parameterCategories.names[c]; !ok {
		precondition("undefined parameter category %d", uint32(c))
	}
	return c.Native()
}

// MarshalText returns the canonical name of c.
func (c ParameterCategory) MarshalText() ([]byte, error) { return parameterCategories.marshal(c) }

// UnmarshalText sets c to the ParameterCategory named by b.
func (c *ParameterCategory) UnmarshalText(b []byte) (err error) {
	*c, err = parameterCategories.parse(string(b))
	return err
}

// MatrixLayoutMode is the storage order of a matrix type layout.
type MatrixLayoutMode uint32

// Matrix layout modes.
const (
	MatrixLayoutUnknown     MatrixLayoutMode = MatrixLayoutMode(native.MatrixLayoutUnknown)
	MatrixLayoutRowMajor    MatrixLayoutMode = MatrixLayoutMode(native.MatrixLayoutRowMajor)
	MatrixLayoutColumnMajor MatrixLayoutMode = MatrixLayoutMode(native.MatrixLayoutColumnMajor)
)

var matrixLayoutModes = newEnumTable("matrix layout mode", map[MatrixLayoutMode]string{
	MatrixLayoutUnknown:     "unknown",
	MatrixLayoutRowMajor:    "row-major",
	MatrixLayoutColumnMajor: "column-major",
}, nil)

// MatrixLayoutModeFromNative bridges a SlangMatrixLayoutMode value.
func MatrixLayoutModeFromNative(v uint32) (MatrixLayoutMode, error) {
	return matrixLayoutModes.bridge(MatrixLayoutMode(v))
}

// MatrixLayoutModes returns every layout mode in native order.
func MatrixLayoutModes() []MatrixLayoutMode { return matrixLayoutModes.values() }

func (m MatrixLayoutMode) String() string { return matrixLayoutModes.str(m) }

// Native returns the slang.h value.
func (m MatrixLayoutMode) Native() uint32 { return uint32(m) }

// MarshalText returns the canonical name of m.
func (m MatrixLayoutMode) MarshalText() ([]byte, error) { return matrixLayoutModes.marshal(m) }

// UnmarshalText sets m to the MatrixLayoutMode named by b.
func (m *MatrixLayoutMode) UnmarshalText(b []byte) (err error) {
	*m, err = matrixLayoutModes.parse(string(b))
	return err
}

// LayoutRules selects the rules used to lay out a type.
type LayoutRules uint32

// Layout rules.
const (
	LayoutRulesDefault LayoutRules = LayoutRules(native.LayoutRulesDefault)
)

var layoutRules = newEnumTable("layout rules", map[LayoutRules]string{
	LayoutRulesDefault: "default",
}, nil)

// LayoutRulesFromNative bridges a SlangLayoutRules value.
func LayoutRulesFromNative(v uint32) (LayoutRules, error) { return layoutRules.bridge(LayoutRules(v)) }

func (r LayoutRules) String() string { return layoutRules.str(r) }

// Native returns the slang.h value.
func (r LayoutRules) Native() uint32 { return uint32(r) }

// Modifier identifies a declaration modifier that reflection can test for.
type Modifier uint32

// Modifiers.
const (
	ModifierShared Modifier = Modifier(native.ModifierShared)
)

var modifiers = newEnumTable("modifier", map[Modifier]string{
	ModifierShared: "shared",
}, nil)

// ModifierFromNative bridges a SlangModifierID value.
func ModifierFromNative(v uint32) (Modifier, error) { return modifiers.bridge(Modifier(v)) }

func (m Modifier) String() string { return modifiers.str(m) }

// Native returns the slang.h value.
func (m Modifier) Native() uint32 { return uint32(m) }
