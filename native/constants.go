// Copyright 2025 The GoGPU Authors
// SPDX-License-Identifier: MIT

package native

// Values of the integer enumerations in slang.h. Package native/cslang
// checks them against the header at test time.

// SlangCompileTarget.
const (
	TargetUnknown       int32 = 0
	TargetNone          int32 = 1
	TargetGLSL          int32 = 2
	TargetGLSLVulkan    int32 = 3 // deprecated: same as TargetGLSL
	TargetGLSLVulkanOne int32 = 4 // deprecated
	TargetHLSL          int32 = 5
	TargetSPIRV         int32 = 6
	TargetSPIRVAssembly int32 = 7
	TargetDXBC          int32 = 8
	TargetDXBCAssembly  int32 = 9
	TargetDXIL          int32 = 10
	TargetDXILAssembly  int32 = 11
)

// SlangSourceLanguage.
const (
	SourceLanguageUnknown int32 = 0
	SourceLanguageSlang   int32 = 1
	SourceLanguageHLSL    int32 = 2
	SourceLanguageGLSL    int32 = 3
)

// SlangStage.
const (
	StageNone          uint32 = 0
	StageVertex        uint32 = 1
	StageHull          uint32 = 2
	StageDomain        uint32 = 3
	StageGeometry      uint32 = 4
	StageFragment      uint32 = 5
	StageCompute       uint32 = 6
	StageRayGeneration uint32 = 7
	StageIntersection  uint32 = 8
	StageAnyHit        uint32 = 9
	StageClosestHit    uint32 = 10
	StageMiss          uint32 = 11
	StageCallable      uint32 = 12

	StagePixel = StageFragment
)

// SlangTypeKind.
const (
	TypeKindNone                 uint32 = 0
	TypeKindStruct               uint32 = 1
	TypeKindArray                uint32 = 2
	TypeKindMatrix               uint32 = 3
	TypeKindVector               uint32 = 4
	TypeKindScalar               uint32 = 5
	TypeKindConstantBuffer       uint32 = 6
	TypeKindResource             uint32 = 7
	TypeKindSamplerState         uint32 = 8
	TypeKindTextureBuffer        uint32 = 9
	TypeKindShaderStorageBuffer  uint32 = 10
	TypeKindParameterBlock       uint32 = 11
	TypeKindGenericTypeParameter uint32 = 12
	TypeKindInterface            uint32 = 13
	TypeKindOutputStream         uint32 = 14
	TypeKindCount                uint32 = 15
)

// SlangScalarType.
const (
	ScalarTypeNone    uint32 = 0
	ScalarTypeVoid    uint32 = 1
	ScalarTypeBool    uint32 = 2
	ScalarTypeInt32   uint32 = 3
	ScalarTypeUint32  uint32 = 4
	ScalarTypeInt64   uint32 = 5
	ScalarTypeUint64  uint32 = 6
	ScalarTypeFloat16 uint32 = 7
	ScalarTypeFloat32 uint32 = 8
	ScalarTypeFloat64 uint32 = 9
	ScalarTypeInt8    uint32 = 10
	ScalarTypeUint8   uint32 = 11
	ScalarTypeInt16   uint32 = 12
	ScalarTypeUint16  uint32 = 13
)

// SlangResourceShape. The low nibble is the base shape; the high nibble
// holds flags.
const (
	ResourceBaseShapeMask uint32 = 0x0F

	ResourceNone              uint32 = 0x00
	ResourceTexture1D         uint32 = 0x01
	ResourceTexture2D         uint32 = 0x02
	ResourceTexture3D         uint32 = 0x03
	ResourceTextureCube       uint32 = 0x04
	ResourceTextureBuffer     uint32 = 0x05
	ResourceStructuredBuffer  uint32 = 0x06
	ResourceByteAddressBuffer uint32 = 0x07
	ResourceUnknown           uint32 = 0x08

	ResourceExtShapeMask           uint32 = 0xF0
	ResourceTextureArrayFlag       uint32 = 0x40
	ResourceTextureMultisampleFlag uint32 = 0x80

	ResourceTexture1DArray            = ResourceTexture1D | ResourceTextureArrayFlag
	ResourceTexture2DArray            = ResourceTexture2D | ResourceTextureArrayFlag
	ResourceTextureCubeArray          = ResourceTextureCube | ResourceTextureArrayFlag
	ResourceTexture2DMultisample      = ResourceTexture2D | ResourceTextureMultisampleFlag
	ResourceTexture2DMultisampleArray = ResourceTexture2D | ResourceTextureMultisampleFlag | ResourceTextureArrayFlag
)

// SlangResourceAccess.
const (
	ResourceAccessNone          uint32 = 0
	ResourceAccessRead          uint32 = 1
	ResourceAccessReadWrite     uint32 = 2
	ResourceAccessRasterOrdered uint32 = 3
	ResourceAccessAppend        uint32 = 4
	ResourceAccessConsume       uint32 = 5
)

// SlangParameterCategory.
const (
	CategoryNone                   uint32 = 0
	CategoryMixed                  uint32 = 1
	CategoryConstantBuffer         uint32 = 2
	CategoryShaderResource         uint32 = 3
	CategoryUnorderedAccess        uint32 = 4
	CategoryVaryingInput           uint32 = 5
	CategoryVaryingOutput          uint32 = 6
	CategorySamplerState           uint32 = 7
	CategoryUniform                uint32 = 8
	CategoryDescriptorTableSlot    uint32 = 9
	CategorySpecializationConstant uint32 = 10
	CategoryPushConstantBuffer     uint32 = 11
	CategoryRegisterSpace          uint32 = 12
	CategoryGeneric                uint32 = 13
	CategoryRayPayload             uint32 = 14
	CategoryHitAttributes          uint32 = 15
	CategoryCallablePayload        uint32 = 16
	CategoryShaderRecord           uint32 = 17
	CategoryCount                  uint32 = 18

	CategoryVertexInput    = CategoryVaryingInput
	CategoryFragmentOutput = CategoryVaryingOutput
)

// SlangMatrixLayoutMode.
const (
	MatrixLayoutUnknown     uint32 = 0
	MatrixLayoutRowMajor    uint32 = 1
	MatrixLayoutColumnMajor uint32 = 2
)

// SlangLayoutRules.
const (
	LayoutRulesDefault uint32 = 0
)

// SlangModifierID.
const (
	ModifierShared uint32 = 0
)
