// Copyright 2025 The GoGPU Authors
// SPDX-License-Identifier: MIT

//go:build cgo && slang

package cslang

// #include <slang.h>
import "C"

import "github.com/gogpu/slang/native"

// headerConstant pairs a slang.h enumerator with its package native
// mirror.
type headerConstant struct {
	name   string
	header int64
	mirror int64
}

var headerConstants = []headerConstant{
	{"SLANG_TARGET_UNKNOWN", C.SLANG_TARGET_UNKNOWN, int64(native.TargetUnknown)},
	{"SLANG_TARGET_NONE", C.SLANG_TARGET_NONE, int64(native.TargetNone)},
	{"SLANG_GLSL", C.SLANG_GLSL, int64(native.TargetGLSL)},
	{"SLANG_HLSL", C.SLANG_HLSL, int64(native.TargetHLSL)},
	{"SLANG_SPIRV", C.SLANG_SPIRV, int64(native.TargetSPIRV)},
	{"SLANG_SPIRV_ASM", C.SLANG_SPIRV_ASM, int64(native.TargetSPIRVAssembly)},
	{"SLANG_DXBC", C.SLANG_DXBC, int64(native.TargetDXBC)},
	{"SLANG_DXBC_ASM", C.SLANG_DXBC_ASM, int64(native.TargetDXBCAssembly)},
	{"SLANG_DXIL", C.SLANG_DXIL, int64(native.TargetDXIL)},
	{"SLANG_DXIL_ASM", C.SLANG_DXIL_ASM, int64(native.TargetDXILAssembly)},

	{"SLANG_SOURCE_LANGUAGE_UNKNOWN", C.SLANG_SOURCE_LANGUAGE_UNKNOWN, int64(native.SourceLanguageUnknown)},
	{"SLANG_SOURCE_LANGUAGE_SLANG", C.SLANG_SOURCE_LANGUAGE_SLANG, int64(native.SourceLanguageSlang)},
	{"SLANG_SOURCE_LANGUAGE_HLSL", C.SLANG_SOURCE_LANGUAGE_HLSL, int64(native.SourceLanguageHLSL)},
	{"SLANG_SOURCE_LANGUAGE_GLSL", C.SLANG_SOURCE_LANGUAGE_GLSL, int64(native.SourceLanguageGLSL)},

	{"SLANG_STAGE_NONE", C.SLANG_STAGE_NONE, int64(native.StageNone)},
	{"SLANG_STAGE_VERTEX", C.SLANG_STAGE_VERTEX, int64(native.StageVertex)},
	{"SLANG_STAGE_HULL", C.SLANG_STAGE_HULL, int64(native.StageHull)},
	{"SLANG_STAGE_DOMAIN", C.SLANG_STAGE_DOMAIN, int64(native.StageDomain)},
	{"SLANG_STAGE_GEOMETRY", C.SLANG_STAGE_GEOMETRY, int64(native.StageGeometry)},
	{"SLANG_STAGE_FRAGMENT", C.SLANG_STAGE_FRAGMENT, int64(native.StageFragment)},
	{"SLANG_STAGE_COMPUTE", C.SLANG_STAGE_COMPUTE, int64(native.StageCompute)},
	{"SLANG_STAGE_RAY_GENERATION", C.SLANG_STAGE_RAY_GENERATION, int64(native.StageRayGeneration)},
	{"SLANG_STAGE_INTERSECTION", C.SLANG_STAGE_INTERSECTION, int64(native.StageIntersection)},
	{"SLANG_STAGE_ANY_HIT", C.SLANG_STAGE_ANY_HIT, int64(native.StageAnyHit)},
	{"SLANG_STAGE_CLOSEST_HIT", C.SLANG_STAGE_CLOSEST_HIT, int64(native.StageClosestHit)},
	{"SLANG_STAGE_MISS", C.SLANG_STAGE_MISS, int64(native.StageMiss)},
	{"SLANG_STAGE_CALLABLE", C.SLANG_STAGE_CALLABLE, int64(native.StageCallable)},

	{"SLANG_TYPE_KIND_NONE", C.SLANG_TYPE_KIND_NONE, int64(native.TypeKindNone)},
	{"SLANG_TYPE_KIND_STRUCT", C.SLANG_TYPE_KIND_STRUCT, int64(native.TypeKindStruct)},
	{"SLANG_TYPE_KIND_ARRAY", C.SLANG_TYPE_KIND_ARRAY, int64(native.TypeKindArray)},
	{"SLANG_TYPE_KIND_MATRIX", C.SLANG_TYPE_KIND_MATRIX, int64(native.TypeKindMatrix)},
	{"SLANG_TYPE_KIND_VECTOR", C.SLANG_TYPE_KIND_VECTOR, int64(native.TypeKindVector)},
	{"SLANG_TYPE_KIND_SCALAR", C.SLANG_TYPE_KIND_SCALAR, int64(native.TypeKindScalar)},
	{"SLANG_TYPE_KIND_CONSTANT_BUFFER", C.SLANG_TYPE_KIND_CONSTANT_BUFFER, int64(native.TypeKindConstantBuffer)},
	{"SLANG_TYPE_KIND_RESOURCE", C.SLANG_TYPE_KIND_RESOURCE, int64(native.TypeKindResource)},
	{"SLANG_TYPE_KIND_SAMPLER_STATE", C.SLANG_TYPE_KIND_SAMPLER_STATE, int64(native.TypeKindSamplerState)},
	{"SLANG_TYPE_KIND_TEXTURE_BUFFER", C.SLANG_TYPE_KIND_TEXTURE_BUFFER, int64(native.TypeKindTextureBuffer)},
	{"SLANG_TYPE_KIND_SHADER_STORAGE_BUFFER", C.SLANG_TYPE_KIND_SHADER_STORAGE_BUFFER, int64(native.TypeKindShaderStorageBuffer)},
	{"SLANG_TYPE_KIND_PARAMETER_BLOCK", C.SLANG_TYPE_KIND_PARAMETER_BLOCK, int64(native.TypeKindParameterBlock)},
	{"SLANG_TYPE_KIND_GENERIC_TYPE_PARAMETER", C.SLANG_TYPE_KIND_GENERIC_TYPE_PARAMETER, int64(native.TypeKindGenericTypeParameter)},
	{"SLANG_TYPE_KIND_INTERFACE", C.SLANG_TYPE_KIND_INTERFACE, int64(native.TypeKindInterface)},
	{"SLANG_TYPE_KIND_OUTPUT_STREAM", C.SLANG_TYPE_KIND_OUTPUT_STREAM, int64(native.TypeKindOutputStream)},

	{"SLANG_SCALAR_TYPE_NONE", C.SLANG_SCALAR_TYPE_NONE, int64(native.ScalarTypeNone)},
	{"SLANG_SCALAR_TYPE_VOID", C.SLANG_SCALAR_TYPE_VOID, int64(native.ScalarTypeVoid)},
	{"SLANG_SCALAR_TYPE_BOOL", C.SLANG_SCALAR_TYPE_BOOL, int64(native.ScalarTypeBool)},
	{"SLANG_SCALAR_TYPE_INT32", C.SLANG_SCALAR_TYPE_INT32, int64(native.ScalarTypeInt32)},
	{"SLANG_SCALAR_TYPE_UINT32", C.SLANG_SCALAR_TYPE_UINT32, int64(native.ScalarTypeUint32)},
	{"SLANG_SCALAR_TYPE_INT64", C.SLANG_SCALAR_TYPE_INT64, int64(native.ScalarTypeInt64)},
	{"SLANG_SCALAR_TYPE_UINT64", C.SLANG_SCALAR_TYPE_UINT64, int64(native.ScalarTypeUint64)},
	{"SLANG_SCALAR_TYPE_FLOAT16", C.SLANG_SCALAR_TYPE_FLOAT16, int64(native.ScalarTypeFloat16)},
	{"SLANG_SCALAR_TYPE_FLOAT32", C.SLANG_SCALAR_TYPE_FLOAT32, int64(native.ScalarTypeFloat32)},
	{"SLANG_SCALAR_TYPE_FLOAT64", C.SLANG_SCALAR_TYPE_FLOAT64, int64(native.ScalarTypeFloat64)},
	{"SLANG_SCALAR_TYPE_INT8", C.SLANG_SCALAR_TYPE_INT8, int64(native.ScalarTypeInt8)},
	{"SLANG_SCALAR_TYPE_UINT8", C.SLANG_SCALAR_TYPE_UINT8, int64(native.ScalarTypeUint8)},
	{"SLANG_SCALAR_TYPE_INT16", C.SLANG_SCALAR_TYPE_INT16, int64(native.ScalarTypeInt16)},
	{"SLANG_SCALAR_TYPE_UINT16", C.SLANG_SCALAR_TYPE_UINT16, int64(native.ScalarTypeUint16)},

	{"SLANG_RESOURCE_BASE_SHAPE_MASK", C.SLANG_RESOURCE_BASE_SHAPE_MASK, int64(native.ResourceBaseShapeMask)},
	{"SLANG_RESOURCE_NONE", C.SLANG_RESOURCE_NONE, int64(native.ResourceNone)},
	{"SLANG_TEXTURE_1D", C.SLANG_TEXTURE_1D, int64(native.ResourceTexture1D)},
	{"SLANG_TEXTURE_2D", C.SLANG_TEXTURE_2D, int64(native.ResourceTexture2D)},
	{"SLANG_TEXTURE_3D", C.SLANG_TEXTURE_3D, int64(native.ResourceTexture3D)},
	{"SLANG_TEXTURE_CUBE", C.SLANG_TEXTURE_CUBE, int64(native.ResourceTextureCube)},
	{"SLANG_TEXTURE_BUFFER", C.SLANG_TEXTURE_BUFFER, int64(native.ResourceTextureBuffer)},
	{"SLANG_STRUCTURED_BUFFER", C.SLANG_STRUCTURED_BUFFER, int64(native.ResourceStructuredBuffer)},
	{"SLANG_BYTE_ADDRESS_BUFFER", C.SLANG_BYTE_ADDRESS_BUFFER, int64(native.ResourceByteAddressBuffer)},
	{"SLANG_RESOURCE_UNKNOWN", C.SLANG_RESOURCE_UNKNOWN, int64(native.ResourceUnknown)},
	{"SLANG_RESOURCE_EXT_SHAPE_MASK", C.SLANG_RESOURCE_EXT_SHAPE_MASK, int64(native.ResourceExtShapeMask)},
	{"SLANG_TEXTURE_ARRAY_FLAG", C.SLANG_TEXTURE_ARRAY_FLAG, int64(native.ResourceTextureArrayFlag)},
	{"SLANG_TEXTURE_MULTISAMPLE_FLAG", C.SLANG_TEXTURE_MULTISAMPLE_FLAG, int64(native.ResourceTextureMultisampleFlag)},

	{"SLANG_RESOURCE_ACCESS_NONE", C.SLANG_RESOURCE_ACCESS_NONE, int64(native.ResourceAccessNone)},
	{"SLANG_RESOURCE_ACCESS_READ", C.SLANG_RESOURCE_ACCESS_READ, int64(native.ResourceAccessRead)},
	{"SLANG_RESOURCE_ACCESS_READ_WRITE", C.SLANG_RESOURCE_ACCESS_READ_WRITE, int64(native.ResourceAccessReadWrite)},
	{"SLANG_RESOURCE_ACCESS_RASTER_ORDERED", C.SLANG_RESOURCE_ACCESS_RASTER_ORDERED, int64(native.ResourceAccessRasterOrdered)},
	{"SLANG_RESOURCE_ACCESS_APPEND", C.SLANG_RESOURCE_ACCESS_APPEND, int64(native.ResourceAccessAppend)},
	{"SLANG_RESOURCE_ACCESS_CONSUME", C.SLANG_RESOURCE_ACCESS_CONSUME, int64(native.ResourceAccessConsume)},

	{"SLANG_PARAMETER_CATEGORY_NONE", C.SLANG_PARAMETER_CATEGORY_NONE, int64(native.CategoryNone)},
	{"SLANG_PARAMETER_CATEGORY_MIXED", C.SLANG_PARAMETER_CATEGORY_MIXED, int64(native.CategoryMixed)},
	{"SLANG_PARAMETER_CATEGORY_CONSTANT_BUFFER", C.SLANG_PARAMETER_CATEGORY_CONSTANT_BUFFER, int64(native.CategoryConstantBuffer)},
	{"SLANG_PARAMETER_CATEGORY_SHADER_RESOURCE", C.SLANG_PARAMETER_CATEGORY_SHADER_RESOURCE, int64(native.CategoryShaderResource)},
	{"SLANG_PARAMETER_CATEGORY_UNORDERED_ACCESS", C.SLANG_PARAMETER_CATEGORY_UNORDERED_ACCESS, int64(native.CategoryUnorderedAccess)},
	{"SLANG_PARAMETER_CATEGORY_VARYING_INPUT", C.SLANG_PARAMETER_CATEGORY_VARYING_INPUT, int64(native.CategoryVaryingInput)},
	{"SLANG_PARAMETER_CATEGORY_VARYING_OUTPUT", C.SLANG_PARAMETER_CATEGORY_VARYING_OUTPUT, int64(native.CategoryVaryingOutput)},
	{"SLANG_PARAMETER_CATEGORY_SAMPLER_STATE", C.SLANG_PARAMETER_CATEGORY_SAMPLER_STATE, int64(native.CategorySamplerState)},
	{"SLANG_PARAMETER_CATEGORY_UNIFORM", C.SLANG_PARAMETER_CATEGORY_UNIFORM, int64(native.CategoryUniform)},
	{"SLANG_PARAMETER_CATEGORY_DESCRIPTOR_TABLE_SLOT", C.SLANG_PARAMETER_CATEGORY_DESCRIPTOR_TABLE_SLOT, int64(native.CategoryDescriptorTableSlot)},
	{"SLANG_PARAMETER_CATEGORY_SPECIALIZATION_CONSTANT", C.SLANG_PARAMETER_CATEGORY_SPECIALIZATION_CONSTANT, int64(native.CategorySpecializationConstant)},
	{"SLANG_PARAMETER_CATEGORY_PUSH_CONSTANT_BUFFER", C.SLANG_PARAMETER_CATEGORY_PUSH_CONSTANT_BUFFER, int64(native.CategoryPushConstantBuffer)},
	{"SLANG_PARAMETER_CATEGORY_REGISTER_SPACE", C.SLANG_PARAMETER_CATEGORY_REGISTER_SPACE, int64(native.CategoryRegisterSpace)},
	{"SLANG_PARAMETER_CATEGORY_GENERIC", C.SLANG_PARAMETER_CATEGORY_GENERIC, int64(native.CategoryGeneric)},
	{"SLANG_PARAMETER_CATEGORY_RAY_PAYLOAD", C.SLANG_PARAMETER_CATEGORY_RAY_PAYLOAD, int64(native.CategoryRayPayload)},
	{"SLANG_PARAMETER_CATEGORY_HIT_ATTRIBUTES", C.SLANG_PARAMETER_CATEGORY_HIT_ATTRIBUTES, int64(native.CategoryHitAttributes)},
	{"SLANG_PARAMETER_CATEGORY_CALLABLE_PAYLOAD", C.SLANG_PARAMETER_CATEGORY_CALLABLE_PAYLOAD, int64(native.CategoryCallablePayload)},
	{"SLANG_PARAMETER_CATEGORY_SHADER_RECORD", C.SLANG_PARAMETER_CATEGORY_SHADER_RECORD, int64(native.CategoryShaderRecord)},

	{"SLANG_MATRIX_LAYOUT_MODE_UNKNOWN", C.SLANG_MATRIX_LAYOUT_MODE_UNKNOWN, int64(native.MatrixLayoutUnknown)},
	{"SLANG_MATRIX_LAYOUT_ROW_MAJOR", C.SLANG_MATRIX_LAYOUT_ROW_MAJOR, int64(native.MatrixLayoutRowMajor)},
	{"SLANG_MATRIX_LAYOUT_COLUMN_MAJOR", C.SLANG_MATRIX_LAYOUT_COLUMN_MAJOR, int64(native.MatrixLayoutColumnMajor)},

	{"SLANG_LAYOUT_RULES_DEFAULT", C.SLANG_LAYOUT_RULES_DEFAULT, int64(native.LayoutRulesDefault)},
	{"SLANG_MODIFIER_SHARED", C.SLANG_MODIFIER_SHARED, int64(native.ModifierShared)},
}
