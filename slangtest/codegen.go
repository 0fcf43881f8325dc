// Copyright 2025 The GoGPU Authors
// SPDX-License-Identifier: MIT

package slangtest

import (
	"bytes"
	"fmt"
	"math"

	"fortio.org/safecast"

	"github.com/gogpu/slang/native"
	"github.com/gogpu/slang/spirv"
)

// Generator is the SPIR-V generator magic registered for Slang.
const Generator = 40 << 16

var executionModels = map[uint32]spirv.ExecutionModel{
	native.StageVertex:        spirv.ExecutionModelVertex,
	native.StageHull:          spirv.ExecutionModelTessellationControl,
	native.StageDomain:        spirv.ExecutionModelTessellationEvaluation,
	native.StageGeometry:      spirv.ExecutionModelGeometry,
	native.StageFragment:      spirv.ExecutionModelFragment,
	native.StageCompute:       spirv.ExecutionModelGLCompute,
	native.StageRayGeneration: spirv.ExecutionModelRayGeneration,
	native.StageIntersection:  spirv.ExecutionModelIntersection,
	native.StageAnyHit:        spirv.ExecutionModelAnyHit,
	native.StageClosestHit:    spirv.ExecutionModelClosestHit,
	native.StageMiss:          spirv.ExecutionModelMiss,
	native.StageCallable:      spirv.ExecutionModelCallable,
}

var targetNames = map[int32]string{
	native.TargetDXBC:         "dxbc",
	native.TargetDXBCAssembly: "dxbc-asm",
	native.TargetDXIL:         "dxil",
	native.TargetDXILAssembly: "dxil-asm",
}

// generate produces deterministic code for one entry point. SPIR-V
// output declares params, the program's global parameters. Targets the
// simulation cannot produce are compile errors.
func generate(target int32, ep *EntryPoint, params []*VarLayout) ([]byte, error) {
	switch target {
	case native.TargetUnknown, native.TargetNone:
		return nil, nil
	case native.TargetSPIRV:
		return generateSPIRV(ep, params)
	case native.TargetSPIRVAssembly:
		bin, err := generateSPIRV(ep, params)
		if err != nil {
			return nil, err
		}
		var buf bytes.Buffer
		if err := spirv.Disassemble(&buf, bin); err != nil {
			return nil, err
		}
		return buf.Bytes(), nil
	case native.TargetGLSL:
		return generateGLSL(ep), nil
	case native.TargetHLSL:
		return generateHLSL(ep), nil
	}
	if name, ok := targetNames[target]; ok {
		return nil, fmt.Errorf("target '%s' requires a downstream compiler that is not available", name)
	}
	return nil, fmt.Errorf("unknown code generation target %d", target)
}

func generateSPIRV(ep *EntryPoint, params []*VarLayout) ([]byte, error) {
	model, ok := executionModels[ep.Stage]
	if !ok {
		return nil, fmt.Errorf("entry point '%s' has no pipeline stage", ep.Name)
	}

	b := spirv.NewModuleBuilder(spirv.Version1_3)
	b.SetGenerator(Generator)
	b.AddCapability(spirv.CapabilityShader)
	b.AddExtInstImport("GLSL.std.450")
	b.SetMemoryModel(spirv.AddressingModelLogical, spirv.MemoryModelGLSL450)

	g := newGlobals(b)
	for _, p := range params {
		g.declareParameter(p)
	}

	voidType := b.AddTypeVoid()
	funcType := b.AddTypeFunction(voidType)
	fn := b.AddFunction(funcType, voidType, spirv.FunctionControlNone)
	b.AddLabel()
	b.AddReturn()
	b.AddFunctionEnd()

	b.AddEntryPoint(model, fn, ep.Name, nil)
	switch model {
	case spirv.ExecutionModelGLCompute:
		var size [3]uint32
		for i, v := range ep.ThreadGroupSize {
			n, err := safecast.Conv[uint32](v)
			if err != nil {
				return nil, fmt.Errorf("entry point '%s' thread group size %d out of range", ep.Name, v)
			}
			size[i] = n
		}
		b.AddExecutionMode(fn, spirv.ExecutionModeLocalSize, size[0], size[1], size[2])
	case spirv.ExecutionModelFragment:
		b.AddExecutionMode(fn, spirv.ExecutionModeOriginUpperLeft)
	}
	b.AddName(fn, ep.Name)
	return b.Build(), nil
}

// maxTypeDepth bounds fixture type nesting in generated modules.
const maxTypeDepth = 32

// globals declares fixture types and global parameters in a module.
type globals struct {
	b          *spirv.ModuleBuilder
	scalars    map[uint32]uint32
	layouts    map[*Layout]uint32
	storageExt bool
}

func newGlobals(b *spirv.ModuleBuilder) *globals {
	return &globals{
		b:       b,
		scalars: make(map[uint32]uint32),
		layouts: make(map[*Layout]uint32),
	}
}

// Capabilities required by scalar types that are not 32 bits wide.
var scalarCapabilities = map[uint32]spirv.Capability{
	native.ScalarTypeFloat16: spirv.CapabilityFloat16,
	native.ScalarTypeFloat64: spirv.CapabilityFloat64,
	native.ScalarTypeInt64:   spirv.CapabilityInt64,
	native.ScalarTypeUint64:  spirv.CapabilityInt64,
	native.ScalarTypeInt16:   spirv.CapabilityInt16,
	native.ScalarTypeUint16:  spirv.CapabilityInt16,
	native.ScalarTypeInt8:    spirv.CapabilityInt8,
	native.ScalarTypeUint8:   spirv.CapabilityInt8,
}

// scalar returns the type ID of a scalar kind, declaring it once. Kinds
// without a SPIR-V scalar map to a 32-bit unsigned integer.
func (g *globals) scalar(kind uint32) uint32 {
	if id, ok := g.scalars[kind]; ok {
		return id
	}
	var id uint32
	switch kind {
	case native.ScalarTypeBool:
		id = g.b.AddTypeBool()
	case native.ScalarTypeFloat16:
		id = g.b.AddTypeFloat(16)
	case native.ScalarTypeFloat32:
		id = g.b.AddTypeFloat(32)
	case native.ScalarTypeFloat64:
		id = g.b.AddTypeFloat(64)
	case native.ScalarTypeInt8:
		id = g.b.AddTypeInt(8, true)
	case native.ScalarTypeUint8:
		id = g.b.AddTypeInt(8, false)
	case native.ScalarTypeInt16:
		id = g.b.AddTypeInt(16, true)
	case native.ScalarTypeUint16:
		id = g.b.AddTypeInt(16, false)
	case native.ScalarTypeInt32:
		id = g.b.AddTypeInt(32, true)
	case native.ScalarTypeUint32:
		id = g.b.AddTypeInt(32, false)
	case native.ScalarTypeInt64:
		id = g.b.AddTypeInt(64, true)
	case native.ScalarTypeUint64:
		id = g.b.AddTypeInt(64, false)
	default:
		return g.scalar(native.ScalarTypeUint32)
	}
	if c, ok := scalarCapabilities[kind]; ok {
		g.b.AddCapability(c)
	}
	g.scalars[kind] = id
	return id
}

// declare returns the type ID of a layout. Resources and other opaque
// kinds are stood in for by a 32-bit unsigned integer.
func (g *globals) declare(l *Layout, depth int) uint32 {
	if l == nil || l.Type == nil || depth > maxTypeDepth {
		return g.scalar(native.ScalarTypeUint32)
	}
	if id, ok := g.layouts[l]; ok {
		return id
	}

	t := l.Type
	var id uint32
	switch t.Kind {
	case native.TypeKindScalar:
		id = g.scalar(t.Scalar)
	case native.TypeKindVector:
		n := word(t.ElementCount)
		if n == 0 {
			n = t.Columns
		}
		id = g.b.AddTypeVector(g.scalar(t.Scalar), n)
	case native.TypeKindMatrix:
		column := g.b.AddTypeVector(g.scalar(t.Scalar), t.Rows)
		id = g.b.AddTypeMatrix(column, t.Columns)
	case native.TypeKindArray:
		elem := g.declare(l.Element, depth+1)
		length := g.b.AddConstant(g.scalar(native.ScalarTypeUint32), word(t.ElementCount))
		id = g.b.AddTypeArray(elem, length)
		if stride := l.usage(native.CategoryUniform).Stride; stride != 0 {
			g.b.AddDecorate(id, spirv.DecorationArrayStride, word(stride))
		}
	case native.TypeKindStruct:
		members := make([]uint32, len(l.Fields))
		for i, f := range l.Fields {
			members[i] = g.declare(f.Layout, depth+1)
		}
		id = g.b.AddTypeStruct(members...)
		if t.Name != "" {
			g.b.AddName(id, t.Name)
		}
		for i, f := range l.Fields {
			g.member(id, uint32(i), f)
		}
	case native.TypeKindConstantBuffer, native.TypeKindParameterBlock,
		native.TypeKindTextureBuffer, native.TypeKindShaderStorageBuffer:
		id = g.declare(l.Element, depth+1)
	default:
		id = g.scalar(native.ScalarTypeUint32)
	}
	g.layouts[l] = id
	return id
}

// member names and decorates field i of a struct type.
func (g *globals) member(structID, i uint32, f *VarLayout) {
	if f.Var != nil && f.Var.Name != "" {
		g.b.AddMemberName(structID, i, f.Var.Name)
	}
	offset, _ := f.binding(native.CategoryUniform)
	g.b.AddMemberDecorate(structID, i, spirv.DecorationOffset, word(offset.Offset))
	if f.Layout == nil || f.Layout.Type == nil || f.Layout.Type.Kind != native.TypeKindMatrix {
		return
	}
	order := spirv.DecorationColMajor
	if f.Layout.MatrixLayout == native.MatrixLayoutRowMajor {
		order = spirv.DecorationRowMajor
	}
	g.b.AddMemberDecorate(structID, i, order)
	g.b.AddMemberDecorate(structID, i, spirv.DecorationMatrixStride, 16)
}

// declareParameter declares a global parameter that occupies a
// descriptor or push-constant range as a decorated OpVariable.
// Parameters in the global constant buffer are skipped.
func (g *globals) declareParameter(p *VarLayout) {
	class, bd, ok := storageOf(p)
	if !ok {
		return
	}
	pointee := g.declare(p.Layout, 0)
	if class != spirv.StorageClassUniformConstant {
		block := g.b.AddTypeStruct(pointee)
		g.b.AddDecorate(block, spirv.DecorationBlock)
		g.b.AddMemberDecorate(block, 0, spirv.DecorationOffset, 0)
		pointee = block
	}
	if class == spirv.StorageClassStorageBuffer && !g.storageExt {
		g.b.AddExtension("SPV_KHR_storage_buffer_storage_class")
		g.storageExt = true
	}

	v := g.b.AddVariable(g.b.AddTypePointer(class, pointee), class)
	if p.Var != nil && p.Var.Name != "" {
		g.b.AddName(v, p.Var.Name)
	}
	if class != spirv.StorageClassPushConstant {
		g.b.AddDecorate(v, spirv.DecorationDescriptorSet, word(bd.Space))
		g.b.AddDecorate(v, spirv.DecorationBinding, word(bd.Offset))
	}
}

// storageOf picks the storage class and binding of a global parameter.
// Descriptor table slots win over register-style categories, as they
// do for Vulkan targets.
func storageOf(p *VarLayout) (spirv.StorageClass, Binding, bool) {
	if bd, ok := p.binding(native.CategoryPushConstantBuffer); ok {
		return spirv.StorageClassPushConstant, bd, true
	}
	if bd, ok := p.binding(native.CategoryDescriptorTableSlot); ok {
		return descriptorClass(p), bd, true
	}
	if bd, ok := p.binding(native.CategoryConstantBuffer); ok {
		return spirv.StorageClassUniform, bd, true
	}
	if bd, ok := p.binding(native.CategoryUnorderedAccess); ok {
		return spirv.StorageClassStorageBuffer, bd, true
	}
	for _, c := range []uint32{native.CategoryShaderResource, native.CategorySamplerState} {
		if bd, ok := p.binding(c); ok {
			return spirv.StorageClassUniformConstant, bd, true
		}
	}
	return 0, Binding{}, false
}

func descriptorClass(p *VarLayout) spirv.StorageClass {
	var t *Type
	if p.Layout != nil {
		t = p.Layout.Type
	}
	if t == nil && p.Var != nil {
		t = p.Var.Type
	}
	if t == nil {
		return spirv.StorageClassUniformConstant
	}
	switch {
	case t.Kind == native.TypeKindConstantBuffer, t.Kind == native.TypeKindParameterBlock:
		return spirv.StorageClassUniform
	case t.Kind == native.TypeKindShaderStorageBuffer,
		t.Kind == native.TypeKindResource && t.Access != native.ResourceAccessRead && t.Access != native.ResourceAccessNone:
		return spirv.StorageClassStorageBuffer
	}
	return spirv.StorageClassUniformConstant
}

// word narrows a fixture value to a SPIR-V literal, saturating values
// that do not fit.
func word(v uint64) uint32 {
	n, err := safecast.Conv[uint32](v)
	if err != nil {
		return math.MaxUint32
	}
	return n
}

func generateGLSL(ep *EntryPoint) []byte {
	var buf bytes.Buffer
	buf.WriteString("#version 450\n")
	if ep.Stage == native.StageCompute {
		s := ep.ThreadGroupSize
		fmt.Fprintf(&buf, "layout(local_size_x = %d, local_size_y = %d, local_size_z = %d) in;\n", s[0], s[1], s[2])
	}
	fmt.Fprintf(&buf, "// entry point: %s\nvoid main()\n{\n}\n", ep.Name)
	return buf.Bytes()
}

func generateHLSL(ep *EntryPoint) []byte {
	var buf bytes.Buffer
	if ep.Stage == native.StageCompute {
		s := ep.ThreadGroupSize
		fmt.Fprintf(&buf, "[numthreads(%d, %d, %d)]\n", s[0], s[1], s[2])
	}
	fmt.Fprintf(&buf, "void %s()\n{\n}\n", ep.Name)
	return buf.Bytes()
}
