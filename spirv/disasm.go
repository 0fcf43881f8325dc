// Copyright 2025 The GoGPU Authors
// SPDX-License-Identifier: MIT

package spirv

import (
	"bufio"
	"fmt"
	"io"
	"strings"
)

var opcodeNames = map[OpCode]string{
	0: "OpNop", 1: "OpUndef", 2: "OpSourceContinued", 3: "OpSource",
	4: "OpSourceExtension", 5: "OpName", 6: "OpMemberName", 7: "OpString",
	10: "OpExtension", 11: "OpExtInstImport", 12: "OpExtInst",
	14: "OpMemoryModel", 15: "OpEntryPoint", 16: "OpExecutionMode",
	17: "OpCapability", 19: "OpTypeVoid", 20: "OpTypeBool",
	21: "OpTypeInt", 22: "OpTypeFloat", 23: "OpTypeVector",
	24: "OpTypeMatrix", 25: "OpTypeImage", 26: "OpTypeSampler",
	27: "OpTypeSampledImage", 28: "OpTypeArray", 29: "OpTypeRuntimeArray",
	30: "OpTypeStruct", 32: "OpTypePointer", 33: "OpTypeFunction",
	41: "OpConstantTrue", 42: "OpConstantFalse", 43: "OpConstant",
	44: "OpConstantComposite", 46: "OpConstantNull",
	54: "OpFunction", 55: "OpFunctionParameter", 56: "OpFunctionEnd",
	57: "OpFunctionCall", 59: "OpVariable", 61: "OpLoad", 62: "OpStore",
	65: "OpAccessChain", 71: "OpDecorate", 72: "OpMemberDecorate",
	79: "OpVectorShuffle", 80: "OpCompositeConstruct", 81: "OpCompositeExtract",
	86: "OpSampledImage", 87: "OpImageSampleImplicitLod",
	128: "OpIAdd", 129: "OpFAdd", 130: "OpISub", 131: "OpFSub",
	132: "OpIMul", 133: "OpFMul", 148: "OpDot",
	245: "OpPhi", 246: "OpLoopMerge", 247: "OpSelectionMerge",
	248: "OpLabel", 249: "OpBranch", 250: "OpBranchConditional",
	251: "OpSwitch", 252: "OpKill", 253: "OpReturn", 254: "OpReturnValue",
	255: "OpUnreachable",
}

var capabilityNames = map[uint32]string{
	0: "Matrix", 1: "Shader", 2: "Geometry", 3: "Tessellation",
	4: "Addresses", 5: "Linkage", 6: "Kernel", 9: "Float16",
	10: "Float64", 11: "Int64", 22: "Int16", 39: "Int8",
	34: "SampleRateShading", 4427: "DrawParameters", 4442: "MultiView",
}

var storageClassNames = map[uint32]string{
	0: "UniformConstant", 1: "Input", 2: "Uniform", 3: "Output",
	4: "Workgroup", 5: "CrossWorkgroup", 6: "Private", 7: "Function",
	8: "Generic", 9: "PushConstant", 10: "AtomicCounter", 11: "Image",
	12: "StorageBuffer",
}

var decorationNames = map[uint32]string{
	0: "RelaxedPrecision", 1: "SpecId", 2: "Block", 3: "BufferBlock",
	4: "RowMajor", 5: "ColMajor", 6: "ArrayStride", 7: "MatrixStride",
	11: "BuiltIn", 14: "Flat", 24: "NonWritable", 25: "NonReadable",
	30: "Location", 33: "Binding", 34: "DescriptorSet", 35: "Offset",
}

var executionModeNames = map[uint32]string{
	0: "Invocations", 7: "OriginUpperLeft", 8: "OriginLowerLeft",
	9: "EarlyFragmentTests", 12: "DepthReplacing",
	17: "LocalSize", 18: "LocalSizeHint",
}

var executionModelNames = map[uint32]string{
	0: "Vertex", 1: "TessellationControl", 2: "TessellationEvaluation",
	3: "Geometry", 4: "Fragment", 5: "GLCompute", 6: "Kernel",
	5313: "RayGenerationKHR", 5314: "IntersectionKHR", 5315: "AnyHitKHR",
	5316: "ClosestHitKHR", 5317: "MissKHR", 5318: "CallableKHR",
}

var addressingModelNames = map[uint32]string{0: "Logical", 1: "Physical32", 2: "Physical64", 5348: "PhysicalStorageBuffer64"}

var memoryModelNames = map[uint32]string{0: "Simple", 1: "GLSL450", 2: "OpenCL", 3: "Vulkan"}

// minOperands is the operand count FormatInstruction needs to render an
// opcode in its specific form.
var minOperands = map[OpCode]int{
	OpCapability: 1, OpExtension: 1, OpExtInstImport: 1, OpMemoryModel: 2, OpEntryPoint: 3,
	OpExecutionMode: 2, OpName: 1, OpMemberName: 2, OpString: 1, OpDecorate: 2,
	OpMemberDecorate: 3, OpTypeVoid: 1, OpTypeBool: 1, OpTypeInt: 3,
	OpTypeFloat: 2, OpTypeVector: 3, OpTypeMatrix: 3, OpTypeArray: 3,
	OpTypeStruct: 1, OpTypePointer: 3, OpTypeFunction: 2, OpConstant: 2,
	OpConstantComposite: 2, OpFunction: 4, OpFunctionParameter: 2,
	OpVariable: 3, OpLoad: 3, OpStore: 2, OpAccessChain: 3, OpLabel: 1,
	OpBranch: 1, OpReturnValue: 1,
}

// Disassemble writes the .spvasm text form of a SPIR-V binary to w.
func Disassemble(w io.Writer, data []byte) error {
	m, err := Parse(data)
	if err != nil {
		return err
	}
	bw := bufio.NewWriter(w)
	fmt.Fprintf(bw, "; SPIR-V\n")
	fmt.Fprintf(bw, "; Version: %d.%d\n", m.Version.Major, m.Version.Minor)
	fmt.Fprintf(bw, "; Generator: 0x%08X\n", m.Generator)
	fmt.Fprintf(bw, "; Bound: %d\n", m.Bound)
	fmt.Fprintf(bw, "; Schema: %d\n", m.Schema)
	fmt.Fprintln(bw)
	for _, inst := range m.Instructions {
		fmt.Fprintln(bw, FormatInstruction(inst))
	}
	return bw.Flush()
}

// String returns the mnemonic of an opcode, or "Op<n>" if unknown.
func (op OpCode) String() string {
	if s, ok := opcodeNames[op]; ok {
		return s
	}
	return fmt.Sprintf("Op%d", uint16(op))
}

func id(n uint32) string {
	return fmt.Sprintf("%%_%d", n)
}

func lookup(m map[uint32]string, v uint32) string {
	if s, ok := m[v]; ok {
		return s
	}
	return fmt.Sprintf("%d", v)
}

// FormatInstruction renders one instruction the way Disassemble does.
// Instructions with a result ID are written as "%_<id> = Op...".
//
//nolint:gocyclo,cyclop,funlen // switch cases for SPIR-V opcodes
func FormatInstruction(inst Instruction) string {
	const indent = "               "
	const resultIndent = "         "

	ops := inst.Words
	name := inst.Opcode.String()
	var sb strings.Builder

	operandIDs := func(from int) {
		for i := from; i < len(ops); i++ {
			fmt.Fprintf(&sb, " %s", id(ops[i]))
		}
	}
	literals := func(from int) {
		for i := from; i < len(ops); i++ {
			fmt.Fprintf(&sb, " %d", ops[i])
		}
	}
	result := func(resultID uint32) {
		fmt.Fprintf(&sb, "%s%s = %s", resultIndent, id(resultID), name)
	}
	statement := func() {
		fmt.Fprintf(&sb, "%s%s", indent, name)
	}

	// Short instructions fall back to the generic form.
	if n, ok := minOperands[inst.Opcode]; ok && len(ops) < n {
		statement()
		operandIDs(0)
		return sb.String()
	}

	switch inst.Opcode {
	case OpCapability:
		statement()
		fmt.Fprintf(&sb, " %s", lookup(capabilityNames, ops[0]))

	case OpExtension:
		str, _ := decodeString(ops)
		statement()
		fmt.Fprintf(&sb, " %q", str)

	case OpExtInstImport, OpString:
		str, _ := decodeString(ops[1:])
		result(ops[0])
		fmt.Fprintf(&sb, " %q", str)

	case OpMemoryModel:
		statement()
		fmt.Fprintf(&sb, " %s %s", lookup(addressingModelNames, ops[0]), lookup(memoryModelNames, ops[1]))

	case OpEntryPoint:
		str, strWords := decodeString(ops[2:])
		statement()
		fmt.Fprintf(&sb, " %s %s %q", lookup(executionModelNames, ops[0]), id(ops[1]), str)
		operandIDs(2 + strWords)

	case OpExecutionMode:
		statement()
		fmt.Fprintf(&sb, " %s %s", id(ops[0]), lookup(executionModeNames, ops[1]))
		literals(2)

	case OpName:
		str, _ := decodeString(ops[1:])
		statement()
		fmt.Fprintf(&sb, " %s %q", id(ops[0]), str)

	case OpMemberName:
		str, _ := decodeString(ops[2:])
		statement()
		fmt.Fprintf(&sb, " %s %d %q", id(ops[0]), ops[1], str)

	case OpDecorate:
		statement()
		fmt.Fprintf(&sb, " %s %s", id(ops[0]), lookup(decorationNames, ops[1]))
		literals(2)

	case OpMemberDecorate:
		statement()
		fmt.Fprintf(&sb, " %s %d %s", id(ops[0]), ops[1], lookup(decorationNames, ops[2]))
		literals(3)

	case OpTypeVoid, OpTypeBool, OpLabel:
		result(ops[0])

	case OpTypeInt:
		result(ops[0])
		fmt.Fprintf(&sb, " %d %d", ops[1], ops[2])

	case OpTypeFloat:
		result(ops[0])
		fmt.Fprintf(&sb, " %d", ops[1])

	case OpTypeVector, OpTypeMatrix:
		result(ops[0])
		fmt.Fprintf(&sb, " %s %d", id(ops[1]), ops[2])

	case OpTypeArray, OpTypeStruct, OpTypeFunction:
		result(ops[0])
		operandIDs(1)

	case OpTypePointer:
		result(ops[0])
		fmt.Fprintf(&sb, " %s %s", lookup(storageClassNames, ops[1]), id(ops[2]))

	case OpConstant:
		result(ops[1])
		fmt.Fprintf(&sb, " %s", id(ops[0]))
		literals(2)

	case OpFunction:
		result(ops[1])
		fmt.Fprintf(&sb, " %s None %s", id(ops[0]), id(ops[3]))

	case OpVariable:
		result(ops[1])
		fmt.Fprintf(&sb, " %s %s", id(ops[0]), lookup(storageClassNames, ops[2]))

	case OpConstantComposite, OpFunctionParameter, OpLoad, OpAccessChain:
		result(ops[1])
		fmt.Fprintf(&sb, " %s", id(ops[0]))
		operandIDs(2)

	case OpStore, OpBranch, OpReturnValue:
		statement()
		operandIDs(0)

	case OpFunctionEnd, OpReturn:
		statement()

	default:
		fmt.Fprintf(&sb, "%s%s", resultIndent, name)
		operandIDs(0)
	}
	return sb.String()
}
