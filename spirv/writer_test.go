// Copyright 2025 The GoGPU Authors
// SPDX-License-Identifier: MIT

package spirv

import (
	"encoding/binary"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// computeModule builds the smallest valid compute shader module.
func computeModule(name string, x, y, z uint32) []byte {
	builder := NewModuleBuilder(Version1_3)
	builder.AddCapability(CapabilityShader)
	builder.SetMemoryModel(AddressingModelLogical, MemoryModelGLSL450)

	voidType := builder.AddTypeVoid()
	funcType := builder.AddTypeFunction(voidType)
	funcID := builder.AddFunction(funcType, voidType, FunctionControlNone)
	builder.AddLabel()
	builder.AddReturn()
	builder.AddFunctionEnd()

	builder.AddEntryPoint(ExecutionModelGLCompute, funcID, name, nil)
	builder.AddExecutionMode(funcID, ExecutionModeLocalSize, x, y, z)
	builder.AddName(funcID, name)
	return builder.Build()
}

func TestModuleBuilder_MinimalModule(t *testing.T) {
	builder := NewModuleBuilder(Version1_3)
	builder.AddCapability(CapabilityShader)
	builder.SetMemoryModel(AddressingModelLogical, MemoryModelGLSL450)

	data := builder.Build()
	require.GreaterOrEqual(t, len(data), HeaderWords*4)

	assert.Equal(t, uint32(MagicNumber), binary.LittleEndian.Uint32(data[0:4]))
	assert.Equal(t, uint32(1<<16|3<<8), binary.LittleEndian.Uint32(data[4:8]), "version 1.3")
	assert.Equal(t, uint32(GeneratorID), binary.LittleEndian.Uint32(data[8:12]))
	assert.NotZero(t, binary.LittleEndian.Uint32(data[12:16]), "bound")
	assert.Zero(t, binary.LittleEndian.Uint32(data[16:20]), "schema is reserved")

	// header + OpCapability (2 words) + OpMemoryModel (3 words)
	assert.Len(t, data, (HeaderWords+2+3)*4)
}

func TestModuleBuilder_Generator(t *testing.T) {
	builder := NewModuleBuilder(Version1_0)
	builder.SetGenerator(0x00280000)
	data := builder.Build()
	assert.Equal(t, uint32(0x00280000), binary.LittleEndian.Uint32(data[8:12]))
}

func TestModuleBuilder_IDAllocation(t *testing.T) {
	builder := NewModuleBuilder(Version1_3)

	voidType := builder.AddTypeVoid()
	floatType := builder.AddTypeFloat(32)
	intType := builder.AddTypeInt(32, true)
	vec4Type := builder.AddTypeVector(floatType, 4)

	ids := []uint32{voidType, floatType, intType, vec4Type}
	for i := range ids {
		assert.NotZero(t, ids[i], "IDs are never 0")
		if i > 0 {
			assert.Greater(t, ids[i], ids[i-1], "IDs are strictly increasing")
		}
	}

	data := builder.Build()
	assert.Equal(t, vec4Type+1, binary.LittleEndian.Uint32(data[12:16]), "bound is max ID + 1")
}

func TestInstructionBuilder_String(t *testing.T) {
	tests := []struct {
		in    string
		words int
	}{
		{"", 1},
		{"abc", 1},
		{"main", 2},
		{"hello", 2},
		{"GLSL.std.450", 4},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			builder := NewInstructionBuilder()
			builder.AddString(tt.in)
			inst := builder.Build(OpName)
			require.Len(t, inst.Words, tt.words)

			encoded := inst.Encode()
			assert.Equal(t, OpName, OpCode(encoded[0]&0xFFFF))
			assert.Equal(t, uint32(tt.words+1), encoded[0]>>16)

			got, n := decodeString(inst.Words)
			assert.Equal(t, tt.in, got)
			assert.Equal(t, tt.words, n)
		})
	}
}

func TestModuleBuilder_SectionOrder(t *testing.T) {
	m, err := Parse(computeModule("main", 8, 8, 1))
	require.NoError(t, err)

	var order []OpCode
	for _, inst := range m.Instructions {
		order = append(order, inst.Opcode)
	}
	assert.Equal(t, []OpCode{
		OpCapability,
		OpMemoryModel,
		OpEntryPoint,
		OpExecutionMode,
		OpName,
		OpTypeVoid,
		OpTypeFunction,
		OpFunction,
		OpLabel,
		OpReturn,
		OpFunctionEnd,
	}, order)
}
