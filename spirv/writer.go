// Copyright 2025 The GoGPU Authors
// SPDX-License-Identifier: MIT

package spirv

import (
	"encoding/binary"
)

// Instruction represents a SPIR-V instruction.
type Instruction struct {
	Opcode OpCode
	Words  []uint32 // result type ID, result ID, operands
}

// InstructionBuilder builds SPIR-V instructions.
type InstructionBuilder struct {
	words []uint32
}

// NewInstructionBuilder creates a new instruction builder.
func NewInstructionBuilder() *InstructionBuilder {
	return &InstructionBuilder{
		words: make([]uint32, 0, 8),
	}
}

// AddWord adds a word to the instruction.
func (b *InstructionBuilder) AddWord(word uint32) {
	b.words = append(b.words, word)
}

// AddString adds a null-terminated UTF-8 string, padded to a word
// boundary.
func (b *InstructionBuilder) AddString(s string) {
	b.words = append(b.words, encodeString(s)...)
}

// Build builds the instruction with the given opcode.
func (b *InstructionBuilder) Build(opcode OpCode) Instruction {
	return Instruction{
		Opcode: opcode,
		Words:  b.words,
	}
}

// Encode encodes the instruction to binary words.
func (i Instruction) Encode() []uint32 {
	wordCount := uint32(len(i.Words) + 1) // +1 for opcode word
	result := make([]uint32, 0, wordCount)
	result = append(result, (wordCount<<16)|uint32(i.Opcode))
	result = append(result, i.Words...)
	return result
}

func encodeString(s string) []uint32 {
	n := len(s)/4 + 1
	words := make([]uint32, n)
	for i := 0; i < len(s); i++ {
		words[i/4] |= uint32(s[i]) << (8 * (i % 4))
	}
	return words
}

// ModuleBuilder builds complete SPIR-V modules.
type ModuleBuilder struct {
	version   Version
	generator uint32

	// Sections, in the order the binary lays them out.
	capabilities   []Instruction
	extensions     []Instruction
	extInstImports []Instruction
	memoryModel    *Instruction
	entryPoints    []Instruction
	executionModes []Instruction
	debugStrings   []Instruction // OpString
	debugNames     []Instruction // OpName, OpMemberName
	annotations    []Instruction // OpDecorate, OpMemberDecorate
	types          []Instruction // OpType*, OpConstant*
	globalVars     []Instruction // OpVariable (global)
	functions      []Instruction // OpFunction...OpFunctionEnd

	nextID uint32
}

// NewModuleBuilder creates a new SPIR-V module builder.
func NewModuleBuilder(version Version) *ModuleBuilder {
	return &ModuleBuilder{
		version:   version,
		generator: GeneratorID,
		nextID:    1,
	}
}

// SetGenerator sets the generator magic written to the header.
func (b *ModuleBuilder) SetGenerator(generator uint32) {
	b.generator = generator
}

// AllocID allocates a new SPIR-V ID.
func (b *ModuleBuilder) AllocID() uint32 {
	id := b.nextID
	b.nextID++
	return id
}

func emit(section *[]Instruction, opcode OpCode, words ...uint32) {
	*section = append(*section, Instruction{Opcode: opcode, Words: words})
}

func withString(s string, words ...uint32) []uint32 {
	return append(words, encodeString(s)...)
}

// AddCapability adds a capability.
func (b *ModuleBuilder) AddCapability(capability Capability) {
	emit(&b.capabilities, OpCapability, uint32(capability))
}

// AddExtension adds an extension.
func (b *ModuleBuilder) AddExtension(name string) {
	emit(&b.extensions, OpExtension, withString(name)...)
}

// AddExtInstImport imports an extended instruction set.
func (b *ModuleBuilder) AddExtInstImport(name string) uint32 {
	id := b.AllocID()
	emit(&b.extInstImports, OpExtInstImport, withString(name, id)...)
	return id
}

// SetMemoryModel sets the memory model.
func (b *ModuleBuilder) SetMemoryModel(addressing AddressingModel, memory MemoryModel) {
	inst := Instruction{Opcode: OpMemoryModel, Words: []uint32{uint32(addressing), uint32(memory)}}
	b.memoryModel = &inst
}

// AddEntryPoint adds an entry point.
func (b *ModuleBuilder) AddEntryPoint(execModel ExecutionModel, funcID uint32, name string, interfaces []uint32) {
	inst := NewInstructionBuilder()
	inst.AddWord(uint32(execModel))
	inst.AddWord(funcID)
	inst.AddString(name)
	for _, id := range interfaces {
		inst.AddWord(id)
	}
	b.entryPoints = append(b.entryPoints, inst.Build(OpEntryPoint))
}

// AddExecutionMode adds an execution mode.
func (b *ModuleBuilder) AddExecutionMode(entryPoint uint32, mode ExecutionMode, params ...uint32) {
	emit(&b.executionModes, OpExecutionMode, append([]uint32{entryPoint, uint32(mode)}, params...)...)
}

// AddString adds a debug string.
func (b *ModuleBuilder) AddString(text string) uint32 {
	id := b.AllocID()
	emit(&b.debugStrings, OpString, withString(text, id)...)
	return id
}

// AddName adds a debug name.
func (b *ModuleBuilder) AddName(id uint32, name string) {
	emit(&b.debugNames, OpName, withString(name, id)...)
}

// AddMemberName adds a debug member name.
func (b *ModuleBuilder) AddMemberName(structID, member uint32, name string) {
	emit(&b.debugNames, OpMemberName, withString(name, structID, member)...)
}

// AddDecorate adds a decoration.
func (b *ModuleBuilder) AddDecorate(id uint32, decoration Decoration, params ...uint32) {
	emit(&b.annotations, OpDecorate, append([]uint32{id, uint32(decoration)}, params...)...)
}

// AddMemberDecorate adds a member decoration.
func (b *ModuleBuilder) AddMemberDecorate(structID, member uint32, decoration Decoration, params ...uint32) {
	emit(&b.annotations, OpMemberDecorate, append([]uint32{structID, member, uint32(decoration)}, params...)...)
}

// addType emits a type declaration whose first operand is its result ID.
func (b *ModuleBuilder) addType(opcode OpCode, operands ...uint32) uint32 {
	id := b.AllocID()
	emit(&b.types, opcode, append([]uint32{id}, operands...)...)
	return id
}

// AddTypeVoid adds OpTypeVoid.
func (b *ModuleBuilder) AddTypeVoid() uint32 { return b.addType(OpTypeVoid) }

// AddTypeBool adds OpTypeBool.
func (b *ModuleBuilder) AddTypeBool() uint32 { return b.addType(OpTypeBool) }

// AddTypeFloat adds OpTypeFloat.
func (b *ModuleBuilder) AddTypeFloat(width uint32) uint32 { return b.addType(OpTypeFloat, width) }

// AddTypeInt adds OpTypeInt.
func (b *ModuleBuilder) AddTypeInt(width uint32, signed bool) uint32 {
	var signedness uint32
	if signed {
		signedness = 1
	}
	return b.addType(OpTypeInt, width, signedness)
}

// AddTypeVector adds OpTypeVector.
func (b *ModuleBuilder) AddTypeVector(componentType, count uint32) uint32 {
	return b.addType(OpTypeVector, componentType, count)
}

// AddTypeMatrix adds OpTypeMatrix with the given column type.
func (b *ModuleBuilder) AddTypeMatrix(columnType, columns uint32) uint32 {
	return b.addType(OpTypeMatrix, columnType, columns)
}

// AddTypeArray adds OpTypeArray. length is the ID of a constant.
func (b *ModuleBuilder) AddTypeArray(elementType, length uint32) uint32 {
	return b.addType(OpTypeArray, elementType, length)
}

// AddTypeStruct adds OpTypeStruct.
func (b *ModuleBuilder) AddTypeStruct(memberTypes ...uint32) uint32 {
	return b.addType(OpTypeStruct, memberTypes...)
}

// AddTypePointer adds OpTypePointer.
func (b *ModuleBuilder) AddTypePointer(storageClass StorageClass, baseType uint32) uint32 {
	return b.addType(OpTypePointer, uint32(storageClass), baseType)
}

// AddTypeFunction adds OpTypeFunction.
func (b *ModuleBuilder) AddTypeFunction(returnType uint32, paramTypes ...uint32) uint32 {
	return b.addType(OpTypeFunction, append([]uint32{returnType}, paramTypes...)...)
}

// AddConstant adds OpConstant.
func (b *ModuleBuilder) AddConstant(typeID uint32, values ...uint32) uint32 {
	id := b.AllocID()
	emit(&b.types, OpConstant, append([]uint32{typeID, id}, values...)...)
	return id
}

// AddVariable adds a global OpVariable.
func (b *ModuleBuilder) AddVariable(pointerType uint32, storageClass StorageClass) uint32 {
	id := b.AllocID()
	emit(&b.globalVars, OpVariable, pointerType, id, uint32(storageClass))
	return id
}

// AddFunction adds a function definition.
func (b *ModuleBuilder) AddFunction(funcType, returnType uint32, control FunctionControl) uint32 {
	id := b.AllocID()
	emit(&b.functions, OpFunction, returnType, id, uint32(control), funcType)
	return id
}

// AddLabel adds a label.
func (b *ModuleBuilder) AddLabel() uint32 {
	id := b.AllocID()
	emit(&b.functions, OpLabel, id)
	return id
}

// AddReturn adds OpReturn.
func (b *ModuleBuilder) AddReturn() { emit(&b.functions, OpReturn) }

// AddFunctionEnd adds OpFunctionEnd.
func (b *ModuleBuilder) AddFunctionEnd() { emit(&b.functions, OpFunctionEnd) }

// Build generates the final SPIR-V binary.
func (b *ModuleBuilder) Build() []byte {
	sections := [][]Instruction{
		b.capabilities,
		b.extensions,
		b.extInstImports,
		nil, // memory model
		b.entryPoints,
		b.executionModes,
		b.debugStrings,
		b.debugNames,
		b.annotations,
		b.types,
		b.globalVars,
		b.functions,
	}
	if b.memoryModel != nil {
		sections[3] = []Instruction{*b.memoryModel}
	}

	words := []uint32{MagicNumber, b.version.word(), b.generator, b.nextID, 0}
	for _, section := range sections {
		for _, inst := range section {
			words = append(words, inst.Encode()...)
		}
	}

	buffer := make([]byte, len(words)*4)
	for i, w := range words {
		binary.LittleEndian.PutUint32(buffer[i*4:], w)
	}
	return buffer
}
