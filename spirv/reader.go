// Copyright 2025 The GoGPU Authors
// SPDX-License-Identifier: MIT

package spirv

import (
	"encoding/binary"
	"fmt"
	"strings"
)

// ParseError reports a malformed SPIR-V binary.
type ParseError struct {
	Offset  int // byte offset of the offending word
	Message string
}

// Error implements the error interface.
func (e *ParseError) Error() string {
	return fmt.Sprintf("spirv: at byte offset %#x: %s", e.Offset, e.Message)
}

// Module is a parsed SPIR-V binary.
type Module struct {
	Version      Version
	Generator    uint32
	Bound        uint32
	Schema       uint32
	Instructions []Instruction
}

// EntryPoint is an entry point declared in a module.
type EntryPoint struct {
	Model    ExecutionModel
	Function uint32
	Name     string

	// LocalSize is the LocalSize execution mode, or zero if the entry
	// point declares none.
	LocalSize [3]uint32
}

// Binding is a global variable decorated with a descriptor set or
// binding number.
type Binding struct {
	Variable     uint32
	Name         string
	StorageClass StorageClass
	Set          uint32
	Binding      uint32
}

// Parse decodes a little-endian SPIR-V binary.
func Parse(data []byte) (*Module, error) {
	if len(data)%4 != 0 {
		return nil, &ParseError{Offset: len(data) &^ 3, Message: "length is not a multiple of 4"}
	}
	if len(data) < HeaderWords*4 {
		return nil, &ParseError{Offset: 0, Message: "binary too small for header"}
	}
	word := func(i int) uint32 { return binary.LittleEndian.Uint32(data[i*4:]) }

	if magic := word(0); magic != MagicNumber {
		return nil, &ParseError{Offset: 0, Message: fmt.Sprintf("invalid magic 0x%08X", magic)}
	}
	m := &Module{
		Version:   versionFromWord(word(1)),
		Generator: word(2),
		Bound:     word(3),
		Schema:    word(4),
	}

	total := len(data) / 4
	for i := HeaderWords; i < total; {
		first := word(i)
		count := int(first >> 16)
		if count == 0 || i+count > total {
			return nil, &ParseError{Offset: i * 4, Message: fmt.Sprintf("invalid word count %d", count)}
		}
		operands := make([]uint32, count-1)
		for j := range operands {
			operands[j] = word(i + 1 + j)
		}
		m.Instructions = append(m.Instructions, Instruction{Opcode: OpCode(first & 0xFFFF), Words: operands})
		i += count
	}
	return m, nil
}

// EntryPoints returns the module's entry points in declaration order.
func (m *Module) EntryPoints() []EntryPoint {
	var eps []EntryPoint
	byFunc := make(map[uint32][]int)
	for _, inst := range m.Instructions {
		switch inst.Opcode {
		case OpEntryPoint:
			if len(inst.Words) < 3 {
				continue
			}
			name, _ := decodeString(inst.Words[2:])
			byFunc[inst.Words[1]] = append(byFunc[inst.Words[1]], len(eps))
			eps = append(eps, EntryPoint{
				Model:    ExecutionModel(inst.Words[0]),
				Function: inst.Words[1],
				Name:     name,
			})
		case OpExecutionMode:
			if len(inst.Words) < 5 || ExecutionMode(inst.Words[1]) != ExecutionModeLocalSize {
				continue
			}
			for _, idx := range byFunc[inst.Words[0]] {
				eps[idx].LocalSize = [3]uint32{inst.Words[2], inst.Words[3], inst.Words[4]}
			}
		}
	}
	return eps
}

// Bindings returns the global variables that carry a DescriptorSet or
// Binding decoration, in declaration order.
func (m *Module) Bindings() []Binding {
	names := make(map[uint32]string)
	sets := make(map[uint32]uint32)
	slots := make(map[uint32]uint32)
	var out []Binding
	for _, inst := range m.Instructions {
		ops := inst.Words
		switch inst.Opcode {
		case OpName:
			if len(ops) >= 2 {
				names[ops[0]], _ = decodeString(ops[1:])
			}
		case OpDecorate:
			if len(ops) < 3 {
				continue
			}
			switch Decoration(ops[1]) {
			case DecorationDescriptorSet:
				sets[ops[0]] = ops[2]
			case DecorationBinding:
				slots[ops[0]] = ops[2]
			}
		case OpVariable:
			if len(ops) < 3 {
				continue
			}
			id := ops[1]
			set, hasSet := sets[id]
			slot, hasSlot := slots[id]
			if !hasSet && !hasSlot {
				continue
			}
			out = append(out, Binding{
				Variable:     id,
				Name:         names[id],
				StorageClass: StorageClass(ops[2]),
				Set:          set,
				Binding:      slot,
			})
		}
	}
	return out
}

// decodeString reads a null-terminated literal string and returns it
// with the number of words it occupies.
func decodeString(words []uint32) (string, int) {
	var sb strings.Builder
	for i, w := range words {
		for shift := 0; shift < 32; shift += 8 {
			c := byte(w >> shift)
			if c == 0 {
				return sb.String(), i + 1
			}
			sb.WriteByte(c)
		}
	}
	return sb.String(), len(words)
}
