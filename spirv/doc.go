// Copyright 2025 The GoGPU Authors
// SPDX-License-Identifier: MIT

// Package spirv reads, writes and disassembles SPIR-V binaries.
//
// SPIR-V is the standard intermediate language for GPU shaders, used by
// Vulkan and OpenCL, and the primary binary target of the Slang
// compiler.
//
// # Binary Writer
//
// ModuleBuilder constructs modules section by section and lays the
// sections out in the order the SPIR-V specification requires:
//
//	builder := spirv.NewModuleBuilder(spirv.Version1_3)
//	builder.AddCapability(spirv.CapabilityShader)
//	builder.SetMemoryModel(spirv.AddressingModelLogical, spirv.MemoryModelGLSL450)
//
//	voidType := builder.AddTypeVoid()
//	funcType := builder.AddTypeFunction(voidType)
//	fn := builder.AddFunction(funcType, voidType, spirv.FunctionControlNone)
//	builder.AddLabel()
//	builder.AddReturn()
//	builder.AddFunctionEnd()
//
//	builder.AddEntryPoint(spirv.ExecutionModelGLCompute, fn, "main", nil)
//	builder.AddExecutionMode(fn, spirv.ExecutionModeLocalSize, 8, 8, 1)
//
//	binary := builder.Build()
//
// # Reader
//
// Parse splits a binary into its header and instruction stream, and
// Module.EntryPoints recovers entry point names, execution models and
// compute workgroup sizes:
//
//	m, err := spirv.Parse(binary)
//	if err != nil {
//		return err
//	}
//	for _, ep := range m.EntryPoints() {
//		fmt.Println(ep.Name, ep.Model, ep.LocalSize)
//	}
//
// # Disassembler
//
// Disassemble writes the textual .spvasm form of a binary.
package spirv
