// Copyright 2025 The GoGPU Authors
// SPDX-License-Identifier: MIT

// Package slang is a Go binding for the Slang shader compiler.
//
// The compiler is reached through the handle protocol in package
// native. Build with -tags slang to link libslang (package
// native/cslang registers itself as the default backend), or pass any
// native.API through Options.Backend; package slangtest provides an
// in-process simulation for tests.
//
// Example usage (SPIR-V):
//
//	session, err := slang.NewSession()
//	if err != nil {
//	    log.Fatal(err)
//	}
//	defer session.Close()
//
//	req, err := session.CreateCompileRequest()
//	if err != nil {
//	    log.Fatal(err)
//	}
//	defer req.Close()
//
//	req.SetCodegenTarget(slang.TargetSPIRV)
//	unit, _ := req.AddTranslationUnit(slang.LanguageHLSL, "blur")
//	unit.AddSourceFile("blur.hlsl")
//	main, _ := unit.AddEntryPoint("main", slang.StageCompute)
//
//	compiled, err := req.Compile()
//	if err != nil {
//	    log.Fatal(err) // *slang.CompileError carries the diagnostics
//	}
//	defer compiled.Close()
//
//	spv := bytes.Clone(compiled.EntryPointCode(main))
//
// Ownership follows the native handles. A Session owns its native
// session; a CompileRequest owns its request until Compile consumes it;
// a CompiledRequest owns the compiled result. Translation units, entry
// point indices, generated code and every reflection view borrow from
// their owner and panic when used after it is closed.
//
// Reflection is a lazy graph walked through List values:
//
//	refl := compiled.Reflection()
//	for p := range refl.Parameters().Values() {
//	    name, _ := p.Variable().Name()
//	    cats, _ := p.Categories()
//	    for _, c := range cats {
//	        fmt.Println(name, c, p.Offset(c), p.Space(c))
//	    }
//	}
//
// Package snapshot copies the graph into plain values that outlive the
// request.
package slang
