// Copyright 2025 The GoGPU Authors
// SPDX-License-Identifier: MIT

package slangtest

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gogpu/slang/native"
	"github.com/gogpu/slang/spirv"
)

const computeHLSL = `
RWStructuredBuffer<float> output;

[numthreads(8, 8, 1)]
void main(uint3 id : SV_DispatchThreadID)
{
    output[id.x] = 1.0;
}
`

// compileOne runs a single-unit compile and returns the request handle.
func compileOne(t *testing.T, b *Backend, target int32, src, entry string, stage uint32) (native.SessionHandle, native.RequestHandle, int32) {
	t.Helper()
	s := b.CreateSession()
	require.NotZero(t, s)
	r := b.CreateCompileRequest(s)
	require.NotZero(t, r)
	b.SetCodeGenTarget(r, target)
	u := b.AddTranslationUnit(r, native.SourceLanguageHLSL, "main")
	b.AddTranslationUnitSourceString(r, u, "main.hlsl", src)
	if entry != "" {
		b.AddEntryPoint(r, u, entry, stage)
	}
	return s, r, b.Compile(r)
}

func TestHandleAccounting(t *testing.T) {
	b := New()
	s := b.CreateSession()
	r := b.CreateCompileRequest(s)
	assert.Equal(t, 2, b.Live())

	b.DestroyCompileRequest(r)
	b.DestroySession(s)
	assert.Zero(t, b.Live())
	assert.Equal(t, 2, b.Created())
	assert.Equal(t, 2, b.Destroyed())
	assert.Equal(t, []string{
		"spCreateSession",
		"spCreateCompileRequest",
		"spDestroyCompileRequest",
		"spDestroySession",
	}, b.Calls())
}

func TestHandleMisuse(t *testing.T) {
	t.Run("double destroy", func(t *testing.T) {
		b := New()
		s := b.CreateSession()
		r := b.CreateCompileRequest(s)
		b.DestroyCompileRequest(r)
		assert.PanicsWithValue(t, "slangtest: double destroy of compile request", func() {
			b.DestroyCompileRequest(r)
		})
	})

	t.Run("use after destroy", func(t *testing.T) {
		b := New()
		s := b.CreateSession()
		r := b.CreateCompileRequest(s)
		b.DestroyCompileRequest(r)
		assert.PanicsWithValue(t, "slangtest: use of destroyed compile request", func() {
			b.SetCodeGenTarget(r, native.TargetSPIRV)
		})
	})

	t.Run("session with live request", func(t *testing.T) {
		b := New()
		s := b.CreateSession()
		b.CreateCompileRequest(s)
		assert.Panics(t, func() { b.DestroySession(s) })
	})

	t.Run("compile twice", func(t *testing.T) {
		b := New()
		_, r, status := compileOne(t, b, native.TargetHLSL, computeHLSL, "main", native.StageCompute)
		require.Zero(t, status)
		assert.Panics(t, func() { b.Compile(r) })
	})
}

func TestFaults(t *testing.T) {
	b := New()
	b.SetFaults(Faults{NullSession: true})
	assert.Zero(t, b.CreateSession())

	b.SetFaults(Faults{NullRequest: true})
	s := b.CreateSession()
	require.NotZero(t, s)
	assert.Zero(t, b.CreateCompileRequest(s))
	b.DestroySession(s)
	assert.Zero(t, b.Live())
}

func TestCompileSPIRV(t *testing.T) {
	b := New()
	_, r, status := compileOne(t, b, native.TargetSPIRV, computeHLSL, "main", native.StageCompute)
	require.Zero(t, status, string(b.DiagnosticOutput(r)))

	code := b.EntryPointCode(r, 0)
	mod, err := spirv.Parse(code)
	require.NoError(t, err)
	assert.Equal(t, uint32(Generator), mod.Generator)

	eps := mod.EntryPoints()
	require.Len(t, eps, 1)
	assert.Equal(t, "main", eps[0].Name)
	assert.Equal(t, spirv.ExecutionModelGLCompute, eps[0].Model)
	assert.Equal(t, [3]uint32{8, 8, 1}, eps[0].LocalSize)

	assert.Zero(t, b.EntryPointCode(r, 1))
	assert.Zero(t, b.EntryPointCode(r, -1))
}

func TestCompileSPIRVBindings(t *testing.T) {
	f32 := &Type{Name: "float", Kind: native.TypeKindScalar, Scalar: native.ScalarTypeFloat32}
	f64 := &Type{Name: "double", Kind: native.TypeKindScalar, Scalar: native.ScalarTypeFloat64}
	float4x4 := &Type{Name: "matrix", Kind: native.TypeKindMatrix, Rows: 4, Columns: 4, Scalar: native.ScalarTypeFloat32}
	weights := &Type{Kind: native.TypeKindArray, ElementCount: 4, Element: f32}
	frame := &Type{Name: "Frame", Kind: native.TypeKindStruct, Fields: []*Var{{Name: "view", Type: float4x4}, {Name: "weights", Type: weights}}}
	cb := &Type{Kind: native.TypeKindConstantBuffer, Element: frame}
	texture := &Type{Name: "Texture2D", Kind: native.TypeKindResource, Shape: native.ResourceTexture2D, Access: native.ResourceAccessRead}
	buffer := &Type{Name: "RWStructuredBuffer", Kind: native.TypeKindResource, Shape: native.ResourceStructuredBuffer, Access: native.ResourceAccessReadWrite}

	frameLayout := &Layout{
		Type: frame,
		Fields: []*VarLayout{
			{
				Var:      frame.Fields[0],
				Layout:   &Layout{Type: float4x4, MatrixLayout: native.MatrixLayoutRowMajor},
				Bindings: []Binding{{Category: native.CategoryUniform}},
			},
			{
				Var: frame.Fields[1],
				Layout: &Layout{
					Type:    weights,
					Usage:   []Usage{{Category: native.CategoryUniform, Size: 52, Stride: 16}},
					Element: &Layout{Type: f32},
				},
				Bindings: []Binding{{Category: native.CategoryUniform, Offset: 64}},
			},
		},
	}
	b := New()
	b.SetProgram(&Program{Parameters: []*VarLayout{
		{
			Var:      &Var{Name: "frame", Type: cb},
			Layout:   &Layout{Type: cb, Element: frameLayout},
			Bindings: []Binding{{Category: native.CategoryConstantBuffer}},
		},
		Param("albedo", texture,
			Binding{Category: native.CategoryShaderResource},
			Binding{Category: native.CategoryDescriptorTableSlot, Offset: 1, Space: 2}),
		Param("output", buffer, Binding{Category: native.CategoryUnorderedAccess, Offset: 3}),
		Param("scale", f64, Binding{Category: native.CategoryPushConstantBuffer}),
		Param("time", f32, Binding{Category: native.CategoryUniform, Offset: 16}),
	}})
	_, r, status := compileOne(t, b, native.TargetSPIRV, computeHLSL, "main", native.StageCompute)
	require.Zero(t, status, string(b.DiagnosticOutput(r)))

	mod, err := spirv.Parse(b.EntryPointCode(r, 0))
	require.NoError(t, err)

	var got []spirv.Binding
	for _, bd := range mod.Bindings() {
		bd.Variable = 0
		got = append(got, bd)
	}
	assert.Equal(t, []spirv.Binding{
		{Name: "frame", StorageClass: spirv.StorageClassUniform},
		{Name: "albedo", StorageClass: spirv.StorageClassUniformConstant, Set: 2, Binding: 1},
		{Name: "output", StorageClass: spirv.StorageClassStorageBuffer, Binding: 3},
	}, got)

	counts := make(map[spirv.OpCode]int)
	for _, inst := range mod.Instructions {
		counts[inst.Opcode]++
	}
	assert.Equal(t, 1, counts[spirv.OpExtension], "storage buffer extension")
	assert.Equal(t, 1, counts[spirv.OpExtInstImport])
	assert.Equal(t, 4, counts[spirv.OpVariable], "push constants are declared, uniforms are not")
	assert.Equal(t, 1, counts[spirv.OpTypeArray])
	assert.Equal(t, 1, counts[spirv.OpTypeMatrix])
	assert.Equal(t, 1, counts[spirv.OpConstant])
	assert.Equal(t, 2, counts[spirv.OpCapability], "Shader and Float64")

	var asm bytes.Buffer
	require.NoError(t, spirv.Disassemble(&asm, b.EntryPointCode(r, 0)))
	text := asm.String()
	for _, want := range []string{
		`OpMemberName`,
		`"view"`,
		"RowMajor",
		"MatrixStride 16",
		"ArrayStride 16",
		"Offset 64",
		"Block",
		"PushConstant",
		`OpName`,
		`"Frame"`,
	} {
		assert.Contains(t, text, want)
	}
}

func TestCompileDeterministic(t *testing.T) {
	b := New()
	_, r1, _ := compileOne(t, b, native.TargetSPIRV, computeHLSL, "main", native.StageCompute)
	_, r2, _ := compileOne(t, b, native.TargetSPIRV, computeHLSL, "main", native.StageCompute)
	assert.Equal(t, b.EntryPointCode(r1, 0), b.EntryPointCode(r2, 0))
}

func TestCompileTextTargets(t *testing.T) {
	tests := []struct {
		name   string
		target int32
		want   string
	}{
		{"glsl", native.TargetGLSL, "layout(local_size_x = 8, local_size_y = 8, local_size_z = 1) in;"},
		{"hlsl", native.TargetHLSL, "[numthreads(8, 8, 1)]\nvoid main()"},
		{"spirv assembly", native.TargetSPIRVAssembly, "OpExecutionMode %_4 LocalSize 8 8 1"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b := New()
			_, r, status := compileOne(t, b, tt.target, computeHLSL, "main", native.StageCompute)
			require.Zero(t, status)
			assert.Contains(t, string(b.EntryPointCode(r, 0)), tt.want)
		})
	}
}

func TestCompileFailures(t *testing.T) {
	tests := []struct {
		name   string
		target int32
		src    string
		entry  string
		want   string
	}{
		{
			name:   "syntax",
			target: native.TargetSPIRV,
			src:    "void main() {\n",
			entry:  "main",
			want:   "main.hlsl(1): error: unmatched '{'",
		},
		{
			name:   "missing entry point",
			target: native.TargetSPIRV,
			src:    "void other() {}",
			entry:  "main",
			want:   "error: entry point 'main' not found in translation unit 0 (main)",
		},
		{
			name:   "downstream target",
			target: native.TargetDXIL,
			src:    computeHLSL,
			entry:  "main",
			want:   "error: target 'dxil' requires a downstream compiler that is not available",
		},
		{
			name:   "error directive",
			target: native.TargetHLSL,
			src:    "#error unsupported\nvoid main() {}",
			entry:  "main",
			want:   "main.hlsl(1): error: #error unsupported",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b := New()
			_, r, status := compileOne(t, b, tt.target, tt.src, tt.entry, native.StageCompute)
			assert.Negative(t, status)
			assert.Contains(t, string(b.DiagnosticOutput(r)), tt.want)
			assert.Zero(t, b.EntryPointCode(r, 0))
			assert.Zero(t, b.GetReflection(r))
		})
	}
}

func TestCompileSourceFile(t *testing.T) {
	b := New()
	b.AddFile("/shaders/common.hlsl", "#define GROUP 8\n")
	b.AddFile("/shaders/main.hlsl", "#include \"common.hlsl\"\n"+computeHLSL)

	s := b.CreateSession()
	r := b.CreateCompileRequest(s)
	b.SetCodeGenTarget(r, native.TargetHLSL)
	u := b.AddTranslationUnit(r, native.SourceLanguageHLSL, "")
	b.AddTranslationUnitSourceFile(r, u, "/shaders/main.hlsl")
	b.AddEntryPoint(r, u, "main", native.StageCompute)
	require.Zero(t, b.Compile(r), string(b.DiagnosticOutput(r)))

	r2 := b.CreateCompileRequest(s)
	u2 := b.AddTranslationUnit(r2, native.SourceLanguageHLSL, "")
	b.AddTranslationUnitSourceFile(r2, u2, "/shaders/missing.hlsl")
	assert.Negative(t, b.Compile(r2))
	assert.Contains(t, string(b.DiagnosticOutput(r2)), "cannot open file '/shaders/missing.hlsl'")
}

func TestDefinesArePerUnit(t *testing.T) {
	b := New()
	s := b.CreateSession()
	r := b.CreateCompileRequest(s)
	b.SetCodeGenTarget(r, native.TargetHLSL)
	b.AddPreprocessorDefine(r, "ENABLE", "1")

	a := b.AddTranslationUnit(r, native.SourceLanguageSlang, "a")
	b.AddTranslationUnitSourceString(r, a, "a.slang", "#undef ENABLE\n")
	c := b.AddTranslationUnit(r, native.SourceLanguageSlang, "c")
	b.AddTranslationUnitSourceString(r, c, "c.slang", "#ifdef ENABLE\n[numthreads(2,2,2)]\n#endif\nvoid cs() {}\n")
	b.AddEntryPoint(r, c, "cs", native.StageCompute)

	require.Zero(t, b.Compile(r), string(b.DiagnosticOutput(r)))
	assert.Contains(t, string(b.EntryPointCode(r, 0)), "[numthreads(2, 2, 2)]")
}

func TestInvalidDiagnosticsFault(t *testing.T) {
	b := New()
	b.SetFaults(Faults{InvalidDiagnostics: true})
	_, r, status := compileOne(t, b, native.TargetHLSL, computeHLSL, "main", native.StageCompute)
	require.Zero(t, status)
	assert.Contains(t, string(b.DiagnosticOutput(r)), "\xff\xfe")
}

func testProgram() *Program {
	f32 := &Type{Name: "float", Kind: native.TypeKindScalar, Scalar: native.ScalarTypeFloat32}
	vec := &Type{Name: "vector", Kind: native.TypeKindVector, ElementCount: 4, Element: f32, Rows: 1, Columns: 4, Scalar: native.ScalarTypeFloat32}
	params := &Type{
		Name:   "Params",
		Kind:   native.TypeKindStruct,
		Fields: []*Var{{Name: "color", Type: vec}, {Name: "scale", Type: f32}},
	}
	tex := &Type{
		Name:       "Texture2D",
		Kind:       native.TypeKindResource,
		Shape:      native.ResourceTexture2D,
		Access:     native.ResourceAccessRead,
		ResultType: vec,
	}

	colorLayout := &VarLayout{
		Var:      params.Fields[0],
		Layout:   &Layout{Type: vec, Usage: []Usage{{Category: native.CategoryUniform, Size: 16}}},
		Bindings: []Binding{{Category: native.CategoryUniform}},
	}
	scaleLayout := &VarLayout{
		Var:      params.Fields[1],
		Layout:   &Layout{Type: f32, Usage: []Usage{{Category: native.CategoryUniform, Size: 4}}},
		Bindings: []Binding{{Category: native.CategoryUniform, Offset: 16}},
	}
	paramsLayout := &VarLayout{
		Var: &Var{Name: "params", Type: params, Modifiers: []uint32{native.ModifierShared}},
		Layout: &Layout{
			Type:   params,
			Usage:  []Usage{{Category: native.CategoryUniform, Size: 20}},
			Fields: []*VarLayout{colorLayout, scaleLayout},
		},
		Bindings: []Binding{{Category: native.CategoryUniform}},
	}

	return &Program{
		Parameters: []*VarLayout{
			paramsLayout,
			Param("tex", tex,
				Binding{Category: native.CategoryShaderResource, Offset: 3, Space: 1},
				Binding{Category: native.CategoryDescriptorTableSlot, Offset: 5, Space: 2}),
		},
		TypeParameters:           []*TypeParameter{{Name: "T", Index: 0}},
		EntryPoints:              []*EntryPoint{{Name: "main", SampleRate: true}},
		Types:                    []*Type{{Name: "Extra", Kind: native.TypeKindStruct}},
		GlobalConstantBufferSize: 20,
	}
}

func TestReflectionQueries(t *testing.T) {
	b := New()
	b.SetProgram(testProgram())
	_, r, status := compileOne(t, b, native.TargetSPIRV, computeHLSL, "main", native.StageCompute)
	require.Zero(t, status)

	refl := b.GetReflection(r)
	require.NotZero(t, refl)
	require.Equal(t, uint32(2), b.ReflectionParameterCount(refl))
	assert.Zero(t, b.ReflectionParameterByIndex(refl, 2))
	assert.Equal(t, uint64(20), b.ReflectionGlobalConstantBufferSize(refl))

	t.Run("struct parameter", func(t *testing.T) {
		p := b.ReflectionParameterByIndex(refl, 0)
		v := b.VariableLayoutVariable(p)
		name, ok := b.VariableName(v)
		assert.True(t, ok)
		assert.Equal(t, "params", name)
		assert.True(t, b.VariableFindModifier(v, native.ModifierShared))

		tl := b.VariableLayoutTypeLayout(p)
		assert.Equal(t, uint64(20), b.TypeLayoutSize(tl, native.CategoryUniform))
		assert.Equal(t, uint32(native.CategoryUniform), b.TypeLayoutParameterCategory(tl))
		assert.Equal(t, uint32(2), b.TypeFieldCount(b.TypeLayoutType(tl)))

		scale := b.TypeLayoutFieldByIndex(tl, 1)
		assert.Equal(t, uint64(16), b.VariableLayoutOffset(scale, native.CategoryUniform))
		assert.Equal(t, int32(-1), b.TypeLayoutGenericParamIndex(tl))
	})

	t.Run("multi-category resource", func(t *testing.T) {
		p := b.ReflectionParameterByIndex(refl, 1)
		tl := b.VariableLayoutTypeLayout(p)
		assert.Equal(t, uint32(native.CategoryMixed), b.TypeLayoutParameterCategory(tl))
		require.Equal(t, uint32(2), b.TypeLayoutCategoryCount(tl))
		assert.Equal(t, uint32(native.CategoryShaderResource), b.TypeLayoutCategoryByIndex(tl, 0))
		assert.Equal(t, uint32(native.CategoryDescriptorTableSlot), b.TypeLayoutCategoryByIndex(tl, 1))

		assert.Equal(t, uint64(3), b.VariableLayoutOffset(p, native.CategoryShaderResource))
		assert.Equal(t, uint64(1), b.VariableLayoutSpace(p, native.CategoryShaderResource))
		assert.Equal(t, uint64(5), b.VariableLayoutOffset(p, native.CategoryDescriptorTableSlot))
		assert.Equal(t, uint64(2), b.VariableLayoutSpace(p, native.CategoryDescriptorTableSlot))
		assert.Zero(t, b.VariableLayoutOffset(p, native.CategoryUniform))
		assert.Equal(t, uint32(3), b.ParameterBindingIndex(p))
		assert.Equal(t, uint32(1), b.ParameterBindingSpace(p))

		typ := b.TypeLayoutType(tl)
		assert.Equal(t, uint32(native.ResourceTexture2D), b.TypeResourceShape(typ))
		assert.NotZero(t, b.TypeResourceResultType(typ))
	})

	t.Run("lookups", func(t *testing.T) {
		assert.NotZero(t, b.ReflectionFindTypeByName(refl, "Params"))
		assert.NotZero(t, b.ReflectionFindTypeByName(refl, "Extra"))
		assert.Zero(t, b.ReflectionFindTypeByName(refl, "Missing"))
		assert.NotZero(t, b.ReflectionFindTypeParameter(refl, "T"))
		assert.Zero(t, b.ReflectionFindTypeParameter(refl, "U"))

		params := b.ReflectionFindTypeByName(refl, "Params")
		fromParam := b.VariableLayoutTypeLayout(b.ReflectionParameterByIndex(refl, 0))
		assert.Equal(t, fromParam, b.ReflectionTypeLayout(refl, params, native.LayoutRulesDefault))

		extra := b.ReflectionFindTypeByName(refl, "Extra")
		l1 := b.ReflectionTypeLayout(refl, extra, native.LayoutRulesDefault)
		l2 := b.ReflectionTypeLayout(refl, extra, native.LayoutRulesDefault)
		assert.Equal(t, l1, l2)
		assert.Equal(t, uint32(native.CategoryNone), b.TypeLayoutParameterCategory(l1))
	})

	t.Run("entry points merge fixtures", func(t *testing.T) {
		require.Equal(t, uint64(1), b.ReflectionEntryPointCount(refl))
		ep := b.ReflectionFindEntryPointByName(refl, "main")
		require.NotZero(t, ep)
		assert.Equal(t, uint32(native.StageCompute), b.EntryPointStage(ep))
		assert.Equal(t, [3]uint64{8, 8, 1}, b.EntryPointComputeThreadGroupSize(ep))
		assert.True(t, b.EntryPointUsesAnySampleRateInput(ep))
		assert.Zero(t, b.ReflectionEntryPointByIndex(refl, 1))
	})
}

func TestReflectionFixtureEntryPoints(t *testing.T) {
	b := New()
	b.SetProgram(&Program{EntryPoints: []*EntryPoint{{Name: "vs", Stage: native.StageVertex}}})
	_, r, status := compileOne(t, b, native.TargetHLSL, "void vs() {}", "", 0)
	require.Zero(t, status)

	refl := b.GetReflection(r)
	require.Equal(t, uint64(1), b.ReflectionEntryPointCount(refl))
	ep := b.ReflectionEntryPointByIndex(refl, 0)
	name, ok := b.EntryPointName(ep)
	assert.True(t, ok)
	assert.Equal(t, "vs", name)
	assert.Equal(t, [3]uint64{1, 1, 1}, b.EntryPointComputeThreadGroupSize(ep))
}

func TestReflectionNullHandles(t *testing.T) {
	b := New()
	assert.Panics(t, func() { b.ReflectionParameterCount(nil) })
	assert.Panics(t, func() { b.TypeKind(nil) })

	// The mutex must be released after a panic.
	assert.NotPanics(t, func() { b.CreateSession() })
}
