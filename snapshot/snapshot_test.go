// Copyright 2025 The GoGPU Authors
// SPDX-License-Identifier: MIT

// Golden files live in testdata/golden/. To regenerate them after
// intentional changes:
//
//	UPDATE_GOLDEN=1 go test ./snapshot/...
package snapshot_test

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zaptest"

	"github.com/gogpu/slang"
	"github.com/gogpu/slang/native"
	"github.com/gogpu/slang/slangtest"
	"github.com/gogpu/slang/snapshot"
)

const frameHLSL = `
struct Frame { float4x4 view; float time; };
ConstantBuffer<Frame> frame;
Texture2D<float4> albedo;

[numthreads(8, 8, 1)]
void main(uint3 id : SV_DispatchThreadID)
{
}
`

func frameProgram() *slangtest.Program {
	f32 := &slangtest.Type{Name: "float", Kind: native.TypeKindScalar, Scalar: native.ScalarTypeFloat32}
	float4 := &slangtest.Type{Name: "vector", Kind: native.TypeKindVector, ElementCount: 4, Element: f32, Rows: 1, Columns: 4, Scalar: native.ScalarTypeFloat32}
	float4x4 := &slangtest.Type{Name: "matrix", Kind: native.TypeKindMatrix, Rows: 4, Columns: 4, Scalar: native.ScalarTypeFloat32}
	uint3 := &slangtest.Type{Name: "vector", Kind: native.TypeKindVector, ElementCount: 3, Rows: 1, Columns: 3, Scalar: native.ScalarTypeUint32}
	frame := &slangtest.Type{
		Name:   "Frame",
		Kind:   native.TypeKindStruct,
		Fields: []*slangtest.Var{{Name: "view", Type: float4x4}, {Name: "time", Type: f32}},
	}
	cb := &slangtest.Type{Kind: native.TypeKindConstantBuffer, Element: frame}
	texture := &slangtest.Type{
		Name:       "Texture2D",
		Kind:       native.TypeKindResource,
		Shape:      native.ResourceTexture2D,
		Access:     native.ResourceAccessRead,
		ResultType: float4,
	}

	frameLayout := &slangtest.Layout{
		Type:  frame,
		Usage: []slangtest.Usage{{Category: native.CategoryUniform, Size: 68}},
		Fields: []*slangtest.VarLayout{
			{
				Var: frame.Fields[0],
				Layout: &slangtest.Layout{
					Type:         float4x4,
					Usage:        []slangtest.Usage{{Category: native.CategoryUniform, Size: 64}},
					MatrixLayout: native.MatrixLayoutRowMajor,
				},
				Bindings: []slangtest.Binding{{Category: native.CategoryUniform}},
			},
			{
				Var:      frame.Fields[1],
				Layout:   &slangtest.Layout{Type: f32, Usage: []slangtest.Usage{{Category: native.CategoryUniform, Size: 4}}},
				Bindings: []slangtest.Binding{{Category: native.CategoryUniform, Offset: 64}},
			},
		},
	}

	return &slangtest.Program{
		Parameters: []*slangtest.VarLayout{
			{
				Var: &slangtest.Var{Name: "frame", Type: cb},
				Layout: &slangtest.Layout{
					Type:    cb,
					Usage:   []slangtest.Usage{{Category: native.CategoryConstantBuffer, Size: 1}},
					Element: frameLayout,
				},
				Bindings: []slangtest.Binding{{Category: native.CategoryConstantBuffer}},
			},
			slangtest.Param("albedo", texture,
				slangtest.Binding{Category: native.CategoryShaderResource},
				slangtest.Binding{Category: native.CategoryDescriptorTableSlot, Offset: 1, Space: 2}),
		},
		TypeParameters: []*slangtest.TypeParameter{{Name: "T"}},
		EntryPoints: []*slangtest.EntryPoint{{
			Name: "main",
			Parameters: []*slangtest.VarLayout{{
				Var:      &slangtest.Var{Name: "id", Type: uint3},
				Layout:   &slangtest.Layout{Type: uint3, Usage: []slangtest.Usage{{Category: native.CategoryVaryingInput, Size: 1}}},
				Semantic: "SV_DISPATCHTHREADID",
				Stage:    native.StageCompute,
			}},
		}},
	}
}

// take compiles frameHLSL against p, snapshots its reflection and
// releases every native object before returning.
func take(t *testing.T, p *slangtest.Program) (*snapshot.Program, error) {
	t.Helper()
	b := slangtest.New()
	b.SetProgram(p)
	s, err := slang.NewSessionWithOptions(slang.Options{Backend: b, Logger: zaptest.NewLogger(t)})
	require.NoError(t, err)
	defer func() {
		s.Close()
		assert.Zero(t, b.Live(), "live native handles")
	}()

	req, err := s.CreateCompileRequest()
	require.NoError(t, err)
	defer req.Close()
	req.SetCodegenTarget(slang.TargetSPIRV)
	unit, err := req.AddTranslationUnit(slang.LanguageHLSL, "frame")
	require.NoError(t, err)
	require.NoError(t, unit.AddSourceString("frame.hlsl", frameHLSL))
	_, err = unit.AddEntryPoint("main", slang.StageCompute)
	require.NoError(t, err)

	compiled, err := req.Compile()
	require.NoError(t, err)
	defer compiled.Close()
	return snapshot.Take(compiled.Reflection())
}

// compareGolden compares actual JSON against the golden file at path.
// If UPDATE_GOLDEN is set, the golden file is rewritten instead.
func compareGolden(t *testing.T, path string, actual []byte) {
	t.Helper()

	if os.Getenv("UPDATE_GOLDEN") != "" {
		require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
		require.NoError(t, os.WriteFile(path, actual, 0o600))
		t.Logf("updated golden file: %s", path)
		return
	}

	expected, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		t.Fatalf("golden file not found: %s\nRun with UPDATE_GOLDEN=1 to create it", path)
	}
	require.NoError(t, err)
	assert.JSONEq(t, string(expected), string(actual))
}

func TestGolden(t *testing.T) {
	p, err := take(t, frameProgram())
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, p.Encode(&buf, snapshot.FormatJSON))
	compareGolden(t, filepath.Join("testdata", "golden", "frame.json"), buf.Bytes())
}

func TestOutlivesRequest(t *testing.T) {
	// take has closed the request, its session and every handle.
	p, err := take(t, frameProgram())
	require.NoError(t, err)

	require.Len(t, p.Parameters, 2)
	frame := p.Parameters[0]
	assert.Equal(t, "frame", frame.Name)
	require.NotNil(t, frame.Type.Element)
	assert.Equal(t, slang.TypeKindStruct, frame.Type.Element.Kind)
	require.Len(t, frame.Type.Element.Fields, 2)
	assert.Equal(t, uint64(64), frame.Type.Element.Fields[1].Bindings[0].Offset)

	require.Len(t, p.EntryPoints, 1)
	assert.Equal(t, &[3]uint64{8, 8, 1}, p.EntryPoints[0].ThreadGroupSize)
}

func TestRoundTrip(t *testing.T) {
	p, err := take(t, frameProgram())
	require.NoError(t, err)

	for _, format := range []snapshot.Format{snapshot.FormatJSON, snapshot.FormatMsgpack} {
		t.Run(string(format), func(t *testing.T) {
			var buf bytes.Buffer
			require.NoError(t, p.Encode(&buf, format))
			back, err := snapshot.Decode(&buf, format)
			require.NoError(t, err)
			assert.Equal(t, p, back)
		})
	}
}

func TestGenericAndModifiers(t *testing.T) {
	generic := &slangtest.Type{Name: "T", Kind: native.TypeKindGenericTypeParameter}
	p := &slangtest.Program{
		Parameters: []*slangtest.VarLayout{{
			Var: &slangtest.Var{
				Name:       "value",
				Type:       generic,
				Modifiers:  []uint32{native.ModifierShared},
				Attributes: []*slangtest.Attribute{{Name: "Tweak"}},
			},
			Layout: &slangtest.Layout{Type: generic, GenericParam: 1},
		}},
	}

	snap, err := take(t, p)
	require.NoError(t, err)
	require.Len(t, snap.Parameters, 1)

	value := snap.Parameters[0]
	assert.True(t, value.Shared)
	assert.Equal(t, []string{"Tweak"}, value.Attributes)
	assert.Empty(t, value.Bindings)
	require.NotNil(t, value.Type.GenericParam)
	assert.Equal(t, 0, *value.Type.GenericParam)
	assert.Equal(t, slang.TypeKindGenericTypeParameter, value.Type.Kind)
}

func TestArrayStride(t *testing.T) {
	f32 := &slangtest.Type{Name: "float", Kind: native.TypeKindScalar, Scalar: native.ScalarTypeFloat32}
	array := &slangtest.Type{Kind: native.TypeKindArray, ElementCount: 8, Element: f32}
	p := &slangtest.Program{
		Parameters: []*slangtest.VarLayout{{
			Var: &slangtest.Var{Name: "weights", Type: array},
			Layout: &slangtest.Layout{
				Type:    array,
				Usage:   []slangtest.Usage{{Category: native.CategoryUniform, Size: 116, Stride: 16}},
				Element: &slangtest.Layout{Type: f32, Usage: []slangtest.Usage{{Category: native.CategoryUniform, Size: 4}}},
			},
			Bindings: []slangtest.Binding{{Category: native.CategoryUniform, Offset: 32}},
		}},
	}

	snap, err := take(t, p)
	require.NoError(t, err)
	require.Len(t, snap.Parameters, 1)

	layout := snap.Parameters[0].Type
	assert.Equal(t, slang.TypeKindArray, layout.Kind)
	assert.Equal(t, uint64(8), layout.ElementCount)
	assert.Equal(t, []snapshot.Usage{{Category: slang.CategoryUniform, Size: 16}}, layout.ElementStride)
	require.NotNil(t, layout.Element)
	assert.Equal(t, slang.ScalarFloat32, layout.Element.Scalar)
	assert.Empty(t, layout.Element.ElementStride)

	var buf bytes.Buffer
	require.NoError(t, snap.Encode(&buf, snapshot.FormatJSON))
	assert.Contains(t, buf.String(), `"element_stride"`)
}

func TestTakeRejectsUnknownEnum(t *testing.T) {
	broken := &slangtest.Type{Name: "Broken", Kind: 99}
	p := &slangtest.Program{
		Parameters: []*slangtest.VarLayout{slangtest.Param("broken", broken)},
	}

	_, err := take(t, p)
	require.Error(t, err)
	assert.Contains(t, err.Error(), `parameter "broken"`)
	var ee *slang.EnumError
	require.True(t, errors.As(err, &ee))
	assert.Equal(t, "type kind", ee.Enum)
	assert.Equal(t, int64(99), ee.Value)
}

func TestFormats(t *testing.T) {
	f, err := snapshot.ParseFormat("msgpack")
	require.NoError(t, err)
	assert.Equal(t, snapshot.FormatMsgpack, f)

	_, err = snapshot.ParseFormat("yaml")
	assert.EqualError(t, err, `snapshot: unknown format "yaml"`)

	var buf bytes.Buffer
	assert.Error(t, (&snapshot.Program{}).Encode(&buf, "yaml"))
	_, err = snapshot.Decode(&buf, "yaml")
	assert.Error(t, err)

	_, err = snapshot.Decode(bytes.NewReader([]byte("{")), snapshot.FormatJSON)
	assert.ErrorContains(t, err, "snapshot: decode json")
}
