// Copyright 2025 The GoGPU Authors
// SPDX-License-Identifier: MIT

//go:build cgo && slang

package cslang

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gogpu/slang/native"
)

func TestHeaderConstants(t *testing.T) {
	for _, c := range headerConstants {
		assert.Equal(t, c.header, c.mirror, c.name)
	}
}

func TestRegistered(t *testing.T) {
	api, ok := native.Lookup("slang")
	require.True(t, ok)
	assert.Equal(t, API{}, api)
}

func TestSessionLifecycle(t *testing.T) {
	var api API
	s := api.CreateSession()
	require.NotZero(t, s)
	defer api.DestroySession(s)

	r := api.CreateCompileRequest(s)
	require.NotZero(t, r)
	defer api.DestroyCompileRequest(r)

	api.SetCodeGenTarget(r, native.TargetSPIRV)
	unit := api.AddTranslationUnit(r, native.SourceLanguageSlang, "")
	assert.Equal(t, int32(0), unit)
	api.AddTranslationUnitSourceString(r, unit, "main.slang", `
RWStructuredBuffer<float> values;

[shader("compute")]
[numthreads(4, 1, 1)]
void main(uint3 id : SV_DispatchThreadID)
{
    values[id.x] *= 2.0;
}
`)
	ep := api.AddEntryPoint(r, unit, "main", native.StageCompute)
	require.GreaterOrEqual(t, api.Compile(r), int32(0), string(api.DiagnosticOutput(r)))

	code := api.EntryPointCode(r, ep)
	require.GreaterOrEqual(t, len(code), 4)
	assert.Equal(t, []byte{0x03, 0x02, 0x23, 0x07}, code[:4])
	assert.Same(t, &code[0], &api.EntryPointCode(r, ep)[0], "code aliases request memory")

	refl := api.GetReflection(r)
	require.NotZero(t, refl)
	assert.Equal(t, uint32(1), api.ReflectionParameterCount(refl))
	assert.Equal(t, uint64(1), api.ReflectionEntryPointCount(refl))
	assert.Equal(t, [3]uint64{4, 1, 1}, api.EntryPointComputeThreadGroupSize(api.ReflectionEntryPointByIndex(refl, 0)))
}
