// Copyright 2025 The GoGPU Authors
// SPDX-License-Identifier: MIT

package native

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// stubAPI satisfies API through embedding; calling any method panics.
type stubAPI struct{ API }

func resetRegistry(t *testing.T) {
	t.Helper()
	backendsMu.Lock()
	saved, savedDefault := backends, defaultAPI
	backends, defaultAPI = make(map[string]API), ""
	backendsMu.Unlock()
	t.Cleanup(func() {
		backendsMu.Lock()
		backends, defaultAPI = saved, savedDefault
		backendsMu.Unlock()
	})
}

func TestRegistryDefaultIsFirst(t *testing.T) {
	resetRegistry(t)

	_, ok := Default()
	assert.False(t, ok)

	first, second := &stubAPI{}, &stubAPI{}
	Register("zeta", first)
	Register("alpha", second)

	got, ok := Default()
	require.True(t, ok)
	assert.Same(t, first, got)

	got, ok = Lookup("alpha")
	require.True(t, ok)
	assert.Same(t, second, got)

	assert.Equal(t, []string{"alpha", "zeta"}, Backends())
}

func TestRegistryRejectsDuplicates(t *testing.T) {
	resetRegistry(t)

	Register("x", &stubAPI{})
	assert.Panics(t, func() { Register("x", &stubAPI{}) })
	assert.Panics(t, func() { Register("y", nil) })
}

func TestResourceShapeComposition(t *testing.T) {
	assert.Equal(t, uint32(0x42), ResourceTexture2DArray)
	assert.Equal(t, uint32(0xC2), ResourceTexture2DMultisampleArray)
	assert.Equal(t, ResourceTextureCube, ResourceTextureCubeArray&ResourceBaseShapeMask)
}
