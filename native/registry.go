// Copyright 2025 The GoGPU Authors
// SPDX-License-Identifier: MIT

package native

import (
	"sort"
	"sync"
)

var (
	backendsMu sync.RWMutex
	backends   = make(map[string]API)
	defaultAPI string
)

// Register makes a backend available by name. The first backend
// registered becomes the default. Register panics if called twice with
// the same name or with a nil API.
func Register(name string, api API) {
	backendsMu.Lock()
	defer backendsMu.Unlock()
	if api == nil {
		panic("native: Register api is nil")
	}
	if _, dup := backends[name]; dup {
		panic("native: Register called twice for backend " + name)
	}
	backends[name] = api
	if defaultAPI == "" {
		defaultAPI = name
	}
}

// Lookup returns the backend registered under name.
func Lookup(name string) (API, bool) {
	backendsMu.RLock()
	defer backendsMu.RUnlock()
	api, ok := backends[name]
	return api, ok
}

// Default returns the first registered backend.
func Default() (API, bool) {
	backendsMu.RLock()
	defer backendsMu.RUnlock()
	if defaultAPI == "" {
		return nil, false
	}
	return backends[defaultAPI], true
}

// Backends returns the sorted names of registered backends.
func Backends() []string {
	backendsMu.RLock()
	defer backendsMu.RUnlock()
	names := make([]string, 0, len(backends))
	for name := range backends {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
