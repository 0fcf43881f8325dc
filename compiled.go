// Copyright 2025 The GoGPU Authors
// SPDX-License-Identifier: MIT

package slang

import (
	"go.uber.org/zap"

	"github.com/gogpu/slang/native"
)

// CompiledRequest owns a successfully compiled request. Generated code
// and the reflection graph are borrowed from it: byte slices returned by
// EntryPointCode and every reflection view become invalid at Close.
// Copy bytes (bytes.Clone) or take a snapshot to keep data longer.
type CompiledRequest struct {
	session     *Session
	h           native.RequestHandle
	id          uint64
	log         *zap.Logger
	life        *lifetime
	entryPoints int
}

func newCompiledRequest(r *CompileRequest) *CompiledRequest {
	return &CompiledRequest{
		session:     r.session,
		h:           r.h,
		id:          r.id,
		log:         r.log,
		life:        newLifetime("compiled request"),
		entryPoints: r.entryPoints,
	}
}

func (c *CompiledRequest) api() native.API { return c.session.api }

// EntryPointCount returns the number of entry points declared on the
// request before compilation.
func (c *CompiledRequest) EntryPointCount() int { return c.entryPoints }

// EntryPointCode returns the generated code for an entry point. The
// index must come from AddEntryPoint on the request that produced c.
// The returned slice aliases compiler memory; do not modify it or keep
// it past Close.
func (c *CompiledRequest) EntryPointCode(index EntryPointIndex) []byte {
	c.life.check()
	if index.session != c.session || index.request != c.id {
		precondition("entry point index %d belongs to another request", index.index)
	}
	if index.index < 0 || int(index.index) >= c.entryPoints {
		precondition("entry point index %d out of range [0,%d)", index.index, c.entryPoints)
	}
	return c.api().EntryPointCode(c.h, index.index)
}

// Diagnostics returns the warnings and notes emitted by the compile.
func (c *CompiledRequest) Diagnostics() (string, error) {
	c.life.check()
	return decodeText("diagnostics", c.api().DiagnosticOutput(c.h))
}

// Reflection returns the root of the reflection graph.
func (c *CompiledRequest) Reflection() Reflection {
	c.life.check()
	h := c.api().GetReflection(c.h)
	if h == nil {
		precondition("compiled request has no reflection")
	}
	return Reflection{view: view{c: c, tok: c.life.token()}, h: h}
}

// Close destroys the request handle and invalidates everything borrowed
// from it. Calling Close more than once is a no-op.
func (c *CompiledRequest) Close() {
	if c.life.ended() {
		return
	}
	c.life.end()
	c.api().DestroyCompileRequest(c.h)
	c.h = nil
	c.session.requestReleased()
	c.log.Debug("compiled request destroyed")
}

// view is the borrow shared by all reflection types.
type view struct {
	c   *CompiledRequest
	tok token
}

// api checks the borrow and returns the backend.
func (v view) api() native.Reflector {
	v.tok.check()
	return v.c.session.api
}
