// Copyright 2025 The GoGPU Authors
// SPDX-License-Identifier: MIT

package slang

import (
	"time"

	"go.uber.org/zap"

	"github.com/gogpu/slang/native"
)

// CompileRequest owns one pending compile job. Configure it, add
// translation units, then call Compile exactly once. Compile consumes
// the request: on success the handle moves into the returned
// CompiledRequest, on failure it is destroyed. Close abandons a request
// that was never compiled and is a no-op afterwards, so
//
//	req, err := session.CreateCompileRequest()
//	if err != nil { ... }
//	defer req.Close()
//
// is always safe.
type CompileRequest struct {
	session *Session
	h       native.RequestHandle
	id      uint64
	log     *zap.Logger
	life    *lifetime

	target      CompileTarget
	units       int
	entryPoints int
}

func (r *CompileRequest) api() native.API { return r.session.api }

// SetCodegenTarget sets the code generation target.
func (r *CompileRequest) SetCodegenTarget(target CompileTarget) {
	r.life.check()
	if _, err := compileTargets.bridge(target); err != nil {
		precondition("%v", err)
	}
	r.target = target
	r.api().SetCodeGenTarget(r.h, target.Native())
}

// Target returns the configured code generation target.
func (r *CompileRequest) Target() CompileTarget { return r.target }

// AddIncludeSearchPath adds a directory searched by #include and import.
func (r *CompileRequest) AddIncludeSearchPath(path string) error {
	r.life.check()
	if err := checkText("add include search path", path); err != nil {
		return err
	}
	r.api().AddSearchPath(r.h, path)
	return nil
}

// AddPreprocessorDefine defines a preprocessor macro for every unit.
func (r *CompileRequest) AddPreprocessorDefine(key, value string) error {
	r.life.check()
	if err := checkText("add preprocessor define", key); err != nil {
		return err
	}
	if err := checkText("add preprocessor define", value); err != nil {
		return err
	}
	r.api().AddPreprocessorDefine(r.h, key, value)
	return nil
}

// AddTranslationUnit adds a translation unit in the given language. An
// empty name leaves the unit unnamed.
func (r *CompileRequest) AddTranslationUnit(language SourceLanguage, name string) (*TranslationUnit, error) {
	r.life.check()
	if _, err := sourceLanguages.bridge(language); err != nil {
		precondition("%v", err)
	}
	if err := checkText("add translation unit", name); err != nil {
		return nil, err
	}
	index := r.api().AddTranslationUnit(r.h, language.Native(), name)
	r.units++
	return &TranslationUnit{
		request:  r,
		tok:      r.life.token(),
		index:    index,
		language: language,
		name:     name,
	}, nil
}

// Compile runs the compiler. It blocks until the native compile call
// returns and cannot be cancelled.
//
// On failure the returned error is a *CompileError holding the
// diagnostic text, or an *EncodingError if that text is not valid UTF-8.
// Either way the request is consumed.
func (r *CompileRequest) Compile() (*CompiledRequest, error) {
	r.life.check()
	r.log.Debug("compile started",
		zap.Stringer("target", r.target),
		zap.Int("units", r.units),
		zap.Int("entry_points", r.entryPoints))

	start := time.Now()
	status := r.api().Compile(r.h)
	elapsed := time.Since(start)

	// Translation units and further configuration die here on both paths.
	r.life.end()

	if status < 0 {
		defer r.release()
		diag, err := decodeText("diagnostics", r.api().DiagnosticOutput(r.h))
		if err != nil {
			r.log.Warn("compile failed with undecodable diagnostics",
				zap.Int32("status", status), zap.Duration("elapsed", elapsed))
			return nil, err
		}
		r.log.Warn("compile failed",
			zap.Int32("status", status),
			zap.Duration("elapsed", elapsed),
			zap.Int("diagnostic_bytes", len(diag)))
		return nil, &CompileError{Diagnostics: diag}
	}

	r.log.Debug("compile finished", zap.Duration("elapsed", elapsed))
	c := newCompiledRequest(r)
	r.h = nil
	return c, nil
}

// Close destroys a request that was never compiled. After Compile, or a
// previous Close, it does nothing.
func (r *CompileRequest) Close() {
	if r.h == nil {
		return
	}
	r.life.end()
	r.release()
}

func (r *CompileRequest) release() {
	r.api().DestroyCompileRequest(r.h)
	r.h = nil
	r.session.requestReleased()
	r.log.Debug("compile request destroyed")
}
