// Copyright 2025 The GoGPU Authors
// SPDX-License-Identifier: MIT

package slang

// TranslationUnit is one source unit of a CompileRequest. It holds no
// native handle of its own and is usable only while its request is
// pending; after Compile or Close every method panics.
type TranslationUnit struct {
	request  *CompileRequest
	tok      token
	index    int32
	language SourceLanguage
	name     string
}

// EntryPointIndex identifies an entry point within the request that
// declared it. It is meaningful only to the CompiledRequest produced by
// that request.
type EntryPointIndex struct {
	request uint64
	session *Session
	index   int32
}

// Index returns the request-scoped index.
func (e EntryPointIndex) Index() int { return int(e.index) }

// Index returns the request-scoped unit index.
func (u *TranslationUnit) Index() int { return int(u.index) }

// Language returns the unit's source language.
func (u *TranslationUnit) Language() SourceLanguage { return u.language }

// Name returns the unit name, or "" if unnamed.
func (u *TranslationUnit) Name() string { return u.name }

// AddSourceFile adds a file to the unit. The compiler reads the file.
func (u *TranslationUnit) AddSourceFile(path string) error {
	u.tok.check()
	if err := checkText("add source file", path); err != nil {
		return err
	}
	u.request.api().AddTranslationUnitSourceFile(u.request.h, u.index, path)
	return nil
}

// AddSourceString adds in-memory source to the unit. The path appears
// in diagnostics and is the base for relative #include resolution.
func (u *TranslationUnit) AddSourceString(path, source string) error {
	u.tok.check()
	if err := checkText("add source string", path); err != nil {
		return err
	}
	if err := checkText("add source string", source); err != nil {
		return err
	}
	u.request.api().AddTranslationUnitSourceString(u.request.h, u.index, path, source)
	return nil
}

// AddEntryPoint declares an entry point in the unit.
func (u *TranslationUnit) AddEntryPoint(name string, stage Stage) (EntryPointIndex, error) {
	u.tok.check()
	if _, err := stages.bridge(stage); err != nil {
		precondition("%v", err)
	}
	if err := checkText("add entry point", name); err != nil {
		return EntryPointIndex{}, err
	}
	r := u.request
	index := r.api().AddEntryPoint(r.h, u.index, name, stage.Native())
	r.entryPoints++
	return EntryPointIndex{request: r.id, session: r.session, index: index}, nil
}
