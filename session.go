// Copyright 2025 The GoGPU Authors
// SPDX-License-Identifier: MIT

package slang

import (
	"go.uber.org/zap"

	"github.com/gogpu/slang/native"
)

// Options configures a Session.
type Options struct {
	// Backend is the native compiler. If nil, the default registered
	// backend is used.
	Backend native.API

	// Logger receives lifecycle and compile events. If nil, the package
	// logger is used.
	Logger *zap.Logger
}

// DefaultOptions returns options that use the registered backend and
// the package logger.
func DefaultOptions() Options {
	return Options{}
}

// Session owns one native compiler session. Compile requests are
// created from it and must all be closed before the session is.
//
// A Session and everything derived from it is not safe for concurrent
// use; give each goroutine its own Session.
type Session struct {
	api    native.API
	h      native.SessionHandle
	log    *zap.Logger
	life   *lifetime
	nextID uint64
	live   int
}

// NewSession creates a session using DefaultOptions.
func NewSession() (*Session, error) {
	return NewSessionWithOptions(DefaultOptions())
}

// NewSessionWithOptions creates a session.
func NewSessionWithOptions(opts Options) (*Session, error) {
	api := opts.Backend
	if api == nil {
		var ok bool
		if api, ok = native.Default(); !ok {
			return nil, ErrNoBackend
		}
	}
	log := opts.Logger
	if log == nil {
		log = Logger()
	}

	h := api.CreateSession()
	if h == nil {
		return nil, &ConstructionError{What: "session"}
	}
	log.Debug("session created")
	return &Session{
		api:  api,
		h:    h,
		log:  log,
		life: newLifetime("session"),
	}, nil
}

// CreateCompileRequest allocates a compile request bound to s. The
// caller owns the request and must Close it or Compile it.
func (s *Session) CreateCompileRequest() (*CompileRequest, error) {
	s.life.check()
	h := s.api.CreateCompileRequest(s.h)
	if h == nil {
		return nil, &ConstructionError{What: "compile request"}
	}
	s.nextID++
	s.live++
	r := &CompileRequest{
		session: s,
		h:       h,
		id:      s.nextID,
		log:     s.log.With(zap.Uint64("request", s.nextID)),
		life:    newLifetime("compile request"),
	}
	r.log.Debug("compile request created")
	return r, nil
}

// LiveRequests returns the number of requests, pending or compiled,
// that still hold a native handle.
func (s *Session) LiveRequests() int { return s.live }

// Close destroys the session handle. It panics if requests created from
// s are still open. Calling Close more than once is a no-op.
func (s *Session) Close() {
	if s.life.ended() {
		return
	}
	if s.live > 0 {
		precondition("session closed with %d live compile request(s)", s.live)
	}
	s.life.end()
	s.api.DestroySession(s.h)
	s.h = nil
	s.log.Debug("session destroyed")
}

// requestReleased is called once per request when its handle is destroyed.
func (s *Session) requestReleased() {
	s.live--
}
