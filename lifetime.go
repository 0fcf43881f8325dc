// Copyright 2025 The GoGPU Authors
// SPDX-License-Identifier: MIT

package slang

// lifetime is the generation tag of an owner. Borrowers capture a token
// at creation; ending the lifetime bumps the generation so every token
// taken before it goes stale.
type lifetime struct {
	what string
	gen  uint64
}

func newLifetime(what string) *lifetime {
	return &lifetime{what: what, gen: 1}
}

func (l *lifetime) token() token {
	l.check()
	return token{l: l, gen: l.gen}
}

func (l *lifetime) ended() bool { return l.gen == 0 }

// end expires every outstanding token. It is idempotent.
func (l *lifetime) end() {
	l.gen = 0
}

func (l *lifetime) check() {
	if l.ended() {
		precondition("use of %s after it was released", l.what)
	}
}

// token is a borrower's claim on an owner's lifetime.
type token struct {
	l   *lifetime
	gen uint64
}

func (t token) check() {
	if t.l == nil {
		precondition("use of zero-value view")
	}
	if t.l.gen != t.gen {
		precondition("use of %s view after it was released", t.l.what)
	}
}
