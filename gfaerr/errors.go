// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package gfaerr implements the fatal error taxonomy raised by the frame
// analysis core. Every error detected by the pipeline is one of the kinds
// below; the core never retries and never returns a partial result.
package gfaerr

import (
	"fmt"

	"github.com/cpmech/gosl/chk"
)

// Kind identifies one of the fatal error categories the core can raise.
type Kind int

// error kinds
const (
	InvalidSchema         Kind = iota // missing required field, wrong type, empty UID
	DuplicateUid                      // UID collision within a scope that requires uniqueness
	UnknownUid                        // referenced UID not defined
	InsufficientSupport              // beam has fewer than two named nodes
	ZeroSegment                       // two consecutive named nodes coincide
	MissingProperty                   // element lacks material / cross-section / orientation at assembly time
	DegenerateOrientation             // up vector parallel to element axis
	DimensionMismatch                 // internal shape invariant violated (indicates a bug)
	SingularSystem                    // constrained system is under- or over-determined
	MisorderedRange                   // IterFromTo's uid2 is reached before uid1
)

var kindNames = [...]string{
	"InvalidSchema",
	"DuplicateUid",
	"UnknownUid",
	"InsufficientSupport",
	"ZeroSegment",
	"MissingProperty",
	"DegenerateOrientation",
	"DimensionMismatch",
	"SingularSystem",
	"MisorderedRange",
}

func (k Kind) String() string {
	if int(k) < 0 || int(k) >= len(kindNames) {
		return "Unknown"
	}
	return kindNames[k]
}

// Error is the concrete error type raised by every core component. Callers
// can switch on Kind() rather than matching message strings.
type Error struct {
	kind Kind
	msg  string
}

// Kind returns the error category.
func (e *Error) Kind() Kind { return e.kind }

// Error implements the error interface.
func (e *Error) Error() string {
	return fmt.Sprintf("%s: %s", e.kind, e.msg)
}

// New builds a *Error of the given kind, in chk.Err's printf-style idiom.
func New(kind Kind, msg string, args ...interface{}) error {
	return &Error{kind: kind, msg: fmt.Sprintf(msg, args...)}
}

// Is reports whether err is a *Error of the given kind.
func Is(err error, kind Kind) bool {
	e, ok := err.(*Error)
	return ok && e.kind == kind
}

// Bug panics via chk.Panic; reserved for invariant violations that indicate
// a defect in the core itself rather than bad input, mirroring the
// teacher's chk.Panic idiom for "this should never happen" conditions.
func Bug(msg string, args ...interface{}) {
	chk.Panic(msg, args...)
}
