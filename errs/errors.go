// Copyright (c) 2024 The Falcon Contributors
//
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// This program is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with this program. If not, see <http://www.gnu.org/licenses/>.

// Package errs carries the three user-facing error kinds of the compiler:
// lexing, parsing, and I/O. Internal invariant violations are never wrapped
// here; they panic instead.
package errs

import (
	"fmt"

	"github.com/pkg/errors"
)

// LexError reports a failure to tokenize the source text.
type LexError struct {
	msg string
}

func (e *LexError) Error() string { return e.msg }

// NewLexError builds a LexError with a pkg/errors stack attached. The
// stack does not change the error's message, which is the one line the
// CLI prints on stderr; the CLI never prints the stack itself.
func NewLexError(format string, args ...interface{}) error {
	return errors.WithStack(&LexError{msg: fmt.Sprintf(format, args...)})
}

// ParseError reports a failure to build the surface AST from a token
// stream: a mismatched token, premature EOF, or trailing input.
type ParseError struct {
	msg string
}

func (e *ParseError) Error() string { return e.msg }

func NewParseError(format string, args ...interface{}) error {
	return errors.WithStack(&ParseError{msg: fmt.Sprintf(format, args...)})
}

// IOError reports a failure to read the source file or write a generated
// artifact.
type IOError struct {
	msg string
}

func (e *IOError) Error() string { return e.msg }

func NewIOError(format string, args ...interface{}) error {
	return errors.WithStack(&IOError{msg: fmt.Sprintf(format, args...)})
}

// WrapIO builds an IOError whose message is the formatted context
// followed by err's own message.
func WrapIO(err error, format string, args ...interface{}) error {
	return errors.WithStack(&IOError{msg: fmt.Sprintf(format, args...) + ": " + err.Error()})
}
