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

// Package compile wires the lexer, parser, IR generator, and backend
// passes into the pipeline stages the CLI exposes, and owns the
// external-collaborator boundary (the C preprocessor and system
// assembler/linker).
package compile

import (
	"github.com/sirupsen/logrus"

	"nanocc/ast"
	"nanocc/codegen"
	"nanocc/ir"
)

// Lex tokenizes source text, logging the stage transition at debug
// level the way the teacher's DebugPrintLexicalToken flag does, but
// through a real structured logger instead of a compile-time constant.
func Lex(log *logrus.Logger, src string) ([]ast.Token, error) {
	log.Debug("stage: lex")
	tokens, err := ast.Lex(src)
	if err != nil {
		return nil, err
	}
	log.WithField("tokens", len(tokens)).Debug("lex complete")
	return tokens, nil
}

// ParseProgram tokenizes and parses source text into a surface AST.
func ParseProgram(log *logrus.Logger, src string) (*ast.Program, error) {
	tokens, err := Lex(log, src)
	if err != nil {
		return nil, err
	}
	log.Debug("stage: parse")
	prog, err := ast.Parse(tokens)
	if err != nil {
		return nil, err
	}
	log.WithField("function", prog.Function.Name).Debug("parse complete")
	return prog, nil
}

// Lower parses source text and lowers it to linear IR.
func Lower(log *logrus.Logger, src string) (*ir.Module, error) {
	prog, err := ParseProgram(log, src)
	if err != nil {
		return nil, err
	}
	log.Debug("stage: lower")
	module := ir.Generate(prog)
	for _, fn := range module.Functions {
		if err := ir.Validate(fn); err != nil {
			// An IR generator bug, not a user-facing error — panic per
			// the compiler's error-handling design rather than surface
			// it as a LexError/ParseError/IOError.
			panic(err)
		}
	}
	return module, nil
}

// CodeGen runs source text through every stage, producing the final
// legalized assembly text for all functions in the module.
func CodeGen(log *logrus.Logger, src string) (string, error) {
	module, err := Lower(log, src)
	if err != nil {
		return "", err
	}

	var funcs []*codegen.Func
	for _, fn := range module.Functions {
		log.WithField("function", fn.Name).Debug("stage: select")
		asmFn := codegen.Select(fn)

		log.WithField("function", fn.Name).Debug("stage: regalloc")
		frameSize := codegen.AssignStackSlots(asmFn)

		log.WithField("function", fn.Name).Debug("stage: legalize")
		codegen.Legalize(asmFn, frameSize)

		funcs = append(funcs, asmFn)
	}

	log.Debug("stage: print")
	return codegen.Print(funcs), nil
}
