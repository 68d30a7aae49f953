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

package compile

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/samber/lo"
	"github.com/sirupsen/logrus"

	"nanocc/ast"
	"nanocc/ir"
)

// Stage selects how far the Driver carries a source file, mirroring the
// CLI's mutually exclusive stage flags.
type Stage int

const (
	StageFull Stage = iota
	StageLex
	StageParse
	StageLLVM
	StageCodegen
)

// Driver owns the filesystem and external-process side of compilation:
// reading the source, invoking the C preprocessor ahead of lexing, and
// invoking the system assembler/linker after the backend runs. The
// pipeline stages themselves (Lex/ParseProgram/Lower/CodeGen) never
// touch a file or a subprocess.
type Driver struct {
	Log *logrus.Logger
}

func NewDriver(log *logrus.Logger) *Driver {
	return &Driver{Log: log}
}

// Run executes stage against the file at path and returns any user-
// visible text the stage produces (tokens, AST, or nothing for the full
// compile, whose output is the executable itself).
func (d *Driver) Run(path string, stage Stage) (string, error) {
	base := strings.TrimSuffix(path, filepath.Ext(path))

	preprocessed, err := d.preprocess(path)
	if err != nil {
		return "", err
	}
	defer os.Remove(preprocessed)

	src, err := d.readFile(preprocessed)
	if err != nil {
		return "", err
	}

	switch stage {
	case StageLex:
		tokens, err := Lex(d.Log, src)
		if err != nil {
			return "", err
		}
		return formatTokens(tokens), nil

	case StageParse:
		prog, err := ParseProgram(d.Log, src)
		if err != nil {
			return "", err
		}
		return prog.String(), nil

	case StageLLVM:
		module, err := Lower(d.Log, src)
		if err != nil {
			return "", err
		}
		text := ir.Print(module)
		if err := d.writeFile(base+".ll", text); err != nil {
			return "", err
		}
		return "", nil

	case StageCodegen:
		if _, err := CodeGen(d.Log, src); err != nil {
			return "", err
		}
		return "", nil

	default:
		return "", d.compileFull(base, src)
	}
}

// compileFull runs the full pipeline, writes the assembly file, and
// hands off to the system assembler/linker. The .s file is kept on disk
// if the assemble/link step fails, so the failure can be inspected; it
// and the preprocessed .i file are both removed on success.
func (d *Driver) compileFull(base, src string) error {
	asmText, err := CodeGen(d.Log, src)
	if err != nil {
		return err
	}

	asmPath := base + ".s"
	if err := d.writeFile(asmPath, asmText); err != nil {
		return err
	}

	d.Log.WithField("cc", asmPath).Info("assembling and linking")
	if _, err := d.assembleAndLink(asmPath, base); err != nil {
		return err
	}
	return os.Remove(asmPath)
}

func formatTokens(tokens []ast.Token) string {
	lines := lo.Map(tokens, func(tok ast.Token, _ int) string {
		return tok.String()
	})
	return strings.Join(lines, "\n") + "\n"
}
