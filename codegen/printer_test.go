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

package codegen

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"nanocc/ast"
	"nanocc/ir"
)

func fullPipeline(t *testing.T, src string) string {
	t.Helper()
	tokens, err := ast.Lex(src)
	require.NoError(t, err)
	prog, err := ast.Parse(tokens)
	require.NoError(t, err)
	module := ir.Generate(prog)
	require.Len(t, module.Functions, 1)
	fn := Select(module.Functions[0])
	frameSize := AssignStackSlots(fn)
	Legalize(fn, frameSize)
	return Print([]*Func{fn})
}

func TestPrintHasPrologueAndEpilogue(t *testing.T) {
	text := fullPipeline(t, "int main(void) { return 2; }")
	assert.Contains(t, text, ".globl main")
	assert.Contains(t, text, "main:")
	assert.Contains(t, text, "pushq %rbp")
	assert.Contains(t, text, "movq %rsp, %rbp")
	assert.Contains(t, text, "popq %rbp")
	assert.Contains(t, text, "ret")
}

func TestPrintEndsWithNoteGNUStack(t *testing.T) {
	text := fullPipeline(t, "int main(void) { return 2; }")
	assert.True(t, strings.HasSuffix(text, `.section .note.GNU-stack,"",@progbits`+"\n"))
}

func TestPrintAllocateStackIsSubq(t *testing.T) {
	text := fullPipeline(t, "int main(void) { return 2; }")
	assert.Contains(t, text, "subq $")
}
