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
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"nanocc/ast"
	"nanocc/ir"
)

func lowerAndSelect(t *testing.T, src string) *Func {
	t.Helper()
	tokens, err := ast.Lex(src)
	require.NoError(t, err)
	prog, err := ast.Parse(tokens)
	require.NoError(t, err)
	module := ir.Generate(prog)
	require.Len(t, module.Functions, 1)
	return Select(module.Functions[0])
}

func TestSelectAllocaEmitsNoInstruction(t *testing.T) {
	fn := lowerAndSelect(t, "int main(void) { return 2; }")
	// alloca, store, load -> Mov+Mov, then Mov-into-eax, then Ret: 4 total.
	require.Len(t, fn.Body, 4)
	assert.IsType(t, &MovInstr{}, fn.Body[0])
	assert.IsType(t, &MovInstr{}, fn.Body[1])
	assert.IsType(t, &MovInstr{}, fn.Body[2])
	assert.IsType(t, &RetInstr{}, fn.Body[3])
}

func TestSelectDivExpandsToCdqIdiv(t *testing.T) {
	fn := lowerAndSelect(t, "int main(void) { return 10 / 3; }")
	var sawCdq, sawIdiv bool
	for _, instr := range fn.Body {
		switch instr.(type) {
		case *CdqInstr:
			sawCdq = true
		case *IdivInstr:
			sawIdiv = true
		}
	}
	assert.True(t, sawCdq)
	assert.True(t, sawIdiv)
}

func TestSelectRemReadsFromDX(t *testing.T) {
	fn := lowerAndSelect(t, "int main(void) { return 10 % 3; }")
	var lastMovFromDX bool
	for i, instr := range fn.Body {
		if idiv, ok := instr.(*IdivInstr); ok {
			_ = idiv
			mov, ok := fn.Body[i+1].(*MovInstr)
			require.True(t, ok)
			reg, ok := mov.Src.(Reg)
			require.True(t, ok)
			lastMovFromDX = reg.Name == DX
		}
	}
	assert.True(t, lastMovFromDX)
}

func TestSelectReturnMovesIntoEAX(t *testing.T) {
	fn := lowerAndSelect(t, "int main(void) { return 1 + 2; }")
	ret, ok := fn.Body[len(fn.Body)-1].(*RetInstr)
	require.True(t, ok)
	_ = ret
	mov, ok := fn.Body[len(fn.Body)-2].(*MovInstr)
	require.True(t, ok)
	reg, ok := mov.Dst.(Reg)
	require.True(t, ok)
	assert.Equal(t, AX, reg.Name)
}
