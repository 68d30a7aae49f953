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

package ir

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"nanocc/ast"
)

func generate(t *testing.T, src string) *Function {
	t.Helper()
	tokens, err := ast.Lex(src)
	require.NoError(t, err)
	prog, err := ast.Parse(tokens)
	require.NoError(t, err)
	module := Generate(prog)
	require.Len(t, module.Functions, 1)
	return module.Functions[0]
}

func TestGenerateConstantEmitsAllocaStoreLoadTriple(t *testing.T) {
	fn := generate(t, "int main(void) { return 2; }")
	require.Len(t, fn.Body, 4)
	assert.IsType(t, &AllocaInstr{}, fn.Body[0])
	assert.IsType(t, &StoreInstr{}, fn.Body[1])
	assert.IsType(t, &LoadInstr{}, fn.Body[2])
	assert.IsType(t, &ReturnInstr{}, fn.Body[3])

	require.NoError(t, Validate(fn))
}

func TestGenerateRegisterNamesAreDensePrefix(t *testing.T) {
	fn := generate(t, "int main(void) { return 1 + 2 * 3; }")
	require.NoError(t, Validate(fn))
}

func TestGenerateLeftSubtreeLowersBeforeRight(t *testing.T) {
	// "1 - 2" — the left constant's alloca/store/load triple must
	// precede the right constant's.
	fn := generate(t, "int main(void) { return 1 - 2; }")
	alloca, ok := fn.Body[0].(*AllocaInstr)
	require.True(t, ok)
	assert.Equal(t, "%0", alloca.Dst)
	store, ok := fn.Body[1].(*StoreInstr)
	require.True(t, ok)
	assert.Equal(t, ImmValue(1), store.Src)
}

func TestGenerateUnaryNotPrintsAsXor(t *testing.T) {
	fn := generate(t, "int main(void) { return ~1; }")
	var unary *UnaryInstr
	for _, instr := range fn.Body {
		if u, ok := instr.(*UnaryInstr); ok {
			unary = u
		}
	}
	require.NotNil(t, unary)
	assert.Equal(t, Not, unary.Op)
	assert.Contains(t, unary.String(), "xor i32")
}

func TestGenerateUnaryNegPrintsAsSub(t *testing.T) {
	fn := generate(t, "int main(void) { return -1; }")
	var unary *UnaryInstr
	for _, instr := range fn.Body {
		if u, ok := instr.(*UnaryInstr); ok {
			unary = u
		}
	}
	require.NotNil(t, unary)
	assert.Equal(t, Neg, unary.Op)
	assert.Contains(t, unary.String(), "sub i32 0,")
}

func TestGenerateEndsInReturnValue(t *testing.T) {
	fn := generate(t, "int main(void) { return 10 % 3; }")
	_, ok := fn.Body[len(fn.Body)-1].(*ReturnInstr)
	assert.True(t, ok)
}
