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
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"nanocc/ast"
)

func TestPrintContainsLinesInOrder(t *testing.T) {
	tokens, err := ast.Lex("int main(void) { return 2; }")
	require.NoError(t, err)
	prog, err := ast.Parse(tokens)
	require.NoError(t, err)
	module := Generate(prog)

	text := Print(module)
	want := []string{
		"%0 = alloca i32",
		"store i32 2, i32* %0",
		"%1 = load i32, i32* %0",
		"ret i32 %1",
	}
	lastIdx := -1
	for _, line := range want {
		idx := strings.Index(text, line)
		require.Greater(t, idx, lastIdx, "expected %q to appear after the previous line", line)
		lastIdx = idx
	}
	assert.Contains(t, text, "define i32 @main()")
}
