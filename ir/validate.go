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
	"fmt"
	"strconv"
	"strings"

	"nanocc/utils"
)

// Validate checks the invariants spec.md §8 requires mechanically
// rather than leaving them as prose: every register is defined exactly
// once (SSA), the set of defined register numbers for the function
// is a dense prefix of the naturals {0, ..., k}, and the body ends in a
// ReturnInstr (an empty body fails this check). A violation here is an
// internal bug in the IR generator, not a user-facing error, so it
// returns a plain error for tests to assert against rather than one of
// the errs package's user-facing kinds.
func Validate(fn *Function) error {
	if len(fn.Body) == 0 {
		return fmt.Errorf("ir: function %s does not end in ReturnValue", fn.Name)
	}
	if _, ok := fn.Body[len(fn.Body)-1].(*ReturnInstr); !ok {
		return fmt.Errorf("ir: function %s does not end in ReturnValue", fn.Name)
	}
	defined := utils.NewSet[int]()
	for _, instr := range fn.Body {
		for _, dst := range definedRegs(instr) {
			n, err := regNumber(dst)
			if err != nil {
				return err
			}
			if !defined.Add(n) {
				return fmt.Errorf("ir: register %s defined more than once", dst)
			}
		}
	}
	if defined.Length() == 0 {
		return nil
	}
	max := -1
	defined.ForEach(func(n int) {
		if n > max {
			max = n
		}
	})
	for n := 0; n <= max; n++ {
		if !defined.Contains(n) {
			return fmt.Errorf("ir: register numbering has a gap at %%%d", n)
		}
	}
	return nil
}

func definedRegs(instr Instr) []string {
	switch i := instr.(type) {
	case *AllocaInstr:
		// Alloca's destination is drawn from the same counter as every
		// register, so it still occupies a slot in the dense numbering
		// even though it names a stack slot rather than an SSA value.
		return []string{i.Dst}
	case *LoadInstr:
		return []string{i.Dst}
	case *UnaryInstr:
		return []string{i.Dst}
	case *BinaryInstr:
		return []string{i.Dst}
	default:
		return nil
	}
}

func regNumber(name string) (int, error) {
	if !strings.HasPrefix(name, "%") {
		return 0, fmt.Errorf("ir: malformed register name %q", name)
	}
	return strconv.Atoi(name[1:])
}
