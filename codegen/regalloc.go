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
	"strconv"
	"strings"

	"nanocc/utils"
)

// AssignStackSlots replaces every Pseudo operand with an %rbp-relative
// Stack slot, four bytes per distinct register name, and returns the
// frame size its caller should request via AllocateStackInstr. There is
// no linear-scan allocator here — every pseudo-register spills, by
// design (spec's Non-goal: "register allocation beyond spilling all
// temporaries").
func AssignStackSlots(fn *Func) int {
	maxSlot := -1
	for _, instr := range fn.Body {
		for _, op := range operandsOf(instr) {
			if p, ok := (*op).(Pseudo); ok {
				if n := pseudoSlotIndex(p); n > maxSlot {
					maxSlot = n
				}
			}
		}
	}
	for _, instr := range fn.Body {
		for _, op := range operandsOf(instr) {
			if p, ok := (*op).(Pseudo); ok {
				*op = Stack{Offset: -4 * (pseudoSlotIndex(p) + 1)}
			}
		}
	}
	if maxSlot < 0 {
		return 16 // a zero-temporary function still gets a compliant frame
	}
	return utils.Align16(4 * (maxSlot + 1))
}

// pseudoSlotIndex extracts the numeric suffix of a register/alloca name
// like "%3". Names are dense from 0, so this doubles as the slot index.
func pseudoSlotIndex(p Pseudo) int {
	n, err := strconv.Atoi(strings.TrimPrefix(p.Name, "%"))
	utils.Assert(err == nil, "codegen: malformed pseudo name %q", p.Name)
	return n
}

// operandsOf returns pointers to every operand field of instr so callers
// can rewrite them in place.
func operandsOf(instr AsmInstr) []*Operand {
	switch i := instr.(type) {
	case *MovInstr:
		return []*Operand{&i.Src, &i.Dst}
	case *UnaryInstr:
		return []*Operand{&i.Operand}
	case *BinaryInstr:
		return []*Operand{&i.Src, &i.Dst}
	case *IdivInstr:
		return []*Operand{&i.Operand}
	default:
		return nil
	}
}
