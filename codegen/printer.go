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

import "fmt"

// assembler accumulates GAS AT&T text the way the teacher's own
// Assembler does: a growing string buffer rather than a slice of lines,
// appended to with fmt.Sprintf.
type assembler struct {
	buf string
}

func (a *assembler) line(format string, args ...interface{}) {
	a.buf += "  " + fmt.Sprintf(format, args...) + "\n"
}

// Print renders the legalized functions of a module as a complete GAS
// AT&T assembly file, including the function prologue/epilogue this
// package never represents as explicit AsmInstr values and the trailing
// non-executable-stack marker.
func Print(funcs []*Func) string {
	a := &assembler{}
	for _, fn := range funcs {
		a.printFunc(fn)
	}
	a.buf += `.section .note.GNU-stack,"",@progbits` + "\n"
	return a.buf
}

func (a *assembler) printFunc(fn *Func) {
	a.buf += fmt.Sprintf(".globl %s\n", fn.Name)
	a.buf += fmt.Sprintf("%s:\n", fn.Name)
	a.line("pushq %%rbp")
	a.line("movq %%rsp, %%rbp")
	for _, instr := range fn.Body {
		a.printInstr(instr)
	}
}

func (a *assembler) printInstr(instr AsmInstr) {
	switch in := instr.(type) {
	case *AllocateStackInstr:
		a.line("subq $%d, %%rsp", in.Size)
	case *MovInstr:
		a.line("movl %s, %s", in.Src, in.Dst)
	case *UnaryInstr:
		a.line("%s %s", unaryMnemonic(in.Op), in.Operand)
	case *BinaryInstr:
		a.line("%s %s, %s", binaryMnemonic(in.Op), in.Src, in.Dst)
	case *IdivInstr:
		a.line("idivl %s", in.Operand)
	case *CdqInstr:
		a.line("cdq")
	case *RetInstr:
		// Expanded to a proper epilogue at print time; AsmInstr itself
		// carries no explicit epilogue instructions.
		a.line("movq %%rbp, %%rsp")
		a.line("popq %%rbp")
		a.line("ret")
	default:
		panic(fmt.Sprintf("codegen: unhandled assembly instruction %T", instr))
	}
}
