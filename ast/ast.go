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

package ast

import (
	"fmt"
	"strings"
)

// Node is the root of the AST's node hierarchy. Unlike a tagged union,
// Go programs distinguish concrete node kinds with a type switch.
type Node interface {
	String() string
}

// Expr is any node that yields a 32-bit signed integer value.
type Expr interface {
	Node
	exprNode()
}

// Stmt is any node that appears in a function body.
type Stmt interface {
	Node
	stmtNode()
}

// Program is a single translation unit: exactly one function definition,
// per this subset's Non-goals.
type Program struct {
	Function *Function
}

func (p *Program) String() string { return fmt.Sprintf("Program(%s)", p.Function) }

// Function is a function definition with no parameters and an int
// return type — int <name>(void) { ... } is the only shape this subset
// accepts.
type Function struct {
	Name string
	Body []Stmt
}

func (f *Function) String() string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "Function(%s, [", f.Name)
	for i, stmt := range f.Body {
		if i > 0 {
			sb.WriteString(", ")
		}
		sb.WriteString(stmt.String())
	}
	sb.WriteString("])")
	return sb.String()
}

// ReturnStmt is "return <expr>;" — the only statement form in this
// subset.
type ReturnStmt struct {
	Value Expr
}

func (*ReturnStmt) stmtNode()        {}
func (r *ReturnStmt) String() string { return fmt.Sprintf("ReturnStmt(%s)", r.Value) }

// ConstantExpr is a decimal integer literal.
type ConstantExpr struct {
	Value int32
}

func (*ConstantExpr) exprNode()        {}
func (c *ConstantExpr) String() string { return fmt.Sprintf("Constant(%d)", c.Value) }

// UnaryOp identifies which unary operator a UnaryExpr applies.
type UnaryOp int

const (
	UnaryNeg UnaryOp = iota // -
	UnaryNot                // ~ (bitwise complement)
)

func (op UnaryOp) String() string {
	switch op {
	case UnaryNeg:
		return "-"
	case UnaryNot:
		return "~"
	default:
		return "?"
	}
}

// UnaryExpr applies a prefix operator to a single operand. Logical
// negation ('!') is out of scope until this subset grows comparisons.
type UnaryExpr struct {
	Op      UnaryOp
	Operand Expr
}

func (*UnaryExpr) exprNode() {}
func (u *UnaryExpr) String() string {
	return fmt.Sprintf("Unary(%s %s)", u.Op, u.Operand)
}

// BinaryOp identifies which binary operator a BinaryExpr applies.
type BinaryOp int

const (
	BinaryAdd BinaryOp = iota
	BinarySub
	BinaryMul
	BinaryDiv
	BinaryMod
)

func (op BinaryOp) String() string {
	switch op {
	case BinaryAdd:
		return "+"
	case BinarySub:
		return "-"
	case BinaryMul:
		return "*"
	case BinaryDiv:
		return "/"
	case BinaryMod:
		return "%"
	default:
		return "?"
	}
}

// BinaryExpr applies an infix arithmetic operator. Precedence and
// associativity are resolved once, at parse time; the tree itself
// carries no operator priority.
type BinaryExpr struct {
	Op          BinaryOp
	Left, Right Expr
}

func (*BinaryExpr) exprNode() {}
func (b *BinaryExpr) String() string {
	return fmt.Sprintf("Binary(%s %s %s)", b.Left, b.Op, b.Right)
}
