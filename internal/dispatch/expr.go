package dispatch

import (
	"math/big"
	"strings"
)

// Expr is a two-operand arithmetic expression. Nothing beyond a single
// operator between two non-negative integers is ever evaluated.
type Expr struct {
	Left  *big.Int
	Op    byte // one of + - * /
	Right *big.Int
}

func parseExpr(left, op, right string) (Expr, bool) {
	l, ok := new(big.Int).SetString(left, 10)
	if !ok {
		return Expr{}, false
	}
	r, ok := new(big.Int).SetString(right, 10)
	if !ok {
		return Expr{}, false
	}
	var o byte
	switch op {
	case "+":
		o = '+'
	case "-":
		o = '-'
	case "*", "x", "×":
		o = '*'
	case "/", "÷":
		o = '/'
	default:
		return Expr{}, false
	}
	return Expr{Left: l, Op: o, Right: r}, true
}

// String renders the expression in canonical form, e.g. "12 + 7".
func (e Expr) String() string {
	return e.Left.String() + " " + string(e.Op) + " " + e.Right.String()
}

// Eval computes the result as a decimal string. It reports false for
// division by zero. Non-integer quotients are rounded to four places.
func (e Expr) Eval() (string, bool) {
	switch e.Op {
	case '+':
		return new(big.Int).Add(e.Left, e.Right).String(), true
	case '-':
		return new(big.Int).Sub(e.Left, e.Right).String(), true
	case '*':
		return new(big.Int).Mul(e.Left, e.Right).String(), true
	case '/':
		if e.Right.Sign() == 0 {
			return "", false
		}
		q := new(big.Rat).SetFrac(e.Left, e.Right)
		if q.IsInt() {
			return q.Num().String(), true
		}
		s := q.FloatString(4)
		s = strings.TrimRight(s, "0")
		return strings.TrimSuffix(s, "."), true
	}
	return "", false
}
