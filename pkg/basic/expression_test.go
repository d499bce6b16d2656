package basic

import "testing"

// evalString evaluates a full expression the way a statement would.
func evalString(in *Interpreter, expr string) int64 {
	return in.evalExpr(newCursor(expr))
}

func TestEvalExpression(t *testing.T) {
	in := newTestInterpreter()
	in.vars.Set(vi('X'), 5)
	in.vars.Dim(vi('A'), 10)
	in.vars.SetCell(vi('A'), 3, 42)

	tests := []struct {
		name string
		expr string
		want int64
	}{
		{"simple addition", "2+3", 5},
		{"precedence", "2+3*4", 14},
		{"parentheses", "(2+3)*4", 20},
		{"left associative subtraction", "20-5-3", 12},
		{"left associative division", "100/10/5", 2},
		{"division by zero", "10/0", 0},
		{"division by zero in subexpression", "5/(3-3)", 0},
		{"unary minus", "-5", -5},
		{"double unary minus", "--5", 5},
		{"unary minus binds tighter", "-2+3", 1},
		{"unary minus after operator", "2*-3", -6},
		{"whitespace everywhere", " \t2 +\t3 * 4 ", 14},
		{"scalar variable", "X", 5},
		{"scalar in expression", "X*X", 25},
		{"unset scalar reads zero", "Q", 0},
		{"array element", "A(3)", 42},
		{"array index expression", "A(1+2)", 42},
		{"array out of range reads zero", "A(100)", 0},
		{"negative array index reads zero", "A(-1)", 0},
		{"undimensioned array reads zero", "B(0)", 0},
		{"garbage primary reads zero", "?", 0},
		{"empty expression", "", 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := evalString(in, tt.expr); got != tt.want {
				t.Errorf("evalExpr(%q) = %d, want %d", tt.expr, got, tt.want)
			}
		})
	}
}

func TestEvalExpressionWraparound(t *testing.T) {
	in := newTestInterpreter()
	in.vars.Set(vi('M'), 1<<62)

	// 2^62 * 4 wraps to 0 in two's complement; no trap.
	if got := evalString(in, "M*4"); got != 0 {
		t.Errorf("wraparound multiply = %d, want 0", got)
	}
}

func TestEvalCondition(t *testing.T) {
	in := newTestInterpreter()
	in.vars.Set(vi('X'), 5)

	tests := []struct {
		name string
		cond string
		want bool
	}{
		{"equal true", "5 = 5", true},
		{"equal false", "5 = 6", false},
		{"not equal", "3 <> 4", true},
		{"not equal false", "3 <> 3", false},
		{"less than", "1 < 2", true},
		{"greater than", "2 > 1", true},
		{"less or equal boundary", "2 <= 2", true},
		{"greater or equal false", "5 >= 6", false},
		{"expressions on both sides", "X * 2 = 10", true},
		{"missing operator", "5", false},
		{"double equals not an operator", "0 == 0", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := in.evalCondition(newCursor(tt.cond)); got != tt.want {
				t.Errorf("evalCondition(%q) = %v, want %v", tt.cond, got, tt.want)
			}
		})
	}
}
