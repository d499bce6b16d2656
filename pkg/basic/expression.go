package basic

// Expression grammar (left-associative, two precedence levels):
//
//	expr    := term (('+' | '-') term)*
//	term    := primary (('*' | '/') primary)*
//	primary := INTEGER | '-' primary | '(' expr ')' | VAR | VAR '(' expr ')'
//
// Arithmetic is int64 with silent wraparound. Division by zero yields 0;
// nothing in this grammar raises an error.

func (in *Interpreter) evalExpr(c *cursor) int64 {
	v := in.evalTerm(c)
	for {
		c.skipSpaces()
		switch c.peek() {
		case '+':
			c.advance()
			v += in.evalTerm(c)
		case '-':
			c.advance()
			v -= in.evalTerm(c)
		default:
			return v
		}
	}
}

func (in *Interpreter) evalTerm(c *cursor) int64 {
	v := in.evalPrimary(c)
	for {
		c.skipSpaces()
		switch c.peek() {
		case '*':
			c.advance()
			v *= in.evalPrimary(c)
		case '/':
			c.advance()
			r := in.evalPrimary(c)
			if r == 0 {
				v = 0
			} else {
				v /= r
			}
		default:
			return v
		}
	}
}

func (in *Interpreter) evalPrimary(c *cursor) int64 {
	c.skipSpaces()
	switch {
	case c.peek() == '(':
		c.advance()
		v := in.evalExpr(c)
		c.match(')')
		return v
	case c.peek() == '-':
		// Unary minus binds tighter than the binary operators.
		c.advance()
		return -in.evalPrimary(c)
	case c.peek() >= '0' && c.peek() <= '9':
		n, _ := c.number()
		return n
	}
	vi, ok := c.varIndex()
	if !ok {
		return 0
	}
	c.skipSpaces()
	if c.peek() == '(' {
		c.advance()
		idx := in.evalExpr(c)
		c.match(')')
		return in.vars.GetCell(vi, idx)
	}
	return in.vars.Get(vi)
}

// Relational operators for conditions.
type relOp int

const (
	relEQ relOp = iota
	relNE
	relLT
	relGT
	relLE
	relGE
)

// parseRelOp recognizes <=, >=, <>, <, >, = with longest match first.
// A bare = is equality here, not assignment.
func parseRelOp(c *cursor) (relOp, bool) {
	c.skipSpaces()
	switch c.peek() {
	case '<':
		c.advance()
		switch c.peek() {
		case '>':
			c.advance()
			return relNE, true
		case '=':
			c.advance()
			return relLE, true
		}
		return relLT, true
	case '>':
		c.advance()
		if c.peek() == '=' {
			c.advance()
			return relGE, true
		}
		return relGT, true
	case '=':
		if c.pos+1 < len(c.src) && c.src[c.pos+1] == '=' {
			// == is not an operator in this dialect.
			return 0, false
		}
		c.advance()
		return relEQ, true
	}
	return 0, false
}

// evalCondition reads expr relop expr and returns the comparison result.
// A missing operator makes the whole condition false.
func (in *Interpreter) evalCondition(c *cursor) bool {
	left := in.evalExpr(c)
	op, ok := parseRelOp(c)
	if !ok {
		return false
	}
	right := in.evalExpr(c)
	switch op {
	case relEQ:
		return left == right
	case relNE:
		return left != right
	case relLT:
		return left < right
	case relGT:
		return left > right
	case relLE:
		return left <= right
	case relGE:
		return left >= right
	}
	return false
}
