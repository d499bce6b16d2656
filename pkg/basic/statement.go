package basic

import (
	"strconv"
	"strings"

	"github.com/antibyte/retrobasic/pkg/logger"
)

// stopIndex is the sentinel next-index value that ends a RUN.
const stopIndex = -1

// executeLine executes one statement and returns the next cursor value:
// current+1 for fallthrough, a resolved target index for a jump, or
// stopIndex for END. Malformed input never aborts execution; parsing is
// best-effort and degrades to fallthrough.
func (in *Interpreter) executeLine(prog *Program, text string, current int) int {
	c := newCursor(text)

	switch {
	case c.keyword("PRINT"):
		return in.stmtPrint(c, current)
	case c.keyword("LET"):
		return in.stmtLet(c, current)
	case c.keyword("GOTO"):
		return in.stmtGoto(c, prog, current)
	case c.keyword("IF"):
		return in.stmtIf(c, prog, current)
	case c.keyword("END"):
		return stopIndex
	case c.keyword("DIM"):
		return in.stmtDim(c, current)
	}

	// Unrecognized statement: no-op.
	if strings.TrimSpace(text) != "" {
		logger.Debug(logger.AreaBasic, "unrecognized statement ignored: %q", text)
	}
	return current + 1
}

// stmtPrint handles PRINT item (, item)*. Items are quoted literals
// (printed verbatim, no escaping) or expressions (printed as decimal).
// A comma prints a single space; a newline always terminates the output.
func (in *Interpreter) stmtPrint(c *cursor, current int) int {
	var out strings.Builder
	for {
		c.skipSpaces()
		if c.eof() {
			break
		}
		if c.peek() == '"' {
			c.advance()
			for !c.eof() && c.peek() != '"' {
				out.WriteByte(c.peek())
				c.advance()
			}
			if c.peek() == '"' {
				c.advance()
			}
		} else {
			out.WriteString(strconv.FormatInt(in.evalExpr(c), 10))
		}
		c.skipSpaces()
		if c.peek() == ',' {
			c.advance()
			out.WriteByte(' ')
			continue
		}
		break
	}
	in.print(out.String())
	return current + 1
}

// stmtLet handles LET VAR = expr and LET VAR(expr) = expr.
func (in *Interpreter) stmtLet(c *cursor, current int) int {
	vi, ok := c.varIndex()
	if !ok {
		return current + 1
	}
	c.skipSpaces()
	if c.peek() == '(' {
		c.advance()
		idx := in.evalExpr(c)
		c.match(')')
		c.match('=')
		in.vars.SetCell(vi, idx, in.evalExpr(c))
	} else {
		c.match('=')
		in.vars.Set(vi, in.evalExpr(c))
	}
	return current + 1
}

// stmtGoto resolves the target line number against the program store. An
// unresolvable target falls through to the next sequential line.
func (in *Interpreter) stmtGoto(c *cursor, prog *Program, current int) int {
	target, ok := c.number()
	if !ok {
		return current + 1
	}
	if i := prog.FindIndex(int(target)); i >= 0 {
		return i
	}
	logger.Debug(logger.AreaBasic, "GOTO %d: no such line, falling through", target)
	return current + 1
}

// stmtIf handles IF cond [THEN] number. THEN is optional; when the
// condition is false the target is not even parsed.
func (in *Interpreter) stmtIf(c *cursor, prog *Program, current int) int {
	cond := in.evalCondition(c)
	c.skipSpaces()
	// THEN is consumed as a bare prefix, with or without a following space.
	if strings.HasPrefix(c.rest(), "THEN") {
		c.pos += len("THEN")
	}
	if !cond {
		return current + 1
	}
	return in.stmtGoto(c, prog, current)
}

// stmtDim handles DIM VAR(expr). Sizes outside [1, 65536] are ignored.
func (in *Interpreter) stmtDim(c *cursor, current int) int {
	vi, ok := c.varIndex()
	if !ok {
		return current + 1
	}
	c.skipSpaces()
	if c.peek() == '(' {
		c.advance()
		size := in.evalExpr(c)
		c.match(')')
		in.vars.Dim(vi, size)
	}
	return current + 1
}
