package basic

// cursor is a parse position over one line of statement text. All parsing
// in the interpreter goes through it; running off the end is represented
// as an explicit eof condition, never an index fault.
type cursor struct {
	src string
	pos int
}

func newCursor(src string) *cursor {
	return &cursor{src: src}
}

func (c *cursor) eof() bool {
	return c.pos >= len(c.src)
}

// peek returns the current byte, or 0 at end of text.
func (c *cursor) peek() byte {
	if c.eof() {
		return 0
	}
	return c.src[c.pos]
}

func (c *cursor) advance() {
	if !c.eof() {
		c.pos++
	}
}

// skipSpaces moves past spaces and tabs. Whitespace is skippable at every
// point between tokens.
func (c *cursor) skipSpaces() {
	for !c.eof() && (c.src[c.pos] == ' ' || c.src[c.pos] == '\t') {
		c.pos++
	}
}

// match consumes ch if it is the next non-space byte.
func (c *cursor) match(ch byte) bool {
	c.skipSpaces()
	if c.peek() == ch {
		c.pos++
		return true
	}
	return false
}

// number parses an unsigned decimal integer. Reports false without
// consuming anything when the next token is not a digit.
func (c *cursor) number() (int64, bool) {
	c.skipSpaces()
	if c.eof() || c.src[c.pos] < '0' || c.src[c.pos] > '9' {
		return 0, false
	}
	var n int64
	for !c.eof() && c.src[c.pos] >= '0' && c.src[c.pos] <= '9' {
		n = n*10 + int64(c.src[c.pos]-'0')
		c.pos++
	}
	return n, true
}

// varIndex parses a single uppercase letter A-Z and returns its cell
// index (A = 0). Reports false without consuming anything otherwise.
func (c *cursor) varIndex() (int, bool) {
	c.skipSpaces()
	if ch := c.peek(); ch >= 'A' && ch <= 'Z' {
		c.pos++
		return int(ch - 'A'), true
	}
	return 0, false
}

// keyword consumes word if the text at the cursor starts with it followed
// by a word boundary (space, tab, or end of text). Matching is exact and
// case-sensitive; no keyword lowering.
func (c *cursor) keyword(word string) bool {
	c.skipSpaces()
	end := c.pos + len(word)
	if end > len(c.src) || c.src[c.pos:end] != word {
		return false
	}
	if end < len(c.src) && c.src[end] != ' ' && c.src[end] != '\t' {
		return false
	}
	c.pos = end
	return true
}

// rest returns the untrimmed remainder of the line from the cursor.
func (c *cursor) rest() string {
	return c.src[c.pos:]
}
