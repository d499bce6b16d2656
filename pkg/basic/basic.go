// Package basic implements a minimal line-numbered BASIC dialect:
// integer-only expressions, variables A-Z, optional arrays per letter, and
// PRINT/LET/GOTO/IF/END/DIM with line-based control transfer. The
// interpreter never aborts on malformed input; every invalid condition
// degrades to a safe default.
package basic

import (
	"fmt"
	"strings"

	"github.com/antibyte/retrobasic/pkg/configuration"
	"github.com/antibyte/retrobasic/pkg/logger"
	"github.com/antibyte/retrobasic/pkg/shared"
)

// Defaults used when the configuration does not override them.
const (
	DefaultMaxProgramLines = 1000
	DefaultMaxLineLength   = 256
	DefaultChannelBuffer   = 256
)

// Interpreter is one BASIC session. It exclusively owns its program store,
// variable bank, and array bank; there is no shared or package-level state.
// Execution is fully synchronous: one statement completes before the next
// begins.
type Interpreter struct {
	prog *Program
	vars *VarBank

	// Execution cursor: index into the sorted program while running,
	// stopIndex when idle.
	cursorIdx int
	running   bool

	sessionID  string
	fs         FileSystem
	maxLineLen int
	stepLimit  int

	// OutputChan carries everything the session prints. A frontend (the
	// console REPL or a websocket client) drains it.
	OutputChan chan shared.Message
}

// New creates an interpreter session. fs backs LOAD and SAVE and may be
// nil, in which case both report a failure to the operator.
func New(sessionID string, fs FileSystem) *Interpreter {
	return &Interpreter{
		prog:       NewProgram(configuration.GetInt("Interpreter", "max_program_lines", DefaultMaxProgramLines)),
		vars:       &VarBank{},
		cursorIdx:  stopIndex,
		sessionID:  sessionID,
		fs:         fs,
		maxLineLen: configuration.GetInt("Interpreter", "max_line_length", DefaultMaxLineLength),
		stepLimit:  configuration.GetInt("Interpreter", "run_step_limit", 0),
		OutputChan: make(chan shared.Message, configuration.GetInt("Network", "max_channel_buffer", DefaultChannelBuffer)),
	}
}

// SessionID returns the identifier this session was created with.
func (in *Interpreter) SessionID() string {
	return in.sessionID
}

// Close releases the output channel. No output may be produced afterwards.
func (in *Interpreter) Close() {
	close(in.OutputChan)
}

// print emits one line of text output.
func (in *Interpreter) print(text string) {
	in.OutputChan <- shared.Message{Type: shared.MessageTypeText, Content: text, SessionID: in.sessionID}
}

// Execute processes one line of operator input: a numbered line edits the
// program, a session command (RUN, LIST, NEW, QUIT, LOAD, SAVE) runs
// directly, and anything else executes as a direct-mode statement against
// the live variable and array banks. Returns true when the session should
// end (QUIT).
func (in *Interpreter) Execute(input string) bool {
	if len(input) > in.maxLineLen {
		logger.Debug(logger.AreaSession, "input truncated to %d bytes", in.maxLineLen)
		input = input[:in.maxLineLen]
	}

	c := newCursor(input)
	c.skipSpaces()
	if c.eof() {
		return false
	}

	// Leading line number: insert, replace, or delete a program line.
	if ch := c.peek(); ch >= '0' && ch <= '9' {
		num, _ := c.number()
		c.skipSpaces()
		text := c.rest()
		if text == "" {
			in.prog.Delete(int(num))
		} else {
			in.prog.InsertOrReplace(int(num), text)
		}
		return false
	}

	switch {
	case c.keyword("RUN"):
		in.Run()
	case c.keyword("LIST"):
		in.cmdList()
	case c.keyword("NEW"):
		in.cmdNew()
	case c.keyword("QUIT"):
		return true
	case c.keyword("LOAD"):
		if name := strings.TrimSpace(c.rest()); name != "" {
			in.cmdLoad(name)
		} else {
			in.print("Usage: LOAD filename")
		}
	case c.keyword("SAVE"):
		if name := strings.TrimSpace(c.rest()); name != "" {
			in.cmdSave(name)
		} else {
			in.print("Usage: SAVE filename")
		}
	default:
		in.executeDirect(strings.TrimSpace(input))
	}
	return false
}

// executeDirect runs one statement immediately, outside any stored
// program. The target space for GOTO/IF resolution is a synthetic
// one-entry pseudo-program, so jumps fail to resolve and fall through.
func (in *Interpreter) executeDirect(text string) {
	pseudo := NewProgram(1)
	pseudo.InsertOrReplace(0, text)
	in.executeLine(pseudo, text, 0)
}

// cmdList prints the program in ascending line number order.
func (in *Interpreter) cmdList() {
	for num, text := range in.prog.All() {
		in.print(fmt.Sprintf("%d %s", num, text))
	}
}

// cmdNew clears the program and resets the variable and array banks.
func (in *Interpreter) cmdNew() {
	in.prog.Clear()
	in.vars.Reset()
	in.print("Program cleared.")
}
