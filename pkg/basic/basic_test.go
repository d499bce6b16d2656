package basic

import (
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/antibyte/retrobasic/pkg/shared"
)

// newTestInterpreter creates an interpreter for testing without external
// dependencies. The output channel is buffered large enough that tests
// never need a concurrent drain, and runs are step-bounded so programs
// with backward jumps stay decidable.
func newTestInterpreter() *Interpreter {
	return &Interpreter{
		prog:       NewProgram(DefaultMaxProgramLines),
		vars:       &VarBank{},
		cursorIdx:  stopIndex,
		sessionID:  "test-session",
		maxLineLen: DefaultMaxLineLength,
		stepLimit:  1000,
		OutputChan: make(chan shared.Message, 4096),
	}
}

// drainText collects the buffered text output lines.
func drainText(in *Interpreter) []string {
	var out []string
	for {
		select {
		case msg := <-in.OutputChan:
			if msg.Type == shared.MessageTypeText {
				out = append(out, msg.Content)
			}
		default:
			return out
		}
	}
}

// vi maps a variable letter to its cell index.
func vi(r rune) int {
	return int(r - 'A')
}

func TestExecuteNumberedLines(t *testing.T) {
	in := newTestInterpreter()

	in.Execute("30 PRINT \"C\"")
	in.Execute("10 PRINT \"A\"")
	in.Execute("20 PRINT \"B\"")
	in.Execute("LIST")

	want := []string{"10 PRINT \"A\"", "20 PRINT \"B\"", "30 PRINT \"C\""}
	if diff := cmp.Diff(want, drainText(in)); diff != "" {
		t.Errorf("LIST mismatch (-want +got):\n%s", diff)
	}

	// A bare line number deletes the line.
	in.Execute("20")
	in.Execute("LIST")
	want = []string{"10 PRINT \"A\"", "30 PRINT \"C\""}
	if diff := cmp.Diff(want, drainText(in)); diff != "" {
		t.Errorf("LIST after delete mismatch (-want +got):\n%s", diff)
	}
}

func TestExecuteReplaceLine(t *testing.T) {
	in := newTestInterpreter()

	in.Execute("10 PRINT \"OLD\"")
	in.Execute("10 PRINT \"NEW\"")
	in.Execute("LIST")

	want := []string{"10 PRINT \"NEW\""}
	if diff := cmp.Diff(want, drainText(in)); diff != "" {
		t.Errorf("LIST mismatch (-want +got):\n%s", diff)
	}
}

func TestExecuteNew(t *testing.T) {
	in := newTestInterpreter()

	in.Execute("10 LET X = 1")
	in.Execute("LET Y = 2")
	in.Execute("NEW")

	if got := drainText(in); len(got) != 1 || got[0] != "Program cleared." {
		t.Errorf("NEW output = %v, want [Program cleared.]", got)
	}
	if in.prog.Len() != 0 {
		t.Errorf("program not cleared, %d lines left", in.prog.Len())
	}
	if in.vars.Get(vi('Y')) != 0 {
		t.Errorf("variable bank not reset by NEW")
	}
}

func TestExecuteQuit(t *testing.T) {
	in := newTestInterpreter()

	if in.Execute("QUIT") != true {
		t.Errorf("QUIT did not end the session")
	}
	if in.Execute("QUITX") != false {
		t.Errorf("QUITX must not be recognized as QUIT")
	}
	if in.Execute("  QUIT  ") != true {
		t.Errorf("QUIT with surrounding whitespace did not end the session")
	}
}

func TestExecuteEmptyInput(t *testing.T) {
	in := newTestInterpreter()

	in.Execute("")
	in.Execute("   \t ")
	if got := drainText(in); len(got) != 0 {
		t.Errorf("empty input produced output: %v", got)
	}
}

func TestExecuteTruncatesOverlongInput(t *testing.T) {
	in := newTestInterpreter()
	in.maxLineLen = 16

	// "PRINT " plus a long literal; the closing quote is cut off, the
	// literal prints up to the truncation point.
	in.Execute("PRINT \"ABCDEFGHIJKLMNOP\"")
	if got := drainText(in); len(got) != 1 || got[0] != "ABCDEFGHI" {
		t.Errorf("truncated PRINT output = %v", got)
	}
}

func TestDirectModeStatements(t *testing.T) {
	in := newTestInterpreter()

	in.Execute("LET X = 5")
	in.Execute("PRINT \"X=\",X")

	want := []string{"X= 5"}
	if diff := cmp.Diff(want, drainText(in)); diff != "" {
		t.Errorf("direct mode output mismatch (-want +got):\n%s", diff)
	}
}

func TestDirectModeGotoDoesNotRunProgram(t *testing.T) {
	in := newTestInterpreter()

	in.Execute("10 PRINT \"STORED\"")
	// Direct GOTO resolves against a synthetic one-line pseudo-program,
	// so the jump cannot reach the stored program.
	in.Execute("GOTO 10")

	if got := drainText(in); len(got) != 0 {
		t.Errorf("direct GOTO produced output: %v", got)
	}
}
