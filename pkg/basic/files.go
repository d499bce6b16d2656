package basic

import (
	"fmt"
	"strings"

	"github.com/antibyte/retrobasic/pkg/logger"
)

// FileSystem is the program storage backend a session loads from and saves
// to. Implementations live in pkg/storage (plain files and SQLite).
type FileSystem interface {
	ReadFile(owner, name string) (string, error)
	WriteFile(owner, name, content string) error
}

// cmdLoad replaces the entire program with the contents of a program file.
// On open failure the current program is left unchanged.
func (in *Interpreter) cmdLoad(name string) {
	if in.fs == nil {
		in.print("Cannot open file: " + name)
		return
	}
	content, err := in.fs.ReadFile(in.sessionID, name)
	if err != nil {
		logger.Debug(logger.AreaStorage, "LOAD %q failed: %v", name, err)
		in.print("Cannot open file: " + name)
		return
	}
	in.prog = ParseProgram(content, in.prog.maxLines)
	in.print("Loaded " + name)
}

// cmdSave writes the in-memory program in ascending sorted order.
func (in *Interpreter) cmdSave(name string) {
	content := FormatProgram(in.prog)
	if in.fs == nil {
		in.print("Cannot create file: " + name)
		return
	}
	if err := in.fs.WriteFile(in.sessionID, name, content); err != nil {
		logger.Debug(logger.AreaStorage, "SAVE %q failed: %v", name, err)
		in.print("Cannot create file: " + name)
		return
	}
	in.print("Saved " + name)
}

// ParseProgram reads the program file format: one physical line per
// program line, "<number> <statement text>". Leading whitespace before
// the number is tolerated; physical lines without a leading number are
// skipped.
func ParseProgram(content string, maxLines int) *Program {
	prog := NewProgram(maxLines)
	for _, raw := range strings.Split(content, "\n") {
		raw = strings.TrimRight(raw, "\r")
		c := newCursor(raw)
		num, ok := c.number()
		if !ok {
			continue
		}
		c.skipSpaces()
		prog.InsertOrReplace(int(num), c.rest())
	}
	return prog
}

// FormatProgram renders a program in the same file format.
func FormatProgram(prog *Program) string {
	var sb strings.Builder
	for num, text := range prog.All() {
		fmt.Fprintf(&sb, "%d %s\n", num, text)
	}
	return sb.String()
}
