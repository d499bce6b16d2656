package basic

import "github.com/antibyte/retrobasic/pkg/logger"

// Run executes the stored program from its first line. Every RUN starts
// from a clean slate: the variable bank is zeroed and all arrays are
// released, even on repeated RUNs. Execution steps until a statement
// returns the stop sentinel or the cursor leaves the program.
//
// A program with an unconditional backward jump runs forever by design.
// The configured step limit (run_step_limit, 0 = unbounded) exists so
// harnesses can bound such runs externally.
func (in *Interpreter) Run() {
	if in.prog.Len() == 0 {
		in.print("No program.")
		return
	}

	in.vars.Reset()
	in.cursorIdx = 0
	in.running = true

	steps := 0
	for in.cursorIdx >= 0 && in.cursorIdx < in.prog.Len() {
		if in.stepLimit > 0 && steps >= in.stepLimit {
			logger.Warn(logger.AreaBasic, "run aborted after %d steps (run_step_limit)", steps)
			break
		}
		line := in.prog.Line(in.cursorIdx)
		in.cursorIdx = in.executeLine(in.prog, line.Text, in.cursorIdx)
		steps++
	}

	in.running = false
	in.cursorIdx = stopIndex
}

// Running reports whether a RUN is in progress.
func (in *Interpreter) Running() bool {
	return in.running
}
