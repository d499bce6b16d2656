package basic

import (
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"
)

// fakeFS is an in-memory FileSystem for tests.
type fakeFS struct {
	files map[string]string
}

func newFakeFS() *fakeFS {
	return &fakeFS{files: make(map[string]string)}
}

func (f *fakeFS) ReadFile(owner, name string) (string, error) {
	content, ok := f.files[owner+"/"+name]
	if !ok {
		return "", errors.New("not found")
	}
	return content, nil
}

func (f *fakeFS) WriteFile(owner, name, content string) error {
	f.files[owner+"/"+name] = content
	return nil
}

func TestParseProgram(t *testing.T) {
	content := "  10 PRINT \"A\"\r\n" +
		"no leading number\n" +
		"30 END\n" +
		"20 PRINT \"B\"\n" +
		"\n"
	prog := ParseProgram(content, 100)

	want := []Line{
		{10, "PRINT \"A\""},
		{20, "PRINT \"B\""},
		{30, "END"},
	}
	if diff := cmp.Diff(want, collect(prog)); diff != "" {
		t.Errorf("parsed program mismatch (-want +got):\n%s", diff)
	}
}

func TestFormatProgram(t *testing.T) {
	prog := NewProgram(100)
	prog.InsertOrReplace(20, "END")
	prog.InsertOrReplace(10, "PRINT \"A\"")

	want := "10 PRINT \"A\"\n20 END\n"
	if got := FormatProgram(prog); got != want {
		t.Errorf("FormatProgram = %q, want %q", got, want)
	}
}

func TestLoadSaveRoundTrip(t *testing.T) {
	fs := newFakeFS()

	in := newTestInterpreter()
	in.fs = fs
	in.Execute("10 PRINT \"HI\"")
	in.Execute("20 END")
	in.Execute("SAVE DEMO")

	other := newTestInterpreter()
	other.fs = fs
	other.Execute("LOAD DEMO")
	other.Execute("LIST")

	want := []string{"Loaded DEMO", "10 PRINT \"HI\"", "20 END"}
	if diff := cmp.Diff(want, drainText(other)); diff != "" {
		t.Errorf("load output mismatch (-want +got):\n%s", diff)
	}

	if got := drainText(in); len(got) != 1 || got[0] != "Saved DEMO" {
		t.Errorf("save output = %v, want [Saved DEMO]", got)
	}
}

func TestLoadReplacesProgram(t *testing.T) {
	fs := newFakeFS()
	fs.files["test-session/NEW"] = "10 PRINT \"NEW\"\n"

	in := newTestInterpreter()
	in.fs = fs
	in.Execute("10 PRINT \"OLD\"")
	in.Execute("20 PRINT \"ALSO OLD\"")
	in.Execute("LOAD NEW")
	in.Execute("LIST")

	want := []string{"Loaded NEW", "10 PRINT \"NEW\""}
	if diff := cmp.Diff(want, drainText(in)); diff != "" {
		t.Errorf("LIST after LOAD mismatch (-want +got):\n%s", diff)
	}
}

func TestLoadFailureLeavesProgramUnchanged(t *testing.T) {
	in := newTestInterpreter()
	in.fs = newFakeFS()
	in.Execute("10 PRINT \"KEEP\"")
	in.Execute("LOAD MISSING")
	in.Execute("LIST")

	want := []string{"Cannot open file: MISSING", "10 PRINT \"KEEP\""}
	if diff := cmp.Diff(want, drainText(in)); diff != "" {
		t.Errorf("output mismatch (-want +got):\n%s", diff)
	}
}

func TestLoadSaveUsage(t *testing.T) {
	in := newTestInterpreter()
	in.fs = newFakeFS()

	in.Execute("LOAD")
	in.Execute("SAVE")

	want := []string{"Usage: LOAD filename", "Usage: SAVE filename"}
	if diff := cmp.Diff(want, drainText(in)); diff != "" {
		t.Errorf("usage output mismatch (-want +got):\n%s", diff)
	}
}
