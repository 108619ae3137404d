package cli

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/idilsaglam/tada/internal/ui"
)

// runScript runs `tada script` over input with the mono theme.
func runScript(t *testing.T, input string, args ...string) (stdout, stderr string, code int) {
	t.Helper()
	defer ui.SetTheme("classic")

	var out, errBuf bytes.Buffer
	code = Run(append([]string{"script"}, args...), Options{
		Theme:  "mono",
		Stdin:  strings.NewReader(input),
		Stdout: &out,
		Stderr: &errBuf,
	})
	return out.String(), errBuf.String(), code
}

func TestScriptCreateAndDelete(t *testing.T) {
	stdout, stderr, code := runScript(t, "add buy milk\nadd walk dog\nrm 1\n")

	if code != ExitOK {
		t.Fatalf("exit code = %d, stderr = %q", code, stderr)
	}
	for _, want := range []string{"ok added 1", "ok added 2", "ok removed 1", "2: walk dog [delete]", "Total 1"} {
		if !strings.Contains(stdout, want) {
			t.Errorf("stdout missing %q:\n%s", want, stdout)
		}
	}
	if strings.Contains(stdout, "1: buy milk") {
		t.Errorf("deleted todo still listed:\n%s", stdout)
	}
}

func TestScriptDeleteMissingOnEmpty(t *testing.T) {
	stdout, stderr, code := runScript(t, "rm 99\n")
	if code != ExitOK || stderr != "" {
		t.Fatalf("exit code = %d, stderr = %q", code, stderr)
	}
	if !strings.Contains(stdout, "no todo 99, nothing removed") || !strings.Contains(stdout, "no todos") {
		t.Fatalf("unexpected output:\n%s", stdout)
	}
}

func TestScriptEmptyTitle(t *testing.T) {
	stdout, _, code := runScript(t, "add\n# comment\n\nls\n")
	if code != ExitOK {
		t.Fatalf("exit code = %d", code)
	}
	if !strings.Contains(stdout, "1:  [delete]") {
		t.Fatalf("empty title not listed:\n%s", stdout)
	}
	if strings.Count(stdout, "Todos") != 1 {
		t.Fatalf("list printed again after trailing ls:\n%s", stdout)
	}
}

func TestScriptErrors(t *testing.T) {
	cases := []struct {
		name, input, wantErr string
	}{
		{"unknown command", "add a\nfrob\n", "line 2: unknown command: frob"},
		{"bad id", "rm one\n", `line 1: rm: not a number: "one"`},
		{"ls with args", "ls all\n", "line 1: usage: ls"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, stderr, code := runScript(t, tc.input)
			if code != ExitUsage {
				t.Errorf("exit code = %d, want %d", code, ExitUsage)
			}
			if !strings.Contains(stderr, tc.wantErr) {
				t.Errorf("stderr = %q, want %q", stderr, tc.wantErr)
			}
		})
	}
}

func TestScriptFromFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "todos.txt")
	if err := os.WriteFile(path, []byte("add from file\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	stdout, _, code := runScript(t, "", path)
	if code != ExitOK || !strings.Contains(stdout, "1: from file") {
		t.Fatalf("code = %d stdout:\n%s", code, stdout)
	}

	_, stderr, code := runScript(t, "", filepath.Join(t.TempDir(), "missing.txt"))
	if code != ExitError || !strings.Contains(stderr, "open script") {
		t.Fatalf("missing file: code = %d stderr = %q", code, stderr)
	}
}

func TestScriptDebugLogsToFile(t *testing.T) {
	logPath := filepath.Join(t.TempDir(), "tada.log")
	defer ui.SetTheme("classic")

	var out, errBuf bytes.Buffer
	code := Run([]string{"script"}, Options{
		Theme:   "mono",
		Debug:   true,
		LogFile: logPath,
		Stdin:   strings.NewReader("add a\n"),
		Stdout:  &out,
		Stderr:  &errBuf,
	})
	if code != ExitOK {
		t.Fatalf("exit code = %d", code)
	}
	b, err := os.ReadFile(logPath)
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(string(b), "todo created") {
		t.Fatalf("log file missing create entry:\n%s", b)
	}
	if errBuf.Len() != 0 {
		t.Fatalf("logs leaked to stderr: %q", errBuf.String())
	}
}

func TestHelpAndUnknown(t *testing.T) {
	var out, errBuf bytes.Buffer
	if code := Run([]string{"help"}, Options{Stdout: &out, Stderr: &errBuf}); code != ExitOK {
		t.Fatalf("help exit code = %d", code)
	}
	if !strings.Contains(out.String(), "Usage:") {
		t.Fatalf("help output missing Usage:\n%s", out.String())
	}

	out.Reset()
	errBuf.Reset()
	if code := Run([]string{"bogus"}, Options{Stdout: &out, Stderr: &errBuf}); code != ExitUsage {
		t.Fatalf("unknown exit code = %d", code)
	}
	if !strings.Contains(errBuf.String(), "unknown subcommand: bogus") {
		t.Fatalf("stderr = %q", errBuf.String())
	}

	if code := Run([]string{"tui", "extra"}, Options{Stdout: &out, Stderr: &errBuf}); code != ExitUsage {
		t.Fatalf("tui with args exit code = %d", code)
	}
}

func TestScriptLongLine(t *testing.T) {
	title := strings.Repeat("x", 70000)
	stdout, stderr, code := runScript(t, "add "+title+"\n")
	if code != ExitOK {
		t.Fatalf("exit code = %d, stderr = %q", code, stderr)
	}
	if !strings.Contains(stdout, "1: "+title) {
		t.Fatal("long title not listed in full")
	}
}

func TestScriptCommandSeparators(t *testing.T) {
	stdout, stderr, code := runScript(t, "add\tfoo\nadd  two spaces\nrm\t1\n")
	if code != ExitOK {
		t.Fatalf("exit code = %d, stderr = %q", code, stderr)
	}
	for _, want := range []string{"ok removed 1", "2:  two spaces [delete]"} {
		if !strings.Contains(stdout, want) {
			t.Errorf("stdout missing %q:\n%s", want, stdout)
		}
	}
}

func TestSplitCommand(t *testing.T) {
	cases := []struct{ line, cmd, rest string }{
		{"add buy milk", "add", "buy milk"},
		{"add\tfoo", "add", "foo"},
		{"add  padded ", "add", " padded "},
		{"add", "add", ""},
		{"ls", "ls", ""},
	}
	for _, tc := range cases {
		cmd, rest := splitCommand(tc.line)
		if cmd != tc.cmd || rest != tc.rest {
			t.Errorf("splitCommand(%q) = %q, %q; want %q, %q", tc.line, cmd, rest, tc.cmd, tc.rest)
		}
	}
}
