package cli

import (
	"fmt"
	"io"
	"os"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/idilsaglam/tada/internal/store"
	"github.com/idilsaglam/tada/internal/tui"
	"github.com/idilsaglam/tada/internal/ui"
)

// Exit codes
const (
	ExitOK    = 0
	ExitError = 1
	ExitUsage = 2
)

// Options tune behavior from root flags and env vars.
type Options struct {
	Theme   string
	NoColor bool
	Debug   bool
	LogFile string // empty: stderr in script mode, discarded in the TUI

	// nil means the process streams
	Stdin          io.Reader
	Stdout, Stderr io.Writer
}

func (o *Options) fill() {
	if o.Stdin == nil {
		o.Stdin = os.Stdin
	}
	if o.Stdout == nil {
		o.Stdout = os.Stdout
	}
	if o.Stderr == nil {
		o.Stderr = os.Stderr
	}
}

// Run dispatches subcommands and returns an exit code (0 ok, 1 error, 2 usage).
func Run(args []string, opt Options) int {
	custom := opt.Stdin != nil || opt.Stdout != nil
	opt.fill()
	ui.SetTheme(opt.Theme)
	ui.SetColorForcing(opt.NoColor)

	cmd, a := "tui", []string(nil)
	if len(args) > 0 {
		cmd, a = args[0], args[1:]
	}

	switch cmd {
	case "help", "-h", "--help":
		PrintHelp(opt.Stdout)
		return ExitOK

	case "tui":
		if len(a) != 0 {
			ui.Fail(opt.Stderr, "usage: tada tui")
			return ExitUsage
		}
		return doTUI(opt, custom)

	case "script":
		if len(a) > 1 {
			ui.Fail(opt.Stderr, "usage: tada script [file]")
			return ExitUsage
		}
		in := opt.Stdin
		if len(a) == 1 && a[0] != "-" {
			f, err := os.Open(a[0])
			if err != nil {
				ui.Fail(opt.Stderr, "open script: "+err.Error())
				return ExitError
			}
			defer f.Close()
			in = f
		}
		return doScript(in, opt)
	}

	ui.Fail(opt.Stderr, "unknown subcommand: "+cmd)
	fmt.Fprintln(opt.Stderr)
	PrintHelp(opt.Stderr)
	return ExitUsage
}

func PrintHelp(w io.Writer) {
	fmt.Fprint(w, `tada - an in-memory todo list

Usage:
  tada [flags] [subcommand]

Subcommands:
  tui                Interactive list (default)
  script [file]      Read commands from file or stdin, print the result
  help               Show this help

Script commands:
  add <title...>     Create a todo (rest of the line, may be empty)
  rm <id>            Delete a todo by id
  ls                 Print the list

Flags:
  -theme classic|neon|mono   (env TADA_THEME)
  -no-color
  -debug                     (env TADA_DEBUG)
  -log <file>                (env TADA_LOG)

Examples:
  tada
  printf 'add buy milk\nadd walk dog\nrm 1\n' | tada script
`)
}

func doTUI(opt Options, custom bool) int {
	logger, closeLog, err := newLogger(opt, false)
	if err != nil {
		ui.Fail(opt.Stderr, "log: "+err.Error())
		return ExitError
	}
	defer closeLog()

	session := store.NewSession(logger)
	var popts []tea.ProgramOption
	if custom {
		popts = append(popts, tea.WithInput(opt.Stdin), tea.WithOutput(opt.Stdout))
	}
	if err := tui.Run(session, logger, popts...); err != nil {
		logger.WithError(err).Error("tui exited")
		ui.Fail(opt.Stderr, "tui: "+err.Error())
		return ExitError
	}
	return ExitOK
}
