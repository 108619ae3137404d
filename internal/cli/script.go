package cli

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/idilsaglam/tada/internal/store"
	"github.com/idilsaglam/tada/internal/tui"
	"github.com/idilsaglam/tada/internal/ui"
)

// doScript feeds line commands to one session, in order, then prints the
// final list.
func doScript(in io.Reader, opt Options) int {
	logger, closeLog, err := newLogger(opt, true)
	if err != nil {
		ui.Fail(opt.Stderr, "log: "+err.Error())
		return ExitError
	}
	defer closeLog()

	session := store.NewSession(logger)
	actions := store.MustUseActions(session)
	list, err := tui.NewList(session.Store(), actions, logger)
	if err != nil {
		ui.Fail(opt.Stderr, err.Error())
		return ExitError
	}
	defer list.Close()

	sc := bufio.NewScanner(in)
	sc.Buffer(make([]byte, 0, 64*1024), maxLine)
	lineNo := 0
	listedLast := false
	for sc.Scan() {
		lineNo++
		line := strings.TrimLeft(strings.TrimRight(sc.Text(), "\r"), " \t")
		if strings.TrimSpace(line) == "" || strings.HasPrefix(line, "#") {
			continue
		}
		cmd, rest := splitCommand(line)
		listedLast = false

		switch cmd {
		case "add", "create":
			t := actions.Create(rest)
			ui.OK(opt.Stdout, fmt.Sprintf("added %d", t.ID))

		case "rm", "delete":
			id, err := strconv.Atoi(strings.TrimSpace(rest))
			if err != nil {
				ui.Fail(opt.Stderr, fmt.Sprintf("line %d: %s: not a number: %q", lineNo, cmd, rest))
				return ExitUsage
			}
			if actions.Delete(id) {
				ui.OK(opt.Stdout, fmt.Sprintf("removed %d", id))
			} else {
				fmt.Fprintln(opt.Stdout, ui.Current().Muted.Render(fmt.Sprintf("no todo %d, nothing removed", id)))
			}

		case "ls":
			if strings.TrimSpace(rest) != "" {
				ui.Fail(opt.Stderr, fmt.Sprintf("line %d: usage: ls", lineNo))
				return ExitUsage
			}
			printList(opt.Stdout, list)
			listedLast = true

		default:
			ui.Fail(opt.Stderr, fmt.Sprintf("line %d: unknown command: %s", lineNo, cmd))
			return ExitUsage
		}
	}
	if err := sc.Err(); err != nil {
		ui.Fail(opt.Stderr, "read script: "+err.Error())
		return ExitError
	}
	if !listedLast {
		printList(opt.Stdout, list)
	}
	return ExitOK
}

// maxLine bounds one script line; titles are otherwise unrestricted.
const maxLine = 64 << 20

// splitCommand splits off the command word at the first whitespace
// character. The rest of the line is returned verbatim.
func splitCommand(line string) (cmd, rest string) {
	i := strings.IndexFunc(line, unicode.IsSpace)
	if i < 0 {
		return line, ""
	}
	_, size := utf8.DecodeRuneInString(line[i:])
	return line[:i], line[i+size:]
}

func printList(w io.Writer, list *tui.List) {
	t := ui.Current()
	header := fmt.Sprintf("%s  %s %d", t.Title.Render("Todos"), t.Accent.Render("Total"), list.Len())
	body := list.View()
	if body == "" {
		body = t.Muted.Render("no todos")
	}
	fmt.Fprintln(w, ui.Panel(header, "", body))
}
