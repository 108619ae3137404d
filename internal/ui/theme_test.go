package ui

import (
	"bytes"
	"strings"
	"testing"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
)

func TestSetThemeFallsBackToClassic(t *testing.T) {
	defer SetTheme("classic")

	for _, name := range []string{"", "nope", "CLASSIC"} {
		SetTheme(name)
		if got := Current().Name; got != "classic" {
			t.Errorf("SetTheme(%q) -> %q, want classic", name, got)
		}
	}
	SetTheme("Neon")
	if got := Current().Name; got != "neon" {
		t.Errorf("SetTheme(Neon) -> %q", got)
	}
}

func TestMonoPanelUsesASCIIBorder(t *testing.T) {
	SetTheme("mono")
	defer SetTheme("classic")

	out := Panel("1: buy milk", "2: walk dog")
	lines := strings.Split(out, "\n")
	if len(lines) != 4 {
		t.Fatalf("panel has %d lines, want 4:\n%s", len(lines), out)
	}
	if !strings.HasPrefix(lines[0], "+-") || !strings.HasSuffix(lines[0], "-+") {
		t.Errorf("unexpected top border %q", lines[0])
	}
	if !strings.Contains(lines[1], "| 1: buy milk") {
		t.Errorf("unexpected first row %q", lines[1])
	}
}

func TestOKAndFail(t *testing.T) {
	SetTheme("mono")
	defer SetTheme("classic")

	var out, errOut bytes.Buffer
	OK(&out, "added")
	Fail(&errOut, "line 3: unknown command")
	if out.String() != "ok added\n" {
		t.Errorf("OK wrote %q", out.String())
	}
	if errOut.String() != "error: line 3: unknown command\n" {
		t.Errorf("Fail wrote %q", errOut.String())
	}
}

func TestSetColorForcingRestoresProfile(t *testing.T) {
	saved := detected
	detected = termenv.TrueColor
	defer func() {
		detected = saved
		lipgloss.SetColorProfile(saved)
	}()

	SetColorForcing(true)
	if got := lipgloss.ColorProfile(); got != termenv.Ascii {
		t.Fatalf("profile after disable = %v, want Ascii", got)
	}
	SetColorForcing(false)
	if got := lipgloss.ColorProfile(); got != termenv.TrueColor {
		t.Fatalf("profile after enable = %v, want the detected one", got)
	}
}
