package cli

import (
	"fmt"
	"io"
	"os"

	log "github.com/sirupsen/logrus"
)

// newLogger builds the session logger. The TUI owns the terminal, so
// without a log file its output is dropped.
func newLogger(opt Options, toStderr bool) (*log.Logger, func(), error) {
	l := log.New()
	l.SetFormatter(&log.TextFormatter{FullTimestamp: true, DisableColors: opt.NoColor})
	l.SetLevel(log.InfoLevel)
	if opt.Debug {
		l.SetLevel(log.DebugLevel)
	}

	switch {
	case opt.LogFile != "":
		f, err := os.OpenFile(opt.LogFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			return nil, nil, fmt.Errorf("open log file: %w", err)
		}
		l.SetOutput(f)
		return l, func() { f.Close() }, nil
	case toStderr:
		l.SetOutput(opt.Stderr)
	default:
		l.SetOutput(io.Discard)
	}
	return l, func() {}, nil
}
