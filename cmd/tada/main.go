package main

import (
	"flag"
	"fmt"
	"os"
	"strconv"

	"github.com/idilsaglam/tada/internal/cli"
)

func main() {
	// Root flags (apply to every subcommand); env vars are the defaults.
	theme := flag.String("theme", envOr("TADA_THEME", "classic"), "color theme: classic, neon or mono")
	noColor := flag.Bool("no-color", false, "disable colors")
	debug := flag.Bool("debug", envBool("TADA_DEBUG"), "log at debug level")
	logFile := flag.String("log", os.Getenv("TADA_LOG"), "write logs to this file")
	flag.Parse()

	code := cli.Run(flag.Args(), cli.Options{
		Theme:   *theme,
		NoColor: *noColor,
		Debug:   *debug,
		LogFile: *logFile,
	})
	if code != 0 {
		fmt.Fprintln(os.Stderr)
	}
	os.Exit(code)
}

func envOr(name, def string) string {
	if v := os.Getenv(name); v != "" {
		return v
	}
	return def
}

func envBool(name string) bool {
	b, err := strconv.ParseBool(os.Getenv(name))
	return err == nil && b
}
