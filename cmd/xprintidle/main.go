package main

import (
	"fmt"
	"io"
	"log"
	"os"

	"github.com/jezek/xgb"
	flag "github.com/spf13/pflag"

	"xprintidle/internal/config"
	"xprintidle/internal/format"
	"xprintidle/pkg/x11"
)

var (
	version = "0.1.0"
	commit  = "unknown"
	date    = "unknown"
)

const appName = "xprintidle"

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

func run(args []string, stdout, stderr io.Writer) int {
	flags := flag.NewFlagSet(appName, flag.ContinueOnError)
	flags.SetOutput(io.Discard)

	var (
		showHelp    bool
		showVersion bool
		human       bool
	)
	flags.BoolVarP(&showHelp, "help", "h", false, "show this help message")
	flags.BoolVarP(&showVersion, "version", "v", false, "show version information")
	flags.BoolVarP(&human, "human-readable", "H", false, "print a human readable duration")

	if err := flags.Parse(args); err != nil {
		printUsage(stderr)
		return 1
	}
	if showHelp || flags.NArg() > 0 {
		printUsage(stderr)
		return 1
	}
	if showVersion {
		// Version reporting must work without a display.
		fmt.Fprintf(stdout, "%s version %s\n", appName, version)
		return 0
	}

	cfg := config.New()
	if human {
		cfg.Output = config.OutputHuman
	}
	if err := cfg.Validate(); err != nil {
		fmt.Fprintf(stderr, "%v\n", err)
		return 1
	}

	// The xgb logger writes protocol chatter to stderr by default; the
	// only diagnostics this tool emits are its own one-liners.
	xgb.Logger = log.New(io.Discard, "", 0)

	idleMs, err := x11.QueryIdleTime(cfg.Display)
	if err != nil {
		fmt.Fprintf(stderr, "%v\n", err)
		return 1
	}

	mode := format.Raw
	if cfg.Output == config.OutputHuman {
		mode = format.HumanReadable
	}
	fmt.Fprintln(stdout, format.Duration(idleMs, mode))

	return 0
}

func printUsage(w io.Writer) {
	fmt.Fprintf(w, `%s - print the user's idle time

Usage:
  %s [options]

Options:
  -h, --help            Show this help message
  -v, --version         Show version information
  -H, --human-readable  Print a human readable duration

With no options, the time in milliseconds since the last user input
event is printed on stdout.

Environment Variables:
  DISPLAY             X server to query
  XPRINTIDLE_DISPLAY  Override DISPLAY for this tool only

Version: %s
`, appName, appName, version)
}
