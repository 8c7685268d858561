/*
File    : beeline/main/main.go
Author  : Akash Maji
Contact : akashmaji(@iisc.ac.in)

Package main is the entry point for the Beeline interpreter.
The whole of standard input is read to EOF in one shot, run through the
lexer-parser-evaluator pipeline, and the process exits 0 on success or 1
if any fatal error propagated from the pipeline.

Diagnostics go to standard error through a severity-filtered logger; print
output goes to standard output.
*/
package main

import (
	"fmt"
	"io"
	"os"

	"github.com/fatih/color"
	"github.com/rs/zerolog"
	"github.com/spf13/pflag"

	"github.com/akashmaji946/beeline/beeline"
)

// VERSION represents the current version of the Beeline interpreter
var VERSION = "0.0.1"

// Color definitions for usage and error feedback on the terminal
var (
	redColor  = color.New(color.FgRed)
	cyanColor = color.New(color.FgCyan)
)

// main parses the command-line surface, configures logging, and dispatches
// the pipeline.
//
// Usage:
//
//	beeline [-d N] < program.bee
//	beeline --help
//	beeline --version
//
// The -d/--debug_level option selects the logging severity threshold
// (0=trace, 1=debug, 2=info, 3=warn, 4=error, 5=fatal), defaulting to 4.
func main() {
	flags := pflag.NewFlagSet(os.Args[0], pflag.ContinueOnError)
	debugLevel := flags.IntP("debug_level", "d", 4, "set debug level (0=trace, 1=debug, 2=info, 3=warn, 4=error, 5=fatal)")
	help := flags.BoolP("help", "h", false, "produce help message")
	version := flags.BoolP("version", "v", false, "print version string")

	if err := flags.Parse(os.Args[1:]); err != nil {
		redColor.Fprintf(os.Stderr, "error: %v\n", err)
		printUsage(flags, os.Stderr)
		os.Exit(1)
	}

	// Help and version are mutually exclusive; validate before honoring
	// either of them.
	if *help && *version {
		redColor.Fprintln(os.Stderr, "error: version and help are mutually exclusive")
		printUsage(flags, os.Stderr)
		os.Exit(1)
	}
	if *debugLevel < 0 || *debugLevel > 5 {
		redColor.Fprintln(os.Stderr, "error: debug level must be between 0 and 5")
		printUsage(flags, os.Stderr)
		os.Exit(1)
	}
	if *help {
		printUsage(flags, os.Stdout)
		os.Exit(0)
	}
	if *version {
		fmt.Printf("version: %s\n", VERSION)
		os.Exit(0)
	}

	logger := zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).
		With().Timestamp().Logger().
		Level(toZerologLevel(*debugLevel))

	input, err := io.ReadAll(os.Stdin)
	if err != nil {
		logger.Fatal().Msgf("could not read standard input: %v", err)
	}

	if err := beeline.New(logger).Run(string(input)); err != nil {
		// Fatal logs the collapsed generic error and exits 1
		logger.Fatal().Msg(err.Error())
	}
}

// printUsage writes the usage summary and the flag descriptions.
func printUsage(flags *pflag.FlagSet, w io.Writer) {
	cyanColor.Fprintf(w, "usage: %s [options]\n", os.Args[0])
	cyanColor.Fprintln(w, "Allowed options:")
	fmt.Fprint(w, flags.FlagUsages())
}

// toZerologLevel maps the 0..5 command-line debug level onto zerolog's
// severity scale.
func toZerologLevel(debugLevel int) zerolog.Level {
	switch debugLevel {
	case 0:
		return zerolog.TraceLevel
	case 1:
		return zerolog.DebugLevel
	case 2:
		return zerolog.InfoLevel
	case 3:
		return zerolog.WarnLevel
	case 4:
		return zerolog.ErrorLevel
	case 5:
		return zerolog.FatalLevel
	}
	return zerolog.ErrorLevel
}
