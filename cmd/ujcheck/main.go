// Copyright (C) 2026 Michael J. Fromberger. All Rights Reserved.

// Program ujcheck checks and inspects JSON configuration files, which may
// contain line comments and trailing commas.
//
// Usage:
//
//	ujcheck check [--standard] [--max-depth N] FILE...
//	ujcheck get FILE [PATH...]
//	ujcheck dump FILE
//
// A FILE of "-" denotes standard input.
package main

import (
	"fmt"
	"io"
	"os"

	"github.com/creachadair/ujson"
	"github.com/spf13/cobra"
)

// parseOpts are the parser settings shared by all subcommands.
var parseOpts ujson.Options

var rootCmd = &cobra.Command{
	Use:   "ujcheck",
	Short: "Check and inspect JSON configuration files",
	Long: `Check and inspect JSON configuration files.

Input files may contain line comments ("// ...") and trailing commas
in arrays and objects. By default, duplicate object member names are
rejected; use --standard to permit them.`,
	SilenceUsage:  true,
	SilenceErrors: true,
}

func init() {
	pf := rootCmd.PersistentFlags()
	pf.BoolVar(&parseOpts.AllowDuplicates, "standard", false, "allow duplicate object member names")
	pf.IntVar(&parseOpts.MaxDepth, "max-depth", ujson.DefaultMaxDepth, "maximum nesting depth of arrays and objects")

	rootCmd.AddCommand(checkCmd, getCmd, dumpCmd)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		newReporter(os.Stderr).fatal(err)
		os.Exit(1)
	}
}

// readInput reads the contents of the named file, or of in if path is "-".
func readInput(in io.Reader, path string) ([]byte, error) {
	if path == "-" {
		return io.ReadAll(in)
	}
	return os.ReadFile(path)
}

// parseFile reads and parses the named file with the current options.
func parseFile(cmd *cobra.Command, path string) (ujson.Value, error) {
	data, err := readInput(cmd.InOrStdin(), path)
	if err != nil {
		return nil, err
	}
	return parseOpts.Parse(data)
}

// fileError associates an error with the file it concerns.
type fileError struct {
	path string
	err  error
}

func (f fileError) Error() string { return fmt.Sprintf("%s: %v", f.path, f.err) }

func (f fileError) Unwrap() error { return f.err }
