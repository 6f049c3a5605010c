// Copyright (C) 2026 Michael J. Fromberger. All Rights Reserved.

package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

var checkVerbose bool

var checkCmd = &cobra.Command{
	Use:   "check FILE...",
	Short: "Parse files and report syntax errors",
	Long: `Parse each named file and report the first syntax error in each,
as "file:line: message". The exit status is 1 if any file failed.`,
	Args: cobra.MinimumNArgs(1),
	RunE: runCheck,
}

func init() {
	checkCmd.Flags().BoolVarP(&checkVerbose, "verbose", "v", false, "also report files that parse successfully")
}

func runCheck(cmd *cobra.Command, args []string) error {
	errs := newReporter(cmd.ErrOrStderr())
	outs := newReporter(cmd.OutOrStdout())
	var nfail int
	for _, path := range args {
		if _, err := parseFile(cmd, path); err != nil {
			errs.fail(path, err)
			nfail++
		} else if checkVerbose {
			outs.pass(path)
		}
	}
	if nfail != 0 {
		return fmt.Errorf("%d of %d files failed", nfail, len(args))
	}
	return nil
}
