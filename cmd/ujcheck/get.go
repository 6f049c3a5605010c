// Copyright (C) 2026 Michael J. Fromberger. All Rights Reserved.

package main

import (
	"fmt"
	"strconv"

	"github.com/creachadair/ujson"
	"github.com/creachadair/ujson/cursor"
	"github.com/spf13/cobra"
)

var getCmd = &cobra.Command{
	Use:   "get FILE [PATH...]",
	Short: "Print the value at a path",
	Long: `Parse FILE and print the value reached by following PATH from the
root. Each path element that parses as an integer is an offset into an
array or object (negative offsets count from the end); any other element
is an object member name. Use "--" before a path that begins with a
negative offset.

Strings, numbers, and constants are printed as text; arrays and objects
are printed as YAML.`,
	Args: cobra.MinimumNArgs(1),
	RunE: runGet,
}

func runGet(cmd *cobra.Command, args []string) error {
	root, err := parseFile(cmd, args[0])
	if err != nil {
		return fileError{args[0], err}
	}
	c := cursor.New(root).Down(pathElements(args[1:])...)
	if err := c.Err(); err != nil {
		return fileError{args[0], err}
	}

	switch v := c.Value().(type) {
	case *ujson.String:
		_, err := fmt.Fprintln(cmd.OutOrStdout(), v.Get())
		return err
	case *ujson.Array, *ujson.Object:
		text, err := marshalYAML(v)
		if err != nil {
			return err
		}
		_, err = cmd.OutOrStdout().Write(text)
		return err
	default:
		_, err := fmt.Fprintln(cmd.OutOrStdout(), v.String())
		return err
	}
}

// pathElements converts command-line path arguments to cursor path elements.
func pathElements(args []string) []any {
	path := make([]any, len(args))
	for i, arg := range args {
		if n, err := strconv.Atoi(arg); err == nil {
			path[i] = n
		} else {
			path[i] = arg
		}
	}
	return path
}
