// Copyright (C) 2026 Michael J. Fromberger. All Rights Reserved.

package main

import (
	"github.com/creachadair/ujson"
	"github.com/goccy/go-yaml"
	"github.com/spf13/cobra"
)

var dumpCmd = &cobra.Command{
	Use:   "dump FILE",
	Short: "Print the parsed value as YAML",
	Long: `Parse FILE and print its value as YAML. Object members are printed
in input order, and comments are discarded.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		root, err := parseFile(cmd, args[0])
		if err != nil {
			return fileError{args[0], err}
		}
		text, err := marshalYAML(root)
		if err != nil {
			return err
		}
		_, err = cmd.OutOrStdout().Write(text)
		return err
	},
}

func marshalYAML(v ujson.Value) ([]byte, error) { return yaml.Marshal(toYAML(v)) }

// toYAML converts v to a value that encodes as YAML with object members in
// their original order.
func toYAML(v ujson.Value) any {
	switch t := v.(type) {
	case *ujson.Bool:
		return t.Get()
	case *ujson.Int:
		return t.Get()
	case *ujson.Float:
		return t.Get()
	case *ujson.String:
		return t.Get()
	case *ujson.Array:
		out := make([]any, t.Len())
		for i := range out {
			out[i] = toYAML(t.Element(i))
		}
		return out
	case *ujson.Object:
		out := make(yaml.MapSlice, t.Len())
		for i := range out {
			out[i] = yaml.MapItem{Key: t.MemberName(i), Value: toYAML(t.Element(i))}
		}
		return out
	default:
		return nil // null
	}
}
