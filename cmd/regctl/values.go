package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/iamgweej/seagull/pkg/types"
)

func init() {
	rootCmd.AddCommand(newValuesCmd())
}

func newValuesCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "values [path]",
		Short: "List values at a given path",
		Long: `The values command lists the values of a key: name, type, size, and
a rendering of the data.

Example:
  regctl values "Software\\MyApp"
  regctl values --json`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runValues(args)
		},
	}
	return cmd
}

func runValues(args []string) error {
	path := ""
	if len(args) == 1 {
		path = args[0]
	}

	root, cleanup, err := openStore()
	if err != nil {
		return err
	}
	defer cleanup()

	key, owned, err := keyAt(root, path, types.KEY_READ)
	if err != nil {
		return err
	}
	if owned {
		defer key.Close()
	}

	vals, err := key.Values()
	if err != nil {
		return fmt.Errorf("failed to enumerate values: %w", err)
	}

	if jsonOut {
		out := make([]map[string]interface{}, 0, len(vals))
		for _, nv := range vals {
			out = append(out, map[string]interface{}{
				"name": nv.Name,
				"type": nv.Type.String(),
				"size": nv.Len(),
				"data": formatValue(nv.Value),
			})
		}
		return printJSON(map[string]interface{}{
			"path":   path,
			"values": out,
		})
	}

	for _, nv := range vals {
		name := nv.Name
		if name == "" {
			name = "(default)"
		}
		printInfo("%-24s %-14s %6d  %s\n", name, nv.Type, nv.Len(), formatValue(nv.Value))
	}
	return nil
}
