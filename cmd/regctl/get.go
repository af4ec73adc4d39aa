package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/iamgweej/seagull/pkg/types"
)

var getShowType bool

func init() {
	cmd := newGetCmd()
	cmd.Flags().BoolVarP(&getShowType, "type", "t", false, "Show the value type")
	rootCmd.AddCommand(cmd)
}

func newGetCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "get <path> <name>",
		Short: "Get a single value",
		Long: `The get command reads one named value from a key and prints it.

Example:
  regctl get "Software\\MyApp" "Version"
  regctl get "Software\\MyApp" "Version" --type
  regctl get "Software\\MyApp" "Flags" --json`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runGet(args)
		},
	}
	return cmd
}

func runGet(args []string) error {
	path, name := args[0], args[1]

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

	val, err := key.Value(name)
	if err != nil {
		return fmt.Errorf("failed to read value %q: %w", name, err)
	}

	if jsonOut {
		return printJSON(map[string]interface{}{
			"path": path,
			"name": name,
			"type": val.Type.String(),
			"size": val.Len(),
			"data": formatValue(val),
		})
	}

	if getShowType {
		printInfo("%s  %s\n", val.Type, formatValue(val))
	} else {
		printInfo("%s\n", formatValue(val))
	}
	return nil
}
