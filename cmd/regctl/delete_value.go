package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/iamgweej/seagull/pkg/types"
)

func init() {
	rootCmd.AddCommand(newDeleteValueCmd())
}

func newDeleteValueCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "delete-value <path> <name>",
		Short: "Delete a single value",
		Long: `The delete-value command removes one named value from a key.

Example:
  regctl delete-value "Software\\MyApp" "Version"`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runDeleteValue(args)
		},
	}
	return cmd
}

func runDeleteValue(args []string) error {
	path, name := args[0], args[1]

	root, cleanup, err := openStore()
	if err != nil {
		return err
	}
	defer cleanup()

	key, owned, err := keyAt(root, path, types.KEY_READ|types.KEY_WRITE)
	if err != nil {
		return err
	}
	if owned {
		defer key.Close()
	}

	if err := key.DeleteValue(name); err != nil {
		return fmt.Errorf("failed to delete value %q: %w", name, err)
	}

	if jsonOut {
		return printJSON(map[string]interface{}{
			"path":    path,
			"name":    name,
			"success": true,
		})
	}
	printInfo("deleted value %s\n", name)
	return nil
}
