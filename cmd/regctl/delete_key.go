package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

var deleteKeyRecursive bool

func init() {
	cmd := newDeleteKeyCmd()
	cmd.Flags().BoolVarP(&deleteKeyRecursive, "recursive", "r", false, "Delete the key and everything beneath it")
	rootCmd.AddCommand(cmd)
}

func newDeleteKeyCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "delete-key <path>",
		Short: "Delete a key",
		Long: `The delete-key command removes a key. Without --recursive the key must
have no subkeys; with it the whole subtree goes, irreversibly.

Example:
  regctl delete-key "Software\\MyApp\\Leaf"
  regctl delete-key "Software\\MyApp" --recursive`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runDeleteKey(args)
		},
	}
	return cmd
}

func runDeleteKey(args []string) error {
	path := args[0]
	if path == "" {
		return fmt.Errorf("refusing to delete the store root")
	}

	root, cleanup, err := openStore()
	if err != nil {
		return err
	}
	defer cleanup()

	if deleteKeyRecursive {
		err = root.DeleteTree(path)
	} else {
		err = root.DeleteKey(path, 0)
	}
	if err != nil {
		return fmt.Errorf("failed to delete key %q: %w", path, err)
	}

	if jsonOut {
		return printJSON(map[string]interface{}{
			"path":      path,
			"recursive": deleteKeyRecursive,
			"success":   true,
		})
	}
	printInfo("deleted key %s\n", path)
	return nil
}
