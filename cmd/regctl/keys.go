package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/iamgweej/seagull/pkg/types"
)

func init() {
	rootCmd.AddCommand(newKeysCmd())
}

func newKeysCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "keys [path]",
		Short: "List subkeys at a given path",
		Long: `The keys command lists the direct subkeys of a key. With no path it
lists the subkeys of the store root.

Example:
  regctl keys
  regctl keys "Software\\MyApp"
  regctl keys "Software" --json`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runKeys(args)
		},
	}
	return cmd
}

func runKeys(args []string) error {
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

	subkeys, err := key.Subkeys()
	if err != nil {
		return fmt.Errorf("failed to enumerate subkeys: %w", err)
	}

	if jsonOut {
		return printJSON(map[string]interface{}{
			"path": path,
			"keys": subkeys,
		})
	}

	for _, name := range subkeys {
		printInfo("%s\n", name)
	}
	log.Debugf("listed %d subkeys under %q", len(subkeys), path)
	return nil
}
