package main

import (
	"github.com/spf13/cobra"

	"github.com/iamgweej/seagull/pkg/types"
)

func init() {
	rootCmd.AddCommand(newInfoCmd())
}

func newInfoCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "info [path]",
		Short: "Show key statistics",
		Long: `The info command prints subkey and value counts for a key, along
with the maximum name and data lengths among its entries.

Example:
  regctl info "Software\Acme"`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runInfo(args)
		},
	}
	return cmd
}

func runInfo(args []string) error {
	path := ""
	if len(args) == 1 {
		path = args[0]
	}

	root, cleanup, err := openStore()
	if err != nil {
		return err
	}
	defer cleanup()

	key, owned, err := keyAt(root, path, types.KEY_QUERY_VALUE)
	if err != nil {
		return err
	}
	if owned {
		defer key.Close()
	}

	info, err := key.Info()
	if err != nil {
		return err
	}

	if jsonOut {
		return printJSON(map[string]any{
			"path":                path,
			"subkey_count":        info.SubkeyCount,
			"max_subkey_name_len": info.MaxSubkeyNameLen,
			"value_count":         info.ValueCount,
			"max_value_name_len":  info.MaxValueNameLen,
			"max_value_len":       info.MaxValueLen,
		})
	}

	printInfo("Subkeys:             %d\n", info.SubkeyCount)
	printInfo("Max subkey name:     %d units\n", info.MaxSubkeyNameLen)
	printInfo("Values:              %d\n", info.ValueCount)
	printInfo("Max value name:      %d units\n", info.MaxValueNameLen)
	printInfo("Max value data:      %d bytes\n", info.MaxValueLen)
	return nil
}
