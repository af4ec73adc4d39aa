package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/iamgweej/seagull/pkg/types"
	"github.com/iamgweej/seagull/registry"
)

var (
	setType      string
	setCreateKey bool
)

func init() {
	cmd := newSetCmd()
	cmd.Flags().StringVar(&setType, "type", "sz", "Value type (sz, expand_sz, dword, qword, multi_sz, binary)")
	cmd.Flags().BoolVar(&setCreateKey, "create-key", false, "Create the key if it doesn't exist")
	rootCmd.AddCommand(cmd)
}

func newSetCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "set <path> <name> <value>",
		Short: "Set a registry value",
		Long: `The set command writes one named value at the given key path.
Multi-strings are comma-separated, binary values are hex.

Example:
  regctl set "Software\\MyApp" "Version" "1.0.0"
  regctl set "Software\\MyApp" "Enabled" 1 --type dword
  regctl set "Software\\MyApp" "Dirs" "bin,lib" --type multi_sz
  regctl set "Software\\NewApp" "Data" "0102cafe" --type binary --create-key`,
		Args: cobra.ExactArgs(3),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runSet(args)
		},
	}
	return cmd
}

func runSet(args []string) error {
	path, name, raw := args[0], args[1], args[2]

	typ, err := types.ParseRegType(setType)
	if err != nil {
		return err
	}

	root, cleanup, err := openStore()
	if err != nil {
		return err
	}
	defer cleanup()

	var (
		key   *registry.Key
		owned bool
	)
	if setCreateKey && path != "" {
		key, err = root.CreateSubkey(path, types.KEY_READ|types.KEY_WRITE)
		if err != nil {
			return fmt.Errorf("failed to create key %q: %w", path, err)
		}
		owned = true
	} else {
		key, owned, err = keyAt(root, path, types.KEY_READ|types.KEY_WRITE)
		if err != nil {
			return err
		}
	}
	if owned {
		defer key.Close()
	}

	if err := writeValue(key, typ, name, raw); err != nil {
		return fmt.Errorf("failed to set value: %w", err)
	}
	log.Debugf("set %q (%s) under %q", name, typ, path)

	if jsonOut {
		return printJSON(map[string]interface{}{
			"path":    path,
			"name":    name,
			"type":    typ.String(),
			"success": true,
		})
	}

	printInfo("set %s = %s (%s)\n", name, raw, typ)
	return nil
}
