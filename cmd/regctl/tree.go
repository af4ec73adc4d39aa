package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/iamgweej/seagull/pkg/types"
	"github.com/iamgweej/seagull/registry"
)

var (
	treeDepth  int
	treeValues bool
)

func init() {
	cmd := newTreeCmd()
	cmd.Flags().IntVar(&treeDepth, "depth", 0, "Maximum depth (0 = unlimited)")
	cmd.Flags().BoolVar(&treeValues, "values", false, "Show values under each key")
	rootCmd.AddCommand(cmd)
}

func newTreeCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "tree [path]",
		Short: "Print the key tree",
		Long: `The tree command prints the key hierarchy below a path, optionally
with each key's values.

Example:
  regctl tree
  regctl tree "Software" --depth 2 --values`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runTree(args)
		},
	}
	return cmd
}

func runTree(args []string) error {
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

	label := path
	if label == "" {
		label = `\`
	}
	printInfo("%s\n", label)
	return printSubtree(key, 1)
}

func printSubtree(key *registry.Key, depth int) error {
	if treeDepth > 0 && depth > treeDepth {
		return nil
	}
	indent := strings.Repeat("  ", depth)

	if treeValues {
		vals, err := key.Values()
		if err != nil {
			return err
		}
		for _, nv := range vals {
			name := nv.Name
			if name == "" {
				name = "(default)"
			}
			printInfo("%s%s = %s (%s)\n", indent, name, formatValue(nv.Value), nv.Type)
		}
	}

	subkeys, err := key.Subkeys()
	if err != nil {
		return err
	}
	for _, name := range subkeys {
		printInfo("%s%s\n", indent, name)
		child, err := key.OpenSubkey(name, types.KEY_READ)
		if err != nil {
			return fmt.Errorf("failed to open subkey %q: %w", name, err)
		}
		err = printSubtree(child, depth+1)
		child.Close()
		if err != nil {
			return err
		}
	}
	return nil
}
