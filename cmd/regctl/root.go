package main

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/iamgweej/seagull/pkg/types"
	"github.com/iamgweej/seagull/registry"
	"github.com/iamgweej/seagull/store/pebblestore"
)

var (
	// Global flags
	verbose bool
	quiet   bool
	jsonOut bool
)

var log = logrus.New()

var rootCmd = &cobra.Command{
	Use:   "regctl",
	Short: "Inspect and manipulate a seagull registry store",
	Long: `regctl works against a registry store directory: a hierarchical tree
of keys, each holding typed named values. It can list keys and values, read
and write every supported value type, and delete values, keys, or whole
subtrees.

The store directory comes from --store or the SEAGULL_STORE environment
variable.`,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		log.SetOutput(os.Stderr)
		if verbose {
			log.SetLevel(logrus.DebugLevel)
		}
	},
}

func init() {
	rootCmd.PersistentFlags().String("store", "", "Store directory (defaults to $SEAGULL_STORE)")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable verbose output")
	rootCmd.PersistentFlags().
		BoolVarP(&quiet, "quiet", "q", false, "Suppress all output except errors")
	rootCmd.PersistentFlags().BoolVar(&jsonOut, "json", false, "Output in JSON format")

	viper.SetEnvPrefix("seagull")
	viper.AutomaticEnv()
	if err := viper.BindPFlag("store", rootCmd.PersistentFlags().Lookup("store")); err != nil {
		panic(err)
	}
}

func execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// openStore opens the configured store directory and a full-access key on
// its root. The caller closes both via the returned cleanup.
func openStore() (*registry.Key, func(), error) {
	dir := viper.GetString("store")
	if dir == "" {
		return nil, nil, fmt.Errorf("no store directory: pass --store or set SEAGULL_STORE")
	}

	log.Debugf("opening store at %s", dir)
	s, root, err := pebblestore.Open(dir)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to open store: %w", err)
	}

	key, err := registry.OpenKey(s, root, "", types.KEY_ALL_ACCESS)
	if err != nil {
		s.CloseStore()
		return nil, nil, fmt.Errorf("failed to open store root: %w", err)
	}

	cleanup := func() {
		if err := key.Close(); err != nil {
			log.Debugf("closing root key: %v", err)
		}
		if err := s.CloseStore(); err != nil {
			log.Debugf("closing store: %v", err)
		}
	}
	return key, cleanup, nil
}

// keyAt opens path below root, or returns root itself for an empty path.
// The second return reports whether the caller owns the key and must close
// it.
func keyAt(root *registry.Key, path string, access types.Access) (*registry.Key, bool, error) {
	if path == "" {
		return root, false, nil
	}
	k, err := root.OpenSubkey(path, access)
	if err != nil {
		return nil, false, fmt.Errorf("failed to open key %q: %w", path, err)
	}
	return k, true, nil
}

// Helper functions for output

// printInfo prints an info message if not in quiet mode
func printInfo(format string, args ...interface{}) {
	if !quiet {
		fmt.Fprintf(os.Stdout, format, args...)
	}
}

// printJSON outputs data as JSON
func printJSON(v interface{}) error {
	encoder := json.NewEncoder(os.Stdout)
	encoder.SetIndent("", "  ")
	return encoder.Encode(v)
}
