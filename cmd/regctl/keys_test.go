package main

import (
	"testing"

	"github.com/iamgweej/seagull/pkg/types"
	"github.com/iamgweej/seagull/registry"
)

func seedBasic(t *testing.T, root *registry.Key) {
	t.Helper()
	for _, path := range []string{
		`Software\Acme\App`,
		`Software\Acme\Tools`,
		`Software\Other`,
		`System`,
	} {
		k, err := root.CreateSubkey(path, types.KEY_READ|types.KEY_WRITE)
		if err != nil {
			t.Fatalf("failed to create %q: %v", path, err)
		}
		k.Close()
	}
	app, err := root.OpenSubkey(`Software\Acme\App`, types.KEY_READ|types.KEY_WRITE)
	if err != nil {
		t.Fatalf("failed to open App: %v", err)
	}
	defer app.Close()
	if err := app.SetStringValue("Version", "1.0.0"); err != nil {
		t.Fatalf("failed to set Version: %v", err)
	}
	if err := app.SetDWordValue("Enabled", 1); err != nil {
		t.Fatalf("failed to set Enabled: %v", err)
	}
	if err := app.SetMultiStringValue("Dirs", []string{"bin", "lib"}); err != nil {
		t.Fatalf("failed to set Dirs: %v", err)
	}
}

func TestKeysCommand(t *testing.T) {
	tests := []struct {
		name           string
		path           string
		wantErr        bool
		wantContain    []string
		wantNotContain []string
		wantJSON       bool
	}{
		{
			name:           "list root keys",
			path:           "",
			wantContain:    []string{"Software", "System"},
			wantNotContain: []string{"Acme"},
		},
		{
			name:           "list nested keys",
			path:           `Software\Acme`,
			wantContain:    []string{"App", "Tools"},
			wantNotContain: []string{"Software", "System"},
		},
		{
			name:        "list keys as JSON",
			path:        "Software",
			wantJSON:    true,
			wantContain: []string{"Acme", "Other"},
		},
		{
			name:    "missing key",
			path:    `Software\Nope`,
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			testStore(t, seedBasic)

			quiet = false
			verbose = false
			jsonOut = tt.wantJSON

			var args []string
			if tt.path != "" {
				args = append(args, tt.path)
			}

			output, err := captureOutput(t, func() error {
				return runKeys(args)
			})

			if (err != nil) != tt.wantErr {
				t.Errorf("runKeys() error = %v, wantErr %v", err, tt.wantErr)
				return
			}

			if tt.wantJSON {
				assertJSON(t, output)
			}

			assertContains(t, output, tt.wantContain)
			assertNotContains(t, output, tt.wantNotContain)
		})
	}
}

func TestTreeCommand(t *testing.T) {
	testStore(t, seedBasic)

	quiet = false
	jsonOut = false
	treeDepth = 0
	treeValues = true

	output, err := captureOutput(t, func() error {
		return runTree(nil)
	})
	if err != nil {
		t.Fatalf("runTree() error = %v", err)
	}

	assertContains(t, output, []string{"Software", "Acme", "App", "Tools", "Version", "1.0.0"})

	treeDepth = 1
	output, err = captureOutput(t, func() error {
		return runTree(nil)
	})
	if err != nil {
		t.Fatalf("runTree() error = %v", err)
	}
	assertContains(t, output, []string{"Software", "System"})
	assertNotContains(t, output, []string{"Acme", "App"})
}

func TestInfoCommand(t *testing.T) {
	testStore(t, seedBasic)

	quiet = false
	jsonOut = false

	output, err := captureOutput(t, func() error {
		return runInfo([]string{`Software\Acme\App`})
	})
	if err != nil {
		t.Fatalf("runInfo() error = %v", err)
	}

	assertContains(t, output, []string{"Subkeys:", "Values:"})

	jsonOut = true
	output, err = captureOutput(t, func() error {
		return runInfo([]string{`Software\Acme`})
	})
	if err != nil {
		t.Fatalf("runInfo() error = %v", err)
	}
	assertJSON(t, output)
	assertContains(t, output, []string{"subkey_count", "value_count"})
}
