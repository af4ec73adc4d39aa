package main

import (
	"bytes"
	"encoding/json"
	"os"
	"strings"
	"testing"

	"github.com/spf13/viper"

	"github.com/iamgweej/seagull/pkg/types"
	"github.com/iamgweej/seagull/registry"
	"github.com/iamgweej/seagull/store/pebblestore"
)

// testStore creates a throwaway store directory, seeds it via fn, and points
// the store flag at it. Commands run after this operate on the seeded store.
func testStore(t *testing.T, fn func(t *testing.T, root *registry.Key)) {
	t.Helper()

	dir := t.TempDir()
	s, rootH, err := pebblestore.Open(dir)
	if err != nil {
		t.Fatalf("failed to open store: %v", err)
	}

	root, err := registry.OpenKey(s, rootH, "", types.KEY_ALL_ACCESS)
	if err != nil {
		t.Fatalf("failed to open store root: %v", err)
	}
	fn(t, root)
	if err := root.Close(); err != nil {
		t.Fatalf("failed to close root key: %v", err)
	}
	if err := s.CloseStore(); err != nil {
		t.Fatalf("failed to close store: %v", err)
	}

	viper.Set("store", dir)
	t.Cleanup(func() { viper.Set("store", "") })
}

// captureOutput captures stdout while running a function
func captureOutput(t *testing.T, fn func() error) (string, error) {
	t.Helper()

	origStdout := os.Stdout

	r, w, err := os.Pipe()
	if err != nil {
		t.Fatalf("failed to create pipe: %v", err)
	}

	os.Stdout = w

	fnErr := fn()

	w.Close()
	os.Stdout = origStdout

	var buf bytes.Buffer
	if _, err := buf.ReadFrom(r); err != nil {
		t.Fatalf("failed to read output: %v", err)
	}

	return buf.String(), fnErr
}

// assertJSON checks that output is valid JSON
func assertJSON(t *testing.T, output string) {
	t.Helper()
	var result interface{}
	if err := json.Unmarshal([]byte(output), &result); err != nil {
		t.Errorf("invalid JSON output: %v\nOutput: %s", err, output)
	}
}

// assertContains checks that output contains all expected strings
func assertContains(t *testing.T, output string, expected []string) {
	t.Helper()
	for _, want := range expected {
		if !strings.Contains(output, want) {
			t.Errorf("output missing expected string %q\nGot: %s", want, output)
		}
	}
}

// assertNotContains checks that output doesn't contain unwanted strings
func assertNotContains(t *testing.T, output string, unwanted []string) {
	t.Helper()
	for _, dont := range unwanted {
		if strings.Contains(output, dont) {
			t.Errorf("output contains unwanted string %q\nGot: %s", dont, output)
		}
	}
}
