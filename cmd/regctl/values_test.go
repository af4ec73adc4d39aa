package main

import (
	"testing"
)

func TestValuesCommand(t *testing.T) {
	testStore(t, seedBasic)

	quiet = false
	jsonOut = false

	output, err := captureOutput(t, func() error {
		return runValues([]string{`Software\Acme\App`})
	})
	if err != nil {
		t.Fatalf("runValues() error = %v", err)
	}

	assertContains(t, output, []string{
		"Version", "REG_SZ", "1.0.0",
		"Enabled", "REG_DWORD",
		"Dirs", "REG_MULTI_SZ", "bin, lib",
	})

	jsonOut = true
	output, err = captureOutput(t, func() error {
		return runValues([]string{`Software\Acme\App`})
	})
	if err != nil {
		t.Fatalf("runValues() error = %v", err)
	}
	assertJSON(t, output)
	assertContains(t, output, []string{"Version", "REG_SZ"})
}

func TestValuesCommandEmptyKey(t *testing.T) {
	testStore(t, seedBasic)

	quiet = false
	jsonOut = false

	output, err := captureOutput(t, func() error {
		return runValues([]string{`Software\Other`})
	})
	if err != nil {
		t.Fatalf("runValues() error = %v", err)
	}
	if output != "" {
		t.Errorf("expected no output for empty key, got %q", output)
	}
}

func TestDeleteValueCommand(t *testing.T) {
	testStore(t, seedBasic)

	quiet = false
	jsonOut = false

	if _, err := captureOutput(t, func() error {
		return runDeleteValue([]string{`Software\Acme\App`, "Version"})
	}); err != nil {
		t.Fatalf("runDeleteValue() error = %v", err)
	}

	getShowType = false
	if _, err := captureOutput(t, func() error {
		return runGet([]string{`Software\Acme\App`, "Version"})
	}); err == nil {
		t.Error("expected get to fail after delete-value")
	}

	if _, err := captureOutput(t, func() error {
		return runDeleteValue([]string{`Software\Acme\App`, "Version"})
	}); err == nil {
		t.Error("expected second delete-value to fail")
	}
}

func TestDeleteKeyCommand(t *testing.T) {
	testStore(t, seedBasic)

	quiet = false
	jsonOut = false

	// Refused: key has children.
	deleteKeyRecursive = false
	if _, err := captureOutput(t, func() error {
		return runDeleteKey([]string{`Software\Acme`})
	}); err == nil {
		t.Error("expected non-recursive delete of a parent key to fail")
	}

	// Childless key goes.
	if _, err := captureOutput(t, func() error {
		return runDeleteKey([]string{`Software\Acme\Tools`})
	}); err != nil {
		t.Fatalf("runDeleteKey() error = %v", err)
	}

	// Recursive takes the rest.
	deleteKeyRecursive = true
	if _, err := captureOutput(t, func() error {
		return runDeleteKey([]string{"Software"})
	}); err != nil {
		t.Fatalf("runDeleteKey() recursive error = %v", err)
	}

	output, err := captureOutput(t, func() error {
		return runKeys(nil)
	})
	if err != nil {
		t.Fatalf("runKeys() error = %v", err)
	}
	assertContains(t, output, []string{"System"})
	assertNotContains(t, output, []string{"Software"})
}
