// Package types holds the shared vocabulary of the seagull registry layer:
// value-type discriminants and their canonical text form, access-right and
// key-option bitmasks, create dispositions, and the typed error taxonomy
// every layer reports through.
//
// The numeric values deliberately match the Win32 definitions so the native
// Windows store binding can pass them through unchanged; portable bindings
// interpret the same numbers.
package types
