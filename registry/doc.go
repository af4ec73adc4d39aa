// Package registry is a safety-oriented access layer over a hierarchical
// typed key/value store. A Key owns exactly one store handle and exposes
// create/open, typed value setters, enumeration, and deletion as thin,
// invariant-preserving wrappers around the store contract: handles are
// released exactly once, buffers are sized through the store's own sizing
// query, and every status code is checked immediately and surfaced as a
// typed error.
//
// Everything is synchronous and blocking. A Key must not be shared across
// goroutines without external coordination; goroutines needing the same key
// should each open their own handle.
//
// Enumeration is a two-phase protocol: a sizing query followed by a
// fixed-capacity sweep. If another actor mutates the key between the two
// phases the sweep may observe fewer items, miss new ones, or find an item
// that outgrew the queried maximum; the last case is retried once with a
// grown buffer and then surfaced as types.ErrBufferTooSmall. This window is
// inherent to the store's index-based API and is not masked here.
package registry
