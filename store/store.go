// Package store defines the contract between the seagull registry layer and
// a hierarchical key/value store. The shape deliberately mirrors the OS
// registry API it abstracts: opaque handles, numeric status codes,
// index-based enumeration, and caller-supplied buffers sized via QueryInfo.
//
// Two bindings ship with the module: pebblestore (portable, Pebble-backed)
// and winstore (the live Windows registry, build-tagged). The registry
// package is the intended consumer; it implements the two-phase enumeration
// protocol and maps Status codes to typed errors exactly once, so bindings
// stay thin pass-throughs.
package store

import "github.com/iamgweej/seagull/pkg/types"

// Handle is an opaque reference to an open key. The zero value is invalid.
// Handles are owned: whoever obtains one from CreateKey/OpenKey must release
// it with Close exactly once.
type Handle uintptr

// InvalidHandle is the zero, never-valid handle.
const InvalidHandle Handle = 0

// Status is a store status code. Zero means success. The canonical nonzero
// codes below use the Win32 numbering so the native binding passes LSTATUS
// values through unchanged; portable bindings synthesize the same codes.
// Any other nonzero value is a binding-specific failure.
type Status uint32

const (
	StatusOK            Status = 0
	StatusNotFound      Status = 2   // ERROR_FILE_NOT_FOUND
	StatusAccessDenied  Status = 5   // ERROR_ACCESS_DENIED
	StatusInvalidHandle Status = 6   // ERROR_INVALID_HANDLE
	StatusMoreData      Status = 234 // ERROR_MORE_DATA
	StatusNoMoreItems   Status = 259 // ERROR_NO_MORE_ITEMS
)

// Ok reports success.
func (s Status) Ok() bool { return s == StatusOK }

// KeyInfo is the result of a sizing query. Name lengths are in UTF-16 code
// units and exclude the terminator; MaxValueLen is in bytes. The numbers
// describe the key's contents at the moment of the query only; concurrent
// mutation can invalidate them before an enumeration sweep completes.
type KeyInfo struct {
	SubkeyCount      uint32
	MaxSubkeyNameLen uint32
	ValueCount       uint32
	MaxValueNameLen  uint32
	MaxValueLen      uint32
}

// Store is the contract a binding implements. Every method is synchronous
// and blocking; none retains the buffers passed to it.
//
// Enumeration is index-based, not cursor-based: re-querying the same index
// after a mutation may yield a different item. EnumSubkey and EnumValue
// write names into the caller's []uint16 buffer and report the length used;
// a too-small buffer yields StatusMoreData (with the needed data length
// reported, for the data buffer), an index past the end StatusNoMoreItems.
type Store interface {
	// CreateKey creates subpath under parent, or opens it if present,
	// creating missing intermediate keys. security is an opaque
	// binding-specific security descriptor; nil means default security.
	CreateKey(parent Handle, subpath string, access types.Access, options types.KeyOptions, security any) (Handle, types.Disposition, Status)

	// OpenKey opens an existing key only. An empty subpath opens a new
	// handle to the parent's key itself.
	OpenKey(parent Handle, subpath string, access types.Access) (Handle, Status)

	// Close releases a handle. Called exactly once per valid handle.
	Close(h Handle) Status

	// SetValue writes one named, typed value in a single call.
	SetValue(h Handle, name string, typ types.RegType, data []byte) Status

	// QueryInfo performs the sizing query for the two-phase enumeration
	// protocol.
	QueryInfo(h Handle) (KeyInfo, Status)

	// EnumSubkey writes the name of the index-th subkey into name and
	// returns the length used.
	EnumSubkey(h Handle, index uint32, name []uint16) (nameLen uint32, st Status)

	// EnumValue writes the index-th value's name into name and its bytes
	// into data, returning the lengths used and the value's type. A nil
	// data buffer requests name, type, and dataLen only. When data is too
	// small the status is StatusMoreData and dataLen reports the needed
	// size.
	EnumValue(h Handle, index uint32, name []uint16, data []byte) (nameLen uint32, typ types.RegType, dataLen uint32, st Status)

	// DeleteValue removes one named value.
	DeleteValue(h Handle, name string) Status

	// DeleteKey removes a single childless key. access carries view
	// selector bits for bindings that need them.
	DeleteKey(h Handle, subpath string, access types.Access) Status

	// DeleteTree removes subpath and everything beneath it. With an empty
	// subpath it empties the handle's own key but keeps the key itself.
	DeleteTree(h Handle, subpath string) Status
}
