package registry

import (
	"github.com/iamgweej/seagull/pkg/types"
	"github.com/iamgweej/seagull/store"
)

// wrapStatus maps a store status to the typed error taxonomy, preserving
// the raw code. The canonical codes get their own kinds; everything else is
// Generic.
func wrapStatus(op string, st store.Status) error {
	if st.Ok() {
		return nil
	}
	kind := types.ErrKindGeneric
	switch st {
	case store.StatusNotFound:
		kind = types.ErrKindNotFound
	case store.StatusAccessDenied:
		kind = types.ErrKindAccessDenied
	case store.StatusInvalidHandle:
		kind = types.ErrKindInvalidHandle
	case store.StatusMoreData:
		kind = types.ErrKindBufferTooSmall
	}
	return &types.Error{Kind: kind, Op: op, Code: uint32(st)}
}

// errInvalidKey reports an operation attempted on a closed or never-opened
// Key, without touching the store.
func errInvalidKey(op string) error {
	return &types.Error{Kind: types.ErrKindInvalidHandle, Op: op}
}
