package registry

import (
	"github.com/iamgweej/seagull/pkg/types"
	"github.com/iamgweej/seagull/store"
)

// Key is the exclusive owner of one open store handle. The zero Key is
// invalid; valid Keys come from CreateKey, CreateKeyEx, or OpenKey. Close
// releases the handle exactly once and is safe to call repeatedly. Do not
// copy a Key: ownership moves with Detach, never with assignment.
type Key struct {
	s store.Store
	h store.Handle
}

// CreateKey creates subpath under parent, or opens it if it already exists,
// with default options and security.
func CreateKey(s store.Store, parent store.Handle, subpath string, access types.Access) (*Key, error) {
	k, _, err := CreateKeyEx(s, parent, subpath, access, types.OptionNonVolatile, nil)
	return k, err
}

// CreateKeyEx is CreateKey with explicit options and a binding-specific
// security descriptor, and reports whether the leaf key was created or
// opened.
func CreateKeyEx(s store.Store, parent store.Handle, subpath string, access types.Access, options types.KeyOptions, security any) (*Key, types.Disposition, error) {
	h, disp, st := s.CreateKey(parent, subpath, access, options, security)
	if !st.Ok() {
		return nil, 0, wrapStatus("registry: create key", st)
	}
	return &Key{s: s, h: h}, disp, nil
}

// OpenKey opens an existing key only.
func OpenKey(s store.Store, parent store.Handle, subpath string, access types.Access) (*Key, error) {
	h, st := s.OpenKey(parent, subpath, access)
	if !st.Ok() {
		return nil, wrapStatus("registry: open key", st)
	}
	return &Key{s: s, h: h}, nil
}

// IsValid reports whether the Key currently owns a handle.
func (k *Key) IsValid() bool {
	return k != nil && k.h != store.InvalidHandle
}

// Handle borrows the underlying handle. Ownership stays with the Key; the
// handle is only good until Close or Detach.
func (k *Key) Handle() store.Handle {
	if k == nil {
		return store.InvalidHandle
	}
	return k.h
}

// Detach transfers the handle out, leaving the Key invalid. The caller
// becomes responsible for releasing it.
func (k *Key) Detach() store.Handle {
	if k == nil {
		return store.InvalidHandle
	}
	h := k.h
	k.h = store.InvalidHandle
	return h
}

// Close releases the handle. Closing an invalid or already-closed Key is a
// no-op.
func (k *Key) Close() error {
	if !k.IsValid() {
		return nil
	}
	st := k.s.Close(k.h)
	k.h = store.InvalidHandle
	return wrapStatus("registry: close key", st)
}

// CreateSubkey creates or opens subpath below this Key.
func (k *Key) CreateSubkey(subpath string, access types.Access) (*Key, error) {
	if !k.IsValid() {
		return nil, errInvalidKey("registry: create key")
	}
	return CreateKey(k.s, k.h, subpath, access)
}

// OpenSubkey opens an existing subpath below this Key.
func (k *Key) OpenSubkey(subpath string, access types.Access) (*Key, error) {
	if !k.IsValid() {
		return nil, errInvalidKey("registry: open key")
	}
	return OpenKey(k.s, k.h, subpath, access)
}
