package registry

import "github.com/iamgweej/seagull/pkg/types"

// DeleteValue removes one named value. Returns types.ErrNotFound if the
// value does not exist.
func (k *Key) DeleteValue(name string) error {
	const op = "registry: delete value"
	if !k.IsValid() {
		return errInvalidKey(op)
	}
	return wrapStatus(op, k.s.DeleteValue(k.h, name))
}

// DeleteKey removes a single childless key below this one. A key with
// children is refused, per store semantics; use DeleteTree for that. access
// carries view selector bits for bindings that need them.
func (k *Key) DeleteKey(subpath string, access types.Access) error {
	const op = "registry: delete key"
	if !k.IsValid() {
		return errInvalidKey(op)
	}
	return wrapStatus(op, k.s.DeleteKey(k.h, subpath, access))
}

// DeleteTree removes subpath and everything beneath it. Irreversible; no
// confirmation, no dry run. With an empty subpath it empties this key but
// keeps the key itself.
func (k *Key) DeleteTree(subpath string) error {
	const op = "registry: delete tree"
	if !k.IsValid() {
		return errInvalidKey(op)
	}
	return wrapStatus(op, k.s.DeleteTree(k.h, subpath))
}
