package pebblestore

import (
	"github.com/cockroachdb/pebble"

	"github.com/iamgweej/seagull/pkg/types"
	"github.com/iamgweej/seagull/store"
)

// DeleteValue removes one named value from the handle's key.
func (s *Store) DeleteValue(h store.Handle, name string) store.Status {
	s.mu.Lock()
	defer s.mu.Unlock()

	hs, st := s.handleLocked(h)
	if !st.Ok() {
		return st
	}
	if !hs.access.Has(types.KEY_SET_VALUE) {
		return store.StatusAccessDenied
	}

	key := valueKey(hs.enc, name)
	_, found, err := s.get(key)
	if err != nil {
		return statusInternal
	}
	if !found {
		return store.StatusNotFound
	}
	if err := s.db.Delete(key, pebble.Sync); err != nil {
		return statusInternal
	}
	return store.StatusOK
}

// DeleteKey removes a single childless key below the handle. A key with
// children is refused with StatusAccessDenied, per store semantics.
func (s *Store) DeleteKey(h store.Handle, subpath string, access types.Access) store.Status {
	s.mu.Lock()
	defer s.mu.Unlock()

	hs, st := s.handleLocked(h)
	if !st.Ok() {
		return st
	}
	if !hs.access.Has(types.KEY_CREATE_SUB_KEY) {
		return store.StatusAccessDenied
	}
	segs, valid := parseSubpath(subpath)
	if !valid || len(segs) == 0 {
		return statusInvalidParameter
	}

	enc := extendPath(hs.enc, segs)
	found, err := s.nodeExists(enc)
	if err != nil {
		return statusInternal
	}
	if !found {
		return store.StatusNotFound
	}

	hasChild := false
	if err := s.eachChild(enc, func(string) bool { hasChild = true; return false }); err != nil {
		return statusInternal
	}
	if hasChild {
		return store.StatusAccessDenied
	}

	b := s.db.NewBatch()
	lo, hi := ownValueRange(enc)
	if err := b.DeleteRange(lo, hi, nil); err != nil {
		b.Close()
		return statusInternal
	}
	if err := b.Delete(nodeKey(enc), nil); err != nil {
		b.Close()
		return statusInternal
	}
	if err := b.Commit(pebble.Sync); err != nil {
		return statusInternal
	}
	return store.StatusOK
}

// DeleteTree removes subpath and everything beneath it. With an empty
// subpath it deletes the handle key's children and values but keeps the key.
func (s *Store) DeleteTree(h store.Handle, subpath string) store.Status {
	s.mu.Lock()
	defer s.mu.Unlock()

	hs, st := s.handleLocked(h)
	if !st.Ok() {
		return st
	}
	if !hs.access.Has(types.KEY_CREATE_SUB_KEY) {
		return store.StatusAccessDenied
	}
	segs, valid := parseSubpath(subpath)
	if !valid {
		return statusInvalidParameter
	}

	enc := extendPath(hs.enc, segs)
	if len(segs) > 0 {
		found, err := s.nodeExists(enc)
		if err != nil {
			return statusInternal
		}
		if !found {
			return store.StatusNotFound
		}
	}

	b := s.db.NewBatch()
	nodeLo, nodeHi := childRange(enc)
	if err := b.DeleteRange(nodeLo, nodeHi, nil); err != nil {
		b.Close()
		return statusInternal
	}
	valLo, valHi := treeValueRange(enc)
	if err := b.DeleteRange(valLo, valHi, nil); err != nil {
		b.Close()
		return statusInternal
	}
	if len(segs) > 0 {
		if err := b.Delete(nodeKey(enc), nil); err != nil {
			b.Close()
			return statusInternal
		}
	}
	if err := b.Commit(pebble.Sync); err != nil {
		return statusInternal
	}
	return store.StatusOK
}
