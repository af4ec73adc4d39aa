package pebblestore

import (
	"github.com/cockroachdb/pebble"
	"github.com/cockroachdb/pebble/vfs"

	"github.com/iamgweej/seagull/pkg/types"
	"github.com/iamgweej/seagull/store"

	"sync"
)

// Store is a Pebble-backed implementation of store.Store.
type Store struct {
	db *pebble.DB

	mu      sync.RWMutex
	handles map[store.Handle]*handleState
	nextID  store.Handle
	root    store.Handle
	closed  bool
}

// handleState is one open handle: the key it refers to and the rights it
// was granted.
type handleState struct {
	enc    []byte
	access types.Access
}

var _ store.Store = (*Store)(nil)

// Open opens (creating if necessary) a store in the given directory and
// returns it together with a root handle holding full access. The root
// handle is released by Close like any other.
func Open(dir string) (*Store, store.Handle, error) {
	return open(dir, &pebble.Options{})
}

// OpenMem opens a store on an in-memory filesystem. Contents vanish when
// the store is closed; intended for tests.
func OpenMem() (*Store, store.Handle, error) {
	return open("", &pebble.Options{FS: vfs.NewMem()})
}

func open(dir string, opts *pebble.Options) (*Store, store.Handle, error) {
	db, err := pebble.Open(dir, opts)
	if err != nil {
		return nil, store.InvalidHandle, err
	}

	s := &Store{
		db:      db,
		handles: make(map[store.Handle]*handleState),
		nextID:  1,
	}

	// Ensure the root node record exists.
	if _, found, err := s.get(nodeKey(nil)); err != nil {
		db.Close()
		return nil, store.InvalidHandle, err
	} else if !found {
		if err := db.Set(nodeKey(nil), nil, pebble.Sync); err != nil {
			db.Close()
			return nil, store.InvalidHandle, err
		}
	}

	s.root = s.allocHandle(nil, types.KEY_ALL_ACCESS)
	return s, s.root, nil
}

// Root returns the root handle issued at Open time.
func (s *Store) Root() store.Handle {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.root
}

// CloseStore releases the underlying database. Open handles become invalid.
func (s *Store) CloseStore() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.closed {
		return nil
	}
	s.closed = true
	s.handles = make(map[store.Handle]*handleState)
	return s.db.Close()
}

func (s *Store) allocHandle(enc []byte, access types.Access) store.Handle {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.allocHandleLocked(enc, access)
}

func (s *Store) allocHandleLocked(enc []byte, access types.Access) store.Handle {
	h := s.nextID
	s.nextID++
	s.handles[h] = &handleState{enc: enc, access: access}
	return h
}

// handleLocked resolves a handle. Caller holds s.mu (either mode).
func (s *Store) handleLocked(h store.Handle) (*handleState, store.Status) {
	if s.closed {
		return nil, store.StatusInvalidHandle
	}
	hs, ok := s.handles[h]
	if !ok {
		return nil, store.StatusInvalidHandle
	}
	return hs, store.StatusOK
}

// get reads a record, copying it out of Pebble's buffer.
func (s *Store) get(key []byte) ([]byte, bool, error) {
	value, closer, err := s.db.Get(key)
	if err == pebble.ErrNotFound {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, err
	}
	defer closer.Close()

	result := make([]byte, len(value))
	copy(result, value)
	return result, true, nil
}

func (s *Store) nodeExists(enc []byte) (bool, error) {
	_, found, err := s.get(nodeKey(enc))
	return found, err
}

// Close releases one handle. Idempotence is the owner's concern: a handle
// that was never issued, or was already closed, is an invalid handle here.
func (s *Store) Close(h store.Handle) store.Status {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, st := s.handleLocked(h); !st.Ok() {
		return st
	}
	delete(s.handles, h)
	return store.StatusOK
}

// CreateKey creates or opens subpath below parent, creating missing
// intermediate keys like the OS call does.
func (s *Store) CreateKey(parent store.Handle, subpath string, access types.Access, options types.KeyOptions, security any) (store.Handle, types.Disposition, store.Status) {
	s.mu.Lock()
	defer s.mu.Unlock()

	hs, st := s.handleLocked(parent)
	if !st.Ok() {
		return store.InvalidHandle, 0, st
	}
	segs, valid := parseSubpath(subpath)
	if !valid {
		return store.InvalidHandle, 0, statusInvalidParameter
	}
	if len(segs) > 0 && !hs.access.Has(types.KEY_CREATE_SUB_KEY) {
		return store.InvalidHandle, 0, store.StatusAccessDenied
	}

	enc := append([]byte(nil), hs.enc...)
	disp := types.OpenedExistingKey
	for _, seg := range segs {
		enc = extendPath(enc, []string{seg})
		found, err := s.nodeExists(enc)
		if err != nil {
			return store.InvalidHandle, 0, statusInternal
		}
		if found {
			disp = types.OpenedExistingKey
			continue
		}
		if err := s.db.Set(nodeKey(enc), []byte(seg), pebble.Sync); err != nil {
			return store.InvalidHandle, 0, statusInternal
		}
		disp = types.CreatedNewKey
	}

	return s.allocHandleLocked(enc, access), disp, store.StatusOK
}

// OpenKey opens an existing key only.
func (s *Store) OpenKey(parent store.Handle, subpath string, access types.Access) (store.Handle, store.Status) {
	s.mu.Lock()
	defer s.mu.Unlock()

	hs, st := s.handleLocked(parent)
	if !st.Ok() {
		return store.InvalidHandle, st
	}
	segs, valid := parseSubpath(subpath)
	if !valid {
		return store.InvalidHandle, statusInvalidParameter
	}

	enc := extendPath(hs.enc, segs)
	found, err := s.nodeExists(enc)
	if err != nil {
		return store.InvalidHandle, statusInternal
	}
	if !found {
		return store.InvalidHandle, store.StatusNotFound
	}

	return s.allocHandleLocked(enc, access), store.StatusOK
}
