package pebblestore

import (
	"bytes"

	"github.com/cockroachdb/pebble"

	"github.com/iamgweej/seagull/internal/wstr"
	"github.com/iamgweej/seagull/pkg/types"
	"github.com/iamgweej/seagull/store"
)

// SetValue writes one named, typed value in a single engine write.
func (s *Store) SetValue(h store.Handle, name string, typ types.RegType, data []byte) store.Status {
	s.mu.Lock()
	defer s.mu.Unlock()

	hs, st := s.handleLocked(h)
	if !st.Ok() {
		return st
	}
	if !hs.access.Has(types.KEY_SET_VALUE) {
		return store.StatusAccessDenied
	}

	rec := encodeValueRecord(name, typ, data)
	if err := s.db.Set(valueKey(hs.enc, name), rec, pebble.Sync); err != nil {
		return statusInternal
	}
	return store.StatusOK
}

// QueryInfo is the sizing half of the enumeration protocol: current counts
// and maximum lengths, nothing cached.
func (s *Store) QueryInfo(h store.Handle) (store.KeyInfo, store.Status) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	hs, st := s.handleLocked(h)
	if !st.Ok() {
		return store.KeyInfo{}, st
	}
	if !hs.access.Has(types.KEY_QUERY_VALUE) {
		return store.KeyInfo{}, store.StatusAccessDenied
	}

	var info store.KeyInfo

	err := s.eachChild(hs.enc, func(display string) bool {
		info.SubkeyCount++
		if n := uint32(len(wstr.Units(display))); n > info.MaxSubkeyNameLen {
			info.MaxSubkeyNameLen = n
		}
		return true
	})
	if err != nil {
		return store.KeyInfo{}, statusInternal
	}

	err = s.eachValue(hs.enc, func(name string, _ types.RegType, data []byte) bool {
		info.ValueCount++
		if n := uint32(len(wstr.Units(name))); n > info.MaxValueNameLen {
			info.MaxValueNameLen = n
		}
		if n := uint32(len(data)); n > info.MaxValueLen {
			info.MaxValueLen = n
		}
		return true
	})
	if err != nil {
		return store.KeyInfo{}, statusInternal
	}

	return info, store.StatusOK
}

// EnumSubkey writes the index-th child's display name into name.
func (s *Store) EnumSubkey(h store.Handle, index uint32, name []uint16) (uint32, store.Status) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	hs, st := s.handleLocked(h)
	if !st.Ok() {
		return 0, st
	}
	if !hs.access.Has(types.KEY_ENUMERATE_SUB_KEYS) {
		return 0, store.StatusAccessDenied
	}

	var (
		display string
		found   bool
		i       uint32
	)
	err := s.eachChild(hs.enc, func(d string) bool {
		if i == index {
			display, found = d, true
			return false
		}
		i++
		return true
	})
	if err != nil {
		return 0, statusInternal
	}
	if !found {
		return 0, store.StatusNoMoreItems
	}

	units := wstr.Units(display)
	if len(units) > len(name) {
		return uint32(len(units)), store.StatusMoreData
	}
	copy(name, units)
	return uint32(len(units)), store.StatusOK
}

// EnumValue writes the index-th value's name and bytes into the caller's
// buffers. A nil data buffer requests the name, type, and size only.
func (s *Store) EnumValue(h store.Handle, index uint32, name []uint16, data []byte) (uint32, types.RegType, uint32, store.Status) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	hs, st := s.handleLocked(h)
	if !st.Ok() {
		return 0, 0, 0, st
	}
	if !hs.access.Has(types.KEY_QUERY_VALUE) {
		return 0, 0, 0, store.StatusAccessDenied
	}

	var (
		valName string
		valType types.RegType
		valData []byte
		found   bool
		i       uint32
	)
	err := s.eachValue(hs.enc, func(n string, t types.RegType, d []byte) bool {
		if i == index {
			valName, valType, found = n, t, true
			valData = append([]byte(nil), d...)
			return false
		}
		i++
		return true
	})
	if err != nil {
		return 0, 0, 0, statusInternal
	}
	if !found {
		return 0, 0, 0, store.StatusNoMoreItems
	}

	units := wstr.Units(valName)
	dataLen := uint32(len(valData))
	if len(units) > len(name) {
		return uint32(len(units)), valType, dataLen, store.StatusMoreData
	}
	copy(name, units)
	nameLen := uint32(len(units))

	if data == nil {
		return nameLen, valType, dataLen, store.StatusOK
	}
	if int(dataLen) > len(data) {
		return nameLen, valType, dataLen, store.StatusMoreData
	}
	copy(data, valData)
	return nameLen, valType, dataLen, store.StatusOK
}

// eachChild visits the direct children of enc in key order, passing each
// display name. The callback returns false to stop early.
func (s *Store) eachChild(enc []byte, fn func(display string) bool) error {
	lo, hi := childRange(enc)
	iter, err := s.db.NewIter(&pebble.IterOptions{LowerBound: lo, UpperBound: hi})
	if err != nil {
		return err
	}
	defer iter.Close()

	for iter.First(); iter.Valid(); iter.Next() {
		// Skip grandchildren: their keys carry a further segment separator.
		rem := iter.Key()[len(lo):]
		if bytes.IndexByte(rem, segSep) >= 0 {
			continue
		}
		v, err := iter.ValueAndErr()
		if err != nil {
			return err
		}
		if !fn(string(v)) {
			return nil
		}
	}
	return iter.Error()
}

// eachValue visits the values attached to enc in key order. The data slice
// passed to the callback is only valid for the duration of the call.
func (s *Store) eachValue(enc []byte, fn func(name string, typ types.RegType, data []byte) bool) error {
	lo, hi := ownValueRange(enc)
	iter, err := s.db.NewIter(&pebble.IterOptions{LowerBound: lo, UpperBound: hi})
	if err != nil {
		return err
	}
	defer iter.Close()

	for iter.First(); iter.Valid(); iter.Next() {
		v, err := iter.ValueAndErr()
		if err != nil {
			return err
		}
		name, typ, data, ok := decodeValueRecord(v)
		if !ok {
			continue
		}
		if !fn(name, typ, data) {
			return nil
		}
	}
	return iter.Error()
}
