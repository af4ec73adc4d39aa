package registry

import (
	"strings"

	"github.com/iamgweej/seagull/internal/wstr"
	"github.com/iamgweej/seagull/store"
)

// Subkeys returns the names of the key's direct children, in store
// enumeration order. The result has exactly the count the sizing query
// reported; if enumeration fails partway, everything collected is discarded
// and the error surfaced.
func (k *Key) Subkeys() ([]string, error) {
	const op = "registry: enum subkeys"
	if !k.IsValid() {
		return nil, errInvalidKey(op)
	}

	info, st := k.s.QueryInfo(k.h)
	if !st.Ok() {
		return nil, wrapStatus(op, st)
	}

	buf := make([]uint16, info.MaxSubkeyNameLen+1)
	names := make([]string, 0, info.SubkeyCount)
	for i := uint32(0); i < info.SubkeyCount; i++ {
		n, st := k.s.EnumSubkey(k.h, i, buf)
		if st == store.StatusMoreData {
			// The name outgrew the queried maximum between phases.
			buf = make([]uint16, n)
			n, st = k.s.EnumSubkey(k.h, i, buf)
		}
		if !st.Ok() {
			return nil, wrapStatus(op, st)
		}
		names = append(names, wstr.DecodeUnits(buf[:n]))
	}
	return names, nil
}

// ValueNames returns the names of the key's values, in store enumeration
// order.
func (k *Key) ValueNames() ([]string, error) {
	const op = "registry: enum value names"
	if !k.IsValid() {
		return nil, errInvalidKey(op)
	}

	info, st := k.s.QueryInfo(k.h)
	if !st.Ok() {
		return nil, wrapStatus(op, st)
	}

	buf := make([]uint16, info.MaxValueNameLen+1)
	names := make([]string, 0, info.ValueCount)
	for i := uint32(0); i < info.ValueCount; i++ {
		n, _, _, st := k.s.EnumValue(k.h, i, buf, nil)
		if st == store.StatusMoreData {
			buf = make([]uint16, n)
			n, _, _, st = k.s.EnumValue(k.h, i, buf, nil)
		}
		if !st.Ok() {
			return nil, wrapStatus(op, st)
		}
		names = append(names, wstr.DecodeUnits(buf[:n]))
	}
	return names, nil
}

// Values enumerates the key's values. Both phases share one name buffer and
// one data buffer; each returned Value owns an independent copy of its
// bytes. An item that outgrew the queried maximum is retried once with the
// store-reported size, then surfaced as a buffer-too-small error.
func (k *Key) Values() ([]NamedValue, error) {
	const op = "registry: enum values"
	if !k.IsValid() {
		return nil, errInvalidKey(op)
	}

	info, st := k.s.QueryInfo(k.h)
	if !st.Ok() {
		return nil, wrapStatus(op, st)
	}

	nameBuf := make([]uint16, info.MaxValueNameLen+1)
	dataBuf := make([]byte, info.MaxValueLen)
	out := make([]NamedValue, 0, info.ValueCount)
	for i := uint32(0); i < info.ValueCount; i++ {
		nameLen, typ, dataLen, st := k.s.EnumValue(k.h, i, nameBuf, dataBuf)
		// Some stores report a too-small data buffer with a success status
		// and only the needed size filled in; treat that like MoreData.
		if st == store.StatusMoreData || (st.Ok() && int(dataLen) > len(dataBuf)) {
			if int(nameLen) > len(nameBuf) {
				nameBuf = make([]uint16, nameLen)
			}
			if int(dataLen) > len(dataBuf) {
				dataBuf = make([]byte, dataLen)
			}
			nameLen, typ, dataLen, st = k.s.EnumValue(k.h, i, nameBuf, dataBuf)
		}
		if !st.Ok() {
			return nil, wrapStatus(op, st)
		}
		if int(dataLen) > len(dataBuf) {
			return nil, wrapStatus(op, store.StatusMoreData)
		}

		data := make([]byte, dataLen)
		copy(data, dataBuf[:dataLen])
		out = append(out, NamedValue{
			Name:  wstr.DecodeUnits(nameBuf[:nameLen]),
			Value: Value{Type: typ, Data: data},
		})
	}
	return out, nil
}

// Value looks up one named value through the enumeration path (the store
// contract has no point read). Matching is case-insensitive like the
// store's own name matching. Returns types.ErrNotFound if absent.
func (k *Key) Value(name string) (Value, error) {
	vals, err := k.Values()
	if err != nil {
		return Value{}, err
	}
	for _, nv := range vals {
		if strings.EqualFold(nv.Name, name) {
			return nv.Value, nil
		}
	}
	return Value{}, wrapStatus("registry: get value", store.StatusNotFound)
}

// Info exposes the sizing query directly.
func (k *Key) Info() (store.KeyInfo, error) {
	const op = "registry: query info"
	if !k.IsValid() {
		return store.KeyInfo{}, errInvalidKey(op)
	}
	info, st := k.s.QueryInfo(k.h)
	if !st.Ok() {
		return store.KeyInfo{}, wrapStatus(op, st)
	}
	return info, nil
}
