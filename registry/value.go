package registry

import (
	"encoding/binary"
	"fmt"

	"github.com/iamgweej/seagull/internal/wstr"
	"github.com/iamgweej/seagull/pkg/types"
)

// Value is an immutable snapshot of one stored value: its type tag and an
// owned copy of its bytes. Values come from enumeration only and hold no
// reference to the Key that produced them.
type Value struct {
	Type types.RegType
	Data []byte
}

// NamedValue pairs a value with its name, as enumerated.
type NamedValue struct {
	Name string
	Value
}

// Len returns the byte length of the value's data.
func (v Value) Len() int { return len(v.Data) }

func typeMismatch(want, have types.RegType) error {
	return &types.Error{
		Kind: types.ErrKindType,
		Op:   "registry: decode value",
		Err:  fmt.Errorf("want %v, have %v", want, have),
	}
}

// Uint32 decodes a REG_DWORD value.
func (v Value) Uint32() (uint32, error) {
	if v.Type != types.REG_DWORD {
		return 0, typeMismatch(types.REG_DWORD, v.Type)
	}
	if len(v.Data) != 4 {
		return 0, fmt.Errorf("registry: REG_DWORD value has %d bytes, want 4", len(v.Data))
	}
	return binary.LittleEndian.Uint32(v.Data), nil
}

// Uint64 decodes a REG_QWORD value.
func (v Value) Uint64() (uint64, error) {
	if v.Type != types.REG_QWORD {
		return 0, typeMismatch(types.REG_QWORD, v.Type)
	}
	if len(v.Data) != 8 {
		return 0, fmt.Errorf("registry: REG_QWORD value has %d bytes, want 8", len(v.Data))
	}
	return binary.LittleEndian.Uint64(v.Data), nil
}

// Text decodes a REG_SZ or REG_EXPAND_SZ value. Expansion placeholders come
// back verbatim; expanding them is the caller's business.
func (v Value) Text() (string, error) {
	if v.Type != types.REG_SZ && v.Type != types.REG_EXPAND_SZ {
		return "", typeMismatch(types.REG_SZ, v.Type)
	}
	s, err := wstr.DecodeZ(v.Data)
	if err != nil {
		return "", fmt.Errorf("registry: decode value: %w", err)
	}
	return s, nil
}

// Strings decodes a REG_MULTI_SZ value.
func (v Value) Strings() ([]string, error) {
	if v.Type != types.REG_MULTI_SZ {
		return nil, typeMismatch(types.REG_MULTI_SZ, v.Type)
	}
	list, err := wstr.DecodeMulti(v.Data)
	if err != nil {
		return nil, fmt.Errorf("registry: decode value: %w", err)
	}
	return list, nil
}
