package registry

import (
	"encoding/binary"
	"fmt"

	"github.com/iamgweej/seagull/internal/wstr"
	"github.com/iamgweej/seagull/pkg/types"
)

// Each setter issues exactly one store write, so a failure never leaves a
// partially written value behind.

func (k *Key) setValue(op string, name string, typ types.RegType, data []byte) error {
	if !k.IsValid() {
		return errInvalidKey(op)
	}
	return wrapStatus(op, k.s.SetValue(k.h, name, typ, data))
}

// SetDWordValue writes a 32-bit integer as REG_DWORD.
func (k *Key) SetDWordValue(name string, v uint32) error {
	var b [4]byte
	binary.LittleEndian.PutUint32(b[:], v)
	return k.setValue("registry: set dword value", name, types.REG_DWORD, b[:])
}

// SetQWordValue writes a 64-bit integer as REG_QWORD.
func (k *Key) SetQWordValue(name string, v uint64) error {
	var b [8]byte
	binary.LittleEndian.PutUint64(b[:], v)
	return k.setValue("registry: set qword value", name, types.REG_QWORD, b[:])
}

// SetStringValue writes text as REG_SZ: UTF-16LE with one trailing NUL.
func (k *Key) SetStringValue(name, val string) error {
	return k.setText("registry: set string value", name, types.REG_SZ, val)
}

// SetExpandStringValue writes text as REG_EXPAND_SZ. The bytes are the same
// as REG_SZ; only the type tag differs. Placeholders like %PATH% are stored
// verbatim, never expanded here.
func (k *Key) SetExpandStringValue(name, val string) error {
	return k.setText("registry: set expand string value", name, types.REG_EXPAND_SZ, val)
}

func (k *Key) setText(op, name string, typ types.RegType, val string) error {
	if !k.IsValid() {
		return errInvalidKey(op)
	}
	data, err := wstr.EncodeZ(val)
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}
	return wrapStatus(op, k.s.SetValue(k.h, name, typ, data))
}

// SetMultiStringValue writes an ordered string list as REG_MULTI_SZ in the
// NUL-separated, double-NUL-terminated wire form.
func (k *Key) SetMultiStringValue(name string, vals []string) error {
	const op = "registry: set multi string value"
	if !k.IsValid() {
		return errInvalidKey(op)
	}
	data, err := wstr.EncodeMulti(vals)
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}
	return wrapStatus(op, k.s.SetValue(k.h, name, types.REG_MULTI_SZ, data))
}

// SetBinaryValue writes raw bytes as REG_BINARY, unframed.
func (k *Key) SetBinaryValue(name string, data []byte) error {
	return k.setValue("registry: set binary value", name, types.REG_BINARY, data)
}
