package main

import (
	"encoding/hex"
	"fmt"
	"strconv"
	"strings"

	"github.com/iamgweej/seagull/pkg/types"
	"github.com/iamgweej/seagull/registry"
)

// writeValue parses raw according to typ and writes it to k. Multi-strings
// are comma-separated, binary is hex.
func writeValue(k *registry.Key, typ types.RegType, name, raw string) error {
	switch typ {
	case types.REG_SZ:
		return k.SetStringValue(name, raw)
	case types.REG_EXPAND_SZ:
		return k.SetExpandStringValue(name, raw)
	case types.REG_DWORD:
		v, err := strconv.ParseUint(raw, 0, 32)
		if err != nil {
			return fmt.Errorf("invalid dword %q: %w", raw, err)
		}
		return k.SetDWordValue(name, uint32(v))
	case types.REG_QWORD:
		v, err := strconv.ParseUint(raw, 0, 64)
		if err != nil {
			return fmt.Errorf("invalid qword %q: %w", raw, err)
		}
		return k.SetQWordValue(name, v)
	case types.REG_MULTI_SZ:
		var list []string
		if raw != "" {
			list = strings.Split(raw, ",")
		}
		return k.SetMultiStringValue(name, list)
	case types.REG_BINARY:
		data, err := hex.DecodeString(raw)
		if err != nil {
			return fmt.Errorf("invalid hex %q: %w", raw, err)
		}
		return k.SetBinaryValue(name, data)
	}
	return fmt.Errorf("cannot write values of type %v", typ)
}

// formatValue renders a value for display.
func formatValue(v registry.Value) string {
	switch v.Type {
	case types.REG_SZ, types.REG_EXPAND_SZ:
		s, err := v.Text()
		if err != nil {
			return fmt.Sprintf("<%v>", err)
		}
		return s
	case types.REG_DWORD:
		n, err := v.Uint32()
		if err != nil {
			return fmt.Sprintf("<%v>", err)
		}
		return fmt.Sprintf("0x%08x (%d)", n, n)
	case types.REG_QWORD:
		n, err := v.Uint64()
		if err != nil {
			return fmt.Sprintf("<%v>", err)
		}
		return fmt.Sprintf("0x%016x (%d)", n, n)
	case types.REG_MULTI_SZ:
		list, err := v.Strings()
		if err != nil {
			return fmt.Sprintf("<%v>", err)
		}
		return strings.Join(list, ", ")
	default:
		return hexPreview(v.Data, 32)
	}
}

// hexPreview renders up to max bytes as hex, with an ellipsis past that.
func hexPreview(data []byte, max int) string {
	if len(data) <= max {
		return hex.EncodeToString(data)
	}
	return hex.EncodeToString(data[:max]) + "..."
}
