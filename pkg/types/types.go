package types

import (
	"fmt"
	"strings"
)

// RegType enumerates registry value types.
// (The numbers align with the Windows definitions.)
type RegType uint32

const (
	REG_NONE                       RegType = 0
	REG_SZ                         RegType = 1
	REG_EXPAND_SZ                  RegType = 2
	REG_BINARY                     RegType = 3
	REG_DWORD                      RegType = 4
	REG_DWORD_LE                   RegType = 4 // alias for clarity
	REG_DWORD_BE                   RegType = 5
	REG_LINK                       RegType = 6
	REG_MULTI_SZ                   RegType = 7
	REG_RESOURCE_LIST              RegType = 8
	REG_FULL_RESOURCE_DESCRIPTOR   RegType = 9
	REG_RESOURCE_REQUIREMENTS_LIST RegType = 10
	REG_QWORD                      RegType = 11
)

// String returns the canonical REG_* name for a value type.
func (t RegType) String() string {
	switch t {
	case REG_NONE:
		return "REG_NONE"
	case REG_SZ:
		return "REG_SZ"
	case REG_EXPAND_SZ:
		return "REG_EXPAND_SZ"
	case REG_BINARY:
		return "REG_BINARY"
	case REG_DWORD:
		return "REG_DWORD"
	case REG_DWORD_BE:
		return "REG_DWORD_BE"
	case REG_LINK:
		return "REG_LINK"
	case REG_MULTI_SZ:
		return "REG_MULTI_SZ"
	case REG_RESOURCE_LIST:
		return "REG_RESOURCE_LIST"
	case REG_FULL_RESOURCE_DESCRIPTOR:
		return "REG_FULL_RESOURCE_DESCRIPTOR"
	case REG_RESOURCE_REQUIREMENTS_LIST:
		return "REG_RESOURCE_REQUIREMENTS_LIST"
	case REG_QWORD:
		return "REG_QWORD"
	default:
		return fmt.Sprintf("UNKNOWN_TYPE_%d", int32(t))
	}
}

// ParseRegType is the inverse of RegType.String for the types callers
// actually write. It accepts the REG_* name with or without the prefix,
// case-insensitively.
func ParseRegType(s string) (RegType, error) {
	name := strings.ToUpper(strings.TrimSpace(s))
	name = strings.TrimPrefix(name, "REG_")
	switch name {
	case "NONE":
		return REG_NONE, nil
	case "SZ", "STRING":
		return REG_SZ, nil
	case "EXPAND_SZ":
		return REG_EXPAND_SZ, nil
	case "BINARY":
		return REG_BINARY, nil
	case "DWORD":
		return REG_DWORD, nil
	case "MULTI_SZ":
		return REG_MULTI_SZ, nil
	case "QWORD":
		return REG_QWORD, nil
	}
	return REG_NONE, fmt.Errorf("unknown registry value type %q", s)
}

// Access is a bitmask of rights requested when opening or creating a key.
// The bit layout matches REGSAM.
type Access uint32

const (
	KEY_QUERY_VALUE        Access = 0x0001
	KEY_SET_VALUE          Access = 0x0002
	KEY_CREATE_SUB_KEY     Access = 0x0004
	KEY_ENUMERATE_SUB_KEYS Access = 0x0008
	KEY_NOTIFY             Access = 0x0010
	KEY_CREATE_LINK        Access = 0x0020

	DELETE       Access = 0x10000
	READ_CONTROL Access = 0x20000

	KEY_READ       Access = READ_CONTROL | KEY_QUERY_VALUE | KEY_ENUMERATE_SUB_KEYS | KEY_NOTIFY
	KEY_WRITE      Access = READ_CONTROL | KEY_SET_VALUE | KEY_CREATE_SUB_KEY
	KEY_ALL_ACCESS Access = 0xF003F

	// WOW64 view selectors, meaningful only to the native Windows binding.
	KEY_WOW64_64KEY Access = 0x0100
	KEY_WOW64_32KEY Access = 0x0200
)

// Has reports whether every bit of want is present in a.
func (a Access) Has(want Access) bool { return a&want == want }

// KeyOptions controls key creation behavior.
type KeyOptions uint32

const (
	// OptionNonVolatile keys persist across store restarts. The default.
	OptionNonVolatile KeyOptions = 0x0
	// OptionVolatile keys live only until the store is unloaded.
	OptionVolatile KeyOptions = 0x1
)

// Disposition reports whether a create-or-open call created a new key or
// opened an existing one.
type Disposition uint32

const (
	CreatedNewKey     Disposition = 1
	OpenedExistingKey Disposition = 2
)

func (d Disposition) String() string {
	switch d {
	case CreatedNewKey:
		return "created new key"
	case OpenedExistingKey:
		return "opened existing key"
	default:
		return fmt.Sprintf("disposition(%d)", uint32(d))
	}
}
