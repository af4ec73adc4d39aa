//go:build windows

package winstore

import (
	"unsafe"

	"golang.org/x/sys/windows"

	"github.com/iamgweej/seagull/pkg/types"
	"github.com/iamgweej/seagull/store"
)

var (
	advapi32 = windows.NewLazySystemDLL("advapi32.dll")

	procRegCreateKeyExW  = advapi32.NewProc("RegCreateKeyExW")
	procRegOpenKeyExW    = advapi32.NewProc("RegOpenKeyExW")
	procRegCloseKey      = advapi32.NewProc("RegCloseKey")
	procRegSetValueExW   = advapi32.NewProc("RegSetValueExW")
	procRegQueryInfoKeyW = advapi32.NewProc("RegQueryInfoKeyW")
	procRegEnumKeyExW    = advapi32.NewProc("RegEnumKeyExW")
	procRegEnumValueW    = advapi32.NewProc("RegEnumValueW")
	procRegDeleteValueW  = advapi32.NewProc("RegDeleteValueW")
	procRegDeleteKeyExW  = advapi32.NewProc("RegDeleteKeyExW")
	procRegDeleteTreeW   = advapi32.NewProc("RegDeleteTreeW")
)

// Pre-existing anchoring roots, usable as parent handles directly. These
// pseudo-handles need no Close.
const (
	ClassesRoot   store.Handle = 0x80000000
	CurrentUser   store.Handle = 0x80000001
	LocalMachine  store.Handle = 0x80000002
	Users         store.Handle = 0x80000003
	CurrentConfig store.Handle = 0x80000005
)

// statusInvalidParameter mirrors ERROR_INVALID_PARAMETER for arguments the
// syscall layer cannot represent (strings with embedded NUL, a security
// descriptor of the wrong type).
const statusInvalidParameter store.Status = 87

// Store is the live Windows registry. The zero value is ready to use; all
// state lives in the OS.
type Store struct{}

// New returns the live-registry binding.
func New() *Store { return &Store{} }

var _ store.Store = (*Store)(nil)

func utf16Arg(s string) (*uint16, store.Status) {
	p, err := windows.UTF16PtrFromString(s)
	if err != nil {
		return nil, statusInvalidParameter
	}
	return p, store.StatusOK
}

// CreateKey wraps RegCreateKeyExW. security, when non-nil, must be a
// *windows.SecurityAttributes.
func (s *Store) CreateKey(parent store.Handle, subpath string, access types.Access, options types.KeyOptions, security any) (store.Handle, types.Disposition, store.Status) {
	sub, st := utf16Arg(subpath)
	if !st.Ok() {
		return store.InvalidHandle, 0, st
	}
	var sa *windows.SecurityAttributes
	if security != nil {
		var ok bool
		if sa, ok = security.(*windows.SecurityAttributes); !ok {
			return store.InvalidHandle, 0, statusInvalidParameter
		}
	}

	var (
		h    windows.Handle
		disp uint32
	)
	r, _, _ := procRegCreateKeyExW.Call(
		uintptr(parent),
		uintptr(unsafe.Pointer(sub)),
		0, // reserved
		0, // class
		uintptr(options),
		uintptr(access),
		uintptr(unsafe.Pointer(sa)),
		uintptr(unsafe.Pointer(&h)),
		uintptr(unsafe.Pointer(&disp)),
	)
	if r != 0 {
		return store.InvalidHandle, 0, store.Status(r)
	}
	return store.Handle(h), types.Disposition(disp), store.StatusOK
}

// OpenKey wraps RegOpenKeyExW.
func (s *Store) OpenKey(parent store.Handle, subpath string, access types.Access) (store.Handle, store.Status) {
	sub, st := utf16Arg(subpath)
	if !st.Ok() {
		return store.InvalidHandle, st
	}

	var h windows.Handle
	r, _, _ := procRegOpenKeyExW.Call(
		uintptr(parent),
		uintptr(unsafe.Pointer(sub)),
		0, // options
		uintptr(access),
		uintptr(unsafe.Pointer(&h)),
	)
	if r != 0 {
		return store.InvalidHandle, store.Status(r)
	}
	return store.Handle(h), store.StatusOK
}

// Close wraps RegCloseKey.
func (s *Store) Close(h store.Handle) store.Status {
	r, _, _ := procRegCloseKey.Call(uintptr(h))
	return store.Status(r)
}

// SetValue wraps RegSetValueExW.
func (s *Store) SetValue(h store.Handle, name string, typ types.RegType, data []byte) store.Status {
	namePtr, st := utf16Arg(name)
	if !st.Ok() {
		return st
	}
	var dataPtr *byte
	if len(data) > 0 {
		dataPtr = &data[0]
	}
	r, _, _ := procRegSetValueExW.Call(
		uintptr(h),
		uintptr(unsafe.Pointer(namePtr)),
		0, // reserved
		uintptr(typ),
		uintptr(unsafe.Pointer(dataPtr)),
		uintptr(len(data)),
	)
	return store.Status(r)
}

// QueryInfo wraps RegQueryInfoKeyW, requesting only the counts and maximum
// lengths the enumeration protocol needs.
func (s *Store) QueryInfo(h store.Handle) (store.KeyInfo, store.Status) {
	var info store.KeyInfo
	r, _, _ := procRegQueryInfoKeyW.Call(
		uintptr(h),
		0, // class
		0, // cchClass
		0, // reserved
		uintptr(unsafe.Pointer(&info.SubkeyCount)),
		uintptr(unsafe.Pointer(&info.MaxSubkeyNameLen)),
		0, // maxClassLen
		uintptr(unsafe.Pointer(&info.ValueCount)),
		uintptr(unsafe.Pointer(&info.MaxValueNameLen)),
		uintptr(unsafe.Pointer(&info.MaxValueLen)),
		0, // security descriptor size
		0, // last write time
	)
	if r != 0 {
		return store.KeyInfo{}, store.Status(r)
	}
	return info, store.StatusOK
}

// EnumSubkey wraps RegEnumKeyExW. name must have room for the terminator.
func (s *Store) EnumSubkey(h store.Handle, index uint32, name []uint16) (uint32, store.Status) {
	var namePtr *uint16
	if len(name) > 0 {
		namePtr = &name[0]
	}
	nameLen := uint32(len(name))
	r, _, _ := procRegEnumKeyExW.Call(
		uintptr(h),
		uintptr(index),
		uintptr(unsafe.Pointer(namePtr)),
		uintptr(unsafe.Pointer(&nameLen)),
		0, // reserved
		0, // class
		0, // cchClass
		0, // last write time
	)
	if r != 0 {
		return nameLen, store.Status(r)
	}
	return nameLen, store.StatusOK
}

// EnumValue wraps RegEnumValueW. A nil data buffer requests the size only,
// which the OS reports with a success status.
func (s *Store) EnumValue(h store.Handle, index uint32, name []uint16, data []byte) (uint32, types.RegType, uint32, store.Status) {
	var namePtr *uint16
	if len(name) > 0 {
		namePtr = &name[0]
	}
	nameLen := uint32(len(name))

	var (
		typ     uint32
		dataPtr *byte
		dataLen = uint32(len(data))
	)
	if len(data) > 0 {
		dataPtr = &data[0]
	}

	r, _, _ := procRegEnumValueW.Call(
		uintptr(h),
		uintptr(index),
		uintptr(unsafe.Pointer(namePtr)),
		uintptr(unsafe.Pointer(&nameLen)),
		0, // reserved
		uintptr(unsafe.Pointer(&typ)),
		uintptr(unsafe.Pointer(dataPtr)),
		uintptr(unsafe.Pointer(&dataLen)),
	)
	if r != 0 {
		return nameLen, types.RegType(typ), dataLen, store.Status(r)
	}
	return nameLen, types.RegType(typ), dataLen, store.StatusOK
}

// DeleteValue wraps RegDeleteValueW.
func (s *Store) DeleteValue(h store.Handle, name string) store.Status {
	namePtr, st := utf16Arg(name)
	if !st.Ok() {
		return st
	}
	r, _, _ := procRegDeleteValueW.Call(uintptr(h), uintptr(unsafe.Pointer(namePtr)))
	return store.Status(r)
}

// DeleteKey wraps RegDeleteKeyExW. access carries the WOW64 view bits.
func (s *Store) DeleteKey(h store.Handle, subpath string, access types.Access) store.Status {
	sub, st := utf16Arg(subpath)
	if !st.Ok() {
		return st
	}
	r, _, _ := procRegDeleteKeyExW.Call(
		uintptr(h),
		uintptr(unsafe.Pointer(sub)),
		uintptr(access),
		0, // reserved
	)
	return store.Status(r)
}

// DeleteTree wraps RegDeleteTreeW. An empty subpath becomes a NULL subkey
// pointer, which deletes the key's contents but keeps the key.
func (s *Store) DeleteTree(h store.Handle, subpath string) store.Status {
	var sub *uint16
	if subpath != "" {
		var st store.Status
		if sub, st = utf16Arg(subpath); !st.Ok() {
			return st
		}
	}
	r, _, _ := procRegDeleteTreeW.Call(uintptr(h), uintptr(unsafe.Pointer(sub)))
	return store.Status(r)
}
