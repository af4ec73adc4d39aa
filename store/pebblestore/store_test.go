package pebblestore

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/iamgweej/seagull/internal/wstr"
	"github.com/iamgweej/seagull/pkg/types"
	"github.com/iamgweej/seagull/store"
)

func openTestStore(t *testing.T) (*Store, store.Handle) {
	t.Helper()
	s, root, err := OpenMem()
	require.NoError(t, err)
	t.Cleanup(func() { require.NoError(t, s.CloseStore()) })
	return s, root
}

func TestCreateKey_Disposition(t *testing.T) {
	s, root := openTestStore(t)

	h, disp, st := s.CreateKey(root, `Software\App`, types.KEY_ALL_ACCESS, types.OptionNonVolatile, nil)
	require.True(t, st.Ok())
	require.Equal(t, types.CreatedNewKey, disp)
	require.True(t, s.Close(h).Ok())

	h, disp, st = s.CreateKey(root, `Software\App`, types.KEY_ALL_ACCESS, types.OptionNonVolatile, nil)
	require.True(t, st.Ok())
	require.Equal(t, types.OpenedExistingKey, disp)
	require.True(t, s.Close(h).Ok())

	// Intermediate keys are created on the way down.
	h, st = s.OpenKey(root, `Software`, types.KEY_READ)
	require.True(t, st.Ok())
	require.True(t, s.Close(h).Ok())
}

func TestOpenKey_NotFound(t *testing.T) {
	s, root := openTestStore(t)

	_, st := s.OpenKey(root, `Missing`, types.KEY_READ)
	require.Equal(t, store.StatusNotFound, st)
}

func TestOpenKey_CaseInsensitive(t *testing.T) {
	s, root := openTestStore(t)

	h, _, st := s.CreateKey(root, `Software\MyApp`, types.KEY_ALL_ACCESS, types.OptionNonVolatile, nil)
	require.True(t, st.Ok())
	require.True(t, s.Close(h).Ok())

	h, st = s.OpenKey(root, `SOFTWARE\myapp`, types.KEY_READ)
	require.True(t, st.Ok())
	require.True(t, s.Close(h).Ok())

	// Display case is the creation case.
	name := make([]uint16, 32)
	sw, st := s.OpenKey(root, `software`, types.KEY_READ)
	require.True(t, st.Ok())
	defer s.Close(sw)
	n, st := s.EnumSubkey(sw, 0, name)
	require.True(t, st.Ok())
	require.Equal(t, "MyApp", wstr.DecodeUnits(name[:n]))
}

func TestHandles_Invalid(t *testing.T) {
	s, root := openTestStore(t)

	h, _, st := s.CreateKey(root, `K`, types.KEY_ALL_ACCESS, types.OptionNonVolatile, nil)
	require.True(t, st.Ok())
	require.True(t, s.Close(h).Ok())

	// Closed handle is invalid for every operation.
	require.Equal(t, store.StatusInvalidHandle, s.Close(h))
	require.Equal(t, store.StatusInvalidHandle, s.SetValue(h, "x", types.REG_SZ, nil))
	_, st = s.QueryInfo(h)
	require.Equal(t, store.StatusInvalidHandle, st)
	require.Equal(t, store.StatusInvalidHandle, s.DeleteValue(h, "x"))

	_, st = s.OpenKey(store.InvalidHandle, `K`, types.KEY_READ)
	require.Equal(t, store.StatusInvalidHandle, st)
}

func TestAccess_Enforced(t *testing.T) {
	s, root := openTestStore(t)

	h, _, st := s.CreateKey(root, `K`, types.KEY_ALL_ACCESS, types.OptionNonVolatile, nil)
	require.True(t, st.Ok())
	require.True(t, s.SetValue(h, "n", types.REG_DWORD, []byte{42, 0, 0, 0}).Ok())
	require.True(t, s.Close(h).Ok())

	ro, st := s.OpenKey(root, `K`, types.KEY_READ)
	require.True(t, st.Ok())
	defer s.Close(ro)

	require.Equal(t, store.StatusAccessDenied, s.SetValue(ro, "n", types.REG_DWORD, []byte{1, 0, 0, 0}))
	require.Equal(t, store.StatusAccessDenied, s.DeleteValue(ro, "n"))
	require.Equal(t, store.StatusAccessDenied, s.DeleteKey(ro, `sub`, 0))

	_, _, st = s.CreateKey(ro, `sub`, types.KEY_READ, types.OptionNonVolatile, nil)
	require.Equal(t, store.StatusAccessDenied, st)

	wo, st := s.OpenKey(root, `K`, types.KEY_SET_VALUE)
	require.True(t, st.Ok())
	defer s.Close(wo)

	_, st = s.QueryInfo(wo)
	require.Equal(t, store.StatusAccessDenied, st)
	_, st = s.EnumSubkey(wo, 0, make([]uint16, 4))
	require.Equal(t, store.StatusAccessDenied, st)
}

func TestQueryInfo_And_Enum(t *testing.T) {
	s, root := openTestStore(t)

	h, _, st := s.CreateKey(root, `K`, types.KEY_ALL_ACCESS, types.OptionNonVolatile, nil)
	require.True(t, st.Ok())
	defer s.Close(h)

	for _, sub := range []string{"alpha", "bb", "c"} {
		ch, _, st := s.CreateKey(h, sub, types.KEY_READ, types.OptionNonVolatile, nil)
		require.True(t, st.Ok())
		require.True(t, s.Close(ch).Ok())
	}
	require.True(t, s.SetValue(h, "name", types.REG_SZ, []byte{'h', 0, 'i', 0, 0, 0}).Ok())
	require.True(t, s.SetValue(h, "n", types.REG_DWORD, []byte{42, 0, 0, 0}).Ok())

	info, st := s.QueryInfo(h)
	require.True(t, st.Ok())
	require.Equal(t, uint32(3), info.SubkeyCount)
	require.Equal(t, uint32(5), info.MaxSubkeyNameLen) // "alpha"
	require.Equal(t, uint32(2), info.ValueCount)
	require.Equal(t, uint32(4), info.MaxValueNameLen) // "name"
	require.Equal(t, uint32(6), info.MaxValueLen)     // "hi\0" in UTF-16LE

	// Sweep subkeys.
	buf := make([]uint16, info.MaxSubkeyNameLen+1)
	var names []string
	for i := uint32(0); i < info.SubkeyCount; i++ {
		n, st := s.EnumSubkey(h, i, buf)
		require.True(t, st.Ok())
		names = append(names, wstr.DecodeUnits(buf[:n]))
	}
	require.Equal(t, []string{"alpha", "bb", "c"}, names)

	_, st = s.EnumSubkey(h, info.SubkeyCount, buf)
	require.Equal(t, store.StatusNoMoreItems, st)

	// Sweep values.
	nameBuf := make([]uint16, info.MaxValueNameLen+1)
	dataBuf := make([]byte, info.MaxValueLen)
	seen := map[string]types.RegType{}
	for i := uint32(0); i < info.ValueCount; i++ {
		n, typ, dl, st := s.EnumValue(h, i, nameBuf, dataBuf)
		require.True(t, st.Ok())
		require.LessOrEqual(t, dl, info.MaxValueLen)
		seen[wstr.DecodeUnits(nameBuf[:n])] = typ
	}
	require.Equal(t, map[string]types.RegType{"name": types.REG_SZ, "n": types.REG_DWORD}, seen)

	_, _, _, st = s.EnumValue(h, info.ValueCount, nameBuf, dataBuf)
	require.Equal(t, store.StatusNoMoreItems, st)
}

func TestEnum_BufferTooSmall(t *testing.T) {
	s, root := openTestStore(t)

	h, _, st := s.CreateKey(root, `K`, types.KEY_ALL_ACCESS, types.OptionNonVolatile, nil)
	require.True(t, st.Ok())
	defer s.Close(h)

	ch, _, st := s.CreateKey(h, "longname", types.KEY_READ, types.OptionNonVolatile, nil)
	require.True(t, st.Ok())
	require.True(t, s.Close(ch).Ok())
	require.True(t, s.SetValue(h, "v", types.REG_BINARY, []byte{1, 2, 3, 4}).Ok())

	n, st := s.EnumSubkey(h, 0, make([]uint16, 2))
	require.Equal(t, store.StatusMoreData, st)
	require.Equal(t, uint32(8), n)

	// Nil data buffer: name, type, and size only.
	nameBuf := make([]uint16, 8)
	nl, typ, dl, st := s.EnumValue(h, 0, nameBuf, nil)
	require.True(t, st.Ok())
	require.Equal(t, "v", wstr.DecodeUnits(nameBuf[:nl]))
	require.Equal(t, types.REG_BINARY, typ)
	require.Equal(t, uint32(4), dl)

	// Undersized data buffer reports the needed length.
	_, _, dl, st = s.EnumValue(h, 0, nameBuf, make([]byte, 2))
	require.Equal(t, store.StatusMoreData, st)
	require.Equal(t, uint32(4), dl)
}

func TestDeleteValue(t *testing.T) {
	s, root := openTestStore(t)

	h, _, st := s.CreateKey(root, `K`, types.KEY_ALL_ACCESS, types.OptionNonVolatile, nil)
	require.True(t, st.Ok())
	defer s.Close(h)

	require.Equal(t, store.StatusNotFound, s.DeleteValue(h, "absent"))

	require.True(t, s.SetValue(h, "v", types.REG_DWORD, []byte{1, 0, 0, 0}).Ok())
	require.True(t, s.DeleteValue(h, "v").Ok())
	require.Equal(t, store.StatusNotFound, s.DeleteValue(h, "v"))
}

func TestDeleteKey_RefusesChildren(t *testing.T) {
	s, root := openTestStore(t)

	h, _, st := s.CreateKey(root, `A\B`, types.KEY_ALL_ACCESS, types.OptionNonVolatile, nil)
	require.True(t, st.Ok())
	require.True(t, s.Close(h).Ok())

	require.Equal(t, store.StatusAccessDenied, s.DeleteKey(root, `A`, 0))
	require.True(t, s.DeleteKey(root, `A\B`, 0).Ok())
	require.True(t, s.DeleteKey(root, `A`, 0).Ok())
	require.Equal(t, store.StatusNotFound, s.DeleteKey(root, `A`, 0))
}

func TestDeleteTree(t *testing.T) {
	s, root := openTestStore(t)

	h, _, st := s.CreateKey(root, `A\B\C`, types.KEY_ALL_ACCESS, types.OptionNonVolatile, nil)
	require.True(t, st.Ok())
	require.True(t, s.SetValue(h, "v", types.REG_DWORD, []byte{1, 0, 0, 0}).Ok())
	require.True(t, s.Close(h).Ok())

	require.True(t, s.DeleteTree(root, `A`).Ok())

	_, st = s.OpenKey(root, `A`, types.KEY_READ)
	require.Equal(t, store.StatusNotFound, st)

	require.Equal(t, store.StatusNotFound, s.DeleteTree(root, `A`))
}

func TestDeleteTree_EmptySubpathKeepsKey(t *testing.T) {
	s, root := openTestStore(t)

	h, _, st := s.CreateKey(root, `A`, types.KEY_ALL_ACCESS, types.OptionNonVolatile, nil)
	require.True(t, st.Ok())
	defer s.Close(h)

	ch, _, st := s.CreateKey(h, `B`, types.KEY_READ, types.OptionNonVolatile, nil)
	require.True(t, st.Ok())
	require.True(t, s.Close(ch).Ok())
	require.True(t, s.SetValue(h, "v", types.REG_DWORD, []byte{1, 0, 0, 0}).Ok())

	require.True(t, s.DeleteTree(h, "").Ok())

	info, st := s.QueryInfo(h)
	require.True(t, st.Ok())
	require.Zero(t, info.SubkeyCount)
	require.Zero(t, info.ValueCount)

	// The key itself survives.
	again, st := s.OpenKey(root, `A`, types.KEY_READ)
	require.True(t, st.Ok())
	require.True(t, s.Close(again).Ok())
}

func TestInvalidSubpath(t *testing.T) {
	s, root := openTestStore(t)

	for _, bad := range []string{`\leading`, `trailing\`, `a\\b`} {
		_, st := s.OpenKey(root, bad, types.KEY_READ)
		require.Equal(t, store.Status(statusInvalidParameter), st, "subpath %q", bad)
	}
}
