package pebblestore

import (
	"encoding/binary"
	"strings"

	"github.com/iamgweej/seagull/pkg/types"
)

// Keyspace layout. A key path ["A","B"] folds to the encoded form
// \x00A\x00B appended to the prefix byte:
//
//	n\x00A\x00B            node record for A\B (payload: display segment name)
//	v\x00A\x00B\x01NAME    value record NAME on A\B (payload: type+name+data)
//
// The 0x00 segment separator sorts below the 0x01 value separator, so the
// range [p+0x01, p+0x02) under 'v' holds exactly one node's values and the
// range [p+0x00, p+0x01) under 'n' holds its whole descendant subtree.
const (
	nodePrefix  = 'n'
	valuePrefix = 'v'

	segSep  = 0x00
	nameSep = 0x01
)

// statusInvalidParameter covers malformed subpaths, mirroring
// ERROR_INVALID_PARAMETER.
const statusInvalidParameter = 87

// statusInternal covers engine-level failures, mirroring ERROR_GEN_FAILURE.
const statusInternal = 31

// fold normalizes a name for matching. Case-insensitive, case-preserving:
// folded forms key the records, display forms live in the payloads.
func fold(s string) string { return strings.ToUpper(s) }

// parseSubpath splits a backslash-separated subpath into segments. An empty
// subpath is valid and means "this key". Empty segments (leading, trailing,
// or doubled backslashes) are rejected.
func parseSubpath(subpath string) ([]string, bool) {
	if subpath == "" {
		return nil, true
	}
	segs := strings.Split(subpath, `\`)
	for _, seg := range segs {
		if seg == "" {
			return nil, false
		}
	}
	return segs, true
}

// extendPath appends folded segments to an encoded path.
func extendPath(enc []byte, segs []string) []byte {
	out := make([]byte, len(enc), len(enc)+16*len(segs))
	copy(out, enc)
	for _, seg := range segs {
		out = append(out, segSep)
		out = append(out, fold(seg)...)
	}
	return out
}

// nodeKey returns the record key for the node at enc.
func nodeKey(enc []byte) []byte {
	k := make([]byte, 0, 1+len(enc))
	k = append(k, nodePrefix)
	return append(k, enc...)
}

// valueKey returns the record key for the named value on the node at enc.
func valueKey(enc []byte, name string) []byte {
	k := make([]byte, 0, 2+len(enc)+len(name))
	k = append(k, valuePrefix)
	k = append(k, enc...)
	k = append(k, nameSep)
	return append(k, fold(name)...)
}

// keyRange returns [lo, hi) bounds: the encoded prefix extended by sep and
// by sep+1.
func keyRange(prefix byte, enc []byte, sep byte) (lo, hi []byte) {
	lo = make([]byte, 0, 2+len(enc))
	lo = append(lo, prefix)
	lo = append(lo, enc...)
	hi = append(append([]byte(nil), lo...), sep+1)
	lo = append(lo, sep)
	return lo, hi
}

// childRange bounds the direct-and-descendant node records below enc.
func childRange(enc []byte) (lo, hi []byte) {
	return keyRange(nodePrefix, enc, segSep)
}

// ownValueRange bounds the value records attached to enc itself.
func ownValueRange(enc []byte) (lo, hi []byte) {
	return keyRange(valuePrefix, enc, nameSep)
}

// treeValueRange bounds the value records of enc and of every descendant.
func treeValueRange(enc []byte) (lo, hi []byte) {
	lo, _ = keyRange(valuePrefix, enc, segSep)
	_, hi = keyRange(valuePrefix, enc, nameSep)
	return lo, hi
}

// Value records: 4-byte type tag, 4-byte display-name length, display name,
// payload bytes. Little-endian, matching the wire forms the layer encodes.

func encodeValueRecord(name string, typ types.RegType, data []byte) []byte {
	rec := make([]byte, 8+len(name)+len(data))
	binary.LittleEndian.PutUint32(rec[0:4], uint32(typ))
	binary.LittleEndian.PutUint32(rec[4:8], uint32(len(name)))
	copy(rec[8:], name)
	copy(rec[8+len(name):], data)
	return rec
}

func decodeValueRecord(rec []byte) (name string, typ types.RegType, data []byte, ok bool) {
	if len(rec) < 8 {
		return "", 0, nil, false
	}
	typ = types.RegType(binary.LittleEndian.Uint32(rec[0:4]))
	nameLen := int(binary.LittleEndian.Uint32(rec[4:8]))
	if len(rec) < 8+nameLen {
		return "", 0, nil, false
	}
	name = string(rec[8 : 8+nameLen])
	data = rec[8+nameLen:]
	return name, typ, data, true
}
