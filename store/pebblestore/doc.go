// Package pebblestore is a portable binding of the store contract backed by
// cockroachdb/pebble. It gives the registry layer a persistent hierarchical
// store on any platform: a directory for real use, an in-memory filesystem
// for tests.
//
// Layout: node records live under the 'n' prefix, value records under 'v'.
// Paths are encoded as NUL-separated, case-folded segments so that prefix
// iteration yields exactly one key's children or values. Records carry the
// display-case names; matching is case-insensitive and case-preserving,
// like the OS store this contract abstracts.
//
// Handles are entries in an in-process table guarded by an RWMutex. Access
// rights requested at open/create time are enforced per operation: reads
// need KEY_QUERY_VALUE / KEY_ENUMERATE_SUB_KEYS, value writes KEY_SET_VALUE,
// subkey create/delete KEY_CREATE_SUB_KEY.
//
// The volatile key option and security descriptors are accepted and
// ignored: Pebble has no session lifetime to scope a volatile key to, and
// no principal model to check a descriptor against.
package pebblestore
