// Package winstore binds the store contract to the live Windows registry
// through advapi32. Handles are HKEYs and status codes are the raw LSTATUS
// values, so nothing is translated on the way through; the registry layer's
// error mapping applies unchanged.
//
// The implementation is Windows-only. On other platforms the package
// compiles to just this documentation; use pebblestore there.
package winstore
