// Package store persists envelope buffers in a bbolt database.
//
// Database structure uses two buckets:
//   - index: name, size, algorithm, codec and header flag of each envelope
//   - blobs: the envelope buffers, byte-for-byte as exported
//
// The index bucket lets the CLI list a vault without reading any payload or
// asking for a password.
package store
