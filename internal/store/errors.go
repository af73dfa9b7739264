package store

import "errors"

var (
	// ErrStoreUnavailable indicates the backing medium could not be read
	// or decoded. The store recovers by serving in-memory defaults; the
	// host process never dies on this.
	ErrStoreUnavailable = errors.New("persisted document unavailable")

	// ErrRootWrite is returned by Set for the root path. The document
	// root is replaced only through seeding, never through a write
	// request.
	ErrRootWrite = errors.New("cannot write document root")
)
