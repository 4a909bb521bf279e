package types

import "errors"

// Storage and serialization errors.
var (
	// ErrWriteFailed marks a failed write to a properties file or the
	// cache store. Callers get the underlying cause wrapped around it;
	// no automatic retry happens at this layer.
	ErrWriteFailed = errors.New("write failed")

	// ErrReadFailed marks a read failure other than a missing file.
	// Missing files are never an error; they read as empty.
	ErrReadFailed = errors.New("read failed")
)
