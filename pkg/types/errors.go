package types

import (
	"errors"
	"fmt"
)

// ErrStorage is the sentinel matched by errors.Is for any StorageError.
var ErrStorage = errors.New("storage error")

// StorageError describes a failed read or write of the backing store.
// Read failures are downgraded by the store to an empty collection and
// never reach the operator; write failures surface only as a printed
// diagnostic naming the backing file.
// It satisfies errors.Is(err, ErrStorage).
type StorageError struct {
	Op   string // "read" or "write"
	Path string // backing file location
	Err  error
}

func (e *StorageError) Error() string {
	return fmt.Sprintf("%s %s: %v", e.Op, e.Path, e.Err)
}

func (e *StorageError) Unwrap() error { return e.Err }

func (e *StorageError) Is(target error) bool {
	return target == ErrStorage
}
