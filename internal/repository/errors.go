package repository

import (
	"errors"
	"fmt"

	"gorm.io/gorm"
)

var (
	// ErrDuplicateName means a category or time period with that name
	// already exists.
	ErrDuplicateName = errors.New("name already exists")

	// ErrNotFound means no record matched the given id or name.
	ErrNotFound = errors.New("record not found")

	// ErrPersistence means the store failed to flush a change to disk.
	// The enclosing transaction was rolled back, so the on-disk graph
	// still matches what callers last read.
	ErrPersistence = errors.New("persistence failure")
)

// wrapWrite maps a gorm write error onto the store's error kinds.
func wrapWrite(op string, err error) error {
	switch {
	case err == nil:
		return nil
	case errors.Is(err, gorm.ErrDuplicatedKey):
		return fmt.Errorf("%s: %w", op, ErrDuplicateName)
	default:
		return fmt.Errorf("%s: %w: %v", op, ErrPersistence, err)
	}
}

// wrapRead maps a gorm read error onto the store's error kinds.
func wrapRead(op string, err error) error {
	switch {
	case err == nil:
		return nil
	case errors.Is(err, gorm.ErrRecordNotFound):
		return fmt.Errorf("%s: %w", op, ErrNotFound)
	default:
		return fmt.Errorf("%s: %w: %v", op, ErrPersistence, err)
	}
}
