package catalog

import (
	"errors"
	"fmt"
)

var (
	// ErrNotFound is matched by every *NotFoundError.
	ErrNotFound = errors.New("catalog entry not found")

	// ErrAlreadyExists is returned when an item is inserted twice into the same catalog.
	ErrAlreadyExists = errors.New("item already in catalog")

	// ErrOwned is returned when an item is inserted while another catalog holds it.
	ErrOwned = errors.New("item belongs to another catalog")

	// ErrNilItem is returned when inserting a nil item.
	ErrNilItem = errors.New("item cannot be nil")

	// ErrInvalidName is returned when a catalog is created with a blank name.
	ErrInvalidName = errors.New("catalog name cannot be blank")
)

// NotFoundError reports a lookup by identifier that matched nothing.
// The catalog is unaffected.
type NotFoundError struct {
	Catalog string
	ID      int
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("catalog %q: entry with ID %d not found", e.Catalog, e.ID)
}

// Is implements errors.Is support
func (e *NotFoundError) Is(target error) bool {
	return target == ErrNotFound
}
