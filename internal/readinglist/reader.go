package readinglist

import (
	"slices"
	"strings"

	"bookcatalog/internal/book"
)

// Reader keeps the shelf of books a person has read to the end.
type Reader struct {
	name     string
	finished []book.Item
}

func NewReader(name string) (*Reader, error) {
	if strings.TrimSpace(name) == "" {
		return nil, book.NewValidationError("name", name, "name must not be blank")
	}
	return &Reader{name: name, finished: make([]book.Item, 0)}, nil
}

func (r *Reader) Name() string { return r.name }

// AddFinished shelves the edition tracked by p. Only finished books qualify.
func (r *Reader) AddFinished(p *Progress) error {
	if p == nil {
		return book.NewValidationError("progress", nil, "progress is required")
	}
	if !p.Finished() {
		return &book.ValidationError{
			Field:   "progress",
			Value:   p.Read(),
			Message: "cannot shelve '" + p.Edition().Title() + "' before it is finished",
			Err:     ErrNotFinished,
		}
	}
	r.finished = append(r.finished, p.Edition())
	return nil
}

// Finished returns the shelved books in the order they were added.
func (r *Reader) Finished() []book.Item {
	return slices.Clone(r.finished)
}
