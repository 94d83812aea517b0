package readinglist

import (
	"errors"
	"fmt"

	"bookcatalog/internal/book"
)

const (
	StatusWishlist = "WISHLIST"
	StatusReading  = "READING"
	StatusFinished = "FINISHED"
)

// ErrNotFinished is wrapped by the error returned when an unfinished book is
// added to a reader's shelf.
var ErrNotFinished = errors.New("book is not finished")

func ValidateStatus(status string) error {
	switch status {
	case StatusWishlist, StatusReading, StatusFinished:
		return nil
	default:
		return book.NewValidationError("status", status, fmt.Sprintf("invalid status: %s", status))
	}
}

// Progress tracks how many pages of a paper edition have been read.
type Progress struct {
	edition *book.PaperEdition
	read    int
}

func NewProgress(edition *book.PaperEdition, alreadyRead int) (*Progress, error) {
	if edition == nil {
		return nil, book.NewValidationError("edition", nil, "edition is required")
	}
	p := &Progress{edition: edition}
	if err := p.Increment(alreadyRead); err != nil {
		return nil, err
	}
	return p, nil
}

func (p *Progress) Edition() *book.PaperEdition { return p.edition }
func (p *Progress) Read() int                   { return p.read }

// Remaining never goes below zero, even if the edition's page count was
// lowered after pages were read.
func (p *Progress) Remaining() int {
	return max(p.edition.PageCount()-p.read, 0)
}

func (p *Progress) Finished() bool {
	return p.read >= p.edition.PageCount()
}

func (p *Progress) Status() string {
	switch {
	case p.Finished():
		return StatusFinished
	case p.read > 0:
		return StatusReading
	default:
		return StatusWishlist
	}
}

// Increment records additional pages read. Negative counts and totals past
// the last page are rejected and the progress is left as it was.
func (p *Progress) Increment(pages int) error {
	if pages < 0 {
		return book.NewValidationError("pages", pages, "pages read must not be negative")
	}
	if pages > p.edition.PageCount()-p.read {
		return book.NewValidationError("pages", pages,
			fmt.Sprintf("pages read cannot exceed the %d pages of '%s'", p.edition.PageCount(), p.edition.Title()))
	}
	p.read += pages
	return nil
}
