package book

import "fmt"

// PaperAttrs is the construction input of a PaperEdition.
type PaperAttrs struct {
	Attrs
	Pages     int    `json:"pages" validate:"gt=0"`
	CoverType string `json:"cover_type"`
	Signed    bool   `json:"is_signed"`
}

// PaperEdition is a printed book. Its page count is the only mutable field.
// It is not safe for concurrent mutation.
type PaperEdition struct {
	Book
	pages     int
	coverType string
	signed    bool
}

// NewPaperEdition validates a and returns a printed book.
func NewPaperEdition(a PaperAttrs) (*PaperEdition, error) {
	if err := validateStruct(a); err != nil {
		return nil, err
	}
	return &PaperEdition{
		Book:      newBook(a.Attrs),
		pages:     a.Pages,
		coverType: a.CoverType,
		signed:    a.Signed,
	}, nil
}

func (p *PaperEdition) Kind() Kind        { return KindPaper }
func (p *PaperEdition) PageCount() int    { return p.pages }
func (p *PaperEdition) CoverType() string { return p.coverType }
func (p *PaperEdition) Signed() bool      { return p.signed }

// SetPageCount replaces the page count. Non-positive values are rejected and
// the current count is kept.
func (p *PaperEdition) SetPageCount(n int) error {
	if err := validateVar("pages", n, "gt=0"); err != nil {
		return err
	}
	p.pages = n
	return nil
}

// OpenPage reports whether page n exists. An out-of-range page is an
// expected outcome, so it comes back as ok=false with a message, not an error.
func (p *PaperEdition) OpenPage(n int) (string, bool) {
	if n >= 1 && n <= p.pages {
		return fmt.Sprintf("Opening page %d of '%s'", n, p.title), true
	}
	return fmt.Sprintf("Error: '%s' has only %d pages.", p.title, p.pages), false
}

func (p *PaperEdition) Describe() string {
	signed := "unsigned"
	if p.signed {
		signed = "signed by the author"
	}
	return fmt.Sprintf("%s It is a paper book of %d pages in %s cover, %s.",
		p.Book.Describe(), p.pages, p.coverType, signed)
}

func (p *PaperEdition) String() string {
	signed := "Not Signed"
	if p.signed {
		signed = "Signed"
	}
	return fmt.Sprintf("%s [Paper Book: %d pages, %s cover, %s]", p.Book.String(), p.pages, p.coverType, signed)
}

func (p *PaperEdition) GoString() string {
	return fmt.Sprintf("PaperEdition(%s, pages=%d, cover_type=%q, is_signed=%t)",
		p.fields(), p.pages, p.coverType, p.signed)
}
