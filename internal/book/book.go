// Package book holds the catalog entities: a base Book and its paper, audio
// and digital editions. Every constructor validates its input and returns no
// value on failure.
package book

import (
	"fmt"
	"strconv"
)

// Kind tags the concrete variant of an Item.
type Kind string

const (
	KindBook    Kind = "book"
	KindPaper   Kind = "paper"
	KindAudio   Kind = "audio"
	KindDigital Kind = "digital"
)

// ParseKind maps a kind label to its Kind. An empty label is a plain book.
func ParseKind(s string) (Kind, error) {
	switch Kind(s) {
	case "", KindBook:
		return KindBook, nil
	case KindPaper, KindAudio, KindDigital:
		return Kind(s), nil
	default:
		return "", NewValidationError("kind", s, fmt.Sprintf("unknown kind %q", s))
	}
}

// Item is the capability set shared by every catalog entity.
type Item interface {
	Kind() Kind
	Title() string
	Author() string
	Year() int
	Genre() string
	// Age returns currentYear minus the publication year.
	Age(currentYear int) int
	// Describe returns a prose description. Variants append to the base text.
	Describe() string
	// String renders the item for display.
	String() string
	// GoString renders the item with its variant name and every field.
	GoString() string
}

// Attrs are the fields shared by every variant.
type Attrs struct {
	Title  string `json:"title" validate:"notblank"`
	Author string `json:"author" validate:"notblank"`
	Year   int    `json:"year"`
	Genre  string `json:"genre" validate:"notblank"`
}

// Book is the base entity. Its fields cannot change after construction.
type Book struct {
	title  string
	author string
	year   int
	genre  string
}

var (
	_ Item = (*Book)(nil)
	_ Item = (*PaperEdition)(nil)
	_ Item = (*AudioEdition)(nil)
	_ Item = (*DigitalEdition)(nil)
)

// New validates a and returns a plain book.
func New(a Attrs) (*Book, error) {
	if err := validateStruct(a); err != nil {
		return nil, err
	}
	b := newBook(a)
	return &b, nil
}

func newBook(a Attrs) Book {
	return Book{
		title:  a.Title,
		author: a.Author,
		year:   a.Year,
		genre:  a.Genre,
	}
}

func (b *Book) Kind() Kind     { return KindBook }
func (b *Book) Title() string  { return b.title }
func (b *Book) Author() string { return b.author }
func (b *Book) Year() int      { return b.year }
func (b *Book) Genre() string  { return b.genre }

func (b *Book) Age(currentYear int) int {
	return currentYear - b.year
}

func (b *Book) Describe() string {
	return fmt.Sprintf("%s is a %s book written by %s in %d.", b.title, b.genre, b.author, b.year)
}

func (b *Book) String() string {
	return fmt.Sprintf("'%s' by %s (%d), Genre: %s", b.title, b.author, b.year, b.genre)
}

func (b *Book) GoString() string {
	return "Book(" + b.fields() + ")"
}

// fields renders the shared fields in the order every GoString uses.
func (b *Book) fields() string {
	return fmt.Sprintf("title=%q, author=%q, year=%d, genre=%q", b.title, b.author, b.year, b.genre)
}

func formatFloat(f float64) string {
	return strconv.FormatFloat(f, 'f', -1, 64)
}
