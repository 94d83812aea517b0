package ingest

import (
	"fmt"
	"strconv"
	"strings"

	"bookcatalog/internal/book"
)

// aliases maps alternative column names onto the canonical ones.
var aliases = map[string]string{
	"name":             "title",
	"publication_year": "year",
	"page_count":       "pages",
	"cover":            "cover_type",
	"signed":           "is_signed",
	"duration":         "duration_minutes",
	"format":           "file_format",
	"file_size":        "file_size_mb",
	"drm":              "drm_protected",
}

func (r Row) get(key string) string {
	if v, ok := r[key]; ok {
		return v
	}
	for alias, canonical := range aliases {
		if canonical == key {
			if v, ok := r[alias]; ok {
				return v
			}
		}
	}
	return ""
}

func (r Row) intField(key string) (int, error) {
	raw := r.get(key)
	n, err := strconv.Atoi(raw)
	if err != nil {
		return 0, book.NewValidationError(key, raw, fmt.Sprintf("%s must be an integer", key))
	}
	return n, nil
}

func (r Row) floatField(key string) (float64, error) {
	raw := r.get(key)
	f, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return 0, book.NewValidationError(key, raw, fmt.Sprintf("%s must be a number", key))
	}
	return f, nil
}

// boolField treats a missing value as false.
func (r Row) boolField(key string) (bool, error) {
	raw := strings.ToLower(r.get(key))
	switch raw {
	case "", "no", "n":
		return false, nil
	case "yes", "y":
		return true, nil
	}
	b, err := strconv.ParseBool(raw)
	if err != nil {
		return false, book.NewValidationError(key, raw, fmt.Sprintf("%s must be true or false", key))
	}
	return b, nil
}

// Build turns a row into the item its kind column names. Parse failures are
// reported as *book.ValidationError, the same as failed field rules.
func Build(row Row) (book.Item, error) {
	kind, err := book.ParseKind(strings.ToLower(row.get("kind")))
	if err != nil {
		return nil, err
	}

	year, err := row.intField("year")
	if err != nil {
		return nil, err
	}
	attrs := book.Attrs{
		Title:  row.get("title"),
		Author: row.get("author"),
		Year:   year,
		Genre:  row.get("genre"),
	}

	switch kind {
	case book.KindPaper:
		return buildPaper(row, attrs)
	case book.KindAudio:
		return buildAudio(row, attrs)
	case book.KindDigital:
		return buildDigital(row, attrs)
	default:
		return asItem(book.New(attrs))
	}
}

func buildPaper(row Row, attrs book.Attrs) (book.Item, error) {
	pages, err := row.intField("pages")
	if err != nil {
		return nil, err
	}
	signed, err := row.boolField("is_signed")
	if err != nil {
		return nil, err
	}
	return asItem(book.NewPaperEdition(book.PaperAttrs{
		Attrs:     attrs,
		Pages:     pages,
		CoverType: row.get("cover_type"),
		Signed:    signed,
	}))
}

func buildAudio(row Row, attrs book.Attrs) (book.Item, error) {
	minutes, err := row.floatField("duration_minutes")
	if err != nil {
		return nil, err
	}
	return asItem(book.NewAudioEdition(book.AudioAttrs{Attrs: attrs, DurationMinutes: minutes}))
}

func buildDigital(row Row, attrs book.Attrs) (book.Item, error) {
	size, err := row.floatField("file_size_mb")
	if err != nil {
		return nil, err
	}
	drm, err := row.boolField("drm_protected")
	if err != nil {
		return nil, err
	}
	return asItem(book.NewDigitalEdition(book.DigitalAttrs{
		Attrs:        attrs,
		FileFormat:   row.get("file_format"),
		FileSizeMB:   size,
		DRMProtected: drm,
	}))
}

// asItem keeps a failed constructor from leaking a typed nil into the interface.
func asItem[T book.Item](v T, err error) (book.Item, error) {
	if err != nil {
		return nil, err
	}
	return v, nil
}
