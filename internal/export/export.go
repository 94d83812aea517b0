// Package export writes catalog entries out as csv, json or yaml.
package export

import (
	"encoding/csv"
	"fmt"
	"io"
	"strconv"

	"github.com/goccy/go-yaml"

	"bookcatalog/internal/book"
	"bookcatalog/internal/catalog"
	"bookcatalog/internal/codec"
)

// Record is the flat view of one catalog entry. Fields a kind does not have
// stay empty and are omitted from json and yaml output.
type Record struct {
	ID              int     `json:"id" yaml:"id"`
	Kind            string  `json:"kind" yaml:"kind"`
	Title           string  `json:"title" yaml:"title"`
	Author          string  `json:"author" yaml:"author"`
	Year            int     `json:"year" yaml:"year"`
	Genre           string  `json:"genre" yaml:"genre"`
	Pages           int     `json:"pages,omitempty" yaml:"pages,omitempty"`
	CoverType       string  `json:"cover_type,omitempty" yaml:"cover_type,omitempty"`
	Signed          bool    `json:"is_signed,omitempty" yaml:"is_signed,omitempty"`
	DurationMinutes float64 `json:"duration_minutes,omitempty" yaml:"duration_minutes,omitempty"`
	FileFormat      string  `json:"file_format,omitempty" yaml:"file_format,omitempty"`
	FileSizeMB      float64 `json:"file_size_mb,omitempty" yaml:"file_size_mb,omitempty"`
	DRMProtected    bool    `json:"drm_protected,omitempty" yaml:"drm_protected,omitempty"`
}

var header = []string{
	"id", "kind", "title", "author", "year", "genre",
	"pages", "cover_type", "is_signed",
	"duration_minutes",
	"file_format", "file_size_mb", "drm_protected",
}

func RecordOf(e catalog.Entry) Record {
	item := e.Item
	r := Record{
		ID:     e.ID,
		Kind:   string(item.Kind()),
		Title:  item.Title(),
		Author: item.Author(),
		Year:   item.Year(),
		Genre:  item.Genre(),
	}

	switch v := item.(type) {
	case *book.PaperEdition:
		r.Pages = v.PageCount()
		r.CoverType = v.CoverType()
		r.Signed = v.Signed()
	case *book.AudioEdition:
		r.DurationMinutes = v.DurationMinutes()
	case *book.DigitalEdition:
		r.FileFormat = v.FileFormat()
		r.FileSizeMB = v.FileSizeMB()
		r.DRMProtected = v.DRMProtected()
	}
	return r
}

// Records returns one record per entry of c, in insertion order.
func Records(c *catalog.Catalog) []Record {
	records := make([]Record, 0, c.Len())
	for id, item := range c.All() {
		records = append(records, RecordOf(catalog.Entry{ID: id, Item: item}))
	}
	return records
}

// Write encodes records to w in the given format.
func Write(w io.Writer, format codec.Format, records []Record) error {
	if records == nil {
		records = []Record{}
	}

	switch format {
	case codec.FormatJSON:
		data, err := codec.JSON.MarshalIndent(records, "", "  ")
		if err != nil {
			return fmt.Errorf("encode json: %w", err)
		}
		_, err = w.Write(append(data, '\n'))
		return err
	case codec.FormatYAML:
		data, err := yaml.Marshal(records)
		if err != nil {
			return fmt.Errorf("encode yaml: %w", err)
		}
		_, err = w.Write(data)
		return err
	case codec.FormatCSV:
		return writeCSV(w, records)
	default:
		return fmt.Errorf("%w: %q", codec.ErrUnknownFormat, format)
	}
}

func writeCSV(w io.Writer, records []Record) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(header); err != nil {
		return fmt.Errorf("write csv header: %w", err)
	}
	for _, r := range records {
		if err := cw.Write(r.csvRow()); err != nil {
			return fmt.Errorf("write csv record %d: %w", r.ID, err)
		}
	}
	cw.Flush()
	return cw.Error()
}

// csvRow leaves the columns of other kinds blank.
func (r Record) csvRow() []string {
	row := []string{
		strconv.Itoa(r.ID), r.Kind, r.Title, r.Author, strconv.Itoa(r.Year), r.Genre,
		"", "", "", "", "", "", "",
	}

	switch book.Kind(r.Kind) {
	case book.KindPaper:
		row[6] = strconv.Itoa(r.Pages)
		row[7] = r.CoverType
		row[8] = strconv.FormatBool(r.Signed)
	case book.KindAudio:
		row[9] = strconv.FormatFloat(r.DurationMinutes, 'f', -1, 64)
	case book.KindDigital:
		row[10] = r.FileFormat
		row[11] = strconv.FormatFloat(r.FileSizeMB, 'f', -1, 64)
		row[12] = strconv.FormatBool(r.DRMProtected)
	}
	return row
}
