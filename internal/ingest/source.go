package ingest

import (
	"context"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/goccy/go-yaml"

	"bookcatalog/internal/codec"
)

// Row is one attribute mapping, keyed by lower-case column name.
type Row map[string]string

// Source supplies the rows of one import.
type Source interface {
	Name() string
	Rows(ctx context.Context) ([]Row, error)
}

// FileSource reads rows from a csv, json or yaml file chosen by extension.
type FileSource struct {
	Path string
}

func (s FileSource) Name() string { return s.Path }

func (s FileSource) Rows(ctx context.Context) ([]Row, error) {
	format, err := codec.FormatFromPath(s.Path)
	if err != nil {
		return nil, err
	}
	f, err := os.Open(s.Path)
	if err != nil {
		return nil, fmt.Errorf("open source: %w", err)
	}
	defer f.Close()

	return Decode(f, format)
}

// ReaderSource reads rows of a known format from r.
type ReaderSource struct {
	Label  string
	Format codec.Format
	R      io.Reader
}

func (s ReaderSource) Name() string { return s.Label }

func (s ReaderSource) Rows(ctx context.Context) ([]Row, error) {
	return Decode(s.R, s.Format)
}

// Decode parses rows from r. CSV input needs a header line; JSON and YAML
// input is a list of flat objects.
func Decode(r io.Reader, format codec.Format) ([]Row, error) {
	switch format {
	case codec.FormatCSV:
		return decodeCSV(r)
	case codec.FormatJSON:
		var docs []map[string]any
		dec := codec.JSON.NewDecoder(r)
		dec.UseNumber()
		if err := dec.Decode(&docs); err != nil {
			return nil, fmt.Errorf("decode json: %w", err)
		}
		return rowsFromDocs(docs)
	case codec.FormatYAML:
		data, err := io.ReadAll(r)
		if err != nil {
			return nil, fmt.Errorf("read yaml: %w", err)
		}
		var docs []map[string]any
		if err := yaml.Unmarshal(data, &docs); err != nil {
			return nil, fmt.Errorf("decode yaml: %w", err)
		}
		return rowsFromDocs(docs)
	default:
		return nil, fmt.Errorf("%w: %q", codec.ErrUnknownFormat, format)
	}
}

func decodeCSV(r io.Reader) ([]Row, error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = -1
	cr.TrimLeadingSpace = true

	header, err := cr.Read()
	if errors.Is(err, io.EOF) {
		return []Row{}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("read csv header: %w", err)
	}
	for i, h := range header {
		header[i] = normalizeKey(h)
	}

	rows := make([]Row, 0)
	for {
		record, err := cr.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("read csv: %w", err)
		}
		row := make(Row, len(header))
		for i, key := range header {
			if i < len(record) {
				row[key] = strings.TrimSpace(record[i])
			}
		}
		rows = append(rows, row)
	}
	return rows, nil
}

func rowsFromDocs(docs []map[string]any) ([]Row, error) {
	rows := make([]Row, 0, len(docs))
	for i, doc := range docs {
		row := make(Row, len(doc))
		for k, v := range doc {
			s, err := stringify(v)
			if err != nil {
				return nil, fmt.Errorf("row %d field %s: %w", i+1, k, err)
			}
			row[normalizeKey(k)] = s
		}
		rows = append(rows, row)
	}
	return rows, nil
}

func stringify(v any) (string, error) {
	switch v := v.(type) {
	case nil:
		return "", nil
	case string:
		return strings.TrimSpace(v), nil
	case map[string]any, []any:
		return "", fmt.Errorf("nested values are not supported")
	default:
		return fmt.Sprint(v), nil
	}
}

func normalizeKey(k string) string {
	k = strings.TrimPrefix(k, "\ufeff")
	k = strings.ToLower(strings.TrimSpace(k))
	return strings.ReplaceAll(k, " ", "_")
}
