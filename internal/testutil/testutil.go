package testutil

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"bookcatalog/internal/book"
)

// Nineteen84 is the e-book edition used across tests.
func Nineteen84(t testing.TB) *book.DigitalEdition {
	t.Helper()
	b, err := book.NewDigitalEdition(book.DigitalAttrs{
		Attrs:        book.Attrs{Title: "1984", Author: "George Orwell", Year: 1949, Genre: "Dystopia"},
		FileFormat:   "PDF",
		FileSizeMB:   1.5,
		DRMProtected: true,
	})
	require.NoError(t, err)
	return b
}

// Mockingbird is an unsigned hardcover of 281 pages.
func Mockingbird(t testing.TB) *book.PaperEdition {
	t.Helper()
	b, err := book.NewPaperEdition(book.PaperAttrs{
		Attrs:     book.Attrs{Title: "To Kill a Mockingbird", Author: "Harper Lee", Year: 1960, Genre: "Novel"},
		Pages:     281,
		CoverType: "hardcover",
	})
	require.NoError(t, err)
	return b
}

func Dune(t testing.TB) *book.AudioEdition {
	t.Helper()
	b, err := book.NewAudioEdition(book.AudioAttrs{
		Attrs:           book.Attrs{Title: "Dune", Author: "Frank Herbert", Year: 1965, Genre: "Science Fiction"},
		DurationMinutes: 1260.5,
	})
	require.NoError(t, err)
	return b
}

// Walden has a comma in its title, which csv output must quote.
func Walden(t testing.TB) *book.Book {
	t.Helper()
	b, err := book.New(book.Attrs{Title: "Walden, or Life in the Woods", Author: "H. D. Thoreau", Year: 1854, Genre: "Essay"})
	require.NoError(t, err)
	return b
}

// WriteFile writes content to name inside a fresh temp dir and returns the path.
func WriteFile(t testing.TB, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}
