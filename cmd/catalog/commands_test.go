package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"bookcatalog/internal/codec"
	"bookcatalog/internal/config"
	"bookcatalog/internal/ingest"
	"bookcatalog/internal/testutil"
)

const booksCSV = `kind,title,author,year,genre,pages,cover_type,is_signed,file_format,file_size_mb,drm_protected
digital,1984,George Orwell,1949,Dystopia,,,,PDF,1.5,true
paper,To Kill a Mockingbird,Harper Lee,1960,Novel,281,hardcover,false,,,
paper,Animal Farm,George Orwell,1945,Satire,0,paperback,false,,,
book,Go Set a Watchman,Harper Lee,2015,Novel,,,,,,
`

func testConfig() config.Config {
	return config.Config{
		LogLevel:    "warn",
		LogFormat:   "json",
		CatalogName: "test library",
		CurrentYear: 2025,
	}
}

func writeBooks(t *testing.T) string {
	return testutil.WriteFile(t, "books.csv", booksCSV)
}

func execute(t *testing.T, args ...string) (string, string, error) {
	t.Helper()

	var stdout, stderr bytes.Buffer
	root := newRootCmd(testConfig())
	root.SetOut(&stdout)
	root.SetErr(&stderr)
	root.SetArgs(args)

	err := root.Execute()
	return stdout.String(), stderr.String(), err
}

func TestDescribeCmd(t *testing.T) {
	stdout, stderr, err := execute(t, "describe", writeBooks(t))
	require.NoError(t, err)

	lines := strings.Split(strings.TrimSpace(stdout), "\n")
	require.Len(t, lines, 3)
	assert.Equal(t, "1. 1984 is a Dystopia book written by George Orwell in 1949. It is an e-book in PDF format, 1.5MB, DRM protected.", lines[0])
	assert.True(t, strings.HasPrefix(lines[1], "2. To Kill a Mockingbird is a Novel book written by Harper Lee in 1960."))
	assert.Equal(t, "3. Go Set a Watchman is a Novel book written by Harper Lee in 2015.", lines[2])

	// the zero-page paper book is rejected at warn level
	assert.Contains(t, stderr, "row rejected")
}

func TestListCmd(t *testing.T) {
	path := writeBooks(t)

	t.Run("by author", func(t *testing.T) {
		stdout, _, err := execute(t, "list", path, "--author", "Harper Lee")
		require.NoError(t, err)
		assert.Equal(t,
			"2. 'To Kill a Mockingbird' by Harper Lee (1960), Genre: Novel [Paper Book: 281 pages, hardcover cover, Not Signed]\n"+
				"3. 'Go Set a Watchman' by Harper Lee (2015), Genre: Novel\n",
			stdout)
	})

	t.Run("unknown author", func(t *testing.T) {
		stdout, _, err := execute(t, "list", path, "--author", "harper lee")
		require.NoError(t, err)
		assert.Empty(t, stdout)
	})

	t.Run("debug", func(t *testing.T) {
		stdout, _, err := execute(t, "list", path, "--debug")
		require.NoError(t, err)
		assert.Contains(t, stdout, `1. DigitalEdition(title="1984", author="George Orwell", year=1949, genre="Dystopia", file_format="PDF", file_size_mb=1.5, drm_protected=true)`)
	})
}

func TestAgeCmd(t *testing.T) {
	path := writeBooks(t)

	stdout, _, err := execute(t, "age", path)
	require.NoError(t, err)
	assert.Contains(t, stdout, "1. '1984' is 76 years old\n")

	stdout, _, err = execute(t, "age", path, "--year", "2049")
	require.NoError(t, err)
	assert.Contains(t, stdout, "1. '1984' is 100 years old\n")
}

func TestConvertCmd(t *testing.T) {
	in := writeBooks(t)
	out := filepath.Join(t.TempDir(), "books.json")

	_, _, err := execute(t, "convert", in, out)
	require.NoError(t, err)

	f, err := os.Open(out)
	require.NoError(t, err)
	defer f.Close()

	rows, err := ingest.Decode(f, codec.FormatJSON)
	require.NoError(t, err)
	require.Len(t, rows, 3)
	assert.Equal(t, "1", rows[0]["id"])
	assert.Equal(t, "PDF", rows[0]["file_format"])
	assert.Equal(t, "281", rows[1]["pages"])

	t.Run("unknown output format", func(t *testing.T) {
		_, _, err := execute(t, "convert", in, filepath.Join(t.TempDir(), "books.xml"))
		assert.ErrorIs(t, err, codec.ErrUnknownFormat)
	})
}

func TestLoad_MissingFile(t *testing.T) {
	_, _, err := execute(t, "describe", filepath.Join(t.TempDir(), "missing.csv"))
	assert.Error(t, err)
}

func TestRoot_BlankName(t *testing.T) {
	_, _, err := execute(t, "describe", writeBooks(t), "--name", "  ")
	assert.Error(t, err)
}
