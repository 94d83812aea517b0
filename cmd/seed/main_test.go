package main

import (
	"bytes"
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"bookcatalog/internal/codec"
	"bookcatalog/internal/config"
)

func TestRun(t *testing.T) {
	var out bytes.Buffer
	err := run(context.Background(), &out, "demo", "csv", 2025)
	require.NoError(t, err)

	got := out.String()
	assert.Contains(t, got, "1984 is a Dystopia book written by George Orwell in 1949. It is an e-book in PDF format, 1.5MB, DRM protected.\n")
	assert.Contains(t, got, "'1984' age: 76 years\n")
	assert.Contains(t, got, "'To Kill a Mockingbird' age: 65 years\n")
	assert.Contains(t, got, `PaperEdition(title="To Kill a Mockingbird", author="Harper Lee", year=1960, genre="Novel", pages=281, cover_type="hardcover", is_signed=false)`)
	assert.Contains(t, got, "Downloading '1984' in PDF format... Done!\n")
	assert.Contains(t, got, "281\n300\n")
	assert.Contains(t, got, "Error: 'To Kill a Mockingbird' has only 300 pages.\n")
	assert.Contains(t, got, "120 pages read, 180 left (READING)\n")
	assert.True(t, strings.HasSuffix(got, "3,audio,Animal Farm,George Orwell,1945,Satire,,,,192,,,\n"))
}

func TestRun_UnknownFormat(t *testing.T) {
	var out bytes.Buffer
	err := run(context.Background(), &out, "demo", "toml", 2025)
	assert.ErrorIs(t, err, codec.ErrUnknownFormat)
	assert.Zero(t, out.Len())
}

func TestParseFlags(t *testing.T) {
	cfg := config.Config{LogLevel: "info", CurrentYear: 2025}

	t.Run("defaults from config", func(t *testing.T) {
		opts, err := parseFlags(cfg, nil)
		require.NoError(t, err)
		assert.Equal(t, options{format: "json", year: 2025, logLevel: "info"}, opts)
	})

	t.Run("flags override config", func(t *testing.T) {
		opts, err := parseFlags(cfg, []string{"-f", "yaml", "--year", "2049", "--log-level", "debug"})
		require.NoError(t, err)
		assert.Equal(t, options{format: "yaml", year: 2049, logLevel: "debug"}, opts)
	})

	t.Run("unknown flag", func(t *testing.T) {
		_, err := parseFlags(cfg, []string{"--verbose"})
		assert.Error(t, err)
	})
}
