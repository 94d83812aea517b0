package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/spf13/pflag"

	"bookcatalog/internal/book"
	"bookcatalog/internal/catalog"
	"bookcatalog/internal/codec"
	"bookcatalog/internal/config"
	"bookcatalog/internal/export"
	"bookcatalog/internal/platform/logging"
	"bookcatalog/internal/readinglist"
)

func main() {
	config.LoadEnvFiles()
	cfg := config.Load(time.Now())

	opts, err := parseFlags(cfg, os.Args[1:])
	if err != nil {
		os.Exit(2)
	}

	log := logging.New(logging.Config{Level: opts.logLevel, Format: cfg.LogFormat})
	ctx := logging.WithLogger(context.Background(), &log)

	if err := run(ctx, os.Stdout, cfg.CatalogName, opts.format, opts.year); err != nil {
		log.Fatal().Err(err).Msg("seed failed")
	}
}

type options struct {
	format   string
	year     int
	logLevel string
}

// parseFlags reads the command line, falling back to cfg for unset flags.
func parseFlags(cfg config.Config, args []string) (options, error) {
	var opts options
	flags := pflag.NewFlagSet("seed", pflag.ContinueOnError)
	flags.StringVarP(&opts.format, "format", "f", "json", "output format (csv, json, yaml)")
	flags.IntVar(&opts.year, "year", cfg.CurrentYear, "reference year for ages")
	flags.StringVar(&opts.logLevel, "log-level", cfg.LogLevel, "log level (trace, debug, info, warn, error, off)")
	err := flags.Parse(args)
	return opts, err
}

func run(ctx context.Context, out io.Writer, name, formatName string, year int) error {
	log := logging.FromContext(ctx)

	format, err := codec.ParseFormat(formatName)
	if err != nil {
		return err
	}

	ebook, err := book.NewDigitalEdition(book.DigitalAttrs{
		Attrs:        book.Attrs{Title: "1984", Author: "George Orwell", Year: 1949, Genre: "Dystopia"},
		FileFormat:   "PDF",
		FileSizeMB:   1.5,
		DRMProtected: true,
	})
	if err != nil {
		return err
	}
	paper, err := book.NewPaperEdition(book.PaperAttrs{
		Attrs:     book.Attrs{Title: "To Kill a Mockingbird", Author: "Harper Lee", Year: 1960, Genre: "Novel"},
		Pages:     281,
		CoverType: "hardcover",
	})
	if err != nil {
		return err
	}
	audio, err := book.NewAudioEdition(book.AudioAttrs{
		Attrs:           book.Attrs{Title: "Animal Farm", Author: "George Orwell", Year: 1945, Genre: "Satire"},
		DurationMinutes: 192,
	})
	if err != nil {
		return err
	}

	fmt.Fprintln(out, ebook.Describe())
	fmt.Fprintln(out, paper.Describe())
	fmt.Fprintln(out, audio.Describe())

	for _, item := range []book.Item{ebook, paper, audio} {
		fmt.Fprintf(out, "'%s' age: %d years\n", item.Title(), item.Age(year))
	}

	fmt.Fprintf(out, "%s\n%#v\n", ebook, ebook)
	fmt.Fprintf(out, "%s\n%#v\n", paper, paper)
	fmt.Fprintln(out, ebook.Download())

	fmt.Fprintln(out, paper.PageCount())
	if err := paper.SetPageCount(300); err != nil {
		return err
	}
	fmt.Fprintln(out, paper.PageCount())
	if err := paper.SetPageCount(-5); err != nil {
		log.Warn().Err(err).Int("pages", paper.PageCount()).Msg("page count kept")
	}
	msg, _ := paper.OpenPage(301)
	fmt.Fprintln(out, msg)

	progress, err := readinglist.NewProgress(paper, 120)
	if err != nil {
		return err
	}
	fmt.Fprintf(out, "'%s': %d pages read, %d left (%s)\n",
		paper.Title(), progress.Read(), progress.Remaining(), progress.Status())

	c, err := catalog.New(name)
	if err != nil {
		return err
	}
	for _, item := range []book.Item{ebook, paper, audio} {
		id, err := c.Insert(item)
		if err != nil {
			return err
		}
		log.Debug().Int("id", id).Str("title", item.Title()).Msg("book added")
	}
	log.Info().Str("catalog", c.Name()).Int("books", c.Len()).Int("next_id", c.NextID()).Msg("catalog seeded")

	return export.Write(out, format, export.Records(c))
}
