package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"bookcatalog/internal/catalog"
	"bookcatalog/internal/codec"
	"bookcatalog/internal/export"
	"bookcatalog/internal/platform/logging"
)

func newDescribeCmd(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "describe <file>",
		Short: "Print the description of every book",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			c, err := opts.load(cmd.Context(), args[0])
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			for id, item := range c.All() {
				fmt.Fprintf(out, "%d. %s\n", id, item.Describe())
			}
			return nil
		},
	}
}

func newListCmd(opts *rootOptions) *cobra.Command {
	var (
		author string
		debug  bool
	)

	cmd := &cobra.Command{
		Use:   "list <file>",
		Short: "List books, optionally by one author",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			c, err := opts.load(cmd.Context(), args[0])
			if err != nil {
				return err
			}

			var entries []catalog.Entry
			if cmd.Flags().Changed("author") {
				entries = c.FindByAuthor(author)
			} else {
				entries = c.Entries()
			}

			out := cmd.OutOrStdout()
			for _, e := range entries {
				if debug {
					fmt.Fprintf(out, "%d. %#v\n", e.ID, e.Item)
					continue
				}
				fmt.Fprintf(out, "%d. %s\n", e.ID, e.Item)
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&author, "author", "", "only books by this exact author")
	cmd.Flags().BoolVar(&debug, "debug", false, "print every field")
	return cmd
}

func newConvertCmd(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "convert <in> <out>",
		Short: "Rewrite a catalog file in the format of the output extension",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			in, outPath := args[0], args[1]

			format, err := codec.FormatFromPath(outPath)
			if err != nil {
				return err
			}
			c, err := opts.load(cmd.Context(), in)
			if err != nil {
				return err
			}

			f, err := os.Create(outPath)
			if err != nil {
				return fmt.Errorf("create %s: %w", outPath, err)
			}
			if err := export.Write(f, format, export.Records(c)); err != nil {
				f.Close()
				return err
			}
			if err := f.Close(); err != nil {
				return err
			}

			logging.FromContext(cmd.Context()).Info().
				Str("from", in).
				Str("to", outPath).
				Int("books", c.Len()).
				Msg("catalog converted")
			return nil
		},
	}
}

func newAgeCmd(opts *rootOptions) *cobra.Command {
	var year int

	cmd := &cobra.Command{
		Use:   "age <file>",
		Short: "Print how many years ago each book was published",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			c, err := opts.load(cmd.Context(), args[0])
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			for id, item := range c.All() {
				fmt.Fprintf(out, "%d. '%s' is %d years old\n", id, item.Title(), item.Age(year))
			}
			return nil
		},
	}

	cmd.Flags().IntVar(&year, "year", opts.cfg.CurrentYear, "reference year")
	return cmd
}
