package main

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"bookcatalog/internal/catalog"
	"bookcatalog/internal/config"
	"bookcatalog/internal/ingest"
	"bookcatalog/internal/platform/logging"
)

type rootOptions struct {
	cfg      config.Config
	logLevel string
	name     string
}

func newRootCmd(cfg config.Config) *cobra.Command {
	opts := &rootOptions{cfg: cfg}

	root := &cobra.Command{
		Use:   "catalog",
		Short: "Inspect and convert book catalogs",
		Long: `catalog loads books from csv, json or yaml files into an in-memory
catalog, then describes, lists, ages or converts them.`,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			log := logging.New(logging.Config{
				Level:  opts.logLevel,
				Format: cfg.LogFormat,
				Output: cmd.ErrOrStderr(),
			})
			ctx := cmd.Context()
			if ctx == nil {
				ctx = context.Background()
			}
			cmd.SetContext(logging.WithLogger(ctx, &log))
			return nil
		},
	}

	root.PersistentFlags().StringVar(&opts.logLevel, "log-level", cfg.LogLevel, "log level (trace, debug, info, warn, error, off)")
	root.PersistentFlags().StringVar(&opts.name, "name", cfg.CatalogName, "catalog name")

	root.AddCommand(
		newDescribeCmd(opts),
		newListCmd(opts),
		newConvertCmd(opts),
		newAgeCmd(opts),
	)
	return root
}

// load imports path into a fresh catalog. Rejected rows are logged and
// skipped.
func (o *rootOptions) load(ctx context.Context, path string) (*catalog.Catalog, error) {
	c, err := catalog.New(o.name)
	if err != nil {
		return nil, err
	}

	run, err := ingest.NewService(ingest.FileSource{Path: path}, c).Run(ctx)
	if err != nil {
		return nil, fmt.Errorf("load %s: %w", path, err)
	}
	if len(run.Rejected) > 0 {
		logging.FromContext(ctx).Warn().
			Str("file", path).
			Int("rejected", len(run.Rejected)).
			Msg("some rows were skipped")
	}
	return c, nil
}
