package ingest

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"bookcatalog/internal/book"
	"bookcatalog/internal/platform/logging"
)

// Inserter is the part of a catalog an import writes to.
type Inserter interface {
	Insert(item book.Item) (int, error)
}

type Service struct {
	source Source
	target Inserter
	now    func() time.Time
}

func NewService(source Source, target Inserter) *Service {
	return &Service{
		source: source,
		target: target,
		now:    time.Now,
	}
}

// Run loads every row of the source and inserts the valid ones. A row that
// fails to build or insert is rejected on its own; only a source failure or
// cancellation fails the run.
func (s *Service) Run(ctx context.Context) (run *Run, err error) {
	log := logging.FromContext(ctx).With().Str("source", s.source.Name()).Logger()

	run = &Run{
		ID:        uuid.NewString(),
		Source:    s.source.Name(),
		StartedAt: s.now(),
		Status:    StatusRunning,
		Inserted:  make([]int, 0),
		Rejected:  make([]Rejection, 0),
	}

	defer func() {
		now := s.now()
		run.FinishedAt = &now
		if err != nil {
			run.Status = StatusFailed
			run.Error = err.Error()
			log.Error().Err(err).Str("run_id", run.ID).Msg("import failed")
			return
		}
		run.Status = StatusCompleted
		log.Info().
			Str("run_id", run.ID).
			Int("rows", run.RowsRead).
			Int("inserted", len(run.Inserted)).
			Int("rejected", len(run.Rejected)).
			Msg("import completed")
	}()

	rows, err := s.source.Rows(ctx)
	if err != nil {
		return run, err
	}

	for i, row := range rows {
		if err := ctx.Err(); err != nil {
			return run, err
		}
		run.RowsRead++

		item, err := Build(row)
		if err != nil {
			s.reject(&log, run, i+1, err)
			continue
		}

		id, err := s.target.Insert(item)
		if err != nil {
			s.reject(&log, run, i+1, err)
			continue
		}
		run.Inserted = append(run.Inserted, id)
		log.Debug().Int("row", i+1).Int("id", id).Str("kind", string(item.Kind())).Msg("row inserted")
	}

	return run, nil
}

func (s *Service) reject(log *zerolog.Logger, run *Run, row int, err error) {
	run.Rejected = append(run.Rejected, Rejection{Row: row, Err: err})
	log.Warn().Int("row", row).Err(err).Msg("row rejected")
}
