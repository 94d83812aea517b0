package ingest

import (
	"fmt"
	"time"
)

const (
	StatusRunning   = "RUNNING"
	StatusCompleted = "COMPLETED"
	StatusFailed    = "FAILED"
)

// Run is the report of one import.
type Run struct {
	ID         string
	Source     string
	StartedAt  time.Time
	FinishedAt *time.Time
	Status     string // RUNNING, COMPLETED, FAILED
	RowsRead   int
	Inserted   []int
	Rejected   []Rejection
	Error      string
}

// Rejection records a row that could not be turned into a catalog item.
// Row is 1-based and counts data rows only.
type Rejection struct {
	Row int
	Err error
}

func (r Rejection) Error() string {
	return fmt.Sprintf("row %d: %v", r.Row, r.Err)
}

func (r Rejection) Unwrap() error {
	return r.Err
}
