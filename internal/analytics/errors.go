package analytics

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidDate is returned when a timestamp needed for date arithmetic is unset.
	ErrInvalidDate      = errors.New("invalid date")
	// ErrNegativeRange is returned when a range ends before it starts.
	ErrNegativeRange    = errors.New("end date before start date")
	// ErrRatingOutOfRange is returned for satisfaction ratings outside 0..5.
	ErrRatingOutOfRange = errors.New("rating out of range")
)

// AnomalyError records a data problem that excluded a complaint from one metric.
// Anomalies are never returned to callers of the engine; they are logged and skipped.
type AnomalyError struct {
	ComplaintID int64
	Metric      string
	Err         error
}

func (e *AnomalyError) Error() string {
	return fmt.Sprintf("complaint %d excluded from %s: %v", e.ComplaintID, e.Metric, e.Err)
}

func (e *AnomalyError) Unwrap() error {
	return e.Err
}

func newAnomaly(complaintID int64, metric string, err error) *AnomalyError {
	return &AnomalyError{ComplaintID: complaintID, Metric: metric, Err: err}
}
