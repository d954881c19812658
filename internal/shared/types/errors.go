package types

import (
	"errors"
	"fmt"
	"time"
)

var (
	ErrMissingSource     = errors.New("no data source configured. Use --source or set 'source' in the config file")
	ErrWarehouseDisabled = errors.New("warehouse source is disabled")
)

// DataSourceError reports a source that is missing, unreachable or malformed.
// It is fatal for the current run.
type DataSourceError struct {
	Source string
	Reason string
	Err    error
}

func (e *DataSourceError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("data source %s: %s: %v", e.Source, e.Reason, e.Err)
	}
	return fmt.Sprintf("data source %s: %s", e.Source, e.Reason)
}

func (e *DataSourceError) Unwrap() error {
	return e.Err
}

// InvalidRangeError reports a user supplied date range that cannot be applied.
type InvalidRangeError struct {
	Start  time.Time
	End    time.Time
	Reason string
}

func (e *InvalidRangeError) Error() string {
	if e.Reason != "" {
		return "invalid date range: " + e.Reason
	}
	return fmt.Sprintf("invalid date range: start %s is after end %s",
		e.Start.Format("2006-01-02"), e.End.Format("2006-01-02"))
}
