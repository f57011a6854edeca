package utils

import (
	"time"

	"github.com/rs/zerolog"
)

// SlowOperationThreshold is the duration above which an operation is logged as slow
const SlowOperationThreshold = 2 * time.Second

// OperationTimer returns a func that logs how long the operation took.
//
//	defer utils.OperationTimer("analyze-expenses", log)()
func OperationTimer(operation string, log zerolog.Logger) func() {
	start := time.Now()
	return func() {
		report(log, "operation", operation, time.Since(start), nil, "Operation completed", "Slow operation detected")
	}
}

// MeasureDBQuery is OperationTimer for queries, recording the affected row count
func MeasureDBQuery(queryName string, log zerolog.Logger) func(rows int64) {
	start := time.Now()
	return func(rows int64) {
		report(log, "query", queryName, time.Since(start), &rows, "Database query completed", "Slow database query detected")
	}
}

func report(log zerolog.Logger, key, name string, d time.Duration, rows *int64, done, slow string) {
	ev := log.Debug().Str(key, name).Dur("duration_ms", d)
	if rows != nil {
		ev = ev.Int64("rows", *rows)
	}
	ev.Msg(done)

	if d > SlowOperationThreshold {
		warn := log.Warn().Str(key, name).Dur("duration", d)
		if rows != nil {
			warn = warn.Int64("rows", *rows)
		}
		warn.Msg(slow)
	}
}
