package metrics

import (
	"strings"
	"time"

	"github.com/gocql/gocql"
)

// TrackDBOperation is a helper function to track database operations
// It tracks operation duration, success/failure, errors, and slow queries
func TrackDBOperation(operation string, table string) func(error) {
	startTime := time.Now()
	return func(err error) {
		duration := time.Since(startTime).Seconds()
		status := "success"
		if err != nil {
			status = "error"
			TrackDBError(err)
		}

		DatabaseOperationsTotal.WithLabelValues(operation, table, status).Inc()
		DatabaseOperationDuration.WithLabelValues(operation, table).Observe(duration)

		// Queries taking more than a second are considered slow
		if duration > 1.0 {
			DBSlowQueriesTotal.WithLabelValues("1s").Inc()
		}
	}
}

// TrackDBError is a helper function to track database errors
func TrackDBError(err error) {
	if err == nil {
		return
	}

	errorType := "unknown"
	switch {
	case err == gocql.ErrTimeoutNoResponse:
		errorType = "timeout"
	case err == gocql.ErrConnectionClosed:
		errorType = "connection"
	case err == gocql.ErrNotFound:
		errorType = "not_found"
	case strings.Contains(err.Error(), "query"):
		errorType = "query"
	}

	DatabaseErrorsTotal.WithLabelValues(errorType).Inc()
}

// TrackLedgerCall tracks a loyalty contract call by method name
func TrackLedgerCall(method string) func(error) {
	startTime := time.Now()
	return func(err error) {
		status := "success"
		if err != nil {
			status = "error"
		}
		LedgerCallsTotal.WithLabelValues(method, status).Inc()
		LedgerCallDuration.WithLabelValues(method).Observe(time.Since(startTime).Seconds())
	}
}

// TrackReconciliation tracks an approve/reject outcome for a request type
func TrackReconciliation(action string, requestType string, err error) {
	status := "success"
	if err != nil {
		status = "error"
	}
	ReconciliationsTotal.WithLabelValues(action, requestType, status).Inc()
}
