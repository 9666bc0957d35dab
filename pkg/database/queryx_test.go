package database

import (
	"errors"
	"testing"

	"github.com/gocql/gocql"
	"github.com/stretchr/testify/assert"
)

func TestGocqlShouldRetry(t *testing.T) {
	tests := []struct {
		name  string
		err   error
		retry bool
	}{
		{"nil error", nil, false},
		{"not found is terminal", gocql.ErrNotFound, false},
		{"write timeout", &gocql.RequestErrWriteTimeout{}, true},
		{"read timeout", &gocql.RequestErrReadTimeout{}, true},
		{"unavailable", &gocql.RequestErrUnavailable{}, true},
		{"no connections", errors.New("no connections available"), true},
		{"connection refused", errors.New("dial tcp: connection refused"), true},
		{"arbitrary error", errors.New("syntax error in CQL"), false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.retry, gocqlShouldRetry(tt.err, 1))
		})
	}
}
