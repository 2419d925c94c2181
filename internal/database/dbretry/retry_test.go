package dbretry_test

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/robalyx/warden/internal/database/dbretry"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var errConstraint = errors.New("duplicate key value violates unique constraint")

func TestIsRetryableError(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		err  error
		want bool
	}{
		{name: "nil", err: nil, want: false},
		{name: "connection reset", err: errors.New("read tcp: connection reset by peer"), want: true},
		{name: "wrapped timeout", err: fmt.Errorf("query: %w", errors.New("i/o timeout")), want: true},
		{name: "constraint violation", err: errConstraint, want: false},
		{name: "cancelled context", err: context.Canceled, want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.want, dbretry.IsRetryableError(tt.err))
		})
	}
}

func TestOperationStopsOnPermanentError(t *testing.T) {
	t.Parallel()

	calls := 0
	_, err := dbretry.Operation(t.Context(), func(context.Context) (int, error) {
		calls++
		return 0, errConstraint
	})

	require.ErrorIs(t, err, errConstraint)
	assert.Equal(t, 1, calls)
}

func TestOperationRetriesTransientError(t *testing.T) {
	t.Parallel()

	start := time.Now()
	calls := 0

	result, err := dbretry.Operation(t.Context(), func(context.Context) (string, error) {
		calls++
		if calls < 2 {
			return "", errors.New("broken pipe")
		}

		return "ok", nil
	})

	require.NoError(t, err)
	assert.Equal(t, "ok", result)
	assert.Equal(t, 2, calls)
	assert.Less(t, time.Since(start), 10*time.Second)
}
