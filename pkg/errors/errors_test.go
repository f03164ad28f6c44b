package errors

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAppErrorWrapping(t *testing.T) {
	cause := fmt.Errorf("boom")
	err := NewInternalError("scoring failed", cause)

	assert.ErrorIs(t, err, cause)
	assert.Contains(t, err.Error(), "scoring failed")
	assert.Contains(t, err.Error(), "boom")
}

func TestErrorPredicates(t *testing.T) {
	tests := []struct {
		name  string
		err   error
		check func(error) bool
		want  bool
	}{
		{
			name:  "invalid weights carries code",
			err:   NewInvalidWeightsError(0.8, 0.8),
			check: IsInvalidWeights,
			want:  true,
		},
		{
			name:  "invalid weights is a validation error",
			err:   NewInvalidWeightsError(0.8, 0.8),
			check: IsValidationError,
			want:  true,
		},
		{
			name:  "unknown reference carries code",
			err:   NewUnknownReferenceError("user", "ghost"),
			check: IsUnknownReference,
			want:  true,
		},
		{
			name:  "unknown reference is not found",
			err:   NewUnknownReferenceError("post", "p404"),
			check: IsNotFoundError,
			want:  true,
		},
		{
			name:  "invalid dimension carries code",
			err:   NewInvalidDimensionError("4d"),
			check: IsInvalidDimension,
			want:  true,
		},
		{
			name:  "duplicate entity is a conflict",
			err:   NewDuplicateEntityError("post", "p1"),
			check: IsConflictError,
			want:  true,
		},
		{
			name:  "wrapped errors still match",
			err:   fmt.Errorf("while scoring: %w", NewInvalidWeightsError(2, -1)),
			check: IsInvalidWeights,
			want:  true,
		},
		{
			name:  "plain errors never match",
			err:   fmt.Errorf("plain"),
			check: IsValidationError,
			want:  false,
		},
		{
			name:  "codes do not cross-match",
			err:   NewInvalidDimensionError("1d"),
			check: IsInvalidWeights,
			want:  false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.check(tt.err))
		})
	}
}

func TestWithDetail(t *testing.T) {
	err := NewValidationError("bad input").WithDetail("field", "weights")
	assert.Equal(t, "weights", err.Details["field"])
}
