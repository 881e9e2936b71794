package output

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	oerrors "github.com/fabricinit/cli/internal/errors"
)

// Tests run without a TTY, so the action executes inline.

func TestRunWithSpinner_ReturnsActionError(t *testing.T) {
	want := errors.New("fetch failed")
	err := RunWithSpinner(context.Background(), func(context.Context) error {
		return want
	}, WithTitle("Fetching"))
	assert.ErrorIs(t, err, want)
}

func TestRunWithSpinner_Success(t *testing.T) {
	called := false
	err := RunWithSpinner(context.Background(), func(context.Context) error {
		called = true
		return nil
	})
	require.NoError(t, err)
	assert.True(t, called)
}

func TestRunWithSpinner_ContextErrors(t *testing.T) {
	tests := []struct {
		name          string
		cancel        bool
		actionErr     error
		wantCancelled bool
		wantErr       error
	}{
		{
			name:          "cancelled context",
			cancel:        true,
			wantCancelled: true,
			wantErr:       context.Canceled,
		},
		{
			name:          "wrapped cancellation from action",
			actionErr:     fmt.Errorf("fetch versions: %w", context.Canceled),
			wantCancelled: true,
			wantErr:       context.Canceled,
		},
		{
			name:      "deadline is not a cancellation",
			actionErr: context.DeadlineExceeded,
			wantErr:   context.DeadlineExceeded,
		},
		{
			name:          "already cancelled error kept as is",
			actionErr:     oerrors.ErrCancelled,
			wantCancelled: true,
			wantErr:       oerrors.ErrCancelled,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctx, cancel := context.WithCancel(context.Background())
			defer cancel()
			if tt.cancel {
				cancel()
			}

			err := RunWithSpinner(ctx, func(ctx context.Context) error {
				if tt.actionErr != nil {
					return tt.actionErr
				}
				return ctx.Err()
			})
			require.Error(t, err)
			assert.ErrorIs(t, err, tt.wantErr)
			assert.Equal(t, tt.wantCancelled, errors.Is(err, oerrors.ErrCancelled))
			if tt.wantCancelled {
				assert.Equal(t, oerrors.ExitCancelled, oerrors.ExitCodeFromError(err))
			}
		})
	}
}
