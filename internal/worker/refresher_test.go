package worker

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

type MockLogRefresher struct {
	mock.Mock
}

func (m *MockLogRefresher) Refresh(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func TestNewRefresher(t *testing.T) {
	tests := []struct {
		name        string
		schedule    string
		expectNil   bool
		expectError bool
	}{
		{"Empty schedule disables", "", true, false},
		{"Standard schedule", "*/5 * * * *", false, false},
		{"Descriptor", "@every 1m", false, false},
		{"Invalid schedule", "every day", true, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r, err := NewRefresher(new(MockLogRefresher), tt.schedule, nil)

			if tt.expectError {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
			assert.Equal(t, tt.expectNil, r == nil)
		})
	}
}

func TestRefresher_NilStartIsNoop(t *testing.T) {
	var r *Refresher
	assert.NotPanics(t, func() { r.Start(context.Background()) })
}

func TestRefresher_RunOnce(t *testing.T) {
	target := new(MockLogRefresher)
	r, err := NewRefresher(target, "@every 1h", nil)
	require.NoError(t, err)

	t.Run("Success", func(t *testing.T) {
		target.On("Refresh", mock.Anything).Return(nil).Once()

		assert.NoError(t, r.RunOnce(context.Background()))
	})

	t.Run("Failure", func(t *testing.T) {
		target.On("Refresh", mock.Anything).Return(errors.New("store unreachable")).Once()

		err := r.RunOnce(context.Background())
		assert.Error(t, err)
		assert.Contains(t, err.Error(), "store unreachable")
	})

	t.Run("Carries a deadline", func(t *testing.T) {
		target.On("Refresh", mock.MatchedBy(func(ctx context.Context) bool {
			_, ok := ctx.Deadline()
			return ok
		})).Return(nil).Once()

		assert.NoError(t, r.RunOnce(context.Background()))
	})

	target.AssertExpectations(t)
}

func TestRefresher_ScheduledRunLogsFailures(t *testing.T) {
	core, logs := observer.New(zapcore.DebugLevel)
	target := new(MockLogRefresher)
	target.On("Refresh", mock.Anything).Return(errors.New("boom"))

	r, err := NewRefresher(target, "@every 1s", zap.New(core).Sugar())
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	r.Start(ctx)

	assert.Eventually(t, func() bool {
		return logs.FilterMessage("scheduled refresh failed").Len() > 0
	}, 5*time.Second, 50*time.Millisecond)
}
