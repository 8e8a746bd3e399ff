//go:build unit

package breaker_test

import (
	"errors"
	"testing"
	"time"

	"rentx-api/internal/pkg/breaker"
	"rentx-api/internal/pkg/config"

	"github.com/sony/gobreaker/v2"
	"github.com/stretchr/testify/assert"
)

func TestNew_OpensAfterConsecutiveFailures(t *testing.T) {
	cb := breaker.New[struct{}]("test", config.BreakerConfig{
		MaxRequests:      1,
		Interval:         time.Minute,
		Timeout:          time.Minute,
		FailureThreshold: 2,
	})
	fail := func() (struct{}, error) { return struct{}{}, errors.New("boom") }

	_, err := cb.Execute(fail)
	assert.EqualError(t, err, "boom")
	assert.Equal(t, gobreaker.StateClosed, cb.State())

	_, _ = cb.Execute(fail)
	assert.Equal(t, gobreaker.StateOpen, cb.State())

	_, err = cb.Execute(func() (struct{}, error) { return struct{}{}, nil })
	assert.ErrorIs(t, err, gobreaker.ErrOpenState)
}
