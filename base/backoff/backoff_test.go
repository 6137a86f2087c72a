package backoff

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestExponential(t *testing.T) {
	req := require.New(t)
	b := NewExponential(time.Millisecond, 4*time.Millisecond)

	expected := []time.Duration{
		time.Millisecond,
		2 * time.Millisecond,
		4 * time.Millisecond,
		4 * time.Millisecond,
	}
	for _, exp := range expected {
		req.Equal(exp, b.NextDuration)
		req.NoError(b.Backoff(context.Background()))
	}
	req.Equal(4, b.Count())

	b.Reset()
	req.Equal(0, b.Count())
	req.Equal(time.Millisecond, b.NextDuration)
}

func TestLinear(t *testing.T) {
	req := require.New(t)
	b := NewLinear(time.Millisecond, 0)
	req.Equal(time.Millisecond, b.NextDuration)
	req.NoError(b.Backoff(context.Background()))
	req.Equal(2*time.Millisecond, b.NextDuration)
}

func TestBackoffParentDone(t *testing.T) {
	req := require.New(t)
	b := NewExponential(time.Second, 0)

	c, cancel := context.WithTimeout(context.Background(), 5*time.Millisecond)
	defer cancel()

	req.Equal(context.DeadlineExceeded, b.Backoff(c))
	req.Equal(0, b.Count())
}
