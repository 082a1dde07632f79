package pdf

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPoolBoundsConcurrency(t *testing.T) {
	p := NewPool(1)

	require.NoError(t, p.Acquire(context.Background()))

	ctx, cancel := context.WithTimeout(context.Background(), 20*time.Millisecond)
	defer cancel()
	err := p.Acquire(ctx)
	assert.ErrorIs(t, err, context.DeadlineExceeded)

	p.Release()
	require.NoError(t, p.Acquire(context.Background()))
	p.Release()
}

func TestNewPoolMinimumOne(t *testing.T) {
	assert.Equal(t, 1, NewPool(0).Size())
	assert.Equal(t, 1, NewPool(-3).Size())
	assert.Equal(t, 4, NewPool(4).Size())
}

func TestResolvePoolSize(t *testing.T) {
	assert.Equal(t, 3, ResolvePoolSize(3))

	derived := ResolvePoolSize(0)
	assert.GreaterOrEqual(t, derived, MinPoolSize)
	assert.LessOrEqual(t, derived, MaxPoolSize)
}
