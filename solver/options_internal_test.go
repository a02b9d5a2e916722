package solver

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestOptions_TimeLimitFollowsDeadline(t *testing.T) {
	o := DefaultOptions()
	assert.Zero(t, o.timeLimit(context.Background()))

	o.TimeLimit = time.Hour
	assert.Equal(t, time.Hour, o.timeLimit(context.Background()))

	ctx, cancel := context.WithTimeout(context.Background(), time.Minute)
	defer cancel()
	got := o.timeLimit(ctx)
	assert.LessOrEqual(t, got, time.Minute)
	assert.Greater(t, got, 50*time.Second)

	o.TimeLimit = time.Second
	assert.Equal(t, time.Second, o.timeLimit(ctx))

	expired, cancel2 := context.WithDeadline(context.Background(), time.Now().Add(-time.Second))
	defer cancel2()
	assert.Equal(t, time.Millisecond, o.timeLimit(expired))
}
