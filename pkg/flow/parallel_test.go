package flow

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRunAllSuccess(t *testing.T) {
	mark := func(key string) Step {
		return NewStep("mark", func(_ context.Context, c Context) Context {
			c.Items().Set(key, "done")
			return c
		}, key)
	}

	results, err := RunAll(context.Background(),
		Run{Chain: NewChain(mark("a")), Context: NewContext(nil)},
		Run{Chain: NewChain(mark("b")), Context: NewContext(nil)},
		Run{Chain: NewChain(mark("c")), Context: NewContext(nil)},
	)

	require.NoError(t, err)
	require.Len(t, results, 3)
	for i, key := range []string{"a", "b", "c"} {
		assert.False(t, results[i].HasFailure())
		assert.Equal(t, "done", results[i].Items().Get(key), "results keep input order")
	}
}

func TestRunAllFailFast(t *testing.T) {
	// The second run parks until the group is cancelled by the first run's
	// failure, then trips the cancellation check at its next step.
	parked := NewStep("park", func(ctx context.Context, c Context) Context {
		<-ctx.Done()
		return c
	})
	never := NewStep("never", func(_ context.Context, c Context) Context { return c })

	results, err := RunAll(context.Background(),
		Run{Chain: NewChain(failStep("boom", "bad state")), Context: NewContext(nil)},
		Run{Chain: NewChain(parked, never), Context: NewContext(nil)},
	)

	require.Error(t, err)
	assert.Contains(t, err.Error(), "bad state")

	require.True(t, results[0].HasFailure())
	assert.Equal(t, FailAssertion, results[0].Failure().Kind)

	require.True(t, results[1].HasFailure())
	assert.Equal(t, FailCancelled, results[1].Failure().Kind)
}

func TestRunAllSharedItems(t *testing.T) {
	shared := NewItems()
	put := func(key string) Step {
		return NewStep("put", func(_ context.Context, c Context) Context {
			c.Items().Set(key, key)
			return c
		}, key)
	}

	_, err := RunAll(context.Background(),
		Run{Chain: NewChain(put("left")), Context: NewContext(nil, WithItems(shared))},
		Run{Chain: NewChain(put("right")), Context: NewContext(nil, WithItems(shared))},
	)

	require.NoError(t, err)
	assert.Equal(t, 2, shared.Len())
}

func TestRunAllEmpty(t *testing.T) {
	results, err := RunAll(context.Background())
	require.NoError(t, err)
	assert.Empty(t, results)
}
