package starlark

import (
	"sync"
	"testing"

	"github.com/leapstack-labs/leapnav/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.starlark.net/starlark"
)

func TestThreadPool_GetPut(t *testing.T) {
	pool := NewThreadPool(5, nil)

	thread := pool.Get("test1")
	require.NotNil(t, thread)
	assert.Equal(t, "test1", thread.Name)

	pool.Put(thread)
	assert.Equal(t, 1, pool.Size())

	// Reused
	thread2 := pool.Get("test2")
	assert.Equal(t, 0, pool.Size())
	assert.Same(t, thread, thread2)
	assert.Equal(t, "test2", thread2.Name)
}

func TestThreadPool_MaxSize(t *testing.T) {
	pool := NewThreadPool(2, nil)

	threads := make([]*starlark.Thread, 3)
	for i := range threads {
		threads[i] = pool.Get("test")
	}
	for _, thread := range threads {
		pool.Put(thread)
	}

	assert.Equal(t, 2, pool.Size())
}

func TestThreadPool_PrintGoesToLogger(t *testing.T) {
	logger, logs := testutil.NewCaptureLogger()
	pool := NewThreadPool(1, logger)

	thread := pool.Get("titles.component")
	_, err := starlark.ExecFile(thread, "print.star", `print("hi")`, nil) //nolint:staticcheck // SA1019
	require.NoError(t, err)

	records := logs.Records()
	require.Len(t, records, 1)
	assert.Equal(t, "processor print", records[0].Message)
	assert.Equal(t, "hi", records[0].Attrs["msg"])
	assert.Equal(t, "titles.component", records[0].Attrs["thread"])
}

func TestThreadPool_Concurrent(t *testing.T) {
	pool := NewThreadPool(10, nil)
	var wg sync.WaitGroup

	for i := 0; i < 100; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			pool.Put(pool.Get("concurrent"))
		}()
	}
	wg.Wait()

	assert.LessOrEqual(t, pool.Size(), 10)
}
