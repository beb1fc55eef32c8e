package pool_test

import (
	"sync"
	"testing"

	"github.com/lestrrat-go/xenon/internal/pool"
	"github.com/stretchr/testify/require"
)

func TestByteSliceSequential(t *testing.T) {
	bs := pool.ByteSlice()

	b := bs.Get()
	require.Len(t, b, 0, "fresh buffer should be empty")
	require.GreaterOrEqual(t, cap(b), 64, "fresh buffer should carry default capacity")

	b = append(b, "<root/>"...)
	bs.Put(b)

	b2 := bs.Get()
	require.Len(t, b2, 0, "length should reset on release")
	require.GreaterOrEqual(t, cap(b2), 64, "capacity should survive release")
}

func TestByteSliceGetCapacity(t *testing.T) {
	bs := pool.ByteSlice()
	b := bs.GetCapacity(4096)
	require.Len(t, b, 0)
	require.GreaterOrEqual(t, cap(b), 4096, "requested capacity should be honored")
}

func TestByteSliceConcurrent(t *testing.T) {
	const workers = 16
	bs := pool.ByteSlice()

	var wg sync.WaitGroup
	results := make([]string, workers)
	wg.Add(workers)
	for i := range workers {
		go func() {
			defer wg.Done()
			b := bs.Get()
			defer bs.Put(b)
			require.Len(t, b, 0, "worker %d should start with an empty buffer", i)
			for range 32 {
				b = append(b, byte('a'+i))
			}
			results[i] = string(b)
		}()
	}
	wg.Wait()

	for i, s := range results {
		require.Len(t, s, 32, "worker %d should have written its payload", i)
		for j := range len(s) {
			require.Equal(t, byte('a'+i), s[j], "worker %d payload should be intact", i)
		}
	}
}
