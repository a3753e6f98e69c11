package cqltest_test

import (
	"strconv"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/arloliu/cqltest"
)

func suffixOf(t *testing.T, name, prefix string) int64 {
	t.Helper()

	require.True(t, strings.HasPrefix(name, prefix), "name %q missing prefix %q", name, prefix)
	n, err := strconv.ParseInt(strings.TrimPrefix(name, prefix), 10, 64)
	require.NoError(t, err)

	return n
}

func TestNameGeneratorUnique(t *testing.T) {
	gen := cqltest.NewNameGenerator()

	seen := make(map[string]struct{})
	var last int64
	for i := 0; i < 1000; i++ {
		name := gen.Next()
		_, dup := seen[name]
		require.False(t, dup, "duplicate name %q", name)
		seen[name] = struct{}{}

		suffix := suffixOf(t, name, cqltest.DefaultNamePrefix)
		require.Greater(t, suffix, last, "suffixes must be strictly increasing")
		last = suffix
	}
}

func TestNameGeneratorSameMillisecondBump(t *testing.T) {
	frozen := time.UnixMilli(1700000000000)
	gen := cqltest.NewNameGenerator(cqltest.WithClock(func() time.Time { return frozen }))

	first := suffixOf(t, gen.Next(), cqltest.DefaultNamePrefix)
	second := suffixOf(t, gen.Next(), cqltest.DefaultNamePrefix)

	require.Equal(t, frozen.UnixMilli(), first)
	require.Equal(t, first+1, second, "second name in the same millisecond must bump by exactly one")
}

func TestNameGeneratorClockGoingBackward(t *testing.T) {
	now := time.UnixMilli(1700000000000)
	gen := cqltest.NewNameGenerator(cqltest.WithClock(func() time.Time { return now }))

	first := suffixOf(t, gen.Next(), cqltest.DefaultNamePrefix)

	// A clock stepping backward must not produce a smaller suffix.
	now = now.Add(-time.Second)
	second := suffixOf(t, gen.Next(), cqltest.DefaultNamePrefix)
	require.Equal(t, first+1, second)
}

func TestNameGeneratorCustomPrefix(t *testing.T) {
	gen := cqltest.NewNameGenerator(cqltest.WithPrefix("my_suite_"))

	name := gen.Next()
	require.True(t, strings.HasPrefix(name, "my_suite_"))
}

func TestNameGeneratorConcurrent(t *testing.T) {
	gen := cqltest.NewNameGenerator()

	const workers = 8
	const perWorker = 200

	var wg sync.WaitGroup
	results := make([][]string, workers)
	for w := 0; w < workers; w++ {
		wg.Add(1)
		go func(w int) {
			defer wg.Done()
			names := make([]string, 0, perWorker)
			for i := 0; i < perWorker; i++ {
				names = append(names, gen.Next())
			}
			results[w] = names
		}(w)
	}
	wg.Wait()

	seen := make(map[string]struct{})
	for _, names := range results {
		for _, name := range names {
			_, dup := seen[name]
			require.False(t, dup, "duplicate name %q across goroutines", name)
			seen[name] = struct{}{}
		}
	}
}

func TestUniqueNameSharedGenerator(t *testing.T) {
	first := cqltest.UniqueName()
	second := cqltest.UniqueName()

	require.NotEqual(t, first, second)
	require.True(t, strings.HasPrefix(first, cqltest.DefaultNamePrefix))
}

func TestRandomString(t *testing.T) {
	s := cqltest.RandomString(32)
	require.Len(t, s, 32)

	for _, r := range s {
		ok := (r >= 'A' && r <= 'Z') || (r >= '0' && r <= '9')
		require.True(t, ok, "unexpected character %q", r)
	}
}
