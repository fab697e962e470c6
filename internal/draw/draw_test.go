package draw

import (
	"fmt"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func participants(n int) []string {
	ids := make([]string, n)
	for i := range ids {
		ids[i] = fmt.Sprintf("user-%d", i)
	}
	return ids
}

func TestSelectSize(t *testing.T) {
	d := New(&Config{Seed: 42})

	cases := []struct {
		name       string
		candidates int
		count      int
		want       int
	}{
		{"fewer winners than entrants", 10, 3, 3},
		{"exact", 5, 5, 5},
		{"more winners than entrants", 2, 5, 2},
		{"no entrants", 0, 3, 0},
		{"zero winners", 4, 0, 0},
		{"negative winners", 4, -1, 0},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := d.Select(participants(tc.candidates), tc.count)
			assert.Len(t, got, tc.want)
			assert.NotNil(t, got)
		})
	}
}

func TestSelectDistinctSubset(t *testing.T) {
	d := New(nil)
	candidates := participants(20)

	for trial := 0; trial < 200; trial++ {
		got := d.Select(candidates, 7)
		require.Len(t, got, 7)

		seen := make(map[string]bool, len(got))
		for _, id := range got {
			assert.Contains(t, candidates, id)
			assert.False(t, seen[id], "duplicate winner %s", id)
			seen[id] = true
		}
	}
}

func TestSelectDoesNotMutateInput(t *testing.T) {
	d := New(&Config{Seed: 7})
	candidates := participants(6)
	original := append([]string(nil), candidates...)

	d.Select(candidates, 4)

	assert.Equal(t, original, candidates)
}

func TestSelectEveryoneWinsInOrder(t *testing.T) {
	d := New(nil)
	candidates := []string{"carol", "alice", "bob"}

	assert.Equal(t, candidates, d.Select(candidates, 3))
	assert.Equal(t, candidates, d.Select(candidates, 10))

	got := d.Select(candidates, 3)
	got[0] = "mallory"
	assert.Equal(t, "carol", candidates[0])
}

func TestSelectIsDeterministicForSeed(t *testing.T) {
	a := New(&Config{Seed: 99}).Select(participants(30), 5)
	b := New(&Config{Seed: 99}).Select(participants(30), 5)

	assert.Equal(t, a, b)
}

func TestSelectUniform(t *testing.T) {
	d := New(&Config{Seed: 1234})
	candidates := participants(10)

	const trials = 20000
	const count = 3
	hits := make(map[string]int, len(candidates))

	for i := 0; i < trials; i++ {
		for _, id := range d.Select(candidates, count) {
			hits[id]++
		}
	}

	// each entrant wins with probability count/n
	expected := float64(trials*count) / float64(len(candidates))
	for _, id := range candidates {
		assert.InDelta(t, expected, float64(hits[id]), expected*0.05, id)
	}
}

func TestSelectConcurrent(t *testing.T) {
	d := New(nil)
	candidates := participants(50)

	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := 0; j < 100; j++ {
				assert.Len(t, d.Select(candidates, 10), 10)
			}
		}()
	}
	wg.Wait()
}
