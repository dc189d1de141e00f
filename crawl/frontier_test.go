package crawl_test

import (
	"fmt"
	"sync"
	"testing"

	"github.com/fwojciec/sitekb/crawl"
	"github.com/stretchr/testify/assert"
)

func TestFrontier_Push_rejects_duplicate_URLs(t *testing.T) {
	t.Parallel()

	f := crawl.NewFrontier(1000, 0.01)

	// First push should succeed
	ok := f.Push("https://example.com/docs/page1")
	assert.True(t, ok, "first push should succeed")

	// Second push of same URL should be rejected
	ok = f.Push("https://example.com/docs/page1")
	assert.False(t, ok, "duplicate URL should be rejected")
}

func TestFrontier_Pop_returns_FIFO_order(t *testing.T) {
	t.Parallel()

	f := crawl.NewFrontier(1000, 0.01)

	f.Push("https://example.com/a")
	f.Push("https://example.com/b")
	f.Push("https://example.com/c")

	url, ok := f.Pop()
	assert.True(t, ok)
	assert.Equal(t, "https://example.com/a", url)

	url, ok = f.Pop()
	assert.True(t, ok)
	assert.Equal(t, "https://example.com/b", url)

	url, ok = f.Pop()
	assert.True(t, ok)
	assert.Equal(t, "https://example.com/c", url)

	_, ok = f.Pop()
	assert.False(t, ok, "pop on empty frontier should return false")
}

func TestFrontier_Push_strips_fragments(t *testing.T) {
	t.Parallel()

	f := crawl.NewFrontier(1000, 0.01)

	assert.True(t, f.Push("https://example.com/docs#intro"))
	assert.False(t, f.Push("https://example.com/docs#usage"), "URLs differing only by fragment are duplicates")

	url, ok := f.Pop()
	assert.True(t, ok)
	assert.Equal(t, "https://example.com/docs", url, "stored URL has the fragment stripped")
}

func TestFrontier_Len_tracks_queue_size(t *testing.T) {
	t.Parallel()

	f := crawl.NewFrontier(1000, 0.01)

	assert.Equal(t, 0, f.Len(), "new frontier should be empty")

	f.Push("https://example.com/a")
	assert.Equal(t, 1, f.Len())

	f.Push("https://example.com/b")
	assert.Equal(t, 2, f.Len())

	f.Pop()
	assert.Equal(t, 1, f.Len())

	f.Pop()
	assert.Equal(t, 0, f.Len())
}

func TestFrontier_Seen_tracks_all_pushed_URLs(t *testing.T) {
	t.Parallel()

	f := crawl.NewFrontier(1000, 0.01)

	assert.False(t, f.Seen("https://example.com/page"), "unseen URL should return false")

	f.Push("https://example.com/page")

	assert.True(t, f.Seen("https://example.com/page"), "pushed URL should be seen")

	// Pop the URL - it should still be seen
	f.Pop()
	assert.True(t, f.Seen("https://example.com/page"), "popped URL should still be seen")
}

func TestFrontier_concurrent_access(t *testing.T) {
	t.Parallel()

	f := crawl.NewFrontier(10000, 0.01)

	const numGoroutines = 10
	const numOpsPerGoroutine = 100

	var wg sync.WaitGroup
	wg.Add(numGoroutines * 2) // pushers + poppers

	for i := 0; i < numGoroutines; i++ {
		go func(id int) {
			defer wg.Done()
			for j := 0; j < numOpsPerGoroutine; j++ {
				f.Push(fmt.Sprintf("https://example.com/%d/%d", id, j))
			}
		}(i)
		go func() {
			defer wg.Done()
			for j := 0; j < numOpsPerGoroutine; j++ {
				f.Pop()
			}
		}()
	}

	wg.Wait()

	// Drain whatever remains; total pushed must equal total popped + remaining.
	remaining := 0
	for {
		if _, ok := f.Pop(); !ok {
			break
		}
		remaining++
	}
	assert.LessOrEqual(t, remaining, numGoroutines*numOpsPerGoroutine)
}

func TestFrontier_concurrent_Push_admits_URL_once(t *testing.T) {
	t.Parallel()

	f := crawl.NewFrontier(1000, 0.01)

	const numGoroutines = 50
	results := make(chan bool, numGoroutines)

	var wg sync.WaitGroup
	wg.Add(numGoroutines)
	for i := 0; i < numGoroutines; i++ {
		go func() {
			defer wg.Done()
			results <- f.Push("https://example.com/contested")
		}()
	}
	wg.Wait()
	close(results)

	admitted := 0
	for ok := range results {
		if ok {
			admitted++
		}
	}
	assert.Equal(t, 1, admitted, "check-and-insert must be atomic: exactly one push wins")
}
