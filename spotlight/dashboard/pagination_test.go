package dashboard

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func ints(n int) []int {
	out := make([]int, n)
	for i := range out {
		out[i] = i
	}
	return out
}

func TestPaginateConcatenatesToInput(t *testing.T) {
	for _, n := range []int{0, 1, 9, 10, 11, 25, 30} {
		items := ints(n)
		pages := TotalPages(n, DefaultPageSize)
		var got []int
		for p := 1; p <= pages; p++ {
			page := Paginate(items, p, DefaultPageSize)
			if p < pages {
				assert.Len(t, page, DefaultPageSize, "n=%d page=%d", n, p)
			} else {
				assert.NotEmpty(t, page)
				assert.LessOrEqual(t, len(page), DefaultPageSize)
			}
			got = append(got, page...)
		}
		assert.Equal(t, len(items), len(got), "n=%d", n)
		if n > 0 {
			assert.Equal(t, items, got)
		}
	}
}

func TestPaginateOutOfRange(t *testing.T) {
	items := ints(25)
	assert.Equal(t, items[:10], Paginate(items, 0, 10))
	assert.Empty(t, Paginate(items, 4, 10))
	assert.Equal(t, items[20:], Paginate(items, 3, 10))
	assert.Len(t, Paginate(items, 1, 0), DefaultPageSize)
}

func TestTotalPages(t *testing.T) {
	assert.Equal(t, 0, TotalPages(0, 10))
	assert.Equal(t, 1, TotalPages(1, 10))
	assert.Equal(t, 1, TotalPages(10, 10))
	assert.Equal(t, 2, TotalPages(11, 10))
	assert.Equal(t, 3, TotalPages(25, 10))
}

func TestPagerNavigation(t *testing.T) {
	p := NewPager(10)
	assert.Equal(t, 1, p.Page())
	assert.False(t, p.HasPrev())
	assert.False(t, p.Prev())

	assert.True(t, p.Next(25))
	assert.True(t, p.Next(25))
	assert.Equal(t, 3, p.Page())
	assert.False(t, p.Next(25))
	assert.False(t, p.HasNext(25))

	assert.Equal(t, PageInfo{Page: 3, Pages: 3, Start: 21, End: 25, Total: 25}, p.Info(25))

	assert.True(t, p.Prev())
	assert.Equal(t, 2, p.Page())
}

func TestPagerClampAndReset(t *testing.T) {
	p := NewPager(10)
	p.SetPage(5, 42)
	assert.Equal(t, 5, p.Page())

	// the list shrank under a new filter
	p.Clamp(12)
	assert.Equal(t, 2, p.Page())

	p.Clamp(0)
	assert.Equal(t, 1, p.Page())
	assert.Equal(t, PageInfo{Page: 1, Pages: 0, Total: 0}, p.Info(0))

	p.SetPage(-3, 42)
	assert.Equal(t, 1, p.Page())

	p.SetPage(3, 42)
	p.Reset()
	assert.Equal(t, 1, p.Page())
}

func TestApplyPage(t *testing.T) {
	p := NewPager(4)
	p.SetPage(2, 10)
	assert.Equal(t, []int{4, 5, 6, 7}, ApplyPage(p, ints(10)))
}
