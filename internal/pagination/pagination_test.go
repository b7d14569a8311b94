package pagination

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParsePage(t *testing.T) {
	t.Parallel()

	tests := []struct {
		raw  string
		want int
	}{
		{raw: "", want: 1},
		{raw: "1", want: 1},
		{raw: "3", want: 3},
		{raw: " 4 ", want: 4},
		{raw: "0", want: 1},
		{raw: "-2", want: 1},
		{raw: "abc", want: 1},
		{raw: "2abc", want: 1},
		{raw: "1.5", want: 1},
	}

	for _, tc := range tests {
		t.Run(tc.raw, func(t *testing.T) {
			assert.Equal(t, tc.want, ParsePage(tc.raw))
		})
	}
}

func TestPaginatePageCount(t *testing.T) {
	t.Parallel()

	sizes := []int{1, 3, 20, 25}
	for _, size := range sizes {
		for total := 0; total <= 100; total++ {
			w, err := Paginate(total, size, 1)
			require.NoError(t, err)

			want := total / size
			if total%size != 0 {
				want++
			}
			assert.Equal(t, want, w.Pages, "total=%d size=%d", total, size)
			assert.Equal(t, 0, w.Offset, "first page offset must be zero")
			assert.Equal(t, total, w.Count)
			assert.Equal(t, size, w.Limit)
		}
	}
}

func TestPaginateOffset(t *testing.T) {
	t.Parallel()

	w, err := Paginate(95, 20, 3)
	require.NoError(t, err)
	assert.Equal(t, 40, w.Offset)
	assert.Equal(t, 5, w.Pages)

	w, err = Paginate(95, 20, 5)
	require.NoError(t, err)
	assert.Equal(t, 80, w.Offset)
}

func TestPaginatePageNotFound(t *testing.T) {
	t.Parallel()

	for pages := 1; pages <= 5; pages++ {
		total := pages * 20
		for page := pages + 1; page <= pages+3; page++ {
			_, err := Paginate(total, 20, page)
			assert.ErrorIs(t, err, ErrPageNotFound, "pages=%d page=%d", pages, page)
		}
	}
}

func TestPaginateEmptyCollection(t *testing.T) {
	t.Parallel()

	for _, page := range []int{1, 2, 3, 1000} {
		w, err := Paginate(0, 20, page)
		require.NoError(t, err, "page %d", page)
		assert.Equal(t, 0, w.Pages)
		assert.Equal(t, 1, w.Page, "page %d", page)
		assert.Equal(t, 0, w.Offset, "page %d", page)
		assert.False(t, w.HasNext, "page %d", page)
		assert.False(t, w.HasPrev, "page %d", page)
	}
}

func TestPaginateNavigation(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		total    int
		page     int
		wantNext bool
		wantPrev bool
	}{
		{name: "single page", total: 12, page: 1},
		{name: "exactly one page", total: 20, page: 1},
		{name: "first of three", total: 50, page: 1, wantNext: true},
		{name: "middle of three", total: 50, page: 2, wantNext: true, wantPrev: true},
		{name: "last of three", total: 50, page: 3, wantPrev: true},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			w, err := Paginate(tc.total, 20, tc.page)
			require.NoError(t, err)
			assert.Equal(t, tc.wantNext, w.HasNext)
			assert.Equal(t, tc.wantPrev, w.HasPrev)
			if w.HasNext {
				assert.Equal(t, tc.page+1, w.NextPage())
			}
			if w.HasPrev {
				assert.Equal(t, tc.page-1, w.PrevPage())
			}
		})
	}
}

func TestPaginateNavigationProperty(t *testing.T) {
	t.Parallel()

	for total := 0; total <= 90; total += 7 {
		first, err := Paginate(total, 10, 1)
		require.NoError(t, err)
		for page := 1; page <= max(first.Pages, 1); page++ {
			w, err := Paginate(total, 10, page)
			require.NoError(t, err)
			assert.Equal(t, page < w.Pages, w.HasNext)
			assert.Equal(t, page >= 2, w.HasPrev)
			if w.Pages <= 1 {
				assert.False(t, w.HasNext)
				assert.False(t, w.HasPrev)
			}
		}
	}
}

func TestPaginateInvalidPageSize(t *testing.T) {
	t.Parallel()

	_, err := Paginate(10, 0, 1)
	assert.ErrorIs(t, err, ErrInvalidPageSize)

	_, err = Paginate(10, -5, 1)
	assert.ErrorIs(t, err, ErrInvalidPageSize)
}

func TestPaginateClampsRequestedPage(t *testing.T) {
	t.Parallel()

	w, err := Paginate(30, 20, 0)
	require.NoError(t, err)
	assert.Equal(t, 1, w.Page)
	assert.Equal(t, 0, w.Offset)

	w, err = Paginate(30, 20, -3)
	require.NoError(t, err)
	assert.Equal(t, 1, w.Page)
}

func TestOffsetSaturates(t *testing.T) {
	t.Parallel()

	assert.Equal(t, 0, Offset(1, 20))
	assert.Equal(t, 20, Offset(2, 20))
	assert.Equal(t, 0, Offset(3, 0))
	assert.Equal(t, math.MaxInt, Offset(math.MaxInt, 20))

	_, err := Paginate(12, 20, math.MaxInt)
	assert.ErrorIs(t, err, ErrPageNotFound)
}
