package table

import (
	"testing"

	"github.com/cmlabs-hris/hris-console-core/internal/domain/table"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPaginationState_TotalPages(t *testing.T) {
	cases := []struct {
		state table.PaginationState
		want  int
	}{
		{table.PaginationState{Page: 1, PageSize: 10, TotalCount: 0}, 0},
		{table.PaginationState{Page: 1, PageSize: 10, TotalCount: 1}, 1},
		{table.PaginationState{Page: 1, PageSize: 10, TotalCount: 10}, 1},
		{table.PaginationState{Page: 1, PageSize: 10, TotalCount: 11}, 2},
		{table.PaginationState{Page: 1, PageSize: 0, TotalCount: 11}, 0},
	}
	for _, c := range cases {
		assert.Equal(t, c.want, c.state.TotalPages(), "%+v", c.state)
	}
}

func TestPagination_ExternalReportsOnly(t *testing.T) {
	var reported []int
	p := NewPagination(PaginationOptions{
		Page:       External(2, func(page int) { reported = append(reported, page) }),
		TotalPages: 3,
		TotalCount: 25,
		PageSize:   10,
	})

	require.NoError(t, p.ChangePage(3))
	assert.Equal(t, []int{3}, reported)
	assert.Equal(t, 2, p.Page(), "the caller owns the page")

	// No clamping: out-of-range pages are reported as-is.
	require.NoError(t, p.ChangePage(99))
	assert.Equal(t, []int{3, 99}, reported)

	view := p.View()
	assert.True(t, view.HasPrev)
	assert.True(t, view.HasNext)
	assert.False(t, view.Disabled)
}

func TestPagination_Internal(t *testing.T) {
	p := NewPagination(PaginationOptions{
		Page:       Internal(1),
		TotalCount: 45,
		PageSize:   20,
	})
	assert.Equal(t, 3, p.View().TotalPages)
	assert.Equal(t, "1-20 of 45 results", p.View().Showing)

	require.NoError(t, p.NextPage())
	require.NoError(t, p.NextPage())
	require.NoError(t, p.NextPage())
	assert.Equal(t, 3, p.Page(), "next stops at the last page")
	assert.Equal(t, 40, p.Offset())
	assert.Equal(t, "41-45 of 45 results", p.View().Showing)

	require.NoError(t, p.ChangePageSize(50))
	assert.Equal(t, 1, p.Page())
	assert.Equal(t, 1, p.View().TotalPages)

	require.NoError(t, p.PrevPage())
	assert.Equal(t, 1, p.Page())

	assert.Equal(t, 1, Internal(0).page)
	assert.False(t, Internal(3).IsExternal())
}

func TestPagination_LoadingDisables(t *testing.T) {
	called := false
	p := NewPagination(PaginationOptions{
		Page:             External(1, func(int) { called = true }),
		TotalPages:       2,
		TotalCount:       15,
		PageSize:         10,
		Loading:          true,
		OnPageSizeChange: func(int) { called = true },
	})

	view := p.View()
	assert.True(t, view.Disabled)
	assert.Equal(t, 2, view.TotalPages, "still reported while loading")

	assert.ErrorIs(t, p.ChangePage(2), table.ErrPaginationDisabled)
	assert.ErrorIs(t, p.ChangePageSize(25), table.ErrPaginationDisabled)
	assert.False(t, called)
}

func TestPagination_PageSizeErrors(t *testing.T) {
	p := NewPagination(PaginationOptions{Page: External(1, nil), TotalPages: 1, TotalCount: 3, PageSize: 10})

	assert.ErrorIs(t, p.ChangePageSize(0), table.ErrInvalidPageSize)
	assert.ErrorIs(t, p.ChangePageSize(25), table.ErrPageSizeChangeUnsupported)
}

func TestShowing(t *testing.T) {
	assert.Equal(t, "0 results", showing(1, 10, 0))
	assert.Equal(t, "1-10 of 25 results", showing(1, 10, 25))
	assert.Equal(t, "21-25 of 25 results", showing(3, 10, 25))
	assert.Equal(t, "0 of 25 results", showing(9, 10, 25))
}
