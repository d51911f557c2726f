package routing

import (
	"fmt"
	"strconv"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func defaultPagination() Pagination {
	return Pagination{DefaultPageSize: 5, Patterns: DefaultPatterns()}
}

func TestPaginationPageOneIsCanonical(t *testing.T) {
	p := defaultPagination()
	res, err := p.Resolve("tag/go", 1)
	require.NoError(t, err)

	// Page 1 must land in the listing's own path space, not a page/1/
	// variant.
	assert.Equal(t, "tag/go/", res.URL)
	assert.Equal(t, "tag/go/index.html", res.SavePath)
	assert.NotContains(t, res.URL, "page")
}

func TestPaginationLaterPagesCarryTheNumber(t *testing.T) {
	p := defaultPagination()
	first, err := p.Resolve("tag/go", 1)
	require.NoError(t, err)

	for n := 2; n <= 10; n++ {
		t.Run(fmt.Sprintf("page_%d", n), func(t *testing.T) {
			res, err := p.Resolve("tag/go", n)
			require.NoError(t, err)
			assert.Contains(t, res.URL, "/page/"+strconv.Itoa(n)+"/")
			assert.Contains(t, res.SavePath, "/page/"+strconv.Itoa(n)+"/")
			assert.NotEqual(t, first.SavePath, res.SavePath)
		})
	}
}

func TestPaginationFirstMatchWins(t *testing.T) {
	// Overlapping ranges: the earlier entry shadows the later one for the
	// pages it covers.
	p := Pagination{
		DefaultPageSize: 5,
		Patterns: []PaginationPattern{
			{From: 1, To: 3, URL: "{base_name}/early/{number}/", SaveAs: "{base_name}/early/{number}/index.html"},
			{From: 2, URL: "{base_name}/late/{number}/", SaveAs: "{base_name}/late/{number}/index.html"},
		},
	}

	res, err := p.Resolve("posts", 2)
	require.NoError(t, err)
	assert.True(t, strings.Contains(res.URL, "early"), "page 2 should match the first pattern, got %s", res.URL)

	res, err = p.Resolve("posts", 4)
	require.NoError(t, err)
	assert.True(t, strings.Contains(res.URL, "late"), "page 4 should fall through to the second pattern, got %s", res.URL)
}

func TestPaginationResolveErrors(t *testing.T) {
	p := defaultPagination()

	_, err := p.Resolve("posts", 0)
	assert.Error(t, err)

	gap := Pagination{
		DefaultPageSize: 5,
		Patterns:        []PaginationPattern{{From: 1, To: 1, URL: "{base_name}/", SaveAs: "{base_name}/index.html"}},
	}
	_, err = gap.Resolve("posts", 2)
	assert.ErrorIs(t, err, ErrNoPatternMatch)
}

func TestPaginationCheck(t *testing.T) {
	tests := []struct {
		name    string
		p       Pagination
		wantErr bool
	}{
		{
			name: "default table",
			p:    defaultPagination(),
		},
		{
			name:    "zero page size",
			p:       Pagination{Patterns: DefaultPatterns()},
			wantErr: true,
		},
		{
			name:    "empty table",
			p:       Pagination{DefaultPageSize: 5},
			wantErr: true,
		},
		{
			name: "first entry skips page 1",
			p: Pagination{
				DefaultPageSize: 5,
				Patterns:        []PaginationPattern{{From: 2, URL: "{base_name}/page/{number}/", SaveAs: "{base_name}/page/{number}/index.html"}},
			},
			wantErr: true,
		},
		{
			name: "inverted range",
			p: Pagination{
				DefaultPageSize: 5,
				Patterns:        []PaginationPattern{{From: 1, To: 1, URL: "{base_name}/", SaveAs: "{base_name}/index.html"}, {From: 5, To: 2, URL: "x/", SaveAs: "x/index.html"}},
			},
			wantErr: true,
		},
		{
			name: "disagreeing templates",
			p: Pagination{
				DefaultPageSize: 5,
				Patterns:        []PaginationPattern{{From: 1, URL: "{base_name}/", SaveAs: "{base_name}.html"}},
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.p.Check()
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}
