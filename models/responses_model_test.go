package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

// TestNewPagedResponse_TotalPages verifies the page count derivation
func TestNewPagedResponse_TotalPages(t *testing.T) {
	cases := []struct {
		name       string
		totalCount int64
		pageSize   int
		expected   int
	}{
		{"empty", 0, 10, 0},
		{"exact fit", 20, 10, 2},
		{"partial last page", 21, 10, 3},
		{"single page", 3, 10, 1},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			resp := NewPagedResponse([]Moto{}, tc.totalCount, 1, tc.pageSize)
			assert.Equal(t, tc.expected, resp.TotalPages)
		})
	}
}

// TestAddLink_SkipsEmptyHref verifies empty hrefs never produce links
func TestAddLink_SkipsEmptyHref(t *testing.T) {
	resp := NewPagedResponse([]Moto{}, 0, 1, 10)
	resp.AddLink("", "self", "GET")
	assert.Empty(t, resp.Links)

	resp.AddLink("/api/Moto?pageNumber=1&pageSize=10", "self", "GET")
	assert.Len(t, resp.Links, 1)
	assert.Equal(t, "self", resp.Links[0].Rel)

	resource := NewResourceResponse(&Moto{})
	resource.AddLink("", "self", "GET")
	assert.Empty(t, resource.Links)
}
