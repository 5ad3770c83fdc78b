package utils

import (
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseLimit(t *testing.T) {
	cases := []struct {
		query string
		want  int64
	}{
		{"", 10},
		{"?limit=abc", 10},
		{"?limit=0", 10},
		{"?limit=-3", 10},
		{"?limit=25", 25},
		{"?limit=500", 50},
	}
	for _, tc := range cases {
		r := httptest.NewRequest("GET", "/api/tours"+tc.query, nil)
		assert.Equal(t, tc.want, ParseLimit(r, 10, 50), "query %q", tc.query)
	}
}

func TestParsePagination(t *testing.T) {
	r := httptest.NewRequest("GET", "/api/admin/tours?page=3&limit=20", nil)
	skip, limit := ParsePagination(r, 10, 100)
	assert.Equal(t, int64(40), skip)
	assert.Equal(t, int64(20), limit)

	r = httptest.NewRequest("GET", "/api/admin/tours", nil)
	skip, limit = ParsePagination(r, 10, 100)
	assert.Equal(t, int64(0), skip)
	assert.Equal(t, int64(10), limit)

	r = httptest.NewRequest("GET", "/api/admin/tours?page=-2", nil)
	skip, _ = ParsePagination(r, 10, 100)
	assert.Equal(t, int64(0), skip)
}
