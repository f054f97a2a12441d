// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package pagination_test

import (
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/taibuivan/aqar/pkg/pagination"
)

func TestFromRequest(t *testing.T) {
	tests := []struct {
		target string
		want   pagination.Params
	}{
		{"/", pagination.Params{Page: 1, Limit: 20}},
		{"/?page=3&limit=50", pagination.Params{Page: 3, Limit: 50}},
		{"/?page=-2&limit=500", pagination.Params{Page: 1, Limit: 20}},
		{"/?page=abc&limit=0", pagination.Params{Page: 1, Limit: 20}},
	}

	for _, tt := range tests {
		t.Run(tt.target, func(t *testing.T) {
			assert.Equal(t, tt.want, pagination.FromRequest(httptest.NewRequest("GET", tt.target, nil)))
		})
	}
}

func TestNewMeta(t *testing.T) {
	assert.Equal(t, pagination.Meta{Page: 2, Limit: 20, Total: 41, TotalPages: 3}, pagination.NewMeta(2, 20, 41))
	assert.Equal(t, 0, pagination.NewMeta(1, 0, 41).TotalPages)
}

/*
TestWindow covers the first, last, partial and out-of-range pages.
*/
func TestWindow(t *testing.T) {
	items := []int{1, 2, 3, 4, 5}

	tests := []struct {
		name   string
		params pagination.Params
		want   []int
	}{
		{"first", pagination.Params{Page: 1, Limit: 2}, []int{1, 2}},
		{"last_partial", pagination.Params{Page: 3, Limit: 2}, []int{5}},
		{"beyond", pagination.Params{Page: 4, Limit: 2}, []int{}},
		{"unbounded", pagination.Params{Page: 1, Limit: 0}, []int{1, 2, 3, 4, 5}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, pagination.Window(items, tt.params))
		})
	}
}
