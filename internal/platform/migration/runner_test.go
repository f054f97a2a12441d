// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package migration

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestConvertToPgx5DSN(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"postgres://aqar@db:5432/aqar", "pgx5://aqar@db:5432/aqar"},
		{"postgresql://aqar@db:5432/aqar", "pgx5://aqar@db:5432/aqar"},
		{"pgx5://aqar@db:5432/aqar", "pgx5://aqar@db:5432/aqar"},
		{"host=db user=aqar", "host=db user=aqar"},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, convertToPgx5DSN(tt.in))
	}
}
