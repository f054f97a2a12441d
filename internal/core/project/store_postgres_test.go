// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package project_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/taibuivan/aqar/internal/core/project"
	"github.com/taibuivan/aqar/internal/platform/database/schema"
	"github.com/taibuivan/aqar/internal/platform/dberr"
	"github.com/taibuivan/aqar/internal/platform/testdb"
)

func TestPostgresRepository(t *testing.T) {
	pool := testdb.Pool(t)
	testdb.Truncate(t, pool, schema.Project.Table)
	ctx := context.Background()

	_, err := pool.Exec(ctx, `
		INSERT INTO project (name, name_ar, location)
		VALUES ('Mivida', 'ميفيدا', 'New Cairo'), ('Uptown Cairo', NULL, NULL), ('Villette', NULL, 'New Cairo')`)
	require.NoError(t, err)

	repository := project.NewPostgresRepository(pool)

	projects, total, err := repository.List(ctx, 2, 1)
	require.NoError(t, err)
	assert.Equal(t, 3, total)
	require.Len(t, projects, 2)
	assert.Equal(t, "Uptown Cairo", *projects[0].Name)
	assert.Nil(t, projects[0].Location)

	found, err := repository.FindByID(ctx, 1)
	require.NoError(t, err)
	assert.Equal(t, "ميفيدا", *found.NameAr)
	assert.Nil(t, found.NameEn)

	_, err = repository.FindByID(ctx, 404)
	assert.ErrorIs(t, err, dberr.ErrNotFound)
}
