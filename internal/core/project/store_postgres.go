// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package project

import (
	"context"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/taibuivan/aqar/internal/platform/database/schema"
	"github.com/taibuivan/aqar/internal/platform/dberr"
)

// # PostgreSQL Repository

type postgresRepository struct {
	pool *pgxpool.Pool
}

// NewPostgresRepository constructs a PostgreSQL backed project store.
func NewPostgresRepository(pool *pgxpool.Pool) Repository {
	return &postgresRepository{pool: pool}
}

// selectColumns lists the project columns in [scanProject] order.
var selectColumns = strings.Join(schema.Project.Columns(), ", ")

/*
List returns a page of projects and the total count.

Description: COUNT(*) OVER() yields the total alongside the page so a single
round-trip serves the pagination metadata.
*/
func (repository *postgresRepository) List(context context.Context, limit, offset int) ([]*Project, int, error) {
	query := fmt.Sprintf(`
		SELECT %s, COUNT(*) OVER() AS total_count
		FROM %s
		ORDER BY %s
		LIMIT $1 OFFSET $2`,
		selectColumns,
		schema.Project.Table,
		schema.Project.ID,
	)

	rows, err := repository.pool.Query(context, query, limit, offset)
	if err != nil {
		return nil, 0, dberr.Wrap(err, "list_projects")
	}
	defer rows.Close()

	var projects []*Project
	total := 0
	for rows.Next() {
		project := &Project{}
		if err := rows.Scan(append(scanTargets(project), &total)...); err != nil {
			return nil, 0, dberr.Wrap(err, "scan_project")
		}
		projects = append(projects, project)
	}

	if err := rows.Err(); err != nil {
		return nil, 0, dberr.Wrap(err, "iterate_projects")
	}
	return projects, total, nil
}

// FindByID returns a single project.
func (repository *postgresRepository) FindByID(context context.Context, id int64) (*Project, error) {
	query := fmt.Sprintf(`SELECT %s FROM %s WHERE %s = $1`,
		selectColumns,
		schema.Project.Table,
		schema.Project.ID,
	)

	project := &Project{}
	err := repository.pool.QueryRow(context, query, id).Scan(scanTargets(project)...)
	if err != nil {
		return nil, dberr.Wrap(err, "find_project")
	}
	return project, nil
}

// scanTargets returns the destinations matching [selectColumns].
func scanTargets(project *Project) []any {
	return []any{
		&project.ID,
		&project.Name,
		&project.NameEn,
		&project.NameAr,
		&project.Location,
		&project.LocationEn,
		&project.LocationAr,
		&project.CreatedAt,
		&project.UpdatedAt,
	}
}
