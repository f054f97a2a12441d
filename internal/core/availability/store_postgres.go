// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package availability

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/taibuivan/aqar/internal/platform/database/schema"
	"github.com/taibuivan/aqar/internal/platform/dberr"
)

// # PostgreSQL Repository

// postgresRepository reads whole rows into column maps so that a column
// dropped from a table surfaces as a missing key rather than a scan error.
type postgresRepository struct {
	pool *pgxpool.Pool
}

// NewPostgresRepository constructs a PostgreSQL backed availability store.
func NewPostgresRepository(pool *pgxpool.Pool) Repository {
	return &postgresRepository{pool: pool}
}

// tables maps each source to its table and primary key column.
var tables = map[Source]struct {
	name string
	id   string
}{
	SourceSales: {schema.SalesAvailability.Table, schema.SalesAvailability.ID},
	SourceUnits: {schema.UnitsAvailability.Table, schema.UnitsAvailability.ID},
}

func (repository *postgresRepository) ListRows(context context.Context, source Source) ([]Row, error) {
	table, ok := tables[source]
	if !ok {
		return nil, fmt.Errorf("availability: unknown source %q", source)
	}

	query := fmt.Sprintf(`SELECT * FROM %s ORDER BY %s`, table.name, table.id)
	rows, err := repository.pool.Query(context, query)
	if err != nil {
		return nil, dberr.Wrap(err, "list_"+string(source)+"_rows")
	}

	maps, err := pgx.CollectRows(rows, pgx.RowToMap)
	if err != nil {
		return nil, dberr.Wrap(err, "collect_"+string(source)+"_rows")
	}

	result := make([]Row, len(maps))
	for i, m := range maps {
		result[i] = m
	}
	return result, nil
}

func (repository *postgresRepository) FindRow(context context.Context, source Source, nativeID int64) (Row, error) {
	table, ok := tables[source]
	if !ok {
		return nil, fmt.Errorf("availability: unknown source %q", source)
	}

	query := fmt.Sprintf(`SELECT * FROM %s WHERE %s = $1`, table.name, table.id)
	rows, err := repository.pool.Query(context, query, nativeID)
	if err != nil {
		return nil, dberr.Wrap(err, "find_"+string(source)+"_row")
	}

	row, err := pgx.CollectExactlyOneRow(rows, pgx.RowToMap)
	if err != nil {
		return nil, dberr.Wrap(err, "find_"+string(source)+"_row")
	}
	return row, nil
}
