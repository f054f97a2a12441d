// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package availability

import "context"

// # Availability Data Access

// Repository loads raw rows from the two source tables.
type Repository interface {

	/*
		ListRows returns every row of the source table in primary key order.

		Returns:
		  - []Row: Column-keyed raw rows
		  - error: Database retrieval failures
	*/
	ListRows(context context.Context, source Source) ([]Row, error)

	/*
		FindRow returns a single row by its native id.

		Returns:
		  - Row: Column-keyed raw row
		  - error: ErrNotFound if no row has the id
	*/
	FindRow(context context.Context, source Source, nativeID int64) (Row, error)
}
