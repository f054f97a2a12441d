// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package project

import "context"

// # Project Data Access

// Repository defines the data access contract for projects.
type Repository interface {

	/*
		List returns a page of projects ordered by id and the total count.

		Returns:
		  - []*Project: The requested page
		  - int: Total number of projects
		  - error: Database retrieval failures
	*/
	List(context context.Context, limit, offset int) ([]*Project, int, error)

	/*
		FindByID returns the project with the given id.

		Returns:
		  - *Project: The project row
		  - error: ErrNotFound if missing
	*/
	FindByID(context context.Context, id int64) (*Project, error)
}
