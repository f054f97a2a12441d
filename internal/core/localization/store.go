// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package localization

import "context"

// Repository persists dictionary additions made at runtime so that they
// survive restarts. Entries are returned in the order they were appended.
type Repository interface {
	AppendEntry(context context.Context, entry Entry) error
	ListEntries(context context.Context) ([]Entry, error)
}
