// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package availability

import (
	"cmp"
	"slices"
	"strings"
	"time"

	"github.com/taibuivan/aqar/pkg/pagination"
	"github.com/taibuivan/aqar/pkg/pointer"
)

// # Listing Query

// Query narrows and orders the reconciled sequence. Zero values disable a filter.
type Query struct {
	Source    Source
	Projects  []string
	UnitType  string
	UsageType string
	MinPrice  *float64
	MaxPrice  *float64

	// Sort is one of [SortKeys], optionally prefixed with "-" for descending.
	Sort string

	Page pagination.Params
}

// comparator orders two records on one key. Nil values always sort last,
// whatever the direction.
type comparator func(a, b *Record, descending bool) int

var sortKeys = map[string]comparator{
	"id": func(a, b *Record, descending bool) int {
		return direct(cmp.Or(
			cmp.Compare(sourceRank(a.Source), sourceRank(b.Source)),
			cmp.Compare(a.NativeID, b.NativeID),
		), descending)
	},
	"project": func(a, b *Record, descending bool) int {
		return compareOptional(lower(a.Project), lower(b.Project), descending)
	},
	"price": func(a, b *Record, descending bool) int {
		return compareOptional(a.Price(), b.Price(), descending)
	},
	"built_area": func(a, b *Record, descending bool) int {
		return compareOptional(a.BuiltArea, b.BuiltArea, descending)
	},
	"created_at": func(a, b *Record, descending bool) int {
		return compareTime(a.CreatedAt, b.CreatedAt, descending)
	},
	"planned_delivery_date": func(a, b *Record, descending bool) int {
		return compareTime(a.PlannedDeliveryDate, b.PlannedDeliveryDate, descending)
	},
}

// SortKeys lists the accepted sort keys in a stable order.
func SortKeys() []string {
	keys := make([]string, 0, len(sortKeys))
	for key := range sortKeys {
		keys = append(keys, key)
	}
	slices.Sort(keys)
	return keys
}

// parseSort splits "-price" into its key and direction.
func parseSort(raw string) (string, bool) {
	if key, found := strings.CutPrefix(raw, "-"); found {
		return key, true
	}
	return raw, false
}

// Matches reports whether record passes every filter of the query.
func (q Query) Matches(record *Record) bool {
	if q.Source != "" && record.Source != q.Source {
		return false
	}
	if len(q.Projects) > 0 && !slices.ContainsFunc(q.Projects, func(project string) bool {
		return equalFold(record.Project, project)
	}) {
		return false
	}
	if q.UnitType != "" && !equalFold(record.UnitType, q.UnitType) {
		return false
	}
	if q.UsageType != "" && !equalFold(record.UsageType, q.UsageType) {
		return false
	}

	if q.MinPrice != nil || q.MaxPrice != nil {
		price := record.Price()
		if price == nil {
			return false
		}
		if q.MinPrice != nil && *price < *q.MinPrice {
			return false
		}
		if q.MaxPrice != nil && *price > *q.MaxPrice {
			return false
		}
	}
	return true
}

// Order sorts records in place. An empty or unknown key keeps the
// source-major reconciliation order.
func (q Query) Order(records []Record) {
	key, descending := parseSort(q.Sort)
	compare, ok := sortKeys[key]
	if !ok {
		return
	}

	slices.SortStableFunc(records, func(a, b Record) int {
		return compare(&a, &b, descending)
	})
}

func compareOptional[T cmp.Ordered](a, b *T, descending bool) int {
	switch {
	case a == nil && b == nil:
		return 0
	case a == nil:
		return 1
	case b == nil:
		return -1
	}
	return direct(cmp.Compare(*a, *b), descending)
}

func compareTime(a, b *time.Time, descending bool) int {
	switch {
	case a == nil && b == nil:
		return 0
	case a == nil:
		return 1
	case b == nil:
		return -1
	}
	return direct(a.Compare(*b), descending)
}

func direct(result int, descending bool) int {
	if descending {
		return -result
	}
	return result
}

func sourceRank(source Source) int {
	if source == SourceSales {
		return 0
	}
	return 1
}

func lower(value *string) *string {
	if value == nil {
		return nil
	}
	lowered := strings.ToLower(*value)
	return &lowered
}

// equalFold compares a nullable column with a non-empty filter value.
func equalFold(value *string, want string) bool {
	return strings.EqualFold(strings.TrimSpace(pointer.Val(value)), strings.TrimSpace(want))
}
