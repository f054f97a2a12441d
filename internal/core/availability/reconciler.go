// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package availability

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strconv"
	"strings"

	"github.com/taibuivan/aqar/internal/platform/constants"
	"github.com/taibuivan/aqar/internal/platform/ctxutil"
)

var (
	// ErrDuplicateID means two reconciled records share a canonical id.
	// It indicates a prefix or id-generation defect and is never deduplicated.
	ErrDuplicateID = errors.New("availability: duplicate canonical id")

	// ErrMissingNativeID means a source row has no usable native id.
	ErrMissingNativeID = errors.New("availability: row has no native id")
)

const idSeparator = "_"

// Diagnostic reasons.
const (
	ReasonMissingColumn = "missing_column"
	ReasonInvalidValue  = "invalid_value"
)

// Diagnostic records a tolerated data-quality problem on one row.
type Diagnostic struct {
	Source   Source `json:"source"`
	NativeID int64  `json:"native_id"`
	Column   string `json:"column"`
	Field    Field  `json:"field"`
	Reason   string `json:"reason"`
	Detail   string `json:"detail,omitempty"`
}

// Result is the outcome of one reconciliation.
type Result struct {
	Records     []Record
	Diagnostics []Diagnostic
}

// # Reconciler

// Reconciler merges the sales and units row streams into canonical records.
// It keeps no state between calls and is safe for concurrent use.
type Reconciler struct {
	sales Mapping
	units Mapping
}

// NewReconciler validates both mapping tables and constructs a [Reconciler].
func NewReconciler(sales, units Mapping) (*Reconciler, error) {
	for _, mapping := range []Mapping{sales, units} {
		if err := mapping.Validate(); err != nil {
			return nil, err
		}
	}

	if sales.Source == units.Source || sales.Prefix == units.Prefix {
		return nil, fmt.Errorf("%w: sources must have distinct tags and prefixes", ErrMalformedMapping)
	}

	return &Reconciler{sales: sales, units: units}, nil
}

// NewDefaultReconciler builds a [Reconciler] over the production mapping tables.
func NewDefaultReconciler() (*Reconciler, error) {
	return NewReconciler(SalesMapping(), UnitsMapping())
}

/*
Reconcile maps both row streams onto the canonical schema.

Description: Sales records are emitted before units records and each source
keeps its input order. A mapped column missing from a row, or holding a value
that cannot be converted, leaves the field nil and yields a [Diagnostic]
logged at ALERT level; the row itself is always kept.

Returns:
  - Result: Records and diagnostics
  - error: ErrMissingNativeID or ErrDuplicateID, both fatal for the call
*/
func (r *Reconciler) Reconcile(ctx context.Context, sales, units []Row) (Result, error) {
	result := Result{Records: make([]Record, 0, len(sales)+len(units))}
	seen := make(map[string]struct{}, len(sales)+len(units))

	streams := []struct {
		mapping Mapping
		rows    []Row
	}{
		{r.sales, sales},
		{r.units, units},
	}

	for _, stream := range streams {
		for index, row := range stream.rows {
			record, diagnostics, err := mapRow(stream.mapping, row)
			if err != nil {
				return Result{}, fmt.Errorf("%s row %d: %w", stream.mapping.Source, index, err)
			}

			if _, dup := seen[record.ID]; dup {
				return Result{}, fmt.Errorf("%w: %s", ErrDuplicateID, record.ID)
			}
			seen[record.ID] = struct{}{}

			result.Records = append(result.Records, record)
			result.Diagnostics = append(result.Diagnostics, diagnostics...)
		}
	}

	report(ctx, result.Diagnostics)
	return result, nil
}

// ParseID splits a canonical id into its source and native id.
// The second return is false for unknown prefixes and for ids that are not
// in the exact form Reconcile emits (no sign, no leading zeros).
func (r *Reconciler) ParseID(id string) (Source, int64, bool) {
	prefix, native, found := strings.Cut(id, idSeparator)
	if !found {
		return "", 0, false
	}

	nativeID, err := strconv.ParseInt(native, 10, 64)
	if err != nil || nativeID <= 0 || canonicalID(prefix, nativeID) != id {
		return "", 0, false
	}

	switch prefix {
	case r.sales.Prefix:
		return r.sales.Source, nativeID, true
	case r.units.Prefix:
		return r.units.Source, nativeID, true
	default:
		return "", 0, false
	}
}

// mapRow maps one raw row through its source's mapping table.
func mapRow(mapping Mapping, row Row) (Record, []Diagnostic, error) {
	nativeID, err := toInteger(row[mapping.IDColumn])
	if err != nil || nativeID == nil || *nativeID <= 0 {
		return Record{}, nil, ErrMissingNativeID
	}

	record := Record{
		ID:       canonicalID(mapping.Prefix, *nativeID),
		Source:   mapping.Source,
		NativeID: *nativeID,
	}

	var diagnostics []Diagnostic
	for _, binding := range mapping.Columns {
		value, ok := row[binding.Column]
		if !ok {
			diagnostics = append(diagnostics, Diagnostic{
				Source:   mapping.Source,
				NativeID: *nativeID,
				Column:   binding.Column,
				Field:    binding.Field,
				Reason:   ReasonMissingColumn,
			})
			continue
		}

		if err := canonicalFields[binding.Field](&record, value); err != nil {
			diagnostics = append(diagnostics, Diagnostic{
				Source:   mapping.Source,
				NativeID: *nativeID,
				Column:   binding.Column,
				Field:    binding.Field,
				Reason:   ReasonInvalidValue,
				Detail:   err.Error(),
			})
		}
	}

	return record, diagnostics, nil
}

func canonicalID(prefix string, nativeID int64) string {
	return prefix + idSeparator + strconv.FormatInt(nativeID, 10)
}

func report(ctx context.Context, diagnostics []Diagnostic) {
	if len(diagnostics) == 0 {
		return
	}

	logger := ctxutil.GetLogger(ctx)
	for _, diagnostic := range diagnostics {
		logger.Log(ctx, constants.LevelAlert, "reconcile_"+diagnostic.Reason,
			slog.String("source", string(diagnostic.Source)),
			slog.Int64("native_id", diagnostic.NativeID),
			slog.String("column", diagnostic.Column),
			slog.String("field", string(diagnostic.Field)),
			slog.String("detail", diagnostic.Detail),
		)
	}
}
