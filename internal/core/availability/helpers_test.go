// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package availability_test

import (
	"context"
	"io"
	"log/slog"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/taibuivan/aqar/internal/core/availability"
	"github.com/taibuivan/aqar/internal/core/localization"
	"github.com/taibuivan/aqar/internal/platform/dberr"
)

var delivery = time.Date(2027, time.June, 30, 0, 0, 0, 0, time.UTC)
var created = time.Date(2026, time.January, 15, 9, 30, 0, 0, time.UTC)

// salesRow returns a complete sales_availability row.
func salesRow(id int64, project string, grandTotal, builtArea float64) availability.Row {
	return availability.Row{
		"id":                              id,
		"project":                         project,
		"stage":                           "Phase 1",
		"category":                        "Residential",
		"unit_type":                       "Villa",
		"unit_code":                       "V-101",
		"grand_total":                     grandTotal,
		"total_finishing_price":           nil,
		"unit_total_with_finishing_price": nil,
		"planned_delivery_date":           delivery,
		"actual_delivery_date":            nil,
		"completion_progress":             42.5,
		"land_area":                       400.0,
		"built_area":                      builtArea,
		"basement_area":                   nil,
		"uncovered_basement_area":         nil,
		"penthouse_area":                  nil,
		"semi_covered_roof_area":          nil,
		"roof_area":                       60.0,
		"garden_outdoor_area":             120.0,
		"garage_area":                     nil,
		"pergola_area":                    nil,
		"storage_area":                    nil,
		"extra_builtup_area":              nil,
		"finishing_specs":                 "Fully finished",
		"club":                            nil,
		"created_at":                      created,
		"updated_at":                      created,
	}
}

// unitsRow returns a complete units_availability row.
func unitsRow(id int64, project string, nominalPrice, bua float64) availability.Row {
	return availability.Row{
		"id":             id,
		"project":        project,
		"usage_type":     "Residential",
		"roof_area":      nil,
		"garden_area":    35.0,
		"bua":            bua,
		"unit_name":      "A-12",
		"floor":          "3",
		"no_of_bedrooms": int32(3),
		"nominal_price":  nominalPrice,
		"created_at":     nil,
		"updated_at":     nil,
	}
}

func newReconciler(t *testing.T) *availability.Reconciler {
	t.Helper()
	reconciler, err := availability.NewDefaultReconciler()
	require.NoError(t, err)
	return reconciler
}

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

// fakeRepository serves rows from memory.
type fakeRepository struct {
	sales []availability.Row
	units []availability.Row
	err   error
}

func (f *fakeRepository) rows(source availability.Source) []availability.Row {
	if source == availability.SourceSales {
		return f.sales
	}
	return f.units
}

func (f *fakeRepository) ListRows(_ context.Context, source availability.Source) ([]availability.Row, error) {
	if f.err != nil {
		return nil, f.err
	}
	return f.rows(source), nil
}

func (f *fakeRepository) FindRow(_ context.Context, source availability.Source, nativeID int64) (availability.Row, error) {
	if f.err != nil {
		return nil, f.err
	}
	for _, row := range f.rows(source) {
		if row["id"] == nativeID {
			return row, nil
		}
	}
	return nil, dberr.ErrNotFound
}

func newService(t *testing.T, repository *fakeRepository) *availability.Service {
	t.Helper()

	dictionary := localization.NewDictionary(
		localization.Entry{Source: "Villa", Target: "فيلا"},
		localization.Entry{Source: "Mivida", Target: "ميفيدا"},
		localization.Entry{Source: "Residential", Target: "سكني"},
	)
	resolver := localization.NewResolver(dictionary)
	return availability.NewService(repository, newReconciler(t), resolver, discardLogger())
}
