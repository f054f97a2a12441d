// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

/*
Package availability merges the sales and units inventories into one
canonical listing.

The two source tables evolved independently: they name columns differently
(bua vs built_area), carry disjoint column sets and disagree on nullability.
The [Reconciler] maps both onto [Record], whose shape is the union of the two
column sets; a field that a source does not define is always nil, never zero.

# Identity

Native ids collide across the two tables, so every record gets a canonical
id of the form "<prefix>_<native id>", with "s" for sales rows and "u" for
units rows.
*/
package availability

import (
	"time"

	"github.com/taibuivan/aqar/internal/core/localization"
)

// Source tags the table a record originated from.
type Source string

const (
	SourceSales Source = "sales"
	SourceUnits Source = "units"
)

// Row is one already-deserialized source row keyed by column name.
// A missing key means the column does not exist in the source; a nil value
// means the column exists but holds NULL.
type Row map[string]any

// Record is the canonical, source-agnostic availability entry.
// It is rebuilt on every reconciliation and never persisted.
type Record struct {
	ID       string `json:"id"`
	Source   Source `json:"source"`
	NativeID int64  `json:"-"`

	// Classification
	Project   *string `json:"project"`
	Stage     *string `json:"stage"`
	Category  *string `json:"category"`
	UnitType  *string `json:"unit_type"`
	UnitCode  *string `json:"unit_code"`
	UnitName  *string `json:"unit_name"`
	UsageType *string `json:"usage_type"`
	Floor     *string `json:"floor"`
	Bedrooms  *int64  `json:"no_of_bedrooms"`

	// Pricing
	GrandTotal                  *float64 `json:"grand_total"`
	TotalFinishingPrice         *float64 `json:"total_finishing_price"`
	UnitTotalWithFinishingPrice *float64 `json:"unit_total_with_finishing_price"`
	NominalPrice                *float64 `json:"nominal_price"`

	// Delivery
	PlannedDeliveryDate *time.Time `json:"planned_delivery_date"`
	ActualDeliveryDate  *time.Time `json:"actual_delivery_date"`
	CompletionProgress  *float64   `json:"completion_progress"`

	// Areas (square metres)
	LandArea              *float64 `json:"land_area"`
	BuiltArea             *float64 `json:"built_area"`
	BasementArea          *float64 `json:"basement_area"`
	UncoveredBasementArea *float64 `json:"uncovered_basement_area"`
	PenthouseArea         *float64 `json:"penthouse_area"`
	SemiCoveredRoofArea   *float64 `json:"semi_covered_roof_area"`
	RoofArea              *float64 `json:"roof_area"`
	GardenArea            *float64 `json:"garden_area"`
	GarageArea            *float64 `json:"garage_area"`
	PergolaArea           *float64 `json:"pergola_area"`
	StorageArea           *float64 `json:"storage_area"`
	ExtraBuiltupArea      *float64 `json:"extra_builtup_area"`

	// Extras
	FinishingSpecs *string `json:"finishing_specs"`
	Club           *string `json:"club"`

	CreatedAt *time.Time `json:"created_at"`
	UpdatedAt *time.Time `json:"updated_at"`

	// Display holds locale-resolved labels, keyed by field name.
	Display map[Field]string `json:"display,omitempty"`
}

// Price returns the record's effective price: the sales grand total, else the
// total including finishing, else the units nominal price.
func (r *Record) Price() *float64 {
	switch {
	case r.GrandTotal != nil:
		return r.GrandTotal
	case r.UnitTotalWithFinishingPrice != nil:
		return r.UnitTotalWithFinishingPrice
	default:
		return r.NominalPrice
	}
}

// displayFields are the text fields that receive a localized label.
var displayFields = []Field{FieldProject, FieldStage, FieldCategory, FieldUnitType, FieldUsageType}

// LocalizedField implements [localization.Localizable]. Source tables store a
// single untranslated column per field, so only the base variant is set.
func (r *Record) LocalizedField(field string) localization.Variants {
	switch Field(field) {
	case FieldProject:
		return localization.Variants{Base: r.Project}
	case FieldStage:
		return localization.Variants{Base: r.Stage}
	case FieldCategory:
		return localization.Variants{Base: r.Category}
	case FieldUnitType:
		return localization.Variants{Base: r.UnitType}
	case FieldUsageType:
		return localization.Variants{Base: r.UsageType}
	default:
		return localization.Variants{}
	}
}

// area returns the value of an area field, or nil for other fields.
func (r *Record) area(field Field) *float64 {
	switch field {
	case FieldLandArea:
		return r.LandArea
	case FieldBuiltArea:
		return r.BuiltArea
	case FieldGardenArea:
		return r.GardenArea
	case FieldRoofArea:
		return r.RoofArea
	default:
		return nil
	}
}
