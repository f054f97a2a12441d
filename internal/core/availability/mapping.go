// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package availability

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/taibuivan/aqar/internal/platform/database/schema"
)

// ErrMalformedMapping reports a defect in a static column mapping table.
var ErrMalformedMapping = errors.New("availability: malformed column mapping")

// Field names a canonical record field. Values match the record's JSON keys.
type Field string

const (
	FieldProject                     Field = "project"
	FieldStage                       Field = "stage"
	FieldCategory                    Field = "category"
	FieldUnitType                    Field = "unit_type"
	FieldUnitCode                    Field = "unit_code"
	FieldUnitName                    Field = "unit_name"
	FieldUsageType                   Field = "usage_type"
	FieldFloor                       Field = "floor"
	FieldBedrooms                    Field = "no_of_bedrooms"
	FieldGrandTotal                  Field = "grand_total"
	FieldTotalFinishingPrice         Field = "total_finishing_price"
	FieldUnitTotalWithFinishingPrice Field = "unit_total_with_finishing_price"
	FieldNominalPrice                Field = "nominal_price"
	FieldPlannedDeliveryDate         Field = "planned_delivery_date"
	FieldActualDeliveryDate          Field = "actual_delivery_date"
	FieldCompletionProgress          Field = "completion_progress"
	FieldLandArea                    Field = "land_area"
	FieldBuiltArea                   Field = "built_area"
	FieldBasementArea                Field = "basement_area"
	FieldUncoveredBasementArea       Field = "uncovered_basement_area"
	FieldPenthouseArea               Field = "penthouse_area"
	FieldSemiCoveredRoofArea         Field = "semi_covered_roof_area"
	FieldRoofArea                    Field = "roof_area"
	FieldGardenArea                  Field = "garden_area"
	FieldGarageArea                  Field = "garage_area"
	FieldPergolaArea                 Field = "pergola_area"
	FieldStorageArea                 Field = "storage_area"
	FieldExtraBuiltupArea            Field = "extra_builtup_area"
	FieldFinishingSpecs              Field = "finishing_specs"
	FieldClub                        Field = "club"
	FieldCreatedAt                   Field = "created_at"
	FieldUpdatedAt                   Field = "updated_at"
)

// # Canonical Field Registry

// assigner converts a raw column value and stores it in the record's slot.
// A nil value leaves the slot nil.
type assigner func(record *Record, value any) error

func textSlot(slot func(*Record) **string) assigner {
	return func(record *Record, value any) error {
		converted, err := toText(value)
		if err != nil {
			return err
		}
		*slot(record) = converted
		return nil
	}
}

func numberSlot(slot func(*Record) **float64) assigner {
	return func(record *Record, value any) error {
		converted, err := toNumber(value)
		if err != nil {
			return err
		}
		*slot(record) = converted
		return nil
	}
}

func integerSlot(slot func(*Record) **int64) assigner {
	return func(record *Record, value any) error {
		converted, err := toInteger(value)
		if err != nil {
			return err
		}
		*slot(record) = converted
		return nil
	}
}

func timeSlot(slot func(*Record) **time.Time) assigner {
	return func(record *Record, value any) error {
		converted, err := toTime(value)
		if err != nil {
			return err
		}
		*slot(record) = converted
		return nil
	}
}

// canonicalFields is the closed set of fields a mapping may target.
var canonicalFields = map[Field]assigner{
	FieldProject:   textSlot(func(r *Record) **string { return &r.Project }),
	FieldStage:     textSlot(func(r *Record) **string { return &r.Stage }),
	FieldCategory:  textSlot(func(r *Record) **string { return &r.Category }),
	FieldUnitType:  textSlot(func(r *Record) **string { return &r.UnitType }),
	FieldUnitCode:  textSlot(func(r *Record) **string { return &r.UnitCode }),
	FieldUnitName:  textSlot(func(r *Record) **string { return &r.UnitName }),
	FieldUsageType: textSlot(func(r *Record) **string { return &r.UsageType }),
	FieldFloor:     textSlot(func(r *Record) **string { return &r.Floor }),
	FieldBedrooms:  integerSlot(func(r *Record) **int64 { return &r.Bedrooms }),

	FieldGrandTotal:                  numberSlot(func(r *Record) **float64 { return &r.GrandTotal }),
	FieldTotalFinishingPrice:         numberSlot(func(r *Record) **float64 { return &r.TotalFinishingPrice }),
	FieldUnitTotalWithFinishingPrice: numberSlot(func(r *Record) **float64 { return &r.UnitTotalWithFinishingPrice }),
	FieldNominalPrice:                numberSlot(func(r *Record) **float64 { return &r.NominalPrice }),

	FieldPlannedDeliveryDate: timeSlot(func(r *Record) **time.Time { return &r.PlannedDeliveryDate }),
	FieldActualDeliveryDate:  timeSlot(func(r *Record) **time.Time { return &r.ActualDeliveryDate }),
	FieldCompletionProgress:  numberSlot(func(r *Record) **float64 { return &r.CompletionProgress }),

	FieldLandArea:              numberSlot(func(r *Record) **float64 { return &r.LandArea }),
	FieldBuiltArea:             numberSlot(func(r *Record) **float64 { return &r.BuiltArea }),
	FieldBasementArea:          numberSlot(func(r *Record) **float64 { return &r.BasementArea }),
	FieldUncoveredBasementArea: numberSlot(func(r *Record) **float64 { return &r.UncoveredBasementArea }),
	FieldPenthouseArea:         numberSlot(func(r *Record) **float64 { return &r.PenthouseArea }),
	FieldSemiCoveredRoofArea:   numberSlot(func(r *Record) **float64 { return &r.SemiCoveredRoofArea }),
	FieldRoofArea:              numberSlot(func(r *Record) **float64 { return &r.RoofArea }),
	FieldGardenArea:            numberSlot(func(r *Record) **float64 { return &r.GardenArea }),
	FieldGarageArea:            numberSlot(func(r *Record) **float64 { return &r.GarageArea }),
	FieldPergolaArea:           numberSlot(func(r *Record) **float64 { return &r.PergolaArea }),
	FieldStorageArea:           numberSlot(func(r *Record) **float64 { return &r.StorageArea }),
	FieldExtraBuiltupArea:      numberSlot(func(r *Record) **float64 { return &r.ExtraBuiltupArea }),

	FieldFinishingSpecs: textSlot(func(r *Record) **string { return &r.FinishingSpecs }),
	FieldClub:           textSlot(func(r *Record) **string { return &r.Club }),
	FieldCreatedAt:      timeSlot(func(r *Record) **time.Time { return &r.CreatedAt }),
	FieldUpdatedAt:      timeSlot(func(r *Record) **time.Time { return &r.UpdatedAt }),
}

// # Mapping Tables

// ColumnMapping binds one native column to one canonical field.
type ColumnMapping struct {
	Column string
	Field  Field
}

// Mapping is the static projection of one source table onto [Record].
// Canonical fields absent from Columns stay nil for every record of the source.
type Mapping struct {
	Source   Source
	Prefix   string
	IDColumn string
	Columns  []ColumnMapping
}

// Validate reports structural defects: empty identifiers, unknown canonical
// fields, and columns or fields bound more than once.
func (m Mapping) Validate() error {
	switch {
	case m.Source == "":
		return fmt.Errorf("%w: empty source", ErrMalformedMapping)
	case m.Prefix == "" || strings.Contains(m.Prefix, idSeparator):
		return fmt.Errorf("%w: %s: invalid prefix %q", ErrMalformedMapping, m.Source, m.Prefix)
	case m.IDColumn == "":
		return fmt.Errorf("%w: %s: empty id column", ErrMalformedMapping, m.Source)
	}

	columns := make(map[string]struct{}, len(m.Columns))
	fields := make(map[Field]struct{}, len(m.Columns))

	for _, binding := range m.Columns {
		if binding.Column == "" || binding.Column == m.IDColumn {
			return fmt.Errorf("%w: %s: invalid column %q", ErrMalformedMapping, m.Source, binding.Column)
		}
		if _, ok := canonicalFields[binding.Field]; !ok {
			return fmt.Errorf("%w: %s: unknown field %q", ErrMalformedMapping, m.Source, binding.Field)
		}
		if _, dup := columns[binding.Column]; dup {
			return fmt.Errorf("%w: %s: column %q mapped twice", ErrMalformedMapping, m.Source, binding.Column)
		}
		if _, dup := fields[binding.Field]; dup {
			return fmt.Errorf("%w: %s: field %q mapped twice", ErrMalformedMapping, m.Source, binding.Field)
		}
		columns[binding.Column] = struct{}{}
		fields[binding.Field] = struct{}{}
	}
	return nil
}

// SalesMapping projects the sales_availability table.
func SalesMapping() Mapping {
	t := schema.SalesAvailability
	return Mapping{
		Source:   SourceSales,
		Prefix:   "s",
		IDColumn: t.ID,
		Columns: []ColumnMapping{
			{t.Project, FieldProject},
			{t.Stage, FieldStage},
			{t.Category, FieldCategory},
			{t.UnitType, FieldUnitType},
			{t.UnitCode, FieldUnitCode},
			{t.GrandTotal, FieldGrandTotal},
			{t.TotalFinishingPrice, FieldTotalFinishingPrice},
			{t.UnitTotalWithFinishingPrice, FieldUnitTotalWithFinishingPrice},
			{t.PlannedDeliveryDate, FieldPlannedDeliveryDate},
			{t.ActualDeliveryDate, FieldActualDeliveryDate},
			{t.CompletionProgress, FieldCompletionProgress},
			{t.LandArea, FieldLandArea},
			{t.BuiltArea, FieldBuiltArea},
			{t.BasementArea, FieldBasementArea},
			{t.UncoveredBasementArea, FieldUncoveredBasementArea},
			{t.PenthouseArea, FieldPenthouseArea},
			{t.SemiCoveredRoofArea, FieldSemiCoveredRoofArea},
			{t.RoofArea, FieldRoofArea},
			{t.GardenOutdoorArea, FieldGardenArea},
			{t.GarageArea, FieldGarageArea},
			{t.PergolaArea, FieldPergolaArea},
			{t.StorageArea, FieldStorageArea},
			{t.ExtraBuiltupArea, FieldExtraBuiltupArea},
			{t.FinishingSpecs, FieldFinishingSpecs},
			{t.Club, FieldClub},
			{t.CreatedAt, FieldCreatedAt},
			{t.UpdatedAt, FieldUpdatedAt},
		},
	}
}

// UnitsMapping projects the units_availability table.
func UnitsMapping() Mapping {
	t := schema.UnitsAvailability
	return Mapping{
		Source:   SourceUnits,
		Prefix:   "u",
		IDColumn: t.ID,
		Columns: []ColumnMapping{
			{t.Project, FieldProject},
			{t.UsageType, FieldUsageType},
			{t.RoofArea, FieldRoofArea},
			{t.GardenArea, FieldGardenArea},
			{t.BUA, FieldBuiltArea},
			{t.UnitName, FieldUnitName},
			{t.Floor, FieldFloor},
			{t.NoOfBedrooms, FieldBedrooms},
			{t.NominalPrice, FieldNominalPrice},
			{t.CreatedAt, FieldCreatedAt},
			{t.UpdatedAt, FieldUpdatedAt},
		},
	}
}
