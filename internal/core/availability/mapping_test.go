// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package availability_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/taibuivan/aqar/internal/core/availability"
)

func TestDefaultMappings_AreValid(t *testing.T) {
	require.NoError(t, availability.SalesMapping().Validate())
	require.NoError(t, availability.UnitsMapping().Validate())
}

/*
TestMapping_Validate covers each structural defect a mapping table can carry.
*/
func TestMapping_Validate(t *testing.T) {
	valid := func() availability.Mapping {
		return availability.Mapping{
			Source:   availability.SourceUnits,
			Prefix:   "u",
			IDColumn: "id",
			Columns: []availability.ColumnMapping{
				{Column: "bua", Field: availability.FieldBuiltArea},
				{Column: "project", Field: availability.FieldProject},
			},
		}
	}

	tests := []struct {
		name   string
		mutate func(*availability.Mapping)
	}{
		{"empty_source", func(m *availability.Mapping) { m.Source = "" }},
		{"empty_prefix", func(m *availability.Mapping) { m.Prefix = "" }},
		{"prefix_with_separator", func(m *availability.Mapping) { m.Prefix = "u_x" }},
		{"empty_id_column", func(m *availability.Mapping) { m.IDColumn = "" }},
		{"unknown_field", func(m *availability.Mapping) { m.Columns[0].Field = "price_per_metre" }},
		{"id_column_remapped", func(m *availability.Mapping) { m.Columns[0].Column = "id" }},
		{"column_twice", func(m *availability.Mapping) { m.Columns[1].Column = "bua" }},
		{"field_twice", func(m *availability.Mapping) { m.Columns[1].Field = availability.FieldBuiltArea }},
	}

	require.NoError(t, valid().Validate())

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mapping := valid()
			tt.mutate(&mapping)
			assert.ErrorIs(t, mapping.Validate(), availability.ErrMalformedMapping)
		})
	}
}

func TestNewReconciler_RejectsSharedPrefix(t *testing.T) {
	units := availability.UnitsMapping()
	units.Prefix = "s"

	_, err := availability.NewReconciler(availability.SalesMapping(), units)
	assert.ErrorIs(t, err, availability.ErrMalformedMapping)
}
