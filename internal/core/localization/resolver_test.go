// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package localization_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/taibuivan/aqar/internal/core/localization"
	"github.com/taibuivan/aqar/pkg/pointer"
)

// unit is a minimal localizable entity with explicit variant columns.
type unit struct {
	UnitType   *string
	UnitTypeEn *string
	UnitTypeAr *string
}

func (u unit) LocalizedField(field string) localization.Variants {
	if field != "unit_type" {
		return localization.Variants{}
	}
	return localization.Variants{Base: u.UnitType, En: u.UnitTypeEn, Ar: u.UnitTypeAr}
}

/*
TestResolver_Resolve walks the fallback order for both locales.
*/
func TestResolver_Resolve(t *testing.T) {
	resolver := localization.NewResolver(localization.NewDictionary(
		localization.Entry{Source: "Villa", Target: "فيلا"},
		localization.Entry{Source: "Apartment", Target: "شقة"},
	))

	tests := []struct {
		name   string
		entity unit
		locale string
		want   string
	}{
		{"en_uses_stored_english", unit{UnitTypeEn: pointer.To("Villa")}, "en", "Villa"},
		{"en_ignores_arabic_and_dictionary", unit{UnitTypeEn: pointer.To("Villa"), UnitTypeAr: pointer.To("فيلا فاخرة")}, "en", "Villa"},
		{"en_falls_back_to_base", unit{UnitType: pointer.To("Apartment")}, "en", "Apartment"},
		{"ar_prefers_stored_arabic", unit{UnitTypeEn: pointer.To("Villa"), UnitTypeAr: pointer.To("فيلا فاخرة")}, "ar", "فيلا فاخرة"},
		{"ar_dictionary_fallback", unit{UnitTypeEn: pointer.To("Villa")}, "ar", "فيلا"},
		{"ar_dictionary_on_base_column", unit{UnitType: pointer.To("apartment")}, "ar", "شقة"},
		{"ar_empty_arabic_is_missing", unit{UnitTypeEn: pointer.To("Villa"), UnitTypeAr: pointer.To("  ")}, "ar", "فيلا"},
		{"ar_unknown_phrase_unchanged", unit{UnitTypeEn: pointer.To("Unknown Phrase")}, "ar", "Unknown Phrase"},
		{"english_beats_base", unit{UnitType: pointer.To("Apartment"), UnitTypeEn: pointer.To("Villa")}, "en", "Villa"},
		{"empty_english_falls_to_base", unit{UnitType: pointer.To("Apartment"), UnitTypeEn: pointer.To("")}, "en", "Apartment"},
		{"unsupported_locale_is_english", unit{UnitTypeEn: pointer.To("Villa"), UnitTypeAr: pointer.To("فيلا فاخرة")}, "fr", "Villa"},
		{"all_empty", unit{}, "ar", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, resolver.Resolve(tt.entity, "unit_type", tt.locale))
		})
	}
}

/*
TestResolver_Deterministic verifies identical inputs yield identical output.
*/
func TestResolver_Deterministic(t *testing.T) {
	resolver := localization.NewResolver(localization.NewDictionary(localization.Entry{Source: "Villa", Target: "فيلا"}))
	entity := unit{UnitTypeEn: pointer.To("VILLA")}

	first := resolver.Resolve(entity, "unit_type", "ar")
	for i := 0; i < 10; i++ {
		assert.Equal(t, first, resolver.Resolve(entity, "unit_type", "ar"))
	}
	assert.Equal(t, "فيلا", first)
}

/*
TestResolver_ResolveBoth verifies that the export view never consults the dictionary.
*/
func TestResolver_ResolveBoth(t *testing.T) {
	resolver := localization.NewResolver(localization.NewDictionary(localization.Entry{Source: "Villa", Target: "فيلا"}))

	pair := resolver.ResolveBoth(unit{UnitTypeEn: pointer.To("Villa")}, "unit_type")
	assert.Equal(t, localization.Pair{En: "Villa", Ar: "Villa"}, pair)

	pair = resolver.ResolveBoth(unit{UnitType: pointer.To("Villa"), UnitTypeAr: pointer.To("فيلا فاخرة")}, "unit_type")
	assert.Equal(t, localization.Pair{En: "Villa", Ar: "فيلا فاخرة"}, pair)

	pair = resolver.ResolveBoth(unit{}, "unit_type")
	assert.Equal(t, localization.Pair{}, pair)
}
