// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package localization

import (
	"strings"

	"github.com/taibuivan/aqar/internal/platform/constants"
)

// Translator is the phrase lookup the resolver falls back to.
// [*Dictionary] satisfies it.
type Translator interface {
	Lookup(phrase string) (string, bool)
}

// Resolver produces display strings for localizable entity fields.
// It holds no state of its own and is safe for concurrent use as long as the
// Translator is.
type Resolver struct {
	translator Translator
}

// NewResolver constructs a [Resolver] backed by translator.
func NewResolver(translator Translator) *Resolver {
	return &Resolver{translator: translator}
}

// Resolve returns the best display string for field in locale.
//
// For "ar" the stored `{field}_ar` value wins, then the dictionary translation
// of the baseline, then the baseline itself. Every other locale returns the
// baseline (`{field}_en`, else `{field}`) untouched. The result is empty only
// when every candidate column is empty.
func (r *Resolver) Resolve(entity Localizable, field, locale string) string {
	variants := entity.LocalizedField(field)

	if locale == constants.LocaleArabic {
		if present(variants.Ar) {
			return *variants.Ar
		}
	}

	baseline := baselineOf(variants)
	if locale != constants.LocaleArabic || baseline == "" {
		return baseline
	}

	if translated, ok := r.translator.Lookup(baseline); ok && translated != "" {
		return translated
	}
	return baseline
}

// ResolveBoth returns the English and Arabic variants of field without any
// dictionary fallback. The Arabic side falls back to the baseline only.
func (r *Resolver) ResolveBoth(entity Localizable, field string) Pair {
	variants := entity.LocalizedField(field)
	baseline := baselineOf(variants)

	pair := Pair{En: baseline, Ar: baseline}
	if present(variants.Ar) {
		pair.Ar = *variants.Ar
	}
	return pair
}

func baselineOf(variants Variants) string {
	if present(variants.En) {
		return *variants.En
	}
	if present(variants.Base) {
		return *variants.Base
	}
	return ""
}

// present treats NULL and whitespace-only values as missing.
func present(value *string) bool {
	return value != nil && strings.TrimSpace(*value) != ""
}
