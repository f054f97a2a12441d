// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

/*
Package project exposes the development projects behind the inventory.

Project names and locations are stored in up to three columns each: the
untranslated original and optional English and Arabic variants. Display
strings are produced by the localization resolver; raw columns never leave
this package.
*/
package project

import (
	"time"

	"github.com/taibuivan/aqar/internal/core/localization"
)

// Localizable field names.
const (
	FieldName     = "name"
	FieldLocation = "location"
)

// Project is a development project row.
type Project struct {
	ID         int64
	Name       *string
	NameEn     *string
	NameAr     *string
	Location   *string
	LocationEn *string
	LocationAr *string
	CreatedAt  time.Time
	UpdatedAt  time.Time
}

// LocalizedField implements [localization.Localizable].
func (p *Project) LocalizedField(field string) localization.Variants {
	switch field {
	case FieldName:
		return localization.Variants{Base: p.Name, En: p.NameEn, Ar: p.NameAr}
	case FieldLocation:
		return localization.Variants{Base: p.Location, En: p.LocationEn, Ar: p.LocationAr}
	default:
		return localization.Variants{}
	}
}

// View is the API representation of a project in one display locale.
// Names and Locations carry both variants and are only set on detail reads.
type View struct {
	ID        int64              `json:"id"`
	Name      string             `json:"name"`
	Location  string             `json:"location"`
	Names     *localization.Pair `json:"names,omitempty"`
	Locations *localization.Pair `json:"locations,omitempty"`
	CreatedAt time.Time          `json:"created_at"`
	UpdatedAt time.Time          `json:"updated_at"`
}
