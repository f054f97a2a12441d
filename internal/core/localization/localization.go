// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

/*
Package localization resolves display strings for English and Arabic.

It has two parts:

  - [Dictionary]: an ordered phrase table (English source phrase to Arabic
    target phrase) with an exact tier and a case-insensitive tier.
  - [Resolver]: picks the best display string for an entity field, preferring
    stored Arabic variants and falling back to the dictionary only for
    display-locale resolution.

Entities take part by implementing [Localizable]; no reflection over field
names is involved.
*/
package localization

import "errors"

// ErrEmptyPhrase is returned when a dictionary entry has no source phrase.
var ErrEmptyPhrase = errors.New("localization: empty source phrase")

// Entry is one source phrase to target phrase mapping.
type Entry struct {
	Source string `json:"source" yaml:"source"`
	Target string `json:"target" yaml:"target"`
}

// Variants holds the stored columns behind one localizable field: the bare
// `{field}` column and its `{field}_en` and `{field}_ar` siblings. A nil
// pointer means the entity has no such column or the value is NULL.
type Variants struct {
	Base *string
	En   *string
	Ar   *string
}

// Localizable is implemented by entities that expose localizable fields.
// Unknown field names return empty [Variants].
type Localizable interface {
	LocalizedField(field string) Variants
}

// Pair carries both locale variants of a field for payloads that expose the two.
type Pair struct {
	En string `json:"en"`
	Ar string `json:"ar"`
}
