// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

// Package locale negotiates the display locale of a request.
//
// Only two display locales exist: "en" and "ar". An explicit ?locale= query
// parameter wins over Accept-Language. Anything that is not Arabic resolves
// as English, so regional tags such as "ar-EG" select Arabic while "fr"
// selects English.
package locale

import (
	"net/http"
	"strings"

	"golang.org/x/text/language"

	"github.com/taibuivan/aqar/internal/platform/constants"
)

var (
	supported = []language.Tag{language.English, language.Arabic}
	matcher   = language.NewMatcher(supported)
)

// Negotiate picks the display locale for a request.
// fallback is returned when the request expresses no usable preference.
func Negotiate(request *http.Request, fallback string) string {
	if raw := strings.TrimSpace(request.URL.Query().Get(constants.QueryParamLocale)); raw != "" {
		return Normalize(raw)
	}

	header := request.Header.Get(constants.HeaderAcceptLanguage)
	if header == "" {
		return fallback
	}

	tags, _, err := language.ParseAcceptLanguage(header)
	if err != nil || len(tags) == 0 {
		return fallback
	}

	_, index, confidence := matcher.Match(tags...)
	if confidence == language.No {
		return fallback
	}
	return code(supported[index])
}

// Normalize maps any locale string to "ar" or "en".
func Normalize(raw string) string {
	tag, err := language.Parse(raw)
	if err != nil {
		return constants.LocaleEnglish
	}
	return code(tag)
}

func code(tag language.Tag) string {
	base, _ := tag.Base()
	if base.String() == constants.LocaleArabic {
		return constants.LocaleArabic
	}
	return constants.LocaleEnglish
}
