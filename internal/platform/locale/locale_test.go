// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package locale_test

import (
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/taibuivan/aqar/internal/platform/locale"
)

/*
TestNegotiate walks the query parameter, Accept-Language and fallback tiers.
*/
func TestNegotiate(t *testing.T) {
	tests := []struct {
		name           string
		target         string
		acceptLanguage string
		fallback       string
		want           string
	}{
		{"query_arabic", "/?locale=ar", "", "en", "ar"},
		{"query_regional_arabic", "/?locale=ar-EG", "en-US", "en", "ar"},
		{"query_unsupported_is_english", "/?locale=fr", "ar", "ar", "en"},
		{"query_garbage_is_english", "/?locale=%3F%3F", "", "ar", "en"},
		{"header_arabic", "/", "ar-SA,ar;q=0.9,en;q=0.5", "en", "ar"},
		{"header_english", "/", "en-GB,en;q=0.8", "ar", "en"},
		{"header_unmatched_uses_fallback", "/", "ja", "ar", "ar"},
		{"no_preference_uses_fallback", "/", "", "ar", "ar"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			request := httptest.NewRequest("GET", tt.target, nil)
			if tt.acceptLanguage != "" {
				request.Header.Set("Accept-Language", tt.acceptLanguage)
			}
			assert.Equal(t, tt.want, locale.Negotiate(request, tt.fallback))
		})
	}
}

func TestNormalize(t *testing.T) {
	assert.Equal(t, "ar", locale.Normalize("AR"))
	assert.Equal(t, "en", locale.Normalize("en-US"))
	assert.Equal(t, "en", locale.Normalize("de"))
}
