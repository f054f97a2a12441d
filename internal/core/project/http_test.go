// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package project_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/taibuivan/aqar/internal/core/project"
	"github.com/taibuivan/aqar/internal/platform/ctxutil"
)

func get(target, locale string) *httptest.ResponseRecorder {
	router := project.NewHandler(newService()).Routes()

	request := httptest.NewRequest(http.MethodGet, target, nil)
	request = request.WithContext(ctxutil.WithLocale(request.Context(), locale))

	recorder := httptest.NewRecorder()
	router.ServeHTTP(recorder, request)
	return recorder
}

func TestHandler_ListProjects(t *testing.T) {
	recorder := get("/?limit=1", "ar")
	require.Equal(t, http.StatusOK, recorder.Code)
	assert.Equal(t, "ar", recorder.Header().Get("Content-Language"))

	var body struct {
		Data []project.View `json:"data"`
		Meta struct {
			Total int `json:"total"`
		} `json:"meta"`
	}
	require.NoError(t, json.NewDecoder(recorder.Body).Decode(&body))
	assert.Equal(t, 2, body.Meta.Total)
	require.Len(t, body.Data, 1)
	assert.Equal(t, "ميفيدا", body.Data[0].Name)
}

func TestHandler_GetProject(t *testing.T) {
	tests := []struct {
		target string
		status int
	}{
		{"/2", http.StatusOK},
		{"/99", http.StatusNotFound},
		{"/abc", http.StatusNotFound},
	}

	for _, tt := range tests {
		t.Run(tt.target, func(t *testing.T) {
			assert.Equal(t, tt.status, get(tt.target, "en").Code)
		})
	}
}
