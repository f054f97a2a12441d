// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

/*
Package request provides utilities for extracting data from HTTP requests.

It abstracts away the underlying router's parameter extraction and common
body decoding patterns, ensuring consistent error handling and type safety.
*/
package requestutil

import (
	"encoding/json"
	"net/http"
	"strconv"
	"strings"

	"github.com/go-chi/chi/v5"

	"github.com/taibuivan/aqar/internal/platform/apperr"
	"github.com/taibuivan/aqar/internal/platform/ctxutil"
	"github.com/taibuivan/aqar/internal/platform/validate"
)

// maxBodyBytes caps JSON request bodies; dictionary entries are short phrases.
const maxBodyBytes = 64 << 10

/*
DecodeJSON reads the request body and decodes it into the target structure.

Parameters:
  - writer: http.ResponseWriter (used to enforce the body size limit)
  - request: *http.Request
  - target: any (Pointer to the destination struct)

Returns:
  - error: validate.ErrInvalidJSON if decoding fails, otherwise nil
*/
func DecodeJSON(writer http.ResponseWriter, request *http.Request, target any) error {
	request.Body = http.MaxBytesReader(writer, request.Body, maxBodyBytes)

	decoder := json.NewDecoder(request.Body)
	decoder.DisallowUnknownFields()
	if err := decoder.Decode(target); err != nil {
		return validate.ErrInvalidJSON
	}
	return nil
}

/*
Param retrieves a named URL parameter from the request.
*/
func Param(request *http.Request, name string) string {
	return chi.URLParam(request, name)
}

/*
Int64Param parses a named URL parameter as a positive integer.

Returns:
  - int64: Parsed identifier
  - error: apperr.NotFound when the value is not a positive integer
*/
func Int64Param(request *http.Request, name, resource string) (int64, error) {
	value, err := strconv.ParseInt(chi.URLParam(request, name), 10, 64)
	if err != nil || value <= 0 {
		return 0, apperr.NotFound(resource)
	}
	return value, nil
}

/*
OptionalFloat parses an optional float query parameter.

Returns nil when the parameter is absent. A present but malformed value is
reported through the validator under the parameter's name.
*/
func OptionalFloat(request *http.Request, name string, v *validate.Validator) *float64 {
	raw := strings.TrimSpace(request.URL.Query().Get(name))
	if raw == "" {
		return nil
	}

	value, err := strconv.ParseFloat(raw, 64)
	v.Custom(name, err != nil, "Must be a number")
	if err != nil {
		return nil
	}
	return &value
}

/*
UserID returns the id of the authenticated admin, or "anonymous".
*/
func UserID(request *http.Request) string {
	if claims := ctxutil.GetAuthUser(request.Context()); claims != nil {
		return claims.UserID
	}
	return "anonymous"
}
