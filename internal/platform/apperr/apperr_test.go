// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package apperr_test

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/taibuivan/aqar/internal/platform/apperr"
)

/*
TestInternal_HidesCause verifies that the cause is kept for logging but not exposed.
*/
func TestInternal_HidesCause(t *testing.T) {
	cause := errors.New("duplicate canonical id s_1")
	err := apperr.Internal(cause)

	assert.Equal(t, http.StatusInternalServerError, err.HTTPStatus)
	assert.Equal(t, "An unexpected error occurred", err.Error())
	assert.ErrorIs(t, err, cause)
}

/*
TestAs_TraversesWrappedChain verifies extraction through fmt.Errorf wrapping.
*/
func TestAs_TraversesWrappedChain(t *testing.T) {
	wrapped := fmt.Errorf("availability: get: %w", apperr.NotFound("Availability record"))

	ae := apperr.As(wrapped)
	require.NotNil(t, ae)
	assert.Equal(t, "NOT_FOUND", ae.Code)
	assert.Equal(t, "Availability record not found", ae.Message)
	assert.True(t, apperr.IsAppError(wrapped))

	assert.Nil(t, apperr.As(errors.New("plain")))
}
