// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package pointer_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/taibuivan/aqar/pkg/pointer"
)

func TestToAndVal(t *testing.T) {
	assert.Equal(t, 12.5, pointer.Val(pointer.To(12.5)))
	assert.Equal(t, "", pointer.Val[string](nil))
	assert.Equal(t, int64(0), pointer.Val[int64](nil))
}
