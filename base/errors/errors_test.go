// Copyright (c) 2023, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package errors

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLog(t *testing.T) {
	assert.NoError(t, Log(nil))
	err := New("bad")
	assert.Equal(t, err, Log(err))
}

func TestWrap(t *testing.T) {
	base := New("base")
	err := fmt.Errorf("outer: %w", base)
	assert.True(t, Is(err, base))
	assert.False(t, Is(err, New("base")))
}
