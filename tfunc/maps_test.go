// Copyright (c) HashiCorp, Inc.
// SPDX-License-Identifier: MPL-2.0

package tfunc

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMergeMap(t *testing.T) {
	t.Parallel()

	dst := map[string]interface{}{"a": "dst"}
	src := map[string]interface{}{"a": "src", "b": "src"}

	t.Run("keeps_dst", func(t *testing.T) {
		out, err := mergeMap(dst, src)
		require.NoError(t, err)
		assert.Equal(t, "dst", out["a"])
		assert.Equal(t, "src", out["b"])
		assert.Equal(t, "dst", dst["a"], "input must not be modified")
		_, ok := dst["b"]
		assert.False(t, ok, "input must not be modified")
	})

	t.Run("override", func(t *testing.T) {
		out, err := mergeMapWithOverride(dst, src)
		require.NoError(t, err)
		assert.Equal(t, "src", out["a"])
		assert.Equal(t, "src", out["b"])
	})

	t.Run("template", func(t *testing.T) {
		out, err := execute(`{{ $m := mergeMapWithOverride .a .b }}{{ $m.k }}`,
			map[string]interface{}{
				"a": map[string]interface{}{"k": "old"},
				"b": map[string]interface{}{"k": "new"},
			})
		require.NoError(t, err)
		assert.Equal(t, "new", out)
	})
}
