// Copyright (c) 2019 devblok
//
// This software is released under the MIT License.
// https://opensource.org/licenses/MIT

package core_test

import (
	"errors"
	"testing"

	"github.com/devblok/vkbase/core"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadCatalog(t *testing.T) {
	catalog, err := core.LoadCatalog()
	require.NoError(t, err)
	assert.Equal(t, []string{"VK_LAYER_KHRONOS_validation"}, catalog.Layers)
	assert.Equal(t, "VK_EXT_debug_report", catalog.DebugExtension)
}

func TestParseCatalog(t *testing.T) {
	catalog, err := core.ParseCatalog([]byte("layers: [A, B]\ndebugExtension: VK_EXT_debug_utils\n"))
	require.NoError(t, err)
	assert.Equal(t, []string{"A", "B"}, catalog.Layers)
	assert.Equal(t, "VK_EXT_debug_utils", catalog.DebugExtension)

	for _, doc := range []string{
		"layers: [A]\n",
		"layers: [A, '']\ndebugExtension: VK_EXT_debug_report\n",
		"layers: {\n",
	} {
		_, err := core.ParseCatalog([]byte(doc))
		assert.True(t, errors.Is(err, core.ErrConfiguration), doc)
	}
}
