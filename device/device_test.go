// Copyright (c) 2019 devblok
//
// This software is released under the MIT License.
// https://opensource.org/licenses/MIT

package device

import (
	"errors"
	"testing"

	"github.com/devblok/vkbase/core"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type hostAPI struct {
	core.API
	layers     []string
	extensions []string
	err        error
}

func (h hostAPI) InstanceLayers() ([]string, error) {
	return h.layers, nil
}

func (h hostAPI) InstanceExtensions() ([]string, error) {
	return h.extensions, h.err
}

func TestQueryCapabilities(t *testing.T) {
	caps, err := QueryCapabilities(hostAPI{
		layers:     []string{"VK_LAYER_KHRONOS_validation"},
		extensions: []string{"VK_KHR_surface", "VK_EXT_debug_report"},
	})
	require.NoError(t, err)
	assert.Equal(t, []string{"VK_LAYER_KHRONOS_validation"}, caps.Layers)
	assert.Equal(t, []string{"VK_KHR_surface", "VK_EXT_debug_report"}, caps.Extensions)

	_, err = QueryCapabilities(hostAPI{err: errors.New("vk.EnumerateInstanceExtensionProperties(): incomplete")})
	assert.Error(t, err)
}
