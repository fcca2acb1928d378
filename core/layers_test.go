// Copyright (c) 2019 devblok
//
// This software is released under the MIT License.
// https://opensource.org/licenses/MIT

package core_test

import (
	"testing"

	"github.com/devblok/vkbase/core"
	"github.com/stretchr/testify/assert"
)

func TestCheckLayerSupport(t *testing.T) {
	cases := []struct {
		name      string
		desired   []string
		available []string
		want      bool
	}{
		{"subset", []string{"X"}, []string{"X", "Y"}, true},
		{"missing", []string{"X", "Z"}, []string{"X", "Y"}, false},
		{"equal", []string{"X", "Y"}, []string{"Y", "X"}, true},
		{"nothing available", []string{"NonExistentLayer"}, nil, false},
		{"nothing desired", nil, []string{"X"}, true},
		{"prefix only", []string{"VK_LAYER_KHRONOS"}, []string{"VK_LAYER_KHRONOS_validation"}, false},
		{"case differs", []string{"vk_layer_khronos_validation"}, []string{"VK_LAYER_KHRONOS_validation"}, false},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			assert.Equal(t, c.want, core.CheckLayerSupport(c.desired, c.available))
		})
	}
}
