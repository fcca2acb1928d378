// Copyright (c) 2019 devblok
//
// This software is released under the MIT License.
// https://opensource.org/licenses/MIT

// Package device implements core.API on top of the Vulkan loader.
package device

import "github.com/devblok/vkbase/core"

// Names of the debug report entry points, resolved at runtime
const (
	createDebugReportCallbackName  = "vkCreateDebugReportCallbackEXT"
	destroyDebugReportCallbackName = "vkDestroyDebugReportCallbackEXT"
)

// Capabilities lists what the host loader offers at instance level
type Capabilities struct {
	Layers     []string `json:"layers"`
	Extensions []string `json:"extensions"`
}

// QueryCapabilities asks api for the host's layers and extensions
func QueryCapabilities(api core.API) (Capabilities, error) {
	layers, err := api.InstanceLayers()
	if err != nil {
		return Capabilities{}, err
	}
	extensions, err := api.InstanceExtensions()
	if err != nil {
		return Capabilities{}, err
	}
	return Capabilities{
		Layers:     layers,
		Extensions: extensions,
	}, nil
}
