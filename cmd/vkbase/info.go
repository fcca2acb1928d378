// Copyright (c) 2019 devblok
//
// This software is released under the MIT License.
// https://opensource.org/licenses/MIT

package main

import (
	"encoding/json"
	"fmt"

	"github.com/devblok/vkbase/core"
	"github.com/devblok/vkbase/device"
	"github.com/spf13/cobra"
)

// hostInfo is printed by the info command
type hostInfo struct {
	device.Capabilities
	RequestedLayers         []string `json:"requestedLayers"`
	LayersSupported         bool     `json:"layersSupported"`
	DebugExtension          string   `json:"debugExtension"`
	DebugExtensionSupported bool     `json:"debugExtensionSupported"`
}

var infoCmd = &cobra.Command{
	Use:   "info",
	Short: "Print the instance layers and extensions of the host as JSON",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfiguration(cmd)
		if err != nil {
			return err
		}

		api, err := device.NewVulkan(nil)
		if err != nil {
			return err
		}
		caps, err := device.QueryCapabilities(api)
		if err != nil {
			return err
		}

		info := hostInfo{
			Capabilities:    caps,
			RequestedLayers: cfg.Instance.Layers,
			LayersSupported: core.CheckLayerSupport(cfg.Instance.Layers, caps.Layers),
			DebugExtension:  cfg.Instance.DebugExtension,
		}
		for _, ext := range caps.Extensions {
			if ext == cfg.Instance.DebugExtension {
				info.DebugExtensionSupported = true
				break
			}
		}

		bytes, err := json.MarshalIndent(info, "", "  ")
		if err != nil {
			return err
		}
		fmt.Fprintf(cmd.OutOrStdout(), "%s\n", bytes)
		return nil
	},
}
