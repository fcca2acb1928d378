// Copyright (c) 2019 devblok
//
// This software is released under the MIT License.
// https://opensource.org/licenses/MIT

package core

import (
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
)

// NewInstance creates an API instance. In debug mode the configured layers
// must all be available, the debug extension is enabled and a debug callback
// is attached to the instance before it is returned.
func NewInstance(api API, appInfo ApplicationInfo, cfg InstanceConfiguration) (Instance, error) {
	if cfg.DebugMode && cfg.DebugExtension == "" {
		return nil, errors.Wrap(ErrConfiguration, "debug mode without a debug extension")
	}

	var layers []string
	if cfg.DebugMode {
		available, err := api.InstanceLayers()
		if err != nil {
			return nil, errors.Wrapf(ErrUnsupportedLayer, "layer query: %s", err)
		}
		if !CheckLayerSupport(cfg.Layers, available) {
			return nil, errors.Wrapf(ErrUnsupportedLayer, "requested %v", cfg.Layers)
		}
		layers = append([]string{}, cfg.Layers...)
	}

	info := InstanceCreateInfo{
		Application: appInfo,
		Extensions:  AggregateExtensions(cfg.Extensions, cfg.DebugMode, cfg.DebugExtension),
		Layers:      layers,
	}

	log.WithFields(logrus.Fields{
		"extensions": info.Extensions,
		"layers":     info.Layers,
	}).Info("Creating instance")

	handle, err := api.CreateInstance(&info)
	if err != nil {
		return nil, errors.Wrap(ErrInstanceCreation, err.Error())
	}

	inst := &instance{
		api:        api,
		handle:     handle,
		extensions: info.Extensions,
		layers:     info.Layers,
	}

	if cfg.DebugMode {
		channel, err := attachDebugChannel(api, handle, cfg.DebugSeverity)
		if err != nil {
			api.DestroyInstance(handle)
			return nil, err
		}
		inst.debug = channel
		log.WithField("severity", (cfg.DebugSeverity | DebugSeverityRequired).String()).Info("Debug callback attached")
	}

	return inst, nil
}

// instance owns the API instance and, in debug mode, the debug callback
type instance struct {
	api    API
	handle InstanceHandle
	debug  *debugChannel

	extensions []string
	layers     []string
	destroyed  bool
}

// Extensions implements interface
func (i *instance) Extensions() []string {
	return i.extensions
}

// Layers implements interface
func (i *instance) Layers() []string {
	return i.layers
}

// Debug implements interface
func (i *instance) Debug() bool {
	return i.debug != nil
}

// Inner implements interface
func (i *instance) Inner() interface{} {
	return i.handle
}

// Destroy implements interface
func (i *instance) Destroy() {
	if i.destroyed {
		return
	}
	i.destroyed = true
	if i.debug != nil {
		i.debug.detach()
		i.debug = nil
	}
	i.api.DestroyInstance(i.handle)
}
