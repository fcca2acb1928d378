// Copyright (c) 2019 devblok
//
// This software is released under the MIT License.
// https://opensource.org/licenses/MIT

// Package window opens a Vulkan capable window with SDL2 or GLFW.
package window

import (
	"unsafe"

	"github.com/devblok/vkbase/core"
	"github.com/pkg/errors"
)

// Window is a window the Vulkan instance can present to.
// All methods must be called from the main OS thread.
type Window interface {
	core.EventSource

	// RequiredSurfaceExtensions returns the instance extensions
	// needed to create a surface for this window
	RequiredSurfaceExtensions() []string

	// ProcAddr returns the loader's vkGetInstanceProcAddr
	ProcAddr() unsafe.Pointer

	// Destroy closes the window and shuts the window system down
	Destroy()
}

// New opens a window with the configured backend
func New(cfg core.WindowConfiguration) (Window, error) {
	switch cfg.Backend {
	case "sdl":
		return newSDLWindow(cfg)
	case "glfw":
		return newGLFWWindow(cfg)
	default:
		return nil, errors.Wrapf(core.ErrConfiguration, "unknown window backend %q", cfg.Backend)
	}
}
