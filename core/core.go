// Copyright (c) 2019 devblok
//
// This software is released under the MIT License.
// https://opensource.org/licenses/MIT

// Package core bootstraps a graphics API instance: it checks the requested
// validation layers, assembles instance extensions, creates the instance and
// attaches the debug report callback. The graphics API itself is reached
// through the API interface, so none of this package needs cgo.
package core

// InstanceHandle is the opaque handle of a live API instance.
type InstanceHandle interface{}

// DebugHandle is the opaque handle of a registered debug callback.
type DebugHandle interface{}

// API describes the graphics API entry points the bootstrap consumes.
type API interface {
	// InstanceLayers returns the names of layers available on the host
	InstanceLayers() ([]string, error)

	// InstanceExtensions returns the names of instance extensions available on the host
	InstanceExtensions() ([]string, error)

	// CreateInstance creates the API instance, any non nil
	// error means the instance was not created
	CreateInstance(info *InstanceCreateInfo) (InstanceHandle, error)

	// DestroyInstance destroys an instance created by CreateInstance
	DestroyInstance(InstanceHandle)

	// LookupCreateDebugCallback resolves the debug callback registration
	// entry point of inst. Reports false when it does not exist.
	LookupCreateDebugCallback(inst InstanceHandle) (CreateDebugCallbackFunc, bool)

	// LookupDestroyDebugCallback resolves the debug callback unregistration
	// entry point of inst. Reports false when it does not exist.
	LookupDestroyDebugCallback(inst InstanceHandle) (DestroyDebugCallbackFunc, bool)
}

// CreateDebugCallbackFunc registers a debug callback with an instance.
type CreateDebugCallbackFunc func(info *DebugCallbackCreateInfo) (DebugHandle, error)

// DestroyDebugCallbackFunc unregisters a debug callback.
type DestroyDebugCallbackFunc func(DebugHandle)

// Instance describes a created API instance along with the
// debug callback attached to it. Once created it is ready to use.
type Instance interface {
	// Extensions returns the instance extensions that were enabled
	Extensions() []string

	// Layers returns the layers that were enabled, empty when
	// debug mode is off
	Layers() []string

	// Debug reports whether a debug callback is attached
	Debug() bool

	// Inner returns the inner handle of the underlying API
	Inner() interface{}

	// Destroy releases the debug callback, then the instance
	Destroy()
}

// EventSource is a window that can be polled for events.
type EventSource interface {
	// PollEvents processes pending events without blocking
	PollEvents()

	// ShouldClose reports whether the window was asked to close
	ShouldClose() bool
}

// ApplicationInfo describes the application to the graphics API.
type ApplicationInfo struct {
	ApplicationName    string
	ApplicationVersion uint32
	EngineName         string
	EngineVersion      uint32
	APIVersion         uint32
}

// DefaultApplicationInfo describes the bootstrap application
var DefaultApplicationInfo = ApplicationInfo{
	ApplicationName:    "Hello Triangle",
	ApplicationVersion: MakeVersion(1, 0, 0),
	EngineName:         "No Engine",
	EngineVersion:      MakeVersion(1, 0, 0),
	APIVersion:         MakeVersion(1, 0, 0),
}

// InstanceCreateInfo is the request handed to API.CreateInstance.
type InstanceCreateInfo struct {
	Application ApplicationInfo
	Extensions  []string
	Layers      []string
}

// MakeVersion packs a version number the way the API expects it
func MakeVersion(major, minor, patch uint32) uint32 {
	return (major << 22) | (minor << 12) | patch
}
