// Copyright (c) 2019 devblok
//
// This software is released under the MIT License.
// https://opensource.org/licenses/MIT

package core_test

import (
	"github.com/devblok/vkbase/core"
)

const (
	fakeInstance = "instance"
	fakeCallback = "callback"
)

// fakeAPI records every call made through core.API
type fakeAPI struct {
	layers      []string
	layersErr   error
	createErr   error
	registerErr error

	noCreateProc  bool
	noDestroyProc bool

	calls     []string
	info      *core.InstanceCreateInfo
	debugInfo *core.DebugCallbackCreateInfo
}

func (f *fakeAPI) InstanceLayers() ([]string, error) {
	f.calls = append(f.calls, "InstanceLayers")
	return f.layers, f.layersErr
}

func (f *fakeAPI) InstanceExtensions() ([]string, error) {
	f.calls = append(f.calls, "InstanceExtensions")
	return nil, nil
}

func (f *fakeAPI) CreateInstance(info *core.InstanceCreateInfo) (core.InstanceHandle, error) {
	f.calls = append(f.calls, "CreateInstance")
	f.info = info
	if f.createErr != nil {
		return nil, f.createErr
	}
	return fakeInstance, nil
}

func (f *fakeAPI) DestroyInstance(inst core.InstanceHandle) {
	f.calls = append(f.calls, "DestroyInstance:"+inst.(string))
}

func (f *fakeAPI) LookupCreateDebugCallback(inst core.InstanceHandle) (core.CreateDebugCallbackFunc, bool) {
	f.calls = append(f.calls, "LookupCreateDebugCallback")
	if f.noCreateProc {
		return nil, false
	}
	return func(info *core.DebugCallbackCreateInfo) (core.DebugHandle, error) {
		f.calls = append(f.calls, "CreateDebugCallback")
		f.debugInfo = info
		if f.registerErr != nil {
			return nil, f.registerErr
		}
		return fakeCallback, nil
	}, true
}

func (f *fakeAPI) LookupDestroyDebugCallback(inst core.InstanceHandle) (core.DestroyDebugCallbackFunc, bool) {
	f.calls = append(f.calls, "LookupDestroyDebugCallback")
	if f.noDestroyProc {
		return nil, false
	}
	return func(h core.DebugHandle) {
		f.calls = append(f.calls, "DestroyDebugCallback:"+h.(string))
	}, true
}

// index returns the position of the first call named name, or -1
func (f *fakeAPI) index(name string) int {
	for i, c := range f.calls {
		if c == name {
			return i
		}
	}
	return -1
}

func (f *fakeAPI) count(name string) int {
	var n int
	for _, c := range f.calls {
		if c == name {
			n++
		}
	}
	return n
}
