// Copyright (c) 2019 devblok
//
// This software is released under the MIT License.
// https://opensource.org/licenses/MIT

package device

import (
	"errors"
	"unsafe"

	"github.com/devblok/vkbase/core"
	vk "github.com/vulkan-go/vulkan"
)

// NewVulkan loads the Vulkan API through procAddr, the loader's
// vkGetInstanceProcAddr as handed out by the window system. When it is
// nil, the default system loader is used.
func NewVulkan(procAddr unsafe.Pointer) (*Vulkan, error) {
	if procAddr == nil {
		if err := vk.SetDefaultGetInstanceProcAddr(); err != nil {
			return nil, errors.New("vk.SetDefaultGetInstanceProcAddr(): " + err.Error())
		}
	} else {
		vk.SetGetInstanceProcAddr(procAddr)
	}

	if err := vk.Init(); err != nil {
		return nil, errors.New("vk.Init(): " + err.Error())
	}
	return &Vulkan{}, nil
}

// Vulkan implements core.API with the vulkan-go bindings
type Vulkan struct{}

// InstanceLayers implements interface
func (Vulkan) InstanceLayers() ([]string, error) {
	var count uint32
	if err := vk.Error(vk.EnumerateInstanceLayerProperties(&count, nil)); err != nil {
		return nil, errors.New("vk.EnumerateInstanceLayerProperties(): " + err.Error())
	}
	layers := make([]vk.LayerProperties, count)
	if err := vk.Error(vk.EnumerateInstanceLayerProperties(&count, layers)); err != nil {
		return nil, errors.New("vk.EnumerateInstanceLayerProperties(): " + err.Error())
	}

	names := make([]string, 0, count)
	for _, layer := range layers[:count] {
		layer.Deref()
		names = append(names, vk.ToString(layer.LayerName[:]))
	}
	return names, nil
}

// InstanceExtensions implements interface
func (Vulkan) InstanceExtensions() ([]string, error) {
	var count uint32
	if err := vk.Error(vk.EnumerateInstanceExtensionProperties("", &count, nil)); err != nil {
		return nil, errors.New("vk.EnumerateInstanceExtensionProperties(): " + err.Error())
	}
	extensions := make([]vk.ExtensionProperties, count)
	if err := vk.Error(vk.EnumerateInstanceExtensionProperties("", &count, extensions)); err != nil {
		return nil, errors.New("vk.EnumerateInstanceExtensionProperties(): " + err.Error())
	}

	names := make([]string, 0, count)
	for _, ext := range extensions[:count] {
		ext.Deref()
		names = append(names, vk.ToString(ext.ExtensionName[:]))
	}
	return names, nil
}

// CreateInstance implements interface
func (Vulkan) CreateInstance(info *core.InstanceCreateInfo) (core.InstanceHandle, error) {
	instanceInfo := instanceCreateInfo(info)

	var instance vk.Instance
	if err := vk.Error(vk.CreateInstance(&instanceInfo, nil, &instance)); err != nil {
		return nil, errors.New("vk.CreateInstance(): " + err.Error())
	}
	if err := vk.InitInstance(instance); err != nil {
		vk.DestroyInstance(instance, nil)
		return nil, errors.New("vk.InitInstance(): " + err.Error())
	}
	return instance, nil
}

// DestroyInstance implements interface
func (Vulkan) DestroyInstance(inst core.InstanceHandle) {
	vk.DestroyInstance(inst.(vk.Instance), nil)
}

// LookupCreateDebugCallback implements interface
func (Vulkan) LookupCreateDebugCallback(inst core.InstanceHandle) (core.CreateDebugCallbackFunc, bool) {
	instance := inst.(vk.Instance)
	if vk.GetInstanceProcAddr(instance, core.SafeString(createDebugReportCallbackName)) == nil {
		return nil, false
	}

	return func(info *core.DebugCallbackCreateInfo) (core.DebugHandle, error) {
		callback := info.Callback
		createInfo := vk.DebugReportCallbackCreateInfo{
			SType: vk.StructureTypeDebugReportCallbackCreateInfo,
			Flags: debugReportFlags(info.Severity),
			PfnCallback: func(flags vk.DebugReportFlags, objectType vk.DebugReportObjectType,
				object uint64, location uint, messageCode int32, pLayerPrefix string,
				pMessage string, pUserData unsafe.Pointer) vk.Bool32 {

				msg := core.DebugMessage{
					Severity:    debugSeverity(flags),
					ObjectType:  int32(objectType),
					Object:      object,
					Location:    location,
					Code:        messageCode,
					LayerPrefix: pLayerPrefix,
					Message:     pMessage,
				}
				if callback(msg) {
					return vk.True
				}
				return vk.False
			},
		}

		var handle vk.DebugReportCallback
		if err := vk.Error(vk.CreateDebugReportCallback(instance, &createInfo, nil, &handle)); err != nil {
			return nil, errors.New("vk.CreateDebugReportCallback(): " + err.Error())
		}
		return handle, nil
	}, true
}

// LookupDestroyDebugCallback implements interface
func (Vulkan) LookupDestroyDebugCallback(inst core.InstanceHandle) (core.DestroyDebugCallbackFunc, bool) {
	instance := inst.(vk.Instance)
	if vk.GetInstanceProcAddr(instance, core.SafeString(destroyDebugReportCallbackName)) == nil {
		return nil, false
	}

	return func(h core.DebugHandle) {
		vk.DestroyDebugReportCallback(instance, h.(vk.DebugReportCallback), nil)
	}, true
}

// instanceCreateInfo converts info into its Vulkan counterpart. The
// counts always match the lengths of the name lists.
func instanceCreateInfo(info *core.InstanceCreateInfo) vk.InstanceCreateInfo {
	app := info.Application
	createInfo := vk.InstanceCreateInfo{
		SType: vk.StructureTypeInstanceCreateInfo,
		PApplicationInfo: &vk.ApplicationInfo{
			SType:              vk.StructureTypeApplicationInfo,
			PApplicationName:   core.SafeString(app.ApplicationName),
			ApplicationVersion: app.ApplicationVersion,
			PEngineName:        core.SafeString(app.EngineName),
			EngineVersion:      app.EngineVersion,
			ApiVersion:         app.APIVersion,
		},
		EnabledExtensionCount:   uint32(len(info.Extensions)),
		PpEnabledExtensionNames: core.SafeStrings(info.Extensions),
	}
	if len(info.Layers) > 0 {
		createInfo.EnabledLayerCount = uint32(len(info.Layers))
		createInfo.PpEnabledLayerNames = core.SafeStrings(info.Layers)
	}
	return createInfo
}

var severityFlags = []struct {
	severity core.DebugSeverity
	flag     vk.DebugReportFlagBits
}{
	{core.DebugSeverityInformation, vk.DebugReportInformationBit},
	{core.DebugSeverityWarning, vk.DebugReportWarningBit},
	{core.DebugSeverityPerformance, vk.DebugReportPerformanceWarningBit},
	{core.DebugSeverityError, vk.DebugReportErrorBit},
	{core.DebugSeverityDebug, vk.DebugReportDebugBit},
}

func debugReportFlags(s core.DebugSeverity) vk.DebugReportFlags {
	var flags vk.DebugReportFlags
	for _, sf := range severityFlags {
		if s.Has(sf.severity) {
			flags |= vk.DebugReportFlags(sf.flag)
		}
	}
	return flags
}

func debugSeverity(flags vk.DebugReportFlags) core.DebugSeverity {
	var s core.DebugSeverity
	for _, sf := range severityFlags {
		if flags&vk.DebugReportFlags(sf.flag) != 0 {
			s |= sf.severity
		}
	}
	return s
}
