// Copyright (c) 2019 devblok
//
// This software is released under the MIT License.
// https://opensource.org/licenses/MIT

package core

import (
	"strings"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
)

// DebugSeverity is a set of debug message severities
type DebugSeverity uint32

// Debug message severities, they mirror the debug report flag bits
const (
	DebugSeverityInformation DebugSeverity = 1 << iota
	DebugSeverityWarning
	DebugSeverityPerformance
	DebugSeverityError
	DebugSeverityDebug

	// DebugSeverityRequired is always part of a callback subscription
	DebugSeverityRequired = DebugSeverityError | DebugSeverityWarning
)

var severityNames = []struct {
	name     string
	severity DebugSeverity
}{
	{"error", DebugSeverityError},
	{"warning", DebugSeverityWarning},
	{"performance", DebugSeverityPerformance},
	{"information", DebugSeverityInformation},
	{"debug", DebugSeverityDebug},
}

// Has reports whether all of other is set in s
func (s DebugSeverity) Has(other DebugSeverity) bool {
	return s&other == other
}

func (s DebugSeverity) String() string {
	var names []string
	for _, n := range severityNames {
		if s.Has(n.severity) {
			names = append(names, n.name)
		}
	}
	return strings.Join(names, ",")
}

// ParseDebugSeverity parses a comma separated list of severity names,
// e.g. "error,warning,performance". Errors and warnings are always included.
func ParseDebugSeverity(s string) (DebugSeverity, error) {
	severity := DebugSeverityRequired
	for _, field := range strings.Split(s, ",") {
		field = strings.ToLower(strings.TrimSpace(field))
		if field == "" {
			continue
		}
		var found bool
		for _, n := range severityNames {
			if n.name == field {
				severity |= n.severity
				found = true
				break
			}
		}
		if !found {
			return 0, errors.Wrapf(ErrConfiguration, "unknown debug severity %q", field)
		}
	}
	return severity, nil
}

// DebugMessage is a message delivered by a validation layer
type DebugMessage struct {
	Severity    DebugSeverity
	ObjectType  int32
	Object      uint64
	Location    uint
	Code        int32
	LayerPrefix string
	Message     string
}

// DebugCallbackFunc receives debug messages. Returning true asks the
// API to abort the call that triggered the message.
type DebugCallbackFunc func(DebugMessage) bool

// DebugCallbackCreateInfo is the request handed to CreateDebugCallbackFunc.
type DebugCallbackCreateInfo struct {
	Severity DebugSeverity
	Callback DebugCallbackFunc
}

// debugChannel is a debug callback registered with an instance
type debugChannel struct {
	api      API
	instance InstanceHandle
	handle   DebugHandle
}

// attachDebugChannel registers reportDebugMessage with inst.
func attachDebugChannel(api API, inst InstanceHandle, severity DebugSeverity) (*debugChannel, error) {
	create, ok := api.LookupCreateDebugCallback(inst)
	if !ok {
		return nil, ErrDebugExtensionNotPresent
	}
	handle, err := create(&DebugCallbackCreateInfo{
		Severity: severity | DebugSeverityRequired,
		Callback: reportDebugMessage,
	})
	if err != nil {
		return nil, errors.Wrap(ErrDebugRegistration, err.Error())
	}
	return &debugChannel{
		api:      api,
		instance: inst,
		handle:   handle,
	}, nil
}

// detach unregisters the callback. A missing entry point means
// there is nothing to clean up.
func (c *debugChannel) detach() {
	destroy, ok := c.api.LookupDestroyDebugCallback(c.instance)
	if !ok {
		log.Debug("debug callback destroy entry point not found, skipping")
		return
	}
	destroy(c.handle)
}

// reportDebugMessage logs msg. It never aborts the triggering call.
func reportDebugMessage(msg DebugMessage) (abort bool) {
	defer func() {
		if r := recover(); r != nil {
			abort = false
		}
	}()

	entry := log.WithFields(logrus.Fields{
		"layer":  msg.LayerPrefix,
		"code":   msg.Code,
		"object": msg.Object,
	})
	text := "validation layer: " + msg.Message
	switch {
	case msg.Severity.Has(DebugSeverityError):
		entry.Error(text)
	case msg.Severity.Has(DebugSeverityWarning), msg.Severity.Has(DebugSeverityPerformance):
		entry.Warn(text)
	case msg.Severity.Has(DebugSeverityInformation):
		entry.Info(text)
	default:
		entry.Debug(text)
	}
	return false
}
