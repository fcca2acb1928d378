// Copyright (c) 2019 devblok
//
// This software is released under the MIT License.
// https://opensource.org/licenses/MIT

package core

// AggregateExtensions returns the instance extensions to request: everything
// the window system requires, followed by debugExtension in debug mode.
// The result never shares memory with required.
func AggregateExtensions(required []string, debugMode bool, debugExtension string) []string {
	n := len(required)
	if debugMode {
		n++
	}
	extensions := make([]string, 0, n)
	extensions = append(extensions, required...)
	if debugMode {
		extensions = append(extensions, debugExtension)
	}
	return extensions
}
