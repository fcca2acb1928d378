// Copyright (c) 2019 devblok
//
// This software is released under the MIT License.
// https://opensource.org/licenses/MIT

package core

// CheckLayerSupport reports whether every desired layer is among the
// available ones. Names are compared exactly.
func CheckLayerSupport(desired, available []string) bool {
	supported := make(map[string]struct{}, len(available))
	for _, name := range available {
		supported[name] = struct{}{}
	}
	for _, name := range desired {
		if _, ok := supported[name]; !ok {
			return false
		}
	}
	return true
}
