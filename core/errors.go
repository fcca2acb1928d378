// Copyright (c) 2019 devblok
//
// This software is released under the MIT License.
// https://opensource.org/licenses/MIT

package core

import "github.com/pkg/errors"

// package errors
var (
	ErrUnsupportedLayer         = errors.New("validation layers requested, but not available")
	ErrInstanceCreation         = errors.New("failed to create instance")
	ErrDebugExtensionNotPresent = errors.New("debug report extension not present")
	ErrDebugRegistration        = errors.New("failed to set up debug callback")
	ErrConfiguration            = errors.New("invalid configuration")
)
