package core

import (
	"errors"
)

var (
	// The Vulkan loader could not be found or initialized.
	ErrRuntimeLoad = errors.New("failed to load vulkan library")
	// A Vulkan call rejected what was asked of it: missing extension, layer or feature.
	ErrValidation = errors.New("vulkan validation error")
	// Any other failing Vulkan call.
	ErrRuntimeCall = errors.New("vulkan error")
	// No physical device meets the requirements of the application.
	ErrIncompatibleHardware = errors.New("no permissible physical devices found")
)
