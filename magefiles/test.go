//go:build mage

package main

import (
	"github.com/magefile/mage/mg"
)

type Test mg.Namespace

// Runs the unit tests. They use an in-memory driver and need no GPU.
func (Test) Unit() error {
	_, err := executeCmd("go", withArgs("test", "-race", "./engine/..."), withStream())
	return err
}

// Runs the tests that talk to the host's Vulkan runtime.
func (Test) Vulkan() error {
	_, err := executeCmd("go", withArgs("test", "-tags", "vulkan", "-count", "1", "./engine/renderer/vulkan/..."), withStream())
	return err
}
