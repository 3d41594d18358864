package platform

import (
	"fmt"
	"runtime"
	"unsafe"

	"github.com/go-gl/glfw/v3.3/glfw"

	"github.com/spaghettifunk/hexil/engine/core"
)

func init() {
	// GLFW must run on the main OS thread
	runtime.LockOSThread()
}

// Platform owns the GLFW library and, through it, the host's Vulkan loader.
// No window is created: surfaces are out of scope for device selection.
type Platform struct {
	started bool
}

func New() *Platform {
	return &Platform{}
}

func (p *Platform) Startup() error {
	if p.started {
		return nil
	}
	if err := glfw.Init(); err != nil {
		core.LogError("failed to initialize glfw: %s", err)
		return err
	}
	p.started = true
	return nil
}

// VulkanProcAddress returns vkGetInstanceProcAddr as resolved by GLFW.
func (p *Platform) VulkanProcAddress() (unsafe.Pointer, error) {
	if err := p.Startup(); err != nil {
		return nil, err
	}
	if !glfw.VulkanSupported() {
		return nil, fmt.Errorf("no Vulkan loader found on this host")
	}
	return glfw.GetVulkanGetInstanceProcAddress(), nil
}

func (p *Platform) Shutdown() error {
	if !p.started {
		return nil
	}
	glfw.Terminate()
	p.started = false
	return nil
}
