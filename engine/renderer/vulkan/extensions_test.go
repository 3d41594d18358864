package vulkan

import (
	"runtime"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestInstanceExtensions(t *testing.T) {
	extensions := InstanceExtensions()

	assert.Subset(t, extensions, []string{
		"VK_KHR_display",
		"VK_KHR_get_display_properties2",
		"VK_KHR_get_physical_device_properties2",
		"VK_KHR_get_surface_capabilities2",
		"VK_KHR_surface",
		"VK_EXT_surface_maintenance1",
		"VK_EXT_swapchain_colorspace",
	})

	switch runtime.GOOS {
	case "linux":
		assert.Len(t, extensions, 8)
		assert.Contains(t, extensions, "VK_KHR_wayland_surface")
	case "windows":
		assert.Len(t, extensions, 8)
		assert.Contains(t, extensions, "VK_KHR_win32_surface")
	default:
		assert.Len(t, extensions, 7)
	}
}

func TestInstanceExtensionsReturnsCopy(t *testing.T) {
	first := InstanceExtensions()
	first[0] = "changed"
	assert.Equal(t, KhrDisplay, InstanceExtensions()[0])
}
