package vulkan

const (
	KhrDisplay                      = "VK_KHR_display"
	KhrGetDisplayProperties2        = "VK_KHR_get_display_properties2"
	KhrGetPhysicalDeviceProperties2 = "VK_KHR_get_physical_device_properties2"
	KhrGetSurfaceCapabilities2      = "VK_KHR_get_surface_capabilities2"
	KhrSurface                      = "VK_KHR_surface"
	KhrWaylandSurface               = "VK_KHR_wayland_surface"
	KhrWin32Surface                 = "VK_KHR_win32_surface"
	ExtSurfaceMaintenance1          = "VK_EXT_surface_maintenance1"
	ExtSwapchainColorspace          = "VK_EXT_swapchain_colorspace"
)

var commonInstanceExtensions = []string{
	KhrDisplay,
	KhrGetDisplayProperties2,
	KhrGetPhysicalDeviceProperties2,
	KhrGetSurfaceCapabilities2,
	KhrSurface,
	ExtSurfaceMaintenance1,
	ExtSwapchainColorspace,
}

// InstanceExtensions returns the instance extensions for the platform the
// binary was built for.
func InstanceExtensions() []string {
	extensions := append([]string{}, commonInstanceExtensions...)
	return append(extensions, platformInstanceExtensions()...)
}
