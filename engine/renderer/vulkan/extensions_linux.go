package vulkan

func platformInstanceExtensions() []string {
	return []string{KhrWaylandSurface}
}
