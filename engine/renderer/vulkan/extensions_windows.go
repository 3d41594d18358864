package vulkan

func platformInstanceExtensions() []string {
	return []string{KhrWin32Surface}
}
