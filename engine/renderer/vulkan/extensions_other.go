//go:build !linux && !windows

package vulkan

// Nothing beyond the common set, macOS included.
func platformInstanceExtensions() []string {
	return nil
}
