package vulkan

import (
	"golang.org/x/exp/slices"
)

const end = "\x00"

// VulkanSafeString NUL-terminates s as the C side expects.
func VulkanSafeString(s string) string {
	if len(s) == 0 || s[len(s)-1] != end[0] {
		return s + end
	}
	return s
}

// VulkanSafeStrings returns NUL-terminated copies of list.
func VulkanSafeStrings(list []string) []string {
	if len(list) == 0 {
		return nil
	}
	safe := make([]string, len(list))
	for i := range list {
		safe[i] = VulkanSafeString(list[i])
	}
	return safe
}

// missingNames lists the entries of wanted absent from available.
func missingNames(wanted, available []string) []string {
	missing := []string{}
	for _, name := range wanted {
		if !slices.Contains(available, name) {
			missing = append(missing, name)
		}
	}
	return missing
}
