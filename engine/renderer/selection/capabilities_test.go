package selection_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/spaghettifunk/hexil/engine/renderer/metadata"
	"github.com/spaghettifunk/hexil/engine/renderer/selection"
)

func TestRequiredDeviceExtensions(t *testing.T) {
	required := selection.RequiredDeviceExtensions()

	assert.Equal(t, []string{
		selection.Khr16BitStorage,
		selection.Khr8BitStorage,
		selection.KhrPushDescriptor,
		selection.KhrSpirv14,
		selection.KhrSwapchain,
	}, required.Enabled())
	assert.ElementsMatch(t, selection.DefaultDeviceExtensions().Known(), required.Known())
	assert.False(t, required.IsEnabled(selection.KhrDynamicRendering))
	assert.Empty(t, selection.DefaultDeviceExtensions().Enabled())
}

func TestExtensionSetBuildersCopy(t *testing.T) {
	base := selection.NewExtensionSet("VK_a", "VK_b")
	enabled := base.Enable("VK_a")
	disabled := enabled.Disable("VK_a")

	assert.Empty(t, base.Enabled())
	assert.Equal(t, []string{"VK_a"}, enabled.Enabled())
	assert.Empty(t, disabled.Enabled())
	assert.Equal(t, []string{"VK_a", "VK_b"}, disabled.Known())

	var zero selection.ExtensionSet
	assert.Equal(t, []string{"VK_c"}, zero.Enable("VK_c").Enabled())
	assert.True(t, zero.SatisfiedBy(nil))
}

func TestIsPermissible(t *testing.T) {
	required := selection.RequiredDeviceExtensions().Enabled()

	exact := metadata.PhysicalDeviceInfo{Extensions: required}
	assert.True(t, selection.IsPermissible(exact))

	assert.False(t, selection.IsPermissible(metadata.PhysicalDeviceInfo{}))

	for i := range required {
		partial := append(append([]string{}, required[:i]...), required[i+1:]...)
		device := metadata.PhysicalDeviceInfo{Extensions: partial}
		assert.False(t, selection.IsPermissible(device), "missing %s", required[i])
		assert.Equal(t, []string{required[i]}, selection.RequiredDeviceExtensions().Missing(partial))
	}
}

func TestIsPermissibleIsMonotone(t *testing.T) {
	extensions := append([]string{}, selection.RequiredDeviceExtensions().Enabled()...)
	for _, extra := range append(selection.DefaultDeviceExtensions().Known(), "VK_vendor_private") {
		extensions = append(extensions, extra)
		assert.True(t, selection.IsPermissible(metadata.PhysicalDeviceInfo{Extensions: extensions}), "after adding %s", extra)
	}
}
