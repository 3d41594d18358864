package vulkan

import (
	"errors"
	"testing"

	vk "github.com/goki/vulkan"
	"github.com/stretchr/testify/assert"

	"github.com/spaghettifunk/hexil/engine/core"
)

func TestResultError(t *testing.T) {
	tests := []struct {
		result   vk.Result
		expected error
	}{
		{vk.Success, nil},
		{vk.Incomplete, nil},
		{vk.ErrorExtensionNotPresent, core.ErrValidation},
		{vk.ErrorFeatureNotPresent, core.ErrValidation},
		{vk.ErrorLayerNotPresent, core.ErrValidation},
		{vk.ErrorIncompatibleDriver, core.ErrValidation},
		{vk.ErrorOutOfHostMemory, core.ErrRuntimeCall},
		{vk.ErrorDeviceLost, core.ErrRuntimeCall},
		{vk.ErrorInitializationFailed, core.ErrRuntimeCall},
		{vk.Result(-12345), core.ErrRuntimeCall},
	}

	for _, tt := range tests {
		t.Run(VulkanResultString(tt.result, false), func(t *testing.T) {
			err := resultError(tt.result, "vkCreateDevice")
			if tt.expected == nil {
				assert.NoError(t, err)
				return
			}
			assert.True(t, errors.Is(err, tt.expected), "got %v", err)
			assert.Contains(t, err.Error(), "vkCreateDevice")
			assert.Contains(t, err.Error(), VulkanResultString(tt.result, false))
		})
	}
}

func TestVulkanResultString(t *testing.T) {
	assert.Equal(t, "VK_ERROR_DEVICE_LOST", VulkanResultString(vk.ErrorDeviceLost, false))
	assert.Equal(t, "VK_ERROR_DEVICE_LOST The logical or physical device has been lost.", VulkanResultString(vk.ErrorDeviceLost, true))
	assert.Equal(t, "VkResult(-12345)", VulkanResultString(vk.Result(-12345), true))
}
