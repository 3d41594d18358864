package selection

import (
	"golang.org/x/exp/maps"
	"golang.org/x/exp/slices"

	"github.com/spaghettifunk/hexil/engine/renderer/metadata"
)

// Device extensions the renderer knows about.
const (
	Khr16BitStorage                 = "VK_KHR_16bit_storage"
	Khr8BitStorage                  = "VK_KHR_8bit_storage"
	KhrBindMemory2                  = "VK_KHR_bind_memory2"
	KhrCopyCommands2                = "VK_KHR_copy_commands2"
	KhrCreateRenderpass2            = "VK_KHR_create_renderpass2"
	KhrDedicatedAllocation          = "VK_KHR_dedicated_allocation"
	KhrDeferredHostOperations       = "VK_KHR_deferred_host_operations"
	KhrDescriptorUpdateTemplate     = "VK_KHR_descriptor_update_template"
	KhrDisplaySwapchain             = "VK_KHR_display_swapchain"
	KhrDrawIndirectCount            = "VK_KHR_draw_indirect_count"
	KhrDriverProperties             = "VK_KHR_driver_properties"
	KhrDynamicRendering             = "VK_KHR_dynamic_rendering"
	KhrFormatFeatureFlags2          = "VK_KHR_format_feature_flags2"
	KhrFragmentShaderBarycentric    = "VK_KHR_fragment_shader_barycentric"
	KhrGetMemoryRequirements2       = "VK_KHR_get_memory_requirements2"
	KhrImageFormatList              = "VK_KHR_image_format_list"
	KhrImagelessFramebuffer         = "VK_KHR_imageless_framebuffer"
	KhrIncrementalPresent           = "VK_KHR_incremental_present"
	KhrMaintenance1                 = "VK_KHR_maintenance1"
	KhrMaintenance2                 = "VK_KHR_maintenance2"
	KhrMaintenance3                 = "VK_KHR_maintenance3"
	KhrMaintenance4                 = "VK_KHR_maintenance4"
	KhrMapMemory2                   = "VK_KHR_map_memory2"
	KhrMultiview                    = "VK_KHR_multiview"
	KhrPipelineLibrary              = "VK_KHR_pipeline_library"
	KhrPortabilitySubset            = "VK_KHR_portability_subset"
	KhrPresentID                    = "VK_KHR_present_id"
	KhrPresentWait                  = "VK_KHR_present_wait"
	KhrPushDescriptor               = "VK_KHR_push_descriptor"
	KhrShaderDrawParameters         = "VK_KHR_shader_draw_parameters"
	KhrShaderFloat16Int8            = "VK_KHR_shader_float16_int8"
	KhrShaderFloatControls          = "VK_KHR_shader_float_controls"
	KhrShaderIntegerDotProduct      = "VK_KHR_shader_integer_dot_product"
	KhrShaderTerminateInvocation    = "VK_KHR_shader_terminate_invocation"
	KhrSharedPresentableImage       = "VK_KHR_shared_presentable_image"
	KhrSpirv14                      = "VK_KHR_spirv_1_4"
	KhrStorageBufferStorageClass    = "VK_KHR_storage_buffer_storage_class"
	KhrSwapchain                    = "VK_KHR_swapchain"
	KhrSwapchainMutableFormat       = "VK_KHR_swapchain_mutable_format"
	KhrSynchronization2             = "VK_KHR_synchronization2"
	KhrUniformBufferStandardLayout  = "VK_KHR_uniform_buffer_standard_layout"
	KhrVulkanMemoryModel            = "VK_KHR_vulkan_memory_model"
	ExtDescriptorBuffer             = "VK_EXT_descriptor_buffer"
	ExtDescriptorIndexing           = "VK_EXT_descriptor_indexing"
	ExtExtendedDynamicState         = "VK_EXT_extended_dynamic_state"
	ExtExtendedDynamicState2        = "VK_EXT_extended_dynamic_state2"
	ExtExtendedDynamicState3        = "VK_EXT_extended_dynamic_state3"
	ExtHdrMetadata                  = "VK_EXT_hdr_metadata"
	ExtIndexTypeUint8               = "VK_EXT_index_type_uint8"
	ExtInlineUniformBlock           = "VK_EXT_inline_uniform_block"
	ExtLineRasterization            = "VK_EXT_line_rasterization"
	ExtLoadStoreOpNone              = "VK_EXT_load_store_op_none"
	ExtMultiDraw                    = "VK_EXT_multi_draw"
	ExtMultisampledRenderToSingle   = "VK_EXT_multisampled_render_to_single_sampled"
	ExtPipelineCreationCacheControl = "VK_EXT_pipeline_creation_cache_control"
	ExtPipelineCreationFeedback     = "VK_EXT_pipeline_creation_feedback"
	ExtPrimitiveTopologyListRestart = "VK_EXT_primitive_topology_list_restart"
	ExtPrimitivesGeneratedQuery     = "VK_EXT_primitives_generated_query"
	ExtSwapchainMaintenance1        = "VK_EXT_swapchain_maintenance1"
	ImgFilterCubic                  = "VK_IMG_filter_cubic"
)

// ExtensionSet is an immutable set of extension toggles. Every builder
// method returns a modified copy.
type ExtensionSet struct {
	toggles map[string]bool
}

// NewExtensionSet returns a set knowing the given extensions, all switched off.
func NewExtensionSet(names ...string) ExtensionSet {
	toggles := make(map[string]bool, len(names))
	for _, name := range names {
		toggles[name] = false
	}
	return ExtensionSet{toggles: toggles}
}

func (s ExtensionSet) with(enabled bool, names []string) ExtensionSet {
	toggles := maps.Clone(s.toggles)
	if toggles == nil {
		toggles = make(map[string]bool, len(names))
	}
	for _, name := range names {
		toggles[name] = enabled
	}
	return ExtensionSet{toggles: toggles}
}

func (s ExtensionSet) Enable(names ...string) ExtensionSet {
	return s.with(true, names)
}

func (s ExtensionSet) Disable(names ...string) ExtensionSet {
	return s.with(false, names)
}

func (s ExtensionSet) IsEnabled(name string) bool {
	return s.toggles[name]
}

// Enabled returns the names switched on, sorted.
func (s ExtensionSet) Enabled() []string {
	names := make([]string, 0, len(s.toggles))
	for name, on := range s.toggles {
		if on {
			names = append(names, name)
		}
	}
	slices.Sort(names)
	return names
}

// Known returns every name the set carries a toggle for, sorted.
func (s ExtensionSet) Known() []string {
	names := make([]string, 0, len(s.toggles))
	for name := range s.toggles {
		names = append(names, name)
	}
	slices.Sort(names)
	return names
}

// Missing returns the enabled extensions absent from available, sorted.
func (s ExtensionSet) Missing(available []string) []string {
	missing := []string{}
	for _, name := range s.Enabled() {
		if !slices.Contains(available, name) {
			missing = append(missing, name)
		}
	}
	return missing
}

// SatisfiedBy reports whether available is a superset of the enabled extensions.
func (s ExtensionSet) SatisfiedBy(available []string) bool {
	return len(s.Missing(available)) == 0
}

// DefaultDeviceExtensions knows every device extension, none enabled.
func DefaultDeviceExtensions() ExtensionSet {
	return NewExtensionSet(
		Khr16BitStorage,
		Khr8BitStorage,
		KhrBindMemory2,
		KhrCopyCommands2,
		KhrCreateRenderpass2,
		KhrDedicatedAllocation,
		KhrDeferredHostOperations,
		KhrDescriptorUpdateTemplate,
		KhrDisplaySwapchain,
		KhrDrawIndirectCount,
		KhrDriverProperties,
		KhrDynamicRendering,
		KhrFormatFeatureFlags2,
		KhrFragmentShaderBarycentric,
		KhrGetMemoryRequirements2,
		KhrImageFormatList,
		KhrImagelessFramebuffer,
		KhrIncrementalPresent,
		KhrMaintenance1,
		KhrMaintenance2,
		KhrMaintenance3,
		KhrMaintenance4,
		KhrMapMemory2,
		KhrMultiview,
		KhrPipelineLibrary,
		KhrPortabilitySubset,
		KhrPresentID,
		KhrPresentWait,
		KhrPushDescriptor,
		KhrShaderDrawParameters,
		KhrShaderFloat16Int8,
		KhrShaderFloatControls,
		KhrShaderIntegerDotProduct,
		KhrShaderTerminateInvocation,
		KhrSharedPresentableImage,
		KhrSpirv14,
		KhrStorageBufferStorageClass,
		KhrSwapchain,
		KhrSwapchainMutableFormat,
		KhrSynchronization2,
		KhrUniformBufferStandardLayout,
		KhrVulkanMemoryModel,
		ExtDescriptorBuffer,
		ExtDescriptorIndexing,
		ExtExtendedDynamicState,
		ExtExtendedDynamicState2,
		ExtExtendedDynamicState3,
		ExtHdrMetadata,
		ExtIndexTypeUint8,
		ExtInlineUniformBlock,
		ExtLineRasterization,
		ExtLoadStoreOpNone,
		ExtMultiDraw,
		ExtMultisampledRenderToSingle,
		ExtPipelineCreationCacheControl,
		ExtPipelineCreationFeedback,
		ExtPrimitiveTopologyListRestart,
		ExtPrimitivesGeneratedQuery,
		ExtSwapchainMaintenance1,
		ImgFilterCubic,
	)
}

// The minimum hardware bar of the application. Not configurable.
var requiredDeviceExtensions = DefaultDeviceExtensions().Enable(
	Khr16BitStorage,
	Khr8BitStorage,
	KhrPushDescriptor,
	KhrSpirv14,
	KhrSwapchain,
)

// RequiredDeviceExtensions is the extension set every accepted device must
// report, and the set enabled on the logical device.
func RequiredDeviceExtensions() ExtensionSet {
	return requiredDeviceExtensions
}

// IsPermissible reports whether device exposes every required extension.
func IsPermissible(device metadata.PhysicalDeviceInfo) bool {
	return requiredDeviceExtensions.SatisfiedBy(device.Extensions)
}
