package vulkan

import (
	"fmt"
	"unsafe"

	vk "github.com/goki/vulkan"

	"github.com/spaghettifunk/hexil/engine/core"
	"github.com/spaghettifunk/hexil/engine/renderer/metadata"
	"github.com/spaghettifunk/hexil/engine/renderer/selection"
)

const engineName = "hexil"

// Loader hands out the vkGetInstanceProcAddr of the host's Vulkan loader.
type Loader interface {
	VulkanProcAddress() (unsafe.Pointer, error)
}

// Driver implements selection.Driver on top of goki/vulkan.
type Driver struct {
	loader Loader
	loaded bool
}

func NewDriver(loader Loader) *Driver {
	return &Driver{loader: loader}
}

func (d *Driver) Load() error {
	if d.loaded {
		return nil
	}
	procAddr, err := d.loader.VulkanProcAddress()
	if err != nil {
		return fmt.Errorf("%w: %s", core.ErrRuntimeLoad, err)
	}
	if procAddr == nil {
		return fmt.Errorf("%w: GetInstanceProcAddress is nil", core.ErrRuntimeLoad)
	}
	vk.SetGetInstanceProcAddr(procAddr)

	if err := vk.Init(); err != nil {
		return fmt.Errorf("%w: %s", core.ErrRuntimeLoad, err)
	}
	d.loaded = true
	return nil
}

func (d *Driver) CreateInstance(info selection.InstanceInfo) (selection.Instance, error) {
	if err := info.ApplicationVersion.Validate(); err != nil {
		return nil, fmt.Errorf("%w: application %s", core.ErrValidation, err)
	}
	available, err := instanceExtensionNames()
	if err != nil {
		return nil, err
	}
	if missing := missingNames(info.Extensions, available); len(missing) > 0 {
		return nil, fmt.Errorf("%w: instance extensions not present: %v", core.ErrValidation, missing)
	}

	extensions := append([]string{}, info.Extensions...)
	layers, err := presentLayers(info.Layers)
	if err != nil {
		return nil, err
	}
	debug := len(layers) > 0
	if debug {
		extensions = append(extensions, vk.ExtDebugReportExtensionName)
	}

	core.LogDebug("Required extensions:")
	for _, ext := range extensions {
		core.LogDebug(ext)
	}

	appInfo := &vk.ApplicationInfo{
		SType:              vk.StructureTypeApplicationInfo,
		ApiVersion:         uint32(vk.MakeVersion(1, 2, 0)),
		ApplicationVersion: uint32(makeVersion(info.ApplicationVersion)),
		PApplicationName:   VulkanSafeString(info.ApplicationName),
		PEngineName:        VulkanSafeString(engineName),
	}

	createInfo := vk.InstanceCreateInfo{
		SType:                   vk.StructureTypeInstanceCreateInfo,
		PApplicationInfo:        appInfo,
		EnabledExtensionCount:   uint32(len(extensions)),
		PpEnabledExtensionNames: VulkanSafeStrings(extensions),
		EnabledLayerCount:       uint32(len(layers)),
		PpEnabledLayerNames:     VulkanSafeStrings(layers),
	}

	var handle vk.Instance
	if err := resultError(vk.CreateInstance(&createInfo, nil, &handle), "vkCreateInstance"); err != nil {
		return nil, err
	}
	if err := vk.InitInstance(handle); err != nil {
		vk.DestroyInstance(handle, nil)
		return nil, fmt.Errorf("%w: %s", core.ErrRuntimeCall, err)
	}

	instance := &Instance{handle: handle}
	if debug {
		if err := instance.createDebugCallback(); err != nil {
			instance.Destroy()
			return nil, err
		}
	}
	return instance, nil
}

// Instance implements selection.Instance.
type Instance struct {
	handle   vk.Instance
	physical []vk.PhysicalDevice
	debug    vk.DebugReportCallback
	hasDebug bool
}

// Handle returns the raw instance, for surface creation by the windowing layer.
func (i *Instance) Handle() vk.Instance {
	return i.handle
}

func (i *Instance) PhysicalDevices() ([]metadata.PhysicalDeviceInfo, error) {
	var count uint32
	if err := resultError(vk.EnumeratePhysicalDevices(i.handle, &count, nil), "vkEnumeratePhysicalDevices"); err != nil {
		return nil, err
	}
	physical := make([]vk.PhysicalDevice, count)
	if count > 0 {
		if err := resultError(vk.EnumeratePhysicalDevices(i.handle, &count, physical), "vkEnumeratePhysicalDevices"); err != nil {
			return nil, err
		}
	}
	i.physical = physical[:count]

	infos := make([]metadata.PhysicalDeviceInfo, 0, len(i.physical))
	for ordinal, device := range i.physical {
		info, err := describeDevice(ordinal, device)
		if err != nil {
			return nil, err
		}
		infos = append(infos, info)
	}
	return infos, nil
}

func describeDevice(ordinal int, device vk.PhysicalDevice) (metadata.PhysicalDeviceInfo, error) {
	var properties vk.PhysicalDeviceProperties
	vk.GetPhysicalDeviceProperties(device, &properties)
	properties.Deref()

	extensions, err := deviceExtensionNames(device)
	if err != nil {
		return metadata.PhysicalDeviceInfo{}, err
	}

	var familyCount uint32
	vk.GetPhysicalDeviceQueueFamilyProperties(device, &familyCount, nil)
	families := make([]vk.QueueFamilyProperties, familyCount)
	vk.GetPhysicalDeviceQueueFamilyProperties(device, &familyCount, families)

	queueFamilies := make([]metadata.QueueFamily, 0, familyCount)
	for idx := uint32(0); idx < familyCount; idx++ {
		families[idx].Deref()
		queueFamilies = append(queueFamilies, metadata.QueueFamily{
			Index:      idx,
			QueueCount: families[idx].QueueCount,
			Flags:      metadata.QueueFlags(families[idx].QueueFlags),
		})
	}

	info := metadata.PhysicalDeviceInfo{
		Ordinal:       ordinal,
		Name:          vk.ToString(properties.DeviceName[:]),
		Type:          metadata.DeviceType(properties.DeviceType),
		APIVersion:    properties.ApiVersion,
		DriverVersion: properties.DriverVersion,
		Extensions:    extensions,
		QueueFamilies: queueFamilies,
	}
	core.LogDebug("Found device '%s' (%s) with %d queue families.", info.Name, info.Type, len(queueFamilies))
	for _, family := range queueFamilies {
		core.LogDebug("  family %d: %d queues, %s", family.Index, family.QueueCount, family.Flags)
	}
	return info, nil
}

func (i *Instance) CreateDevice(device metadata.PhysicalDeviceInfo, request selection.DeviceRequest) (selection.LogicalDevice, error) {
	if device.Ordinal < 0 || device.Ordinal >= len(i.physical) {
		return nil, fmt.Errorf("%w: unknown physical device #%d", core.ErrValidation, device.Ordinal)
	}
	if missing := missingNames(request.Extensions, device.Extensions); len(missing) > 0 {
		return nil, fmt.Errorf("%w: device extensions not present on '%s': %v", core.ErrValidation, device.Name, missing)
	}

	queueCreateInfos := make([]vk.DeviceQueueCreateInfo, len(request.Queues))
	for idx, queue := range request.Queues {
		priorities := make([]float32, queue.Count)
		for p := range priorities {
			priorities[p] = 1.0
		}
		queueCreateInfos[idx] = vk.DeviceQueueCreateInfo{
			SType:            vk.StructureTypeDeviceQueueCreateInfo,
			QueueFamilyIndex: queue.Family,
			QueueCount:       queue.Count,
			PQueuePriorities: priorities,
		}
	}

	extensions := append([]string{}, request.Extensions...)
	deviceCreateInfo := vk.DeviceCreateInfo{
		SType:                   vk.StructureTypeDeviceCreateInfo,
		QueueCreateInfoCount:    uint32(len(queueCreateInfos)),
		PQueueCreateInfos:       queueCreateInfos,
		EnabledExtensionCount:   uint32(len(extensions)),
		PpEnabledExtensionNames: VulkanSafeStrings(extensions),
		// No features beyond the core set.
		PEnabledFeatures: nil,
	}

	var handle vk.Device
	if err := resultError(vk.CreateDevice(i.physical[device.Ordinal], &deviceCreateInfo, nil, &handle), "vkCreateDevice"); err != nil {
		return nil, err
	}
	return &LogicalDevice{handle: handle}, nil
}

func (i *Instance) Destroy() {
	if i.hasDebug {
		vk.DestroyDebugReportCallback(i.handle, i.debug, nil)
		i.hasDebug = false
	}
	if i.handle != nil {
		core.LogInfo("Destroying Vulkan instance...")
		vk.DestroyInstance(i.handle, nil)
		i.handle = nil
	}
	// Physical devices are not destroyed.
	i.physical = nil
}

func (i *Instance) createDebugCallback() error {
	core.LogDebug("Creating Vulkan debugger...")
	debugCreateInfo := vk.DebugReportCallbackCreateInfo{
		SType:       vk.StructureTypeDebugReportCallbackCreateInfo,
		Flags:       vk.DebugReportFlags(vk.DebugReportErrorBit | vk.DebugReportWarningBit | vk.DebugReportPerformanceWarningBit),
		PfnCallback: debugReport,
	}
	var callback vk.DebugReportCallback
	if err := resultError(vk.CreateDebugReportCallback(i.handle, &debugCreateInfo, nil, &callback), "vkCreateDebugReportCallbackEXT"); err != nil {
		return err
	}
	i.debug = callback
	i.hasDebug = true
	core.LogDebug("Vulkan debugger created.")
	return nil
}

func debugReport(flags vk.DebugReportFlags, objectType vk.DebugReportObjectType, object uint64, location uint64, messageCode int32, pLayerPrefix string, pMessage string, pUserData unsafe.Pointer) vk.Bool32 {
	switch {
	case flags&vk.DebugReportFlags(vk.DebugReportErrorBit) != 0:
		core.LogError("VALIDATION: [%s] Code %d : %s", pLayerPrefix, messageCode, pMessage)
	case flags&vk.DebugReportFlags(vk.DebugReportWarningBit) != 0:
		core.LogWarn("WARNING: [%s] Code %d : %s", pLayerPrefix, messageCode, pMessage)
	case flags&vk.DebugReportFlags(vk.DebugReportPerformanceWarningBit) != 0:
		core.LogWarn("PERFORMANCE WARNING: [%s] Code %d : %s", pLayerPrefix, messageCode, pMessage)
	default:
		core.LogDebug("[%s] Code %d : %s", pLayerPrefix, messageCode, pMessage)
	}
	return vk.Bool32(vk.False)
}

// LogicalDevice implements selection.LogicalDevice.
type LogicalDevice struct {
	handle vk.Device
}

func (d *LogicalDevice) Handle() vk.Device {
	return d.handle
}

func (d *LogicalDevice) Queue(family, index uint32) interface{} {
	var queue vk.Queue
	vk.GetDeviceQueue(d.handle, family, index, &queue)
	return queue
}

func (d *LogicalDevice) WaitIdle() error {
	return resultError(vk.DeviceWaitIdle(d.handle), "vkDeviceWaitIdle")
}

func (d *LogicalDevice) Destroy() {
	if d.handle == nil {
		return
	}
	core.LogInfo("Destroying logical device...")
	vk.DestroyDevice(d.handle, nil)
	d.handle = nil
}

func instanceExtensionNames() ([]string, error) {
	var count uint32
	if err := resultError(vk.EnumerateInstanceExtensionProperties("", &count, nil), "vkEnumerateInstanceExtensionProperties"); err != nil {
		return nil, err
	}
	properties := make([]vk.ExtensionProperties, count)
	if count > 0 {
		if err := resultError(vk.EnumerateInstanceExtensionProperties("", &count, properties), "vkEnumerateInstanceExtensionProperties"); err != nil {
			return nil, err
		}
	}
	return extensionNames(properties[:count]), nil
}

func deviceExtensionNames(device vk.PhysicalDevice) ([]string, error) {
	var count uint32
	if err := resultError(vk.EnumerateDeviceExtensionProperties(device, "", &count, nil), "vkEnumerateDeviceExtensionProperties"); err != nil {
		return nil, err
	}
	properties := make([]vk.ExtensionProperties, count)
	if count > 0 {
		if err := resultError(vk.EnumerateDeviceExtensionProperties(device, "", &count, properties), "vkEnumerateDeviceExtensionProperties"); err != nil {
			return nil, err
		}
	}
	return extensionNames(properties[:count]), nil
}

func extensionNames(properties []vk.ExtensionProperties) []string {
	names := make([]string, 0, len(properties))
	for idx := range properties {
		properties[idx].Deref()
		names = append(names, vk.ToString(properties[idx].ExtensionName[:]))
	}
	return names
}

// presentLayers keeps the requested layers the host actually provides.
func presentLayers(requested []string) ([]string, error) {
	if len(requested) == 0 {
		return nil, nil
	}
	core.LogInfo("Validation layers enabled. Enumerating...")

	var count uint32
	if err := resultError(vk.EnumerateInstanceLayerProperties(&count, nil), "vkEnumerateInstanceLayerProperties"); err != nil {
		return nil, err
	}
	properties := make([]vk.LayerProperties, count)
	if count > 0 {
		if err := resultError(vk.EnumerateInstanceLayerProperties(&count, properties), "vkEnumerateInstanceLayerProperties"); err != nil {
			return nil, err
		}
	}
	available := make([]string, 0, count)
	for idx := range properties[:count] {
		properties[idx].Deref()
		available = append(available, vk.ToString(properties[idx].LayerName[:]))
	}

	layers := []string{}
	for _, name := range requested {
		if len(missingNames([]string{name}, available)) > 0 {
			core.LogWarn("Requested layer is missing: %s", name)
			continue
		}
		core.LogInfo("Found layer: %s", name)
		layers = append(layers, name)
	}
	return layers, nil
}

func makeVersion(v metadata.Version) uint32 {
	return uint32(vk.MakeVersion(int(v.Major), int(v.Minor), int(v.Patch)))
}
