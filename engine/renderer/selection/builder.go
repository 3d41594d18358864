package selection

import (
	"errors"
	"fmt"
	"sync"

	"github.com/google/uuid"

	"github.com/spaghettifunk/hexil/engine/core"
	"github.com/spaghettifunk/hexil/engine/renderer/metadata"
)

const validationLayer = "VK_LAYER_KHRONOS_validation"

type builderOptions struct {
	applicationName    string
	applicationVersion metadata.Version
	instanceExtensions []string
	validation         bool
}

type BuilderOption func(*builderOptions)

func WithApplication(name string, version metadata.Version) BuilderOption {
	return func(o *builderOptions) {
		o.applicationName = name
		o.applicationVersion = version
	}
}

// WithInstanceExtensions sets the instance extensions requested at instance
// creation. They are decided by the target platform.
func WithInstanceExtensions(extensions ...string) BuilderOption {
	return func(o *builderOptions) {
		o.instanceExtensions = append([]string(nil), extensions...)
	}
}

// WithValidation asks for the Khronos validation layer.
func WithValidation(enabled bool) BuilderOption {
	return func(o *builderOptions) {
		o.validation = enabled
	}
}

// Builder selects a physical device and creates the RenderContext for it.
type Builder struct {
	driver Driver
	opts   builderOptions
}

func NewBuilder(driver Driver, options ...BuilderOption) *Builder {
	opts := builderOptions{
		applicationName:    "hexil",
		applicationVersion: metadata.Version{Major: 0, Minor: 1, Patch: 0},
	}
	for _, o := range options {
		o(&opts)
	}
	return &Builder{driver: driver, opts: opts}
}

// Build runs the whole selection once. It never retries: given the same host
// the outcome would not change.
func (b *Builder) Build(profile metadata.PowerProfile) (*RenderContext, error) {
	if err := b.driver.Load(); err != nil {
		if errors.Is(err, core.ErrRuntimeLoad) {
			return nil, err
		}
		return nil, fmt.Errorf("%w: %s", core.ErrRuntimeLoad, err)
	}

	info := InstanceInfo{
		ApplicationName:    b.opts.applicationName,
		ApplicationVersion: b.opts.applicationVersion,
		Extensions:         b.opts.instanceExtensions,
	}
	if b.opts.validation {
		info.Layers = []string{validationLayer}
	}
	instance, err := b.driver.CreateInstance(info)
	if err != nil {
		return nil, runtimeError(err)
	}
	core.LogInfo("Vulkan Instance created.")

	rc, err := b.build(instance, profile)
	if err != nil {
		instance.Destroy()
		return nil, err
	}
	return rc, nil
}

func (b *Builder) build(instance Instance, profile metadata.PowerProfile) (*RenderContext, error) {
	devices, err := instance.PhysicalDevices()
	if err != nil {
		return nil, runtimeError(err)
	}
	if len(devices) == 0 {
		core.LogError("No devices which support Vulkan were found.")
		return nil, core.ErrIncompatibleHardware
	}

	candidates := make([]metadata.PhysicalDeviceInfo, 0, len(devices))
	for _, device := range devices {
		if !IsPermissible(device) {
			core.LogInfo("Device '%s' lacks required extensions %v, skipping.", device.Name, requiredDeviceExtensions.Missing(device.Extensions))
			continue
		}
		candidates = append(candidates, device)
	}

	physical, ok := SelectDevice(profile, candidates)
	if !ok {
		core.LogError("No physical devices were found which meet the requirements.")
		return nil, core.ErrIncompatibleHardware
	}
	core.LogInfo("Selected device: '%s'.", physical.Name)
	core.LogInfo("GPU type is %s.", physical.Type)
	core.LogInfo("Vulkan API version: %s", unpackVersion(physical.APIVersion))
	core.LogInfo("GPU Driver version: %s", unpackVersion(physical.DriverVersion))

	graphics, ok := selectQueueFamily(physical.QueueFamilies, metadata.QueueGraphics)
	if !ok {
		core.LogError("Device '%s' has no graphics queue family.", physical.Name)
		return nil, core.ErrIncompatibleHardware
	}
	transfer, ok := selectQueueFamily(physical.QueueFamilies, metadata.QueueTransfer)
	if !ok {
		core.LogError("Device '%s' has no transfer queue family.", physical.Name)
		return nil, core.ErrIncompatibleHardware
	}
	core.LogDebug("Graphics Family Index: %d", graphics.Index)
	core.LogDebug("Transfer Family Index: %d", transfer.Index)

	requests, graphicsSlot, transferSlot := planQueues(graphics, transfer)

	core.LogInfo("Creating logical device...")
	logical, err := instance.CreateDevice(physical, DeviceRequest{
		Queues:     requests,
		Extensions: requiredDeviceExtensions.Enabled(),
	})
	if err != nil {
		return nil, runtimeError(err)
	}
	core.LogInfo("Logical device created.")

	device := &Device{
		name:       physical.Name,
		typ:        physical.Type,
		apiVersion: physical.APIVersion,
		handle:     logical,
	}

	graphicsLock := &sync.Mutex{}
	transferLock := graphicsLock
	if graphicsSlot != transferSlot {
		transferLock = &sync.Mutex{}
	}

	rc := &RenderContext{
		id:       uuid.New(),
		profile:  profile,
		instance: instance,
		device:   device,
		graphics: newQueue(device, graphicsSlot, graphicsLock),
		transfer: newQueue(device, transferSlot, transferLock),
	}
	core.LogInfo("[%s] Queues obtained.", rc.id)
	return rc, nil
}

// runtimeError keeps driver errors that are already classified and files
// anything else under ErrRuntimeCall.
func runtimeError(err error) error {
	if errors.Is(err, core.ErrValidation) || errors.Is(err, core.ErrRuntimeCall) ||
		errors.Is(err, core.ErrRuntimeLoad) || errors.Is(err, core.ErrIncompatibleHardware) {
		return err
	}
	return fmt.Errorf("%w: %s", core.ErrRuntimeCall, err)
}

// unpackVersion decodes a Vulkan packed version.
func unpackVersion(v uint32) metadata.Version {
	return metadata.Version{
		Major: v >> 22,
		Minor: (v >> 12) & 0x3ff,
		Patch: v & 0xfff,
	}
}
