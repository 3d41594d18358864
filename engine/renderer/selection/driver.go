package selection

import (
	"github.com/spaghettifunk/hexil/engine/renderer/metadata"
)

// Driver is the graphics runtime the builder talks to. Every call blocks and
// none of them can be cancelled.
type Driver interface {
	// Load locates and initializes the runtime library.
	Load() error
	CreateInstance(info InstanceInfo) (Instance, error)
}

// Instance is a live connection to the runtime.
type Instance interface {
	// PhysicalDevices enumerates the devices visible to the instance, in
	// driver order.
	PhysicalDevices() ([]metadata.PhysicalDeviceInfo, error)
	CreateDevice(device metadata.PhysicalDeviceInfo, request DeviceRequest) (LogicalDevice, error)
	Destroy()
}

// LogicalDevice is the application's connection to the chosen physical device.
type LogicalDevice interface {
	// Queue returns the runtime handle of queue index within family.
	Queue(family, index uint32) interface{}
	WaitIdle() error
	Destroy()
}

type InstanceInfo struct {
	ApplicationName    string
	ApplicationVersion metadata.Version
	Extensions         []string
	// Layers are enabled only when present on the host.
	Layers []string
}

type QueueRequest struct {
	Family uint32
	Count  uint32
}

type DeviceRequest struct {
	Queues     []QueueRequest
	Extensions []string
}
