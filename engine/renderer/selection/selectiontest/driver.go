// Package selectiontest provides an in-memory selection.Driver for tests.
package selectiontest

import (
	"fmt"

	"github.com/spaghettifunk/hexil/engine/renderer/metadata"
	"github.com/spaghettifunk/hexil/engine/renderer/selection"
)

// Driver records every call made through it. Set the error fields to make
// the matching call fail.
type Driver struct {
	Devices []metadata.PhysicalDeviceInfo

	LoadErr         error
	CreateErr       error
	EnumerateErr    error
	CreateDeviceErr error

	Loads            int
	InstanceInfo     *selection.InstanceInfo
	Instance         *Instance
	DeviceRequest    *selection.DeviceRequest
	SelectedDevice   *metadata.PhysicalDeviceInfo
	LogicalDevice    *LogicalDevice
	InstancesCreated int

	// Calls lists teardown calls in the order they were made.
	Calls []string
}

func (d *Driver) Load() error {
	d.Loads++
	return d.LoadErr
}

func (d *Driver) CreateInstance(info selection.InstanceInfo) (selection.Instance, error) {
	if d.CreateErr != nil {
		return nil, d.CreateErr
	}
	d.InstancesCreated++
	d.InstanceInfo = &info
	d.Instance = &Instance{driver: d}
	return d.Instance, nil
}

type Instance struct {
	driver    *Driver
	Destroyed int
}

func (i *Instance) PhysicalDevices() ([]metadata.PhysicalDeviceInfo, error) {
	if i.driver.EnumerateErr != nil {
		return nil, i.driver.EnumerateErr
	}
	devices := make([]metadata.PhysicalDeviceInfo, len(i.driver.Devices))
	copy(devices, i.driver.Devices)
	for idx := range devices {
		devices[idx].Ordinal = idx
	}
	return devices, nil
}

func (i *Instance) CreateDevice(device metadata.PhysicalDeviceInfo, request selection.DeviceRequest) (selection.LogicalDevice, error) {
	if i.driver.CreateDeviceErr != nil {
		return nil, i.driver.CreateDeviceErr
	}
	i.driver.SelectedDevice = &device
	i.driver.DeviceRequest = &request
	i.driver.LogicalDevice = &LogicalDevice{}
	return i.driver.LogicalDevice, nil
}

func (i *Instance) Destroy() {
	i.Destroyed++
	i.driver.Calls = append(i.driver.Calls, "instance.destroy")
}

// QueueHandle is the handle handed out by LogicalDevice.Queue.
type QueueHandle struct {
	Family uint32
	Index  uint32
}

func (q QueueHandle) String() string {
	return fmt.Sprintf("queue(%d,%d)", q.Family, q.Index)
}

type LogicalDevice struct {
	driver      *Driver
	WaitIdleErr error
	Destroyed   int
	WaitIdles   int
}

func (d *LogicalDevice) Queue(family, index uint32) interface{} {
	return QueueHandle{Family: family, Index: index}
}

func (d *LogicalDevice) WaitIdle() error {
	d.WaitIdles++
	d.driver.Calls = append(d.driver.Calls, "wait-idle")
	return d.WaitIdleErr
}

func (d *LogicalDevice) Destroy() {
	d.Destroyed++
	d.driver.Calls = append(d.driver.Calls, "device.destroy")
}

// Device returns a device info of type t reporting every required extension
// and the given queue families.
func Device(name string, t metadata.DeviceType, families ...metadata.QueueFamily) metadata.PhysicalDeviceInfo {
	return metadata.PhysicalDeviceInfo{
		Name:          name,
		Type:          t,
		APIVersion:    1<<22 | 3<<12,
		Extensions:    selection.RequiredDeviceExtensions().Enabled(),
		QueueFamilies: families,
	}
}

// Family is shorthand for a queue family descriptor.
func Family(index, count uint32, flags metadata.QueueFlags) metadata.QueueFamily {
	return metadata.QueueFamily{Index: index, QueueCount: count, Flags: flags}
}
