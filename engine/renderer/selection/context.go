package selection

import (
	"sync"

	"github.com/google/uuid"

	"github.com/spaghettifunk/hexil/engine/core"
	"github.com/spaghettifunk/hexil/engine/renderer/metadata"
)

// Device is the logical device of a RenderContext.
type Device struct {
	name       string
	typ        metadata.DeviceType
	apiVersion uint32

	handle LogicalDevice
}

func (d *Device) Name() string {
	return d.name
}

func (d *Device) Type() metadata.DeviceType {
	return d.typ
}

// APIVersion is the packed Vulkan API version the device supports.
func (d *Device) APIVersion() uint32 {
	return d.apiVersion
}

// Handle returns the driver's logical device.
func (d *Device) Handle() LogicalDevice {
	return d.handle
}

// Queue is a command submission channel. It does not own its device.
type Queue struct {
	device *Device
	family uint32
	index  uint32
	handle interface{}

	// shared with any other Queue aliasing the same runtime queue
	mu *sync.Mutex
}

func newQueue(device *Device, slot queueSlot, mu *sync.Mutex) *Queue {
	return &Queue{
		device: device,
		family: slot.family,
		index:  slot.index,
		handle: device.handle.Queue(slot.family, slot.index),
		mu:     mu,
	}
}

func (q *Queue) Device() *Device {
	return q.device
}

func (q *Queue) Family() uint32 {
	return q.family
}

func (q *Queue) Index() uint32 {
	return q.index
}

// Handle identifies the runtime queue, for comparison and logging. Work on the
// queue goes through Submit, which holds the queue's lock.
func (q *Queue) Handle() interface{} {
	return q.handle
}

// Submit runs fn with exclusive access to the queue handle. Vulkan requires
// submissions to one queue to be externally synchronized.
func (q *Queue) Submit(fn func(handle interface{}) error) error {
	q.mu.Lock()
	defer q.mu.Unlock()
	return fn(q.handle)
}

// RenderContext owns an instance, the logical device created from it and the
// graphics and transfer queues of that device. The device outlives its queues
// and the instance outlives the device; Destroy releases them in that order.
type RenderContext struct {
	id       uuid.UUID
	profile  metadata.PowerProfile
	instance Instance
	device   *Device
	graphics *Queue
	transfer *Queue

	destroyOnce sync.Once
}

func (rc *RenderContext) ID() uuid.UUID {
	return rc.id
}

// Profile is the power profile the device was selected with.
func (rc *RenderContext) Profile() metadata.PowerProfile {
	return rc.profile
}

func (rc *RenderContext) Instance() Instance {
	return rc.instance
}

func (rc *RenderContext) Device() *Device {
	return rc.device
}

func (rc *RenderContext) GraphicsQueue() *Queue {
	return rc.graphics
}

func (rc *RenderContext) TransferQueue() *Queue {
	return rc.transfer
}

// Destroy waits for the device to go idle and releases the device and the
// instance. Calling it more than once is a no-op.
func (rc *RenderContext) Destroy() {
	rc.destroyOnce.Do(func() {
		core.LogInfo("[%s] Destroying render context...", rc.id)
		if rc.device != nil && rc.device.handle != nil {
			if err := rc.device.handle.WaitIdle(); err != nil {
				core.LogWarn("[%s] Device did not go idle: %s", rc.id, err)
			}
			rc.device.handle.Destroy()
		}
		if rc.instance != nil {
			rc.instance.Destroy()
		}
		core.LogInfo("[%s] Render context destroyed.", rc.id)
	})
}
