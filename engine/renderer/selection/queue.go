package selection

import (
	"github.com/spaghettifunk/hexil/engine/renderer/metadata"
)

// SelectQueueFamily returns the index of the family supporting flag with the
// most queues. Ties go to the family listed first.
func SelectQueueFamily(families []metadata.QueueFamily, flag metadata.QueueFlags) (uint32, bool) {
	family, ok := selectQueueFamily(families, flag)
	if !ok {
		return 0, false
	}
	return family.Index, true
}

func selectQueueFamily(families []metadata.QueueFamily, flag metadata.QueueFlags) (metadata.QueueFamily, bool) {
	var best metadata.QueueFamily
	found := false
	for _, family := range families {
		if family.QueueCount == 0 || !family.Flags.Has(flag) {
			continue
		}
		if !found || family.QueueCount > best.QueueCount {
			best = family
			found = true
		}
	}
	return best, found
}

// queueSlot addresses one queue of a logical device.
type queueSlot struct {
	family uint32
	index  uint32
}

// planQueues builds the queue requests for the graphics and transfer families.
// Vulkan forbids listing a family twice, so a shared family gets a single
// entry with up to two queues.
func planQueues(graphics, transfer metadata.QueueFamily) ([]QueueRequest, queueSlot, queueSlot) {
	if graphics.Index != transfer.Index {
		requests := []QueueRequest{
			{Family: graphics.Index, Count: 1},
			{Family: transfer.Index, Count: 1},
		}
		return requests, queueSlot{family: graphics.Index}, queueSlot{family: transfer.Index}
	}

	count := uint32(2)
	if graphics.QueueCount < count {
		count = graphics.QueueCount
	}
	requests := []QueueRequest{{Family: graphics.Index, Count: count}}
	return requests, queueSlot{family: graphics.Index}, queueSlot{family: graphics.Index, index: count - 1}
}
