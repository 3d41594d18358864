package selection

import (
	"github.com/spaghettifunk/hexil/engine/renderer/metadata"
)

// Ordering is the outcome of comparing two device types.
type Ordering int

const (
	Less    Ordering = -1
	Equal   Ordering = 0
	Greater Ordering = 1
)

// Inverse swaps Less and Greater.
func (o Ordering) Inverse() Ordering {
	return -o
}

func (o Ordering) String() string {
	switch o {
	case Less:
		return "Less"
	case Greater:
		return "Greater"
	default:
		return "Equal"
	}
}

const (
	lt = Less
	eq = Equal
	gt = Greater
)

// deviceOrdering[profile][a][b] is the result of comparing type a against
// type b. Rows and columns follow metadata.DeviceType order:
// Other, Integrated, Discrete, Virtual, CPU.
var deviceOrdering = [2][metadata.DeviceTypeCount][metadata.DeviceTypeCount]Ordering{
	// Discrete > Virtual > Integrated = Other > CPU
	metadata.PowerProfileHighPower: {
		metadata.DeviceTypeOther:         {eq, eq, lt, lt, gt},
		metadata.DeviceTypeIntegratedGPU: {eq, eq, lt, lt, gt},
		metadata.DeviceTypeDiscreteGPU:   {gt, gt, eq, gt, gt},
		metadata.DeviceTypeVirtualGPU:    {gt, gt, lt, eq, gt},
		metadata.DeviceTypeCPU:           {lt, lt, lt, lt, eq},
	},
	// Integrated > Virtual > Other > Discrete > CPU
	metadata.PowerProfileEfficient: {
		metadata.DeviceTypeOther:         {eq, lt, gt, lt, gt},
		metadata.DeviceTypeIntegratedGPU: {gt, eq, gt, gt, gt},
		metadata.DeviceTypeDiscreteGPU:   {lt, lt, eq, lt, gt},
		metadata.DeviceTypeVirtualGPU:    {gt, lt, gt, eq, gt},
		metadata.DeviceTypeCPU:           {lt, lt, lt, lt, eq},
	},
}

// Compare orders device type a against b under profile. Unknown device types
// rank as Other; an unknown profile ranks as HighPower.
func Compare(profile metadata.PowerProfile, a, b metadata.DeviceType) Ordering {
	if int(profile) >= len(deviceOrdering) {
		profile = metadata.PowerProfileHighPower
	}
	return deviceOrdering[profile][a.Normalize()][b.Normalize()]
}

// SelectDevice returns the highest ranked device under profile. Among devices
// ranking equal, the first one in enumeration order wins.
func SelectDevice(profile metadata.PowerProfile, devices []metadata.PhysicalDeviceInfo) (metadata.PhysicalDeviceInfo, bool) {
	if len(devices) == 0 {
		return metadata.PhysicalDeviceInfo{}, false
	}
	best := devices[0]
	for _, candidate := range devices[1:] {
		if Compare(profile, candidate.Type, best.Type) == Greater {
			best = candidate
		}
	}
	return best, true
}
