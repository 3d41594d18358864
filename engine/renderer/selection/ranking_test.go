package selection_test

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/spaghettifunk/hexil/engine/renderer/metadata"
	"github.com/spaghettifunk/hexil/engine/renderer/selection"
	"github.com/spaghettifunk/hexil/engine/renderer/selection/selectiontest"
)

var (
	allTypes = []metadata.DeviceType{
		metadata.DeviceTypeOther,
		metadata.DeviceTypeIntegratedGPU,
		metadata.DeviceTypeDiscreteGPU,
		metadata.DeviceTypeVirtualGPU,
		metadata.DeviceTypeCPU,
	}
	allProfiles = []metadata.PowerProfile{
		metadata.PowerProfileHighPower,
		metadata.PowerProfileEfficient,
	}
)

func TestCompareSelfPairsAreEqual(t *testing.T) {
	for _, p := range allProfiles {
		for _, a := range allTypes {
			assert.Equal(t, selection.Equal, selection.Compare(p, a, a), "%s: %s vs itself", p, a)
		}
	}
}

func TestCompareIsAntisymmetric(t *testing.T) {
	for _, p := range allProfiles {
		for _, a := range allTypes {
			for _, b := range allTypes {
				assert.Equal(t, selection.Compare(p, a, b).Inverse(), selection.Compare(p, b, a),
					"%s: %s vs %s", p, a, b)
			}
		}
	}
}

func TestCompareMatchesReferenceOrder(t *testing.T) {
	// higher is better; equal ranks tie
	ranks := map[metadata.PowerProfile]map[metadata.DeviceType]int{
		metadata.PowerProfileHighPower: {
			metadata.DeviceTypeDiscreteGPU:   3,
			metadata.DeviceTypeVirtualGPU:    2,
			metadata.DeviceTypeIntegratedGPU: 1,
			metadata.DeviceTypeOther:         1,
			metadata.DeviceTypeCPU:           0,
		},
		metadata.PowerProfileEfficient: {
			metadata.DeviceTypeIntegratedGPU: 4,
			metadata.DeviceTypeVirtualGPU:    3,
			metadata.DeviceTypeOther:         2,
			metadata.DeviceTypeDiscreteGPU:   1,
			metadata.DeviceTypeCPU:           0,
		},
	}

	for p, rank := range ranks {
		for _, a := range allTypes {
			for _, b := range allTypes {
				want := selection.Equal
				switch {
				case rank[a] > rank[b]:
					want = selection.Greater
				case rank[a] < rank[b]:
					want = selection.Less
				}
				assert.Equal(t, want, selection.Compare(p, a, b), "%s: %s vs %s", p, a, b)
			}
		}
	}
}

func TestCompareSpotChecks(t *testing.T) {
	tests := []struct {
		profile metadata.PowerProfile
		a, b    metadata.DeviceType
		want    selection.Ordering
	}{
		{metadata.PowerProfileHighPower, metadata.DeviceTypeOther, metadata.DeviceTypeIntegratedGPU, selection.Equal},
		{metadata.PowerProfileHighPower, metadata.DeviceTypeOther, metadata.DeviceTypeDiscreteGPU, selection.Less},
		{metadata.PowerProfileHighPower, metadata.DeviceTypeVirtualGPU, metadata.DeviceTypeIntegratedGPU, selection.Greater},
		{metadata.PowerProfileEfficient, metadata.DeviceTypeOther, metadata.DeviceTypeIntegratedGPU, selection.Less},
		{metadata.PowerProfileEfficient, metadata.DeviceTypeOther, metadata.DeviceTypeDiscreteGPU, selection.Greater},
		{metadata.PowerProfileEfficient, metadata.DeviceTypeVirtualGPU, metadata.DeviceTypeDiscreteGPU, selection.Greater},
		{metadata.PowerProfileEfficient, metadata.DeviceTypeVirtualGPU, metadata.DeviceTypeOther, selection.Greater},
		{metadata.PowerProfileEfficient, metadata.DeviceTypeIntegratedGPU, metadata.DeviceTypeVirtualGPU, selection.Greater},
		{metadata.PowerProfileEfficient, metadata.DeviceTypeCPU, metadata.DeviceTypeDiscreteGPU, selection.Less},
	}

	for _, tt := range tests {
		t.Run(fmt.Sprintf("%s/%s-%s", tt.profile, tt.a, tt.b), func(t *testing.T) {
			assert.Equal(t, tt.want, selection.Compare(tt.profile, tt.a, tt.b))
		})
	}
}

func TestCompareUnknownTypeRanksAsOther(t *testing.T) {
	unknown := metadata.DeviceType(42)
	for _, p := range allProfiles {
		for _, b := range allTypes {
			assert.Equal(t, selection.Compare(p, metadata.DeviceTypeOther, b), selection.Compare(p, unknown, b))
		}
	}
}

func TestSelectDevice(t *testing.T) {
	integrated := selectiontest.Device("igpu", metadata.DeviceTypeIntegratedGPU)
	discrete := selectiontest.Device("dgpu", metadata.DeviceTypeDiscreteGPU)
	discrete2 := selectiontest.Device("dgpu-2", metadata.DeviceTypeDiscreteGPU)
	virtual := selectiontest.Device("vgpu", metadata.DeviceTypeVirtualGPU)
	cpu := selectiontest.Device("llvmpipe", metadata.DeviceTypeCPU)

	tests := []struct {
		name     string
		profile  metadata.PowerProfile
		devices  []metadata.PhysicalDeviceInfo
		expected string
	}{
		{"high power prefers discrete", metadata.PowerProfileHighPower, []metadata.PhysicalDeviceInfo{integrated, discrete, cpu}, "dgpu"},
		{"efficient prefers integrated", metadata.PowerProfileEfficient, []metadata.PhysicalDeviceInfo{discrete, integrated, cpu}, "igpu"},
		{"efficient prefers virtual over discrete", metadata.PowerProfileEfficient, []metadata.PhysicalDeviceInfo{discrete, virtual}, "vgpu"},
		{"cpu only", metadata.PowerProfileHighPower, []metadata.PhysicalDeviceInfo{cpu}, "llvmpipe"},
		{"tie keeps first enumerated", metadata.PowerProfileHighPower, []metadata.PhysicalDeviceInfo{discrete, discrete2}, "dgpu"},
		{"tie keeps first enumerated reversed", metadata.PowerProfileHighPower, []metadata.PhysicalDeviceInfo{discrete2, discrete}, "dgpu-2"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := selection.SelectDevice(tt.profile, tt.devices)
			require.True(t, ok)
			assert.Equal(t, tt.expected, got.Name)
		})
	}

	_, ok := selection.SelectDevice(metadata.PowerProfileHighPower, nil)
	assert.False(t, ok)
}
