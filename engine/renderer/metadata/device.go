package metadata

import (
	"fmt"
	"strconv"
	"strings"
)

/** @brief The class of hardware a physical device belongs to. Values mirror VkPhysicalDeviceType. */
type DeviceType uint32

const (
	/** @brief Unclassified device. Also used for any value the driver reports that is not known here. */
	DeviceTypeOther DeviceType = iota
	/** @brief GPU embedded in or tightly coupled with the host. */
	DeviceTypeIntegratedGPU
	/** @brief Separate GPU connected through an interconnect. */
	DeviceTypeDiscreteGPU
	/** @brief Virtual node in a virtualization environment. */
	DeviceTypeVirtualGPU
	/** @brief Software rasterizer running on the host CPU. */
	DeviceTypeCPU
)

// DeviceTypeCount is the number of known device types.
const DeviceTypeCount = int(DeviceTypeCPU) + 1

// Normalize folds unknown values into DeviceTypeOther.
func (t DeviceType) Normalize() DeviceType {
	if int(t) >= DeviceTypeCount {
		return DeviceTypeOther
	}
	return t
}

func (t DeviceType) String() string {
	switch t.Normalize() {
	case DeviceTypeIntegratedGPU:
		return "Integrated"
	case DeviceTypeDiscreteGPU:
		return "Discrete"
	case DeviceTypeVirtualGPU:
		return "Virtual"
	case DeviceTypeCPU:
		return "CPU"
	default:
		return "Unknown"
	}
}

/** @brief The caller's preference between throughput and power draw. */
type PowerProfile uint8

const (
	/** @brief Prefer raw throughput. */
	PowerProfileHighPower PowerProfile = iota
	/** @brief Prefer low power draw. */
	PowerProfileEfficient
)

func ParsePowerProfile(s string) (PowerProfile, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "high-power", "highpower", "high_power":
		return PowerProfileHighPower, nil
	case "efficient":
		return PowerProfileEfficient, nil
	default:
		return 0, fmt.Errorf("unknown power profile %q", s)
	}
}

func (p PowerProfile) String() string {
	switch p {
	case PowerProfileHighPower:
		return "high-power"
	case PowerProfileEfficient:
		return "efficient"
	default:
		return fmt.Sprintf("PowerProfile(%d)", uint8(p))
	}
}

func (p PowerProfile) MarshalText() ([]byte, error) {
	switch p {
	case PowerProfileHighPower, PowerProfileEfficient:
		return []byte(p.String()), nil
	default:
		return nil, fmt.Errorf("unknown power profile %d", uint8(p))
	}
}

func (p *PowerProfile) UnmarshalText(text []byte) error {
	v, err := ParsePowerProfile(string(text))
	if err != nil {
		return err
	}
	*p = v
	return nil
}

/** @brief Capabilities of a queue family. Bit values mirror VkQueueFlagBits. */
type QueueFlags uint32

const (
	QueueGraphics      QueueFlags = 0x1
	QueueCompute       QueueFlags = 0x2
	QueueTransfer      QueueFlags = 0x4
	QueueSparseBinding QueueFlags = 0x8
)

// Has reports whether every bit of flag is set.
func (f QueueFlags) Has(flag QueueFlags) bool {
	return flag != 0 && f&flag == flag
}

func (f QueueFlags) String() string {
	names := []string{}
	if f.Has(QueueGraphics) {
		names = append(names, "graphics")
	}
	if f.Has(QueueCompute) {
		names = append(names, "compute")
	}
	if f.Has(QueueTransfer) {
		names = append(names, "transfer")
	}
	if f.Has(QueueSparseBinding) {
		names = append(names, "sparse")
	}
	if len(names) == 0 {
		return "none"
	}
	return strings.Join(names, "|")
}

/** @brief A queue family as reported by a physical device. */
type QueueFamily struct {
	/** @brief The index of the family on its device. */
	Index uint32
	/** @brief The number of queues the family exposes. */
	QueueCount uint32
	/** @brief What work the queues of this family accept. */
	Flags QueueFlags
}

/**
 * @brief A read-only view of one physical device, valid while a device
 * is being selected. It is not retained once the render context exists.
 */
type PhysicalDeviceInfo struct {
	/** @brief Position of the device in the driver's enumeration order. */
	Ordinal int
	/** @brief The device name reported by the driver. */
	Name string
	/** @brief The class of the device. */
	Type DeviceType
	/** @brief Packed Vulkan API version supported by the device. */
	APIVersion uint32
	/** @brief Packed vendor specific driver version. */
	DriverVersion uint32
	/** @brief Names of the device extensions the device reports. */
	Extensions []string
	/** @brief The queue families of the device, in driver order. */
	QueueFamilies []QueueFamily
}

func (d PhysicalDeviceInfo) String() string {
	return fmt.Sprintf("%s (#%d, %s)", d.Name, d.Ordinal, d.Type)
}

/** @brief A semantic version, packed with MakeVersion when handed to Vulkan. */
type Version struct {
	Major uint32
	Minor uint32
	Patch uint32
}

// Vulkan packs minor and patch into 10 and 12 bits.
const (
	maxVersionMinor = 1<<10 - 1
	maxVersionPatch = 1<<12 - 1
)

func ParseVersion(s string) (Version, error) {
	trimmed := strings.TrimPrefix(strings.TrimSpace(s), "v")
	parts := strings.Split(trimmed, ".")
	if len(parts) != 3 {
		return Version{}, fmt.Errorf("invalid version %q: want major.minor.patch", s)
	}
	numbers := [3]uint32{}
	for i, part := range parts {
		n, err := strconv.ParseUint(part, 10, 32)
		if err != nil {
			return Version{}, fmt.Errorf("invalid version %q: %w", s, err)
		}
		numbers[i] = uint32(n)
	}
	v := Version{Major: numbers[0], Minor: numbers[1], Patch: numbers[2]}
	if err := v.Validate(); err != nil {
		return Version{}, fmt.Errorf("invalid version %q: %w", s, err)
	}
	return v, nil
}

// Validate reports whether v fits the Vulkan packed version layout.
func (v Version) Validate() error {
	if v.Minor > maxVersionMinor || v.Patch > maxVersionPatch {
		return fmt.Errorf("version %s out of range: minor must be at most %d and patch at most %d", v, maxVersionMinor, maxVersionPatch)
	}
	return nil
}

func (v Version) String() string {
	return fmt.Sprintf("%d.%d.%d", v.Major, v.Minor, v.Patch)
}

func (v Version) MarshalText() ([]byte, error) {
	return []byte(v.String()), nil
}

func (v *Version) UnmarshalText(text []byte) error {
	parsed, err := ParseVersion(string(text))
	if err != nil {
		return err
	}
	*v = parsed
	return nil
}
