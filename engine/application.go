package engine

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/pelletier/go-toml/v2"

	"github.com/spaghettifunk/hexil/engine/core"
	"github.com/spaghettifunk/hexil/engine/renderer/metadata"
)

type ApplicationConfig struct {
	Application ApplicationSection `toml:"application"`
	Renderer    RendererSection    `toml:"renderer"`
	Log         LogSection         `toml:"log"`
}

type ApplicationSection struct {
	// The application name reported to the Vulkan runtime.
	Name    string           `toml:"name"`
	Version metadata.Version `toml:"version"`
}

type RendererSection struct {
	PowerProfile metadata.PowerProfile `toml:"power_profile"`
	// Enable VK_LAYER_KHRONOS_validation when the host provides it.
	Validation bool `toml:"validation"`
}

type LogSection struct {
	Level core.LogLevel `toml:"level"`
}

// DefaultApplicationConfig is used as is when no configuration file exists and
// as the base that a file overrides otherwise.
func DefaultApplicationConfig() *ApplicationConfig {
	return &ApplicationConfig{
		Application: ApplicationSection{
			Name:    "hexil",
			Version: metadata.Version{Major: 0, Minor: 1, Patch: 0},
		},
		Renderer: RendererSection{
			PowerProfile: metadata.PowerProfileHighPower,
			Validation:   false,
		},
		Log: LogSection{
			Level: core.LogLevelDebug,
		},
	}
}

// LoadApplicationConfig reads the TOML file at path. A missing file yields the
// defaults.
func LoadApplicationConfig(path string) (*ApplicationConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			core.LogDebug("no configuration at '%s', using defaults", path)
			return DefaultApplicationConfig(), nil
		}
		return nil, err
	}
	cfg, err := ParseApplicationConfig(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return cfg, nil
}

func ParseApplicationConfig(r io.Reader) (*ApplicationConfig, error) {
	cfg := DefaultApplicationConfig()
	decoder := toml.NewDecoder(r)
	decoder.DisallowUnknownFields()
	if err := decoder.Decode(cfg); err != nil {
		var strict *toml.StrictMissingError
		if errors.As(err, &strict) {
			return nil, fmt.Errorf("invalid configuration: %s", strict.String())
		}
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}
	if cfg.Application.Name == "" {
		return nil, fmt.Errorf("invalid configuration: application.name must not be empty")
	}
	return cfg, nil
}
