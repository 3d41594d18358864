/*
hexil picks the GPU best suited to the configured power profile and brings up
a Vulkan device with a graphics and a transfer queue on it.
*/
package main

import (
	"errors"
	"flag"
	"fmt"
	"os"

	"github.com/spaghettifunk/hexil/engine"
	"github.com/spaghettifunk/hexil/engine/core"
	"github.com/spaghettifunk/hexil/engine/platform"
	"github.com/spaghettifunk/hexil/engine/renderer/selection"
	"github.com/spaghettifunk/hexil/engine/renderer/vulkan"
)

func main() {
	configPath := flag.String("config", "hexil.toml", "path to the TOML configuration file")
	flag.Parse()

	if err := run(*configPath); err != nil {
		if errors.Is(err, core.ErrIncompatibleHardware) {
			fmt.Fprintln(os.Stderr, "hexil: hardware requirements are not met: no GPU supports the required Vulkan extensions and queues")
		} else {
			fmt.Fprintf(os.Stderr, "hexil: %s\n", err)
		}
		os.Exit(1)
	}
}

func run(configPath string) error {
	cfg, err := engine.LoadApplicationConfig(configPath)
	if err != nil {
		return err
	}
	core.SetLogLevel(cfg.Log.Level)

	p := platform.New()
	defer p.Shutdown()

	e, err := engine.New(cfg, vulkan.NewDriver(p), selection.WithInstanceExtensions(vulkan.InstanceExtensions()...))
	if err != nil {
		return err
	}
	if err := e.Initialize(); err != nil {
		return err
	}
	return e.Shutdown()
}
