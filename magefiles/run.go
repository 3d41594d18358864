//go:build mage

package main

import (
	"fmt"

	"github.com/magefile/mage/mg"
)

type Run mg.Namespace

// Builds the binary and runs it against hexil.toml.
func (Run) Engine() error {
	mg.Deps(Build.Binary)
	fmt.Println("Run engine...")
	if _, err := executeCmd("bin/hexil", withArgs("-config", "hexil.toml"), withStream()); err != nil {
		return err
	}
	return nil
}
