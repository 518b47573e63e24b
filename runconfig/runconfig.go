// Package runconfig loads a simulation run's YAML configuration: how many
// cycles to run, where to write the VCD trace, which module inputs and
// outputs bind to which host buffers, and where each memory's initial
// contents come from.
package runconfig

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// PortBinding names a module port and the host-side memory-mapped name
// (or file) it reads from or writes to.
type PortBinding struct {
	Port   string `yaml:"port"`
	Buffer string `yaml:"buffer"`
}

// MemoryInit names a memory node and the file its initial contents load
// from (one hex word per line, matching the memory's word width).
type MemoryInit struct {
	Memory string `yaml:"memory"`
	File   string `yaml:"file"`
}

// Run is one simulation run's full configuration.
type Run struct {
	Cycles  uint64        `yaml:"cycles"`
	VCDPath string        `yaml:"vcd_path"`
	Inputs  []PortBinding `yaml:"inputs"`
	Outputs []PortBinding `yaml:"outputs"`
	Memories []MemoryInit `yaml:"memories"`
}

// Load reads and parses a run configuration from path.
func Load(path string) (*Run, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("runconfig: failed to read %s: %w", path, err)
	}

	var r Run
	if err := yaml.Unmarshal(data, &r); err != nil {
		return nil, fmt.Errorf("runconfig: failed to parse %s: %w", path, err)
	}
	if r.Cycles == 0 {
		return nil, fmt.Errorf("runconfig: %s: cycles must be greater than zero", path)
	}
	return &r, nil
}
