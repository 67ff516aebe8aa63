package ram

import (
	"runtime"
	"strings"

	"github.com/shirou/gopsutil/v3/host"
)

// A TechnologyDetector decides which memory technology the host uses.
type TechnologyDetector interface {
	Detect() Technology
}

// FixedDetector always reports the same technology.
type FixedDetector struct {
	Technology Technology
}

// Detect returns the fixed technology.
func (d FixedDetector) Detect() Technology {
	return d.Technology
}

// ArchDetector guesses the technology from the kernel architecture. ARM hosts
// get LPDDR4 and everything else gets a random desktop technology.
type ArchDetector struct {
	arch    func() (string, error)
	chooser Chooser
}

// NewArchDetector creates an ArchDetector that asks the host for its kernel
// architecture.
func NewArchDetector(chooser Chooser) *ArchDetector {
	return &ArchDetector{
		arch:    host.KernelArch,
		chooser: chooser,
	}
}

// Detect returns the guessed technology. If the kernel architecture cannot
// be read, the architecture the binary was built for is used instead.
func (d *ArchDetector) Detect() Technology {
	arch, err := d.arch()
	if err != nil || arch == "" {
		arch = runtime.GOARCH
	}

	return TechnologyForArch(arch, d.chooser)
}

// TechnologyForArch applies the architecture heuristic to arch.
func TechnologyForArch(arch string, chooser Chooser) Technology {
	arch = strings.ToLower(arch)
	if strings.Contains(arch, "arm") || arch == "aarch64" {
		return LPDDR4
	}

	return DesktopTechnologies[chooser.IntN(len(DesktopTechnologies))]
}
