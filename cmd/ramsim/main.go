// Command ramsim runs the simulated RAM installation engine.
package main

import (
	"github.com/sarchlab/ramsim/cmd/ramsim/cmd"
	"github.com/tebeka/atexit"
)

func main() {
	atexit.Exit(cmd.Execute())
}
