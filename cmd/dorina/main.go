// Command dorina is the doRiNA query engine's CLI: run, genomes, and
// regulators subcommands over an on-disk genome/regulator data directory
// (spec.md §6).
package main

import (
	"github.com/grailbio/base/grail"

	"github.com/dieterich-lab/dorina/cmd/dorina/cmd"
)

func main() {
	shutdown := grail.Init()
	defer shutdown()
	cmd.Run()
}
