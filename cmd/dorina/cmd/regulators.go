package cmd

import (
	"fmt"
	"sort"

	"github.com/grailbio/base/cmdutil"
	"v.io/x/lib/cmdline"

	"github.com/dieterich-lab/dorina/catalog"
	"github.com/dieterich-lab/dorina/engine/doraerr"
)

func newCmdRegulators() *cmdline.Command {
	cmd := &cmdline.Command{
		Name:  "regulators",
		Short: "List available regulators in a data directory",
	}
	dataPath := cmd.Flags.String("p", defaultDataPath(), "path to genomes and regulators")
	cmd.Runner = cmdutil.RunnerFunc(func(env *cmdline.Env, argv []string) error {
		return listRegulators(*dataPath)
	})
	return cmd
}

func listRegulators(dataPath string) error {
	c, err := catalog.Load(dataPath)
	if err != nil {
		return exitWith(&doraerr.CatalogError{Cause: err})
	}

	fmt.Println("Available regulators:")
	fmt.Println("---------------------")
	for _, species := range sortedKeys(c.Regulators) {
		fmt.Printf("\t%s\n", species)
		assemblies := c.Regulators[species]
		for _, assembly := range sortedKeys(assemblies) {
			fmt.Printf("\t\t%s\n", assembly)
			ids := make([]string, 0, len(assemblies[assembly]))
			for id := range assemblies[assembly] {
				ids = append(ids, id)
			}
			sort.Strings(ids)
			for _, id := range ids {
				fmt.Printf("\t\t\t%s\n", id)
			}
		}
	}
	return nil
}
