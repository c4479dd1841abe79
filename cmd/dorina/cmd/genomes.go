package cmd

import (
	"fmt"
	"sort"

	"github.com/grailbio/base/cmdutil"
	"v.io/x/lib/cmdline"

	"github.com/dieterich-lab/dorina/catalog"
	"github.com/dieterich-lab/dorina/engine/doraerr"
)

func newCmdGenomes() *cmdline.Command {
	cmd := &cmdline.Command{
		Name:  "genomes",
		Short: "List available genomes in a data directory",
	}
	dataPath := cmd.Flags.String("p", defaultDataPath(), "path to genomes and regulators")
	cmd.Runner = cmdutil.RunnerFunc(func(env *cmdline.Env, argv []string) error {
		return listGenomes(*dataPath)
	})
	return cmd
}

func listGenomes(dataPath string) error {
	c, err := catalog.Load(dataPath)
	if err != nil {
		return exitWith(&doraerr.CatalogError{Cause: err})
	}

	fmt.Println("Available genomes:")
	fmt.Println("------------------")
	for _, species := range sortedKeys(c.Genomes) {
		fmt.Printf("\t%s\n", species)
		assemblies := c.Genomes[species]
		names := make([]string, 0, len(assemblies))
		for name := range assemblies {
			names = append(names, name)
		}
		sort.Strings(names)
		for _, name := range names {
			fmt.Printf("\t\t%s\n", name)
			a := assemblies[name]
			regions := make([]string, 0, len(a.Regions))
			for region := range a.Regions {
				regions = append(regions, string(region))
			}
			sort.Strings(regions)
			for _, region := range regions {
				fmt.Printf("\t\t\t%s: %s\n", region, a.Regions[catalog.Region(region)].Path)
			}
		}
	}
	return nil
}

func sortedKeys[V any](m map[string]V) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
