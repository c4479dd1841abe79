package cmd

import (
	"fmt"
	"os"

	"github.com/grailbio/base/cmdutil"
	"v.io/x/lib/cmdline"

	"github.com/dieterich-lab/dorina/catalog"
	"github.com/dieterich-lab/dorina/config"
	"github.com/dieterich-lab/dorina/engine"
	"github.com/dieterich-lab/dorina/engine/doraerr"
	"github.com/dieterich-lab/dorina/gff"
)

type runFlags struct {
	seta     stringList
	setb     stringList
	genes    stringList
	matchA   *string
	matchB   *string
	regionA  *string
	regionB  *string
	combine  *string
	windowA  *int
	windowB  *int
	dataPath *string
}

func newCmdRun() *cmdline.Command {
	cmd := &cmdline.Command{
		Name:     "run",
		Short:    "Run a query: region set against one or two regulator sets",
		ArgsName: "assembly",
	}
	flags := runFlags{
		matchA:  cmd.Flags.String("match-a", "any", "any or all regulators in set A must match"),
		matchB:  cmd.Flags.String("match-b", "any", "any or all regulators in set B must match"),
		regionA: cmd.Flags.String("region-a", "any", "region to match set A in"),
		regionB: cmd.Flags.String("region-b", "any", "region to match set B in"),
		combine: cmd.Flags.String("C", "or", "set operation combining set A and set B: or, and, xor, not"),
		windowA: cmd.Flags.Int("window-a", -1, "windowed search distance for set A, -1 disables"),
		windowB: cmd.Flags.Int("window-b", -1, "windowed search distance for set B, -1 disables"),
		dataPath: cmd.Flags.String("p", defaultDataPath(), "path to genomes and regulators"),
	}
	cmd.Flags.Var(&flags.seta, "a", "regulator to match in set A (repeatable)")
	cmd.Flags.Var(&flags.setb, "b", "regulator to match in set B (repeatable)")
	cmd.Flags.Var(&flags.genes, "genes", "restrict to these gene ids (repeatable, default all)")

	cmd.Runner = cmdutil.RunnerFunc(func(env *cmdline.Env, argv []string) error {
		if len(argv) != 1 {
			return fmt.Errorf("run takes one assembly argument, but got %v", argv)
		}
		return runQuery(flags, argv[0])
	})
	return cmd
}

func defaultDataPath() string {
	cfg, err := config.Load(defaultConfigPath())
	if err != nil {
		return ""
	}
	return cfg.DataPath
}

func runQuery(flags runFlags, assembly string) error {
	c, err := catalog.Load(*flags.dataPath)
	if err != nil {
		return exitWith(&doraerr.CatalogError{Cause: err})
	}

	matchA, err := parseMatch(*flags.matchA)
	if err != nil {
		return exitWith(err)
	}
	regionA, err := catalog.ParseRegion(*flags.regionA)
	if err != nil {
		return exitWith(&doraerr.UnknownRegionError{Assembly: assembly, Region: *flags.regionA})
	}

	q := engine.Query{
		Assembly: assembly,
		A: engine.Side{
			Regulators: []string(flags.seta),
			Match:      matchA,
			Region:     regionA,
			Window:     *flags.windowA,
		},
		Genes: genesFilter(flags.genes),
	}

	if len(flags.setb) > 0 {
		matchB, err := parseMatch(*flags.matchB)
		if err != nil {
			return exitWith(err)
		}
		regionB, err := catalog.ParseRegion(*flags.regionB)
		if err != nil {
			return exitWith(&doraerr.UnknownRegionError{Assembly: assembly, Region: *flags.regionB})
		}
		combine, err := parseCombine(*flags.combine)
		if err != nil {
			return exitWith(err)
		}
		q.B = &engine.Side{
			Regulators: []string(flags.setb),
			Match:      matchB,
			Region:     regionB,
			Window:     *flags.windowB,
		}
		q.Combine = combine
	}

	run, err := engine.New(c, q)
	if err != nil {
		return exitWith(err)
	}
	hits, err := run.Execute()
	if err != nil {
		return exitWith(err)
	}

	recs := make([]gff.Record, len(hits))
	for i, h := range hits {
		recs[i] = h.ToGFF()
	}
	if err := gff.WriteTo(os.Stdout, recs); err != nil {
		return exitWith(err)
	}
	return nil
}

func genesFilter(ids stringList) engine.GenesFilter {
	if len(ids) == 0 {
		return engine.GenesFilter{All: true}
	}
	for _, id := range ids {
		if id == "all" {
			return engine.GenesFilter{All: true}
		}
	}
	return engine.GenesFilter{IDs: []string(ids)}
}

func parseMatch(s string) (engine.Match, error) {
	switch s {
	case "any":
		return engine.MatchAny, nil
	case "all":
		return engine.MatchAll, nil
	default:
		return "", &doraerr.InvalidQueryError{Reason: fmt.Sprintf("unknown match mode %q", s)}
	}
}

func parseCombine(s string) (engine.CombineOp, error) {
	switch s {
	case "or":
		return engine.CombineOr, nil
	case "and":
		return engine.CombineAnd, nil
	case "xor":
		return engine.CombineXor, nil
	case "not":
		return engine.CombineNot, nil
	default:
		return "", &doraerr.InvalidQueryError{Reason: fmt.Sprintf("unknown combine operator %q", s)}
	}
}

// exitWith terminates the process with the exit code spec §7 assigns to
// err's kind, matching the teacher's direct os.Exit calls in cmd/bio-fusion
// and cmd/bio-bam-sort rather than threading a code back through cmdline.
func exitWith(err error) error {
	fmt.Fprintln(os.Stderr, err)
	os.Exit(doraerr.ExitCode(err))
	return nil
}
