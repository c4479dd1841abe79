// Package cmd wires the dorina binary's subcommands onto v.io/x/lib/cmdline,
// the same dispatch library the teacher uses in cmd/bio-pamtool/cmd.
package cmd

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/grailbio/base/log"
	"v.io/x/lib/cmdline"
)

// defaultConfigPath is where the ini-shaped configuration (spec.md §6) is
// expected to live; a missing or unreadable file just means defaultDataPath
// falls back to the empty string, requiring callers to pass -p explicitly.
func defaultConfigPath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".dorina.cfg")
}

// stringList is a repeatable string flag, e.g. -a PARCLIP_scifi -a PICTAR_fake01.
type stringList []string

func (s *stringList) String() string {
	if s == nil {
		return ""
	}
	return fmt.Sprintf("%q", []string(*s))
}

func (s *stringList) Set(v string) error {
	*s = append(*s, v)
	return nil
}

func Run() {
	log.SetFlags(log.Ldate | log.Ltime | log.Lmicroseconds | log.Lshortfile)
	cmdline.HideGlobalFlagsExcept()
	cmdline.Main(&cmdline.Command{
		Name:     "dorina",
		Short:    "Query annotated genome regions against regulator binding sites",
		LookPath: false,
		Children: []*cmdline.Command{
			newCmdRun(),
			newCmdGenomes(),
			newCmdRegulators(),
		},
	})
}
