package lrdebug

import (
	"sort"

	"gopkg.in/yaml.v3"

	"github.com/yaklabco/indentparse/pkg/lr"
)

// conflictDoc is the YAML-friendly shape of an lr.ConflictReport: plain
// strings and sorted ints instead of lr.Symbol, so the document is stable
// across runs, mirroring config.Config.ToYAML's approach of marshaling a
// plain mirror struct rather than the domain type directly.
type conflictDoc struct {
	Conflicts []conflictEntry `yaml:"conflicts"`
}

type conflictEntry struct {
	Nonterminal string `yaml:"nonterminal"`
	States      []int  `yaml:"states"`
}

// ToYAML serializes report into the same shape RenderTable presents,
// sorted for stable output.
func ToYAML(report lr.ConflictReport) ([]byte, error) {
	doc := conflictDoc{Conflicts: make([]conflictEntry, 0, len(report.Conflicts))}
	for _, c := range report.Conflicts {
		states := append([]int(nil), c.States...)
		sort.Ints(states)
		doc.Conflicts = append(doc.Conflicts, conflictEntry{Nonterminal: string(c.Nonterminal), States: states})
	}
	sort.Slice(doc.Conflicts, func(i, j int) bool { return doc.Conflicts[i].Nonterminal < doc.Conflicts[j].Nonterminal })

	return yaml.Marshal(doc)
}
