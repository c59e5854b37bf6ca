package script

import (
	"fmt"
	"io"

	"gopkg.in/yaml.v3"
)

// Fixture is a YAML description of an initial population of groups and
// records:
//
//	groups: [1, 2, 3]
//	records:
//	  - {id: 10, group: 1, rank: 5}
//	  - {id: 11, group: 2, rank: 9}
type Fixture struct {
	Groups  []int           `yaml:"groups"`
	Records []FixtureRecord `yaml:"records"`
}

// FixtureRecord describes a record of a fixture.
type FixtureRecord struct {
	ID    int `yaml:"id"`
	Group int `yaml:"group"`
	Rank  int `yaml:"rank"`
}

// LoadFixture decodes a YAML fixture. An empty document yields an empty
// fixture.
func LoadFixture(r io.Reader) (*Fixture, error) {
	f := &Fixture{}
	if err := yaml.NewDecoder(r).Decode(f); err != nil && err != io.EOF {
		return nil, fmt.Errorf("decoding fixture: %w", err)
	}
	return f, nil
}

// Commands translates the fixture into script commands, groups first.
func (f *Fixture) Commands() []Command {
	cmds := make([]Command, 0, len(f.Groups)+len(f.Records))
	for _, g := range f.Groups {
		cmds = append(cmds, Command{Op: "add-group", Args: []int{g}})
	}
	for _, r := range f.Records {
		cmds = append(cmds, Command{Op: "add-record", Args: []int{r.ID, r.Group, r.Rank}})
	}
	return cmds
}
