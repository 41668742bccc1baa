package config

import (
	"fmt"

	"gopkg.in/yaml.v3"
)

type MovesConfig struct {
	Moves []MoveDef `yaml:"moves"`
}

// MoveDef mirrors one catalog entry. Power and accuracy are pointers
// because the catalogs use null for "no damage" and "never misses".
type MoveDef struct {
	ID       int    `yaml:"id"`
	Name     string `yaml:"ename"`
	Type     string `yaml:"type"`
	Power    *int   `yaml:"power"`
	Accuracy *int   `yaml:"accuracy"`
	Category string `yaml:"category"`
	PP       int    `yaml:"pp"`
}

// UnmarshalYAML accepts a bare list of moves as well as a `moves:` mapping.
func (c *MovesConfig) UnmarshalYAML(node *yaml.Node) error {
	switch node.Kind {
	case yaml.SequenceNode:
		return node.Decode(&c.Moves)
	case yaml.MappingNode:
		type plain MovesConfig
		return node.Decode((*plain)(c))
	}
	return fmt.Errorf("line %d: moves must be a list or a mapping", node.Line)
}
