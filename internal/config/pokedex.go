package config

import (
	"fmt"

	"gopkg.in/yaml.v3"
)

type PokedexConfig struct {
	Entries []DexEntry `yaml:"pokedex"`
}

type DexEntry struct {
	ID    int       `yaml:"id"`
	Name  DexName   `yaml:"name"`
	Types []string  `yaml:"type"`
	Base  BaseStats `yaml:"base"`
}

type BaseStats struct {
	HP        int `yaml:"HP"`
	Attack    int `yaml:"Attack"`
	Defense   int `yaml:"Defense"`
	SpAttack  int `yaml:"Sp. Attack"`
	SpDefense int `yaml:"Sp. Defense"`
	Speed     int `yaml:"Speed"`
}

// DexName is either a plain string or a per-language mapping, in which
// case the english entry is used.
type DexName string

func (n *DexName) UnmarshalYAML(node *yaml.Node) error {
	switch node.Kind {
	case yaml.ScalarNode:
		*n = DexName(node.Value)
		return nil
	case yaml.MappingNode:
		var names map[string]string
		if err := node.Decode(&names); err != nil {
			return err
		}
		if en, ok := names["english"]; ok {
			*n = DexName(en)
			return nil
		}
		return fmt.Errorf("line %d: name mapping has no english entry", node.Line)
	}
	return fmt.Errorf("line %d: unsupported name", node.Line)
}

func (c *PokedexConfig) UnmarshalYAML(node *yaml.Node) error {
	switch node.Kind {
	case yaml.SequenceNode:
		return node.Decode(&c.Entries)
	case yaml.MappingNode:
		type plain PokedexConfig
		return node.Decode((*plain)(c))
	}
	return fmt.Errorf("line %d: pokedex must be a list or a mapping", node.Line)
}
