package config

// TypesConfig overrides the built-in type chart. Rows list only the
// matchups that are not neutral.
type TypesConfig struct {
	Chart map[string]map[string]float64 `yaml:"chart"`
}
