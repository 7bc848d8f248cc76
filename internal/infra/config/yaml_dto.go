package config

// YAMLConfig mirrors the on-disk layout of forecounter.yaml.
type YAMLConfig struct {
	ForeCounter struct {
		Store struct {
			Backend string `yaml:"backend"`
			Path    string `yaml:"path"`
		} `yaml:"store"`
		Logging struct {
			Debug *bool `yaml:"debug"`
		} `yaml:"logging"`
	} `yaml:"forecounter"`
}
