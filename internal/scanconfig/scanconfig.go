package scanconfig

import "strings"

// Config names the macro and environment sets that drive a scan. Reference
// macro names are matched case-insensitively; the label macro and the main
// environment names are matched exactly.
type Config struct {
	LabelMacro       string
	ReferenceMacros  []string
	MainEnvironments []string

	referenceSet map[string]struct{}
	mainEnvSet   map[string]struct{}
}

// New compiles the given sets into a ready-to-use Config.
func New(labelMacro string, referenceMacros, mainEnvironments []string) *Config {
	cfg := &Config{
		LabelMacro:       labelMacro,
		ReferenceMacros:  referenceMacros,
		MainEnvironments: mainEnvironments,
		referenceSet:     make(map[string]struct{}, len(referenceMacros)),
		mainEnvSet:       make(map[string]struct{}, len(mainEnvironments)),
	}
	for _, name := range referenceMacros {
		cfg.referenceSet[strings.ToLower(name)] = struct{}{}
	}
	for _, name := range mainEnvironments {
		cfg.mainEnvSet[name] = struct{}{}
	}
	return cfg
}

// Default returns the built-in scan configuration.
func Default() *Config {
	return New(defaultLabelMacro, defaultReferenceMacros(), defaultMainEnvironments())
}

// IsReferenceMacro reports whether name is a recognized cross-reference
// macro, ignoring letter case.
func (c *Config) IsReferenceMacro(name string) bool {
	_, ok := c.referenceSet[strings.ToLower(name)]
	return ok
}

// IsMainEnvironment reports whether name is a labelable, theorem-like
// environment kind that opens a fresh label scope.
func (c *Config) IsMainEnvironment(name string) bool {
	_, ok := c.mainEnvSet[name]
	return ok
}
