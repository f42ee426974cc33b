// Package config loads and validates run profiles.
//
// Sources are layered: Default, then an optional YAML file, then whatever
// the caller (the CLI) overrides. Validate checks the result against an
// embedded CUE schema and then against the pipeline's own rules.
package config

import (
	"bytes"
	_ "embed"
	"fmt"
	"os"

	"cuelang.org/go/cue"
	"cuelang.org/go/cue/cuecontext"
	"gopkg.in/yaml.v3"

	"github.com/roach88/hackathon/internal/hackathon"
	"github.com/roach88/hackathon/internal/wordlist"
)

//go:embed schema.cue
var schemaCUE string

// Built-in run counts.
const (
	DefaultIdeas             = 80
	DefaultIdeaGenerators    = 2
	DefaultPackages          = 4000
	DefaultPackageGenerators = 6
	DefaultStudents          = 6
	DefaultDataDir           = "data"
)

// Config is a complete run profile.
type Config struct {
	Ideas             int    `yaml:"ideas" json:"ideas"`
	IdeaGenerators    int    `yaml:"idea_generators" json:"idea_generators"`
	Packages          int    `yaml:"packages" json:"packages"`
	PackageGenerators int    `yaml:"package_generators" json:"package_generators"`
	Students          int    `yaml:"students" json:"students"`
	Termination       string `yaml:"termination" json:"termination"`

	// Data locates the word lists.
	Data wordlist.Paths `yaml:"data" json:"data"`

	// Database is an optional SQLite ledger path. Empty disables recording.
	Database string `yaml:"database,omitempty" json:"database,omitempty"`
}

// Default returns the built-in profile.
func Default() Config {
	return Config{
		Ideas:             DefaultIdeas,
		IdeaGenerators:    DefaultIdeaGenerators,
		Packages:          DefaultPackages,
		PackageGenerators: DefaultPackageGenerators,
		Students:          DefaultStudents,
		Termination:       string(hackathon.TerminationBarrier),
		Data:              wordlist.DefaultPaths(DefaultDataDir),
	}
}

// Load reads a YAML profile on top of Default. Keys absent from the file
// keep their default values; unknown keys are rejected.
func Load(path string) (Config, error) {
	cfg := Default()

	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, fmt.Errorf("failed to read config file: %w", err)
	}

	decoder := yaml.NewDecoder(bytes.NewReader(data))
	decoder.KnownFields(true) // Reject typos like "student:"
	if err := decoder.Decode(&cfg); err != nil {
		return cfg, fmt.Errorf("failed to parse YAML: %w", err)
	}
	return cfg, nil
}

// Validate checks c against the CUE schema and the pipeline rules.
// Every failure is a hackathon ConfigurationError.
func (c Config) Validate() error {
	ctx := cuecontext.New()
	schema := ctx.CompileString(schemaCUE, cue.Filename("schema.cue"))
	if err := schema.Err(); err != nil {
		return fmt.Errorf("compile config schema: %w", err)
	}

	run := schema.LookupPath(cue.ParsePath("#Run"))
	unified := run.Unify(ctx.Encode(c))
	if err := unified.Validate(cue.Concrete(true)); err != nil {
		return &hackathon.Error{
			Code:    hackathon.ErrCodeConfiguration,
			Message: "config does not match schema",
			Err:     err,
		}
	}

	return c.Hackathon().Validate()
}

// Hackathon converts the counts into a pipeline config.
func (c Config) Hackathon() hackathon.Config {
	return hackathon.Config{
		Ideas:             c.Ideas,
		IdeaGenerators:    c.IdeaGenerators,
		Packages:          c.Packages,
		PackageGenerators: c.PackageGenerators,
		Students:          c.Students,
		Termination:       hackathon.TerminationPolicy(c.Termination),
	}
}

// ApplyArgs overrides counts from positional arguments in the order
// ideas, idea generators, packages, package generators, students.
// Fewer than five arguments leave the remaining counts untouched.
func (c *Config) ApplyArgs(args []int) error {
	if len(args) > 5 {
		return hackathon.NewConfigurationError("expected at most 5 counts, got %d", len(args))
	}
	fields := []*int{&c.Ideas, &c.IdeaGenerators, &c.Packages, &c.PackageGenerators, &c.Students}
	for i, v := range args {
		*fields[i] = v
	}
	return nil
}
