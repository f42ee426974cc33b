package cli

import (
	"strconv"

	"github.com/spf13/cobra"

	"github.com/roach88/hackathon/internal/config"
	"github.com/roach88/hackathon/internal/hackathon"
	"github.com/roach88/hackathon/internal/wordlist"
)

// ProfileOptions are the flags shared by run and plan.
type ProfileOptions struct {
	ConfigFile string
	DataDir    string

	Ideas             int
	IdeaGenerators    int
	Packages          int
	PackageGenerators int
	Students          int
	Termination       string

	Products  string
	Customers string
	PkgNames  string
}

func (o *ProfileOptions) register(cmd *cobra.Command) {
	f := cmd.Flags()
	f.StringVar(&o.ConfigFile, "config", "", "YAML run profile")
	f.StringVar(&o.DataDir, "data-dir", "", "directory holding the three word lists")
	f.IntVar(&o.Ideas, "ideas", config.DefaultIdeas, "total ideas")
	f.IntVar(&o.IdeaGenerators, "idea-gen", config.DefaultIdeaGenerators, "idea generator workers")
	f.IntVar(&o.Packages, "pkgs", config.DefaultPackages, "total packages")
	f.IntVar(&o.PackageGenerators, "pkg-gen", config.DefaultPackageGenerators, "package downloader workers")
	f.IntVar(&o.Students, "students", config.DefaultStudents, "student workers")
	f.StringVar(&o.Termination, "termination", string(hackathon.TerminationBarrier), "termination policy (barrier|best-effort)")
	f.StringVar(&o.Products, "products", "", "product word list (overrides --data-dir)")
	f.StringVar(&o.Customers, "customers", "", "customer word list (overrides --data-dir)")
	f.StringVar(&o.PkgNames, "packages", "", "package word list (overrides --data-dir)")
}

// resolve layers defaults, the config file, positional counts, and
// explicitly set flags, in that order, and validates the result.
func (o *ProfileOptions) resolve(cmd *cobra.Command, args []string) (config.Config, error) {
	cfg := config.Default()
	if o.ConfigFile != "" {
		loaded, err := config.Load(o.ConfigFile)
		if err != nil {
			return cfg, WrapExitError(ExitCommandError, "failed to load config", err)
		}
		cfg = loaded
	}

	counts := make([]int, 0, len(args))
	for _, a := range args {
		n, err := strconv.Atoi(a)
		if err != nil {
			return cfg, WrapExitError(ExitCommandError, "invalid count argument", err)
		}
		counts = append(counts, n)
	}
	if err := cfg.ApplyArgs(counts); err != nil {
		return cfg, WrapExitError(ExitCommandError, "invalid arguments", err)
	}

	f := cmd.Flags()
	setInt := func(name string, dst *int, v int) {
		if f.Changed(name) {
			*dst = v
		}
	}
	setInt("ideas", &cfg.Ideas, o.Ideas)
	setInt("idea-gen", &cfg.IdeaGenerators, o.IdeaGenerators)
	setInt("pkgs", &cfg.Packages, o.Packages)
	setInt("pkg-gen", &cfg.PackageGenerators, o.PackageGenerators)
	setInt("students", &cfg.Students, o.Students)
	if f.Changed("termination") {
		cfg.Termination = o.Termination
	}

	if o.DataDir != "" {
		cfg.Data = wordlist.DefaultPaths(o.DataDir)
	}
	if o.Products != "" {
		cfg.Data.Products = o.Products
	}
	if o.Customers != "" {
		cfg.Data.Customers = o.Customers
	}
	if o.PkgNames != "" {
		cfg.Data.Packages = o.PkgNames
	}

	if err := cfg.Validate(); err != nil {
		return cfg, WrapExitError(ExitCommandError, "invalid configuration", err)
	}
	return cfg, nil
}
