package hackathon

import (
	"context"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/roach88/hackathon/internal/checksum"
	"github.com/roach88/hackathon/internal/queue"
)

// Config holds the five run counts and the termination policy.
type Config struct {
	Ideas             int               `json:"num_ideas"`
	IdeaGenerators    int               `json:"num_idea_gen"`
	Packages          int               `json:"num_pkgs"`
	PackageGenerators int               `json:"num_pkg_gen"`
	Students          int               `json:"num_students"`
	Termination       TerminationPolicy `json:"termination"`
}

// Validate checks counts before anything is spawned.
func (c Config) Validate() error {
	if c.Ideas < 0 || c.Packages < 0 {
		return NewConfigurationError("totals must not be negative (ideas=%d, packages=%d)", c.Ideas, c.Packages)
	}
	if c.IdeaGenerators < 1 {
		return NewConfigurationError("idea generator count must be at least 1, got %d", c.IdeaGenerators)
	}
	if c.PackageGenerators < 1 {
		return NewConfigurationError("package generator count must be at least 1, got %d", c.PackageGenerators)
	}
	if c.Students < 1 {
		return NewConfigurationError("student count must be at least 1, got %d", c.Students)
	}
	if c.Termination != "" && !c.Termination.Valid() {
		return NewConfigurationError("unknown termination policy %q", c.Termination)
	}
	// An idea producer with packages but no ideas could never hand those
	// packages to anyone.
	if c.Packages > 0 && c.Ideas < min(c.IdeaGenerators, c.Packages) {
		return NewConfigurationError(
			"%d ideas cannot carry %d packages across %d idea generators",
			c.Ideas, c.Packages, c.IdeaGenerators)
	}
	return nil
}

// IdeaAssignment is one Idea Producer's share of the run.
type IdeaAssignment struct {
	Start    int `json:"start"`
	Ideas    int `json:"ideas"`
	Packages int `json:"packages"`
	Students int `json:"students"`
}

// PackageAssignment is one Package Producer's share of the run.
type PackageAssignment struct {
	Start    int `json:"start"`
	Packages int `json:"packages"`
}

// Plan lists every producer's immutable assignment.
type Plan struct {
	Ideas    []IdeaAssignment    `json:"idea_producers"`
	Packages []PackageAssignment `json:"package_producers"`
}

// Plan partitions the configured totals across producers.
func (c Config) Plan() (Plan, error) {
	if err := c.Validate(); err != nil {
		return Plan{}, err
	}

	ideas, err := Partition(c.Ideas, c.IdeaGenerators)
	if err != nil {
		return Plan{}, err
	}
	ideaPkgs, err := Partition(c.Packages, c.IdeaGenerators)
	if err != nil {
		return Plan{}, err
	}
	students, err := Partition(c.Students, c.IdeaGenerators)
	if err != nil {
		return Plan{}, err
	}
	pkgs, err := Partition(c.Packages, c.PackageGenerators)
	if err != nil {
		return Plan{}, err
	}

	var plan Plan
	for i, start := range offsets(ideas) {
		plan.Ideas = append(plan.Ideas, IdeaAssignment{
			Start:    start,
			Ideas:    ideas[i],
			Packages: ideaPkgs[i],
			Students: students[i],
		})
	}
	for i, start := range offsets(pkgs) {
		plan.Packages = append(plan.Packages, PackageAssignment{Start: start, Packages: pkgs[i]})
	}
	return plan, nil
}

// Inputs are the name sources supplied by the surrounding setup code.
type Inputs struct {
	Products  []string
	Customers []string
	Packages  []string
}

// Validate checks that the inputs can serve cfg.
func (in Inputs) Validate(cfg Config) error {
	if cfg.Ideas > 0 && (len(in.Products) == 0 || len(in.Customers) == 0) {
		return NewDataSourceError(
			fmt.Sprintf("need products and customers to name %d ideas (have %d products, %d customers)",
				cfg.Ideas, len(in.Products), len(in.Customers)), nil)
	}
	if cfg.Packages > 0 && len(in.Packages) == 0 {
		return NewDataSourceError(fmt.Sprintf("need package names to generate %d packages", cfg.Packages), nil)
	}
	return nil
}

// Options configure a Hackathon beyond its counts.
type Options struct {
	// Logger defaults to slog.Default().
	Logger *slog.Logger

	// RunIDs defaults to UUIDv7Generator.
	RunIDs RunIDGenerator

	// Clock defaults to SystemClock.
	Clock Clock
}

// Report is the outcome of a completed run.
type Report struct {
	RunID  string `json:"run_id"`
	Config Config `json:"config"`

	ProducerIdea    checksum.Checksum `json:"producer_idea"`
	StudentIdea     checksum.Checksum `json:"student_idea"`
	ProducerPackage checksum.Checksum `json:"producer_package"`
	StudentPackage  checksum.Checksum `json:"student_package"`

	IdeasBuilt       int64 `json:"ideas_built"`
	PackagesUsed     int64 `json:"packages_used"`
	TokensSent       int   `json:"tokens_sent"`
	IdeasStranded    int   `json:"ideas_stranded"`
	PackagesStranded int   `json:"packages_stranded"`

	StartedAt time.Time     `json:"started_at"`
	Duration  time.Duration `json:"duration_ns"`
}

// IdeasMatch reports whether every produced idea was consumed exactly once.
func (r *Report) IdeasMatch() bool {
	return r.ProducerIdea == r.StudentIdea
}

// PackagesMatch reports whether every produced package was consumed exactly once.
func (r *Report) PackagesMatch() bool {
	return r.ProducerPackage == r.StudentPackage
}

// Verified reports whether both checksum pairs match.
func (r *Report) Verified() bool {
	return r.IdeasMatch() && r.PackagesMatch()
}

// Hackathon owns the shared queues and accumulators of one run.
type Hackathon struct {
	cfg    Config
	plan   Plan
	names  NameSpace
	pkgs   PackageNames
	logger *slog.Logger
	runIDs RunIDGenerator
	clock  Clock

	ideas    *queue.Queue[Idea]
	packages *queue.Queue[Package]
	tokens   *queue.Queue[Token]

	producerIdea    *checksum.Accumulator
	studentIdea     *checksum.Accumulator
	producerPackage *checksum.Accumulator
	studentPackage  *checksum.Accumulator
}

// New validates cfg and in and prepares a run. Nothing is spawned until Run.
func New(cfg Config, in Inputs, opts Options) (*Hackathon, error) {
	if cfg.Termination == "" {
		cfg.Termination = TerminationBarrier
	}
	plan, err := cfg.Plan()
	if err != nil {
		return nil, err
	}
	if err := in.Validate(cfg); err != nil {
		return nil, err
	}

	logger := opts.Logger
	if logger == nil {
		logger = slog.Default()
	}
	runIDs := opts.RunIDs
	if runIDs == nil {
		runIDs = UUIDv7Generator{}
	}
	clock := opts.Clock
	if clock == nil {
		clock = SystemClock{}
	}

	return &Hackathon{
		cfg:             cfg,
		plan:            plan,
		names:           NewNameSpace(in.Products, in.Customers),
		pkgs:            PackageNames(in.Packages),
		logger:          logger,
		runIDs:          runIDs,
		clock:           clock,
		ideas:           queue.New[Idea](),
		packages:        queue.New[Package](),
		tokens:          queue.New[Token](),
		producerIdea:    checksum.NewAccumulator(),
		studentIdea:     checksum.NewAccumulator(),
		producerPackage: checksum.NewAccumulator(),
		studentPackage:  checksum.NewAccumulator(),
	}, nil
}

// Plan returns the producer assignments of this run.
func (h *Hackathon) Plan() Plan {
	return h.plan
}

// Run spawns every worker, waits for all of them, and reports the four
// checksums. The first worker error cancels the rest and is returned
// without a report. A Hackathon runs once.
func (h *Hackathon) Run(ctx context.Context) (*Report, error) {
	runID := h.runIDs.Generate()
	started := h.clock.Now()
	logger := h.logger.With("run_id", runID)

	g, gctx := errgroup.WithContext(ctx)

	var ideasDone chan struct{}
	if h.cfg.Termination == TerminationBarrier {
		ideasDone = make(chan struct{})
	}

	students := make([]*Student, h.cfg.Students)
	for i := range students {
		s := &Student{
			ID:              i,
			Ideas:           h.ideas,
			Packages:        h.packages,
			Tokens:          h.tokens,
			IdeaChecksum:    h.studentIdea,
			PackageChecksum: h.studentPackage,
			IdeasDone:       ideasDone,
			Logger:          logger,
		}
		students[i] = s
		g.Go(func() error { return s.Run(gctx) })
	}

	for i, a := range h.plan.Packages {
		p := &PackageProducer{
			ID:       i,
			Start:    a.Start,
			Count:    a.Packages,
			Names:    h.pkgs,
			Packages: h.packages,
			Checksum: h.producerPackage,
			Logger:   logger,
		}
		g.Go(func() error { return p.Run(gctx) })
	}

	var producers sync.WaitGroup
	tokens := 0
	for i, a := range h.plan.Ideas {
		p := &IdeaProducer{
			ID:       i,
			Start:    a.Start,
			Count:    a.Ideas,
			Packages: a.Packages,
			Students: a.Students,
			Names:    h.names,
			Ideas:    h.ideas,
			Tokens:   h.tokens,
			Checksum: h.producerIdea,
			Logger:   logger,
		}
		tokens += a.Students
		producers.Add(1)
		g.Go(func() error {
			defer producers.Done()
			return p.Run(gctx)
		})
	}

	if ideasDone != nil {
		go func() {
			producers.Wait()
			close(ideasDone)
		}()
	}

	logger.Info("workers spawned",
		"students", len(students),
		"package_producers", len(h.plan.Packages),
		"idea_producers", len(h.plan.Ideas),
		"termination", h.cfg.Termination)

	err := g.Wait()

	h.ideas.Close()
	h.packages.Close()
	h.tokens.Close()

	if err != nil {
		logger.Error("run aborted", "error", err)
		return nil, fmt.Errorf("run %s: %w", runID, err)
	}

	report := &Report{
		RunID:            runID,
		Config:           h.cfg,
		ProducerIdea:     h.producerIdea.Sum(),
		StudentIdea:      h.studentIdea.Sum(),
		ProducerPackage:  h.producerPackage.Sum(),
		StudentPackage:   h.studentPackage.Sum(),
		IdeasBuilt:       h.studentIdea.Count(),
		PackagesUsed:     h.studentPackage.Count(),
		TokensSent:       tokens,
		IdeasStranded:    h.ideas.Len(),
		PackagesStranded: h.packages.Len(),
		StartedAt:        started,
		Duration:         h.clock.Now().Sub(started),
	}
	for _, s := range students {
		report.PackagesStranded += s.Buffered()
	}

	logger.Info("run complete",
		"verified", report.Verified(),
		"ideas_built", report.IdeasBuilt,
		"packages_used", report.PackagesUsed,
		"duration", report.Duration)
	return report, nil
}
