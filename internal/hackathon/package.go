package hackathon

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/roach88/hackathon/internal/checksum"
	"github.com/roach88/hackathon/internal/queue"
)

// PackageProducer generates one contiguous batch of packages.
type PackageProducer struct {
	ID    int
	Start int
	Count int

	Names    PackageNames
	Packages *queue.Queue[Package]
	Checksum *checksum.Accumulator
	Logger   *slog.Logger
}

// Name returns the worker name used in logs and errors.
func (p *PackageProducer) Name() string {
	return fmt.Sprintf("package-producer-%d", p.ID)
}

// Run enqueues Count packages named Names[(Start+j) mod len(Names)] and
// merges the batch checksum once at the end.
func (p *PackageProducer) Run(ctx context.Context) error {
	batch := checksum.Identity()
	for j := 0; j < p.Count; j++ {
		if err := ctx.Err(); err != nil {
			return err
		}

		pkg := Package{Name: p.Names.At(p.Start + j)}
		batch = batch.Add(pkg.Name)

		if !p.Packages.Enqueue(pkg) {
			return NewChannelUnavailableError(p.Name(), "package")
		}
	}
	p.Checksum.MergeInto(batch, p.Count)

	logger := p.Logger
	if logger == nil {
		logger = slog.Default()
	}
	logger.Debug("package batch sent", "worker", p.Name(), "start", p.Start, "packages", p.Count)
	return nil
}
