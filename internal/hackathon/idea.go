package hackathon

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/roach88/hackathon/internal/checksum"
	"github.com/roach88/hackathon/internal/queue"
)

// IdeaProducer generates one contiguous batch of ideas, then sends its share
// of termination tokens.
type IdeaProducer struct {
	// ID is the worker index, used for logging and errors.
	ID int

	// Start is the global index of this producer's first idea.
	Start int

	// Count is the number of ideas to generate.
	Count int

	// Packages is the number of packages apportioned across this batch.
	Packages int

	// Students is the number of termination tokens to send after the batch.
	Students int

	Names    NameSpace
	Ideas    *queue.Queue[Idea]
	Tokens   *queue.Queue[Token]
	Checksum *checksum.Accumulator
	Logger   *slog.Logger
}

// Name returns the worker name used in logs and errors.
func (p *IdeaProducer) Name() string {
	return fmt.Sprintf("idea-producer-%d", p.ID)
}

// Requirement returns how many packages the i-th local idea needs.
// Packages/Count is given to every idea and the first Packages%Count ideas
// get one extra.
func (p *IdeaProducer) Requirement(i int) int {
	if p.Count == 0 {
		return 0
	}
	per, extra := p.Packages/p.Count, p.Packages%p.Count
	if i < extra {
		return per + 1
	}
	return per
}

// Run enqueues the batch, merges the batch checksum once, and then enqueues
// Students tokens. A closed queue is fatal.
func (p *IdeaProducer) Run(ctx context.Context) error {
	if p.Count == 0 && p.Packages > 0 {
		return NewConfigurationError("%s has %d packages but no ideas to carry them", p.Name(), p.Packages)
	}

	// Digest outside the lock; only the final merge is serialized.
	batch := checksum.Identity()
	for i := 0; i < p.Count; i++ {
		if err := ctx.Err(); err != nil {
			return err
		}

		idea := Idea{
			Name:           p.Names.IdeaName(p.Start + i),
			NumPkgRequired: p.Requirement(i),
		}
		batch = batch.Add(idea.Name)

		if !p.Ideas.Enqueue(idea) {
			return NewChannelUnavailableError(p.Name(), "idea")
		}
	}
	p.Checksum.MergeInto(batch, p.Count)

	for i := 0; i < p.Students; i++ {
		if !p.Tokens.Enqueue(Token{OutOfIdeas: true}) {
			return NewChannelUnavailableError(p.Name(), "termination token")
		}
	}

	p.logger().Debug("idea batch sent",
		"worker", p.Name(),
		"start", p.Start,
		"ideas", p.Count,
		"packages", p.Packages,
		"tokens", p.Students)
	return nil
}

func (p *IdeaProducer) logger() *slog.Logger {
	if p.Logger == nil {
		return slog.Default()
	}
	return p.Logger
}
