package hackathon

import (
	"context"
	"fmt"
	"log/slog"
	"slices"

	"github.com/roach88/hackathon/internal/checksum"
	"github.com/roach88/hackathon/internal/queue"
)

// State is a student's position in its state machine.
type State int

const (
	StateIdle State = iota
	StateHoldingIdea
	StateBuilding
	StateTerminated
)

func (s State) String() string {
	switch s {
	case StateIdle:
		return "idle"
	case StateHoldingIdea:
		return "holding-idea"
	case StateBuilding:
		return "building"
	case StateTerminated:
		return "terminated"
	default:
		return fmt.Sprintf("State(%d)", int(s))
	}
}

// Student is a consumer worker. It holds one idea at a time, buffers
// packages in FIFO order, and builds the idea once enough packages arrived.
//
// A Student is driven by a single goroutine; its fields other than the
// shared queues and accumulators are not synchronized.
type Student struct {
	ID int

	Ideas    *queue.Queue[Idea]
	Packages *queue.Queue[Package]
	Tokens   *queue.Queue[Token]

	IdeaChecksum    *checksum.Accumulator
	PackageChecksum *checksum.Accumulator

	// IdeasDone is closed once every Idea Producer has returned. A nil
	// channel means best-effort termination: tokens may be taken at any time.
	IdeasDone <-chan struct{}

	Logger *slog.Logger

	state  State
	idea   Idea
	buffer []Package
	built  int
	used   int
}

// Name returns the worker name used in logs and errors.
func (s *Student) Name() string {
	return fmt.Sprintf("student-%d", s.ID)
}

// State returns the current state. Only meaningful from the goroutine
// running the student or after Run returns.
func (s *Student) State() State {
	return s.state
}

// Built returns how many ideas this student built.
func (s *Student) Built() int {
	return s.built
}

// PackagesUsed returns how many packages this student consumed in builds.
func (s *Student) PackagesUsed() int {
	return s.used
}

// Buffered returns the number of packages waiting in the local buffer.
func (s *Student) Buffered() int {
	return len(s.buffer)
}

// Run drives the state machine until the student terminates.
func (s *Student) Run(ctx context.Context) error {
	s.state = StateIdle
	for {
		ok, err := s.awaitIdea(ctx)
		if err != nil {
			return err
		}
		if !ok {
			s.state = StateTerminated
			s.logger().Debug("student terminated",
				"worker", s.Name(),
				"built", s.built,
				"packages_used", s.used,
				"buffered", len(s.buffer))
			return nil
		}

		if err := s.gatherPackages(ctx); err != nil {
			return err
		}
		s.build()
	}
}

// awaitIdea is the Idle state. It returns true once an idea is held and
// false once a termination token was taken.
func (s *Student) awaitIdea(ctx context.Context) (bool, error) {
	done := s.IdeasDone
	ready := done == nil

	for {
		if idea, ok := s.Ideas.TryDequeue(); ok {
			s.idea = idea
			s.state = StateHoldingIdea
			// We may have swallowed a token wakeup meant for another student.
			s.Tokens.Notify()
			return true, nil
		}

		if ready && s.Ideas.IsEmpty() {
			if _, ok := s.Tokens.TryDequeue(); ok {
				return false, nil
			}
		}

		if s.Ideas.Closed() {
			return false, NewChannelUnavailableError(s.Name(), "idea")
		}
		if s.Tokens.Closed() {
			return false, NewChannelUnavailableError(s.Name(), "termination token")
		}

		select {
		case <-ctx.Done():
			return false, ctx.Err()
		case <-s.Ideas.Wait():
		case <-s.Tokens.Wait():
		case <-done:
			// Closed channel; stop selecting on it.
			done = nil
			ready = true
		}
	}
}

// gatherPackages is the HoldingIdea state. Packages are pulled only while
// the buffer is short of the held idea's requirement.
func (s *Student) gatherPackages(ctx context.Context) error {
	for len(s.buffer) < s.idea.NumPkgRequired {
		if pkg, ok := s.Packages.TryDequeue(); ok {
			s.buffer = append(s.buffer, pkg)
			continue
		}

		if s.Packages.Closed() {
			return NewChannelUnavailableError(s.Name(), "package")
		}

		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-s.Packages.Wait():
		}
	}
	return nil
}

// build is the Building state: retire the held idea and exactly
// NumPkgRequired packages from the front of the buffer.
func (s *Student) build() {
	s.state = StateBuilding
	n := s.idea.NumPkgRequired

	s.IdeaChecksum.MergeInto(checksum.Digest(s.idea.Name), 1)

	batch := checksum.Identity()
	for _, pkg := range s.buffer[:n] {
		batch = batch.Add(pkg.Name)
	}
	s.PackageChecksum.MergeInto(batch, n)
	s.buffer = slices.Delete(s.buffer, 0, n)

	s.built++
	s.used += n
	s.idea = Idea{}
	s.state = StateIdle
}

func (s *Student) logger() *slog.Logger {
	if s.Logger == nil {
		return slog.Default()
	}
	return s.Logger
}
