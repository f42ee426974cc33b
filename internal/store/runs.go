package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/roach88/hackathon/internal/checksum"
	"github.com/roach88/hackathon/internal/hackathon"
)

// ErrRunNotFound is returned by GetRun for an unknown run ID.
var ErrRunNotFound = errors.New("run not found")

const runColumns = `
	id, started_at, duration_ns,
	num_ideas, num_idea_gen, num_pkgs, num_pkg_gen, num_students, termination,
	producer_idea, student_idea, producer_package, student_package,
	ideas_built, packages_used, tokens_sent, ideas_stranded, packages_stranded`

// WriteRun records a completed run.
// Uses ON CONFLICT(id) DO NOTHING for idempotency - rewriting the same run
// ID is silently ignored.
func (s *Store) WriteRun(ctx context.Context, r *hackathon.Report) error {
	_, err := s.db.ExecContext(ctx, `
		INSERT INTO runs (`+runColumns+`, verified)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
		ON CONFLICT(id) DO NOTHING
	`,
		r.RunID,
		r.StartedAt.UTC().Format(time.RFC3339Nano),
		int64(r.Duration),
		r.Config.Ideas,
		r.Config.IdeaGenerators,
		r.Config.Packages,
		r.Config.PackageGenerators,
		r.Config.Students,
		string(r.Config.Termination),
		r.ProducerIdea.String(),
		r.StudentIdea.String(),
		r.ProducerPackage.String(),
		r.StudentPackage.String(),
		r.IdeasBuilt,
		r.PackagesUsed,
		r.TokensSent,
		r.IdeasStranded,
		r.PackagesStranded,
		r.Verified(),
	)
	if err != nil {
		return fmt.Errorf("write run: %w", err)
	}
	return nil
}

// GetRun returns the run with the given ID, or ErrRunNotFound.
func (s *Store) GetRun(ctx context.Context, id string) (*hackathon.Report, error) {
	row := s.db.QueryRowContext(ctx, `SELECT `+runColumns+` FROM runs WHERE id = ?`, id)
	r, err := scanRun(row)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("get run %s: %w", id, ErrRunNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("get run %s: %w", id, err)
	}
	return r, nil
}

// ListOptions filters ListRuns.
type ListOptions struct {
	// Limit caps the number of rows; zero means no limit.
	Limit int

	// FailedOnly keeps only runs whose checksums did not match.
	FailedOnly bool
}

// ListRuns returns recorded runs, newest first (ORDER BY seq DESC).
// Returns an empty slice (not nil) if nothing matches.
func (s *Store) ListRuns(ctx context.Context, opts ListOptions) ([]*hackathon.Report, error) {
	query := `SELECT ` + runColumns + ` FROM runs`
	var args []any
	if opts.FailedOnly {
		query += ` WHERE verified = 0`
	}
	query += ` ORDER BY seq DESC`
	if opts.Limit > 0 {
		query += ` LIMIT ?`
		args = append(args, opts.Limit)
	}

	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("query runs: %w", err)
	}
	defer rows.Close()

	runs := []*hackathon.Report{}
	for rows.Next() {
		r, err := scanRun(rows)
		if err != nil {
			return nil, err
		}
		runs = append(runs, r)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate runs: %w", err)
	}
	return runs, nil
}

// rowScanner covers *sql.Row and *sql.Rows.
type rowScanner interface {
	Scan(dest ...any) error
}

func scanRun(row rowScanner) (*hackathon.Report, error) {
	var (
		r                        hackathon.Report
		started, termination     string
		duration                 int64
		prodIdea, studIdea       string
		prodPackage, studPackage string
	)
	err := row.Scan(
		&r.RunID, &started, &duration,
		&r.Config.Ideas, &r.Config.IdeaGenerators, &r.Config.Packages,
		&r.Config.PackageGenerators, &r.Config.Students, &termination,
		&prodIdea, &studIdea, &prodPackage, &studPackage,
		&r.IdeasBuilt, &r.PackagesUsed, &r.TokensSent, &r.IdeasStranded, &r.PackagesStranded,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, err
		}
		return nil, fmt.Errorf("scan run: %w", err)
	}

	r.Config.Termination = hackathon.TerminationPolicy(termination)
	r.Duration = time.Duration(duration)
	if r.StartedAt, err = time.Parse(time.RFC3339Nano, started); err != nil {
		return nil, fmt.Errorf("scan run %s: started_at: %w", r.RunID, err)
	}

	sums := []struct {
		dst *checksum.Checksum
		src string
	}{
		{&r.ProducerIdea, prodIdea},
		{&r.StudentIdea, studIdea},
		{&r.ProducerPackage, prodPackage},
		{&r.StudentPackage, studPackage},
	}
	for _, s := range sums {
		if *s.dst, err = checksum.Parse(s.src); err != nil {
			return nil, fmt.Errorf("scan run %s: %w", r.RunID, err)
		}
	}
	return &r, nil
}
