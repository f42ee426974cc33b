package hackathon

// Idea is a work item that needs NumPkgRequired packages to be built.
type Idea struct {
	Name           string
	NumPkgRequired int
}

// Package is a consumable unit used to build ideas.
type Package struct {
	Name string
}

// Token tells one student that it may stop waiting for ideas.
type Token struct {
	OutOfIdeas bool
}

// TerminationPolicy selects how students decide to stop.
type TerminationPolicy string

const (
	// TerminationBarrier waits for every Idea Producer to return before a
	// student may take a termination token.
	TerminationBarrier TerminationPolicy = "barrier"

	// TerminationBestEffort checks "idea queue empty" and "token available"
	// as two independent observations. Ideas may be stranded.
	TerminationBestEffort TerminationPolicy = "best-effort"
)

// Valid reports whether p is a known policy.
func (p TerminationPolicy) Valid() bool {
	return p == TerminationBarrier || p == TerminationBestEffort
}
