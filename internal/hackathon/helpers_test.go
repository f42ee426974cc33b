package hackathon

import (
	"fmt"

	"github.com/roach88/hackathon/internal/queue"
)

var (
	testProducts  = []string{"Chatbot", "Calendar", "Compiler", "Wallet", "Drone"}
	testCustomers = []string{"Farmers", "Students", "Dentists", "Pilots"}
	testPackages  = []string{"serde", "tokio", "rand", "clap", "regex", "log", "anyhow"}
)

func testInputs() Inputs {
	return Inputs{Products: testProducts, Customers: testCustomers, Packages: testPackages}
}

// drain empties q without blocking.
func drain[T any](q *queue.Queue[T]) []T {
	var out []T
	for {
		v, ok := q.TryDequeue()
		if !ok {
			return out
		}
		out = append(out, v)
	}
}

func ideaNames(ideas []Idea) []string {
	names := make([]string, len(ideas))
	for i, idea := range ideas {
		names[i] = idea.Name
	}
	return names
}

func manyNames(prefix string, n int) []string {
	names := make([]string, n)
	for i := range names {
		names[i] = fmt.Sprintf("%s-%03d", prefix, i)
	}
	return names
}
