package testutil

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/roach88/hackathon/internal/wordlist"
)

// Words is a small set of word lists for fixtures.
type Words struct {
	Products  []string
	Customers []string
	Packages  []string
}

// SmallWords is the two-by-two name space with three packages used by the
// golden run output.
var SmallWords = Words{
	Products:  []string{"Chatbot", "Wallet"},
	Customers: []string{"Farmers", "Pilots"},
	Packages:  []string{"serde", "tokio", "rand"},
}

// WriteDataDir writes w into a fresh temp directory using the standard
// file names and returns the directory.
func WriteDataDir(t testing.TB, w Words) string {
	t.Helper()
	dir := t.TempDir()
	WriteList(t, filepath.Join(dir, wordlist.ProductsFile), w.Products)
	WriteList(t, filepath.Join(dir, wordlist.CustomersFile), w.Customers)
	WriteList(t, filepath.Join(dir, wordlist.PackagesFile), w.Packages)
	return dir
}

// WriteList writes one entry per line to path.
func WriteList(t testing.TB, path string, entries []string) {
	t.Helper()
	content := ""
	if len(entries) > 0 {
		content = strings.Join(entries, "\n") + "\n"
	}
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("write %s: %v", path, err)
	}
}
