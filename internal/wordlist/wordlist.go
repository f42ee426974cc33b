// Package wordlist reads the newline-separated name lists that feed the
// pipeline: idea products, idea customers, and package names.
package wordlist

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"golang.org/x/text/unicode/norm"
)

// Default file names inside a data directory.
const (
	ProductsFile  = "ideas-products.txt"
	CustomersFile = "ideas-customers.txt"
	PackagesFile  = "packages.txt"
)

// Read parses one name per line. Lines are NFC-normalized and trimmed of
// trailing carriage returns and surrounding whitespace; blank lines are
// skipped. Order is preserved.
func Read(r io.Reader) ([]string, error) {
	var names []string
	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}
		names = append(names, norm.NFC.String(line))
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("scan word list: %w", err)
	}
	return names, nil
}

// Load reads the word list at path.
func Load(path string) ([]string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open word list: %w", err)
	}
	defer f.Close()

	names, err := Read(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return names, nil
}

// Set bundles the three lists.
type Set struct {
	Products  []string
	Customers []string
	Packages  []string
}

// Paths locates the three lists.
type Paths struct {
	Products  string `yaml:"products" json:"products"`
	Customers string `yaml:"customers" json:"customers"`
	Packages  string `yaml:"packages" json:"packages"`
}

// DefaultPaths returns the standard file names under dir.
func DefaultPaths(dir string) Paths {
	return Paths{
		Products:  filepath.Join(dir, ProductsFile),
		Customers: filepath.Join(dir, CustomersFile),
		Packages:  filepath.Join(dir, PackagesFile),
	}
}

// LoadSet reads all three lists, failing on the first error.
func LoadSet(p Paths) (*Set, error) {
	products, err := Load(p.Products)
	if err != nil {
		return nil, err
	}
	customers, err := Load(p.Customers)
	if err != nil {
		return nil, err
	}
	packages, err := Load(p.Packages)
	if err != nil {
		return nil, err
	}
	return &Set{Products: products, Customers: customers, Packages: packages}, nil
}
